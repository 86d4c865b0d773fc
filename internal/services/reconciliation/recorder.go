package reconciliation

import (
	"context"
	"fmt"

	"bank-reconciliation-backend/internal/models"
	"bank-reconciliation-backend/internal/repository"
	"bank-reconciliation-backend/internal/services/matching"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type CreateMatchRequest struct {
	ImportedTransactionID uuid.UUID       `json:"imported_transaction_id"`
	LedgerEntryID         uuid.UUID       `json:"ledger_entry_id"`
	MatchAmount           decimal.Decimal `json:"match_amount"`
	Notes                 string          `json:"notes,omitempty"`
}

type matchParams struct {
	transactionID uuid.UUID
	ledgerEntryID uuid.UUID
	amount        *decimal.Decimal // nil uses the transaction amount
	notes         string
	matchType     string
	score         *matching.Result
}

// CreateManualMatch pairs a transaction with a ledger entry chosen by a
// user. The match amount is stored as given. A transaction that is already
// matched is rejected with ErrAlreadyMatched; remove the match first.
func (s *ReconciliationService) CreateManualMatch(ctx context.Context, user models.ActingUser, req CreateMatchRequest) (*models.ReconciliationMatch, error) {
	amount := req.MatchAmount
	return s.recordMatch(ctx, user, matchParams{
		transactionID: req.ImportedTransactionID,
		ledgerEntryID: req.LedgerEntryID,
		amount:        &amount,
		notes:         req.Notes,
		matchType:     models.MatchTypeManual,
	})
}

// CreateAutomaticMatch records a scored suggestion as an automatic match
// for the transaction's own amount.
func (s *ReconciliationService) CreateAutomaticMatch(ctx context.Context, user models.ActingUser, transactionID uuid.UUID, suggestion matching.Result) (*models.ReconciliationMatch, error) {
	return s.recordMatch(ctx, user, matchParams{
		transactionID: transactionID,
		ledgerEntryID: suggestion.LedgerEntryID,
		matchType:     models.MatchTypeAutomatic,
		score:         &suggestion,
	})
}

func (s *ReconciliationService) recordMatch(ctx context.Context, user models.ActingUser, p matchParams) (*models.ReconciliationMatch, error) {
	var match *models.ReconciliationMatch

	err := s.repo.WithTx(ctx, func(r repository.Repository) error {
		tx, err := r.GetTransaction(ctx, user.TenantID, p.transactionID)
		if err != nil {
			return fmt.Errorf("get transaction %s: %w", p.transactionID, err)
		}
		if _, err := r.GetLedgerEntry(ctx, user.TenantID, p.ledgerEntryID); err != nil {
			return fmt.Errorf("get ledger entry %s: %w", p.ledgerEntryID, err)
		}

		now := s.now()
		if err := r.MarkTransactionMatched(ctx, tx.ID, p.ledgerEntryID, p.matchType, now); err != nil {
			return fmt.Errorf("mark transaction %s matched: %w", tx.ID, err)
		}

		amount := tx.Amount()
		if p.amount != nil {
			amount = *p.amount
		}
		match = &models.ReconciliationMatch{
			ID:                    uuid.New(),
			TenantID:              user.TenantID,
			ImportedTransactionID: tx.ID,
			LedgerEntryID:         p.ledgerEntryID,
			MatchAmount:           amount,
			MatchType:             p.matchType,
			Reasons:               datatypes.NewJSONSlice([]string{}),
			MatchedBy:             user.ID,
			Notes:                 p.notes,
			CreatedAt:             now,
		}
		if p.score != nil {
			match.Confidence = p.score.Confidence
			match.Reasons = datatypes.NewJSONSlice(p.score.Reasons)
		}
		if err := r.CreateMatch(ctx, match); err != nil {
			return fmt.Errorf("create match: %w", err)
		}

		if err := r.AdjustBatchUnmatched(ctx, tx.BatchID, -1); err != nil {
			return fmt.Errorf("update batch %s: %w", tx.BatchID, err)
		}

		return r.CreateAuditLog(ctx, &models.MatchAuditLog{
			ID:            uuid.New(),
			TenantID:      user.TenantID,
			TransactionID: tx.ID,
			Action:        models.AuditActionMatch,
			NewEntry:      &match.LedgerEntryID,
			MatchType:     p.matchType,
			PerformedBy:   user.ID,
			Reason:        p.notes,
			Details: datatypes.JSONMap{
				"match_id":     match.ID.String(),
				"match_amount": match.MatchAmount.String(),
				"confidence":   match.Confidence,
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("transaction matched",
		"match_id", match.ID, "transaction_id", match.ImportedTransactionID,
		"ledger_entry_id", match.LedgerEntryID, "match_type", match.MatchType)
	return match, nil
}

// RemoveMatch deletes a match and returns its transaction to the unmatched
// state. Both happen in one database transaction.
func (s *ReconciliationService) RemoveMatch(ctx context.Context, user models.ActingUser, matchID uuid.UUID) error {
	err := s.repo.WithTx(ctx, func(r repository.Repository) error {
		match, err := r.GetMatch(ctx, user.TenantID, matchID)
		if err != nil {
			return fmt.Errorf("get match %s: %w", matchID, err)
		}
		tx, err := r.GetTransaction(ctx, user.TenantID, match.ImportedTransactionID)
		if err != nil {
			return fmt.Errorf("get transaction %s: %w", match.ImportedTransactionID, err)
		}

		if err := r.DeleteMatch(ctx, match.ID); err != nil {
			return fmt.Errorf("delete match %s: %w", match.ID, err)
		}
		if err := r.ClearTransactionMatch(ctx, tx.ID); err != nil {
			return fmt.Errorf("reset transaction %s: %w", tx.ID, err)
		}
		if err := r.AdjustBatchUnmatched(ctx, tx.BatchID, 1); err != nil {
			return fmt.Errorf("update batch %s: %w", tx.BatchID, err)
		}

		return r.CreateAuditLog(ctx, &models.MatchAuditLog{
			ID:            uuid.New(),
			TenantID:      user.TenantID,
			TransactionID: tx.ID,
			Action:        models.AuditActionUnmatch,
			PreviousEntry: &match.LedgerEntryID,
			MatchType:     match.MatchType,
			PerformedBy:   user.ID,
			Details:       datatypes.JSONMap{"match_id": match.ID.String()},
			CreatedAt:     s.now(),
		})
	})
	if err != nil {
		return err
	}

	s.logger.Info("match removed", "match_id", matchID)
	return nil
}
