package reconciliation

import (
	"context"
	"fmt"

	"bank-reconciliation-backend/internal/models"
	"bank-reconciliation-backend/internal/services/matching"

	"github.com/google/uuid"
)

// Suggestion is the ranked list of likely ledger matches for one
// transaction. It is computed on demand and never stored.
type Suggestion struct {
	ImportedTransaction *models.ImportedTransaction `json:"imported_transaction"`
	SuggestedMatches    []matching.Result           `json:"suggested_matches"`
}

// FetchCandidates returns every posted ledger entry dated within the
// matching window (inclusive, calendar days) of the transaction date.
func (s *ReconciliationService) FetchCandidates(ctx context.Context, user models.ActingUser, transactionID uuid.UUID) ([]models.LedgerEntry, error) {
	tx, err := s.repo.GetTransaction(ctx, user.TenantID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", transactionID, err)
	}
	return s.candidatesFor(ctx, user.TenantID, tx)
}

// SuggestMatches scores the candidates of a transaction and keeps the best.
func (s *ReconciliationService) SuggestMatches(ctx context.Context, user models.ActingUser, transactionID uuid.UUID) (*Suggestion, error) {
	tx, err := s.repo.GetTransaction(ctx, user.TenantID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", transactionID, err)
	}

	entries, err := s.candidatesFor(ctx, user.TenantID, tx)
	if err != nil {
		return nil, err
	}

	return &Suggestion{
		ImportedTransaction: tx,
		SuggestedMatches:    s.ranker.Rank(s.scorer.ScoreAll(tx, entries)),
	}, nil
}

func (s *ReconciliationService) candidatesFor(ctx context.Context, tenantID uuid.UUID, tx *models.ImportedTransaction) ([]models.LedgerEntry, error) {
	// stored dates are UTC calendar days; drivers may return them in time.Local
	day := dateOnly(tx.TransactionDate.UTC())
	from := day.AddDate(0, 0, -s.policy.WindowDays)
	until := day.AddDate(0, 0, s.policy.WindowDays+1)

	entries, err := s.repo.FindPostedEntries(ctx, tenantID, from, until)
	if err != nil {
		return nil, fmt.Errorf("find candidates for transaction %s: %w", tx.ID, err)
	}
	if entries == nil {
		entries = []models.LedgerEntry{}
	}
	return entries, nil
}
