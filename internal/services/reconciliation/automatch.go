package reconciliation

import (
	"context"
	"errors"
	"fmt"

	"bank-reconciliation-backend/internal/models"
	"bank-reconciliation-backend/internal/repository"
	"bank-reconciliation-backend/internal/services/matching"

	"github.com/google/uuid"
)

type AutoMatchResult struct {
	Examined int `json:"examined"`
	Matched  int `json:"matched"`
	Skipped  int `json:"skipped"`
}

// AutoMatchBatch walks the unmatched transactions of a batch and records an
// automatic match wherever the best suggestion reaches the auto-match
// threshold and beats the runner-up. Ledger entries that already back a
// match, from this or any other batch, are not offered.
func (s *ReconciliationService) AutoMatchBatch(ctx context.Context, user models.ActingUser, batchID uuid.UUID) (*AutoMatchResult, error) {
	batch, err := s.GetBatch(ctx, user, batchID)
	if err != nil {
		return nil, err
	}

	txs, err := s.repo.ListTransactions(ctx, repository.TransactionFilter{
		TenantID: user.TenantID,
		BatchID:  batch.ID,
		Status:   repository.FilterUnmatched,
	})
	if err != nil {
		return nil, fmt.Errorf("list unmatched transactions of batch %s: %w", batch.ID, err)
	}

	result := &AutoMatchResult{}
	for i := range txs {
		tx := &txs[i]
		result.Examined++

		entries, err := s.candidatesFor(ctx, user.TenantID, tx)
		if err != nil {
			return result, err
		}
		available, err := s.unmatchedEntries(ctx, user.TenantID, entries)
		if err != nil {
			return result, err
		}

		best, ok := s.pickAutomatic(s.ranker.Rank(s.scorer.ScoreAll(tx, available)))
		if !ok {
			result.Skipped++
			continue
		}

		_, err = s.CreateAutomaticMatch(ctx, user, tx.ID, best)
		if errors.Is(err, ErrAlreadyMatched) {
			result.Skipped++
			continue
		}
		if err != nil {
			return result, err
		}
		result.Matched++
	}

	s.logger.Info("auto-match finished",
		"batch_id", batch.ID, "examined", result.Examined, "matched", result.Matched, "skipped", result.Skipped)
	return result, nil
}

func (s *ReconciliationService) pickAutomatic(ranked []matching.Result) (matching.Result, bool) {
	if len(ranked) == 0 || ranked[0].Confidence < s.autoMatchThreshold {
		return matching.Result{}, false
	}
	if len(ranked) > 1 && ranked[1].Confidence >= ranked[0].Confidence {
		return matching.Result{}, false
	}
	return ranked[0], true
}

func (s *ReconciliationService) unmatchedEntries(ctx context.Context, tenantID uuid.UUID, entries []models.LedgerEntry) ([]models.LedgerEntry, error) {
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	matched, err := s.repo.MatchedLedgerEntryIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, fmt.Errorf("check matched ledger entries: %w", err)
	}
	taken := make(map[uuid.UUID]bool, len(matched))
	for _, id := range matched {
		taken[id] = true
	}

	available := make([]models.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if !taken[e.ID] {
			available = append(available, e)
		}
	}
	return available, nil
}
