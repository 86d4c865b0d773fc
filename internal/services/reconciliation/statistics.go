package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bank-reconciliation-backend/internal/models"
	"bank-reconciliation-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Statistics describes the most recent import batch of a bank account.
type Statistics struct {
	TotalImported          int             `json:"total_imported"`
	TotalMatched           int             `json:"total_matched"`
	TotalUnmatched         int             `json:"total_unmatched"`
	MatchingPercentage     float64         `json:"matching_percentage"`
	TotalVariance          decimal.Decimal `json:"total_variance"`
	LastReconciliationDate *time.Time      `json:"last_reconciliation_date,omitempty"`
}

// GetStatistics reports counts for the latest batch only, not a running
// total. Accounts with no batch get zero-valued statistics.
func (s *ReconciliationService) GetStatistics(ctx context.Context, user models.ActingUser, bankAccountID uuid.UUID) (Statistics, error) {
	var stats Statistics

	batch, err := s.repo.LatestBatch(ctx, user.TenantID, bankAccountID)
	if errors.Is(err, repository.ErrNotFound) {
		return stats, nil
	}
	if err != nil {
		return stats, fmt.Errorf("latest batch for account %s: %w", bankAccountID, err)
	}

	txs, err := s.repo.ListTransactions(ctx, repository.TransactionFilter{
		TenantID: user.TenantID,
		BatchID:  batch.ID,
	})
	if err != nil {
		return stats, fmt.Errorf("list transactions of batch %s: %w", batch.ID, err)
	}
	matches, err := s.repo.ListBatchMatches(ctx, batch.ID)
	if err != nil {
		return stats, fmt.Errorf("list matches of batch %s: %w", batch.ID, err)
	}

	amounts := make(map[uuid.UUID]decimal.Decimal, len(txs))
	for i := range txs {
		amounts[txs[i].ID] = txs[i].Amount()
		if txs[i].Matched {
			stats.TotalMatched++
		} else {
			stats.TotalUnmatched++
		}
	}
	stats.TotalImported = len(txs)

	if denom := stats.TotalMatched + stats.TotalUnmatched; denom > 0 {
		stats.MatchingPercentage = float64(stats.TotalMatched) / float64(denom) * 100
	}

	for _, m := range matches {
		stats.TotalVariance = stats.TotalVariance.Add(amounts[m.ImportedTransactionID].Sub(m.MatchAmount).Abs())
		if stats.LastReconciliationDate == nil || m.CreatedAt.After(*stats.LastReconciliationDate) {
			createdAt := m.CreatedAt
			stats.LastReconciliationDate = &createdAt
		}
	}

	return stats, nil
}
