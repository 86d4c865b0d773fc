package reconciliation

import (
	"context"
	"fmt"

	"bank-reconciliation-backend/internal/models"
	"bank-reconciliation-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type ListQuery struct {
	Status string // "matched", "unmatched", "" or "all"
	Search string
	Cursor string
	Limit  int
}

type TransactionPage struct {
	Items      []models.ImportedTransaction `json:"items"`
	NextCursor string                       `json:"next_cursor,omitempty"`
	HasMore    bool                         `json:"has_more"`
}

type LedgerSearch struct {
	Query    string
	Amount   decimal.Decimal
	Statuses []string
	Limit    int
}

func (s *ReconciliationService) GetBatch(ctx context.Context, user models.ActingUser, batchID uuid.UUID) (*models.ImportBatch, error) {
	batch, err := s.repo.GetBatch(ctx, user.TenantID, batchID)
	if err != nil {
		return nil, fmt.Errorf("get batch %s: %w", batchID, err)
	}
	return batch, nil
}

// ListTransactions pages through a batch in id order. One extra row is
// fetched to know whether another page exists.
func (s *ReconciliationService) ListTransactions(ctx context.Context, user models.ActingUser, batchID uuid.UUID, q ListQuery) (*TransactionPage, error) {
	if _, err := s.GetBatch(ctx, user, batchID); err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	filter := repository.TransactionFilter{
		TenantID: user.TenantID,
		BatchID:  batchID,
		Search:   q.Search,
		Limit:    limit + 1,
	}
	switch q.Status {
	case "", "all":
	case repository.FilterMatched, repository.FilterUnmatched:
		filter.Status = q.Status
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, q.Status)
	}
	if q.Cursor != "" {
		cursor, err := uuid.Parse(q.Cursor)
		if err != nil {
			return nil, fmt.Errorf("%w: bad cursor", ErrInvalidInput)
		}
		filter.Cursor = &cursor
	}

	txs, err := s.repo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list transactions of batch %s: %w", batchID, err)
	}

	page := &TransactionPage{Items: txs}
	if len(txs) > limit {
		page.HasMore = true
		page.Items = txs[:limit]
		page.NextCursor = page.Items[limit-1].ID.String()
	}
	if page.Items == nil {
		page.Items = []models.ImportedTransaction{}
	}
	return page, nil
}

// SearchLedgerEntries looks up ledger entries for manual matching.
func (s *ReconciliationService) SearchLedgerEntries(ctx context.Context, user models.ActingUser, q LedgerSearch) ([]models.LedgerEntry, error) {
	limit := q.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	entries, err := s.repo.SearchLedgerEntries(ctx, repository.LedgerEntryFilter{
		TenantID: user.TenantID,
		Query:    q.Query,
		Amount:   q.Amount,
		Statuses: q.Statuses,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("search ledger entries: %w", err)
	}
	if entries == nil {
		entries = []models.LedgerEntry{}
	}
	return entries, nil
}
