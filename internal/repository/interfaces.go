package repository

import (
	"context"
	"errors"
	"time"

	"bank-reconciliation-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrAlreadyMatched     = errors.New("transaction already matched")
	ErrBatchNotProcessing = errors.New("batch is not processing")
)

// Transaction match-state filters.
const (
	FilterMatched   = "matched"
	FilterUnmatched = "unmatched"
)

// TransactionFilter selects imported transactions of one batch.
// A zero Limit returns every row.
type TransactionFilter struct {
	TenantID uuid.UUID
	BatchID  uuid.UUID
	Status   string
	Search   string
	Cursor   *uuid.UUID
	Limit    int
}

// LedgerEntryFilter is used by the manual-match search.
type LedgerEntryFilter struct {
	TenantID uuid.UUID
	Query    string
	Amount   decimal.Decimal
	Statuses []string
	Limit    int
}

// Repository is the persistence surface of the reconciliation service.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=interfaces.go Repository
type Repository interface {
	CreateBatch(ctx context.Context, batch *models.ImportBatch) error
	CompleteBatch(ctx context.Context, batchID uuid.UUID, total int, completedAt time.Time) error
	FailBatch(ctx context.Context, batchID uuid.UUID, reason string, failedAt time.Time) error
	GetBatch(ctx context.Context, tenantID, batchID uuid.UUID) (*models.ImportBatch, error)
	LatestBatch(ctx context.Context, tenantID, bankAccountID uuid.UUID) (*models.ImportBatch, error)
	AdjustBatchUnmatched(ctx context.Context, batchID uuid.UUID, delta int) error

	CreateTransactions(ctx context.Context, txs []models.ImportedTransaction) error
	GetTransaction(ctx context.Context, tenantID, id uuid.UUID) (*models.ImportedTransaction, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]models.ImportedTransaction, error)
	MarkTransactionMatched(ctx context.Context, id, ledgerEntryID uuid.UUID, matchType string, at time.Time) error
	ClearTransactionMatch(ctx context.Context, id uuid.UUID) error

	FindPostedEntries(ctx context.Context, tenantID uuid.UUID, from, until time.Time) ([]models.LedgerEntry, error)
	GetLedgerEntry(ctx context.Context, tenantID, id uuid.UUID) (*models.LedgerEntry, error)
	SearchLedgerEntries(ctx context.Context, filter LedgerEntryFilter) ([]models.LedgerEntry, error)

	CreateMatch(ctx context.Context, match *models.ReconciliationMatch) error
	GetMatch(ctx context.Context, tenantID, id uuid.UUID) (*models.ReconciliationMatch, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
	ListBatchMatches(ctx context.Context, batchID uuid.UUID) ([]models.ReconciliationMatch, error)
	MatchedLedgerEntryIDs(ctx context.Context, tenantID uuid.UUID, ledgerEntryIDs []uuid.UUID) ([]uuid.UUID, error)

	CreateAuditLog(ctx context.Context, entry *models.MatchAuditLog) error

	// WithTx runs fn against a Repository bound to one database
	// transaction. Returning an error rolls everything back.
	WithTx(ctx context.Context, fn func(Repository) error) error
}
