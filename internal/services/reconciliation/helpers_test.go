package reconciliation_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"bank-reconciliation-backend/internal/config"
	"bank-reconciliation-backend/internal/models"
	"bank-reconciliation-backend/internal/repository"
	"bank-reconciliation-backend/internal/services/matching"
	"bank-reconciliation-backend/internal/services/reconciliation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// stepClock returns a clock that advances one second per call.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixture struct {
	svc     *reconciliation.ReconciliationService
	store   *repository.Store
	user    models.ActingUser
	account uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := config.InitDB(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}, config.LoggingConfig{Level: "error"})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	store := repository.NewStore(db)
	svc := reconciliation.NewReconciliationService(store, matching.DefaultConfig(),
		reconciliation.WithLogger(quietLogger),
		reconciliation.WithClock(stepClock(time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC))),
	)

	return &fixture{
		svc:     svc,
		store:   store,
		user:    models.ActingUser{ID: uuid.New(), TenantID: uuid.New()},
		account: uuid.New(),
	}
}

func (f *fixture) ledgerEntry(t *testing.T, date, amount, description, status string) models.LedgerEntry {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)

	entry := models.LedgerEntry{
		ID:          uuid.New(),
		TenantID:    f.user.TenantID,
		EntryNumber: "JE-" + date,
		Description: description,
		EntryDate:   d,
		TotalDebit:  decimal.RequireFromString(amount),
		TotalCredit: decimal.Zero,
		Status:      status,
		CreatedAt:   d,
	}
	require.NoError(t, f.store.DB().Create(&entry).Error)
	return entry
}

func (f *fixture) transactions(t *testing.T, batchID uuid.UUID) []models.ImportedTransaction {
	t.Helper()
	var txs []models.ImportedTransaction
	require.NoError(t, f.store.DB().Where("batch_id = ?", batchID).Order("transaction_date ASC, description ASC").Find(&txs).Error)
	return txs
}

func debitRow(date, amount, description string) reconciliation.ImportRow {
	return reconciliation.ImportRow{
		Date:        date,
		Description: description,
		Debit:       decimal.RequireFromString(amount),
	}
}

func entryIDs(entries []models.LedgerEntry) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func reconciliationServiceWithThreshold(f *fixture, threshold float64) *reconciliation.ReconciliationService {
	return reconciliation.NewReconciliationService(f.store, matching.DefaultConfig(),
		reconciliation.WithLogger(quietLogger),
		reconciliation.WithClock(stepClock(time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC))),
		reconciliation.WithAutoMatchThreshold(threshold),
	)
}
