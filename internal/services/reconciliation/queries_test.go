package reconciliation_test

import (
	"context"
	"testing"

	"bank-reconciliation-backend/internal/models"
	"bank-reconciliation-backend/internal/services/reconciliation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importFive(t *testing.T, f *fixture) *models.ImportBatch {
	t.Helper()
	batch, err := f.svc.Import(context.Background(), f.user, f.account, reconciliation.ImportRequest{
		Rows: []reconciliation.ImportRow{
			debitRow("2024-01-10", "50.00", "ACME FUEL"),
			debitRow("2024-01-11", "20.00", "Parking"),
			debitRow("2024-01-12", "30.00", "Tolls"),
			debitRow("2024-01-13", "40.00", "Lunch"),
			debitRow("2024-01-14", "60.00", "ACME Hardware"),
		},
	})
	require.NoError(t, err)
	return batch
}

func TestListTransactions_Pages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	batch := importFive(t, f)

	seen := map[uuid.UUID]bool{}
	cursor := ""
	pages := 0
	for {
		page, err := f.svc.ListTransactions(ctx, f.user, batch.ID, reconciliation.ListQuery{Cursor: cursor, Limit: 2})
		require.NoError(t, err)
		pages++
		for _, tx := range page.Items {
			assert.False(t, seen[tx.ID], "transaction %s listed twice", tx.ID)
			seen[tx.ID] = true
		}
		if !page.HasMore {
			assert.Empty(t, page.NextCursor)
			break
		}
		require.Len(t, page.Items, 2)
		cursor = page.NextCursor
	}

	assert.Equal(t, 3, pages)
	assert.Len(t, seen, 5)
}

func TestListTransactions_Filters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	batch := importFive(t, f)
	txs := f.transactions(t, batch.ID)
	entry := f.ledgerEntry(t, "2024-01-10", "50.00", "acme fuel", models.LedgerStatusPosted)

	_, err := f.svc.CreateManualMatch(ctx, f.user, reconciliation.CreateMatchRequest{
		ImportedTransactionID: txs[0].ID, LedgerEntryID: entry.ID, MatchAmount: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	matched, err := f.svc.ListTransactions(ctx, f.user, batch.ID, reconciliation.ListQuery{Status: "matched"})
	require.NoError(t, err)
	require.Len(t, matched.Items, 1)
	assert.Equal(t, txs[0].ID, matched.Items[0].ID)

	unmatched, err := f.svc.ListTransactions(ctx, f.user, batch.ID, reconciliation.ListQuery{Status: "unmatched"})
	require.NoError(t, err)
	assert.Len(t, unmatched.Items, 4)

	all, err := f.svc.ListTransactions(ctx, f.user, batch.ID, reconciliation.ListQuery{Status: "all"})
	require.NoError(t, err)
	assert.Len(t, all.Items, 5)
	assert.False(t, all.HasMore)

	acme, err := f.svc.ListTransactions(ctx, f.user, batch.ID, reconciliation.ListQuery{Search: "acme"})
	require.NoError(t, err)
	assert.Len(t, acme.Items, 2)

	none, err := f.svc.ListTransactions(ctx, f.user, batch.ID, reconciliation.ListQuery{Search: "nothing like this"})
	require.NoError(t, err)
	assert.NotNil(t, none.Items)
	assert.Empty(t, none.Items)
}

func TestListTransactions_RejectsBadInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	batch := importFive(t, f)

	_, err := f.svc.ListTransactions(ctx, f.user, batch.ID, reconciliation.ListQuery{Status: "pending"})
	assert.ErrorIs(t, err, reconciliation.ErrInvalidInput)

	_, err = f.svc.ListTransactions(ctx, f.user, batch.ID, reconciliation.ListQuery{Cursor: "not-a-uuid"})
	assert.ErrorIs(t, err, reconciliation.ErrInvalidInput)

	_, err = f.svc.ListTransactions(ctx, f.user, uuid.New(), reconciliation.ListQuery{})
	assert.ErrorIs(t, err, reconciliation.ErrNotFound)
}

func TestGetBatch_TenantScoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	batch := importFive(t, f)

	stored, err := f.svc.GetBatch(ctx, f.user, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BatchStatusCompleted, stored.Status)
	assert.Equal(t, 5, stored.TotalTransactions)
	assert.Equal(t, 5, stored.UnmatchedTransactions)
	assert.NotNil(t, stored.CompletedAt)

	_, err = f.svc.GetBatch(ctx, models.ActingUser{ID: f.user.ID, TenantID: uuid.New()}, batch.ID)
	assert.ErrorIs(t, err, reconciliation.ErrNotFound)
}

func TestSearchLedgerEntries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	fuel := f.ledgerEntry(t, "2024-01-10", "50.00", "ACME fuel card", models.LedgerStatusPosted)
	f.ledgerEntry(t, "2024-01-11", "50.00", "office rent", models.LedgerStatusPosted)
	f.ledgerEntry(t, "2024-01-12", "75.00", "acme refill", models.LedgerStatusDraft)

	byText, err := f.svc.SearchLedgerEntries(ctx, f.user, reconciliation.LedgerSearch{Query: "acme"})
	require.NoError(t, err)
	assert.Len(t, byText, 2)

	posted, err := f.svc.SearchLedgerEntries(ctx, f.user, reconciliation.LedgerSearch{
		Query:    "acme",
		Statuses: []string{models.LedgerStatusPosted},
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{fuel.ID}, entryIDs(posted))

	byAmount, err := f.svc.SearchLedgerEntries(ctx, f.user, reconciliation.LedgerSearch{Amount: decimal.NewFromInt(50)})
	require.NoError(t, err)
	assert.Len(t, byAmount, 2)

	empty, err := f.svc.SearchLedgerEntries(ctx, models.ActingUser{TenantID: uuid.New()}, reconciliation.LedgerSearch{})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
