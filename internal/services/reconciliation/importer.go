package reconciliation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bank-reconciliation-backend/internal/models"
	"bank-reconciliation-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImportRow is one pre-parsed bank statement line.
type ImportRow struct {
	Date        string           `json:"date"`
	Description string           `json:"description"`
	Reference   string           `json:"reference"`
	Debit       decimal.Decimal  `json:"debit"`
	Credit      decimal.Decimal  `json:"credit"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
}

type ImportRequest struct {
	FileName string      `json:"file_name"`
	FileSize int64       `json:"file_size"`
	Rows     []ImportRow `json:"rows"`
}

const failBatchTimeout = 5 * time.Second

var statementDateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"01/02/2006",
	time.RFC3339,
}

// Import stores a parsed statement as one batch of unmatched transactions.
// Rows are not deduplicated against earlier imports. If the rows cannot be
// stored the batch is left failed with the reason and the error returned.
func (s *ReconciliationService) Import(ctx context.Context, user models.ActingUser, bankAccountID uuid.UUID, req ImportRequest) (*models.ImportBatch, error) {
	batchID := uuid.New()
	txs, err := buildTransactions(user, bankAccountID, batchID, req.Rows, s.now())
	if err != nil {
		return nil, err
	}

	startedAt := s.now()
	batch := &models.ImportBatch{
		ID:                batchID,
		TenantID:          user.TenantID,
		BankAccountID:     bankAccountID,
		FileName:          req.FileName,
		FileSize:          req.FileSize,
		TotalTransactions: len(txs),
		Status:            models.BatchStatusProcessing,
		ImportedBy:        user.ID,
		StartedAt:         startedAt,
		CreatedAt:         startedAt,
	}
	if err := s.repo.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("create import batch: %w", err)
	}

	var completedAt time.Time
	err = s.repo.WithTx(ctx, func(r repository.Repository) error {
		if err := r.CreateTransactions(ctx, txs); err != nil {
			return fmt.Errorf("insert %d transactions: %w", len(txs), err)
		}
		completedAt = s.now()
		return r.CompleteBatch(ctx, batch.ID, len(txs), completedAt)
	})
	if err != nil {
		s.logger.Error("statement import failed",
			"batch_id", batch.ID, "bank_account_id", bankAccountID, "rows", len(txs), "error", err)
		// outlives a cancelled request
		failCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), failBatchTimeout)
		defer cancel()
		if failErr := s.repo.FailBatch(failCtx, batch.ID, err.Error(), s.now()); failErr != nil {
			s.logger.Error("could not mark batch failed", "batch_id", batch.ID, "error", failErr)
		}
		return nil, fmt.Errorf("import batch %s: %w", batch.ID, err)
	}

	batch.Status = models.BatchStatusCompleted
	batch.UnmatchedTransactions = len(txs)
	batch.CompletedAt = &completedAt

	s.logger.Info("statement imported",
		"batch_id", batch.ID, "bank_account_id", bankAccountID, "file", req.FileName, "rows", len(txs))
	return batch, nil
}

func buildTransactions(user models.ActingUser, bankAccountID, batchID uuid.UUID, rows []ImportRow, createdAt time.Time) ([]models.ImportedTransaction, error) {
	txs := make([]models.ImportedTransaction, 0, len(rows))
	for i, row := range rows {
		date, err := parseStatementDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: unrecognised date %q", ErrInvalidInput, i+1, row.Date)
		}

		tx := models.ImportedTransaction{
			ID:              uuid.New(),
			TenantID:        user.TenantID,
			BatchID:         batchID,
			BankAccountID:   bankAccountID,
			TransactionDate: date,
			Description:     row.Description,
			ReferenceNumber: strings.TrimSpace(row.Reference),
			DebitAmount:     nullIfZero(row.Debit),
			CreditAmount:    nullIfZero(row.Credit),
			CreatedAt:       createdAt,
		}
		if row.Balance != nil {
			tx.BalanceAfter = decimal.NewNullDecimal(*row.Balance)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// parseStatementDate returns the calendar day at UTC midnight.
func parseStatementDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range statementDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return dateOnly(t), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func nullIfZero(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: !d.IsZero()}
}
