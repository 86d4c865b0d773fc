package repository

import (
	"context"
	"strings"
	"time"

	"bank-reconciliation-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const insertBatchSize = 100

type BankTransactionRepository struct {
	db *gorm.DB
}

func NewBankTransactionRepository(db *gorm.DB) *BankTransactionRepository {
	return &BankTransactionRepository{db: db}
}

// CreateTransactions bulk inserts rows. Callers wanting all-or-nothing
// semantics run it inside WithTx.
func (r *BankTransactionRepository) CreateTransactions(ctx context.Context, txs []models.ImportedTransaction) error {
	if len(txs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(txs, insertBatchSize).Error
}

func (r *BankTransactionRepository) GetTransaction(ctx context.Context, tenantID, id uuid.UUID) (*models.ImportedTransaction, error) {
	var tx models.ImportedTransaction
	err := r.db.WithContext(ctx).First(&tx, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &tx, nil
}

// ListTransactions returns rows ordered by id, starting after the cursor.
func (r *BankTransactionRepository) ListTransactions(ctx context.Context, filter TransactionFilter) ([]models.ImportedTransaction, error) {
	var txs []models.ImportedTransaction

	query := r.db.WithContext(ctx).
		Where("tenant_id = ? AND batch_id = ?", filter.TenantID, filter.BatchID).
		Order("id ASC")

	switch filter.Status {
	case FilterMatched:
		query = query.Where("matched = ?", true)
	case FilterUnmatched:
		query = query.Where("matched = ?", false)
	}

	if filter.Cursor != nil {
		query = query.Where("id > ?", *filter.Cursor)
	}

	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(description) LIKE ? OR LOWER(reference_number) LIKE ?", like, like)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	err := query.Find(&txs).Error
	return txs, err
}

// MarkTransactionMatched sets the match state only if the row is currently
// unmatched, so two concurrent matches cannot both win.
func (r *BankTransactionRepository) MarkTransactionMatched(ctx context.Context, id, ledgerEntryID uuid.UUID, matchType string, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.ImportedTransaction{}).
		Where("id = ? AND matched = ?", id, false).
		Updates(map[string]interface{}{
			"matched":                 true,
			"matched_ledger_entry_id": ledgerEntryID,
			"match_type":              matchType,
			"matched_at":              at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyMatched
	}
	return nil
}

func (r *BankTransactionRepository) ClearTransactionMatch(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.ImportedTransaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"matched":                 false,
			"matched_ledger_entry_id": nil,
			"match_type":              nil,
			"matched_at":              nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
