package repository

import (
	"context"
	"time"

	"bank-reconciliation-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImportBatchRepository struct {
	db *gorm.DB
}

func NewImportBatchRepository(db *gorm.DB) *ImportBatchRepository {
	return &ImportBatchRepository{db: db}
}

func (r *ImportBatchRepository) CreateBatch(ctx context.Context, batch *models.ImportBatch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

// CompleteBatch moves a processing batch to completed. Every imported row
// starts unmatched.
func (r *ImportBatchRepository) CompleteBatch(ctx context.Context, batchID uuid.UUID, total int, completedAt time.Time) error {
	return r.finish(ctx, batchID, map[string]interface{}{
		"status":                 models.BatchStatusCompleted,
		"total_transactions":     total,
		"unmatched_transactions": total,
		"completed_at":           completedAt,
	})
}

// FailBatch moves a processing batch to failed and records why.
func (r *ImportBatchRepository) FailBatch(ctx context.Context, batchID uuid.UUID, reason string, failedAt time.Time) error {
	return r.finish(ctx, batchID, map[string]interface{}{
		"status":                 models.BatchStatusFailed,
		"unmatched_transactions": 0,
		"failure_reason":         reason,
		"completed_at":           failedAt,
	})
}

func (r *ImportBatchRepository) finish(ctx context.Context, batchID uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.ImportBatch{}).
		Where("id = ? AND status = ?", batchID, models.BatchStatusProcessing).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBatchNotProcessing
	}
	return nil
}

func (r *ImportBatchRepository) GetBatch(ctx context.Context, tenantID, batchID uuid.UUID) (*models.ImportBatch, error) {
	var batch models.ImportBatch
	err := r.db.WithContext(ctx).First(&batch, "id = ? AND tenant_id = ?", batchID, tenantID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &batch, nil
}

// LatestBatch returns the most recently created batch of a bank account.
func (r *ImportBatchRepository) LatestBatch(ctx context.Context, tenantID, bankAccountID uuid.UUID) (*models.ImportBatch, error) {
	var batch models.ImportBatch
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND bank_account_id = ?", tenantID, bankAccountID).
		Order("created_at DESC").
		First(&batch).Error
	if err != nil {
		return nil, translate(err)
	}
	return &batch, nil
}

func (r *ImportBatchRepository) AdjustBatchUnmatched(ctx context.Context, batchID uuid.UUID, delta int) error {
	result := r.db.WithContext(ctx).Model(&models.ImportBatch{}).
		Where("id = ?", batchID).
		Update("unmatched_transactions", gorm.Expr("unmatched_transactions + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
