package repository

import (
	"context"

	"bank-reconciliation-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) CreateMatch(ctx context.Context, match *models.ReconciliationMatch) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *MatchRepository) GetMatch(ctx context.Context, tenantID, id uuid.UUID) (*models.ReconciliationMatch, error) {
	var match models.ReconciliationMatch
	err := r.db.WithContext(ctx).First(&match, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &match, nil
}

func (r *MatchRepository) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ReconciliationMatch{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListBatchMatches returns the matches of every transaction in a batch,
// oldest first.
func (r *MatchRepository) ListBatchMatches(ctx context.Context, batchID uuid.UUID) ([]models.ReconciliationMatch, error) {
	var matches []models.ReconciliationMatch
	batchTxIDs := r.db.Model(&models.ImportedTransaction{}).
		Select("id").
		Where("batch_id = ?", batchID)

	err := r.db.WithContext(ctx).
		Where("imported_transaction_id IN (?)", batchTxIDs).
		Order("created_at ASC").
		Find(&matches).Error
	return matches, err
}

// MatchedLedgerEntryIDs returns the subset of ledgerEntryIDs that already
// back an active match, in any batch of the tenant.
func (r *MatchRepository) MatchedLedgerEntryIDs(ctx context.Context, tenantID uuid.UUID, ledgerEntryIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(ledgerEntryIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.ReconciliationMatch{}).
		Distinct("ledger_entry_id").
		Where("tenant_id = ? AND ledger_entry_id IN ?", tenantID, ledgerEntryIDs).
		Pluck("ledger_entry_id", &ids).Error
	return ids, err
}
