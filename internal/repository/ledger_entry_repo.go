package repository

import (
	"context"
	"strings"
	"time"

	"bank-reconciliation-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LedgerEntryRepository struct {
	db *gorm.DB
}

func NewLedgerEntryRepository(db *gorm.DB) *LedgerEntryRepository {
	return &LedgerEntryRepository{db: db}
}

// FindPostedEntries returns posted entries dated in [from, until).
func (r *LedgerEntryRepository) FindPostedEntries(ctx context.Context, tenantID uuid.UUID, from, until time.Time) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Where("status = ?", models.LedgerStatusPosted).
		Where("entry_date >= ? AND entry_date < ?", from, until).
		Order("entry_date ASC, id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *LedgerEntryRepository) GetLedgerEntry(ctx context.Context, tenantID, id uuid.UUID) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &entry, nil
}

// SearchLedgerEntries backs the manual-match picker. Empty filter fields
// are ignored.
func (r *LedgerEntryRepository) SearchLedgerEntries(ctx context.Context, filter LedgerEntryFilter) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry

	query := r.db.WithContext(ctx).Model(&models.LedgerEntry{}).
		Where("tenant_id = ?", filter.TenantID)

	if filter.Query != "" {
		like := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(description) LIKE ? OR LOWER(entry_number) LIKE ?", like, like)
	}
	if filter.Amount.IsPositive() {
		query = query.Where("total_debit = ? OR total_credit = ?", filter.Amount, filter.Amount)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	err := query.Order("entry_date DESC, id ASC").Find(&entries).Error
	return entries, err
}
