package repository

import (
	"bank-reconciliation-backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service touches. The ledger
// table belongs to bookkeeping; it is migrated here so a standalone
// deployment has somewhere to read from.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ImportBatch{},
		&models.ImportedTransaction{},
		&models.LedgerEntry{},
		&models.ReconciliationMatch{},
		&models.MatchAuditLog{},
	)
}
