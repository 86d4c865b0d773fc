package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	LedgerStatusDraft    = "draft"
	LedgerStatusPosted   = "posted"
	LedgerStatusReversed = "reversed"
)

// LedgerEntry is a journal entry owned by bookkeeping. Reconciliation only
// reads it.
type LedgerEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID    uuid.UUID       `gorm:"type:uuid;index" json:"tenant_id"`
	EntryNumber string          `gorm:"index" json:"entry_number"`
	Description string          `json:"description"`
	EntryDate   time.Time       `gorm:"index" json:"entry_date"`
	Reference   *string         `json:"reference,omitempty"`
	TotalDebit  decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_debit"`
	TotalCredit decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_credit"`
	Status      string          `gorm:"index" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Amount is the total debit when non-zero, otherwise the total credit.
func (e *LedgerEntry) Amount() decimal.Decimal {
	if !e.TotalDebit.IsZero() {
		return e.TotalDebit
	}
	return e.TotalCredit
}
