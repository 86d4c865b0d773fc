package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImportedTransaction is one row of an imported bank statement.
// Matched is true exactly when MatchedLedgerEntryID is set.
type ImportedTransaction struct {
	ID                   uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID             uuid.UUID           `gorm:"type:uuid;index" json:"tenant_id"`
	BatchID              uuid.UUID           `gorm:"type:uuid;index" json:"batch_id"`
	BankAccountID        uuid.UUID           `gorm:"type:uuid;index" json:"bank_account_id"`
	TransactionDate      time.Time           `gorm:"column:transaction_date;index" json:"transaction_date"`
	Description          string              `json:"description"`
	ReferenceNumber      string              `json:"reference_number,omitempty"`
	DebitAmount          decimal.NullDecimal `gorm:"type:decimal(20,2)" json:"debit_amount"`
	CreditAmount         decimal.NullDecimal `gorm:"type:decimal(20,2)" json:"credit_amount"`
	BalanceAfter         decimal.NullDecimal `gorm:"type:decimal(20,2)" json:"balance_after"`
	Matched              bool                `gorm:"default:false;index" json:"matched"`
	MatchedLedgerEntryID *uuid.UUID          `gorm:"type:uuid" json:"matched_ledger_entry_id,omitempty"`
	MatchType            *string             `json:"match_type,omitempty"`
	MatchedAt            *time.Time          `json:"matched_at,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
}

// Amount is the debit amount when non-zero, otherwise the credit amount.
func (t *ImportedTransaction) Amount() decimal.Decimal {
	if t.DebitAmount.Valid && !t.DebitAmount.Decimal.IsZero() {
		return t.DebitAmount.Decimal
	}
	if t.CreditAmount.Valid {
		return t.CreditAmount.Decimal
	}
	return decimal.Zero
}
