package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	BatchStatusProcessing = "processing"
	BatchStatusCompleted  = "completed"
	BatchStatusFailed     = "failed"
)

const (
	MatchTypeManual    = "manual"
	MatchTypeAutomatic = "automatic"
)

// ImportBatch is one uploaded bank statement.
type ImportBatch struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID              uuid.UUID  `gorm:"type:uuid;index" json:"tenant_id"`
	BankAccountID         uuid.UUID  `gorm:"type:uuid;index" json:"bank_account_id"`
	FileName              string     `json:"file_name"`
	FileSize              int64      `json:"file_size"`
	TotalTransactions     int        `json:"total_transactions"`
	UnmatchedTransactions int        `json:"unmatched_transactions"`
	Status                string     `gorm:"index" json:"status"`
	FailureReason         string     `json:"failure_reason,omitempty"`
	ImportedBy            uuid.UUID  `gorm:"type:uuid" json:"imported_by"`
	StartedAt             time.Time  `json:"started_at"`
	CompletedAt           *time.Time `json:"completed_at,omitempty"`
	CreatedAt             time.Time  `gorm:"index" json:"created_at"`
}

// ReconciliationMatch pairs one imported transaction with one ledger entry.
// The unique index keeps a single active match per transaction; removing a
// match deletes the row.
type ReconciliationMatch struct {
	ID                    uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID              uuid.UUID                   `gorm:"type:uuid;index" json:"tenant_id"`
	ImportedTransactionID uuid.UUID                   `gorm:"type:uuid;uniqueIndex" json:"imported_transaction_id"`
	LedgerEntryID         uuid.UUID                   `gorm:"type:uuid;index" json:"ledger_entry_id"`
	MatchAmount           decimal.Decimal             `gorm:"type:decimal(20,2)" json:"match_amount"`
	MatchType             string                      `json:"match_type"`
	Confidence            float64                     `json:"confidence"`
	Reasons               datatypes.JSONSlice[string] `json:"reasons"`
	MatchedBy             uuid.UUID                   `gorm:"type:uuid" json:"matched_by"`
	Notes                 string                      `json:"notes,omitempty"`
	CreatedAt             time.Time                   `json:"created_at"`
}
