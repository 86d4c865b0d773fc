package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	AuditActionMatch   = "match"
	AuditActionUnmatch = "unmatch"
)

type MatchAuditLog struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID      uuid.UUID         `gorm:"type:uuid;index" json:"tenant_id"`
	TransactionID uuid.UUID         `gorm:"type:uuid;index" json:"transaction_id"`
	Action        string            `json:"action"`
	PreviousEntry *uuid.UUID        `gorm:"type:uuid" json:"previous_entry,omitempty"`
	NewEntry      *uuid.UUID        `gorm:"type:uuid" json:"new_entry,omitempty"`
	MatchType     string            `json:"match_type,omitempty"`
	PerformedBy   uuid.UUID         `gorm:"type:uuid" json:"performed_by"`
	Reason        string            `json:"reason,omitempty"`
	Details       datatypes.JSONMap `json:"details,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}
