package models

import "github.com/google/uuid"

// ActingUser identifies who performs an operation and on behalf of which
// tenant. It is resolved once per request and passed explicitly.
type ActingUser struct {
	ID       uuid.UUID
	TenantID uuid.UUID
}
