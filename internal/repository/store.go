package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Store is the gorm implementation of Repository. Each embedded repository
// owns the queries of one table.
type Store struct {
	*ImportBatchRepository
	*BankTransactionRepository
	*LedgerEntryRepository
	*MatchRepository
	*AuditLogRepository
	db *gorm.DB
}

var _ Repository = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{
		ImportBatchRepository:     NewImportBatchRepository(db),
		BankTransactionRepository: NewBankTransactionRepository(db),
		LedgerEntryRepository:     NewLedgerEntryRepository(db),
		MatchRepository:           NewMatchRepository(db),
		AuditLogRepository:        NewAuditLogRepository(db),
		db:                        db,
	}
}

func (s *Store) WithTx(ctx context.Context, fn func(Repository) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// DB exposes the underlying connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
