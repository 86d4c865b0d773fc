// Package reconciliation imports bank statements, suggests ledger matches
// for imported transactions and records accepted pairings.
package reconciliation

import (
	"errors"
	"log/slog"
	"time"

	"bank-reconciliation-backend/internal/repository"
	"bank-reconciliation-backend/internal/services/matching"
)

var (
	ErrNotFound       = repository.ErrNotFound
	ErrAlreadyMatched = repository.ErrAlreadyMatched
	ErrInvalidInput   = errors.New("invalid input")
)

type ReconciliationService struct {
	repo               repository.Repository
	policy             matching.Config
	scorer             *matching.Scorer
	ranker             *matching.Ranker
	autoMatchThreshold float64
	logger             *slog.Logger
	now                func() time.Time
}

type Option func(*ReconciliationService)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *ReconciliationService) {
		s.logger = logger
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *ReconciliationService) {
		s.now = now
	}
}

// WithAutoMatchThreshold sets the minimum confidence AutoMatchBatch accepts.
func WithAutoMatchThreshold(threshold float64) Option {
	return func(s *ReconciliationService) {
		s.autoMatchThreshold = threshold
	}
}

func NewReconciliationService(repo repository.Repository, policy matching.Config, opts ...Option) *ReconciliationService {
	s := &ReconciliationService{
		repo:               repo,
		policy:             policy,
		scorer:             matching.NewScorer(policy),
		ranker:             matching.NewRanker(policy),
		autoMatchThreshold: 0.9,
		logger:             slog.Default(),
		now:                time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
