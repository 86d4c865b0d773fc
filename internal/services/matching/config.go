// Package matching scores ledger entries against imported bank transactions
// and ranks the results into match suggestions.
//
// Every signal contributes a fixed number of points and a human-readable
// reason, so a reviewer can see why a suggestion was made:
//
//	cfg := matching.DefaultConfig()
//	scorer := matching.NewScorer(cfg)
//	ranked := matching.NewRanker(cfg).Rank(scorer.ScoreAll(tx, entries))
package matching

import "github.com/shopspring/decimal"

// Config holds the scoring weights and ranking policy.
type Config struct {
	AmountTolerance    decimal.Decimal // absolute difference counted as exact (0.01)
	RelativeTolerance  decimal.Decimal // fraction of the transaction amount counted as approximate (0.05)
	ExactAmountWeight  float64
	ApproxAmountWeight float64
	DescriptionWeight  float64
	ReferenceWeight    float64

	MinConfidence  float64 // suggestions must score strictly above this
	MaxSuggestions int
	WindowDays     int // candidate window on each side of the transaction date
}

// DefaultConfig returns the standard weights and policy.
func DefaultConfig() Config {
	return Config{
		AmountTolerance:    decimal.NewFromFloat(0.01),
		RelativeTolerance:  decimal.NewFromFloat(0.05),
		ExactAmountWeight:  0.6,
		ApproxAmountWeight: 0.3,
		DescriptionWeight:  0.3,
		ReferenceWeight:    0.1,
		MinConfidence:      0.2,
		MaxSuggestions:     5,
		WindowDays:         7,
	}
}
