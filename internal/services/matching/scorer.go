package matching

import (
	"math"
	"strings"

	"bank-reconciliation-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ReasonExactAmount  = "exact amount match"
	ReasonApproxAmount = "approximate amount match"
	ReasonDescription  = "description match"
	ReasonReference    = "reference match"
)

var maxConfidence = decimal.NewFromInt(1)

// Result is the score of one ledger entry against one transaction.
type Result struct {
	LedgerEntryID uuid.UUID `json:"ledger_entry_id"`
	Confidence    float64   `json:"confidence"`
	Reasons       []string  `json:"reasons"`
	DaysApart     int       `json:"days_apart"`
}

type Scorer struct {
	config Config
}

func NewScorer(config Config) *Scorer {
	return &Scorer{config: config}
}

// Score computes the confidence in [0, 1] that entry is the ledger side of tx.
// Points are summed as decimals so that all signals together clamp to
// exactly 1.
//
// Descriptions match when, trimmed and lower-cased, either contains the
// other. A description that is empty after trimming never matches.
// References match only when both are non-empty and equal.
func (s *Scorer) Score(tx *models.ImportedTransaction, entry *models.LedgerEntry) Result {
	result := Result{
		LedgerEntryID: entry.ID,
		Reasons:       []string{},
		DaysApart:     daysApart(tx, entry),
	}
	points := decimal.Zero

	txAmount := tx.Amount()
	diff := entry.Amount().Sub(txAmount).Abs()
	switch {
	case diff.LessThan(s.config.AmountTolerance):
		points = points.Add(decimal.NewFromFloat(s.config.ExactAmountWeight))
		result.Reasons = append(result.Reasons, ReasonExactAmount)
	case !txAmount.IsZero() && diff.Div(txAmount.Abs()).LessThan(s.config.RelativeTolerance):
		// zero-amount transactions only ever match exactly
		points = points.Add(decimal.NewFromFloat(s.config.ApproxAmountWeight))
		result.Reasons = append(result.Reasons, ReasonApproxAmount)
	}

	if descriptionsOverlap(tx.Description, entry.Description) {
		points = points.Add(decimal.NewFromFloat(s.config.DescriptionWeight))
		result.Reasons = append(result.Reasons, ReasonDescription)
	}

	if tx.ReferenceNumber != "" && entry.Reference != nil && *entry.Reference == tx.ReferenceNumber {
		points = points.Add(decimal.NewFromFloat(s.config.ReferenceWeight))
		result.Reasons = append(result.Reasons, ReasonReference)
	}

	if points.GreaterThan(maxConfidence) {
		points = maxConfidence
	}
	result.Confidence, _ = points.Float64()
	return result
}

// ScoreAll scores every entry, preserving input order.
func (s *Scorer) ScoreAll(tx *models.ImportedTransaction, entries []models.LedgerEntry) []Result {
	results := make([]Result, 0, len(entries))
	for i := range entries {
		results = append(results, s.Score(tx, &entries[i]))
	}
	return results
}

// descriptionsOverlap reports a case-insensitive substring match of the
// trimmed descriptions; empty strings are not substrings of anything here.
func descriptionsOverlap(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func daysApart(tx *models.ImportedTransaction, entry *models.LedgerEntry) int {
	return int(math.Abs(math.Round(tx.TransactionDate.Sub(entry.EntryDate).Hours() / 24)))
}
