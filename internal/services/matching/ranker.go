package matching

import "sort"

type Ranker struct {
	config Config
}

func NewRanker(config Config) *Ranker {
	return &Ranker{config: config}
}

// Rank keeps results scoring strictly above MinConfidence, orders them by
// descending confidence and returns at most MaxSuggestions. Equal scores
// prefer the entry dated closest to the transaction.
func (r *Ranker) Rank(results []Result) []Result {
	kept := make([]Result, 0, len(results))
	for _, res := range results {
		if res.Confidence > r.config.MinConfidence {
			kept = append(kept, res)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Confidence != kept[j].Confidence {
			return kept[i].Confidence > kept[j].Confidence
		}
		if kept[i].DaysApart != kept[j].DaysApart {
			return kept[i].DaysApart < kept[j].DaysApart
		}
		return kept[i].LedgerEntryID.String() < kept[j].LedgerEntryID.String()
	})

	if r.config.MaxSuggestions > 0 && len(kept) > r.config.MaxSuggestions {
		kept = kept[:r.config.MaxSuggestions]
	}
	return kept
}
