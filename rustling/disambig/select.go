package disambig

import (
	"sort"

	"github.com/thadguidry/rustling-go/rustling/rules"
	"github.com/thadguidry/rustling-go/rustling/values"
	"github.com/thadguidry/rustling-go/rustling/weights"
)

func isLatent(v values.Value) bool {
	switch vv := v.(type) {
	case values.Datetime:
		return vv.Latent
	case values.TemperatureValue:
		return vv.Latent
	default:
		return false
	}
}

// FilterAndSelect runs §4.3 steps 1-3: drop latent items unless requested,
// drop items outside the requested dimension set, then greedily pick a
// maximum-coverage non-overlapping subset of what's left.
func FilterAndSelect(items []rules.Item, opts Options, store weights.Store) []rules.Item {
	if store == nil {
		store = weights.DefaultStore
	}

	var candidates []rules.Item
	for _, it := range items {
		if !opts.AllowLatent && isLatent(it.Value) {
			continue
		}
		if !opts.wantsFamily(it.Value.Kind()) {
			continue
		}
		candidates = append(candidates, it)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		lenA, lenB := a.End-a.Start, b.End-b.Start
		if lenA != lenB {
			return lenA > lenB
		}
		wa, wb := store.Weight(a.RuleID), store.Weight(b.RuleID)
		if wa != wb {
			return wa > wb
		}
		if a.RulePriority != b.RulePriority {
			return a.RulePriority > b.RulePriority
		}
		return a.RuleSeq < b.RuleSeq
	})

	type span struct{ start, end int }
	occupied := make([]span, 0, len(candidates))
	var selected []rules.Item
	for _, cand := range candidates {
		rejected := false
		for _, s := range occupied {
			if s.start == cand.Start && s.end == cand.End {
				// Exact span tie: §4.3 step 3, "if two spans remain tied,
				// keep both" — this one coexists with the one already
				// occupying it.
				continue
			}
			if cand.Start < s.end && s.start < cand.End {
				rejected = true
				break
			}
		}
		if rejected {
			continue
		}
		selected = append(selected, cand)
		occupied = append(occupied, span{cand.Start, cand.End})
	}
	return selected
}
