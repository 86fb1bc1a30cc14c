package disambig

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thadguidry/rustling-go/rustling/rules"
	"github.com/thadguidry/rustling-go/rustling/values"
	"github.com/thadguidry/rustling-go/rustling/weights"
)

func integerItem(start, end int, v int64, ruleID string, seq int) rules.Item {
	return rules.Item{Start: start, End: end, Value: values.NewIntegerValue(v), RuleID: ruleID, RuleSeq: seq}
}

func TestFilterAndSelectPicksLongestNonOverlappingSpan(t *testing.T) {
	items := []rules.Item{
		integerItem(0, 2, 12, "short", 0),
		integerItem(0, 4, 1234, "long", 1),
	}
	selected := FilterAndSelect(items, Options{}, weights.DefaultStore)
	require.Len(t, selected, 1)
	require.Equal(t, "long", selected[0].RuleID)
}

func TestFilterAndSelectKeepsExactSpanTies(t *testing.T) {
	items := []rules.Item{
		integerItem(0, 2, 12, "a", 0),
		integerItem(0, 2, 12, "b", 1),
	}
	selected := FilterAndSelect(items, Options{}, weights.DefaultStore)
	require.Len(t, selected, 2)
}

func TestFilterAndSelectDropsLatentByDefault(t *testing.T) {
	latent := rules.Item{
		Start: 0, End: 1,
		Value:  values.NewDatetime(nil, values.FormTimeOfDay).WithLatent(true),
		RuleID: "latent-time",
	}
	selected := FilterAndSelect([]rules.Item{latent}, Options{}, weights.DefaultStore)
	require.Empty(t, selected)

	selected = FilterAndSelect([]rules.Item{latent}, Options{AllowLatent: true}, weights.DefaultStore)
	require.Len(t, selected, 1)
}

func TestFilterAndSelectHonorsDimensionFilter(t *testing.T) {
	number := integerItem(0, 2, 5, "number", 0)
	opts := Options{Dimensions: map[values.OutputKind]bool{values.OutputDuration: true}}
	selected := FilterAndSelect([]rules.Item{number}, opts, weights.DefaultStore)
	require.Empty(t, selected)
}

func TestFilterAndSelectBreaksTiesByWeight(t *testing.T) {
	items := []rules.Item{
		integerItem(0, 2, 1, "low", 0),
		integerItem(0, 2, 2, "high", 1),
	}
	// Exact-span ties coexist regardless of weight, but the sort that runs
	// before selection still orders them by weight first.
	store := weightStoreFunc(func(id string) float64 {
		if id == "high" {
			return 2.0
		}
		return 1.0
	})
	selected := FilterAndSelect(items, Options{}, store)
	require.NotEmpty(t, selected)
	require.Equal(t, "high", selected[0].RuleID)
}

type weightStoreFunc func(ruleID string) float64

func (f weightStoreFunc) Weight(ruleID string) float64 { return f(ruleID) }
