package zh

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thadguidry/rustling-go/rustling/rules"
	"github.com/thadguidry/rustling-go/rustling/values"
)

// parseNumbers runs just the numeral grammar over text and returns every
// Integer/Float value any chart item resolved to, for asserting on the
// magnitude-composition invariant without pulling in disambiguation.
func parseNumbers(t *testing.T, text string) []values.Value {
	t.Helper()
	b := rules.NewRuleSetBuilder()
	buildNumberRules(b)
	ruleset, err := b.Build()
	require.NoError(t, err)

	items := rules.Parse(ruleset, text, nil)
	var out []values.Value
	for _, it := range items {
		out = append(out, it.Value)
	}
	return out
}

func TestMagnitudeComposition(t *testing.T) {
	cases := []struct {
		text string
		want int64
	}{
		{"三百二十二", 322},
		{"一千零五", 1005},
		{"两万三千", 23000},
		{"十二", 12},
		{"九十九", 99},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			found := false
			for _, v := range parseNumbers(t, c.text) {
				if iv, ok := v.(values.IntegerValue); ok && iv.Value == c.want {
					found = true
				}
			}
			require.True(t, found, "expected %d among parses of %q", c.want, c.text)
		})
	}
}

func TestNegativeNumeral(t *testing.T) {
	found := false
	for _, v := range parseNumbers(t, "负五") {
		if iv, ok := v.(values.IntegerValue); ok && iv.Value == -5 {
			found = true
		}
	}
	require.True(t, found, "expected -5 among parses of 负五")
}

func TestFewIsApproximate(t *testing.T) {
	found := false
	for _, v := range parseNumbers(t, "几") {
		if iv, ok := v.(values.IntegerValue); ok && iv.Precision == values.Approximate {
			found = true
		}
	}
	require.True(t, found, "expected an approximate integer among parses of 几")
}
