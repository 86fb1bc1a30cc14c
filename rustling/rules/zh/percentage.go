package zh

import (
	"github.com/thadguidry/rustling-go/rustling/rules"
	"github.com/thadguidry/rustling-go/rustling/values"
)

// buildPercentageRules registers the percentage grammar. Not present in the
// retrieved zh.rs fragment (percentage/money rules live in a shared,
// non-language-specific rules file the pack didn't include); grounded
// instead on the value domain description and the numeral infrastructure
// already built, in the same terminal+predicate idiom as the other
// dimensions.
func buildPercentageRules(b *rules.RuleSetBuilder) {
	b.Add(rules.Rule2("percent of <number>",
		rules.T(rules.NewTerminal(`百分之`)),
		rules.P(rules.IsNumber(nil)),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := numberOf(m[1].Value)
			return values.NewPercentageValue(n), nil
		}))

	b.Add(rules.Rule2("<number> percent",
		rules.P(rules.IsNumber(nil)),
		rules.T(rules.NewTerminal(`%|percent`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := numberOf(m[0].Value)
			return values.NewPercentageValue(n), nil
		}))
}
