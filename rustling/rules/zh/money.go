package zh

import (
	"github.com/thadguidry/rustling-go/rustling/rules"
	"github.com/thadguidry/rustling-go/rustling/values"
)

// buildMoneyRules registers the amount-of-money grammar. Like percentage,
// not present in the retrieved zh.rs fragment; grounded on the value
// domain's AmountOfMoneyValue description and the numeral infrastructure.
func buildMoneyRules(b *rules.RuleSetBuilder) {
	unit := func(id, pattern, code string) {
		b.Add(rules.Rule2(id,
			rules.P(rules.IsNumber(nil)),
			rules.T(rules.NewTerminal(pattern)),
			func(m []rules.SlotMatch) (values.Value, error) {
				n, _ := numberOf(m[0].Value)
				return values.NewAmountOfMoneyValue(n, code), nil
			}))
	}
	unit("<number> yuan (块)", `块钱?|塊錢?`, "CNY")
	unit("<number> yuan (元)", `元`, "CNY")
	unit("<number> RMB", `人民币|人民幣`, "CNY")
	unit("<number> dollars", `美元|美金|刀`, "USD")
	unit("<number> euros", `欧元|歐元`, "EUR")
}
