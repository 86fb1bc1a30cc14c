package zh

import "github.com/thadguidry/rustling-go/rustling/rules"

// BuildChineseRuleSet assembles every Chinese grammar rule (numerals,
// durations, cycles, temperatures, percentages, money, datetimes) into one
// rule set, mirroring the corpus's per-language rules_zh() entry point that
// concatenates its rules_* sub-lists.
func BuildChineseRuleSet() ([]*rules.Rule, error) {
	b := rules.NewRuleSetBuilder()
	buildNumberRules(b)
	buildDurationRules(b)
	buildCycleRules(b)
	buildTemperatureRules(b)
	buildPercentageRules(b)
	buildMoneyRules(b)
	buildDatetimeRules(b)
	return b.Build()
}
