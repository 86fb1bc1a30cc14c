package zh

import (
	"github.com/thadguidry/rustling-go/rustling"
	"github.com/thadguidry/rustling-go/rustling/rules"
	"github.com/thadguidry/rustling-go/rustling/values"
)

func integerOf(v values.Value) (int64, bool) {
	iv, ok := v.(values.IntegerValue)
	return iv.Value, ok
}

// buildDurationRules registers the duration grammar (rules_duration):
// unit-of-duration terminals, <integer><unit> composition, and the half-X
// family, including the corpus's documented rounding conventions.
func buildDurationRules(b *rules.RuleSetBuilder) {
	unit := func(name, pattern string, g rustling.Grain) {
		b.Add(rules.Rule1(name+" (unit-of-duration)", rules.T(rules.NewTerminal(pattern)),
			func(m []rules.SlotMatch) (values.Value, error) { return values.NewUnitOfDurationValue(g), nil }))
	}
	unit("second", `秒(?:钟|鐘)?`, rustling.Second)
	unit("minute", `分(?:钟|鐘)?`, rustling.Minute)
	unit("hour", `小时|小時|鐘頭?`, rustling.Hour)
	unit("day", `天|日`, rustling.Day)
	unit("week", `周|週|礼拜|禮拜|星期`, rustling.Week)
	unit("month", `月`, rustling.Month)
	unit("year", `年`, rustling.Year)

	b.Add(rules.Rule2("<integer> <unit-of-duration>",
		rules.P(rules.IsInteger(func(values.IntegerValue) bool { return true })),
		rules.P(rules.IsUnitOfDuration()),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := integerOf(m[0].Value)
			uod := m[1].Value.(values.UnitOfDurationValue)
			return values.NewDurationValue(rustling.NewPeriod(rustling.NewPeriodComp(uod.Grain, n))), nil
		}))

	halfCycle := func(id, pattern string, g rustling.Grain, comp rustling.PeriodComp) {
		b.Add(rules.Rule2(id, rules.T(rules.NewTerminal(pattern)),
			rules.P(rules.IsCycle(func(c values.CycleValue) bool { return c.Grain == g })),
			func(m []rules.SlotMatch) (values.Value, error) {
				return values.NewDurationValue(rustling.NewPeriod(comp)), nil
			}))
	}
	halfCycle("half an hour", `半`, rustling.Hour, rustling.Minutes(30))
	halfCycle("half a month", `半个?`, rustling.Month, rustling.Days(15))
	halfCycle("half a year", `半`, rustling.Year, rustling.Months(6))

	// "integer and an half" for month/hour: "N个半月" = N months + 15 days,
	// "N个半小时" = N hours + 30 minutes.
	b.Add(rules.Rule3("integer and an half <cycle(month, hour)>",
		rules.P(rules.IsInteger(func(values.IntegerValue) bool { return true })),
		rules.T(rules.NewTerminal(`半`)),
		rules.P(rules.IsCycle(func(c values.CycleValue) bool { return c.Grain == rustling.Month || c.Grain == rustling.Hour })),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := integerOf(m[0].Value)
			cv := m[2].Value.(values.CycleValue)
			switch cv.Grain {
			case rustling.Month:
				return values.NewDurationValue(rustling.NewPeriod(rustling.Months(n))).Add(values.NewDurationValue(rustling.NewPeriod(rustling.Days(15)))), nil
			case rustling.Hour:
				return values.NewDurationValue(rustling.NewPeriod(rustling.Hours(n))).Add(values.NewDurationValue(rustling.NewPeriod(rustling.Minutes(30)))), nil
			default:
				return nil, rustling.RejectAction("unreachable cycle grain")
			}
		}))

	// "integer and an half" for year/week/minute. The corpus's match arm
	// list for this rule admits Grain::Second through its cycle_check! but
	// the match itself never handles Second — reproduced as-is, so
	// "N秒半" always falls through to the reject branch.
	b.Add(rules.Rule3("integer and an half <cycle(year, week, minute)>",
		rules.P(rules.IsInteger(func(values.IntegerValue) bool { return true })),
		rules.P(rules.IsCycle(func(c values.CycleValue) bool {
			return c.Grain == rustling.Year || c.Grain == rustling.Week || c.Grain == rustling.Minute || c.Grain == rustling.Second
		})),
		rules.T(rules.NewTerminal(`半`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := integerOf(m[0].Value)
			cv := m[1].Value.(values.CycleValue)
			switch cv.Grain {
			case rustling.Year:
				return values.NewDurationValue(rustling.NewPeriod(rustling.Years(n))).Add(values.NewDurationValue(rustling.NewPeriod(rustling.Months(6)))), nil
			case rustling.Week:
				// Documented convention: "half a week" composes as n
				// weeks + 3 days, not n weeks + 3.5 days — Period never
				// carries fractional components, so the corpus rounds
				// down rather than reaching for a finer grain.
				return values.NewDurationValue(rustling.NewPeriod(rustling.Weeks(n))).Add(values.NewDurationValue(rustling.NewPeriod(rustling.Days(3)))), nil
			case rustling.Minute:
				// Documented convention: "half a minute" composes as n
				// minutes + 60 seconds (a full extra minute), not 30
				// seconds — reproduced as the corpus has it rather than
				// silently corrected.
				return values.NewDurationValue(rustling.NewPeriod(rustling.Minutes(n))).Add(values.NewDurationValue(rustling.NewPeriod(rustling.Seconds(60)))), nil
			default:
				return nil, rustling.RejectAction("half-second composition is not handled by this rule's match arms")
			}
		}))
}

// buildCycleRules registers the cycle grammar (rules_cycle): bare grain
// words used as a cyclic reference point rather than a quantity unit.
func buildCycleRules(b *rules.RuleSetBuilder) {
	cyc := func(name, pattern string, g rustling.Grain) {
		b.Add(rules.Rule1(name+" (cycle)", rules.T(rules.NewTerminal(pattern)),
			func(m []rules.SlotMatch) (values.Value, error) { return values.NewCycleValue(g), nil }))
	}
	cyc("second", `秒(?:钟|鐘)?`, rustling.Second)
	cyc("minute", `分(?:钟|鐘)?`, rustling.Minute)
	cyc("hour", `小时|小時|鐘頭?`, rustling.Hour)
	cyc("day", `天|日`, rustling.Day)
	cyc("week", `周|週|礼拜|禮拜|星期`, rustling.Week)
	cyc("month", `月`, rustling.Month)
	cyc("year", `年`, rustling.Year)
	cyc("quarter", `季度`, rustling.Quarter)
}
