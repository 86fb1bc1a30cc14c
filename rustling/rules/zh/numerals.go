// Package zh builds the Chinese grammar: numerals, durations, cycles,
// datetimes, temperatures, money, and percentages, each grounded on
// original_source/rules/src/zh.rs and expressed through the rules package's
// Rule1..Rule5/Terminal/Predicate idiom.
package zh

import (
	"strconv"
	"strings"

	"github.com/thadguidry/rustling-go/rustling"
	"github.com/thadguidry/rustling-go/rustling/rules"
	"github.com/thadguidry/rustling-go/rustling/values"
)

var digitWords = map[string]int64{
	"〇": 0, "零": 0, "一": 1, "壹": 1, "二": 2, "两": 2, "兩": 2, "贰": 2,
	"三": 3, "叁": 3, "四": 4, "肆": 4, "五": 5, "伍": 5, "六": 6, "陆": 6,
	"七": 7, "柒": 7, "八": 8, "捌": 8, "九": 9, "玖": 9, "十": 10, "拾": 10,
}

func numberOf(v values.Value) (float64, bool) {
	switch n := v.(type) {
	case values.IntegerValue:
		return float64(n.Value), true
	case values.FloatValue:
		return n.Value, true
	default:
		return 0, false
	}
}

// buildNumberRules registers the numeral grammar (rules_numbers in the
// source: magnitude words, composition, decimals, signs, suffixes).
func buildNumberRules(b *rules.RuleSetBuilder) {
	b.Add(rules.Rule1("integer (0..10)",
		rules.T(rules.NewTerminal(`(〇|零|一|二|两|兩|三|四|五|六|七|八|九|十|壹|贰|叁|肆|伍|陆|柒|捌|玖|拾)(?:个|個)?`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, ok := digitWords[m[0].Groups[1]]
			if !ok {
				return nil, rustling.RejectAction("unknown digit word")
			}
			return values.NewIntegerValueWithGrain(n, 1), nil
		}))

	b.Add(rules.Rule1("integer (numeric)",
		rules.T(rules.NewTerminal(`(\d{1,18})`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, err := strconv.ParseInt(m[0].Groups[1], 10, 64)
			if err != nil {
				return nil, rustling.RejectAction("bad integer literal")
			}
			return values.NewIntegerValue(n), nil
		}))

	b.Add(rules.Rule1("decimal number",
		rules.T(rules.NewTerminal(`(\d*\.\d+)`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			f, err := strconv.ParseFloat(m[0].Groups[1], 64)
			if err != nil {
				return nil, rustling.RejectAction("bad decimal literal")
			}
			return values.NewFloatValue(f), nil
		}))

	b.Add(rules.Rule1("decimal with thousands separator",
		rules.T(rules.NewTerminal(`(\d+(?:,\d\d\d)+\.\d+)`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			f, err := strconv.ParseFloat(strings.ReplaceAll(m[0].Groups[1], ",", ""), 64)
			if err != nil {
				return nil, rustling.RejectAction("bad thousands-separated decimal")
			}
			return values.NewFloatValue(f), nil
		}))

	b.Add(rules.Rule1("integer with thousands separator",
		rules.T(rules.NewTerminal(`(\d{1,3}(?:,\d\d\d){1,5})`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, err := strconv.ParseInt(strings.ReplaceAll(m[0].Groups[1], ",", ""), 10, 64)
			if err != nil {
				return nil, rustling.RejectAction("bad thousands-separated integer")
			}
			return values.NewIntegerValue(n), nil
		}))

	b.Add(rules.Rule2("numbers prefixed with -, negative or minus",
		rules.T(rules.NewTerminal(`-|负\s?|負\s?`)),
		rules.P(rules.IsNumber(func(_ float64, prefixed, _ bool) bool { return !prefixed })),
		func(m []rules.SlotMatch) (values.Value, error) {
			switch n := m[1].Value.(type) {
			case values.IntegerValue:
				n.Value, n.Prefixed = -n.Value, true
				return n, nil
			case values.FloatValue:
				n.Value = -n.Value
				return n, nil
			default:
				return nil, rustling.RejectAction("not a number")
			}
		}))

	b.Add(rules.Rule2("<number>个", rules.P(rules.IsNumber(nil)), rules.T(rules.NewTerminal(`个`)),
		func(m []rules.SlotMatch) (values.Value, error) { return m[0].Value, nil }))

	b.Add(rules.Rule2("integer (20..90)",
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 2 && v.Value <= 9 })),
		rules.T(rules.NewTerminal(`十`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.IntegerValue)
			return values.NewIntegerValue(a.Value * 10), nil
		}))

	b.Add(rules.Rule2("integer (11..19)",
		rules.T(rules.NewTerminal(`十`)),
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 9 })),
		func(m []rules.SlotMatch) (values.Value, error) {
			b := m[1].Value.(values.IntegerValue)
			return values.NewIntegerValue(10 + b.Value), nil
		}))

	b.Add(rules.Rule2("integer 21..99",
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 10 && v.Value <= 90 && v.Value%10 == 0 })),
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 9 })),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.IntegerValue)
			b := m[1].Value.(values.IntegerValue)
			return values.NewIntegerValue(a.Value + b.Value), nil
		}))

	b.Add(rules.Rule1("hundred", rules.T(rules.NewTerminal(`百|佰`)),
		func(m []rules.SlotMatch) (values.Value, error) { return values.NewIntegerValueWithGrain(100, 2), nil }))
	b.Add(rules.Rule1("thousand", rules.T(rules.NewTerminal(`千|仟`)),
		func(m []rules.SlotMatch) (values.Value, error) { return values.NewIntegerValueWithGrain(1000, 3), nil }))
	b.Add(rules.Rule1("ten-thousand", rules.T(rules.NewTerminal(`万`)),
		func(m []rules.SlotMatch) (values.Value, error) { return values.NewIntegerValueWithGrain(10000, 4), nil }))
	b.Add(rules.Rule1("hundred-million", rules.T(rules.NewTerminal(`亿`)),
		func(m []rules.SlotMatch) (values.Value, error) { return values.NewIntegerValueWithGrain(100000000, 9), nil }))

	b.Add(rules.Rule2("number hundreds",
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 9 })),
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Grain != nil && *v.Grain == 2 && v.Value == 100 })),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.IntegerValue)
			b := m[1].Value.(values.IntegerValue)
			return values.NewIntegerValueWithGrain(a.Value*b.Value, *b.Grain), nil
		}))
	b.Add(rules.Rule2("number thousands",
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 9 })),
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Grain != nil && *v.Grain == 3 && v.Value == 1000 })),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.IntegerValue)
			b := m[1].Value.(values.IntegerValue)
			return values.NewIntegerValueWithGrain(a.Value*b.Value, *b.Grain), nil
		}))
	b.Add(rules.Rule2("number ten-thousands",
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 9999 })),
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Grain != nil && *v.Grain == 4 && v.Value == 10000 })),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.IntegerValue)
			b := m[1].Value.(values.IntegerValue)
			return values.NewIntegerValueWithGrain(a.Value*b.Value, *b.Grain), nil
		}))
	b.Add(rules.Rule2("number hundred-millions",
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 999 })),
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Grain != nil && *v.Grain == 9 && v.Value == 100000000 })),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.IntegerValue)
			b := m[1].Value.(values.IntegerValue)
			return values.NewIntegerValueWithGrain(a.Value*b.Value, *b.Grain), nil
		}))

	// The generic additive composition: a bigger-magnitude number on the
	// left absorbs a smaller one on the right ("三百" + "二十二" = 322).
	b.Add(rules.Rule2("intersect (additive numeral composition)",
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Grain != nil && *v.Grain > 1 })),
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return true })),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.IntegerValue)
			b := m[1].Value.(values.IntegerValue)
			grain := 0
			if a.Grain != nil {
				grain = *a.Grain
			}
			// Positional: the left side must be a whole multiple of its own
			// magnitude and the right side must fit below it, so "一百二" +
			// "十二" cannot also compose to 114.
			unit := map[int]int64{2: 100, 3: 1000, 4: 10000, 9: 100000000}[grain]
			if unit == 0 || a.Value%unit != 0 || b.Value >= unit {
				return nil, rustling.RejectAction("not a positional composition")
			}
			return values.NewIntegerValueWithGrain(a.Value+b.Value, grain), nil
		}))

	b.Add(rules.Rule1("dozen", rules.T(rules.NewTerminal(`打`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			v := values.NewIntegerValueWithGrain(12, 1)
			v.Group = true
			return v, nil
		}))
	b.Add(rules.Rule2("number dozen",
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 10 })),
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Group })),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.IntegerValue)
			bb := m[1].Value.(values.IntegerValue)
			return values.NewIntegerValueWithGrain(a.Value*bb.Value, *bb.Grain), nil
		}))

	b.Add(rules.Rule3("number dot number",
		rules.P(rules.IsNumber(func(_ float64, prefixed, _ bool) bool { return !prefixed })),
		rules.T(rules.NewTerminal(`点|點`)),
		rules.P(rules.IsNumber(func(_ float64, _, suffixed bool) bool { return !suffixed })),
		func(m []rules.SlotMatch) (values.Value, error) {
			a, _ := numberOf(m[0].Value)
			bVal, _ := numberOf(m[2].Value)
			// The corpus's "number dot number" always scales the right side
			// by 0.1 regardless of its digit count, so multi-digit
			// fractions ("点12") read as 12 tenths (adding 1.2) rather than 0.12 — an
			// inherited quirk, reproduced as-is.
			return values.NewFloatValue(a + bVal*0.1), nil
		}))

	b.Add(rules.Rule2("numbers suffixes (K, M, G)",
		rules.P(rules.IsNumber(func(_ float64, _, suffixed bool) bool { return !suffixed })),
		rules.T(rules.RegNegLH(`[kmgKMG]`, `[a-zA-Z]`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			var mult float64
			switch strings.ToLower(m[1].Text) {
			case "k":
				mult = 1000
			case "m":
				mult = 1000000
			case "g":
				mult = 1000000000
			default:
				return nil, rustling.RejectAction("unknown suffix")
			}
			switch n := m[0].Value.(type) {
			case values.IntegerValue:
				n.Value = int64(float64(n.Value) * mult)
				n.Suffixed = true
				return n, nil
			case values.FloatValue:
				product := n.Value * mult
				if product == float64(int64(product)) {
					v := values.NewIntegerValue(int64(product))
					v.Suffixed = true
					return v, nil
				}
				n.Value = product
				return n, nil
			default:
				return nil, rustling.RejectAction("not a number")
			}
		}))

	b.Add(rules.Rule2("ordinal (prefixed)",
		rules.T(rules.NewTerminal(`第`)),
		rules.P(rules.IsInteger(func(values.IntegerValue) bool { return true })),
		func(m []rules.SlotMatch) (values.Value, error) {
			iv := m[1].Value.(values.IntegerValue)
			return values.OrdinalValue{Value: iv.Value, Prefixed: true}, nil
		}))

	b.Add(rules.Rule1("few", rules.T(rules.NewTerminal(`几`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			v := values.NewIntegerValueWithGrain(3, 1)
			v.Precision = values.Approximate
			return v, nil
		}))
}
