// Package rules implements the Rule Engine (RE): the grammar runtime. Rules
// are declarative (arity 1-5); each slot is either an anchored regex
// terminal or a non-terminal predicate over a typed Value. A chart parser
// drives them bottom-up over the input, producing every well-formed
// derivation (spec §4.2).
//
// Grounded on the teacher's query/predicate.go Predicate/Term idiom
// (generalized from "boolean condition over tuple bindings" to "boolean
// condition over one typed Value") and on datalog/parser's regex-based
// lexing (function_parser.go, predicate_parser.go both anchor regexes at
// the current scan position with ^).
package rules

import (
	"regexp"

	"github.com/thadguidry/rustling-go/rustling/values"
)

// Terminal matches a slice of the raw input text anchored at the current
// scan position. Pattern must itself be anchored (NewTerminal and RegNegLH
// wrap it in \A(?:...)); RE2 has no native lookahead, so NegativeLookahead is applied
// manually against the text immediately following a match — the
// "reg_neg_lh" idiom used throughout rule sets that need to reject a
// numeral immediately followed by a magnitude word it would otherwise
// compose with.
type Terminal struct {
	Pattern           *regexp.Regexp
	NegativeLookahead *regexp.Regexp
}

// NewTerminal compiles pattern (without requiring callers to remember the
// leading ^) into an anchored Terminal.
func NewTerminal(pattern string) Terminal {
	return Terminal{Pattern: regexp.MustCompile(`\A(?:` + pattern + `)`)}
}

// RegNegLH builds a Terminal with a negative lookahead: the match is
// rejected if the text immediately following it matches negPattern.
func RegNegLH(pattern, negPattern string) Terminal {
	return Terminal{
		Pattern:           regexp.MustCompile(`\A(?:` + pattern + `)`),
		NegativeLookahead: regexp.MustCompile(`\A(?:` + negPattern + `)`),
	}
}

// MatchAt attempts to match t at text[pos:], returning the submatch strings
// (groups[0] is the whole match; a group that did not participate is ""),
// the absolute end offset of the match, and ok.
func (t Terminal) MatchAt(text string, pos int) (groups []string, end int, ok bool) {
	loc := t.Pattern.FindStringSubmatchIndex(text[pos:])
	if loc == nil {
		return nil, 0, false
	}
	matchEnd := pos + loc[1]
	if t.NegativeLookahead != nil && t.NegativeLookahead.MatchString(text[matchEnd:]) {
		return nil, 0, false
	}
	groups = make([]string, len(loc)/2)
	for i := 0; i < len(loc)/2; i++ {
		if loc[2*i] < 0 {
			continue
		}
		groups[i] = text[pos+loc[2*i] : pos+loc[2*i+1]]
	}
	return groups, matchEnd, true
}

// Predicate is a non-terminal grammar slot: a boolean condition over a
// single already-resolved Value, mirroring the teacher's Predicate.Eval
// shape but over one typed value instead of a tuple binding map.
type Predicate struct {
	Describe string
	Test     func(values.Value) bool
}

// NewPredicate builds a named Predicate slot.
func NewPredicate(describe string, test func(values.Value) bool) Predicate {
	return Predicate{Describe: describe, Test: test}
}

// IsDatetime builds a predicate accepting any Datetime value, optionally
// requiring a specific Form and non-latent-ness — the most common
// predicate shape in a datetime-heavy rule set ("any Datetime whose form
// is TimeOfDay and which is not latent").
func IsDatetime(form values.Form, requireNonLatent bool) Predicate {
	return NewPredicate("Datetime", func(v values.Value) bool {
		dt, ok := v.(values.Datetime)
		if !ok {
			return false
		}
		if requireNonLatent && dt.Latent {
			return false
		}
		if form != values.FormEmpty && dt.Form != form {
			return false
		}
		return true
	})
}

// AnyDatetime accepts any Datetime regardless of form or latency.
func AnyDatetime() Predicate {
	return NewPredicate("AnyDatetime", func(v values.Value) bool {
		_, ok := v.(values.Datetime)
		return ok
	})
}

// IsIntegerInRange accepts an IntegerValue whose Value lies in [lo, hi].
func IsIntegerInRange(lo, hi int64) Predicate {
	return NewPredicate("IntegerInRange", func(v values.Value) bool {
		iv, ok := v.(values.IntegerValue)
		return ok && iv.Value >= lo && iv.Value <= hi
	})
}

// IsCycle accepts a CycleValue passing g.
func IsCycle(g func(values.CycleValue) bool) Predicate {
	return NewPredicate("Cycle", func(v values.Value) bool {
		cv, ok := v.(values.CycleValue)
		return ok && g(cv)
	})
}

// IsInteger accepts any IntegerValue passing test.
func IsInteger(test func(values.IntegerValue) bool) Predicate {
	return NewPredicate("Integer", func(v values.Value) bool {
		iv, ok := v.(values.IntegerValue)
		return ok && test(iv)
	})
}

// IsOrdinal accepts any OrdinalValue.
func IsOrdinal() Predicate {
	return NewPredicate("Ordinal", func(v values.Value) bool {
		_, ok := v.(values.OrdinalValue)
		return ok
	})
}

// IsNumber accepts an IntegerValue or FloatValue passing test (or, if test
// is nil, any number), mirroring the corpus's NumberValue sum type.
func IsNumber(test func(val float64, prefixed, suffixed bool) bool) Predicate {
	return NewPredicate("Number", func(v values.Value) bool {
		switch n := v.(type) {
		case values.IntegerValue:
			return test == nil || test(float64(n.Value), n.Prefixed, n.Suffixed)
		case values.FloatValue:
			return test == nil || test(n.Value, false, false)
		default:
			return false
		}
	})
}

// IsDuration accepts any DurationValue.
func IsDuration() Predicate {
	return NewPredicate("Duration", func(v values.Value) bool {
		_, ok := v.(values.DurationValue)
		return ok
	})
}

// IsRelativeMinute accepts any RelativeMinuteValue.
func IsRelativeMinute() Predicate {
	return NewPredicate("RelativeMinute", func(v values.Value) bool {
		_, ok := v.(values.RelativeMinuteValue)
		return ok
	})
}

// IsUnitOfDuration accepts any UnitOfDurationValue.
func IsUnitOfDuration() Predicate {
	return NewPredicate("UnitOfDuration", func(v values.Value) bool {
		_, ok := v.(values.UnitOfDurationValue)
		return ok
	})
}

// IsTemperature accepts any TemperatureValue.
func IsTemperature() Predicate {
	return NewPredicate("Temperature", func(v values.Value) bool {
		_, ok := v.(values.TemperatureValue)
		return ok
	})
}

// IsDatetimeFiltered accepts any Datetime value passing test, for the
// handful of rules that need something finer than IsDatetime's form/latency
// shape (e.g. "excluding a time-of-day form", "quarter cycle only").
func IsDatetimeFiltered(test func(values.Datetime) bool) Predicate {
	return NewPredicate("DatetimeFiltered", func(v values.Value) bool {
		dt, ok := v.(values.Datetime)
		return ok && test(dt)
	})
}
