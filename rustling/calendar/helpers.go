package calendar

import "github.com/thadguidry/rustling-go/rustling"

// This file is the grammar-facing surface of the Calendar Algebra: the
// named operations rule actions actually call (cycle_nth, cycle_n_not_
// immediate, cycle_nth_after, cycle_nth_after_not_immediate, span_to,
// the_nth, the_nth_not_immediate, last_of, in_present, ago, direction).
// Most are thin aliases over the Constraint constructors above; a few
// (CycleNNotImmediate, InPresent, Ago) compose more than one primitive.

// CycleNth is cycle_nth(g, n): the nth occurrence (signed) of grain g.
func CycleNth(g rustling.Grain, n int) Constraint { return NewCycle(g, n) }

// CycleNNotImmediate is cycle_n_not_immediate(g, n): the span of |n|
// buckets of grain g starting at the next non-anchor bucket in the
// direction of sign(n), excluding the anchor's own bucket. Used for
// duration phrases like "过去三天" (the past three days) and "未来两周"
// (the next two weeks).
func CycleNNotImmediate(g rustling.Grain, n int) Constraint {
	// Span walks its end constraint from the start bucket's own start, so
	// the second Cycle's offset counts from the first bucket, not the anchor.
	switch {
	case n > 0:
		return NewSpan(NewCycle(g, 1), NewCycle(g, n-1), true)
	case n < 0:
		return NewSpan(NewCycle(g, n), NewCycle(g, -n-1), true)
	default:
		return NewCycle(g, 0).NotImmediateVariant()
	}
}

// CycleNthAfter is cycle_nth_after(g, n, ref): the nth g-bucket after ref.
func CycleNthAfter(g rustling.Grain, n int, ref Constraint) Constraint {
	return NewNthAfter(g, n, ref)
}

// CycleNthAfterNotImmediate is cycle_nth_after_not_immediate(g, n, ref):
// the same, but n=0 means "the next bucket", not ref's own bucket.
func CycleNthAfterNotImmediate(g rustling.Grain, n int, ref Constraint) Constraint {
	return NewNthAfterNotImmediate(g, n, ref)
}

// SpanTo is span_to(a, b, inclusive): the interval from a's instant to b's.
func SpanTo(a, b Constraint, inclusive bool) Constraint {
	return NewSpan(a, b, inclusive)
}

// TheNthOccurrence is the_nth(c, k): the kth signed occurrence of c.
func TheNthOccurrence(c Constraint, k int) Constraint {
	return NewTheNth(c, k)
}

// TheNthOccurrenceNotImmediate is the_nth_not_immediate(c, 0): occurrence 0
// unless it overlaps the anchor, in which case occurrence 1.
func TheNthOccurrenceNotImmediate(c Constraint, k int) Constraint {
	return NewTheNthNotImmediate(c, k)
}

// Year is year(y): the absolute calendar year y, not a cycle offset.
func Year(y int) Constraint { return NewAbsoluteYear(y) }

// Month is month(m): the nearest occurrence (in either direction) of
// calendar month m (1-12).
func Month(m int) Constraint { return NewMonthOfYear(m) }

// DayOfMonthC is day_of_month(d): the nearest occurrence of day-of-month d.
func DayOfMonthC(d int) Constraint { return NewDayOfMonth(d) }

// MonthDay is month_day(m, d): the nearest occurrence of calendar date m/d,
// e.g. recurring holidays like 8月1日 (Army Day).
func MonthDay(month, day int) Constraint {
	return NewIntersect(NewMonthOfYear(month), NewDayOfMonth(day))
}

// YMD is ymd(y, m, d): the single absolute calendar date y-m-d.
func YMD(y, month, day int) Constraint {
	return NewIntersect(NewAbsoluteYear(y), MonthDay(month, day))
}

// Hour is hour(h, is12Clock): the nearest daily occurrence of the given
// hour, on the minute. is12Clock marks the value as ambiguous between its
// am and pm reading when the source phrase carried no am/pm marker.
func Hour(h int, is12Clock bool) Constraint {
	return NewTimeOfDay(h, 0, is12Clock)
}

// HourMinute is hour_minute(h, m, is12Clock): the nearest daily occurrence
// of h:m.
func HourMinute(h, m int, is12Clock bool) Constraint {
	return NewTimeOfDay(h, m, is12Clock)
}

// LastOccurrenceOf is last_of(outer, inner): the last inner inside each
// outer bucket, e.g. "the last Monday of March".
func LastOccurrenceOf(outer, inner Constraint) Constraint {
	return NewLastOf(outer, inner)
}

// InPresent is in_present(p): p from now, e.g. "两周之内" (within two
// weeks, Span(AnchorPoint, in_present(2 weeks))) or "三天后" (three days
// from now).
func InPresent(p rustling.Period) Constraint {
	return NewTranslate(AnchorPoint{}, p)
}

// Ago is ago(p): p before now, e.g. "三天前" (three days ago).
func Ago(p rustling.Period) Constraint {
	return NewTranslate(AnchorPoint{}, p.Negate())
}

// Direction reports whether iv lies after or before anchor, the metadata
// the value layer attaches to a resolved Datetime (§3's Direction field).
type Direction int

const (
	DirectionAfter Direction = iota
	DirectionBefore
)

func (d Direction) String() string {
	if d == DirectionBefore {
		return "Before"
	}
	return "After"
}

// ResolveDirection computes the Direction of iv relative to anchor: Before
// if iv has already ended, After otherwise (an interval straddling the
// anchor counts as After, matching forward-preference elsewhere in the
// walker).
func ResolveDirection(anchor rustling.Moment, iv rustling.Interval) Direction {
	if iv.Unbounded || iv.End.After(anchor) || iv.End.Equal(anchor) {
		return DirectionAfter
	}
	return DirectionBefore
}
