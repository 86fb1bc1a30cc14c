package values

import "github.com/thadguidry/rustling-go/rustling/calendar"

// This file composes Datetime values the way grammar rule actions need to:
// intersect, nth-occurrence, last-of, span-to, and the small form/latent/
// direction setters chained after them. Grounded on the predicate/Comparison
// composition style in the teacher's query/predicate.go, generalized from
// composing query filters to composing calendar constraints.

// Intersect combines d and o, narrowing to instants both match. The result
// starts formless and non-latent; callers that need a specific Form chain
// WithForm after.
func (d Datetime) Intersect(o Datetime) Datetime {
	out := NewDatetime(calendar.NewIntersect(d.Constraint, o.Constraint), FormEmpty)
	out.PeriodForm = d.PeriodForm || o.PeriodForm
	return out
}

// WithForm returns a copy of d with its Form (and, for part-of-day, scope)
// replaced.
func (d Datetime) WithForm(f Form) Datetime {
	d.Form = f
	return d
}

// WithPartOfDay returns a copy of d marked FormPartOfDay with the given
// extended-scope flag.
func (d Datetime) WithPartOfDay(extended bool) Datetime {
	d.Form = FormPartOfDay
	d.PartOfDay = PartOfDayScope{ExtendedScope: extended}
	return d
}

// NotLatent returns a copy of d with Latent cleared, used when a surrounding
// rule promotes an otherwise-latent reading ("三点" alone is latent; "三点
// 钟" is not).
func (d Datetime) NotLatent() Datetime {
	d.Latent = false
	return d
}

// TheNth selects the kth (0-indexed, signed) occurrence of d relative to the
// anchor ("last <time>" = TheNth(-1), "next <time>" = TheNth(0) after a
// next-marker already consumed the "first future one" reading).
func (d Datetime) TheNth(k int) Datetime {
	out := NewDatetime(calendar.TheNthOccurrence(d.Constraint, k), d.Form)
	out.PartOfDay = d.PartOfDay
	return out
}

// TheNthNotImmediate is TheNth but occurrence 0 skips the anchor's own
// bucket when it overlaps the anchor ("这个周三" = this Wednesday, which
// must not silently mean today even if today is Wednesday).
func (d Datetime) TheNthNotImmediate(k int) Datetime {
	out := NewDatetime(calendar.TheNthOccurrenceNotImmediate(d.Constraint, k), d.Form)
	out.PartOfDay = d.PartOfDay
	return out
}

// LastOf returns the last occurrence of d within each bucket of outer, e.g.
// "三月的最后一个周一" = weekday(Mon).LastOf(month(3)).
func (d Datetime) LastOf(outer Datetime) Datetime {
	return NewDatetime(calendar.LastOccurrenceOf(outer.Constraint, d.Constraint), d.Form)
}

// SpanTo returns the interval from d's resolved instant to o's, marked as a
// period form ("从周五到周一", "九点到十一点").
func (d Datetime) SpanTo(o Datetime, inclusive bool) Datetime {
	out := NewDatetime(calendar.SpanTo(d.Constraint, o.Constraint, inclusive), FormEmpty)
	out.PeriodForm = true
	return out
}
