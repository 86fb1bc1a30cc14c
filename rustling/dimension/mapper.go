// Package dimension implements the Dimension Mapper (§4.4): the step that
// decides, for every resolved Datetime value, which of the output system's
// four datetime subtypes (Date, Time, DatePeriod, TimePeriod) it actually
// is, or whether it's the complement "Datetime" catch-all.
//
// Ported from the original implementation's src/mapper.rs map_dimension,
// generalized from "mutate a Dimension enum in place" to "return the
// assigned DatetimeKind", the idiomatic Go shape for a pure classifier.
package dimension

import (
	"github.com/thadguidry/rustling-go/rustling/values"
)

// AssignDatetimeKind computes the DatetimeKind a Datetime value should
// carry in its output, following the original's four-way split:
//
//   - date_time_grain: one bounding grain is a date grain and the other a
//     time grain (a full instant like "March 3rd at 9am") — maps to the
//     complement Datetime kind, not Date or Time alone.
//   - date_grain: not date_time_grain, and the constraint's finer
//     bounding grain is itself a date grain.
//   - time_grain: not date_time_grain, and the finer bounding grain is a
//     time grain.
//   - period_form: the value represents a span rather than a single
//     instant (set explicitly by the producing rule, §3).
//
// period_form combined with date_grain/time_grain yields DatePeriod/
// TimePeriod; without period_form they yield Date/Time; neither case
// firing yields the Datetime complement.
func AssignDatetimeKind(d values.Datetime) values.DatetimeKind {
	left := d.Constraint.GrainLeft()
	right := d.Constraint.GrainRight()
	dateTimeGrain := (left.IsDateGrain() && right.IsTimeGrain()) ||
		(right.IsDateGrain() && left.IsTimeGrain())

	minGrain := d.Constraint.GrainMin()
	dateGrain := !dateTimeGrain && minGrain.IsDateGrain()
	timeGrain := !dateTimeGrain && minGrain.IsTimeGrain()

	switch {
	case !d.PeriodForm && dateGrain:
		return values.DatetimeKindDate
	case !d.PeriodForm && timeGrain:
		return values.DatetimeKindTime
	case d.PeriodForm && dateGrain:
		return values.DatetimeKindDatePeriod
	case d.PeriodForm && timeGrain:
		return values.DatetimeKindTimePeriod
	default:
		return values.DatetimeKindDatetime
	}
}

// Assign mutates a copy of d with its DatetimeKind set, the Go analogue of
// the original's in-place mutation (a value type can't be mutated through
// a bare function call the way the original's &mut Dimension is, so this
// returns the updated copy instead — every call site already threads
// Datetime by value).
func Assign(d values.Datetime) values.Datetime {
	d.DatetimeKind = AssignDatetimeKind(d)
	return d
}
