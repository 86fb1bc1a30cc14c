package values

import (
	"fmt"

	"github.com/thadguidry/rustling-go/rustling/calendar"
)

// Form narrows a Datetime value's surface rôle beyond its raw constraint,
// the way the spec's §3 Form field does: a constraint alone can't tell a
// bare time-of-day ("三点") from a day-of-week ("周三") from a month name
// ("三月") when all three happen to share a grain.
type Form int

const (
	FormEmpty Form = iota
	FormTimeOfDay
	FormDayOfWeek
	FormDayOfMonth
	FormMonth
	FormPartOfDay
)

func (f Form) String() string {
	switch f {
	case FormTimeOfDay:
		return "TimeOfDay"
	case FormDayOfWeek:
		return "DayOfWeek"
	case FormDayOfMonth:
		return "DayOfMonth"
	case FormMonth:
		return "Month"
	case FormPartOfDay:
		return "PartOfDay"
	default:
		return "Empty"
	}
}

// PartOfDayScope further qualifies FormPartOfDay ("傍晚" evening extends
// further than a fixed clock hour would suggest).
type PartOfDayScope struct {
	ExtendedScope bool
}

// DatetimeKind is the subtype the Dimension Mapper (§4.4) assigns: which of
// the four external Output shapes (plus the Datetime complement) this value
// should be rendered as.
type DatetimeKind int

const (
	DatetimeKindDatetime DatetimeKind = iota
	DatetimeKindDate
	DatetimeKindDatePeriod
	DatetimeKindTime
	DatetimeKindTimePeriod
)

func (k DatetimeKind) String() string {
	switch k {
	case DatetimeKindDate:
		return "Date"
	case DatetimeKindDatePeriod:
		return "DatePeriod"
	case DatetimeKindTime:
		return "Time"
	case DatetimeKindTimePeriod:
		return "TimePeriod"
	default:
		return "Datetime"
	}
}

// Datetime is the Value Domain's richest member: a lazy Constraint plus the
// metadata needed to decide, at output time, what it actually means
// (§3: "Carries: a Constraint; a Form; ... direction; precision; latent
// flag; datetime_type filled by the mapper").
type Datetime struct {
	Constraint calendar.Constraint
	Form       Form
	PartOfDay  PartOfDayScope

	// HasDirection marks an open-ended span ("自三月起" = since March);
	// Direction then says which side is open.
	HasDirection bool
	Direction    calendar.Direction

	Precision Precision

	// Latent values are never emitted unless promoted by a surrounding
	// rule (§4.3, §9): a bare integer is a latent time-of-day, "三" alone
	// never surfaces as 3 o'clock unless something promotes it.
	Latent bool

	// PeriodForm marks a value built to represent a span/range rather
	// than a single instant (e.g. an explicit span_to result such as
	// "从九点半到十一点"), feeding the Dimension Mapper's period_form check.
	PeriodForm bool

	// DatetimeKind is unset (DatetimeKindDatetime's zero value) until the
	// Dimension Mapper assigns it; see rustling/dimension.
	DatetimeKind DatetimeKind
}

func NewDatetime(c calendar.Constraint, form Form) Datetime {
	return Datetime{Constraint: c, Form: form, Precision: Exact}
}

// WithLatent returns a copy of d with Latent set, used by bare-numeral
// rules that build an ambiguous time-of-day reading.
func (d Datetime) WithLatent(latent bool) Datetime {
	d.Latent = latent
	return d
}

// WithPeriodForm returns a copy of d marked (or unmarked) as a period.
func (d Datetime) WithPeriodForm(period bool) Datetime {
	d.PeriodForm = period
	return d
}

// WithPrecision returns a copy of d with the given precision.
func (d Datetime) WithPrecision(p Precision) Datetime {
	d.Precision = p
	return d
}

// WithDirection returns a copy of d marked as an open-ended span in the
// given direction.
func (d Datetime) WithDirection(dir calendar.Direction) Datetime {
	d.HasDirection = true
	d.Direction = dir
	return d
}

func (Datetime) Kind() Kind { return KindDatetime }

func (d Datetime) String() string {
	return fmt.Sprintf("Datetime(%s, form=%s, latent=%v, period=%v)",
		d.Constraint, d.Form, d.Latent, d.PeriodForm)
}
