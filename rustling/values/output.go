package values

import (
	"fmt"
	"time"

	"github.com/thadguidry/rustling-go/rustling"
	"github.com/thadguidry/rustling-go/rustling/calendar"
)

// Output is the tagged union the Disambiguation & Output stage (§4.3)
// projects a resolved Value into: concrete, JSON-serializable, with no more
// lazy Constraint attached. Ported from the original implementation's
// values/src/output.rs Output enum, which keeps one Go value per case
// rather than sharing one struct across dimensions.
type Output interface {
	Kind() OutputKind
	String() string
}

// OutputKind names Output's dimension for external consumers (the
// options.Dimensions filter in §6 is a set of these).
type OutputKind int

const (
	OutputNumber OutputKind = iota
	OutputOrdinal
	OutputDuration
	OutputDatetime
	OutputDate
	OutputDatePeriod
	OutputTime
	OutputTimePeriod
	OutputAmountOfMoney
	OutputTemperature
	OutputPercentage
)

var outputKindNames = [...]string{
	"Number", "Ordinal", "Duration", "Datetime", "Date", "DatePeriod",
	"Time", "TimePeriod", "AmountOfMoney", "Temperature", "Percentage",
}

func (k OutputKind) String() string {
	if k < OutputNumber || k > OutputPercentage {
		return fmt.Sprintf("OutputKind(%d)", int(k))
	}
	return outputKindNames[k]
}

// IntegerOutput is a resolved whole number.
type IntegerOutput struct{ Value int64 }

func (IntegerOutput) Kind() OutputKind   { return OutputNumber }
func (o IntegerOutput) String() string { return fmt.Sprintf("%d", o.Value) }

// FloatOutput is a resolved decimal number.
type FloatOutput struct{ Value float64 }

func (FloatOutput) Kind() OutputKind   { return OutputNumber }
func (o FloatOutput) String() string { return fmt.Sprintf("%g", o.Value) }

// OrdinalOutput is a resolved rank.
type OrdinalOutput struct{ Value int64 }

func (OrdinalOutput) Kind() OutputKind   { return OutputOrdinal }
func (o OrdinalOutput) String() string { return fmt.Sprintf("#%d", o.Value) }

// PercentageOutput is a resolved percentage.
type PercentageOutput struct{ Value float64 }

func (PercentageOutput) Kind() OutputKind   { return OutputPercentage }
func (o PercentageOutput) String() string { return fmt.Sprintf("%g%%", o.Value) }

// DatetimeOutput is a single resolved instant (§6: "{moment: RFC3339-local,
// grain, precision, latent}"). Its Kind defaults to OutputDatetime but the
// Dimension Mapper may tag it Date or Time instead — Kind reads Subtype for that.
type DatetimeOutput struct {
	Moment    time.Time
	Grain     rustling.Grain
	Precision Precision
	Latent    bool
	Subtype   DatetimeKind
}

func (o DatetimeOutput) Kind() OutputKind {
	switch o.Subtype {
	case DatetimeKindDate:
		return OutputDate
	case DatetimeKindTime:
		return OutputTime
	default:
		return OutputDatetime
	}
}

func (o DatetimeOutput) String() string {
	return fmt.Sprintf("%s (%s, %s)", o.Moment.Format(time.RFC3339), o.Grain, o.Precision)
}

// DatetimeIntervalKind discriminates an open-ended span from a closed one.
type DatetimeIntervalKind int

const (
	IntervalBetween DatetimeIntervalKind = iota
	IntervalAfter
	IntervalBefore
)

// DatetimeIntervalOutput is a resolved range: After/Before an open bound,
// or Between two closed ones (§6's DatetimeInterval output shape).
type DatetimeIntervalOutput struct {
	IntervalKind DatetimeIntervalKind
	Start        time.Time
	End          time.Time
	Precision    Precision
	Latent       bool
	Subtype      DatetimeKind
}

func (o DatetimeIntervalOutput) Kind() OutputKind {
	switch o.Subtype {
	case DatetimeKindDatePeriod:
		return OutputDatePeriod
	case DatetimeKindTimePeriod:
		return OutputTimePeriod
	default:
		return OutputDatetime
	}
}

func (o DatetimeIntervalOutput) String() string {
	switch o.IntervalKind {
	case IntervalAfter:
		return fmt.Sprintf("after %s", o.Start.Format(time.RFC3339))
	case IntervalBefore:
		return fmt.Sprintf("before %s", o.End.Format(time.RFC3339))
	default:
		return fmt.Sprintf("between %s and %s", o.Start.Format(time.RFC3339), o.End.Format(time.RFC3339))
	}
}

// AmountOfMoneyOutput is a resolved currency amount.
type AmountOfMoneyOutput struct {
	Value     float64
	Precision Precision
	Unit      string
}

func (AmountOfMoneyOutput) Kind() OutputKind { return OutputAmountOfMoney }
func (o AmountOfMoneyOutput) String() string {
	return fmt.Sprintf("%g %s", o.Value, o.Unit)
}

// TemperatureOutput is a resolved temperature reading.
type TemperatureOutput struct {
	Value  float64
	Unit   TemperatureUnit
	Latent bool
}

func (TemperatureOutput) Kind() OutputKind { return OutputTemperature }
func (o TemperatureOutput) String() string {
	return fmt.Sprintf("%g %s", o.Value, o.Unit)
}

// DurationOutput is a resolved, un-anchored span of time.
type DurationOutput struct {
	Period    rustling.Period
	Precision Precision
}

func (DurationOutput) Kind() OutputKind { return OutputDuration }
func (o DurationOutput) String() string {
	return fmt.Sprintf("%v (%s)", o.Period.Grains(), o.Precision)
}

// DirectionToIntervalKind translates a Datetime's open-ended Direction
// metadata into the matching DatetimeIntervalOutput kind.
func DirectionToIntervalKind(d calendar.Direction) DatetimeIntervalKind {
	if d == calendar.DirectionBefore {
		return IntervalBefore
	}
	return IntervalAfter
}
