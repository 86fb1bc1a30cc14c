package values

import (
	"fmt"

	"github.com/thadguidry/rustling-go/rustling"
)

// DurationValue is a span of time expressed as a Period, not anchored to
// any instant ("三天" = 3 days, as distinct from a Datetime period).
type DurationValue struct {
	Period    rustling.Period
	Precision Precision
}

func NewDurationValue(p rustling.Period) DurationValue {
	return DurationValue{Period: p, Precision: Exact}
}

func (DurationValue) Kind() Kind { return KindDuration }
func (v DurationValue) String() string {
	return fmt.Sprintf("Duration(%v, %s)", v.Period.Grains(), v.Precision)
}

// TemperatureUnit is the unit a TemperatureValue is expressed in; nil/zero
// value (TemperatureUnitDegree) means "unit unspecified" ("二十度").
type TemperatureUnit int

const (
	TemperatureUnitDegree TemperatureUnit = iota
	TemperatureUnitCelsius
	TemperatureUnitFahrenheit
)

func (u TemperatureUnit) String() string {
	switch u {
	case TemperatureUnitCelsius:
		return "celsius"
	case TemperatureUnitFahrenheit:
		return "fahrenheit"
	default:
		return "degree"
	}
}

// TemperatureValue is a measured temperature. Latent mirrors Datetime's:
// a bare "二十" is a latent temperature reading until a surrounding "度"
// or context promotes it.
type TemperatureValue struct {
	Value  float64
	Unit   TemperatureUnit
	Latent bool
}

func NewTemperatureValue(v float64, unit TemperatureUnit) TemperatureValue {
	return TemperatureValue{Value: v, Unit: unit}
}

func (TemperatureValue) Kind() Kind { return KindTemperature }
func (v TemperatureValue) String() string {
	return fmt.Sprintf("Temperature(%g %s, latent=%v)", v.Value, v.Unit, v.Latent)
}

// AmountOfMoneyValue is a currency amount ("两百块钱" = 200 yuan).
type AmountOfMoneyValue struct {
	Value     float64
	Unit      string // ISO-ish code or symbol, e.g. "CNY", "$"; "" if unspecified
	Precision Precision
}

func NewAmountOfMoneyValue(v float64, unit string) AmountOfMoneyValue {
	return AmountOfMoneyValue{Value: v, Unit: unit, Precision: Exact}
}

func (AmountOfMoneyValue) Kind() Kind { return KindAmountOfMoney }
func (v AmountOfMoneyValue) String() string {
	return fmt.Sprintf("AmountOfMoney(%g %s)", v.Value, v.Unit)
}

// PercentageValue is a percentage reading ("百分之五十" = 50%); Value is
// stored as the numeric percentage (50.0), not the fraction (0.5).
type PercentageValue struct {
	Value float64
}

func NewPercentageValue(v float64) PercentageValue { return PercentageValue{Value: v} }

func (PercentageValue) Kind() Kind { return KindPercentage }
func (v PercentageValue) String() string {
	return fmt.Sprintf("Percentage(%g%%)", v.Value)
}

// UnitOfDurationValue names a bare grain word used as a unit ("天", "周")
// before it has been given a quantity.
type UnitOfDurationValue struct {
	Grain rustling.Grain
}

func NewUnitOfDurationValue(g rustling.Grain) UnitOfDurationValue {
	return UnitOfDurationValue{Grain: g}
}

func (UnitOfDurationValue) Kind() Kind { return KindUnitOfDuration }
func (v UnitOfDurationValue) String() string {
	return fmt.Sprintf("UnitOfDuration(%s)", v.Grain)
}

// CycleValue names a bare grain word used as a cyclic reference point
// ("个月" in "下个月"), distinct from UnitOfDuration in that it composes
// with Cycle constraints (cycle_nth) rather than quantities.
type CycleValue struct {
	Grain rustling.Grain
}

func NewCycleValue(g rustling.Grain) CycleValue { return CycleValue{Grain: g} }

func (CycleValue) Kind() Kind { return KindCycle }
func (v CycleValue) String() string {
	return fmt.Sprintf("Cycle(%s)", v.Grain)
}

// RelativeMinuteValue is a signed minute offset used by "差N分" (N minutes
// to the hour) and "过N分" (N minutes past) constructions before they're
// folded into a TimeOfDay.
type RelativeMinuteValue int

func NewRelativeMinuteValue(n int) RelativeMinuteValue { return RelativeMinuteValue(n) }

func (RelativeMinuteValue) Kind() Kind { return KindRelativeMinute }
func (v RelativeMinuteValue) String() string {
	return fmt.Sprintf("RelativeMinute(%d)", int(v))
}
