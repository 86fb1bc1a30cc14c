// Package values implements the Value Domain (VD): the tagged-union carrier
// shared by grammar rule actions and outputs. Every dimension (numbers,
// ordinals, datetimes, durations, temperatures, money, percentages) has its
// own concrete struct; Value is the sealed interface tying them together,
// the same tagged-union-via-interface idiom the teacher uses for
// datalog/query/types.go's PatternElement family.
package values

import "fmt"

// Value is any recognized semantic value a rule action can produce and a
// predicate can filter on.
type Value interface {
	// Kind names the value's dimension, used by predicates and by the
	// dimension mapper.
	Kind() Kind
	String() string
}

// Kind discriminates the concrete Value implementations without a type
// switch at every call site, mirroring the teacher's small-int-enum
// discriminator idiom.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindOrdinal
	KindDatetime
	KindDuration
	KindTemperature
	KindAmountOfMoney
	KindPercentage
	KindUnitOfDuration
	KindCycle
	KindRelativeMinute
)

var kindNames = [...]string{
	"Integer", "Float", "Ordinal", "Datetime", "Duration", "Temperature",
	"AmountOfMoney", "Percentage", "UnitOfDuration", "Cycle", "RelativeMinute",
}

func (k Kind) String() string {
	if k < KindInteger || k > KindRelativeMinute {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IntegerValue is a whole number, with Chinese-numeral composition metadata
// (§4.3): Grain is a magnitude hint (1=十, 2=百, 3=千, 4=万, 9=亿) gating
// which larger numeral a smaller one may compose into; Prefixed marks that
// the negative prefix has been applied and Suffixed that a K/M/G suffix has,
// so neither applies twice; Group marks a group-count word (打, a dozen).
type IntegerValue struct {
	Value     int64
	Grain     *int
	Prefixed  bool
	Suffixed  bool
	Group     bool
	Precision Precision
}

func NewIntegerValue(v int64) IntegerValue { return IntegerValue{Value: v, Precision: Exact} }

// NewIntegerValueWithGrain builds an IntegerValue carrying a magnitude hint,
// used by the numeral-composition rules (十/百/千/万/亿).
func NewIntegerValueWithGrain(v int64, grain int) IntegerValue {
	g := grain
	return IntegerValue{Value: v, Grain: &g, Precision: Exact}
}

func (IntegerValue) Kind() Kind { return KindInteger }
func (v IntegerValue) String() string {
	return fmt.Sprintf("Integer(%d)", v.Value)
}

// FloatValue is a decimal number ("一百二十二点二" = 122.2).
type FloatValue struct {
	Value     float64
	Precision Precision
}

func NewFloatValue(v float64) FloatValue { return FloatValue{Value: v, Precision: Exact} }

func (FloatValue) Kind() Kind { return KindFloat }
func (v FloatValue) String() string {
	return fmt.Sprintf("Float(%g)", v.Value)
}

// OrdinalValue is a rank ("第三" = 3rd); Prefixed marks the 第-prefixed
// surface form.
type OrdinalValue struct {
	Value    int64
	Prefixed bool
}

func NewOrdinalValue(v int64) OrdinalValue { return OrdinalValue{Value: v} }

func (OrdinalValue) Kind() Kind { return KindOrdinal }
func (v OrdinalValue) String() string {
	return fmt.Sprintf("Ordinal(%d)", v.Value)
}

// Precision discriminates an exact value from an approximate one ("大约
// 三点" = approximately 3 o'clock, "about 20 degrees").
type Precision int

const (
	Exact Precision = iota
	Approximate
)

func (p Precision) String() string {
	if p == Approximate {
		return "Approximate"
	}
	return "Exact"
}
