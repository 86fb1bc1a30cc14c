// Package disambig implements the Disambiguation & Output stage (§4.3):
// filter out latent/unwanted-dimension items, select a maximum-coverage
// non-overlapping subset, then project each survivor through the Calendar
// Algebra walker into a concrete Output value.
//
// Grounded on the teacher's predicate-filter-then-project shape in
// datalog/executor (a query's Where clauses filter a relation, then a
// final projection step shapes the result tuples for return) generalized
// from "filter rows of a relation" to "filter spans of a chart."
package disambig

import "github.com/thadguidry/rustling-go/rustling/values"

// Options mirrors spec §6's options record: which output dimensions the
// caller wants, and whether latent values should be allowed through.
type Options struct {
	Dimensions  map[values.OutputKind]bool
	AllowLatent bool
}

// wantsKind reports whether k is acceptable under opts (an empty/nil
// Dimensions set means "every dimension is acceptable").
func (o Options) wantsKind(k values.OutputKind) bool {
	if len(o.Dimensions) == 0 {
		return true
	}
	return o.Dimensions[k]
}

// family lists every OutputKind a value of Kind k could ultimately project
// to, used for the coarse pre-projection filter (the fine Date/Time/
// DatePeriod/TimePeriod split isn't known until after the Dimension
// Mapper runs).
func family(k values.Kind) []values.OutputKind {
	switch k {
	case values.KindInteger, values.KindFloat:
		return []values.OutputKind{values.OutputNumber}
	case values.KindOrdinal:
		return []values.OutputKind{values.OutputOrdinal}
	case values.KindDatetime:
		return []values.OutputKind{
			values.OutputDatetime, values.OutputDate, values.OutputDatePeriod,
			values.OutputTime, values.OutputTimePeriod,
		}
	case values.KindDuration:
		return []values.OutputKind{values.OutputDuration}
	case values.KindTemperature:
		return []values.OutputKind{values.OutputTemperature}
	case values.KindAmountOfMoney:
		return []values.OutputKind{values.OutputAmountOfMoney}
	case values.KindPercentage:
		return []values.OutputKind{values.OutputPercentage}
	default:
		return nil
	}
}

func (o Options) wantsFamily(k values.Kind) bool {
	if len(o.Dimensions) == 0 {
		return true
	}
	for _, ok := range family(k) {
		if o.Dimensions[ok] {
			return true
		}
	}
	return false
}
