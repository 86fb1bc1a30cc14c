package disambig

import (
	"github.com/thadguidry/rustling-go/rustling"
	"github.com/thadguidry/rustling-go/rustling/calendar"
	"github.com/thadguidry/rustling-go/rustling/dimension"
	"github.com/thadguidry/rustling-go/rustling/rules"
	"github.com/thadguidry/rustling-go/rustling/values"
)

// Resolved is one fully projected recognition result (§6's ResolvedOutput,
// minus the probability field this module doesn't compute).
type Resolved struct {
	Start, End int
	Text       string
	Value      values.Output
}

// Project runs §4.3 step 4-5 over the selected chart items: for each item,
// walk its value against the anchor and turn the result into an Output.
// Items that don't resolve to anything (an empty walker stream) are
// dropped — their value was syntactically well-formed but semantically
// vacuous (e.g. "the 31st of February").
func Project(text string, items []rules.Item, anchor rustling.Moment, ctx *calendar.Context, opts Options) []Resolved {
	var out []Resolved
	for _, it := range items {
		output, ok := projectOne(it.Value, anchor, ctx)
		if !ok {
			continue
		}
		if !opts.wantsKind(output.Kind()) {
			continue
		}
		out = append(out, Resolved{
			Start: it.Start, End: it.End,
			Text:  text[it.Start:it.End],
			Value: output,
		})
	}
	return out
}

func projectOne(v values.Value, anchor rustling.Moment, ctx *calendar.Context) (values.Output, bool) {
	switch vv := v.(type) {
	case values.IntegerValue:
		return values.IntegerOutput{Value: vv.Value}, true
	case values.FloatValue:
		return values.FloatOutput{Value: vv.Value}, true
	case values.OrdinalValue:
		return values.OrdinalOutput{Value: vv.Value}, true
	case values.PercentageValue:
		return values.PercentageOutput{Value: vv.Value}, true
	case values.TemperatureValue:
		return values.TemperatureOutput{Value: vv.Value, Unit: vv.Unit, Latent: vv.Latent}, true
	case values.AmountOfMoneyValue:
		return values.AmountOfMoneyOutput{Value: vv.Value, Precision: vv.Precision, Unit: vv.Unit}, true
	case values.DurationValue:
		return values.DurationOutput{Period: vv.Period, Precision: vv.Precision}, true
	case values.Datetime:
		return projectDatetime(vv, anchor, ctx)
	default:
		return nil, false
	}
}

func projectDatetime(dt values.Datetime, anchor rustling.Moment, ctx *calendar.Context) (values.Output, bool) {
	dt = dimension.Assign(dt)
	walker := dt.Constraint.ToWalker(anchor, ctx)
	iv, ok := walker.First()
	if !ok {
		return nil, false
	}

	if dt.HasDirection {
		single := values.DatetimeOutput{
			Grain: iv.Grain, Precision: dt.Precision, Latent: dt.Latent, Subtype: dt.DatetimeKind,
		}
		if dt.Direction == calendar.DirectionBefore {
			single.Moment = iv.End.T
		} else {
			single.Moment = iv.Start.T
		}
		return values.DatetimeIntervalOutput{
			IntervalKind: values.DirectionToIntervalKind(dt.Direction),
			Start:        iv.Start.T, End: iv.End.T,
			Precision: dt.Precision, Latent: dt.Latent, Subtype: dt.DatetimeKind,
		}, true
	}

	if !iv.Unbounded && iv.Start.Before(iv.End) && dt.PeriodForm {
		return values.DatetimeIntervalOutput{
			IntervalKind: values.IntervalBetween,
			Start:        iv.Start.T, End: iv.End.T,
			Precision: dt.Precision, Latent: dt.Latent, Subtype: dt.DatetimeKind,
		}, true
	}

	return values.DatetimeOutput{
		Moment: iv.Start.T, Grain: iv.Grain,
		Precision: dt.Precision, Latent: dt.Latent, Subtype: dt.DatetimeKind,
	}, true
}
