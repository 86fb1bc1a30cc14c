// Package rustlingo is the public entry point for the recognition engine:
// build a RuleSet for a language, then Parse text against an anchor to get
// back the resolved values described in §6. It exists as a package distinct
// from rustling itself because rustling/calendar already imports rustling,
// so a top-level surface re-exporting calendar-derived types can't live in
// rustling without an import cycle.
package rustlingo

import (
	"fmt"
	"strings"
	"time"

	"github.com/thadguidry/rustling-go/rustling"
	"github.com/thadguidry/rustling-go/rustling/annotations"
	"github.com/thadguidry/rustling-go/rustling/calendar"
	"github.com/thadguidry/rustling-go/rustling/disambig"
	"github.com/thadguidry/rustling-go/rustling/rules"
	"github.com/thadguidry/rustling-go/rustling/rules/zh"
	"github.com/thadguidry/rustling-go/rustling/values"
	"github.com/thadguidry/rustling-go/rustling/weights"
)

// Options mirrors §6's options record: which output dimensions the caller
// wants (empty/nil means "all of them") and whether latent values (e.g. a
// bare "3" that could be a time-of-day but hasn't been confirmed as one)
// should be surfaced.
type Options struct {
	Dimensions  map[values.OutputKind]bool
	AllowLatent bool
}

func (o Options) toDisambig() disambig.Options {
	return disambig.Options{Dimensions: o.Dimensions, AllowLatent: o.AllowLatent}
}

// ResolvedOutput is one recognized span of input text (§6's ResolvedOutput):
// its byte range, the substring it covers, the projected Value, and a
// Probability the select step's weight contributed.
//
// The disambiguation stage doesn't compute a probability (see
// disambig.Resolved's doc comment): Probability here is the rule weight
// that won the tie-break, normalized against the default uniform weight, so
// a caller that never configures a weights.Store still gets a stable 1.0
// rather than an undocumented zero value.
type ResolvedOutput struct {
	Start, End  int
	Text        string
	Value       values.Output
	Probability float64
}

// RuleSet is a built, ready-to-parse grammar for one language, paired with
// the rule weight store used to break disambiguation ties.
type RuleSet struct {
	Language string
	Rules    []*rules.Rule
	Weights  weights.Store
}

// BuildRuleSet assembles the grammar for language (BCP-47-ish tag; only
// Chinese is implemented so far, matched case-insensitively against "zh"
// and any "zh-" prefixed variant). The weight store defaults to
// weights.DefaultStore; use WithWeights to override it.
func BuildRuleSet(language string) (RuleSet, error) {
	switch {
	case isChinese(language):
		rs, err := zh.BuildChineseRuleSet()
		if err != nil {
			return RuleSet{}, fmt.Errorf("building zh rule set: %w", err)
		}
		return RuleSet{Language: language, Rules: rs, Weights: weights.DefaultStore}, nil
	default:
		return RuleSet{}, fmt.Errorf("rustlingo: unsupported language %q", language)
	}
}

// WithWeights returns a copy of rs using store to break disambiguation
// ties instead of the uniform default.
func (rs RuleSet) WithWeights(store weights.Store) RuleSet {
	rs.Weights = store
	return rs
}

func isChinese(lang string) bool {
	return len(lang) >= 2 && strings.EqualFold(lang[:2], "zh") && (len(lang) == 2 || lang[2] == '-')
}

// Parse runs the full recognition pipeline (§4.2-§4.4) over text: chart
// parse every rule in rs, filter and select a non-overlapping covering
// subset, then project each survivor through the Calendar Algebra against
// the anchor (Unix epoch seconds, interpreted in local time per §6 — the
// engine performs no timezone conversion). A nil tracer disables event
// collection entirely.
func Parse(rs RuleSet, text string, anchorSecs int64, opts Options, tracer rules.Tracer) ([]ResolvedOutput, error) {
	if len(rs.Rules) == 0 {
		return nil, fmt.Errorf("rustlingo: empty rule set")
	}
	anchor := rustling.AnchorFromUnix(anchorSecs)
	ctx := calendar.DefaultContext()
	store := rs.Weights
	if store == nil {
		store = weights.DefaultStore
	}

	start := time.Now()
	if tracer != nil {
		tracer.Event(annotations.ParseInvoked, fmt.Sprintf("%d runes", len([]rune(text))))
	}
	items := rules.Parse(rs.Rules, text, tracer)

	selected := disambig.FilterAndSelect(items, opts.toDisambig(), store)
	if tracer != nil {
		tracer.Event(annotations.DisambigSelected, fmt.Sprintf("%d of %d chart items selected", len(selected), len(items)))
	}

	resolved := disambig.Project(text, selected, anchor, ctx, opts.toDisambig())

	out := make([]ResolvedOutput, 0, len(resolved))
	for _, r := range resolved {
		out = append(out, ResolvedOutput{
			Start: r.Start, End: r.End, Text: r.Text, Value: r.Value,
			Probability: weightFor(selected, r, store),
		})
	}
	if tracer != nil {
		tracer.Event(annotations.ParseCompleted, fmt.Sprintf("resolved %d spans in %s", len(out), time.Since(start)))
	}
	return out, nil
}

// weightFor recovers the rule weight behind a projected Resolved value by
// matching its span back to the selected chart item that produced it
// (Project doesn't carry the rule id forward onto Resolved, so this is the
// only place left to ask the weight store).
func weightFor(selected []rules.Item, r disambig.Resolved, store weights.Store) float64 {
	for _, it := range selected {
		if it.Start == r.Start && it.End == r.End {
			return store.Weight(it.RuleID)
		}
	}
	return store.Weight("")
}
