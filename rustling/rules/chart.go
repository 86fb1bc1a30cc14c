package rules

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/thadguidry/rustling-go/rustling"
	"github.com/thadguidry/rustling-go/rustling/values"
)

// Item is one parsed chart entry: a contiguous byte span of the input and
// the Value the rule named RuleID produced for it.
type Item struct {
	Start, End   int
	Value        values.Value
	RuleID       string
	RulePriority int
	// RuleSeq is the rule's position in the rule set's registration order,
	// the last-resort tie-break spec §4.2 calls "(c) earliest rule
	// registration".
	RuleSeq int
}

// Tracer receives chart events as parsing proceeds (§4.2's scan/combine/
// fixpoint phases). A nil Tracer is fine; every call site checks before
// calling it. rustling/annotations provides the concrete implementation
// wired to cmd/rustling's -verbose flag.
type Tracer interface {
	Event(name, detail string)
}

var betweenSlots = regexp.MustCompile(`^[ \t]*`)

type slotCandidate struct {
	End   int
	Match SlotMatch
}

// Parse runs the bottom-up fixpoint chart parser described in §4.2: repeat
// scan+combine passes over every rule at every position until a pass adds
// no new item, then return every item produced (ambiguous derivations
// included — disambiguation happens downstream).
func Parse(rulesList []*Rule, text string, tracer Tracer) []Item {
	chart := make(map[int][]Item)
	seen := make(map[string]bool)
	trace := func(name, detail string) {
		if tracer != nil {
			tracer.Event(name, detail)
		}
	}

	addItem := func(it Item) bool {
		key := fmt.Sprintf("%s|%d|%d|%s", it.RuleID, it.Start, it.End, it.Value.String())
		if seen[key] {
			return false
		}
		seen[key] = true
		chart[it.Start] = append(chart[it.Start], it)
		return true
	}

	trace("chart/scan.begin", fmt.Sprintf("len=%d rules=%d", len(text), len(rulesList)))

	const maxPasses = 64
	for pass := 0; pass < maxPasses; pass++ {
		changed := false
		for ruleSeq, r := range rulesList {
			for pos := 0; pos <= len(text); pos++ {
				for _, cand := range matchSlots(r.Slots, text, pos, chart) {
					val, err := r.Produce(cand.matches)
					if err != nil {
						if rustling.IsRuleActionError(err) {
							continue
						}
						// Any other production error is also treated as a
						// rejected candidate: rule actions only ever signal
						// failure through RejectAction (§7), so a bare error
						// here means a bug in the action, not a bad parse —
						// surfacing it would abort recognition for the whole
						// input over one ambiguous branch, which the chart
						// contract doesn't want.
						continue
					}
					item := Item{
						Start: pos, End: cand.end, Value: val,
						RuleID: *rustling.InternRuleID(r.ID), RulePriority: r.Priority, RuleSeq: ruleSeq,
					}
					if addItem(item) {
						changed = true
					}
				}
			}
		}
		trace("chart/combine.pass", fmt.Sprintf("pass=%d changed=%v", pass, changed))
		if !changed {
			break
		}
	}
	trace("chart/fixpoint", fmt.Sprintf("items=%d", len(seen)))
	trace("chart/scan.done", "")

	var out []Item
	for _, items := range chart {
		out = append(out, items...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		if out[i].End != out[j].End {
			return out[i].End < out[j].End
		}
		if c := rustling.CompareStrings(out[i].RuleID, out[j].RuleID); c != 0 {
			return c < 0
		}
		return rustling.CompareStrings(out[i].Value.String(), out[j].Value.String()) < 0
	})
	return out
}

type ruleMatch struct {
	end     int
	matches []SlotMatch
}

// matchSlots tries to match r.Slots contiguously starting at pos, allowing
// optional inter-slot whitespace, against both the raw text (terminal
// slots) and the already-built chart (predicate slots).
func matchSlots(slots []Slot, text string, pos int, chart map[int][]Item) []ruleMatch {
	if len(slots) == 0 {
		return []ruleMatch{{end: pos}}
	}
	head, rest := slots[0], slots[1:]
	var out []ruleMatch
	for _, cand := range matchOneSlot(head, text, pos, chart) {
		next := cand.End + len(betweenSlots.FindString(text[cand.End:]))
		for _, tailMatch := range matchSlots(rest, text, next, chart) {
			out = append(out, ruleMatch{
				end:     tailMatch.end,
				matches: append([]SlotMatch{cand.Match}, tailMatch.matches...),
			})
		}
	}
	return out
}

func matchOneSlot(slot Slot, text string, pos int, chart map[int][]Item) []slotCandidate {
	if slot.Term != nil {
		groups, end, ok := slot.Term.MatchAt(text, pos)
		if !ok {
			return nil
		}
		return []slotCandidate{{End: end, Match: SlotMatch{Text: text[pos:end], Groups: groups}}}
	}
	var out []slotCandidate
	for _, it := range chart[pos] {
		if slot.Pred.Test(it.Value) {
			out = append(out, slotCandidate{End: it.End, Match: SlotMatch{Text: text[pos:it.End], Value: it.Value}})
		}
	}
	return out
}
