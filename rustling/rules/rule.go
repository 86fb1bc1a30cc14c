package rules

import (
	"fmt"

	"github.com/thadguidry/rustling-go/rustling"
	"github.com/thadguidry/rustling-go/rustling/values"
)

// Slot is one position in a rule's pattern: exactly one of Term or Pred is
// set. A tagged union via a two-field struct rather than an interface,
// since a Slot has no behavior of its own beyond "which kind am I" — the
// same flat-struct-variant shape the teacher uses for optional query
// clause fields.
type Slot struct {
	Term *Terminal
	Pred *Predicate
}

// T wraps a Terminal as a Slot.
func T(t Terminal) Slot { return Slot{Term: &t} }

// P wraps a Predicate as a Slot.
func P(p Predicate) Slot { return Slot{Pred: &p} }

// SlotMatch is what a single matched Slot contributes to a Production: the
// raw text it covered, its regex capture groups (terminal slots only), and
// its resolved Value (predicate slots only).
type SlotMatch struct {
	Text   string
	Groups []string
	Value  values.Value
}

// Production builds the rule's output Value from its matched slots, or
// rejects the match via rustling.RejectAction (§7: suppressed, not fatal).
type Production func(matches []SlotMatch) (values.Value, error)

// Rule is one declarative grammar rule: an ordered sequence of 1-5 slots
// and the production that fires when all of them match contiguously.
type Rule struct {
	ID      string
	Slots   []Slot
	Produce Production

	// Priority is the explicit tie-break spec §4.2 calls "(a) rule
	// priority (explicit)"; higher wins. Zero (the default for every
	// rule that doesn't set it) means "no explicit preference", falling
	// through to the later tie-break stages.
	Priority int
}

func newRule(id string, produce Production, slots ...Slot) (*Rule, error) {
	if len(slots) < 1 || len(slots) > 5 {
		return nil, rustling.NewConstructionError(id, fmt.Errorf("arity %d out of range 1-5", len(slots)))
	}
	for _, s := range slots {
		if s.Term == nil && s.Pred == nil {
			return nil, rustling.NewConstructionError(id, fmt.Errorf("empty slot"))
		}
	}
	return &Rule{ID: id, Slots: slots, Produce: produce}, nil
}

// Rule1 through Rule5 are arity-named convenience constructors matching
// the spec's "rule_1".."rule_5" naming; all route through the same
// slice-based Production since Go has no variadic-arity function types.
func Rule1(id string, a Slot, produce Production) (*Rule, error) { return newRule(id, produce, a) }
func Rule2(id string, a, b Slot, produce Production) (*Rule, error) {
	return newRule(id, produce, a, b)
}
func Rule3(id string, a, b, c Slot, produce Production) (*Rule, error) {
	return newRule(id, produce, a, b, c)
}
func Rule4(id string, a, b, c, d Slot, produce Production) (*Rule, error) {
	return newRule(id, produce, a, b, c, d)
}
func Rule5(id string, a, b, c, d, e Slot, produce Production) (*Rule, error) {
	return newRule(id, produce, a, b, c, d, e)
}

// RuleSetBuilder accumulates rules and reports construction errors eagerly,
// matching §7: "construction-time errors ... returned eagerly from
// BuildRuleSet."
type RuleSetBuilder struct {
	rules []*Rule
	seen  map[string]bool
	err   error
}

// NewRuleSetBuilder starts an empty builder.
func NewRuleSetBuilder() *RuleSetBuilder {
	return &RuleSetBuilder{seen: make(map[string]bool)}
}

// Add registers a rule (or its construction error) with the builder. Chain
// calls; the first error short-circuits later Adds and is reported by
// Build.
func (b *RuleSetBuilder) Add(r *Rule, err error) *RuleSetBuilder {
	if b.err != nil {
		return b
	}
	if err != nil {
		b.err = err
		return b
	}
	if b.seen[r.ID] {
		b.err = rustling.NewConstructionError(r.ID, fmt.Errorf("duplicate rule id"))
		return b
	}
	b.seen[r.ID] = true
	b.rules = append(b.rules, r)
	return b
}

// Build finalizes the rule set, surfacing the first construction error
// encountered (if any).
func (b *RuleSetBuilder) Build() ([]*Rule, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.rules, nil
}
