package rustling

import (
	"errors"
	"fmt"
)

// ConstructionError wraps a failure building a rule set: malformed rule,
// duplicate rule id. Fatal at build time (§7). A bad terminal regex is not
// wrapped here: NewTerminal and RegNegLH use regexp.MustCompile and panic.
type ConstructionError struct {
	Rule string
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("building rule %q: %v", e.Rule, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// NewConstructionError wraps err as a ConstructionError for the named rule.
func NewConstructionError(rule string, err error) error {
	return &ConstructionError{Rule: rule, Err: err}
}

// InputError signals an empty input or an unparseable anchor. Surfaced as a
// parse-level error, never partial output (§7).
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return "invalid input: " + e.Reason }

// NewInputError builds an InputError with the given reason.
func NewInputError(reason string) error {
	return &InputError{Reason: reason}
}

// ErrRuleAction is the sentinel a rule action returns to reject its inputs
// (e.g. February 30th). It is never a parser error: the chart's combine step
// detects it with errors.Is and silently drops the candidate item, and the
// parse continues (§4.2, §7).
var ErrRuleAction = errors.New("rule action rejected its inputs")

// RejectAction wraps a more specific reason while remaining detectable via
// errors.Is(err, ErrRuleAction).
func RejectAction(reason string) error {
	return fmt.Errorf("%w: %s", ErrRuleAction, reason)
}

// IsRuleActionError reports whether err originated from a rejected rule
// action (as opposed to a fatal construction or input error).
func IsRuleActionError(err error) bool {
	return errors.Is(err, ErrRuleAction)
}
