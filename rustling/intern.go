package rustling

import "sync"

// ruleIDIntern interns rule-id strings so the chart, which tags every item
// it produces with a producing-rule id, doesn't repeatedly allocate copies
// of the same small set of debug names. Rule sets are built once at startup
// and shared read-only across parses (§5), so a sync.Map lock-free cache is
// enough; there is no eviction because the id set is bounded by the rule set
// size.
type ruleIDIntern struct {
	cache sync.Map // map[string]*string
}

var globalRuleIDIntern = &ruleIDIntern{}

// InternRuleID returns a canonical *string for s, reusing a previously
// interned value if one exists.
func InternRuleID(s string) *string {
	if v, ok := globalRuleIDIntern.cache.Load(s); ok {
		return v.(*string)
	}
	cp := s
	actual, _ := globalRuleIDIntern.cache.LoadOrStore(s, &cp)
	return actual.(*string)
}
