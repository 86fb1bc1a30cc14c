// Package annotations is a low-overhead event/tracing system for the
// recognition pipeline, directly grounded on the teacher's
// datalog/annotations package (Event{Name,Start,End,Latency}, hierarchical
// dot-path event name constants, a Handler function type, an
// OutputFormatter for human-readable display).
package annotations

import "time"

// Event name constants, hierarchical dot-path style, naming every phase of
// recognition (§4.2's scan/combine/fixpoint, disambiguation, mapping) and
// the two non-fatal error paths (§7).
const (
	ParseInvoked   = "parse/invoked"
	ParseCompleted = "parse/completed"

	ChartScanBegin    = "chart/scan.begin"
	ChartScanDone     = "chart/scan.done"
	ChartCombinePass  = "chart/combine.pass"
	ChartFixpoint     = "chart/fixpoint"
	DisambigFiltered  = "disambig/filtered"
	DisambigSelected  = "disambig/selected"
	MapperAssigned    = "mapper/assigned"
	ErrorRuleAction   = "error/rule.action"
	ErrorConstruction = "error/construction"
)

// Event is one recorded trace point.
type Event struct {
	Name    string
	Start   time.Time
	End     time.Time
	Latency time.Duration
	Detail  string
}

// Handler processes events as they occur.
type Handler func(event Event)
