package annotations

import (
	"sync"
	"time"

	"github.com/thadguidry/rustling-go/rustling/rules"
)

// Collector accumulates events during a single Parse call and forwards
// them to an optional Handler, mirroring the teacher's Collector shape
// (datalog/annotations/types.go) minus the pooled-map optimization, which
// that package needs for per-tuple join telemetry and this one doesn't:
// a single parse emits on the order of tens of events, not millions.
type Collector struct {
	enabled bool
	handler Handler
	events  []Event
	mu      sync.Mutex
}

// NewCollector builds a Collector; a nil handler disables recording
// entirely (the common non-verbose path costs one nil check per event).
func NewCollector(handler Handler) *Collector {
	return &Collector{enabled: handler != nil, handler: handler}
}

// Add records event and forwards it to the handler, if any.
func (c *Collector) Add(event Event) {
	if !c.enabled {
		return
	}
	c.mu.Lock()
	c.events = append(c.events, event)
	c.mu.Unlock()
	if c.handler != nil {
		c.handler(event)
	}
}

// Event records an instantaneous (zero-duration) event with a detail
// string, the common case for chart/disambiguation trace points.
func (c *Collector) Event(name, detail string) {
	now := time.Now()
	c.Add(Event{Name: name, Start: now, End: now, Detail: detail})
}

// Timed records an event spanning [start, now) with its latency.
func (c *Collector) Timed(name string, start time.Time, detail string) {
	end := time.Now()
	c.Add(Event{Name: name, Start: start, End: end, Latency: end.Sub(start), Detail: detail})
}

// Events returns a copy of every event recorded so far.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// AsTracer adapts the Collector to rules.Tracer, so the chart parser can
// emit events without importing this package (rules stays a leaf package;
// annotations depends on it, not the other way around).
func (c *Collector) AsTracer() rules.Tracer { return collectorTracer{c} }

type collectorTracer struct{ c *Collector }

func (t collectorTracer) Event(name, detail string) { t.c.Event(name, detail) }
