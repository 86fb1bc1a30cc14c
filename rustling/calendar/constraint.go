// Package calendar implements the Calendar Algebra (CA): the value layer
// defining grains, instants, intervals, periods, and constraints — lazy,
// anchor-relative descriptions of time sets — together with the composition
// operators (intersect, span-to, shift-by-period, nth-occurrence,
// cycle-relative) and the walker that resolves a constraint against an
// anchor.
//
// This is grounded on the teacher's datalog/constraints and
// datalog/executor/time_constraints.go time-range machinery, generalized
// from "a range a storage scan can push down" to "a lazy, possibly infinite,
// bidirectional stream of matching intervals."
package calendar

import (
	"fmt"

	"github.com/thadguidry/rustling-go/rustling"
)

// Weekday mirrors time.Weekday but keeps Monday first, matching the Chinese
// week (星期一 = Monday) rather than Go's Sunday-first convention.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Constraint is a lazy description of a (possibly infinite) set of
// intervals, anchored relative to a caller-supplied Moment. Constraints
// never cache: every ToWalker call re-derives the forward/backward streams.
type Constraint interface {
	// GrainLeft and GrainRight name the constraint's two bounding grains
	// (for most leaf constraints they're equal); GrainMin is their finer of
	// the two. The Dimension Mapper (§4.4) consults all three.
	GrainLeft() rustling.Grain
	GrainRight() rustling.Grain
	GrainMin() rustling.Grain

	// NotImmediate reports whether "this X" semantics should exclude the
	// anchor's own bucket (edge policy, §4.1).
	NotImmediate() bool

	// ToWalker yields the two-direction lazy interval stream described in
	// §4.1's walker contract, anchored at anchor.
	ToWalker(anchor rustling.Moment, ctx *Context) *Walker

	// String renders a short debug form, matching the teacher's
	// String()-on-every-value idiom (query/types.go).
	String() string
}

// Context carries ambient resolution settings a constraint's walker needs
// but which aren't part of the constraint tree itself — presently just the
// first weekday of the week, since "this week" / "last week" differ by
// locale convention. Chinese convention is Monday-first.
type Context struct {
	WeekStart Weekday
}

// DefaultContext is the Chinese-locale default: weeks start on Monday.
func DefaultContext() *Context {
	return &Context{WeekStart: Monday}
}

// Cycle yields the nth occurrence (signed) of grain g relative to the
// anchor's g-bucket; n=0 is "this", -1 "last", 1 "next".
type Cycle struct {
	Grain        rustling.Grain
	N            int
	notImmediate bool
}

// NewCycle builds a Cycle(g, n) constraint.
func NewCycle(g rustling.Grain, n int) *Cycle {
	return &Cycle{Grain: g, N: n}
}

// NotImmediateVariant returns a copy of c whose NotImmediate() reports true,
// used by cycle_n_not_immediate / the_nth_not_immediate (§4.1).
func (c *Cycle) NotImmediateVariant() *Cycle {
	cp := *c
	cp.notImmediate = true
	return &cp
}

func (c *Cycle) GrainLeft() rustling.Grain  { return c.Grain }
func (c *Cycle) GrainRight() rustling.Grain { return c.Grain }
func (c *Cycle) GrainMin() rustling.Grain   { return c.Grain }
func (c *Cycle) NotImmediate() bool         { return c.notImmediate }
func (c *Cycle) String() string {
	return fmt.Sprintf("Cycle(%s, %d)", c.Grain, c.N)
}

func (c *Cycle) ToWalker(anchor rustling.Moment, ctx *Context) *Walker {
	bucket := anchorBucket(anchor, c.Grain, ctx)
	seed := bucket.Add(rustling.NewPeriod(rustling.NewPeriodComp(c.Grain, int64(c.N))))
	interval := bucketInterval(seed, c.Grain, ctx)
	return singleIntervalWalker(interval, anchor)
}

// MonthOfYear matches all intervals whose month equals Month (1-12).
type MonthOfYear struct {
	Month        int
	notImmediate bool
}

func NewMonthOfYear(month int) *MonthOfYear { return &MonthOfYear{Month: month} }

func (m *MonthOfYear) GrainLeft() rustling.Grain  { return rustling.Month }
func (m *MonthOfYear) GrainRight() rustling.Grain { return rustling.Month }
func (m *MonthOfYear) GrainMin() rustling.Grain   { return rustling.Month }
func (m *MonthOfYear) NotImmediate() bool         { return m.notImmediate }
func (m *MonthOfYear) String() string             { return fmt.Sprintf("MonthOfYear(%d)", m.Month) }

func (m *MonthOfYear) ToWalker(anchor rustling.Moment, ctx *Context) *Walker {
	return &Walker{
		forward:  yearlyMonthSeq(anchor, m.Month, 1),
		backward: yearlyMonthSeq(anchor, m.Month, -1),
	}
}

// DayOfMonth matches all intervals whose day-of-month equals Day (1-31).
type DayOfMonth struct {
	Day          int
	notImmediate bool
}

func NewDayOfMonth(day int) *DayOfMonth { return &DayOfMonth{Day: day} }

func (d *DayOfMonth) GrainLeft() rustling.Grain  { return rustling.Day }
func (d *DayOfMonth) GrainRight() rustling.Grain { return rustling.Day }
func (d *DayOfMonth) GrainMin() rustling.Grain   { return rustling.Day }
func (d *DayOfMonth) NotImmediate() bool         { return d.notImmediate }
func (d *DayOfMonth) String() string             { return fmt.Sprintf("DayOfMonth(%d)", d.Day) }

func (d *DayOfMonth) ToWalker(anchor rustling.Moment, ctx *Context) *Walker {
	return &Walker{
		forward:  monthlyDaySeq(anchor, d.Day, 1),
		backward: monthlyDaySeq(anchor, d.Day, -1),
	}
}

// DayOfWeek matches all intervals whose weekday equals Weekday.
type DayOfWeek struct {
	Weekday      Weekday
	notImmediate bool
}

func NewDayOfWeek(w Weekday) *DayOfWeek { return &DayOfWeek{Weekday: w} }

func (d *DayOfWeek) GrainLeft() rustling.Grain  { return rustling.Day }
func (d *DayOfWeek) GrainRight() rustling.Grain { return rustling.Day }
func (d *DayOfWeek) GrainMin() rustling.Grain   { return rustling.Day }
func (d *DayOfWeek) NotImmediate() bool         { return d.notImmediate }
func (d *DayOfWeek) String() string             { return fmt.Sprintf("DayOfWeek(%d)", d.Weekday) }

func (d *DayOfWeek) NotImmediateVariant() *DayOfWeek {
	cp := *d
	cp.notImmediate = true
	return &cp
}

func (d *DayOfWeek) ToWalker(anchor rustling.Moment, ctx *Context) *Walker {
	return &Walker{
		forward:  weeklyDaySeq(anchor, d.Weekday, 1),
		backward: weeklyDaySeq(anchor, d.Weekday, -1),
	}
}

// TimeOfDay is a daily recurrence at Hour:Minute. If Ambiguous12h is true
// (bare "h" with no am/pm marker), the constraint matches both the am and
// the pm occurrence each day.
type TimeOfDay struct {
	Hour         int
	Minute       int
	Ambiguous12h bool
	notImmediate bool
}

func NewTimeOfDay(hour, minute int, ambiguous12h bool) *TimeOfDay {
	return &TimeOfDay{Hour: hour, Minute: minute, Ambiguous12h: ambiguous12h}
}

func (t *TimeOfDay) GrainLeft() rustling.Grain  { return rustling.Minute }
func (t *TimeOfDay) GrainRight() rustling.Grain { return rustling.Minute }
func (t *TimeOfDay) GrainMin() rustling.Grain   { return rustling.Minute }
func (t *TimeOfDay) NotImmediate() bool         { return t.notImmediate }
func (t *TimeOfDay) String() string {
	return fmt.Sprintf("TimeOfDay(%02d:%02d, ambiguous=%v)", t.Hour, t.Minute, t.Ambiguous12h)
}

func (t *TimeOfDay) ToWalker(anchor rustling.Moment, ctx *Context) *Walker {
	return &Walker{
		forward:  dailyTimeSeq(anchor, t.Hour, t.Minute, t.Ambiguous12h, 1),
		backward: dailyTimeSeq(anchor, t.Hour, t.Minute, t.Ambiguous12h, -1),
	}
}

// Intersect yields intervals in both A and B; its grain is min(grain(A),
// grain(B)). If the two forms are mutually exclusive (e.g. two different
// DayOfWeek constraints) the resulting stream is empty.
type Intersect struct {
	A, B Constraint
}

func NewIntersect(a, b Constraint) *Intersect { return &Intersect{A: a, B: b} }

func (i *Intersect) GrainLeft() rustling.Grain  { return i.A.GrainLeft() }
func (i *Intersect) GrainRight() rustling.Grain { return i.B.GrainRight() }
func (i *Intersect) GrainMin() rustling.Grain {
	return rustling.Min(i.A.GrainMin(), i.B.GrainMin())
}
func (i *Intersect) NotImmediate() bool { return i.A.NotImmediate() || i.B.NotImmediate() }
func (i *Intersect) String() string     { return fmt.Sprintf("Intersect(%s, %s)", i.A, i.B) }

func (i *Intersect) ToWalker(anchor rustling.Moment, ctx *Context) *Walker {
	return intersectWalker(i.A, i.B, anchor, ctx)
}

// Translate shifts constraint C by period P.
type Translate struct {
	C Constraint
	P rustling.Period
}

func NewTranslate(c Constraint, p rustling.Period) *Translate { return &Translate{C: c, P: p} }

func (t *Translate) GrainLeft() rustling.Grain  { return t.C.GrainLeft() }
func (t *Translate) GrainRight() rustling.Grain { return t.C.GrainRight() }
func (t *Translate) GrainMin() rustling.Grain   { return t.C.GrainMin() }
func (t *Translate) NotImmediate() bool         { return false }
func (t *Translate) String() string             { return fmt.Sprintf("Translate(%s, %v)", t.C, t.P) }

func (t *Translate) ToWalker(anchor rustling.Moment, ctx *Context) *Walker {
	inner := t.C.ToWalker(anchor, ctx)
	return &Walker{
		forward:  shiftSeq(inner.forward, t.P),
		backward: shiftSeq(inner.backward, t.P),
	}
}

// AnchorPoint is the trivial constraint matching exactly the anchor instant
// as a zero-width Second-grain interval. It exists so duration arithmetic
// (ago()/inPresent(), §4.1) has something concrete to Translate: "two weeks
// from now" is Translate(AnchorPoint{}, +2 weeks).
type AnchorPoint struct{}

func (AnchorPoint) GrainLeft() rustling.Grain  { return rustling.Second }
func (AnchorPoint) GrainRight() rustling.Grain { return rustling.Second }
func (AnchorPoint) GrainMin() rustling.Grain   { return rustling.Second }
func (AnchorPoint) NotImmediate() bool         { return false }
func (AnchorPoint) String() string             { return "AnchorPoint" }

func (AnchorPoint) ToWalker(anchor rustling.Moment, ctx *Context) *Walker {
	iv := rustling.NewInterval(anchor, anchor, rustling.Second)
	return singleIntervalWalker(iv, anchor)
}

// Span returns the interval from A.Start to B.End (or B.Start if not
// inclusive). When A > B (e.g. Friday 18:00 -> Monday 00:00) B is taken to
// be its next occurrence strictly after A (§4.1).
type Span struct {
	A, B      Constraint
	Inclusive bool
}

func NewSpan(a, b Constraint, inclusive bool) *Span { return &Span{A: a, B: b, Inclusive: inclusive} }

func (s *Span) GrainLeft() rustling.Grain  { return s.A.GrainLeft() }
func (s *Span) GrainRight() rustling.Grain { return s.B.GrainRight() }
func (s *Span) GrainMin() rustling.Grain   { return rustling.Min(s.A.GrainMin(), s.B.GrainMin()) }
func (s *Span) NotImmediate() bool         { return false }
func (s *Span) String() string             { return fmt.Sprintf("Span(%s, %s, incl=%v)", s.A, s.B, s.Inclusive) }

func (s *Span) ToWalker(anchor rustling.Moment, ctx *Context) *Walker {
	return spanWalker(s.A, s.B, s.Inclusive, anchor, ctx)
}

// TheNth selects the kth (0-indexed, signed) occurrence of C relative to the
// anchor.
type TheNth struct {
	C            Constraint
	K            int
	notImmediate bool
}

func NewTheNth(c Constraint, k int) *TheNth { return &TheNth{C: c, K: k} }

// NewTheNthNotImmediate selects 0 unless it overlaps the anchor, in which
// case 1 (the_nth_not_immediate(0), §4.1).
func NewTheNthNotImmediate(c Constraint, k int) *TheNth {
	return &TheNth{C: c, K: k, notImmediate: true}
}

func (t *TheNth) GrainLeft() rustling.Grain  { return t.C.GrainLeft() }
func (t *TheNth) GrainRight() rustling.Grain { return t.C.GrainRight() }
func (t *TheNth) GrainMin() rustling.Grain   { return t.C.GrainMin() }
func (t *TheNth) NotImmediate() bool         { return t.notImmediate }
func (t *TheNth) String() string             { return fmt.Sprintf("TheNth(%s, %d)", t.C, t.K) }

func (t *TheNth) ToWalker(anchor rustling.Moment, ctx *Context) *Walker {
	return theNthWalker(t.C, t.K, t.notImmediate, anchor, ctx)
}

// LastOf is the last occurrence of Inner within each bucket of Outer.
type LastOf struct {
	Outer, Inner Constraint
}

func NewLastOf(outer, inner Constraint) *LastOf { return &LastOf{Outer: outer, Inner: inner} }

func (l *LastOf) GrainLeft() rustling.Grain  { return l.Inner.GrainLeft() }
func (l *LastOf) GrainRight() rustling.Grain { return l.Inner.GrainRight() }
func (l *LastOf) GrainMin() rustling.Grain   { return l.Inner.GrainMin() }
func (l *LastOf) NotImmediate() bool         { return false }
func (l *LastOf) String() string             { return fmt.Sprintf("LastOf(%s, %s)", l.Outer, l.Inner) }

func (l *LastOf) ToWalker(anchor rustling.Moment, ctx *Context) *Walker {
	return lastOfWalker(l.Outer, l.Inner, anchor, ctx)
}

// NthAfter is the kth g-bucket after Ref (negative = before).
type NthAfter struct {
	Grain        rustling.Grain
	K            int
	Ref          Constraint
	notImmediate bool
}

func NewNthAfter(g rustling.Grain, k int, ref Constraint) *NthAfter {
	return &NthAfter{Grain: g, K: k, Ref: ref}
}

func NewNthAfterNotImmediate(g rustling.Grain, k int, ref Constraint) *NthAfter {
	return &NthAfter{Grain: g, K: k, Ref: ref, notImmediate: true}
}

func (n *NthAfter) GrainLeft() rustling.Grain  { return n.Grain }
func (n *NthAfter) GrainRight() rustling.Grain { return n.Grain }
func (n *NthAfter) GrainMin() rustling.Grain   { return n.Grain }
func (n *NthAfter) NotImmediate() bool         { return n.notImmediate }
func (n *NthAfter) String() string             { return fmt.Sprintf("NthAfter(%s, %d, %s)", n.Grain, n.K, n.Ref) }

func (n *NthAfter) ToWalker(anchor rustling.Moment, ctx *Context) *Walker {
	return nthAfterWalker(n.Grain, n.K, n.notImmediate, n.Ref, anchor, ctx)
}

// AbsoluteYear matches the single fixed calendar year Y, independent of the
// anchor — "2013年" names a year directly rather than counting cycles
// relative to now, so unlike Cycle its walker is a single interval on both
// sides of the anchor.
type AbsoluteYear struct {
	Y int
}

func NewAbsoluteYear(y int) *AbsoluteYear { return &AbsoluteYear{Y: y} }

func (a *AbsoluteYear) GrainLeft() rustling.Grain  { return rustling.Year }
func (a *AbsoluteYear) GrainRight() rustling.Grain { return rustling.Year }
func (a *AbsoluteYear) GrainMin() rustling.Grain   { return rustling.Year }
func (a *AbsoluteYear) NotImmediate() bool         { return false }
func (a *AbsoluteYear) String() string             { return fmt.Sprintf("AbsoluteYear(%d)", a.Y) }

func (a *AbsoluteYear) ToWalker(anchor rustling.Moment, ctx *Context) *Walker {
	start := dateAt(a.Y, 1, 1, 0, 0, 0)
	end := dateAt(a.Y+1, 1, 1, 0, 0, 0)
	iv := rustling.NewInterval(rustling.NewMoment(start), rustling.NewMoment(end), rustling.Year)
	return singleIntervalWalker(iv, anchor)
}

// anchorBucket returns the start of the anchor's own g-bucket.
func anchorBucket(anchor rustling.Moment, g rustling.Grain, ctx *Context) rustling.Moment {
	return anchor.StartOf(g)
}

// bucketInterval returns the [start, end) interval for the g-bucket whose
// start is seed (already aligned via StartOf).
func bucketInterval(seed rustling.Moment, g rustling.Grain, ctx *Context) rustling.Interval {
	start := seed.StartOf(g)
	return rustling.NewInterval(start, start.EndOf(g), g)
}
