package calendar

import (
	"time"

	"github.com/thadguidry/rustling-go/rustling"
)

// IntervalSeq is a lazy, possibly infinite sequence of intervals. Calling it
// yields the head interval, a continuation to fetch the rest, and whether
// there was a head at all (false means the sequence is exhausted). This is
// the "generator realized as a cursor object" the design notes call out as
// an acceptable implementation strategy for the two-direction walker.
type IntervalSeq func() (rustling.Interval, IntervalSeq, bool)

// Walker is the two-direction lazy interval stream derived from a
// constraint: Forward yields intervals at or after the anchor, Backward
// yields intervals at or before it. Neither stream caches — re-walking a
// constraint always re-derives both from scratch (§3 Lifecycle).
type Walker struct {
	forward  IntervalSeq
	backward IntervalSeq
}

// Forward returns the forward-direction sequence.
func (w *Walker) Forward() IntervalSeq { return w.forward }

// Backward returns the backward-direction sequence.
func (w *Walker) Backward() IntervalSeq { return w.backward }

// First returns the projection the Disambiguation & Output stage uses
// (§4.3 step 4): the first forward match, falling back to the last
// backward match (i.e. the first item the backward stream yields) if
// forward is empty.
func (w *Walker) First() (rustling.Interval, bool) {
	if iv, _, ok := w.forward(); ok {
		return iv, true
	}
	if iv, _, ok := w.backward(); ok {
		return iv, true
	}
	return rustling.Interval{}, false
}

// emptySeq never yields anything.
func emptySeq() (rustling.Interval, IntervalSeq, bool) {
	return rustling.Interval{}, emptySeq, false
}

// onceSeq yields iv exactly once.
func onceSeq(iv rustling.Interval) IntervalSeq {
	return func() (rustling.Interval, IntervalSeq, bool) {
		return iv, emptySeq, true
	}
}

// firstOf drains at most one item from a sequence.
func firstOf(seq IntervalSeq) (rustling.Interval, bool) {
	iv, _, ok := seq()
	return iv, ok
}

// take collects up to n items from seq, in order.
func take(seq IntervalSeq, n int) []rustling.Interval {
	out := make([]rustling.Interval, 0, n)
	for i := 0; i < n; i++ {
		iv, rest, ok := seq()
		if !ok {
			break
		}
		out = append(out, iv)
		seq = rest
	}
	return out
}

// maxWalkerSteps bounds internal generator advances so an unsatisfiable
// intersection (e.g. two contradictory DayOfWeek constraints) terminates
// instead of looping forever; the result is simply an empty stream past
// this many candidates, matching §4.1's "yields empty stream" wording for
// mutually exclusive forms.
const maxWalkerSteps = 2000

// singleIntervalWalker classifies one concrete interval into the
// appropriate direction(s) relative to anchor: it belongs to the forward
// stream if it hasn't ended before it (End >= anchor) and to the backward stream
// if it has already started (Start <= anchor). A bucket straddling the
// anchor (the common "this X" case) legitimately belongs to both.
func singleIntervalWalker(iv rustling.Interval, anchor rustling.Moment) *Walker {
	w := &Walker{forward: emptySeq, backward: emptySeq}
	if iv.Unbounded || iv.End.After(anchor) || iv.End.Equal(anchor) {
		w.forward = onceSeq(iv)
	}
	if !iv.Start.After(anchor) {
		w.backward = onceSeq(iv)
	}
	return w
}

// seqFromIndex produces a lazy sequence of intervals built by repeatedly
// applying build(idx) for idx = start, start+step, start+2*step, ...,
// stopping as soon as accept(interval) holds (or after maxWalkerSteps
// attempts, whichever comes first).
func seqFromIndex(start, step int, build func(idx int) rustling.Interval, accept func(rustling.Interval) bool) IntervalSeq {
	var next func(idx, stepsLeft int) IntervalSeq
	next = func(idx, stepsLeft int) IntervalSeq {
		return func() (rustling.Interval, IntervalSeq, bool) {
			i, left := idx, stepsLeft
			for left > 0 {
				iv := build(i)
				i += step
				left--
				if accept(iv) {
					return iv, next(i, left), true
				}
			}
			return rustling.Interval{}, emptySeq, false
		}
	}
	return next(start, maxWalkerSteps)
}

// yearlyMonthSeq walks year-by-year occurrences of the given calendar
// month (1-12), starting at the anchor's year and stepping by dir (+1 or
// -1 years per call), filtering to the forward (End>=anchor) or backward
// (Start<=anchor) half depending on dir's sign convention used by callers.
func yearlyMonthSeq(anchor rustling.Moment, month int, dir int) IntervalSeq {
	anchorYear := anchor.StartOf(rustling.Year).T.Year()
	build := func(idx int) rustling.Interval {
		y := anchorYear + idx
		start := rustling.NewMoment(dateAt(y, month, 1, 0, 0, 0))
		return rustling.NewInterval(start, start.EndOf(rustling.Month), rustling.Month)
	}
	accept := acceptForDir(anchor, dir)
	return seqFromIndex(0, dir, build, accept)
}

// monthlyDaySeq walks month-by-month occurrences of the given day-of-month
// (1-31), skipping months shorter than that day.
func monthlyDaySeq(anchor rustling.Moment, day int, dir int) IntervalSeq {
	anchorMonthStart := anchor.StartOf(rustling.Month)
	build := func(idx int) rustling.Interval {
		t := anchorMonthStart.T.AddDate(0, idx, 0)
		lastDay := rustling.NewMoment(t).EndOf(rustling.Month).T.AddDate(0, 0, -1).Day()
		d := day
		if d > lastDay {
			// Out-of-range day for this month: emit a zero-width sentinel
			// that will never satisfy either accept predicate, effectively
			// skipping the month without terminating the sequence.
			return rustling.Interval{Start: anchor, End: anchor}
		}
		start := rustling.NewMoment(dateAt(t.Year(), int(t.Month()), d, 0, 0, 0))
		return rustling.NewInterval(start, start.EndOf(rustling.Day), rustling.Day)
	}
	accept := acceptForDir(anchor, dir)
	return seqFromIndex(0, dir, build, func(iv rustling.Interval) bool {
		if iv.Start.Equal(iv.End) {
			return false
		}
		return accept(iv)
	})
}

// weeklyDaySeq walks week-by-week occurrences of the given weekday.
func weeklyDaySeq(anchor rustling.Moment, wd Weekday, dir int) IntervalSeq {
	weekStart := anchor.StartOf(rustling.Week)
	build := func(idx int) rustling.Interval {
		start := rustling.NewMoment(weekStart.T.AddDate(0, 0, idx*7+int(wd)))
		return rustling.NewInterval(start, start.EndOf(rustling.Day), rustling.Day)
	}
	accept := acceptForDir(anchor, dir)
	return seqFromIndex(0, dir, build, accept)
}

// dailyTimeSeq walks day-by-day occurrences of a time-of-day. When
// ambiguous12h is set both the am and pm occurrence of each day are
// produced (am first going forward, pm first going backward), modeling "a
// bare numeral could mean either."
func dailyTimeSeq(anchor rustling.Moment, hour, minute int, ambiguous12h bool, dir int) IntervalSeq {
	dayStart := anchor.StartOf(rustling.Day)
	variants := []int{hour}
	if ambiguous12h && hour < 12 {
		variants = []int{hour, hour + 12}
	}
	if dir < 0 {
		// reverse so the closer-to-anchor variant (pm) is tried first when
		// walking backward.
		for i, j := 0, len(variants)-1; i < j; i, j = i+1, j-1 {
			variants[i], variants[j] = variants[j], variants[i]
		}
	}
	n := len(variants)
	build := func(idx int) rustling.Interval {
		dayIdx, slot := idx/n, idx%n
		if idx < 0 {
			// Backward: idx -1..-n stay on the anchor day's remaining
			// variants before stepping to the previous day.
			m := -idx
			dayIdx, slot = -(m / n), m%n
		}
		variant := variants[slot]
		start := rustling.NewMoment(dayStart.T.AddDate(0, 0, dayIdx)).Add(
			rustling.NewPeriod(rustling.Hours(int64(variant)), rustling.Minutes(int64(minute))))
		return rustling.NewInterval(start, start.Add(rustling.NewPeriod(rustling.Minutes(1))), rustling.Minute)
	}
	accept := acceptForDir(anchor, dir)
	return seqFromIndex(0, dir, build, accept)
}

// acceptForDir returns the forward/backward membership test used by every
// leaf sequence above: for dir>0 (walking forward) an interval qualifies
// once it hasn't ended yet; for dir<0 (walking backward) once it has
// already started.
func acceptForDir(anchor rustling.Moment, dir int) func(rustling.Interval) bool {
	if dir >= 0 {
		return func(iv rustling.Interval) bool { return iv.End.After(anchor) || iv.End.Equal(anchor) }
	}
	return func(iv rustling.Interval) bool { return !iv.Start.After(anchor) }
}

// shiftSeq shifts every interval produced by seq forward by period p.
func shiftSeq(seq IntervalSeq, p rustling.Period) IntervalSeq {
	return func() (rustling.Interval, IntervalSeq, bool) {
		iv, rest, ok := seq()
		if !ok {
			return rustling.Interval{}, emptySeq, false
		}
		shifted := rustling.NewInterval(iv.Start.Add(p), iv.End.Add(p), iv.Grain)
		shifted.Unbounded = iv.Unbounded
		return shifted, shiftSeq(rest, p), true
	}
}

// resolveNearest picks the single interval a constraint is "really talking
// about" relative to anchor: the first forward match, or else the first
// backward match. Used by Span and LastOf, which both need one concrete
// reference interval before they can do their own arithmetic.
func resolveNearest(c Constraint, anchor rustling.Moment, ctx *Context) (rustling.Interval, bool) {
	w := c.ToWalker(anchor, ctx)
	return w.First()
}

// intersectWalker merges two constraints' streams into the stream of
// overlapping intervals, finer grain wins. Implemented as a bounded
// merge over each side's own forward/backward sequence (ascending by
// start going forward, descending by start going backward).
func intersectWalker(a, b Constraint, anchor rustling.Moment, ctx *Context) *Walker {
	aw := a.ToWalker(anchor, ctx)
	bw := b.ToWalker(anchor, ctx)
	return &Walker{
		forward:  mergeIntersect(aw.forward, bw.forward, true),
		backward: mergeIntersect(aw.backward, bw.backward, false),
	}
}

func overlap(a, b rustling.Interval) (rustling.Interval, bool) {
	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}
	end := a.End
	if !a.Unbounded && (b.Unbounded || b.End.Before(end)) {
		end = b.End
	} else if a.Unbounded {
		end = b.End
	}
	if !start.Before(end) {
		return rustling.Interval{}, false
	}
	return rustling.NewInterval(start, end, rustling.Min(a.Grain, b.Grain)), true
}

// mergeIntersect performs a lazy merge-join over two monotonic interval
// sequences, producing their pairwise overlaps in order. ascending selects
// whether "smaller" means earlier start (forward direction) or later start
// (backward direction).
func mergeIntersect(a, b IntervalSeq, ascending bool) IntervalSeq {
	var step func(a, b IntervalSeq, budget int) IntervalSeq
	step = func(a, b IntervalSeq, budget int) IntervalSeq {
		return func() (rustling.Interval, IntervalSeq, bool) {
			curA, restA, okA := a()
			curB, restB, okB := b()
			budgetLeft := budget
			for okA && okB && budgetLeft > 0 {
				if iv, ok := overlap(curA, curB); ok {
					return iv, step(restA, restB, budgetLeft-1), true
				}
				advanceA := false
				if ascending {
					advanceA = rustling.CompareMoments(curA.End, curB.End) <= 0
				} else {
					advanceA = rustling.CompareMoments(curA.Start, curB.Start) >= 0
				}
				if advanceA {
					curA, restA, okA = restA()
				} else {
					curB, restB, okB = restB()
				}
				budgetLeft--
			}
			return rustling.Interval{}, emptySeq, false
		}
	}
	return step(a, b, maxWalkerSteps)
}

// spanWalker resolves Span(A, B, inclusive): the interval from A's
// instant to B's instant. B is walked forward starting at A's own start
// (not the caller's anchor) so "Friday 18:00 -> Monday 00:00" correctly
// picks the Monday after that Friday rather than one near the real anchor.
func spanWalker(a, b Constraint, inclusive bool, anchor rustling.Moment, ctx *Context) *Walker {
	aIv, ok := resolveNearest(a, anchor, ctx)
	if !ok {
		return &Walker{forward: emptySeq, backward: emptySeq}
	}
	bw := b.ToWalker(aIv.Start, ctx)
	bIv, ok := firstOf(bw.forward)
	if !ok {
		return &Walker{forward: emptySeq, backward: emptySeq}
	}
	end := bIv.End
	if !inclusive {
		end = bIv.Start
	}
	result := rustling.NewInterval(aIv.Start, end, rustling.Min(aIv.Grain, bIv.Grain))
	return singleIntervalWalker(result, anchor)
}

// theNthWalker resolves TheNth(C, k, notImmediate): the k-th (0-indexed,
// signed) occurrence of C relative to the anchor. k>=0 counts forward
// (k=0 is the nearest upcoming/containing occurrence), k<0 counts backward.
func theNthWalker(c Constraint, k int, notImmediate bool, anchor rustling.Moment, ctx *Context) *Walker {
	w := c.ToWalker(anchor, ctx)
	if k >= 0 {
		seq := w.forward
		if notImmediate && k == 0 {
			if iv, ok := firstOf(seq); ok && iv.Contains(anchor) {
				_, rest, _ := seq()
				seq = rest
			}
		}
		items := take(seq, k+1)
		if len(items) < k+1 {
			return &Walker{forward: emptySeq, backward: emptySeq}
		}
		return singleIntervalWalker(items[k], anchor)
	}
	items := take(w.backward, -k)
	if len(items) < -k {
		return &Walker{forward: emptySeq, backward: emptySeq}
	}
	return singleIntervalWalker(items[-k-1], anchor)
}

// lastOfWalker resolves LastOf(outer, inner): the last occurrence of inner
// inside each bucket of outer. The outer bucket nearest the anchor is
// located first, then inner is walked backward from that bucket's end.
func lastOfWalker(outer, inner Constraint, anchor rustling.Moment, ctx *Context) *Walker {
	outerIv, ok := resolveNearest(outer, anchor, ctx)
	if !ok {
		return &Walker{forward: emptySeq, backward: emptySeq}
	}
	innerWalker := inner.ToWalker(outerIv.End, ctx)
	// The bucket's End is exclusive: skip an inner occurrence starting
	// exactly there (e.g. the Monday that begins the next month).
	innerIv, rest, ok := innerWalker.backward()
	for ok && !innerIv.Start.Before(outerIv.End) {
		innerIv, rest, ok = rest()
	}
	if !ok || innerIv.Start.Before(outerIv.Start) {
		return &Walker{forward: emptySeq, backward: emptySeq}
	}
	return singleIntervalWalker(innerIv, anchor)
}

// nthAfterWalker resolves NthAfter(g, k, ref, notImmediate): the k-th
// g-bucket after ref (negative k = before). notImmediate with k==0 means
// "not ref's own bucket", which this treats as k=1 (the very next bucket).
func nthAfterWalker(g rustling.Grain, k int, notImmediate bool, ref Constraint, anchor rustling.Moment, ctx *Context) *Walker {
	refIv, ok := resolveNearest(ref, anchor, ctx)
	if !ok {
		return &Walker{forward: emptySeq, backward: emptySeq}
	}
	if notImmediate && k == 0 {
		k = 1
	}
	seed := refIv.Start.StartOf(g).Add(rustling.NewPeriod(rustling.NewPeriodComp(g, int64(k))))
	interval := bucketInterval(seed, g, ctx)
	return singleIntervalWalker(interval, anchor)
}

// dateAt is a tiny convenience wrapper so the generator builders above
// read as "the date at (y, m, d, h, mi, s)" in the caller's local zone.
func dateAt(year, month, day, hour, minute, second int) time.Time {
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local)
}
