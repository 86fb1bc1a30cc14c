package rustling

import "time"

// Moment is a wall-clock instant in the caller's local zone. It wraps
// time.Time rather than exposing it directly so the rest of the engine has
// one place to change the underlying representation.
type Moment struct {
	T time.Time
}

// NewMoment wraps a time.Time as a Moment.
func NewMoment(t time.Time) Moment { return Moment{T: t} }

// AnchorFromUnix builds the caller's anchor Moment from the 64-bit signed
// Unix epoch seconds value described in the external interface (§6): the
// engine operates in local time and performs no timezone conversion, so the
// seconds are interpreted directly against time.Local.
func AnchorFromUnix(secs int64) Moment {
	return Moment{T: time.Unix(secs, 0).In(time.Local)}
}

// Add shifts a Moment by a Period, applying components from coarsest to
// finest grain so additions compose the way a calendar would (add years,
// then months, then days, ...). Per §3 normalization is never performed on
// the Period itself, but applying it to a concrete moment still has to walk
// the wall clock forward/backward one grain at a time.
func (m Moment) Add(p Period) Moment {
	t := m.T
	t = t.AddDate(int(p.Get(Year)), 0, 0)
	t = t.AddDate(0, int(p.Get(Quarter))*3, 0)
	t = t.AddDate(0, int(p.Get(Month)), 0)
	t = t.AddDate(0, 0, int(p.Get(Week))*7)
	t = t.AddDate(0, 0, int(p.Get(Day)))
	t = t.Add(time.Duration(p.Get(Hour)) * time.Hour)
	t = t.Add(time.Duration(p.Get(Minute)) * time.Minute)
	t = t.Add(time.Duration(p.Get(Second)) * time.Second)
	return Moment{T: t}
}

// Before, After, Equal delegate to time.Time for ordering.
func (m Moment) Before(o Moment) bool { return m.T.Before(o.T) }
func (m Moment) After(o Moment) bool  { return m.T.After(o.T) }
func (m Moment) Equal(o Moment) bool  { return m.T.Equal(o.T) }

// StartOf truncates m to the start of its grain-bucket (e.g. StartOf(Month)
// returns the first instant of m's month).
func (m Moment) StartOf(g Grain) Moment {
	t := m.T
	switch g {
	case Second:
		return Moment{T: t.Truncate(time.Second)}
	case Minute:
		return Moment{T: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())}
	case Hour:
		return Moment{T: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())}
	case Day:
		return Moment{T: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
	case Week:
		d := Moment{T: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
		// weekday: Monday is the first day of the week.
		wd := int(d.T.Weekday())
		if wd == 0 {
			wd = 7
		}
		return Moment{T: d.T.AddDate(0, 0, -(wd - 1))}
	case Month:
		return Moment{T: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())}
	case Quarter:
		qMonth := ((int(t.Month())-1)/3)*3 + 1
		return Moment{T: time.Date(t.Year(), time.Month(qMonth), 1, 0, 0, 0, 0, t.Location())}
	case Year:
		return Moment{T: time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())}
	}
	return m
}

// EndOf returns the exclusive end of m's grain-bucket (StartOf(g) shifted by
// one grain unit forward).
func (m Moment) EndOf(g Grain) Moment {
	return m.StartOf(g).Add(NewPeriod(NewPeriodComp(g, 1)))
}

// Interval is an oriented, half-open range [Start, End) with a grain. An
// Interval may be open-ended (unbounded End) when used as a walker seed;
// Unbounded reports whether End should be ignored.
type Interval struct {
	Start     Moment
	End       Moment
	Grain     Grain
	Unbounded bool
}

// NewInterval builds a bounded interval at the given grain.
func NewInterval(start, end Moment, g Grain) Interval {
	return Interval{Start: start, End: end, Grain: g}
}

// Duration returns End - Start; meaningless if Unbounded.
func (i Interval) Duration() time.Duration {
	return i.End.T.Sub(i.Start.T)
}

// Contains reports whether m falls in [Start, End).
func (i Interval) Contains(m Moment) bool {
	if m.T.Before(i.Start.T) {
		return false
	}
	if i.Unbounded {
		return true
	}
	return m.T.Before(i.End.T)
}
