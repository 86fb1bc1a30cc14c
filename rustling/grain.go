// Package rustling implements a multi-dimensional grammar for recognizing
// structured semantic values (numbers, dates, times, durations, money, ...)
// in natural-language Chinese text.
package rustling

import "fmt"

// Grain is the resolution of a temporal value, ordered from finest to
// coarsest. Second < Minute < Hour < Day < Week < Month < Quarter < Year.
type Grain int

const (
	Second Grain = iota
	Minute
	Hour
	Day
	Week
	Month
	Quarter
	Year
)

var grainNames = [...]string{"second", "minute", "hour", "day", "week", "month", "quarter", "year"}

func (g Grain) String() string {
	if g < Second || g > Year {
		return fmt.Sprintf("Grain(%d)", int(g))
	}
	return grainNames[g]
}

// IsTimeGrain reports whether g is one of Second, Minute, Hour.
func (g Grain) IsTimeGrain() bool {
	return g == Second || g == Minute || g == Hour
}

// IsDateGrain reports whether g is one of Day, Week, Month, Quarter, Year.
func (g Grain) IsDateGrain() bool {
	return g == Day || g == Week || g == Month || g == Quarter || g == Year
}

// Min returns the finer (smaller) of two grains.
func Min(a, b Grain) Grain {
	if a < b {
		return a
	}
	return b
}

// Max returns the coarser (larger) of two grains.
func Max(a, b Grain) Grain {
	if a > b {
		return a
	}
	return b
}
