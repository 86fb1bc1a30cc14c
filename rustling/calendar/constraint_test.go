package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thadguidry/rustling-go/rustling"
)

func anchorAt(y int, m time.Month, d, h, min, s int) rustling.Moment {
	return rustling.NewMoment(time.Date(y, m, d, h, min, s, 0, time.Local))
}

func TestAbsoluteYearIsAnchorIndependent(t *testing.T) {
	ctx := DefaultContext()
	c := NewAbsoluteYear(1999)

	for _, anchor := range []rustling.Moment{
		anchorAt(2013, time.February, 12, 4, 30, 0),
		anchorAt(1950, time.January, 1, 0, 0, 0),
		anchorAt(2200, time.December, 31, 23, 59, 59),
	} {
		iv, ok := c.ToWalker(anchor, ctx).First()
		require.True(t, ok)
		require.Equal(t, 1999, iv.Start.T.Year())
		require.Equal(t, rustling.Year, iv.Grain)
	}
}

func TestAbsoluteYearDistinctFromCycle(t *testing.T) {
	ctx := DefaultContext()
	anchor := anchorAt(2013, time.February, 12, 4, 30, 0)

	abs := NewAbsoluteYear(2013)
	absIv, ok := abs.ToWalker(anchor, ctx).First()
	require.True(t, ok)
	require.Equal(t, 2013, absIv.Start.T.Year())

	// Cycle(Year, 1) is "next year" relative to the anchor, not "the year
	// 2013" — on this anchor it resolves to 2014 while AbsoluteYear(2013)
	// stays 2013.
	nextYear := NewCycle(rustling.Year, 1)
	cycleIv, ok := nextYear.ToWalker(anchor, ctx).First()
	require.True(t, ok)
	require.Equal(t, 2014, cycleIv.Start.T.Year())
}

func TestCycleThisLastNext(t *testing.T) {
	ctx := DefaultContext()
	anchor := anchorAt(2013, time.February, 12, 4, 30, 0)

	this := NewCycle(rustling.Month, 0)
	iv, ok := this.ToWalker(anchor, ctx).First()
	require.True(t, ok)
	require.Equal(t, time.February, iv.Start.T.Month())

	last := NewCycle(rustling.Month, -1)
	iv, ok = last.ToWalker(anchor, ctx).First()
	require.True(t, ok)
	require.Equal(t, time.January, iv.Start.T.Month())

	next := NewCycle(rustling.Month, 1)
	iv, ok = next.ToWalker(anchor, ctx).First()
	require.True(t, ok)
	require.Equal(t, time.March, iv.Start.T.Month())
}

func TestDayOfWeekWalksForwardToNextOccurrence(t *testing.T) {
	ctx := DefaultContext()
	// 2013-02-12 is a Tuesday.
	anchor := anchorAt(2013, time.February, 12, 4, 30, 0)

	wed := NewDayOfWeek(Wednesday)
	iv, ok := wed.ToWalker(anchor, ctx).First()
	require.True(t, ok)
	require.Equal(t, time.Wednesday, iv.Start.T.Weekday())
	require.True(t, iv.Start.T.After(anchor.T) || iv.Start.T.Equal(anchor.T))
}
