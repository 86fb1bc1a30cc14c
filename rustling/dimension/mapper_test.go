package dimension

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thadguidry/rustling-go/rustling"
	"github.com/thadguidry/rustling-go/rustling/calendar"
	"github.com/thadguidry/rustling-go/rustling/values"
)

func TestAssignDateGrain(t *testing.T) {
	d := values.NewDatetime(calendar.NewCycle(rustling.Day, 1), values.FormEmpty)
	require.Equal(t, values.DatetimeKindDate, AssignDatetimeKind(d))
}

func TestAssignTimeGrain(t *testing.T) {
	d := values.NewDatetime(calendar.NewTimeOfDay(9, 30, false), values.FormTimeOfDay)
	require.Equal(t, values.DatetimeKindTime, AssignDatetimeKind(d))
}

func TestAssignDatePeriod(t *testing.T) {
	d := values.NewDatetime(calendar.NewCycle(rustling.Week, 0), values.FormEmpty)
	d.PeriodForm = true
	require.Equal(t, values.DatetimeKindDatePeriod, AssignDatetimeKind(d))
}

func TestAssignFullInstantIsDatetimeComplement(t *testing.T) {
	day := calendar.NewCycle(rustling.Day, 1)
	tod := calendar.NewTimeOfDay(15, 30, false)
	intersected := values.NewDatetime(day, values.FormEmpty).Intersect(values.NewDatetime(tod, values.FormTimeOfDay))
	require.Equal(t, values.DatetimeKindDatetime, AssignDatetimeKind(intersected))
}

func TestAssignCopiesRatherThanMutatesInPlace(t *testing.T) {
	d := values.NewDatetime(calendar.NewCycle(rustling.Day, 1), values.FormEmpty)
	require.Equal(t, values.DatetimeKindDatetime, d.DatetimeKind, "zero value before Assign")
	assigned := Assign(d)
	require.Equal(t, values.DatetimeKindDate, assigned.DatetimeKind)
	require.Equal(t, values.DatetimeKindDatetime, d.DatetimeKind, "original must be unaffected")
}
