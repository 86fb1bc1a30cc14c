package values

import "github.com/thadguidry/rustling-go/rustling/calendar"

// Add sums two durations component-wise ("integer and an half" compositions:
// "一个半月" = DurationValue(1 month).Add(DurationValue(15 days))).
func (d DurationValue) Add(o DurationValue) DurationValue {
	return DurationValue{Period: d.Period.Add(o.Period), Precision: d.Precision}
}

// InPresent projects d forward from the anchor ("两周之内" within two weeks,
// "三天后" three days from now).
func (d DurationValue) InPresent() Datetime {
	return NewDatetime(calendar.InPresent(d.Period), FormEmpty)
}

// Ago projects d backward from the anchor ("三天前" three days ago).
func (d DurationValue) Ago() Datetime {
	return NewDatetime(calendar.Ago(d.Period), FormEmpty)
}
