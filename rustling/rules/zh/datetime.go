package zh

import (
	"fmt"
	"strconv"

	"github.com/thadguidry/rustling-go/rustling"
	"github.com/thadguidry/rustling-go/rustling/calendar"
	"github.com/thadguidry/rustling-go/rustling/rules"
	"github.com/thadguidry/rustling-go/rustling/values"
)

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func dt(c calendar.Constraint, form values.Form) values.Datetime { return values.NewDatetime(c, form) }

func cycleOf(v values.Value) (values.CycleValue, bool) {
	cv, ok := v.(values.CycleValue)
	return cv, ok
}

func relMinuteOf(v values.Value) (int, bool) {
	rv, ok := v.(values.RelativeMinuteValue)
	return int(rv), ok
}

// fullHourOf extracts the Hour/ambiguity pair out of a TimeOfDay-form
// Datetime, the way form_time_of_day().full_hour does in the corpus's
// relative-minute rules.
func fullHourOf(d values.Datetime) (hour int, ambiguous bool, ok bool) {
	tod, isTod := d.Constraint.(*calendar.TimeOfDay)
	if !isTod {
		return 0, false, false
	}
	return tod.Hour, tod.Ambiguous12h, true
}

// hourRelativeMinute folds a signed minute offset against an hour into a
// concrete hour:minute TimeOfDay, wrapping across the day boundary ("差一
// 刻十二点" = 12:00 - 15m = 11:45).
func hourRelativeMinute(hour, offsetMinutes int, ambiguous bool) values.Datetime {
	total := hour*60 + offsetMinutes
	total = ((total % 1440) + 1440) % 1440
	return dt(calendar.HourMinute(total/60, total%60, ambiguous), values.FormTimeOfDay).NotLatent()
}

// cycleAsDatetime reinterprets a bare cycle word as "this <grain>", the
// conversion "last <cycle> of <time>" needs before calling LastOf on it.
func cycleAsDatetime(cv values.CycleValue) values.Datetime {
	return dt(calendar.CycleNth(cv.Grain, 0), values.FormEmpty)
}

func buildDatetimeRules(b *rules.RuleSetBuilder) {
	buildWeekdayRules(b)
	buildMonthRules(b)
	buildRelativeDayRules(b)
	buildHolidayRules(b)
	buildTimeOfDayRules(b)
	buildRelativeMinuteRules(b)
	buildCycleNavigationRules(b)
	buildNumericDateRules(b)
	buildPartOfDayRules(b)
	buildCompositionRules(b)
}

func buildWeekdayRules(b *rules.RuleSetBuilder) {
	day := func(name, pattern string, w calendar.Weekday) {
		b.Add(rules.Rule1("named-day ("+name+")", rules.T(rules.NewTerminal(pattern)),
			func(m []rules.SlotMatch) (values.Value, error) {
				return dt(calendar.NewDayOfWeek(w), values.FormDayOfWeek), nil
			}))
	}
	day("Monday", `(?:星期|周|(?:礼|禮)拜|週)一`, calendar.Monday)
	day("Tuesday", `(?:星期|周|(?:礼|禮)拜|週)二`, calendar.Tuesday)
	day("Wednesday", `(?:星期|周|(?:礼|禮)拜|週)三`, calendar.Wednesday)
	day("Thursday", `(?:星期|周|(?:礼|禮)拜|週)四`, calendar.Thursday)
	day("Friday", `(?:星期|周|(?:礼|禮)拜|週)五`, calendar.Friday)
	day("Saturday", `(?:星期|周|(?:礼|禮)拜|週)六`, calendar.Saturday)
	day("Sunday", `星期日|星期天|礼拜天|周日|禮拜天|週日|禮拜日|周天`, calendar.Sunday)
}

func buildMonthRules(b *rules.RuleSetBuilder) {
	names := []string{"一", "二", "三", "四", "五", "六", "七", "八", "九", "十", "十一", "十二"}
	for i, name := range names {
		month := i + 1
		b.Add(rules.Rule1(fmt.Sprintf("named-month (%d)", month), rules.T(rules.NewTerminal(name+`月份?`)),
			func(m []rules.SlotMatch) (values.Value, error) {
				return dt(calendar.Month(month), values.FormMonth), nil
			}))
	}

	b.Add(rules.Rule2("month (numeric with month symbol)",
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 12 })),
		rules.T(rules.NewTerminal(`月`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := integerOf(m[0].Value)
			return dt(calendar.Month(int(n)), values.FormMonth).WithLatent(true), nil
		}))

	b.Add(rules.Rule2("<integer> month",
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 12 })),
		rules.T(rules.NewTerminal(`月份?`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := integerOf(m[0].Value)
			return dt(calendar.Month(int(n)), values.FormMonth), nil
		}))

	b.Add(rules.Rule2("<integer> year",
		rules.P(rules.IsInteger(func(values.IntegerValue) bool { return true })),
		rules.T(rules.NewTerminal(`年`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := integerOf(m[0].Value)
			return dt(calendar.Year(int(n)), values.FormEmpty), nil
		}))

	b.Add(rules.Rule2("integer day",
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 31 })),
		rules.T(rules.NewTerminal(`号|號|日`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := integerOf(m[0].Value)
			return dt(calendar.DayOfMonthC(int(n)), values.FormDayOfMonth), nil
		}))

	b.Add(rules.Rule2("day integer",
		rules.T(rules.NewTerminal(`号|號|日`)),
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 31 })),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := integerOf(m[1].Value)
			return dt(calendar.DayOfMonthC(int(n)), values.FormDayOfMonth), nil
		}))

	b.Add(rules.Rule2("<named-month> <day-of-month>",
		rules.P(rules.IsDatetime(values.FormMonth, false)),
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 31 })),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.Datetime)
			n, _ := integerOf(m[1].Value)
			return a.Intersect(dt(calendar.DayOfMonthC(int(n)), values.FormDayOfMonth)), nil
		}))

	b.Add(rules.Rule2("<day-of-month> <named-day>",
		rules.P(rules.IsDatetime(values.FormDayOfMonth, false)),
		rules.P(rules.IsDatetime(values.FormDayOfWeek, false)),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.Datetime)
			bb := m[1].Value.(values.Datetime)
			return a.Intersect(bb), nil
		}))
}

func buildRelativeDayRules(b *rules.RuleSetBuilder) {
	named := func(id, pattern string, n int) {
		b.Add(rules.Rule1(id, rules.T(rules.NewTerminal(pattern)),
			func(m []rules.SlotMatch) (values.Value, error) {
				return dt(calendar.CycleNth(rustling.Day, n), values.FormEmpty), nil
			}))
	}
	named("today", `今天|今日`, 0)
	named("tomorrow", `明天|明日|聽日`, 1)
	named("the day after tomorrow", `后天|後天|後日`, 2)
	named("yesterday", `昨天|昨日|尋日`, -1)
	named("the day before yesterday", `前天|前日`, -2)

	b.Add(rules.Rule1("now", rules.T(rules.NewTerminal(`现在|此时|此刻|当前|現在|此時|當前|宜家|而家|依家`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			return dt(calendar.CycleNth(rustling.Second, 0), values.FormEmpty), nil
		}))
	b.Add(rules.Rule1("at this time", rules.T(rules.NewTerminal(`这个?时(?:候|间)?`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			return dt(calendar.CycleNth(rustling.Second, 0), values.FormEmpty), nil
		}))
	b.Add(rules.Rule1("this year", rules.T(rules.NewTerminal(`今年`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			return dt(calendar.CycleNth(rustling.Year, 0), values.FormEmpty), nil
		}))
	b.Add(rules.Rule1("last year", rules.T(rules.NewTerminal(`(?:去|上)年`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			return dt(calendar.CycleNth(rustling.Year, -1), values.FormEmpty), nil
		}))
	b.Add(rules.Rule1("next year", rules.T(rules.NewTerminal(`明年|下年`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			return dt(calendar.CycleNth(rustling.Year, 1), values.FormEmpty), nil
		}))
}

func buildHolidayRules(b *rules.RuleSetBuilder) {
	holiday := func(id, pattern string, month, day int) {
		b.Add(rules.Rule1(id, rules.T(rules.NewTerminal(pattern)),
			func(m []rules.SlotMatch) (values.Value, error) {
				return dt(calendar.MonthDay(month, day), values.FormEmpty), nil
			}))
	}
	holiday("new year's day", `元旦(?:节|節)?`, 1, 1)
	holiday("valentine's day", `情人(?:节|節)`, 2, 14)
	holiday("women's day", `(?:妇|婦)女(?:节|節)`, 3, 8)
	holiday("labor day", `劳动节|勞動節`, 5, 1)
	// Two distinct rules both named "army's day" in the corpus: one for
	// Army Day itself (建军节), one that mislabels Children's Day (儿童节)
	// the same way. The surface bug is the shared name, not the dates —
	// both fire correctly. Kept as two rules with distinguishing ids since
	// this engine's rule IDs double as chart/weight lookup keys.
	holiday("army's day", `建(?:军节|軍節)`, 8, 1)
	holiday("army's day (children's day mislabel)", `(?:儿|兒)童(?:节|節)`, 6, 1)
	holiday("national day", `(?:国庆|國慶)(?:节|節)?`, 10, 1)
	holiday("christmas", `(?:圣诞|聖誕)(?:节|節)?`, 12, 25)

	season := func(name, pattern string, startM, startD, endM, endD int) {
		b.Add(rules.Rule1("season ("+name+")", rules.T(rules.NewTerminal(pattern)),
			func(m []rules.SlotMatch) (values.Value, error) {
				start := dt(calendar.MonthDay(startM, startD), values.FormEmpty)
				end := dt(calendar.MonthDay(endM, endD), values.FormEmpty)
				return start.SpanTo(end, false), nil
			}))
	}
	season("summer", `夏(?:天|季)?`, 6, 21, 9, 23)
	season("autumn", `秋(?:天|季)?`, 9, 23, 12, 21)
	season("winter", `冬(?:天|季)?`, 12, 21, 3, 20)
	season("spring", `春(?:天|季)?`, 3, 20, 6, 21)
}

func buildTimeOfDayRules(b *rules.RuleSetBuilder) {
	b.Add(rules.Rule1("hh:.mm (time-of-day)",
		rules.T(rules.NewTerminal(`((?:[01]?\d)|(?:2[0-3]))[:.]([0-5]\d)`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			h, okh := parseInt(m[0].Groups[1])
			mnt, okm := parseInt(m[0].Groups[2])
			if !okh || !okm {
				return nil, rustling.RejectAction("bad hh:mm literal")
			}
			return dt(calendar.HourMinute(h, mnt, h < 12), values.FormTimeOfDay), nil
		}))

	b.Add(rules.Rule1("hhmm (military time-of-day, latent)",
		rules.T(rules.NewTerminal(`((?:[01]?\d)|(?:2[0-3]))([0-5]\d)`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			h, okh := parseInt(m[0].Groups[1])
			mnt, okm := parseInt(m[0].Groups[2])
			if !okh || !okm {
				return nil, rustling.RejectAction("bad hhmm literal")
			}
			return dt(calendar.HourMinute(h, mnt, false), values.FormTimeOfDay).WithLatent(true), nil
		}))

	b.Add(rules.Rule1("time-of-day (latent)",
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 0 && v.Value <= 23 })),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := integerOf(m[0].Value)
			return dt(calendar.Hour(int(n), n < 12), values.FormTimeOfDay).WithLatent(true), nil
		}))

	b.Add(rules.Rule2("<time-of-day> o'clock",
		rules.P(rules.IsDatetime(values.FormTimeOfDay, false)),
		rules.T(rules.NewTerminal(`點|点|時`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			return m[0].Value.(values.Datetime).NotLatent(), nil
		}))

	b.Add(rules.Rule2("<time-of-day> am|pm",
		rules.P(rules.IsDatetime(values.FormTimeOfDay, false)),
		rules.T(rules.NewTerminal(`([ap])(?:\s|\.)?m?\.?`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.Datetime)
			var period values.Datetime
			if m[1].Groups[1] == "a" {
				period = dt(calendar.Hour(0, false), values.FormEmpty).SpanTo(dt(calendar.Hour(12, false), values.FormEmpty), false)
			} else {
				period = dt(calendar.Hour(12, false), values.FormEmpty).SpanTo(dt(calendar.Hour(0, false), values.FormEmpty), false)
			}
			return a.Intersect(period).WithForm(values.FormTimeOfDay), nil
		}))

	b.Add(rules.Rule3("intersect by \",\"",
		rules.P(rules.IsDatetime(values.FormEmpty, true)),
		rules.T(rules.NewTerminal(`,`)),
		rules.P(rules.IsDatetime(values.FormEmpty, true)),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.Datetime)
			bb := m[2].Value.(values.Datetime)
			return a.Intersect(bb), nil
		}))

	b.Add(rules.Rule2("absorption of , after named day",
		rules.P(rules.IsDatetime(values.FormDayOfWeek, false)),
		rules.T(rules.NewTerminal(`,`)),
		func(m []rules.SlotMatch) (values.Value, error) { return m[0].Value, nil }))
}

func buildRelativeMinuteRules(b *rules.RuleSetBuilder) {
	b.Add(rules.Rule1("number (as relative minutes)",
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 59 })),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := integerOf(m[0].Value)
			return values.NewRelativeMinuteValue(int(n)), nil
		}))
	b.Add(rules.Rule2("number minutes (as relative minutes)",
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 59 })),
		rules.T(rules.NewTerminal(`分钟?`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := integerOf(m[0].Value)
			return values.NewRelativeMinuteValue(int(n)), nil
		}))
	b.Add(rules.Rule1("quarter (relative minutes)", rules.T(rules.NewTerminal(`一刻`)),
		func(m []rules.SlotMatch) (values.Value, error) { return values.NewRelativeMinuteValue(15), nil }))
	b.Add(rules.Rule1("half (relative minutes)", rules.T(rules.NewTerminal(`半`)),
		func(m []rules.SlotMatch) (values.Value, error) { return values.NewRelativeMinuteValue(30), nil }))

	b.Add(rules.Rule3("relative minutes to|till|before <integer> (hour-of-day)",
		rules.P(rules.IsDatetime(values.FormTimeOfDay, false)),
		rules.T(rules.NewTerminal(`(?:点|點)?差`)),
		rules.P(rules.IsRelativeMinute()),
		func(m []rules.SlotMatch) (values.Value, error) {
			time := m[0].Value.(values.Datetime)
			hour, ambiguous, ok := fullHourOf(time)
			if !ok {
				return nil, rustling.RejectAction("not a time-of-day")
			}
			n, _ := relMinuteOf(m[2].Value)
			return hourRelativeMinute(hour, -n, ambiguous), nil
		}))

	b.Add(rules.Rule3("relative minutes after|past <integer> (hour-of-day)",
		rules.P(rules.IsDatetime(values.FormTimeOfDay, false)),
		rules.T(rules.NewTerminal(`点|點|过|過`)),
		rules.P(rules.IsRelativeMinute()),
		func(m []rules.SlotMatch) (values.Value, error) {
			time := m[0].Value.(values.Datetime)
			hour, ambiguous, ok := fullHourOf(time)
			if !ok {
				return nil, rustling.RejectAction("not a time-of-day")
			}
			n, _ := relMinuteOf(m[2].Value)
			return hourRelativeMinute(hour, n, ambiguous), nil
		}))

	b.Add(rules.Rule4("<relative-minutes> to <time-of-day>",
		rules.T(rules.NewTerminal(`差`)),
		rules.P(rules.IsRelativeMinute()),
		rules.T(rules.NewTerminal(`分?钟?`)),
		rules.P(rules.IsDatetime(values.FormTimeOfDay, false)),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := relMinuteOf(m[1].Value)
			time := m[3].Value.(values.Datetime)
			hour, _, ok := fullHourOf(time)
			if !ok {
				return nil, rustling.RejectAction("not a time-of-day")
			}
			return hourRelativeMinute(hour, -n, true), nil
		}))
}

func buildCycleNavigationRules(b *rules.RuleSetBuilder) {
	b.Add(rules.Rule2("this <cycle>",
		rules.T(rules.NewTerminal(`这(?:一|个)?|這一?|今個`)),
		rules.P(rules.IsCycle(func(values.CycleValue) bool { return true })),
		func(m []rules.SlotMatch) (values.Value, error) {
			cv, _ := cycleOf(m[1].Value)
			return dt(calendar.CycleNth(cv.Grain, 0), values.FormEmpty), nil
		}))
	b.Add(rules.Rule2("next <cycle>",
		rules.T(rules.NewTerminal(`下(?:个|個)?`)),
		rules.P(rules.IsCycle(func(values.CycleValue) bool { return true })),
		func(m []rules.SlotMatch) (values.Value, error) {
			cv, _ := cycleOf(m[1].Value)
			return dt(calendar.CycleNth(cv.Grain, 1), values.FormEmpty), nil
		}))
	b.Add(rules.Rule2("last <cycle>",
		rules.T(rules.NewTerminal(`上(?:个|個)?`)),
		rules.P(rules.IsCycle(func(values.CycleValue) bool { return true })),
		func(m []rules.SlotMatch) (values.Value, error) {
			cv, _ := cycleOf(m[1].Value)
			return dt(calendar.CycleNth(cv.Grain, -1), values.FormEmpty), nil
		}))

	nNotImmediate := func(id, markerPattern string, before bool, sign int) {
		if before {
			b.Add(rules.Rule3(id,
				rules.T(rules.NewTerminal(markerPattern)),
				rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 9999 })),
				rules.P(rules.IsCycle(func(values.CycleValue) bool { return true })),
				func(m []rules.SlotMatch) (values.Value, error) {
					n, _ := integerOf(m[1].Value)
					cv, _ := cycleOf(m[2].Value)
					return dt(calendar.CycleNNotImmediate(cv.Grain, sign*int(n)), values.FormEmpty).WithPeriodForm(true), nil
				}))
			return
		}
		b.Add(rules.Rule3(id,
			rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1 && v.Value <= 9999 })),
			rules.P(rules.IsCycle(func(values.CycleValue) bool { return true })),
			rules.T(rules.NewTerminal(markerPattern)),
			func(m []rules.SlotMatch) (values.Value, error) {
				n, _ := integerOf(m[0].Value)
				cv, _ := cycleOf(m[1].Value)
				return dt(calendar.CycleNNotImmediate(cv.Grain, sign*int(n)), values.FormEmpty).WithPeriodForm(true), nil
			}))
	}
	nNotImmediate("last n <cycle>", `上|前`, true, -1)
	nNotImmediate("n <cycle> last", `之?前`, false, -1)
	nNotImmediate("next n <cycle> (leading)", `下|后|後`, true, 1)
	nNotImmediate("next n <cycle> (trailing)", `下|之?后|之?後`, false, 1)
	nNotImmediate("coming n <cycle>", `未来|之后|(?:下|后)面`, true, 1)
	nNotImmediate("past n <cycle>", `过去`, true, -1)

	b.Add(rules.Rule2("in <duration>",
		rules.T(rules.NewTerminal(`再`)),
		rules.P(rules.IsDuration()),
		func(m []rules.SlotMatch) (values.Value, error) {
			d := m[1].Value.(values.DurationValue)
			return d.InPresent(), nil
		}))
	b.Add(rules.Rule2("<duration> ago",
		rules.P(rules.IsDuration()),
		rules.T(rules.NewTerminal(`之?前`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			d := m[0].Value.(values.DurationValue)
			return d.Ago(), nil
		}))
	b.Add(rules.Rule2("<duration> from now",
		rules.P(rules.IsDuration()),
		rules.T(rules.NewTerminal(`后|後|之後`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			d := m[0].Value.(values.DurationValue)
			return d.InPresent(), nil
		}))
	b.Add(rules.Rule2("within <duration>",
		rules.P(rules.IsDuration()),
		rules.T(rules.NewTerminal(`之?内`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			d := m[0].Value.(values.DurationValue)
			now := dt(calendar.CycleNth(rustling.Second, 0), values.FormEmpty)
			return now.SpanTo(d.InPresent(), false), nil
		}))

	b.Add(rules.Rule4("the <cycle> after <time>",
		rules.T(rules.NewTerminal(`那`)),
		rules.P(rules.IsCycle(func(values.CycleValue) bool { return true })),
		rules.T(rules.NewTerminal(`之?(?:后|後)`)),
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		func(m []rules.SlotMatch) (values.Value, error) {
			cv, _ := cycleOf(m[1].Value)
			ref := m[3].Value.(values.Datetime)
			return dt(calendar.CycleNthAfter(cv.Grain, 1, ref.Constraint), values.FormEmpty), nil
		}))
	b.Add(rules.Rule4("<cycle> before <time>",
		rules.T(rules.NewTerminal(`那`)),
		rules.P(rules.IsCycle(func(values.CycleValue) bool { return true })),
		rules.T(rules.NewTerminal(`之?前`)),
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		func(m []rules.SlotMatch) (values.Value, error) {
			cv, _ := cycleOf(m[1].Value)
			ref := m[3].Value.(values.Datetime)
			return dt(calendar.CycleNthAfter(cv.Grain, -1, ref.Constraint), values.FormEmpty), nil
		}))

	b.Add(rules.Rule4("<ordinal> <cycle> of <time>",
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		rules.T(rules.NewTerminal(`的?`)),
		rules.P(rules.IsOrdinal()),
		rules.P(rules.IsCycle(func(values.CycleValue) bool { return true })),
		func(m []rules.SlotMatch) (values.Value, error) {
			time := m[0].Value.(values.Datetime)
			ord := m[2].Value.(values.OrdinalValue)
			cv, _ := cycleOf(m[3].Value)
			return dt(calendar.CycleNthAfterNotImmediate(cv.Grain, int(ord.Value)-1, time.Constraint), values.FormEmpty), nil
		}))
	b.Add(rules.Rule4("<ordinal> <day-of-week> of <time>",
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		rules.T(rules.NewTerminal(`的?`)),
		rules.P(rules.IsOrdinal()),
		rules.P(rules.IsDatetime(values.FormDayOfWeek, false)),
		func(m []rules.SlotMatch) (values.Value, error) {
			time := m[0].Value.(values.Datetime)
			ord := m[2].Value.(values.OrdinalValue)
			day := m[3].Value.(values.Datetime)
			week := dt(calendar.CycleNthAfterNotImmediate(rustling.Week, int(ord.Value)-1, time.Constraint), values.FormEmpty)
			return week.Intersect(day), nil
		}))

	b.Add(rules.Rule3("last <day-of-week> of <time>",
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		rules.T(rules.NewTerminal(`的?最后一个`)),
		rules.P(rules.IsDatetime(values.FormDayOfWeek, false)),
		func(m []rules.SlotMatch) (values.Value, error) {
			outer := m[0].Value.(values.Datetime)
			inner := m[2].Value.(values.Datetime)
			return inner.LastOf(outer), nil
		}))
	b.Add(rules.Rule3("last <cycle> of <time>",
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		rules.T(rules.NewTerminal(`的?最后一个?`)),
		rules.P(rules.IsCycle(func(values.CycleValue) bool { return true })),
		func(m []rules.SlotMatch) (values.Value, error) {
			outer := m[0].Value.(values.Datetime)
			cv, _ := cycleOf(m[2].Value)
			return cycleAsDatetime(cv).LastOf(outer), nil
		}))

	b.Add(rules.Rule2("<ordinal> quarter",
		rules.P(rules.IsOrdinal()),
		rules.P(rules.IsCycle(func(c values.CycleValue) bool { return c.Grain == rustling.Quarter })),
		func(m []rules.SlotMatch) (values.Value, error) {
			ord := m[0].Value.(values.OrdinalValue)
			thisYear := dt(calendar.CycleNth(rustling.Year, 0), values.FormEmpty)
			return dt(calendar.CycleNthAfter(rustling.Quarter, int(ord.Value)-1, thisYear.Constraint), values.FormEmpty), nil
		}))

	b.Add(rules.Rule3("the week of <time>",
		rules.P(rules.IsDatetime(values.FormDayOfMonth, false)),
		rules.T(rules.NewTerminal(`那一?个?`)),
		rules.P(rules.IsCycle(func(c values.CycleValue) bool { return c.Grain == rustling.Week })),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.Datetime)
			return dt(calendar.CycleNthAfter(rustling.Week, 0, a.Constraint), values.FormEmpty), nil
		}))
}

func buildNumericDateRules(b *rules.RuleSetBuilder) {
	b.Add(rules.Rule1("year (numeric with year symbol, terminal)",
		rules.T(rules.NewTerminal(`(\d{4})年`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			y, ok := parseInt(m[0].Groups[1])
			if !ok {
				return nil, rustling.RejectAction("bad year literal")
			}
			return dt(calendar.Year(y), values.FormEmpty), nil
		}))
	b.Add(rules.Rule2("year (numeric with year symbol)",
		rules.P(rules.IsInteger(func(v values.IntegerValue) bool { return v.Value >= 1000 && v.Value <= 9999 })),
		rules.T(rules.NewTerminal(`年`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := integerOf(m[0].Value)
			return dt(calendar.Year(int(n)), values.FormEmpty), nil
		}))

	b.Add(rules.Rule1("mm/dd",
		rules.T(rules.NewTerminal(`(0?[1-9]|1[0-2])[-/](3[01]|[12]\d|0?[1-9])`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			mo, ok1 := parseInt(m[0].Groups[1])
			da, ok2 := parseInt(m[0].Groups[2])
			if !ok1 || !ok2 {
				return nil, rustling.RejectAction("bad mm/dd literal")
			}
			return dt(calendar.MonthDay(mo, da), values.FormEmpty), nil
		}))

	b.Add(rules.Rule1("mm/dd/yyyy",
		rules.T(rules.NewTerminal(`(0?[1-9]|1[0-2])/(3[01]|[12]\d|0?[1-9])/(\d{2,4})`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			mo, ok1 := parseInt(m[0].Groups[1])
			da, ok2 := parseInt(m[0].Groups[2])
			yr, ok3 := parseInt(m[0].Groups[3])
			if !ok1 || !ok2 || !ok3 {
				return nil, rustling.RejectAction("bad mm/dd/yyyy literal")
			}
			return dt(calendar.YMD(yr, mo, da), values.FormEmpty), nil
		}))

	// yyyy/mm: the corpus names its two local variables "month" and "year"
	// swapped from what they actually hold, but the function calls on each
	// group are not swapped (group 1, the year digits, still goes through
	// the year-building helper; group 2, the month digits, still goes
	// through the month-building helper) — the misnamed locals don't
	// change the computed intersection, so this is a cosmetic slip in the
	// original, not a functional bug, and nothing here needs to reproduce
	// it.
	b.Add(rules.Rule1("yyyy/mm",
		rules.T(rules.NewTerminal(`(\d{2,4})/(0?[1-9]|1[0-2])`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			yr, ok1 := parseInt(m[0].Groups[1])
			mo, ok2 := parseInt(m[0].Groups[2])
			if !ok1 || !ok2 {
				return nil, rustling.RejectAction("bad yyyy/mm literal")
			}
			return dt(calendar.Year(yr), values.FormEmpty).Intersect(dt(calendar.Month(mo), values.FormEmpty)), nil
		}))

	b.Add(rules.Rule1("yyyy-mm-dd",
		rules.T(rules.NewTerminal(`(\d{2,4})[/\-.](0?[1-9]|1[0-2])[/\-.](3[01]|[12]\d|0?[1-9])`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			yr, ok1 := parseInt(m[0].Groups[1])
			mo, ok2 := parseInt(m[0].Groups[2])
			da, ok3 := parseInt(m[0].Groups[3])
			if !ok1 || !ok2 || !ok3 {
				return nil, rustling.RejectAction("bad yyyy-mm-dd literal")
			}
			return dt(calendar.YMD(yr, mo, da), values.FormEmpty), nil
		}))
}

func buildPartOfDayRules(b *rules.RuleSetBuilder) {
	span := func(id, pattern string, startH, endH int, extended bool) {
		b.Add(rules.Rule1(id, rules.T(rules.NewTerminal(pattern)),
			func(m []rules.SlotMatch) (values.Value, error) {
				start := dt(calendar.Hour(startH, false), values.FormEmpty)
				end := dt(calendar.Hour(endH, false), values.FormEmpty)
				return start.SpanTo(end, false).WithLatent(true).WithPartOfDay(extended), nil
			}))
	}
	span("morning", `上午`, 4, 12, true)
	span("early morning", `早上|早晨`, 4, 9, true)
	span("afternoon", `下午`, 12, 19, true)
	span("evening|night", `晚上|晚间|晚間`, 18, 0, false)

	b.Add(rules.Rule1("noon", rules.T(rules.NewTerminal(`中午`)),
		func(m []rules.SlotMatch) (values.Value, error) { return dt(calendar.Hour(12, false), values.FormTimeOfDay), nil }))
	b.Add(rules.Rule1("midnight", rules.T(rules.NewTerminal(`午夜|凌晨|半夜`)),
		func(m []rules.SlotMatch) (values.Value, error) { return dt(calendar.Hour(0, false), values.FormTimeOfDay), nil }))

	nightPeriod := func() values.Datetime {
		return dt(calendar.Hour(18, false), values.FormEmpty).
			SpanTo(dt(calendar.Hour(0, false), values.FormEmpty), false).
			WithForm(values.FormPartOfDay)
	}
	b.Add(rules.Rule1("tonight", rules.T(rules.NewTerminal(`今晚|今天晚上`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			today := dt(calendar.CycleNth(rustling.Day, 0), values.FormEmpty)
			return today.Intersect(nightPeriod()).WithForm(values.FormPartOfDay), nil
		}))
	b.Add(rules.Rule1("last night", rules.T(rules.NewTerminal(`昨晚|昨天晚上|尋晚`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			yesterday := dt(calendar.CycleNth(rustling.Day, -1), values.FormEmpty)
			return yesterday.Intersect(nightPeriod()).WithForm(values.FormPartOfDay), nil
		}))
	b.Add(rules.Rule1("tomorrow night", rules.T(rules.NewTerminal(`明晚|明天晚上|聽晚`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			tomorrow := dt(calendar.CycleNth(rustling.Day, 1), values.FormEmpty)
			return tomorrow.Intersect(nightPeriod()).WithForm(values.FormPartOfDay), nil
		}))

	b.Add(rules.Rule1("week-end", rules.T(rules.NewTerminal(`(?:周|週)末`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			friday := dt(calendar.NewDayOfWeek(calendar.Friday), values.FormDayOfWeek).Intersect(dt(calendar.Hour(18, false), values.FormEmpty))
			monday := dt(calendar.NewDayOfWeek(calendar.Monday), values.FormDayOfWeek).Intersect(dt(calendar.Hour(0, false), values.FormEmpty))
			return friday.SpanTo(monday, false), nil
		}))

	b.Add(rules.Rule2("in|during the <part-of-day>",
		rules.P(rules.IsDatetime(values.FormPartOfDay, false)),
		rules.T(rules.NewTerminal(`点|點`)),
		func(m []rules.SlotMatch) (values.Value, error) { return m[0].Value.(values.Datetime).NotLatent(), nil }))
}

func buildCompositionRules(b *rules.RuleSetBuilder) {
	b.Add(rules.Rule2("this <day-of-week>",
		rules.T(rules.NewTerminal(`这|這|今(?:个|個)?`)),
		rules.P(rules.IsDatetime(values.FormDayOfWeek, false)),
		func(m []rules.SlotMatch) (values.Value, error) {
			return m[1].Value.(values.Datetime).TheNthNotImmediate(0), nil
		}))
	b.Add(rules.Rule2("this|next <day-of-week>",
		rules.T(rules.NewTerminal(`今(?:个|個)?|明|下(?:个|個)?`)),
		rules.P(rules.IsDatetime(values.FormDayOfWeek, false)),
		func(m []rules.SlotMatch) (values.Value, error) {
			return m[1].Value.(values.Datetime).TheNthNotImmediate(0), nil
		}))
	b.Add(rules.Rule2("this <time>",
		rules.T(rules.NewTerminal(`今(?:个|個)?|这个?|這個?`)),
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		func(m []rules.SlotMatch) (values.Value, error) { return m[1].Value.(values.Datetime).TheNth(0), nil }))
	b.Add(rules.Rule2("next <time>",
		rules.T(rules.NewTerminal(`明|下(?:个|個)?`)),
		rules.P(rules.IsDatetime(values.FormEmpty, true)),
		func(m []rules.SlotMatch) (values.Value, error) { return m[1].Value.(values.Datetime).TheNth(0), nil }))
	b.Add(rules.Rule2("last <time>",
		rules.T(rules.NewTerminal(`去|上(?:个|個)?`)),
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		func(m []rules.SlotMatch) (values.Value, error) { return m[1].Value.(values.Datetime).TheNth(-1), nil }))

	b.Add(rules.Rule4("nth <time> of <time>",
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		rules.T(rules.NewTerminal(`的`)),
		rules.P(rules.IsOrdinal()),
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.Datetime)
			ord := m[2].Value.(values.OrdinalValue)
			bb := m[3].Value.(values.Datetime)
			return a.Intersect(bb).TheNth(int(ord.Value) - 1), nil
		}))
	b.Add(rules.Rule3("nth <time> of <time> (no 的)",
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		rules.P(rules.IsOrdinal()),
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.Datetime)
			ord := m[1].Value.(values.OrdinalValue)
			bb := m[2].Value.(values.Datetime)
			return bb.Intersect(a).TheNth(int(ord.Value) - 1), nil
		}))

	b.Add(rules.Rule2("intersect",
		rules.P(rules.IsDatetime(values.FormEmpty, true)),
		rules.P(rules.IsDatetime(values.FormEmpty, true)),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.Datetime)
			bb := m[1].Value.(values.Datetime)
			return a.Intersect(bb), nil
		}))
	b.Add(rules.Rule2("<time> <part-of-day>",
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		rules.P(rules.IsDatetime(values.FormPartOfDay, false)),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.Datetime)
			pod := m[1].Value.(values.Datetime)
			return a.Intersect(pod), nil
		}))
	b.Add(rules.Rule2("<part-of-day> <time>",
		rules.P(rules.IsDatetime(values.FormPartOfDay, false)),
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		func(m []rules.SlotMatch) (values.Value, error) {
			pod := m[0].Value.(values.Datetime)
			a := m[1].Value.(values.Datetime)
			return a.Intersect(pod), nil
		}))

	b.Add(rules.Rule3("from <time>",
		rules.T(rules.NewTerminal(`从`)),
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		rules.T(rules.NewTerminal(`开始`)),
		func(m []rules.SlotMatch) (values.Value, error) {
			return m[1].Value.(values.Datetime).WithDirection(calendar.DirectionAfter), nil
		}))

	span := func(id, marker string, inclusive bool) {
		b.Add(rules.Rule3(id,
			rules.P(rules.IsDatetime(values.FormEmpty, false)),
			rules.T(rules.NewTerminal(marker)),
			rules.P(rules.IsDatetime(values.FormEmpty, false)),
			func(m []rules.SlotMatch) (values.Value, error) {
				a := m[0].Value.(values.Datetime)
				bb := m[2].Value.(values.Datetime)
				if a.Form == values.FormTimeOfDay && bb.Form == values.FormTimeOfDay {
					return nil, rustling.RejectAction("time-of-day pair: left to the time-of-day interval rule")
				}
				return a.SpanTo(bb, inclusive), nil
			}))
	}
	span("<datetime> - <datetime> (interval)", `\s?(?:-|~)\s?|到`, true)

	b.Add(rules.Rule3("<time-of-day> - <time-of-day> (interval)",
		rules.P(rules.IsDatetime(values.FormTimeOfDay, false)),
		rules.T(rules.NewTerminal(`\s?(?:-|~)\s?|到`)),
		rules.P(rules.IsDatetime(values.FormTimeOfDay, false)),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[0].Value.(values.Datetime)
			bb := m[2].Value.(values.Datetime)
			return a.SpanTo(bb, false), nil
		}))

	b.Add(rules.Rule4("from <datetime> - <datetime> (interval)",
		rules.T(rules.NewTerminal(`从`)),
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		rules.T(rules.NewTerminal(`\s?(?:-|~)\s?|到`)),
		rules.P(rules.IsDatetime(values.FormEmpty, false)),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[1].Value.(values.Datetime)
			bb := m[3].Value.(values.Datetime)
			if a.Form == values.FormTimeOfDay && bb.Form == values.FormTimeOfDay {
				return nil, rustling.RejectAction("time-of-day pair: left to the time-of-day interval rule")
			}
			return a.SpanTo(bb, true), nil
		}))
	b.Add(rules.Rule4("from <time-of-day> - <time-of-day> (interval)",
		rules.T(rules.NewTerminal(`从`)),
		rules.P(rules.IsDatetime(values.FormTimeOfDay, false)),
		rules.T(rules.NewTerminal(`\s?(?:-|~)\s?|到`)),
		rules.P(rules.IsDatetime(values.FormTimeOfDay, false)),
		func(m []rules.SlotMatch) (values.Value, error) {
			a := m[1].Value.(values.Datetime)
			bb := m[3].Value.(values.Datetime)
			return a.SpanTo(bb, false), nil
		}))
}
