package rustlingo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thadguidry/rustling-go/rustling"
	"github.com/thadguidry/rustling-go/rustling/values"
)

// anchor is the worked-scenario anchor: 2013-02-12 04:30:00 local.
func testAnchor() int64 {
	return time.Date(2013, time.February, 12, 4, 30, 0, 0, time.Local).Unix()
}

func buildZh(t *testing.T) RuleSet {
	t.Helper()
	rs, err := BuildRuleSet("zh")
	require.NoError(t, err)
	require.NotEmpty(t, rs.Rules)
	return rs
}

func TestParseTomorrow(t *testing.T) {
	rs := buildZh(t)
	out, err := Parse(rs, "明天", testAnchor(), Options{}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	dt, ok := out[0].Value.(values.DatetimeOutput)
	require.True(t, ok, "expected a DatetimeOutput, got %T", out[0].Value)
	require.Equal(t, rustling.Day, dt.Grain)
	require.Equal(t, 2013, dt.Moment.Year())
	require.Equal(t, time.February, dt.Moment.Month())
	require.Equal(t, 13, dt.Moment.Day())
}

func TestParseDiffAQuarterTwelve(t *testing.T) {
	rs := buildZh(t)
	out, err := Parse(rs, "差一刻十二点", testAnchor(), Options{}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	dt, ok := out[0].Value.(values.DatetimeOutput)
	require.True(t, ok, "expected a DatetimeOutput, got %T", out[0].Value)
	require.Equal(t, rustling.Minute, dt.Grain)
	require.Equal(t, 11, dt.Moment.Hour())
	require.Equal(t, 45, dt.Moment.Minute())
}

func TestParseNineThirtyToEleven(t *testing.T) {
	rs := buildZh(t)
	out, err := Parse(rs, "从九点半到十一点", testAnchor(), Options{}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	span, ok := out[0].Value.(values.DatetimeIntervalOutput)
	require.True(t, ok, "expected a DatetimeIntervalOutput, got %T", out[0].Value)
	require.Equal(t, values.IntervalBetween, span.IntervalKind)
	require.Equal(t, 9, span.Start.Hour())
	require.Equal(t, 30, span.Start.Minute())
	require.Equal(t, 11, span.End.Hour())
	require.Equal(t, 0, span.End.Minute())
}

func TestParseWithinTwoWeeks(t *testing.T) {
	rs := buildZh(t)
	out, err := Parse(rs, "两周之内", testAnchor(), Options{}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	span, ok := out[0].Value.(values.DatetimeIntervalOutput)
	require.True(t, ok, "expected a DatetimeIntervalOutput, got %T", out[0].Value)
	require.Equal(t, values.IntervalBetween, span.IntervalKind)
	require.Equal(t, 14*24*time.Hour, span.End.Sub(span.Start))
}

func TestParseNegativeTwentyFahrenheit(t *testing.T) {
	rs := buildZh(t)
	out, err := Parse(rs, "零下20华氏度", testAnchor(), Options{}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	temp, ok := out[0].Value.(values.TemperatureOutput)
	require.True(t, ok, "expected a TemperatureOutput, got %T", out[0].Value)
	require.Equal(t, -20.0, temp.Value)
	require.Equal(t, values.TemperatureUnitFahrenheit, temp.Unit)
}

func TestParseDecimalFloat(t *testing.T) {
	rs := buildZh(t)
	out, err := Parse(rs, "一百二十二点二", testAnchor(), Options{}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, ok := out[0].Value.(values.FloatOutput)
	require.True(t, ok, "expected a FloatOutput, got %T", out[0].Value)
	require.InDelta(t, 122.2, f.Value, 1e-9)
}

func TestParseLastMondayOfMarch(t *testing.T) {
	rs := buildZh(t)
	out, err := Parse(rs, "三月的最后一个周一", testAnchor(), Options{}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	dt, ok := out[0].Value.(values.DatetimeOutput)
	require.True(t, ok, "expected a DatetimeOutput, got %T", out[0].Value)
	require.Equal(t, 2013, dt.Moment.Year())
	require.Equal(t, time.March, dt.Moment.Month())
	require.Equal(t, 25, dt.Moment.Day())
}

// TestParseNonOverlapping checks invariant 2 of the testable properties:
// returned spans never overlap.
func TestParseNonOverlapping(t *testing.T) {
	rs := buildZh(t)
	out, err := Parse(rs, "明天下午三点半见，大概两个小时", testAnchor(), Options{}, nil)
	require.NoError(t, err)
	for i := range out {
		for j := range out {
			if i == j {
				continue
			}
			overlap := out[i].Start < out[j].End && out[j].Start < out[i].End
			require.False(t, overlap, "spans %v and %v overlap", out[i], out[j])
		}
	}
}

// TestParseLatencyRespect checks invariant 4: with AllowLatent false, no
// returned item is latent.
func TestParseLatencyRespect(t *testing.T) {
	rs := buildZh(t)
	out, err := Parse(rs, "3", testAnchor(), Options{AllowLatent: false}, nil)
	require.NoError(t, err)
	for _, r := range out {
		switch v := r.Value.(type) {
		case values.DatetimeOutput:
			require.False(t, v.Latent)
		case values.TemperatureOutput:
			require.False(t, v.Latent)
		}
	}
}

// TestParseAnchorMonotonicity checks invariant 3: advancing the anchor by
// one day shifts "tomorrow" by exactly one day.
func TestParseAnchorMonotonicity(t *testing.T) {
	rs := buildZh(t)
	a1 := testAnchor()
	a2 := time.Unix(a1, 0).AddDate(0, 0, 1).Unix()

	out1, err := Parse(rs, "明天", a1, Options{}, nil)
	require.NoError(t, err)
	out2, err := Parse(rs, "明天", a2, Options{}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out1)
	require.NotEmpty(t, out2)

	d1 := out1[0].Value.(values.DatetimeOutput).Moment
	d2 := out2[0].Value.(values.DatetimeOutput).Moment
	require.Equal(t, 24*time.Hour, d2.Sub(d1))
}

// TestParseDeterminism checks invariant 1: repeated calls with identical
// inputs produce identical output.
func TestParseDeterminism(t *testing.T) {
	rs := buildZh(t)
	out1, err := Parse(rs, "下周三", testAnchor(), Options{}, nil)
	require.NoError(t, err)
	out2, err := Parse(rs, "下周三", testAnchor(), Options{}, nil)
	require.NoError(t, err)
	require.Equal(t, out1, out2)
}

func TestBuildRuleSetUnsupportedLanguage(t *testing.T) {
	_, err := BuildRuleSet("fr")
	require.Error(t, err)
}

func TestParseEmptyRuleSet(t *testing.T) {
	_, err := Parse(RuleSet{}, "明天", testAnchor(), Options{}, nil)
	require.Error(t, err)
}
