package trend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/bug-trends/pkg/models/domain"
)

func bugs(t *testing.T, dates ...string) []domain.BugReport {
	t.Helper()
	out := make([]domain.BugReport, 0, len(dates))
	for _, d := range dates {
		r, err := domain.NewBugReport(d)
		require.NoError(t, err)
		out = append(out, r)
	}
	return out
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func rawCounts(tr *domain.Trend) []int {
	out := make([]int, len(tr.Buckets))
	for i, b := range tr.Buckets {
		out[i] = b.Count
	}
	return out
}

func assertWellFormed(t *testing.T, tr *domain.Trend, n int) {
	t.Helper()
	require.Len(t, tr.Cumulative, n)
	require.Len(t, tr.Buckets, n)
	for i, p := range tr.Cumulative {
		assert.Equal(t, i+1, p.Index)
		assert.Equal(t, i+1, tr.Buckets[i].Index)
		if i > 0 {
			assert.GreaterOrEqual(t, p.Total, tr.Cumulative[i-1].Total)
		}
	}
	assert.Equal(t, tr.Cumulative[n-1].Total, tr.Total)
}

func TestMonthly_GapFilledCumulative(t *testing.T) {
	// Given
	reports := bugs(t, "2015-01-10", "2015-01-20", "2015-03-05")

	// When
	tr, err := Monthly(reports, domain.MonthRange{Start: domain.YearMonth{Year: 2015, Month: time.January}, Count: 3})

	// Then
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, rawCounts(tr))
	assert.Equal(t, "{{1,2}, {2,2}, {3,3}}", FormatCumulative(tr.Cumulative))
	assert.Equal(t, 3, tr.Total)
	assert.Equal(t, domain.GranularityMonthly, tr.Granularity)
	assert.Equal(t, "2015-01 (January)", tr.Buckets[0].Label)
	assert.Equal(t, date(t, "2015-01-01"), tr.Period.Start)
	assert.Equal(t, date(t, "2015-03-31"), tr.Period.End)
}

func TestMonthly_SingleMonth(t *testing.T) {
	reports := bugs(t, "2015-02-01", "2015-02-28", "2015-03-01", "2015-01-31")

	tr, err := Monthly(reports, domain.MonthRange{Start: domain.YearMonth{Year: 2015, Month: time.February}, Count: 1})

	require.NoError(t, err)
	assertWellFormed(t, tr, 1)
	assert.Equal(t, "{{1,2}}", FormatCumulative(tr.Cumulative))
}

func TestMonthly_OutOfRangeIgnored(t *testing.T) {
	// Given reports on both sides of a range spanning a year boundary
	reports := bugs(t, "2014-10-31", "2014-11-01", "2014-12-15", "2015-01-31", "2015-02-01")

	// When
	tr, err := Monthly(reports, domain.MonthRange{Start: domain.YearMonth{Year: 2014, Month: time.November}, Count: 3})

	// Then
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, rawCounts(tr))
	assert.Equal(t, "2015-01 (January)", tr.Buckets[2].Label)
	assert.Equal(t, 3, tr.Total)
}

func TestMonthly_NoReports_AllZero(t *testing.T) {
	tr, err := Monthly(nil, domain.MonthRange{Start: domain.YearMonth{Year: 2015, Month: time.January}, Count: 4})

	require.NoError(t, err)
	assertWellFormed(t, tr, 4)
	assert.Equal(t, "{{1,0}, {2,0}, {3,0}, {4,0}}", FormatCumulative(tr.Cumulative))
}

func TestMonthly_InvalidCount(t *testing.T) {
	_, err := Monthly(nil, domain.MonthRange{Start: domain.YearMonth{Year: 2015, Month: time.January}, Count: 0})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestWeekly_GapFilledCumulative(t *testing.T) {
	// Given
	reports := bugs(t, "2003-10-01", "2003-10-07", "2003-10-08")

	// When
	tr, err := Weekly(reports, domain.WeekRange{Start: date(t, "2003-10-01"), Count: 2})

	// Then
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, rawCounts(tr))
	assert.Equal(t, "{{1,2}, {2,3}}", FormatCumulative(tr.Cumulative))
	assert.Equal(t, "2003-10-01 to 2003-10-07", tr.Buckets[0].Label)
	assert.Equal(t, "2003-10-08 to 2003-10-14", tr.Buckets[1].Label)
	assert.Equal(t, date(t, "2003-10-14"), tr.Period.End)
}

func TestWeekly_Boundaries(t *testing.T) {
	start := "2003-10-01"
	tests := []struct {
		name string
		date string
		want []int
	}{
		{name: "start date is week 1", date: "2003-10-01", want: []int{1, 0, 0}},
		{name: "start plus 6 is week 1", date: "2003-10-07", want: []int{1, 0, 0}},
		{name: "start plus 7 is week 2", date: "2003-10-08", want: []int{0, 1, 0}},
		{name: "day before end is last week", date: "2003-10-20", want: []int{0, 0, 1}},
		{name: "end date is last week", date: "2003-10-21", want: []int{0, 0, 1}},
		{name: "day after end is ignored", date: "2003-10-22", want: []int{0, 0, 0}},
		{name: "day before start is ignored", date: "2003-09-30", want: []int{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Weekly(bugs(t, tt.date), domain.WeekRange{Start: date(t, start), Count: 3})

			require.NoError(t, err)
			assert.Equal(t, tt.want, rawCounts(tr))
		})
	}
}

func TestWeekly_StartWithTimeOfDay(t *testing.T) {
	start := time.Date(2003, time.October, 1, 15, 30, 0, 0, time.FixedZone("X", 3600))

	tr, err := Weekly(bugs(t, "2003-10-01"), domain.WeekRange{Start: start, Count: 1})

	require.NoError(t, err)
	assert.Equal(t, []int{1}, rawCounts(tr))
}

func TestWeekly_InvalidCount(t *testing.T) {
	_, err := Weekly(nil, domain.WeekRange{Start: date(t, "2003-10-01"), Count: -1})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestBucketers_WellFormedForAnyCount(t *testing.T) {
	reports := bugs(t,
		"2003-09-30", "2003-10-01", "2003-10-15", "2003-11-30", "2003-12-01",
		"2004-02-29", "2004-06-01", "2005-01-01", "2010-01-01",
	)

	for n := 1; n <= 30; n++ {
		monthly, err := Monthly(reports, domain.MonthRange{Start: domain.YearMonth{Year: 2003, Month: time.October}, Count: n})
		require.NoError(t, err)
		assertWellFormed(t, monthly, n)

		weekly, err := Weekly(reports, domain.WeekRange{Start: date(t, "2003-10-01"), Count: n})
		require.NoError(t, err)
		assertWellFormed(t, weekly, n)
	}
}

func TestBucketers_TotalMatchesInRangeReports(t *testing.T) {
	reports := bugs(t, "2003-10-01", "2003-10-31", "2003-11-01", "2004-01-01", "2003-09-30")

	monthly, err := Monthly(reports, domain.MonthRange{Start: domain.YearMonth{Year: 2003, Month: time.October}, Count: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, monthly.Total)

	weekly, err := Weekly(reports, domain.WeekRange{Start: date(t, "2003-10-01"), Count: 5})
	require.NoError(t, err)
	assert.Equal(t, 3, weekly.Total)
}

func TestHistogram_Counts(t *testing.T) {
	h := NewHistogram([]string{"a", "b", "c"}, func(tm time.Time) (string, bool) {
		switch tm.Day() {
		case 1:
			return "a", true
		case 3:
			return "c", true
		}
		return "", false
	})

	counts := h.Counts(bugs(t, "2020-01-01", "2020-01-03", "2020-01-03", "2020-01-02"))

	assert.Equal(t, []int{1, 0, 2}, counts)
}

func TestAccumulate(t *testing.T) {
	assert.Equal(t, []domain.CumulativePoint{}, Accumulate(nil))
	assert.Equal(t,
		[]domain.CumulativePoint{{Index: 1, Total: 2}, {Index: 2, Total: 5}, {Index: 3, Total: 5}},
		Accumulate([]int{2, 3, 0}),
	)
}

func TestFormatCumulative(t *testing.T) {
	tests := []struct {
		name   string
		points []domain.CumulativePoint
		want   string
	}{
		{
			name:   "three pairs",
			points: []domain.CumulativePoint{{Index: 1, Total: 2}, {Index: 2, Total: 5}, {Index: 3, Total: 5}},
			want:   "{{1,2}, {2,5}, {3,5}}",
		},
		{name: "single pair", points: []domain.CumulativePoint{{Index: 1, Total: 0}}, want: "{{1,0}}"},
		{name: "empty", points: nil, want: "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCumulative(tt.points))
		})
	}
}
