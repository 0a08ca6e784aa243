package domain

import "fmt"

type Granularity string

const (
	GranularityMonthly Granularity = "monthly"
	GranularityWeekly  Granularity = "weekly"
)

// Unit returns the plural bucket noun used in summaries
func (g Granularity) Unit() string {
	switch g {
	case GranularityMonthly:
		return "months"
	case GranularityWeekly:
		return "weeks"
	default:
		return "buckets"
	}
}

// DateLayout returns the layout used to print period boundaries
func (g Granularity) DateLayout() string {
	if g == GranularityMonthly {
		return "2006-01"
	}
	return "2006-01-02"
}

// MonthRange is a contiguous run of Count calendar months starting at Start
type MonthRange struct {
	Start YearMonth
	Count int
}

func (r MonthRange) End() YearMonth {
	return r.Start.AddMonths(r.Count - 1)
}

func (r MonthRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start, r.End())
}
