package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout      = time.DateOnly
	YearMonthLayout = "2006-01"

	DaysPerWeek   = 7
	secondsPerDay = 24 * 60 * 60
)

// YearMonth is a calendar month without a day component
type YearMonth struct {
	Year  int
	Month time.Month
}

func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses a strict yyyy-MM string
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(YearMonthLayout, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return YearMonthOf(t), nil
}

func (ym YearMonth) AddMonths(n int) YearMonth {
	return YearMonthOf(ym.FirstDay().AddDate(0, n, 0))
}

// FirstDay returns the first day of the month at UTC midnight
func (ym YearMonth) FirstDay() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns the last day of the month at UTC midnight
func (ym YearMonth) LastDay() time.Time {
	return ym.FirstDay().AddDate(0, 1, -1)
}

func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

func (ym YearMonth) After(other YearMonth) bool {
	return other.Before(ym)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// WeekRange is Count consecutive 7-day windows, the first beginning on Start
type WeekRange struct {
	Start time.Time
	Count int
}

// End returns the last day of the final week
func (r WeekRange) End() time.Time {
	return r.Start.AddDate(0, 0, (r.Count-1)*DaysPerWeek+DaysPerWeek-1)
}

// WeekStart returns the first day of the given 1-based week
func (r WeekRange) WeekStart(week int) time.Time {
	return r.Start.AddDate(0, 0, (week-1)*DaysPerWeek)
}

// ParseDate parses a strict yyyy-MM-dd string into a UTC date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// EpochDay returns the number of days since 1970-01-01 for a UTC date
func EpochDay(t time.Time) int64 {
	return t.Unix() / secondsPerDay
}
