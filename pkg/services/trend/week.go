package trend

import (
	"fmt"
	"time"

	"github.com/de-tools/bug-trends/pkg/models/domain"
)

// Weekly buckets reports into r.Count consecutive 7-day windows starting on
// r.Start. Week n covers days [(n-1)*7, n*7) counted from the start date.
func Weekly(reports []domain.BugReport, r domain.WeekRange) (*domain.Trend, error) {
	if r.Count < 1 {
		return nil, fmt.Errorf("%w: week count must be at least 1, got %d", ErrInvalidRange, r.Count)
	}

	start := truncateDay(r.Start)
	r.Start = start
	end := r.End()
	startDay, endDay := domain.EpochDay(start), domain.EpochDay(end)

	weeks := make([]int, r.Count)
	for i := range weeks {
		weeks[i] = i + 1
	}

	h := NewHistogram(weeks, func(t time.Time) (int, bool) {
		day := domain.EpochDay(t)
		if day < startDay || day > endDay {
			return 0, false
		}
		return int((day-startDay)/domain.DaysPerWeek) + 1, true
	})
	counts := h.Counts(reports)

	buckets := make([]domain.Bucket, r.Count)
	for i, week := range weeks {
		weekStart := r.WeekStart(week)
		weekEnd := weekStart.AddDate(0, 0, domain.DaysPerWeek-1)
		buckets[i] = domain.Bucket{
			Index: week,
			Label: fmt.Sprintf("%s to %s", weekStart.Format(domain.DateLayout), weekEnd.Format(domain.DateLayout)),
			Start: weekStart,
			End:   weekEnd,
			Count: counts[i],
		}
	}

	return newTrend(domain.GranularityWeekly, start, end, buckets), nil
}

// truncateDay drops any time-of-day and zone so day arithmetic stays exact
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
