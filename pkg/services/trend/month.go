package trend

import (
	"fmt"
	"time"

	"github.com/de-tools/bug-trends/pkg/models/domain"
)

// Monthly buckets reports by calendar month over r. The day of month is
// ignored when assigning a report to its bucket.
func Monthly(reports []domain.BugReport, r domain.MonthRange) (*domain.Trend, error) {
	if r.Count < 1 {
		return nil, fmt.Errorf("%w: month count must be at least 1, got %d", ErrInvalidRange, r.Count)
	}

	end := r.End()
	months := make([]domain.YearMonth, 0, r.Count)
	for m := r.Start; !m.After(end); m = m.AddMonths(1) {
		months = append(months, m)
	}

	h := NewHistogram(months, func(t time.Time) (domain.YearMonth, bool) {
		ym := domain.YearMonthOf(t)
		return ym, !ym.Before(r.Start) && !ym.After(end)
	})
	counts := h.Counts(reports)

	buckets := make([]domain.Bucket, len(months))
	for i, m := range months {
		buckets[i] = domain.Bucket{
			Index: i + 1,
			Label: fmt.Sprintf("%s (%s)", m, m.Month),
			Start: m.FirstDay(),
			End:   m.LastDay(),
			Count: counts[i],
		}
	}

	return newTrend(domain.GranularityMonthly, r.Start.FirstDay(), end.LastDay(), buckets), nil
}
