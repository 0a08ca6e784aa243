// Package trend turns a set of bug reports into bounded cumulative
// histograms over calendar months or fixed 7-day weeks.
package trend

import (
	"time"

	"github.com/de-tools/bug-trends/pkg/models/domain"
)

// KeyFunc maps a creation date to its bucket key. ok is false when the date
// falls outside the configured range.
type KeyFunc[K comparable] func(t time.Time) (key K, ok bool)

// Histogram counts reports into an ordered, gap-free list of bucket keys
type Histogram[K comparable] struct {
	keys  []K
	keyOf KeyFunc[K]
}

func NewHistogram[K comparable](keys []K, keyOf KeyFunc[K]) *Histogram[K] {
	return &Histogram[K]{keys: keys, keyOf: keyOf}
}

// Counts returns one raw count per key, in key order. Keys with no reports
// get zero.
func (h *Histogram[K]) Counts(reports []domain.BugReport) []int {
	grouped := make(map[K]int, len(h.keys))
	for _, r := range reports {
		if key, ok := h.keyOf(r.CreatedAt()); ok {
			grouped[key]++
		}
	}

	counts := make([]int, len(h.keys))
	for i, key := range h.keys {
		counts[i] = grouped[key]
	}
	return counts
}

// Accumulate turns raw counts into 1-based running totals
func Accumulate(counts []int) []domain.CumulativePoint {
	points := make([]domain.CumulativePoint, len(counts))
	sum := 0
	for i, c := range counts {
		sum += c
		points[i] = domain.CumulativePoint{Index: i + 1, Total: sum}
	}
	return points
}

func newTrend(g domain.Granularity, start, end time.Time, buckets []domain.Bucket) *domain.Trend {
	counts := make([]int, len(buckets))
	for i, b := range buckets {
		counts[i] = b.Count
	}
	cumulative := Accumulate(counts)

	total := 0
	if len(cumulative) > 0 {
		total = cumulative[len(cumulative)-1].Total
	}

	return &domain.Trend{
		Granularity: g,
		Period: domain.TimePeriod{
			Start:   start,
			End:     end,
			Buckets: len(buckets),
		},
		Buckets:    buckets,
		Cumulative: cumulative,
		Total:      total,
	}
}
