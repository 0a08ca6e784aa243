package domain

import "time"

// Trend represents a complete cumulative bucketing result
type Trend struct {
	Granularity Granularity
	Period      TimePeriod
	Buckets     []Bucket
	Cumulative  []CumulativePoint
	Total       int
}

// TimePeriod represents the inclusive date range covered by a trend
type TimePeriod struct {
	Start   time.Time
	End     time.Time
	Buckets int
}

// Bucket is a single time window with its raw (non-cumulative) count
type Bucket struct {
	Index int
	Label string
	Start time.Time
	End   time.Time
	Count int
}

// CumulativePoint is one (bucket index, running total) pair
type CumulativePoint struct {
	Index int
	Total int
}

// Analysis is the outcome of one pipeline run
type Analysis struct {
	Trend   *Trend
	Loaded  int
	Skipped int
	// SourceErr is set when the input could not be fully read. The trend
	// is still computed over whatever was loaded.
	SourceErr error
}
