package api

type TimePeriod struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Buckets int    `json:"buckets"`
}

type Bucket struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
	Count int    `json:"count"`
}

type CumulativePoint struct {
	Index int `json:"index"`
	Total int `json:"total"`
}

type TrendReport struct {
	Granularity string            `json:"granularity"`
	Period      TimePeriod        `json:"period"`
	Cumulative  []CumulativePoint `json:"cumulative"`
	Literal     string            `json:"literal"`
	Buckets     []Bucket          `json:"buckets"`
	Total       int               `json:"total"`
	Loaded      int               `json:"reports_loaded"`
	Skipped     int               `json:"rows_skipped"`
	SourceError string            `json:"source_error,omitempty"`
}
