package adapters

import (
	"github.com/de-tools/bug-trends/pkg/models/api"
	"github.com/de-tools/bug-trends/pkg/models/domain"
	"github.com/de-tools/bug-trends/pkg/services/trend"
)

func MapDomainAnalysisToAPITrendReport(a domain.Analysis) api.TrendReport {
	t := a.Trend
	layout := t.Granularity.DateLayout()

	buckets := make([]api.Bucket, len(t.Buckets))
	for i, b := range t.Buckets {
		buckets[i] = api.Bucket{
			Index: b.Index,
			Label: b.Label,
			Start: b.Start.Format(domain.DateLayout),
			End:   b.End.Format(domain.DateLayout),
			Count: b.Count,
		}
	}

	points := make([]api.CumulativePoint, len(t.Cumulative))
	for i, p := range t.Cumulative {
		points[i] = api.CumulativePoint{Index: p.Index, Total: p.Total}
	}

	report := api.TrendReport{
		Granularity: string(t.Granularity),
		Period: api.TimePeriod{
			Start:   t.Period.Start.Format(layout),
			End:     t.Period.End.Format(layout),
			Buckets: t.Period.Buckets,
		},
		Cumulative: points,
		Literal:    trend.FormatCumulative(t.Cumulative),
		Buckets:    buckets,
		Total:      t.Total,
		Loaded:     a.Loaded,
		Skipped:    a.Skipped,
	}
	if a.SourceErr != nil {
		report.SourceError = a.SourceErr.Error()
	}
	return report
}
