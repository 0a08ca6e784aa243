package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/de-tools/bug-trends/pkg/adapters"
	"github.com/de-tools/bug-trends/pkg/models/domain"
	"github.com/de-tools/bug-trends/pkg/services/trend"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Reporter writes a finished analysis to its sink
type Reporter interface {
	Handle(a *domain.Analysis) error
}

// NewReporter returns the reporter for format, writing to writer
func NewReporter(format Format, writer io.Writer) (Reporter, error) {
	if writer == nil {
		writer = os.Stdout
	}
	switch format {
	case FormatText, "":
		return &TextReporter{writer: writer}, nil
	case FormatJSON:
		return &JSONReporter{writer: writer}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// TextReporter prints the summary line, the cumulative literal, a per-bucket
// table and the grand total
type TextReporter struct {
	writer io.Writer
}

const textTemplate = `Analyzing bug reports from {{period .Trend}} ({{.Trend.Period.Buckets}} {{.Trend.Granularity.Unit}})
Cumulative result: {{literal .Trend}}

Bug counts per bucket:
{{breakdown .Trend}}

Total bugs in {{.Trend.Period.Buckets}} {{.Trend.Granularity.Unit}}: {{comma .Trend.Total}}
`

func (c *TextReporter) Handle(a *domain.Analysis) error {
	funcMap := template.FuncMap{
		"period": func(t *domain.Trend) string {
			layout := t.Granularity.DateLayout()
			return fmt.Sprintf("%s to %s", t.Period.Start.Format(layout), t.Period.End.Format(layout))
		},
		"literal": func(t *domain.Trend) string {
			return trend.FormatCumulative(t.Cumulative)
		},
		"breakdown": breakdownTable,
		"comma": func(n int) string {
			return humanize.Comma(int64(n))
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(textTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, a)
}

func breakdownTable(t *domain.Trend) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Period", "Bugs", "Cumulative"})
	for i, b := range t.Buckets {
		tw.AppendRow(table.Row{b.Index, b.Label, humanize.Comma(int64(b.Count)), humanize.Comma(int64(t.Cumulative[i].Total))})
	}
	return tw.Render()
}

// JSONReporter writes the analysis as an indented api.TrendReport document
type JSONReporter struct {
	writer io.Writer
}

func (c *JSONReporter) Handle(a *domain.Analysis) error {
	enc := json.NewEncoder(c.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(adapters.MapDomainAnalysisToAPITrendReport(*a)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
