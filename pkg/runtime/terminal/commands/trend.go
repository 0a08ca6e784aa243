package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/de-tools/bug-trends/pkg/models/domain"
	"github.com/de-tools/bug-trends/pkg/runtime/terminal/export"
	"github.com/de-tools/bug-trends/pkg/services/analysis"
	"github.com/de-tools/bug-trends/pkg/services/trend"
	"github.com/de-tools/bug-trends/pkg/store/reports"
)

// LoaderFactory opens a report source by path
type LoaderFactory func(path string) (reports.Loader, error)

type Dependencies struct {
	Registry      trend.Registry
	LoaderFactory LoaderFactory
	Config        *viper.Viper
	Output        io.Writer
}

type defaults struct {
	short     string
	start     string
	startHelp string
	countFlag string
	count     int
}

var granularityDefaults = map[domain.Granularity]defaults{
	domain.GranularityMonthly: {
		short:     "Cumulative bug counts per calendar month",
		start:     "2015-01",
		startHelp: "First month to analyze (yyyy-MM)",
		countFlag: "months",
		count:     19,
	},
	domain.GranularityWeekly: {
		short:     "Cumulative bug counts per 7-day week",
		start:     "2003-10-01",
		startHelp: "First day of week 1 (yyyy-MM-dd)",
		countFlag: "weeks",
		count:     19,
	},
}

type TrendCmd struct {
	granularity domain.Granularity
	countFlag   string
	deps        Dependencies
}

func NewTrendCmd(g domain.Granularity, deps Dependencies) *cobra.Command {
	d, ok := granularityDefaults[g]
	if !ok {
		d = defaults{short: fmt.Sprintf("Cumulative bug counts (%s)", g), countFlag: "count", count: 1}
	}

	tc := &TrendCmd{granularity: g, countFlag: d.countFlag, deps: deps}
	cmd := &cobra.Command{
		Use:   string(g),
		Short: d.short,
		Args:  cobra.NoArgs,
		RunE:  tc.run,
	}

	cmd.Flags().StringP("file", "f", reports.DefaultPath, "Path to the bug report CSV file")
	cmd.Flags().String("start", d.start, d.startHelp)
	cmd.Flags().Int(d.countFlag, d.count, fmt.Sprintf("Number of %s to analyze", g.Unit()))
	cmd.Flags().String("format", string(export.FormatText), "Output format (text, json)")

	return cmd
}

func (tc *TrendCmd) run(cmd *cobra.Command, _ []string) error {
	v := tc.deps.Config
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	reporter, err := export.NewReporter(export.Format(v.GetString("format")), tc.deps.Output)
	if err != nil {
		return err
	}

	loader, err := tc.deps.LoaderFactory(v.GetString("file"))
	if err != nil {
		return fmt.Errorf("failed to create loader: %w", err)
	}

	svc, err := analysis.NewService(loader, tc.deps.Registry)
	if err != nil {
		return err
	}

	result, err := svc.Run(cmd.Context(), analysis.Request{
		Granularity: tc.granularity,
		Range: trend.RangeSpec{
			Start: v.GetString("start"),
			Count: v.GetInt(tc.countFlag),
		},
	})
	if err != nil {
		return err
	}

	return reporter.Handle(result)
}
