package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/de-tools/bug-trends/pkg/runtime/terminal/commands"
	"github.com/de-tools/bug-trends/pkg/services/trend"
	"github.com/de-tools/bug-trends/pkg/store/reports"
)

const envPrefix = "BUGTRENDS"

// CLI represents the command-line interface
type CLI struct {
	registry  trend.Registry
	output    io.Writer
	errOutput io.Writer
	config    *viper.Viper
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry trend.Registry
	// Output receives reports, ErrOutput receives logs and row diagnostics
	Output    io.Writer
	ErrOutput io.Writer
	// LoaderFactory overrides how the input file is opened
	LoaderFactory commands.LoaderFactory
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.Registry == nil {
		opts.Registry = trend.DefaultRegistry()
	}
	if opts.LoaderFactory == nil {
		opts.LoaderFactory = reports.NewFileLoader
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cli := &CLI{
		registry:  opts.Registry,
		output:    opts.Output,
		errOutput: opts.ErrOutput,
		config:    v,
	}

	cli.rootCmd = cli.newRootCmd(commands.Dependencies{
		Registry:      opts.Registry,
		LoaderFactory: opts.LoaderFactory,
		Config:        v,
		Output:        opts.Output,
	})
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// ExecuteContext runs the CLI with args instead of os.Args
func (cli *CLI) ExecuteContext(ctx context.Context, args []string) error {
	cli.rootCmd.SetArgs(args)
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd(deps commands.Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "bug-trends",
		Short:             "Cumulative bug report trends by month or week",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setupLogger,
	}
	cmd.SetOut(cli.output)
	cmd.SetErr(cli.errOutput)

	cmd.PersistentFlags().String("log-level", zerolog.LevelInfoValue, "Log level (trace, debug, info, warn, error)")
	_ = cli.config.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))

	for _, g := range cli.registry.ListGranularities() {
		cmd.AddCommand(commands.NewTrendCmd(g, deps))
	}

	return cmd
}

func (cli *CLI) setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := zerolog.ParseLevel(cli.config.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	logger := zerolog.New(cli.errOutput).Level(level).With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}
