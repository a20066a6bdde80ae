package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randomizedcoder/subdays-benchmarks/internal/bench"
	"github.com/randomizedcoder/subdays-benchmarks/internal/config"
	"github.com/randomizedcoder/subdays-benchmarks/internal/report"
	"github.com/randomizedcoder/subdays-benchmarks/internal/subdays"
)

type runFlags struct {
	configFile string
	benchtime  string
	count      int
	setupMode  string
	format     string
	cases      []string
}

func newRunCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the subDays suite",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig()
			if err := config.ParseConfig(f.configFile, cfg); err != nil {
				return err
			}
			f.apply(cmd, cfg)
			if err := config.Validate(cfg); err != nil {
				return err
			}

			logger, err := config.NewLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			if cfg.Output.File != "" {
				fh, err := os.Create(cfg.Output.File)
				if err != nil {
					return err
				}
				defer fh.Close()
				out = fh
			}

			return runSuite(ctx, cfg, out, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.configFile, "config", "c", "", "Filename of TOML config")
	flags.StringVar(&f.benchtime, "benchtime", "", "Run time per case, e.g. 1s or 100000x")
	flags.IntVar(&f.count, "count", 0, "Repeat every case N times")
	flags.StringVar(&f.setupMode, "setup", "", "Setup frequency: per-batch or per-iteration")
	flags.StringVarP(&f.format, "format", "f", "", "Output format: text or json")
	flags.StringSliceVar(&f.cases, "case", nil, "Run only the named case (repeatable)")

	return cmd
}

// apply overrides config values with flags set on the command line.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("benchtime") {
		cfg.Bench.Benchtime = f.benchtime
	}
	if changed("count") {
		cfg.Bench.Count = f.count
	}
	if changed("setup") {
		cfg.Bench.SetupMode = f.setupMode
	}
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("case") {
		cfg.Bench.Cases = f.cases
	}
}

// runSuite measures the subDays suite and writes the report to w.
func runSuite(ctx context.Context, cfg *config.Config, w io.Writer, logger *zap.Logger) error {
	mode, err := bench.ParseSetupMode(cfg.Bench.SetupMode)
	if err != nil {
		return err
	}

	suite, err := subdays.NewSuite(mode)
	if err != nil {
		return err
	}

	if t := cfg.Run.Timeout; t != nil && t.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Duration)
		defer cancel()
	}

	runner := &bench.Runner{
		Benchtime: cfg.Bench.Benchtime,
		Count:     cfg.Bench.Count,
		Cases:     cfg.Bench.Cases,
		Logger:    logger,
	}

	logger.Info("run started",
		zap.String("suite", suite.Name()),
		zap.Stringer("setup", mode),
		zap.String("benchtime", cfg.Bench.Benchtime),
		zap.Int("count", cfg.Bench.Count),
	)

	return measure(ctx, runner, suite, mode, cfg.Output.Format, w)
}

// measure runs s and writes the report in format to w. When the run is
// cancelled after some cases finished, their report is still written and
// the cancellation error is returned.
func measure(ctx context.Context, runner *bench.Runner, s bench.Runnable, mode bench.SetupMode, format string, w io.Writer) error {
	results, runErr := runner.Run(ctx, s)
	if len(results) == 0 && runErr != nil {
		return runErr
	}

	rep := report.New(mode, results)
	var err error
	if format == "json" {
		err = report.WriteJSON(w, rep)
	} else {
		err = report.WriteText(w, rep)
	}
	if err != nil {
		return err
	}
	return runErr
}
