// Package main provides the CLI entry point for callcost, a tool that
// measures the per-call wall-clock cost of near-zero-cost operations.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/callcost/callcost/report"
	"github.com/callcost/callcost/sampler"
	"github.com/callcost/callcost/target"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		logger.Error("callcost failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "callcost",
		Short: "Measure the per-call cost of near-zero-cost operations",
		Long: `Callcost times a target operation over repeated trials and reports
the average wall-clock nanoseconds per call. An optional calibration pass
subtracts the measured cost of reading the clock itself, isolating the
cost of the call from the cost of timing it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newTargetsCmd())

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the overhead sampler",
		Long: `Run the configured number of trials against a target operation and
print one average per trial. The defaults (10 trials of 1000000 calls to
the noop target, text output) reproduce the classic timing loop.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRunConfig(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			return runSampler(logger, cfg)
		},
	}

	flags := cmd.Flags()
	flags.Int("trials", defaultTrials,
		"Number of trials; one average is reported per trial")
	flags.Int("iterations", defaultIterations,
		"Number of timed calls per trial")
	flags.String("target", defaultTarget,
		"Target operation to measure (see 'callcost targets')")
	flags.Bool("calibrate", false,
		"Subtract the measured clock-read overhead from each trial")
	flags.String("format", defaultFormat,
		"Output format: text, summary, or json")
	flags.String("output", "",
		"Write results to this file instead of stdout")
	flags.StringVar(&configFile, "config", "",
		"Path to a config file (default: callcost.yaml in the working directory)")

	return cmd
}

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List measurable target operations",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range target.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func runSampler(logger *slog.Logger, cfg runConfig) error {
	fn, err := target.Lookup(cfg.Target)
	if err != nil {
		return err
	}

	s, err := sampler.New(sampler.Config{
		Trials:     cfg.Trials,
		Iterations: cfg.Iterations,
		Calibrate:  cfg.Calibrate,
	}, logger)
	if err != nil {
		return err
	}

	logger.Info("starting run",
		slog.String("target", cfg.Target),
		slog.Int("trials", cfg.Trials),
		slog.Int("iterations", cfg.Iterations),
		slog.Bool("calibrate", cfg.Calibrate),
	)

	trials := s.Run(fn)

	out := os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("create output %s: %w", cfg.Output, err)
		}
		defer f.Close()
		out = f
	}

	switch cfg.Format {
	case "text":
		return report.WriteText(out, trials)
	case "summary":
		return report.WriteSummary(out, cfg.Target, trials)
	case "json":
		return report.WriteJSON(out,
			report.NewResult(cfg.Target, cfg.Iterations, cfg.Calibrate, trials))
	default:
		return fmt.Errorf("unknown format %q (want text, summary, or json)", cfg.Format)
	}
}
