package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/energy-carbon-metrics/internal/carbon"
	"github.com/rshade/energy-carbon-metrics/internal/dataset"
	"github.com/rshade/energy-carbon-metrics/internal/report"
)

const appName = "energy-metrics"

// cli holds state shared by the commands of one invocation.
type cli struct {
	logLevel string
	logger   zerolog.Logger
}

// tableOptions are the flags shared by commands that load the monthly table.
type tableOptions struct {
	source string
	seed   uint64
	format string
}

func (o *tableOptions) register(cmd *cobra.Command, defaultFormat string) {
	cmd.Flags().StringVar(&o.source, "source", "", "Path to a CSV or XLSX file with Month, Total_Energy, Solar, Wind columns (default $"+EnvDataFile+")")
	cmd.Flags().Uint64Var(&o.seed, "seed", dataset.DefaultSeed, "Seed for synthetic data")
	cmd.Flags().StringVar(&o.format, "format", defaultFormat, "Output format")
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   appName,
		Short: "Monthly energy and CO2 metrics",
		Long: `energy-metrics derives renewable fraction, energy efficiency and CO2
estimates from monthly energy data, fits a CO2 trend across months, and
estimates CO2 for a single ad-hoc reading.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.logger = newLogger(cmd.ErrOrStderr(), c.logLevel)
		},
	}
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(
		c.newTableCmd(),
		c.newSummaryCmd(),
		c.newPredictCmd(),
	)
	return root
}

// loadTable loads the monthly records and augments them.
func (c *cli) loadTable(opts tableOptions) *carbon.Table {
	source := resolveSource(opts.source, c.logger)
	res := dataset.NewProvider(c.logger).Load(source, dataset.NewRand(opts.seed))

	c.logger.Info().
		Str("source", res.Source).
		Bool("synthetic", res.Synthetic).
		Int("rows", len(res.Records)).
		Msg("energy data loaded")

	return carbon.Augment(res.Records)
}

func (c *cli) newTableCmd() *cobra.Command {
	var opts tableOptions
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the monthly table with derived metrics (json, yaml, csv)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			return report.WriteTable(cmd.OutOrStdout(), format, c.loadTable(opts))
		},
	}
	opts.register(cmd, string(report.FormatJSON))
	return cmd
}

func (c *cli) newSummaryCmd() *cobra.Command {
	var opts tableOptions
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print year-level observations over the monthly table (json, yaml)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			summary := carbon.Summarize(c.loadTable(opts))
			return report.WriteSummary(cmd.OutOrStdout(), format, summary)
		},
	}
	opts.register(cmd, string(report.FormatJSON))
	return cmd
}

func (c *cli) newPredictCmd() *cobra.Command {
	var (
		totalEnergy float64
		solar       float64
		wind        float64
		month       int
		format      string
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Estimate CO2 metrics for a single energy reading (json, yaml)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if totalEnergy < 0 || solar < 0 || wind < 0 {
				return fmt.Errorf("energy values must be non-negative (total=%v solar=%v wind=%v)", totalEnergy, solar, wind)
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("month must be between 1 and 12, got %d", month)
			}
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			result := carbon.PredictSingle(totalEnergy, solar, wind, month)
			c.logger.Debug().
				Float64("total_energy", totalEnergy).
				Float64("solar", solar).
				Float64("wind", wind).
				Int("month", month).
				Float64("co2", result.CO2Original).
				Msg("single reading estimated")

			return report.WritePrediction(cmd.OutOrStdout(), f, result)
		},
	}

	cmd.Flags().Float64Var(&totalEnergy, "total-energy", 300, "Total energy (kWh)")
	cmd.Flags().Float64Var(&solar, "solar", 100, "Solar energy (kWh)")
	cmd.Flags().Float64Var(&wind, "wind", 50, "Wind energy (kWh)")
	cmd.Flags().IntVar(&month, "month", 1, "Month (1-12)")
	cmd.Flags().StringVar(&format, "format", string(report.FormatJSON), "Output format")
	return cmd
}
