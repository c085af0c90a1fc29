package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rgehrsitz/rptax/internal/calculation"
	"github.com/rgehrsitz/rptax/internal/config"
	"github.com/rgehrsitz/rptax/internal/logging"
	"github.com/rgehrsitz/rptax/internal/output"
	"github.com/rgehrsitz/rptax/internal/server"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	logLevel  string
	logFormat string
	tables    []string
}

func (o *globalOptions) logger() (*zap.Logger, error) {
	return logging.NewLogger(o.logLevel, o.logFormat)
}

// fileLogger appends JSON log lines to path at the --log-level threshold.
// An empty path falls back to the stderr logger.
func (o *globalOptions) fileLogger(path string) (*zap.Logger, func(), error) {
	if path == "" {
		logger, err := o.logger()
		if err != nil {
			return nil, nil, err
		}
		return logger, func() { _ = logger.Sync() }, nil
	}
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := logging.NewWriterLogger(f, level)
	return logger, func() {
		_ = logger.Sync()
		_ = f.Close()
	}, nil
}

// engine builds a calculation engine over the embedded tables plus any
// --tables files, logging through logger
func (o *globalOptions) engine(logger *zap.Logger) (*calculation.Engine, error) {
	registry, err := taxconfig.NewDefaultRegistry()
	if err != nil {
		return nil, err
	}
	for _, file := range o.tables {
		if err := registry.LoadFile(file); err != nil {
			return nil, err
		}
		logger.Debug("loaded tax tables", zap.String("file", file))
	}
	engine := calculation.NewEngine(registry)
	engine.SetLogger(logging.Sugar(logger.Named("engine")))
	return engine, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rptax %s (commit %s, built %s)\n", version, commit, date)
			fmt.Fprintf(out, "tax table schema %s\n", taxconfig.SchemaVersion)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(out, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func computeCmd(opts *globalOptions) *cobra.Command {
	var (
		priorYearTax string
		format       string
		outputFile   string
	)
	cmd := &cobra.Command{
		Use:   "compute [input-file]",
		Short: "Compute the federal and California returns for an input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unsupported format %q (available: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
			}
			prior, err := decimal.NewFromString(priorYearTax)
			if err != nil {
				return fmt.Errorf("invalid --prior-year-tax %q: %w", priorYearTax, err)
			}

			logger, err := opts.logger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			input, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			engine, err := opts.engine(logger)
			if err != nil {
				return err
			}
			results, err := engine.ComputeReturn(cmd.Context(), input, prior)
			if err != nil {
				return err
			}

			if outputFile == "" {
				return output.Write(cmd.OutOrStdout(), formatter, results)
			}
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outputFile, err)
			}
			if err := output.Write(f, formatter, results); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputFile)
			return nil
		},
	}
	cmd.Flags().StringVar(&priorYearTax, "prior-year-tax", "0", "Prior-year total federal tax, used for the underpayment estimate")
	cmd.Flags().StringVarP(&format, "format", "f", "console",
		"Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate an input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Input file %s is valid (%d, %s)\n", args[0], input.TaxYear, input.FilingStatus)
			return nil
		},
	}
}

func tablesCmd(opts *globalOptions) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List the registered tax tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine(zap.NewNop())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			found := false
			for _, cfg := range engine.Registry.Configurations() {
				if year != 0 && cfg.Year != year {
					continue
				}
				found = true
				fmt.Fprintf(out, "%d  %-4s  schema %-6s  standard deduction %s  CA standard deduction %s\n",
					cfg.Year, cfg.FilingStatus, cfg.SchemaVersion,
					output.FormatCurrency(cfg.Federal.StandardDeduction),
					output.FormatCurrency(cfg.California.StandardDeduction))
			}
			if !found {
				return fmt.Errorf("no tax tables registered for %d", year)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Only list tables for this tax year")
	return cmd
}

func serveCmd(opts *globalOptions) *cobra.Command {
	serverOpts := server.DefaultOptions()
	var logFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tax engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := opts.fileLogger(logFile)
			if err != nil {
				return err
			}
			defer closeLog()

			engine, err := opts.engine(logger)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(engine, logger.Named("http")).ListenAndServe(ctx, serverOpts)
		},
	}
	cmd.Flags().StringVar(&serverOpts.Addr, "addr", serverOpts.Addr, "Listen address")
	cmd.Flags().DurationVar(&serverOpts.ShutdownTimeout, "shutdown-timeout", serverOpts.ShutdownTimeout, "Grace period for in-flight requests")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Append JSON logs to this file instead of stderr")
	return cmd
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "rptax",
		Short:         "Federal and California income tax calculator",
		Long:          "Computes a household's federal (Form 1040) and California (Form 540) income tax from source-document data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", logging.EncodingConsole, "Log encoding (console, json)")
	root.PersistentFlags().StringSliceVar(&opts.tables, "tables", nil, "Additional tax table YAML files")

	root.AddCommand(computeCmd(opts))
	root.AddCommand(validateCmd())
	root.AddCommand(compareCmd(opts))
	root.AddCommand(solveCmd(opts))
	root.AddCommand(tablesCmd(opts))
	root.AddCommand(serveCmd(opts))
	root.AddCommand(versionCmd())
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
