package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/rptax/internal/breakeven"
	"github.com/rgehrsitz/rptax/internal/compare"
	"github.com/rgehrsitz/rptax/internal/config"
	"github.com/rgehrsitz/rptax/internal/transform"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func compareCmd(opts *globalOptions) *cobra.Command {
	var (
		priorYearTax  string
		format        string
		templates     []string
		transforms    []string
		listTemplates bool
	)
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare the return against what-if alternatives",
		Long: `Runs the return as filed plus one alternative per template or transform chain.

Transform chains are specs separated by ';', for example:
  --transform "realize_gain:term=long,amount=20000;add_charitable_cash:amount=5000"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if listTemplates {
				return nil
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if listTemplates {
				fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(transform.CreateBuiltInTemplates(nil)))
				return nil
			}
			if len(templates) == 0 && len(transforms) == 0 {
				return fmt.Errorf("at least one --template or --transform is required")
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

			set, err := compare.NewCompareEngine(engine).Compare(cmd.Context(), input, compare.CompareOptions{
				Templates:    templates,
				Transforms:   transforms,
				PriorYearTax: prior,
			})
			if err != nil {
				return err
			}
			set.InputPath = args[0]

			var report string
			switch format {
			case "table":
				report = (&compare.TableFormatter{}).Format(set)
			case "compact":
				report = (&compare.TableFormatter{}).FormatCompact(set)
			case "csv":
				report, err = (&compare.CSVFormatter{}).Format(set)
			case "json":
				report, err = (&compare.JSONFormatter{Indent: "  "}).Format(set)
			default:
				return fmt.Errorf("unsupported format %q (available: table, compact, csv, json)", format)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), report)
			return err
		},
	}
	cmd.Flags().StringVar(&priorYearTax, "prior-year-tax", "0", "Prior-year total federal tax, used for the underpayment estimate")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, compact, csv, json)")
	cmd.Flags().StringSliceVarP(&templates, "template", "t", nil, "Built-in template names")
	cmd.Flags().StringArrayVar(&transforms, "transform", nil, "Transform chain (repeatable)")
	cmd.Flags().BoolVar(&listTemplates, "list-templates", false, "List the built-in templates and exit")
	return cmd
}

func solveCmd(opts *globalOptions) *cobra.Command {
	var (
		priorYearTax string
		format       string
		lever        string
		goal         string
		target       string
		minAmount    string
		maxAmount    string
	)
	cmd := &cobra.Command{
		Use:   "solve [input-file]",
		Short: "Find the amount of a planning lever that reaches a goal",
		Long: `Searches for the lever amount that reaches a goal.

Goals: tax_budget, tax_savings, safe_harbor, zero_federal_balance, zero_ca_balance
Levers: ` + strings.Join(leverNames(), ", ") + `

Without --lever every lever that can move the goal is tried.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := breakeven.ParseGoal(goal)
			if err != nil {
				return err
			}
			constraints := breakeven.DefaultConstraints()
			if constraints.MinAmount, err = parseAmount("--min", minAmount, constraints.MinAmount); err != nil {
				return err
			}
			if constraints.MaxAmount, err = parseAmount("--max", maxAmount, constraints.MaxAmount); err != nil {
				return err
			}
			if target != "" {
				t, err := parseAmount("--target", target, decimal.Zero)
				if err != nil {
					return err
				}
				constraints.Target = &t
			}
			prior, err := parseAmount("--prior-year-tax", priorYearTax, decimal.Zero)
			if err != nil {
				return err
			}
			if format != "text" && format != "json" {
				return fmt.Errorf("unsupported format %q (available: text, json)", format)
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
			solver := breakeven.NewDefaultSolver(engine)
			out := cmd.OutOrStdout()

			if lever == "" {
				multi, err := solver.OptimizeAllLevers(cmd.Context(), input, g, constraints, prior)
				if err != nil {
					return err
				}
				if format == "json" {
					return breakeven.FormatJSON(out, multi)
				}
				return breakeven.FormatMultiResult(out, multi)
			}

			l, err := breakeven.ParseLever(lever)
			if err != nil {
				return err
			}
			result, err := solver.Optimize(cmd.Context(), input, breakeven.OptimizationRequest{
				Lever:        l,
				Goal:         g,
				Constraints:  constraints,
				PriorYearTax: prior,
			})
			if err != nil {
				return err
			}
			if format == "json" {
				return breakeven.FormatJSON(out, result)
			}
			return breakeven.FormatResult(out, result)
		},
	}
	cmd.Flags().StringVar(&priorYearTax, "prior-year-tax", "0", "Prior-year total federal tax, used for the underpayment estimate")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json)")
	cmd.Flags().StringVar(&lever, "lever", "", "Lever to solve for (default: every lever that can move the goal)")
	cmd.Flags().StringVar(&goal, "goal", string(breakeven.GoalZeroFederalBalance), "Goal to reach")
	cmd.Flags().StringVar(&target, "target", "", "Dollar budget or savings for tax_budget and tax_savings")
	cmd.Flags().StringVar(&minAmount, "min", "", "Smallest lever amount to consider")
	cmd.Flags().StringVar(&maxAmount, "max", "", "Largest lever amount to consider")
	return cmd
}

func parseAmount(flag, value string, fallback decimal.Decimal) (decimal.Decimal, error) {
	if value == "" {
		return fallback, nil
	}
	v, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", flag, value, err)
	}
	return v, nil
}

func leverNames() []string {
	names := make([]string, len(breakeven.AllLevers))
	for i, l := range breakeven.AllLevers {
		names[i] = string(l)
	}
	return names
}
