package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/hapkiduki/dimension-go/internal/application/dto"
	"github.com/hapkiduki/dimension-go/internal/application/port"
	"github.com/hapkiduki/dimension-go/internal/application/service"
	"github.com/hapkiduki/dimension-go/internal/infrastructure/config"
	"github.com/hapkiduki/dimension-go/internal/infrastructure/logging"
	"github.com/hapkiduki/dimension-go/internal/infrastructure/persistance/memory"
	"github.com/hapkiduki/dimension-go/pkg/logger"
	"github.com/spf13/cobra"
)

type options struct {
	space     string
	configDir string
	verbose   bool
	noSI      bool
}

// app holds the services shared by every subcommand.
type app struct {
	catalog    *service.CatalogService
	calculator *service.CalculatorService
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	a := &app{}

	root := &cobra.Command{
		Use:           "dimctl",
		Short:         "Inspect dimension spaces and evaluate quantity arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context(), opts, cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&opts.space, "space", "s", "si", "dimension space to resolve units in")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "directory containing config.yaml")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log catalog activity to stderr")
	root.PersistentFlags().BoolVar(&opts.noSI, "no-si", false, "do not register the SI space")

	root.AddCommand(
		newSpacesCmd(a),
		newUnitsCmd(a, opts),
		newCalcCmd(a, opts),
		newCompatCmd(a, opts),
	)
	return root
}

// setup builds the in-memory catalog from configuration.
func (a *app) setup(ctx context.Context, opts *options, stderr io.Writer) error {
	var paths []string
	if opts.configDir != "" {
		paths = append(paths, opts.configDir)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return err
	}

	var log port.Logger = port.NopLogger{}
	if opts.verbose {
		log = logging.New(logger.MustNew(logger.Config{Level: "debug", Format: "console", Output: stderr}).Named("dimctl"))
	}

	a.catalog = service.NewCatalogService(memory.NewSpaceRepository(), memory.NewUnitRepository(), log, port.NopMetrics{})
	a.calculator = service.NewCalculatorService(a.catalog, log, port.NopMetrics{})

	specs := make([]service.SpaceSpec, 0, len(cfg.Catalog.Spaces))
	for _, s := range cfg.Catalog.Spaces {
		specs = append(specs, service.SpaceSpec{Name: s.Name, Dimensions: s.Dimensions})
	}
	return a.catalog.Bootstrap(ctx, cfg.Catalog.LoadSI && !opts.noSI, specs)
}

func newSpacesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "spaces",
		Short: "List the declared dimension spaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spaces, err := a.catalog.ListSpaces(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDIMENSIONS")
			for _, s := range spaces {
				fmt.Fprintf(tw, "%s\t%s\n", s.Name(), strings.Join(s.Dimensions(), ", "))
			}
			return tw.Flush()
		},
	}
}

func newUnitsCmd(a *app, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the named units of a space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defs, err := a.catalog.ListUnits(cmd.Context(), opts.space)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSYMBOL\tKIND\tEXPONENTS\tEXPRESSION")
			for _, d := range defs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.Name, d.Symbol, d.Kind, d.Unit.Exponents(), d.Unit)
			}
			return tw.Flush()
		},
	}
}

func newCalcCmd(a *app, opts *options) *cobra.Command {
	var rightSpace string
	cmd := &cobra.Command{
		Use:     "calc <add|subtract|multiply|divide> <value> <unit> <value> <unit>",
		Short:   "Apply an arithmetic operation to two quantities",
		Example: "  dimctl calc divide 20 joule 4 metre\n  dimctl calc add 2.1 metre 3.9 metre",
		Args:    cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := parseQuantity(args[1], args[2], "")
			if err != nil {
				return err
			}
			right, err := parseQuantity(args[3], args[4], rightSpace)
			if err != nil {
				return err
			}

			req := dto.CalculateRequest{Operation: args[0], Left: left, Right: right}
			if err := req.Validate(); err != nil {
				return fmt.Errorf("invalid calculation: %w", err)
			}

			resp, err := a.calculator.Calculate(cmd.Context(), opts.space, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatResult(resp))
			return nil
		},
	}
	cmd.Flags().StringVar(&rightSpace, "right-space", "", "space of the right operand (defaults to --space)")
	return cmd
}

func newCompatCmd(a *app, opts *options) *cobra.Command {
	var rightSpace string
	cmd := &cobra.Command{
		Use:   "compat <unit> <unit>",
		Short: "Report whether two units can be added or multiplied",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs := rightSpace
			if rs == "" {
				rs = opts.space
			}
			resp, err := a.catalog.Compatibility(cmd.Context(), opts.space, args[0], rs, args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s vs %s\n", resp.Left, resp.Right)
			fmt.Fprintf(out, "multiply/divide: %s\n", verdict(resp.SameDimensionSpace))
			fmt.Fprintf(out, "add/subtract:    %s\n", verdict(resp.DimensionallyEqual))
			return nil
		},
	}
	cmd.Flags().StringVar(&rightSpace, "right-space", "", "space of the second unit (defaults to --space)")
	return cmd
}

func parseQuantity(value, unit, space string) (dto.QuantityDTO, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return dto.QuantityDTO{}, fmt.Errorf("invalid value %q: %w", value, err)
	}
	return dto.QuantityDTO{Value: &v, Unit: unit, Space: space}, nil
}

func formatResult(resp dto.CalculateResponse) string {
	value := resp.NonFinite
	if resp.Value != nil {
		value = strconv.FormatFloat(*resp.Value, 'g', -1, 64)
	}
	s := value + " " + resp.Expression
	if resp.MatchedUnit != "" {
		s += " (" + resp.MatchedUnit + ")"
	}
	return s
}

func verdict(ok bool) string {
	if ok {
		return "allowed"
	}
	return "rejected"
}
