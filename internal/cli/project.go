package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"revenue-lab/internal/compare"
	"revenue-lab/internal/domain"
)

type ProjectOptions struct {
	GlobalOptions
	OutputOptions
}

// projection is the chart data of the estimator page.
type projection struct {
	Projection         []domain.ProjectionPoint `json:"projection"`
	Breakdown          []domain.BreakdownRow    `json:"breakdown"`
	Capacity           domain.CapacitySplit     `json:"capacity"`
	ComparisonCapacity *domain.CapacitySplit    `json:"comparisonCapacity,omitempty"`
}

func DefaultProjectOptions() *ProjectOptions {
	return &ProjectOptions{
		GlobalOptions: DefaultGlobalOptions(),
		OutputOptions: DefaultOutputOptions(),
	}
}

func NewCmdProject() *cobra.Command {
	o := DefaultProjectOptions()
	cmd := &cobra.Command{
		Use:          "project",
		Short:        "Display the revenue projection, revenue breakdown and capacity split.",
		Args:         cobra.NoArgs,
		RunE:         runE(o),
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ProjectOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.OutputOptions.Bind(fs)
}

func (o *ProjectOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *ProjectOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return o.OutputOptions.Validate(args)
}

func (o *ProjectOptions) Run(ctx context.Context, _ []string) error {
	return o.withEnv(ctx, func(env *Env) error {
		view := env.State.View(env.Money)
		env.Metrics.RecordComputation("projection")

		p := projection{
			Projection:         view.Projection,
			Breakdown:          view.Breakdown,
			Capacity:           view.Capacity,
			ComparisonCapacity: view.ComparisonCapacity,
		}
		comparison := ""
		if view.Comparison != nil {
			comparison = view.Comparison.Name
		}
		return o.print(o.out, p, func(w io.Writer) {
			printProjection(w, p, comparison, env.Money)
		})
	})
}

// printProjection prints the chart data as tables. The AXIS column carries the
// compact label the projection chart puts on its value axis.
func printProjection(w io.Writer, p projection, comparison string, money *compare.CurrencyFormatter) {
	row := func(label string, current, other float64) string {
		if comparison == "" {
			return fmt.Sprintf("%s\t%s", label, money.Format(current))
		}
		return fmt.Sprintf("%s\t%s\t%s", label, money.Format(current), money.Format(other))
	}
	header := func(first string) string {
		if comparison == "" {
			return first + "\tCURRENT"
		}
		return first + "\tCURRENT\t" + comparison
	}

	fmt.Fprintln(w, header("DAY")+"\tAXIS")
	for _, pt := range p.Projection {
		fmt.Fprintf(w, "%s\t%s\n", row(pt.Label, pt.Current, pt.Comparison), money.Compact(max(pt.Current, pt.Comparison)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, header("PERIOD"))
	for _, b := range p.Breakdown {
		fmt.Fprintln(w, row(b.Period, b.Current, b.Comparison))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "CAPACITY\tUSED\tAVAILABLE\tTARGET")
	printCapacity(w, "Current", p.Capacity)
	if p.ComparisonCapacity != nil {
		printCapacity(w, comparison, *p.ComparisonCapacity)
	}
}

func printCapacity(w io.Writer, label string, c domain.CapacitySplit) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", label, compare.Fixed(c.Used, 1), compare.Fixed(c.Available, 1), compare.Fixed(c.Target, 1))
}
