package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"revenue-lab/internal/compare"
	"revenue-lab/internal/session"
)

type ShowOptions struct {
	GlobalOptions
	OutputOptions
}

func DefaultShowOptions() *ShowOptions {
	return &ShowOptions{
		GlobalOptions: DefaultGlobalOptions(),
		OutputOptions: DefaultOutputOptions(),
	}
}

func NewCmdShow() *cobra.Command {
	o := DefaultShowOptions()
	cmd := &cobra.Command{
		Use:          "show",
		Short:        "Display the current scenario, its metrics and the comparison if one is selected.",
		Args:         cobra.NoArgs,
		RunE:         runE(o),
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ShowOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.OutputOptions.Bind(fs)
}

func (o *ShowOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *ShowOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return o.OutputOptions.Validate(args)
}

func (o *ShowOptions) Run(ctx context.Context, _ []string) error {
	return o.withEnv(ctx, func(env *Env) error {
		view := env.State.View(env.Money)
		env.Metrics.RecordComputation("revenue")
		return o.print(o.out, view, func(w io.Writer) {
			printView(w, view, env.Money)
		})
	})
}

func printView(w io.Writer, v session.View, money *compare.CurrencyFormatter) {
	fmt.Fprintf(w, "SCENARIO:\t%s\n", v.Current.Name)
	fmt.Fprintf(w, "MODE:\t%s\n", v.Mode)

	if v.Mode != session.ModeComparing {
		fmt.Fprintln(w)
		printSingle(w, "INPUT", compare.CompareInputs(v.Current.Inputs(), v.Current.Inputs()), money)
		fmt.Fprintln(w)
		printSingle(w, "METRIC", compare.Compare(v.CurrentMetrics, v.CurrentMetrics), money)
		return
	}

	fmt.Fprintf(w, "COMPARED WITH:\t%s (%s)\n", v.Comparison.Name, v.Comparison.ID)
	fmt.Fprintln(w)
	printDeltas(w, "INPUT", v.Comparison.Name, v.Inputs, money)
	fmt.Fprintln(w)
	printDeltas(w, "METRIC", v.Comparison.Name, v.Metrics, money)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "KEY DIFFERENCES")
	for _, impact := range v.Summary.Impacts {
		fmt.Fprintf(w, "%s:\t%s\n", impact.Title, impact.Sentence)
	}
	if len(v.Summary.ChangedInputs) == 0 {
		fmt.Fprintln(w, "Changed inputs:\tnone")
		return
	}
	for _, d := range v.Summary.ChangedInputs {
		fmt.Fprintf(w, "Changed input:\t%s %s -> %s\n",
			d.Label, formatValue(money, d.Kind, d.Current), formatValue(money, d.Kind, d.Comparison))
	}
}
