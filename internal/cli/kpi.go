package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"revenue-lab/internal/compare"
	"revenue-lab/internal/domain"
	"revenue-lab/internal/metrics"
)

const kpiInputPrefix = "kpi."

type KPIOptions struct {
	GlobalOptions
	OutputOptions
}

type kpi struct {
	Inputs domain.KPIInputs `json:"inputs"`
	Result domain.KPIResult `json:"result"`
}

func DefaultKPIOptions() *KPIOptions {
	return &KPIOptions{
		GlobalOptions: DefaultGlobalOptions(),
		OutputOptions: DefaultOutputOptions(),
	}
}

func NewCmdKPI() *cobra.Command {
	o := DefaultKPIOptions()
	cmd := &cobra.Command{
		Use:   "kpi [INPUT=VALUE...]",
		Short: "Run the KPI revenue calculator, optionally updating its inputs.",
		Long: "Run the KPI revenue calculator, optionally updating its inputs.\n\n" +
			"Inputs: arpu, footfall, totalCapacity. Footfall never exceeds total capacity.",
		Example:      "  revlab kpi arpu=750000 footfall=9",
		RunE:         runE(o),
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *KPIOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.OutputOptions.Bind(fs)
}

func (o *KPIOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *KPIOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if err := o.OutputOptions.Validate(args); err != nil {
		return err
	}
	_, err := parseAssignments(trimKPIPrefix(args), kpiInputPrefix)
	return err
}

func (o *KPIOptions) Run(ctx context.Context, args []string) error {
	assignments, err := parseAssignments(trimKPIPrefix(args), kpiInputPrefix)
	if err != nil {
		return err
	}
	return o.withEnv(ctx, func(env *Env) error {
		if len(assignments) > 0 {
			if err := applyAssignments(ctx, io.Discard, env, assignments); err != nil {
				return err
			}
		}

		in := env.State.KPIInputs()
		out := kpi{Inputs: in, Result: metrics.ComputeKPI(in)}
		env.Metrics.RecordComputation("kpi")

		return o.print(o.out, out, func(w io.Writer) {
			printKPI(w, out, env.KPIMoney)
		})
	})
}

// trimKPIPrefix accepts both "arpu=1" and "kpi.arpu=1".
func trimKPIPrefix(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = strings.TrimPrefix(arg, kpiInputPrefix)
	}
	return out
}

func printKPI(w io.Writer, k kpi, money *compare.CurrencyFormatter) {
	fmt.Fprintf(w, "ARPU:\t%s\n", money.Format(k.Inputs.ARPU))
	fmt.Fprintf(w, "FOOTFALL:\t%d\n", k.Inputs.Footfall)
	fmt.Fprintf(w, "TOTAL CAPACITY:\t%d\n", k.Inputs.TotalCapacity)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PERIOD\tREVENUE")
	fmt.Fprintf(w, "Daily\t%s\n", money.Format(k.Result.DailyRevenue))
	fmt.Fprintf(w, "Monthly\t%s\n", money.Format(k.Result.MonthlyRevenue))
	fmt.Fprintf(w, "Annual\t%s\n", money.Format(k.Result.AnnualRevenue))
}
