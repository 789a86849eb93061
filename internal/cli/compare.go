package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type CompareOptions struct {
	GlobalOptions
	OutputOptions

	Exit bool
}

func DefaultCompareOptions() *CompareOptions {
	return &CompareOptions{
		GlobalOptions: DefaultGlobalOptions(),
		OutputOptions: DefaultOutputOptions(),
	}
}

func NewCmdCompare() *cobra.Command {
	o := DefaultCompareOptions()
	cmd := &cobra.Command{
		Use:   "compare (ID | --exit)",
		Short: "Compare the current scenario against a saved one, or leave comparison mode.",
		Example: "  revlab compare 3Xk9pQ\n" +
			"  revlab compare --exit",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runE(o),
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *CompareOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.OutputOptions.Bind(fs)

	fs.BoolVar(&o.Exit, "exit", o.Exit, "Leave comparison mode.")
}

func (o *CompareOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *CompareOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if err := o.OutputOptions.Validate(args); err != nil {
		return err
	}
	if o.Exit == (len(args) == 1) {
		return errors.New("pass either a scenario ID or --exit")
	}
	return nil
}

func (o *CompareOptions) Run(ctx context.Context, args []string) error {
	return o.withEnv(ctx, func(env *Env) error {
		if o.Exit {
			env.State.ExitComparison()
			if err := env.State.Persist(ctx); err != nil {
				return err
			}
			fmt.Fprintln(o.out, "left comparison mode")
			return nil
		}

		if _, err := env.State.SelectComparison(args[0]); err != nil {
			return err
		}
		if err := env.State.Persist(ctx); err != nil {
			return err
		}

		view := env.State.View(env.Money)
		env.Metrics.RecordComputation("compare")
		return o.print(o.out, view, func(w io.Writer) {
			printView(w, view, env.Money)
		})
	})
}
