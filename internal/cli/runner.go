package cli

import (
	"context"

	"github.com/spf13/cobra"
)

type options interface {
	Complete(cmd *cobra.Command, args []string) error
	Validate(args []string) error
	Run(ctx context.Context, args []string) error
}

func runE(o options) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := o.Complete(cmd, args); err != nil {
			return err
		}
		if err := o.Validate(args); err != nil {
			return err
		}
		return o.Run(cmd.Context(), args)
	}
}

// withEnv opens the environment, calls fn and closes it.
func (o *GlobalOptions) withEnv(ctx context.Context, fn func(env *Env) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	env, err := o.Open(ctx)
	if err != nil {
		return err
	}
	defer env.Close()
	return fn(env)
}
