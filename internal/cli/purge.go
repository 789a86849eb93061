package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type PurgeOptions struct {
	GlobalOptions

	all bool
	yes bool
}

func DefaultPurgeOptions() *PurgeOptions {
	return &PurgeOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdPurge() *cobra.Command {
	o := DefaultPurgeOptions()
	cmd := &cobra.Command{
		Use:          "purge --yes",
		Short:        "Remove the saved scenarios and the session from the storage backend.",
		Args:         cobra.NoArgs,
		RunE:         runE(o),
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *PurgeOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	fs.BoolVar(&o.all, "all", o.all, "Remove every key in the backend, not only the configured scenarios and session keys.")
	fs.BoolVar(&o.yes, "yes", o.yes, "Confirm removal.")
}

func (o *PurgeOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *PurgeOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if !o.yes {
		return errors.New("purge removes stored data, pass --yes to confirm")
	}
	return nil
}

func (o *PurgeOptions) Run(ctx context.Context, _ []string) error {
	return o.withEnv(ctx, func(env *Env) error {
		keys, err := env.KV.Keys(ctx)
		if err != nil {
			return fmt.Errorf("list storage keys: %w", err)
		}

		owned := []string{env.Config.Storage.ScenariosKey, env.Config.Storage.SessionKey}
		removed := 0
		for _, key := range keys {
			if !o.all && !slices.Contains(owned, key) {
				continue
			}
			if err := env.KV.Delete(ctx, key); err != nil {
				return fmt.Errorf("delete key %s: %w", key, err)
			}
			env.Logger.Debug("purged key", zap.String("key", key))
			fmt.Fprintf(o.out, "deleted key %s\n", key)
			removed++
		}
		if removed == 0 {
			fmt.Fprintln(o.out, "nothing to purge")
		}
		return nil
	})
}
