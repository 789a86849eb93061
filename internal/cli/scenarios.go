package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"revenue-lab/internal/domain"
	"revenue-lab/internal/metrics"
	"revenue-lab/internal/session"
)

type SaveOptions struct {
	GlobalOptions
}

func DefaultSaveOptions() *SaveOptions {
	return &SaveOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdSave() *cobra.Command {
	o := DefaultSaveOptions()
	cmd := &cobra.Command{
		Use:          "save NAME",
		Short:        "Save a copy of the current scenario under NAME.",
		Args:         cobra.MinimumNArgs(1),
		RunE:         runE(o),
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *SaveOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
}

func (o *SaveOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *SaveOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if strings.TrimSpace(strings.Join(args, " ")) == "" {
		return errors.New("scenario name must not be blank")
	}
	return nil
}

func (o *SaveOptions) Run(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	return o.withEnv(ctx, func(env *Env) error {
		saved, ok, err := env.State.SaveCurrent(ctx, name)
		if err != nil {
			return fmt.Errorf("save scenario %q: %w", name, err)
		}
		if !ok {
			return errors.New("scenario name must not be blank")
		}
		fmt.Fprintf(o.out, "saved scenario %s (%s)\n", saved.ID, saved.Name)
		return nil
	})
}

type ListOptions struct {
	GlobalOptions
	OutputOptions
}

func DefaultListOptions() *ListOptions {
	return &ListOptions{
		GlobalOptions: DefaultGlobalOptions(),
		OutputOptions: DefaultOutputOptions(),
	}
}

func NewCmdList() *cobra.Command {
	o := DefaultListOptions()
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List saved scenarios.",
		Args:         cobra.NoArgs,
		RunE:         runE(o),
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ListOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.OutputOptions.Bind(fs)
}

func (o *ListOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *ListOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return o.OutputOptions.Validate(args)
}

func (o *ListOptions) Run(ctx context.Context, _ []string) error {
	return o.withEnv(ctx, func(env *Env) error {
		scenarios := env.Store.List()
		if scenarios == nil {
			scenarios = []domain.Scenario{}
		}
		comparisonID := ""
		if other, ok := env.State.Comparison(); ok {
			comparisonID = other.ID
		}
		return o.print(o.out, scenarios, func(w io.Writer) {
			printScenarios(w, scenarios, comparisonID, env)
		})
	})
}

func printScenarios(w io.Writer, scenarios []domain.Scenario, comparisonID string, env *Env) {
	if len(scenarios) == 0 {
		fmt.Fprintln(w, "No saved scenarios.")
		return
	}
	fmt.Fprintln(w, "ID\tNAME\tCREATED\tDAILY REVENUE\tCOMPARING")
	for _, sc := range scenarios {
		comparing := ""
		if sc.ID == comparisonID {
			comparing = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			sc.ID,
			sc.Name,
			sc.CreatedAt.Local().Format(time.DateTime),
			env.Money.Format(metrics.ComputeMetrics(sc).DailyRevenue),
			comparing)
	}
}

type LoadOptions struct {
	GlobalOptions
}

func DefaultLoadOptions() *LoadOptions {
	return &LoadOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdLoad() *cobra.Command {
	o := DefaultLoadOptions()
	cmd := &cobra.Command{
		Use:          "load ID",
		Short:        "Copy a saved scenario's name and inputs into the current scenario.",
		Args:         cobra.ExactArgs(1),
		RunE:         runE(o),
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *LoadOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
}

func (o *LoadOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *LoadOptions) Validate(args []string) error {
	return o.GlobalOptions.Validate(args)
}

func (o *LoadOptions) Run(ctx context.Context, args []string) error {
	return o.withEnv(ctx, func(env *Env) error {
		loaded, err := env.State.LoadIntoCurrent(args[0])
		if err != nil {
			return err
		}
		if err := env.State.Persist(ctx); err != nil {
			return err
		}
		fmt.Fprintf(o.out, "loaded %q into the current scenario\n", loaded.Name)
		return nil
	})
}

type DeleteOptions struct {
	GlobalOptions
}

func DefaultDeleteOptions() *DeleteOptions {
	return &DeleteOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdDelete() *cobra.Command {
	o := DefaultDeleteOptions()
	cmd := &cobra.Command{
		Use:          "delete ID",
		Short:        "Delete a saved scenario.",
		Args:         cobra.ExactArgs(1),
		RunE:         runE(o),
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *DeleteOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
}

func (o *DeleteOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *DeleteOptions) Validate(args []string) error {
	return o.GlobalOptions.Validate(args)
}

func (o *DeleteOptions) Run(ctx context.Context, args []string) error {
	id := args[0]
	return o.withEnv(ctx, func(env *Env) error {
		removed, err := env.State.DeleteScenario(ctx, id)
		if err != nil {
			return fmt.Errorf("delete scenario %s: %w", id, err)
		}
		if !removed {
			return fmt.Errorf("delete %s: %w", id, session.ErrScenarioNotFound)
		}
		if err := env.State.Persist(ctx); err != nil {
			return err
		}
		fmt.Fprintf(o.out, "deleted scenario %s\n", id)
		return nil
	})
}
