package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"revenue-lab/internal/session"
)

type SetOptions struct {
	GlobalOptions
}

func DefaultSetOptions() *SetOptions {
	return &SetOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdSet() *cobra.Command {
	o := DefaultSetOptions()
	cmd := &cobra.Command{
		Use:   "set INPUT=VALUE...",
		Short: "Set calculator inputs. Values are clamped to the input's range.",
		Long: "Set calculator inputs. Values are clamped to the input's range.\n\nInputs: " +
			strings.Join(session.InputNames(), ", "),
		Example:      "  revlab set arpu=60 footfall=120",
		Args:         cobra.MinimumNArgs(1),
		RunE:         runE(o),
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *SetOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
}

func (o *SetOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *SetOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	_, err := parseAssignments(args, "")
	return err
}

func (o *SetOptions) Run(ctx context.Context, args []string) error {
	assignments, err := parseAssignments(args, "")
	if err != nil {
		return err
	}
	return o.withEnv(ctx, func(env *Env) error {
		return applyAssignments(ctx, o.out, env, assignments)
	})
}

// assignment is one parsed INPUT=VALUE argument.
type assignment struct {
	input session.Input
	value float64
}

// parseAssignments parses INPUT=VALUE arguments. A non-empty prefix is added to
// each input name before it is resolved.
func parseAssignments(args []string, prefix string) ([]assignment, error) {
	out := make([]assignment, 0, len(args))
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("argument %q must have the form INPUT=VALUE", arg)
		}
		in, err := session.ParseInput(prefix + strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", in, err)
		}
		out = append(out, assignment{input: in, value: v})
	}
	return out, nil
}

// applyAssignments sets every input and persists the session.
func applyAssignments(ctx context.Context, w io.Writer, env *Env, assignments []assignment) error {
	for _, a := range assignments {
		if err := env.State.SetInput(a.input, a.value); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s set to %s\n", a.input, strconv.FormatFloat(session.Clamp(a.input, a.value), 'f', -1, 64))
	}
	return env.State.Persist(ctx)
}

type ResetOptions struct {
	GlobalOptions
}

func DefaultResetOptions() *ResetOptions {
	return &ResetOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdReset() *cobra.Command {
	o := DefaultResetOptions()
	cmd := &cobra.Command{
		Use:          "reset",
		Short:        "Restore the default estimator inputs.",
		Args:         cobra.NoArgs,
		RunE:         runE(o),
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ResetOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
}

func (o *ResetOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *ResetOptions) Validate(args []string) error {
	return o.GlobalOptions.Validate(args)
}

func (o *ResetOptions) Run(ctx context.Context, _ []string) error {
	return o.withEnv(ctx, func(env *Env) error {
		env.State.ResetToDefaults()
		if err := env.State.Persist(ctx); err != nil {
			return err
		}
		fmt.Fprintln(o.out, "inputs reset to defaults")
		return nil
	})
}
