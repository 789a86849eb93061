package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type ExportOptions struct {
	GlobalOptions

	JSON bool
	Out  string
}

func DefaultExportOptions() *ExportOptions {
	return &ExportOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdExport() *cobra.Command {
	o := DefaultExportOptions()
	cmd := &cobra.Command{
		Use:          "export",
		Short:        "Export the saved scenarios as YAML (or JSON).",
		Args:         cobra.NoArgs,
		RunE:         runE(o),
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ExportOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.BoolVar(&o.JSON, "json", o.JSON, "Export JSON instead of YAML.")
	fs.StringVar(&o.Out, "out", o.Out, "Write to this file instead of stdout.")
}

func (o *ExportOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *ExportOptions) Validate(args []string) error {
	return o.GlobalOptions.Validate(args)
}

func (o *ExportOptions) Run(ctx context.Context, _ []string) error {
	return o.withEnv(ctx, func(env *Env) error {
		if o.Out == "" {
			return env.Store.Export(o.out, o.JSON)
		}

		f, err := os.Create(o.Out)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		if err := env.Store.Export(f, o.JSON); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	})
}

type ImportOptions struct {
	GlobalOptions

	in io.Reader
}

func DefaultImportOptions() *ImportOptions {
	return &ImportOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdImport() *cobra.Command {
	o := DefaultImportOptions()
	cmd := &cobra.Command{
		Use:          "import FILE",
		Short:        "Add the scenarios of a YAML or JSON export. Use - for stdin.",
		Args:         cobra.ExactArgs(1),
		RunE:         runE(o),
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ImportOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
}

func (o *ImportOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.in = cmd.InOrStdin()
	return nil
}

func (o *ImportOptions) Validate(args []string) error {
	return o.GlobalOptions.Validate(args)
}

func (o *ImportOptions) Run(ctx context.Context, args []string) error {
	var r io.Reader = o.in
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		r = f
	}

	return o.withEnv(ctx, func(env *Env) error {
		added, err := env.Store.Import(ctx, r)
		if err != nil {
			return err
		}
		if len(added) == 0 {
			fmt.Fprintln(o.out, "no scenarios imported")
		}
		for _, sc := range added {
			fmt.Fprintf(o.out, "imported scenario %s (%s)\n", sc.ID, sc.Name)
		}
		return nil
	})
}
