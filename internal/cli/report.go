package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"revenue-lab/internal/reporting"
)

const (
	reportMarkdown = "md"
	reportCSV      = "csv"
	reportHTML     = "html"
	reportXLSX     = "xlsx"
)

var legalReportFormats = []string{reportMarkdown, reportCSV, reportHTML, reportXLSX}

type ReportOptions struct {
	GlobalOptions

	Format string
	Out    string
}

func DefaultReportOptions() *ReportOptions {
	return &ReportOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Format:        reportMarkdown,
	}
}

func NewCmdReport() *cobra.Command {
	o := DefaultReportOptions()
	cmd := &cobra.Command{
		Use:          "report",
		Short:        "Render every calculator and the saved scenarios as a report.",
		Example:      "  revlab report --format xlsx --out revenue.xlsx",
		Args:         cobra.NoArgs,
		RunE:         runE(o),
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ReportOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Format, "format", "f", o.Format, fmt.Sprintf("Report format. One of: (%s).", strings.Join(legalReportFormats, ", ")))
	fs.StringVar(&o.Out, "out", o.Out, "Write the report to this file instead of stdout.")
}

func (o *ReportOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *ReportOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	switch o.Format {
	case reportMarkdown, reportCSV, reportHTML:
	case reportXLSX:
		if o.Out == "" {
			return errors.New("xlsx reports need --out")
		}
	default:
		return fmt.Errorf("report format must be one of %s", strings.Join(legalReportFormats, ", "))
	}
	return nil
}

func (o *ReportOptions) Run(ctx context.Context, _ []string) error {
	return o.withEnv(ctx, func(env *Env) error {
		r := reporting.NewGenerator(env.State, env.Money, env.KPIMoney).Generate()

		data, err := render(r, o.Format)
		if err != nil {
			return err
		}
		env.Metrics.RecordReport(o.Format)

		if o.Out == "" {
			_, err := o.out.Write(data)
			return err
		}
		if err := os.WriteFile(o.Out, data, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(o.out, "report written to %s\n", o.Out)
		return nil
	})
}

func render(r *reporting.Report, format string) ([]byte, error) {
	switch format {
	case reportCSV:
		s, err := reporting.RenderCSV(r)
		return []byte(s), err
	case reportHTML:
		return reporting.RenderHTML(r)
	case reportXLSX:
		return reporting.RenderXLSX(r)
	default:
		return []byte(reporting.RenderMarkdown(r)), nil
	}
}
