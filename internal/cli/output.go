package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"
)

const (
	tableFormat = "table"
	jsonFormat  = "json"
	yamlFormat  = "yaml"
)

var legalOutputTypes = []string{tableFormat, jsonFormat, yamlFormat}

// OutputOptions selects how a command prints its result.
type OutputOptions struct {
	Output string
}

// DefaultOutputOptions prints tables.
func DefaultOutputOptions() OutputOptions {
	return OutputOptions{Output: tableFormat}
}

// Bind registers the output flag on fs.
func (o *OutputOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

// Validate checks the output format.
func (o *OutputOptions) Validate(_ []string) error {
	for _, f := range legalOutputTypes {
		if o.Output == f {
			return nil
		}
	}
	return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
}

// print writes v as JSON or YAML, or calls table with a tab writer.
func (o *OutputOptions) print(w io.Writer, v any, table func(w io.Writer)) error {
	switch o.Output {
	case jsonFormat:
		marshalled, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Fprintln(w, string(marshalled))
		return nil
	case yamlFormat:
		marshalled, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Fprint(w, string(marshalled))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}
