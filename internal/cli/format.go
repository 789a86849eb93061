package cli

import (
	"fmt"
	"io"

	"revenue-lab/internal/compare"
)

// formatValue renders a delta value by kind.
func formatValue(money *compare.CurrencyFormatter, kind compare.Kind, v float64) string {
	switch kind {
	case compare.KindCurrency:
		return money.Format(v)
	case compare.KindPercent:
		return compare.Fixed(v, 1) + "%"
	case compare.KindInteger:
		return compare.Fixed(v, 0)
	default:
		return compare.Fixed(v, 1)
	}
}

// printSingle prints one column of values.
func printSingle(w io.Writer, header string, rows []compare.FieldDelta, money *compare.CurrencyFormatter) {
	fmt.Fprintf(w, "%s\tVALUE\n", header)
	for _, d := range rows {
		fmt.Fprintf(w, "%s\t%s\n", d.Label, formatValue(money, d.Kind, d.Current))
	}
}

// printDeltas prints current and comparison values side by side.
func printDeltas(w io.Writer, header, comparison string, rows []compare.FieldDelta, money *compare.CurrencyFormatter) {
	fmt.Fprintf(w, "%s\tCURRENT\t%s\tDIFFERENCE\n", header, comparison)
	for _, d := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			d.Label,
			formatValue(money, d.Kind, d.Current),
			formatValue(money, d.Kind, d.Comparison),
			d.Difference)
	}
}
