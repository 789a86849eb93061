// Package compare formats differences between a current scenario and a
// comparison scenario for side-by-side display.
package compare

import (
	"math"
	"math/big"
	"strings"
)

// PercentDifference returns ((other-base)/base)*100 with one decimal and a "%"
// suffix. Positive values carry a "+" prefix. A zero base yields "+Infinity%",
// "-Infinity%" or "NaN%", shown as-is.
func PercentDifference(base, other float64) string {
	diff := ((other - base) / base) * 100
	if diff > 0 {
		return "+" + Fixed(diff, 1) + "%"
	}
	return Fixed(diff, 1) + "%"
}

// Fixed renders v with exactly digits decimals. Ties on the exact binary value
// round away from zero, so 0.25 becomes "0.3" while 0.35 (stored just below
// 0.35) becomes "0.3". Non-finite values render as "Infinity", "-Infinity", "NaN".
func Fixed(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if digits < 0 {
		digits = 0
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	scaled := new(big.Float).SetPrec(2048).SetFloat64(v)
	scaled.Mul(scaled, new(big.Float).SetInt(scale))

	n, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(2048).Sub(scaled, new(big.Float).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	q, r := new(big.Int).QuoRem(n, scale, new(big.Int))
	if digits == 0 {
		return sign + q.String()
	}

	fraction := r.String()
	return sign + q.String() + "." + strings.Repeat("0", digits-len(fraction)) + fraction
}
