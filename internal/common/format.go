package common

import (
	"fmt"
	"strings"
)

// FormatMoney formats a value as currency with thousands separators,
// e.g. 12345.6 -> "$12,345.60".
func FormatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var sb strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}

	out := "$" + sb.String() + "." + parts[1]
	if neg {
		return "-" + out
	}
	return out
}

// FormatPct formats a percentage with one decimal, e.g. 42.25 -> "42.2%".
func FormatPct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatSignedPct formats a percentage with an explicit sign,
// e.g. 3.5 -> "+3.5%", -2.1 -> "-2.1%".
func FormatSignedPct(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}
