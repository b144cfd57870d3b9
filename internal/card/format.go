package card

import (
	"bytes"
	"encoding/xml"
	"strconv"
)

// formatNumber shortens big values: 1234 -> "1.2k", 2500000 -> "2.5M".
// Halves are rounded up.
func formatNumber(n int) string {
	switch {
	case n >= 1000000:
		return formatTenths((n+50000)/100000) + "M"
	case n >= 1000:
		return formatTenths((n+50)/100) + "k"
	default:
		return strconv.Itoa(n)
	}
}

func formatTenths(tenths int) string {
	return strconv.Itoa(tenths/10) + "." + strconv.Itoa(tenths%10)
}

// formatPercentage formats percentage with exactly one decimal.
func formatPercentage(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

// escape makes untrusted text safe to put into svg text nodes and attributes.
func escape(s string) string {
	var buf bytes.Buffer
	// Writing to bytes.Buffer never fails.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
