package domain

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// plainNumber rejects exponents and anything else decimal would accept.
var plainNumber = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// ParseARS converts peso-formatted text such as "$1.140,50" into 1140.5.
// Dots are thousands separators and the comma is the decimal mark.
func ParseARS(text string) (float64, bool) {
	s := strings.ReplaceAll(text, "$", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.Join(strings.Fields(s), "")
	if !plainNumber.MatchString(s) {
		return 0, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// FormatARS renders v the way the page does, with two decimals: 1140 -> "$1.140,00".
func FormatARS(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(whole[i])
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}
