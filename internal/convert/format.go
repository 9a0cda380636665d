package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"currencybot/internal/rates"
)

// Result is one converted value tagged with its target code.
type Result struct {
	Code  string
	Value float64
}

// FormatReply renders the reply for a converted query. Crypto values keep
// five decimal places, fiat values two; the trailing comma is stripped.
func FormatReply(amount float64, source string, results []Result) string {
	var b strings.Builder
	b.WriteString(FormatAmount(amount))
	b.WriteByte(' ')
	b.WriteString(source)
	b.WriteString(" is")

	for _, r := range results {
		if r.Code == rates.CryptoAsset {
			fmt.Fprintf(&b, " %.5f %s,", r.Value, r.Code)
		} else {
			fmt.Fprintf(&b, " %.2f %s,", r.Value, r.Code)
		}
	}

	return strings.TrimSuffix(b.String(), ",")
}

// FormatAmount prints the amount without rounding. Whole amounts keep one
// decimal place, so "100" reads back as "100.0".
func FormatAmount(amount float64) string {
	if amount == math.Trunc(amount) && math.Abs(amount) < 1e15 {
		return strconv.FormatFloat(amount, 'f', 1, 64)
	}
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
