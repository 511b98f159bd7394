package reports

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const currencySymbol = "$"

var amountPrinter = message.NewPrinter(language.English)

// FormatCurrency renders a monetary amount with a leading dollar sign,
// thousands separators and two decimals, e.g. $1,400,000.00. Rounding is
// done on the binary value, so 1234.565 gives $1,234.56 as %.2f would.
func FormatCurrency(v float64) string {
	switch {
	case math.IsNaN(v):
		return currencySymbol + "nan"
	case math.IsInf(v, 1):
		return currencySymbol + "inf"
	case math.IsInf(v, -1):
		return currencySymbol + "-inf"
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return currencySymbol + strconv.FormatFloat(v, 'f', 2, 64)
	}
	return currencySymbol + amountPrinter.Sprint(number.Decimal(rounded, number.Scale(2)))
}

// FormatPercent renders a value already expressed in percent with one
// decimal, e.g. 87.5%.
func FormatPercent(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.1f%%", v)
}

// FormatROSI renders a ROSI fraction as a percentage, or "inf" for the
// unbounded sentinel.
func FormatROSI(rosi float64) string {
	if math.IsInf(rosi, 1) {
		return "inf"
	}
	return FormatPercent(rosi * 100)
}

// FormatRate renders an annual rate of occurrence as its shortest decimal.
func FormatRate(aro float64) string {
	return strconv.FormatFloat(aro, 'f', -1, 64)
}

// FormatTimestamp renders t in UTC to the minute.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04 UTC")
}
