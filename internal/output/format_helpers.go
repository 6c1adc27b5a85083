package output

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// CompactNumber abbreviates large figures: 1500 -> "1.5K", 2000000 -> "2M".
// Values are rounded half away from zero to one decimal and a trailing ".0" is dropped.
// Below one thousand the value is rendered by CommaNumber.
func CompactNumber(n decimal.Decimal) string {
	abs := n.Abs()
	switch {
	case abs.GreaterThanOrEqual(million):
		return compactWithSuffix(n.Div(million), "M")
	case abs.GreaterThanOrEqual(thousand):
		return compactWithSuffix(n.Div(thousand), "K")
	default:
		return CommaNumber(n)
	}
}

func compactWithSuffix(scaled decimal.Decimal, suffix string) string {
	return strings.TrimSuffix(scaled.StringFixed(1), ".0") + suffix
}

// CompactInt is CompactNumber for counts.
func CompactInt(n int64) string { return CompactNumber(decimal.NewFromInt(n)) }

// CommaNumber renders n with thousands separators and at most three fraction digits.
// Digits are taken from the decimal itself, so values past int64 or float64 precision stay exact.
func CommaNumber(n decimal.Decimal) string {
	rounded := n.Round(3)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	out := sign + humanize.BigComma(rounded.Truncate(0).BigInt())
	if _, frac, ok := strings.Cut(rounded.String(), "."); ok {
		out += "." + frac
	}
	return out
}

// CommaInt is CommaNumber for counts.
func CommaInt(n int64) string { return humanize.Comma(n) }

// SOLAmount formats a SOL amount: "1,234.5 SOL".
func SOLAmount(n decimal.Decimal) string { return CommaNumber(n) + " SOL" }

// AgoraAmount formats an AGORA token amount: "2,400,000 AGORA".
func AgoraAmount(n decimal.Decimal) string { return CommaNumber(n) + " AGORA" }

// FormatPercentage renders a decimal percent without rounding: "10%", "5.5%".
func FormatPercentage(amount decimal.Decimal) string { return amount.String() + "%" }

// FormatWholePercent renders an integer percent.
func FormatWholePercent(pct int) string { return strconv.Itoa(pct) + "%" }

// FormatBps renders basis points as a percent with two decimals: 5001 -> "50.01%".
func FormatBps(bps int64) string { return decimal.New(bps, -2).StringFixed(2) + "%" }
