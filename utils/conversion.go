package utils

import (
	"strconv"
	"strings"
)

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatAmount renders an amount held in minor units the way the dashboard shows it,
// e.g. 12990000 INR -> "₹1,29,900". Fractions are dropped when they are zero.
// INR uses lakh grouping (last three digits, then pairs).
func FormatAmount(minor int64, currencyCode string) string {
	code := strings.ToUpper(currencyCode)
	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code + " "
	}

	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	whole, frac := minor/100, minor%100

	var grouped string
	if code == "INR" {
		grouped = groupIndian(strconv.FormatInt(whole, 10))
	} else {
		grouped = groupThousands(strconv.FormatInt(whole, 10))
	}

	out := sign + symbol + grouped
	if frac != 0 {
		out += "." + leftPad2(frac)
	}
	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	rest, last := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(rest) > 2 {
		parts = append([]string{rest[len(rest)-2:]}, parts...)
		rest = rest[:len(rest)-2]
	}
	if rest != "" {
		parts = append([]string{rest}, parts...)
	}
	return strings.Join(append(parts, last), ",")
}

func leftPad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
