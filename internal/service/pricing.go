package service

import (
	"strconv"
	"strings"
)

// priceFallback is shown when no asking price is stored.
const priceFallback = "Price on request"

// FormatSalePrice renders a sale price as a display string, e.g.
// "€1,250,000". Sale prices are always in euros.
func FormatSalePrice(price *float64) string {
	if price == nil || *price == 0 {
		return priceFallback
	}
	return "€" + groupThousands(int64(*price))
}

// FormatRentalPrice renders a weekly rental price, e.g. "£1,200 (for 7
// nights)". The 7-night duration is a fixed assumption of the rental feed,
// not something derived from data.
func FormatRentalPrice(price *float64, currency string) string {
	if price == nil || *price == 0 {
		return priceFallback
	}
	return currencySymbol(currency) + groupThousands(int64(*price)) + " (for 7 nights)"
}

func currencySymbol(currency string) string {
	switch strings.ToUpper(currency) {
	case "GBP":
		return "£"
	case "EUR", "":
		return "€"
	default:
		return "$"
	}
}

// groupThousands renders n with comma separators ("1234567" -> "1,234,567").
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
