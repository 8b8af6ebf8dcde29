package commitment

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary value with a currency tag. Amounts are never
// converted between currencies; the tag only drives display.
type Amount struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency,omitempty"`
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
	"KRW": "₩",
}

// String renders per-currency. An empty currency code falls back to a bare
// numeric string.
func (a Amount) String() string {
	value := strconv.FormatFloat(a.Value, 'f', 2, 64)
	code := strings.ToUpper(strings.TrimSpace(a.Currency))
	if code == "" {
		return value
	}
	if symbol, ok := currencySymbols[code]; ok {
		return symbol + value
	}
	return fmt.Sprintf("%s %s", value, code)
}

// ParseAmount reads "12.99" or "12.99 USD". Malformed numeric input is
// treated as no amount, not an error.
func ParseAmount(raw string) *Amount {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) == 0 {
		return nil
	}
	value, err := strconv.ParseFloat(strings.TrimPrefix(fields[0], "$"), 64)
	if err != nil {
		return nil
	}
	a := &Amount{Value: value}
	if len(fields) > 1 {
		a.Currency = strings.ToUpper(fields[1])
	}
	return a
}

// Equal compares value and currency. Two nil amounts are equal.
func (a *Amount) Equal(b *Amount) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Value == b.Value && strings.EqualFold(a.Currency, b.Currency)
}

// DisplayAmount renders a possibly-absent amount for ledger strings.
func DisplayAmount(a *Amount) string {
	if a == nil {
		return "none"
	}
	return a.String()
}
