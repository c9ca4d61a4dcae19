package filters

import (
	"strconv"
	"strings"
)

// matchesPriceRange tests a product price against one selected range label.
// Labels come from the Registry in two grammars:
//
//	"INR 501 - INR 1000"  -> inclusive bounds on both ends
//	"INR 2000+"           -> at least this value, unbounded above
//
// A product with no price never matches any range. Unparseable labels match
// nothing rather than everything.
func matchesPriceRange(price float64, label string) bool {
	if price <= 0 {
		return false
	}

	cleaned := stripCurrency(label)
	if cleaned == "" {
		return false
	}

	if strings.HasSuffix(cleaned, "+") {
		min, err := strconv.ParseFloat(strings.TrimSuffix(cleaned, "+"), 64)
		if err != nil {
			return false
		}
		return price >= min
	}

	parts := strings.Split(cleaned, "-")
	if len(parts) != 2 {
		return false
	}
	min, errMin := strconv.ParseFloat(parts[0], 64)
	max, errMax := strconv.ParseFloat(parts[1], 64)
	if errMin != nil || errMax != nil {
		return false
	}
	return price >= min && price <= max
}

// stripCurrency drops the currency marker and all whitespace so both range
// grammars reduce to "501-1000" / "2000+".
func stripCurrency(label string) string {
	s := strings.ToUpper(label)
	s = strings.ReplaceAll(s, "INR", "")
	s = strings.ReplaceAll(s, "RS.", "")
	s = strings.ReplaceAll(s, "RS", "")
	s = strings.ReplaceAll(s, "₹", "")
	return strings.Join(strings.Fields(s), "")
}
