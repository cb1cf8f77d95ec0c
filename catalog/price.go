package catalog

import (
	"regexp"
	"strconv"
)

var (
	nonDigits     = regexp.MustCompile(`[^0-9]`)
	leadingAmount = regexp.MustCompile(`\$(\d+)`)
)

// PriceValue derives the integer dollar amount used by price filtering and
// sorting: every non-digit rune is stripped and the remaining digits parsed
// as one number. "$2125+GST" => 2125. Returns 0 when no digits remain.
// A price string with several digit runs would collapse into one number
// here; the catalog has never contained one, and the loose parse is kept
// as-is rather than guessing at stricter rules.
func PriceValue(price string) int {
	digits := nonDigits.ReplaceAllString(price, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// LeadingDollarAmount extracts the first run of digits following a dollar
// sign, which is what checkout line totals use. Returns 0 when the price
// string carries no "$<digits>" at all.
func LeadingDollarAmount(price string) int {
	m := leadingAmount.FindStringSubmatch(price)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
