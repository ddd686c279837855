package query

import "strconv"

// Ordinal renders n with its English ordinal suffix. Numbers whose tens
// digit is 1 always take "th"; otherwise the suffix follows the last digit.
func Ordinal(n int) string {
	suffix := "th"
	if n%100/10 != 1 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
