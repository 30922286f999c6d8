package event

import "fmt"

// inferYear assigns a concrete year to a month/day pair that carries no year
// in the source text. A newsletter issued in December routinely announces
// January-to-March dates of the following year, and one issued in November
// can already mention January.
func inferYear(month, refYear, refMonth int) int {
	if refMonth == 12 && month <= 3 {
		return refYear + 1
	}
	if refMonth == 11 && month == 1 {
		return refYear + 1
	}
	return refYear
}

// toDateString renders an ISO YYYY-MM-DD date. Zero padding keeps
// lexicographic order equal to chronological order.
func toDateString(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
