package subscription

import (
	"strconv"
	"strings"
)

// DefaultInterval is the delivery interval assumed when none is supplied.
const DefaultInterval = "1"

// NormalizeInterval canonicalizes a delivery interval to a positive-integer
// string. Empty, unparsable, and non-positive input all normalize to
// DefaultInterval; valid input is reduced to its canonical decimal form
// ("03" becomes "3").
func NormalizeInterval(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultInterval
	}

	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return DefaultInterval
	}
	return strconv.Itoa(n)
}
