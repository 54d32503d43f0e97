package models

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses a user-entered money amount. Both "12.50" and "12,50"
// are accepted; the result is canonicalized to cents precision. Negative
// amounts and garbage are rejected with a ValidationError on the given field.
func ParseAmount(field, input string) (float64, error) {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: "must be a decimal amount"}
	}
	if v < 0 {
		return 0, &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return math.Round(v*100) / 100, nil
}
