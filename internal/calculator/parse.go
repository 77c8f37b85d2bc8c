package calculator

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "arith/internal/errors"
)

// ParseOperand converts text to a finite float64.
func ParseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, apperrors.InvalidOperand("", fmt.Sprintf("%q is not a number", s))
	}
	if err := checkOperand("", fmt.Sprintf("%q", s), v); err != nil {
		return 0, err
	}
	return v, nil
}

// FormatOperand renders v with precision digits after the decimal point.
// A negative precision uses the shortest representation that round-trips.
func FormatOperand(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
