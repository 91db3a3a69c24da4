package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidCount  = errors.New("invalid participant count")
)

// ParseAmount parses user-entered money text. Both "12.50" and "12,50" are
// accepted. Empty, non-numeric and non-finite input is rejected.
func ParseAmount(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	return v, nil
}

// ParseCount parses a participant count. Negative counts are rejected; zero
// is accepted here and rejected by CreateEvenSplit.
func ParseCount(text string) (int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidCount)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, text)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	return n, nil
}
