package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// ParsePrice parses a decimal-string amount exactly. Prices stay strings at
// rest and on the wire; arithmetic and comparison go through big.Rat so
// "60000" and "60000.00" are the same amount.
func ParsePrice(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, fmt.Errorf("non-numeric amount %q", s)
	}
	return r, nil
}

// ValidPrice reports whether s parses as a non-negative decimal amount.
func ValidPrice(s string) bool {
	r, err := ParsePrice(s)
	return err == nil && r.Sign() >= 0
}
