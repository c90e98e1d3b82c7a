package cart

import (
	"errors"
	"strings"
)

var (
	ErrMissingCode = errors.New("discount code is required")
	ErrInvalidCode = errors.New("invalid discount code")
)

// discountCodes maps a promotional code to its percentage off.
var discountCodes = map[string]int{
	"WELCOME10":  10,
	"SAVE20":     20,
	"LUXURY15":   15,
	"DESIGNER25": 25,
}

// Lookup normalizes code to uppercase and resolves it against the fixed
// code table. It returns the canonical code and its percentage.
func Lookup(code string) (string, int, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", 0, ErrMissingCode
	}
	percentage, ok := discountCodes[code]
	if !ok {
		return "", 0, ErrInvalidCode
	}
	return code, percentage, nil
}
