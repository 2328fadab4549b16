package model

import (
	"errors"
	"strconv"
)

// DefaultQuantity is used when the entered quantity is not a number.
const DefaultQuantity = 1

// ErrInvalidQuantity reports quantity text that is not a non-negative integer.
var ErrInvalidQuantity = errors.New("invalid quantity")

// Item is one entry on the shopping list.
// Only Purchased changes after creation.
type Item struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Purchased bool   `json:"isPurchased"`
}

// ParseQuantity parses a base-10 non-negative 32-bit integer. An optional
// leading '+' is allowed; surrounding whitespace is not.
func ParseQuantity(text string) (int, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil || n < 0 {
		return 0, ErrInvalidQuantity
	}
	return int(n), nil
}

// QuantityOrDefault is ParseQuantity falling back to DefaultQuantity.
func QuantityOrDefault(text string) int {
	n, err := ParseQuantity(text)
	if err != nil {
		return DefaultQuantity
	}
	return n
}
