package order

import (
	"math"
	"strings"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidDescription(description string) bool {
	return strings.TrimSpace(description) != ""
}

// isValidAmount допускает ноль, но не отрицательные значения, NaN и бесконечность.
func isValidAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount >= 0
}
