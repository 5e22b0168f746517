package design

import (
	"math"
	"strings"
)

func isValidText(value string) bool {
	return strings.TrimSpace(value) != ""
}

func isValidPrice(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price >= 0
}
