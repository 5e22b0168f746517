package customer

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	return strings.TrimSpace(phone) != ""
}

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}
