package util

import (
	"fmt"
	"regexp"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks the rough shape of an email address.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is empty")
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("invalid email: %s", email)
	}
	return nil
}

// IsStrongPassword reports whether a password is 8-32 chars long and mixes
// upper case, lower case and digits.
func IsStrongPassword(pwd string) bool {
	if len(pwd) < 8 || len(pwd) > 32 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, ch := range pwd {
		switch {
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		case ch >= 'a' && ch <= 'z':
			hasLower = true
		case ch >= '0' && ch <= '9':
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// ValidateStockDelta checks a stock adjustment amount: it must be a
// non-zero integer (positive to add stock, negative to subtract).
func ValidateStockDelta(cantidad int) error {
	if cantidad == 0 {
		return fmt.Errorf("cantidad must be a non-zero number")
	}
	return nil
}

// ValidateRol restricts roles to the known set.
func ValidateRol(rol string) error {
	switch rol {
	case "admin", "usuario", "vendedor":
		return nil
	}
	return fmt.Errorf("invalid rol: %s", rol)
}
