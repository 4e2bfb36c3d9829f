package service

import (
	"fmt"
	"strings"
)

const (
	// ContactLength is the exact length of a contact number.
	ContactLength = 12
	// CallingCode is the prefix every contact number starts with.
	CallingCode = "63"
)

// ValidateContact checks contact against the calling-code format: exactly
// 12 ASCII digits beginning with "63". Errors wrap ErrInvalidInput.
func ValidateContact(contact string) error {
	if len(contact) != ContactLength {
		return fmt.Errorf("%w: contact must be %d digits, got %d characters", ErrInvalidInput, ContactLength, len(contact))
	}
	for i := 0; i < len(contact); i++ {
		if !IsDigit(rune(contact[i])) {
			return fmt.Errorf("%w: contact must contain only digits", ErrInvalidInput)
		}
	}
	if !strings.HasPrefix(contact, CallingCode) {
		return fmt.Errorf("%w: contact must start with %s", ErrInvalidInput, CallingCode)
	}
	return nil
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
