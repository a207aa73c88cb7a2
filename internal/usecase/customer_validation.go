package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/domain/entities"
)

// ValidationError reports the first customer field that failed validation.
// The message is safe to surface to the caller as-is.

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// ValidateCustomer checks the buyer payload rule by rule, short-circuiting on
// the first failure. Order: document, email, phone (when required), name.
func ValidateCustomer(c entities.Customer, phoneRequired bool) error {
	cpf := stripNonDigits(c.Document)
	if len(cpf) != 11 {
		return &ValidationError{Field: "document", Message: "CPF must contain exactly 11 digits"}
	}

	if !emailPattern.MatchString(strings.TrimSpace(c.Email)) {
		return &ValidationError{Field: "email", Message: "email address is not valid"}
	}

	if phoneRequired {
		phone := stripNonDigits(c.Phone)
		if len(phone) != 10 && len(phone) != 11 {
			return &ValidationError{Field: "phone", Message: "phone must contain 10 or 11 digits"}
		}
	}

	name := strings.TrimSpace(c.Name)
	if len([]rune(name)) < 2 || !isLettersAndSpaces(name) {
		return &ValidationError{Field: "name", Message: "name must have at least 2 characters and contain only letters and spaces"}
	}

	return nil
}

func stripNonDigits(s string) string {
	return nonDigitPattern.ReplaceAllString(s, "")
}

func isLettersAndSpaces(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}
