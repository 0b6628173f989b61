package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

const maxUsernameLength = 50

// ValidateCredentials checks a username and password pair and returns
// every problem found. An empty password passes when optional is set.
func ValidateCredentials(username, password string, optional bool) []domain.FieldError {
	var errs []domain.FieldError

	u := strings.TrimSpace(username)
	switch {
	case u == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case utf8.RuneCountInString(u) > maxUsernameLength:
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 50 characters"})
	case strings.ContainsAny(u, " \t\r\n"):
		errs = append(errs, domain.FieldError{Field: "username", Message: "must not contain whitespace"})
	}

	switch {
	case password == "" && optional:
	case password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case utf8.RuneCountInString(password) < MinPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	case len(password) > MaxPasswordBytes:
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 bytes"})
	}

	return errs
}
