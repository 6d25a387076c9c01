package utils

import (
	"regexp"
	"strings"

	"auth-service/pkg/xerrors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// ValidatePassword enforces the stored-password minimum length.
func ValidatePassword(password string) error {
	if password == "" {
		return xerrors.ErrPasswordRequired
	}
	if len(password) < 8 {
		return xerrors.ErrPasswordTooShort
	}
	return nil
}
