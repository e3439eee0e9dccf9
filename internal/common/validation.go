package common

import (
	"regexp"
	"strings"
	"time"

	"profnet/pkg/errors"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	handleRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

func ValidateHandle(handle string) error {
	handle = strings.TrimSpace(handle)
	if len(handle) < 3 || len(handle) > 50 {
		return errors.InvalidArg("handle must be between 3 and 50 characters")
	}

	if !handleRegex.MatchString(handle) {
		return errors.InvalidArg("handle can only contain letters, numbers, and underscores")
	}

	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.InvalidArg("password must be at least 6 characters long")
	}

	if len(password) > 100 {
		return errors.InvalidArg("password is too long")
	}

	return nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return errors.InvalidArg("invalid email format")
	}

	return nil
}

// ParseBirthdate accepts the menu client's YYYY-MM-DD date strings.
func ParseBirthdate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, errors.InvalidArg("birthdate must be in YYYY-MM-DD format")
	}
	return &t, nil
}

// ParseDate parses an optional YYYY-MM-DD date string.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, errors.InvalidArg("date must be in YYYY-MM-DD format")
	}
	return &t, nil
}
