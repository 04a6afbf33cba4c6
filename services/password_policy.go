package services

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// Password requirements
const (
	MinPasswordLength      = 12
	MinLoginPasswordLength = 8
	MaxPasswordLength      = 128
)

// Password policy violations. Each maps to an auth.errors.* catalog key.
var (
	ErrPasswordTooShort  = errors.New("password_short")
	ErrPasswordTooLong   = errors.New("too_long")
	ErrPasswordNoUpper   = errors.New("password_upper")
	ErrPasswordNoLower   = errors.New("password_lower")
	ErrPasswordNoNumber  = errors.New("password_number")
	ErrPasswordNoSpecial = errors.New("password_special")
)

// ValidatePassword checks the sign up complexity requirements
// - At least 12 characters
// - At least one uppercase letter
// - At least one lowercase letter
// - At least one number
// - At least one special character
func ValidatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if n > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return ErrPasswordNoUpper
	}
	if !hasLower {
		return ErrPasswordNoLower
	}
	if !hasNumber {
		return ErrPasswordNoNumber
	}
	if !hasSpecial {
		return ErrPasswordNoSpecial
	}

	return nil
}

// IsWeakPassword is a helper to check if a password is weak without returning specific error
func IsWeakPassword(password string) bool {
	return ValidatePassword(password) != nil
}
