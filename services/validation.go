package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"legalscholer_app_go/services/i18n"
)

// EmailPattern is shared with the pattern attribute of the email inputs.
const EmailPattern = `[^\s@]+@[^\s@]+\.[^\s@]+`

var emailRegexp = regexp.MustCompile(`^` + EmailPattern + `$`)

const (
	MaxNameLength  = 100
	MaxEmailLength = 254
)

// FieldErrors maps a form field name to its translated message.
type FieldErrors map[string]string

// Has reports whether field failed validation.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// LoginForm is the sign in form as posted.
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// SignupForm is the registration form as posted.
type SignupForm struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

// ValidateLogin applies the sign in field rules and returns messages in lang.
// An empty result means the form is valid.
func ValidateLogin(lang string, form LoginForm) FieldErrors {
	errs := FieldErrors{}
	validateEmail(lang, form.Email, errs)

	switch {
	case form.Password == "":
		errs["password"] = required(lang, "auth.password")
	case utf8.RuneCountInString(form.Password) < MinLoginPasswordLength:
		errs["password"] = i18n.Translate(lang, "auth.errors.password_short", map[string]any{"min": MinLoginPasswordLength})
	case utf8.RuneCountInString(form.Password) > MaxPasswordLength:
		errs["password"] = tooLong(lang, "auth.password")
	}
	return errs
}

// ValidateSignup applies the registration field rules and the password policy.
func ValidateSignup(lang string, form SignupForm) FieldErrors {
	errs := FieldErrors{}

	name := strings.TrimSpace(form.Name)
	switch {
	case name == "":
		errs["name"] = required(lang, "auth.name")
	case utf8.RuneCountInString(name) > MaxNameLength:
		errs["name"] = tooLong(lang, "auth.name")
	}

	validateEmail(lang, form.Email, errs)

	if form.Password == "" {
		errs["password"] = required(lang, "auth.password")
	} else if err := ValidatePassword(form.Password); err != nil {
		errs["password"] = i18n.Translate(lang, "auth.errors."+err.Error(), map[string]any{
			"min":   MinPasswordLength,
			"field": i18n.Translate(lang, "auth.password"),
		})
	}

	switch {
	case form.ConfirmPassword == "":
		errs["confirm_password"] = required(lang, "auth.confirm_password")
	case form.ConfirmPassword != form.Password:
		errs["confirm_password"] = i18n.Translate(lang, "auth.errors.password_mismatch")
	}
	return errs
}

func validateEmail(lang, email string, errs FieldErrors) {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		errs["email"] = required(lang, "auth.email")
	case len(email) > MaxEmailLength:
		errs["email"] = tooLong(lang, "auth.email")
	case !emailRegexp.MatchString(email):
		errs["email"] = i18n.Translate(lang, "auth.errors.email_invalid")
	}
}

func required(lang, labelKey string) string {
	return i18n.Translate(lang, "auth.errors.required", map[string]any{"field": i18n.Translate(lang, labelKey)})
}

func tooLong(lang, labelKey string) string {
	return i18n.Translate(lang, "auth.errors.too_long", map[string]any{"field": i18n.Translate(lang, labelKey)})
}
