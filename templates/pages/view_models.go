package pages

import (
	"legalscholer_app_go/models"
	"legalscholer_app_go/templates/components"
	"legalscholer_app_go/templates/partials"
)

// LandingViewModel holds the data for the landing page
type LandingViewModel struct {
	Meta    components.PageMeta
	Session partials.SessionProps
	Firms   []string
}

// PricingViewModel holds the data for the pricing page
type PricingViewModel struct {
	Meta       components.PageMeta
	Plans      []models.Plan
	Guarantees []models.Guarantee
}

// AuthMode selects the login or the signup variant of the auth page.
type AuthMode string

const (
	AuthLogin  AuthMode = "login"
	AuthSignup AuthMode = "signup"
)

// AuthViewModel holds the auth form state between posts
type AuthViewModel struct {
	Meta components.PageMeta
	Mode AuthMode
	// Values echoes submitted fields back, except passwords
	Values map[string]string
	// Errors maps field names to translated messages
	Errors map[string]string
	// Submitted is true once a valid form was posted
	Submitted bool

	MinPasswordLength int
	EmailPattern      string
}

// Action returns the path the form posts to.
func (vm AuthViewModel) Action() string {
	return "/" + string(vm.Mode)
}
