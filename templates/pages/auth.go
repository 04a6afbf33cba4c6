package pages

import (
	"context"
	"strconv"

	"legalscholer_app_go/middleware"
	"legalscholer_app_go/services/i18n"
	"legalscholer_app_go/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type authField struct {
	name         string
	labelKey     string
	inputType    string
	autoComplete string
}

var authFields = map[AuthMode][]authField{
	AuthLogin: {
		{"email", "auth.email", "email", "email"},
		{"password", "auth.password", "password", "current-password"},
	},
	AuthSignup: {
		{"name", "auth.name", "text", "name"},
		{"email", "auth.email", "email", "email"},
		{"password", "auth.password", "password", "new-password"},
		{"confirm_password", "auth.confirm_password", "password", "new-password"},
	},
}

// Auth renders the login or signup page.
func Auth(vm AuthViewModel) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		return components.Layout(ctx, vm.Meta,
			Section(Class("auth"), authForm(ctx, vm)),
		)
	})
}

// AuthForm renders only the form card, for HTMX posts.
func AuthForm(vm AuthViewModel) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		return authForm(ctx, vm)
	})
}

func authForm(ctx context.Context, vm AuthViewModel) g.Node {
	title, button := "auth.login_title", "auth.login_button"
	altText, altHref, altLink := "auth.no_account", "/signup", "nav.get_started"
	if vm.Mode == AuthSignup {
		title, button = "auth.signup_title", "auth.signup_button"
		altText, altHref, altLink = "auth.have_account", "/login", "nav.sign_in"
	}

	return Form(
		ID("auth-form"),
		Class("auth-card"),
		Method("post"),
		Action(vm.Action()),
		g.Attr("hx-post", vm.Action()),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		Input(Type("hidden"), Name(middleware.CSRFField), Value(middleware.CSRFToken(ctx))),
		H1(g.Text(i18n.T(ctx, title))),
		g.If(vm.Submitted, Div(Class("alert alert-info"), Role("status"),
			g.Text(i18n.T(ctx, "auth.backend_notice")),
		)),
		g.Map(authFields[vm.Mode], func(f authField) g.Node {
			return authInput(ctx, vm, f)
		}),
		Button(Type("submit"), Class("btn btn-primary btn-block"), g.Text(i18n.T(ctx, button))),
		P(Class("auth-alt muted"),
			g.Text(i18n.T(ctx, altText)+" "),
			A(Href(altHref), g.Text(i18n.T(ctx, altLink))),
		),
	)
}

func authInput(ctx context.Context, vm AuthViewModel, f authField) g.Node {
	id := string(vm.Mode) + "-" + f.name
	msg, invalid := vm.Errors[f.name]

	var constraints g.Node
	switch f.inputType {
	case "email":
		constraints = g.If(vm.EmailPattern != "", Pattern(vm.EmailPattern))
	case "password":
		constraints = g.If(vm.MinPasswordLength > 0 && f.name == "password", MinLength(strconv.Itoa(vm.MinPasswordLength)))
	}

	return Div(Class("field"),
		Label(For(id), g.Text(i18n.T(ctx, f.labelKey))),
		Input(
			ID(id),
			Name(f.name),
			Type(f.inputType),
			AutoComplete(f.autoComplete),
			Required(),
			constraints,
			g.If(f.inputType != "password", Value(vm.Values[f.name])),
			g.If(invalid, Aria("invalid", "true")),
			g.If(invalid, Aria("describedby", id+"-error")),
		),
		g.If(invalid, P(ID(id+"-error"), Class("field-error"), g.Text(msg))),
	)
}
