package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Button Components ----

// ButtonVariant names one of the fixed button styles.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
)

const buttonBaseClass = "inline-flex items-center justify-center gap-2 px-6 py-3 rounded-lg font-semibold " +
	"transition-colors duration-200 focus:outline-none focus:ring-2 focus:ring-offset-2 "

// ButtonClass returns the full class list for a variant. Anything outside
// the three known variants, including the empty string, is styled primary.
func ButtonClass(variant ButtonVariant) string {
	switch variant {
	case ButtonSecondary:
		return buttonBaseClass + "btn-secondary bg-gray-800 text-white hover:bg-gray-900 focus:ring-gray-700"
	case ButtonOutline:
		return buttonBaseClass + "btn-outline border-2 border-indigo-600 text-indigo-600 hover:bg-indigo-50 focus:ring-indigo-500"
	default:
		return buttonBaseClass + "btn-primary bg-indigo-600 text-white hover:bg-indigo-700 focus:ring-indigo-500"
	}
}

// StyledButton renders a <button>. Attributes such as Type, ID or htmx
// handlers are passed through alongside the content.
func StyledButton(variant ButtonVariant, children ...g.Node) g.Node {
	return Button(Class(ButtonClass(variant)), g.Group(children))
}

// LinkButton renders an anchor styled as a button.
func LinkButton(variant ButtonVariant, href string, children ...g.Node) g.Node {
	return A(Href(href), Class(ButtonClass(variant)), g.Group(children))
}

func actionButtons(buttons ...g.Node) g.Node {
	return Div(
		Class("mt-10 flex flex-col sm:flex-row items-center justify-center gap-4"),
		g.Group(buttons),
	)
}
