package ui

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/launchkit/site/config"
)

// MenuState is the open/closed state of the mobile navigation panel.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// ParseMenuState maps "open" to MenuOpen and everything else to MenuClosed.
func ParseMenuState(s string) MenuState {
	if s == MenuOpen.String() {
		return MenuOpen
	}
	return MenuClosed
}

type NavLink struct {
	Label string
	Href  string
}

var NavLinks = []NavLink{
	{Label: "Features", Href: "#features"},
	{Label: "Documentation", Href: "#docs"},
	{Label: "Pricing", Href: "#pricing"},
	{Label: "About", Href: "#about"},
}

// NavbarToggleURL receives the current menu state and answers with the
// re-rendered navbar.
const NavbarToggleURL = "/navbar/toggle"

const navbarID = "navbar"

// Navbar owns the mobile menu state. The zero value is closed.
type Navbar struct {
	state MenuState
}

func NewNavbar(state MenuState) *Navbar {
	return &Navbar{state: state}
}

// Toggle flips the menu between open and closed.
func (n *Navbar) Toggle() {
	if n.state == MenuOpen {
		n.state = MenuClosed
	} else {
		n.state = MenuOpen
	}
}

func (n *Navbar) State() MenuState {
	return n.state
}

func (n *Navbar) IsOpen() bool {
	return n.state == MenuOpen
}

func (n *Navbar) Render(icons IconProvider) g.Node {
	return Nav(
		ID(navbarID),
		Class("fixed top-0 inset-x-0 z-50 bg-white/90 backdrop-blur border-b border-gray-200"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("flex items-center justify-between h-16"),
				A(Href("/"), Class("text-xl font-bold text-indigo-600"), g.Text(config.SiteName)),
				desktopLinks(),
				n.toggleButton(icons),
			),
		),
		g.Iff(n.IsOpen(), mobilePanel),
	)
}

func desktopLinks() g.Node {
	return Div(
		Class("hidden md:flex items-center space-x-8"),
		g.Map(NavLinks, func(l NavLink) g.Node {
			return A(
				Href(l.Href),
				Class("text-gray-600 hover:text-indigo-600 font-medium transition-colors"),
				g.Text(l.Label),
			)
		}),
	)
}

func (n *Navbar) toggleButton(icons IconProvider) g.Node {
	glyph := IconMenu
	if n.IsOpen() {
		glyph = IconX
	}

	return Button(
		Type("button"),
		Class("md:hidden p-2 rounded-md text-gray-600 hover:text-indigo-600 hover:bg-gray-100"),
		Aria("label", "Toggle menu"),
		g.If(n.IsOpen(), Aria("controls", "mobile-menu")),
		Aria("expanded", strconv.FormatBool(n.IsOpen())),
		hx.Post(NavbarToggleURL),
		hx.Target("#"+navbarID),
		hx.Swap("outerHTML"),
		g.Attr("hx-vals", fmt.Sprintf(`{"menu":"%s"}`, n.state)),
		icons.Icon(glyph, "w-6 h-6"),
	)
}

func mobilePanel() g.Node {
	return Div(
		ID("mobile-menu"),
		Class("md:hidden border-t border-gray-200 bg-white"),
		Div(
			Class("px-4 py-3 space-y-1"),
			g.Map(NavLinks, func(l NavLink) g.Node {
				return A(
					Href(l.Href),
					Class("block px-3 py-2 rounded-md text-gray-700 hover:bg-gray-50 hover:text-indigo-600 font-medium"),
					g.Text(l.Label),
				)
			}),
		),
	)
}
