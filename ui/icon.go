package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Icon Components ----

type IconName string

const (
	IconMenu         IconName = "menu"
	IconX            IconName = "x"
	IconChevronRight IconName = "chevron-right"
	IconGithub       IconName = "github"
	IconTwitter      IconName = "twitter"
	IconLinkedin     IconName = "linkedin"
	IconGlobe        IconName = "globe"
)

// IconProvider supplies a renderable glyph for an icon name.
type IconProvider interface {
	Icon(name IconName, class string) g.Node
}

// LucideIcons renders icons as inline lucide SVGs.
type LucideIcons struct{}

var lucideShapes = map[IconName][]g.Node{
	IconMenu: {
		svgLine("4", "12", "20", "12"),
		svgLine("4", "6", "20", "6"),
		svgLine("4", "18", "20", "18"),
	},
	IconX: {
		svgPath("M18 6 6 18"),
		svgPath("m6 6 12 12"),
	},
	IconChevronRight: {
		svgPath("m9 18 6-6-6-6"),
	},
	IconGithub: {
		svgPath("M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"),
		svgPath("M9 18c-4.51 2-5-2-7-2"),
	},
	IconTwitter: {
		svgPath("M22 4s-.7 2.1-2 3.4c1.6 10-9.4 17.3-18 11.6 2.2.1 4.4-.6 6-2C3 15.5.5 9.6 3 5c2.2 2.6 5.6 4.1 9 4-.9-4.2 4-6.6 7-3.8 1.1 0 3-1.2 3-1.2z"),
	},
	IconLinkedin: {
		svgPath("M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z"),
		g.El("rect", g.Attr("x", "2"), g.Attr("y", "9"), g.Attr("width", "4"), g.Attr("height", "12")),
		svgCircle("4", "4", "2"),
	},
	IconGlobe: {
		svgCircle("12", "12", "10"),
		svgPath("M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20"),
		svgPath("M2 12h20"),
	},
}

// Icon renders the named glyph. Unknown names render an empty span so a
// missing icon never breaks the surrounding layout.
func (LucideIcons) Icon(name IconName, class string) g.Node {
	shapes, ok := lucideShapes[name]
	if !ok {
		return Span(Class(class))
	}

	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		Class("lucide lucide-"+string(name)+" "+class),
		Aria("hidden", "true"),
		g.Group(shapes),
	)
}

func svgPath(d string) g.Node {
	return g.El("path", g.Attr("d", d))
}

func svgLine(x1, y1, x2, y2 string) g.Node {
	return g.El("line", g.Attr("x1", x1), g.Attr("y1", y1), g.Attr("x2", x2), g.Attr("y2", y2))
}

func svgCircle(cx, cy, r string) g.Node {
	return g.El("circle", g.Attr("cx", cx), g.Attr("cy", cy), g.Attr("r", r))
}

// iconLink renders an icon-only link with an accessible label.
func iconLink(icons IconProvider, name IconName, label, href string) g.Node {
	return A(
		Href(href),
		Class("text-gray-400 hover:text-white transition-colors"),
		Aria("label", label),
		Title(label),
		icons.Icon(name, "w-5 h-5"),
	)
}
