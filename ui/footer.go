package ui

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/launchkit/site/config"
)

type SocialLink struct {
	Label string
	Href  string
	Icon  IconName
}

var SocialLinks = []SocialLink{
	{Label: "GitHub", Href: "https://github.com", Icon: IconGithub},
	{Label: "Twitter", Href: "https://twitter.com", Icon: IconTwitter},
	{Label: "LinkedIn", Href: "https://linkedin.com", Icon: IconLinkedin},
}

type footerColumn struct {
	Title string
	Links []NavLink
}

var footerColumns = []footerColumn{
	{Title: "Product", Links: NavLinks[:3]},
	{Title: "Company", Links: []NavLink{
		{Label: "About", Href: "#about"},
		{Label: "Blog", Href: "#blog"},
		{Label: "Careers", Href: "#careers"},
	}},
	{Title: "Legal", Links: []NavLink{
		{Label: "Privacy", Href: "#privacy"},
		{Label: "Terms", Href: "#terms"},
	}},
}

// SiteFooter renders the page footer. The copyright year comes from now.
func SiteFooter(now time.Time, icons IconProvider) g.Node {
	return Footer(
		ID("site-footer"),
		Class("bg-gray-900 text-gray-300 py-12 px-4"),
		Div(
			Class("max-w-7xl mx-auto"),
			Div(
				Class("grid grid-cols-2 md:grid-cols-4 gap-8"),
				Div(
					Class("col-span-2 md:col-span-1"),
					Span(Class("text-xl font-bold text-white"), g.Text(config.SiteName)),
					P(Class("mt-4 text-sm text-gray-400"), g.Text("The fastest way from idea to launch.")),
					Div(
						Class("mt-6 flex space-x-4"),
						g.Map(SocialLinks, func(s SocialLink) g.Node {
							return iconLink(icons, s.Icon, s.Label, s.Href)
						}),
					),
				),
				g.Map(footerColumns, footerLinkColumn),
			),
			Div(
				Class("mt-12 pt-8 border-t border-gray-800 flex flex-col sm:flex-row items-center justify-between gap-4 text-sm text-gray-400"),
				P(g.Textf("© %d %s. All rights reserved.", now.Year(), config.SiteName)),
				Span(
					Class("inline-flex items-center gap-2"),
					icons.Icon(IconGlobe, "w-4 h-4"),
					g.Text("English (US)"),
				),
			),
		),
	)
}

func footerLinkColumn(col footerColumn) g.Node {
	return Div(
		H3(Class("text-sm font-semibold text-white uppercase tracking-wider"), g.Text(col.Title)),
		Ul(
			Class("mt-4 space-y-2"),
			g.Map(col.Links, func(l NavLink) g.Node {
				return Li(A(Href(l.Href), Class("text-sm hover:text-white transition-colors"), g.Text(l.Label)))
			}),
		),
	)
}
