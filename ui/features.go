package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Feature is one card of the feature grid. Icon is a short display label.
type Feature struct {
	Title       string
	Description string
	Icon        string
}

var Features = []Feature{
	{
		Title:       "Lightning Fast",
		Description: "Server-rendered pages with zero client framework overhead. Your users see content the moment it arrives.",
		Icon:        "⚡",
	},
	{
		Title:       "Secure by Default",
		Description: "Sensible defaults for headers, rate limiting and input handling so you can launch with confidence.",
		Icon:        "🛡️",
	},
	{
		Title:       "Built to Scale",
		Description: "A small, stateless core that runs anywhere and grows with your traffic without rewrites.",
		Icon:        "🌍",
	},
}

// FeatureGrid renders one card per feature in slice order.
func FeatureGrid(features []Feature) g.Node {
	cards := make([]g.Node, 0, len(features))
	for i, f := range features {
		cards = append(cards, featureCard(i, f))
	}

	return Section(
		ID("features"),
		Class("py-20 px-4 bg-white"),
		Div(
			Class("max-w-7xl mx-auto"),
			Div(
				Class("text-center mb-16"),
				H2(Class("text-3xl sm:text-4xl font-bold text-gray-900"), g.Text("Everything you need to launch")),
				P(Class("mt-4 text-lg text-gray-600"), g.Text("Focus on your product. We handle the foundation.")),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Group(cards),
			),
		),
	)
}

func featureCard(index int, f Feature) g.Node {
	return Div(
		Data("feature-index", strconv.Itoa(index)),
		Class("p-8 rounded-2xl border border-gray-200 hover:border-indigo-300 hover:shadow-lg transition-all"),
		Div(
			Class("w-12 h-12 mb-6 flex items-center justify-center rounded-xl bg-indigo-100 text-2xl"),
			Aria("hidden", "true"),
			g.Text(f.Icon),
		),
		H3(Class("text-xl font-semibold text-gray-900 mb-3"), g.Text(f.Title)),
		P(Class("text-gray-600 leading-relaxed"), g.Text(f.Description)),
	)
}
