package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// namedIcons renders a marker per icon so tests can see which glyph was asked for.
type namedIcons struct{}

func (namedIcons) Icon(name IconName, class string) g.Node {
	return Span(Data("icon", string(name)))
}

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}
