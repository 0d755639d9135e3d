package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fdl/pkg/layout"
	"github.com/arthur-debert/fdl/pkg/terminal"
)

func TestBoxLifecycle(t *testing.T) {
	s := newState()

	assert.False(t, s.InBox())
	require.True(t, s.StartBox(BoxOptions{StyleName: "rounded", Title: "X"}))
	assert.True(t, s.InBox())

	s.WriteText("Body")
	require.True(t, s.EndBox())
	assert.False(t, s.InBox())
}

func TestBoxCannotNest(t *testing.T) {
	s := newState()
	require.True(t, s.StartBox(BoxOptions{StyleName: "square"}))

	assert.False(t, s.StartBox(BoxOptions{StyleName: "double"}), "nested open is a no-op")
	assert.True(t, s.InBox(), "outer box still open")
}

func TestEndBoxWithoutBox(t *testing.T) {
	s := newState()
	assert.False(t, s.EndBox())
}

func TestBoxRowsRectangular(t *testing.T) {
	caps := terminal.Default()
	caps.Width = 20
	s := New(caps, nil)

	require.True(t, s.StartBox(BoxOptions{StyleName: "rounded", Title: "X"}))
	s.WriteText("Body")
	require.True(t, s.EndBox())

	rows := strings.Split(strings.TrimSuffix(plainOf(s), "\n"), "\n")
	require.Len(t, rows, 3)
	width := layout.VisualWidth(rows[0])
	for _, row := range rows {
		assert.Equal(t, width, layout.VisualWidth(row), "row %q", row)
	}
}

func TestBoxInteriorWrapsToTerminalWidth(t *testing.T) {
	caps := terminal.Default()
	caps.Width = 16
	s := New(caps, nil)

	require.True(t, s.StartBox(BoxOptions{StyleName: "ascii"}))
	s.WriteText("words that will not fit on one line")
	require.True(t, s.EndBox())

	rows := strings.Split(strings.TrimSuffix(plainOf(s), "\n"), "\n")
	require.Greater(t, len(rows), 3, "content wrapped into multiple rows")
	for _, row := range rows {
		assert.LessOrEqual(t, layout.VisualWidth(row), 16, "row %q", row)
	}
}

func TestBoxColorCommandAfterTrailingNewline(t *testing.T) {
	// a color change right after a line break leaves an escape-only
	// terminal line with no plain counterpart; closing the box must still
	// produce rectangular rows in both renderings
	caps := terminal.Default()
	caps.Width = 20
	s := New(caps, nil)

	require.True(t, s.StartBox(BoxOptions{StyleName: "square"}))
	s.WriteText("abc\n")
	s.SetForeground(mustColor(t, "red"))
	require.True(t, s.EndBox())

	rows := strings.Split(strings.TrimSuffix(plainOf(s), "\n"), "\n")
	require.Len(t, rows, 3)
	width := layout.VisualWidth(rows[0])
	for _, row := range rows {
		assert.Equal(t, width, layout.VisualWidth(row), "row %q", row)
	}
	assert.Equal(t, plainOf(s), layout.StripANSI(terminalOf(s)))
}

func TestBoxBorderColorWrapsWholeBlock(t *testing.T) {
	s := newState()

	require.True(t, s.StartBox(BoxOptions{StyleName: "square", Color: mustColor(t, "blue")}))
	s.WriteText("hi")
	require.True(t, s.EndBox())

	term := terminalOf(s)
	assert.True(t, strings.HasPrefix(term, "\x1b[34m"))
	assert.Contains(t, term, "\x1b[39m")

	// plain variant carries no escapes
	assert.NotContains(t, plainOf(s), "\x1b")
}

func TestBoxMarkdownFenced(t *testing.T) {
	s := newState()
	require.True(t, s.StartBox(BoxOptions{StyleName: "square"}))
	s.WriteText("hi")
	require.True(t, s.EndBox())

	md := joined(s.Segments(), func(v SegmentView) string { return v.Markdown })
	assert.True(t, strings.HasPrefix(md, "```\n"))
	assert.Contains(t, md, "hi")
}

func TestBoxHTMLPre(t *testing.T) {
	s := newState()
	require.True(t, s.StartBox(BoxOptions{StyleName: "square"}))
	s.WriteText("hi")
	require.True(t, s.EndBox())

	html := joined(s.Segments(), func(v SegmentView) string { return v.HTML })
	assert.Contains(t, html, "<pre>")
	assert.Contains(t, html, "</pre>")
}

func TestBoxJustifyOption(t *testing.T) {
	caps := terminal.Default()
	caps.Width = 20
	s := New(caps, nil)

	require.True(t, s.StartBox(BoxOptions{StyleName: "ascii", Title: "title long", Justify: layout.JustifyRight}))
	s.WriteText("hi")
	require.True(t, s.EndBox())

	rows := strings.Split(strings.TrimSuffix(plainOf(s), "\n"), "\n")
	require.Len(t, rows, 3)
	// interior is right-justified against the content width
	assert.Contains(t, rows[1], "   hi  |")
}