package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleByName(t *testing.T) {
	assert.Equal(t, "rounded", StyleByName("rounded", true).Name)
	assert.Equal(t, "double", StyleByName(" DOUBLE ", true).Name)

	t.Run("unknown falls back to ascii", func(t *testing.T) {
		assert.Equal(t, "ascii", StyleByName("swirly", true).Name)
	})

	t.Run("no unicode forces ascii", func(t *testing.T) {
		assert.Equal(t, "ascii", StyleByName("rounded", false).Name)
	})
}

func TestRenderBoxRectangular(t *testing.T) {
	rows := RenderBox([]string{"Body"}, StyleByName("rounded", true), "X", 20)

	require.Len(t, rows, 3)
	width := VisualWidth(rows[0])
	for _, row := range rows {
		assert.Equal(t, width, VisualWidth(row), "row %q", row)
	}
}

func TestRenderBoxBorders(t *testing.T) {
	rows := RenderBox([]string{"Body"}, StyleByName("square", true), "", 40)

	require.Len(t, rows, 3)
	assert.Equal(t, "┌────────┐", rows[0])
	assert.Equal(t, "│  Body  │", rows[1])
	assert.Equal(t, "└────────┘", rows[2])
}

func TestRenderBoxTitleCentered(t *testing.T) {
	rows := RenderBox([]string{"Body"}, StyleByName("square", true), "X", 40)

	assert.Equal(t, "┌── X ───┐", rows[0])
}

func TestRenderBoxTitleWiderThanContent(t *testing.T) {
	rows := RenderBox([]string{"a"}, StyleByName("square", true), "long title", 40)

	// box grows to fit the title
	width := VisualWidth(rows[0])
	assert.GreaterOrEqual(t, width, VisualWidth("long title")+2+2)
	for _, row := range rows {
		assert.Equal(t, width, VisualWidth(row))
	}
}

func TestRenderBoxClampsToTerminalWidth(t *testing.T) {
	rows := RenderBox([]string{"this content is far too wide"}, StyleByName("ascii", true), "", 16)

	for _, row := range rows {
		assert.Equal(t, 16, VisualWidth(row), "row %q", row)
	}
}

func TestRenderBoxTitleTruncatedWithEllipsis(t *testing.T) {
	rows := RenderBox([]string{"ab"}, StyleByName("ascii", true), "a very long box title", 12)

	assert.Equal(t, 12, VisualWidth(rows[0]))
	assert.Contains(t, rows[0], "…")
}

func TestRenderBoxEmptyInterior(t *testing.T) {
	rows := RenderBox(nil, StyleByName("rounded", true), "", 20)

	require.Len(t, rows, 2)
	assert.Equal(t, VisualWidth(rows[0]), VisualWidth(rows[1]))
}

func TestRenderBoxStyledInterior(t *testing.T) {
	rows := RenderBox([]string{"\x1b[31mBody\x1b[39m"}, StyleByName("rounded", true), "", 20)

	width := VisualWidth(rows[0])
	for _, row := range rows {
		assert.Equal(t, width, VisualWidth(row))
	}
}
