package layout

import (
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// BoxStyle is an immutable set of border glyphs
type BoxStyle struct {
	Name        string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
	LeftT       string
	RightT      string
	TopT        string
	BottomT     string
}

var asciiStyle = BoxStyle{
	Name:    "ascii",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
	Horizontal: "-", Vertical: "|",
	LeftT: "+", RightT: "+", TopT: "+", BottomT: "+",
}

var boxStyles = map[string]BoxStyle{
	"rounded": {
		Name:    "rounded",
		TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
		Horizontal: "─", Vertical: "│",
		LeftT: "├", RightT: "┤", TopT: "┬", BottomT: "┴",
	},
	"square": {
		Name:    "square",
		TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
		Horizontal: "─", Vertical: "│",
		LeftT: "├", RightT: "┤", TopT: "┬", BottomT: "┴",
	},
	"double": {
		Name:    "double",
		TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝",
		Horizontal: "═", Vertical: "║",
		LeftT: "╠", RightT: "╣", TopT: "╦", BottomT: "╩",
	},
	"thick": {
		Name:    "thick",
		TopLeft: "┏", TopRight: "┓", BottomLeft: "┗", BottomRight: "┛",
		Horizontal: "━", Vertical: "┃",
		LeftT: "┣", RightT: "┫", TopT: "┳", BottomT: "┻",
	},
	"dashed": {
		Name:    "dashed",
		TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
		Horizontal: "╌", Vertical: "╎",
		LeftT: "├", RightT: "┤", TopT: "┬", BottomT: "┴",
	},
	"dotted": {
		Name:    "dotted",
		TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
		Horizontal: "┄", Vertical: "┆",
		LeftT: "├", RightT: "┤", TopT: "┬", BottomT: "┴",
	},
	"block": {
		Name:    "block",
		TopLeft: "█", TopRight: "█", BottomLeft: "█", BottomRight: "█",
		Horizontal: "█", Vertical: "█",
		LeftT: "█", RightT: "█", TopT: "█", BottomT: "█",
	},
	"ascii": asciiStyle,
}

// StyleByName looks up a border style. Unknown names and terminals without
// Unicode box support fall back to the ascii style.
func StyleByName(name string, unicodeOK bool) BoxStyle {
	if !unicodeOK {
		return asciiStyle
	}
	if style, ok := boxStyles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return style
	}
	return asciiStyle
}

// BoxStyleNames returns the available style names in sorted order
func BoxStyleNames() []string {
	names := make([]string, 0, len(boxStyles))
	for name := range boxStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// interiorPadding is the horizontal padding inside the borders (two spaces
// each side); borderWidth is the two vertical border columns.
const (
	interiorPadding = 4
	borderWidth     = 2
)

// RenderBox synthesizes a bordered block around pre-wrapped, pre-justified
// interior lines. Box width is max(content width, title width + 2) plus
// padding and borders, clamped to maxWidth. Every returned row has identical
// visual width.
func RenderBox(interior []string, style BoxStyle, title string, maxWidth int) []string {
	contentW := 0
	for _, line := range interior {
		if w := VisualWidth(line); w > contentW {
			contentW = w
		}
	}
	if title != "" {
		if w := VisualWidth(title) + 2; w > contentW {
			contentW = w
		}
	}

	total := contentW + interiorPadding + borderWidth
	if maxWidth > 0 && total > maxWidth {
		total = maxWidth
		contentW = total - interiorPadding - borderWidth
		if contentW < 0 {
			contentW = 0
		}
	}
	innerW := contentW + interiorPadding

	rows := make([]string, 0, len(interior)+2)
	rows = append(rows, topBorder(style, title, innerW))
	for _, line := range interior {
		rows = append(rows, contentRow(style, line, contentW))
	}
	rows = append(rows, style.BottomLeft+strings.Repeat(style.Horizontal, innerW)+style.BottomRight)
	return rows
}

func topBorder(style BoxStyle, title string, innerW int) string {
	if title == "" {
		return style.TopLeft + strings.Repeat(style.Horizontal, innerW) + style.TopRight
	}

	if VisualWidth(title)+2 > innerW {
		room := innerW - 2
		if room < 1 {
			return style.TopLeft + strings.Repeat(style.Horizontal, innerW) + style.TopRight
		}
		title = ansi.Truncate(title, room, "…")
	}

	caption := " " + title + " "
	fill := innerW - VisualWidth(caption)
	left := fill / 2
	return style.TopLeft +
		strings.Repeat(style.Horizontal, left) +
		caption +
		strings.Repeat(style.Horizontal, fill-left) +
		style.TopRight
}

func contentRow(style BoxStyle, line string, contentW int) string {
	if VisualWidth(line) > contentW {
		line = ansi.Truncate(line, contentW, "")
	}
	padded := line + strings.Repeat(" ", contentW-VisualWidth(line))
	return style.Vertical + "  " + padded + "  " + style.Vertical
}
