package layout

import "strings"

// Justify selects the horizontal alignment of a physical line
type Justify int

const (
	// JustifyLeft aligns at the left margin
	JustifyLeft Justify = iota
	// JustifyCenter centers within the target width
	JustifyCenter
	// JustifyRight aligns at the right margin
	JustifyRight
)

// String implements fmt.Stringer
func (j Justify) String() string {
	switch j {
	case JustifyCenter:
		return "center"
	case JustifyRight:
		return "right"
	default:
		return "left"
	}
}

// ParseJustify parses a direction word. Unknown input reports false.
func ParseJustify(s string) (Justify, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return JustifyLeft, true
	case "center", "centre":
		return JustifyCenter, true
	case "right":
		return JustifyRight, true
	default:
		return JustifyLeft, false
	}
}

// Pad aligns line within width and right-pads the result with spaces so the
// returned string always measures exactly width columns. ANSI sequences in
// line are excluded from the measurement but kept in the content. A line
// already wider than width is returned unchanged.
func Pad(line string, width int, j Justify) string {
	gap := width - VisualWidth(line)
	if gap <= 0 {
		return line
	}

	switch j {
	case JustifyCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + line + strings.Repeat(" ", gap-left)
	case JustifyRight:
		return strings.Repeat(" ", gap) + line
	default:
		return line + strings.Repeat(" ", gap)
	}
}

// PadLines applies Pad to every line
func PadLines(lines []string, width int, j Justify) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Pad(line, width, j)
	}
	return out
}
