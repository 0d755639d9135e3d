package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// breakClass ranks break candidates. Lower values are preferred when a line
// must be broken: whitespace > punctuation > slash/backslash > dash.
type breakClass int

const (
	breakNone breakClass = iota
	breakWhitespace
	breakPunct
	breakSlash
	breakDash
)

// cell is one indivisible unit of input: a grapheme cluster or a whole ANSI
// escape sequence (width zero, never split).
type cell struct {
	text  string
	width int
	class breakClass
}

// Wrapper produces wrapped lines one at a time. It is restartable: callers
// may interleave Next calls with other work and resume where they left off.
type Wrapper struct {
	width int
	lines []string // remaining hard-break segments of the input
	cells []cell   // cells of the segment currently being wrapped
	pos   int      // next cell to consume
	open  bool     // a segment is mid-wrap
}

// NewWrapper prepares wrapping of s to the given width. Explicit newlines
// are always hard breaks.
func NewWrapper(s string, width int) *Wrapper {
	return &Wrapper{
		width: width,
		lines: strings.Split(s, "\n"),
	}
}

// Wrap is the one-shot form: it returns every wrapped line of s.
func Wrap(s string, width int) []string {
	w := NewWrapper(s, width)
	var out []string
	for {
		line, ok := w.Next()
		if !ok {
			break
		}
		out = append(out, line)
	}
	return out
}

// Next returns the next wrapped line. The second return is false once the
// input is exhausted.
func (w *Wrapper) Next() (string, bool) {
	if !w.open {
		if len(w.lines) == 0 {
			return "", false
		}
		w.cells = split(w.lines[0])
		w.lines = w.lines[1:]
		w.pos = 0
		w.open = true
	}

	line, more := w.nextFromSegment()
	if !more {
		w.open = false
	}
	return line, true
}

// nextFromSegment emits one line from the current segment and reports
// whether the segment still has content left.
func (w *Wrapper) nextFromSegment() (string, bool) {
	cells := w.cells
	if w.pos >= len(cells) {
		return "", false
	}

	// Track the best break candidate of each class seen so far. A break
	// index is the cell position the next line resumes from.
	lineStart := w.pos
	lineWidth := 0
	best := map[breakClass]int{}

	i := lineStart
	for ; i < len(cells); i++ {
		c := cells[i]
		if w.width > 0 && lineWidth+c.width > w.width && lineWidth > 0 {
			break
		}
		lineWidth += c.width
		if c.class != breakNone {
			best[c.class] = i
		}
	}

	if i >= len(cells) {
		// Everything fits on this line.
		w.pos = len(cells)
		return join(cells[lineStart:]), false
	}

	var end, resume int
	if cells[i].class == breakWhitespace {
		// The overflowing cell is itself a space: the line fits exactly.
		end, resume = i, i+1
	} else {
		end, resume = w.pickBreak(cells, lineStart, i, best)
	}
	// Trailing spaces are dropped at a soft break.
	for end > lineStart && cells[end-1].class == breakWhitespace {
		end--
	}
	w.pos = skipLeadingSpace(cells, resume)
	return join(cells[lineStart:end]), w.pos < len(cells)
}

// pickBreak chooses where the current line ends and where the next resumes,
// scanning candidate classes in priority order. overflow is the index of the
// first cell that did not fit.
func (w *Wrapper) pickBreak(cells []cell, lineStart, overflow int, best map[breakClass]int) (end, resume int) {
	if idx, ok := best[breakWhitespace]; ok && idx >= lineStart {
		// Whitespace is consumed by the break.
		return idx, idx + 1
	}
	for _, class := range []breakClass{breakPunct, breakSlash, breakDash} {
		if idx, ok := best[class]; ok && idx >= lineStart {
			// The break character stays on the line.
			return idx + 1, idx + 1
		}
	}
	// Single token wider than the line: force-split at the overflow point.
	return overflow, overflow
}

// AlignStyled reconciles independently wrapped styled and plain renderings
// of the same content. A styled rendering can carry trailing escape-only
// lines with no plain counterpart; those fold into the preceding line.
// Any residual length difference is evened out with empty lines so the two
// slices can be iterated in lockstep.
func AlignStyled(styled, plain []string) ([]string, []string) {
	for len(styled) > len(plain) && len(styled) > 1 && VisualWidth(styled[len(styled)-1]) == 0 {
		styled[len(styled)-2] += styled[len(styled)-1]
		styled = styled[:len(styled)-1]
	}
	for len(styled) < len(plain) {
		styled = append(styled, "")
	}
	for len(plain) < len(styled) {
		plain = append(plain, "")
	}
	return styled, plain
}

func skipLeadingSpace(cells []cell, pos int) int {
	for pos < len(cells) && cells[pos].class == breakWhitespace {
		pos++
	}
	return pos
}

func join(cells []cell) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(c.text)
	}
	return sb.String()
}

// split decomposes a string into cells: ANSI escape sequences kept whole at
// width zero, everything else one grapheme cluster at a time.
func split(s string) []cell {
	var cells []cell
	rest := s
	for len(rest) > 0 {
		if rest[0] == 0x1b {
			esc := escapeLen(rest)
			cells = append(cells, cell{text: rest[:esc]})
			rest = rest[esc:]
			continue
		}
		cluster, tail, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		cells = append(cells, cell{
			text:  cluster,
			width: runewidth.StringWidth(cluster),
			class: classify(cluster),
		})
		rest = tail
	}
	return cells
}

// escapeLen returns the byte length of the escape sequence at the start of s
func escapeLen(s string) int {
	if len(s) < 2 {
		return len(s)
	}
	if s[1] != '[' {
		return 2
	}
	// CSI sequence: parameters then a final byte in 0x40..0x7e
	for i := 2; i < len(s); i++ {
		if s[i] >= 0x40 && s[i] <= 0x7e {
			return i + 1
		}
	}
	return len(s)
}

func classify(cluster string) breakClass {
	r, _ := utf8.DecodeRuneInString(cluster)
	switch {
	case unicode.IsSpace(r):
		return breakWhitespace
	case r == '/' || r == '\\':
		return breakSlash
	case r == '-' || r == '–' || r == '—':
		return breakDash
	case unicode.IsPunct(r):
		return breakPunct
	default:
		return breakNone
	}
}
