package state

import (
	"strings"

	"github.com/arthur-debert/fdl/pkg/color"
	"github.com/arthur-debert/fdl/pkg/layout"
)

// BoxOptions configures an opened box
type BoxOptions struct {
	StyleName  string
	Title      string
	Color      *color.Spec
	Background *color.Spec
	Justify    layout.Justify
}

// boxContext accumulates interior content while a box is open
type boxContext struct {
	opts     BoxOptions
	style    layout.BoxStyle
	justify  layout.Justify
	interior []*segment
}

// InBox reports whether a box is currently open
func (s *State) InBox() bool { return s.box != nil }

// StartBox opens a box. Boxes cannot nest: opening while inside one is a
// no-op and reports false.
func (s *State) StartBox(opts BoxOptions) bool {
	if s.box != nil {
		return false
	}
	s.flushLine()
	s.box = &boxContext{
		opts:    opts,
		style:   layout.StyleByName(opts.StyleName, s.caps.SupportsUnicodeBoxes),
		justify: opts.Justify,
	}
	return true
}

// EndBox closes the open box, synthesizes its borders and writes the block
// to the surrounding buffers. Ending with no box open is a no-op and
// reports false.
func (s *State) EndBox() bool {
	if s.box == nil {
		return false
	}
	box := s.box
	s.box = nil

	available := s.caps.Width - 6
	if available < 1 {
		available = 1
	}

	var termLines, plainLines []string
	var justifies []layout.Justify
	for _, seg := range box.interior {
		tl := layout.Wrap(strings.TrimSuffix(seg.terminal.String(), "\n"), available)
		pl := layout.Wrap(strings.TrimSuffix(seg.plain.String(), "\n"), available)
		tl, pl = layout.AlignStyled(tl, pl)
		termLines = append(termLines, tl...)
		plainLines = append(plainLines, pl...)
		for range pl {
			justifies = append(justifies, seg.justify)
		}
	}

	contentW := 0
	if box.opts.Title != "" {
		contentW = layout.VisualWidth(box.opts.Title) + 2
	}
	for _, line := range plainLines {
		if w := layout.VisualWidth(line); w > contentW {
			contentW = w
		}
	}
	if contentW > available {
		contentW = available
	}
	for i := range termLines {
		termLines[i] = layout.Pad(termLines[i], contentW, justifies[i])
		plainLines[i] = layout.Pad(plainLines[i], contentW, justifies[i])
	}

	termRows := layout.RenderBox(termLines, box.style, box.opts.Title, s.caps.Width)
	plainRows := layout.RenderBox(plainLines, box.style, box.opts.Title, s.caps.Width)

	termBlock := strings.Join(termRows, "\n")
	if s.caps.SupportsColor {
		if box.opts.Background != nil {
			termBlock = box.opts.Background.Background() + termBlock + color.ResetBackground
		}
		if box.opts.Color != nil {
			termBlock = box.opts.Color.Foreground() + termBlock + color.ResetForeground
		}
	}
	plainBlock := strings.Join(plainRows, "\n")

	mdBlock := "```\n" + plainBlock + "\n```\n"

	preStyle := ""
	if box.opts.Color != nil {
		preStyle = ` style="color:` + box.opts.Color.CSS() + `"`
	}
	htmlBlock := "<pre" + preStyle + ">\n" + htmlEscape(plainBlock) + "\n</pre>\n"

	s.flushLine()
	s.writeRaw(termBlock+"\n", plainBlock+"\n", mdBlock, htmlBlock)
	return true
}
