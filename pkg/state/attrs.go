package state

import (
	"strings"

	"github.com/arthur-debert/fdl/pkg/color"
)

// Attrs are the ambient style attributes. Nil colors mean the terminal
// default.
type Attrs struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Foreground    *color.Spec
	Background    *color.Spec
}

// SGR toggle codes for the four text attributes
const (
	sgrBold         = "\x1b[1m"
	sgrBoldOff      = "\x1b[22m"
	sgrItalic       = "\x1b[3m"
	sgrItalicOff    = "\x1b[23m"
	sgrUnderline    = "\x1b[4m"
	sgrUnderlineOff = "\x1b[24m"
	sgrStrike       = "\x1b[9m"
	sgrStrikeOff    = "\x1b[29m"
)

// Attrs returns a copy of the current style attributes
func (s *State) Attrs() Attrs { return s.attrs }

// SetBold toggles bold, emitting the SGR transition
func (s *State) SetBold(on bool) {
	if s.attrs.Bold == on {
		return
	}
	s.attrs.Bold = on
	if on {
		s.writeTerminal(sgrBold)
	} else {
		s.writeTerminal(sgrBoldOff)
	}
}

// SetItalic toggles italic, emitting the SGR transition
func (s *State) SetItalic(on bool) {
	if s.attrs.Italic == on {
		return
	}
	s.attrs.Italic = on
	if on {
		s.writeTerminal(sgrItalic)
	} else {
		s.writeTerminal(sgrItalicOff)
	}
}

// SetUnderline toggles underline, emitting the SGR transition
func (s *State) SetUnderline(on bool) {
	if s.attrs.Underline == on {
		return
	}
	s.attrs.Underline = on
	if on {
		s.writeTerminal(sgrUnderline)
	} else {
		s.writeTerminal(sgrUnderlineOff)
	}
}

// SetStrikethrough toggles strikethrough, emitting the SGR transition
func (s *State) SetStrikethrough(on bool) {
	if s.attrs.Strikethrough == on {
		return
	}
	s.attrs.Strikethrough = on
	if on {
		s.writeTerminal(sgrStrike)
	} else {
		s.writeTerminal(sgrStrikeOff)
	}
}

// SetForeground sets the text color; nil restores the terminal default
func (s *State) SetForeground(c *color.Spec) {
	if colorEq(s.attrs.Foreground, c) {
		return
	}
	s.attrs.Foreground = c
	if c != nil {
		s.writeTerminal(c.Foreground())
	} else {
		s.writeTerminal(color.ResetForeground)
	}
}

// SetBackground sets the background color; nil restores the terminal default
func (s *State) SetBackground(c *color.Spec) {
	if colorEq(s.attrs.Background, c) {
		return
	}
	s.attrs.Background = c
	if c != nil {
		s.writeTerminal(c.Background())
	} else {
		s.writeTerminal(color.ResetBackground)
	}
}

// ResetAll reverts every attribute and emits a universal reset
func (s *State) ResetAll() {
	if s.attrs == (Attrs{}) {
		return
	}
	s.attrs = Attrs{}
	s.writeTerminal(color.Reset)
}

func colorEq(a, b *color.Spec) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// css renders the attributes as a CSS declaration list for HTML spans
func (a Attrs) css() string {
	var parts []string
	if a.Foreground != nil {
		parts = append(parts, "color:"+a.Foreground.CSS())
	}
	if a.Background != nil {
		parts = append(parts, "background-color:"+a.Background.CSS())
	}
	if a.Bold {
		parts = append(parts, "font-weight:bold")
	}
	if a.Italic {
		parts = append(parts, "font-style:italic")
	}
	var deco []string
	if a.Underline {
		deco = append(deco, "underline")
	}
	if a.Strikethrough {
		deco = append(deco, "line-through")
	}
	if len(deco) > 0 {
		parts = append(parts, "text-decoration:"+strings.Join(deco, " "))
	}
	return strings.Join(parts, ";")
}

// WriteColored writes text in a fixed color, ignoring ambient style. Debug
// substitution uses this so value presentation never inherits formatting.
func (s *State) WriteColored(text string, c color.Spec, dim bool) {
	term := c.Foreground()
	if dim {
		term = "\x1b[2m" + term
	}
	term += text + color.ResetForeground
	if dim {
		term += "\x1b[22m"
	}
	if !s.caps.SupportsColor {
		term = text
	}

	htmlText := `<span style="color:` + c.CSS() + `">` + htmlEscape(text) + `</span>`
	s.writeRaw(term, text, text, htmlText)
}

// WriteDim writes text dimmed (no color), ignoring ambient style
func (s *State) WriteDim(text string) {
	term := "\x1b[2m" + text + "\x1b[22m"
	if !s.caps.SupportsColor {
		term = text
	}
	htmlText := `<span style="opacity:0.6">` + htmlEscape(text) + `</span>`
	s.writeRaw(term, text, text, htmlText)
}
