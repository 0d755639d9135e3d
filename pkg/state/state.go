// Package state holds the mutable record threaded through one render pass:
// style attributes, box context, time options, the value cursor and the four
// per-format output buffers. A State is single-owner: it lives for exactly
// one render call and is never shared across passes.
package state

import (
	"html"
	"strings"

	"github.com/arthur-debert/fdl/pkg/errors"
	"github.com/arthur-debert/fdl/pkg/layout"
	"github.com/arthur-debert/fdl/pkg/terminal"
)

// TimeOptions carries the time presentation settings mutated by time
// commands and read by the time object family.
type TimeOptions struct {
	Use24h      bool
	TZName      string
	TZOffsetMin int
	ShowSeconds bool
	Decimals    int
	SmartUnits  int
}

// DefaultTimeOptions returns the per-pass starting options: 24-hour clock,
// UTC, seconds shown, no fractional digits, three smart-elapsed units.
func DefaultTimeOptions() TimeOptions {
	return TimeOptions{
		Use24h:      true,
		TZName:      "UTC",
		ShowSeconds: true,
		SmartUnits:  3,
	}
}

// segment is a run of output sharing one justification mode. Wrapping and
// justification are applied per segment at finalize.
type segment struct {
	justify  layout.Justify
	terminal strings.Builder
	plain    strings.Builder
	markdown strings.Builder
	html     strings.Builder
}

// SegmentView is the read-only form handed to the finalizer
type SegmentView struct {
	Justify  layout.Justify
	Terminal string
	Plain    string
	Markdown string
	HTML     string
}

// State is the per-pass format state machine
type State struct {
	caps    terminal.Capabilities
	times   TimeOptions
	attrs   Attrs
	debug   bool
	justify layout.Justify

	values []interface{}
	cursor int

	main   []*segment
	queued []*segment
	gated  bool

	box    *boxContext
	macros map[string][]macroFrame
}

// New creates a fresh State for one render pass over the given positional
// values.
func New(caps terminal.Capabilities, values []interface{}) *State {
	return &State{
		caps:   caps,
		times:  DefaultTimeOptions(),
		values: values,
		macros: make(map[string][]macroFrame),
	}
}

// Caps returns the terminal capabilities for this pass
func (s *State) Caps() terminal.Capabilities { return s.caps }

// Times returns the mutable time options
func (s *State) Times() *TimeOptions { return &s.times }

// Debug reports whether debug substitution mode is active
func (s *State) Debug() bool { return s.debug }

// SetDebug toggles debug mode. Entering clears ambient style; while the
// mode is active, style commands record their attributes but emit nothing,
// and leaving discards whatever they recorded. Debug output is never
// styled by ambient state.
func (s *State) SetDebug(on bool) {
	if on == s.debug {
		return
	}
	if on {
		s.ResetAll()
		s.debug = true
	} else {
		// attributes recorded during debug were never emitted, so they
		// are dropped rather than reset
		s.attrs = Attrs{}
		s.debug = false
	}
}

// Justify returns the active justification mode
func (s *State) Justify() layout.Justify { return s.justify }

// SetGated routes all subsequent writes to the queued shadow buffers. Set
// once at pass start when an external display holds the terminal.
func (s *State) SetGated(on bool) { s.gated = on }

// Gated reports whether the pass writes to shadow buffers
func (s *State) Gated() bool { return s.gated }

// NextValue returns the value under the cursor and advances it. Exhaustion
// is a typed, recoverable condition; the caller substitutes a placeholder.
func (s *State) NextValue() (interface{}, error) {
	if s.cursor >= len(s.values) {
		return nil, errors.Newf(errors.ErrValuesExhausted,
			"no value left at position %d", s.cursor)
	}
	v := s.values[s.cursor]
	s.cursor++
	return v, nil
}

// PeekValue returns the value under the cursor without advancing it
func (s *State) PeekValue() (interface{}, error) {
	if s.cursor >= len(s.values) {
		return nil, errors.Newf(errors.ErrValuesExhausted,
			"no value left at position %d", s.cursor)
	}
	return s.values[s.cursor], nil
}

// segments returns the list writes currently target
func (s *State) segments() *[]*segment {
	if s.box != nil {
		return &s.box.interior
	}
	if s.gated {
		return &s.queued
	}
	return &s.main
}

// active returns the segment writes currently target, creating the first
// one on demand.
func (s *State) active() *segment {
	segs := s.segments()
	if len(*segs) == 0 {
		*segs = append(*segs, &segment{justify: s.currentJustify()})
	}
	return (*segs)[len(*segs)-1]
}

func (s *State) currentJustify() layout.Justify {
	if s.box != nil {
		return s.box.justify
	}
	return s.justify
}

// SetJustify switches the justification mode. Leaving the current mode
// flushes the line in progress so two modes never share one physical line.
func (s *State) SetJustify(j layout.Justify) {
	if s.box != nil {
		if s.box.justify == j {
			return
		}
		s.flushLine()
		s.box.justify = j
	} else {
		if s.justify == j {
			return
		}
		s.flushLine()
		s.justify = j
	}

	segs := s.segments()
	*segs = append(*segs, &segment{justify: j})
}

// flushLine terminates an unfinished physical line in the active segment
func (s *State) flushLine() {
	segs := s.segments()
	if len(*segs) == 0 {
		return
	}
	seg := (*segs)[len(*segs)-1]
	if seg.plain.Len() > 0 && !strings.HasSuffix(seg.plain.String(), "\n") {
		seg.terminal.WriteString("\n")
		seg.plain.WriteString("\n")
		seg.markdown.WriteString("\n")
		seg.html.WriteString("\n")
	}
}

// WriteText appends content under the current style: the terminal buffer
// receives it verbatim (SGR codes were emitted when the style changed),
// Markdown and HTML receive it wrapped in the markup the style calls for.
func (s *State) WriteText(text string) {
	if text == "" {
		return
	}
	seg := s.active()
	seg.terminal.WriteString(text)
	seg.plain.WriteString(text)
	seg.markdown.WriteString(s.markdownWrap(text))
	seg.html.WriteString(s.htmlWrap(text))
}

func htmlEscape(s string) string { return html.EscapeString(s) }

// WriteRendered splices content produced by an isolated nested pass into
// the current position, bypassing ambient styling. The nested pass already
// rendered its own.
func (s *State) WriteRendered(term, plain, markdown, htmlText string) {
	s.writeRaw(term, plain, markdown, htmlText)
}

// writeRaw appends pre-rendered per-format content, bypassing styling
func (s *State) writeRaw(term, plain, markdown, htmlText string) {
	seg := s.active()
	seg.terminal.WriteString(term)
	seg.plain.WriteString(plain)
	seg.markdown.WriteString(markdown)
	seg.html.WriteString(htmlText)
}

// writeTerminal appends an escape sequence to the terminal buffer only.
// Dropped entirely when the terminal does not support color or while debug
// mode suppresses ambient styling.
func (s *State) writeTerminal(code string) {
	if !s.caps.SupportsColor || s.debug {
		return
	}
	s.active().terminal.WriteString(code)
}

func (s *State) markdownWrap(text string) string {
	if s.debug || strings.TrimSpace(text) == "" {
		return text
	}
	out := text
	if s.attrs.Bold && s.attrs.Italic {
		out = "***" + out + "***"
	} else if s.attrs.Bold {
		out = "**" + out + "**"
	} else if s.attrs.Italic {
		out = "*" + out + "*"
	}
	if s.attrs.Strikethrough {
		out = "~~" + out + "~~"
	}
	return out
}

func (s *State) htmlWrap(text string) string {
	escaped := html.EscapeString(text)
	if s.debug {
		return escaped
	}
	css := s.attrs.css()
	if css == "" {
		return escaped
	}
	return `<span style="` + css + `">` + escaped + `</span>`
}

// MergeQueued appends the queued shadow segments to the main buffers and
// clears the gate. Called once at finalize so the returned output is
// identical whether or not the pass was gated.
func (s *State) MergeQueued() {
	s.main = append(s.main, s.queued...)
	s.queued = nil
	s.gated = false
}

// Segments exposes the accumulated output for the finalizer
func (s *State) Segments() []SegmentView {
	views := make([]SegmentView, len(s.main))
	for i, seg := range s.main {
		views[i] = SegmentView{
			Justify:  seg.justify,
			Terminal: seg.terminal.String(),
			Plain:    seg.plain.String(),
			Markdown: seg.markdown.String(),
			HTML:     seg.html.String(),
		}
	}
	return views
}

// queuedSegments exposes the shadow output accumulated while gated
func (s *State) queuedSegments() []SegmentView {
	views := make([]SegmentView, len(s.queued))
	for i, seg := range s.queued {
		views[i] = SegmentView{
			Justify:  seg.justify,
			Terminal: seg.terminal.String(),
			Plain:    seg.plain.String(),
			Markdown: seg.markdown.String(),
			HTML:     seg.html.String(),
		}
	}
	return views
}
