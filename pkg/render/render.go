// Package render drives a parsed template through the command and object
// registries and finalizes the four output formats. A Renderer is cheap,
// reusable and safe for sequential renders; each call gets a fresh format
// state.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/fdl/pkg/color"
	"github.com/arthur-debert/fdl/pkg/commands"
	"github.com/arthur-debert/fdl/pkg/errors"
	"github.com/arthur-debert/fdl/pkg/layout"
	"github.com/arthur-debert/fdl/pkg/logging"
	"github.com/arthur-debert/fdl/pkg/macros"
	"github.com/arthur-debert/fdl/pkg/objects"
	"github.com/arthur-debert/fdl/pkg/parser"
	"github.com/arthur-debert/fdl/pkg/state"
	"github.com/arthur-debert/fdl/pkg/terminal"
)

// Output holds the four synchronized renderings of one pass. The underlying
// textual content is identical across formats modulo format-specific markup.
type Output struct {
	Terminal string
	Plain    string
	Markdown string
	HTML     string
}

// Renderer binds terminal capabilities, registries and a macro store into a
// reusable rendering pipeline.
type Renderer struct {
	caps     terminal.Capabilities
	gate     terminal.DisplayGate
	store    macros.Store
	now      func() time.Time
	commands *commands.Registry
	objects  *objects.Registry
	log      zerolog.Logger
}

// Option configures a Renderer
type Option func(*Renderer)

// WithCapabilities overrides the detected terminal capabilities
func WithCapabilities(caps terminal.Capabilities) Option {
	return func(r *Renderer) { r.caps = caps }
}

// WithGate installs an active-display gate queried at each pass start
func WithGate(g terminal.DisplayGate) Option {
	return func(r *Renderer) { r.gate = g }
}

// WithMacros installs the named-format-macro store backing the fmt command
func WithMacros(store macros.Store) Option {
	return func(r *Renderer) { r.store = store }
}

// WithClock injects the pass clock used by time objects without an explicit
// epoch. Renders stay deterministic under test.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// New creates a Renderer with the built-in registries
func New(opts ...Option) *Renderer {
	r := &Renderer{
		caps:  terminal.Default(),
		gate:  terminal.NoDisplay{},
		store: macros.NewMemoryStore(),
		now:   time.Now,
		log:   logging.GetLogger("render"),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.commands = commands.NewBuiltinRegistry(r.store)
	r.objects = objects.NewBuiltinRegistry(r.now)
	return r
}

// Commands exposes the command registry for runtime extensions
func (r *Renderer) Commands() *commands.Registry { return r.commands }

// Objects exposes the object registry for runtime extensions
func (r *Renderer) Objects() *objects.Registry { return r.objects }

// Macros exposes the format-macro store
func (r *Renderer) Macros() macros.Store { return r.store }

// RegisterCommand adds a command processor under a unique name. Lower
// priorities are scanned before the built-ins they precede.
func (r *Renderer) RegisterCommand(name string, priority int, p commands.Processor) error {
	return r.commands.Register(name, priority, p)
}

// RegisterObject adds an object processor for the type tags it declares
func (r *Renderer) RegisterObject(p objects.Processor) error {
	return r.objects.Register(p)
}

// Render runs one pass over the template with the given positional values
// and returns the four finished formats. Substitution values are consumed
// strictly in order; variable names never select a value.
func (r *Renderer) Render(template string, values ...interface{}) (Output, error) {
	gated, handle := false, terminal.DisplayHandle(nil)
	if r.gate != nil {
		gated, handle = r.gate.Active()
	}

	st := state.New(r.caps, values)
	if gated {
		st.SetGated(true)
	}

	r.log.Debug().
		Int("values", len(values)).
		Bool("gated", gated).
		Msg("render pass start")

	if err := r.run(parser.Parse(template), st); err != nil {
		return Output{}, err
	}

	// An unterminated box is closed implicitly at end of input.
	st.EndBox()
	st.MergeQueued()

	out := r.finalize(st)
	if gated && handle != nil {
		handle.Enqueue(out.Terminal, out.Plain, out.Markdown, out.HTML)
	}
	return out, nil
}

// run replays the pieces against the state
func (r *Renderer) run(pieces []parser.Piece, st *state.State) error {
	for _, piece := range pieces {
		switch piece.Kind {
		case parser.KindText:
			st.WriteText(piece.Text)
		case parser.KindCommand:
			if err := r.commands.ProcessGroup(piece.Raw, st); err != nil {
				return err
			}
		case parser.KindVariable:
			if err := r.substitute(piece.Name, st); err != nil {
				return err
			}
		case parser.KindObject:
			if err := r.applyObject(piece, st); err != nil {
				return err
			}
		}
	}
	return nil
}

// substitute consumes the next positional value for a variable. Exhaustion
// degrades to a visible placeholder, never an error.
func (r *Renderer) substitute(name string, st *state.State) error {
	v, err := st.NextValue()
	if err != nil {
		st.WriteText("[MISSING_VALUE_" + name + "]")
		return nil
	}

	if st.Debug() {
		writeDebugValue(st, v)
		return nil
	}

	if s, ok := v.(string); ok && parser.ContainsDirectives(s) {
		return r.splice(s, st)
	}
	st.WriteText(formatValue(v))
	return nil
}

// splice renders an FDL string embedded in a substitution value in an
// isolated pass and inserts its output at the current position. The nested
// pass has its own format state and no access to the outer values.
func (r *Renderer) splice(template string, st *state.State) error {
	sub := state.New(r.caps, nil)
	if err := r.run(parser.Parse(template), sub); err != nil {
		return err
	}
	sub.EndBox()

	var term, plain, markdown, html strings.Builder
	for _, seg := range sub.Segments() {
		term.WriteString(seg.Terminal)
		plain.WriteString(seg.Plain)
		markdown.WriteString(seg.Markdown)
		html.WriteString(seg.HTML)
	}
	st.WriteRendered(term.String(), plain.String(), markdown.String(), html.String())
	return nil
}

// applyObject dispatches an object piece. An unregistered type is a
// configuration bug raised to the caller; a processor error over the value
// stream degrades like a variable gap.
func (r *Renderer) applyObject(piece parser.Piece, st *state.State) error {
	p, err := r.objects.Lookup(piece.Type)
	if err != nil {
		return err
	}

	content, err := p.Apply(piece.Type, piece.Arg, st)
	switch {
	case errors.IsErrorCode(err, errors.ErrValuesExhausted):
		st.WriteText("[MISSING_VALUE_" + piece.Type + "]")
		return nil
	case err != nil:
		r.log.Debug().
			Str("type", piece.Type).
			Str("arg", piece.Arg).
			Err(err).
			Msg("object re-emitted as text")
		st.WriteText("<" + piece.Type + ":" + piece.Arg + ">")
		return nil
	}

	if st.Debug() && piece.Type == "type" {
		st.WriteColored(content, debugMagenta, false)
		return nil
	}
	st.WriteText(content)
	return nil
}

// finalize wraps, justifies and joins the accumulated segments into the
// four finished strings.
func (r *Renderer) finalize(st *state.State) Output {
	var termLines, plainLines []string
	var markdown, html strings.Builder

	for _, seg := range st.Segments() {
		if seg.Plain == "" && seg.Terminal == "" {
			continue
		}

		tl := layout.Wrap(strings.TrimSuffix(seg.Terminal, "\n"), r.caps.Width)
		pl := layout.Wrap(strings.TrimSuffix(seg.Plain, "\n"), r.caps.Width)
		tl, pl = layout.AlignStyled(tl, pl)
		if seg.Justify != layout.JustifyLeft {
			tl = layout.PadLines(tl, r.caps.Width, seg.Justify)
			pl = layout.PadLines(pl, r.caps.Width, seg.Justify)
		}
		termLines = append(termLines, tl...)
		plainLines = append(plainLines, pl...)

		markdown.WriteString(seg.Markdown)
		if seg.Justify != layout.JustifyLeft {
			html.WriteString(`<div style="text-align:` + seg.Justify.String() + `">`)
			html.WriteString(seg.HTML)
			html.WriteString("</div>")
		} else {
			html.WriteString(seg.HTML)
		}
	}

	term := strings.Join(termLines, "\n")
	if r.caps.SupportsColor && term != "" {
		term += color.Reset
	}

	return Output{
		Terminal: term,
		Plain:    strings.Join(plainLines, "\n"),
		Markdown: markdown.String(),
		HTML:     html.String(),
	}
}

// debug presentation colors, fixed regardless of ambient style
var (
	debugGreen   = mustColor("green")
	debugRed     = mustColor("red")
	debugCyan    = mustColor("cyan")
	debugBlue    = mustColor("blue")
	debugMagenta = mustColor("magenta")
)

func mustColor(name string) color.Spec {
	spec, err := color.Parse(name)
	if err != nil {
		panic("render: " + err.Error())
	}
	return spec
}

// writeDebugValue presents a substitution value with the fixed per-kind
// debug styling: booleans green/red, numerics cyan, nil blue, strings
// quoted with dimmed quote marks. A dim kind annotation follows.
func writeDebugValue(st *state.State, v interface{}) {
	kind := objects.KindName(v)
	switch val := v.(type) {
	case nil:
		st.WriteColored("none", debugBlue, false)
	case bool:
		c := debugGreen
		if !val {
			c = debugRed
		}
		st.WriteColored(strconv.FormatBool(val), c, false)
	case string:
		st.WriteDim(`"`)
		st.WriteText(val)
		st.WriteDim(`"`)
	default:
		if kind == "int" || kind == "float" {
			st.WriteColored(formatValue(v), debugCyan, false)
		} else {
			st.WriteText(formatValue(v))
		}
	}
	st.WriteDim(" (" + kind + ")")
}

// formatValue renders a substitution value as plain text
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "none"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
