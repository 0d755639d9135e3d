// Package fdl is the public entry point of the engine. A template mixes
// literal text with <name> variables, </command, ...> command groups and
// <type:arg> objects; rendering produces four synchronized formats from one
// pass over the template and an ordered sequence of positional values.
//
// Most callers need only Render:
//
//	out, err := fdl.Render("Hello </bold><name></end bold>!", "World")
//
// Callers that reuse a configuration build a Renderer once with New and the
// functional options re-exported here.
package fdl

import (
	"github.com/arthur-debert/fdl/pkg/render"
)

// Output holds the four synchronized renderings of one pass
type Output = render.Output

// Renderer is a reusable rendering pipeline
type Renderer = render.Renderer

// Option configures a Renderer
type Option = render.Option

// Re-exported Renderer options
var (
	WithCapabilities = render.WithCapabilities
	WithGate         = render.WithGate
	WithMacros       = render.WithMacros
	WithClock        = render.WithClock
)

// New creates a Renderer with the built-in command and object registries
func New(opts ...Option) *Renderer {
	return render.New(opts...)
}

// Render runs one pass with a throwaway default Renderer
func Render(template string, values ...interface{}) (Output, error) {
	return New().Render(template, values...)
}

// Plain renders and returns only the plain-text format
func Plain(template string, values ...interface{}) (string, error) {
	out, err := Render(template, values...)
	return out.Plain, err
}
