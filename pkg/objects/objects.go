// Package objects implements the object registry and the built-in object
// processors. Objects use the <type:arg> syntax: they read format state and
// positional values and emit content. The set of supported types is closed
// at startup; an unregistered type is a configuration bug surfaced to the
// caller, not a render-time degradation.
package objects

import (
	"reflect"
	"time"

	"github.com/arthur-debert/fdl/pkg/errors"
	"github.com/arthur-debert/fdl/pkg/registry"
	"github.com/arthur-debert/fdl/pkg/state"
)

// Processor handles one or more object type tags
type Processor interface {
	// Types returns the type tags this processor claims
	Types() []string
	// Apply renders the object and returns its content
	Apply(objType, arg string, st *state.State) (string, error)
}

// Registry maps type tags to processors. Overlapping claims across
// processors are rejected at registration.
type Registry struct {
	byType registry.Registry[Processor]
}

// NewRegistry creates an empty object registry
func NewRegistry() *Registry {
	return &Registry{byType: registry.New[Processor]()}
}

// Register claims every type tag the processor declares
func (r *Registry) Register(p Processor) error {
	for _, tag := range p.Types() {
		if err := r.byType.Register(tag, p); err != nil {
			return err
		}
	}
	return nil
}

// Lookup resolves a type tag to its processor
func (r *Registry) Lookup(objType string) (Processor, error) {
	p, err := r.byType.Get(objType)
	if err != nil {
		return nil, errors.Newf(errors.ErrUnsupportedType,
			"no processor registered for object type '%s'", objType)
	}
	return p, nil
}

// Types returns all registered type tags
func (r *Registry) Types() []string {
	return r.byType.List()
}

// NewBuiltinRegistry returns a registry with the time family and type
// introspection registered. The clock is injected so renders stay
// deterministic under test.
func NewBuiltinRegistry(now func() time.Time) *Registry {
	r := NewRegistry()
	if now == nil {
		now = time.Now
	}
	for _, p := range []Processor{
		&TimeProcessor{Now: now},
		&TypeProcessor{},
	} {
		if err := r.Register(p); err != nil {
			panic("objects: " + err.Error())
		}
	}
	return r
}

// KindName names the runtime kind of a substitution value the way debug
// output and the type object present it.
func KindName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case bool:
		return "bool"
	case string:
		return "string"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "int"
	case float32, float64:
		return "float"
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map:
		return "map"
	default:
		return reflect.TypeOf(v).Kind().String()
	}
}

// TypeProcessor implements the type introspection object: it consumes the
// next positional value and returns its kind name.
type TypeProcessor struct{}

// Types returns the claimed type tags
func (TypeProcessor) Types() []string { return []string{"type"} }

// Apply consumes the next value and names its kind
func (TypeProcessor) Apply(_, _ string, st *state.State) (string, error) {
	v, err := st.NextValue()
	if err != nil {
		return "", err
	}
	return KindName(v), nil
}
