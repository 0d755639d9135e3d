// Package commands implements the command registry and the built-in command
// processors. Handlers are scanned in ascending priority order; the first
// whose predicate matches is applied. An unmatched command is re-emitted as
// literal text so template mistakes stay visible; only structurally
// malformed groups abort the pass.
package commands

import (
	"strings"

	"github.com/arthur-debert/fdl/pkg/logging"
	"github.com/arthur-debert/fdl/pkg/macros"
	"github.com/arthur-debert/fdl/pkg/registry"
	"github.com/arthur-debert/fdl/pkg/state"
)

// Processor is a stateless command handler: a predicate plus an application
// function that mutates format state.
type Processor interface {
	// CanProcess reports whether this processor claims the command text
	CanProcess(raw string) bool
	// Apply executes the command against the state
	Apply(raw string, st *state.State) error
}

// Registry scans processors in priority order
type Registry struct {
	list *registry.PriorityList[Processor]
}

// NewRegistry creates an empty command registry
func NewRegistry() *Registry {
	return &Registry{list: registry.NewPriorityList[Processor]()}
}

// Register adds a processor under a unique name. Lower priorities are
// scanned first. Duplicate names are a configuration error.
func (r *Registry) Register(name string, priority int, p Processor) error {
	return r.list.Add(name, priority, p)
}

// Builtin priorities. Gaps leave room for runtime-registered extensions.
const (
	PriorityAttr    = 10
	PriorityColor   = 20
	PriorityBkg     = 30
	PriorityJustify = 40
	PriorityBox     = 50
	PriorityTime    = 60
	PriorityDebug   = 70
	PriorityFmt     = 80
	PriorityReset   = 90
	PriorityEnd     = 100
)

// NewBuiltinRegistry returns a registry populated with every built-in
// processor. The macro store backs the fmt command.
func NewBuiltinRegistry(store macros.Store) *Registry {
	r := NewRegistry()
	mustRegister(r, "attr", PriorityAttr, &attrProcessor{})
	mustRegister(r, "color", PriorityColor, &colorProcessor{})
	mustRegister(r, "bkg", PriorityBkg, &bkgProcessor{})
	mustRegister(r, "justify", PriorityJustify, &justifyProcessor{})
	mustRegister(r, "box", PriorityBox, &boxProcessor{})
	mustRegister(r, "time", PriorityTime, &timeProcessor{})
	mustRegister(r, "debug", PriorityDebug, &debugProcessor{})
	mustRegister(r, "fmt", PriorityFmt, &fmtProcessor{store: store, apply: r.ProcessGroup})
	mustRegister(r, "reset", PriorityReset, &resetProcessor{})
	mustRegister(r, "end", PriorityEnd, &endProcessor{})
	return r
}

func mustRegister(r *Registry, name string, priority int, p Processor) {
	if err := r.Register(name, priority, p); err != nil {
		panic("commands: " + err.Error())
	}
}

// ProcessGroup applies a comma-separated command group. Groups opening a
// box are kept whole because a box title may itself contain commas.
func (r *Registry) ProcessGroup(raw string, st *state.State) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		st.WriteText("</" + raw + ">")
		return nil
	}

	lower := strings.ToLower(trimmed)
	if lower == "box" || strings.HasPrefix(lower, "box ") || strings.HasPrefix(lower, "box,") {
		return r.applyOne(trimmed, st)
	}

	for _, part := range strings.Split(trimmed, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := r.applyOne(part, st); err != nil {
			return err
		}
	}
	return nil
}

// applyOne dispatches a single command to the first claiming processor.
// Unmatched commands degrade to literal text.
func (r *Registry) applyOne(cmd string, st *state.State) error {
	var applyErr error
	handled := r.list.Scan(func(p Processor) bool {
		if !p.CanProcess(cmd) {
			return false
		}
		applyErr = p.Apply(cmd, st)
		return true
	})

	if !handled {
		log := logging.GetLogger("commands")
		log.Debug().Str("command", cmd).Msg("unmatched command re-emitted as text")
		st.WriteText("</" + cmd + ">")
	}
	return applyErr
}
