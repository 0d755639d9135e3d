package commands

import (
	"strings"

	"github.com/arthur-debert/fdl/pkg/macros"
	"github.com/arthur-debert/fdl/pkg/state"
)

// fmtProcessor expands a named format macro: "fmt <name>". The expansion is
// a raw command string from the store, applied as a normal group; the
// attribute diff it produces is recorded so "end <name>" can revert exactly
// that diff. Unknown names leave the command unmatched.
type fmtProcessor struct {
	store macros.Store
	apply func(raw string, st *state.State) error
}

func (p *fmtProcessor) CanProcess(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if !strings.HasPrefix(lower, "fmt ") {
		return false
	}
	return p.store != nil && p.store.Has(strings.TrimSpace(lower[len("fmt "):]))
}

func (p *fmtProcessor) Apply(raw string, st *state.State) error {
	name := strings.TrimSpace(strings.ToLower(strings.TrimSpace(raw))[len("fmt "):])
	expansion, err := p.store.Get(name)
	if err != nil {
		return err
	}

	st.BeginMacro(name)
	if err := p.apply(expansion, st); err != nil {
		return err
	}
	st.SealMacro(name)
	return nil
}
