package commands

import (
	"strings"

	"github.com/arthur-debert/fdl/pkg/state"
)

// debugProcessor enters debug substitution mode. Entering clears ambient
// style; "end debug" is handled by the end processor.
type debugProcessor struct{}

func (debugProcessor) CanProcess(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "debug")
}

func (debugProcessor) Apply(_ string, st *state.State) error {
	st.SetDebug(true)
	return nil
}
