package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fdl/pkg/errors"
	"github.com/arthur-debert/fdl/pkg/layout"
	"github.com/arthur-debert/fdl/pkg/macros"
	"github.com/arthur-debert/fdl/pkg/state"
	"github.com/arthur-debert/fdl/pkg/terminal"
)

func newTestRegistry(t *testing.T) (*Registry, *state.State) {
	t.Helper()
	store := macros.NewMemoryStore()
	require.NoError(t, store.Define("alert", "bold, red"))
	return NewBuiltinRegistry(store), state.New(terminal.Default(), nil)
}

func plainOf(st *state.State) string {
	var sb strings.Builder
	for _, v := range st.Segments() {
		sb.WriteString(v.Plain)
	}
	return sb.String()
}

func terminalOf(st *state.State) string {
	var sb strings.Builder
	for _, v := range st.Segments() {
		sb.WriteString(v.Terminal)
	}
	return sb.String()
}

func TestAttrCommands(t *testing.T) {
	tests := []struct {
		raw   string
		check func(a state.Attrs) bool
	}{
		{"bold", func(a state.Attrs) bool { return a.Bold }},
		{"italic", func(a state.Attrs) bool { return a.Italic }},
		{"underline", func(a state.Attrs) bool { return a.Underline }},
		{"strikethrough", func(a state.Attrs) bool { return a.Strikethrough }},
		{"BOLD", func(a state.Attrs) bool { return a.Bold }},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			reg, st := newTestRegistry(t)

			require.NoError(t, reg.ProcessGroup(tt.raw, st))
			assert.True(t, tt.check(st.Attrs()))
		})
	}
}

func TestColorCommand(t *testing.T) {
	reg, st := newTestRegistry(t)

	require.NoError(t, reg.ProcessGroup("red", st))

	require.NotNil(t, st.Attrs().Foreground)
	assert.Equal(t, "red", st.Attrs().Foreground.Name)
}

func TestHexAndRGBCommands(t *testing.T) {
	reg, st := newTestRegistry(t)

	require.NoError(t, reg.ProcessGroup("#ff0000", st))
	require.NotNil(t, st.Attrs().Foreground)

	require.NoError(t, reg.ProcessGroup("rgb(0, 128, 255)", st))
	require.NotNil(t, st.Attrs().Foreground)
	assert.Equal(t, uint8(128), st.Attrs().Foreground.G)
}

func TestInvalidColorWarnsAndContinues(t *testing.T) {
	reg, st := newTestRegistry(t)

	require.NoError(t, reg.ProcessGroup("#notahex", st))

	assert.Nil(t, st.Attrs().Foreground, "invalid color leaves state untouched")
	assert.Empty(t, plainOf(st), "no literal re-emission for shaped-but-invalid colors")
}

func TestBkgCommand(t *testing.T) {
	reg, st := newTestRegistry(t)

	require.NoError(t, reg.ProcessGroup("bkg blue", st))

	require.NotNil(t, st.Attrs().Background)
	assert.Equal(t, "blue", st.Attrs().Background.Name)
}

func TestCommandGroupAppliesAll(t *testing.T) {
	reg, st := newTestRegistry(t)

	require.NoError(t, reg.ProcessGroup("bold, red", st))

	assert.True(t, st.Attrs().Bold)
	require.NotNil(t, st.Attrs().Foreground)
	assert.Equal(t, "red", st.Attrs().Foreground.Name)
}

func TestUnmatchedCommandReEmitted(t *testing.T) {
	reg, st := newTestRegistry(t)

	require.NoError(t, reg.ProcessGroup("blink", st))

	assert.Equal(t, "</blink>", plainOf(st))
}

func TestJustifyCommand(t *testing.T) {
	reg, st := newTestRegistry(t)

	require.NoError(t, reg.ProcessGroup("justify center", st))
	assert.Equal(t, layout.JustifyCenter, st.Justify())

	require.NoError(t, reg.ProcessGroup("end justify", st))
	assert.Equal(t, layout.JustifyLeft, st.Justify())
}

func TestJustifyUnknownDirectionIsLiteral(t *testing.T) {
	reg, st := newTestRegistry(t)

	require.NoError(t, reg.ProcessGroup("justify diagonal", st))

	assert.Equal(t, "</justify diagonal>", plainOf(st))
}

func TestEndCommands(t *testing.T) {
	reg, st := newTestRegistry(t)

	require.NoError(t, reg.ProcessGroup("bold, red, bkg blue", st))
	require.NoError(t, reg.ProcessGroup("end bold", st))
	require.NoError(t, reg.ProcessGroup("end red", st))
	require.NoError(t, reg.ProcessGroup("end bkg", st))

	assert.Equal(t, state.Attrs{}, st.Attrs())
}

func TestEndColorEmitsDefaultForeground(t *testing.T) {
	reg, st := newTestRegistry(t)

	require.NoError(t, reg.ProcessGroup("red", st))
	st.WriteText("Error")
	require.NoError(t, reg.ProcessGroup("end red", st))

	assert.Equal(t, "\x1b[31mError\x1b[39m", terminalOf(st))
}

func TestEndUnknownTargetAbortsPass(t *testing.T) {
	reg, st := newTestRegistry(t)

	err := reg.ProcessGroup("end nothing_open", st)

	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedGroup))
}

func TestResetCommand(t *testing.T) {
	reg, st := newTestRegistry(t)

	require.NoError(t, reg.ProcessGroup("bold, italic, red", st))
	require.NoError(t, reg.ProcessGroup("reset", st))

	assert.Equal(t, state.Attrs{}, st.Attrs())
}

func TestDebugCommands(t *testing.T) {
	reg, st := newTestRegistry(t)

	require.NoError(t, reg.ProcessGroup("debug", st))
	assert.True(t, st.Debug())

	require.NoError(t, reg.ProcessGroup("end debug", st))
	assert.False(t, st.Debug())
}

func TestFmtMacroExpandsAndReverts(t *testing.T) {
	reg, st := newTestRegistry(t)

	require.NoError(t, reg.ProcessGroup("fmt alert", st))
	assert.True(t, st.Attrs().Bold)
	require.NotNil(t, st.Attrs().Foreground)

	require.NoError(t, reg.ProcessGroup("end alert", st))
	assert.Equal(t, state.Attrs{}, st.Attrs())
}

func TestFmtUnknownMacroIsLiteral(t *testing.T) {
	reg, st := newTestRegistry(t)

	require.NoError(t, reg.ProcessGroup("fmt shiny", st))

	assert.Equal(t, "</fmt shiny>", plainOf(st))
}

func TestCustomProcessorPriority(t *testing.T) {
	reg, st := newTestRegistry(t)

	// a runtime extension registered ahead of the builtin color processor
	require.NoError(t, reg.Register("custom-red", 5, claimAll{}))
	require.NoError(t, reg.ProcessGroup("red", st))

	assert.Nil(t, st.Attrs().Foreground, "extension claimed the command first")
}

type claimAll struct{}

func (claimAll) CanProcess(string) bool               { return true }
func (claimAll) Apply(_ string, _ *state.State) error { return nil }

func TestDuplicateRegistrationRejected(t *testing.T) {
	reg, _ := newTestRegistry(t)

	err := reg.Register("attr", 99, claimAll{})

	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}
