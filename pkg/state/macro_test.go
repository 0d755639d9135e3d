package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fdl/pkg/color"
)

func mustColor(t *testing.T, name string) *color.Spec {
	t.Helper()
	c, err := color.Parse(name)
	require.NoError(t, err)
	return &c
}

func TestMacroRevertsOwnChanges(t *testing.T) {
	s := newState()

	s.BeginMacro("alert")
	s.SetBold(true)
	s.SetForeground(mustColor(t, "red"))
	s.SealMacro("alert")

	require.True(t, s.EndMacro("alert"))
	assert.Equal(t, Attrs{}, s.Attrs())
}

func TestMacroLeavesLaterChangesAlone(t *testing.T) {
	s := newState()

	s.BeginMacro("alert")
	s.SetBold(true)
	s.SetForeground(mustColor(t, "red"))
	s.SealMacro("alert")

	// the template changes the color again after the macro
	s.SetForeground(mustColor(t, "blue"))

	require.True(t, s.EndMacro("alert"))
	assert.False(t, s.Attrs().Bold, "bold was macro-owned, reverted")
	require.NotNil(t, s.Attrs().Foreground)
	assert.Equal(t, "blue", s.Attrs().Foreground.Name, "foreground changed since, left alone")
}

func TestMacroOnlyRevertsTouchedAttrs(t *testing.T) {
	s := newState()
	s.SetItalic(true)

	s.BeginMacro("alert")
	s.SetBold(true)
	s.SealMacro("alert")

	require.True(t, s.EndMacro("alert"))
	assert.True(t, s.Attrs().Italic, "italic predates the macro")
	assert.False(t, s.Attrs().Bold)
}

func TestMacroPreservesPriorValue(t *testing.T) {
	s := newState()
	s.SetForeground(mustColor(t, "green"))

	s.BeginMacro("alert")
	s.SetForeground(mustColor(t, "red"))
	s.SealMacro("alert")

	require.True(t, s.EndMacro("alert"))
	require.NotNil(t, s.Attrs().Foreground)
	assert.Equal(t, "green", s.Attrs().Foreground.Name)
}

func TestEndUnknownMacro(t *testing.T) {
	s := newState()

	assert.False(t, s.EndMacro("never_opened"))
	assert.False(t, s.ActiveMacro("never_opened"))
}

func TestActiveMacro(t *testing.T) {
	s := newState()
	s.BeginMacro("m")
	assert.False(t, s.ActiveMacro("m"), "unsealed frames are not active")

	s.SealMacro("m")
	assert.True(t, s.ActiveMacro("m"))

	require.True(t, s.EndMacro("m"))
	assert.False(t, s.ActiveMacro("m"))
}
