package fdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fdl/pkg/layout"
	"github.com/arthur-debert/fdl/pkg/terminal"
)

func TestRender(t *testing.T) {
	out, err := Render("Hello <name>!", "World")
	require.NoError(t, err)

	assert.Equal(t, "Hello World!", out.Plain)
	assert.Equal(t, "Hello World!", layout.StripANSI(out.Terminal))
}

func TestPlain(t *testing.T) {
	got, err := Plain("</bold><n></end bold> done", 2)
	require.NoError(t, err)

	assert.Equal(t, "2 done", got)
}

func TestNewWithOptions(t *testing.T) {
	r := New(WithCapabilities(terminal.Capabilities{
		Width:                10,
		SupportsColor:        true,
		SupportsUnicodeBoxes: true,
		Encoding:             "utf-8",
	}))

	out, err := r.Render("</justify right>Hi")
	require.NoError(t, err)

	assert.Equal(t, "        Hi", out.Plain)
}
