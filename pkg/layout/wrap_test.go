package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapFitsUnchanged(t *testing.T) {
	assert.Equal(t, []string{"hello"}, Wrap("hello", 10))
}

func TestWrapAtWhitespace(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, Wrap("hello world", 5))
}

func TestWrapWhitespacePreferredOverPunctuation(t *testing.T) {
	// "ab,cd ef" at width 7: the space wins even though the comma is a
	// candidate closer to the start
	assert.Equal(t, []string{"ab,cd", "efgh"}, Wrap("ab,cd efgh", 7))
}

func TestWrapAtPunctuation(t *testing.T) {
	assert.Equal(t, []string{"foo,", "bar"}, Wrap("foo,bar", 5))
}

func TestWrapAtSlash(t *testing.T) {
	assert.Equal(t, []string{"foo/", "bar"}, Wrap("foo/bar", 5))
	assert.Equal(t, []string{"foo\\", "bar"}, Wrap("foo\\bar", 5))
}

func TestWrapAtDash(t *testing.T) {
	assert.Equal(t, []string{"foo-", "bar"}, Wrap("foo-bar", 5))
}

func TestWrapSlashBeatsDash(t *testing.T) {
	// both a slash and a dash are candidates; slash ranks higher
	assert.Equal(t, []string{"a-b/", "cdef"}, Wrap("a-b/cdef", 5))
}

func TestWrapForceSplitsOversizeToken(t *testing.T) {
	lines := Wrap("abcdefgh", 3)

	assert.Equal(t, []string{"abc", "def", "gh"}, lines)
	for _, line := range lines {
		assert.LessOrEqual(t, VisualWidth(line), 3)
	}
}

func TestWrapHardNewlines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Wrap("a\nb", 10))
	assert.Equal(t, []string{"a", "", "b"}, Wrap("a\n\nb", 10))
}

func TestWrapEmptyInput(t *testing.T) {
	assert.Equal(t, []string{""}, Wrap("", 10))
}

func TestWrapKeepsANSISequences(t *testing.T) {
	lines := Wrap("\x1b[31mhello\x1b[0m world", 5)

	require.Len(t, lines, 2)
	assert.Equal(t, "\x1b[31mhello\x1b[0m", lines[0])
	assert.Equal(t, "world", lines[1])
	assert.Equal(t, 5, VisualWidth(lines[0]))
}

func TestAlignStyledFoldsTrailingEscapeLine(t *testing.T) {
	styled, plain := AlignStyled([]string{"abc", "\x1b[31m"}, []string{"abc"})

	assert.Equal(t, []string{"abc\x1b[31m"}, styled)
	assert.Equal(t, []string{"abc"}, plain)
}

func TestAlignStyledPadsToEqualLength(t *testing.T) {
	styled, plain := AlignStyled([]string{"a"}, []string{"a", "b"})

	require.Len(t, styled, 2)
	assert.Equal(t, "", styled[1])
	assert.Equal(t, []string{"a", "b"}, plain)
}

func TestAlignStyledEqualSlicesUntouched(t *testing.T) {
	styled, plain := AlignStyled([]string{"a", "b"}, []string{"a", "b"})

	assert.Equal(t, []string{"a", "b"}, styled)
	assert.Equal(t, []string{"a", "b"}, plain)
}

func TestWrapSkipsLeadingSpaceOnContinuation(t *testing.T) {
	assert.Equal(t, []string{"aa", "bb"}, Wrap("aa  bb", 3))
}

func TestWrapDoubleWidthGlyphs(t *testing.T) {
	// each CJK glyph is two columns wide
	lines := Wrap("你好世界", 4)

	assert.Equal(t, []string{"你好", "世界"}, lines)
}

func TestWrapperRestartable(t *testing.T) {
	w := NewWrapper("one two three", 5)

	first, ok := w.Next()
	require.True(t, ok)
	assert.Equal(t, "one", first)

	second, ok := w.Next()
	require.True(t, ok)
	assert.Equal(t, "two", second)

	third, ok := w.Next()
	require.True(t, ok)
	assert.Equal(t, "three", third)

	_, ok = w.Next()
	assert.False(t, ok)
}

func TestWrapWidthProperty(t *testing.T) {
	const width = 12
	input := "The quick brown-fox jumps/over, the lazy dog near a riverbank"

	for _, line := range Wrap(input, width) {
		assert.LessOrEqual(t, VisualWidth(line), width, "line %q", line)
	}
}
