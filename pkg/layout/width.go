// Package layout implements the text layout engine: Unicode visual-width
// measurement, word wrapping, justification and box-border synthesis. All
// functions are stateless over strings and a target width; ANSI escape
// sequences never count toward a measurement and are never split.
package layout

import (
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// StripANSI removes all ANSI escape sequences from s
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisualWidth returns the on-screen column count of s: escape sequences are
// stripped, double-width glyphs count as two columns and zero-width marks as
// none.
func VisualWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// FallbackWidth approximates the visual width by raw character count. Used
// when the terminal encoding gives no reliable width tables.
func FallbackWidth(s string) int {
	return utf8.RuneCountInString(ansi.Strip(s))
}
