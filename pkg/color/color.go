// Package color converts named, hex and rgb() color descriptors into ANSI
// escape sequences and CSS strings. Conversions are pure and cached; an
// invalid descriptor is an error for the caller to downgrade to a warning,
// never a render-time panic.
package color

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/arthur-debert/fdl/pkg/errors"
)

// Kind discriminates the three accepted color descriptor forms
type Kind int

const (
	// KindNamed is a palette color looked up by name
	KindNamed Kind = iota
	// KindHex is a #RGB or #RRGGBB descriptor
	KindHex
	// KindRGB is an rgb(r,g,b) descriptor
	KindRGB
)

// Spec is a parsed color descriptor. Named specs carry their palette entry;
// hex and rgb specs carry resolved channel values.
type Spec struct {
	Kind    Kind
	Name    string
	R, G, B uint8
}

// namedEntry maps a palette name to its ANSI codes and CSS name
type namedEntry struct {
	fg  string // SGR parameters for foreground
	bg  string // SGR parameters for background
	css string
}

// The named palette. The classic eight use 16-color SGR codes so output
// stays legible on limited terminals; the extended names use 256-color codes.
var palette = map[string]namedEntry{
	"black":   {fg: "30", bg: "40", css: "black"},
	"red":     {fg: "31", bg: "41", css: "red"},
	"green":   {fg: "32", bg: "42", css: "green"},
	"yellow":  {fg: "33", bg: "43", css: "yellow"},
	"blue":    {fg: "34", bg: "44", css: "blue"},
	"magenta": {fg: "35", bg: "45", css: "magenta"},
	"cyan":    {fg: "36", bg: "46", css: "cyan"},
	"white":   {fg: "37", bg: "47", css: "white"},
	"gray":    {fg: "90", bg: "100", css: "gray"},
	"grey":    {fg: "90", bg: "100", css: "gray"},
	"orange":  {fg: "38;5;208", bg: "48;5;208", css: "orange"},
	"purple":  {fg: "38;5;129", bg: "48;5;129", css: "purple"},
	"pink":    {fg: "38;5;205", bg: "48;5;205", css: "pink"},
	"teal":    {fg: "38;5;30", bg: "48;5;30", css: "teal"},
	"brown":   {fg: "38;5;94", bg: "48;5;94", css: "brown"},
}

// Universal sequences shared by every renderer
const (
	// Reset clears all attributes
	Reset = "\x1b[0m"
	// ResetForeground restores the default foreground
	ResetForeground = "\x1b[39m"
	// ResetBackground restores the default background
	ResetBackground = "\x1b[49m"
)

var (
	cacheMu sync.RWMutex
	cache   = map[string]Spec{}
)

// IsNamed reports whether s is a palette color name
func IsNamed(s string) bool {
	_, ok := palette[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// Parse converts a descriptor into a Spec. Accepted forms: a palette name,
// #RGB / #RRGGBB, rgb(r,g,b).
func Parse(s string) (Spec, error) {
	key := strings.ToLower(strings.TrimSpace(s))

	cacheMu.RLock()
	if spec, ok := cache[key]; ok {
		cacheMu.RUnlock()
		return spec, nil
	}
	cacheMu.RUnlock()

	spec, err := parse(key)
	if err != nil {
		return Spec{}, err
	}

	cacheMu.Lock()
	cache[key] = spec
	cacheMu.Unlock()
	return spec, nil
}

func parse(key string) (Spec, error) {
	if _, ok := palette[key]; ok {
		return Spec{Kind: KindNamed, Name: key}, nil
	}

	if strings.HasPrefix(key, "#") {
		c, err := colorful.Hex(key)
		if err != nil {
			return Spec{}, errors.Wrapf(err, errors.ErrInvalidColor, "invalid hex color %q", key)
		}
		r, g, b := c.RGB255()
		return Spec{Kind: KindHex, R: r, G: g, B: b}, nil
	}

	if strings.HasPrefix(key, "rgb(") && strings.HasSuffix(key, ")") {
		return parseRGB(key)
	}

	return Spec{}, errors.Newf(errors.ErrInvalidColor, "unrecognized color %q", key)
}

func parseRGB(key string) (Spec, error) {
	inner := key[len("rgb(") : len(key)-1]
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return Spec{}, errors.Newf(errors.ErrInvalidColor, "rgb() needs three components, got %q", key)
	}

	var ch [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return Spec{}, errors.Newf(errors.ErrInvalidColor, "rgb() component out of range in %q", key)
		}
		ch[i] = uint8(n)
	}
	return Spec{Kind: KindRGB, R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Foreground returns the ANSI escape sequence selecting this color as the
// text color
func (s Spec) Foreground() string {
	return "\x1b[" + s.sgr(false) + "m"
}

// Background returns the ANSI escape sequence selecting this color as the
// background color
func (s Spec) Background() string {
	return "\x1b[" + s.sgr(true) + "m"
}

func (s Spec) sgr(background bool) string {
	if s.Kind == KindNamed {
		entry := palette[s.Name]
		if background {
			return entry.bg
		}
		return entry.fg
	}
	prefix := "38;2;"
	if background {
		prefix = "48;2;"
	}
	return prefix + fmt.Sprintf("%d;%d;%d", s.R, s.G, s.B)
}

// CSS returns the canonical CSS representation: the color name for palette
// entries, a #rrggbb hex string otherwise.
func (s Spec) CSS() string {
	if s.Kind == KindNamed {
		return palette[s.Name].css
	}
	return fmt.Sprintf("#%02x%02x%02x", s.R, s.G, s.B)
}

// String implements fmt.Stringer
func (s Spec) String() string {
	if s.Kind == KindNamed {
		return s.Name
	}
	return s.CSS()
}
