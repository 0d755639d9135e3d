// Package terminal describes the capabilities of the output terminal and
// the interfaces the renderer uses to cooperate with external displays.
// Probing the real terminal lives here; the render core only ever sees a
// Capabilities value.
package terminal

import (
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// DefaultWidth is assumed when the terminal width cannot be determined
const DefaultWidth = 80

// Capabilities describes what the output terminal can display
type Capabilities struct {
	Width                int
	SupportsColor        bool
	SupportsUnicodeBoxes bool
	Encoding             string
}

// Default returns capabilities for a standard color-capable UTF-8 terminal
func Default() Capabilities {
	return Capabilities{
		Width:                DefaultWidth,
		SupportsColor:        true,
		SupportsUnicodeBoxes: true,
		Encoding:             "utf-8",
	}
}

// Detect probes the environment for the capabilities of the given output.
// NO_COLOR, pipes/redirects and an Ascii termenv profile all disable color.
func Detect(output *os.File) Capabilities {
	caps := Default()

	if w := widthFromEnv(); w > 0 {
		caps.Width = w
	}

	if os.Getenv("NO_COLOR") != "" {
		caps.SupportsColor = false
	} else if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		caps.SupportsColor = false
	} else if termenv.ColorProfile() == termenv.Ascii {
		caps.SupportsColor = false
	}

	caps.Encoding = detectEncoding()
	caps.SupportsUnicodeBoxes = strings.Contains(caps.Encoding, "utf")

	return caps
}

func widthFromEnv() int {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

func detectEncoding() string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		val := os.Getenv(key)
		if val == "" {
			continue
		}
		if idx := strings.IndexByte(val, '.'); idx >= 0 {
			return strings.ToLower(val[idx+1:])
		}
	}
	return "utf-8"
}
