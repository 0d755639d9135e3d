package commands

import (
	"strings"

	"github.com/arthur-debert/fdl/pkg/color"
	"github.com/arthur-debert/fdl/pkg/logging"
	"github.com/arthur-debert/fdl/pkg/state"
)

// attrProcessor handles the four text attribute toggles
type attrProcessor struct{}

func (attrProcessor) CanProcess(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "bold", "italic", "underline", "strikethrough":
		return true
	}
	return false
}

func (attrProcessor) Apply(raw string, st *state.State) error {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "bold":
		st.SetBold(true)
	case "italic":
		st.SetItalic(true)
	case "underline":
		st.SetUnderline(true)
	case "strikethrough":
		st.SetStrikethrough(true)
	}
	return nil
}

// looksLikeColor reports whether raw is shaped like a color descriptor.
// Shape only: an invalid hex still claims the command so it degrades to a
// warning rather than literal re-emission.
func looksLikeColor(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	return color.IsNamed(lower) ||
		strings.HasPrefix(lower, "#") ||
		strings.HasPrefix(lower, "rgb(")
}

// colorProcessor sets the foreground from a bare color descriptor
type colorProcessor struct{}

func (colorProcessor) CanProcess(raw string) bool {
	return looksLikeColor(raw)
}

func (colorProcessor) Apply(raw string, st *state.State) error {
	spec, err := color.Parse(raw)
	if err != nil {
		log := logging.GetLogger("commands")
		log.Warn().Err(err).Str("color", raw).Msg("invalid color spec ignored")
		return nil
	}
	st.SetForeground(&spec)
	return nil
}

// bkgProcessor sets the background: "bkg <color>"
type bkgProcessor struct{}

func (bkgProcessor) CanProcess(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	return strings.HasPrefix(lower, "bkg ")
}

func (bkgProcessor) Apply(raw string, st *state.State) error {
	arg := strings.TrimSpace(strings.TrimSpace(raw)[len("bkg"):])
	spec, err := color.Parse(arg)
	if err != nil {
		log := logging.GetLogger("commands")
		log.Warn().Err(err).Str("color", arg).Msg("invalid background color ignored")
		return nil
	}
	st.SetBackground(&spec)
	return nil
}

// resetProcessor reverts every attribute
type resetProcessor struct{}

func (resetProcessor) CanProcess(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "reset")
}

func (resetProcessor) Apply(_ string, st *state.State) error {
	st.ResetAll()
	return nil
}
