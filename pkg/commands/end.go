package commands

import (
	"strings"

	"github.com/arthur-debert/fdl/pkg/errors"
	"github.com/arthur-debert/fdl/pkg/layout"
	"github.com/arthur-debert/fdl/pkg/state"
)

// endProcessor reverts one thing: an attribute, the foreground or
// background, justification, the open box, debug mode, or an active format
// macro. A target that opens nothing is structurally malformed and aborts
// the pass.
type endProcessor struct{}

func (endProcessor) CanProcess(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	return lower == "end" || strings.HasPrefix(lower, "end ")
}

func (endProcessor) Apply(raw string, st *state.State) error {
	target := strings.TrimSpace(strings.ToLower(strings.TrimSpace(raw))[len("end"):])
	if target == "" {
		return errors.New(errors.ErrMalformedGroup, "end requires a target")
	}

	switch target {
	case "bold":
		st.SetBold(false)
		return nil
	case "italic":
		st.SetItalic(false)
		return nil
	case "underline":
		st.SetUnderline(false)
		return nil
	case "strikethrough":
		st.SetStrikethrough(false)
		return nil
	case "color", "fg":
		st.SetForeground(nil)
		return nil
	case "bkg", "background":
		st.SetBackground(nil)
		return nil
	case "justify":
		st.SetJustify(layout.JustifyLeft)
		return nil
	case "box":
		// ending with no box open is a no-op
		st.EndBox()
		return nil
	case "debug":
		st.SetDebug(false)
		return nil
	}

	if looksLikeColor(target) {
		// "end red" and friends revert the foreground
		st.SetForeground(nil)
		return nil
	}

	if st.ActiveMacro(target) {
		st.EndMacro(target)
		return nil
	}

	return errors.Newf(errors.ErrMalformedGroup, "end target '%s' opens nothing", target)
}
