package commands

import (
	"strings"

	"github.com/arthur-debert/fdl/pkg/color"
	"github.com/arthur-debert/fdl/pkg/layout"
	"github.com/arthur-debert/fdl/pkg/logging"
	"github.com/arthur-debert/fdl/pkg/state"
)

// justifyProcessor handles "justify left|center|right". An unknown
// direction leaves the command unmatched so it re-emits as literal text.
type justifyProcessor struct{}

func (justifyProcessor) CanProcess(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if !strings.HasPrefix(lower, "justify ") {
		return false
	}
	_, ok := layout.ParseJustify(lower[len("justify "):])
	return ok
}

func (justifyProcessor) Apply(raw string, st *state.State) error {
	lower := strings.ToLower(strings.TrimSpace(raw))
	j, _ := layout.ParseJustify(lower[len("justify "):])
	st.SetJustify(j)
	return nil
}

// boxProcessor opens a box:
//
//	box <style>[, title <text>][, <color>][, bkg <color>][, justify <dir>]
//
// The group splitter hands the whole raw group here because a title may
// contain commas: after "title", chunks fold into the title until one
// parses as a recognized option.
type boxProcessor struct{}

func (boxProcessor) CanProcess(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	return lower == "box" || strings.HasPrefix(lower, "box ") || strings.HasPrefix(lower, "box,")
}

func (boxProcessor) Apply(raw string, st *state.State) error {
	opts := parseBoxOptions(strings.TrimSpace(raw)[len("box"):])
	st.StartBox(opts)
	return nil
}

func parseBoxOptions(rest string) state.BoxOptions {
	var opts state.BoxOptions
	log := logging.GetLogger("commands")

	chunks := strings.Split(rest, ",")
	inTitle := false
	for i, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		lower := strings.ToLower(chunk)

		switch {
		case i == 0:
			opts.StyleName = lower
			continue
		case strings.HasPrefix(lower, "title ") || lower == "title":
			opts.Title = strings.TrimSpace(chunk[len("title"):])
			inTitle = true
			continue
		case strings.HasPrefix(lower, "bkg "):
			if spec, err := color.Parse(strings.TrimSpace(chunk[len("bkg"):])); err == nil {
				opts.Background = &spec
			} else {
				log.Warn().Str("chunk", chunk).Msg("invalid box background ignored")
			}
			inTitle = false
			continue
		case strings.HasPrefix(lower, "justify "):
			if j, ok := layout.ParseJustify(lower[len("justify "):]); ok {
				opts.Justify = j
			} else {
				log.Warn().Str("chunk", chunk).Msg("invalid box justify ignored")
			}
			inTitle = false
			continue
		case looksLikeColor(chunk):
			if spec, err := color.Parse(chunk); err == nil {
				opts.Color = &spec
			} else {
				log.Warn().Str("chunk", chunk).Msg("invalid box color ignored")
			}
			inTitle = false
			continue
		case inTitle:
			// Not a recognized option: part of a comma-bearing title.
			opts.Title += ", " + chunk
			continue
		default:
			log.Warn().Str("chunk", chunk).Msg("unrecognized box option ignored")
		}
	}
	return opts
}
