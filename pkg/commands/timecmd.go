package commands

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/fdl/pkg/state"
)

// tzOffsets is the fixed abbreviation -> offset-in-minutes table. Time
// objects do no real timezone resolution; this closed table is the whole
// surface.
var tzOffsets = map[string]int{
	"UTC":  0,
	"GMT":  0,
	"EST":  -5 * 60,
	"EDT":  -4 * 60,
	"CST":  -6 * 60,
	"CDT":  -5 * 60,
	"MST":  -7 * 60,
	"MDT":  -6 * 60,
	"PST":  -8 * 60,
	"PDT":  -7 * 60,
	"BST":  60,
	"CET":  60,
	"CEST": 2 * 60,
	"IST":  5*60 + 30,
	"JST":  9 * 60,
	"AEST": 10 * 60,
	"AEDT": 11 * 60,
	"NZST": 12 * 60,
}

// TZOffset looks up a timezone abbreviation
func TZOffset(abbrev string) (int, bool) {
	offset, ok := tzOffsets[strings.ToUpper(strings.TrimSpace(abbrev))]
	return offset, ok
}

// timeProcessor handles the time-format commands: 12hr|24hr, tz <abbrev>,
// decimals <0-10>, smart time <digit>, seconds on|off. Invalid arguments
// leave the command unmatched so it degrades to literal text.
type timeProcessor struct{}

func (timeProcessor) CanProcess(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	switch lower {
	case "12hr", "24hr", "seconds on", "seconds off":
		return true
	}
	switch {
	case strings.HasPrefix(lower, "tz "):
		_, ok := TZOffset(lower[len("tz "):])
		return ok
	case strings.HasPrefix(lower, "decimals "):
		n, err := strconv.Atoi(strings.TrimSpace(lower[len("decimals "):]))
		return err == nil && n >= 0 && n <= 10
	case strings.HasPrefix(lower, "smart time "):
		n, err := strconv.Atoi(strings.TrimSpace(lower[len("smart time "):]))
		return err == nil && n >= 1 && n <= 9
	}
	return false
}

func (timeProcessor) Apply(raw string, st *state.State) error {
	lower := strings.ToLower(strings.TrimSpace(raw))
	times := st.Times()

	switch lower {
	case "12hr":
		times.Use24h = false
		return nil
	case "24hr":
		times.Use24h = true
		return nil
	case "seconds on":
		times.ShowSeconds = true
		return nil
	case "seconds off":
		times.ShowSeconds = false
		return nil
	}

	switch {
	case strings.HasPrefix(lower, "tz "):
		abbrev := strings.ToUpper(strings.TrimSpace(lower[len("tz "):]))
		offset, _ := TZOffset(abbrev)
		times.TZName = abbrev
		times.TZOffsetMin = offset
	case strings.HasPrefix(lower, "decimals "):
		n, _ := strconv.Atoi(strings.TrimSpace(lower[len("decimals "):]))
		times.Decimals = n
	case strings.HasPrefix(lower, "smart time "):
		n, _ := strconv.Atoi(strings.TrimSpace(lower[len("smart time "):]))
		times.SmartUnits = n
	}
	return nil
}
