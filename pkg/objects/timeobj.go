package objects

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/fdl/pkg/state"
)

// TimeProcessor implements the time object family. Timestamps are Unix
// epoch floats decomposed by manual arithmetic, without a calendar library
// or time.Location; the timezone is the fixed offset held in the pass's
// time options.
type TimeProcessor struct {
	// Now is the pass clock, injected for deterministic tests
	Now func() time.Time
}

// Types returns the claimed type tags
func (*TimeProcessor) Types() []string {
	return []string{"time", "date", "date_words", "day", "time_elapsed", "time_ago", "time_until"}
}

// Apply renders one time object
func (p *TimeProcessor) Apply(objType, arg string, st *state.State) (string, error) {
	epoch, err := p.resolveEpoch(arg, st)
	if err != nil {
		return "", err
	}
	opts := *st.Times()

	switch objType {
	case "time":
		return formatClock(epoch, opts), nil
	case "date":
		return formatDate(epoch, opts), nil
	case "date_words":
		return formatDateWords(epoch, opts), nil
	case "day":
		return weekdayName(epoch, opts), nil
	case "time_elapsed":
		return formatElapsed(epoch, opts.SmartUnits), nil
	case "time_ago":
		diff := p.nowEpoch() - epoch
		if diff < 1 {
			return "just now", nil
		}
		return formatElapsed(diff, opts.SmartUnits) + " ago", nil
	case "time_until":
		diff := epoch - p.nowEpoch()
		if diff < 1 {
			return "now", nil
		}
		return formatElapsed(diff, opts.SmartUnits) + " from now", nil
	}
	return "", nil
}

func (p *TimeProcessor) nowEpoch() float64 {
	now := p.Now()
	return float64(now.UnixNano()) / 1e9
}

// resolveEpoch picks the timestamp: a non-empty arg parses as an epoch
// float; an empty arg consumes the next positional value when it is
// numeric, otherwise the pass clock is used.
func (p *TimeProcessor) resolveEpoch(arg string, st *state.State) (float64, error) {
	if arg != "" {
		return strconv.ParseFloat(arg, 64)
	}
	if v, err := st.PeekValue(); err == nil {
		if f, ok := toFloat(v); ok {
			_, _ = st.NextValue()
			return f, nil
		}
	}
	return p.nowEpoch(), nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// shifted returns the whole seconds and epoch day after applying the
// timezone offset
func shifted(epoch float64, offsetMin int) (secs, days int64) {
	secs = int64(math.Floor(epoch)) + int64(offsetMin)*60
	days = floorDiv(secs, 86400)
	return secs, days
}

// civilFromDays converts days since 1970-01-01 to a civil date
func civilFromDays(z int64) (year int64, month, day int) {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = int(mp) + 3
	} else {
		month = int(mp) - 9
	}
	if month <= 2 {
		y++
	}
	return y, month, day
}

func formatClock(epoch float64, opts state.TimeOptions) string {
	secs, _ := shifted(epoch, opts.TZOffsetMin)
	secOfDay := ((secs % 86400) + 86400) % 86400
	h := int(secOfDay / 3600)
	m := int(secOfDay % 3600 / 60)
	sec := int(secOfDay % 60)

	var sb strings.Builder
	suffix := ""
	if !opts.Use24h {
		suffix = " AM"
		if h >= 12 {
			suffix = " PM"
		}
		h = h % 12
		if h == 0 {
			h = 12
		}
		sb.WriteString(fmt.Sprintf("%d:%02d", h, m))
	} else {
		sb.WriteString(fmt.Sprintf("%02d:%02d", h, m))
	}

	if opts.ShowSeconds {
		sb.WriteString(fmt.Sprintf(":%02d", sec))
		if opts.Decimals > 0 {
			sb.WriteString(fracDigits(epoch, opts.Decimals))
		}
	}
	sb.WriteString(suffix)
	return sb.String()
}

// fracDigits renders the fractional second part, e.g. ".25"
func fracDigits(epoch float64, decimals int) string {
	frac := epoch - math.Floor(epoch)
	s := strconv.FormatFloat(frac, 'f', decimals, 64)
	if s[0] == '1' {
		// rounding carried into the whole second; clamp
		s = strconv.FormatFloat(0, 'f', decimals, 64)
	}
	return s[1:]
}

func formatDate(epoch float64, opts state.TimeOptions) string {
	_, days := shifted(epoch, opts.TZOffsetMin)
	y, m, d := civilFromDays(days)
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

func formatDateWords(epoch float64, opts state.TimeOptions) string {
	_, days := shifted(epoch, opts.TZOffsetMin)
	y, m, d := civilFromDays(days)
	return fmt.Sprintf("%s %d, %d", monthNames[m-1], d, y)
}

func weekdayName(epoch float64, opts state.TimeOptions) string {
	_, days := shifted(epoch, opts.TZOffsetMin)
	// 1970-01-01 was a Thursday
	idx := int(((days+4)%7 + 7) % 7)
	return dayNames[idx]
}

// elapsed units, largest first
var elapsedUnits = []struct {
	secs  int64
	label string
}{
	{31536000, "y"},
	{604800, "w"},
	{86400, "d"},
	{3600, "h"},
	{60, "m"},
	{1, "s"},
}

// formatElapsed decomposes a duration in seconds into at most maxUnits
// unit terms, e.g. "1h 1m 1s"
func formatElapsed(seconds float64, maxUnits int) string {
	if maxUnits < 1 {
		maxUnits = 1
	}
	remaining := int64(math.Floor(math.Abs(seconds)))

	var parts []string
	for _, unit := range elapsedUnits {
		if len(parts) >= maxUnits {
			break
		}
		if n := remaining / unit.secs; n > 0 || (unit.label == "s" && len(parts) == 0) {
			parts = append(parts, fmt.Sprintf("%d%s", n, unit.label))
			remaining -= n * unit.secs
		}
	}
	return strings.Join(parts, " ")
}
