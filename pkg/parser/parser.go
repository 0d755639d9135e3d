// Package parser splits an FDL template into an ordered sequence of typed
// pieces. Parsing never fails: a malformed directive degrades to literal
// text so template mistakes stay visible in the output instead of crashing
// the caller.
package parser

import (
	"strings"
)

// Kind tags the variants of a parsed piece
type Kind int

const (
	// KindText is literal output
	KindText Kind = iota
	// KindVariable substitutes the next positional value
	KindVariable
	// KindCommand mutates format state and emits nothing
	KindCommand
	// KindObject reads state/values and emits content
	KindObject
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindCommand:
		return "command"
	case KindObject:
		return "object"
	default:
		return "text"
	}
}

// Piece is one immutable unit of parsed template input. Exactly one field
// set is meaningful per kind: Text, Name, Raw, or Type+Arg.
type Piece struct {
	Kind Kind
	Text string // KindText: literal content
	Name string // KindVariable: variable name
	Raw  string // KindCommand: command text without the leading slash
	Type string // KindObject: type tag
	Arg  string // KindObject: argument, may be empty
}

// Parse scans template for <...> spans and classifies their content.
// Precedence: leading slash is a command, identifier:arg is an object, a
// bare identifier is a variable, anything else stays verbatim text.
func Parse(template string) []Piece {
	var pieces []Piece
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			pieces = append(pieces, Piece{Kind: KindText, Text: text.String()})
			text.Reset()
		}
	}

	rest := template
	for {
		open := strings.IndexByte(rest, '<')
		if open < 0 {
			text.WriteString(rest)
			break
		}
		close := strings.IndexByte(rest[open:], '>')
		if close < 0 {
			text.WriteString(rest)
			break
		}
		close += open

		text.WriteString(rest[:open])
		inner := rest[open+1 : close]

		if piece, ok := classify(inner); ok {
			flush()
			pieces = append(pieces, piece)
		} else {
			// Malformed directive: the bracket content is kept verbatim.
			text.WriteString(rest[open : close+1])
		}
		rest = rest[close+1:]
	}
	flush()

	return pieces
}

func classify(inner string) (Piece, bool) {
	if strings.HasPrefix(inner, "/") {
		return Piece{Kind: KindCommand, Raw: inner[1:]}, true
	}

	if idx := strings.IndexByte(inner, ':'); idx >= 0 {
		typeTag, arg := inner[:idx], inner[idx+1:]
		if IsIdentifier(typeTag) && validArg(arg) {
			return Piece{Kind: KindObject, Type: typeTag, Arg: arg}, true
		}
		return Piece{}, false
	}

	if IsIdentifier(inner) {
		return Piece{Kind: KindVariable, Name: inner}, true
	}

	return Piece{}, false
}

// IsIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9_]*
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// validArg accepts the object argument forms: empty (current/default), an
// identifier, or a number such as a Unix epoch.
func validArg(arg string) bool {
	if arg == "" || IsIdentifier(arg) {
		return true
	}
	return isNumber(arg)
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	dot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return s != "" && s != "."
}

// ContainsDirectives reports whether template holds anything beyond plain
// text. Used to decide whether a substitution value needs a sub-render.
func ContainsDirectives(template string) bool {
	for _, p := range Parse(template) {
		if p.Kind != KindText {
			return true
		}
	}
	return false
}
