package state

// macroFrame records the attribute diff a format macro produced: the
// snapshot taken before expansion and the one after. Ending the macro
// restores only what the macro changed, and only if unchanged since.
type macroFrame struct {
	before Attrs
	after  Attrs
	sealed bool
}

// BeginMacro snapshots the attributes before a macro expansion
func (s *State) BeginMacro(name string) {
	s.macros[name] = append(s.macros[name], macroFrame{before: s.attrs})
}

// SealMacro snapshots the attributes after the expansion has been applied
func (s *State) SealMacro(name string) {
	frames := s.macros[name]
	if len(frames) == 0 {
		return
	}
	frames[len(frames)-1].after = s.attrs
	frames[len(frames)-1].sealed = true
}

// ActiveMacro reports whether a macro with this name is on the stack
func (s *State) ActiveMacro(name string) bool {
	frames := s.macros[name]
	return len(frames) > 0 && frames[len(frames)-1].sealed
}

// EndMacro pops the named macro and reverts each attribute the macro
// changed, provided the attribute still holds the macro's value. Attributes
// changed later by other means are left alone. Reports whether a frame was
// found.
func (s *State) EndMacro(name string) bool {
	frames := s.macros[name]
	if len(frames) == 0 || !frames[len(frames)-1].sealed {
		return false
	}
	fr := frames[len(frames)-1]
	s.macros[name] = frames[:len(frames)-1]

	cur := s.attrs
	if fr.before.Bold != fr.after.Bold && cur.Bold == fr.after.Bold {
		s.SetBold(fr.before.Bold)
	}
	if fr.before.Italic != fr.after.Italic && cur.Italic == fr.after.Italic {
		s.SetItalic(fr.before.Italic)
	}
	if fr.before.Underline != fr.after.Underline && cur.Underline == fr.after.Underline {
		s.SetUnderline(fr.before.Underline)
	}
	if fr.before.Strikethrough != fr.after.Strikethrough && cur.Strikethrough == fr.after.Strikethrough {
		s.SetStrikethrough(fr.before.Strikethrough)
	}
	if !colorEq(fr.before.Foreground, fr.after.Foreground) && colorEq(cur.Foreground, fr.after.Foreground) {
		s.SetForeground(fr.before.Foreground)
	}
	if !colorEq(fr.before.Background, fr.after.Background) && colorEq(cur.Background, fr.after.Background) {
		s.SetBackground(fr.before.Background)
	}
	return true
}
