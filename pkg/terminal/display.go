package terminal

// DisplayGate is queried once, non-blockingly, at the start of each render
// pass. When an external animated display (spinner, progress bar) holds
// exclusive terminal output, the pass writes to shadow buffers and hands the
// finished content to the returned handle instead of interleaving with the
// animation.
type DisplayGate interface {
	// Active reports whether an external display currently owns the
	// terminal, and if so returns the handle render output should be
	// redirected through.
	Active() (bool, DisplayHandle)
}

// DisplayHandle receives render output deferred during an animation.
type DisplayHandle interface {
	// Enqueue hands over the four finished renderings; the display flushes
	// them in order once it releases the terminal.
	Enqueue(terminal, plain, markdown, html string)
}

// NoDisplay is the zero gate: no external display ever holds the terminal.
type NoDisplay struct{}

// Active always reports no active display
func (NoDisplay) Active() (bool, DisplayHandle) { return false, nil }
