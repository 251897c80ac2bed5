package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	Clear    = []byte("\x1b[2J\x1b[H")
	Home     = []byte("\x1b[H")
	SGRReset = []byte("\x1b[0m")

	CursorHide = []byte("\x1b[?25l")
	CursorShow = []byte("\x1b[?25h")

	// Foreground color prefixes
	FgRGB = []byte("\x1b[38;2;") // followed by R;G;B;m
	Fg256 = []byte("\x1b[38;5;") // followed by N;m
)
