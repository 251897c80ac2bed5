// Package terminal provides raw-mode terminal access for the renderer:
// scoped raw-mode acquisition and restore, zero-timeout key polling,
// pre-allocated ANSI escape fragments and color capability detection.
//
// The package is POSIX-only; it talks to the tty through golang.org/x/term
// and golang.org/x/sys/unix directly rather than a screen library, because
// the program's output contract is a raw ANSI byte stream.
package terminal
