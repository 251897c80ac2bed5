package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Term owns the terminal's raw-mode state for the lifetime of the program.
// Open acquires it exactly once; Restore must run on every exit path.
type Term struct {
	in       *os.File
	out      *os.File
	inFd     int
	oldState *term.State
	restored bool
}

// Open puts the input terminal into raw mode, hides the cursor and clears
// the screen. The returned Term must be restored before process exit.
func Open(in, out *os.File) (*Term, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	t := &Term{
		in:       in,
		out:      out,
		inFd:     fd,
		oldState: old,
	}

	out.Write(CursorHide)
	out.Write(Clear)
	return t, nil
}

// Restore returns the terminal to its original mode and shows the cursor.
// Safe to call multiple times.
func (t *Term) Restore() {
	if t.restored {
		return
	}
	t.restored = true

	if t.oldState != nil {
		term.Restore(t.inFd, t.oldState)
	}
	t.out.Write(SGRReset)
	t.out.Write(CursorShow)
}

// PollKey returns one input byte if available right now. A false second
// return means no data is pending, which is the steady state of the
// non-blocking poll and never an error. A non-nil error is a genuine I/O
// failure on stdin.
func (t *Term) PollKey() (byte, bool, error) {
	fds := []unix.PollFd{
		{Fd: int32(t.inFd), Events: unix.POLLIN},
	}

	// Zero timeout: report readiness without waiting
	n, err := unix.Poll(fds, 0)
	if err != nil {
		if err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("poll stdin: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}

	var buf [1]byte
	rn, err := unix.Read(t.inFd, buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read stdin: %w", err)
	}
	if rn == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// EmergencyReset restores terminal to usable state after a crash.
// Call from panic handlers where the Term instance may be unreachable.
func EmergencyReset(w io.Writer) {
	w.Write(CursorShow)
	w.Write(SGRReset)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	resetTerminalMode()
}

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		defer tty.Close()
		fd := int(tty.Fd())
		// Get current termios, enable ECHO and ICANON
		if termios, err := unix.IoctlGetTermios(fd, unix.TCGETS); err == nil {
			termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
			termios.Iflag |= unix.ICRNL
			unix.IoctlSetTermios(fd, unix.TCSETS, termios)
		}
	}
}
