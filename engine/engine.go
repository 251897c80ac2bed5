// Package engine owns the animation loop: it advances the rotation state,
// renders each frame, emits it with color decoration, paces iterations and
// watches for the quit key. The loop is single-threaded and strictly
// sequential; the only suspension point is the sleep between frames.
package engine

import (
	"bufio"
	"io"
	"time"

	"github.com/Lennart1978/donut-cli/palette"
	"github.com/Lennart1978/donut-cli/render"
	"github.com/Lennart1978/donut-cli/terminal"
)

// BaseInterval is the per-frame sleep at speed factor 1.0 (~30 FPS).
const BaseInterval = 33333 * time.Microsecond

// Rotation advances per frame. The speed factor never scales these; it only
// changes how often a frame happens.
const (
	stepA = 0.04
	stepB = 0.02
)

const keyEscape = 0x1b

// KeyPoller reports one pending input byte without blocking. ok=false means
// no data is currently available, which is not an error.
type KeyPoller interface {
	PollKey() (b byte, ok bool, err error)
}

type state uint8

const (
	running state = iota
	stopped // terminal, the loop is not resumable
)

// Engine drives the render loop.
type Engine struct {
	poller   KeyPoller
	out      *bufio.Writer
	pal      *palette.Palette
	interval time.Duration

	frame render.Frame
	a, b  float64

	st  state
	err error
}

// New wires an engine. speed must already be validated positive.
func New(poller KeyPoller, out io.Writer, pal *palette.Palette, speed float64) *Engine {
	return &Engine{
		poller:   poller,
		out:      bufio.NewWriterSize(out, 64*1024),
		pal:      pal,
		interval: FrameInterval(speed),
	}
}

// FrameInterval returns the per-frame sleep for a speed factor. Higher
// factors shorten the sleep proportionally.
func FrameInterval(speed float64) time.Duration {
	return time.Duration(float64(BaseInterval) / speed)
}

// Step performs one loop iteration without sleeping and reports whether the
// loop should continue. Sequencing per iteration: poll input, render, emit,
// advance rotation.
func (e *Engine) Step() bool {
	if e.st == stopped {
		return false
	}

	key, ok, err := e.poller.PollKey()
	if err != nil {
		// Genuine read failure, distinct from "no data": stop gracefully
		// so the terminal restore on the exit path still runs
		e.err = err
		e.st = stopped
		return false
	}
	if ok && (key == 'q' || key == 'Q' || key == keyEscape) {
		e.st = stopped
		return false
	}

	e.frame.Render(e.a, e.b)
	e.out.Write(terminal.Home)
	e.frame.Emit(e.out, e.pal)
	e.out.Flush()

	e.a += stepA
	e.b += stepB
	return true
}

// Run loops until a quit key or a fatal input error. Returns nil on normal
// quit, the input error otherwise. A key pressed during the sleep is seen
// at the next iteration's poll, bounding input latency to one frame.
func (e *Engine) Run() error {
	for e.Step() {
		time.Sleep(e.interval)
	}
	return e.err
}
