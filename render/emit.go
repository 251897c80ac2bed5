package render

import (
	"bufio"
	"strings"

	"github.com/Lennart1978/donut-cli/palette"
	"github.com/Lennart1978/donut-cli/terminal"
)

// Tier boundaries within the ramp: ".,-" low, "~:;=" medium, "!*#$@" high.
const (
	lowEnd = 2 // last ramp index of the low tier
	midEnd = 6 // last ramp index of the medium tier
)

// TierOf returns the palette tier index for a glyph, or -1 for blanks and
// anything not on the ramp.
func TierOf(glyph byte) int {
	idx := strings.IndexByte(Ramp, glyph)
	switch {
	case idx < 0:
		return -1
	case idx <= lowEnd:
		return palette.Low
	case idx <= midEnd:
		return palette.Medium
	default:
		return palette.High
	}
}

// Emit writes the frame as a colorized glyph stream. Every 80th logical
// position forces a line break; non-blank glyphs are wrapped in their
// tier's foreground sequence and an SGR reset, blanks are written bare.
// The caller positions the cursor and flushes.
func (f *Frame) Emit(w *bufio.Writer, pal *palette.Palette) {
	for k := 0; k <= Cells; k++ {
		if k%Width == 0 {
			w.WriteByte('\n')
			continue
		}
		glyph := f.Glyphs[k]
		tier := TierOf(glyph)
		if tier < 0 {
			w.WriteByte(glyph)
			continue
		}
		w.WriteString(pal.Tiers[tier].Seq)
		w.WriteByte(glyph)
		w.Write(terminal.SGRReset)
	}
}
