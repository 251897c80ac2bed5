package render

// Fixed output grid. The projection constants in torus.go assume exactly
// these dimensions; the grid is not resizable.
const (
	Width  = 80
	Height = 22
	Cells  = Width * Height
)

// Ramp orders glyphs by increasing visual density, indexed by luminance.
const Ramp = ".,-~:;=!*#$@"

// Frame holds one rendered frame: a row-major glyph grid and the parallel
// inverse-depth buffer. A cell's depth is the maximum inverse distance among
// all surface samples that projected onto it, so the nearest sample owns the
// cell regardless of sampling order.
type Frame struct {
	Glyphs [Cells]byte
	Depth  [Cells]float64
}

// Reset blanks the glyph grid and zeroes the depth buffer.
func (f *Frame) Reset() {
	for i := range f.Glyphs {
		f.Glyphs[i] = ' '
	}
	for i := range f.Depth {
		f.Depth[i] = 0
	}
}

// plot deposits one projected surface sample. Writes happen only for
// in-grid coordinates whose flat offset is additionally proven in range,
// and only when the sample is nearer than the cell's current owner.
func (f *Frame) plot(x, y int, depth float64, lum int) {
	if y <= 0 || y >= Height || x <= 0 || x >= Width {
		return
	}
	o := x + Width*y
	// The coordinate checks above bound o, but the offset is validated
	// independently so no write can ever land outside the buffers.
	if o < 0 || o >= Cells {
		return
	}
	if depth <= f.Depth[o] {
		return
	}
	f.Depth[o] = depth
	f.Glyphs[o] = glyphFor(lum)
}

// glyphFor maps a luminance score to a ramp glyph. Negative scores render
// as the dimmest glyph; scores past the ramp clamp to the brightest.
func glyphFor(lum int) byte {
	if lum < 0 {
		lum = 0
	}
	if lum >= len(Ramp) {
		lum = len(Ramp) - 1
	}
	return Ramp[lum]
}
