// Package palette resolves a color name to the three intensity tiers used
// to shade the glyph ramp. Resolution happens once at startup; the resolved
// palette is immutable and carries pre-rendered escape sequences so the
// frame emit path does no formatting work.
package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Lennart1978/donut-cli/terminal"
)

// Tier is one intensity level of a palette.
type Tier struct {
	Color terminal.RGB
	Seq   string // foreground escape sequence for the active color mode
}

// Palette holds the low/medium/high intensity tiers for one base color.
type Palette struct {
	Name  string
	Tiers [3]Tier
}

// Tier indices
const (
	Low = iota
	Medium
	High
)

// Blend factors reproducing the canonical tier table: low and medium are
// the base hue scaled toward black, high is the base hue lifted toward
// white. With hue channels in {0, 255} this yields exactly the classic
// (100,…), (180,…), (255|100,…) tier values.
const (
	lowBlend  = 100.0 / 255.0
	midBlend  = 180.0 / 255.0
	liftBlend = 100.0 / 255.0
)

type entry struct {
	canonical string
	aliases   []string
	base      colorful.Color
}

// Known colors, English name first, German variant after. Matching is
// case-sensitive.
var entries = []entry{
	{"green", []string{"gruen"}, colorful.Color{R: 0, G: 1, B: 0}},
	{"red", []string{"rot"}, colorful.Color{R: 1, G: 0, B: 0}},
	{"blue", []string{"blau"}, colorful.Color{R: 0, G: 0, B: 1}},
	{"cyan", nil, colorful.Color{R: 0, G: 1, B: 1}},
	{"magenta", nil, colorful.Color{R: 1, G: 0, B: 1}},
	{"yellow", []string{"gelb"}, colorful.Color{R: 1, G: 1, B: 0}},
	{"white", []string{"weiss"}, colorful.Color{R: 1, G: 1, B: 1}},
}

// Resolve maps a color name to its palette for the given color mode.
// Unknown names resolve to the default green palette with ok=false so the
// caller can warn; resolution itself never fails.
func Resolve(name string, mode terminal.ColorMode) (*Palette, bool) {
	for _, e := range entries {
		if name == e.canonical {
			return build(e, mode), true
		}
		for _, alias := range e.aliases {
			if name == alias {
				return build(e, mode), true
			}
		}
	}
	return build(entries[0], mode), false
}

// Names returns the canonical color names, for usage and warning text.
func Names() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.canonical
	}
	return names
}

func build(e entry, mode terminal.ColorMode) *Palette {
	black := colorful.Color{}
	white := colorful.Color{R: 1, G: 1, B: 1}

	tiers := [3]colorful.Color{
		black.BlendRgb(e.base, lowBlend),
		black.BlendRgb(e.base, midBlend),
		e.base.BlendRgb(white, liftBlend),
	}

	p := &Palette{Name: e.canonical}
	for i, c := range tiers {
		r, g, b := c.RGB255()
		rgb := terminal.RGB{R: r, G: g, B: b}
		p.Tiers[i] = Tier{Color: rgb, Seq: seqFor(rgb, mode)}
	}
	return p
}

func seqFor(c terminal.RGB, mode terminal.ColorMode) string {
	if mode == terminal.ColorModeTrueColor {
		return fmt.Sprintf("%s%d;%d;%dm", terminal.FgRGB, c.R, c.G, c.B)
	}
	return fmt.Sprintf("%s%dm", terminal.Fg256, terminal.RGBTo256(c))
}
