package palette

import (
	"strings"
	"testing"

	"github.com/Lennart1978/donut-cli/terminal"
)

func TestResolveCanonicalTierValues(t *testing.T) {
	cases := []struct {
		name  string
		tiers [3]terminal.RGB
	}{
		{"red", [3]terminal.RGB{{R: 100, G: 0, B: 0}, {R: 180, G: 0, B: 0}, {R: 255, G: 100, B: 100}}},
		{"green", [3]terminal.RGB{{R: 0, G: 100, B: 0}, {R: 0, G: 180, B: 0}, {R: 100, G: 255, B: 100}}},
		{"blue", [3]terminal.RGB{{R: 0, G: 0, B: 100}, {R: 0, G: 0, B: 180}, {R: 100, G: 100, B: 255}}},
		{"cyan", [3]terminal.RGB{{R: 0, G: 100, B: 100}, {R: 0, G: 180, B: 180}, {R: 100, G: 255, B: 255}}},
		{"magenta", [3]terminal.RGB{{R: 100, G: 0, B: 100}, {R: 180, G: 0, B: 180}, {R: 255, G: 100, B: 255}}},
		{"yellow", [3]terminal.RGB{{R: 100, G: 100, B: 0}, {R: 180, G: 180, B: 0}, {R: 255, G: 255, B: 100}}},
		{"white", [3]terminal.RGB{{R: 100, G: 100, B: 100}, {R: 180, G: 180, B: 180}, {R: 255, G: 255, B: 255}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pal, ok := Resolve(tc.name, terminal.ColorModeTrueColor)
			if !ok {
				t.Fatalf("Expected %q to resolve", tc.name)
			}
			for i, want := range tc.tiers {
				if got := pal.Tiers[i].Color; got != want {
					t.Errorf("Tier %d: expected %v, got %v", i, want, got)
				}
			}
		})
	}
}

func TestResolveGermanAliases(t *testing.T) {
	aliases := map[string]string{
		"rot":   "red",
		"gruen": "green",
		"blau":  "blue",
		"gelb":  "yellow",
		"weiss": "white",
	}

	for alias, canonical := range aliases {
		got, ok := Resolve(alias, terminal.ColorModeTrueColor)
		if !ok {
			t.Errorf("Expected alias %q to resolve", alias)
			continue
		}
		want, _ := Resolve(canonical, terminal.ColorModeTrueColor)
		if got.Tiers != want.Tiers {
			t.Errorf("Alias %q: expected %q tiers", alias, canonical)
		}
		if got.Name != canonical {
			t.Errorf("Alias %q: expected canonical name %q, got %q", alias, canonical, got.Name)
		}
	}
}

func TestResolveUnknownFallsBackToGreen(t *testing.T) {
	pal, ok := Resolve("fuchsia", terminal.ColorModeTrueColor)
	if ok {
		t.Error("Expected unknown color to report ok=false")
	}
	green, _ := Resolve("green", terminal.ColorModeTrueColor)
	if pal.Tiers != green.Tiers {
		t.Error("Expected fallback to the green palette")
	}
}

func TestResolveIsCaseSensitive(t *testing.T) {
	if _, ok := Resolve("Red", terminal.ColorModeTrueColor); ok {
		t.Error("Expected capitalized name to miss")
	}
}

func TestTrueColorSequences(t *testing.T) {
	pal, _ := Resolve("red", terminal.ColorModeTrueColor)

	want := [3]string{
		"\x1b[38;2;100;0;0m",
		"\x1b[38;2;180;0;0m",
		"\x1b[38;2;255;100;100m",
	}
	for i := range want {
		if pal.Tiers[i].Seq != want[i] {
			t.Errorf("Tier %d: expected %q, got %q", i, want[i], pal.Tiers[i].Seq)
		}
	}
}

func Test256Sequences(t *testing.T) {
	pal, _ := Resolve("green", terminal.ColorMode256)

	for i, tier := range pal.Tiers {
		if !strings.HasPrefix(tier.Seq, "\x1b[38;5;") {
			t.Errorf("Tier %d: expected 256-color prefix, got %q", i, tier.Seq)
		}
		if !strings.HasSuffix(tier.Seq, "m") {
			t.Errorf("Tier %d: sequence not terminated: %q", i, tier.Seq)
		}
	}
}

func TestNamesListsCanonicalOnly(t *testing.T) {
	names := Names()
	if len(names) != 7 {
		t.Fatalf("Expected 7 canonical names, got %d", len(names))
	}
	if names[0] != "green" {
		t.Errorf("Expected default color first, got %q", names[0])
	}
	for _, n := range names {
		if n == "gruen" || n == "rot" {
			t.Errorf("Aliases must not appear in Names(): %q", n)
		}
	}
}
