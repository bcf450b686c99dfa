package colors

import (
	"errors"
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestRGBAString(t *testing.T) {
	tests := []struct {
		color    RGBA
		expected string
	}{
		{RGBA{R: 23, G: 137, B: 55, A: 0.07}, "rgba(23, 137, 55, 0.07)"},
		{RGBA{R: 0, G: 0, B: 0, A: 1}, "rgba(0, 0, 0, 1)"},
		{RGBA{R: 255, G: 255, B: 255, A: 0}, "rgba(255, 255, 255, 0)"},
		{RGBA{R: 132, G: 255, B: 212, A: 0.7}, "rgba(132, 255, 212, 0.7)"},
		{RGBA{R: 5, G: 10, B: 15, A: 0.5}, "rgba(5, 10, 15, 0.5)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.color.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
			if got := Formatter()(tt.color); got != tt.expected {
				t.Errorf("Formatter()(c) = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestHSL2RGB(t *testing.T) {
	tests := []struct {
		name    string
		hsl     HSL
		r, g, b uint8
	}{
		{"mid teal", HSL{H: 0.5, S: 0.5, L: 0.5}, 64, 191, 191},
		{"pure red", HSL{H: 0, S: 1, L: 0.5}, 255, 0, 0},
		{"pure green", HSL{H: 1.0 / 3, S: 1, L: 0.5}, 0, 255, 0},
		{"pure blue", HSL{H: 2.0 / 3, S: 1, L: 0.5}, 0, 0, 255},
		{"white", HSL{H: 1, S: 1, L: 1}, 255, 255, 255},
		{"black", HSL{H: 0, S: 0, L: 0}, 0, 0, 0},
		{"gray", HSL{H: 0.25, S: 0, L: 0.5}, 128, 128, 128},
		{"hue wraps", HSL{H: 1.5, S: 0.5, L: 0.5}, 64, 191, 191},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSL2RGB(tt.hsl)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("HSL2RGB(%+v) = (%d, %d, %d), want (%d, %d, %d)",
					tt.hsl, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestRGB2HSL(t *testing.T) {
	tests := []struct {
		name    string
		color   RGBA
		h, s, l float64
	}{
		{"pure red", RGBA{R: 255, A: 1}, 0, 1, 0.5},
		{"pure green", RGBA{G: 255, A: 1}, 1.0 / 3, 1, 0.5},
		{"pure blue", RGBA{B: 255, A: 1}, 2.0 / 3, 1, 0.5},
		{"white", RGBA{R: 255, G: 255, B: 255, A: 1}, 0, 0, 1},
		{"black", RGBA{A: 1}, 0, 0, 0},
		{"gray", RGBA{R: 128, G: 128, B: 128, A: 1}, 0, 0, 128.0 / 255},
	}

	const eps = 1e-9

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hsl := RGB2HSL(tt.color)
			if math.Abs(hsl.H-tt.h) > eps || math.Abs(hsl.S-tt.s) > eps || math.Abs(hsl.L-tt.l) > eps {
				t.Errorf("RGB2HSL(%+v) = %+v, want (%g, %g, %g)", tt.color, hsl, tt.h, tt.s, tt.l)
			}
		})
	}
}

func TestRGB2HSLComponentsInRange(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				hsl := RGB2HSL(RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 1})
				if hsl.H < 0 || hsl.H >= 1 || hsl.S < 0 || hsl.S > 1 || hsl.L < 0 || hsl.L > 1 {
					t.Fatalf("RGB2HSL(%d, %d, %d) out of range: %+v", r, g, b, hsl)
				}
			}
		}
	}
}

func TestRoundTripWithinOne(t *testing.T) {
	for r := 0; r <= 255; r += 5 {
		for g := 0; g <= 255; g += 5 {
			for b := 0; b <= 255; b += 5 {
				hsl := RGB2HSL(RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 1})
				r2, g2, b2 := HSL2RGB(hsl)
				if absDiff(r, int(r2)) > 1 || absDiff(g, int(g2)) > 1 || absDiff(b, int(b2)) > 1 {
					t.Fatalf("round trip (%d, %d, %d) -> %+v -> (%d, %d, %d) drifted more than 1",
						r, g, b, hsl, r2, g2, b2)
				}
			}
		}
	}
}

// Cross-check the converters against go-colorful's reference implementation.
func TestConversionMatchesColorful(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				hsl := RGB2HSL(RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 1})

				ch, cs, cl := colorful.Color{
					R: float64(r) / 255,
					G: float64(g) / 255,
					B: float64(b) / 255,
				}.Hsl()

				if math.Abs(hsl.H*360-ch) > 0.5 && math.Abs(hsl.H*360-ch) < 359.5 {
					t.Fatalf("hue mismatch for (%d, %d, %d): got %g deg, colorful %g deg", r, g, b, hsl.H*360, ch)
				}
				if math.Abs(hsl.S-cs) > 0.01 || math.Abs(hsl.L-cl) > 0.01 {
					t.Fatalf("s/l mismatch for (%d, %d, %d): got (%g, %g), colorful (%g, %g)",
						r, g, b, hsl.S, hsl.L, cs, cl)
				}

				cr, cg, cb := colorful.Hsl(ch, cs, cl).RGB255()
				r2, g2, b2 := HSL2RGB(hsl)
				if absDiff(int(r2), int(cr)) > 1 || absDiff(int(g2), int(cg)) > 1 || absDiff(int(b2), int(cb)) > 1 {
					t.Fatalf("HSL2RGB mismatch for (%d, %d, %d): got (%d, %d, %d), colorful (%d, %d, %d)",
						r, g, b, r2, g2, b2, cr, cg, cb)
				}
			}
		}
	}
}

func TestLuminosity(t *testing.T) {
	gray := RGBA{R: 128, G: 128, B: 128, A: 1}

	tests := []struct {
		name     string
		factor   float64
		color    RGBA
		expected RGBA
	}{
		{"identity", 1, gray, gray},
		{"darken", 0.5, gray, RGBA{R: 64, G: 64, B: 64, A: 1}},
		{"brighten", 1.5, gray, RGBA{R: 192, G: 192, B: 192, A: 1}},
		{"zero", 0, gray, RGBA{R: 0, G: 0, B: 0, A: 1}},
		{"clamps high", 3, RGBA{R: 200, G: 10, B: 90, A: 0.4}, RGBA{R: 255, G: 30, B: 255, A: 0.4}},
		{"alpha untouched", 2, RGBA{R: 1, G: 2, B: 3, A: 0.07}, RGBA{R: 2, G: 4, B: 6, A: 0.07}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Luminosity(tt.factor, tt.color)
			if err != nil {
				t.Fatalf("Luminosity(%g, %+v) returned error: %v", tt.factor, tt.color, err)
			}
			if got != tt.expected {
				t.Errorf("Luminosity(%g, %+v) = %+v, want %+v", tt.factor, tt.color, got, tt.expected)
			}

			curried, err := WithLuminosity(tt.factor)(tt.color)
			if err != nil {
				t.Fatalf("WithLuminosity(%g)(%+v) returned error: %v", tt.factor, tt.color, err)
			}
			if curried != got {
				t.Errorf("curried form = %+v, eager form = %+v", curried, got)
			}
		})
	}
}

func TestLuminosityNegativeFactor(t *testing.T) {
	for _, factor := range []float64{-0.001, -1, -100} {
		_, err := Luminosity(factor, RGBA{R: 10, G: 20, B: 30, A: 1})
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Luminosity(%g) error = %v, want ErrInvalidArgument", factor, err)
		}
	}
}

func TestImportColor(t *testing.T) {
	tests := []struct {
		hex      string
		alpha    float64
		expected RGBA
	}{
		{"#58D68D", 0.7, RGBA{R: 88, G: 214, B: 141, A: 0.7}},
		{"#58d68d", 0.7, RGBA{R: 88, G: 214, B: 141, A: 0.7}},
		{"#000000", 1, RGBA{R: 0, G: 0, B: 0, A: 1}},
		{"#FFFFFF", 0, RGBA{R: 255, G: 255, B: 255, A: 0}},
		{"#FF7F00", 1, RGBA{R: 255, G: 127, B: 0, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := ImportColor(tt.alpha, tt.hex)
			if err != nil {
				t.Fatalf("ImportColor(%g, %q) returned error: %v", tt.alpha, tt.hex, err)
			}
			if got != tt.expected {
				t.Errorf("ImportColor(%g, %q) = %+v, want %+v", tt.alpha, tt.hex, got, tt.expected)
			}

			curried, err := Importer(tt.alpha)(tt.hex)
			if err != nil {
				t.Fatalf("Importer(%g)(%q) returned error: %v", tt.alpha, tt.hex, err)
			}
			if curried != got {
				t.Errorf("curried form = %+v, eager form = %+v", curried, got)
			}
		})
	}
}

func TestImportColorMalformed(t *testing.T) {
	malformed := []string{
		"",
		"#",
		"58D68D",
		"#58D68",
		"#58D68D1",
		"#58D68G",
		"#58 68D",
		"##8D68D",
		"#gggggg",
	}

	for _, hex := range malformed {
		t.Run(hex, func(t *testing.T) {
			_, err := ImportColor(1, hex)
			if !errors.Is(err, ErrParse) {
				t.Errorf("ImportColor(1, %q) error = %v, want ErrParse", hex, err)
			}
		})
	}
}

func TestImportColorClampsAlpha(t *testing.T) {
	c, err := ImportColor(1.5, "#000000")
	if err != nil {
		t.Fatal(err)
	}
	if c.A != 1 {
		t.Errorf("alpha = %g, want 1", c.A)
	}

	c, err = ImportColor(-0.5, "#000000")
	if err != nil {
		t.Fatal(err)
	}
	if c.A != 0 {
		t.Errorf("alpha = %g, want 0", c.A)
	}
}

func TestHex(t *testing.T) {
	c := RGBA{R: 88, G: 214, B: 141, A: 0.7}
	if got := c.Hex(); got != "#58D68D" {
		t.Errorf("Hex() = %q, want %q", got, "#58D68D")
	}
}

func TestMix(t *testing.T) {
	a := RGBA{R: 0, G: 0, B: 0, A: 0}
	b := RGBA{R: 255, G: 255, B: 255, A: 1}

	tests := []struct {
		name     string
		t        float64
		expected RGBA
	}{
		{"start", 0, a},
		{"end", 1, b},
		{"middle", 0.5, RGBA{R: 128, G: 128, B: 128, A: 0.5}},
		{"clamped low", -2, a},
		{"clamped high", 2, b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mix(tt.t, a, b); got != tt.expected {
				t.Errorf("Mix(%g) = %+v, want %+v", tt.t, got, tt.expected)
			}

			got, err := MixWith(tt.t, b)(a)
			if err != nil {
				t.Fatalf("MixWith returned error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("MixWith(%g, b)(a) = %+v, want %+v", tt.t, got, tt.expected)
			}
		})
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
