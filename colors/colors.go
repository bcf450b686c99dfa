// Package colors provides a small, pure color-manipulation core: conversion
// between RGB(A) and HSL, luminosity scaling, hex import, and canonical CSS
// string formatting. Every operation is a pure transform over immutable
// values; curried variants make each operation usable as a pipeline stage
// (see the pipe package).
package colors

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Error sentinels. All failures returned by this package wrap one of these,
// so callers can classify them with errors.Is.
var (
	// ErrInvalidArgument signals a violated numeric precondition, such as a
	// negative luminosity factor. This is a programming-error signal, not an
	// environmental failure.
	ErrInvalidArgument = errors.New("colors: invalid argument")

	// ErrParse signals a malformed color string passed to ImportColor.
	ErrParse = errors.New("colors: malformed color string")
)

// RGBA is a color with 8-bit red, green, and blue channels and a fractional
// alpha in [0, 1]. The zero value is fully transparent black.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// HSL is a color in hue/saturation/lightness form with every component
// normalized to [0, 1]: H is the fraction of the color wheel (0 = red,
// 1/3 = green, 2/3 = blue). No alpha channel is carried.
type HSL struct {
	H, S, L float64
}

// Transform is a pipeline stage over RGBA values. Curried operation
// constructors (WithLuminosity, MixWith) return Transforms ready for
// pipe.Pipe.
type Transform func(RGBA) (RGBA, error)

// String renders the color as "rgba(R, G, B, A)". The alpha is printed with
// its minimal decimal representation, so 0.07 renders as "0.07" and 1 as "1".
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		c.R, c.G, c.B, strconv.FormatFloat(c.A, 'g', -1, 64))
}

// Formatter returns the formatting operation as a curried stage awaiting the
// color value, for use as a pipeline terminal.
func Formatter() func(RGBA) string {
	return RGBA.String
}

// RGB2HSL converts a color to HSL. The alpha channel is ignored; it is not
// representable in HSL. Achromatic colors (max == min) map to hue 0 and
// saturation 0.
func RGB2HSL(c RGBA) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))

	l := (maxC + minC) / 2
	if maxC == minC {
		return HSL{H: 0, S: 0, L: l}
	}

	d := maxC - minC

	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = 2 + (b-r)/d
	case b:
		h = 4 + (r-g)/d
	}

	return HSL{H: h / 6, S: s, L: l}
}

// HSL2RGB converts an HSL triple to 8-bit RGB channels using the standard
// chroma/sector algorithm. The hue wraps modulo 1; saturation and lightness
// are clamped to [0, 1]. Channel fractions are scaled by 255 and rounded
// half away from zero.
func HSL2RGB(hsl HSL) (r, g, b uint8) {
	h := math.Mod(hsl.H, 1)
	if h < 0 {
		h++
	}
	s := clamp01(hsl.S)
	l := clamp01(hsl.L)

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var rf, gf, bf float64
	switch {
	case h < 1.0/6:
		rf, gf, bf = c, x, 0
	case h < 2.0/6:
		rf, gf, bf = x, c, 0
	case h < 3.0/6:
		rf, gf, bf = 0, c, x
	case h < 4.0/6:
		rf, gf, bf = 0, x, c
	case h < 5.0/6:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	return round255(rf + m), round255(gf + m), round255(bf + m)
}

// Luminosity scales the R, G, and B channels by factor, rounding half away
// from zero and clamping the result into [0, 255]. Alpha passes through
// unchanged. A negative factor is rejected with ErrInvalidArgument; zero is
// valid and yields black.
func Luminosity(factor float64, c RGBA) (RGBA, error) {
	if factor < 0 {
		return RGBA{}, fmt.Errorf("%w: luminosity factor must be non-negative, got %g", ErrInvalidArgument, factor)
	}
	return RGBA{
		R: round255(float64(c.R) * factor / 255),
		G: round255(float64(c.G) * factor / 255),
		B: round255(float64(c.B) * factor / 255),
		A: c.A,
	}, nil
}

// WithLuminosity returns Luminosity curried on the factor, as a reusable
// pipeline stage.
func WithLuminosity(factor float64) Transform {
	return func(c RGBA) (RGBA, error) {
		return Luminosity(factor, c)
	}
}

// ImportColor parses a "#RRGGBB" hex string (case-insensitive, exactly six
// hex digits) and pairs it with the supplied alpha, clamped to [0, 1]. A
// malformed string is rejected with ErrParse.
func ImportColor(alpha float64, hex string) (RGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return RGBA{}, fmt.Errorf("%w: expected #RRGGBB, got %q", ErrParse, hex)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: expected #RRGGBB, got %q", ErrParse, hex)
		}
		ch[i] = uint8(v)
	}

	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: clamp01(alpha)}, nil
}

// Importer returns ImportColor curried on the alpha, so a pipeline can start
// directly from a raw hex string source.
func Importer(alpha float64) func(string) (RGBA, error) {
	return func(hex string) (RGBA, error) {
		return ImportColor(alpha, hex)
	}
}

// Hex renders the color as "#RRGGBB" (uppercase, alpha dropped).
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Mix linearly interpolates between a and b: t=0 yields a, t=1 yields b.
// t is clamped to [0, 1]. Alpha interpolates along with the channels.
func Mix(t float64, a, b RGBA) RGBA {
	t = clamp01(t)
	return RGBA{
		R: round255(lerp(float64(a.R), float64(b.R), t) / 255),
		G: round255(lerp(float64(a.G), float64(b.G), t) / 255),
		B: round255(lerp(float64(a.B), float64(b.B), t) / 255),
		A: lerp(a.A, b.A, t),
	}
}

// MixWith returns Mix curried on the interpolation parameter and the second
// color, as a pipeline stage blending its input toward b.
func MixWith(t float64, b RGBA) Transform {
	return func(a RGBA) (RGBA, error) {
		return Mix(t, a, b), nil
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// round255 scales a [0,1] channel fraction to [0,255], rounding half away
// from zero and clamping.
func round255(f float64) uint8 {
	v := math.Round(f * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
