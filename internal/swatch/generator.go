// Package swatch renders luminosity ramps of a base color into PNG strips.
package swatch

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/aquilax/go-perlin"
	"golang.org/x/image/draw"

	"github.com/mzimandl/cnc-tskit/colors"
)

// Params defines a swatch strip.
type Params struct {
	Base  colors.RGBA
	Steps int     // number of cells
	From  float64 // luminosity factor of the first cell
	To    float64 // luminosity factor of the last cell
	Cell  int     // cell edge length in pixels
	Grain float64 // paper grain strength, 0 disables
	Seed  int64
}

// DefaultCell is the cell size used when Params.Cell is unset.
const DefaultCell = 48

// Ramp computes the swatch colors: Steps luminosity factors interpolated
// from From to To, each applied to the base color. A single step uses From.
func Ramp(p Params) ([]colors.RGBA, error) {
	if p.Steps <= 0 {
		return nil, fmt.Errorf("steps must be positive, got %d", p.Steps)
	}

	out := make([]colors.RGBA, p.Steps)
	for i := range out {
		t := 0.0
		if p.Steps > 1 {
			t = float64(i) / float64(p.Steps-1)
		}
		factor := p.From + (p.To-p.From)*t

		c, err := colors.Luminosity(factor, p.Base)
		if err != nil {
			return nil, fmt.Errorf("ramp step %d: %w", i, err)
		}
		out[i] = c
	}

	return out, nil
}

// Generate renders the ramp as a horizontal strip, one Cell x Cell square
// per step, with optional Perlin paper grain. The strip is deterministic
// for a given seed.
func Generate(p Params) (*image.NRGBA, error) {
	ramp, err := Ramp(p)
	if err != nil {
		return nil, err
	}

	cell := p.Cell
	if cell <= 0 {
		cell = DefaultCell
	}

	// Paint one pixel per step, then scale up to cell size.
	strip := image.NewNRGBA(image.Rect(0, 0, p.Steps, 1))
	for i, c := range ramp {
		strip.SetNRGBA(i, 0, toNRGBA(c))
	}

	out := image.NewNRGBA(image.Rect(0, 0, p.Steps*cell, cell))
	draw.NearestNeighbor.Scale(out, out.Bounds(), strip, strip.Bounds(), draw.Src, nil)

	if p.Grain > 0 {
		applyGrain(out, clamp01(p.Grain), p.Seed)
	}

	return out, nil
}

// applyGrain modulates pixel luminosity with low-frequency Perlin noise,
// giving the flat cells a paper-like texture.
func applyGrain(img *image.NRGBA, strength float64, seed int64) {
	p := perlin.NewPerlin(2.0, 2.0, 3, seed)
	bounds := img.Bounds()

	const scale = 24.0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			n := p.Noise2D(float64(x)/scale, float64(y)/scale) // roughly [-1, 1]
			factor := 1 + 0.2*strength*n

			px := img.NRGBAAt(x, y)
			c, err := colors.Luminosity(factor, colors.RGBA{
				R: px.R, G: px.G, B: px.B, A: float64(px.A) / 255,
			})
			if err != nil {
				// factor stays well above zero for strength in [0,1]
				continue
			}
			img.SetNRGBA(x, y, toNRGBA(c))
		}
	}
}

// WritePNG encodes the image to path.
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create swatch %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode swatch %s: %w", path, err)
	}
	return nil
}

func toNRGBA(c colors.RGBA) color.NRGBA {
	return color.NRGBA{
		R: c.R,
		G: c.G,
		B: c.B,
		A: uint8(math.Round(c.A * 255)),
	}
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
