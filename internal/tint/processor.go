// Package tint applies luminosity adjustments to whole PNG images, with a
// worker pool for batch processing.
package tint

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/disintegration/gift"

	"github.com/mzimandl/cnc-tskit/colors"
)

// Processor applies a fixed luminosity factor to images.
type Processor struct {
	filter *gift.GIFT
	logger *slog.Logger
	factor float64
}

// NewProcessor validates the factor and builds the pixel filter. The filter
// routes every pixel through the core luminosity math, so clamping and
// rounding match single-color adjustments exactly.
func NewProcessor(factor float64, logger *slog.Logger) (*Processor, error) {
	// Validate once up front; the per-pixel path can then never fail.
	if _, err := colors.Luminosity(factor, colors.RGBA{}); err != nil {
		return nil, err
	}

	filter := gift.New(gift.ColorFunc(func(r0, g0, b0, a0 float32) (float32, float32, float32, float32) {
		c, err := colors.Luminosity(factor, colors.RGBA{
			R: to8(r0),
			G: to8(g0),
			B: to8(b0),
			A: float64(a0),
		})
		if err != nil {
			return r0, g0, b0, a0
		}
		return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, a0
	}))

	return &Processor{filter: filter, logger: logger, factor: factor}, nil
}

// Apply returns a tinted copy of src.
func (p *Processor) Apply(src image.Image) *image.NRGBA {
	dst := image.NewNRGBA(p.filter.Bounds(src.Bounds()))
	p.filter.Draw(dst, src)
	return dst
}

// File reads a PNG from inPath, tints it, and writes the result to outPath.
func (p *Processor) File(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", inPath, err)
	}
	defer in.Close()

	src, err := png.Decode(in)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", inPath, err)
	}

	dst := p.Apply(src)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := png.Encode(out, dst); err != nil {
		return fmt.Errorf("failed to encode %s: %w", outPath, err)
	}

	p.logger.Debug("tinted image", "input", inPath, "output", outPath, "factor", p.factor)
	return nil
}

func to8(f float32) uint8 {
	v := f * 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
