package beautify

import(
	"fmt"
	"log"
	"math"

	"github.com/codahale/hdrhistogram"
	"github.com/skypies/util/histogram"

	"github.com/abworrall/photoedit/pkg/emath"
	"github.com/abworrall/photoedit/pkg/raster"
)

// Stats are the global image measurements that auto-enhance works from.
type Stats struct {
	MeanLuma       float64
	LumaStdDev     float64 // population std dev, a proxy for contrast
	MeanSaturation float64
	LumaP05        int64
	LumaP95        int64
	Pixels         int64
}

func (s Stats)String() string {
	return fmt.Sprintf("Stats[luma %.1f±%.1f (p5=%d,p95=%d), sat %.3f, %d px]",
		s.MeanLuma, s.LumaStdDev, s.LumaP05, s.LumaP95, s.MeanSaturation, s.Pixels)
}

// Correction is what auto-enhance wants to do to the image.
type Correction struct {
	BrightnessDelta  int
	ContrastFactor   float64
	SaturationFactor float64
}

func (c Correction)String() string {
	return fmt.Sprintf("Correction[b%+d, c%.3f, s%.3f]", c.BrightnessDelta, c.ContrastFactor, c.SaturationFactor)
}

func (c Correction)Matrix() emath.ColorMatrix {
	return emath.ComposeColorMatrices(
		emath.BrightnessMatrix(c.BrightnessDelta),
		emath.ContrastMatrix(c.ContrastFactor),
		emath.SaturationMatrix(c.SaturationFactor),
	)
}

// Scale fades the correction towards "do nothing".
func (c Correction)Scale(intensity float64) Correction {
	return Correction{
		BrightnessDelta:  int(float64(c.BrightnessDelta) * intensity),
		ContrastFactor:   1.0 + (c.ContrastFactor - 1.0) * intensity,
		SaturationFactor: 1.0 + (c.SaturationFactor - 1.0) * intensity,
	}
}

const(
	MaxContrastFactor   = 1.3
	MaxSaturationFactor = 1.2
)

type Analyzer struct {
	Verbosity int
}

func (a Analyzer)Measure(b *raster.Buffer) Stats {
	lumas := hdrhistogram.New(1, 255, 3) // unit resolution over the whole range
	sats := histogram.Histogram{NumBuckets:20, ValMin:0, ValMax:100}
	totalSat := 0.0

	for _, c := range b.Pix {
		lumas.RecordValue(int64(c.Luma()))
		s := c.Saturation()
		totalSat += s
		if a.Verbosity > 0 {
			sats.Add(histogram.ScalarVal(int(s * 100)))
		}
	}

	if len(b.Pix) == 0 {
		return Stats{}
	}

	stats := Stats{
		MeanLuma:       lumas.Mean(),
		LumaStdDev:     lumas.StdDev(),
		MeanSaturation: totalSat / float64(len(b.Pix)),
		LumaP05:        lumas.ValueAtQuantile(5),
		LumaP95:        lumas.ValueAtQuantile(95),
		Pixels:         lumas.TotalCount(),
	}

	if a.Verbosity > 0 {
		log.Printf("%s\nsaturation%%: %v\n", stats, sats)
	}

	return stats
}

// Correct turns measurements into bounded corrections. Brightness is
// pulled towards ~128, pushing harder the darker the image; contrast
// towards a std dev of 45-50; saturation towards a mean of 0.45.
func Correct(s Stats) Correction {
	c := Correction{ContrastFactor:1.0, SaturationFactor:1.0}

	switch {
	case s.MeanLuma < 100: c.BrightnessDelta = int((120 - s.MeanLuma) * 0.5)
	case s.MeanLuma < 120: c.BrightnessDelta = int((128 - s.MeanLuma) * 0.3)
	case s.MeanLuma > 150: c.BrightnessDelta = int((135 - s.MeanLuma) * 0.2)
	}

	switch {
	case s.LumaStdDev < 40: c.ContrastFactor = 1.0 + (45 - s.LumaStdDev) / 100.0
	case s.LumaStdDev < 50: c.ContrastFactor = 1.0 + (50 - s.LumaStdDev) / 200.0
	}
	c.ContrastFactor = math.Min(c.ContrastFactor, MaxContrastFactor)

	switch {
	case s.MeanSaturation < 0.35: c.SaturationFactor = 1.0 + (0.45 - s.MeanSaturation) * 0.5
	case s.MeanSaturation < 0.40: c.SaturationFactor = 1.0 + (0.45 - s.MeanSaturation) * 0.3
	}
	c.SaturationFactor = math.Min(c.SaturationFactor, MaxSaturationFactor)

	return c
}

func (a Analyzer)Analyze(b *raster.Buffer) Correction {
	c := Correct(a.Measure(b))
	if a.Verbosity > 0 {
		log.Printf("auto-enhance: %s\n", c)
	}
	return c
}

// Analyze works out the auto-enhance correction for an image.
func Analyze(b *raster.Buffer) Correction {
	return Analyzer{}.Analyze(b)
}

func ApplyAutoEnhance(b *raster.Buffer, intensity float64) *raster.Buffer {
	intensity = emath.ClampF64(intensity, 0, 1)
	if intensity <= 0 {
		return b.Clone()
	}

	c := Analyze(b).Scale(intensity)
	return raster.ApplyColorMatrix(b, c.Matrix())
}
