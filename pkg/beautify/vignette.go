package beautify

import(
	"math"

	"github.com/abworrall/photoedit/pkg/emath"
	"github.com/abworrall/photoedit/pkg/raster"
)

const(
	DefaultVignetteRadius = 0.7
	VignetteFloor         = 0.2 // never darken by more than 80%
)

// vignetteShape holds the geometry for one image size
type vignetteShape struct {
	cx, cy       float64
	maxDistance  float64
	radius       float64 // untouched inside this distance
}

func newVignetteShape(w, h int, radius float64) vignetteShape {
	cx, cy := float64(w) / 2.0, float64(h) / 2.0
	maxDistance := math.Sqrt(cx*cx + cy*cy)
	return vignetteShape{cx, cy, maxDistance, maxDistance * emath.ClampF64(radius, 0, 1)}
}

func (vs vignetteShape)factor(x, y int, intensity float64) float64 {
	dx, dy := float64(x) - vs.cx, float64(y) - vs.cy
	d := math.Sqrt(dx*dx + dy*dy)
	if d <= vs.radius {
		return 1.0
	}

	n := (d - vs.radius) / (vs.maxDistance - vs.radius)
	return math.Max(VignetteFloor, 1.0 - n*n*intensity)
}

// VignetteFactor is the brightness multiplier for pixel (x,y) of a w x h image.
func VignetteFactor(w, h, x, y int, intensity, radius float64) float64 {
	return newVignetteShape(w, h, radius).factor(x, y, intensity)
}

// VignetteMask returns the per-pixel factors, for diagnostics.
func VignetteMask(w, h int, intensity, radius float64) emath.FloatGrid {
	vs := newVignetteShape(w, h, radius)
	fg := emath.NewFloatGrid(w, h)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			fg.Set(x, y, vs.factor(x, y, intensity))
		}
	}
	return fg
}

func ApplyVignette(b *raster.Buffer, intensity, radius float64) *raster.Buffer {
	intensity = emath.ClampF64(intensity, 0, 1)
	if intensity <= 0 {
		return b.Clone()
	}

	vs := newVignetteShape(b.Width, b.Height, radius)
	out := raster.New(b.Width, b.Height)
	for y:=0; y<b.Height; y++ {
		for x:=0; x<b.Width; x++ {
			f := vs.factor(x, y, intensity)
			c := b.Get(x, y)
			scale := func(v uint8) uint8 { return uint8(float64(v) * f) }
			out.Put(x, y, c.WithRGB(scale(c.R()), scale(c.G()), scale(c.B())))
		}
	}
	return out
}
