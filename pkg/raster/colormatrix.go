package raster

import(
	"github.com/abworrall/photoedit/pkg/ecolor"
	"github.com/abworrall/photoedit/pkg/emath"
)

// ApplyColorMatrix transforms every pixel by m, rounding and
// clamping each channel to [0,255]. Alpha is passed through.
func ApplyColorMatrix(b *Buffer, m emath.ColorMatrix) *Buffer {
	return b.Map(func(c ecolor.ARGB) ecolor.ARGB {
		r, g, bl, _ := m.Transform(float64(c.R()), float64(c.G()), float64(c.B()), float64(c.A()))
		return c.WithRGB(emath.ToByte(r), emath.ToByte(g), emath.ToByte(bl))
	})
}
