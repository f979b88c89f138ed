package photoedit

import(
	"log"

	"github.com/abworrall/photoedit/pkg/beautify"
	"github.com/abworrall/photoedit/pkg/collage"
	"github.com/abworrall/photoedit/pkg/ecolor"
	"github.com/abworrall/photoedit/pkg/emath"
	"github.com/abworrall/photoedit/pkg/raster"
)

// Clamped pulls each slider into its legal range.
func (a Adjustments)Clamped() Adjustments {
	return Adjustments{
		Brightness: emath.ClampInt(a.Brightness, -100, 100),
		Contrast:   emath.ClampF64(a.Contrast, 0.5, 2.0),
		Saturation: emath.ClampF64(a.Saturation, 0, 2.0),
	}
}

// Matrix composes brightness, then contrast, then saturation.
func (a Adjustments)Matrix() emath.ColorMatrix {
	a = a.Clamped()
	return emath.ComposeColorMatrices(
		emath.BrightnessMatrix(a.Brightness),
		emath.ContrastMatrix(a.Contrast),
		emath.SaturationMatrix(a.Saturation),
	)
}

// ApplyAdjustments runs the three tonal sliders over the image in a
// single pass. Out of range values are clamped.
func ApplyAdjustments(b *raster.Buffer, brightness int, contrast, saturation float64) *raster.Buffer {
	a := Adjustments{Brightness:brightness, Contrast:contrast, Saturation:saturation}
	return raster.ApplyColorMatrix(b, a.Matrix())
}

func ApplyBeautify(b *raster.Buffer, e beautify.Effect, intensity float64) *raster.Buffer {
	return e.Apply(b, intensity)
}

// ComposeCollage lays out the images using the named template. An
// unknown template falls back to the grid for len(images).
func ComposeCollage(images []*raster.Buffer, templateID string, outW, outH, spacing int, bg ecolor.ARGB) *raster.Buffer {
	t, err := collage.Lookup(templateID)
	if err != nil {
		t = collage.GridTemplate(len(images))
		log.Printf("%v; using %s\n", err, t)
	}
	return collage.Compose(images, t, outW, outH, spacing, bg)
}
