package lut

import(
	"fmt"

	"github.com/abworrall/photoedit/pkg/ecolor"
	"github.com/abworrall/photoedit/pkg/emath"
	"github.com/abworrall/photoedit/pkg/raster"
)

// The built-in looks. Each one is a per-color function, that gets
// baked into an atlas.

const AtlasSide = GridSize * TilesPerRow // 512

type PresetFunc func(r, g, b int) (int, int, int)

var(
	Presets = map[string]PresetFunc{
		"identity":  func(r, g, b int) (int, int, int) { return r, g, b },
		"grayscale": presetGrayscale,
		"warm":      presetWarm,
		"cool":      presetCool,
		"vintage":   presetVintage,
		"vivid":     presetVivid,
		"romantic":  presetRomantic,
		"cinematic": presetCinematic,
	}
)

// IdentityAtlas maps every grid cell back onto its own color.
func IdentityAtlas() *raster.Buffer {
	atlas := raster.New(AtlasSide, AtlasSide)
	for bi:=0; bi<GridSize; bi++ {
		row, col := bi / TilesPerRow, bi % TilesPerRow
		for gi:=0; gi<GridSize; gi++ {
			for ri:=0; ri<GridSize; ri++ {
				x := col*GridSize + ri
				y := row*GridSize + gi
				atlas.Put(x, y, ecolor.Pack(0xFF, gridValue(ri), gridValue(gi), gridValue(bi)))
			}
		}
	}
	return atlas
}

func gridValue(i int) uint8 { return uint8(i * 255 / (GridSize-1)) }

// GenerateAtlas bakes the named preset into a new atlas.
func GenerateAtlas(name string) (*raster.Buffer, error) {
	f, exists := Presets[name]
	if !exists {
		return nil, fmt.Errorf("no LUT preset named '%s'", name)
	}

	return IdentityAtlas().Map(func(c ecolor.ARGB) ecolor.ARGB {
		r, g, b := f(int(c.R()), int(c.G()), int(c.B()))
		return c.WithRGB(toByte(r), toByte(g), toByte(b))
	}), nil
}

func toByte(v int) uint8 { return uint8(emath.ClampInt(v, 0, 255)) }

func presetGrayscale(r, g, b int) (int, int, int) {
	gray := int(emath.LumR*float64(r) + emath.LumG*float64(g) + emath.LumB*float64(b))
	return gray, gray, gray
}

// warmer: lift red & yellow, pull blue
func presetWarm(r, g, b int) (int, int, int) {
	return int(float64(r) * 1.15), int(float64(g) * 1.05), int(float64(b) * 0.85)
}

func presetCool(r, g, b int) (int, int, int) {
	return int(float64(r) * 0.85), g, int(float64(b) * 1.15)
}

// sepia
func presetVintage(r, g, b int) (int, int, int) {
	fr, fg, fb := float64(r), float64(g), float64(b)
	return int(0.393*fr + 0.769*fg + 0.189*fb),
		int(0.349*fr + 0.686*fg + 0.168*fb),
		int(0.272*fr + 0.534*fg + 0.131*fb)
}

// push each channel away from the gray average
func presetVivid(r, g, b int) (int, int, int) {
	if r == g && g == b {
		return r, g, b
	}
	const boost = 1.5
	avg := float64(r + g + b) / 3.0
	push := func(v int) int { return int(avg + (float64(v) - avg) * boost) }
	return push(r), push(g), push(b)
}

// pinkish, slightly lifted
func presetRomantic(r, g, b int) (int, int, int) {
	return int(float64(r)*1.1 + 10), int(float64(g)*0.95 + 5), int(float64(b)*1.05 + 8)
}

// blue shadows, yellow highlights, extra contrast
func presetCinematic(r, g, b int) (int, int, int) {
	fr, fg, fb := float64(r), float64(g), float64(b)
	if (fr + fg + fb) / 3.0 / 255.0 < 0.5 {
		r, g, b = int(fr * 0.9), int(fg * 0.95), int(fb * 1.1)
	} else {
		r, g, b = int(fr * 1.05), int(fg * 1.02), int(fb * 0.95)
	}

	contrast := func(v int) int { return int(float64(v - 128) * 1.2 + 128) }
	return contrast(r), contrast(g), contrast(b)
}
