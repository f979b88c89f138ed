package ecolor

import(
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/abworrall/photoedit/pkg/emath"
)

// An ARGB is a packed, non-premultiplied 0xAARRGGBB sample.
type ARGB uint32

const(
	Black ARGB = 0xFF000000
	White ARGB = 0xFFFFFFFF
)

func Pack(a, r, g, b uint8) ARGB {
	return ARGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c ARGB)A() uint8 { return uint8(c >> 24) }
func (c ARGB)R() uint8 { return uint8(c >> 16) }
func (c ARGB)G() uint8 { return uint8(c >> 8) }
func (c ARGB)B() uint8 { return uint8(c) }

func (c ARGB)Unpack() (a, r, g, b uint8) {
	return c.A(), c.R(), c.G(), c.B()
}

// WithRGB keeps the alpha, swaps in new color channels
func (c ARGB)WithRGB(r, g, b uint8) ARGB {
	return Pack(c.A(), r, g, b)
}

func (c ARGB)NRGBA() color.NRGBA {
	return color.NRGBA{R:c.R(), G:c.G(), B:c.B(), A:c.A()}
}

func FromColor(col color.Color) ARGB {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return Pack(n.A, n.R, n.G, n.B)
}

func (c ARGB)String() string {
	return fmt.Sprintf("#%02x%02x%02x/%02x", c.R(), c.G(), c.B(), c.A())
}

// Luma is the integer perceptual luminance, truncated.
func (c ARGB)Luma() int {
	return int(emath.LumR*float64(c.R()) + emath.LumG*float64(c.G()) + emath.LumB*float64(c.B()))
}

// Saturation is the HSV saturation, (max-min)/max; 0 for black.
func (c ARGB)Saturation() float64 {
	col := colorful.Color{
		R: float64(c.R()) / 255.0,
		G: float64(c.G()) / 255.0,
		B: float64(c.B()) / 255.0,
	}
	_, s, _ := col.Hsv()
	if math.IsNaN(s) {
		return 0
	}
	return s
}

// Blend mixes each color channel as src*(1-t) + dst*t, rounded. The
// alpha of src is kept.
func Blend(src, dst ARGB, t float64) ARGB {
	mix := func(a, b uint8) uint8 {
		return emath.ToByte(float64(a)*(1.0-t) + float64(b)*t)
	}
	return src.WithRGB(mix(src.R(), dst.R()), mix(src.G(), dst.G()), mix(src.B(), dst.B()))
}

// ParseHex reads "#rrggbb" (opaque) or "#aarrggbb".
func ParseHex(s string) (ARGB, error) {
	if len(s) == 9 && s[0] == '#' {
		var a uint8
		if _, err := fmt.Sscanf(s[1:3], "%02x", &a); err != nil {
			return 0, fmt.Errorf("color '%s': %v", s, err)
		}
		rgb, err := ParseHex("#" + s[3:])
		if err != nil {
			return 0, err
		}
		return Pack(a, rgb.R(), rgb.G(), rgb.B()), nil
	}

	col, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("color '%s': %v", s, err)
	}
	r, g, b := col.RGB255()
	return Pack(0xFF, r, g, b), nil
}
