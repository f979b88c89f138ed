package raster

import(
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/abworrall/photoedit/pkg/emath"
)

type Axis int

const(
	Horizontal Axis = iota // mirror left/right
	Vertical               // mirror top/bottom
)

func (a Axis)String() string {
	switch a {
	case Horizontal: return "horizontal"
	case Vertical:   return "vertical"
	default:         return fmt.Sprintf("axis(%d)", int(a))
	}
}

func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "h", "horizontal": return Horizontal, nil
	case "v", "vertical":   return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("no flip axis named '%s'", s)
	}
}

// QuarterTurns normalizes degrees into [0,360) and snaps to the
// nearest multiple of 90, returning the number of clockwise quarter
// turns (0..3).
func QuarterTurns(degrees float64) int {
	d := math.Mod(degrees, 360)
	if d < 0 { d += 360 }
	return int(math.Round(d / 90)) % 4
}

// Rotate turns the image clockwise. Only quarter turns are lossless,
// so other angles get snapped.
func Rotate(b *Buffer, degrees float64) *Buffer {
	turns := QuarterTurns(degrees)
	if turns == 0 {
		return b.Clone()
	}

	w, h := b.Width, b.Height
	if turns % 2 == 1 {
		w, h = h, w
	}
	return remap(b, w, h, emath.QuarterTurn(turns, b.Width, b.Height))
}

func Flip(b *Buffer, axis Axis) *Buffer {
	return remap(b, b.Width, b.Height, emath.Mirror(axis == Horizontal, b.Width, b.Height))
}

// remap moves each source pixel to wherever m sends it.
func remap(b *Buffer, w, h int, m emath.Aff3) *Buffer {
	out := New(w, h)
	for y:=0; y<b.Height; y++ {
		for x:=0; x<b.Width; x++ {
			dx, dy := m.ApplyInt(x, y)
			out.Put(dx, dy, b.Get(x, y))
		}
	}
	return out
}

// CropRect clamps the requested rectangle to the buffer.
func (b *Buffer)CropRect(x, y, w, h int) image.Rectangle {
	if w < 0 { w = 0 }
	if h < 0 { h = 0 }
	return image.Rect(x, y, satAdd(x, w), satAdd(y, h)).Intersect(b.Bounds())
}

// satAdd is a+n for n >= 0, stuck at MaxInt rather than wrapping.
func satAdd(a, n int) int {
	if a > 0 && n > math.MaxInt - a {
		return math.MaxInt
	}
	return a + n
}

// Crop copies out a region, clamped to the source bounds. If nothing
// is left after clamping, you get a copy of the source.
func Crop(b *Buffer, x, y, w, h int) *Buffer {
	r := b.CropRect(x, y, w, h)
	if r.Empty() {
		return b.Clone()
	}

	out := New(r.Dx(), r.Dy())
	for row:=0; row<r.Dy(); row++ {
		src := (r.Min.Y + row)*b.Width + r.Min.X
		copy(out.Pix[row*out.Width:(row+1)*out.Width], b.Pix[src:src+r.Dx()])
	}
	return out
}
