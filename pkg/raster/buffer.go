package raster

import(
	"fmt"
	"image"
	"image/color"

	"github.com/abworrall/photoedit/pkg/ecolor"
)

// Buffer is an in-memory image, one packed ARGB sample per pixel,
// row-major. Transforms never modify a Buffer; they return a new one.
// Implements image.Image and draw.Image.
type Buffer struct {
	Width  int
	Height int
	Pix    []ecolor.ARGB // len == Width*Height
}

func New(w, h int) *Buffer {
	if w < 0 { w = 0 }
	if h < 0 { h = 0 }
	return &Buffer{Width:w, Height:h, Pix:make([]ecolor.ARGB, w*h)}
}

func NewFilled(w, h int, c ecolor.ARGB) *Buffer {
	b := New(w, h)
	for i := range b.Pix {
		b.Pix[i] = c
	}
	return b
}

// FromImage copies any image into a new Buffer.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	b := New(bounds.Dx(), bounds.Dy())
	for y:=0; y<b.Height; y++ {
		for x:=0; x<b.Width; x++ {
			b.Pix[y*b.Width + x] = ecolor.FromColor(img.At(bounds.Min.X + x, bounds.Min.Y + y))
		}
	}
	return b
}

// Clone is a deep copy.
func (b *Buffer)Clone() *Buffer {
	b2 := &Buffer{Width:b.Width, Height:b.Height, Pix:make([]ecolor.ARGB, len(b.Pix))}
	copy(b2.Pix, b.Pix)
	return b2
}

func (b *Buffer)Get(x, y int) ecolor.ARGB    { return b.Pix[y*b.Width + x] }
func (b *Buffer)Put(x, y int, c ecolor.ARGB) { b.Pix[y*b.Width + x] = c }
func (b *Buffer)Empty() bool                 { return b == nil || b.Width == 0 || b.Height == 0 }

// GetClamped replicates the border for out-of-range coords
func (b *Buffer)GetClamped(x, y int) ecolor.ARGB {
	if x < 0 { x = 0 } else if x >= b.Width  { x = b.Width-1 }
	if y < 0 { y = 0 } else if y >= b.Height { y = b.Height-1 }
	return b.Pix[y*b.Width + x]
}

// Implement image.Image
func (b *Buffer)ColorModel() color.Model { return color.NRGBAModel }
func (b *Buffer)Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }
func (b *Buffer)At(x, y int) color.Color {
	if !(image.Point{x, y}.In(b.Bounds())) {
		return color.NRGBA{}
	}
	return b.Get(x, y).NRGBA()
}

// Implement draw.Image
func (b *Buffer)Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(b.Bounds())) {
		return
	}
	b.Put(x, y, ecolor.FromColor(c))
}

// ToNRGBA copies into a stdlib image, which the codecs and x/image
// scalers have fast paths for.
func (b *Buffer)ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	for i, c := range b.Pix {
		img.Pix[i*4+0] = c.R()
		img.Pix[i*4+1] = c.G()
		img.Pix[i*4+2] = c.B()
		img.Pix[i*4+3] = c.A()
	}
	return img
}

// Equal compares dimensions and every pixel.
func (b *Buffer)Equal(b2 *Buffer) bool {
	if b.Width != b2.Width || b.Height != b2.Height {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != b2.Pix[i] {
			return false
		}
	}
	return true
}

func (b *Buffer)String() string {
	return fmt.Sprintf("Buffer[%dx%d]", b.Width, b.Height)
}

// Map runs a per-pixel function over the buffer, into a new buffer.
func (b *Buffer)Map(f func(ecolor.ARGB) ecolor.ARGB) *Buffer {
	out := &Buffer{Width:b.Width, Height:b.Height, Pix:make([]ecolor.ARGB, len(b.Pix))}
	for i, c := range b.Pix {
		out.Pix[i] = f(c)
	}
	return out
}
