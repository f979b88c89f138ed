package collage

import(
	"image"
	"math"

	"golang.org/x/image/draw"      // replace by "image/draw" at some point

	"github.com/abworrall/photoedit/pkg/ecolor"
	"github.com/abworrall/photoedit/pkg/raster"
)

const(
	PreviewSize    = 1080
	FinalSize      = 2160
	DefaultSpacing = 4
	MaxInputSide   = 1080 // inputs get shrunk to this before compositing
)

// FloatRect is a destination rect in output pixels, before rounding
type FloatRect struct {
	Left, Top, Right, Bottom float64
}

func (r FloatRect)Dx() float64 { return r.Right - r.Left }
func (r FloatRect)Dy() float64 { return r.Bottom - r.Top }

func (r FloatRect)Round() image.Rectangle {
	return image.Rect(int(math.Round(r.Left)), int(math.Round(r.Top)), int(math.Round(r.Right)), int(math.Round(r.Bottom)))
}

// DestRect maps a frame onto the output, insetting each edge by half
// the spacing, and clamping to the output.
func DestRect(f NormalizedRect, outW, outH, spacing int) FloatRect {
	half := float64(spacing) / 2.0
	return FloatRect{
		Left:   math.Max(0, f.Left * float64(outW) + half),
		Top:    math.Max(0, f.Top * float64(outH) + half),
		Right:  math.Min(float64(outW), f.Right * float64(outW) - half),
		Bottom: math.Min(float64(outH), f.Bottom * float64(outH) - half),
	}
}

// CenterCrop picks the largest centered region of a srcW x srcH image
// that has the aspect ratio of the destination.
func CenterCrop(srcW, srcH int, destW, destH float64) image.Rectangle {
	scale := math.Min(float64(srcW) / destW, float64(srcH) / destH)
	cropW := int(destW * scale)
	cropH := int(destH * scale)

	left := (srcW - cropW) / 2
	top := (srcH - cropH) / 2
	return image.Rect(left, top, left+cropW, top+cropH).Intersect(image.Rect(0, 0, srcW, srcH))
}

// Compose draws the images into the template's frames over a
// background. Extra images, or extra frames, are ignored; so are nil
// images.
func Compose(images []*raster.Buffer, t Template, outW, outH, spacing int, bg ecolor.ARGB) *raster.Buffer {
	out := raster.NewFilled(outW, outH, bg)

	for i:=0; i<len(images) && i<len(t.Frames); i++ {
		img := images[i]
		if img.Empty() {
			continue
		}

		dest := DestRect(t.Frames[i], outW, outH, spacing)
		if dest.Dx() <= 0 || dest.Dy() <= 0 {
			continue
		}
		dr := dest.Round()
		sr := CenterCrop(img.Width, img.Height, dest.Dx(), dest.Dy())
		if dr.Empty() || sr.Empty() {
			continue
		}

		blit(out, dr, img, sr)
	}

	return out
}

// blit scales src[sr] into dst[dr], bilinear. The scaling happens in an
// RGBA scratch image, so x/image/draw can take its fast path.
func blit(dst *raster.Buffer, dr image.Rectangle, src *raster.Buffer, sr image.Rectangle) {
	scratch := image.NewRGBA(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	draw.BiLinear.Scale(scratch, scratch.Bounds(), src.ToNRGBA(), sr, draw.Src, nil)

	for y:=0; y<dr.Dy(); y++ {
		for x:=0; x<dr.Dx(); x++ {
			dst.Put(dr.Min.X + x, dr.Min.Y + y, ecolor.FromColor(scratch.RGBAAt(x, y)))
		}
	}
}

// Preview is a quick square collage: thin spacing on white.
func Preview(images []*raster.Buffer, t Template, size int) *raster.Buffer {
	return Compose(images, t, size, size, 2, ecolor.White)
}

// Fit shrinks an image (keeping its aspect ratio) so that neither
// side exceeds max. Smaller images are returned as they are.
func Fit(b *raster.Buffer, max int) *raster.Buffer {
	if b.Width <= max && b.Height <= max {
		return b
	}

	scale := math.Min(float64(max) / float64(b.Width), float64(max) / float64(b.Height))
	w := int(math.Max(1, math.Round(float64(b.Width) * scale)))
	h := int(math.Max(1, math.Round(float64(b.Height) * scale)))

	out := raster.New(w, h)
	blit(out, out.Bounds(), b, b.Bounds())
	return out
}
