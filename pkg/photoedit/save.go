package photoedit

import(
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/abworrall/photoedit/pkg/emath"
	"github.com/abworrall/photoedit/pkg/raster"
)

// hdrView presents a Buffer as linear light, for the Radiance encoder.
// Implements hdr.Image.
type hdrView struct {
	b *raster.Buffer
}

func (v hdrView)ColorModel() color.Model       { return hdrcolor.RGBModel }
func (v hdrView)Bounds() image.Rectangle       { return v.b.Bounds() }
func (v hdrView)At(x, y int) color.Color       { return v.HDRAt(x, y) }
func (v hdrView)Size() int                     { return v.b.Width * v.b.Height }

func (v hdrView)HDRAt(x, y int) hdrcolor.Color {
	c := v.b.Get(x, y)
	return hdrcolor.RGB{
		R: emath.GammaDecode_F64(float64(c.R()) / 255.0),
		G: emath.GammaDecode_F64(float64(c.G()) / 255.0),
		B: emath.GammaDecode_F64(float64(c.B()) / 255.0),
	}
}

// Save encodes by file extension; jpg, png, tif, bmp and hdr (Radiance RGBE).
func Save(b *raster.Buffer, filename string, jpegQuality int) error {
	writer, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	}
	defer writer.Close()

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".jpg", ".jpeg": err = jpeg.Encode(writer, b.ToNRGBA(), &jpeg.Options{Quality:jpegQuality})
	case ".png":          err = png.Encode(writer, b.ToNRGBA())
	case ".tif", ".tiff": err = tiff.Encode(writer, b.ToNRGBA(), &tiff.Options{Compression:tiff.Deflate})
	case ".bmp":          err = bmp.Encode(writer, b.ToNRGBA())
	case ".hdr":          err = rgbe.Encode(writer, hdrView{b})
	default:
		err = fmt.Errorf("unknown image type '%s'", ext)
	}

	if err != nil {
		return fmt.Errorf("encoding '%s': %v", filename, err)
	}
	return writer.Close()
}
