package lut

import(
	"fmt"
	"image"
	"math"

	"github.com/abworrall/photoedit/pkg/ecolor"
	"github.com/abworrall/photoedit/pkg/emath"
	"github.com/abworrall/photoedit/pkg/raster"
)

// GridSize is the number of samples per color axis. The atlas holds
// the blue axis as an 8x8 arrangement of tiles; within a tile, red
// runs along x and green along y.
const GridSize = 64
const TilesPerRow = 8

// A Cube is a 3D color lookup table, stored as its atlas image.
type Cube struct {
	Name      string
	atlas    *raster.Buffer
	blockSize int
}

func NewCube(name string, img image.Image) (*Cube, error) {
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return nil, fmt.Errorf("lut '%s': atlas %dx%d is not square", name, b.Dx(), b.Dy())
	} else if b.Dx() == 0 || b.Dx() % TilesPerRow != 0 {
		return nil, fmt.Errorf("lut '%s': atlas side %d not a multiple of %d", name, b.Dx(), TilesPerRow)
	}

	var atlas *raster.Buffer
	if buf, ok := img.(*raster.Buffer); ok {
		atlas = buf.Clone()
	} else {
		atlas = raster.FromImage(img)
	}

	return &Cube{Name:name, atlas:atlas, blockSize:atlas.Width / TilesPerRow}, nil
}

func (c *Cube)String() string {
	return fmt.Sprintf("lut.Cube[%s, %dpx atlas]", c.Name, c.atlas.Width)
}

// Quantize maps a channel value onto the grid, round(v*(N-1)/255)
func Quantize(v uint8) int {
	return int(math.Round(float64(v) * float64(GridSize-1) / 255.0))
}

// AtlasPoint is where the cell for a quantized (r,g,b) lives. Atlases
// smaller than 512px have fewer than GridSize cells per tile side, so
// red and green get rescaled to fit inside the tile.
func (c *Cube)AtlasPoint(ri, gi, bi int) image.Point {
	bi = emath.ClampInt(bi, 0, GridSize-1)
	row := bi / TilesPerRow
	col := bi % TilesPerRow
	x := col*c.blockSize + c.inTile(ri)
	y := row*c.blockSize + c.inTile(gi)
	return image.Point{x, y}
}

func (c *Cube)inTile(i int) int {
	i = emath.ClampInt(i, 0, GridSize-1)
	if c.blockSize == GridSize {
		return i
	}
	return int(math.Round(float64(i) * float64(c.blockSize-1) / float64(GridSize-1)))
}

// Lookup is nearest-neighbour; no interpolation between cells.
func (c *Cube)Lookup(col ecolor.ARGB) ecolor.ARGB {
	p := c.AtlasPoint(Quantize(col.R()), Quantize(col.G()), Quantize(col.B()))
	return c.atlas.Get(p.X, p.Y)
}

// Apply grades the buffer through the cube, blending the result with
// the source by intensity. Alpha is unchanged. A nil cube is treated
// as the identity.
func Apply(b *raster.Buffer, c *Cube, intensity float64) *raster.Buffer {
	if c == nil {
		return b
	}

	intensity = emath.ClampF64(intensity, 0, 1)
	return b.Map(func(src ecolor.ARGB) ecolor.ARGB {
		return ecolor.Blend(src, c.Lookup(src), intensity)
	})
}
