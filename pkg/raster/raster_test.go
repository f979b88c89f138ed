package raster

import(
	"image"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abworrall/photoedit/pkg/ecolor"
	"github.com/abworrall/photoedit/pkg/emath"
)

func randomBuffer(seed int64, w, h int) *Buffer {
	rnd := rand.New(rand.NewSource(seed))
	b := New(w, h)
	for i := range b.Pix {
		b.Pix[i] = ecolor.ARGB(rnd.Uint32())
	}
	return b
}

// 3x2, pixel value encodes its position
func labelled() *Buffer {
	b := New(3, 2)
	for y:=0; y<2; y++ {
		for x:=0; x<3; x++ {
			b.Put(x, y, ecolor.ARGB(y*10 + x))
		}
	}
	return b
}

func TestCloneIsDeep(t *testing.T) {
	b := randomBuffer(1, 4, 4)
	b2 := b.Clone()
	b2.Pix[0] ^= 0xFF
	if b.Pix[0] == b2.Pix[0] {
		t.Errorf("clone shares backing array")
	}
}

func TestIdentityMatrixIsNoop(t *testing.T) {
	b := randomBuffer(2, 32, 17)
	out := ApplyColorMatrix(b, emath.IdentityColorMatrix())
	if diff := cmp.Diff(b.Pix, out.Pix); diff != "" {
		t.Errorf("identity changed pixels (-want +got):\n%s", diff)
	}
}

func TestGrayscaleIsIdempotent(t *testing.T) {
	b := randomBuffer(3, 32, 32)
	once := ApplyColorMatrix(b, emath.SaturationMatrix(0))
	twice := ApplyColorMatrix(once, emath.SaturationMatrix(0))
	if diff := cmp.Diff(once.Pix, twice.Pix); diff != "" {
		t.Errorf("grayscale not a fixed point (-once +twice):\n%s", diff)
	}
}

func TestContrastClamps(t *testing.T) {
	b := New(2, 1)
	b.Pix[0] = ecolor.Pack(0x7F, 0, 10, 20)
	b.Pix[1] = ecolor.Pack(0xFF, 255, 250, 240)

	out := ApplyColorMatrix(b, emath.ContrastMatrix(2.0))
	expected := []ecolor.ARGB{ecolor.Pack(0x7F, 0, 0, 0), ecolor.Pack(0xFF, 255, 255, 255)}
	if diff := cmp.Diff(expected, out.Pix); diff != "" {
		t.Errorf("contrast(2) (-want +got):\n%s", diff)
	}
}

func TestTransformsLeaveInputAlone(t *testing.T) {
	b := randomBuffer(4, 5, 3)
	orig := b.Clone()

	ApplyColorMatrix(b, emath.ContrastMatrix(1.5))
	Rotate(b, 90)
	Flip(b, Vertical)
	Crop(b, 1, 1, 2, 2)

	if !b.Equal(orig) {
		t.Errorf("input was modified")
	}
}

func TestRotate(t *testing.T) {
	b := labelled()

	r90 := Rotate(b, 90)
	if r90.Width != 2 || r90.Height != 3 {
		t.Fatalf("rotate 90: got %s", r90)
	}
	// First row of the rotated image is the first column, read bottom to top
	if diff := cmp.Diff([]ecolor.ARGB{10, 0}, r90.Pix[0:2]); diff != "" {
		t.Errorf("rotate 90 (-want +got):\n%s", diff)
	}

	r180 := Rotate(b, 180)
	if diff := cmp.Diff([]ecolor.ARGB{12, 11, 10, 2, 1, 0}, r180.Pix); diff != "" {
		t.Errorf("rotate 180 (-want +got):\n%s", diff)
	}

	if !Rotate(Rotate(b, 90), 270).Equal(b) {
		t.Errorf("90 then 270 is not a round trip")
	}
	if !Rotate(b, -90).Equal(Rotate(b, 270)) {
		t.Errorf("-90 should match 270")
	}
}

func TestQuarterTurns(t *testing.T) {
	for deg, expected := range map[float64]int{0:0, 90:1, 180:2, 270:3, 360:0, 450:1, -90:3, 100:1, 359:0} {
		if got := QuarterTurns(deg); got != expected {
			t.Errorf("QuarterTurns(%v) = %d, expected %d", deg, got, expected)
		}
	}
}

func TestFlip(t *testing.T) {
	b := labelled()
	if diff := cmp.Diff([]ecolor.ARGB{2, 1, 0, 12, 11, 10}, Flip(b, Horizontal).Pix); diff != "" {
		t.Errorf("flip h (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]ecolor.ARGB{10, 11, 12, 0, 1, 2}, Flip(b, Vertical).Pix); diff != "" {
		t.Errorf("flip v (-want +got):\n%s", diff)
	}
}

func TestCrop(t *testing.T) {
	b := labelled()

	tests := []struct{
		x, y, w, h int
		expected   []ecolor.ARGB
		bounds     image.Rectangle
	}{
		{1, 0, 2, 2, []ecolor.ARGB{1, 2, 11, 12}, image.Rect(0, 0, 2, 2)},
		{2, 1, 10, 10, []ecolor.ARGB{12}, image.Rect(0, 0, 1, 1)},    // clamped
		{-1, -1, 2, 2, []ecolor.ARGB{0}, image.Rect(0, 0, 1, 1)},     // clamped
		{5, 5, 2, 2, b.Pix, b.Bounds()},                               // empty: the source
		{0, 0, -3, 2, b.Pix, b.Bounds()},
		{1, 0, math.MaxInt, 2, []ecolor.ARGB{1, 2, 11, 12}, image.Rect(0, 0, 2, 2)},
		{1, 1, math.MaxInt, math.MaxInt, []ecolor.ARGB{11, 12}, image.Rect(0, 0, 2, 1)},
	}

	for i, test := range tests {
		out := Crop(b, test.x, test.y, test.w, test.h)
		if out.Bounds() != test.bounds {
			t.Errorf("[%d] bounds %v, expected %v", i, out.Bounds(), test.bounds)
		}
		if diff := cmp.Diff(test.expected, out.Pix); diff != "" {
			t.Errorf("[%d] (-want +got):\n%s", i, diff)
		}
	}
}

func TestImageInterface(t *testing.T) {
	b := New(2, 2)
	b.Set(1, 0, ecolor.Pack(0xFF, 1, 2, 3).NRGBA())
	b.Set(5, 5, ecolor.White.NRGBA()) // ignored

	if got := FromImage(b); !got.Equal(b) {
		t.Errorf("FromImage round trip failed")
	}
	if b.Get(1, 0) != ecolor.Pack(0xFF, 1, 2, 3) {
		t.Errorf("Set: got %s", b.Get(1, 0))
	}
}
