package lut

import(
	"bytes"
	"image/png"
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/abworrall/photoedit/pkg/ecolor"
	"github.com/abworrall/photoedit/pkg/raster"
)

func randomBuffer(seed int64, w, h int) *raster.Buffer {
	rnd := rand.New(rand.NewSource(seed))
	b := raster.New(w, h)
	for i := range b.Pix {
		b.Pix[i] = ecolor.ARGB(rnd.Uint32())
	}
	return b
}

func absDiff(a, b uint8) int {
	if a > b { return int(a - b) }
	return int(b - a)
}

func TestQuantize(t *testing.T) {
	for v, expected := range map[uint8]int{0:0, 2:0, 3:1, 128:32, 254:63, 255:63} {
		if got := Quantize(v); got != expected {
			t.Errorf("Quantize(%d) = %d, expected %d", v, got, expected)
		}
	}
}

func TestNewCubeValidates(t *testing.T) {
	if _, err := NewCube("rect", raster.New(512, 256)); err == nil {
		t.Errorf("non-square atlas accepted")
	}
	if _, err := NewCube("odd", raster.New(100, 100)); err == nil {
		t.Errorf("atlas side 100 accepted")
	}
	if _, err := NewCube("ok", raster.New(64, 64)); err != nil {
		t.Errorf("64px atlas: %v", err)
	}
}

func TestSmallAtlasStaysInTile(t *testing.T) {
	// 64px atlas: 8px tiles, each pixel tagged with its position in the tile
	atlas := raster.New(64, 64)
	for y:=0; y<64; y++ {
		for x:=0; x<64; x++ {
			atlas.Put(x, y, ecolor.Pack(0xFF, uint8(x%8), uint8(y%8), uint8((y/8)*8 + x/8)))
		}
	}
	c, err := NewCube("small", atlas)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct{
		in, expected ecolor.ARGB
	}{
		{ecolor.Pack(0xFF, 0, 0, 0),       ecolor.Pack(0xFF, 0, 0, 0)},
		{ecolor.Pack(0xFF, 255, 255, 0),   ecolor.Pack(0xFF, 7, 7, 0)},
		{ecolor.Pack(0xFF, 255, 0, 255),   ecolor.Pack(0xFF, 7, 0, 63)},
		{ecolor.Pack(0xFF, 128, 128, 128), ecolor.Pack(0xFF, 4, 4, 32)},
	}

	for i, test := range tests {
		if got := c.Lookup(test.in); got != test.expected {
			t.Errorf("[%d] Lookup(%s) = %s, expected %s", i, test.in, got, test.expected)
		}
	}
}

func TestIdentityCubeIsNearlyIdentity(t *testing.T) {
	c, err := NewCube("identity", IdentityAtlas())
	if err != nil {
		t.Fatal(err)
	}

	src := randomBuffer(1, 64, 64)
	out := Apply(src, c, 1.0)
	for i := range src.Pix {
		s, o := src.Pix[i], out.Pix[i]
		if s.A() != o.A() {
			t.Fatalf("pixel %d: alpha changed %s -> %s", i, s, o)
		}
		if absDiff(s.R(), o.R()) > 3 || absDiff(s.G(), o.G()) > 3 || absDiff(s.B(), o.B()) > 3 {
			t.Fatalf("pixel %d: %s -> %s", i, s, o)
		}
	}
}

func TestApplyZeroIntensity(t *testing.T) {
	atlas, _ := GenerateAtlas("vintage")
	c, _ := NewCube("vintage", atlas)

	src := randomBuffer(2, 16, 16)
	if diff := cmp.Diff(src.Pix, Apply(src, c, 0).Pix); diff != "" {
		t.Errorf("zero intensity changed pixels (-want +got):\n%s", diff)
	}
	if Apply(src, nil, 1.0) != src {
		t.Errorf("nil cube should be the identity")
	}
}

func TestGrayscaleCube(t *testing.T) {
	atlas, _ := GenerateAtlas("grayscale")
	c, _ := NewCube("grayscale", atlas)

	out := Apply(randomBuffer(3, 16, 16), c, 1.0)
	for i, p := range out.Pix {
		if p.R() != p.G() || p.G() != p.B() {
			t.Fatalf("pixel %d not gray: %s", i, p)
		}
	}
}

func TestRegistryIdentityReturnsInput(t *testing.T) {
	reg := NewRegistry(GeneratedSource{}, DefaultCatalog())
	src := randomBuffer(4, 8, 8)
	for _, intensity := range []float64{0, 0.5, 1} {
		if reg.Apply(src, IdentityID, intensity) != src {
			t.Errorf("identity @%.1f did not return its input", intensity)
		}
	}
	if reg.Cached() != 0 {
		t.Errorf("identity should not load a cube")
	}
}

func TestRegistryFallsBackOnMissingAtlas(t *testing.T) {
	reg := NewRegistry(DirSource{FS:fstest.MapFS{}}, DefaultCatalog())
	src := randomBuffer(5, 8, 8)

	if out := reg.Apply(src, "warm", 1.0); out != src {
		t.Errorf("missing atlas should give back the source")
	}
	if out := reg.Apply(src, "no-such-filter", 1.0); out != src {
		t.Errorf("unknown filter should give back the source")
	}
	if reg.Cached() != 0 {
		t.Errorf("failed loads were cached")
	}
}

func TestRegistryFallsBackOnCorruptAtlas(t *testing.T) {
	fsys := fstest.MapFS{"warm.png": &fstest.MapFile{Data: []byte("not a png")}}
	reg := NewRegistry(DirSource{FS:fsys}, DefaultCatalog())
	src := randomBuffer(6, 8, 8)

	if out := reg.Apply(src, "warm", 1.0); out != src {
		t.Errorf("corrupt atlas should give back the source")
	}
}

func TestDirSource(t *testing.T) {
	atlas, _ := GenerateAtlas("cool")
	var buf bytes.Buffer
	if err := png.Encode(&buf, atlas); err != nil {
		t.Fatal(err)
	}

	reg := NewRegistry(DirSource{FS:fstest.MapFS{"cool.png": &fstest.MapFile{Data: buf.Bytes()}}}, DefaultCatalog())
	if err := reg.Preload(); err == nil {
		t.Errorf("preload should fail, only one atlas is present")
	}

	c, err := reg.Cube("cool")
	if err != nil {
		t.Fatal(err)
	}

	// cool: red down, blue up
	out := c.Lookup(ecolor.Pack(0xFF, 200, 200, 200))
	if !(out.R() < 200 && out.B() > 200) {
		t.Errorf("cool lookup gave %s", out)
	}

	reg.Release()
	if reg.Cached() != 0 {
		t.Errorf("release left %d cubes", reg.Cached())
	}
}

func TestGenerateUnknownPreset(t *testing.T) {
	if _, err := GenerateAtlas("psychedelic"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestCatalogYaml(t *testing.T) {
	yml := `
filters:
- id: identity
  name: Original
- id: teal
  name: Teal & Orange
  category: professional
  defaultintensity: 0.6
`
	filters, err := newCatalogFromYaml([]byte(yml))
	if err != nil {
		t.Fatal(err)
	}

	expected := []Filter{
		{ID: "identity", Name: "Original"},
		{ID: "teal", Name: "Teal & Orange", File: "teal.png", Category: "professional", DefaultIntensity: 0.6},
	}
	if diff := cmp.Diff(expected, filters); diff != "" {
		t.Errorf("catalog (-want +got):\n%s", diff)
	}

	if _, err := newCatalogFromYaml([]byte("filters:\n- name: anon\n")); err == nil {
		t.Errorf("entry with no id accepted")
	}
}
