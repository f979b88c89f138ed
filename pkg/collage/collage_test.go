package collage

import(
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/abworrall/photoedit/pkg/ecolor"
	"github.com/abworrall/photoedit/pkg/raster"
)

var(
	red  = ecolor.Pack(0xFF, 255, 0, 0)
	blue = ecolor.Pack(0xFF, 0, 100, 255)
	gray = ecolor.Pack(0xFF, 128, 128, 128)
)

func TestNewTemplateValidates(t *testing.T) {
	if _, err := NewTemplate("x", "x", 3, []NormalizedRect{{0, 0, 1, 1}}); err == nil {
		t.Errorf("frame count mismatch accepted")
	}
	if _, err := NewTemplate("x", "x", 1, []NormalizedRect{{0, 0, 1.5, 1}}); err == nil {
		t.Errorf("out of range frame accepted")
	}
	if _, err := NewTemplate("x", "x", 1, []NormalizedRect{{0, 0, 1, 1}}); err != nil {
		t.Errorf("valid template rejected: %v", err)
	}
}

func TestCatalog(t *testing.T) {
	ids := func(ts []Template) []string {
		out := []string{}
		for _, t := range ts {
			out = append(out, t.ID)
		}
		return out
	}

	tests := map[int][]string{
		2: {"2-left-right", "2-top-bottom"},
		3: {"3-left1-right2", "3-right1-left2", "3-top1-bottom2"},
		4: {"4-grid", "4-top1-bottom3"},
		1: {"grid-1"},
		7: {"grid-7"},
	}
	for n, expected := range tests {
		ts := TemplatesFor(n)
		if diff := cmp.Diff(expected, ids(ts)); diff != "" {
			t.Errorf("TemplatesFor(%d) (-want +got):\n%s", n, diff)
		}
		for _, tmpl := range ts {
			if len(tmpl.Frames) != tmpl.ImageCount || tmpl.ImageCount != n {
				t.Errorf("%s: %d frames, %d images", tmpl, len(tmpl.Frames), tmpl.ImageCount)
			}
		}
	}
}

func TestGridTemplate(t *testing.T) {
	g := GridTemplate(5)
	if len(g.Frames) != 5 {
		t.Fatalf("got %d frames", len(g.Frames))
	}

	expected := NormalizedRect{0, 0.5, 1.0/3.0, 1.0}
	if diff := cmp.Diff(expected, g.Frames[3], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("frame 3 (-want +got):\n%s", diff)
	}
	// third column of the first row
	expected = NormalizedRect{2.0/3.0, 0, 1, 0.5}
	if diff := cmp.Diff(expected, g.Frames[2], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("frame 2 (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	if tmpl, err := Lookup("3-top1-bottom2"); err != nil || tmpl.ImageCount != 3 {
		t.Errorf("got %s, %v", tmpl, err)
	}
	if tmpl, err := Lookup("grid-6"); err != nil || len(tmpl.Frames) != 6 {
		t.Errorf("got %s, %v", tmpl, err)
	}
	for _, id := range []string{"", "5-star", "grid-x", "grid-0"} {
		if _, err := Lookup(id); err == nil {
			t.Errorf("Lookup(%q) should fail", id)
		}
	}
}

func TestCenterCrop(t *testing.T) {
	tests := []struct{
		srcW, srcH   int
		destW, destH float64
		expected     image.Rectangle
	}{
		{400, 200, 100, 100, image.Rect(100, 0, 300, 200)},
		{200, 400, 100, 100, image.Rect(0, 100, 200, 300)},
		{300, 300, 100, 50,  image.Rect(0, 75, 300, 225)},
		{100, 100, 100, 100, image.Rect(0, 0, 100, 100)},
	}

	for _, test := range tests {
		got := CenterCrop(test.srcW, test.srcH, test.destW, test.destH)
		if got != test.expected {
			t.Errorf("CenterCrop(%dx%d -> %.0fx%.0f) = %v, expected %v", test.srcW, test.srcH,
				test.destW, test.destH, got, test.expected)
		}
		// crop is at least as wide, relative to height, as the destination
		if float64(got.Dx()) / float64(got.Dy()) < test.destW / test.destH - 1e-9 {
			t.Errorf("crop %v narrower than destination", got)
		}
	}
}

func TestDestRect(t *testing.T) {
	got := DestRect(NormalizedRect{0, 0, 0.5, 1}, 100, 100, 4)
	if diff := cmp.Diff(FloatRect{2, 2, 48, 98}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	// huge spacing collapses the frame
	got = DestRect(NormalizedRect{0, 0, 0.5, 1}, 100, 100, 200)
	if got.Dx() > 0 {
		t.Errorf("expected an empty rect, got %v", got)
	}
}

func TestCompose(t *testing.T) {
	tmpl, _ := Lookup("2-left-right")
	images := []*raster.Buffer{
		raster.NewFilled(40, 80, red),
		raster.NewFilled(300, 100, blue),
	}

	out := Compose(images, tmpl, 200, 100, 10, gray)
	if out.Width != 200 || out.Height != 100 {
		t.Fatalf("got %s", out)
	}

	for _, test := range []struct{
		x, y     int
		expected ecolor.ARGB
	}{
		{0, 0, gray},     // in the spacing
		{50, 50, red},
		{150, 50, blue},
		{100, 50, gray},  // gutter between frames
		{150, 97, gray},
	} {
		if got := out.Get(test.x, test.y); got != test.expected {
			t.Errorf("(%d,%d): got %s, expected %s", test.x, test.y, got, test.expected)
		}
	}
}

func TestComposeTruncates(t *testing.T) {
	tmpl, _ := Lookup("2-top-bottom")

	// more images than frames
	three := []*raster.Buffer{raster.NewFilled(8, 8, red), raster.NewFilled(8, 8, red), raster.NewFilled(8, 8, blue)}
	out := Compose(three, tmpl, 50, 50, 0, gray)
	if got := out.Get(25, 40); got != red {
		t.Errorf("bottom frame: %s", got)
	}

	// fewer images than frames, and a nil one
	out = Compose([]*raster.Buffer{nil}, tmpl, 50, 50, 0, gray)
	if !out.Equal(raster.NewFilled(50, 50, gray)) {
		t.Errorf("expected background only")
	}
}

func TestPreviewAndFit(t *testing.T) {
	out := Preview([]*raster.Buffer{raster.NewFilled(10, 10, red)}, GridTemplate(1), 64)
	if out.Get(0, 0) != ecolor.White || out.Get(32, 32) != red {
		t.Errorf("preview: corner %s, center %s", out.Get(0, 0), out.Get(32, 32))
	}

	big := raster.NewFilled(2000, 1000, blue)
	small := Fit(big, MaxInputSide)
	if small.Width != 1080 || small.Height != 540 {
		t.Errorf("fit gave %s", small)
	}
	if small.Get(500, 200) != blue {
		t.Errorf("fit changed color: %s", small.Get(500, 200))
	}

	tiny := raster.New(5, 5)
	if Fit(tiny, MaxInputSide) != tiny {
		t.Errorf("small images should pass through")
	}
}
