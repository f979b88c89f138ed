package ecolor

import(
	"math"
	"testing"
)

func TestPackUnpack(t *testing.T) {
	c := Pack(0x80, 0x12, 0x34, 0x56)
	if uint32(c) != 0x80123456 {
		t.Fatalf("packed %08x", uint32(c))
	}
	if a, r, g, b := c.Unpack(); a != 0x80 || r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("unpacked %02x %02x %02x %02x", a, r, g, b)
	}
}

func TestSaturation(t *testing.T) {
	tests := []struct{
		c        ARGB
		expected float64
	}{
		{Black, 0},
		{White, 0},
		{Pack(255, 200, 100, 50), 0.75},
		{Pack(255, 255, 0, 0), 1},
	}

	for _, test := range tests {
		if got := test.c.Saturation(); math.Abs(got - test.expected) > 1e-9 {
			t.Errorf("%s: saturation %f, expected %f", test.c, got, test.expected)
		}
	}
}

func TestLumaTruncates(t *testing.T) {
	// 0.299*10 + 0.587*10 + 0.114*11 = 10.114
	if l := Pack(255, 10, 10, 11).Luma(); l != 10 {
		t.Errorf("luma %d, expected 10", l)
	}
}

func TestBlend(t *testing.T) {
	src := Pack(0x40, 0, 100, 255)
	dst := Pack(0xFF, 255, 0, 255)

	if got := Blend(src, dst, 0); got != src {
		t.Errorf("t=0 gave %s", got)
	}
	if got := Blend(src, dst, 1); got != Pack(0x40, 255, 0, 255) {
		t.Errorf("t=1 gave %s", got)
	}
	if got := Blend(src, dst, 0.5); got != Pack(0x40, 128, 50, 255) {
		t.Errorf("t=0.5 gave %s", got)
	}
}

func TestParseHex(t *testing.T) {
	if c, err := ParseHex("#ff8000"); err != nil || c != Pack(0xFF, 0xFF, 0x80, 0x00) {
		t.Errorf("got %s, %v", c, err)
	}
	if c, err := ParseHex("#80ffffff"); err != nil || c != Pack(0x80, 0xFF, 0xFF, 0xFF) {
		t.Errorf("got %s, %v", c, err)
	}
	if _, err := ParseHex("chartreuse"); err == nil {
		t.Errorf("expected error")
	}
}
