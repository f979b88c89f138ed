package beautify

import(
	"github.com/disintegration/imaging"

	"github.com/abworrall/photoedit/pkg/ecolor"
	"github.com/abworrall/photoedit/pkg/emath"
	"github.com/abworrall/photoedit/pkg/raster"
)

// A Kernel is a 3x3 convolution, row-major.
type Kernel [9]float64

var(
	// Two fixed strengths; anything below StrongThreshold gets the weak one.
	WeakKernel   = Kernel{ 0, -1,  0,   -1, 5, -1,    0, -1,  0}
	StrongKernel = Kernel{-1, -1, -1,   -1, 9, -1,   -1, -1, -1}
)

const StrongThreshold = 0.5

func KernelFor(intensity float64) Kernel {
	if intensity < StrongThreshold {
		return WeakKernel
	}
	return StrongKernel
}

// Convolve runs the kernel over each of R,G,B, replicating border
// pixels. Alpha and dimensions are kept.
func Convolve(b *raster.Buffer, k Kernel) *raster.Buffer {
	return raster.FromImage(imaging.Convolve3x3(b.ToNRGBA(), [9]float64(k), nil))
}

func ApplySharpen(b *raster.Buffer, intensity float64) *raster.Buffer {
	intensity = emath.ClampF64(intensity, 0, 1)
	if intensity <= 0 {
		return b.Clone()
	}

	sharp := Convolve(b, KernelFor(intensity))
	for i := range sharp.Pix {
		sharp.Pix[i] = ecolor.Blend(b.Pix[i], sharp.Pix[i], intensity)
	}
	return sharp
}
