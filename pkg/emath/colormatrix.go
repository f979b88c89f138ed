package emath

import(
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// A ColorMatrix is an affine transform over RGBA, as 4 rows of 5
// coefficients. Row i computes channel i (R,G,B,A) from [r,g,b,a,1].
// The alpha row is always [0,0,0,1,0].
type ColorMatrix [20]float64

// Perceptual weights, used for luminance and saturation
const(
	LumR = 0.299
	LumG = 0.587
	LumB = 0.114
)

func IdentityColorMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// BrightnessMatrix adds delta to each of R,G,B.
func BrightnessMatrix(delta int) ColorMatrix {
	d := float64(delta)
	return ColorMatrix{
		1, 0, 0, 0, d,
		0, 1, 0, 0, d,
		0, 0, 1, 0, d,
		0, 0, 0, 1, 0,
	}
}

// ContrastMatrix scales R,G,B about mid-gray.
func ContrastMatrix(factor float64) ColorMatrix {
	off := (1.0 - factor) * 128.0
	return ColorMatrix{
		factor, 0, 0, 0, off,
		0, factor, 0, 0, off,
		0, 0, factor, 0, off,
		0, 0, 0,      1, 0,
	}
}

// SaturationMatrix: 0 gives grayscale, 1 is the identity.
func SaturationMatrix(factor float64) ColorMatrix {
	inv := 1.0 - factor
	r, g, b := LumR*inv, LumG*inv, LumB*inv
	return ColorMatrix{
		r+factor, g,        b,        0, 0,
		r,        g+factor, b,        0, 0,
		r,        g,        b+factor, 0, 0,
		0,        0,        0,        1, 0,
	}
}

// 5x5 homogeneous form, so that affine transforms multiply
func (m ColorMatrix)dense() *mat.Dense {
	d := mat.NewDense(5, 5, nil)
	for i:=0; i<4; i++ {
		for j:=0; j<5; j++ {
			d.Set(i, j, m[i*5+j])
		}
	}
	d.Set(4, 4, 1)
	return d
}

// Concat returns outer∘inner; the result applies `inner` first, then `m`.
func (m ColorMatrix)Concat(inner ColorMatrix) ColorMatrix {
	var prod mat.Dense
	prod.Mul(m.dense(), inner.dense())

	out := ColorMatrix{}
	for i:=0; i<4; i++ {
		for j:=0; j<5; j++ {
			out[i*5+j] = prod.At(i, j)
		}
	}
	return out
}

// ComposeColorMatrices returns a single matrix that applies ms[0]
// first, then ms[1], and so on.
func ComposeColorMatrices(ms ...ColorMatrix) ColorMatrix {
	out := IdentityColorMatrix()
	for _, m := range ms {
		out = m.Concat(out)
	}
	return out
}

// Transform maps one pixel; results are unclamped.
func (m ColorMatrix)Transform(r, g, b, a float64) (float64, float64, float64, float64) {
	return m[0]*r  + m[1]*g  + m[2]*b  + m[3]*a  + m[4],
		m[5]*r  + m[6]*g  + m[7]*b  + m[8]*a  + m[9],
		m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14],
		m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]
}

func (m ColorMatrix)IsIdentity() bool {
	return m == IdentityColorMatrix()
}

func (m ColorMatrix)String() string {
	str := ""
	for i:=0; i<4; i++ {
		str += fmt.Sprintf("[%10f, %10f, %10f, %10f, %10f]\n", m[i*5+0], m[i*5+1], m[i*5+2], m[i*5+3], m[i*5+4])
	}
	return str
}
