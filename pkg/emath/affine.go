package emath

// Some basic affine transformations, used for the lossless geometry edits

import(
	"math"
	"golang.org/x/image/math/f64"  // Will be "image/math/f64" at some point, hopefully make this file redundant
)

// Use a local type so we can hang methods off it
type Aff3 f64.Aff3

// Cut-n-pasted from image@0.7.0/draw/scale:matMul
func (p Aff3)Mult(q Aff3) Aff3 {
	return Aff3{
		p[3*0+0]*q[3*0+0] + p[3*0+1]*q[3*1+0],
		p[3*0+0]*q[3*0+1] + p[3*0+1]*q[3*1+1],
		p[3*0+0]*q[3*0+2] + p[3*0+1]*q[3*1+2] + p[3*0+2],
		p[3*1+0]*q[3*0+0] + p[3*1+1]*q[3*1+0],
		p[3*1+0]*q[3*0+1] + p[3*1+1]*q[3*1+1],
		p[3*1+0]*q[3*0+2] + p[3*1+1]*q[3*1+2] + p[3*1+2],
	}
}

func Identity() Aff3 {
	return Aff3{1, 0, 0,   0, 1, 0}
}

func (m1 Aff3)Translate(tx, ty float64) Aff3 {
	return m1.Mult(Aff3{1, 0, tx,   0, 1, ty})
}

func (m1 Aff3)Scale(sx, sy float64) Aff3 {
	return m1.Mult(Aff3{sx, 0, 0,   0, sy, 0})
}

// Rotate is clockwise on screen, since image coords have y pointing down
func (m1 Aff3)Rotate(thetaDeg float64) Aff3 {
	cosTheta := math.Cos(thetaDeg * math.Pi / 180.0)
	sinTheta := math.Sin(thetaDeg * math.Pi / 180.0)
	return m1.Mult(Aff3{cosTheta, -1*sinTheta, 0,    sinTheta, cosTheta, 0})
}

func (m Aff3)Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// ApplyInt maps a pixel index through the transform; the sin/cos
// fuzz from Rotate gets rounded away.
func (m Aff3)ApplyInt(x, y int) (int, int) {
	fx, fy := m.Apply(float64(x), float64(y))
	return int(math.Round(fx)), int(math.Round(fy))
}

// QuarterTurn returns the map from pixel indices in a w x h image to
// pixel indices in the image rotated clockwise by turns*90 degrees.
func QuarterTurn(turns, w, h int) Aff3 {
	// Remember they compose back to front - rightmost operations performed first
	switch ((turns % 4) + 4) % 4 {
	case 1:  return Identity().Translate(float64(h-1), 0).Rotate(90)
	case 2:  return Identity().Translate(float64(w-1), float64(h-1)).Rotate(180)
	case 3:  return Identity().Translate(0, float64(w-1)).Rotate(270)
	default: return Identity()
	}
}

// Mirror returns the map for a left/right (horizontal) or top/bottom
// (vertical) flip of a w x h image.
func Mirror(horizontal bool, w, h int) Aff3 {
	if horizontal {
		return Identity().Translate(float64(w-1), 0).Scale(-1, 1)
	}
	return Identity().Translate(0, float64(h-1)).Scale(1, -1)
}
