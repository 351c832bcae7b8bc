package planar

import (
	"github.com/golang/geo/r2"

	"github.com/mlrrts/homotopy/exactfloat"
)

// XVector is a 2D vector with exact components. Differences of float64
// coordinates are representable without rounding, so XVector is the
// carrier for every sign-critical computation in this package.
type XVector struct {
	X, Y exactfloat.ExactFloat
}

// XVectorFromPoint converts p without rounding.
func XVectorFromPoint(p r2.Point) XVector {
	return XVector{exactfloat.New(p.X), exactfloat.New(p.Y)}
}

// XVectorBetween returns the exact vector to - from.
func XVectorBetween(from, to r2.Point) XVector {
	return XVectorFromPoint(to).Sub(XVectorFromPoint(from))
}

func (a XVector) Add(b XVector) XVector {
	return XVector{a.X.Add(b.X), a.Y.Add(b.Y)}
}

func (a XVector) Sub(b XVector) XVector {
	return XVector{a.X.Sub(b.X), a.Y.Sub(b.Y)}
}

func (a XVector) Neg() XVector {
	return XVector{a.X.Neg(), a.Y.Neg()}
}

func (a XVector) Mul(m exactfloat.ExactFloat) XVector {
	return XVector{a.X.Mul(m), a.Y.Mul(m)}
}

// Cross returns the z component of the 3D cross product a x b.
func (a XVector) Cross(b XVector) exactfloat.ExactFloat {
	return a.X.Mul(b.Y).Sub(a.Y.Mul(b.X))
}

func (a XVector) Dot(b XVector) exactfloat.ExactFloat {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y))
}

func (a XVector) IsZero() bool {
	return a.X.Sgn() == 0 && a.Y.Sgn() == 0
}

// Point rounds a to the nearest float64 coordinates.
func (a XVector) Point() r2.Point {
	return r2.Point{X: a.X.Float64(), Y: a.Y.Float64()}
}
