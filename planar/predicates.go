// Package planar provides the 2D geometric primitives used by the
// workspace decomposition: exact orientation, directions with a strict
// angular order, lines, rays, segments and simple polygons.
//
// Predicates are evaluated in two stages. A float64 determinant with a
// forward error bound settles most inputs; anything the bound cannot decide
// is recomputed exactly with exactfloat. Constructions (intersection
// points) are computed in float64 and are not exact.
package planar

import (
	"math"

	"github.com/golang/geo/r2"
)

const (
	// orientErrBound is (3 + 16ε)ε with ε = 2**-53, the relative error bound
	// of the float64 orientation determinant.
	orientErrBound = 3.3306690738754716e-16
)

// Orientation returns +1 if the points A, B, C are strictly counterclockwise,
// -1 if they are strictly clockwise, and 0 if and only if they are exactly
// collinear (including when two of them coincide).
//
// No symbolic perturbation is applied; callers rely on the zero result to
// detect degenerate configurations.
func Orientation(a, b, c r2.Point) int {
	if o := TriageOrientation(a, b, c); o != 0 {
		return o
	}
	return ExactOrientation(a, b, c)
}

// TriageOrientation evaluates the orientation determinant in float64 and
// returns 0 when rounding error could have changed its sign.
func TriageOrientation(a, b, c r2.Point) int {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight
	errBound := orientErrBound * (math.Abs(detLeft) + math.Abs(detRight))
	if det > errBound {
		return 1
	}
	if det < -errBound {
		return -1
	}
	return 0
}

// ExactOrientation computes the sign of (B - A) x (C - A) without rounding.
func ExactOrientation(a, b, c r2.Point) int {
	ab := XVectorBetween(a, b)
	ac := XVectorBetween(a, c)
	return ab.Cross(ac).Sgn()
}

// Collinear reports whether A, B and C lie exactly on one line.
func Collinear(a, b, c r2.Point) bool {
	return Orientation(a, b, c) == 0
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b r2.Point) float64 {
	return b.Sub(a).Norm()
}
