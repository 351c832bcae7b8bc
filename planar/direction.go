package planar

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// Direction is a planar direction represented by an exact, non-normalized
// vector. Two directions are equal iff their vectors are positive multiples
// of one another.
type Direction struct {
	v XVector
}

// DirectionBetween returns the direction from one point to another.
func DirectionBetween(from, to r2.Point) Direction {
	return Direction{XVectorBetween(from, to)}
}

// DirectionFromVector wraps an exact vector.
func DirectionFromVector(v XVector) Direction {
	return Direction{v}
}

func (d Direction) Vector() XVector { return d.v }

// IsZero reports whether d has no direction at all.
func (d Direction) IsZero() bool { return d.v.IsZero() }

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{d.v.Neg()}
}

// half returns 0 for directions with angle in [0, π) and 1 for [π, 2π).
func (d Direction) half() int {
	sy := d.v.Y.Sgn()
	if sy > 0 || (sy == 0 && d.v.X.Sgn() > 0) {
		return 0
	}
	return 1
}

// CompareDirections orders directions by their counterclockwise angle from
// the positive x axis, in [0, 2π). It returns -1, 0 or +1 and is exact: 0 is
// returned only for identical directions.
func CompareDirections(a, b Direction) int {
	ha, hb := a.half(), b.half()
	if ha != hb {
		if ha < hb {
			return -1
		}
		return 1
	}
	// Within a half plane, a comes first iff b is counterclockwise of a.
	return -a.v.Cross(b.v).Sgn()
}

func (d Direction) Less(o Direction) bool {
	return CompareDirections(d, o) < 0
}

func (d Direction) Equal(o Direction) bool {
	return CompareDirections(d, o) == 0
}

// CounterclockwiseInBetween reports whether d lies strictly inside the
// counterclockwise sweep that starts at d1 and ends at d2. If d1 equals d2
// the sweep is the full turn and every direction other than d1 is inside.
func (d Direction) CounterclockwiseInBetween(d1, d2 Direction) bool {
	if d1.Less(d2) {
		return d1.Less(d) && d.Less(d2)
	}
	return d1.Less(d) || d.Less(d2)
}

// Angle returns the approximate counterclockwise angle from the positive x
// axis, normalized to [0, 2π).
func (d Direction) Angle() s1.Angle {
	a := math.Atan2(d.v.Y.Float64(), d.v.X.Float64())
	if a < 0 {
		a += 2 * math.Pi
	}
	return s1.Angle(a)
}

// Unit returns an approximate unit vector along d.
func (d Direction) Unit() r2.Point {
	return d.v.Point().Normalize()
}

func (d Direction) String() string {
	return fmt.Sprintf("Direction(%v, %v)", d.v.X, d.v.Y)
}
