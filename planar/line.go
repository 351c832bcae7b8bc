package planar

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Line is the infinite line through P and Q, oriented from P to Q.
type Line struct {
	P, Q r2.Point
}

// IsDegenerate reports whether P and Q coincide, in which case the line is
// undefined.
func (l Line) IsDegenerate() bool { return l.P == l.Q }

// HasOn reports whether p lies exactly on the line.
func (l Line) HasOn(p r2.Point) bool {
	return Orientation(l.P, l.Q, p) == 0
}

// Side returns +1 if p is left of the line, -1 if right and 0 if on it.
func (l Line) Side(p r2.Point) int {
	return Orientation(l.P, l.Q, p)
}

func (l Line) Direction() Direction { return DirectionBetween(l.P, l.Q) }

func (l Line) String() string {
	return fmt.Sprintf("Line(%v, %v)", l.P, l.Q)
}
