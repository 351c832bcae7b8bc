package planar

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Segment is the closed line segment from A to B.
type Segment struct {
	A, B r2.Point
}

func (s Segment) IsDegenerate() bool { return s.A == s.B }

func (s Segment) Direction() Direction { return DirectionBetween(s.A, s.B) }

func (s Segment) Length() float64 { return Distance(s.A, s.B) }

func (s Segment) Reverse() Segment { return Segment{s.B, s.A} }

// Bound returns the bounding rectangle of the segment.
func (s Segment) Bound() r2.Rect { return r2.RectFromPoints(s.A, s.B) }

// HasOn reports whether p lies exactly on the closed segment.
func (s Segment) HasOn(p r2.Point) bool {
	if !s.Bound().ContainsPoint(p) {
		return false
	}
	return Orientation(s.A, s.B, p) == 0
}

// Intersects reports whether the two closed segments share at least one
// point, including collinear overlaps.
func (s Segment) Intersects(o Segment) bool {
	d1 := Orientation(s.A, s.B, o.A)
	d2 := Orientation(s.A, s.B, o.B)
	d3 := Orientation(o.A, o.B, s.A)
	d4 := Orientation(o.A, o.B, s.B)
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	return (d1 == 0 && s.HasOn(o.A)) || (d2 == 0 && s.HasOn(o.B)) ||
		(d3 == 0 && o.HasOn(s.A)) || (d4 == 0 && o.HasOn(s.B))
}

// Intersect returns the single point shared by the two segments. It
// reports false when they are disjoint and also when they overlap along a
// sub-segment, since that intersection is not a point.
func (s Segment) Intersect(o Segment) (r2.Point, bool) {
	if s.IsDegenerate() {
		return s.A, o.HasOn(s.A)
	}
	if o.IsDegenerate() {
		return o.A, s.HasOn(o.A)
	}
	d1 := Orientation(s.A, s.B, o.A)
	d2 := Orientation(s.A, s.B, o.B)
	if d1 == 0 && d2 == 0 {
		return collinearIntersect(s, o)
	}
	if d1*d2 > 0 {
		return r2.Point{}, false
	}
	d3 := Orientation(o.A, o.B, s.A)
	d4 := Orientation(o.A, o.B, s.B)
	if d3*d4 > 0 {
		return r2.Point{}, false
	}
	// Touching at an endpoint is decided exactly; only a proper crossing
	// needs a constructed point.
	switch {
	case d1 == 0:
		return o.A, true
	case d2 == 0:
		return o.B, true
	case d3 == 0:
		return s.A, true
	case d4 == 0:
		return s.B, true
	}
	return properIntersection(s, o), true
}

// properIntersection computes the crossing point of two segments known to
// cross at a single interior point.
func properIntersection(s, o Segment) r2.Point {
	e := XVectorBetween(s.A, s.B)
	f := XVectorBetween(o.A, o.B)
	num := XVectorBetween(s.A, o.A).Cross(f)
	den := e.Cross(f)
	t := clampUnit(num.Float64() / den.Float64())
	return s.A.Add(s.B.Sub(s.A).Mul(t))
}

// collinearIntersect handles two segments on a common line. The result is
// a point only when they touch at exactly one shared endpoint.
func collinearIntersect(s, o Segment) (r2.Point, bool) {
	key := func(p r2.Point) float64 { return p.X }
	if s.A.X == s.B.X {
		key = func(p r2.Point) float64 { return p.Y }
	}
	sLo, sHi := s.A, s.B
	if key(sLo) > key(sHi) {
		sLo, sHi = sHi, sLo
	}
	oLo, oHi := o.A, o.B
	if key(oLo) > key(oHi) {
		oLo, oHi = oHi, oLo
	}
	lo, hi := sLo, sHi
	if key(oLo) > key(lo) {
		lo = oLo
	}
	if key(oHi) < key(hi) {
		hi = oHi
	}
	if key(lo) == key(hi) {
		return lo, true
	}
	return r2.Point{}, false
}

func clampUnit(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment(%v, %v)", s.A, s.B)
}
