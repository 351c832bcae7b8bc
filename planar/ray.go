package planar

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Ray starts at Origin and extends to infinity along Dir.
type Ray struct {
	Origin r2.Point
	Dir    Direction
}

// RayThrough returns the ray from origin through p.
func RayThrough(origin, p r2.Point) Ray {
	return Ray{Origin: origin, Dir: DirectionBetween(origin, p)}
}

// Opposite returns the ray with the same origin and reversed direction.
func (r Ray) Opposite() Ray {
	return Ray{Origin: r.Origin, Dir: r.Dir.Reverse()}
}

// side returns the exact side of p relative to the supporting line.
func (r Ray) side(p r2.Point) int {
	return r.Dir.v.Cross(XVectorBetween(r.Origin, p)).Sgn()
}

// ahead returns the sign of the projection of p - Origin onto Dir.
func (r Ray) ahead(p r2.Point) int {
	return r.Dir.v.Dot(XVectorBetween(r.Origin, p)).Sgn()
}

// HasOn reports whether p lies exactly on the ray.
func (r Ray) HasOn(p r2.Point) bool {
	return r.side(p) == 0 && r.ahead(p) >= 0
}

// Intersect returns the single point where the ray meets the closed segment
// s. Whether they meet is decided exactly. A ray running along s is not a
// point intersection unless the two touch only at the ray origin.
func (r Ray) Intersect(s Segment) (r2.Point, bool) {
	sa, sb := r.side(s.A), r.side(s.B)
	switch {
	case sa*sb > 0:
		return r2.Point{}, false
	case sa == 0 && sb == 0:
		fa, fb := r.ahead(s.A), r.ahead(s.B)
		if fa < fb {
			fa = fb
		}
		if fa == 0 {
			return r.Origin, true
		}
		return r2.Point{}, false
	case sa == 0:
		return s.A, r.ahead(s.A) >= 0
	case sb == 0:
		return s.B, r.ahead(s.B) >= 0
	}

	// The supporting line crosses s properly. With e = B - A, the ray
	// parameter is cross(A - O, e) / cross(d, e); its sign decides the hit.
	e := XVectorBetween(s.A, s.B)
	ao := XVectorBetween(r.Origin, s.A)
	den := r.Dir.v.Cross(e)
	switch ao.Cross(e).Sgn() * den.Sgn() {
	case -1:
		return r2.Point{}, false
	case 0:
		return r.Origin, true
	}
	u := clampUnit(ao.Cross(r.Dir.v).Float64() / den.Float64())
	return s.A.Add(s.B.Sub(s.A).Mul(u)), true
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(%v, %v)", r.Origin, r.Dir)
}
