package planar

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func seg(ax, ay, bx, by float64) Segment { return Segment{pt(ax, ay), pt(bx, by)} }

func pointsNear(a, b r2.Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestSegmentIntersect(t *testing.T) {
	tests := []struct {
		name   string
		s, o   Segment
		want   r2.Point
		wantOK bool
	}{
		{"proper crossing", seg(0, 0, 10, 10), seg(0, 10, 10, 0), pt(5, 5), true},
		{"T junction", seg(0, 0, 10, 0), seg(5, 0, 5, 7), pt(5, 0), true},
		{"shared endpoint", seg(0, 0, 4, 4), seg(4, 4, 8, 0), pt(4, 4), true},
		{"disjoint", seg(0, 0, 1, 1), seg(2, 0, 3, -1), r2.Point{}, false},
		{"parallel", seg(0, 0, 10, 0), seg(0, 1, 10, 1), r2.Point{}, false},
		{"collinear overlap", seg(0, 0, 10, 0), seg(5, 0, 15, 0), r2.Point{}, false},
		{"collinear touch", seg(0, 0, 10, 0), seg(10, 0, 15, 0), pt(10, 0), true},
		{"collinear disjoint", seg(0, 0, 1, 0), seg(2, 0, 3, 0), r2.Point{}, false},
		{"vertical collinear touch", seg(3, 0, 3, 2), seg(3, 5, 3, 2), pt(3, 2), true},
		{"lines cross outside", seg(0, 0, 1, 1), seg(5, 0, 4, 1), r2.Point{}, false},
	}
	for _, test := range tests {
		got, ok := test.s.Intersect(test.o)
		if ok != test.wantOK {
			t.Errorf("%s: %v.Intersect(%v) ok = %v, want %v", test.name, test.s, test.o, ok, test.wantOK)
			continue
		}
		if ok && !pointsNear(got, test.want, 1e-12) {
			t.Errorf("%s: %v.Intersect(%v) = %v, want %v", test.name, test.s, test.o, got, test.want)
		}
		// Intersection is symmetric.
		got2, ok2 := test.o.Intersect(test.s)
		if ok2 != ok || (ok && !pointsNear(got, got2, 1e-12)) {
			t.Errorf("%s: asymmetric result %v/%v vs %v/%v", test.name, got, ok, got2, ok2)
		}
	}
}

func TestSegmentIntersects(t *testing.T) {
	tests := []struct {
		s, o Segment
		want bool
	}{
		{seg(0, 0, 10, 10), seg(0, 10, 10, 0), true},
		{seg(0, 0, 10, 0), seg(5, 0, 15, 0), true},
		{seg(0, 0, 1, 0), seg(2, 0, 3, 0), false},
		{seg(0, 0, 10, 0), seg(5, 1, 5, 7), false},
	}
	for _, test := range tests {
		if got := test.s.Intersects(test.o); got != test.want {
			t.Errorf("%v.Intersects(%v) = %v, want %v", test.s, test.o, got, test.want)
		}
	}
}

func TestSegmentHasOn(t *testing.T) {
	s := seg(0, 0, 10, 5)
	tests := []struct {
		p    r2.Point
		want bool
	}{
		{pt(0, 0), true},
		{pt(10, 5), true},
		{pt(4, 2), true},
		{pt(12, 6), false},
		{pt(4, 2.0000001), false},
	}
	for _, test := range tests {
		if got := s.HasOn(test.p); got != test.want {
			t.Errorf("%v.HasOn(%v) = %v, want %v", s, test.p, got, test.want)
		}
	}
}

func TestRayIntersect(t *testing.T) {
	origin := pt(50, 50)
	tests := []struct {
		name   string
		r      Ray
		s      Segment
		want   r2.Point
		wantOK bool
	}{
		{"hits right wall", RayThrough(origin, pt(60, 50)), seg(99, 0, 99, 99), pt(99, 50), true},
		{"wall behind", RayThrough(origin, pt(40, 50)), seg(99, 0, 99, 99), r2.Point{}, false},
		{"oblique", RayThrough(origin, pt(60, 55)), seg(99, 0, 99, 99), pt(99, 74.5), true},
		{"through corner", RayThrough(origin, pt(60, 60)), seg(0, 99, 99, 99), pt(99, 99), true},
		{"misses short wall", RayThrough(origin, pt(60, 50)), seg(99, 60, 99, 99), r2.Point{}, false},
		{"reversed", RayThrough(origin, pt(60, 50)).Opposite(), seg(0, 0, 0, 99), pt(0, 50), true},
		{"collinear ahead", RayThrough(origin, pt(60, 50)), seg(70, 50, 80, 50), r2.Point{}, false},
		{"collinear behind touching origin", RayThrough(origin, pt(60, 50)), seg(30, 50, 50, 50), pt(50, 50), true},
		{"collinear behind", RayThrough(origin, pt(60, 50)), seg(10, 50, 20, 50), r2.Point{}, false},
	}
	for _, test := range tests {
		got, ok := test.r.Intersect(test.s)
		if ok != test.wantOK {
			t.Errorf("%s: %v.Intersect(%v) ok = %v, want %v", test.name, test.r, test.s, ok, test.wantOK)
			continue
		}
		if ok && !pointsNear(got, test.want, 1e-12) {
			t.Errorf("%s: %v.Intersect(%v) = %v, want %v", test.name, test.r, test.s, got, test.want)
		}
	}
}

func TestRayHasOn(t *testing.T) {
	r := RayThrough(pt(1, 1), pt(2, 3))
	tests := []struct {
		p    r2.Point
		want bool
	}{
		{pt(1, 1), true},
		{pt(3, 5), true},
		{pt(0, -1), false},
		{pt(3, 5.5), false},
	}
	for _, test := range tests {
		if got := r.HasOn(test.p); got != test.want {
			t.Errorf("%v.HasOn(%v) = %v, want %v", r, test.p, got, test.want)
		}
	}
}

func TestLine(t *testing.T) {
	l := Line{pt(20, 50), pt(80, 50)}
	if !l.HasOn(pt(50, 50)) {
		t.Errorf("%v.HasOn(50, 50) = false, want true", l)
	}
	if l.HasOn(pt(50, 50.000000001)) {
		t.Errorf("%v.HasOn(50, 50.000000001) = true, want false", l)
	}
	if got := l.Side(pt(0, 60)); got != 1 {
		t.Errorf("%v.Side(0, 60) = %d, want 1", l, got)
	}
	if got := l.Side(pt(0, 40)); got != -1 {
		t.Errorf("%v.Side(0, 40) = %d, want -1", l, got)
	}
	if !(Line{pt(1, 1), pt(1, 1)}).IsDegenerate() {
		t.Errorf("line through one point should be degenerate")
	}
}
