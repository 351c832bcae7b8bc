package homotopy

import (
	"fmt"
	"sort"

	"github.com/golang/geo/r2"

	"github.com/mlrrts/homotopy/planar"
)

// RayKind distinguishes the two rays cast for every obstacle.
type RayKind int

const (
	// Away leaves the base point on the side opposite the key point.
	Away RayKind = iota
	// Toward passes from the base point through the key point.
	Toward
)

func (k RayKind) String() string {
	switch k {
	case Away:
		return "away"
	case Toward:
		return "toward"
	}
	return fmt.Sprintf("RayKind(%d)", int(k))
}

// Crossing is a point where an obstacle border meets a subdivided ray.
type Crossing struct {
	Point    r2.Point
	Distance float64 // from the ray's key point
	Obstacle int     // whose border was crossed
}

// RaySubdivision is one ray from the base point, clipped at the workspace
// boundary, together with the ordered points where obstacle borders cross
// the part of it between the owning obstacle's key point and the boundary.
type RaySubdivision struct {
	Obstacle int
	Kind     RayKind

	// Ray starts at the base point. Its direction is exact.
	Ray planar.Ray

	// Segment runs from the owning obstacle's key point to the boundary
	// endpoint; for an Away ray it passes through the base point.
	Segment planar.Segment

	// Crossings are sorted by Distance. Two entries share a distance only
	// where the borders of different obstacles touch on the segment; the
	// lower obstacle index comes first.
	Crossings []Crossing
}

func (r RaySubdivision) Direction() planar.Direction { return r.Ray.Dir }

// Endpoint is where the ray meets the workspace boundary.
func (r RaySubdivision) Endpoint() r2.Point { return r.Segment.B }

// KeyPoint is the key point of the owning obstacle.
func (r RaySubdivision) KeyPoint() r2.Point { return r.Segment.A }

func (r RaySubdivision) String() string {
	return fmt.Sprintf("%s ray of obstacle %d to (%g, %g), %d crossing(s)",
		r.Kind, r.Obstacle, r.Endpoint().X, r.Endpoint().Y, len(r.Crossings))
}

// CornerRay joins the base point to one workspace corner.
type CornerRay struct {
	Corner r2.Point
	Dir    planar.Direction
}

// CornerRays returns the rays from c to the four workspace corners, sorted
// by direction.
func CornerRays(ws Workspace, c r2.Point) [4]CornerRay {
	var rays [4]CornerRay
	for i, corner := range ws.Corners() {
		rays[i] = CornerRay{Corner: corner, Dir: planar.DirectionBetween(c, corner)}
	}
	sort.Slice(rays[:], func(i, j int) bool { return rays[i].Dir.Less(rays[j].Dir) })
	return rays
}

// boundaryHit returns the point where r leaves the workspace.
func boundaryHit(ws Workspace, r planar.Ray) (r2.Point, bool) {
	for _, edge := range ws.BoundaryEdges() {
		if p, ok := r.Intersect(edge); ok {
			return p, true
		}
	}
	return r2.Point{}, false
}

// BuildRays casts the away and toward rays of every obstacle from base
// point c and clips them at the workspace boundary. Rays are returned in
// obstacle order, away before toward; crossings are not yet computed.
func BuildRays(ws Workspace, obstacles []Obstacle, c r2.Point) ([]RaySubdivision, error) {
	rays := make([]RaySubdivision, 0, 2*len(obstacles))
	for _, o := range obstacles {
		toward := planar.RayThrough(c, o.KeyPoint)
		for _, kind := range []RayKind{Away, Toward} {
			ray := toward
			if kind == Away {
				ray = toward.Opposite()
			}
			end, ok := boundaryHit(ws, ray)
			if !ok {
				return nil, opError("build rays", o.Index, len(rays),
					fmt.Errorf("%w: %s ray from (%g, %g)", ErrMissingBoundaryIntersection, kind, c.X, c.Y))
			}
			rays = append(rays, RaySubdivision{
				Obstacle: o.Index,
				Kind:     kind,
				Ray:      ray,
				Segment:  planar.Segment{A: o.KeyPoint, B: end},
			})
		}
	}
	return rays, nil
}

// SortRays returns the rays in counterclockwise order of direction,
// starting from the positive x axis. Two rays with the same direction make
// the order ambiguous and are reported as ErrDegenerateRayOrdering.
func SortRays(rays []RaySubdivision) ([]RaySubdivision, error) {
	sorted := make([]RaySubdivision, len(rays))
	copy(sorted, rays)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Direction().Less(sorted[j].Direction())
	})
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1], sorted[i]
		if a.Direction().Equal(b.Direction()) {
			return nil, opError("sort rays", b.Obstacle, i,
				fmt.Errorf("%w: %s ray of obstacle %d and %s ray of obstacle %d",
					ErrDegenerateRayOrdering, a.Kind, a.Obstacle, b.Kind, b.Obstacle))
		}
	}
	return sorted, nil
}
