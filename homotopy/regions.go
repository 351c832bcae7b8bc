package homotopy

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r2"

	"github.com/mlrrts/homotopy/planar"
)

// Region is the sector between two angularly adjacent rays. Its boundary
// starts at the base point, runs out along ray From to the workspace
// boundary, follows the boundary counterclockwise through any enclosed
// corners and returns along ray To.
//
// Without any rays there is a single region covering the whole workspace;
// From and To are NoIndex and the boundary is the base point followed by
// the four corners.
type Region struct {
	Index    int
	From, To int // indices into the sorted rays
	Boundary []r2.Point

	polygon *planar.Polygon
	full    *r2.Rect
}

// IsFull reports whether the region is the whole workspace.
func (r Region) IsFull() bool { return r.full != nil }

// Polygon returns the boundary as a polygon. For a full region it is the
// degenerate star around the base point, not the workspace rectangle.
func (r Region) Polygon() *planar.Polygon { return r.polygon }

// ContainsPoint reports whether p is inside the region or on its boundary.
func (r Region) ContainsPoint(p r2.Point) bool {
	if r.full != nil {
		return r.full.ContainsPoint(p)
	}
	return r.polygon.ContainsPoint(p)
}

func (r Region) String() string {
	parts := make([]string, len(r.Boundary))
	for i, p := range r.Boundary {
		parts[i] = fmt.Sprintf("(%g, %g)", p.X, p.Y)
	}
	if r.full != nil {
		return fmt.Sprintf("Region %d (full): %s", r.Index, strings.Join(parts, " "))
	}
	return fmt.Sprintf("Region %d (rays %d-%d): %s", r.Index, r.From, r.To, strings.Join(parts, " "))
}

// cornersBetween returns the corners whose direction lies strictly
// counterclockwise between d1 and d2, in counterclockwise order from d1.
func cornersBetween(corners [4]CornerRay, d1, d2 planar.Direction) []r2.Point {
	start := 0
	for start < len(corners) && !d1.Less(corners[start].Dir) {
		start++
	}
	var out []r2.Point
	for k := 0; k < len(corners); k++ {
		cr := corners[(start+k)%len(corners)]
		if cr.Dir.CounterclockwiseInBetween(d1, d2) {
			out = append(out, cr.Corner)
		}
	}
	return out
}

// AssembleRegions builds one region per pair of adjacent rays, wrapping
// the last ray to the first. rays must be sorted by SortRays and corners
// by CornerRays; ws is only used for the single region of an empty ray set.
func AssembleRegions(ws Workspace, base r2.Point, rays []RaySubdivision, corners [4]CornerRay) []Region {
	if len(rays) == 0 {
		boundary := []r2.Point{base}
		for _, cr := range corners {
			boundary = append(boundary, cr.Corner)
		}
		rect := ws.Rect()
		return []Region{{
			Index:    0,
			From:     NoIndex,
			To:       NoIndex,
			Boundary: boundary,
			polygon:  planar.NewPolygon(boundary),
			full:     &rect,
		}}
	}

	regions := make([]Region, len(rays))
	for i := range rays {
		j := (i + 1) % len(rays)
		a, b := rays[i], rays[j]
		boundary := []r2.Point{base, a.Endpoint()}
		boundary = append(boundary, cornersBetween(corners, a.Direction(), b.Direction())...)
		boundary = append(boundary, b.Endpoint())
		regions[i] = Region{
			Index:    i,
			From:     i,
			To:       j,
			Boundary: boundary,
			polygon:  planar.NewPolygon(boundary),
		}
	}
	return regions
}
