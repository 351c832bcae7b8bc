package planar

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r2"
)

// BoundedSide classifies a point against a closed polygon.
type BoundedSide int

const (
	OnUnboundedSide BoundedSide = iota // strictly outside
	OnBoundary
	OnBoundedSide // strictly inside
)

func (b BoundedSide) String() string {
	switch b {
	case OnUnboundedSide:
		return "outside"
	case OnBoundary:
		return "boundary"
	case OnBoundedSide:
		return "inside"
	}
	return fmt.Sprintf("BoundedSide(%d)", int(b))
}

// A Polygon is a simple planar polygon: a single chain of vertices where the
// last vertex is implicitly connected to the first. Either orientation is
// accepted.
//
// Polygons may not have duplicate vertices and non-adjacent edges may not
// touch. These restrictions are checked by IsValid, not by the constructor.
type Polygon struct {
	vertices []r2.Point
	bound    r2.Rect
}

// NewPolygon copies vertices into a new polygon. The first vertex must not
// be repeated at the end.
func NewPolygon(vertices []r2.Point) *Polygon {
	p := &Polygon{
		vertices: make([]r2.Point, len(vertices)),
		bound:    r2.EmptyRect(),
	}
	copy(p.vertices, vertices)
	for _, v := range p.vertices {
		p.bound = p.bound.AddPoint(v)
	}
	return p
}

func (p *Polygon) NumVertices() int { return len(p.vertices) }

// Vertex returns vertex i, wrapping indices in [n, 2n) back to the start.
func (p *Polygon) Vertex(i int) r2.Point {
	if j := i - len(p.vertices); j >= 0 {
		return p.vertices[j]
	}
	return p.vertices[i]
}

// Vertices returns a copy of the vertex chain.
func (p *Polygon) Vertices() []r2.Point {
	out := make([]r2.Point, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Edge returns the edge from vertex i to vertex i+1.
func (p *Polygon) Edge(i int) Segment {
	return Segment{p.Vertex(i), p.Vertex(i + 1)}
}

// Edges returns the border segments in vertex order.
func (p *Polygon) Edges() []Segment {
	edges := make([]Segment, len(p.vertices))
	for i := range p.vertices {
		edges[i] = p.Edge(i)
	}
	return edges
}

func (p *Polygon) Bound() r2.Rect { return p.bound }

// IsValid reports whether the polygon is simple.
func (p *Polygon) IsValid() bool {
	n := len(p.vertices)
	if n < 3 {
		return false
	}
	seen := make(map[r2.Point]struct{}, n)
	for _, v := range p.vertices {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
	}
	// All vertices on one line bound no area.
	collinear := true
	for i := 2; i < n && collinear; i++ {
		collinear = Orientation(p.vertices[0], p.vertices[1], p.vertices[i]) == 0
	}
	if collinear {
		return false
	}
	for i := 0; i < n; i++ {
		ei := p.Edge(i)
		for j := i + 1; j < n; j++ {
			ej := p.Edge(j)
			adjacent := j == i+1 || (i == 0 && j == n-1)
			if !adjacent {
				if ei.Intersects(ej) {
					return false
				}
				continue
			}
			// Adjacent edges share one vertex; they must not fold back
			// onto each other.
			if _, ok := ei.Intersect(ej); !ok {
				return false
			}
		}
	}
	return true
}

// BoundedSide classifies q as strictly inside, on the boundary of, or
// strictly outside the polygon. The classification is exact.
func (p *Polygon) BoundedSide(q r2.Point) BoundedSide {
	if !p.bound.ContainsPoint(q) {
		return OnUnboundedSide
	}
	inside := false
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a, b := p.vertices[i], p.Vertex(i+1)
		if (Segment{a, b}).HasOn(q) {
			return OnBoundary
		}
		// Count crossings of the rightward horizontal ray from q using the
		// half-open rule on y so shared vertices are counted once.
		if (a.Y > q.Y) != (b.Y > q.Y) {
			o := Orientation(a, b, q)
			if (b.Y > a.Y && o > 0) || (b.Y < a.Y && o < 0) {
				inside = !inside
			}
		}
	}
	if inside {
		return OnBoundedSide
	}
	return OnUnboundedSide
}

// ContainsPoint reports whether q is inside the polygon or on its boundary.
func (p *Polygon) ContainsPoint(q r2.Point) bool {
	return p.BoundedSide(q) != OnUnboundedSide
}

// InteriorContainsPoint reports whether q is strictly inside the polygon.
func (p *Polygon) InteriorContainsPoint(q r2.Point) bool {
	return p.BoundedSide(q) == OnBoundedSide
}

// SignedArea returns the area enclosed by the polygon, positive when the
// vertices are in counterclockwise order.
func (p *Polygon) SignedArea() float64 {
	var sum float64
	for i := range p.vertices {
		sum += p.vertices[i].Cross(p.Vertex(i + 1))
	}
	return sum / 2
}

// VertexCentroid returns the average of the vertices.
func (p *Polygon) VertexCentroid() r2.Point {
	var c r2.Point
	for _, v := range p.vertices {
		c = c.Add(v)
	}
	return c.Mul(1 / float64(len(p.vertices)))
}

func (p *Polygon) String() string {
	parts := make([]string, len(p.vertices))
	for i, v := range p.vertices {
		parts[i] = fmt.Sprintf("(%g, %g)", v.X, v.Y)
	}
	return "Polygon[" + strings.Join(parts, " ") + "]"
}
