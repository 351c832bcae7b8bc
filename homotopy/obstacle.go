package homotopy

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/mlrrts/homotopy/planar"
)

// Obstacle is a simple polygon inside the workspace together with its key
// point. Obstacle values are copied between decomposition phases; the
// polygon is shared and never modified.
type Obstacle struct {
	Index int

	polygon *planar.Polygon
	edges   []planar.Segment

	// KeyPoint is strictly inside the polygon once HasKeyPoint is set.
	KeyPoint    r2.Point
	HasKeyPoint bool

	// BaseDistance is the distance from the key point to the base point,
	// filled in after base point selection.
	BaseDistance float64
}

// NewObstacle builds obstacle index from an ordered vertex chain without a
// closing repeat of the first vertex.
func NewObstacle(index int, vertices []r2.Point) (Obstacle, error) {
	poly := planar.NewPolygon(vertices)
	if !poly.IsValid() {
		return Obstacle{}, opError("load obstacles", index, NoIndex,
			fmt.Errorf("%w: %v", ErrInvalidObstacle, poly))
	}
	return Obstacle{
		Index:   index,
		polygon: poly,
		edges:   poly.Edges(),
	}, nil
}

// LoadObstacles converts polygons to obstacles indexed by position. Every
// vertex must lie in the workspace rectangle, boundary included.
func LoadObstacles(ws Workspace, polygons [][]r2.Point) ([]Obstacle, error) {
	rect := ws.Rect()
	obstacles := make([]Obstacle, 0, len(polygons))
	for i, vertices := range polygons {
		o, err := NewObstacle(i, vertices)
		if err != nil {
			return nil, err
		}
		if !rect.Contains(o.polygon.Bound()) {
			return nil, opError("load obstacles", i, NoIndex,
				fmt.Errorf("%w: %v is not inside %v", ErrInvalidObstacle, o.polygon, ws))
		}
		obstacles = append(obstacles, o)
	}
	return obstacles, nil
}

func (o Obstacle) Polygon() *planar.Polygon { return o.polygon }

// Edges returns the border segments. The slice is shared and must not be
// modified.
func (o Obstacle) Edges() []planar.Segment { return o.edges }

// Contains reports whether p is inside the obstacle or on its border.
func (o Obstacle) Contains(p r2.Point) bool {
	return o.polygon.ContainsPoint(p)
}

// DistanceToKeyPoint returns the distance from p to the key point.
func (o Obstacle) DistanceToKeyPoint(p r2.Point) float64 {
	return planar.Distance(o.KeyPoint, p)
}

func (o Obstacle) withKeyPoint(k r2.Point) Obstacle {
	o.KeyPoint = k
	o.HasKeyPoint = true
	return o
}

func (o Obstacle) String() string {
	if !o.HasKeyPoint {
		return fmt.Sprintf("Obstacle %d %v", o.Index, o.polygon)
	}
	return fmt.Sprintf("Obstacle %d %v key(%g, %g)", o.Index, o.polygon, o.KeyPoint.X, o.KeyPoint.Y)
}
