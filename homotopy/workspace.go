package homotopy

import (
	"fmt"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"

	"github.com/mlrrts/homotopy/planar"
)

// MinDimension is the smallest width or height with a non-empty interior
// around the centre.
const MinDimension = 3

// Workspace is the bounded rectangle [0, Width-1] x [0, Height-1] in which
// obstacles live.
type Workspace struct {
	Width, Height int
}

// NewWorkspace validates the dimensions.
func NewWorkspace(width, height int) (Workspace, error) {
	if width < MinDimension || height < MinDimension {
		return Workspace{}, fmt.Errorf("%w: dimensions %dx%d, need at least %dx%d",
			ErrInvalidWorkspace, width, height, MinDimension, MinDimension)
	}
	return Workspace{Width: width, Height: height}, nil
}

// Rect returns the workspace rectangle.
func (w Workspace) Rect() r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: 0, Hi: float64(w.Width - 1)},
		Y: r1.Interval{Lo: 0, Hi: float64(w.Height - 1)},
	}
}

func (w Workspace) Center() r2.Point { return w.Rect().Center() }

// Corners returns the four rectangle corners in counterclockwise order
// starting at the origin.
func (w Workspace) Corners() [4]r2.Point { return w.Rect().Vertices() }

// BoundaryEdges returns the four sides: bottom, right, top, left.
func (w Workspace) BoundaryEdges() [4]planar.Segment {
	c := w.Corners()
	return [4]planar.Segment{
		{A: c[0], B: c[1]},
		{A: c[1], B: c[2]},
		{A: c[3], B: c[2]},
		{A: c[0], B: c[3]},
	}
}

// InteriorContains reports whether p is strictly inside the rectangle.
func (w Workspace) InteriorContains(p r2.Point) bool {
	return w.Rect().InteriorContainsPoint(p)
}

// Contains reports whether p is inside the rectangle or on its boundary.
func (w Workspace) Contains(p r2.Point) bool {
	return w.Rect().ContainsPoint(p)
}

// SampleWindow is the rectangle base point candidates are drawn from after
// the centre is rejected: one fifth of each dimension, centred.
func (w Workspace) SampleWindow() r2.Rect {
	size := r2.Point{X: float64(w.Width) / 5, Y: float64(w.Height) / 5}
	return r2.RectFromCenterSize(w.Center(), size)
}

func (w Workspace) String() string {
	return fmt.Sprintf("Size[%d*%d]", w.Width, w.Height)
}
