package homotopy

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/golang/geo/r2"

	"github.com/mlrrts/homotopy/planar"
)

// DefaultMaxBasePointAttempts bounds the randomized base point search.
const DefaultMaxBasePointAttempts = 10000

// keyLine is the line through the key points of obstacles I and J.
type keyLine struct {
	planar.Line
	I, J int
}

// keyPointLines returns one line per pair of obstacles. Pairs whose key
// points coincide define no line and are skipped; they surface later as a
// ray ordering tie.
func keyPointLines(obstacles []Obstacle) []keyLine {
	var lines []keyLine
	for i := 0; i < len(obstacles); i++ {
		for j := i + 1; j < len(obstacles); j++ {
			l := planar.Line{P: obstacles[i].KeyPoint, Q: obstacles[j].KeyPoint}
			if l.IsDegenerate() {
				continue
			}
			lines = append(lines, keyLine{l, obstacles[i].Index, obstacles[j].Index})
		}
	}
	return lines
}

// basePointViolation describes why c cannot be the base point, or returns
// "" if it can.
func basePointViolation(ws Workspace, obstacles []Obstacle, lines []keyLine, c r2.Point) string {
	if !ws.InteriorContains(c) {
		return "not strictly inside the workspace"
	}
	for _, o := range obstacles {
		if o.Contains(c) {
			return fmt.Sprintf("inside obstacle %d", o.Index)
		}
	}
	for _, l := range lines {
		if l.HasOn(c) {
			return fmt.Sprintf("on the key point line of obstacles %d and %d", l.I, l.J)
		}
	}
	return ""
}

// SelectBasePoint finds a point strictly inside the workspace, outside
// every obstacle and off every line through two key points. The workspace
// centre is tried first; after that candidates are drawn uniformly from
// ws.SampleWindow(). At most maxAttempts candidates are tested.
func SelectBasePoint(ws Workspace, obstacles []Obstacle, rng *rand.Rand, maxAttempts int, logger *log.Logger) (r2.Point, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxBasePointAttempts
	}
	logger = orDiscard(logger)
	lines := keyPointLines(obstacles)
	window := ws.SampleWindow()
	c := ws.Center()
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		why := basePointViolation(ws, obstacles, lines, c)
		if why == "" {
			logger.Printf("base point (%g, %g) accepted after %d attempt(s)", c.X, c.Y, attempt)
			return c, nil
		}
		if attempt == 1 {
			logger.Printf("workspace centre rejected: %s", why)
		}
		c = r2.Point{
			X: window.X.Lo + rng.Float64()*window.X.Length(),
			Y: window.Y.Lo + rng.Float64()*window.Y.Length(),
		}
	}
	return r2.Point{}, opError("select base point", NoIndex, NoIndex,
		fmt.Errorf("%w after %d attempts", ErrDegenerateBasePoint, maxAttempts))
}

// CheckBasePoint validates a caller supplied base point. Unlike
// SelectBasePoint it does not reject key point collinearity; a fixed base
// point on such a line makes SortRays report ErrDegenerateRayOrdering.
func CheckBasePoint(ws Workspace, obstacles []Obstacle, c r2.Point) error {
	if why := basePointViolation(ws, obstacles, nil, c); why != "" {
		return opError("check base point", NoIndex, NoIndex,
			fmt.Errorf("%w: (%g, %g) is %s", ErrDegenerateBasePoint, c.X, c.Y, why))
	}
	return nil
}

// withBaseDistances returns a copy of obstacles with BaseDistance set.
func withBaseDistances(obstacles []Obstacle, c r2.Point) []Obstacle {
	out := make([]Obstacle, len(obstacles))
	for i, o := range obstacles {
		o.BaseDistance = o.DistanceToKeyPoint(c)
		out[i] = o
	}
	return out
}
