package homotopy

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateBasePoint means no base point avoiding every obstacle and
	// every key-point line was found within the attempt bound.
	ErrDegenerateBasePoint = errors.New("no valid base point found")

	// ErrDegenerateRayOrdering means two rays have exactly the same
	// direction from the base point, so the angular order is ambiguous.
	ErrDegenerateRayOrdering = errors.New("ambiguous decomposition: rays compare angularly equal")

	// ErrMissingBoundaryIntersection means a ray from the base point did
	// not meet the workspace boundary. This violates the interior base
	// point invariant and is never expected for valid input.
	ErrMissingBoundaryIntersection = errors.New("ray does not meet the workspace boundary")

	ErrInvalidObstacle  = errors.New("obstacle is not a simple polygon")
	ErrInvalidWorkspace = errors.New("invalid workspace")
	ErrKeyPointNotFound = errors.New("no key point found strictly inside obstacle")
)

// NoIndex marks an obstacle or ray field that does not apply.
const NoIndex = -1

// DecompositionError reports a failed decomposition phase and the obstacle
// and ray that triggered it.
type DecompositionError struct {
	Op       string
	Obstacle int
	Ray      int
	Err      error
}

func (e *DecompositionError) Error() string {
	msg := "homotopy: " + e.Op
	if e.Obstacle != NoIndex {
		msg += fmt.Sprintf(" (obstacle %d", e.Obstacle)
		if e.Ray != NoIndex {
			msg += fmt.Sprintf(", ray %d", e.Ray)
		}
		msg += ")"
	} else if e.Ray != NoIndex {
		msg += fmt.Sprintf(" (ray %d)", e.Ray)
	}
	return msg + ": " + e.Err.Error()
}

func (e *DecompositionError) Unwrap() error { return e.Err }

func opError(op string, obstacle, ray int, err error) error {
	return &DecompositionError{Op: op, Obstacle: obstacle, Ray: ray, Err: err}
}
