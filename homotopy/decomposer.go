// Package homotopy decomposes a rectangular workspace with polygonal
// obstacles into angular sectors around a base point. Each obstacle casts
// two rays from the base point, one through its key point and one directly
// away from it; the sequence of rays and sectors a path crosses encodes its
// homotopy class.
package homotopy

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/golang/geo/r2"
)

// Decomposition is the result of decomposing a workspace around a base
// point. All slices are owned by the decomposition and must not be
// modified; rays and regions refer to obstacles by index.
type Decomposition struct {
	Workspace Workspace
	BasePoint r2.Point

	// Obstacles are in input order with key points and base distances set.
	Obstacles []Obstacle

	// Corners are the rays to the workspace corners, sorted by direction.
	Corners [4]CornerRay

	// Rays are sorted counterclockwise by direction and carry their
	// crossing lists.
	Rays []RaySubdivision

	// Regions[i] lies between Rays[i] and Rays[i+1], wrapping.
	Regions []Region
}

// Decompose runs every phase in order: load obstacles, sample key points,
// select the base point, build, sort and subdivide rays, assemble regions.
// ctx is checked between phases and during subdivision.
func Decompose(ctx context.Context, ws Workspace, polygons [][]r2.Point, opts Options) (*Decomposition, error) {
	logger := orDiscard(opts.Logger)
	if _, err := NewWorkspace(ws.Width, ws.Height); err != nil {
		return nil, opError("decompose", NoIndex, NoIndex, err)
	}

	obstacles, err := LoadObstacles(ws, polygons)
	if err != nil {
		return nil, err
	}
	if len(obstacles) == 0 {
		logger.Printf("%v: no obstacles, the workspace is a single region", ws)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	if obstacles, err = SampleKeyPoints(obstacles, opts.sampler(), rng); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var base r2.Point
	if opts.BasePoint != nil {
		base = *opts.BasePoint
		if err := CheckBasePoint(ws, obstacles, base); err != nil {
			return nil, err
		}
		logger.Printf("using fixed base point (%g, %g)", base.X, base.Y)
	} else {
		base, err = SelectBasePoint(ws, obstacles, rng, opts.MaxBasePointAttempts, logger)
		if err != nil {
			return nil, err
		}
	}
	obstacles = withBaseDistances(obstacles, base)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rays, err := BuildRays(ws, obstacles, base)
	if err != nil {
		return nil, err
	}
	if rays, err = SortRays(rays); err != nil {
		return nil, err
	}
	if rays, err = Subdivide(ctx, rays, obstacles, opts.Parallelism); err != nil {
		return nil, err
	}
	corners := CornerRays(ws, base)
	regions := AssembleRegions(ws, base, rays, corners)
	logger.Printf("%v: %d obstacle(s), %d ray(s), %d region(s)", ws, len(obstacles), len(rays), len(regions))

	return &Decomposition{
		Workspace: ws,
		BasePoint: base,
		Obstacles: obstacles,
		Corners:   corners,
		Rays:      rays,
		Regions:   regions,
	}, nil
}

// ObstacleRays returns the away and toward rays of obstacle i, or nils if
// there is no such obstacle.
func (d *Decomposition) ObstacleRays(i int) (away, toward *RaySubdivision) {
	for k := range d.Rays {
		r := &d.Rays[k]
		if r.Obstacle != i {
			continue
		}
		if r.Kind == Away {
			away = r
		} else {
			toward = r
		}
	}
	return away, toward
}

// Locate returns the index of a region containing p. A point on a shared
// ray belongs to both neighbouring regions; the lower index is returned.
func (d *Decomposition) Locate(p r2.Point) (int, bool) {
	if !d.Workspace.Contains(p) {
		return NoIndex, false
	}
	for _, r := range d.Regions {
		if r.ContainsPoint(p) {
			return r.Index, true
		}
	}
	return NoIndex, false
}

func (d *Decomposition) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v base(%g, %g)\n", d.Workspace, d.BasePoint.X, d.BasePoint.Y)
	for _, o := range d.Obstacles {
		fmt.Fprintf(&sb, "  %v dist %g\n", o, o.BaseDistance)
	}
	for i, r := range d.Rays {
		fmt.Fprintf(&sb, "  ray %d: %v\n", i, r)
		for _, c := range r.Crossings {
			fmt.Fprintf(&sb, "    (%g, %g) obstacle %d at %g\n", c.Point.X, c.Point.Y, c.Obstacle, c.Distance)
		}
	}
	for _, r := range d.Regions {
		fmt.Fprintf(&sb, "  %v\n", r)
	}
	return sb.String()
}
