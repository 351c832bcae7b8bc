package homotopy

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mlrrts/homotopy/planar"
)

// crossings intersects s with the border of every obstacle and returns
// the hits ordered by distance from s.A, then by obstacle. A border vertex
// lying on s is met by two edges of the same obstacle and is recorded once.
// Where the borders of two obstacles touch on s, each obstacle keeps its
// own entry.
func crossings(s planar.Segment, obstacles []Obstacle) []Crossing {
	bound := s.Bound()
	var out []Crossing
	for _, o := range obstacles {
		if !o.Polygon().Bound().Intersects(bound) {
			continue
		}
		for _, e := range o.Edges() {
			p, ok := s.Intersect(e)
			if !ok {
				continue
			}
			out = append(out, Crossing{Point: p, Distance: planar.Distance(s.A, p), Obstacle: o.Index})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Obstacle < out[j].Obstacle
	})

	uniq := out[:0]
	for _, c := range out {
		if n := len(uniq); n > 0 {
			last := uniq[n-1]
			if last.Obstacle == c.Obstacle && (last.Point == c.Point || last.Distance == c.Distance) {
				continue
			}
		}
		uniq = append(uniq, c)
	}
	return uniq
}

// Subdivide returns a copy of rays with crossing lists filled in. Each
// ray's segment, from its key point to the boundary, is intersected with
// every obstacle border, the owning obstacle included. Rays are
// independent; up to parallelism of them are processed at once.
func Subdivide(ctx context.Context, rays []RaySubdivision, obstacles []Obstacle, parallelism int) ([]RaySubdivision, error) {
	out := make([]RaySubdivision, len(rays))
	copy(out, rays)
	if parallelism < 2 {
		for i := range out {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out[i].Crossings = crossings(out[i].Segment, obstacles)
		}
		return out, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i := range out {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i].Crossings = crossings(out[i].Segment, obstacles)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
