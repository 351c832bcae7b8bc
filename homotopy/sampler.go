package homotopy

import (
	"fmt"
	"math/rand"

	"github.com/golang/geo/r2"
)

// A KeyPointSampler chooses the representative point of an obstacle. The
// returned point must lie strictly inside the obstacle polygon; how it is
// chosen is up to the implementation.
type KeyPointSampler interface {
	SampleKeyPoint(o Obstacle, rng *rand.Rand) (r2.Point, error)
}

// KeyPointFunc adapts an ordinary function to KeyPointSampler.
type KeyPointFunc func(o Obstacle, rng *rand.Rand) (r2.Point, error)

func (f KeyPointFunc) SampleKeyPoint(o Obstacle, rng *rand.Rand) (r2.Point, error) {
	return f(o, rng)
}

// DefaultKeyPointAttempts bounds rejection sampling in InteriorSampler.
const DefaultKeyPointAttempts = 10000

// InteriorSampler uses the vertex centroid when it is strictly inside the
// polygon and otherwise draws uniform points from the bounding rectangle
// until one lands strictly inside.
type InteriorSampler struct {
	MaxAttempts int
}

func (s InteriorSampler) SampleKeyPoint(o Obstacle, rng *rand.Rand) (r2.Point, error) {
	poly := o.Polygon()
	if c := poly.VertexCentroid(); poly.InteriorContainsPoint(c) {
		return c, nil
	}
	attempts := s.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultKeyPointAttempts
	}
	b := poly.Bound()
	for i := 0; i < attempts; i++ {
		p := r2.Point{
			X: b.X.Lo + rng.Float64()*b.X.Length(),
			Y: b.Y.Lo + rng.Float64()*b.Y.Length(),
		}
		if poly.InteriorContainsPoint(p) {
			return p, nil
		}
	}
	return r2.Point{}, fmt.Errorf("%w after %d attempts", ErrKeyPointNotFound, attempts)
}

// SampleKeyPoints returns a copy of obstacles with key points assigned.
// Samplers that return a point not strictly inside the obstacle are
// rejected with ErrKeyPointNotFound.
func SampleKeyPoints(obstacles []Obstacle, sampler KeyPointSampler, rng *rand.Rand) ([]Obstacle, error) {
	out := make([]Obstacle, len(obstacles))
	for i, o := range obstacles {
		k, err := sampler.SampleKeyPoint(o, rng)
		if err != nil {
			return nil, opError("sample key points", o.Index, NoIndex, err)
		}
		if !o.Polygon().InteriorContainsPoint(k) {
			return nil, opError("sample key points", o.Index, NoIndex,
				fmt.Errorf("%w: sampler returned (%g, %g)", ErrKeyPointNotFound, k.X, k.Y))
		}
		out[i] = o.withKeyPoint(k)
	}
	return out, nil
}
