package homotopy

import (
	"io"
	"log"
	"runtime"

	"github.com/golang/geo/r2"
)

// Options controls a decomposition run.
type Options struct {
	// Seed initializes the random source used for key point sampling and
	// the base point search. Runs with equal seeds and inputs are
	// reproducible.
	Seed int64

	// MaxBasePointAttempts bounds the base point search. Zero means
	// DefaultMaxBasePointAttempts.
	MaxBasePointAttempts int

	// BasePoint, if set, is used instead of searching for one.
	BasePoint *r2.Point

	// Sampler chooses obstacle key points. Nil means InteriorSampler{}.
	Sampler KeyPointSampler

	// Parallelism is the number of rays subdivided concurrently. Values
	// below 2 subdivide serially.
	Parallelism int

	// Logger receives progress messages. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns options with a fixed seed and one subdivision
// worker per CPU.
func DefaultOptions() Options {
	return Options{
		Seed:                 1,
		MaxBasePointAttempts: DefaultMaxBasePointAttempts,
		Sampler:              InteriorSampler{MaxAttempts: DefaultKeyPointAttempts},
		Parallelism:          runtime.NumCPU(),
	}
}

func (o Options) sampler() KeyPointSampler {
	if o.Sampler == nil {
		return InteriorSampler{}
	}
	return o.Sampler
}

var discard = log.New(io.Discard, "", 0)

func orDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return discard
	}
	return l
}
