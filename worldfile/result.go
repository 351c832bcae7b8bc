package worldfile

import (
	"io"

	"github.com/mlrrts/homotopy/homotopy"
)

// Result is the serialized form of a decomposition.
type Result struct {
	WorldID   string           `yaml:"world_id,omitempty" json:"world_id,omitempty"`
	Width     int              `yaml:"width" json:"width"`
	Height    int              `yaml:"height" json:"height"`
	BasePoint Point            `yaml:"base_point" json:"base_point"`
	Obstacles []ObstacleResult `yaml:"obstacles" json:"obstacles"`
	Rays      []RayResult      `yaml:"rays" json:"rays"`
	Regions   []RegionResult   `yaml:"regions" json:"regions"`
}

type ObstacleResult struct {
	Index        int     `yaml:"index" json:"index"`
	KeyPoint     Point   `yaml:"key_point" json:"key_point"`
	BaseDistance float64 `yaml:"base_distance" json:"base_distance"`
}

type RayResult struct {
	Index    int     `yaml:"index" json:"index"`
	Obstacle int     `yaml:"obstacle" json:"obstacle"`
	Kind     string  `yaml:"kind" json:"kind"`
	Angle    float64 `yaml:"angle_degrees" json:"angle_degrees"`
	Endpoint Point   `yaml:"endpoint" json:"endpoint"`

	Crossings []CrossingResult `yaml:"crossings,omitempty" json:"crossings,omitempty"`
}

type CrossingResult struct {
	Point    Point   `yaml:"point" json:"point"`
	Distance float64 `yaml:"distance" json:"distance"`
	Obstacle int     `yaml:"obstacle" json:"obstacle"`
}

type RegionResult struct {
	Index    int     `yaml:"index" json:"index"`
	From     int     `yaml:"from" json:"from"`
	To       int     `yaml:"to" json:"to"`
	Boundary []Point `yaml:"boundary" json:"boundary"`
}

// NewResult converts a decomposition. worldID may be empty.
func NewResult(worldID string, d *homotopy.Decomposition) *Result {
	r := &Result{
		WorldID:   worldID,
		Width:     d.Workspace.Width,
		Height:    d.Workspace.Height,
		BasePoint: pointOf(d.BasePoint),
	}
	for _, o := range d.Obstacles {
		r.Obstacles = append(r.Obstacles, ObstacleResult{
			Index:        o.Index,
			KeyPoint:     pointOf(o.KeyPoint),
			BaseDistance: o.BaseDistance,
		})
	}
	for i, ray := range d.Rays {
		rr := RayResult{
			Index:    i,
			Obstacle: ray.Obstacle,
			Kind:     ray.Kind.String(),
			Angle:    ray.Direction().Angle().Degrees(),
			Endpoint: pointOf(ray.Endpoint()),
		}
		for _, c := range ray.Crossings {
			rr.Crossings = append(rr.Crossings, CrossingResult{
				Point:    pointOf(c.Point),
				Distance: c.Distance,
				Obstacle: c.Obstacle,
			})
		}
		r.Rays = append(r.Rays, rr)
	}
	for _, reg := range d.Regions {
		rr := RegionResult{Index: reg.Index, From: reg.From, To: reg.To}
		for _, p := range reg.Boundary {
			rr.Boundary = append(rr.Boundary, pointOf(p))
		}
		r.Regions = append(r.Regions, rr)
	}
	return r
}

// Encode writes the result in the given format.
func (r *Result) Encode(out io.Writer, format Format) error {
	return encode(out, format, r)
}
