// Package worldfile reads and writes workspace documents: the workspace
// size, optional fixed base point and obstacle polygons that make up the
// input of a decomposition, and the decomposition result itself.
package worldfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mlrrts/homotopy/homotopy"
)

// ErrInvalidDocument is returned for documents that do not match the world
// schema.
var ErrInvalidDocument = errors.New("invalid world document")

// Format is a document encoding.
type Format int

const (
	YAML Format = iota
	JSON
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf picks the format from a file extension. Anything other than
// .json is YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

// Point is a point written as a mapping.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

func pointOf(p r2.Point) Point { return Point{X: p.X, Y: p.Y} }

// Vertex is a polygon vertex written as an [x, y] pair.
type Vertex [2]float64

// World is the input document of a decomposition.
type World struct {
	ID        string     `yaml:"id,omitempty" json:"id,omitempty"`
	Width     int        `yaml:"width" json:"width"`
	Height    int        `yaml:"height" json:"height"`
	BasePoint *Point     `yaml:"base_point,omitempty" json:"base_point,omitempty"`
	Obstacles [][]Vertex `yaml:"obstacles,omitempty" json:"obstacles,omitempty"`
}

// NewWorld builds a document from a workspace and obstacle polygons.
func NewWorld(ws homotopy.Workspace, polygons [][]r2.Point) *World {
	w := &World{Width: ws.Width, Height: ws.Height}
	for _, poly := range polygons {
		vs := make([]Vertex, len(poly))
		for i, p := range poly {
			vs[i] = Vertex{p.X, p.Y}
		}
		w.Obstacles = append(w.Obstacles, vs)
	}
	return w
}

// Workspace returns the validated workspace rectangle.
func (w *World) Workspace() (homotopy.Workspace, error) {
	return homotopy.NewWorkspace(w.Width, w.Height)
}

// Polygons returns the obstacles as vertex chains.
func (w *World) Polygons() [][]r2.Point {
	polygons := make([][]r2.Point, len(w.Obstacles))
	for i, vs := range w.Obstacles {
		poly := make([]r2.Point, len(vs))
		for j, v := range vs {
			poly[j] = r2.Point{X: v[0], Y: v[1]}
		}
		polygons[i] = poly
	}
	return polygons
}

// Base returns the fixed base point, or nil if the document leaves the
// choice to the decomposition.
func (w *World) Base() *r2.Point {
	if w.BasePoint == nil {
		return nil
	}
	return &r2.Point{X: w.BasePoint.X, Y: w.BasePoint.Y}
}

// Parse decodes and validates a world document.
func Parse(data []byte, format Format) (*World, error) {
	var raw interface{}
	var err error
	switch format {
	case JSON:
		err = json.Unmarshal(data, &raw)
	case YAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("worldfile: unknown format %v", format)
	}
	if err != nil {
		return nil, fmt.Errorf("worldfile: decode %v: %w", format, err)
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	w := &World{}
	if format == JSON {
		err = json.Unmarshal(data, w)
	} else {
		err = yaml.Unmarshal(data, w)
	}
	if err != nil {
		return nil, fmt.Errorf("worldfile: decode %v: %w", format, err)
	}
	return w, nil
}

// Load reads the document at path; the format follows the extension.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("worldfile: %w", err)
	}
	w, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Encode writes w in the given format.
func (w *World) Encode(out io.Writer, format Format) error {
	return encode(out, format, w)
}

// Save writes w to path, assigning a new ID first if it has none.
func Save(path string, w *World) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("worldfile: %w", err)
	}
	if err := w.Encode(f, FormatOf(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportMetadata writes only the workspace size. The result is itself a
// valid world document without obstacles.
func ExportMetadata(out io.Writer, ws homotopy.Workspace) error {
	return encode(out, YAML, &World{Width: ws.Width, Height: ws.Height})
}

func encode(out io.Writer, format Format, v interface{}) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("worldfile: encode json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("worldfile: encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("worldfile: unknown format %v", format)
}
