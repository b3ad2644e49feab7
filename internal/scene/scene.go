// Package scene loads YAML scene files and builds rooms from them.
//
// A scene lists entities with a shape, group tags, flags and an optional
// named behavior. Shapes may be written as a mapping or in the compact
// "kind:coords" form accepted by geo.ParseShape.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-collide/internal/geo"
	"github.com/vovakirdan/tui-collide/internal/registry"
)

// Scene is a parsed scene file.
type Scene struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Width       int          `yaml:"width"`
	Height      int          `yaml:"height"`
	Entities    []EntitySpec `yaml:"entities"`
}

// EntitySpec describes one entity of a scene.
type EntitySpec struct {
	Name     string          `yaml:"name"`
	Group    string          `yaml:"group,omitempty"` // Space-separated tags
	Solid    bool            `yaml:"solid,omitempty"`
	Hidden   bool            `yaml:"hidden,omitempty"`
	Inactive bool            `yaml:"inactive,omitempty"`
	Order    int             `yaml:"order,omitempty"`
	Behavior string          `yaml:"behavior,omitempty"`
	Params   registry.Params `yaml:"params,omitempty"`
	Shape    ShapeSpec       `yaml:"shape"`
}

// ShapeSpec is the file form of a shape. Which fields apply depends on Kind:
// rect uses x, y, w, h; circle x, y, r; line x1, y1, x2, y2; point x, y.
type ShapeSpec struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x,omitempty"`
	Y    float64 `yaml:"y,omitempty"`
	W    float64 `yaml:"w,omitempty"`
	H    float64 `yaml:"h,omitempty"`
	R    float64 `yaml:"r,omitempty"`
	X1   float64 `yaml:"x1,omitempty"`
	Y1   float64 `yaml:"y1,omitempty"`
	X2   float64 `yaml:"x2,omitempty"`
	Y2   float64 `yaml:"y2,omitempty"`
}

// UnmarshalYAML accepts either a mapping or a compact "kind:coords" scalar.
func (s *ShapeSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		shape, err := geo.ParseShape(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*s = SpecOf(shape)
		return nil
	}

	type plain ShapeSpec
	return value.Decode((*plain)(s))
}

// SpecOf returns the file form of a shape.
func SpecOf(shape geo.Shape) ShapeSpec {
	switch v := shape.(type) {
	case geo.Rect:
		return ShapeSpec{Kind: "rect", X: v.X, Y: v.Y, W: v.W, H: v.H}
	case geo.Circle:
		return ShapeSpec{Kind: "circle", X: v.X, Y: v.Y, R: v.R}
	case geo.Line:
		return ShapeSpec{Kind: "line", X1: v.P1.X, Y1: v.P1.Y, X2: v.P2.X, Y2: v.P2.Y}
	case geo.Point:
		return ShapeSpec{Kind: "point", X: v.X, Y: v.Y}
	default:
		return ShapeSpec{}
	}
}

// Shape converts the spec to a shape.
func (s ShapeSpec) Shape() (geo.Shape, error) {
	kind, err := geo.ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	if !geo.Finite(s.X, s.Y, s.W, s.H, s.R, s.X1, s.Y1, s.X2, s.Y2) {
		return nil, fmt.Errorf("%s has a non-finite coordinate", kind)
	}
	switch kind {
	case geo.KindRect:
		if s.W < 0 || s.H < 0 {
			return nil, fmt.Errorf("rect has negative size %vx%v", s.W, s.H)
		}
		return geo.NewRect(s.X, s.Y, s.W, s.H), nil
	case geo.KindCircle:
		if s.R < 0 {
			return nil, fmt.Errorf("circle has negative radius %v", s.R)
		}
		return geo.NewCircle(s.X, s.Y, s.R), nil
	case geo.KindLine:
		return geo.NewLine(s.X1, s.Y1, s.X2, s.Y2), nil
	default:
		return geo.Pt(s.X, s.Y), nil
	}
}

// Parse decodes and validates a scene document.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scene: yaml unmarshal: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadFile reads and parses a scene file.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: reading file %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Marshal encodes the scene back to YAML.
func (s *Scene) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("scene: yaml marshal: %w", err)
	}
	return data, nil
}

// Validate checks the scene for unknown kinds, negative extents and
// unknown behaviors.
func (s *Scene) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scene: name is required")
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("scene %s: size %dx%d must be positive", s.Name, s.Width, s.Height)
	}
	for i, e := range s.Entities {
		label := e.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		if _, err := e.Shape.Shape(); err != nil {
			return fmt.Errorf("scene %s: entity %s: %w", s.Name, label, err)
		}
		if e.Behavior != "" && !registry.Exists(e.Behavior) {
			return fmt.Errorf("scene %s: entity %s: unknown behavior %q", s.Name, label, e.Behavior)
		}
	}
	return nil
}
