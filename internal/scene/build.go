package scene

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-collide/internal/registry"
	"github.com/vovakirdan/tui-collide/internal/room"
)

type buildConfig struct {
	seed   uint64
	logger *log.Logger
	drawer room.Drawer
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

// WithSeed seeds the behaviors' random source.
func WithSeed(seed uint64) BuildOption {
	return func(c *buildConfig) { c.seed = seed }
}

// WithLogger sets the logger handed to the room and to behaviors.
func WithLogger(l *log.Logger) BuildOption {
	return func(c *buildConfig) { c.logger = l }
}

// WithDrawer attaches d to every entity of the scene.
func WithDrawer(d room.Drawer) BuildOption {
	return func(c *buildConfig) { c.drawer = d }
}

// Build creates a room holding the scene's entities, in file order.
func (s *Scene) Build(opts ...BuildOption) (*room.Room, error) {
	c := &buildConfig{seed: 1, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(c)
	}

	env := registry.NewEnv(c.seed, c.logger)
	r := room.New(s.Name, room.WithLogger(c.logger))

	for i, spec := range s.Entities {
		shape, err := spec.Shape.Shape()
		if err != nil {
			return nil, fmt.Errorf("scene %s: entity #%d: %w", s.Name, i, err)
		}

		e := room.NewEntity(spec.Name, shape)
		e.SetGroup(spec.Group)
		e.Solid = spec.Solid
		e.Visible = !spec.Hidden
		e.Active = !spec.Inactive
		e.Order = spec.Order
		e.Drawer = c.drawer

		if spec.Behavior != "" {
			u, err := registry.Create(spec.Behavior, spec.Params, env)
			if err != nil {
				return nil, fmt.Errorf("scene %s: entity %s: %w", s.Name, spec.Name, err)
			}
			e.Updater = u
		}
		r.Add(e)
	}

	c.logger.Debug("scene built", "scene", s.Name, "entities", r.Len(), "seed", c.seed)
	return r, nil
}
