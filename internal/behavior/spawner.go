package behavior

import (
	"fmt"

	"github.com/vovakirdan/tui-collide/internal/geo"
	"github.com/vovakirdan/tui-collide/internal/registry"
	"github.com/vovakirdan/tui-collide/internal/room"
)

func init() {
	registry.Register("spawner", "add a new entity every few frames", newSpawner)
}

// Spawner adds a copy of its template to the room every Every frames.
// Children are relocated to the spawner's origin plus a random jitter
// and inherit its drawer.
type Spawner struct {
	Every   int
	Limit   int // Maximum children; 0 is unlimited
	Jitter  float64
	Group   string
	Spawned int

	template geo.Shape
	child    string
	params   registry.Params
	env      registry.Env
	frame    int
}

// params: shape (compact form, required), every (30), limit (0), jitter (0),
// group, behavior and params for the children.
func newSpawner(p registry.Params, env registry.Env) (room.Updater, error) {
	s := &Spawner{env: env}
	var err error

	compact, err := p.String("shape", "")
	if err != nil {
		return nil, err
	}
	if compact == "" {
		return nil, fmt.Errorf("param shape is required")
	}
	if s.template, err = geo.ParseShape(compact); err != nil {
		return nil, err
	}
	if s.Every, err = p.Int("every", 30); err != nil {
		return nil, err
	}
	if s.Every < 1 {
		return nil, fmt.Errorf("param every must be at least 1, got %d", s.Every)
	}
	if s.Limit, err = p.Int("limit", 0); err != nil {
		return nil, err
	}
	if s.Jitter, err = p.Float("jitter", 0); err != nil {
		return nil, err
	}
	if s.Group, err = p.String("group", ""); err != nil {
		return nil, err
	}
	if s.child, err = p.String("behavior", ""); err != nil {
		return nil, err
	}
	if s.child != "" && !registry.Exists(s.child) {
		return nil, fmt.Errorf("unknown child behavior %q", s.child)
	}
	if s.params, err = p.Sub("params"); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Spawner) Update(e *room.Entity) {
	s.frame++
	if s.frame%s.Every != 0 {
		return
	}
	if s.Limit > 0 && s.Spawned >= s.Limit {
		return
	}

	origin := e.Shape.Origin()
	x, y := origin.X, origin.Y
	if s.Jitter > 0 {
		x += (s.env.Rand.Float64()*2 - 1) * s.Jitter
		y += (s.env.Rand.Float64()*2 - 1) * s.Jitter
	}

	child := room.NewEntity(fmt.Sprintf("%s-%d", e.Name, s.Spawned+1), geo.At(s.template, x, y))
	child.SetGroup(s.Group)
	child.Order = e.Order
	child.Drawer = e.Drawer
	if s.child != "" {
		u, err := registry.Create(s.child, s.params, s.env)
		if err != nil {
			s.env.Logger.Warn("spawner: child behavior failed", "entity", e, "err", err)
			return
		}
		child.Updater = u
	}

	e.Room().Add(child)
	s.Spawned++
}
