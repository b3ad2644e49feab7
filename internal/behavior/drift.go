// Package behavior contains the built-in per-frame entity logic that
// scenes refer to by name. Each behavior registers itself in init().
package behavior

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-collide/internal/collision"
	"github.com/vovakirdan/tui-collide/internal/geo"
	"github.com/vovakirdan/tui-collide/internal/registry"
	"github.com/vovakirdan/tui-collide/internal/room"
)

func init() {
	registry.Register("drift", "move by a fixed velocity, bouncing off solid entities", newDrift)
}

// Drift moves its entity by (VX, VY) each frame. A move that would overlap
// a solid entity is not made; the blocked velocity component flips instead.
type Drift struct {
	VX, VY  float64
	Bounces int

	logger *log.Logger
}

// params: vx, vy (default 1, 0); random: true picks both in [-1, 1).
func newDrift(p registry.Params, env registry.Env) (room.Updater, error) {
	d := &Drift{logger: env.Logger}
	var err error
	if d.VX, err = p.Float("vx", 1); err != nil {
		return nil, err
	}
	if d.VY, err = p.Float("vy", 0); err != nil {
		return nil, err
	}
	random, err := p.Bool("random", false)
	if err != nil {
		return nil, err
	}
	if random {
		d.VX = env.Rand.Float64()*2 - 1
		d.VY = env.Rand.Float64()*2 - 1
	}
	return d, nil
}

func (d *Drift) Update(e *room.Entity) {
	r := e.Room()
	next := e.Shape.Translate(d.VX, d.VY)
	if !d.blocked(r, e, next) {
		e.Shape = next
		return
	}

	flipX := d.blocked(r, e, e.Shape.Translate(d.VX, 0))
	flipY := d.blocked(r, e, e.Shape.Translate(0, d.VY))
	if !flipX && !flipY {
		// Corner hit: only the diagonal move is blocked.
		flipX, flipY = true, true
	}
	if flipX {
		d.VX = -d.VX
	}
	if flipY {
		d.VY = -d.VY
	}
	d.Bounces++
}

func (d *Drift) blocked(r *room.Room, e *room.Entity, s geo.Shape) bool {
	hits, err := collision.CollidesSolid(r, s, collision.Excluding(e))
	if err != nil {
		d.logger.Debug("drift: undecidable pair ignored", "entity", e, "err", err)
	}
	return len(hits) > 0
}
