package behavior

import (
	"fmt"

	"github.com/vovakirdan/tui-collide/internal/collision"
	"github.com/vovakirdan/tui-collide/internal/registry"
	"github.com/vovakirdan/tui-collide/internal/room"
)

func init() {
	registry.Register("reaper", "destroy members of a group on contact", newReaper)
}

// Reaper destroys every member of Target it overlaps.
type Reaper struct {
	Target string
	Kills  int

	env registry.Env
}

// params: target (required group tag).
func newReaper(p registry.Params, env registry.Env) (room.Updater, error) {
	target, err := p.String("target", "")
	if err != nil {
		return nil, err
	}
	if target == "" {
		return nil, fmt.Errorf("param target is required")
	}
	return &Reaper{Target: target, env: env}, nil
}

func (r *Reaper) Update(e *room.Entity) {
	_, err := collision.CollidesGroup(e.Room(), e.Shape, r.Target,
		collision.Excluding(e),
		collision.OnHit(func(res collision.Result) {
			res.Entity.Destroy()
			r.Kills++
		}),
	)
	if err != nil {
		r.env.Logger.Debug("reaper: undecidable pair ignored", "entity", e, "err", err)
	}
}
