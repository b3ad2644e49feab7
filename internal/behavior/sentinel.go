package behavior

import (
	"github.com/vovakirdan/tui-collide/internal/collision"
	"github.com/vovakirdan/tui-collide/internal/registry"
	"github.com/vovakirdan/tui-collide/internal/room"
)

func init() {
	registry.Register("sentinel", "count frames spent overlapping another entity", newSentinel)
}

// Sentinel counts the frames in which its entity overlaps the entity named
// Watch, or any other entity when Watch is empty.
type Sentinel struct {
	Watch     string
	Triggered int
	Last      string // Name of the entity seen on the latest triggered frame

	env registry.Env
}

// params: watch (entity name, optional).
func newSentinel(p registry.Params, env registry.Env) (room.Updater, error) {
	watch, err := p.String("watch", "")
	if err != nil {
		return nil, err
	}
	return &Sentinel{Watch: watch, env: env}, nil
}

func (s *Sentinel) Update(e *room.Entity) {
	var (
		res *collision.Result
		err error
	)
	if s.Watch != "" {
		res, err = collision.CollidesName(e.Room(), e.Shape, s.Watch, collision.Excluding(e))
	} else {
		res, err = collision.CollidesFirst(e.Room(), e.Shape, collision.Excluding(e))
	}
	if err != nil {
		s.env.Logger.Debug("sentinel: undecidable pair ignored", "entity", e, "err", err)
	}
	if res == nil {
		return
	}

	s.Triggered++
	s.Last = res.Entity.Name
}
