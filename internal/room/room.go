// Package room provides the entity container driven by the frame loop.
//
// A Room keeps entities in insertion order until a sort is due; adds and
// removes mark the room dirty and the next Update performs one stable sort
// by Order. Update, Render and every query helper iterate a copy of the
// backing slice, so per-frame logic may add or remove entities freely.
package room

import (
	"cmp"
	"io"
	"iter"
	"slices"

	"github.com/charmbracelet/log"
)

// Room is an ordered, mutable collection of live entities.
// It is not safe for concurrent use; the frame loop owns it.
type Room struct {
	name         string
	entities     []*Entity
	sortRequired bool
	logger       *log.Logger
}

// Option configures a Room.
type Option func(*Room)

// WithLogger sets the logger used for non-fatal diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(r *Room) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates an empty room.
func New(name string, opts ...Option) *Room {
	r := &Room{
		name:   name,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the room's name.
func (r *Room) Name() string {
	return r.name
}

// Len returns the number of live entities.
func (r *Room) Len() int {
	return len(r.entities)
}

// SortRequired reports whether the next Update will re-sort.
func (r *Room) SortRequired() bool {
	return r.sortRequired
}

// Add appends e and makes it live. Adding an entity the room already owns
// is a no-op. An entity owned by another room is detached from it first.
// Add leaves Active alone, so an entity re-added after Remove stays
// inactive until the caller sets it.
func (r *Room) Add(e *Entity) *Entity {
	if e.room == r {
		r.logger.Debug("entity already in room", "entity", e, "room", r.name)
		return e
	}
	if e.room != nil {
		// Moving between rooms keeps the entity's flags.
		active := e.Active
		e.room.Remove(e)
		e.Active = active
	}

	e.room = r
	r.entities = append(r.entities, e)
	r.sortRequired = true
	return e
}

// Remove detaches e and clears its Active flag. It reports whether e was a
// member; removing a non-member changes nothing.
func (r *Room) Remove(e *Entity) bool {
	i := slices.Index(r.entities, e)
	if i < 0 {
		r.logger.Debug("remove: entity not in room", "entity", e, "room", r.name)
		return false
	}

	r.entities = slices.Delete(r.entities, i, i+1)
	e.room = nil
	e.Active = false
	r.sortRequired = true
	return true
}

// RemoveGroup removes every member tagged tag and returns how many were removed.
func (r *Room) RemoveGroup(tag string) int {
	removed := 0
	for _, e := range r.Snapshot() {
		if e.MemberOf(tag) && r.Remove(e) {
			removed++
		}
	}
	return removed
}

// RemoveName removes the first entity called name.
func (r *Room) RemoveName(name string) bool {
	e, ok := r.GetName(name)
	if !ok {
		return false
	}
	return r.Remove(e)
}

// GetName returns the first entity called name.
func (r *Room) GetName(name string) (*Entity, bool) {
	for _, e := range r.entities {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Group yields members tagged with any of tags, reading the live slice as
// it goes. Callers that add or remove entities while ranging over it must
// collect it first (slices.Collect) or use GroupSnapshot.
func (r *Room) Group(tags ...string) iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for i := 0; i < len(r.entities); i++ {
			e := r.entities[i]
			if e.MemberOf(tags...) && !yield(e) {
				return
			}
		}
	}
}

// GroupSnapshot returns a copy of the members tagged with any of tags.
func (r *Room) GroupSnapshot(tags ...string) []*Entity {
	return slices.Collect(r.Group(tags...))
}

// All yields every member in current order, reading the live slice.
func (r *Room) All() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for i := 0; i < len(r.entities); i++ {
			if !yield(r.entities[i]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the members in current order.
func (r *Room) Snapshot() []*Entity {
	return slices.Clone(r.entities)
}

// Contains reports whether e is a member.
func (r *Room) Contains(e *Entity) bool {
	return e != nil && e.room == r
}

// Update calls Update on every active member, then performs a pending sort.
// Members removed earlier in the same pass are skipped.
// It returns the number of Update calls made.
func (r *Room) Update() int {
	n := 0
	for _, e := range r.Snapshot() {
		if e.room != r || !e.Active || e.Updater == nil {
			continue
		}
		e.Updater.Update(e)
		n++
	}

	if r.sortRequired {
		r.Sort()
	}
	return n
}

// Render calls Draw on every visible member in current order.
// Render never sorts. It returns the number of Draw calls made.
func (r *Room) Render() int {
	n := 0
	for _, e := range r.Snapshot() {
		if e.room != r || !e.Visible || e.Drawer == nil {
			continue
		}
		e.Drawer.Draw(e)
		n++
	}
	return n
}

// Sort stably orders members by Order and clears the pending flag.
func (r *Room) Sort() {
	slices.SortStableFunc(r.entities, func(a, b *Entity) int {
		return cmp.Compare(a.Order, b.Order)
	})
	r.sortRequired = false
}

// Clear detaches every member.
func (r *Room) Clear() {
	for _, e := range r.entities {
		e.room = nil
	}
	r.entities = nil
	r.sortRequired = false
}
