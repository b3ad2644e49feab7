package room

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-collide/internal/geo"
)

// Updater is per-frame logic attached to an entity.
type Updater interface {
	Update(e *Entity)
}

// Drawer is per-frame draw logic attached to an entity.
type Drawer interface {
	Draw(e *Entity)
}

// UpdateFunc adapts a function to Updater.
type UpdateFunc func(e *Entity)

func (f UpdateFunc) Update(e *Entity) { f(e) }

// DrawFunc adapts a function to Drawer.
type DrawFunc func(e *Entity)

func (f DrawFunc) Draw(e *Entity) { f(e) }

// Entity is a live object: a shape plus the flags and tags a room uses to
// schedule and query it.
type Entity struct {
	Name  string
	Shape geo.Shape

	Active  bool // Receives Update calls
	Visible bool // Receives Draw calls
	Solid   bool // Eligible for solid queries
	Order   int  // Ascending update/render priority

	Updater Updater
	Drawer  Drawer

	groups []string
	room   *Room
}

// NewEntity creates an active, visible, non-solid entity.
func NewEntity(name string, shape geo.Shape) *Entity {
	return &Entity{
		Name:    name,
		Shape:   shape,
		Active:  true,
		Visible: true,
	}
}

// SetGroup replaces the entity's tags with the space-separated list in groups.
// Duplicate tags are collapsed; order of first appearance is kept.
func (e *Entity) SetGroup(groups string) {
	e.groups = e.groups[:0]
	for _, tag := range strings.Fields(groups) {
		if !slices.Contains(e.groups, tag) {
			e.groups = append(e.groups, tag)
		}
	}
}

// Group returns the tags joined by spaces.
func (e *Entity) Group() string {
	return strings.Join(e.groups, " ")
}

// Groups returns a copy of the entity's tags.
func (e *Entity) Groups() []string {
	return slices.Clone(e.groups)
}

// MemberOf reports whether the entity carries any of the given tags.
func (e *Entity) MemberOf(tags ...string) bool {
	for _, g := range e.groups {
		if slices.Contains(tags, g) {
			return true
		}
	}
	return false
}

// Room returns the owning room, or nil if the entity is not live.
func (e *Entity) Room() *Room {
	return e.room
}

// Live reports whether the entity currently belongs to a room.
func (e *Entity) Live() bool {
	return e.room != nil
}

// At returns the entity's shape relocated to (x, y).
// The live shape is left untouched.
func (e *Entity) At(x, y float64) geo.Shape {
	return geo.At(e.Shape, x, y)
}

// Destroy detaches the entity from its room and deactivates it.
// Calling it on a detached entity only clears Active.
func (e *Entity) Destroy() {
	if e.room != nil {
		e.room.Remove(e)
	}
	e.Active = false
}

func (e *Entity) String() string {
	if e.Name != "" {
		return e.Name
	}
	if e.Shape == nil {
		return "entity"
	}
	return fmt.Sprintf("%s%v", e.Shape.Kind(), e.Shape)
}
