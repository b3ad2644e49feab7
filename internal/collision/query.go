package collision

import (
	"errors"

	"github.com/vovakirdan/tui-collide/internal/geo"
	"github.com/vovakirdan/tui-collide/internal/room"
)

// Result records a positive test: the two shapes in the order the caller
// gave them, the test that decided it, and the entity hit (nil when B is a
// bare shape).
type Result struct {
	Test   Test
	A, B   geo.Shape
	Entity *room.Entity
}

// Name returns the name of the test that produced the result.
func (r Result) Name() string {
	return r.Test.Name
}

type queryConfig struct {
	table *Table
	self  *room.Entity
	using *Test
	onHit func(Result)
}

// QueryOption configures a room query.
type QueryOption func(*queryConfig)

// WithTable runs the query against t instead of the default table.
func WithTable(t *Table) QueryOption {
	return func(c *queryConfig) { c.table = t }
}

// Excluding skips e, normally the entity the query shape belongs to.
func Excluding(e *room.Entity) QueryOption {
	return func(c *queryConfig) { c.self = e }
}

// Using forces fn for every pair instead of dispatching by kind.
// fn receives the query shape first.
func Using(name string, fn TestFunc) QueryOption {
	return func(c *queryConfig) { c.using = &Test{Name: name, Func: fn} }
}

// OnHit calls fn for each hit, in room order, after the member snapshot is
// taken. fn may add or remove entities without affecting the scan.
func OnHit(fn func(Result)) QueryOption {
	return func(c *queryConfig) { c.onHit = fn }
}

func newQueryConfig(opts []QueryOption) *queryConfig {
	c := &queryConfig{table: defaultTable}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// test runs one pair. A nil result with a nil error is a miss.
func (c *queryConfig) test(s geo.Shape, e *room.Entity) (*Result, error) {
	if c.using != nil {
		if !c.using.Run(s, e.Shape) {
			return nil, nil
		}
		return &Result{Test: *c.using, A: s, B: e.Shape, Entity: e}, nil
	}

	res, err := c.table.Collides(s, e.Shape)
	if err != nil || res == nil {
		return nil, err
	}
	res.Entity = e
	return res, nil
}

// scan tests s against each candidate. Undecidable pairs are collected
// into the returned error and do not stop the scan.
func (c *queryConfig) scan(s geo.Shape, candidates []*room.Entity, first bool) ([]Result, error) {
	var (
		hits []Result
		errs []error
	)
	for _, e := range candidates {
		if e == c.self {
			continue
		}
		res, err := c.test(s, e)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if res == nil {
			continue
		}
		hits = append(hits, *res)
		if c.onHit != nil {
			c.onHit(*res)
		}
		if first {
			break
		}
	}
	return hits, errors.Join(errs...)
}

// CollidesName tests s against the first member of r called name.
// A missing name is a miss, not an error.
func CollidesName(r *room.Room, s geo.Shape, name string, opts ...QueryOption) (*Result, error) {
	c := newQueryConfig(opts)
	target, ok := r.GetName(name)
	if !ok || target == c.self {
		return nil, nil
	}

	res, err := c.test(s, target)
	if res != nil && c.onHit != nil {
		c.onHit(*res)
	}
	return res, err
}

// CollidesGroup returns every hit among members tagged tag.
func CollidesGroup(r *room.Room, s geo.Shape, tag string, opts ...QueryOption) ([]Result, error) {
	return CollidesGroups(r, s, []string{tag}, opts...)
}

// CollidesGroups returns every hit among members tagged with any of tags.
// Hits follow room order.
func CollidesGroups(r *room.Room, s geo.Shape, tags []string, opts ...QueryOption) ([]Result, error) {
	c := newQueryConfig(opts)
	return c.scan(s, r.GroupSnapshot(tags...), false)
}

// CollidesSolid returns every hit among active members flagged Solid.
func CollidesSolid(r *room.Room, s geo.Shape, opts ...QueryOption) ([]Result, error) {
	c := newQueryConfig(opts)
	var solids []*room.Entity
	for _, e := range r.Snapshot() {
		if e.Active && e.Solid {
			solids = append(solids, e)
		}
	}
	return c.scan(s, solids, false)
}

// CollidesMultiple returns every hit among all members of r.
func CollidesMultiple(r *room.Room, s geo.Shape, opts ...QueryOption) ([]Result, error) {
	c := newQueryConfig(opts)
	return c.scan(s, r.Snapshot(), false)
}

// CollidesFirst returns the first hit among all members of r, in room order.
func CollidesFirst(r *room.Room, s geo.Shape, opts ...QueryOption) (*Result, error) {
	c := newQueryConfig(opts)
	hits, err := c.scan(s, r.Snapshot(), true)
	if len(hits) == 0 {
		return nil, err
	}
	return &hits[0], err
}

// Entities returns the entities of a hit list, in order.
func Entities(results []Result) []*room.Entity {
	out := make([]*room.Entity, 0, len(results))
	for _, res := range results {
		if res.Entity != nil {
			out = append(out, res.Entity)
		}
	}
	return out
}
