package collision

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-collide/internal/geo"
)

// ErrNoTest means no test is registered for a pair of shape kinds.
// It is "cannot determine", never "no collision".
var ErrNoTest = errors.New("collision: no test registered for shape pair")

// TestFunc is a narrow-phase test over two shapes.
// The dispatch table always passes the lower-ranked kind first.
type TestFunc func(a, b geo.Shape) bool

// Test is a registered narrow-phase test together with the name callers
// see in a Result.
type Test struct {
	Name string
	Func TestFunc
}

// Run applies the test to a pair that is already in canonical order.
func (t Test) Run(a, b geo.Shape) bool {
	return t.Func(a, b)
}

// Table maps each unordered pair of shape kinds to one test.
// Only the upper triangle (lower rank first) is ever consulted.
type Table struct {
	tests [geo.KindCount][geo.KindCount]*Test
}

// NewTable returns an empty table. Every lookup fails until tests are registered.
func NewTable() *Table {
	return &Table{}
}

// DefaultTable returns a table with all ten primitive pairs registered.
func DefaultTable() *Table {
	t := NewTable()
	t.Register(geo.KindRect, geo.KindRect, "rect_rect", func(a, b geo.Shape) bool {
		return RectRect(a.(geo.Rect), b.(geo.Rect))
	})
	t.Register(geo.KindRect, geo.KindCircle, "rect_circle", func(a, b geo.Shape) bool {
		return RectCircle(a.(geo.Rect), b.(geo.Circle))
	})
	t.Register(geo.KindRect, geo.KindLine, "rect_line", func(a, b geo.Shape) bool {
		return RectLine(a.(geo.Rect), b.(geo.Line))
	})
	t.Register(geo.KindRect, geo.KindPoint, "rect_point", func(a, b geo.Shape) bool {
		return RectPoint(a.(geo.Rect), b.(geo.Point))
	})
	t.Register(geo.KindCircle, geo.KindCircle, "circle_circle", func(a, b geo.Shape) bool {
		return CircleCircle(a.(geo.Circle), b.(geo.Circle))
	})
	t.Register(geo.KindCircle, geo.KindLine, "circle_line", func(a, b geo.Shape) bool {
		return CircleLine(a.(geo.Circle), b.(geo.Line))
	})
	t.Register(geo.KindCircle, geo.KindPoint, "circle_point", func(a, b geo.Shape) bool {
		return CirclePoint(a.(geo.Circle), b.(geo.Point))
	})
	t.Register(geo.KindLine, geo.KindLine, "line_line", func(a, b geo.Shape) bool {
		return LineLine(a.(geo.Line), b.(geo.Line))
	})
	t.Register(geo.KindLine, geo.KindPoint, "line_point", func(a, b geo.Shape) bool {
		return LinePoint(a.(geo.Line), b.(geo.Point))
	})
	t.Register(geo.KindPoint, geo.KindPoint, "point_point", func(a, b geo.Shape) bool {
		return PointPoint(a.(geo.Point), b.(geo.Point))
	})
	return t
}

// Register installs fn for the unordered pair (a, b).
// fn receives its arguments with the lower-ranked kind first, whatever
// order a and b are given in here.
func (t *Table) Register(a, b geo.Kind, name string, fn TestFunc) {
	if !a.Valid() || !b.Valid() {
		panic(fmt.Sprintf("collision: cannot register %s for %s x %s", name, a, b))
	}
	if a > b {
		a, b = b, a
	}
	t.tests[a][b] = &Test{Name: name, Func: fn}
}

// Unregister removes the test for the unordered pair (a, b).
func (t *Table) Unregister(a, b geo.Kind) {
	if !a.Valid() || !b.Valid() {
		return
	}
	if a > b {
		a, b = b, a
	}
	t.tests[a][b] = nil
}

// Lookup returns the test for a pair of shapes along with the shapes in
// the order the test expects. The error wraps ErrNoTest when the pair has
// no registered test, either shape is nil, or either is not a primitive
// value (a *geo.Rect, for instance).
func (t *Table) Lookup(a, b geo.Shape) (Test, geo.Shape, geo.Shape, error) {
	if a == nil || b == nil {
		return Test{}, nil, nil, fmt.Errorf("%w: nil shape", ErrNoTest)
	}

	if !primitive(a) || !primitive(b) {
		return Test{}, nil, nil, fmt.Errorf("%w: %T x %T", ErrNoTest, a, b)
	}

	ka, kb := a.Kind(), b.Kind()
	if !ka.Valid() || !kb.Valid() {
		return Test{}, nil, nil, fmt.Errorf("%w: %s x %s", ErrNoTest, ka, kb)
	}
	if ka > kb {
		a, b = b, a
		ka, kb = kb, ka
	}

	test := t.tests[ka][kb]
	if test == nil {
		return Test{}, nil, nil, fmt.Errorf("%w: %s x %s", ErrNoTest, ka, kb)
	}
	return *test, a, b, nil
}

// primitive reports whether s is one of the four value types the tests
// assert on. Pointers to them satisfy Shape too but are not decidable.
func primitive(s geo.Shape) bool {
	switch s.(type) {
	case geo.Rect, geo.Circle, geo.Line, geo.Point:
		return true
	}
	return false
}

// Supports reports whether the table can decide the pair (a, b).
func (t *Table) Supports(a, b geo.Kind) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	if a > b {
		a, b = b, a
	}
	return t.tests[a][b] != nil
}

// Test runs the registered test for a and b.
func (t *Table) Test(a, b geo.Shape) (bool, error) {
	test, first, second, err := t.Lookup(a, b)
	if err != nil {
		return false, err
	}
	return test.Run(first, second), nil
}

// Collides tests a against b.
// A hit returns a Result; a miss returns nil and a nil error; a pair the
// table cannot decide returns an error wrapping ErrNoTest.
func (t *Table) Collides(a, b geo.Shape) (*Result, error) {
	test, first, second, err := t.Lookup(a, b)
	if err != nil {
		return nil, err
	}
	if !test.Run(first, second) {
		return nil, nil
	}
	return &Result{Test: test, A: a, B: b}, nil
}

var defaultTable = DefaultTable()

// Collides tests a against b using the default table.
func Collides(a, b geo.Shape) (*Result, error) {
	return defaultTable.Collides(a, b)
}

// Lookup resolves the default table's test for a pair of shapes.
func Lookup(a, b geo.Shape) (Test, geo.Shape, geo.Shape, error) {
	return defaultTable.Lookup(a, b)
}

// CollidesAny returns the first shape in shapes that target collides with.
// Pairs the default table cannot decide are skipped and reported in the error.
func CollidesAny(target geo.Shape, shapes []geo.Shape) (*Result, error) {
	var errs []error
	for _, s := range shapes {
		res, err := defaultTable.Collides(target, s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if res != nil {
			return res, errors.Join(errs...)
		}
	}
	return nil, errors.Join(errs...)
}
