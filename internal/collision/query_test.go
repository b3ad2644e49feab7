package collision

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-collide/internal/geo"
	"github.com/vovakirdan/tui-collide/internal/room"
)

type fixture struct {
	room *room.Room

	rect, circle, point, line *room.Entity
}

// newFixture builds a room with one entity of each kind, all overlapping
// around (50, 50).
func newFixture() fixture {
	r := room.New("fixture")
	f := fixture{
		room:   r,
		rect:   r.Add(room.NewEntity("rect", geo.NewRect(0, 0, 100, 100))),
		circle: r.Add(room.NewEntity("circle", geo.NewCircle(0, 0, 50))),
		point:  r.Add(room.NewEntity("point", geo.Pt(50, 50))),
		line:   r.Add(room.NewEntity("line", geo.NewLine(-50, 50, 50, 50))),
	}
	f.rect.SetGroup("group-a group-b")
	f.circle.SetGroup("group-b")
	f.point.SetGroup("group-b")
	return f
}

func TestCollidesMultiple(t *testing.T) {
	f := newFixture()

	hits, err := CollidesMultiple(f.room, f.rect.Shape, Excluding(f.rect))
	if err != nil {
		t.Fatalf("CollidesMultiple failed: %v", err)
	}
	if len(hits) != 3 {
		t.Errorf("got %d hits, expected 3", len(hits))
	}

	far := geo.NewRect(200, 200, 50, 50)
	hits, err = CollidesMultiple(f.room, far)
	if err != nil {
		t.Fatalf("CollidesMultiple failed: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("got %d hits for a distant rect, expected 0", len(hits))
	}
}

func TestCollidesMultipleFollowsRoomOrder(t *testing.T) {
	f := newFixture()

	hits, err := CollidesMultiple(f.room, geo.Pt(50, 50))
	if err != nil {
		t.Fatalf("CollidesMultiple failed: %v", err)
	}

	want := []*room.Entity{f.rect, f.circle, f.point, f.line}
	if got := Entities(hits); !slices.Equal(got, want) {
		t.Errorf("hit order = %v, expected %v", got, want)
	}
}

func TestCollidesName(t *testing.T) {
	f := newFixture()

	res, err := CollidesName(f.room, f.rect.Shape, "circle")
	if err != nil {
		t.Fatalf("CollidesName failed: %v", err)
	}
	if res == nil || res.Entity != f.circle {
		t.Fatalf("expected a hit on circle, got %+v", res)
	}
	if res.Name() != "rect_circle" {
		t.Errorf("test = %s, expected rect_circle", res.Name())
	}

	res, err = CollidesName(f.room, f.rect.Shape, "nobody")
	if err != nil || res != nil {
		t.Errorf("missing name should be a miss, got %+v, %v", res, err)
	}
}

func TestCollidesGroup(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name  string
		group string
		self  *room.Entity
		want  int
	}{
		{"circle against group-a", "group-a", f.circle, 1},
		{"line against group-b", "group-b", f.line, 3},
		{"rect against its own group", "group-a", f.rect, 0},
		{"empty group", "nobody", f.rect, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hits, err := CollidesGroup(f.room, tc.self.Shape, tc.group, Excluding(tc.self))
			if err != nil {
				t.Fatalf("CollidesGroup failed: %v", err)
			}
			if len(hits) != tc.want {
				t.Errorf("got %d hits, expected %d", len(hits), tc.want)
			}
		})
	}
}

func TestCollidesGroupsAnyTag(t *testing.T) {
	f := newFixture()
	f.line.SetGroup("wire")

	hits, err := CollidesGroups(f.room, geo.Pt(50, 50), []string{"group-a", "wire"})
	if err != nil {
		t.Fatalf("CollidesGroups failed: %v", err)
	}
	want := []*room.Entity{f.rect, f.line}
	if got := Entities(hits); !slices.Equal(got, want) {
		t.Errorf("hits = %v, expected %v", got, want)
	}
}

func TestCollidesSolid(t *testing.T) {
	f := newFixture()
	f.rect.Solid = true
	f.circle.Solid = true
	f.circle.Active = false
	f.point.Solid = true

	hits, err := CollidesSolid(f.room, f.line.Shape, Excluding(f.line))
	if err != nil {
		t.Fatalf("CollidesSolid failed: %v", err)
	}

	want := []*room.Entity{f.rect, f.point}
	if got := Entities(hits); !slices.Equal(got, want) {
		t.Errorf("solid hits = %v, expected %v", got, want)
	}
}

func TestCollidesFirst(t *testing.T) {
	f := newFixture()

	res, err := CollidesFirst(f.room, geo.Pt(50, 50), Excluding(f.rect))
	if err != nil {
		t.Fatalf("CollidesFirst failed: %v", err)
	}
	if res == nil || res.Entity != f.circle {
		t.Errorf("expected the circle first, got %+v", res)
	}

	res, err = CollidesFirst(f.room, geo.Pt(500, 500))
	if err != nil || res != nil {
		t.Errorf("expected a miss, got %+v, %v", res, err)
	}
}

func TestHypotheticalPosition(t *testing.T) {
	f := newFixture()
	mover := f.room.Add(room.NewEntity("mover", geo.NewRect(300, 300, 10, 10)))

	hits, err := CollidesMultiple(f.room, mover.Shape, Excluding(mover))
	if err != nil || len(hits) != 0 {
		t.Fatalf("mover should start clear, got %d hits, %v", len(hits), err)
	}

	hits, err = CollidesMultiple(f.room, mover.At(45, 45), Excluding(mover))
	if err != nil {
		t.Fatalf("CollidesMultiple failed: %v", err)
	}
	if len(hits) == 0 {
		t.Error("mover at (45, 45) should hit the fixture")
	}
	if mover.Shape != geo.NewRect(300, 300, 10, 10) {
		t.Error("hypothetical query moved the live shape")
	}
}

func TestOnHitMayDestroy(t *testing.T) {
	f := newFixture()
	var destroyed []string

	hits, err := CollidesGroup(f.room, f.line.Shape, "group-b",
		Excluding(f.line),
		OnHit(func(res Result) {
			destroyed = append(destroyed, res.Entity.Name)
			res.Entity.Destroy()
		}),
	)
	if err != nil {
		t.Fatalf("CollidesGroup failed: %v", err)
	}

	if len(hits) != 3 {
		t.Errorf("got %d hits, expected 3", len(hits))
	}
	if !slices.Equal(destroyed, []string{"rect", "circle", "point"}) {
		t.Errorf("destroyed = %v", destroyed)
	}
	if f.room.Len() != 1 {
		t.Errorf("room has %d entities, expected only the line", f.room.Len())
	}
}

func TestQueryCannotDetermine(t *testing.T) {
	f := newFixture()
	table := DefaultTable()
	table.Unregister(geo.KindRect, geo.KindPoint)

	hits, err := CollidesMultiple(f.room, geo.Pt(50, 50), WithTable(table))
	if !errors.Is(err, ErrNoTest) {
		t.Fatalf("expected ErrNoTest, got %v", err)
	}
	// The undecidable rect is reported, the rest still scanned.
	want := []*room.Entity{f.circle, f.point, f.line}
	if got := Entities(hits); !slices.Equal(got, want) {
		t.Errorf("hits = %v, expected %v", got, want)
	}
}

func TestUsingOverridesDispatch(t *testing.T) {
	f := newFixture()
	calls := 0

	hits, err := CollidesGroup(f.room, geo.Pt(1000, 1000), "group-b",
		Using("always", func(a, b geo.Shape) bool {
			calls++
			return true
		}),
	)
	if err != nil {
		t.Fatalf("CollidesGroup failed: %v", err)
	}
	if calls != 3 || len(hits) != 3 {
		t.Errorf("calls = %d, hits = %d, expected 3 and 3", calls, len(hits))
	}
	if hits[0].Name() != "always" {
		t.Errorf("result test = %s, expected always", hits[0].Name())
	}
}

func TestQueryPointerShapeEntity(t *testing.T) {
	f := newFixture()
	rect := geo.NewRect(40, 40, 20, 20)
	f.room.Add(room.NewEntity("boxed", &rect))

	hits, err := CollidesMultiple(f.room, geo.Pt(50, 50))
	if !errors.Is(err, ErrNoTest) {
		t.Fatalf("expected ErrNoTest, got %v", err)
	}
	if len(hits) != 4 {
		t.Errorf("got %d hits, expected the 4 primitive members", len(hits))
	}
}
