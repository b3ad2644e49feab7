package core

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-collide/internal/geo"
	"github.com/vovakirdan/tui-collide/internal/room"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRed)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", got)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	s.Set(0, -1, 'A', ColorDefault)
	s.Set(0, 100, 'A', ColorDefault)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X', ColorBlue)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("After Clear, cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'A', ColorDefault)
	s.Set(3, 3, 'B', ColorDefault)

	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 2x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'A' {
		t.Error("Resize should keep content inside the new bounds")
	}

	s.Resize(5, 5)
	if s.Get(1, 1) != 'A' || s.Get(4, 4) != ' ' {
		t.Error("growing should keep content and blank the new area")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ABC", ColorDefault)
	s.DrawText(0, 1, "DEFG", ColorDefault) // clipped

	expected := "ABC\nDEF"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if got := s.Row(1); got != "DEF" {
		t.Errorf("Row(1) = %q, expected DEF", got)
	}
	if got := s.Row(9); got != "   " {
		t.Errorf("Row(9) = %q, expected blanks", got)
	}
}

func TestDrawShape(t *testing.T) {
	tests := []struct {
		name  string
		shape geo.Shape
		want  []string
	}{
		{
			name:  "rect",
			shape: geo.NewRect(1, 1, 3, 2),
			want: []string{
				"      ",
				" ###  ",
				" ###  ",
				"      ",
			},
		},
		{
			name:  "point floors",
			shape: geo.Pt(2.9, 1.2),
			want: []string{
				"      ",
				"  +   ",
				"      ",
				"      ",
			},
		},
		{
			name:  "horizontal line on a cell border",
			shape: geo.NewLine(0, 2, 4, 2),
			want: []string{
				"      ",
				"      ",
				"***** ",
				"      ",
			},
		},
		{
			name:  "off screen",
			shape: geo.NewRect(100, 100, 5, 5),
			want: []string{
				"      ",
				"      ",
				"      ",
				"      ",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(6, 4)
			s.DrawShape(tc.shape, GlyphFor(tc.shape.Kind()), ColorGreen)
			if got, want := s.String(), strings.Join(tc.want, "\n"); got != want {
				t.Errorf("DrawShape:\n%s\nexpected:\n%s", got, want)
			}
		})
	}
}

func TestDrawCircleStaysInBounds(t *testing.T) {
	s := NewScreen(12, 12)
	s.DrawShape(geo.NewCircle(1, 1, 4), 'o', ColorCyan)

	// Center cell (5, 5) is painted, bounding-box corners are not.
	if s.Get(4, 4) != 'o' {
		t.Error("center cell should be painted")
	}
	for _, p := range [][2]int{{1, 1}, {8, 1}, {1, 8}, {8, 8}} {
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("corner cell %v should be blank", p)
		}
	}
	if s.Get(0, 0) != ' ' || s.Get(10, 10) != ' ' {
		t.Error("cells outside the bounding box should be blank")
	}
}

func TestColorForTagStable(t *testing.T) {
	if ColorForTag("") != ColorGray {
		t.Error("empty tag should map to gray")
	}
	a := ColorForTag("walls")
	if a != ColorForTag("walls") {
		t.Error("ColorForTag should be deterministic")
	}
	if a == ColorRed {
		t.Error("red is reserved for hits")
	}
}

func TestInputFrameDelta(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionDown)

	dx, dy := f.Delta()
	if dx != -1 || dy != 1 {
		t.Errorf("Delta() = (%v, %v), expected (-1, 1)", dx, dy)
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should reset actions")
	}
}

func TestPainter(t *testing.T) {
	s := NewScreen(6, 4)
	p := NewPainter(s)

	hit := room.NewEntity("hit", geo.Pt(1, 1))
	calm := room.NewEntity("calm", geo.Pt(3, 1))
	calm.SetGroup("walls")
	p.Highlight = map[*room.Entity]bool{hit: true}

	p.Draw(hit)
	p.Draw(calm)

	if c := s.GetCell(1, 1); c.Rune != '+' || c.Color != ColorRed {
		t.Errorf("highlighted cell = %+v, expected red '+'", c)
	}
	if c := s.GetCell(3, 1); c.Color != ColorForTag("walls") {
		t.Errorf("group cell color = %v, expected %v", c.Color, ColorForTag("walls"))
	}
}

func TestClipLine(t *testing.T) {
	tests := []struct {
		name    string
		line    geo.Line
		want    geo.Line
		visible bool
	}{
		{"inside", geo.NewLine(1, 1, 4, 3), geo.NewLine(1, 1, 4, 3), true},
		{"long horizontal", geo.NewLine(-1e8, 2, 1e8, 2), geo.NewLine(0, 2, 10, 2), true},
		{"diagonal through corner", geo.NewLine(-2, -2, 20, 20), geo.NewLine(0, 0, 4, 4), true},
		{"reversed", geo.NewLine(1e8, 1, 5, 1), geo.NewLine(10, 1, 5, 1), true},
		{"above", geo.NewLine(0, -1, 10, -1), geo.Line{}, false},
		{"right of screen", geo.NewLine(11, 0, 20, 4), geo.Line{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := clipLine(tc.line, 10, 4)
			if ok != tc.visible {
				t.Fatalf("visible = %v, expected %v", ok, tc.visible)
			}
			if ok && !nearLine(got, tc.want) {
				t.Errorf("clipLine = %v, expected %v", got, tc.want)
			}
		})
	}
}

// nearLine compares endpoints allowing for rounding in the clip parameters.
func nearLine(a, b geo.Line) bool {
	const eps = 1e-6
	return math.Abs(a.P1.X-b.P1.X) < eps && math.Abs(a.P1.Y-b.P1.Y) < eps &&
		math.Abs(a.P2.X-b.P2.X) < eps && math.Abs(a.P2.Y-b.P2.Y) < eps
}

func TestDrawHugeLine(t *testing.T) {
	s := NewScreen(8, 3)
	s.DrawShape(geo.NewLine(-1e12, 1.5, 1e12, 1.5), '*', ColorDefault)

	if got := s.Row(1); got != "********" {
		t.Errorf("row 1 = %q, expected a full row", got)
	}
	if got := s.Row(0); got != "        " {
		t.Errorf("row 0 = %q, expected blank", got)
	}
}
