package core

import (
	"math"

	"github.com/vovakirdan/tui-collide/internal/collision"
	"github.com/vovakirdan/tui-collide/internal/geo"
	"github.com/vovakirdan/tui-collide/internal/room"
)

// cellInset shrinks the probe rectangle for each cell so that shapes only
// touching a cell's edge do not paint it.
const cellInset = 0.05

// DrawShape paints every cell the shape overlaps.
// Each cell is tested as a small rectangle against the shape with the
// collision engine, so the picture matches what queries report.
func (s *Screen) DrawShape(shape geo.Shape, r rune, c Color) {
	switch v := shape.(type) {
	case geo.Point:
		s.Set(int(math.Floor(v.X)), int(math.Floor(v.Y)), r, c)
		return
	case geo.Line:
		s.drawLine(v, r, c)
		return
	}

	b := shape.Bounds()
	x0 := max(int(math.Floor(b.Left())), 0)
	y0 := max(int(math.Floor(b.Top())), 0)
	x1 := min(int(math.Ceil(b.Right())), s.width-1)
	y1 := min(int(math.Ceil(b.Bottom())), s.height-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cell := geo.NewRect(float64(x)+cellInset, float64(y)+cellInset, 1-2*cellInset, 1-2*cellInset)
			if hit, err := collision.Collides(cell, shape); err == nil && hit != nil {
				s.Set(x, y, r, c)
			}
		}
	}
}

// GlyphFor returns the default rune for a shape kind.
func GlyphFor(k geo.Kind) rune {
	switch k {
	case geo.KindRect:
		return '#'
	case geo.KindCircle:
		return 'o'
	case geo.KindLine:
		return '*'
	case geo.KindPoint:
		return '+'
	default:
		return '?'
	}
}

// drawLine samples the part of the segment inside the screen at half-cell
// steps. Lines lying on cell borders would otherwise miss every inset cell.
func (s *Screen) drawLine(l geo.Line, r rune, c Color) {
	l, ok := clipLine(l, float64(s.width), float64(s.height))
	if !ok {
		return
	}

	steps := int(math.Ceil(l.Length()*2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := l.P1.X + t*(l.P2.X-l.P1.X)
		y := l.P1.Y + t*(l.P2.Y-l.P1.Y)
		s.Set(int(math.Floor(x)), int(math.Floor(y)), r, c)
	}
}

// clipLine cuts l to the box [0,w]x[0,h] (Liang-Barsky).
// It reports false when no part of l lies inside.
func clipLine(l geo.Line, w, h float64) (geo.Line, bool) {
	dx, dy := l.P2.X-l.P1.X, l.P2.Y-l.P1.Y
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, l.P1.X},    // left
		{dx, w - l.P1.X}, // right
		{-dy, l.P1.Y},    // top
		{dy, h - l.P1.Y}, // bottom
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return geo.Line{}, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return geo.Line{}, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return geo.Line{}, false
			}
			t1 = min(t1, t)
		}
	}

	return geo.NewLine(l.P1.X+t0*dx, l.P1.Y+t0*dy, l.P1.X+t1*dx, l.P1.Y+t1*dy), true
}

// Painter is a room.Drawer that rasterizes entities into a screen.
// Entities in Highlight are drawn red; others take the color of their
// first group tag.
type Painter struct {
	Screen    *Screen
	Highlight map[*room.Entity]bool
}

// NewPainter creates a painter for s.
func NewPainter(s *Screen) *Painter {
	return &Painter{Screen: s}
}

func (p *Painter) Draw(e *room.Entity) {
	if e.Shape == nil {
		return
	}
	c := ColorGray
	if groups := e.Groups(); len(groups) > 0 {
		c = ColorForTag(groups[0])
	}
	if p.Highlight[e] {
		c = ColorRed
	}
	p.Screen.DrawShape(e.Shape, GlyphFor(e.Shape.Kind()), c)
}
