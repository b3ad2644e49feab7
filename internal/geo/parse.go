package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseKind maps a kind name to its Kind.
func ParseKind(s string) (Kind, error) {
	for k := KindRect; k < KindCount; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return KindCount, fmt.Errorf("geo: unknown shape kind %q", s)
}

// arity is the number of coordinates each kind takes in compact form.
var arity = [KindCount]int{
	KindRect:   4, // x,y,w,h
	KindCircle: 3, // x,y,r
	KindLine:   4, // x1,y1,x2,y2
	KindPoint:  2, // x,y
}

// ParseShape parses the compact form "kind:n,n,...", for example
// "rect:0,0,10,10", "circle:5,5,2", "line:0,0,4,4" or "point:3,3".
func ParseShape(s string) (Shape, error) {
	name, args, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return nil, fmt.Errorf("geo: shape %q: expected kind:coords", s)
	}
	kind, err := ParseKind(strings.ToLower(name))
	if err != nil {
		return nil, err
	}

	fields := strings.Split(args, ",")
	if len(fields) != arity[kind] {
		return nil, fmt.Errorf("geo: %s takes %d values, got %d", kind, arity[kind], len(fields))
	}
	v := make([]float64, len(fields))
	for i, f := range fields {
		v[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("geo: shape %q: %w", s, err)
		}
	}
	if !Finite(v...) {
		return nil, fmt.Errorf("geo: shape %q: coordinates must be finite", s)
	}

	switch kind {
	case KindRect:
		if v[2] < 0 || v[3] < 0 {
			return nil, fmt.Errorf("geo: rect %q: negative size", s)
		}
		return NewRect(v[0], v[1], v[2], v[3]), nil
	case KindCircle:
		if v[2] < 0 {
			return nil, fmt.Errorf("geo: circle %q: negative radius", s)
		}
		return NewCircle(v[0], v[1], v[2]), nil
	case KindLine:
		return NewLine(v[0], v[1], v[2], v[3]), nil
	default:
		return Pt(v[0], v[1]), nil
	}
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Format returns the compact form of s accepted by ParseShape.
func Format(s Shape) string {
	g := func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
	switch v := s.(type) {
	case Rect:
		return fmt.Sprintf("rect:%s,%s,%s,%s", g(v.X), g(v.Y), g(v.W), g(v.H))
	case Circle:
		return fmt.Sprintf("circle:%s,%s,%s", g(v.X), g(v.Y), g(v.R))
	case Line:
		return fmt.Sprintf("line:%s,%s,%s,%s", g(v.P1.X), g(v.P1.Y), g(v.P2.X), g(v.P2.Y))
	case Point:
		return fmt.Sprintf("point:%s,%s", g(v.X), g(v.Y))
	default:
		return "<nil>"
	}
}
