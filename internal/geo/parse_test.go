package geo

import "testing"

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"rect:0,0,10,10", NewRect(0, 0, 10, 10), false},
		{"circle:5,5,2.5", NewCircle(5, 5, 2.5), false},
		{"line: 1, 2, 3, 4", NewLine(1, 2, 3, 4), false},
		{"point:-3,3", Pt(-3, 3), false},
		{"RECT:1,1,1,1", NewRect(1, 1, 1, 1), false},
		{"rect:0,0,10", nil, true},
		{"rect:0,0,-1,10", nil, true},
		{"circle:0,0,-1", nil, true},
		{"hexagon:1,2", nil, true},
		{"point:a,b", nil, true},
		{"point", nil, true},
		{"point:nan,0", nil, true},
		{"rect:0,0,inf,1", nil, true},
		{"circle:-Inf,0,1", nil, true},
		{"line:0,0,1,NaN", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseShape(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseShape(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseShape(%q) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatParses(t *testing.T) {
	for _, s := range []Shape{
		NewRect(1.5, 2, 3, 4),
		NewCircle(0, 0, 7),
		NewLine(-1, -2, 3, 4),
		Pt(0.25, 9),
	} {
		got, err := ParseShape(Format(s))
		if err != nil || got != s {
			t.Errorf("ParseShape(Format(%v)) = %v, %v", s, got, err)
		}
	}
}
