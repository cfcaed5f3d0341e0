package geo

import "testing"

func TestCoordinate_Valid(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		c    Coordinate
		want bool
	}{
		{"both absent", Coordinate{}, false},
		{"latitude absent", Coordinate{Lng: f(0)}, false},
		{"longitude absent", Coordinate{Lat: f(45)}, false},
		{"latitude above range", At(91, 0), false},
		{"latitude below range", At(-90.5, 0), false},
		{"longitude above range", At(45, 200), false},
		{"longitude below range", At(45, -180.01), false},
		{"valid", At(45, 45), true},
		{"upper bounds inclusive", At(90, 180), true},
		{"lower bounds inclusive", At(-90, -180), true},
		{"equator origin", At(0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoordinate_Point(t *testing.T) {
	lat := 5.6037
	if _, ok := (Coordinate{Lat: &lat}).Point(); ok {
		t.Error("partial coordinate should not yield a point")
	}

	p, ok := At(5.6037, -0.1870).Point()
	if !ok {
		t.Fatal("complete coordinate should yield a point")
	}
	if p.Lat != 5.6037 || p.Lng != -0.1870 {
		t.Errorf("Point() = %+v", p)
	}
}
