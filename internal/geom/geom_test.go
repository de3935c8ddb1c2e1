package geom

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 5}

	if !r.Contains(Point{X: 2, Y: 3}) {
		t.Error("top-left corner should be inside")
	}
	if !r.Contains(Point{X: 5, Y: 7}) {
		t.Error("bottom-right interior tile should be inside")
	}
	if r.Contains(Point{X: 6, Y: 3}) {
		t.Error("right edge is exclusive")
	}
	if r.Contains(Point{X: 2, Y: 8}) {
		t.Error("bottom edge is exclusive")
	}
	if r.Contains(Point{X: 1, Y: 3}) {
		t.Error("point left of rect should be outside")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 4, Height: 4}

	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{X: 2, Y: 2, Width: 4, Height: 4}, true},
		{"contained", Rect{X: 1, Y: 1, Width: 2, Height: 2}, true},
		{"touching edges", Rect{X: 4, Y: 0, Width: 4, Height: 4}, false},
		{"disjoint", Rect{X: 10, Y: 10, Width: 2, Height: 2}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Intersects(tc.b); got != tc.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tc.b, got, tc.want)
			}
			if got := tc.b.Intersects(a); got != tc.want {
				t.Errorf("Intersects should be symmetric for %+v", tc.b)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 3, Height: 3}
	if c := r.Center(); c.X != 1 || c.Y != 1 {
		t.Errorf("Center() = %+v, want (1,1)", c)
	}
}

func TestRectInset(t *testing.T) {
	r := Rect{X: 1, Y: 1, Width: 10, Height: 8}
	in := r.Inset(2)
	want := Rect{X: 3, Y: 3, Width: 6, Height: 4}
	if in != want {
		t.Errorf("Inset(2) = %+v, want %+v", in, want)
	}
}

func TestManhattan(t *testing.T) {
	if d := Manhattan(Point{X: 1, Y: 2}, Point{X: 4, Y: -1}); d != 6 {
		t.Errorf("Manhattan = %d, want 6", d)
	}
}

func TestSign(t *testing.T) {
	if Sign(-7) != -1 || Sign(0) != 0 || Sign(3) != 1 {
		t.Error("Sign should return -1, 0, +1")
	}
}
