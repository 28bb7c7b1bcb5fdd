package prim

import (
	"errors"
	"math"
	"testing"
)

func TestQuadBezEval(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	tests := []struct {
		t    float64
		want Point
	}{
		{0, Pt(0, 0)},
		{0.5, Pt(1, 1)},
		{1, Pt(2, 0)},
	}
	for _, tt := range tests {
		if got := q.Eval(tt.t); !got.Approx(tt.want, 1e-12) {
			t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestCubicBezEval(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}
	if got := c.Eval(0.5); !got.Approx(Pt(0.5, 0.75), 1e-12) {
		t.Errorf("Eval(0.5) = %v, want (0.5, 0.75)", got)
	}
	if got := c.Eval(1); got != c.P3 {
		t.Errorf("Eval(1) = %v, want %v", got, c.P3)
	}
}

func TestCardinalSplineAtEndpoints(t *testing.T) {
	p0, p1, p2, p3 := Pt(-1, 3), Pt(0, 0), Pt(4, 2), Pt(7, -1)
	for _, tension := range []float64{0, 0.5, 1} {
		if got := CardinalSplineAt(p0, p1, p2, p3, tension, 0); !got.Approx(p1, 1e-12) {
			t.Errorf("tension %v: t=0 gives %v, want %v", tension, got, p1)
		}
		if got := CardinalSplineAt(p0, p1, p2, p3, tension, 1); !got.Approx(p2, 1e-12) {
			t.Errorf("tension %v: t=1 gives %v, want %v", tension, got, p2)
		}
	}
}

func TestCardinalSplineAtCollinear(t *testing.T) {
	// Evenly spaced collinear control points stay on the line.
	p0, p1, p2, p3 := Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)
	for _, lt := range []float64{0.25, 0.5, 0.75} {
		got := CardinalSplineAt(p0, p1, p2, p3, 0.5, lt)
		if math.Abs(got.X-got.Y) > 1e-12 {
			t.Errorf("t=%v: %v is off the diagonal", lt, got)
		}
	}
}

func TestCirclePoints(t *testing.T) {
	pts, err := CirclePoints(Pt(1, 1), 2, math.Pi, 6)
	if err != nil {
		t.Fatalf("CirclePoints: %v", err)
	}
	if len(pts) != 7 {
		t.Fatalf("len = %d, want 7", len(pts))
	}
	if !pts[0].Approx(Pt(-1, 1), 1e-12) {
		t.Errorf("first = %v, want (-1, 1)", pts[0])
	}
	if !pts[6].Approx(pts[0], 1e-12) {
		t.Errorf("last = %v, want it to close on %v", pts[6], pts[0])
	}
	for i, p := range pts {
		if d := p.Distance(Pt(1, 1)); math.Abs(d-2) > 1e-12 {
			t.Errorf("point %d at distance %v, want 2", i, d)
		}
	}
}

func TestCurvePointsRejectBadSegments(t *testing.T) {
	for _, n := range []int{0, -3} {
		if _, err := CirclePoints(Point{}, 1, 0, n); !errors.Is(err, ErrInvalidSegments) {
			t.Errorf("CirclePoints(%d) = %v", n, err)
		}
		if _, err := QuadBezierPoints(QuadBez{}, n); !errors.Is(err, ErrInvalidSegments) {
			t.Errorf("QuadBezierPoints(%d) = %v", n, err)
		}
		if _, err := CubicBezierPoints(CubicBez{}, n); !errors.Is(err, ErrInvalidSegments) {
			t.Errorf("CubicBezierPoints(%d) = %v", n, err)
		}
		if _, err := CardinalSplinePoints([]Point{{}, {}}, 0.5, n); !errors.Is(err, ErrInvalidSegments) {
			t.Errorf("CardinalSplinePoints(%d) = %v", n, err)
		}
	}
}

func TestBezierPointsExactEndpoint(t *testing.T) {
	q := QuadBez{Pt(0.1, 0.2), Pt(3.3, 7.7), Pt(9.9, 0.3)}
	pts, err := QuadBezierPoints(q, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 4 || pts[3] != q.P2 {
		t.Errorf("quad points = %v, want 4 ending exactly at %v", pts, q.P2)
	}

	c := CubicBez{Pt(0.1, 0.2), Pt(3.3, 7.7), Pt(5.5, -2), Pt(9.9, 0.3)}
	cpts, err := CubicBezierPoints(c, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(cpts) != 8 || cpts[7] != c.P3 {
		t.Errorf("cubic points = %v, want 8 ending exactly at %v", cpts, c.P3)
	}
}

func TestCardinalSplinePointsClamp(t *testing.T) {
	tests := []struct {
		name     string
		points   []Point
		segments int
	}{
		{"two points one segment", []Point{Pt(0, 0), Pt(1, 0)}, 1},
		{"two points many segments", []Point{Pt(0, 0), Pt(1, 0)}, 50},
		{"three points", []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, err := CardinalSplinePoints(tt.points, 0.5, tt.segments)
			if err != nil {
				t.Fatalf("CardinalSplinePoints: %v", err)
			}
			if len(pts) != tt.segments+1 {
				t.Fatalf("len = %d, want %d", len(pts), tt.segments+1)
			}
			if pts[0] != tt.points[0] {
				t.Errorf("first = %v, want %v", pts[0], tt.points[0])
			}
			last := tt.points[len(tt.points)-1]
			if !pts[len(pts)-1].Approx(last, 1e-12) {
				t.Errorf("last = %v, want %v", pts[len(pts)-1], last)
			}
		})
	}
}

func TestCardinalSplinePointsTooFew(t *testing.T) {
	for _, pts := range [][]Point{nil, {Pt(1, 1)}} {
		if _, err := CardinalSplinePoints(pts, 0.5, 4); !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("CardinalSplinePoints(%d points) = %v, want ErrTooFewPoints", len(pts), err)
		}
	}
}
