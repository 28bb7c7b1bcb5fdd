//go:build cgo

package concave

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/prim"
	"github.com/gogpu/prim/recording"
)

var lShape = []prim.Point{
	prim.Pt(0, 0), prim.Pt(20, 0), prim.Pt(20, 10),
	prim.Pt(10, 10), prim.Pt(10, 20), prim.Pt(0, 20),
}

// signedArea returns the shoelace area of a closed ring.
func signedArea(pts []prim.Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

func triangleListArea(tris []prim.Point) float64 {
	var a float64
	for i := 0; i+2 < len(tris); i += 3 {
		a += math.Abs(signedArea(tris[i : i+3]))
	}
	return a
}

func positions(vs []prim.Vertex) []prim.Point {
	out := make([]prim.Point, len(vs))
	for i, v := range vs {
		out[i] = v.Point()
	}
	return out
}

// draws runs fn inside a Begin/End scope and returns the recorded draw
// commands.
func draws(t *testing.T, fn func(d *prim.Drawer) error) []recording.Command {
	t.Helper()
	rec := recording.NewDevice()
	d := prim.NewDrawer(rec)
	if err := d.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := fn(d); err != nil {
		t.Fatal(err)
	}
	if err := d.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	var out []recording.Command
	for _, c := range rec.Finish().Commands() {
		if c.Type == recording.CmdDraw {
			out = append(out, c)
		}
	}
	return out
}

func TestTriangulate(t *testing.T) {
	square := []prim.Point{prim.Pt(0, 0), prim.Pt(30, 0), prim.Pt(30, 30), prim.Pt(0, 30)}
	hole := []prim.Point{prim.Pt(10, 10), prim.Pt(10, 20), prim.Pt(20, 20), prim.Pt(20, 10)}

	tests := []struct {
		name      string
		outer     []prim.Point
		holes     [][]prim.Point
		triangles int
		area      float64
	}{
		{"triangle", []prim.Point{prim.Pt(0, 0), prim.Pt(4, 0), prim.Pt(0, 4)}, nil, 1, 8},
		{"convex", square, nil, 2, 900},
		{"concave", lShape, nil, 4, 300},
		{"hole", square, [][]prim.Point{hole}, 8, 800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tris, err := Triangulate(tt.outer, tt.holes...)
			if err != nil {
				t.Fatal(err)
			}
			if len(tris) != 3*tt.triangles {
				t.Fatalf("got %d points, want %d triangles", len(tris), tt.triangles)
			}
			if a := triangleListArea(tris); math.Abs(a-tt.area) > 1e-9 {
				t.Errorf("area = %v, want %v", a, tt.area)
			}
		})
	}
}

func TestTriangulateTooFewPoints(t *testing.T) {
	if _, err := Triangulate([]prim.Point{prim.Pt(0, 0), prim.Pt(1, 1)}); !errors.Is(err, prim.ErrTooFewPoints) {
		t.Errorf("outer ring: err = %v, want ErrTooFewPoints", err)
	}
	square := []prim.Point{prim.Pt(0, 0), prim.Pt(3, 0), prim.Pt(3, 3), prim.Pt(0, 3)}
	if _, err := Triangulate(square, []prim.Point{prim.Pt(1, 1)}); !errors.Is(err, prim.ErrTooFewPoints) {
		t.Errorf("hole: err = %v, want ErrTooFewPoints", err)
	}
}

func TestFill(t *testing.T) {
	c := prim.RGB(0, 0, 1).WithAlpha(0.8)

	t.Run("fill", func(t *testing.T) {
		calls := draws(t, func(d *prim.Drawer) error {
			return Fill(d, lShape, nil, c, false)
		})
		if len(calls) != 1 || calls[0].Topology != prim.TriangleList {
			t.Fatalf("calls = %v, want one triangle list", calls)
		}
		if n := len(calls[0].Vertices); n != 12 {
			t.Errorf("vertices = %d, want 12", n)
		}
		if a := triangleListArea(positions(calls[0].Vertices)); math.Abs(a-300) > 1e-3 {
			t.Errorf("filled area = %v, want 300", a)
		}
	})

	t.Run("outline", func(t *testing.T) {
		calls := draws(t, func(d *prim.Drawer) error {
			return Fill(d, lShape, nil, c, true)
		})
		if len(calls) != 2 {
			t.Fatalf("calls = %v, want fill and outline", calls)
		}
		if a := calls[0].Vertices[0].Color.A; math.Abs(a-0.4) > 1e-12 {
			t.Errorf("fill alpha = %v, want 0.4", a)
		}
		if n := len(calls[1].Vertices); n != 2*len(lShape) {
			t.Errorf("outline vertices = %d, want %d", n, 2*len(lShape))
		}
	})

	t.Run("degenerate", func(t *testing.T) {
		line := []prim.Point{prim.Pt(0, 0), prim.Pt(1, 0), prim.Pt(2, 0)}
		calls := draws(t, func(d *prim.Drawer) error {
			return Fill(d, line, nil, c, false)
		})
		if len(calls) != 0 {
			t.Errorf("calls = %v, want none for a zero-area polygon", calls)
		}
	})
}
