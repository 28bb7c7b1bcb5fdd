//go:build cgo

package concave

import (
	"fmt"

	"github.com/mmp/earcut-go"

	"github.com/gogpu/prim"
)

// Triangulate splits a simple polygon, optionally with holes, into
// triangles. The result is a triangle list: every three points form one
// triangle. Degenerate polygons (collinear or zero area) yield no
// triangles.
func Triangulate(outer []prim.Point, holes ...[]prim.Point) ([]prim.Point, error) {
	if len(outer) < 3 {
		return nil, fmt.Errorf("triangulate %d vertices: %w", len(outer), prim.ErrTooFewPoints)
	}
	rings := make([][]earcut.Vertex, 0, 1+len(holes))
	rings = append(rings, ring(outer))
	for _, h := range holes {
		if len(h) < 3 {
			return nil, fmt.Errorf("triangulate hole of %d vertices: %w", len(h), prim.ErrTooFewPoints)
		}
		rings = append(rings, ring(h))
	}

	tris := earcut.Triangulate(earcut.Polygon{Rings: rings})
	out := make([]prim.Point, 0, 3*len(tris))
	for _, tri := range tris {
		for _, v := range tri.Vertices {
			out = append(out, prim.Pt(v.P[0], v.P[1]))
		}
	}
	return out, nil
}

func ring(pts []prim.Point) []earcut.Vertex {
	r := make([]earcut.Vertex, len(pts))
	for i, p := range pts {
		r[i].P = [2]float64{p.X, p.Y}
	}
	return r
}

// Fill draws the polygon with d. With outline set the fill uses half the
// alpha of c and closed outlines of the polygon and every hole are drawn
// on top, like prim.Drawer.DrawSolidPoly.
func Fill(d *prim.Drawer, vertices []prim.Point, holes [][]prim.Point, c prim.RGBA, outline bool) error {
	tris, err := Triangulate(vertices, holes...)
	if err != nil {
		return err
	}

	fill := c
	if outline {
		fill = c.WithAlpha(c.A * 0.5)
	}
	if len(tris) > 0 {
		if err := d.DrawTriangles(tris, fill); err != nil {
			return err
		}
	}
	if !outline {
		return nil
	}
	for _, r := range append([][]prim.Point{vertices}, holes...) {
		if err := d.DrawPoly(r, true, false, c); err != nil {
			return err
		}
	}
	return nil
}
