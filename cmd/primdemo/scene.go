package main

import (
	"math"

	"github.com/gogpu/prim"
)

// drawScene draws one of each primitive onto dev in a width x height
// pixel space with the origin at the bottom-left corner.
func drawScene(dev prim.Device, width, height int, scale float64) error {
	d := prim.NewDrawer(dev,
		prim.WithContentScale(scale),
		prim.WithPointSize(6),
		prim.WithBatchOptions(prim.WithTransforms(prim.Ortho2D(float32(width), float32(height)))),
	)
	if err := d.Begin(); err != nil {
		return err
	}

	steps := []func() error{
		func() error { return d.DrawSolidRect(prim.Pt(40, 420), prim.Pt(200, 540), prim.RGB(1, 0.8, 0)) },
		func() error { return d.DrawRect(prim.Pt(40, 420), prim.Pt(200, 540), prim.White) },
		func() error {
			hexagon := regularPolygon(prim.Pt(330, 480), 70, 6)
			return d.DrawSolidPoly(hexagon, prim.RGB(0.3, 0.6, 1), true)
		},
		func() error {
			return d.DrawCircle(prim.Pt(520, 480), 70, math.Pi/4, 48, true, prim.RGB(1, 0.3, 0.3))
		},
		func() error {
			center, c := prim.Pt(690, 480), prim.RGB(0.6, 1, 0.4)
			pts := star(center, 80, 35, 5)
			if err := d.DrawTriangles(fan(center, pts), c.WithAlpha(0.5)); err != nil {
				return err
			}
			return d.DrawPoly(pts, true, false, c)
		},
		func() error { return d.DrawPoly(zigzag(40, 320, 12), false, false, prim.RGB(0.9, 0.5, 1)) },
		func() error {
			for i := 0; i < 16; i++ {
				t := float64(i) / 15
				if err := d.DrawPoint(prim.Pt(440+t*320, 330), 2+t*10, prim.RGB(t, 1-t, 0.5)); err != nil {
					return err
				}
			}
			return nil
		},
		func() error {
			return d.DrawQuadBezier(prim.Pt(40, 200), prim.Pt(200, 300), prim.Pt(360, 200), 32, prim.RGB(0.4, 1, 1))
		},
		func() error {
			return d.DrawCubicBezier(prim.Pt(40, 160), prim.Pt(120, 40), prim.Pt(280, 280), prim.Pt(360, 160), 48, prim.RGB(1, 0.6, 0.2))
		},
		func() error {
			pts := []prim.Point{prim.Pt(440, 100), prim.Pt(520, 240), prim.Pt(600, 120), prim.Pt(680, 260), prim.Pt(760, 140)}
			for _, p := range pts {
				if err := d.DrawPointDefault(p); err != nil {
					return err
				}
			}
			return d.DrawCatmullRom(pts, 64, prim.White)
		},
		func() error {
			pts := []prim.Point{prim.Pt(440, 60), prim.Pt(520, 20), prim.Pt(600, 60), prim.Pt(680, 20), prim.Pt(760, 60)}
			return d.DrawCardinalSpline(pts, 0.1, 64, prim.RGB(1, 1, 0.4))
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return d.End()
}

func regularPolygon(center prim.Point, radius float64, n int) []prim.Point {
	pts, _ := prim.CirclePoints(center, radius, 0, n)
	return pts[:n]
}

func star(center prim.Point, outer, inner float64, arms int) []prim.Point {
	pts := make([]prim.Point, 0, 2*arms)
	for i := 0; i < 2*arms; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := math.Pi/2 + float64(i)*math.Pi/float64(arms)
		pts = append(pts, center.Add(prim.Pt(r*math.Cos(a), r*math.Sin(a))))
	}
	return pts
}

func zigzag(x, y float64, n int) []prim.Point {
	pts := make([]prim.Point, n)
	for i := range pts {
		dy := 20.0
		if i%2 == 1 {
			dy = -20
		}
		pts[i] = prim.Pt(x+float64(i)*30, y+dy)
	}
	return pts
}

// fan triangulates a ring that is star-shaped about center.
func fan(center prim.Point, ring []prim.Point) []prim.Point {
	tris := make([]prim.Point, 0, 3*len(ring))
	for i, p := range ring {
		tris = append(tris, center, p, ring[(i+1)%len(ring)])
	}
	return tris
}
