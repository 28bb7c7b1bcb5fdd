package prim

import "fmt"

// DrawPoint draws a filled square of side size centered at p, as two
// triangles.
func (d *Drawer) DrawPoint(p Point, size float64, c RGBA) error {
	hs := size / 2
	verts := []Point{
		p.Add(Pt(-hs, -hs)),
		p.Add(Pt(hs, -hs)),
		p.Add(Pt(hs, hs)),
		p.Add(Pt(-hs, hs)),
	}
	return d.DrawPoly(verts, false, true, c)
}

// DrawPointDefault draws a point with the default size and color.
func (d *Drawer) DrawPointDefault(p Point) error {
	return d.DrawPoint(p, d.state.PointSize, d.state.Color)
}

// DrawPoints draws a point for every element of points.
func (d *Drawer) DrawPoints(points []Point, size float64, c RGBA) error {
	for _, p := range points {
		if err := d.DrawPoint(p, size, c); err != nil {
			return err
		}
	}
	return nil
}

// DrawLine draws a single line segment.
func (d *Drawer) DrawLine(origin, destination Point, c RGBA) error {
	if err := d.add(origin, c, LineList); err != nil {
		return err
	}
	return d.add(destination, c, LineList)
}

// DrawPoly draws a polygon through vertices.
//
// With fill set, the polygon is fan-triangulated from vertices[0]. This is
// only correct for convex polygons; concave input is drawn with the
// wrong shape but is not rejected. Without fill, consecutive vertices are
// joined by line segments, plus a closing segment when closePolygon is set.
func (d *Drawer) DrawPoly(vertices []Point, closePolygon, fill bool, c RGBA) error {
	if fill {
		if len(vertices) < 3 {
			return fmt.Errorf("filled polygon with %d vertices: %w", len(vertices), ErrTooFewPoints)
		}
		return d.fan(vertices, c)
	}

	if len(vertices) < 2 {
		return fmt.Errorf("polygon with %d vertices: %w", len(vertices), ErrTooFewPoints)
	}
	for i := 0; i < len(vertices)-1; i++ {
		if err := d.DrawLine(vertices[i], vertices[i+1], c); err != nil {
			return err
		}
	}
	if closePolygon {
		return d.DrawLine(vertices[len(vertices)-1], vertices[0], c)
	}
	return nil
}

// DrawSolidPoly fills a convex polygon. With outline set the fill uses
// half the alpha of c and a closed outline in c is drawn on top. Two
// vertices draw a plain line.
func (d *Drawer) DrawSolidPoly(vertices []Point, c RGBA, outline bool) error {
	switch {
	case len(vertices) < 2:
		return fmt.Errorf("solid polygon with %d vertices: %w", len(vertices), ErrTooFewPoints)
	case len(vertices) == 2:
		return d.DrawPoly(vertices, false, false, c)
	}

	fill := c
	if outline {
		fill = c.WithAlpha(c.A * 0.5)
	}
	if err := d.fan(vertices, fill); err != nil {
		return err
	}
	if outline {
		return d.DrawPoly(vertices, true, false, c)
	}
	return nil
}

// DrawTriangles fills a triangle list: every three points form one
// triangle. Use it to submit geometry triangulated elsewhere.
func (d *Drawer) DrawTriangles(pts []Point, c RGBA) error {
	if len(pts) < 3 || len(pts)%3 != 0 {
		return fmt.Errorf("triangle list of %d points: %w", len(pts), ErrTooFewPoints)
	}
	for _, p := range pts {
		if err := d.add(p, c, TriangleList); err != nil {
			return err
		}
	}
	return nil
}

// DrawRect draws the outline of the axis-aligned rectangle spanned by
// origin and destination.
func (d *Drawer) DrawRect(origin, destination Point, c RGBA) error {
	return d.DrawPoly(rectCorners(origin, destination), true, false, c)
}

// DrawSolidRect fills the axis-aligned rectangle spanned by origin and
// destination.
func (d *Drawer) DrawSolidRect(origin, destination Point, c RGBA) error {
	return d.DrawSolidPoly(rectCorners(origin, destination), c, false)
}

// DrawCircle draws segments line segments approximating a circle,
// starting at startAngle (radians). With drawLineToCenter set, a radius is
// drawn from the center to the last sample.
func (d *Drawer) DrawCircle(center Point, radius, startAngle float64, segments int, drawLineToCenter bool, c RGBA) error {
	pts, err := CirclePoints(center, radius, startAngle, segments)
	if err != nil {
		return err
	}
	for i := 0; i < segments; i++ {
		if err := d.DrawLine(pts[i], pts[i+1], c); err != nil {
			return err
		}
	}
	if drawLineToCenter {
		return d.DrawLine(center, pts[segments], c)
	}
	return nil
}

// fan emits triangles (v0, vi, vi+1).
func (d *Drawer) fan(vertices []Point, c RGBA) error {
	for i := 1; i < len(vertices)-1; i++ {
		for _, p := range [3]Point{vertices[0], vertices[i], vertices[i+1]} {
			if err := d.add(p, c, TriangleList); err != nil {
				return err
			}
		}
	}
	return nil
}

func rectCorners(origin, destination Point) []Point {
	return []Point{
		origin,
		Pt(destination.X, origin.Y),
		destination,
		Pt(origin.X, destination.Y),
	}
}
