package prim

// CatmullRomTension is the cardinal-spline tension that yields a
// Catmull-Rom curve.
const CatmullRomTension = 0.5

// DrawQuadBezier draws a quadratic Bezier curve as one line strip of
// segments+1 vertices. The last vertex is exactly destination.
func (d *Drawer) DrawQuadBezier(origin, control, destination Point, segments int, c RGBA) error {
	pts, err := QuadBezierPoints(QuadBez{P0: origin, P1: control, P2: destination}, segments)
	if err != nil {
		return err
	}
	return d.strip(pts, c)
}

// DrawCubicBezier draws a cubic Bezier curve as one line strip of
// segments+1 vertices. The last vertex is exactly destination.
func (d *Drawer) DrawCubicBezier(origin, control1, control2, destination Point, segments int, c RGBA) error {
	pts, err := CubicBezierPoints(CubicBez{P0: origin, P1: control1, P2: control2, P3: destination}, segments)
	if err != nil {
		return err
	}
	return d.strip(pts, c)
}

// DrawCardinalSpline draws a cardinal spline through points as one line
// strip of segments+1 vertices.
func (d *Drawer) DrawCardinalSpline(points []Point, tension float64, segments int, c RGBA) error {
	pts, err := CardinalSplinePoints(points, tension, segments)
	if err != nil {
		return err
	}
	return d.strip(pts, c)
}

// DrawCatmullRom draws a Catmull-Rom spline through points.
func (d *Drawer) DrawCatmullRom(points []Point, segments int, c RGBA) error {
	return d.DrawCardinalSpline(points, CatmullRomTension, segments, c)
}
