package prim

import (
	"fmt"
	"math"
)

// QuadBez represents a quadratic Bezier curve.
// P0 is the start point, P1 the control point, P2 the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t in [0, 1].
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// CubicBez represents a cubic Bezier curve with two control points.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// CardinalSplineAt interpolates between p1 and p2 at local parameter t in
// [0, 1], using p0 and p3 as the outer neighbours. Tension 0.5 gives a
// Catmull-Rom curve; tension 1 gives straight segments.
func CardinalSplineAt(p0, p1, p2, p3 Point, tension, t float64) Point {
	t2 := t * t
	t3 := t2 * t
	s := (1 - tension) / 2

	b1 := s * (-t3 + 2*t2 - t)
	b2 := s*(-t3+t2) + (2*t3 - 3*t2 + 1)
	b3 := s*(t3-2*t2+t) + (-2*t3 + 3*t2)
	b4 := s * (t3 - t2)

	return Point{
		X: p0.X*b1 + p1.X*b2 + p2.X*b3 + p3.X*b4,
		Y: p0.Y*b1 + p1.Y*b2 + p2.Y*b3 + p3.Y*b4,
	}
}

// CirclePoints returns segments+1 points on the circle, starting at
// startAngle (radians) and advancing 2π/segments each step. The last
// point closes the circle.
func CirclePoints(center Point, radius, startAngle float64, segments int) ([]Point, error) {
	if segments <= 0 {
		return nil, fmt.Errorf("circle with %d segments: %w", segments, ErrInvalidSegments)
	}
	increment := 2 * math.Pi / float64(segments)
	pts := make([]Point, segments+1)
	for i := range pts {
		theta := startAngle + float64(i)*increment
		pts[i] = Point{
			X: center.X + math.Cos(theta)*radius,
			Y: center.Y + math.Sin(theta)*radius,
		}
	}
	return pts, nil
}

// QuadBezierPoints samples q at t = i/segments for i < segments and
// appends the exact end point, returning segments+1 points.
func QuadBezierPoints(q QuadBez, segments int) ([]Point, error) {
	if segments <= 0 {
		return nil, fmt.Errorf("quadratic bezier with %d segments: %w", segments, ErrInvalidSegments)
	}
	pts := make([]Point, segments+1)
	for i := 0; i < segments; i++ {
		pts[i] = q.Eval(float64(i) / float64(segments))
	}
	pts[segments] = q.P2
	return pts, nil
}

// CubicBezierPoints samples c at t = i/segments for i < segments and
// appends the exact end point, returning segments+1 points.
func CubicBezierPoints(c CubicBez, segments int) ([]Point, error) {
	if segments <= 0 {
		return nil, fmt.Errorf("cubic bezier with %d segments: %w", segments, ErrInvalidSegments)
	}
	pts := make([]Point, segments+1)
	for i := 0; i < segments; i++ {
		pts[i] = c.Eval(float64(i) / float64(segments))
	}
	pts[segments] = c.P3
	return pts, nil
}

// CardinalSplinePoints samples a cardinal spline through points at
// segments+1 evenly spaced global parameters. Each control point owns an
// equal share 1/len(points) of the parameter range. Neighbour indices
// outside the sequence are clamped, so the end control points are reused
// for the boundary segments.
func CardinalSplinePoints(points []Point, tension float64, segments int) ([]Point, error) {
	if segments <= 0 {
		return nil, fmt.Errorf("cardinal spline with %d segments: %w", segments, ErrInvalidSegments)
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("cardinal spline with %d control points: %w", len(points), ErrTooFewPoints)
	}

	last := len(points) - 1
	at := func(i int) Point {
		return points[min(last, max(i, 0))]
	}
	deltaT := 1.0 / float64(len(points))

	out := make([]Point, segments+1)
	for i := range out {
		dt := float64(i) / float64(segments)

		var p int
		var lt float64
		if dt == 1 {
			p = last
			lt = 1
		} else {
			p = int(dt / deltaT)
			lt = (dt - deltaT*float64(p)) / deltaT
		}

		out[i] = CardinalSplineAt(at(p-1), at(p), at(p+1), at(p+2), tension, lt)
	}
	return out, nil
}
