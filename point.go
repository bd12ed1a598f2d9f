package generative

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return Dist(p.X, p.Y, q.X, q.Y)
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, other values interpolate or extrapolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: Interp(p.X, q.X, t),
		Y: Interp(p.Y, q.Y, t),
	}
}

// Ceil rounds both coordinates up to the nearest integer. Negative zero
// is normalized to zero.
func (p Point) Ceil() Point {
	return Point{X: ceil(p.X), Y: ceil(p.Y)}
}

func ceil(v float64) float64 {
	c := math.Ceil(v)
	if c == 0 {
		return 0
	}
	return c
}
