package generative

import (
	"math"
	"math/rand/v2"
)

// DefaultInterpAmount is the interpolation amount used by InterpMid.
const DefaultInterpAmount = 0.5

// Constrain clamps num to the closed interval [min, max].
//
// The bounds are not validated: the result is always
// math.Min(math.Max(num, min), max), so with min > max every input yields max.
// NaN propagates.
func Constrain(num, min, max float64) float64 {
	return math.Min(math.Max(num, min), max)
}

// Dist returns the Euclidean distance between (x1, y1) and (x2, y2).
func Dist(x1, y1, x2, y2 float64) float64 {
	a := x1 - x2
	b := y1 - y2
	return math.Sqrt(a*a + b*b)
}

// DistPt returns the Euclidean distance between two points.
func DistPt(a, b Point) float64 {
	return Dist(a.X, a.Y, b.X, b.Y)
}

// Interp interpolates linearly between start and stop. An amount of 0
// returns start and 1 returns stop; amounts outside [0, 1] extrapolate.
func Interp(start, stop, amount float64) float64 {
	return amount*(stop-start) + start
}

// InterpMid returns the point midway between start and stop.
func InterpMid(start, stop float64) float64 {
	return Interp(start, stop, DefaultInterpAmount)
}

// InterpPt interpolates linearly between two points.
func InterpPt(a, b Point, amount float64) Point {
	return a.Lerp(b, amount)
}

// MapRange re-maps value from the range [start1, stop1] to [start2, stop2].
//
// Values outside the source range are extrapolated. If start1 == stop1 the
// division is unguarded and the result is ±Inf or NaN.
func MapRange(value, start1, stop1, start2, stop2 float64) float64 {
	return (value-start1)/(stop1-start1)*(stop2-start2) + start2
}

// Random returns a uniformly distributed integer in [min, max), as a
// float64. The result is floored, so max itself is never returned.
// Reversed bounds are not validated.
//
// Random uses the global source of math/rand/v2 and is safe for
// concurrent use. Use a Rand for reproducible sequences.
func Random(min, max float64) float64 {
	return math.Floor(randomIn(rand.Float64(), min, max))
}

// RandomFloat returns a uniformly distributed float in [min, max).
func RandomFloat(min, max float64) float64 {
	return randomIn(rand.Float64(), min, max)
}

func randomIn(unit, min, max float64) float64 {
	return unit*(max-min) + min
}
