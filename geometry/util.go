package geometry

import "math"

// Angle2 returns the signed angle of the chord from p to q, measured from the
// positive x axis, in (−π, π]. The zero-length chord gives 0.
func Angle2(p, q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// PolarPoint projects from origin by distance r at angle theta.
func PolarPoint(origin Point, r, theta float64) Point {
	return Point{
		X: origin.X + r*math.Cos(theta),
		Y: origin.Y + r*math.Sin(theta),
	}
}

// Distance returns the euclidean distance between two points.
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}
