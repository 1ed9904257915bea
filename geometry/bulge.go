package geometry

import "math"

// Arc tessellation density: one segment per 10 degrees of included angle,
// but never fewer than six segments, so small arcs still look round.
const (
	arcSegmentAngle = math.Pi / 18
	minArcSegments  = 6
)

// TessellateBulge expands the arc implied by a polyline bulge into straight
// segments. The bulge is the tangent of a quarter of the arc's included
// angle; its sign picks the side the arc bows to. A zero (or NaN) bulge is
// treated as 1, i.e. a semicircle, matching how DXF writers use the falsy
// value. segments overrides the density default when positive.
//
// The returned vertices begin at start and walk the arc interior. The end
// point is NOT included; the caller appends the next polyline vertex itself,
// so that chained arcs don't duplicate shared vertices.
//
// Known limitation: if start == end the chord length is zero and the
// construction degenerates (the "arc" collapses onto its start point). No
// special case is made for it.
func TessellateBulge(start, end Point, bulge float64, segments int) []Point {
	if bulge == 0 || math.IsNaN(bulge) {
		bulge = 1
	}

	includedAngle := 4 * math.Atan(bulge)
	radius := Distance(start, end) / (2 * math.Sin(includedAngle/2))

	// The center sits perpendicular to the chord, offset by half the
	// included angle. A negative bulge gives a negative radius here, which
	// places the center on the other side of the chord.
	center := PolarPoint(start, radius, Angle2(start, end)+(math.Pi/2-includedAngle/2))

	if segments <= 0 {
		segments = int(math.Ceil(math.Abs(includedAngle) / arcSegmentAngle))
		if segments < minArcSegments {
			segments = minArcSegments
		}
	}

	startAngle := Angle2(center, start)
	angleStep := includedAngle / float64(segments)

	vertices := make([]Point, 0, segments)
	vertices = append(vertices, start)
	for i := 1; i < segments; i++ {
		vertices = append(vertices, PolarPoint(center, math.Abs(radius), startAngle+angleStep*float64(i)))
	}
	return vertices
}
