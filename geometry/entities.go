package geometry

import "math"

// Entity is the closed union of drawing entities this package can flatten.
// Like the coefficient variants, the union is sealed with a type-hint
// method: EntityGeometry dispatches over it with an exhaustive type switch,
// and a kind missing from the table is a structural fault, not a silently
// skipped entity.
//
// Entities arrive already parsed; this package never reads DXF itself.
// Angles and angular parameters are radians throughout.
type Entity interface {
	entityTypeHint()
}

// Vertex is one polyline vertex. A nonzero Bulge bows the run to the next
// vertex into a circular arc; the value is the tangent of a quarter of the
// arc's included angle, negative for clockwise curvature.
type Vertex struct {
	Point Point
	Bulge float64
}

// LineEntity is a single straight segment.
type LineEntity struct {
	Start Point
	End   Point
}

// PolylineEntity is a chain of vertices with optional per-vertex bulges.
// Closed polylines get an extra run from the last vertex back to the first,
// honoring the last vertex's bulge.
type PolylineEntity struct {
	Vertices []Vertex
	Closed   bool
}

// ArcEntity is a circular arc swept counterclockwise from StartAngle to
// EndAngle. An end angle at or below the start angle wraps around once.
type ArcEntity struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// CircleEntity is a full circle.
type CircleEntity struct {
	Center Point
	Radius float64
}

// EllipseEntity is an elliptical arc. MajorAxis is the vector from the
// center to the major axis endpoint; AxisRatio scales the perpendicular
// minor axis. StartParam and EndParam are the parametric angles bounding the
// swept portion; a full ellipse is (0, 2π).
type EllipseEntity struct {
	Center     Point
	MajorAxis  Point
	AxisRatio  float64
	StartParam float64
	EndParam   float64
}

// SplineEntity is a clamped B-spline over its control points. A zero Degree
// means cubic.
type SplineEntity struct {
	ControlPoints []Point
	Degree        int
}

// PointEntity is a point marker. It contributes a vertex but no segments.
type PointEntity struct {
	Position Point
}

func (LineEntity) entityTypeHint()     {}
func (PolylineEntity) entityTypeHint() {}
func (ArcEntity) entityTypeHint()      {}
func (CircleEntity) entityTypeHint()   {}
func (EllipseEntity) entityTypeHint()  {}
func (SplineEntity) entityTypeHint()   {}
func (PointEntity) entityTypeHint()    {}

// Geometry is one entity's flattened form: the vertex chain for the
// renderer, and the straight segments the intersection phase consumes.
type Geometry struct {
	Vertices []Point
	Segments []Segment
}

// EntityGeometry flattens one entity. arcSegments overrides the per-arc
// tessellation density when positive; zero selects the 10°-per-segment
// default. Malformed entities fault the whole batch via fatalf: an invalid
// upstream document must not produce silently incomplete geometry.
func EntityGeometry(e Entity, arcSegments int) Geometry {
	switch e := e.(type) {
	case LineEntity:
		vertices := []Point{e.Start, e.End}
		return Geometry{Vertices: vertices, Segments: chainSegments(vertices, false)}

	case PolylineEntity:
		if len(e.Vertices) < 2 {
			fatalf("polyline needs at least 2 vertices, got %d", len(e.Vertices))
		}
		vertices := flattenPolyline(e.Vertices, e.Closed, arcSegments)
		return Geometry{Vertices: vertices, Segments: chainSegments(vertices, e.Closed)}

	case ArcEntity:
		if e.Radius <= 0 {
			fatalf("arc has non-positive radius %g", e.Radius)
		}
		sweep := e.EndAngle - e.StartAngle
		if sweep <= 0 {
			sweep += 2 * math.Pi
		}
		vertices := sampleArc(e.Center, e.Radius, e.StartAngle, sweep, arcSegments)
		return Geometry{Vertices: vertices, Segments: chainSegments(vertices, false)}

	case CircleEntity:
		if e.Radius <= 0 {
			fatalf("circle has non-positive radius %g", e.Radius)
		}
		vertices := sampleArc(e.Center, e.Radius, 0, 2*math.Pi, arcSegments)
		// Drop the duplicated wrap-around vertex and close the chain
		// explicitly instead.
		vertices = vertices[:len(vertices)-1]
		return Geometry{Vertices: vertices, Segments: chainSegments(vertices, true)}

	case EllipseEntity:
		if e.MajorAxis == (Point{}) {
			fatalf("ellipse has zero-length major axis")
		}
		if e.AxisRatio <= 0 {
			fatalf("ellipse has non-positive axis ratio %g", e.AxisRatio)
		}
		vertices := sampleEllipse(e, arcSegments)
		return Geometry{Vertices: vertices, Segments: chainSegments(vertices, false)}

	case SplineEntity:
		degree := e.Degree
		if degree <= 0 {
			degree = 3
		}
		if len(e.ControlPoints) < degree+1 {
			fatalf("spline of degree %d needs at least %d control points, got %d",
				degree, degree+1, len(e.ControlPoints))
		}
		vertices := sampleSpline(e.ControlPoints, degree)
		return Geometry{Vertices: vertices, Segments: chainSegments(vertices, false)}

	case PointEntity:
		return Geometry{Vertices: []Point{e.Position}}

	case nil:
		fatalf("nil entity")
	}
	fatalf("unknown entity kind %T", e)
	return Geometry{} // unreachable
}

// flattenPolyline walks consecutive vertex pairs, expanding bulged runs into
// arc interiors. Each run contributes its start vertex (plus interiors for a
// bulge); the final vertex of an open polyline is appended once at the end,
// and a closed polyline instead expands the wrap-around run and relies on
// the closing segment.
func flattenPolyline(vertices []Vertex, closed bool, arcSegments int) []Point {
	runs := len(vertices) - 1
	if closed {
		runs = len(vertices)
	}

	points := make([]Point, 0, len(vertices))
	for i := 0; i < runs; i++ {
		cur := vertices[i]
		next := vertices[(i+1)%len(vertices)]
		if cur.Bulge != 0 {
			points = append(points, TessellateBulge(cur.Point, next.Point, cur.Bulge, arcSegments)...)
		} else {
			points = append(points, cur.Point)
		}
	}
	if !closed {
		points = append(points, vertices[len(vertices)-1].Point)
	}
	return points
}

// sampleArc walks a circular arc from startAngle through sweep radians,
// inclusive of both ends.
func sampleArc(center Point, radius, startAngle, sweep float64, arcSegments int) []Point {
	count := arcSegments
	if count <= 0 {
		count = int(math.Ceil(math.Abs(sweep) / arcSegmentAngle))
		if count < minArcSegments {
			count = minArcSegments
		}
	}

	points := make([]Point, 0, count+1)
	for i := 0; i <= count; i++ {
		theta := startAngle + sweep*float64(i)/float64(count)
		points = append(points, PolarPoint(center, radius, theta))
	}
	return points
}

// sampleEllipse walks the elliptical arc at its parametric angle. The point
// at parameter u is center + major·cos(u) + minor·sin(u), where the minor
// axis is the major axis rotated a quarter turn and scaled by the ratio.
func sampleEllipse(e EllipseEntity, arcSegments int) []Point {
	sweep := e.EndParam - e.StartParam
	if sweep <= 0 {
		sweep += 2 * math.Pi
	}

	count := arcSegments
	if count <= 0 {
		count = int(math.Ceil(math.Abs(sweep) / arcSegmentAngle))
		if count < minArcSegments {
			count = minArcSegments
		}
	}

	minor := Point{X: -e.MajorAxis.Y * e.AxisRatio, Y: e.MajorAxis.X * e.AxisRatio}
	points := make([]Point, 0, count+1)
	for i := 0; i <= count; i++ {
		u := e.StartParam + sweep*float64(i)/float64(count)
		sin, cos := math.Sincos(u)
		points = append(points, Point{
			X: e.Center.X + e.MajorAxis.X*cos + minor.X*sin,
			Y: e.Center.Y + e.MajorAxis.Y*cos + minor.Y*sin,
		})
	}
	return points
}

// Spline sampling density, per control point. The flattened curve only
// feeds segment intersection and rendering, so a fixed density is plenty.
const splineSamplesPerControlPoint = 10

// sampleSpline evaluates a clamped uniform B-spline over its whole domain.
func sampleSpline(control []Point, degree int) []Point {
	knots := clampedKnots(len(control), degree)
	count := splineSamplesPerControlPoint * len(control)

	points := make([]Point, 0, count+1)
	lo := knots[degree]
	hi := knots[len(control)]
	for i := 0; i <= count; i++ {
		u := lo + (hi-lo)*float64(i)/float64(count)
		points = append(points, deBoor(control, degree, knots, u))
	}
	return points
}

// clampedKnots builds the clamped uniform knot vector: degree+1 repeats at
// each end, integer spacing between.
func clampedKnots(n, degree int) []float64 {
	knots := make([]float64, n+degree+1)
	interior := float64(n - degree)
	for i := range knots {
		switch {
		case i <= degree:
			knots[i] = 0
		case i >= n:
			knots[i] = interior
		default:
			knots[i] = float64(i - degree)
		}
	}
	return knots
}

// deBoor evaluates the spline at parameter u by repeated affine combination
// of the control points spanning u's knot interval.
func deBoor(control []Point, degree int, knots []float64, u float64) Point {
	// Find the knot span. The domain's upper end belongs to the last span.
	span := len(control) - 1
	for k := degree; k < len(control)-1; k++ {
		if u >= knots[k] && u < knots[k+1] {
			span = k
			break
		}
	}

	work := make([]Point, degree+1)
	copy(work, control[span-degree:span+1])
	for r := 1; r <= degree; r++ {
		for j := degree; j >= r; j-- {
			denom := knots[j+1+span-r] - knots[j+span-degree]
			alpha := 0.0
			if denom != 0 {
				alpha = (u - knots[j+span-degree]) / denom
			}
			work[j] = Point{
				X: (1-alpha)*work[j-1].X + alpha*work[j].X,
				Y: (1-alpha)*work[j-1].Y + alpha*work[j].Y,
			}
		}
	}
	return work[degree]
}

// chainSegments derives the straight segments between consecutive vertices,
// plus the wrap-around segment for closed chains.
func chainSegments(vertices []Point, closed bool) []Segment {
	if len(vertices) < 2 {
		return nil
	}
	n := len(vertices) - 1
	if closed {
		n = len(vertices)
	}
	segments := make([]Segment, 0, n)
	for i := 0; i < len(vertices)-1; i++ {
		segments = append(segments, Segment{Start: vertices[i], End: vertices[i+1]})
	}
	if closed {
		segments = append(segments, Segment{Start: vertices[len(vertices)-1], End: vertices[0]})
	}
	return segments
}
