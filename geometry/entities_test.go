package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs the dispatch under the pipeline's recover rule, so malformed-entity
// faults come back as errors instead of killing the test binary.
func entityGeometryErr(e Entity) (g Geometry, err error) {
	defer func() {
		recoveredErr := HandleFlattenPanicRecover(recover())
		if recoveredErr != nil {
			g = Geometry{}
			err = recoveredErr
		}
	}()
	return EntityGeometry(e, 0), nil
}

func TestLineEntityGeometry(t *testing.T) {
	g := EntityGeometry(LineEntity{Start: Point{0, 0}, End: Point{3, 4}}, 0)
	assert.Equal(t, []Point{{0, 0}, {3, 4}}, g.Vertices)
	assert.Equal(t, []Segment{{Start: Point{0, 0}, End: Point{3, 4}}}, g.Segments)
}

func TestPolylineEntityGeometry(t *testing.T) {
	t.Run("open", func(t *testing.T) {
		g := EntityGeometry(PolylineEntity{Vertices: []Vertex{
			{Point: Point{0, 0}},
			{Point: Point{1, 0}},
			{Point: Point{1, 1}},
		}}, 0)
		assert.Equal(t, []Point{{0, 0}, {1, 0}, {1, 1}}, g.Vertices)
		assert.Equal(t, []Segment{
			{Start: Point{0, 0}, End: Point{1, 0}},
			{Start: Point{1, 0}, End: Point{1, 1}},
		}, g.Segments)
	})

	t.Run("closed", func(t *testing.T) {
		g := EntityGeometry(PolylineEntity{Vertices: []Vertex{
			{Point: Point{0, 0}},
			{Point: Point{1, 0}},
			{Point: Point{1, 1}},
			{Point: Point{0, 1}},
		}, Closed: true}, 0)
		require.Len(t, g.Segments, 4)
		// The wrap-around segment closes the chain
		assert.Equal(t, Segment{Start: Point{0, 1}, End: Point{0, 0}}, g.Segments[3])
	})

	t.Run("bulged run", func(t *testing.T) {
		g := EntityGeometry(PolylineEntity{Vertices: []Vertex{
			{Point: Point{0, 0}, Bulge: 1},
			{Point: Point{2, 0}},
		}}, 0)
		// A bulge-1 run expands to 18 points; the end vertex is appended
		// by the polyline walk, not the tessellator
		require.Len(t, g.Vertices, 19)
		assert.Equal(t, Point{0, 0}, g.Vertices[0])
		assert.Equal(t, Point{2, 0}, g.Vertices[18])
		assert.Len(t, g.Segments, 18)
	})

	t.Run("closed bulged wrap-around", func(t *testing.T) {
		g := EntityGeometry(PolylineEntity{Vertices: []Vertex{
			{Point: Point{0, 0}},
			{Point: Point{2, 0}, Bulge: 1},
		}, Closed: true}, 0)
		// One straight run plus the expanded wrap-around arc back to the
		// start; closing segment included
		require.Len(t, g.Vertices, 19)
		assert.Len(t, g.Segments, 19)
	})

	t.Run("too few vertices", func(t *testing.T) {
		_, err := entityGeometryErr(PolylineEntity{Vertices: []Vertex{{Point: Point{0, 0}}}})
		assert.EqualError(t, err, "polyline needs at least 2 vertices, got 1")
	})
}

func TestArcEntityGeometry(t *testing.T) {
	t.Run("quarter arc", func(t *testing.T) {
		g := EntityGeometry(ArcEntity{
			Center:     Point{0, 0},
			Radius:     1,
			StartAngle: 0,
			EndAngle:   math.Pi / 2,
		}, 0)
		// 90° at 10° per segment → 9 segments, 10 vertices
		require.Len(t, g.Vertices, 10)
		assert.Len(t, g.Segments, 9)
		assert.InDelta(t, 1, g.Vertices[0].X, 1e-12)
		assert.InDelta(t, 0, g.Vertices[0].Y, 1e-12)
		assert.InDelta(t, 0, g.Vertices[9].X, 1e-12)
		assert.InDelta(t, 1, g.Vertices[9].Y, 1e-12)
	})

	t.Run("wrapping sweep", func(t *testing.T) {
		// End at or below start wraps around once
		g := EntityGeometry(ArcEntity{
			Center:     Point{0, 0},
			Radius:     2,
			StartAngle: 3 * math.Pi / 2,
			EndAngle:   math.Pi / 2,
		}, 0)
		// Sweep is π → 18 segments
		assert.Len(t, g.Segments, 18)
	})

	t.Run("explicit density", func(t *testing.T) {
		g := EntityGeometry(ArcEntity{Center: Point{0, 0}, Radius: 1, StartAngle: 0, EndAngle: math.Pi}, 4)
		assert.Len(t, g.Segments, 4)
	})

	t.Run("bad radius", func(t *testing.T) {
		_, err := entityGeometryErr(ArcEntity{Center: Point{0, 0}, Radius: -1})
		assert.EqualError(t, err, "arc has non-positive radius -1")
	})
}

func TestCircleEntityGeometry(t *testing.T) {
	g := EntityGeometry(CircleEntity{Center: Point{1, 1}, Radius: 2}, 0)
	// 360° at 10° per segment → 36 vertices, closed chain
	require.Len(t, g.Vertices, 36)
	require.Len(t, g.Segments, 36)
	assert.Equal(t, g.Vertices[0], g.Segments[35].End)
	for _, v := range g.Vertices {
		assert.InDelta(t, 2, Distance(Point{1, 1}, v), 1e-9)
	}

	_, err := entityGeometryErr(CircleEntity{Center: Point{0, 0}})
	assert.EqualError(t, err, "circle has non-positive radius 0")
}

func TestEllipseEntityGeometry(t *testing.T) {
	t.Run("full ellipse", func(t *testing.T) {
		g := EntityGeometry(EllipseEntity{
			Center:     Point{0, 0},
			MajorAxis:  Point{2, 0},
			AxisRatio:  0.5,
			StartParam: 0,
			EndParam:   2 * math.Pi,
		}, 0)
		require.Len(t, g.Vertices, 37)
		assert.Equal(t, Point{2, 0}, g.Vertices[0])
		// Parameter π/2 is the minor axis endpoint
		assert.InDelta(t, 0, g.Vertices[9].X, 1e-9)
		assert.InDelta(t, 1, g.Vertices[9].Y, 1e-9)
	})

	t.Run("rotated major axis", func(t *testing.T) {
		// Major axis along y: the minor axis points along −x
		g := EntityGeometry(EllipseEntity{
			Center:     Point{0, 0},
			MajorAxis:  Point{0, 3},
			AxisRatio:  1.0 / 3.0,
			StartParam: 0,
			EndParam:   math.Pi / 2,
		}, 9)
		require.Len(t, g.Vertices, 10)
		assert.InDelta(t, 0, g.Vertices[0].X, 1e-9)
		assert.InDelta(t, 3, g.Vertices[0].Y, 1e-9)
		assert.InDelta(t, -1, g.Vertices[9].X, 1e-9)
		assert.InDelta(t, 0, g.Vertices[9].Y, 1e-9)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := entityGeometryErr(EllipseEntity{AxisRatio: 0.5})
		assert.EqualError(t, err, "ellipse has zero-length major axis")

		_, err = entityGeometryErr(EllipseEntity{MajorAxis: Point{1, 0}})
		assert.EqualError(t, err, "ellipse has non-positive axis ratio 0")
	})
}

func TestSplineEntityGeometry(t *testing.T) {
	t.Run("collinear control points", func(t *testing.T) {
		g := EntityGeometry(SplineEntity{ControlPoints: []Point{
			{0, 0}, {1, 1}, {2, 2}, {3, 3},
		}}, 0)
		// Clamped spline: endpoints are the first and last control points
		require.NotEmpty(t, g.Vertices)
		assert.Equal(t, Point{0, 0}, g.Vertices[0])
		assert.Equal(t, Point{3, 3}, g.Vertices[len(g.Vertices)-1])
		for _, v := range g.Vertices {
			assert.InDelta(t, v.X, v.Y, 1e-9)
		}
		assert.Len(t, g.Segments, len(g.Vertices)-1)
	})

	t.Run("curved spline stays in the hull", func(t *testing.T) {
		control := []Point{{0, 0}, {1, 2}, {3, 2}, {4, 0}}
		g := EntityGeometry(SplineEntity{ControlPoints: control, Degree: 3}, 0)
		hull := BBox{MinX: 0, MinY: 0, MaxX: 4, MaxY: 2}
		for _, v := range g.Vertices {
			assert.True(t, hull.ContainsInclusive(v), "%v outside hull", v)
		}
	})

	t.Run("quadratic degree", func(t *testing.T) {
		g := EntityGeometry(SplineEntity{ControlPoints: []Point{{0, 0}, {1, 2}, {2, 0}}, Degree: 2}, 0)
		assert.Equal(t, Point{0, 0}, g.Vertices[0])
		assert.Equal(t, Point{2, 0}, g.Vertices[len(g.Vertices)-1])
		// Quadratic Bézier apex at t = 0.5
		assert.InDelta(t, 1, g.Vertices[len(g.Vertices)/2].Y, 1e-9)
	})

	t.Run("too few control points", func(t *testing.T) {
		_, err := entityGeometryErr(SplineEntity{ControlPoints: []Point{{0, 0}, {1, 1}}})
		assert.EqualError(t, err, "spline of degree 3 needs at least 4 control points, got 2")
	})
}

func TestPointEntityGeometry(t *testing.T) {
	g := EntityGeometry(PointEntity{Position: Point{5, 6}}, 0)
	assert.Equal(t, []Point{{5, 6}}, g.Vertices)
	assert.Empty(t, g.Segments)
}

func TestNilAndUnknownEntity(t *testing.T) {
	_, err := entityGeometryErr(nil)
	assert.EqualError(t, err, "nil entity")
}
