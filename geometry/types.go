package geometry

// Point is a 2D double-precision coordinate pair. Unlike triangulation
// codebases that key maps by point identity, everything here works by value:
// coordinate equality is exact, and near-coincident points are never merged.
type Point struct {
	X float64
	Y float64
}

// Segment is a straight line segment between two points. Segments are
// transient, derived from consecutive polyline vertices, and carry no
// identity beyond their endpoints. They are immutable once produced; the
// intersection phase only reads them.
type Segment struct {
	Start Point
	End   Point
}

// BBox is an axis-aligned bounding box. It is derived per segment and used
// only to prune candidate pairs before the exact intersection math runs.
type BBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BBox returns the segment's bounding box. Degenerate boxes (zero width or
// height, for axis-aligned segments) are fine; all containment checks below
// are inclusive.
func (s Segment) BBox() BBox {
	return BBox{
		MinX: min(s.Start.X, s.End.X),
		MinY: min(s.Start.Y, s.End.Y),
		MaxX: max(s.Start.X, s.End.X),
		MaxY: max(s.Start.Y, s.End.Y),
	}
}

// Overlaps reports whether the two boxes share at least one point. Touching
// edges count as overlap; adjacent polyline segments share an endpoint and
// must survive the prune so the endpoint-exclusion rule can reject them
// deliberately.
func (b BBox) Overlaps(o BBox) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX &&
		b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// ContainsInclusive reports whether p lies inside the box, boundary included.
func (b BBox) ContainsInclusive(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX &&
		p.Y >= b.MinY && p.Y <= b.MaxY
}

// Union returns the smallest box containing both b and o.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}
