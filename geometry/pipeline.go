package geometry

import "iter"

// The pipeline is a one-shot batch transform: tessellate every entity, then
// find every crossing among the resulting segments. The two phases are
// strictly sequential; each is internally parallel via RunBatch. The segment
// list handed to phase two is fully materialized before any intersection
// task is dispatched and is never mutated afterwards, so the intersection
// tasks can share it without synchronization.

// FlattenEntities tessellates every entity on the worker pool. The returned
// geometries are in worker-group order, not input order; nothing downstream
// depends on entity order.
func FlattenEntities(entities []Entity, arcSegments, concurrency int) []Geometry {
	var items iter.Seq[func() Geometry] = func(yield func(func() Geometry) bool) {
		for _, e := range entities {
			if !yield(func() Geometry { return EntityGeometry(e, arcSegments) }) {
				return
			}
		}
	}
	return Flatten(RunBatch(items, concurrency))
}

// CollectSegments deposits every geometry's segments into one flat list.
// The deposit order fixes the prefix-scan bookkeeping in IntersectSegments.
func CollectSegments(geometries []Geometry) []Segment {
	var n int
	for _, g := range geometries {
		n += len(g.Segments)
	}
	segments := make([]Segment, 0, n)
	for _, g := range geometries {
		segments = append(segments, g.Segments...)
	}
	return segments
}

// IntersectSegments finds every crossing among the segments. Segment i is
// scanned against the prefix segments[:i], the segments deposited strictly
// before it, so each crossing pair is discovered exactly once,
// from the later segment's side. The scan runs over the single document-wide
// list, which is what catches crossings between segments from different
// entities.
//
// The result is unordered and not deduplicated; coincident crossings from
// distinct pairs all survive.
func IntersectSegments(segments []Segment, concurrency int) []Point {
	var items iter.Seq[func() []Point] = func(yield func(func() []Point) bool) {
		for i := range segments {
			if !yield(func() []Point { return Intersections(segments[i], segments[:i]) }) {
				return
			}
		}
	}
	groups := RunBatch(items, concurrency)

	var crossings []Point
	for _, group := range groups {
		for _, points := range group {
			crossings = append(crossings, points...)
		}
	}
	return crossings
}
