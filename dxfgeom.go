// Flattens CAD drawing entities into line segments and finds every crossing
// point between them.
//
// This package takes an already-parsed document, a list of entities such as
// lines, polylines with bulged (arc) runs, arcs, circles, ellipses, and
// splines, tessellates each into a flat vertex chain, and then detects all
// pairwise crossings among the resulting segments. Both stages run on a
// bounded worker pool. Reading DXF, building a scene graph, and rendering
// are the caller's business; this package only produces the flat geometry
// and the crossing points.
package dxfgeom

import "github.com/shinobushiva/dxfgeom/geometry"

type Point = geometry.Point
type Segment = geometry.Segment
type Geometry = geometry.Geometry
type Entity = geometry.Entity
type Vertex = geometry.Vertex
type LineEntity = geometry.LineEntity
type PolylineEntity = geometry.PolylineEntity
type ArcEntity = geometry.ArcEntity
type CircleEntity = geometry.CircleEntity
type EllipseEntity = geometry.EllipseEntity
type SplineEntity = geometry.SplineEntity
type PointEntity = geometry.PointEntity

// Document is a fully loaded drawing: the entity list of a parsed DXF file.
type Document struct {
	Entities []Entity
}

// Options configures the pipeline.
type Options struct {
	// Concurrency bounds the number of work items in flight in each phase.
	// Zero or less means one worker per available CPU.
	Concurrency int

	// ArcSegments overrides the number of segments per tessellated arc.
	// Zero means the density default: one segment per 10° of included
	// angle, at least six per arc.
	ArcSegments int
}

// Result is the flattened document.
type Result struct {
	// Geometries holds each entity's vertex chain and segments, in no
	// particular order.
	Geometries []Geometry

	// Segments is every segment of every geometry, in deposit order.
	Segments []Segment

	// Intersections is every crossing point found between two segments,
	// unordered and not deduplicated.
	Intersections []Point
}

// Flatten tessellates the document's entities and finds all pairwise
// segment crossings.
//
// The run is atomic: a malformed entity (or any other structural fault in a
// work item) aborts the whole batch and is returned as an error, with no
// partial results. Degenerate and parallel geometry is routine and never
// causes an error.
func Flatten(doc Document, opts Options) (result Result, err error) {
	defer func() {
		recoveredErr := geometry.HandleFlattenPanicRecover(recover())
		if recoveredErr != nil {
			result = Result{}
			err = recoveredErr
		}
	}()

	geometries := geometry.FlattenEntities(doc.Entities, opts.ArcSegments, opts.Concurrency)
	segments := geometry.CollectSegments(geometries)
	crossings := geometry.IntersectSegments(segments, opts.Concurrency)
	return Result{
		Geometries:    geometries,
		Segments:      segments,
		Intersections: crossings,
	}, nil
}
