package geometry

// Intersections returns every accepted crossing between the query segment
// and the candidate set. For each candidate the check runs in three stages:
// a cheap bounding-box rejection, the exact line/line solve on the
// coefficient forms, and finally the acceptance rule: the crossing must lie
// within both segments' boxes (boundaries included) and must not be exactly
// equal to either endpoint of the query. The endpoint exclusion is what
// keeps shared polyline vertices from being reported as crossings.
//
// The result is unordered across candidates and is not deduplicated: if N
// candidates all cross the query at the same coordinates, N points come
// back. Degenerate and parallel candidates contribute nothing and raise
// nothing. Cost is linear in the candidate count.
func Intersections(query Segment, candidates []Segment) []Point {
	queryBox := query.BBox()
	queryLine := Coefficients(query.Start, query.End)

	var crossings []Point
	for _, candidate := range candidates {
		candidateBox := candidate.BBox()
		if !queryBox.Overlaps(candidateBox) {
			continue
		}

		p, ok := IntersectCoefficients(queryLine, Coefficients(candidate.Start, candidate.End))
		if !ok {
			continue
		}

		// The lines cross at p; accept only if p is on both segments. With
		// axis-aligned segments the boxes are degenerate rectangles, which
		// is why containment is inclusive.
		if !queryBox.ContainsInclusive(p) || !candidateBox.ContainsInclusive(p) {
			continue
		}
		if p == query.Start || p == query.End {
			continue
		}

		crossings = append(crossings, p)
	}
	return crossings
}
