package geometry

// A line through two points is represented as one of four coefficient
// variants rather than a single slope/intercept pair, so that vertical lines
// never produce an infinite slope and the intersection logic can enumerate
// every combination explicitly.
//
// The variants are sealed with a type-hint method. The method is unused, but
// it prevents foreign types from sneaking into the union, which is what lets
// the case table in IntersectCoefficients treat an unknown variant as a
// programming error rather than an input error.
type LineCoefficients interface {
	lineCoefficientsTypeHint()
}

// Vertical is the line x = X.
type Vertical struct {
	X float64
}

// Horizontal is the line y = Y.
type Horizontal struct {
	Y float64
}

// Sloped is the line y = Slope·x + Intercept, with Slope never zero (a zero
// slope classifies as Horizontal).
type Sloped struct {
	Slope     float64
	Intercept float64
}

// Degenerate marks a "line" whose two defining points coincide. It
// intersects nothing.
type Degenerate struct{}

func (Vertical) lineCoefficientsTypeHint()   {}
func (Horizontal) lineCoefficientsTypeHint() {}
func (Sloped) lineCoefficientsTypeHint()     {}
func (Degenerate) lineCoefficientsTypeHint() {}

// Coefficients classifies the line through p1 and p2. All comparisons are
// exact; two points that differ by one ulp are a valid (if extreme) sloped
// line.
func Coefficients(p1, p2 Point) LineCoefficients {
	switch {
	case p1 == p2:
		return Degenerate{}
	case p1.X == p2.X:
		return Vertical{X: p1.X}
	case p1.Y == p2.Y:
		return Horizontal{Y: p1.Y}
	}

	// Solve [[x1, 1], [x2, 1]]·[a, k]ᵗ = [y1, y2]ᵗ by Cramer's rule. The
	// determinant is x1 − x2, nonzero because the vertical case is handled
	// above.
	det := p1.X - p2.X
	return Sloped{
		Slope:     (p1.Y - p2.Y) / det,
		Intercept: (p1.X*p2.Y - p2.X*p1.Y) / det,
	}
}

// IntersectCoefficients computes the crossing point of two classified lines.
// The second return is false when the lines don't meet in a single point:
// either side is degenerate, the lines are parallel, or (sloped case) the
// system is singular. Those outcomes are routine, not errors; adjacent
// polyline segments are collinear all the time.
//
// Both switches enumerate every variant. The unreachable defaults guard
// against a variant being added to the union without extending this table.
func IntersectCoefficients(a, b LineCoefficients) (Point, bool) {
	switch a := a.(type) {
	case Degenerate:
		return Point{}, false

	case Vertical:
		switch b := b.(type) {
		case Degenerate:
			return Point{}, false
		case Vertical:
			// Parallel, including the coincident-line case.
			return Point{}, false
		case Horizontal:
			return Point{X: a.X, Y: b.Y}, true
		case Sloped:
			return Point{X: a.X, Y: b.Slope*a.X + b.Intercept}, true
		}

	case Horizontal:
		switch b := b.(type) {
		case Degenerate:
			return Point{}, false
		case Horizontal:
			return Point{}, false
		case Vertical:
			return Point{X: b.X, Y: a.Y}, true
		case Sloped:
			// b.Slope is never zero, so the division is safe.
			return Point{X: (a.Y - b.Intercept) / b.Slope, Y: a.Y}, true
		}

	case Sloped:
		switch b := b.(type) {
		case Degenerate:
			return Point{}, false
		case Vertical:
			return Point{X: b.X, Y: a.Slope*b.X + a.Intercept}, true
		case Horizontal:
			return Point{X: (b.Y - a.Intercept) / a.Slope, Y: b.Y}, true
		case Sloped:
			// Solve [[1, −a1], [1, −a2]]·[y, x]ᵗ = [k1, k2]ᵗ. The
			// determinant is a1 − a2; equal slopes mean parallel lines.
			det := a.Slope - b.Slope
			if det == 0 {
				return Point{}, false
			}
			return Point{
				X: (b.Intercept - a.Intercept) / det,
				Y: (a.Slope*b.Intercept - b.Slope*a.Intercept) / det,
			}, true
		}
	}
	panic("unreachable: unknown line coefficients variant")
}
