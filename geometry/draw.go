package geometry

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/shinobushiva/dxfgeom/dbg"
)

// Debug rendering of flattened segments and crossing markers.

// Padding around the drawing so markers on the hull aren't clipped
const dbgDrawPadding = 40

// DrawPNG renders the segments and crossing markers to a PNG at path.
// Segments are stroked in cyan, crossings marked with orange circles. The
// context is flipped so the origin sits at the bottom left, matching CAD
// coordinates.
func DrawPNG(path string, segments []Segment, crossings []Point, scale float64) error {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, s := range segments {
		for _, p := range []Point{s.Start, s.End} {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if len(segments) == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	for _, s := range segments {
		c.MoveTo(s.Start.X, s.Start.Y)
		c.LineTo(s.End.X, s.End.Y)
		c.Stroke()
	}

	c.SetRGB(1, 0.6, 0)
	for _, p := range crossings {
		c.DrawCircle(p.X, p.Y, 4/scale)
		c.Stroke()
	}

	return c.SavePNG(path)
}

// Helper to draw and print the flattened document in the terminal (iTerm
// only) for debugging. Crossings get readable names so they can be matched
// against log output between runs of the same process.
func dbgDrawSegments(segments []Segment, crossings []Point, scale float64) {
	if err := DrawPNG("/tmp/dxfgeom_segments.png", segments, crossings, scale); err != nil {
		return
	}
	for i, p := range crossings {
		fmt.Println("Crossing", dbg.Name(&crossings[i]), "at", p)
	}
	imgcat.CatFile("/tmp/dxfgeom_segments.png", os.Stdout)
}
