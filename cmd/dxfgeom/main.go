package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/shinobushiva/dxfgeom"
	"github.com/shinobushiva/dxfgeom/geometry"
)

// Demo of the flattening pipeline. Input on stdin should be newline
// separated vertices in the form "x y", with each polyline separated by an
// extra newline. A third number on a vertex line is that vertex's bulge,
// bowing the run to the next vertex into an arc.
var (
	concurrency = kingpin.Flag("concurrency", "Worker bound for both pipeline phases. 0 means one worker per CPU.").Default("0").Int()
	arcSegments = kingpin.Flag("arc-segments", "Segments per tessellated arc. 0 means the 10°-per-segment default.").Default("0").Int()
	drawPath    = kingpin.Flag("draw", "Render the flattened segments and crossings to a PNG at this path.").String()
	drawScale   = kingpin.Flag("scale", "Pixels per drawing unit for --draw.").Default("10").Float64()
)

func main() {
	kingpin.Parse()

	entities := readEntities(os.Stdin)
	fmt.Println("Read", aurora.Cyan(len(entities)), "polylines")

	result, err := dxfgeom.Flatten(dxfgeom.Document{Entities: entities}, dxfgeom.Options{
		Concurrency: *concurrency,
		ArcSegments: *arcSegments,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red("flatten failed:"), err)
		os.Exit(1)
	}

	fmt.Println("Flattened to", aurora.Cyan(len(result.Segments)), "segments")
	fmt.Println("Found", aurora.Yellow(len(result.Intersections)), "crossings")

	if *drawPath != "" {
		if err := geometry.DrawPNG(*drawPath, result.Segments, result.Intersections, *drawScale); err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red("draw failed:"), err)
			os.Exit(1)
		}
		fmt.Println("Wrote", aurora.Green(*drawPath))
	}
}

func readEntities(in *os.File) []dxfgeom.Entity {
	entities := []dxfgeom.Entity{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	vertices := []dxfgeom.Vertex{}
	for scanner.Scan() {
		// Read the next line
		line := scanner.Text()

		// If it's empty, and we collected any vertices, this is the end of
		// the polyline
		if line == "" {
			if len(vertices) > 0 {
				entities = append(entities, dxfgeom.PolylineEntity{Vertices: vertices})
				vertices = []dxfgeom.Vertex{}
			}
			continue
		}

		// Parse the vertex out of the line
		vertices = append(vertices, parseVertex(line))
	}

	// Handle trailing polyline if any
	if len(vertices) > 0 {
		entities = append(entities, dxfgeom.PolylineEntity{Vertices: vertices})
	}
	return entities
}

func parseVertex(line string) dxfgeom.Vertex {
	parts := strings.Fields(line)
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	v := dxfgeom.Vertex{Point: dxfgeom.Point{X: x, Y: y}}
	if len(parts) > 2 {
		v.Bulge, _ = strconv.ParseFloat(parts[2], 64)
	}
	return v
}
