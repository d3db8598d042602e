package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	concavehull "github.com/EthanJamesLew/concave-hull"
	"github.com/EthanJamesLew/concave-hull/hull"
)

// Computes the concave hull of points read from stdin, one "x y" pair per
// line, blank lines ignored. Hull vertices are written to stdout as
// "x y id" lines; pass --png to also render the result.

var (
	k       = kingpin.Flag("k", "Initial number of neighbours considered per edge.").Short('k').Default("3").Int()
	iterate = kingpin.Flag("iterate", "Retry with larger k after a failed attempt.").Default("true").Bool()
	png     = kingpin.Flag("png", "Render the hull to this PNG file.").String()
	scale   = kingpin.Flag("scale", "Pixels per input unit when rendering.").Default("10").Float64()
	show    = kingpin.Flag("show", "Display the rendered PNG inline in the terminal (implies --png).").Bool()
)

func main() {
	kingpin.Parse()

	points := readPoints(os.Stdin)
	if len(points) == 0 {
		fmt.Fprintln(os.Stderr, aurora.Red("no points on stdin"))
		os.Exit(1)
	}

	result := concavehull.ConcaveHull(points, *k, *iterate)
	if len(result) == 0 {
		fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("no concave hull found for %d points starting at k=%d", len(points), *k)))
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, aurora.Green(fmt.Sprintf("hull with %d vertices over %d points", len(result), len(points))))
	for _, p := range result {
		fmt.Printf("%v %v %d\n", p.X, p.Y, p.ID)
	}

	path := *png
	if *show && path == "" {
		path = "/tmp/concave-hull.png"
	}
	if path != "" {
		if err := render(result, points, path); err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("render failed: %v", err)))
			os.Exit(1)
		}
	}
}

func render(result, points []concavehull.Point, path string) error {
	poly := hull.Polygon(result)
	if *show {
		return poly.ShowPNG(points, *scale, path)
	}
	return poly.DrawPNG(points, *scale, path)
}

func readPoints(in *os.File) []concavehull.Point {
	var points []concavehull.Point
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("bad point line %q", line)))
			os.Exit(1)
		}
		x, errX := strconv.ParseFloat(parts[0], 64)
		y, errY := strconv.ParseFloat(parts[1], 64)
		if errX != nil || errY != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("bad point line %q", line)))
			os.Exit(1)
		}
		points = append(points, concavehull.Point{X: x, Y: y})
	}
	return points
}
