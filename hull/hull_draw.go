package hull

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const drawPadding = 20

// DrawPNG renders the hull boundary over its point set and writes a PNG.
// Mostly useful for eyeballing why an attempt produced the shape it did.
func (poly Polygon) DrawPNG(points []Point, scale float64, path string) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip so the origin sits at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	if len(poly) > 0 {
		c.SetLineWidth(2)
		c.MoveTo(poly[0].X, poly[0].Y)
		for _, p := range poly[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetRGB(1, 1, 0)
	for _, p := range points {
		c.DrawPoint(p.X, p.Y, 3/scale)
		c.Fill()
	}

	return c.SavePNG(path)
}

// ShowPNG draws the hull like DrawPNG and then displays the file inline in
// the terminal.
func (poly Polygon) ShowPNG(points []Point, scale float64, path string) error {
	if err := poly.DrawPNG(points, scale, path); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
