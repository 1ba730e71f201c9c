// Package shape generates the cut-corner background used behind the
// weather card panel.
package shape

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2/canvas"
	"github.com/srwiley/rasterx"

	"marsweather/logging"
)

const (
	// CutWidthRatio is how far along the top edge the diagonal cut starts.
	CutWidthRatio = 0.9
	// CutHeightRatio is how far down the right edge the diagonal cut ends.
	CutHeightRatio = 0.1
)

// Point is a vertex in surface coordinates.
type Point struct {
	X, Y float64
}

// Polygon is an ordered list of vertices. When Closed is set the last
// vertex connects back to the first.
type Polygon struct {
	Points []Point
	Closed bool
}

// Edges returns every segment of the outline, including the closing one.
func (p Polygon) Edges() [][2]Point {
	n := len(p.Points)
	if n < 2 {
		return nil
	}
	edges := make([][2]Point, 0, n)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]Point{p.Points[i], p.Points[i+1]})
	}
	if p.Closed {
		edges = append(edges, [2]Point{p.Points[n-1], p.Points[0]})
	}
	return edges
}

// CutCornerPolygon builds the panel outline for a w x h surface: a rectangle
// whose top-right corner is replaced by a diagonal running from 90% along the
// top edge to 10% down the right edge.
func CutCornerPolygon(w, h float64) Polygon {
	return Polygon{
		Points: []Point{
			{X: 0, Y: 0},
			{X: CutWidthRatio * w, Y: 0},
			{X: w, Y: CutHeightRatio * h},
			{X: w, Y: h},
			{X: 0, Y: h},
		},
		Closed: true,
	}
}

// Rasterize fills the cut-corner polygon with fill on a freshly allocated
// w x h surface. Non-positive sizes yield an empty image.
func Rasterize(w, h int, fill color.Color) *image.RGBA {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(fill)

	poly := CutCornerPolygon(float64(w), float64(h))
	for i, pt := range poly.Points {
		if i == 0 {
			filler.Start(rasterx.ToFixedP(pt.X, pt.Y))
			continue
		}
		filler.Line(rasterx.ToFixedP(pt.X, pt.Y))
	}
	filler.Stop(poly.Closed)
	filler.Draw()

	return img
}

// NewBackground returns a raster that regenerates the filled outline at the
// current pixel size on every paint pass.
func NewBackground(fill color.Color) *canvas.Raster {
	logger := logging.For("shape")
	return canvas.NewRaster(func(w, h int) image.Image {
		logger.Debug("rasterizing panel background", "width", w, "height", h)
		return Rasterize(w, h, fill)
	})
}
