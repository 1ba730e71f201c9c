package shape

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutCornerPolygonVertices(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"phone panel", 240, 380},
		{"square", 100, 100},
		{"wide", 1000, 10},
		{"fractional", 33.3, 71.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poly := CutCornerPolygon(tt.w, tt.h)

			require.Len(t, poly.Points, 5)
			assert.True(t, poly.Closed)

			assert.Equal(t, Point{0, 0}, poly.Points[0])
			assert.InDelta(t, 0.9*tt.w, poly.Points[1].X, 1e-9)
			assert.Equal(t, 0.0, poly.Points[1].Y)
			assert.Equal(t, tt.w, poly.Points[2].X)
			assert.InDelta(t, 0.1*tt.h, poly.Points[2].Y, 1e-9)
			assert.Equal(t, Point{tt.w, tt.h}, poly.Points[3])
			assert.Equal(t, Point{0, tt.h}, poly.Points[4])
		})
	}
}

func TestPolygonEdgesClosePath(t *testing.T) {
	poly := CutCornerPolygon(10, 20)
	edges := poly.Edges()

	require.Len(t, edges, 5)
	last := edges[len(edges)-1]
	assert.Equal(t, poly.Points[4], last[0])
	assert.Equal(t, poly.Points[0], last[1])

	open := Polygon{Points: poly.Points}
	assert.Len(t, open.Edges(), 4)
	assert.Nil(t, Polygon{Points: []Point{{1, 1}}}.Edges())
}

func TestRasterizeFillsOutline(t *testing.T) {
	fill := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	img := Rasterize(100, 100, fill)

	require.Equal(t, 100, img.Bounds().Dx())
	require.Equal(t, 100, img.Bounds().Dy())

	// inside the body of the panel
	assert.Equal(t, fill, img.RGBAAt(10, 50))
	assert.Equal(t, fill, img.RGBAAt(50, 90))

	// the cut corner stays transparent
	assert.Equal(t, uint8(0), img.RGBAAt(99, 0).A)
	assert.Equal(t, uint8(0), img.RGBAAt(97, 2).A)
}

func TestRasterizeAllocatesPerCall(t *testing.T) {
	a := Rasterize(20, 20, color.White)
	b := Rasterize(20, 20, color.White)
	assert.NotSame(t, a, b)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestRasterizeDegenerateSizes(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {0, 10}, {10, 0}, {-5, 10}} {
		img := Rasterize(size[0], size[1], color.White)
		assert.True(t, img.Bounds().Empty(), "size %v", size)
	}
}

func TestNewBackgroundGenerator(t *testing.T) {
	raster := NewBackground(color.White)
	require.NotNil(t, raster.Generator)

	img := raster.Generator(40, 30)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
}
