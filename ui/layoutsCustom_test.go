package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rects(n int, minSize fyne.Size) []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, n)
	for i := range objects {
		r := canvas.NewRectangle(TileColor)
		r.SetMinSize(minSize)
		objects[i] = r
	}
	return objects
}

func TestPanelHeight(t *testing.T) {
	for _, h := range []float32{1, 99, 760, 1234.5} {
		assert.InDelta(t, h*0.5, PanelHeight(h), 1e-4, "height %v", h)
	}
}

func TestPanelRegionLayout(t *testing.T) {
	tests := []struct {
		name string
		size fyne.Size
	}{
		{"phone", fyne.NewSize(360, 760)},
		{"tablet", fyne.NewSize(800, 1280)},
		{"short", fyne.NewSize(400, 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := canvas.NewRectangle(PanelColor)
			l := &panelRegionLayout{inset: PanelHorizontalInset}
			l.Layout([]fyne.CanvasObject{panel}, tt.size)

			assert.InDelta(t, tt.size.Height/2, panel.Size().Height, 1e-4)
			assert.InDelta(t, tt.size.Width-2*PanelHorizontalInset, panel.Size().Width, 1e-4)
			assert.InDelta(t, PanelHorizontalInset, panel.Position().X, 1e-4)
			// vertically centred
			assert.InDelta(t, tt.size.Height/4, panel.Position().Y, 1e-4)
		})
	}
}

func TestSpacedGridAlwaysTwoColumns(t *testing.T) {
	sizes := []fyne.Size{
		fyne.NewSize(0, 0),
		fyne.NewSize(5, 5),
		fyne.NewSize(240, 120),
		fyne.NewSize(2000, 90),
	}

	for _, size := range sizes {
		objects := rects(4, fyne.NewSize(20, 30))
		g := &spacedGridLayout{cols: GridColumns, spacing: GridSpacing}
		g.Layout(objects, size)

		xs := map[float32]int{}
		ys := map[float32]int{}
		for _, o := range objects {
			xs[o.Position().X]++
			ys[o.Position().Y]++
		}
		require.Len(t, xs, 2, "size %v", size)
		require.Len(t, ys, 2, "size %v", size)
		for _, count := range xs {
			assert.Equal(t, 2, count)
		}

		// row-major order
		assert.Equal(t, objects[0].Position().Y, objects[1].Position().Y)
		assert.Less(t, objects[0].Position().X, objects[1].Position().X)
		assert.Less(t, objects[1].Position().Y, objects[2].Position().Y)
	}
}

func TestSpacedGridSpacing(t *testing.T) {
	objects := rects(4, fyne.NewSize(20, 30))
	g := &spacedGridLayout{cols: 2, spacing: 10}
	g.Layout(objects, fyne.NewSize(210, 500))

	assert.Equal(t, fyne.NewSize(100, 30), objects[0].Size())
	assert.Equal(t, fyne.NewPos(110, 0), objects[1].Position())
	assert.Equal(t, fyne.NewPos(0, 40), objects[2].Position())
	assert.Equal(t, fyne.NewPos(110, 40), objects[3].Position())

	assert.Equal(t, fyne.NewSize(50, 70), g.MinSize(objects))
}

func TestSpacedGridWrapsRows(t *testing.T) {
	objects := rects(5, fyne.NewSize(10, 10))
	g := &spacedGridLayout{cols: 2, spacing: 4}
	g.Layout(objects, fyne.NewSize(100, 100))

	assert.Equal(t, fyne.NewPos(0, 28), objects[4].Position())
	assert.Equal(t, fyne.NewSize(24, 38), g.MinSize(objects))
	assert.Equal(t, fyne.NewSize(0, 0), g.MinSize(nil))
}

func TestInsetLayout(t *testing.T) {
	r := canvas.NewRectangle(TileColor)
	r.SetMinSize(fyne.NewSize(10, 10))
	l := &insetLayout{top: 1, trailing: 2, bottom: 3, leading: 4}

	l.Layout([]fyne.CanvasObject{r}, fyne.NewSize(100, 50))
	assert.Equal(t, fyne.NewPos(4, 1), r.Position())
	assert.Equal(t, fyne.NewSize(94, 46), r.Size())
	assert.Equal(t, fyne.NewSize(16, 14), l.MinSize([]fyne.CanvasObject{r}))

	l.Layout([]fyne.CanvasObject{r}, fyne.NewSize(1, 1))
	assert.Equal(t, fyne.NewSize(0, 0), r.Size())
}
