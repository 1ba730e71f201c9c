package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"marsweather/models"
)

// NewMetricTile draws one metric: a pale tile with the title above its value.
func NewMetricTile(m models.Metric) fyne.CanvasObject {
	bg := canvas.NewRectangle(TileColor)

	title := NewStyledText(m.Title, AccentColor, TileTitleTextSize, true)
	value := NewStyledText(m.Value, SpaceColor, TileValueTextSize, true)

	text := container.NewVBox(title, newInset(value, TileTextGap, 0, 0, 0))
	return container.NewStack(bg, newInset(text, TilePadding, TilePadding, TilePadding, TilePadding))
}

// NewMetricsGrid lays the tiles out in GridColumns columns with GridSpacing
// between rows and columns.
func NewMetricsGrid(metrics []models.Metric) *fyne.Container {
	tiles := make([]fyne.CanvasObject, 0, len(metrics))
	for _, m := range metrics {
		tiles = append(tiles, NewMetricTile(m))
	}
	return container.New(&spacedGridLayout{cols: GridColumns, spacing: GridSpacing}, tiles...)
}
