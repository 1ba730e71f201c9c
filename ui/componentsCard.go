package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"marsweather/models"
	"marsweather/shape"
)

// NewWeatherCard builds the card panel.
//
// The card uses a stacked layout where:
// 1. The cut-corner raster from the shape package forms the background
// 2. The content is placed on top with PanelPadding on every side
//
// Content, top to bottom: location row, HeaderGap, condition row,
// temperature row, metrics grid. The grid takes whatever height is left.
//
// Returns:
//   - fyne.CanvasObject: The card, sized by its parent (see panelRegionLayout)
func NewWeatherCard() fyne.CanvasObject {
	header := container.NewVBox(
		newInset(NewIconText(models.Olympus), 0, 0, HeaderGap, 0),
		NewIconText(models.Storm),
		NewTemperatureRow(models.CurrentTemperature()),
	)

	grid := newInset(NewMetricsGrid(models.Metrics()), GridTopGap+GridInset, GridInset, GridInset, GridInset)

	content := container.NewBorder(
		header, // Top: rows and temperature
		nil,    // Bottom: None
		nil,    // Left: None
		nil,    // Right: None
		grid,   // Center: metrics fill the remaining space
	)

	bg := shape.NewBackground(PanelColor)
	return container.NewStack(bg, newInset(content, PanelPadding, PanelPadding, PanelPadding, PanelPadding))
}
