package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"marsweather/models"
)

// NewTemperatureRow splits its width in half: the current reading with its
// unit on the left, the right-aligned high/low pair on the right.
func NewTemperatureRow(temp models.Temperature) fyne.CanvasObject {
	current := NewStyledText(temp.Current, SpaceColor, TemperatureTextSize, true)
	unit := NewStyledText(temp.Unit, SpaceColor, UnitTextSize, false)

	reading := container.NewHBox(
		newInset(current, 0, 0, 0, TemperatureStartGap),
		newInset(unit, UnitTopOffset, 0, 0, UnitGap),
	)

	high := NewStyledText(temp.High, SpaceColor, HighLowTextSize, false)
	high.Alignment = fyne.TextAlignTrailing
	low := NewStyledText(temp.Low, SpaceColor, HighLowTextSize, false)
	low.Alignment = fyne.TextAlignTrailing

	highLow := newInset(
		container.NewVBox(high, newInset(low, HighLowGap, 0, 0, 0)),
		0, HighLowInset, 0, 0,
	)

	// the pair is centred vertically against the large reading
	return container.NewGridWithColumns(2, reading, container.NewVBox(layout.NewSpacer(), highLow, layout.NewSpacer()))
}
