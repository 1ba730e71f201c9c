package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"marsweather/assets"
	"marsweather/logging"
	"marsweather/models"
)

// NewIconText builds one icon/label row: a tinted icon followed by its
// label in the same colour.
//
// An icon that fails to rasterize is left out and the label is still shown.
func NewIconText(t models.MarsType) fyne.CanvasObject {
	details, ok := t.Details()
	if !ok {
		logging.For("ui").Warn("unknown row type", "type", int(t))
		return layout.NewSpacer()
	}

	label := NewStyledText(details.Label, details.Tint, LabelTextSize, false)
	row := container.NewHBox()

	bitmap, err := assets.Icon(details.Icon, iconRasterSize, details.Tint)
	if err != nil {
		logging.For("ui").Error("icon unavailable", "icon", details.Icon, "err", err)
	} else {
		icon := canvas.NewImageFromImage(bitmap)
		icon.FillMode = canvas.ImageFillContain
		icon.SetMinSize(fyne.NewSize(IconSize, IconSize))
		row.Add(container.NewCenter(icon))
	}

	row.Add(newInset(label, 0, 0, 0, IconTextGap))
	return row
}
