package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// NewStyledText creates a canvas.Text with the given colour and size.
// Medium-weight text on the card is rendered bold; Fyne ships no medium face.
//
// Parameters:
//   - text: The string to draw
//   - c: Text colour
//   - size: Text size in Fyne units
//   - medium: Whether to use the heavier weight
//
// Returns:
//   - *canvas.Text: A leading-aligned text object
func NewStyledText(text string, c color.Color, size float32, medium bool) *canvas.Text {
	t := canvas.NewText(text, c)
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Bold: medium}
	t.Alignment = fyne.TextAlignLeading
	return t
}
