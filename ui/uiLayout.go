package ui

import (
	"image"
	"image/draw"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"marsweather/assets"
	"marsweather/logging"
)

// BuildMainLayout constructs the complete screen.
//
// The layout structure is (back to front):
// - Background: solid SpaceColor
// - Photo: Mars surface, full width, anchored to the bottom-left
// - Card region: inset PanelHorizontalInset on both sides, card centred vertically
//
// Returns:
//   - fyne.CanvasObject: The screen ready to be set as window content
func BuildMainLayout() fyne.CanvasObject {
	logging.For("ui").Debug("building main layout")

	background := canvas.NewRectangle(SpaceColor)
	region := container.New(&panelRegionLayout{inset: PanelHorizontalInset}, NewWeatherCard())

	return container.NewStack(background, newSurfaceLayer(), region)
}

// newSurfaceLayer draws the photo scaled to the layer's pixel width, keeping
// its aspect ratio, and aligned to the bottom-left corner. The rest of the
// layer stays transparent.
func newSurfaceLayer() *canvas.Raster {
	logger := logging.For("ui")
	return canvas.NewRaster(func(w, h int) image.Image {
		frame := image.NewNRGBA(image.Rect(0, 0, w, h))
		if w <= 0 || h <= 0 {
			return frame
		}

		photo, err := assets.MarsSurfaceWidth(w)
		if err != nil {
			logger.Error("background photo unavailable", "err", err)
			return frame
		}

		b := photo.Bounds()
		top := h - b.Dy()
		dst := image.Rect(0, top, b.Dx(), h)
		draw.Draw(frame, dst, photo, b.Min, draw.Src)
		return frame
	})
}
