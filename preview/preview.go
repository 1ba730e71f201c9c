// Package preview renders individual parts of the weather screen off-screen
// with Fyne's software painter, so they can be inspected as PNG files
// without opening a window.
package preview

import (
	"errors"
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/software"
	"fyne.io/fyne/v2/test"
	"github.com/disintegration/imaging"

	"marsweather/logging"
	"marsweather/models"
	"marsweather/ui"
)

// ErrUnknownComponent is returned for component names Build doesn't know.
var ErrUnknownComponent = errors.New("unknown component")

// Component names a previewable part of the screen.
type Component string

const (
	Root Component = "root"
	Card Component = "card"
	Tile Component = "tile"
)

// Components lists every previewable component.
func Components() []Component {
	return []Component{Root, Card, Tile}
}

// DefaultSize is the size a component is rendered at when none is given.
// The card matches what the root layout would hand it on the default window.
func DefaultSize(c Component) fyne.Size {
	switch c {
	case Card:
		return fyne.NewSize(
			ui.DefaultWindowWidth-2*ui.PanelHorizontalInset,
			ui.PanelHeight(ui.DefaultWindowHeight),
		)
	case Tile:
		return fyne.NewSize(160, 70)
	default:
		return fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight)
	}
}

// Build creates a fresh canvas tree for c.
func Build(c Component) (fyne.CanvasObject, error) {
	switch c {
	case Root:
		return ui.BuildMainLayout(), nil
	case Card:
		return ui.NewWeatherCard(), nil
	case Tile:
		return ui.NewMetricTile(models.Metrics()[0]), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, c)
	}
}

// NewApp starts the headless Fyne app that Render draws with and applies
// the screen's theme. Call Quit on the result when done.
func NewApp() fyne.App {
	a := test.NewApp()
	a.Settings().SetTheme(ui.NewMarsTheme())
	return a
}

// Render draws c at size and returns the captured pixels. A zero width or
// height falls back to that dimension of DefaultSize. A Fyne app must be
// running (see NewApp).
func Render(c Component, size fyne.Size) (image.Image, error) {
	obj, err := Build(c)
	if err != nil {
		return nil, err
	}
	def := DefaultSize(c)
	if size.Width == 0 {
		size.Width = def.Width
	}
	if size.Height == 0 {
		size.Height = def.Height
	}

	logging.For("preview").Debug("rendering", "component", c, "width", size.Width, "height", size.Height)

	cnv := software.NewCanvas()
	cnv.SetPadded(false)
	cnv.SetContent(obj)
	cnv.Resize(size)
	return cnv.Capture(), nil
}

// Save writes img to path; the format follows the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("saving preview to %s: %w", path, err)
	}
	return nil
}
