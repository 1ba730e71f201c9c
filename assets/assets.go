// Package assets bundles the images drawn on the weather screen and turns
// them into ready-to-use bitmaps.
package assets

import (
	"bytes"
	_ "embed" // required for go:embed
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"marsweather/models"
)

//go:embed mars_surface.png
var marsSurfaceBytes []byte

//go:embed pin.svg
var pinBytes []byte

//go:embed wind.svg
var windBytes []byte

var icons = map[models.IconName][]byte{
	models.IconPin:  pinBytes,
	models.IconWind: windBytes,
}

var decodeSurface = sync.OnceValues(func() (image.Image, error) {
	return imaging.Decode(bytes.NewReader(marsSurfaceBytes))
})

// MarsSurface returns the decoded background photo at its native size.
func MarsSurface() (image.Image, error) {
	img, err := decodeSurface()
	if err != nil {
		return nil, fmt.Errorf("decoding mars surface: %w", err)
	}
	return img, nil
}

// scaledSurface keeps the last resized photo; the raster asks for the same
// width on every refresh until the window is resized.
var scaledSurface struct {
	mu    sync.Mutex
	width int
	img   image.Image
}

// MarsSurfaceWidth returns the photo scaled to width pixels, keeping its
// aspect ratio. The result for the most recent width is reused, so callers
// must not modify it.
func MarsSurfaceWidth(width int) (image.Image, error) {
	img, err := MarsSurface()
	if err != nil {
		return nil, err
	}
	if width <= 0 || width == img.Bounds().Dx() {
		return img, nil
	}

	scaledSurface.mu.Lock()
	defer scaledSurface.mu.Unlock()

	if scaledSurface.img == nil || scaledSurface.width != width {
		scaledSurface.img = imaging.Resize(img, width, 0, imaging.Lanczos)
		scaledSurface.width = width
	}
	return scaledSurface.img, nil
}

// IconResource exposes the raw SVG of an icon as a Fyne resource, e.g. for
// the window icon.
func IconResource(name models.IconName) (fyne.Resource, error) {
	data, ok := icons[name]
	if !ok {
		return nil, fmt.Errorf("unknown icon %q", name)
	}
	return fyne.NewStaticResource(string(name)+".svg", data), nil
}

// Icon rasterizes the named SVG icon into a size x size bitmap and tints
// every opaque pixel with tint, keeping the icon's own coverage as alpha.
func Icon(name models.IconName, size int, tint color.Color) (*image.NRGBA, error) {
	data, ok := icons[name]
	if !ok {
		return nil, fmt.Errorf("unknown icon %q", name)
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading icon %q: %w", name, err)
	}

	mask := image.NewRGBA(image.Rect(0, 0, size, size))
	icon.SetTarget(0, 0, float64(size), float64(size))
	scanner := rasterx.NewScannerGV(size, size, mask, mask.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1.0)

	tinted := image.NewNRGBA(mask.Bounds())
	draw.DrawMask(tinted, tinted.Bounds(), image.NewUniform(tint), image.Point{}, mask, image.Point{}, draw.Src)
	return tinted, nil
}
