package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme constants define the visual appearance of the weather screen.
// Every component reads its colours and sizes from here.

// Color palette
var (
	// SpaceColor is the near-black used behind the photo and for dark text on the card
	SpaceColor = color.NRGBA{R: 0x14, G: 0x17, B: 0x1E, A: 0xFF}

	// PanelColor fills the cut-corner card background
	PanelColor = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// TileColor is the pale rose behind each metric tile
	TileColor = color.NRGBA{R: 0xF9, G: 0xE8, B: 0xE5, A: 0xFF}

	// AccentColor is used for metric titles
	AccentColor = color.NRGBA{R: 0xCD, G: 0x53, B: 0x3C, A: 0xFF}
)

// Text sizes
const (
	LabelTextSize       = 14
	TemperatureTextSize = 50
	UnitTextSize        = 20
	HighLowTextSize     = 12
	TileTitleTextSize   = 13
	TileValueTextSize   = 16
)

// Layout constants
const (
	// PanelHeightRatio is the share of the available height the card occupies
	PanelHeightRatio = 0.5

	// PanelHorizontalInset is the gap between the screen edges and the card
	PanelHorizontalInset = 60

	// PanelPadding is the inner padding of the card
	PanelPadding = 8

	// HeaderGap separates the location row from the rest of the card
	HeaderGap = 100

	IconSize    = 15
	IconTextGap = 10

	// TemperatureStartGap is the space before the current reading
	TemperatureStartGap = 10

	UnitGap       = 5
	UnitTopOffset = 5
	HighLowGap    = 5
	HighLowInset  = 15

	GridColumns = 2
	GridSpacing = 10
	GridTopGap  = 20
	GridInset   = 3

	TilePadding = 8
	TileTextGap = 5

	// iconRasterSize is the bitmap size icons are rendered at before Fyne scales them down
	iconRasterSize = 48

	// DefaultWindowWidth is the initial width of the application window.
	// It leaves the card region (width minus both insets) wide enough for
	// the card's minimum size, so Fyne doesn't grow the window.
	DefaultWindowWidth = 400

	// DefaultWindowHeight is the initial height of the application window
	DefaultWindowHeight = 800
)

// MarsTheme wraps the default Fyne theme, pinning the dark variant and the
// screen's background colour.
type MarsTheme struct {
	base fyne.Theme
}

// NewMarsTheme creates the theme used by the app and the previews.
func NewMarsTheme() *MarsTheme {
	return &MarsTheme{base: theme.DefaultTheme()}
}

// Color always resolves against the dark variant.
func (t *MarsTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return SpaceColor
	}
	return t.base.Color(name, theme.VariantDark)
}

// Font delegates to the base theme.
func (t *MarsTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *MarsTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size tightens the padding so the box layouts don't add gaps the card
// doesn't ask for.
func (t *MarsTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 0
	case theme.SizeNameInnerPadding:
		return 4
	case theme.SizeNameText:
		return LabelTextSize
	default:
		return t.base.Size(name)
	}
}
