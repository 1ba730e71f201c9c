package models

import "image/color"

// MarsType selects one of the two icon/label rows shown on the card.
type MarsType int

const (
	// Olympus is the location row (pin icon).
	Olympus MarsType = iota
	// Storm is the weather-condition row (wind icon).
	Storm
)

// IconName identifies an embedded icon asset.
type IconName string

const (
	IconPin  IconName = "pin"
	IconWind IconName = "wind"
)

// IconLabel holds everything needed to draw one icon/label row.
type IconLabel struct {
	Icon        IconName    `json:"icon"`        // Embedded icon to draw
	Label       string      `json:"label"`       // Text shown after the icon
	Tint        color.NRGBA `json:"tint"`        // Colour applied to both icon and label
	Description string      `json:"description"` // Accessibility text for the icon
}

var iconLabels = map[MarsType]IconLabel{
	Olympus: {
		Icon:        IconPin,
		Label:       "Olympus Mons",
		Tint:        color.NRGBA{R: 0x9E, G: 0x83, B: 0xC5, A: 0xFF},
		Description: "Pin icon",
	},
	Storm: {
		Icon:        IconWind,
		Label:       "Dust Storm",
		Tint:        color.NRGBA{R: 0xCD, G: 0x53, B: 0x3C, A: 0xFF},
		Description: "Wind icon",
	},
}

// MarsTypes lists every variant in display order.
func MarsTypes() []MarsType {
	return []MarsType{Olympus, Storm}
}

// Details returns the row data for t. ok is false for values outside the enum.
func (t MarsType) Details() (IconLabel, bool) {
	d, ok := iconLabels[t]
	return d, ok
}

func (t MarsType) String() string {
	switch t {
	case Olympus:
		return "olympus"
	case Storm:
		return "storm"
	default:
		return "unknown"
	}
}

// Metric is one tile in the metrics grid.
type Metric struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// Metrics returns the four tiles in display order. Callers get their own copy.
func Metrics() []Metric {
	return []Metric{
		{Title: "Wind speed", Value: "27Km/h NW"},
		{Title: "Pressure", Value: "600 Pa"},
		{Title: "UV Radiation", Value: "0.5 mSv/day"},
		{Title: "Martian date", Value: "914 Sol"},
	}
}

// Temperature is the reading shown in the temperature row.
type Temperature struct {
	Current string `json:"current"`
	Unit    string `json:"unit"`
	High    string `json:"high"`
	Low     string `json:"low"`
}

// CurrentTemperature returns the hardcoded reading.
// Both high and low carry the "H:" prefix.
func CurrentTemperature() Temperature {
	return Temperature{
		Current: "-63",
		Unit:    "ºC",
		High:    "H:-52ºC",
		Low:     "H:-73ºC",
	}
}
