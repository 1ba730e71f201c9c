package main

// main.go only initializes the application.
//
// Package structure:
// - models/   : Display literals (icon rows, metric tiles, temperature)
// - assets/   : Embedded photo and icons
// - shape/    : Cut-corner panel background
// - ui/       : Theme, custom layouts and the screen's components
// - preview/  : Off-screen rendering used by cmd/preview
// - config/   : Build metadata
// - logging/  : Shared loggers

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"marsweather/assets"
	"marsweather/config"
	"marsweather/logging"
	"marsweather/models"
	"marsweather/ui"
)

func main() {
	logger := logging.For("ui")

	marsApp := app.NewWithID(config.AppID)
	app.SetMetadata(fyne.AppMetadata{
		ID:      config.AppID,
		Name:    config.AppName,
		Version: config.Version,
	})
	marsApp.Settings().SetTheme(ui.NewMarsTheme())

	myWindow := marsApp.NewWindow(config.AppName)

	if icon, err := assets.IconResource(models.IconPin); err != nil {
		logger.Error("window icon unavailable", "err", err)
	} else {
		myWindow.SetIcon(icon)
	}

	// Ctrl+Q only exists on desktop builds; mobile closes through the OS
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		logger.Info("user closed application (ctrl + q)")
		marsApp.Quit()
	})

	myWindow.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))
	myWindow.SetPadded(false)
	myWindow.SetContent(ui.BuildMainLayout())

	logger.Info("starting", "version", config.Version, "commit", config.GitCommit)
	myWindow.ShowAndRun()
}
