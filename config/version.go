package config

import (
	"fmt"
	"time"
)

const (
	// AppID must match the ID in FyneApp metadata
	AppID = "com.marsweather.card"

	// AppName is used for the window title and the preview CLI
	AppName = "Mars Weather"
)

// These are injected at build time via -ldflags
var (
	Version   string
	GitCommit string
	BuildTime string
)

func init() {
	// Local / dev fallback
	if Version == "" {
		Version = "dev"
	}
	if GitCommit == "" {
		GitCommit = "local"
	}
	if BuildTime == "" {
		BuildTime = time.Now().Format("2006-01-02 15:04:05")
	}
}

// BuildInfo formats the build metadata on three lines.
func BuildInfo() string {
	return fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", AppName, Version, GitCommit, BuildTime)
}
