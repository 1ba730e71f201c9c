package main

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/spf13/cobra"

	"marsweather/config"
	"marsweather/logging"
	"marsweather/preview"
)

// newRootCmd builds the preview command:
//
//	preview [root|card|tile] --width 360 --height 760 --out card.png
//
// Width and height default to the component's natural size.
func newRootCmd() *cobra.Command {
	var (
		verbose       bool
		width, height float32
		out           string
	)

	names := make([]string, 0, len(preview.Components()))
	for _, c := range preview.Components() {
		names = append(names, string(c))
	}

	cmd := &cobra.Command{
		Use:          fmt.Sprintf("preview [%s]", strings.Join(names, "|")),
		Short:        "Render part of the weather screen to a PNG",
		Version:      config.Version,
		Args:         cobra.MaximumNArgs(1),
		ValidArgs:    names,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetVerbose(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			component := preview.Root
			if len(args) == 1 {
				component = preview.Component(args[0])
			}
			if out == "" {
				out = string(component) + ".png"
			}

			a := preview.NewApp()
			defer a.Quit()

			img, err := preview.Render(component, fyne.NewSize(width, height))
			if err != nil {
				return err
			}
			if err := preview.Save(img, out); err != nil {
				return err
			}

			logging.For("preview").Info("wrote preview", "component", component, "path", out,
				"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
			return nil
		},
	}

	cmd.SetVersionTemplate(config.BuildInfo())
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	cmd.Flags().Float32Var(&width, "width", 0, "render width (default: component size)")
	cmd.Flags().Float32Var(&height, "height", 0, "render height (default: component size)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: <component>.png)")

	return cmd
}
