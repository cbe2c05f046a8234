package main

import (
	"github.com/phanxgames/solitaire"
	"github.com/spf13/cobra"
)

const appName = "solitaire"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the card table",
	Long: `Play opens the card table window.

Examples:
  solitaire play
  solitaire play --layout table.yaml --debug
  solitaire play --sheet cards.png --no-deal`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("layout", "l", "", "YAML or TOML layout file")
	cmd.Flags().Bool("debug", false, "show click zones and log input to stderr")
	cmd.Flags().Bool("no-deal", false, "skip the deal animation")
	cmd.Flags().String("sheet", "", "PNG card sheet, 13 frames per row, back last")
	cmd.Flags().Uint64("seed", 0, "shuffle seed (0 picks one)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	layoutPath, _ := cmd.Flags().GetString("layout")
	debug, _ := cmd.Flags().GetBool("debug")
	noDeal, _ := cmd.Flags().GetBool("no-deal")
	sheet, _ := cmd.Flags().GetString("sheet")
	seed, _ := cmd.Flags().GetUint64("seed")

	layout := solitaire.DefaultLayout()
	if layoutPath != "" {
		var err error
		if layout, err = solitaire.LoadLayout(layoutPath); err != nil {
			return err
		}
	}
	if debug {
		layout.Debug = true
	}
	if noDeal {
		layout.Deal.Enabled = false
	}
	if sheet != "" {
		layout.SheetPath = sheet
	}

	return solitaire.Run(solitaire.RunConfig{
		Title:    "Solitaire",
		Layout:   layout,
		Settings: solitaire.OpenSettingsStore(appName),
		Seed:     seed,
	})
}
