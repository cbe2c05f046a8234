package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "solitaire",
	Short: "Klondike table with draggable tableau piles",
	Long: `Solitaire opens the card table. Tableau cards can be dragged together with
the cards stacked on them and snap back when released.

Without a subcommand it behaves like "solitaire play".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	addPlayFlags(rootCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(layoutCmd)
}
