package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/phanxgames/solitaire"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect and validate table layout files",
}

var layoutValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a YAML or TOML layout file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("layout file not found: %s", path)
		}

		out := cmd.OutOrStdout()
		if _, err := solitaire.LoadLayout(path); err != nil {
			fmt.Fprintf(out, "%s %s\n", color.RedString("invalid:"), path)
			for i, problem := range layoutProblems(err) {
				fmt.Fprintf(out, "  %d. %s\n", i+1, problem)
			}
			return errors.New("validation failed")
		}
		fmt.Fprintf(out, "%s %s\n", color.GreenString("valid:"), path)
		return nil
	},
}

var layoutDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the default layout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, _ := cmd.Flags().GetString("format")
		data, err := solitaire.DefaultLayout().Encode(solitaire.LayoutFormat(format))
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	layoutDumpCmd.Flags().StringP("format", "f", string(solitaire.FormatYAML), "output format: yaml or toml")
	layoutCmd.AddCommand(layoutValidateCmd)
	layoutCmd.AddCommand(layoutDumpCmd)
}

// layoutProblems flattens errors.Join trees into one message per problem.
func layoutProblems(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, layoutProblems(e)...)
		}
		return out
	}
	return []string{err.Error()}
}
