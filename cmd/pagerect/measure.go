package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tsawler/pagerect/font"
)

func newMeasureCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measure text...",
		Short: "Print the rendered width of text in pixels",
		Long: `Measure prints the width in pixels of each argument set in the given
CSS font shorthand, one line per argument.

Examples:
  pagerect measure Hello
  pagerect measure --font "bold 14px Arial" "Chapter 1" "Chapter 2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			surface := font.NewSurface()
			a.logger.Debug("measuring", "font", a.cfg.Font, "texts", len(args))

			for _, text := range args {
				w, err := surface.Measure(text, a.cfg.Font)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", strconv.FormatFloat(w, 'f', -1, 64), text)
			}
			return nil
		},
	}

	cmd.Flags().String("font", font.DefaultFont, "CSS font shorthand")
	return cmd
}
