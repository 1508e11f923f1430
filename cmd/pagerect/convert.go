package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/pagerect"
	"github.com/tsawler/pagerect/internal/config"
	"github.com/tsawler/pagerect/model"
)

func newConvertCmd(a *app) *cobra.Command {
	var pages []int

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a JSON array of source info records",
		Long: `Convert reads a JSON array of source info records from file, or from
standard input when file is omitted or "-", and writes the sources list.

Examples:
  pagerect convert sources.json
  pagerect convert -o yaml --match legacy < sources.json
  pagerect convert --page 0 --page 3 sources.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			conv := pagerect.FromJSON(data).
				MatchMode(a.cfg.MatchMode()).
				Logger(a.logger)
			if len(pages) > 0 {
				conv = conv.Pages(pages...)
			}

			srcs, warnings, err := conv.Sources()
			if err != nil {
				return err
			}
			a.logger.Debug("converted source info",
				"sources", len(srcs), "skipped", len(warnings), "match", a.cfg.Match)

			return writeSources(cmd.OutOrStdout(), srcs, a.cfg.Output)
		},
	}

	cmd.Flags().IntSliceVar(&pages, "page", nil, "keep only sources whose main page is listed (repeatable)")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, nil
}

func writeSources(w io.Writer, srcs []model.Source, format string) error {
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(srcs); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(srcs); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
}
