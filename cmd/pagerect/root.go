package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tsawler/pagerect/internal/config"
)

// app carries state resolved once the command line has been parsed.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "pagerect",
		Short: "Convert annotation source info into viewer sources",
		Long: `pagerect converts the source info records returned by a document
annotation API into the sources list a page viewer renders.

Each record's first page becomes a source's main page and its later pages
become spreads. Records that share a page and document are merged.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(
		&a.cfgFile, "config", "", "config file (default: ./pagerect.yaml or ~/.pagerect/pagerect.yaml)",
	)
	rootCmd.PersistentFlags().String("match", "strict", "match policy for records sharing a page: strict or legacy")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "output format: json or yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug messages")

	// Resolve configuration before any command runs
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(a.cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		a.cfg = cfg

		level := slog.LevelInfo
		if cfg.Verbose {
			level = slog.LevelDebug
		}
		a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: level,
		}))
		return nil
	}

	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newMeasureCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
