package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BerylCAtieno/document-summarizer-widget/internal/client"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/config"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/tui"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/utils"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/widget"

	"github.com/spf13/cobra"
)

func newTUICmd(root *rootOptions) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui [directory]",
		Short: "Start the interactive upload screen",
		Long: `Start the terminal upload screen. Pick a file from the directory
listing or drop one onto the terminal window.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogFile = logFile
			}

			logger, closeLog, err := openLog(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			dir := ""
			if len(args) > 0 {
				if dir, err = filepath.Abs(args[0]); err != nil {
					return fmt.Errorf("invalid directory %s: %w", args[0], err)
				}
			}

			uploader := client.New(cfg.Endpoint, client.WithLogger(logger))

			return tui.Run(tui.Options{
				Context:  cmd.Context(),
				Uploader: uploader,
				Widget:   widget.Config{SingleFlight: cfg.SingleFlight},
				Length:   cfg.Length,
				StartDir: dir,
				Endpoint: uploader.Endpoint(),
				Logger:   logger,
			})
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file (default discards them)")

	return cmd
}

// openLog keeps log output away from the terminal the TUI draws on.
func openLog(cfg *config.ClientConfig) (*utils.Logger, func(), error) {
	if cfg.LogFile == "" {
		return utils.NopLogger(), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return utils.NewLoggerWithWriter(cfg.LogLevel, f), func() { f.Close() }, nil
}
