package main

import (
	"github.com/BerylCAtieno/document-summarizer-widget/internal/config"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath   string
	endpoint     string
	length       string
	logLevel     string
	singleFlight bool
}

// shownError is a failure the presenter has already put in front of the user.
type shownError struct {
	err error
}

func (e *shownError) Error() string { return e.err.Error() }

func (e *shownError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "summarize",
		Short: "Send documents to the summarizer",
		Long: `Summarize uploads a PDF or image to a document summarizer and shows
the summary and the start of the extracted text.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/summarize/config.yaml)")
	flags.StringVar(&opts.endpoint, "endpoint", "", "base URL of the summarizer")
	flags.StringVarP(&opts.length, "length", "l", "", "summary length: short, medium or long")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	flags.BoolVar(&opts.singleFlight, "single-flight", false, "refuse a new upload while one is running")

	rootCmd.AddCommand(newUploadCmd(opts))
	rootCmd.AddCommand(newTUICmd(opts))

	return rootCmd
}

// load reads the config file and environment, then applies any flags the user
// set explicitly.
func (o *rootOptions) load(cmd *cobra.Command) (*config.ClientConfig, error) {
	path := o.configPath
	if path == "" {
		if p, err := config.DefaultClientConfigPath(); err == nil {
			path = p
		}
	}

	cfg, err := config.LoadClient(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = o.endpoint
	}
	if flags.Changed("length") {
		cfg.Length = o.length
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("single-flight") {
		cfg.SingleFlight = o.singleFlight
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
