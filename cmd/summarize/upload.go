package main

import (
	"errors"

	"github.com/BerylCAtieno/document-summarizer-widget/internal/client"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/console"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/utils"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/widget"

	"github.com/spf13/cobra"
)

func newUploadCmd(root *rootOptions) *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "upload [file...]",
		Short: "Upload a document and print its summary",
		Long: `Upload sends the first file to the summarizer and prints the summary
and text snippet. Any further files are ignored. With no file at all the
command behaves like pressing Upload with nothing chosen.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}

			logger := utils.NewLoggerWithWriter(cfg.LogLevel, cmd.ErrOrStderr())

			files, err := widget.ReadFiles(args)
			if err != nil {
				return err
			}

			presenter := console.NewPresenter(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Length)
			uploader := client.New(cfg.Endpoint, client.WithLogger(logger))
			w := widget.New(presenter, uploader, widget.Config{
				SingleFlight: cfg.SingleFlight,
				Logger:       logger,
			})

			var sub *widget.Submission
			switch {
			case len(files) == 0:
				sub, err = w.Click()
			case drop:
				sub, err = w.Drop(files)
			default:
				sub, err = w.Pick(files)
			}
			if err != nil {
				return &shownError{err: err}
			}

			w.Finish(sub.Run(cmd.Context()))

			if w.State() == widget.Error {
				return &shownError{err: errors.New(presenter.Status())}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&drop, "drop", false, "send the file as a drop instead of a picker selection")

	return cmd
}
