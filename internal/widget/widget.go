// Package widget holds the upload widget: it takes one file from a drop or a
// picker, sends it with the chosen length to the summarizer and renders the
// answer through a Presenter.
//
// A Widget is not safe for concurrent use. Callers drive it from a single
// event loop; only Submission.Run may execute elsewhere.
package widget

import (
	"context"
	"errors"

	"github.com/BerylCAtieno/document-summarizer-widget/internal/client"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/models"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/utils"
)

const (
	StatusUploading = "Uploading..."
	StatusDone      = "Done"

	NoSummary      = "No summary"
	UnknownError   = "unknown"
	ChooseFileText = "Please choose a file first."
)

type File struct {
	Name string
	Data []byte
}

type Options struct {
	Length string
}

type Uploader interface {
	Upload(ctx context.Context, req models.UploadRequest) (*client.Response, error)
}

type Config struct {
	// SingleFlight rejects new triggers while an upload is outstanding. Off by
	// default: overlapping uploads all run and the last answer to arrive is
	// the one left on screen.
	SingleFlight bool
	Logger       *utils.Logger
}

type Widget struct {
	presenter Presenter
	uploader  Uploader
	cfg       Config
	logger    *utils.Logger

	selected *File
	picked   []File
	state    State
	inFlight int
	seq      uint64
}

func New(p Presenter, u Uploader, cfg Config) *Widget {
	logger := cfg.Logger
	if logger == nil {
		logger = utils.NopLogger()
	}
	return &Widget{
		presenter: p,
		uploader:  u,
		cfg:       cfg,
		logger:    logger,
		state:     Idle,
	}
}

func (w *Widget) State() State {
	return w.state
}

// Selected returns the most recently acquired file, if any.
func (w *Widget) Selected() (File, bool) {
	if w.selected == nil {
		return File{}, false
	}
	return *w.selected, true
}

func (w *Widget) InFlight() int {
	return w.inFlight
}

// Drop handles files released on the drop surface.
func (w *Widget) Drop(files []File) (*Submission, error) {
	return w.acquire("drop", files)
}

// Pick handles a change of the file picker. The picker keeps its selection so
// that Click can send it again later.
func (w *Widget) Pick(files []File) (*Submission, error) {
	w.picked = files
	return w.acquire("picker", files)
}

// Click handles the upload button, which re-sends the picker's selection.
func (w *Widget) Click() (*Submission, error) {
	if len(w.picked) == 0 {
		w.presenter.Alert(ChooseFileText)
		return nil, &UserInputError{Message: ChooseFileText}
	}
	return w.acquire("button", w.picked)
}

func (w *Widget) acquire(source string, files []File) (*Submission, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if w.cfg.SingleFlight && w.inFlight > 0 {
		w.presenter.Alert(ErrUploadInFlight.Message)
		return nil, ErrUploadInFlight
	}
	if len(files) > 1 {
		w.logger.Debug("Ignoring extra files", "source", source, "count", len(files)-1)
	}

	file := files[0]
	w.selected = &file
	w.presenter.ShowStatus("Ready to upload: " + file.Name)

	return w.Begin(file), nil
}

// Begin marks the widget as uploading and prepares the request. The length is
// read from the presenter at this moment.
func (w *Widget) Begin(file File) *Submission {
	w.seq++
	w.inFlight++
	w.state = Uploading
	w.presenter.ShowStatus(StatusUploading)

	opts := Options{Length: w.presenter.Length()}
	w.logger.Info("Upload started", "seq", w.seq, "filename", file.Name, "size", len(file.Data), "length", opts.Length)

	return &Submission{
		Seq:      w.seq,
		File:     file,
		Options:  opts,
		uploader: w.uploader,
	}
}

// Finish renders an outcome. Outcomes are applied in arrival order, so a slow
// earlier upload can overwrite a newer one.
func (w *Widget) Finish(o Outcome) {
	if w.inFlight > 0 {
		w.inFlight--
	}

	var (
		serverErr    *ServerError
		transportErr *TransportError
	)

	switch {
	case o.Err == nil:
		w.state = Done
		w.presenter.ShowStatus(StatusDone)
		w.presenter.RevealResult()
		w.presenter.SetSummary(o.Summary)
		w.presenter.SetSnippet(o.Snippet)
		w.logger.Info("Upload done", "seq", o.Seq, "summary_length", len(o.Summary))
	case errors.As(o.Err, &serverErr):
		w.state = Error
		w.presenter.ShowStatus("Error: " + serverErr.Message)
		w.presenter.HideResult()
		w.logger.Warn("Upload rejected", "seq", o.Seq, "status", serverErr.StatusCode, "error", serverErr.Message)
	case errors.As(o.Err, &transportErr):
		w.state = Error
		w.presenter.ShowStatus("Upload failed: " + transportErr.Error())
		w.presenter.HideResult()
		w.logger.Warn("Upload failed", "seq", o.Seq, "error", transportErr.Err)
	default:
		w.state = Error
		w.presenter.ShowStatus("Upload failed: " + o.Err.Error())
		w.presenter.HideResult()
	}
}

// Upload runs a whole submission synchronously.
func (w *Widget) Upload(ctx context.Context, file File) Outcome {
	out := w.Begin(file).Run(ctx)
	w.Finish(out)
	return out
}
