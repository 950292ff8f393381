package widget

import (
	"context"

	"github.com/BerylCAtieno/document-summarizer-widget/internal/models"
)

type Submission struct {
	Seq     uint64
	File    File
	Options Options

	uploader Uploader
}

// Outcome is an UploadResult ready for rendering, with the fallback text
// already applied.
type Outcome struct {
	Seq     uint64
	Summary string
	Snippet string
	Err     error
}

func (s *Submission) Request() models.UploadRequest {
	return models.UploadRequest{
		File:     s.File.Data,
		Filename: s.File.Name,
		Length:   s.Options.Length,
	}
}

// Run sends the request once. It does not touch the presenter, so it may run
// off the event loop.
func (s *Submission) Run(ctx context.Context) Outcome {
	resp, err := s.uploader.Upload(ctx, s.Request())
	if err != nil {
		return Outcome{Seq: s.Seq, Err: &TransportError{Err: err}}
	}

	if !resp.OK() {
		msg := resp.Payload.Error
		if msg == "" {
			msg = UnknownError
		}
		return Outcome{Seq: s.Seq, Err: &ServerError{StatusCode: resp.StatusCode, Message: msg}}
	}

	summary := resp.Payload.Summary
	if summary == "" {
		summary = NoSummary
	}

	return Outcome{
		Seq:     s.Seq,
		Summary: summary,
		Snippet: resp.Payload.TextSnippet,
	}
}
