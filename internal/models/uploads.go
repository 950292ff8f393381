package models

import (
	"time"
)

// Length values understood by the summarizer. They are forwarded as-is and
// never enforced on the client side.
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"

	DefaultLength = LengthMedium
)

var Lengths = []string{LengthShort, LengthMedium, LengthLong}

type UploadRequest struct {
	File     []byte
	Filename string
	Length   string
}

// SummaryPayload is the JSON body of /api/upload in both directions of the
// contract: summary and text_snippet on success, error otherwise.
type SummaryPayload struct {
	Summary     string `json:"summary,omitempty"`
	TextSnippet string `json:"text_snippet,omitempty"`
	Error       string `json:"error,omitempty"`
}

type RelayResult struct {
	ID         string
	StatusCode int
	Payload    SummaryPayload
}

type UploadRecord struct {
	ID         string    `json:"id" db:"id"`
	Filename   string    `json:"filename" db:"filename"`
	FileSize   int64     `json:"file_size" db:"file_size"`
	Length     string    `json:"length" db:"length"`
	StatusCode int       `json:"status_code" db:"status_code"`
	Error      string    `json:"error,omitempty" db:"error"`
	ArchiveKey string    `json:"archive_key,omitempty" db:"archive_key"`
	DurationMS int64     `json:"duration_ms" db:"duration_ms"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
