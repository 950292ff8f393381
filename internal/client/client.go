package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/BerylCAtieno/document-summarizer-widget/internal/models"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/utils"
)

const UploadPath = "/api/upload"

type Response struct {
	StatusCode int
	Payload    models.SummaryPayload
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *utils.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithLogger(logger *utils.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New returns a client for the summarizer at baseURL. The default HTTP client
// has no timeout; callers bound a request through its context.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  utils.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Endpoint() string {
	return c.baseURL + UploadPath
}

// Upload sends one multipart POST with the file and length fields. Any status
// with a JSON body is a Response; a failed send or an undecodable body is an
// error.
func (c *Client) Upload(ctx context.Context, req models.UploadRequest) (*Response, error) {
	body, contentType, err := encodeForm(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Debug("Sending upload",
		"endpoint", c.Endpoint(),
		"filename", req.Filename,
		"size", len(req.File),
		"length", req.Length)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var payload models.SummaryPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		c.logger.Warn("Undecodable upload response", "status", resp.StatusCode, "body_length", len(data))
		return nil, fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
	}

	c.logger.Debug("Upload response", "status", resp.StatusCode, "summary_length", len(payload.Summary))

	return &Response{
		StatusCode: resp.StatusCode,
		Payload:    payload,
	}, nil
}

func encodeForm(req models.UploadRequest) (*bytes.Buffer, string, error) {
	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)

	part, err := mw.CreateFormFile("file", req.Filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(req.File); err != nil {
		return nil, "", err
	}
	if err := mw.WriteField("length", req.Length); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}

	return buf, mw.FormDataContentType(), nil
}
