package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BerylCAtieno/document-summarizer-widget/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadSendsMultipartForm(t *testing.T) {
	var (
		gotMethod   string
		gotPath     string
		gotFilename string
		gotContent  string
		gotLength   string
		gotFields   []string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path

		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		for name := range r.MultipartForm.Value {
			gotFields = append(gotFields, name)
		}
		for name := range r.MultipartForm.File {
			gotFields = append(gotFields, name)
		}

		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)

		gotFilename = header.Filename
		gotContent = string(data)
		gotLength = r.FormValue("length")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"summary":"short version","text_snippet":"full text"}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	resp, err := c.Upload(context.Background(), models.UploadRequest{
		File:     []byte("%PDF-1.4 body"),
		Filename: "report.pdf",
		Length:   models.LengthLong,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, UploadPath, gotPath)
	assert.Equal(t, "report.pdf", gotFilename)
	assert.Equal(t, "%PDF-1.4 body", gotContent)
	assert.Equal(t, "long", gotLength)
	assert.ElementsMatch(t, []string{"file", "length"}, gotFields)

	assert.True(t, resp.OK())
	assert.Equal(t, "short version", resp.Payload.Summary)
	assert.Equal(t, "full text", resp.Payload.TextSnippet)
}

func TestUploadResponses(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		wantOK      bool
		wantPayload models.SummaryPayload
	}{
		{
			name:        "success",
			status:      http.StatusOK,
			body:        `{"summary":"s","text_snippet":"t"}`,
			wantOK:      true,
			wantPayload: models.SummaryPayload{Summary: "s", TextSnippet: "t"},
		},
		{
			name:        "created counts as ok",
			status:      http.StatusCreated,
			body:        `{}`,
			wantOK:      true,
			wantPayload: models.SummaryPayload{},
		},
		{
			name:        "server error with message",
			status:      http.StatusUnsupportedMediaType,
			body:        `{"error":"file type not allowed"}`,
			wantPayload: models.SummaryPayload{Error: "file type not allowed"},
		},
		{
			name:        "server error without message",
			status:      http.StatusInternalServerError,
			body:        `{}`,
			wantPayload: models.SummaryPayload{},
		},
		{
			name:    "html error page",
			status:  http.StatusRequestEntityTooLarge,
			body:    `<html>too large</html>`,
			wantErr: true,
		},
		{
			name:    "empty body",
			status:  http.StatusOK,
			body:    ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := New(srv.URL).Upload(context.Background(), models.UploadRequest{
				File:     []byte("x"),
				Filename: "a.png",
				Length:   "medium",
			})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.wantOK, resp.OK())
			assert.Equal(t, tt.wantPayload, resp.Payload)
		})
	}
}

func TestUploadTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	resp, err := New(url).Upload(context.Background(), models.UploadRequest{Filename: "a.pdf"})
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send request")
}

func TestUploadHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL).Upload(ctx, models.UploadRequest{Filename: "a.pdf"})
	assert.ErrorIs(t, err, context.Canceled)
}
