package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BerylCAtieno/document-summarizer-widget/internal/client"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/models"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/widget"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingUploader struct {
	requests []models.UploadRequest
	resp     *client.Response
	err      error
}

func (u *recordingUploader) Upload(ctx context.Context, req models.UploadRequest) (*client.Response, error) {
	u.requests = append(u.requests, req)
	return u.resp, u.err
}

func newTestModel(t *testing.T, u *recordingUploader) (Model, string) {
	t.Helper()
	dir := t.TempDir()
	m := New(Options{
		Context:  context.Background(),
		Uploader: u,
		Length:   models.LengthMedium,
		StartDir: dir,
		Endpoint: "http://localhost:8080",
	})
	return m, dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func paste(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

// drain runs cmd and any batched commands, returning every message produced.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// deliverUploads feeds finished uploads back into the model.
func deliverUploads(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	delivered := 0
	for _, msg := range drain(cmd) {
		if done, ok := msg.(uploadDoneMsg); ok {
			m, _ = update(t, m, done)
			delivered++
		}
	}
	require.Equal(t, 1, delivered)
	return m
}

func TestUploadButtonWithoutFile(t *testing.T) {
	u := &recordingUploader{}
	m, _ := newTestModel(t, u)

	m, cmd := update(t, m, key("u"))
	assert.Nil(t, cmd)
	assert.Empty(t, u.requests)
	assert.Equal(t, widget.ChooseFileText, m.screen.alert)
	assert.Contains(t, m.View(), widget.ChooseFileText)

	m, _ = update(t, m, key("x"))
	assert.Empty(t, m.screen.alert)
	assert.Equal(t, widget.Idle, m.widget.State())
}

func TestPasteDropUploadsFirstFile(t *testing.T) {
	u := &recordingUploader{resp: &client.Response{
		StatusCode: 200,
		Payload:    models.SummaryPayload{Summary: "Quarterly numbers went up.", TextSnippet: "Revenue grew"},
	}}
	m, dir := newTestModel(t, u)
	first := writeFile(t, dir, "q3 report.pdf", "pdf bytes")
	second := writeFile(t, dir, "other.pdf", "other bytes")

	m, cmd := update(t, m, paste("'"+first+"' "+second))
	require.NotNil(t, cmd)
	assert.Equal(t, widget.Uploading, m.widget.State())
	assert.Equal(t, widget.StatusUploading, m.screen.status)

	m = deliverUploads(t, m, cmd)

	require.Len(t, u.requests, 1)
	assert.Equal(t, "q3 report.pdf", u.requests[0].Filename)
	assert.Equal(t, []byte("pdf bytes"), u.requests[0].File)
	assert.Equal(t, "medium", u.requests[0].Length)

	assert.Equal(t, widget.Done, m.widget.State())
	view := m.View()
	assert.Contains(t, view, "Quarterly numbers went up.")
	assert.Contains(t, view, "Revenue grew")
}

func TestLengthKeyChangesRequest(t *testing.T) {
	u := &recordingUploader{resp: &client.Response{StatusCode: 200}}
	m, dir := newTestModel(t, u)
	path := writeFile(t, dir, "a.png", "png")

	m, _ = update(t, m, key("s"))
	assert.Equal(t, models.LengthLong, m.screen.Length())

	m, cmd := update(t, m, paste(path))
	m = deliverUploads(t, m, cmd)

	require.Len(t, u.requests, 1)
	assert.Equal(t, "long", u.requests[0].Length)
	assert.Contains(t, m.View(), widget.NoSummary)
}

func TestDropInputSubmitsOnEnter(t *testing.T) {
	u := &recordingUploader{resp: &client.Response{StatusCode: 200, Payload: models.SummaryPayload{Summary: "typed"}}}
	m, dir := newTestModel(t, u)
	path := writeFile(t, dir, "typed.pdf", "x")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusDrop, m.focus)
	m.drop.SetValue(path)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = deliverUploads(t, m, cmd)

	require.Len(t, u.requests, 1)
	assert.Equal(t, "typed.pdf", u.requests[0].Filename)
	assert.Empty(t, m.drop.Value())
}

func TestPickThenButtonResends(t *testing.T) {
	u := &recordingUploader{resp: &client.Response{StatusCode: 200, Payload: models.SummaryPayload{Summary: "ok"}}}
	m, dir := newTestModel(t, u)
	path := writeFile(t, dir, "picked.pdf", "x")

	next, cmd := m.pick(path)
	m = deliverUploads(t, next.(Model), cmd)

	m, cmd = update(t, m, key("u"))
	require.NotNil(t, cmd)
	m = deliverUploads(t, m, cmd)

	require.Len(t, u.requests, 2)
	assert.Equal(t, "picked.pdf", u.requests[1].Filename)
	assert.Equal(t, widget.Done, m.widget.State())
}

func TestTransportFailureShowsMessage(t *testing.T) {
	u := &recordingUploader{err: errors.New("Failed to fetch")}
	m, dir := newTestModel(t, u)
	path := writeFile(t, dir, "a.pdf", "x")

	m, cmd := update(t, m, paste(path))
	m = deliverUploads(t, m, cmd)

	assert.Equal(t, "Upload failed: Failed to fetch", m.screen.status)
	assert.False(t, m.screen.resultVisible)
	assert.NotContains(t, m.View(), "Summary")
}

func TestServerErrorShowsMessage(t *testing.T) {
	u := &recordingUploader{resp: &client.Response{StatusCode: 415, Payload: models.SummaryPayload{Error: "bad format"}}}
	m, dir := newTestModel(t, u)
	path := writeFile(t, dir, "a.pdf", "x")

	m, cmd := update(t, m, paste(path))
	m = deliverUploads(t, m, cmd)

	assert.Equal(t, "Error: bad format", m.screen.status)
	assert.Contains(t, m.View(), "Error: bad format")
}

func TestDropIgnoresUnreadableExtras(t *testing.T) {
	u := &recordingUploader{resp: &client.Response{StatusCode: 200}}
	m, dir := newTestModel(t, u)
	first := writeFile(t, dir, "a.pdf", "pdf bytes")
	sub := filepath.Join(dir, "folder")
	require.NoError(t, os.Mkdir(sub, 0o755))

	m, cmd := update(t, m, paste(first+" "+sub+" "+filepath.Join(dir, "gone.pdf")))
	require.NotNil(t, cmd)
	m = deliverUploads(t, m, cmd)

	require.Len(t, u.requests, 1)
	assert.Equal(t, "a.pdf", u.requests[0].Filename)
	assert.Equal(t, []byte("pdf bytes"), u.requests[0].File)
	assert.Equal(t, widget.Done, m.widget.State())
}

func TestUnreadableDropDoesNotUpload(t *testing.T) {
	u := &recordingUploader{}
	m, dir := newTestModel(t, u)

	m, cmd := update(t, m, paste(filepath.Join(dir, "missing.pdf")))
	assert.Nil(t, cmd)
	assert.Empty(t, u.requests)
	assert.Contains(t, m.screen.status, "Cannot read dropped file")
}

func TestParseDroppedPaths(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "/tmp/a.pdf", []string{"/tmp/a.pdf"}},
		{"several", "/tmp/a.pdf /tmp/b.png\n", []string{"/tmp/a.pdf", "/tmp/b.png"}},
		{"single quoted", "'/tmp/my doc.pdf'", []string{"/tmp/my doc.pdf"}},
		{"double quoted", `"/tmp/my doc.pdf" /tmp/x`, []string{"/tmp/my doc.pdf", "/tmp/x"}},
		{"escaped spaces", `/tmp/my\ doc.pdf`, []string{"/tmp/my doc.pdf"}},
		{"file uri", "file:///tmp/my%20doc.pdf\nfile:///tmp/b.pdf", []string{"/tmp/my doc.pdf", "/tmp/b.pdf"}},
		{"blank", "   \n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDroppedPaths(tt.in))
		})
	}
}
