package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BerylCAtieno/document-summarizer-widget/internal/models"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/services"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/utils"
	"github.com/dustin/go-humanize"
	"github.com/gorilla/mux"
)

const (
	DefaultMaxFileSize = 80 << 20 // 80MB

	// parts beyond this are spooled to disk by mime/multipart
	maxFormMemory = 32 << 20
)

type UploadHandler struct {
	service     services.UploadService
	logger      *utils.Logger
	maxFileSize int64
}

func NewUploadHandler(service services.UploadService, logger *utils.Logger, maxFileSize int64) *UploadHandler {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &UploadHandler{
		service:     service,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// Upload accepts the widget's multipart form, checks only that a file is
// present, and relays the summarizer's status and body.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxFileSize {
		h.respondError(w, h.tooLarge())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
			h.respondError(w, h.tooLarge())
			return
		}
		h.respondError(w, utils.NewBadRequestError("no file part"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		// a file input submitted with nothing chosen arrives with an empty
		// filename, which mime/multipart files under values
		if _, ok := r.MultipartForm.Value["file"]; ok {
			h.respondError(w, utils.NewBadRequestError("no file selected"))
			return
		}
		h.respondError(w, utils.NewBadRequestError("no file part"))
		return
	}
	defer file.Close()

	if header.Filename == "" {
		h.respondError(w, utils.NewBadRequestError("no file selected"))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondError(w, utils.NewInternalError("Failed to read file"))
		return
	}

	req := &models.UploadRequest{
		File:     data,
		Filename: filepath.Base(header.Filename),
		Length:   r.FormValue("length"),
	}

	h.logger.Info("File upload received",
		"filename", req.Filename,
		"size", humanize.Bytes(uint64(len(data))),
		"length", req.Length)

	res, err := h.service.Relay(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	w.Header().Set("X-Upload-ID", res.ID)
	h.respondJSON(w, res.StatusCode, res.Payload)
}

func (h *UploadHandler) ListUploads(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.respondError(w, utils.NewBadRequestError("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	records, err := h.service.RecentUploads(r.Context(), limit)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"uploads": records,
		"count":   len(records),
	})
}

func (h *UploadHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.respondError(w, utils.NewBadRequestError("Upload ID is required"))
		return
	}

	rec, data, err := h.service.ArchivedFile(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(rec.Filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": rec.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

func (h *UploadHandler) tooLarge() *utils.AppError {
	return utils.NewRequestTooLargeError(fmt.Sprintf("file exceeds %s limit", humanize.IBytes(uint64(h.maxFileSize))))
}

func (h *UploadHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *UploadHandler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		status = appErr.StatusCode
		message = appErr.Message
	}

	h.logger.Error("Request error", "status", status, "error", message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
