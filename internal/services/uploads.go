package services

import (
	"context"
	"mime"
	"path/filepath"
	"time"

	"github.com/BerylCAtieno/document-summarizer-widget/internal/client"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/models"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/repository"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/storage"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/utils"
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

type UploadService interface {
	Relay(ctx context.Context, req *models.UploadRequest) (*models.RelayResult, error)
	RecentUploads(ctx context.Context, limit int) ([]models.UploadRecord, error)
	ArchivedFile(ctx context.Context, id string) (*models.UploadRecord, []byte, error)
}

// Summarizer is the upstream that answers /api/upload.
type Summarizer interface {
	Upload(ctx context.Context, req models.UploadRequest) (*client.Response, error)
}

type uploadService struct {
	repo       repository.Repository
	storage    storage.Storage
	summarizer Summarizer
	logger     *utils.Logger
	now        func() time.Time
}

func NewService(repo repository.Repository, store storage.Storage, summarizer Summarizer, logger *utils.Logger) UploadService {
	return &uploadService{
		repo:       repo,
		storage:    store,
		summarizer: summarizer,
		logger:     logger,
		now:        time.Now,
	}
}

// Relay archives the file when enabled, forwards it once to the summarizer and
// records the attempt. The summarizer's status and payload come back as-is.
func (s *uploadService) Relay(ctx context.Context, req *models.UploadRequest) (*models.RelayResult, error) {
	id := utils.GenerateID()
	started := s.now()

	if req.Length == "" {
		req.Length = models.DefaultLength
	}

	var archiveKey string
	if s.storage.Enabled() {
		key := storage.ArchiveKey(id, req.Filename)
		if err := s.storage.Upload(ctx, key, req.File, contentTypeFor(req.Filename)); err != nil {
			// the summary is what the user is waiting for; a lost archive copy is only logged
			s.logger.Error("Failed to archive upload", "error", err, "id", id, "key", key)
		} else {
			archiveKey = key
		}
	}

	resp, err := s.summarizer.Upload(ctx, *req)
	duration := s.now().Sub(started)

	rec := &models.UploadRecord{
		ID:         id,
		Filename:   req.Filename,
		FileSize:   int64(len(req.File)),
		Length:     req.Length,
		ArchiveKey: archiveKey,
		DurationMS: duration.Milliseconds(),
		CreatedAt:  started,
	}

	if err != nil {
		if archiveKey != "" {
			// nothing was summarized, so nothing is kept
			if delErr := s.storage.Delete(ctx, archiveKey); delErr != nil {
				s.logger.Error("Failed to remove archived upload", "error", delErr, "key", archiveKey)
			} else {
				rec.ArchiveKey = ""
			}
		}
		rec.StatusCode = 502
		rec.Error = err.Error()
		s.record(ctx, rec)
		s.logger.Error("Summarizer request failed", "error", err, "id", id, "filename", req.Filename)
		return nil, utils.NewBadGatewayError("summarizer unavailable", err)
	}

	rec.StatusCode = resp.StatusCode
	rec.Error = resp.Payload.Error
	s.record(ctx, rec)

	s.logger.Info("Upload relayed",
		"id", id,
		"filename", req.Filename,
		"length", req.Length,
		"status", resp.StatusCode,
		"duration_ms", rec.DurationMS)

	return &models.RelayResult{
		ID:         id,
		StatusCode: resp.StatusCode,
		Payload:    resp.Payload,
	}, nil
}

func (s *uploadService) record(ctx context.Context, rec *models.UploadRecord) {
	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error("Failed to record upload", "error", err, "id", rec.ID)
	}
}

func (s *uploadService) RecentUploads(ctx context.Context, limit int) ([]models.UploadRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	records, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to list uploads", "error", err)
		return nil, utils.NewInternalError("Failed to list uploads")
	}
	return records, nil
}

func (s *uploadService) ArchivedFile(ctx context.Context, id string) (*models.UploadRecord, []byte, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get upload", "error", err, "id", id)
		return nil, nil, utils.NewInternalError("Failed to retrieve upload")
	}
	if rec == nil {
		return nil, nil, utils.NewNotFoundError("Upload not found")
	}
	if rec.ArchiveKey == "" || !s.storage.Enabled() {
		return nil, nil, utils.NewNotFoundError("Upload was not archived")
	}

	data, err := s.storage.Download(ctx, rec.ArchiveKey)
	if err != nil {
		s.logger.Error("Failed to download archived upload", "error", err, "key", rec.ArchiveKey)
		return nil, nil, utils.NewInternalError("Failed to retrieve archived file")
	}
	return rec, data, nil
}

func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
