package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/BerylCAtieno/document-summarizer-widget/internal/models"
	"github.com/jmoiron/sqlx"
)

// Repository is the audit log of uploads relayed to the summarizer.
type Repository interface {
	Create(ctx context.Context, rec *models.UploadRecord) error
	GetByID(ctx context.Context, id string) (*models.UploadRecord, error)
	ListRecent(ctx context.Context, limit int) ([]models.UploadRecord, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *models.UploadRecord) error {
	query := `
		INSERT INTO upload_log (id, filename, file_size, length, status_code, error, archive_key, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Filename,
		rec.FileSize,
		rec.Length,
		rec.StatusCode,
		rec.Error,
		rec.ArchiveKey,
		rec.DurationMS,
		rec.CreatedAt.UTC(),
	)

	return err
}

// GetByID returns nil, nil when no record matches.
func (r *repository) GetByID(ctx context.Context, id string) (*models.UploadRecord, error) {
	var rec models.UploadRecord

	query := `
		SELECT id, filename, file_size, length, status_code, error, archive_key, duration_ms, created_at
		FROM upload_log
		WHERE id = ?
	`

	err := r.db.GetContext(ctx, &rec, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]models.UploadRecord, error) {
	records := []models.UploadRecord{}

	query := `
		SELECT id, filename, file_size, length, status_code, error, archive_key, duration_ms, created_at
		FROM upload_log
		ORDER BY created_at DESC, id
		LIMIT ?
	`

	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, err
	}

	return records, nil
}
