package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/BerylCAtieno/document-summarizer-widget/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrArchiveDisabled is returned by Download when uploads are not archived.
var ErrArchiveDisabled = errors.New("upload archive is disabled")

type Storage interface {
	Enabled() bool
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// ArchiveKey is where the original of a relayed upload is kept.
func ArchiveKey(uploadID, filename string) string {
	name := path.Base(filename)
	if name == "." || name == "/" {
		name = "upload"
	}
	return fmt.Sprintf("uploads/%s/%s", uploadID, name)
}

// New picks the S3 archive when ARCHIVE_UPLOADS is on and a no-op store
// otherwise.
func New(cfg *config.Config) (Storage, error) {
	if !cfg.ArchiveUploads {
		return NewNoopStorage(), nil
	}
	return NewS3Storage(cfg)
}

type s3Storage struct {
	client     *minio.Client
	bucketName string
}

func NewS3Storage(cfg *config.Config) (Storage, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		Secure: cfg.S3UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	// Ensure bucket exists
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.S3BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.S3BucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &s3Storage{
		client:     client,
		bucketName: cfg.S3BucketName,
	}, nil
}

func (s *s3Storage) Enabled() bool {
	return true
}

func (s *s3Storage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(
		ctx,
		s.bucketName,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	return nil
}

func (s *s3Storage) Download(ctx context.Context, key string) ([]byte, error) {
	object, err := s.client.GetObject(ctx, s.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer object.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(object); err != nil {
		return nil, fmt.Errorf("failed to read object data: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *s3Storage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}

type noopStorage struct{}

func NewNoopStorage() Storage {
	return noopStorage{}
}

func (noopStorage) Enabled() bool { return false }

func (noopStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	return nil
}

func (noopStorage) Download(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrArchiveDisabled
}

func (noopStorage) Delete(ctx context.Context, key string) error {
	return nil
}
