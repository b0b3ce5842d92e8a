package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/shenikar/emergensys/internal/models"
)

const (
	mediaPrefix = "emergencies"
	// максимальный срок presigned ссылки в S3 API
	presignExpiry = 7 * 24 * time.Hour
)

// ObjectStore - часть API minio, нужная для вложений
type ObjectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

// MediaStore загружает вложения заявок в бакет
type MediaStore struct {
	client    ObjectStore
	bucket    string
	publicURL string
	now       func() time.Time
}

// NewMediaStore создает хранилище. Если publicURL задан, ссылки строятся от него, иначе выдаются presigned.
func NewMediaStore(client ObjectStore, bucket, publicURL string) *MediaStore {
	return &MediaStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
	}
}

// ObjectKey - путь объекта emergencies/<incidentId>/<unixMillis>_<name>
func ObjectKey(incidentID string, at time.Time, name string) string {
	return fmt.Sprintf("%s/%s/%d_%s", mediaPrefix, incidentID, at.UnixMilli(), safeName(name))
}

// Upload кладет один файл и возвращает его описание с публичной ссылкой
func (s *MediaStore) Upload(ctx context.Context, incidentID string, file models.MediaFile) (models.Media, error) {
	key := ObjectKey(incidentID, s.now(), file.Name)

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	info, err := s.client.PutObject(ctx, s.bucket, key, file.Reader, file.Size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return models.Media{}, fmt.Errorf("storage: failed to upload %s: %w", file.Name, err)
	}

	link, err := s.objectURL(ctx, key)
	if err != nil {
		return models.Media{}, err
	}

	size := file.Size
	if size < 0 {
		size = info.Size
	}
	return models.Media{
		URL:  link,
		Type: contentType,
		Name: file.Name,
		Size: size,
	}, nil
}

func (s *MediaStore) objectURL(ctx context.Context, key string) (string, error) {
	if s.publicURL != "" {
		return s.publicURL + "/" + s.bucket + "/" + key, nil
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, presignExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("storage: failed to presign %s: %w", key, err)
	}
	return u.String(), nil
}

func safeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return strings.ReplaceAll(name, " ", "_")
}
