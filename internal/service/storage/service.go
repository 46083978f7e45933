package storage

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"streamhub/internal/config"
	"streamhub/internal/domain"
)

// Kind selects the mime allow-list for an upload.
type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
	KindAuto  Kind = "auto"
)

var videoExtensions = map[string]string{
	"video/mp4": ".mp4",
	"video/avi": ".avi",
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

type UploadResult struct {
	URL string
}

// LocalFile is a temp file handed off by the HTTP layer, alive only for the
// duration of one Commit call.
type LocalFile struct {
	Path     string
	MimeType string
}

// Discard removes a spooled file that never reached Commit. Calling it after
// Commit is harmless; the path is already gone.
func (f *LocalFile) Discard() {
	if f == nil || f.Path == "" {
		return
	}
	os.Remove(f.Path)
}

// ValidateMime reports whether mimeType is acceptable for kind, without
// touching the file or the network.
func ValidateMime(kind Kind, mimeType string) error {
	_, err := extensionFor(kind, mimeType)
	return err
}

// Service manages the lifecycle of blob-store assets. Commit owns the local
// temp file: it is removed on every exit path, success or failure, exactly
// once. Release is idempotent; deleting an already-gone asset is a no-op.
type Service interface {
	Commit(ctx context.Context, localPath, mimeType string, kind Kind) (*UploadResult, error)
	Release(ctx context.Context, remoteURL string) error
}

// objectStore is the slice of *minio.Client the service needs; tests swap in
// a fake.
type objectStore interface {
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

type service struct {
	store objectStore
	cfg   *config.Config
}

func NewService(client *minio.Client, cfg *config.Config) Service {
	return &service{store: client, cfg: cfg}
}

func newWithStore(store objectStore, cfg *config.Config) Service {
	return &service{store: store, cfg: cfg}
}

func (s *service) Commit(ctx context.Context, localPath, mimeType string, kind Kind) (*UploadResult, error) {
	if localPath == "" {
		return nil, fmt.Errorf("%w: no file path provided for upload", domain.ErrValidation)
	}

	defer func() {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: failed to remove temp file %s: %v", localPath, err)
		}
	}()

	ext, err := extensionFor(kind, mimeType)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("media/%s%s", uuid.New(), ext)

	_, err = s.store.FPutObject(ctx, s.cfg.MinIOBucket, key, localPath, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpload, err)
	}

	return &UploadResult{URL: s.publicURL(key)}, nil
}

func (s *service) Release(ctx context.Context, remoteURL string) error {
	if remoteURL == "" {
		return fmt.Errorf("%w: no reference provided for deletion", domain.ErrValidation)
	}

	key, err := s.objectKey(remoteURL)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.store.RemoveObject(ctx, s.cfg.MinIOBucket, key, minio.RemoveObjectOptions{}); err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return nil
		}
		return fmt.Errorf("%w: %v", domain.ErrDeletion, err)
	}

	return nil
}

func (s *service) publicURL(key string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, key)
}

// objectKey rebuilds the bucket-relative key from a remote reference.
func (s *service) objectKey(remoteURL string) (string, error) {
	u, err := url.Parse(remoteURL)
	if err != nil {
		return "", fmt.Errorf("malformed remote reference: %v", err)
	}

	if _, err := StorageID(remoteURL); err != nil {
		return "", err
	}

	key := strings.TrimPrefix(u.Path, "/")
	key = strings.TrimPrefix(key, s.cfg.MinIOBucket+"/")
	return key, nil
}

// StorageID extracts the durable asset id from a remote reference: the
// trailing path segment stripped of its extension.
func StorageID(remoteURL string) (string, error) {
	u, err := url.Parse(remoteURL)
	if err != nil {
		return "", fmt.Errorf("malformed remote reference: %v", err)
	}

	base := path.Base(u.Path)
	id := strings.TrimSuffix(base, path.Ext(base))
	if id == "" || id == "." || id == "/" {
		return "", fmt.Errorf("remote reference %q has no storage id", remoteURL)
	}
	return id, nil
}

func extensionFor(kind Kind, mimeType string) (string, error) {
	switch kind {
	case KindVideo:
		if ext, ok := videoExtensions[mimeType]; ok {
			return ext, nil
		}
	case KindImage:
		if ext, ok := imageExtensions[mimeType]; ok {
			return ext, nil
		}
	case KindAuto:
		if ext, ok := videoExtensions[mimeType]; ok {
			return ext, nil
		}
		if ext, ok := imageExtensions[mimeType]; ok {
			return ext, nil
		}
	default:
		return "", fmt.Errorf("%w: unknown asset kind %q", domain.ErrValidation, kind)
	}
	return "", fmt.Errorf("%w: unsupported file format %q", domain.ErrValidation, mimeType)
}
