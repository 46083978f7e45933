package mocks

import (
	"context"
	"streamhub/internal/service/storage"

	"github.com/stretchr/testify/mock"
)

type StorageService struct {
	mock.Mock
}

func (m *StorageService) Commit(ctx context.Context, localPath, mimeType string, kind storage.Kind) (*storage.UploadResult, error) {
	args := m.Called(ctx, localPath, mimeType, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadResult), args.Error(1)
}

func (m *StorageService) Release(ctx context.Context, remoteURL string) error {
	args := m.Called(ctx, remoteURL)
	return args.Error(0)
}
