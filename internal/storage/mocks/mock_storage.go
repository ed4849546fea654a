package mocks

import (
	"context"
	"time"

	"docdraft/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockMediaLibrary struct {
	mock.Mock
}

func (m *MockMediaLibrary) List(ctx context.Context, prefix string) ([]storage.ObjectInfo, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ObjectInfo), args.Error(1)
}

func (m *MockMediaLibrary) Stat(ctx context.Context, key string) (storage.ObjectInfo, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(storage.ObjectInfo), args.Error(1)
}

func (m *MockMediaLibrary) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}
