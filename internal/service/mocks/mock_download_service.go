package mocks

import (
	"context"

	"docdraft/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockDownloadService struct {
	mock.Mock
}

func (m *MockDownloadService) List(ctx context.Context) ([]model.DownloadedDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DownloadedDocument), args.Error(1)
}

func (m *MockDownloadService) Add(ctx context.Context, doc model.DownloadedDocument) (*model.DownloadedDocument, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DownloadedDocument), args.Error(1)
}

func (m *MockDownloadService) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDownloadService) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
