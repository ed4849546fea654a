package mocks

import (
	"context"

	"docdraft/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Submit(ctx context.Context, d model.Draft) (*model.Receipt, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Receipt), args.Error(1)
}

type MockCatalogSource struct {
	mock.Mock
}

func (m *MockCatalogSource) Catalog(ctx context.Context, kind string) ([]model.CatalogItem, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CatalogItem), args.Error(1)
}
