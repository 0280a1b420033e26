package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"campusdocs/internal/model"
	"campusdocs/internal/repository"
)

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *model.RenderedDocument) (*model.RenderedDocument, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RenderedDocument), args.Error(1)
}

func (m *MockDocumentRepository) FindByID(ctx context.Context, id string) (*model.RenderedDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RenderedDocument), args.Error(1)
}

func (m *MockDocumentRepository) List(ctx context.Context, filter repository.DocumentFilter, pq repository.PageQuery) (*repository.PageResult[model.RenderedDocument], error) {
	args := m.Called(ctx, filter, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.RenderedDocument]), args.Error(1)
}

func (m *MockDocumentRepository) ListCreatedBefore(ctx context.Context, before time.Time, limit int) ([]model.RenderedDocument, error) {
	args := m.Called(ctx, before, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RenderedDocument), args.Error(1)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
