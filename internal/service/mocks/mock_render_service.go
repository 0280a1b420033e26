package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"campusdocs/internal/model"
	"campusdocs/internal/service"
)

type MockRenderService struct {
	mock.Mock
}

func (m *MockRenderService) Certificate(ctx context.Context, req model.CertificateRequest) (*model.RenderedDocument, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RenderedDocument), args.Error(1)
}

func (m *MockRenderService) BulkCertificates(ctx context.Context, reqs []model.CertificateRequest) ([]service.ItemResult, error) {
	args := m.Called(ctx, reqs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ItemResult), args.Error(1)
}

func (m *MockRenderService) IDCards(ctx context.Context, reqs []model.IDCardRequest) ([]service.ItemResult, error) {
	args := m.Called(ctx, reqs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ItemResult), args.Error(1)
}

func (m *MockRenderService) Invitation(ctx context.Context, req model.InvitationRequest) (*model.RenderedDocument, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RenderedDocument), args.Error(1)
}
