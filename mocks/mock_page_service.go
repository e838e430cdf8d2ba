package mocks

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"print4me/internal/domain"
)

// MockPageService is a mock implementation of service.PageService.
type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) CountOne(ctx context.Context, header *multipart.FileHeader) (*domain.FilePageCount, error) {
	args := m.Called(ctx, header)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FilePageCount), args.Error(1)
}

func (m *MockPageService) CountMany(ctx context.Context, headers []*multipart.FileHeader) ([]domain.FilePageCount, int, error) {
	args := m.Called(ctx, headers)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.FilePageCount), args.Int(1), args.Error(2)
}
