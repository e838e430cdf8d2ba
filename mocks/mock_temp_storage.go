package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"print4me/internal/port"
)

// MockTempStorage is a mock implementation of port.TempStorage.
type MockTempStorage struct {
	mock.Mock
}

func (m *MockTempStorage) Put(ctx context.Context, input port.PutInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockTempStorage) Read(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockTempStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
