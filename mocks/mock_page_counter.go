package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"print4me/internal/port"
)

// MockPageCounter is a mock implementation of port.PageCounter.
type MockPageCounter struct {
	mock.Mock
}

func (m *MockPageCounter) CountPages(ctx context.Context, input port.CountInput) int {
	args := m.Called(ctx, input)
	return args.Int(0)
}

func (m *MockPageCounter) CountAll(ctx context.Context, inputs []port.CountInput) []int {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]int)
}
