package mocks

import (
	"context"

	"releng-sop/core/executor"

	"github.com/stretchr/testify/mock"
)

// Executor is a mock implementation of executor.Executor
type Executor struct {
	mock.Mock
}

func (m *Executor) Run(ctx context.Context, argv []string) (*executor.Result, error) {
	args := m.Called(ctx, argv)
	if result, ok := args.Get(0).(*executor.Result); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}
