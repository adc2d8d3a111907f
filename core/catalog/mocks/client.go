package mocks

import (
	"context"

	"releng-sop/core/catalog"
	"releng-sop/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of catalog.Client
type Client struct {
	mock.Mock
}

func (m *Client) ContentDeliveryRepos(ctx context.Context, query catalog.Query) ([]reconcile.RepoRecord, error) {
	args := m.Called(ctx, query)
	if repos, ok := args.Get(0).([]reconcile.RepoRecord); ok {
		return repos, args.Error(1)
	}
	return nil, args.Error(1)
}
