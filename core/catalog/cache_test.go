package catalog_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"releng-sop/core/catalog"
	"releng-sop/core/catalog/mocks"
	"releng-sop/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var serverRepos = []reconcile.RepoRecord{
	{Name: "f24-server-rpms", Arch: "x86_64", VariantUID: "Server", ContentCategory: "binary"},
}

func TestCachingClient_ReusesResult(t *testing.T) {
	next := new(mocks.Client)
	next.On("ContentDeliveryRepos", mock.Anything, mock.Anything).Return(serverRepos, nil).Once()

	client := catalog.NewCachingClient(next, time.Minute)
	q := catalog.PulpRPM("fedora-24", "beta", nil, nil)

	for i := 0; i < 3; i++ {
		repos, err := client.ContentDeliveryRepos(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, serverRepos, repos)
	}
	next.AssertNumberOfCalls(t, "ContentDeliveryRepos", 1)
}

func TestCachingClient_KeysByQuery(t *testing.T) {
	next := new(mocks.Client)
	next.On("ContentDeliveryRepos", mock.Anything, mock.Anything).Return(serverRepos, nil)

	client := catalog.NewCachingClient(next, time.Minute)
	_, _ = client.ContentDeliveryRepos(context.Background(), catalog.PulpRPM("fedora-24", "beta", nil, nil))
	_, _ = client.ContentDeliveryRepos(context.Background(), catalog.PulpRPM("fedora-25", "beta", nil, nil))

	next.AssertNumberOfCalls(t, "ContentDeliveryRepos", 2)
}

func TestCachingClient_Disabled(t *testing.T) {
	next := new(mocks.Client)
	next.On("ContentDeliveryRepos", mock.Anything, mock.Anything).Return(serverRepos, nil)

	client := catalog.NewCachingClient(next, 0)
	q := catalog.Query{ReleaseID: "fedora-24"}
	_, _ = client.ContentDeliveryRepos(context.Background(), q)
	_, _ = client.ContentDeliveryRepos(context.Background(), q)

	next.AssertNumberOfCalls(t, "ContentDeliveryRepos", 2)
}

func TestCachingClient_ErrorsAreNotCached(t *testing.T) {
	next := new(mocks.Client)
	next.On("ContentDeliveryRepos", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
	next.On("ContentDeliveryRepos", mock.Anything, mock.Anything).Return(serverRepos, nil).Once()

	client := catalog.NewCachingClient(next, time.Minute)
	q := catalog.Query{ReleaseID: "fedora-24"}

	_, err := client.ContentDeliveryRepos(context.Background(), q)
	assert.Error(t, err)

	repos, err := client.ContentDeliveryRepos(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, repos, 1)
}

func TestCachingClient_Invalidate(t *testing.T) {
	next := new(mocks.Client)
	next.On("ContentDeliveryRepos", mock.Anything, mock.Anything).Return(serverRepos, nil)

	client := catalog.NewCachingClient(next, time.Minute)
	q := catalog.Query{ReleaseID: "fedora-24"}
	_, _ = client.ContentDeliveryRepos(context.Background(), q)
	client.Invalidate()
	_, _ = client.ContentDeliveryRepos(context.Background(), q)

	next.AssertNumberOfCalls(t, "ContentDeliveryRepos", 2)
}

func TestCachingClient_Concurrent(t *testing.T) {
	next := new(mocks.Client)
	next.On("ContentDeliveryRepos", mock.Anything, mock.Anything).Return(serverRepos, nil)

	client := catalog.NewCachingClient(next, time.Minute)
	q := catalog.Query{ReleaseID: "fedora-24"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repos, err := client.ContentDeliveryRepos(context.Background(), q)
			assert.NoError(t, err)
			assert.Len(t, repos, 1)
		}()
	}
	wg.Wait()

	next.AssertNumberOfCalls(t, "ContentDeliveryRepos", 1)
}

func TestConfig_CacheTTL(t *testing.T) {
	assert.Equal(t, 30*time.Second, catalog.Config{CacheTTLSeconds: 30}.CacheTTL())
	assert.Equal(t, time.Duration(0), catalog.Config{CacheTTLSeconds: -1}.CacheTTL())
}
