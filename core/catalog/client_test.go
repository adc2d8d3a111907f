package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"releng-sop/core/reconcile"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_Values(t *testing.T) {
	q := PulpRPM("fedora-24", "beta", []string{"x86_64", "ppc64le"}, []string{"Server"})
	q.ContentCategory = "binary"
	q = q.WithShadow(false)

	values := q.Values()
	assert.Equal(t, "fedora-24", values.Get("release_id"))
	assert.Equal(t, "pulp", values.Get("service"))
	assert.Equal(t, "beta", values.Get("repo_family"))
	assert.Equal(t, "rpm", values.Get("content_format"))
	assert.Equal(t, "binary", values.Get("content_category"))
	assert.Equal(t, []string{"x86_64", "ppc64le"}, values["arch"])
	assert.Equal(t, []string{"Server"}, values["variant_uid"])
	assert.Equal(t, "false", values.Get("shadow"))
	assert.Equal(t, "0", values.Get("page_size"))
}

func TestQuery_ValuesOmitsEmpty(t *testing.T) {
	values := PulpRPM("fedora-24", "beta", nil, nil).Values()
	for _, key := range []string{"arch", "variant_uid", "content_category", "shadow"} {
		_, ok := values[key]
		assert.False(t, ok, key)
	}
}

func TestNewClient_Endpoint(t *testing.T) {
	q := Query{ReleaseID: "fedora-24"}
	for _, base := range []string{"https://pdc.example.com/rest_api/v1", "https://pdc.example.com/rest_api/v1/"} {
		c := NewClient(base, Config{})
		assert.Equal(t, "https://pdc.example.com/rest_api/v1/content-delivery-repos/?page_size=0&release_id=fedora-24", c.Endpoint(q))
	}
}

func TestHTTPClient_ContentDeliveryRepos(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest_api/v1/content-delivery-repos/", r.URL.Path)
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "f24-server-rpms", "arch": "x86_64", "variant_uid": "Server", "content_category": "binary", "shadow": false},
			{"id": 2, "name": "f24-server-debug-rpms", "arch": "x86_64", "variant_uid": "Server", "content_category": "debug", "shadow": false}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/rest_api/v1/", Config{TimeoutSeconds: 5})
	repos, err := client.ContentDeliveryRepos(context.Background(), PulpRPM("fedora-24", "beta", []string{"x86_64"}, nil))
	require.NoError(t, err)

	assert.Equal(t, []reconcile.RepoRecord{
		{Name: "f24-server-rpms", Arch: "x86_64", VariantUID: "Server", ContentCategory: "binary"},
		{Name: "f24-server-debug-rpms", Arch: "x86_64", VariantUID: "Server", ContentCategory: "debug"},
	}, repos)
	assert.Equal(t, "fedora-24", got.Get("release_id"))
	assert.Equal(t, "x86_64", got.Get("arch"))
}

func TestHTTPClient_PagedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count": 1, "next": null, "previous": null, "results": [
			{"name": "f24-client-rpms", "arch": "x86_64", "variant_uid": "Client", "content_category": "binary"}
		]}`))
	}))
	defer srv.Close()

	repos, err := NewClient(srv.URL, Config{}).ContentDeliveryRepos(context.Background(), Query{})
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "f24-client-rpms", repos[0].Name)
}

func TestHTTPClient_Errors(t *testing.T) {
	t.Run("Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail": "Not found."}`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, Config{}).ContentDeliveryRepos(context.Background(), Query{})
		assert.ErrorContains(t, err, "status 404")
	})

	t.Run("Body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, Config{}).ContentDeliveryRepos(context.Background(), Query{})
		assert.ErrorContains(t, err, "failed to decode PDC response")
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewClient("http://127.0.0.1:1", Config{}).ContentDeliveryRepos(ctx, Query{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

type countingClient struct{ calls int }

func (c *countingClient) ContentDeliveryRepos(context.Context, Query) ([]reconcile.RepoRecord, error) {
	c.calls++
	return []reconcile.RepoRecord{{Name: "r"}}, nil
}

func TestCachingClient_Metrics(t *testing.T) {
	hits := testutil.ToFloat64(cacheLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(cacheLookups.WithLabelValues("miss"))

	next := &countingClient{}
	client := NewCachingClient(next, time.Minute)
	q := Query{ReleaseID: "fedora-metrics"}
	_, _ = client.ContentDeliveryRepos(context.Background(), q)
	_, _ = client.ContentDeliveryRepos(context.Background(), q)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, hits+1, testutil.ToFloat64(cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, misses+1, testutil.ToFloat64(cacheLookups.WithLabelValues("miss")))
}

func TestCachingClient_Expires(t *testing.T) {
	now := time.Date(2016, 6, 1, 12, 0, 0, 0, time.UTC)
	next := &countingClient{}
	client := NewCachingClient(next, time.Minute)
	client.now = func() time.Time { return now }

	q := Query{ReleaseID: "fedora-24"}
	_, _ = client.ContentDeliveryRepos(context.Background(), q)
	now = now.Add(30 * time.Second)
	_, _ = client.ContentDeliveryRepos(context.Background(), q)
	assert.Equal(t, 1, next.calls)

	now = now.Add(time.Minute)
	_, _ = client.ContentDeliveryRepos(context.Background(), q)
	assert.Equal(t, 2, next.calls)
}
