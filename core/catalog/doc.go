// Package catalog is a thin client for the product definition center (PDC).
//
// Only the content-delivery-repos resource is used. Queries request the whole
// result set in a single page and the response is trusted for shape.
//
// CachingClient wraps any Client with a TTL cache keyed by the encoded query.
// The preview server uses it; the one-shot workflows query PDC directly.
//
// # Usage
//
//	client := catalog.NewClient(env.PDCServer, cfg.Catalog)
//	repos, err := client.ContentDeliveryRepos(ctx, catalog.PulpRPM("fedora-24", "beta", nil, nil))
package catalog
