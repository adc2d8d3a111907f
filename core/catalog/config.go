package catalog

import "time"

// Config holds configuration for the PDC client.
type Config struct {
	// TimeoutSeconds bounds a single catalog request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
	// CacheTTLSeconds is how long the preview server reuses a query result. 0 disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"30"`
}

// CacheTTL returns the cache lifetime.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
