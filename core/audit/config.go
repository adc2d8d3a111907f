package audit

import (
	"releng-sop/core/database"
	"releng-sop/core/storage"
)

// Config holds configuration for the run audit trail.
type Config struct {
	// Enabled turns recording on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Storage configures the object storage sink; it is used when credentials are set.
	Storage storage.Config `mapstructure:"storage"`
	// Database configures the SQL sink.
	Database database.Config `mapstructure:"database"`
	// DatabaseEnabled turns the SQL sink on.
	DatabaseEnabled bool `mapstructure:"database_enabled" default:"true"`
}
