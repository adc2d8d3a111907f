// Package config provides settings management for the releng-sop tools.
//
// It utilizes Viper for loading settings from environment variables (prefixed
// with RELENG_SOP_) and an optional .env file loaded through godotenv.
//
// # Configuration Structure
//
//   - Log: logging level and format
//   - Documents: search roots for environment/release/pulp-admin documents
//   - Catalog: PDC client timeout
//   - Audit: run audit trail (object storage and SQL database sinks)
//   - Server: preview server port and API key
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Log.Level)
package config
