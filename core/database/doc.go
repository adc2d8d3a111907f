// Package database handles database connections for the audit trail.
//
// It provides a wrapper around GORM to configure either a MySQL server shared by
// the release engineering team or a local SQLite file for a single operator.
//
// # Usage
//
//	db, err := database.Connect(cfg.Audit.Database)
//	if err != nil {
//	    return err
//	}
package database
