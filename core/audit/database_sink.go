package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// RunRow is the SQL representation of a Run.
type RunRow struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Workflow    string    `gorm:"size:64;index"`
	Environment string    `gorm:"size:64"`
	Releases    string    `gorm:"size:255"`
	RepoFamily  string    `gorm:"size:64"`
	Commit      bool
	Completed   int
	Commands    string `gorm:"type:text"`
	Summary     string `gorm:"type:text"`
	Error       string `gorm:"type:text"`
	StartedAt   time.Time `gorm:"index"`
	FinishedAt  time.Time
}

// TableName overrides the table name used by RunRow.
func (RunRow) TableName() string {
	return "releng_runs"
}

// DatabaseSink inserts each run as a row.
type DatabaseSink struct {
	db *gorm.DB
}

// NewDatabaseSink creates a sink over db.
func NewDatabaseSink(db *gorm.DB) *DatabaseSink {
	return &DatabaseSink{db: db}
}

// Migrate creates or updates the runs table.
func (s *DatabaseSink) Migrate() error {
	if err := s.db.AutoMigrate(&RunRow{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", RunRow{}.TableName(), err)
	}
	return nil
}

// Name implements Sink.
func (s *DatabaseSink) Name() string {
	return "database"
}

// Record implements Sink.
func (s *DatabaseSink) Record(ctx context.Context, run *Run) error {
	row, err := toRow(run)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert run %s: %w", run.ID, err)
	}
	return nil
}

func toRow(run *Run) (*RunRow, error) {
	releases, err := json.Marshal(run.Releases)
	if err != nil {
		return nil, err
	}
	commands, err := json.Marshal(run.Commands)
	if err != nil {
		return nil, err
	}

	row := &RunRow{
		ID:          run.ID,
		Workflow:    run.Workflow,
		Environment: run.Environment,
		Releases:    string(releases),
		RepoFamily:  run.RepoFamily,
		Commit:      run.Commit,
		Completed:   run.Completed,
		Commands:    string(commands),
		Error:       run.Error,
		StartedAt:   run.StartedAt,
		FinishedAt:  run.FinishedAt,
	}
	if run.Summary != nil {
		summary, err := json.Marshal(run.Summary)
		if err != nil {
			return nil, err
		}
		row.Summary = string(summary)
	}
	return row, nil
}
