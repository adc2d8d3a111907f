package audit

import (
	"context"

	"go.uber.org/zap"
)

// Sink persists run records.
type Sink interface {
	Name() string
	Record(ctx context.Context, run *Run) error
}

// Recorder fans a run record out to every sink.
// Sink failures are logged; they never fail the workflow that already ran.
type Recorder struct {
	sinks  []Sink
	logger *zap.Logger
}

// NewRecorder creates a recorder. With no sinks it only logs.
func NewRecorder(logger *zap.Logger, sinks ...Sink) *Recorder {
	return &Recorder{sinks: sinks, logger: logger}
}

// Record writes run to every sink and returns how many accepted it.
func (r *Recorder) Record(ctx context.Context, run *Run) int {
	stored := 0
	for _, sink := range r.sinks {
		if err := sink.Record(ctx, run); err != nil {
			r.logger.Warn("Failed to record run",
				zap.String("sink", sink.Name()),
				zap.String("run_id", run.ID),
				zap.Error(err),
			)
			continue
		}
		stored++
	}

	r.logger.Debug("Run recorded",
		zap.String("run_id", run.ID),
		zap.String("workflow", run.Workflow),
		zap.Bool("commit", run.Commit),
		zap.Int("sinks", stored),
	)
	return stored
}
