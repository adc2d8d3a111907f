package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"releng-sop/core/audit"
	"releng-sop/core/config"
	"releng-sop/core/database"
	"releng-sop/core/document"
	"releng-sop/core/executor"
	"releng-sop/core/logger"
	"releng-sop/core/storage"

	"go.uber.org/zap"
)

// runtime carries what every workflow command needs.
type runtime struct {
	cfg       *config.Config
	logger    *zap.Logger
	documents *document.Loader
	env       *document.Environment
	run       *audit.Run
	recorder  *audit.Recorder
}

// bootstrap loads settings, starts the run record and resolves the environment.
// A missing or invalid environment is recorded like any later failure.
func bootstrap(ctx context.Context, workflow string, flags workflowFlags, releases ...string) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if debug {
		cfg.Log.Level = "debug"
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	run := audit.NewRun(workflow, flags.env, releases...)
	run.Commit = flags.commit
	l = logger.WithRunID(l, run.ID)

	rt := &runtime{
		cfg:       cfg,
		logger:    l,
		documents: document.NewLoader(cfg.Documents.SearchRoots()),
		run:       run,
		recorder:  openRecorder(ctx, cfg.Audit, flags.commit, l),
	}

	env, err := rt.documents.Environment(flags.env)
	if err != nil {
		return nil, rt.finish(ctx, err)
	}
	rt.env = env

	l.Debug("Environment loaded",
		zap.String("workflow", workflow),
		zap.String("env", env.Name),
		zap.String("path", env.Path),
	)

	return rt, nil
}

// runner prints commands to out and streams their output there too.
func (rt *runtime) runner(out, errOut io.Writer) *executor.Runner {
	return executor.NewRunner(&executor.Exec{Stdout: out, Stderr: errOut}, out, rt.logger)
}

// finish closes the run record and hands it to the audit trail.
func (rt *runtime) finish(ctx context.Context, err error) error {
	rt.run.Finish(err)
	rt.recorder.Record(context.WithoutCancel(ctx), rt.run)
	if err == nil {
		rt.logger.Info("Workflow finished",
			zap.String("workflow", rt.run.Workflow),
			zap.Bool("commit", rt.run.Commit),
			zap.Int("completed", rt.run.Completed),
		)
	}
	_ = rt.logger.Sync()
	return err
}

// openRecorder builds the audit recorder. Dry runs get no sinks, so they touch
// neither storage nor the database. Sinks that cannot be reached are skipped
// with a warning; auditing never blocks a workflow.
func openRecorder(ctx context.Context, cfg audit.Config, commit bool, l *zap.Logger) *audit.Recorder {
	if !cfg.Enabled || !commit {
		return audit.NewRecorder(l)
	}

	var sinks []audit.Sink

	if cfg.Storage.Enabled() {
		if sink, err := openStorageSink(ctx, cfg.Storage); err != nil {
			l.Warn("Audit storage unavailable", zap.Error(err))
		} else {
			sinks = append(sinks, sink)
		}
	}

	if cfg.DatabaseEnabled {
		if sink, err := openDatabaseSink(cfg.Database); err != nil {
			l.Warn("Audit database unavailable", zap.Error(err))
		} else {
			sinks = append(sinks, sink)
		}
	}

	return audit.NewRecorder(l, sinks...)
}

func openStorageSink(ctx context.Context, cfg storage.Config) (audit.Sink, error) {
	client, err := storage.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region); err != nil {
		return nil, err
	}

	return audit.NewStorageSink(client, cfg.Bucket, cfg.Prefix), nil
}

func openDatabaseSink(cfg database.Config) (audit.Sink, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	sink := audit.NewDatabaseSink(db)
	if err := sink.Migrate(); err != nil {
		return nil, err
	}
	return sink, nil
}
