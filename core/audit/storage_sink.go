package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"releng-sop/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageSink writes each run as a JSON object.
type StorageSink struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageSink creates a sink writing under prefix in bucket.
func NewStorageSink(client storage.Client, bucket, prefix string) *StorageSink {
	return &StorageSink{client: client, bucket: bucket, prefix: prefix}
}

// Name implements Sink.
func (s *StorageSink) Name() string {
	return "storage"
}

// ObjectName returns the key a run is stored under:
// <prefix>/<workflow>/<YYYY-MM-DD>/<id>.json
func (s *StorageSink) ObjectName(run *Run) string {
	return path.Join(s.prefix, run.Workflow, run.StartedAt.Format("2006-01-02"), run.ID+".json")
}

// Record implements Sink.
func (s *StorageSink) Record(ctx context.Context, run *Run) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.ObjectName(run), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to upload run %s: %w", run.ID, err)
	}
	return nil
}
