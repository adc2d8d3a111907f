// Package audit keeps a trail of workflow runs.
//
// Each run (dry or committed) produces a Run record holding the printable
// commands, the reconciliation summary and the outcome. The Recorder hands the
// record to every configured Sink: a JSON object in S3/MinIO and/or a row in a
// SQL database. Recording happens after the workflow finished and never changes
// its outcome.
package audit
