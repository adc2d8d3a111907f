package audit

import (
	"time"

	"releng-sop/core/reconcile"

	"github.com/google/uuid"
)

// Workflow names.
const (
	WorkflowCloneTag   = "koji-clone-tag-for-release-milestone"
	WorkflowClearRepos = "pulp-clear-repos"
	WorkflowCloneRepos = "pulp-clone-repos"
)

// Run is the audit record of one workflow execution.
type Run struct {
	ID          string             `json:"id"`
	Workflow    string             `json:"workflow"`
	Environment string             `json:"environment"`
	Releases    []string           `json:"releases"`
	RepoFamily  string             `json:"repo_family,omitempty"`
	Commit      bool               `json:"commit"`
	Commands    []string           `json:"commands"`
	Completed   int                `json:"completed"`
	Summary     *reconcile.Summary `json:"summary,omitempty"`
	Error       string             `json:"error,omitempty"`
	StartedAt   time.Time          `json:"started_at"`
	FinishedAt  time.Time          `json:"finished_at"`
}

// NewRun starts a record with a fresh id.
func NewRun(workflow, environment string, releases ...string) *Run {
	return &Run{
		ID:          uuid.NewString(),
		Workflow:    workflow,
		Environment: environment,
		Releases:    releases,
		StartedAt:   time.Now().UTC(),
	}
}

// Finish stamps the end time and the error, if any.
func (r *Run) Finish(err error) {
	r.FinishedAt = time.Now().UTC()
	if err != nil {
		r.Error = err.Error()
	}
}

// Succeeded reports whether the run ended without error.
func (r *Run) Succeeded() bool {
	return r.Error == ""
}
