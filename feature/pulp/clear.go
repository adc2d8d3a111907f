package pulp

import (
	"context"
	"fmt"

	"releng-sop/core/catalog"
	"releng-sop/core/command"
	"releng-sop/core/document"
	"releng-sop/core/executor"

	"go.uber.org/zap"
)

// ClearRequest selects the repositories to empty.
type ClearRequest struct {
	Release    *document.Release
	RepoFamily string
	Arches     []string
	Variants   []string
}

// ClearPlan is a resolved clear request.
type ClearPlan struct {
	Environment *document.Environment
	Pulp        *document.PulpAdmin
	Request     ClearRequest
	Repos       []string
}

// Clearer removes every RPM from the repositories of a release.
type Clearer struct {
	env     *document.Environment
	pulp    *document.PulpAdmin
	catalog catalog.Client
	logger  *zap.Logger
}

// NewClearer creates a clearer for env using the pulp-admin config pulp.
func NewClearer(env *document.Environment, pulp *document.PulpAdmin, client catalog.Client, logger *zap.Logger) *Clearer {
	return &Clearer{env: env, pulp: pulp, catalog: client, logger: logger}
}

// Plan looks up the repositories matched by req.
func (c *Clearer) Plan(ctx context.Context, req ClearRequest) (*ClearPlan, error) {
	if req.RepoFamily == DistRepoFamily {
		return nil, fmt.Errorf("%w: REPO_FAMILY must never be %q", ErrUsage, DistRepoFamily)
	}

	query := catalog.PulpRPM(req.Release.ID, req.RepoFamily, req.Arches, req.Variants)
	records, err := c.catalog.ContentDeliveryRepos(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query repos of %s: %w", req.Release.ID, err)
	}

	repos := make([]string, 0, len(records))
	for _, r := range records {
		repos = append(repos, r.Name)
	}

	c.logger.Debug("Repos to clear",
		zap.String("release_id", req.Release.ID),
		zap.String("repo_family", req.RepoFamily),
		zap.Strings("repos", repos),
	)

	return &ClearPlan{Environment: c.env, Pulp: c.pulp, Request: req, Repos: repos}, nil
}

// Details renders what the clear is going to do.
func (p *ClearPlan) Details(commit bool) string {
	var d details
	d.WriteString("Pulp clear repos\n")
	d.field("env name", p.Environment.Name)
	d.field("env config", p.Environment.Path)
	d.field("release source", p.Request.Release.Path)
	d.field("PDC server", p.Environment.PDCServer)
	d.field("release_id", p.Request.Release.ID)
	d.field("pulp config", p.Pulp.Name)
	d.field("pulp config path", p.Pulp.Path)
	d.field("pulp user", p.Pulp.User)
	d.field("repo_family", p.Request.RepoFamily)
	d.list("arches", p.Request.Arches)
	d.list("variants", p.Request.Variants)
	d.WriteString(" * repos:\n")
	if len(p.Repos) == 0 {
		d.WriteString(noRepos)
	}
	for _, repo := range p.Repos {
		fmt.Fprintf(&d, "     %s\n", repo)
	}
	d.testMode(commit)
	return d.String()
}

// Commands returns one clear invocation per repository.
func (p *ClearPlan) Commands(password string, commit bool) []command.Invocation {
	invocations := make([]command.Invocation, 0, len(p.Repos))
	for _, repo := range p.Repos {
		invocations = append(invocations, command.ClearRepo(p.Pulp, repo, password, commit))
	}
	return invocations
}

// Run prints the plan and its commands. Commands only execute when committing.
// It returns the number of commands handled.
func (c *Clearer) Run(ctx context.Context, plan *ClearPlan, runner *executor.Runner, password string, commit bool) (int, error) {
	return runner.RunAll(ctx, plan.Commands(password, commit), commit)
}
