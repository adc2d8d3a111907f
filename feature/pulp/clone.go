package pulp

import (
	"context"
	"fmt"
	"io"

	"releng-sop/core/catalog"
	"releng-sop/core/command"
	"releng-sop/core/document"
	"releng-sop/core/executor"
	"releng-sop/core/reconcile"

	"go.uber.org/zap"
)

// CloneRequest selects the repositories to clone between two releases.
type CloneRequest struct {
	From            *document.Release
	To              *document.Release
	RepoFamily      string
	Arches          []string
	Variants        []string
	ContentCategory string
	SkipRepoCheck   bool
}

// ClonePlan is a reconciled clone request.
type ClonePlan struct {
	Environment *document.Environment
	Pulp        *document.PulpAdmin
	Request     CloneRequest
	Source      []reconcile.RepoRecord
	Destination []reconcile.RepoRecord
	Result      *reconcile.Result
}

// Cloner copies repository content from one release to another.
type Cloner struct {
	env     *document.Environment
	pulp    *document.PulpAdmin
	catalog catalog.Client
	logger  *zap.Logger
}

// NewCloner creates a cloner for env using the pulp-admin config pulp.
func NewCloner(env *document.Environment, pulp *document.PulpAdmin, client catalog.Client, logger *zap.Logger) *Cloner {
	return &Cloner{env: env, pulp: pulp, catalog: client, logger: logger}
}

func (c *Cloner) query(req CloneRequest, releaseID string) catalog.Query {
	q := catalog.PulpRPM(releaseID, req.RepoFamily, req.Arches, req.Variants)
	q.ContentCategory = req.ContentCategory
	return q.WithShadow(false)
}

// Plan queries both releases and pairs up their repositories.
func (c *Cloner) Plan(ctx context.Context, req CloneRequest) (*ClonePlan, error) {
	if req.From.ID == req.To.ID {
		return nil, fmt.Errorf("%w: source and destination release id are the same (%s)", ErrUsage, req.From.ID)
	}

	source, err := c.catalog.ContentDeliveryRepos(ctx, c.query(req, req.From.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to query repos of %s: %w", req.From.ID, err)
	}
	dest, err := c.catalog.ContentDeliveryRepos(ctx, c.query(req, req.To.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to query repos of %s: %w", req.To.ID, err)
	}

	if (len(source) == 0) != (len(dest) == 0) {
		c.logger.Warn("One release has no matching repos, nothing will be cloned",
			zap.String("from", req.From.ID),
			zap.Int("from_repos", len(source)),
			zap.String("to", req.To.ID),
			zap.Int("to_repos", len(dest)),
		)
		source, dest = nil, nil
	}

	result, err := reconcile.Reconcile(source, dest, reconcile.Options{SkipCardinalityCheck: req.SkipRepoCheck})
	if err != nil {
		return nil, err
	}

	summary := result.Summary()
	c.logger.Debug("Repos reconciled",
		zap.String("from", req.From.ID),
		zap.String("to", req.To.ID),
		zap.Int("cloned", summary.Cloned),
		zap.Int("identical", summary.Identical),
		zap.Int("missing_destination", summary.MissingDestination),
		zap.Int("missing_source", summary.MissingSource),
	)

	return &ClonePlan{
		Environment: c.env,
		Pulp:        c.pulp,
		Request:     req,
		Source:      source,
		Destination: dest,
		Result:      result,
	}, nil
}

// Details renders what the clone is going to do.
func (p *ClonePlan) Details(commit bool) string {
	var d details
	d.WriteString("Pulp clone repos\n")
	d.field("env name", p.Environment.Name)
	d.field("env config", p.Environment.Path)
	d.field("release source", p.Request.From.Path)
	d.field("PDC server", p.Environment.PDCServer)
	d.field("release_id from", p.Request.From.ID)
	d.field("release_id to", p.Request.To.ID)
	if p.Request.ContentCategory != "" {
		d.field("content_category", p.Request.ContentCategory)
	}
	d.field("content_format", catalog.ContentFormatRPM)
	d.field("pulp config", p.Pulp.Name)
	d.field("pulp config path", p.Pulp.Path)
	d.field("pulp user", p.Pulp.User)
	d.field("repo_family", p.Request.RepoFamily)
	d.list("arches", p.Request.Arches)
	d.list("variants", p.Request.Variants)
	d.WriteString(" * repos:\n")
	if len(p.Result.Cloned) == 0 {
		d.WriteString(noRepos)
	} else {
		writePairTable(&d, p.Result.Cloned)
	}
	d.testMode(commit)
	return d.String()
}

// Commands returns one clone invocation per pair that differs by name.
func (p *ClonePlan) Commands(password string, commit bool) []command.Invocation {
	invocations := make([]command.Invocation, 0, len(p.Result.Cloned))
	for _, pair := range p.Result.Cloned {
		invocations = append(invocations, command.CloneRepo(p.Pulp, pair, password, commit))
	}
	return invocations
}

// Skipped lists the repositories left alone, one message per repository.
func (p *ClonePlan) Skipped() []string {
	var lines []string
	for _, pair := range p.Result.Identical {
		lines = append(lines, fmt.Sprintf("Source and destination is the same. Cloning %q skipped.", pair.From))
	}
	for _, name := range p.Result.MissingDestination {
		lines = append(lines, fmt.Sprintf("Missing destination repo. Cloning from %q skipped.", name))
	}
	for _, name := range p.Result.MissingSource {
		lines = append(lines, fmt.Sprintf("Missing source repo. Cloning to %q skipped.", name))
	}
	return lines
}

// Run executes every clone invocation and then reports the skipped repositories.
// Dry-run invocations are echo commands, so they are executed too.
// It returns the number of commands that completed.
func (c *Cloner) Run(ctx context.Context, plan *ClonePlan, runner *executor.Runner, out io.Writer, password string, commit bool) (int, error) {
	done, err := runner.RunAll(ctx, plan.Commands(password, commit), true)
	if err != nil {
		return done, err
	}

	for _, line := range plan.Skipped() {
		fmt.Fprintln(out, line)
	}
	return done, nil
}
