package pulp

import (
	"errors"

	"releng-sop/core/command"
	"releng-sop/core/document"
	"releng-sop/core/logger"
	"releng-sop/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	workflowClone = "clone"
	workflowClear = "clear"
)

// Releases resolves release documents by id.
type Releases interface {
	Release(id string) (*document.Release, error)
}

// Handler serves read-only previews of the pulp workflows.
// It plans with the catalog but never runs a command.
type Handler struct {
	clearer  *Clearer
	cloner   *Cloner
	releases Releases
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(clearer *Clearer, cloner *Cloner, releases Releases, logger *zap.Logger) *Handler {
	return &Handler{clearer: clearer, cloner: cloner, releases: releases, logger: logger}
}

// RegisterRoutes registers the preview routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/clone-plan", h.HandleClonePlan)
	app.Get("/clear-plan", h.HandleClearPlan)
}

// HandleClonePlan returns the repositories a clone between two releases would touch
// and the commands it would run when committing.
func (h *Handler) HandleClonePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	from, to, family := c.Query("from"), c.Query("to"), c.Query("repo_family")
	if from == "" || to == "" || family == "" {
		observePlan(workflowClone, fiber.StatusBadRequest)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from, to and repo_family are required"})
	}

	fromRelease, err := h.releases.Release(from)
	if err != nil {
		return h.fail(c, l, workflowClone, err)
	}
	toRelease, err := h.releases.Release(to)
	if err != nil {
		return h.fail(c, l, workflowClone, err)
	}

	plan, err := h.cloner.Plan(c.Context(), CloneRequest{
		From:            fromRelease,
		To:              toRelease,
		RepoFamily:      family,
		Arches:          queryList(c, "arch"),
		Variants:        queryList(c, "variant"),
		ContentCategory: c.Query("content_category"),
		SkipRepoCheck:   c.QueryBool("skip_repo_check", false),
	})
	if err != nil {
		return h.fail(c, l, workflowClone, err)
	}

	l.Info("Clone plan served", zap.String("from", from), zap.String("to", to), zap.Int("cloned", len(plan.Result.Cloned)))

	observePlan(workflowClone, fiber.StatusOK)
	return c.JSON(fiber.Map{
		"from":                from,
		"to":                  to,
		"repo_family":         family,
		"summary":             plan.Result.Summary(),
		"cloned":              plan.Result.Cloned,
		"identical":           plan.Result.Identical,
		"missing_destination": plan.Result.MissingDestination,
		"missing_source":      plan.Result.MissingSource,
		"commands":            printable(plan.Commands("", true)),
	})
}

// HandleClearPlan returns the repositories a clear would empty
// and the commands it would run when committing.
func (h *Handler) HandleClearPlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	id, family := c.Query("release"), c.Query("repo_family")
	if id == "" || family == "" {
		observePlan(workflowClear, fiber.StatusBadRequest)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "release and repo_family are required"})
	}

	release, err := h.releases.Release(id)
	if err != nil {
		return h.fail(c, l, workflowClear, err)
	}

	plan, err := h.clearer.Plan(c.Context(), ClearRequest{
		Release:    release,
		RepoFamily: family,
		Arches:     queryList(c, "arch"),
		Variants:   queryList(c, "variant"),
	})
	if err != nil {
		return h.fail(c, l, workflowClear, err)
	}

	l.Info("Clear plan served", zap.String("release", id), zap.Int("repos", len(plan.Repos)))

	observePlan(workflowClear, fiber.StatusOK)
	return c.JSON(fiber.Map{
		"release":     id,
		"repo_family": family,
		"repos":       plan.Repos,
		"commands":    printable(plan.Commands("", true)),
	})
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, workflow string, err error) error {
	status := statusFor(err)
	observePlan(workflow, status)
	if status >= fiber.StatusInternalServerError {
		l.Error("Plan failed", zap.Error(err))
	} else {
		l.Warn("Plan rejected", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	var dupErr *reconcile.DuplicateKeyError
	var cardErr *reconcile.CardinalityMismatchError
	switch {
	case document.IsNotFound(err):
		return fiber.StatusNotFound
	case errors.Is(err, ErrUsage), errors.As(err, &dupErr), errors.As(err, &cardErr):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusBadGateway
	}
}

func queryList(c *fiber.Ctx, key string) []string {
	var values []string
	for _, v := range c.Context().QueryArgs().PeekMulti(key) {
		values = append(values, string(v))
	}
	return values
}

func printable(invocations []command.Invocation) []string {
	lines := make([]string, 0, len(invocations))
	for _, inv := range invocations {
		lines = append(lines, inv.String())
	}
	return lines
}
