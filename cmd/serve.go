package cmd

import (
	"fmt"

	"releng-sop/core/catalog"
	"releng-sop/core/config"
	"releng-sop/core/document"
	"releng-sop/core/loader"
	"releng-sop/core/logger"
	"releng-sop/core/middleware/auth"
	"releng-sop/core/middleware/rayid"
	"releng-sop/feature/pulp"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveEnv string

// serveCmd starts the read-only plan preview server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve read-only previews of the pulp workflows",
	Long: `Starts an HTTP server answering what pulp-clone-repos and pulp-clear-repos
would do for one environment. The server never runs a command.

Endpoints:
  GET /metrics
  GET /clone-plan?from=&to=&repo_family=[&arch=][&variant=][&content_category=][&skip_repo_check=true]
  GET /clear-plan?release=&repo_family=[&arch=][&variant=]`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveEnv, "env", "default", "Environment whose PDC and Pulp settings are previewed.")
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if debug {
		cfg.Log.Level = "debug"
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	documents := document.NewLoader(cfg.Documents.SearchRoots())
	env, err := documents.Environment(serveEnv)
	if err != nil {
		return err
	}
	pulpCfg, err := documents.PulpAdmin(env.PulpServer)
	if err != nil {
		return err
	}

	client := catalog.NewCachingClient(catalog.NewClient(env.PDCServer, cfg.Catalog), cfg.Catalog.CacheTTL())
	handler := pulp.NewHandler(
		pulp.NewClearer(env, pulpCfg, client, logg),
		pulp.NewCloner(env, pulpCfg, client, logg),
		documents,
		logg,
	)

	app := newServer(cfg, logg)

	mgr := loader.NewManager(logg)
	mgr.Register(pulp.NewFeature(handler, true))
	if _, err := mgr.LoadAll(app); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server",
			zap.String("port", cfg.Server.Port),
			zap.String("env", env.Name),
			zap.Bool("auth", cfg.Server.AuthEnabled()),
		)
		errCh <- app.Listen(cfg.Server.Address())
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logg.Info("Shutting down server...")
	return app.Shutdown()
}

// newServer creates the fiber app with request ids, request logging and auth.
func newServer(cfg *config.Config, logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           cfg.Server.ReadTimeout(),
	})

	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}
