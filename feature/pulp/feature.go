package pulp

import "github.com/gofiber/fiber/v2"

// Feature mounts the plan preview routes.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature wraps handler as a loadable feature.
func NewFeature(handler *Handler, enabled bool) *Feature {
	return &Feature{handler: handler, enabled: enabled}
}

// Name implements loader.Feature.
func (f *Feature) Name() string {
	return "pulp"
}

// IsEnabled implements loader.Feature.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load implements loader.Feature.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
