// Package loader mounts features on the preview server.
//
// Each feature implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps the registry and loads the enabled features in registration
// order with LoadAll, stopping at the first failure.
package loader
