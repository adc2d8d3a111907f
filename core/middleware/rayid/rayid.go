package rayid

import (
	"releng-sop/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Header is the response header echoing the ray id.
const Header = "X-Ray-ID"

// New returns a middleware assigning every request a ray id.
// An incoming X-Ray-ID header is kept.
func New() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     Header,
		Generator:  uuid.NewString,
		ContextKey: logger.RayIDKey,
	})
}
