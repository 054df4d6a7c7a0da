package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the request's RayID.
const Header = "X-Ray-Id"

// New returns a middleware that assigns a RayID to every request.
// An incoming X-Ray-Id header is honored so upstream callers can
// propagate their own correlation id.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
