package catalog

import (
	"catalog-importer/core/logger"
	"catalog-importer/feature/catalog/feed"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog imports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog import routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/import")
	group.Post("/catalog", h.HandleImportCatalog)
}

// HandleImportCatalog applies one catalog feed page and returns the
// external-to-internal id mappings for every applied record. Skipped
// records are listed in the response; a store failure returns 500 and
// the upstream source retries from last_id of the previous page.
func (h *Handler) HandleImportCatalog(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	payload := new(feed.Payload)
	if err := c.BodyParser(payload); err != nil {
		l.Warn("Catalog payload rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := h.service.Import(c.Context(), payload)
	if err != nil {
		l.Error("Catalog import failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}
