package clients

import (
	"catalog-importer/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for client directory imports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the clients import route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/import")
	group.Post("/clients", h.HandleImportClients)
}

// HandleImportClients applies one client directory page.
func (h *Handler) HandleImportClients(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	dir := new(Directory)
	if err := c.BodyParser(dir); err != nil {
		l.Warn("Clients payload rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := h.service.Import(c.Context(), dir)
	if err != nil {
		l.Error("Clients import failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}
