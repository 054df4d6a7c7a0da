package catalog

import (
	"catalog-importer/core/storage"
	"catalog-importer/feature/catalog/importer"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new catalog import feature. The storage client may
// be nil when media mirroring is disabled.
func NewFeature(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger, cfg importer.Config) *Feature {
	svc := NewService(db, client, bucket, logger, cfg)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
