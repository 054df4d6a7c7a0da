package catalog

import (
	"context"

	"catalog-importer/core/storage"
	"catalog-importer/feature/catalog/feed"
	"catalog-importer/feature/catalog/importer"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles catalog import operations.
type Service struct {
	importer *importer.Importer
	logger   *zap.Logger
}

// NewService creates a new catalog service.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger, cfg importer.Config) *Service {
	return &Service{
		importer: importer.New(db, client, bucket, logger, cfg),
		logger:   logger,
	}
}

// Import applies one feed payload and returns the id mappings.
func (s *Service) Import(ctx context.Context, payload *feed.Payload) (*importer.Result, error) {
	return s.importer.Run(ctx, payload)
}
