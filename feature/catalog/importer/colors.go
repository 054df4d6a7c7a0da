package importer

import (
	"context"

	"catalog-importer/feature/catalog/feed"
	"catalog-importer/feature/catalog/models"

	"gorm.io/gorm"
)

// getColor resolves or creates the color referenced by a product record.
// Colors are keyed by their natural code; the default-locale label becomes
// the color name. A reference without a code cannot identify anything and
// is treated as no color at all.
func (r *run) getColor(ctx context.Context, tx *gorm.DB, rec *feed.ColorRecord) (*models.Color, error) {
	if rec == nil {
		return nil, nil
	}
	if rec.Code == "" {
		r.log.Warn("color reference without code, ignoring")
		return nil, nil
	}

	if c, ok := r.colors[rec.Code]; ok {
		return c, nil
	}

	c, found, err := firstByKeys[models.Color](ctx, tx, []candidateKey{{"code", rec.Code}})
	if err != nil {
		return nil, err
	}
	if !found {
		c = &models.Color{Code: rec.Code}
	}

	if name := r.defaultText(rec.Translations); name != "" {
		c.Name = name
	}
	if err := tx.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	if err := r.applyTranslations(ctx, tx, "color", c.ID, "name", rec.Translations); err != nil {
		return nil, err
	}

	r.colors[rec.Code] = c
	return c, nil
}
