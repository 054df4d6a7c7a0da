package importer

import (
	"context"
	"errors"
	"fmt"

	"catalog-importer/feature/catalog/feed"
	"catalog-importer/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// getModel resolves or creates the model carried by a product record.
// Models repeat across products, so a model already applied in this run is
// returned from cache without touching its fields again; the first product
// that names a model wins for the run.
func (r *run) getModel(ctx context.Context, tx *gorm.DB, rec *feed.ModelRecord) (*models.Model, error) {
	if rec == nil {
		return nil, nil
	}
	if m, ok := r.models[rec.ID]; ok {
		return m, nil
	}

	m, found, err := firstByKeys[models.Model](ctx, tx, []candidateKey{
		{"id", rec.MatrixID},
		{"b2b_id", rec.ID},
		{"sku_mf", rec.SkuMF},
	})
	if err != nil {
		return nil, err
	}
	if !found {
		m = &models.Model{}
	}

	m.B2bID = rec.ID
	m.SkuMF = rec.SkuMF
	m.IsActive = rec.IsActive.Bool()
	m.TypeCode = rec.TypeCode
	m.NewFrom = rec.NewPeriod.From.Ptr()
	m.NewTo = rec.NewPeriod.To.Ptr()
	m.PreorderFrom = rec.PreorderPeriod.From.Ptr()
	m.PreorderTo = rec.PreorderPeriod.To.Ptr()
	if v := rec.CreatedAt.Ptr(); v != nil {
		m.CreatedAt = v
	}
	m.Density = rec.Density.String()
	m.NameB2b = r.defaultText(rec.Name.Translations)
	m.Material = r.defaultText(rec.Material.Translations)
	m.Brand = rec.Brand.Name
	m.ShortDescriptionB2b = r.defaultText(rec.ShortDescription.Translations)
	m.DescriptionB2b = r.defaultText(rec.Description.Translations)
	m.PatternCode = nil
	if rec.PatternCode != "" {
		pc := rec.PatternCode
		m.PatternCode = &pc
	}
	m.ProjectID = &r.project.ID

	t, err := r.getType(ctx, tx, rec.Type)
	if err != nil {
		return nil, err
	}
	m.TypeID = nil
	if t != nil {
		m.TypeID = &t.ID
	}

	if err := tx.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}

	if err := r.syncModelCategories(ctx, tx, m, rec.Categories); err != nil {
		return nil, err
	}

	if err := r.applyTranslationBundle(ctx, tx, "model", m.ID, map[string]map[string]string{
		"name_b2b":              rec.Name.Translations,
		"material":              rec.Material.Translations,
		"short_description_b2b": rec.ShortDescription.Translations,
		"description_b2b":       rec.Description.Translations,
		"brand":                 constantPerLocale(rec.Name.Translations, rec.Brand.Name),
		"search":                constantPerLocale(rec.Name.Translations, rec.Search),
	}); err != nil {
		return nil, err
	}

	if err := r.attachModelImages(ctx, tx, m, rec.Images); err != nil {
		return nil, err
	}

	r.models[rec.ID] = m
	r.modelMappings = append(r.modelMappings, Mapping{ExternalID: m.B2bID, InternalID: m.ID})
	return m, nil
}

// syncModelCategories converges the model's category memberships to exactly
// the referenced set. References to categories that exist neither in the
// payload nor in the store are dropped with a warning.
func (r *run) syncModelCategories(ctx context.Context, tx *gorm.DB, m *models.Model, refs []int64) error {
	desired := make(map[uint]struct{}, len(refs))
	for _, ref := range refs {
		cat, err := r.lookupCategory(ctx, tx, ref)
		if err != nil {
			return err
		}
		if cat == nil {
			r.log.Warn("model references unknown category",
				zap.Int64("model_id", m.B2bID),
				zap.Int64("category_id", ref),
			)
			continue
		}
		desired[cat.ID] = struct{}{}
	}

	var current []models.CategoryModel
	if err := tx.WithContext(ctx).Where("model_id = ?", m.ID).Find(&current).Error; err != nil {
		return err
	}

	have := make(map[uint]struct{}, len(current))
	for _, cm := range current {
		if _, want := desired[cm.CategoryID]; !want {
			if err := tx.WithContext(ctx).Delete(&models.CategoryModel{}, cm.ID).Error; err != nil {
				return err
			}
			continue
		}
		have[cm.CategoryID] = struct{}{}
	}

	position := len(have)
	for _, ref := range refs {
		cat, ok := r.cats[ref]
		if !ok {
			continue
		}
		if _, exists := have[cat.ID]; exists {
			continue
		}
		if _, want := desired[cat.ID]; !want {
			continue
		}
		link := models.CategoryModel{ModelID: m.ID, CategoryID: cat.ID, Position: position}
		if err := tx.WithContext(ctx).Create(&link).Error; err != nil {
			return err
		}
		have[cat.ID] = struct{}{}
		position++
	}
	return nil
}

// attachModelImages materializes each image bucket and links the files to
// the model under the slug configured for their list position. A bucket or
// position with no configured slug fails the record; a fetch failure skips
// only that one image.
func (r *run) attachModelImages(ctx context.Context, tx *gorm.DB, m *models.Model, buckets map[string][]feed.ImageRef) error {
	for bucket, refs := range buckets {
		slugs, ok := r.im.imageSlugs[bucket]
		if !ok {
			return recordErr(fmt.Errorf("no image type mapping for bucket %q", bucket))
		}
		for i, ref := range refs {
			if i >= len(slugs) {
				return recordErr(fmt.Errorf("bucket %q has no slug for position %d", bucket, i))
			}
			file, err := r.materializeFile(ctx, tx, ref.Path, ref.Hash)
			if err != nil {
				var re *recordError
				if !errors.As(err, &re) {
					return err
				}
				r.log.Warn("model image skipped",
					zap.Int64("model_id", m.B2bID),
					zap.String("url", ref.Path),
					zap.Error(err),
				)
				continue
			}

			var img models.ModelImage
			err = tx.WithContext(ctx).
				Where("model_id = ? AND type_slug = ? AND file_id = ?", m.ID, slugs[i], file.ID).
				First(&img).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			img = models.ModelImage{ModelID: m.ID, FileID: file.ID, TypeSlug: slugs[i]}
			if err := tx.WithContext(ctx).Create(&img).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// constantPerLocale spreads one untranslated value over the locales present
// in a reference bundle, so fields like brand get a row per known locale.
func constantPerLocale(reference map[string]string, value string) map[string]string {
	if value == "" || len(reference) == 0 {
		return nil
	}
	out := make(map[string]string, len(reference))
	for locale := range reference {
		out[locale] = value
	}
	return out
}
