package importer

import (
	"context"
	"errors"
	"strings"

	"catalog-importer/feature/catalog/models"

	"gorm.io/gorm"
)

// translationKey identifies one translation write within a run. The entity's
// internal id is part of the key, so translations can only be applied after
// the owning entity has been persisted.
type translationKey struct {
	languageID uint
	entityType string
	entityID   uint
	field      string
}

// applyTranslations upserts the locale→text map for one field of one entity.
// Unknown locales and blank texts are skipped; a key already applied this run
// is not written again. Existing rows are updated in place, so re-applying
// the same feed never duplicates translations.
func (r *run) applyTranslations(ctx context.Context, tx *gorm.DB, entityType string, entityID uint, field string, texts map[string]string) error {
	for locale, text := range texts {
		lang, ok := r.languages[locale]
		if !ok {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		key := translationKey{languageID: lang.ID, entityType: entityType, entityID: entityID, field: field}
		if _, done := r.applied[key]; done {
			continue
		}

		var tr models.Translation
		err := tx.WithContext(ctx).
			Where("language_id = ? AND entity_type = ? AND entity_id = ? AND field = ?",
				lang.ID, entityType, entityID, field).
			First(&tr).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tr = models.Translation{
				LanguageID: lang.ID,
				EntityType: entityType,
				EntityID:   entityID,
				Field:      field,
			}
		} else if err != nil {
			return err
		}

		tr.Value = text
		if err := tx.WithContext(ctx).Save(&tr).Error; err != nil {
			return err
		}
		r.applied[key] = struct{}{}
	}
	return nil
}

// applyTranslationBundle applies several translatable fields of one entity.
func (r *run) applyTranslationBundle(ctx context.Context, tx *gorm.DB, entityType string, entityID uint, fields map[string]map[string]string) error {
	for field, texts := range fields {
		if err := r.applyTranslations(ctx, tx, entityType, entityID, field, texts); err != nil {
			return err
		}
	}
	return nil
}

// defaultText picks the default-locale text out of a translation map.
func (r *run) defaultText(texts map[string]string) string {
	return texts[r.im.cfg.DefaultLocale]
}
