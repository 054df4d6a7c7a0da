package importer

import (
	"context"

	"catalog-importer/feature/catalog/feed"
	"catalog-importer/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// importTypes upserts the type section. Types are small and independent;
// the whole section commits as one transaction.
func (r *run) importTypes(ctx context.Context, recs []feed.TypeRecord) ([]Mapping, error) {
	var out []Mapping

	err := r.im.db.Transaction(func(tx *gorm.DB) error {
		for i := range recs {
			rec := &recs[i]
			if _, seen := r.types[rec.ID]; seen {
				continue
			}

			t, found, err := firstByKeys[models.Type](ctx, tx, []candidateKey{
				{"id", rec.MatrixID},
				{"b2b_id", rec.ID},
				{"name", rec.Name},
			})
			if err != nil {
				return err
			}
			if !found {
				t = &models.Type{}
			}

			t.Name = rec.Name
			t.B2bID = rec.ID
			if err := tx.WithContext(ctx).Save(t).Error; err != nil {
				return err
			}
			if err := r.applyTranslations(ctx, tx, "type", t.ID, "name", rec.Translation); err != nil {
				return err
			}

			r.types[rec.ID] = t
			out = append(out, Mapping{ExternalID: t.B2bID, InternalID: t.ID})
			r.log.Debug("type applied", zap.Int64("type_id", rec.ID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// getType resolves a type reference by external id: run cache, then store.
// An unknown reference yields nil, not an error.
func (r *run) getType(ctx context.Context, tx *gorm.DB, externalID *int64) (*models.Type, error) {
	if externalID == nil || *externalID == 0 {
		return nil, nil
	}
	if t, ok := r.types[*externalID]; ok {
		return t, nil
	}
	t, found, err := firstByKeys[models.Type](ctx, tx, []candidateKey{{"b2b_id", *externalID}})
	if err != nil || !found {
		return nil, err
	}
	r.types[t.B2bID] = t
	return t, nil
}
