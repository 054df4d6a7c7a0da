package importer

import (
	"context"
	"strings"

	"catalog-importer/feature/catalog/feed"
	"catalog-importer/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// importCategories reconstructs the category forest from the flat list.
// The whole section commits as one transaction: a store failure aborts it.
func (r *run) importCategories(ctx context.Context, recs []feed.CategoryRecord) ([]Mapping, error) {
	r.catRecords = make(map[int64]*feed.CategoryRecord, len(recs))
	for i := range recs {
		r.catRecords[recs[i].ID] = &recs[i]
	}
	r.catMappings = nil

	err := r.im.db.Transaction(func(tx *gorm.DB) error {
		for i := range recs {
			if _, err := r.resolveCategory(ctx, tx, &recs[i]); err != nil {
				return err
			}
			r.log.Debug("category applied", zap.Int64("category_id", recs[i].ID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.catMappings, nil
}

// resolveCategory finds or creates the category for one record, resolving
// its parent first via recursion over the flat input map. Positions are
// assigned from a shared counter in first-resolution order, so a parent
// pulled in by a child always sorts before it. A parent id absent from the
// input orphans the node; a cycle is detected through the in-progress
// marker set and broken deterministically by orphaning the node whose edge
// closes the cycle.
func (r *run) resolveCategory(ctx context.Context, tx *gorm.DB, rec *feed.CategoryRecord) (*models.Category, error) {
	if cat, ok := r.cats[rec.ID]; ok {
		return cat, nil
	}
	if r.resolving[rec.ID] {
		r.log.Warn("category cycle detected, orphaning node", zap.Int64("category_id", rec.ID))
		return nil, nil
	}
	r.resolving[rec.ID] = true
	defer delete(r.resolving, rec.ID)

	cat, found, err := firstByKeys[models.Category](ctx, tx, []candidateKey{
		{"id", rec.MatrixID},
		{"b2b_id", rec.ID},
	})
	if err != nil {
		return nil, err
	}
	if !found {
		cat = &models.Category{}
	}

	// Placeholder name keeps NOT NULL columns happy for nameless records.
	name := " "
	if rec.Name != nil {
		name = *rec.Name
	}
	cat.Name = name
	cat.B2bID = rec.ID
	cat.ProjectID = &r.project.ID
	cat.IsSystem = rec.Name != nil && r.isSystemCategory(*rec.Name)

	cat.ParentID = nil
	if rec.ParentID != nil {
		if parentRec, exists := r.catRecords[*rec.ParentID]; exists {
			parent, err := r.resolveCategory(ctx, tx, parentRec)
			if err != nil {
				return nil, err
			}
			if parent != nil {
				cat.ParentID = &parent.ID
			}
		}
	}

	cat.Position = r.nextPosition
	r.nextPosition++

	if err := tx.WithContext(ctx).Save(cat).Error; err != nil {
		return nil, err
	}
	if err := r.applyTranslations(ctx, tx, "category", cat.ID, "name", rec.Translation); err != nil {
		return nil, err
	}

	r.cats[rec.ID] = cat
	r.catMappings = append(r.catMappings, Mapping{ExternalID: cat.B2bID, InternalID: cat.ID})
	return cat, nil
}

// isSystemCategory reports whether the name matches the configured
// administrative category set, case-insensitively.
func (r *run) isSystemCategory(name string) bool {
	_, ok := r.systemSet[strings.ToLower(name)]
	return ok
}

// lookupCategory resolves a category by external id: run cache first, then
// the store. Used when products/models reference categories that were
// imported in an earlier run and are absent from this payload.
func (r *run) lookupCategory(ctx context.Context, tx *gorm.DB, externalID int64) (*models.Category, error) {
	if cat, ok := r.cats[externalID]; ok {
		return cat, nil
	}
	cat, found, err := firstByKeys[models.Category](ctx, tx, []candidateKey{{"b2b_id", externalID}})
	if err != nil || !found {
		return nil, err
	}
	r.cats[externalID] = cat
	return cat, nil
}
