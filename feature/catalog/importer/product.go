package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"catalog-importer/feature/catalog/feed"
	"catalog-importer/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// importProducts applies the product section in chunks of cfg.ChunkSize,
// each chunk in its own transaction. Records stay raw until their chunk is
// reached, so one malformed record skips only itself. A store failure aborts
// the run; already committed chunks stay applied and LastID tells the
// upstream source where to resume.
func (r *run) importProducts(ctx context.Context, raw []json.RawMessage) ([]Mapping, error) {
	var out []Mapping

	err := chunked(len(raw), r.im.cfg.ChunkSize, func(start, end int) error {
		return r.im.db.Transaction(func(tx *gorm.DB) error {
			for i := start; i < end; i++ {
				mapping, err := r.importProduct(ctx, tx, raw[i])
				if err != nil {
					var re *recordError
					if errors.As(err, &re) {
						r.skip("products", i, err)
						continue
					}
					return err
				}
				out = append(out, mapping)
				if (i+1)%100 == 0 {
					r.progress("products processed", zap.Int("count", i+1))
				}
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// importProduct applies one raw product record inside the chunk transaction.
func (r *run) importProduct(ctx context.Context, tx *gorm.DB, raw json.RawMessage) (Mapping, error) {
	var rec feed.ProductRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Mapping{}, recordErr(fmt.Errorf("decode product: %w", err))
	}
	if rec.ID == 0 {
		return Mapping{}, recordErr(fmt.Errorf("product record without id"))
	}

	p, ok := r.products[rec.ID]
	if !ok {
		var found bool
		var err error
		p, found, err = firstByKeys[models.Product](ctx, tx, []candidateKey{
			{"id", rec.MatrixID},
			{"b2b_id", rec.ID},
			{"sku", rec.Sku},
		})
		if err != nil {
			return Mapping{}, err
		}
		if !found {
			p = &models.Product{}
		}
	}

	p.B2bID = rec.ID
	p.Sku = rec.Sku
	p.SkuMF = rec.SkuMF
	p.Count = rec.Count.Int()
	p.CountInBox = rec.CountInBox.Int()
	p.CountInPackage = rec.CountInPackage.Int()
	p.Weight = rec.Weight.Float()
	p.TypeCode = rec.TypeCode
	p.NewFrom = rec.NewPeriod.From.Ptr()
	p.NewTo = rec.NewPeriod.To.Ptr()
	p.PreorderFrom = rec.PreorderPeriod.From.Ptr()
	p.PreorderTo = rec.PreorderPeriod.To.Ptr()
	p.IsActive = rec.IsActive.Bool()
	// Feed dates only overwrite when present; a page omitting them must
	// not null a previously stored value.
	if v := rec.CreatedAt.Ptr(); v != nil {
		p.CreatedAt = v
	}
	if v := rec.DeletedAt.Ptr(); v != nil {
		p.DeletedAt = v
	}
	p.Barcode = rec.Barcode
	p.Size = r.defaultText(rec.Size.Translations)
	p.SizeCode = rec.Size.Code
	p.NameB2b = r.defaultText(rec.Name.Translations)
	p.Material = r.defaultText(rec.Material.Translations)
	p.Brand = rec.Brand.Name
	p.ShortDescriptionB2b = r.defaultText(rec.ShortDescription.Translations)
	p.DescriptionB2b = r.defaultText(rec.Description.Translations)
	p.Search = nil
	if rec.Search != "" {
		s := rec.Search
		p.Search = &s
	}
	p.PatternCode = nil
	if rec.PatternCode != "" {
		pc := rec.PatternCode
		p.PatternCode = &pc
	}
	p.ProjectID = &r.project.ID

	t, err := r.getType(ctx, tx, rec.Type)
	if err != nil {
		return Mapping{}, err
	}
	p.TypeID = nil
	if t != nil {
		p.TypeID = &t.ID
	}

	color, err := r.getColor(ctx, tx, rec.Color)
	if err != nil {
		return Mapping{}, err
	}
	p.ColorID = nil
	if color != nil {
		p.ColorID = &color.ID
	}

	if err := tx.WithContext(ctx).Omit("Categories", "Models").Save(p).Error; err != nil {
		return Mapping{}, err
	}

	model, err := r.getModel(ctx, tx, rec.Models)
	if err != nil {
		return Mapping{}, err
	}
	if model != nil {
		if err := tx.WithContext(ctx).Model(p).Omit("Models.*").Association("Models").Append(model); err != nil {
			return Mapping{}, err
		}
	}

	if err := r.syncProductCategories(ctx, tx, p, rec.Categories); err != nil {
		return Mapping{}, err
	}

	if err := r.applyTranslationBundle(ctx, tx, "product", p.ID, map[string]map[string]string{
		"name_b2b":              rec.Name.Translations,
		"size":                  rec.Size.Translations,
		"material":              rec.Material.Translations,
		"short_description_b2b": rec.ShortDescription.Translations,
		"description_b2b":       rec.Description.Translations,
		"brand":                 constantPerLocale(rec.Name.Translations, rec.Brand.Name),
		"search":                constantPerLocale(rec.Name.Translations, rec.Search),
	}); err != nil {
		return Mapping{}, err
	}

	if err := r.attachColorIcon(ctx, tx, model, color, rec.Icon); err != nil {
		return Mapping{}, err
	}
	if err := r.attachProductPhotos(ctx, tx, p, rec.Photo); err != nil {
		return Mapping{}, err
	}

	r.products[rec.ID] = p
	r.lastProductID = rec.ID
	return Mapping{ExternalID: p.B2bID, InternalID: p.ID}, nil
}

// syncProductCategories converges the product's category set to exactly
// the referenced ids, appending missing links and deleting stale ones.
func (r *run) syncProductCategories(ctx context.Context, tx *gorm.DB, p *models.Product, refs []int64) error {
	desired := make(map[uint]*models.Category, len(refs))
	for _, ref := range refs {
		cat, err := r.lookupCategory(ctx, tx, ref)
		if err != nil {
			return err
		}
		if cat == nil {
			r.log.Warn("product references unknown category",
				zap.Int64("product_id", p.B2bID),
				zap.Int64("category_id", ref),
			)
			continue
		}
		desired[cat.ID] = cat
	}

	var current []*models.Category
	if err := tx.WithContext(ctx).Model(p).Association("Categories").Find(&current); err != nil {
		return err
	}

	have := make(map[uint]struct{}, len(current))
	for _, cat := range current {
		if _, want := desired[cat.ID]; !want {
			if err := tx.WithContext(ctx).Model(p).Association("Categories").Delete(cat); err != nil {
				return err
			}
			continue
		}
		have[cat.ID] = struct{}{}
	}

	for id, cat := range desired {
		if _, exists := have[id]; exists {
			continue
		}
		if err := tx.WithContext(ctx).Model(p).Omit("Categories.*").Association("Categories").Append(cat); err != nil {
			return err
		}
	}
	return nil
}

// attachColorIcon links the color swatch icon to the (model, color) pair.
// Only the first icon is used; the reference is idempotent across runs.
func (r *run) attachColorIcon(ctx context.Context, tx *gorm.DB, model *models.Model, color *models.Color, icons []feed.ImageRef) error {
	if color == nil || len(icons) == 0 {
		return nil
	}

	file, err := r.materializeFile(ctx, tx, icons[0].Path, icons[0].Hash)
	if err != nil {
		var re *recordError
		if !errors.As(err, &re) {
			return err
		}
		r.log.Warn("color icon skipped", zap.String("url", icons[0].Path), zap.Error(err))
		return nil
	}

	var modelID *uint
	query := tx.WithContext(ctx).Where("color_id = ?", color.ID)
	if model != nil {
		modelID = &model.ID
		query = query.Where("model_id = ?", model.ID)
	} else {
		query = query.Where("model_id IS NULL")
	}

	var img models.ColorImage
	err = query.First(&img).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		img = models.ColorImage{ModelID: modelID, ColorID: color.ID}
	} else if err != nil {
		return err
	}

	img.FileID = &file.ID
	return tx.WithContext(ctx).Save(&img).Error
}

// attachProductPhotos materializes the product's photo list and links each
// file at its list position; the first photo is flagged primary. A photo
// already linked keeps its row, so re-importing never duplicates links.
func (r *run) attachProductPhotos(ctx context.Context, tx *gorm.DB, p *models.Product, photos []feed.ImageRef) error {
	for i, ref := range photos {
		file, err := r.materializeFile(ctx, tx, ref.Path, ref.Hash)
		if err != nil {
			var re *recordError
			if !errors.As(err, &re) {
				return err
			}
			r.log.Warn("product photo skipped",
				zap.Int64("product_id", p.B2bID),
				zap.String("url", ref.Path),
				zap.Error(err),
			)
			continue
		}

		var img models.ProductImage
		err = tx.WithContext(ctx).
			Where("product_id = ? AND file_id = ?", p.ID, file.ID).
			First(&img).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			img = models.ProductImage{ProductID: p.ID, FileID: file.ID}
		} else if err != nil {
			return err
		}

		img.Position = i
		img.IsPrimary = i == 0
		if err := tx.WithContext(ctx).Save(&img).Error; err != nil {
			return err
		}
	}
	return nil
}
