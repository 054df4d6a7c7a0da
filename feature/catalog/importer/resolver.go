package importer

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// candidateKey is one (column, value) lookup candidate. Keys are tried in
// caller-supplied order; empty values are skipped.
type candidateKey struct {
	column string
	value  any
}

// firstByKeys resolves an entity by trying each candidate key in order and
// returning the first store hit. Absence is a normal result, not an error.
func firstByKeys[T any](ctx context.Context, tx *gorm.DB, keys []candidateKey) (*T, bool, error) {
	for _, key := range keys {
		if emptyKey(key.value) {
			continue
		}
		var out T
		err := tx.WithContext(ctx).Where(key.column+" = ?", key.value).First(&out).Error
		if err == nil {
			return &out, true, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
	}
	return nil, false, nil
}

// emptyKey reports whether a candidate value cannot identify anything.
func emptyKey(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case int64:
		return val == 0
	case int:
		return val == 0
	case uint:
		return val == 0
	case *uint:
		return val == nil || *val == 0
	case *int64:
		return val == nil || *val == 0
	default:
		return false
	}
}
