package importer

import (
	"context"
	"testing"

	"catalog-importer/feature/catalog/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestFirstByKeysSkipsEmptyAndStopsAtFirstHit(t *testing.T) {
	db, mock := setupMockDB(t)

	// The nil internal id must not produce a query; the b2b_id lookup hits.
	rows := sqlmock.NewRows([]string{"id", "b2b_id", "name"}).AddRow(4, 77, "Bedding")
	mock.ExpectQuery("SELECT \\* FROM `types` WHERE b2b_id = \\?").
		WithArgs(int64(77), 1).
		WillReturnRows(rows)

	var missing *uint
	got, found, err := firstByKeys[models.Type](context.Background(), db, []candidateKey{
		{"id", missing},
		{"b2b_id", int64(77)},
		{"name", "Bedding"},
	})
	require.NoError(t, err)
	require.True(t, found)
	assert.EqualValues(t, 4, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFirstByKeysFallsThroughToNextKey(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `types` WHERE b2b_id = \\?").
		WithArgs(int64(77), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "b2b_id", "name"}))

	rows := sqlmock.NewRows([]string{"id", "b2b_id", "name"}).AddRow(9, 0, "Bedding")
	mock.ExpectQuery("SELECT \\* FROM `types` WHERE name = \\?").
		WithArgs("Bedding", 1).
		WillReturnRows(rows)

	got, found, err := firstByKeys[models.Type](context.Background(), db, []candidateKey{
		{"b2b_id", int64(77)},
		{"name", "Bedding"},
	})
	require.NoError(t, err)
	require.True(t, found)
	assert.EqualValues(t, 9, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFirstByKeysAbsenceIsNotAnError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `types` WHERE b2b_id = \\?").
		WithArgs(int64(5), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "b2b_id", "name"}))

	got, found, err := firstByKeys[models.Type](context.Background(), db, []candidateKey{
		{"b2b_id", int64(5)},
	})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestEmptyKey(t *testing.T) {
	var nilUint *uint
	zero := uint(0)
	set := uint(3)

	assert.True(t, emptyKey(nil))
	assert.True(t, emptyKey(""))
	assert.True(t, emptyKey(int64(0)))
	assert.True(t, emptyKey(nilUint))
	assert.True(t, emptyKey(&zero))
	assert.False(t, emptyKey(&set))
	assert.False(t, emptyKey("sku-1"))
	assert.False(t, emptyKey(int64(7)))
}
