package catalog_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"catalog-importer/core/database"
	"catalog-importer/feature/catalog"
	"catalog-importer/feature/catalog/importer"
	"catalog-importer/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	// Setup In-Memory DB
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	require.NoError(t, db.Create(&models.Language{Code: "ru", Name: "Russian"}).Error)

	cfg := importer.Config{
		ChunkSize:     100,
		DefaultLocale: "ru",
		ProjectSlug:   "b2b",
		MediaDir:      t.TempDir(),
	}

	app := fiber.New()
	feature := catalog.NewFeature(db, nil, "", zap.NewNop(), cfg)
	require.NoError(t, feature.Load(app))
	return app
}

func TestHandleImportCatalog(t *testing.T) {
	app := newTestApp(t)

	body := `{
		"types": [{"id": 10, "name": "Bedding", "translation": {"ru": "Постельное"}}],
		"categories": [{"id": 1, "name": "Root"}],
		"products": [{"id": 101, "sku": "SKU-101", "name": {"translations": {"ru": "Товар"}}, "categories": [1]}]
	}`

	req := httptest.NewRequest(fiber.MethodPost, "/import/catalog", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result importer.Result
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Len(t, result.Types, 1)
	assert.Len(t, result.Categories, 1)
	assert.Len(t, result.Products, 1)
	assert.EqualValues(t, 101, result.LastID)
}

func TestHandleImportCatalogRejectsBadJSON(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/import/catalog", bytes.NewReader([]byte(`{not json`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
