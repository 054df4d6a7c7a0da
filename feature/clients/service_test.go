package clients_test

import (
	"context"
	"testing"

	"catalog-importer/core/database"
	"catalog-importer/feature/clients"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*clients.Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, clients.Migrate(db))

	return clients.NewService(db, zap.NewNop(), clients.Config{ChunkSize: 2}), db
}

func int64p(v int64) *int64 { return &v }

func TestImportDirectory(t *testing.T) {
	svc, db := newTestService(t)

	dir := &clients.Directory{
		Distributors: []clients.DistributorRecord{
			{ID: 1, Name: "North"},
			{ID: 2, Name: "South"},
		},
		Stores: []clients.StoreRecord{
			{ID: 10, Name: "Main Street", DistributorID: int64p(1)},
		},
		Clients: []clients.ClientRecord{
			{ID: 100, FullName: "Ivan Petrov", Email: "ivan@example.com", StoreID: int64p(10), Role: "ROLE_BUYER"},
		},
	}

	res, err := svc.Import(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Distributors)
	assert.Equal(t, 1, res.Stores)
	assert.Equal(t, 1, res.Clients)

	var store clients.Store
	require.NoError(t, db.Where("b2b_id = ?", 10).First(&store).Error)
	assert.Equal(t, "Main Street", store.Name)
	require.NotNil(t, store.DistributorID)
	assert.EqualValues(t, 1, *store.DistributorID)

	var account clients.ClientAccount
	require.NoError(t, db.Where("b2b_id = ?", 100).First(&account).Error)
	assert.Equal(t, "Ivan Petrov", account.Name)
	assert.Equal(t, "ROLE_BUYER", account.Role)
}

func TestImportDirectoryUpsertsByExternalID(t *testing.T) {
	svc, db := newTestService(t)

	first := &clients.Directory{
		Distributors: []clients.DistributorRecord{{ID: 1, Name: "Old Name"}},
	}
	_, err := svc.Import(context.Background(), first)
	require.NoError(t, err)

	second := &clients.Directory{
		Distributors: []clients.DistributorRecord{{ID: 1, Name: "New Name"}},
	}
	_, err = svc.Import(context.Background(), second)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&clients.Distributor{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var d clients.Distributor
	require.NoError(t, db.Where("b2b_id = ?", 1).First(&d).Error)
	assert.Equal(t, "New Name", d.Name)
}

func TestImportDirectoryChunksLargeSections(t *testing.T) {
	svc, db := newTestService(t)

	var recs []clients.DistributorRecord
	for i := int64(1); i <= 5; i++ {
		recs = append(recs, clients.DistributorRecord{ID: i, Name: "D"})
	}

	res, err := svc.Import(context.Background(), &clients.Directory{Distributors: recs})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Distributors)

	var count int64
	require.NoError(t, db.Model(&clients.Distributor{}).Count(&count).Error)
	assert.EqualValues(t, 5, count)
}
