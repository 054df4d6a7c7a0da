package clients

import "gorm.io/gorm"

// Distributor is one B2B distributor account.
type Distributor struct {
	ID    uint   `gorm:"primaryKey"`
	B2bID int64  `gorm:"column:b2b_id;uniqueIndex"`
	Name  string `gorm:"size:255"`
}

// Store is one retail store belonging to a distributor. DistributorID holds
// the external distributor id as sent by the feed.
type Store struct {
	ID            uint   `gorm:"primaryKey"`
	B2bID         int64  `gorm:"column:b2b_id;uniqueIndex"`
	Name          string `gorm:"size:255"`
	DistributorID *int64 `gorm:"column:distributor_id"`
}

// ClientAccount is one client user account attached to a store.
type ClientAccount struct {
	ID      uint   `gorm:"primaryKey"`
	B2bID   int64  `gorm:"column:b2b_id;uniqueIndex"`
	Name    string `gorm:"size:255"`
	Email   string `gorm:"size:255"`
	StoreID *int64 `gorm:"column:store_id"`
	Role    string `gorm:"size:64"`
}

// Migrate creates or updates the clients schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Distributor{},
		&Store{},
		&ClientAccount{},
	)
}
