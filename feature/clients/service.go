package clients

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Config holds configuration for the client directory import.
type Config struct {
	// ChunkSize is the number of records written per transaction.
	ChunkSize int `mapstructure:"chunk_size" default:"1000"`
}

// Result reports how many records each section applied.
type Result struct {
	Distributors int `json:"distributors"`
	Stores       int `json:"stores"`
	Clients      int `json:"clients"`
}

// Service applies client directory pages. Unlike the catalog, the directory
// is flat: every section is a plain upsert keyed by external id, with the
// existing rows preloaded into memory once per run.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	cfg    Config
}

// NewService creates a new clients service.
func NewService(db *gorm.DB, logger *zap.Logger, cfg Config) *Service {
	return &Service{db: db, logger: logger, cfg: cfg}
}

// Import applies one directory page. Sections are independent;
// distributors are applied first so store references land after their owner.
func (s *Service) Import(ctx context.Context, dir *Directory) (*Result, error) {
	start := time.Now()
	log := s.logger.With(zap.String("session_id", uuid.NewString()))

	progress := func(msg string) {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		log.Info(msg,
			zap.Duration("elapsed", time.Since(start)),
			zap.Uint64("alloc_bytes", ms.Alloc),
		)
	}

	progress("clients import started")
	res := &Result{}

	if dir.Distributors != nil {
		progress("processing distributors")
		n, err := s.upsertDistributors(ctx, dir.Distributors)
		if err != nil {
			return nil, err
		}
		res.Distributors = n
	}

	if dir.Stores != nil {
		progress("processing stores")
		n, err := s.upsertStores(ctx, dir.Stores)
		if err != nil {
			return nil, err
		}
		res.Stores = n
	}

	if dir.Clients != nil {
		progress("processing clients")
		n, err := s.upsertClients(ctx, dir.Clients)
		if err != nil {
			return nil, err
		}
		res.Clients = n
	}

	progress("clients import finished")
	return res, nil
}

func (s *Service) upsertDistributors(ctx context.Context, recs []DistributorRecord) (int, error) {
	var existing []Distributor
	if err := s.db.WithContext(ctx).Find(&existing).Error; err != nil {
		return 0, err
	}
	index := make(map[int64]*Distributor, len(existing))
	for i := range existing {
		index[existing[i].B2bID] = &existing[i]
	}

	err := s.inChunks(len(recs), func(tx *gorm.DB, i int) error {
		rec := &recs[i]
		row, ok := index[rec.ID]
		if !ok {
			row = &Distributor{B2bID: rec.ID}
			index[rec.ID] = row
		}
		row.Name = rec.Name
		return tx.WithContext(ctx).Save(row).Error
	})
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

func (s *Service) upsertStores(ctx context.Context, recs []StoreRecord) (int, error) {
	var existing []Store
	if err := s.db.WithContext(ctx).Find(&existing).Error; err != nil {
		return 0, err
	}
	index := make(map[int64]*Store, len(existing))
	for i := range existing {
		index[existing[i].B2bID] = &existing[i]
	}

	err := s.inChunks(len(recs), func(tx *gorm.DB, i int) error {
		rec := &recs[i]
		row, ok := index[rec.ID]
		if !ok {
			row = &Store{B2bID: rec.ID}
			index[rec.ID] = row
		}
		row.Name = rec.Name
		row.DistributorID = rec.DistributorID
		return tx.WithContext(ctx).Save(row).Error
	})
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

func (s *Service) upsertClients(ctx context.Context, recs []ClientRecord) (int, error) {
	var existing []ClientAccount
	if err := s.db.WithContext(ctx).Find(&existing).Error; err != nil {
		return 0, err
	}
	index := make(map[int64]*ClientAccount, len(existing))
	for i := range existing {
		index[existing[i].B2bID] = &existing[i]
	}

	err := s.inChunks(len(recs), func(tx *gorm.DB, i int) error {
		rec := &recs[i]
		row, ok := index[rec.ID]
		if !ok {
			row = &ClientAccount{B2bID: rec.ID}
			index[rec.ID] = row
		}
		row.Name = rec.FullName
		row.Email = rec.Email
		row.StoreID = rec.StoreID
		row.Role = rec.Role
		return tx.WithContext(ctx).Save(row).Error
	})
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

// inChunks runs fn for each index, committing every cfg.ChunkSize records.
func (s *Service) inChunks(total int, fn func(tx *gorm.DB, i int) error) error {
	size := s.cfg.ChunkSize
	if size <= 0 {
		size = total
	}
	for start := 0; start < total; start += size {
		end := start + size
		if end > total {
			end = total
		}
		err := s.db.Transaction(func(tx *gorm.DB) error {
			for i := start; i < end; i++ {
				if err := fn(tx, i); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
