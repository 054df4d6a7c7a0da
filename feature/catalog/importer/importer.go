package importer

import (
	"context"
	"runtime"
	"strings"
	"time"

	"catalog-importer/core/storage"
	"catalog-importer/feature/catalog/feed"
	"catalog-importer/feature/catalog/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Importer applies catalog feed pages to the persistent store. It is safe to
// reuse across runs; all per-run state lives in the run object.
type Importer struct {
	db         *gorm.DB
	store      storage.Client // nil disables media mirroring
	bucket     string
	log        *zap.Logger
	cfg        Config
	fetch      Fetcher
	optimize   Optimizer
	imageSlugs map[string][]string
}

// Option customizes an Importer, mainly to swap external collaborators in tests.
type Option func(*Importer)

// WithFetcher replaces the media fetcher.
func WithFetcher(f Fetcher) Option {
	return func(im *Importer) { im.fetch = f }
}

// WithOptimizer replaces the media optimizer.
func WithOptimizer(o Optimizer) Option {
	return func(im *Importer) { im.optimize = o }
}

// WithImageTypeSlugs replaces the model image bucket→slug mapping.
func WithImageTypeSlugs(m map[string][]string) Option {
	return func(im *Importer) { im.imageSlugs = m }
}

// New creates an Importer. The storage client may be nil, in which case
// materialized media is kept locally only.
func New(db *gorm.DB, store storage.Client, bucket string, log *zap.Logger, cfg Config, opts ...Option) *Importer {
	im := &Importer{
		db:         db,
		store:      store,
		bucket:     bucket,
		log:        log,
		cfg:        cfg,
		imageSlugs: DefaultImageTypeSlugs,
		fetch:      NewHTTPFetcher(time.Duration(cfg.FetchTimeoutSeconds) * time.Second),
		optimize:   NopOptimizer{},
	}
	if cfg.JpegoptimPath != "" {
		im.optimize = NewJpegoptim(cfg.JpegoptimPath)
	}
	for _, o := range opts {
		o(im)
	}
	return im
}

// Mapping pairs a feed-assigned external id with the store-assigned internal id.
type Mapping struct {
	ExternalID int64 `json:"id"`
	InternalID uint  `json:"matrix_id"`
}

// SkippedRecord describes one feed record that was not applied.
type SkippedRecord struct {
	Section string `json:"section"`
	Index   int    `json:"index"`
	Reason  string `json:"reason"`
}

// Result is the response payload for one import run. Only successfully
// applied records appear in the mappings; skipped records are listed
// separately so the upstream source can see what was not applied.
type Result struct {
	Types      []Mapping       `json:"types,omitempty"`
	Categories []Mapping       `json:"categories,omitempty"`
	Products   []Mapping       `json:"products,omitempty"`
	Models     []Mapping       `json:"models,omitempty"`
	LastID     int64           `json:"last_id"`
	Skipped    []SkippedRecord `json:"skipped,omitempty"`
}

// run holds all state scoped to one feed application: the identity caches,
// the translation dedup set, the media hash cache and the category tree
// bookkeeping. A fresh run is created per payload, which keeps the Importer
// itself stateless and the caches trivially single-threaded.
type run struct {
	im      *Importer
	log     *zap.Logger
	session string

	project   *models.Project
	languages map[string]*models.Language
	systemSet map[string]struct{}

	types    map[int64]*models.Type
	cats     map[int64]*models.Category
	products map[int64]*models.Product
	models   map[int64]*models.Model
	colors   map[string]*models.Color
	files    map[string]*models.File
	applied  map[translationKey]struct{}

	// category tree bookkeeping
	catRecords   map[int64]*feed.CategoryRecord
	resolving    map[int64]bool
	nextPosition int
	catMappings  []Mapping

	modelMappings []Mapping
	lastProductID int64
	skipped       []SkippedRecord
}

func (im *Importer) newRun(ctx context.Context) (*run, error) {
	session := uuid.NewString()
	r := &run{
		im:        im,
		log:       im.log.With(zap.String("session_id", session)),
		session:   session,
		languages: make(map[string]*models.Language),
		systemSet: make(map[string]struct{}),
		types:     make(map[int64]*models.Type),
		cats:      make(map[int64]*models.Category),
		products:  make(map[int64]*models.Product),
		models:    make(map[int64]*models.Model),
		colors:    make(map[string]*models.Color),
		files:     make(map[string]*models.File),
		applied:   make(map[translationKey]struct{}),
		resolving: make(map[int64]bool),
	}

	project := &models.Project{Slug: im.cfg.ProjectSlug, Name: im.cfg.ProjectSlug}
	if err := im.db.WithContext(ctx).Where(models.Project{Slug: im.cfg.ProjectSlug}).FirstOrCreate(project).Error; err != nil {
		return nil, err
	}
	r.project = project

	var langs []models.Language
	if err := im.db.WithContext(ctx).Find(&langs).Error; err != nil {
		return nil, err
	}
	for i := range langs {
		r.languages[langs[i].Code] = &langs[i]
	}

	for _, name := range im.cfg.SystemCategoryNames() {
		r.systemSet[strings.ToLower(name)] = struct{}{}
	}

	// Seed the position counter past existing categories so re-imported
	// trees keep ordering monotonic across runs.
	var maxPosition *int
	if err := im.db.WithContext(ctx).Model(&models.Category{}).Select("MAX(position)").Scan(&maxPosition).Error; err != nil {
		return nil, err
	}
	if maxPosition != nil {
		r.nextPosition = *maxPosition + 1
	}

	return r, nil
}

// Run applies one feed payload. Sections are processed in dependency order:
// types, then categories, then products (which reference both). A section
// missing from the payload is skipped entirely.
func (im *Importer) Run(ctx context.Context, payload *feed.Payload) (*Result, error) {
	start := time.Now()

	r, err := im.newRun(ctx)
	if err != nil {
		return nil, err
	}

	r.progress("import started")
	res := &Result{}

	if payload.Types != nil {
		r.progress("processing types", zap.Duration("elapsed", time.Since(start)))
		if res.Types, err = r.importTypes(ctx, payload.Types); err != nil {
			return nil, err
		}
	}

	if payload.Categories != nil {
		r.progress("processing categories", zap.Duration("elapsed", time.Since(start)))
		if res.Categories, err = r.importCategories(ctx, payload.Categories); err != nil {
			return nil, err
		}
	}

	if payload.Products != nil {
		r.progress("processing products", zap.Duration("elapsed", time.Since(start)))
		if res.Products, err = r.importProducts(ctx, payload.Products); err != nil {
			return nil, err
		}
		res.Models = r.modelMappings
	}

	res.LastID = r.lastProductID
	res.Skipped = r.skipped

	r.progress("import finished", zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

// progress emits a diagnostic line with the run's session id and current
// allocation, mirroring the memory-tagged log lines operators rely on for
// long imports.
func (r *run) progress(msg string, fields ...zap.Field) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	r.log.Info(msg, append(fields, zap.Uint64("alloc_bytes", ms.Alloc))...)
}

// skip records one non-applied record and logs it.
func (r *run) skip(section string, index int, err error) {
	r.log.Warn("record skipped",
		zap.String("section", section),
		zap.Int("index", index),
		zap.Error(err),
	)
	r.skipped = append(r.skipped, SkippedRecord{Section: section, Index: index, Reason: err.Error()})
}
