// Package importer applies B2B catalog feed pages to the persistent store.
//
// A feed page carries up to three sections (types, categories, products) and
// is applied in that order because products reference both earlier sections.
// Each record is resolved against the store through an ordered key chain
// (internal id, then external b2b id, then natural key), so re-sending the
// same page converges instead of duplicating rows.
//
// # Run Lifecycle
//
// The Importer itself is stateless; Run creates a run object that owns every
// per-payload cache:
//
//   - identity caches for types, categories, products, models and colors
//   - a translation dedup set keyed by (language, entity type, entity id, field)
//   - a media cache keyed by content hash
//   - the category tree bookkeeping (record index, in-progress markers,
//     the shared position counter)
//
// Caches never outlive the payload, which keeps the engine single-threaded
// by construction and bounds memory by page size, not catalog size.
//
// # Failure Model
//
// Failures confined to one record (malformed nested structure, an image
// bucket without a slug mapping) are wrapped as record errors: the runner
// logs them, reports them in Result.Skipped and continues. Store failures
// abort the section, because a half-applied transaction cannot be staged
// further. Media fetch failures are softer still: only the one image is
// dropped.
//
// Products commit in chunks of Config.ChunkSize records per transaction.
// Chunking bounds peak memory on large pages; Result.LastID names the last
// applied product so an aborted run can be resumed from the next page.
package importer
