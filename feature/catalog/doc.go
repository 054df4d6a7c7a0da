// Package catalog implements the B2B catalog import feature.
//
// The upstream B2B system pushes catalog pages (types, categories, products
// with nested models, colors, translations and images) and this feature
// applies them to the store, answering with the external-to-internal id
// mappings the source uses to stamp its records as synchronized.
//
// # Components
//
//   - Service: wraps the import engine (feature/catalog/importer).
//   - Handler: exposes the HTTP import endpoint.
//   - Feature: registers the feature with the application loader.
//
// # HTTP Endpoints
//
//   - POST /import/catalog : Apply one feed page.
package catalog
