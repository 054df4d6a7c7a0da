// Package clients implements the B2B client directory import feature.
//
// The directory is a flat snapshot of distributors, stores and client
// accounts, upserted by external id with no cross-entity resolution.
//
// # HTTP Endpoints
//
//   - POST /import/clients : Apply one directory page.
package clients
