// Package server holds configuration for the HTTP entry point.
//
// The import API is push-based: the upstream B2B source POSTs feed pages to
// this service. The server configuration covers the listen port, the shared
// API key protecting the import endpoints, and the request body size limit
// sized for large feed pages.
package server
