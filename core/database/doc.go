// Package database manages the connection to the persistent catalog store.
//
// It wraps GORM with two drivers: MySQL for production and SQLite for tests
// and local experiments. The MySQL DSN carries explicit connect/read/write
// timeouts so a stalled import run fails instead of hanging.
//
// The import engine treats the store as the only durable, cross-run shared
// resource; single-writer semantics are assumed (no concurrent imports
// against the same data set).
package database
