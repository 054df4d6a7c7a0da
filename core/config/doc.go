// Package config loads application configuration from the environment.
//
// Configuration is assembled from partial Config structs owned by the
// packages they configure (server, storage, logger, database, import
// engine). Defaults are declared as struct tags and bound into Viper via
// reflection, so every key is overridable through environment variables
// (e.g. IMPORT_CHUNK_SIZE, DATABASE_HOST) or a local .env file.
package config
