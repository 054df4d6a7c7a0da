package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the import API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB is the maximum accepted request body size in megabytes.
	// Feed payloads can carry thousands of product records per page.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"64"`
}
