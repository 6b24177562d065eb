package config

// Config holds all application configuration.
// It is constructed once at process start and passed by reference into the
// components that need it; nothing reads the environment after Load returns.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// URL is the MongoDB connection string. Required: startup fails loudly
	// when it is absent rather than degrading silently.
	URL string `mapstructure:"url" validate:"required"`

	// Name is the database holding the workout, progress, and user
	// collections.
	Name string `mapstructure:"name" validate:"required"`
}

// AuthConfig contains the request-authorization settings.
type AuthConfig struct {
	// APIKey is the shared secret clients must present in the X-API-Key
	// header. Required: an unset key must never mean "any key accepted".
	APIKey string `mapstructure:"api_key" validate:"required"`
}
