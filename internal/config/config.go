package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// Environment controls whether diagnostic details are exposed in error
	// responses. Only "production" hides them.
	Environment string `mapstructure:"environment" validate:"required,oneof=development test staging production"`

	ReadTimeoutSeconds     int  `mapstructure:"read_timeout_seconds"     validate:"gt=0"`
	WriteTimeoutSeconds    int  `mapstructure:"write_timeout_seconds"    validate:"gt=0"`
	ShutdownTimeoutSeconds int  `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
	MigrateOnStart         bool `mapstructure:"migrate_on_start"`
}

// IsProduction reports whether the server runs in the production environment.
func (c ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL          string `mapstructure:"url"            validate:"required,url"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gt=0"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lte=44640"` // Max 31 days
}

// CacheConfig configures the optional Redis cache. An empty RedisURL
// disables caching.
type CacheConfig struct {
	RedisURL          string `mapstructure:"redis_url"           validate:"omitempty,url"`
	VictoryTTLSeconds int    `mapstructure:"victory_ttl_seconds" validate:"gte=0"`
}

// Enabled reports whether a Redis cache has been configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisURL != ""
}
