package config

const (
	// Default file paths
	DefaultConfigPathAmmo = "configs/ammoConfig.json"
	DefaultCatalogPath    = "data/catalog.json"
	DefaultOutputPath     = "data/catalog.balanced.json"
)

// Environment variable names
const (
	EnvAmmoConfigPath   = "BALANCE_CONFIG_PATH"
	EnvCatalogPath      = "CATALOG_PATH"
	EnvOutputPath       = "OUTPUT_PATH"
	EnvMetricsPath      = "METRICS_PATH"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvMapAllowlist     = "MAP_ALLOWLIST"
	EnvIdempotentSpawns = "IDEMPOTENT_SPAWNS"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
)
