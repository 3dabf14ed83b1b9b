package logger

// Context Keys
const (
	ContextKeyRunID = "run_id"
)

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "ammo-balance"
	DefaultVersion     = "dev"
)

// Environment String Values
const (
	EnvironmentDev  = "dev"
	EnvironmentTest = "test"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRunID       = "run_id"
	AttrKeyModule      = "module"
	AttrKeyOutcome     = "outcome"
)

// OutcomeSuccess marks info lines that report a completed step.
const OutcomeSuccess = "success"
