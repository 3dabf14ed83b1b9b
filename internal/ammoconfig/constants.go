package ammoconfig

// ==================== Configuration File Names ====================

const (
	// ConfigFileName is the default name of the balancing configuration file
	ConfigFileName = "ammoConfig.json"
	// RecordsKey is the top-level key holding the per-item records
	RecordsKey = "ammos"
)

// ==================== Error Messages ====================

const (
	ErrMsgReadConfigFileFailed = "failed to read ammo config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse ammo config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
	ErrMsgUnsupportedExtension = "unsupported config extension %q"
)

const (
	ErrMsgConfigNil        = "config is nil"
	ErrMsgRecordsNotObject = "\"ammos\" must be an object"
	ErrFmtEmptyRecordID    = "%w: record at position %d has an empty id"
	ErrFmtDuplicateRecord  = "%w: '%s'"
	ErrFmtRecordInvalid    = "%w: record '%s': %s"
)
