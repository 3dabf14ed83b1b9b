package ammoconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/AmmoBalance_Go/internal/domain"
	"github.com/osse101/AmmoBalance_Go/internal/validation"
)

// Sentinel errors for the ammo config loader
var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrDuplicateRecord = errors.New("duplicate record id")
)

// Config is the parsed balancing configuration. Records keep the order in
// which they appear in the file.
type Config struct {
	Records []domain.NamedRecord
}

// Lookup returns the record keyed by id.
func (c *Config) Lookup(id string) (domain.ConfigRecord, bool) {
	for _, r := range c.Records {
		if r.ID == id {
			return r.Record, true
		}
	}
	return domain.ConfigRecord{}, false
}

// Loader handles loading and validating the balancing configuration
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte, format string) (*Config, error)
	Validate(config *Config) error
}

// Supported formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type loader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &loader{
		schemaValidator: validation.NewSchemaValidator(),
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf(ErrMsgUnsupportedExtension, filepath.Ext(path))
	}
}

// Load reads and parses a JSON or YAML config file
func (l *loader) Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	config, err := l.Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Parse decodes config data in the given format after checking it against the schema
func (l *loader) Parse(data []byte, format string) (*Config, error) {
	switch format {
	case FormatJSON:
		if err := l.schemaValidator.ValidateBytes(data, validation.SchemaAmmoConfig); err != nil {
			return nil, fmt.Errorf(ErrMsgSchemaFailed, format, err)
		}
		records, err := decodeJSONRecords(data)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
		}
		return &Config{Records: records}, nil

	case FormatYAML:
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
		}
		if err := l.schemaValidator.ValidateValue(generic, validation.SchemaAmmoConfig); err != nil {
			return nil, fmt.Errorf(ErrMsgSchemaFailed, format, err)
		}
		records, err := decodeYAMLRecords(data)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
		}
		return &Config{Records: records}, nil

	default:
		return nil, fmt.Errorf(ErrMsgUnsupportedExtension, format)
	}
}

// Validate checks ids and field values of every record
func (l *loader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	seen := make(map[string]bool, len(config.Records))
	for i, r := range config.Records {
		if r.ID == "" {
			return fmt.Errorf(ErrFmtEmptyRecordID, ErrInvalidConfig, i)
		}
		if seen[r.ID] {
			return fmt.Errorf(ErrFmtDuplicateRecord, ErrDuplicateRecord, r.ID)
		}
		seen[r.ID] = true

		if err := l.validate.Struct(r.Record); err != nil {
			return fmt.Errorf(ErrFmtRecordInvalid, ErrInvalidConfig, r.ID, formatFieldErrors(err))
		}
	}
	return nil
}

func formatFieldErrors(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}

// decodeJSONRecords walks the "ammos" object token by token so records keep
// their file order.
func decodeJSONRecords(data []byte) ([]domain.NamedRecord, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, err
	}
	raw, ok := top[RecordsKey]
	if !ok {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New(ErrMsgRecordsNotObject)
	}

	var records []domain.NamedRecord
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		id, _ := keyTok.(string)

		var rec domain.ConfigRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("record '%s': %w", id, err)
		}
		records = append(records, domain.NamedRecord{ID: id, Record: rec})
	}
	return records, nil
}

// decodeYAMLRecords reads the "ammos" mapping node pair by pair so records
// keep their file order.
func decodeYAMLRecords(data []byte) ([]domain.NamedRecord, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]

	var ammos *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == RecordsKey {
			ammos = root.Content[i+1]
			break
		}
	}
	if ammos == nil {
		return nil, nil
	}
	if ammos.Kind != yaml.MappingNode {
		return nil, errors.New(ErrMsgRecordsNotObject)
	}

	records := make([]domain.NamedRecord, 0, len(ammos.Content)/2)
	for i := 0; i+1 < len(ammos.Content); i += 2 {
		id := ammos.Content[i].Value
		var rec domain.ConfigRecord
		if err := ammos.Content[i+1].Decode(&rec); err != nil {
			return nil, fmt.Errorf("record '%s': %w", id, err)
		}
		records = append(records, domain.NamedRecord{ID: id, Record: rec})
	}
	return records, nil
}
