package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema names
const (
	SchemaAmmoConfig = "ammo_config.schema.json"
	SchemaCatalog    = "catalog.schema.json"
)

// compiledSchemaCacheSize bounds the number of compiled schemas kept in memory.
const compiledSchemaCacheSize = 16

//go:embed schemas/*.json
var embeddedSchemas embed.FS

// ErrSchemaValidation wraps every document rejected by a schema.
var ErrSchemaValidation = errors.New("schema validation failed")

// SchemaValidator validates JSON documents against named JSON schemas
type SchemaValidator interface {
	ValidateBytes(data []byte, schemaName string) error
	ValidateValue(v any, schemaName string) error
}

type validator struct {
	fsys    fs.FS
	schemas *lru.Cache[string, *jsonschema.Schema]
}

// NewSchemaValidator creates a validator over the schemas shipped with the binary
func NewSchemaValidator() SchemaValidator {
	sub, err := fs.Sub(embeddedSchemas, "schemas")
	if err != nil {
		panic(err)
	}
	return NewSchemaValidatorFS(sub)
}

// NewSchemaValidatorFS creates a validator reading schemas from fsys
func NewSchemaValidatorFS(fsys fs.FS) SchemaValidator {
	cache, err := lru.New[string, *jsonschema.Schema](compiledSchemaCacheSize)
	if err != nil {
		panic(err)
	}
	return &validator{fsys: fsys, schemas: cache}
}

// ValidateBytes validates JSON data bytes against a schema
func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	return v.validate(doc, schemaName)
}

// ValidateValue validates an already decoded value, such as a YAML document,
// by round-tripping it through JSON first.
func (v *validator) ValidateValue(value any, schemaName string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value as JSON: %w", err)
	}
	return v.ValidateBytes(data, schemaName)
}

func (v *validator) validate(doc any, schemaName string) error {
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// loadSchema loads and compiles a schema, caching the result
func (v *validator) loadSchema(schemaName string) (*jsonschema.Schema, error) {
	if schema, ok := v.schemas.Get(schemaName); ok {
		return schema, nil
	}

	schemaData, err := fs.ReadFile(v.fsys, path.Clean(schemaName))
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	schemaJSON, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaName, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas.Add(schemaName, schema)
	return schema, nil
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var lines []string
		collectErrors(validationErr, &lines)
		return fmt.Errorf("%w:\n%s", ErrSchemaValidation, strings.Join(lines, "\n"))
	}
	return fmt.Errorf("%w: %w", ErrSchemaValidation, err)
}

// collectErrors recursively collects the leaf validation errors
func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	if keywords == "" {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
}
