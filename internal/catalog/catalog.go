// Package catalog reads and writes the catalog snapshot the balancing pass
// operates on.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/AmmoBalance_Go/internal/domain"
	"github.com/osse101/AmmoBalance_Go/internal/validation"
)

const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgWriteCatalogFailed = "failed to write catalog file: %w"
)

// Store loads and saves catalog snapshots.
type Store struct {
	schemaValidator validation.SchemaValidator
}

// NewStore creates a Store validating snapshots against the catalog schema.
func NewStore() *Store {
	return &Store{schemaValidator: validation.NewSchemaValidator()}
}

// Load reads a snapshot from path.
func (s *Store) Load(path string) (*domain.Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	if err := s.schemaValidator.ValidateBytes(data, validation.SchemaCatalog); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var tables domain.Tables
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	ensureMaps(&tables)
	return &tables, nil
}

// Save writes tables to path as indented JSON.
func (s *Store) Save(path string, tables *domain.Tables) error {
	data, err := json.MarshalIndent(tables, "", "  ")
	if err != nil {
		return fmt.Errorf(ErrMsgWriteCatalogFailed, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf(ErrMsgWriteCatalogFailed, err)
	}
	return nil
}

// ensureMaps replaces absent sections with empty ones so callers can write
// into them.
func ensureMaps(t *domain.Tables) {
	if t.Items == nil {
		t.Items = make(map[string]*domain.ItemTemplate)
	}
	if t.Prices == nil {
		t.Prices = make(map[string]int)
	}
	if t.Traders == nil {
		t.Traders = make(map[string]*domain.Trader)
	}
	if t.StaticAmmo == nil {
		t.StaticAmmo = make(map[string]domain.WeightedPool)
	}
	if t.StaticLoot == nil {
		t.StaticLoot = make(map[string]*domain.ContainerLoot)
	}
	if t.Locations == nil {
		t.Locations = make(map[string]*domain.Location)
	}
}
