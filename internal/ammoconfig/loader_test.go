package ammoconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AmmoBalance_Go/internal/domain"
	"github.com/osse101/AmmoBalance_Go/internal/validation"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func ids(c *Config) []string {
	out := make([]string, 0, len(c.Records))
	for _, r := range c.Records {
		out = append(out, r.ID)
	}
	return out
}

func TestLoader_LoadJSON(t *testing.T) {
	loader := NewLoader()

	t.Run("valid file keeps record order", func(t *testing.T) {
		path := writeFile(t, "ammo.json", `{
			"ammos": {
				"zeta": {"spawnRelativeProbability": {"origin": 3}, "fleaPrice": 100},
				"alpha": {"spawnRelativeProbability": {"origin": {"alpha": 1, "beta": 0}}},
				"mid": {"CanSellOnRagfair": false, "RemoveFromTraders": ["t1"], "ChangeTraderPrice": {"t2": 50}}
			}
		}`)

		config, err := loader.Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, ids(config))

		zeta := config.Records[0].Record
		origin, w, ok := zeta.SpawnRelativeProbability.Origin()
		require.True(t, ok)
		assert.Equal(t, "origin", origin)
		assert.Equal(t, map[string]float64{"zeta": 3}, w.Weights("zeta"))
		require.NotNil(t, zeta.FleaPrice)
		assert.Equal(t, 100, *zeta.FleaPrice)
		assert.Nil(t, zeta.HandbookPrice)

		_, w, _ = config.Records[1].Record.SpawnRelativeProbability.Origin()
		assert.Equal(t, map[string]float64{"alpha": 1, "beta": 0}, w.Weights("alpha"))

		mid, ok := config.Lookup("mid")
		require.True(t, ok)
		require.NotNil(t, mid.CanSellOnRagfair)
		assert.False(t, *mid.CanSellOnRagfair)
		assert.Nil(t, mid.CanRequireOnRagfair)
		assert.Nil(t, mid.SpawnRelativeProbability)
		assert.Equal(t, []string{"t1"}, mid.RemoveFromTraders)
		assert.Equal(t, map[string]int{"t2": 50}, mid.ChangeTraderPrice)

		require.NoError(t, loader.Validate(config))
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read ammo config file")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := loader.Load(writeFile(t, "bad.json", `{invalid json}`))
		require.Error(t, err)
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := loader.Load(writeFile(t, "bad.json", `{"ammos": {"a": {"fleaPrice": "cheap"}}}`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, validation.ErrSchemaValidation))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := loader.Load(writeFile(t, "ammo.toml", ``))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported config extension")
	})
}

func TestLoader_LoadYAML(t *testing.T) {
	loader := NewLoader()
	path := writeFile(t, "ammo.yaml", `
ammos:
  second:
    spawnRelativeProbability:
      origin: 2
    CanRequireOnRagfair: true
  first:
    spawnRelativeProbability:
      origin:
        first: 4
        other: 1
    handbookPrice: 90
`)

	config, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, ids(config))

	_, w, ok := config.Records[0].Record.SpawnRelativeProbability.Origin()
	require.True(t, ok)
	assert.Equal(t, map[string]float64{"second": 2}, w.Weights("second"))

	_, w, _ = config.Records[1].Record.SpawnRelativeProbability.Origin()
	assert.Equal(t, map[string]float64{"first": 4, "other": 1}, w.Weights("first"))
	require.NotNil(t, config.Records[1].Record.HandbookPrice)
	assert.Equal(t, 90, *config.Records[1].Record.HandbookPrice)
}

func TestLoader_Validate(t *testing.T) {
	loader := NewLoader()
	neg := -5

	tests := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{name: "nil config", config: nil, wantErr: ErrInvalidConfig},
		{
			name:    "empty id",
			config:  &Config{Records: []domain.NamedRecord{{ID: ""}}},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "duplicate id",
			config:  &Config{Records: []domain.NamedRecord{{ID: "a"}, {ID: "a"}}},
			wantErr: ErrDuplicateRecord,
		},
		{
			name:    "negative flea price",
			config:  &Config{Records: []domain.NamedRecord{{ID: "a", Record: domain.ConfigRecord{FleaPrice: &neg}}}},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "negative trader price",
			config: &Config{Records: []domain.NamedRecord{{ID: "a", Record: domain.ConfigRecord{
				ChangeTraderPrice: map[string]int{"t": -1},
			}}}},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "empty trader id",
			config: &Config{Records: []domain.NamedRecord{{ID: "a", Record: domain.ConfigRecord{
				RemoveFromTraders: []string{""},
			}}}},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "negative spawn weight is kept for the pass to skip",
			config: &Config{Records: []domain.NamedRecord{{ID: "a", Record: domain.ConfigRecord{
				SpawnRelativeProbability: domain.SpawnRelativeProbability{"X": {Variants: map[string]float64{"a": -1}}},
			}}}},
		},
		{
			name:   "empty config is fine",
			config: &Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Validate(tt.config)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_LoadShippedConfig(t *testing.T) {
	configPath := filepath.Join("..", "..", "configs", ConfigFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Skip("ammoConfig.json not found, skipping")
	}

	loader := NewLoader()
	config, err := loader.Load(configPath)
	require.NoError(t, err)
	require.NoError(t, loader.Validate(config))
	assert.NotEmpty(t, config.Records)
}
