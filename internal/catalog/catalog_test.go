package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AmmoBalance_Go/internal/domain"
	"github.com/osse101/AmmoBalance_Go/internal/validation"
)

const snapshot = `{
  "items": {"X": {"_id": "X", "_props": {"Caliber": "Caliber9x19PARA", "CanSellOnRagfair": true}}},
  "prices": {"X": 100},
  "staticAmmo": {"Caliber9x19PARA": [{"tpl": "X", "relativeProbability": 50}]},
  "staticLoot": {"box": {"itemDistribution": [{"tpl": "X", "relativeProbability": 3}]}},
  "locations": {"woods": {"looseLoot": {"spawnpoints": [{
    "template": {"Items": [{"_id": "i1", "_tpl": "X", "upd": {"StackObjectsCount": 4}}]},
    "itemDistribution": [{"composedKey": {"key": "i1"}, "relativeProbability": 9}]
  }]}}}
}`

func TestStore_LoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(in, []byte(snapshot), 0o644))

	store := NewStore()
	tables, err := store.Load(in)
	require.NoError(t, err)

	assert.Equal(t, "Caliber9x19PARA", tables.Items["X"].Props.Caliber)
	assert.True(t, tables.Items["X"].Props.CanSellOnRagfair)
	assert.Equal(t, 50, tables.StaticAmmo["Caliber9x19PARA"][0].RelativeProbability)
	point := tables.Locations["woods"].LooseLoot.Spawnpoints[0]
	assert.Equal(t, 4, point.Template.Items[0].StackCount())
	assert.NotNil(t, tables.Traders)

	out := filepath.Join(dir, "out.json")
	require.NoError(t, store.Save(out, tables))
	again, err := store.Load(out)
	require.NoError(t, err)

	second := filepath.Join(dir, "second.json")
	require.NoError(t, store.Save(second, again))
	first, err := os.ReadFile(out)
	require.NoError(t, err)
	resaved, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(resaved))
}

const hostSnapshot = `{
  "globals": {"config": {"RagFair": {"enabled": true}}},
  "items": {"X": {"_id": "X", "_type": "Item", "_props": {
    "Caliber": "Caliber9x19PARA", "CanSellOnRagfair": true, "CanRequireOnRagfair": true,
    "Damage": 54, "PenetrationPower": 20, "StackMaxSize": 0
  }}},
  "handbook": {"Categories": [{"Id": "ammo"}], "Items": [{"Id": "X", "ParentId": "ammo", "Price": 80}]},
  "traders": {"t1": {
    "base": {"nickname": "Prapor"},
    "assort": {
      "items": [{"_id": "a1", "_tpl": "X", "parentId": "hideout", "slotId": "hideout", "upd": {"StackObjectsCount": 500}}],
      "barter_scheme": {"a1": [[{"count": 90, "_tpl": "R", "level": 2}]]},
      "loyal_level_items": {"a1": 1}
    }
  }},
  "staticAmmo": {"Caliber9x19PARA": [{"tpl": "X", "relativeProbability": 50}]},
  "staticLoot": {"box": {"itemcountDistribution": [{"count": 1}], "itemDistribution": [{"tpl": "X", "relativeProbability": 3}]}},
  "locations": {"woods": {
    "base": {"Name": "Woods"},
    "looseLoot": {"spawnpointCount": {"mean": 5}, "spawnpoints": [{
      "locationId": "(1, 2, 3)", "probability": 0, "isAlwaysSpawn": false,
      "template": {"Id": "sp1", "Position": {"x": 1}, "Items": [{"_id": "i1", "_tpl": "X", "location": 0, "upd": {"StackObjectsCount": 4, "SpawnedInSession": true}}]},
      "itemDistribution": [{"composedKey": {"key": "i1"}, "relativeProbability": 9}]
    }]}
  }}
}`

func TestStore_SaveKeepsUnmodeledFields(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(in, []byte(hostSnapshot), 0o644))

	store := NewStore()
	tables, err := store.Load(in)
	require.NoError(t, err)

	tables.Items["X"].Props.CanSellOnRagfair = false
	tables.Traders["t1"].Assort.BarterScheme["a1"][0][0].Count = 120
	point := &tables.Locations["woods"].LooseLoot.Spawnpoints[0]
	point.Template.Items = append(point.Template.Items, domain.ItemInstance{ID: "Y_composedkey", Tpl: "Y", Upd: point.Template.Items[0].Upd})

	out := filepath.Join(dir, "out.json")
	require.NoError(t, store.Save(out, tables))
	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	at := func(path ...any) any {
		var cur any = doc
		for _, p := range path {
			switch key := p.(type) {
			case string:
				cur = cur.(map[string]any)[key]
			case int:
				cur = cur.([]any)[key]
			}
		}
		return cur
	}

	tests := []struct {
		name string
		path []any
		want any
	}{
		{"top level section", []any{"globals", "config", "RagFair", "enabled"}, true},
		{"item type", []any{"items", "X", "_type"}, "Item"},
		{"item damage", []any{"items", "X", "_props", "Damage"}, 54.0},
		{"item penetration", []any{"items", "X", "_props", "PenetrationPower"}, 20.0},
		{"omitted zero value", []any{"items", "X", "_props", "StackMaxSize"}, 0.0},
		{"edited flag", []any{"items", "X", "_props", "CanSellOnRagfair"}, false},
		{"handbook categories", []any{"handbook", "Categories", 0, "Id"}, "ammo"},
		{"trader base", []any{"traders", "t1", "base", "nickname"}, "Prapor"},
		{"assort loyalty", []any{"traders", "t1", "assort", "loyal_level_items", "a1"}, 1.0},
		{"assort item upd", []any{"traders", "t1", "assort", "items", 0, "upd", "StackObjectsCount"}, 500.0},
		{"barter level", []any{"traders", "t1", "assort", "barter_scheme", "a1", 0, 0, "level"}, 2.0},
		{"edited barter count", []any{"traders", "t1", "assort", "barter_scheme", "a1", 0, 0, "count"}, 120.0},
		{"container count distribution", []any{"staticLoot", "box", "itemcountDistribution", 0, "count"}, 1.0},
		{"location base", []any{"locations", "woods", "base", "Name"}, "Woods"},
		{"spawnpoint count", []any{"locations", "woods", "looseLoot", "spawnpointCount", "mean"}, 5.0},
		{"spawn point probability", []any{"locations", "woods", "looseLoot", "spawnpoints", 0, "probability"}, 0.0},
		{"spawn point flag", []any{"locations", "woods", "looseLoot", "spawnpoints", 0, "isAlwaysSpawn"}, false},
		{"template position", []any{"locations", "woods", "looseLoot", "spawnpoints", 0, "template", "Position", "x"}, 1.0},
		{"instance location", []any{"locations", "woods", "looseLoot", "spawnpoints", 0, "template", "Items", 0, "location"}, 0.0},
		{"instance upd", []any{"locations", "woods", "looseLoot", "spawnpoints", 0, "template", "Items", 0, "upd", "SpawnedInSession"}, true},
		{"copied upd", []any{"locations", "woods", "looseLoot", "spawnpoints", 0, "template", "Items", 1, "upd", "SpawnedInSession"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, at(tt.path...))
		})
	}
}

func TestStore_LoadRejectsBrokenSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items": {}}`), 0o644))

	_, err := NewStore().Load(path)
	assert.ErrorIs(t, err, validation.ErrSchemaValidation)
}

func TestStore_LoadMissingFile(t *testing.T) {
	_, err := NewStore().Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog file")
}

func TestStore_SaveEmptyTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	tables := &domain.Tables{}
	ensureMaps(tables)
	require.NoError(t, NewStore().Save(path, tables))

	_, err := NewStore().Load(path)
	assert.NoError(t, err)
}

func TestStore_LoadSampleCatalog(t *testing.T) {
	path := filepath.Join("..", "..", "data", "catalog.json")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("sample catalog not found, skipping")
	}

	tables, err := NewStore().Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, tables.Items)
	assert.Contains(t, tables.StaticAmmo, "Caliber556x45NATO")
	require.Contains(t, tables.Locations, "woods")
	assert.Len(t, tables.Locations["woods"].LooseLoot.Spawnpoints, 1)
}
