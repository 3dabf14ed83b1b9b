package redistribution

// MinimumShare is added to every normalized fraction so a variant configured
// with weight 0 still receives a share of the origin's presence.
const MinimumShare = 0.1

// OriginSelfWeight is the weight a group gives its origin before any record
// overrides it.
const OriginSelfWeight = 1.0

// ComposedKeySuffix is appended to a variant id to build the instance id of a
// synthesized spawn point item.
const ComposedKeySuffix = "_composedkey"

// MinSpawnWeight is the smallest distribution weight given to a synthesized
// spawn point item.
const MinSpawnWeight = 1

// DefaultMaps is the set of map regions whose loose loot is patched.
var DefaultMaps = []string{
	"bigmap",
	"woods",
	"factory4_day",
	"factory4_night",
	"interchange",
	"laboratory",
	"lighthouse",
	"rezervbase",
	"shoreline",
	"tarkovstreets",
}

// Skip reasons, used as metric labels
const (
	ReasonItemNotFound    = "item_not_found"
	ReasonCaliberNotFound = "caliber_not_found"
	ReasonMalformed       = "malformed"
	ReasonPlaceholder     = "placeholder"
	ReasonNegativeWeight  = "negative_weight"
	ReasonOriginNotFound  = "origin_not_found"
	ReasonZeroSum         = "zero_sum"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgItemNotFound         = "ammo not found in item database, skipping redistribution"
	LogMsgCaliberNotFound      = "caliber of ammo not found in static ammo"
	LogMsgMalformedProbability = "spawnRelativeProbability must name exactly one origin"
	LogMsgPlaceholderOrigin    = "spawnRelativeProbability still uses the placeholder origin"
	LogMsgNegativeWeight       = "spawnRelativeProbability has a negative weight"
	LogMsgOriginNotFound       = "origin not found in item database"
	LogMsgOriginCaliberMissing = "caliber of origin not found in static ammo"
	LogMsgZeroSum              = "relative weights sum to zero, group left untouched"
	LogMsgOriginNotInPool      = "origin not found in static ammo pool of its caliber"
	LogMsgGroupPatched         = "variant group propagated"
	LogMsgStarted              = "redistribution started"
	LogMsgStaticAmmoAdded      = "added ammos to staticAmmo"
	LogMsgStaticLootAdded      = "added entries to staticLoot tables"
	LogMsgMapSpawnsAdded       = "added entries to map-specific tables"
)

// Log field keys
const (
	LogFieldAmmo       = "ammo"
	LogFieldOrigin     = "origin"
	LogFieldCaliber    = "caliber"
	LogFieldWeights    = "weights"
	LogFieldCount      = "count"
	LogFieldGroups     = "groups"
	LogFieldStaticAmmo = "static_ammo"
	LogFieldStaticLoot = "static_loot"
	LogFieldMapSpawns  = "map_spawns"
)
