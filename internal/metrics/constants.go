package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Redistribution metric names
const (
	MetricNameEntriesAdded   = "balance_loot_entries_added_total"
	MetricNameGroupsTotal    = "balance_variant_groups_total"
	MetricNameGroupsSkipped  = "balance_variant_groups_skipped_total"
	MetricNameRecordsSkipped = "balance_config_records_skipped_total"
)

// Catalog edit metric names
const (
	MetricNameFieldEdits      = "balance_catalog_field_edits_total"
	MetricNameFieldEditMisses = "balance_catalog_field_edit_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextEntriesAdded    = "Loot table entries added by the redistribution pass, by table kind"
	HelpTextGroupsTotal     = "Variant groups propagated into loot tables"
	HelpTextGroupsSkipped   = "Variant groups skipped, by reason"
	HelpTextRecordsSkipped  = "Balancing config records skipped before grouping, by reason"
	HelpTextFieldEdits      = "Catalog field edits applied, by field"
	HelpTextFieldEditMisses = "Catalog field edits that found no target, by field"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelKind   = "kind"
	LabelReason = "reason"
	LabelField  = "field"
)

// Table kinds
const (
	KindStaticAmmo = "static_ammo"
	KindStaticLoot = "static_loot"
	KindMapSpawn   = "map_spawn"
)
