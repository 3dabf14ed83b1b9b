package catalogedit

// Field names, used as metric labels
const (
	FieldRagfairFlags   = "ragfair_flags"
	FieldTraderRemoval  = "trader_removal"
	FieldTraderPrice    = "trader_price"
	FieldHandbookPrice  = "handbook_price"
	FieldFleaPrice      = "flea_price"
	FieldFleaPriceUnset = "flea_price_removed"
)

// Log messages
const (
	LogMsgItemNotFound     = "ammo not found in item database"
	LogMsgTraderNotFound   = "trader not found in traders"
	LogMsgNotInAssort      = "ammo not found in trader assort"
	LogMsgBarterNotFound   = "ammo barter scheme not found in trader"
	LogMsgHandbookNotFound = "ammo not found in handbook"
	LogMsgFinished         = "catalog field edits applied"
)

// Log field keys
const (
	LogFieldAmmo   = "ammo"
	LogFieldTrader = "trader"
	LogFieldEdits  = "edits"
	LogFieldMisses = "misses"
)
