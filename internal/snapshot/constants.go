package snapshot

// Decoded field names, used in DecodeFailure.Field and metric labels
const (
	FieldSlot        = "slot"
	FieldSlotType    = "slot_type"
	FieldType        = "type"
	FieldAmount      = "amount"
	FieldDamage      = "damage"
	FieldDisplayName = "display_name"
	FieldEnchants    = "enchants"
	FieldLore        = "lore"
	FieldUnbreakable = "unbreakable"
	FieldData        = "data"
)

// Defaults applied when a stored column is NULL or unreadable
const (
	DefaultAmount = 1
	DefaultDamage = 0
	DefaultSlot   = 0
)

// emptyJSONMarkers decode to an empty value without a failure report.
var emptyJSONMarkers = map[string]bool{
	"":     true,
	"null": true,
	"0":    true,
}

// Error messages
const (
	ErrMsgNilPlayer      = "player is required"
	ErrMsgMissingXUID    = "player xuid is required"
	ErrMsgNilInventory   = "player has no inventory"
	ErrMsgNilEnderChest  = "player has no ender chest"
	ErrMsgSaveInventory  = "failed to save inventory"
	ErrMsgSaveEnderChest = "failed to save ender chest"
	ErrMsgLoadSnapshot   = "failed to load snapshot"
	ErrMsgNotNumeric     = "value is not numeric"
	ErrMsgUnknownKind    = "unknown container kind"
	ErrMsgBelowMinimum   = "value below minimum"
	ErrMsgEquipmentSlot  = "equipment row not at slot 0"
)

// Log messages
const (
	LogMsgSnapshotSaved = "Snapshot saved"
	LogMsgDecodeFailure = "Stored snapshot field could not be decoded"
)
