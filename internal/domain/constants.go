package domain

// Item type sentinels
const (
	ItemTypeAir      = "minecraft:air"
	ItemTypeAirShort = "air"
)

// EquipmentSlotIndex is stored for every equipment row; the position is
// carried by the container kind.
const EquipmentSlotIndex = 0

// Table names of the snapshot store
const (
	TableUsers       = "users"
	TableInventories = "inventories"
	TableEnderChests = "ender_chests"
)
