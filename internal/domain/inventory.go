package domain

import "strings"

// ContainerKind tells numbered slots apart from the fixed equipment positions.
type ContainerKind string

const (
	KindSlot       ContainerKind = "slot"
	KindHelmet     ContainerKind = "helmet"
	KindChestplate ContainerKind = "chestplate"
	KindLeggings   ContainerKind = "leggings"
	KindBoots      ContainerKind = "boots"
	KindOffhand    ContainerKind = "offhand"
)

// EquipmentKinds lists the equipment positions in the order they are saved.
var EquipmentKinds = []ContainerKind{
	KindHelmet,
	KindChestplate,
	KindLeggings,
	KindBoots,
	KindOffhand,
}

// Valid reports whether k is one of the known container kinds.
func (k ContainerKind) Valid() bool {
	switch k {
	case KindSlot, KindHelmet, KindChestplate, KindLeggings, KindBoots, KindOffhand:
		return true
	}
	return false
}

// IsEquipment reports whether k is an equipment position.
func (k ContainerKind) IsEquipment() bool {
	return k.Valid() && k != KindSlot
}

// SlotRecord is one occupied slot of a stored snapshot.
type SlotRecord struct {
	XUID        string         `json:"xuid"`
	PlayerName  string         `json:"name"`
	Kind        ContainerKind  `json:"slot_type"`
	Slot        int            `json:"slot"`
	Type        string         `json:"type"`
	Amount      int            `json:"amount"`
	Damage      int            `json:"damage"`
	DisplayName string         `json:"display_name"`
	Enchants    map[string]int `json:"enchants"`
	Lore        []string       `json:"lore"`
	Unbreakable bool           `json:"unbreakable"`
	Data        *int64         `json:"data"`
}

// IsAirType reports whether an item type string denotes an empty slot.
func IsAirType(itemType string) bool {
	switch strings.ToLower(strings.TrimSpace(itemType)) {
	case "", ItemTypeAirShort, ItemTypeAir:
		return true
	}
	return false
}
