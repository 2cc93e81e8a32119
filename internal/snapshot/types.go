package snapshot

import "github.com/osse101/InventoryManager_Go/internal/domain"

// ItemStack is what the game engine exposes for one stack of items.
type ItemStack struct {
	Type        string         `json:"type"`
	Amount      int            `json:"amount"`
	Damage      int            `json:"damage"`
	DisplayName string         `json:"display_name,omitempty"`
	Enchants    map[string]int `json:"enchants,omitempty"`
	Lore        []string       `json:"lore,omitempty"`
	Unbreakable bool           `json:"unbreakable,omitempty"`
	Data        *int64         `json:"data,omitempty"`
}

// Container is a fixed-size slot array. Item returns nil for an empty slot.
type Container interface {
	Size() int
	Item(slot int) *ItemStack
}

// Inventory is a player's main inventory plus the equipment positions.
type Inventory interface {
	Container
	Equipment(kind domain.ContainerKind) *ItemStack
}

// Player is the live handle a snapshot is taken from.
type Player interface {
	XUID() string
	Name() string
	Inventory() Inventory
	EnderChest() Container
}

// ContainerState is a plain-data Container. Slots[i] is slot i; nil is empty.
type ContainerState struct {
	Slots []*ItemStack `json:"slots"`
}

func (c ContainerState) Size() int { return len(c.Slots) }

func (c ContainerState) Item(slot int) *ItemStack {
	if slot < 0 || slot >= len(c.Slots) {
		return nil
	}
	return c.Slots[slot]
}

// InventoryState is a plain-data Inventory.
type InventoryState struct {
	ContainerState
	Armor map[domain.ContainerKind]*ItemStack `json:"equipment,omitempty"`
}

func (s InventoryState) Equipment(kind domain.ContainerKind) *ItemStack {
	return s.Armor[kind]
}

// PlayerState is a plain-data Player, as sent over HTTP by the game plugin.
type PlayerState struct {
	ID         string         `json:"xuid" validate:"required,max=64"`
	PlayerName string         `json:"name" validate:"required,max=64"`
	Inv        InventoryState `json:"inventory"`
	Ender      ContainerState `json:"ender_chest"`
}

func (p *PlayerState) XUID() string          { return p.ID }
func (p *PlayerState) Name() string          { return p.PlayerName }
func (p *PlayerState) Inventory() Inventory  { return p.Inv }
func (p *PlayerState) EnderChest() Container { return p.Ender }

// Result is a decoded snapshot plus the fields that had to be defaulted.
type Result struct {
	Records  []domain.SlotRecord `json:"items"`
	Failures []DecodeFailure     `json:"warnings"`
}
