package model

import (
	"fmt"
	"math"
)

// ItemID: catalog identifier of an item.
type ItemID uint32

// StainID: dye identifier. 0 means "no dye".
type StainID uint8

// NoStain: отсутствие краски.
const NoStain StainID = 0

// Fist weapons occupy a fixed block of mainhand model ids. Their offhand
// counterpart lives FistOffhandDelta ids above the mainhand model.
const (
	FistModelMin     = 1601
	FistModelMax     = 1649
	FistOffhandDelta = 50
)

// Item: resolved item identity, as handed out by the item catalog.
//
// ModelID is the "set id" of the model, WeaponType its secondary id (weapons only),
// Variant the model variant. Items produced by a catalog are always resolved;
// "nothing" items (see NothingItem) are valid empty sentinels.
type Item struct {
	ID         ItemID        `yaml:"id"`
	Name       string        `yaml:"name"`
	Type       FullEquipType `yaml:"type"`
	ModelID    uint16        `yaml:"model_id"`
	WeaponType uint16        `yaml:"weapon_type,omitempty"`
	Variant    uint8         `yaml:"variant"`
}

// NothingName is the display name of every empty sentinel item.
const NothingName = "Nothing"

// NothingID returns the reserved id of the empty item for category t.
// Reserved ids sit at the very top of the id space and never collide with catalog items.
func NothingID(t FullEquipType) ItemID {
	return ItemID(math.MaxUint32 - 128 - uint32(t))
}

// NothingItem returns the empty sentinel for category t (model 0, variant 0).
func NothingItem(t FullEquipType) Item {
	return Item{
		ID:   NothingID(t),
		Name: NothingName,
		Type: t,
	}
}

// IsNothing reports whether it is an empty sentinel.
func (it Item) IsNothing() bool {
	return it.ID == NothingID(it.Type)
}

// IsFistWeapon reports whether it is a fist weapon by its model id.
// Для таких оружий offhand-запись в design string описывает перчатки.
func (it Item) IsFistWeapon() bool {
	return it.ModelID >= FistModelMin && it.ModelID <= FistModelMax
}

// String returns "Name (model-type-variant)".
func (it Item) String() string {
	if it.Type.IsWeapon() || it.Type.IsOffhand() {
		return fmt.Sprintf("%s (%d-%d-%d)", it.Name, it.ModelID, it.WeaponType, it.Variant)
	}
	return fmt.Sprintf("%s (%d-%d)", it.Name, it.ModelID, it.Variant)
}
