package model

// EquipSlot: место на персонаже, куда надевается предмет.
// Weapons always come first, then the ten armor slots in canonical order.
type EquipSlot uint8

const (
	SlotMainHand EquipSlot = iota
	SlotOffHand
	SlotHead
	SlotBody
	SlotHands
	SlotLegs
	SlotFeet
	SlotEars
	SlotNeck
	SlotWrist
	SlotRFinger
	SlotLFinger

	// SlotCount: total number of equipment slots (2 weapons + 10 armor).
	SlotCount = 12

	// ArmorSlotCount: number of non-weapon slots.
	ArmorSlotCount = 10
)

// ArmorSlots is the canonical order of the ten non-weapon slots.
// Bit-to-slot mapping and the armor block of a design string both follow it.
var ArmorSlots = [ArmorSlotCount]EquipSlot{
	SlotHead,
	SlotBody,
	SlotHands,
	SlotLegs,
	SlotFeet,
	SlotEars,
	SlotNeck,
	SlotWrist,
	SlotRFinger,
	SlotLFinger,
}

// WeaponSlots: mainhand, offhand.
var WeaponSlots = [2]EquipSlot{SlotMainHand, SlotOffHand}

// AllSlots returns every slot in wire order (weapons first).
func AllSlots() [SlotCount]EquipSlot {
	return [SlotCount]EquipSlot{
		SlotMainHand, SlotOffHand,
		SlotHead, SlotBody, SlotHands, SlotLegs, SlotFeet,
		SlotEars, SlotNeck, SlotWrist, SlotRFinger, SlotLFinger,
	}
}

// Valid reports whether s is one of the twelve known slots.
func (s EquipSlot) Valid() bool {
	return s < SlotCount
}

// IsWeapon reports whether s is mainhand or offhand.
func (s EquipSlot) IsWeapon() bool {
	return s == SlotMainHand || s == SlotOffHand
}

// ArmorIndex returns the position of s in ArmorSlots, or -1 for weapons.
func (s EquipSlot) ArmorIndex() int {
	if s.IsWeapon() || !s.Valid() {
		return -1
	}
	return int(s) - int(SlotHead)
}

// EquipType returns the armor equip type worn in this slot.
// Weapon slots have no fixed type and return EquipTypeUnknown.
func (s EquipSlot) EquipType() FullEquipType {
	switch s {
	case SlotHead:
		return EquipTypeHead
	case SlotBody:
		return EquipTypeBody
	case SlotHands:
		return EquipTypeHands
	case SlotLegs:
		return EquipTypeLegs
	case SlotFeet:
		return EquipTypeFeet
	case SlotEars:
		return EquipTypeEars
	case SlotNeck:
		return EquipTypeNeck
	case SlotWrist:
		return EquipTypeWrists
	case SlotRFinger, SlotLFinger:
		return EquipTypeFinger
	default:
		return EquipTypeUnknown
	}
}

// String returns human-readable slot name.
func (s EquipSlot) String() string {
	switch s {
	case SlotMainHand:
		return "MainHand"
	case SlotOffHand:
		return "OffHand"
	case SlotHead:
		return "Head"
	case SlotBody:
		return "Body"
	case SlotHands:
		return "Hands"
	case SlotLegs:
		return "Legs"
	case SlotFeet:
		return "Feet"
	case SlotEars:
		return "Ears"
	case SlotNeck:
		return "Neck"
	case SlotWrist:
		return "Wrist"
	case SlotRFinger:
		return "RFinger"
	case SlotLFinger:
		return "LFinger"
	default:
		return "Unknown"
	}
}

// ParseSlot is the inverse of String. Returns false for unknown names.
func ParseSlot(name string) (EquipSlot, bool) {
	for _, s := range AllSlots() {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}
