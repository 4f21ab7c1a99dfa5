package model

// FullEquipType: категория предмета (armor piece or weapon class).
type FullEquipType uint8

const (
	EquipTypeUnknown FullEquipType = iota

	EquipTypeHead
	EquipTypeBody
	EquipTypeHands
	EquipTypeLegs
	EquipTypeFeet
	EquipTypeEars
	EquipTypeNeck
	EquipTypeWrists
	EquipTypeFinger

	EquipTypeFists
	EquipTypeFistsOff
	EquipTypeSword
	EquipTypeShield
	EquipTypeAxe
	EquipTypeLance
	EquipTypeBow
	EquipTypeBowOff
	EquipTypeStaff
	EquipTypeWand
	EquipTypeDaggers
	EquipTypeDaggersOff
	EquipTypeGun
	EquipTypeGunOff
)

var equipTypeNames = [...]string{
	EquipTypeUnknown:    "Unknown",
	EquipTypeHead:       "Head",
	EquipTypeBody:       "Body",
	EquipTypeHands:      "Hands",
	EquipTypeLegs:       "Legs",
	EquipTypeFeet:       "Feet",
	EquipTypeEars:       "Ears",
	EquipTypeNeck:       "Neck",
	EquipTypeWrists:     "Wrists",
	EquipTypeFinger:     "Finger",
	EquipTypeFists:      "Fists",
	EquipTypeFistsOff:   "FistsOff",
	EquipTypeSword:      "Sword",
	EquipTypeShield:     "Shield",
	EquipTypeAxe:        "Axe",
	EquipTypeLance:      "Lance",
	EquipTypeBow:        "Bow",
	EquipTypeBowOff:     "BowOff",
	EquipTypeStaff:      "Staff",
	EquipTypeWand:       "Wand",
	EquipTypeDaggers:    "Daggers",
	EquipTypeDaggersOff: "DaggersOff",
	EquipTypeGun:        "Gun",
	EquipTypeGunOff:     "GunOff",
}

// String returns the category name.
func (t FullEquipType) String() string {
	if int(t) < len(equipTypeNames) {
		return equipTypeNames[t]
	}
	return "Unknown"
}

// ParseEquipType maps a category name back to its value.
func ParseEquipType(name string) (FullEquipType, bool) {
	for i, n := range equipTypeNames {
		if n == name {
			return FullEquipType(i), true
		}
	}
	return EquipTypeUnknown, false
}

// IsWeapon reports whether t is a mainhand weapon class.
func (t FullEquipType) IsWeapon() bool {
	switch t {
	case EquipTypeFists, EquipTypeSword, EquipTypeAxe, EquipTypeLance, EquipTypeBow,
		EquipTypeStaff, EquipTypeWand, EquipTypeDaggers, EquipTypeGun:
		return true
	}
	return false
}

// IsOffhand reports whether t can only be worn in the offhand.
func (t FullEquipType) IsOffhand() bool {
	switch t {
	case EquipTypeFistsOff, EquipTypeShield, EquipTypeBowOff, EquipTypeDaggersOff, EquipTypeGunOff:
		return true
	}
	return false
}

// ValidOffhand returns the offhand category a mainhand of type t requires.
// Two-handed weapons return EquipTypeUnknown: the offhand stays empty.
func (t FullEquipType) ValidOffhand() FullEquipType {
	switch t {
	case EquipTypeSword, EquipTypeWand:
		return EquipTypeShield
	case EquipTypeFists:
		return EquipTypeFistsOff
	case EquipTypeBow:
		return EquipTypeBowOff
	case EquipTypeDaggers:
		return EquipTypeDaggersOff
	case EquipTypeGun:
		return EquipTypeGunOff
	default:
		return EquipTypeUnknown
	}
}
