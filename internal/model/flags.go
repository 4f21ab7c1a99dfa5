package model

// EquipFlag: bitset over {slot × {item, stain}}.
// Bit 2*slot selects the item, bit 2*slot+1 its stain.
type EquipFlag uint32

// EquipFlagAll selects every item and stain.
const EquipFlagAll EquipFlag = 1<<(2*SlotCount) - 1

// ItemFlag returns the apply-item bit for slot s.
func ItemFlag(s EquipSlot) EquipFlag {
	return 1 << (2 * uint(s))
}

// StainFlag returns the apply-stain bit for slot s.
func StainFlag(s EquipSlot) EquipFlag {
	return 1 << (2*uint(s) + 1)
}

// SlotFlags returns item and stain bits of s together.
func SlotFlags(s EquipSlot) EquipFlag {
	return ItemFlag(s) | StainFlag(s)
}

// Has reports whether every bit of other is set in f.
func (f EquipFlag) Has(other EquipFlag) bool {
	return f&other == other
}

// HasItem reports whether the item of slot s should be applied.
func (f EquipFlag) HasItem(s EquipSlot) bool {
	return f.Has(ItemFlag(s))
}

// HasStain reports whether the stain of slot s should be applied.
func (f EquipFlag) HasStain(s EquipSlot) bool {
	return f.Has(StainFlag(s))
}

// CustomizeCount: number of customization bytes in a design.
const CustomizeCount = 26

// Customize: opaque customization blob. The codec copies it verbatim.
type Customize [CustomizeCount]byte

// CustomizeFlag: one bit per customization index.
type CustomizeFlag uint32

// CustomizeFlagAll selects every customization index.
const CustomizeFlagAll CustomizeFlag = 1<<CustomizeCount - 1

// Has reports whether index i is selected.
func (f CustomizeFlag) Has(i int) bool {
	if i < 0 || i >= CustomizeCount {
		return false
	}
	return f&(1<<uint(i)) != 0
}
