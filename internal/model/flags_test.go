package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquipFlag_Bits(t *testing.T) {
	var all EquipFlag
	for _, s := range AllSlots() {
		item, stain := ItemFlag(s), StainFlag(s)
		assert.NotEqual(t, item, stain)
		assert.Zero(t, all&(item|stain), "bits of %s overlap", s)
		all |= SlotFlags(s)
	}
	assert.Equal(t, EquipFlagAll, all)
}

func TestEquipFlag_HasItemHasStain(t *testing.T) {
	f := ItemFlag(SlotHead) | StainFlag(SlotFeet)

	assert.True(t, f.HasItem(SlotHead))
	assert.False(t, f.HasStain(SlotHead))
	assert.False(t, f.HasItem(SlotFeet))
	assert.True(t, f.HasStain(SlotFeet))
	assert.False(t, f.Has(SlotFlags(SlotHead)))
}

func TestCustomizeFlag_Has(t *testing.T) {
	assert.True(t, CustomizeFlagAll.Has(0))
	assert.True(t, CustomizeFlagAll.Has(CustomizeCount-1))
	assert.False(t, CustomizeFlagAll.Has(CustomizeCount))
	assert.False(t, CustomizeFlagAll.Has(-1))
	assert.False(t, CustomizeFlag(0).Has(3))
}
