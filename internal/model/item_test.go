package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNothingItem(t *testing.T) {
	for _, typ := range []FullEquipType{EquipTypeUnknown, EquipTypeHead, EquipTypeShield, EquipTypeFistsOff} {
		item := NothingItem(typ)
		assert.True(t, item.IsNothing(), typ.String())
		assert.Equal(t, NothingName, item.Name)
		assert.Equal(t, typ, item.Type)
		assert.Zero(t, item.ModelID)
		assert.Zero(t, item.Variant)
	}

	assert.NotEqual(t, NothingID(EquipTypeHead), NothingID(EquipTypeBody), "each category has its own empty id")
}

func TestItem_IsNothing(t *testing.T) {
	item := NothingItem(EquipTypeHead)
	item.Type = EquipTypeBody
	assert.False(t, item.IsNothing(), "id must match the category")

	assert.False(t, Item{ID: 3049, Type: EquipTypeHead, ModelID: 1, Variant: 1}.IsNothing())
}

func TestItem_IsFistWeapon(t *testing.T) {
	tests := []struct {
		model uint16
		want  bool
	}{
		{FistModelMin - 1, false},
		{FistModelMin, true},
		{1625, true},
		{FistModelMax, true},
		{FistModelMax + 1, false},
		{201, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Item{ModelID: tt.model}.IsFistWeapon(), "model %d", tt.model)
	}
}

func TestItem_String(t *testing.T) {
	sword := Item{Name: "Weathered Shortsword", Type: EquipTypeSword, ModelID: 201, WeaponType: 1, Variant: 1}
	assert.Equal(t, "Weathered Shortsword (201-1-1)", sword.String())

	hat := Item{Name: "Weathered Bandana", Type: EquipTypeHead, ModelID: 1, Variant: 1}
	assert.Equal(t, "Weathered Bandana (1-1)", hat.String())
}
