package model

// Equipped: item plus its dye in one slot.
type Equipped struct {
	Item  Item    `yaml:"item"`
	Stain StainID `yaml:"stain"`
}

// Appearance: character appearance record: body model, customization,
// equipment per slot and visibility/meta state.
//
// Appearance is a plain value: copies are independent and two records
// compare equal with == when every field matches.
type Appearance struct {
	// ModelID: body model; 0 is the default human.
	ModelID   uint32    `yaml:"model_id"`
	Customize Customize `yaml:"customize"`

	Equipment [SlotCount]Equipped `yaml:"equipment"`

	HatVisible    bool `yaml:"hat_visible"`
	WeaponVisible bool `yaml:"weapon_visible"`
	VisorToggled  bool `yaml:"visor_toggled"`
	IsWet         bool `yaml:"is_wet"`
}

// NewAppearance returns a default human with empty armor slots, visible hat and weapon.
// Weapon slots stay zero until a catalog supplies real items.
func NewAppearance() Appearance {
	a := Appearance{
		HatVisible:    true,
		WeaponVisible: true,
	}
	for _, s := range ArmorSlots {
		a.Equipment[s].Item = NothingItem(s.EquipType())
	}
	return a
}

// Item returns the item in slot s.
func (a *Appearance) Item(s EquipSlot) Item {
	if !s.Valid() {
		return Item{}
	}
	return a.Equipment[s].Item
}

// SetItem puts item into slot s. Unknown slots are ignored.
func (a *Appearance) SetItem(s EquipSlot, item Item) {
	if !s.Valid() {
		return
	}
	a.Equipment[s].Item = item
}

// Stain returns the dye of slot s.
func (a *Appearance) Stain(s EquipSlot) StainID {
	if !s.Valid() {
		return NoStain
	}
	return a.Equipment[s].Stain
}

// SetStain dyes slot s.
func (a *Appearance) SetStain(s EquipSlot, stain StainID) {
	if !s.Valid() {
		return
	}
	a.Equipment[s].Stain = stain
}

// SetAllStains dyes every slot with the same stain.
func (a *Appearance) SetAllStains(stain StainID) {
	for i := range a.Equipment {
		a.Equipment[i].Stain = stain
	}
}

// ClearSlot empties slot s and removes its dye.
//
// Mainhand cannot be emptied and returns false. Offhand is reset to the empty
// item of the category the current mainhand requires.
func (a *Appearance) ClearSlot(s EquipSlot) bool {
	switch {
	case !s.Valid(), s == SlotMainHand:
		return false
	case s == SlotOffHand:
		a.Equipment[s].Item = NothingItem(a.Equipment[SlotMainHand].Item.Type.ValidOffhand())
	default:
		a.Equipment[s].Item = NothingItem(s.EquipType())
	}
	a.Equipment[s].Stain = NoStain
	return true
}
