package design

import "github.com/udisondev/glamourgo/internal/model"

// Design: decoded design string: the appearance plus which parts of it
// a caller should apply.
type Design struct {
	Appearance model.Appearance

	EquipFlags     model.EquipFlag
	CustomizeFlags model.CustomizeFlag

	WriteProtected bool
	ApplyHat       bool
	ApplyVisor     bool
	ApplyWeapon    bool

	// NonHuman: модель не носит обычную экипировку. Items are not resolved;
	// RawEquipment keeps the weapon and armor records verbatim and Encode
	// writes them back unchanged.
	NonHuman     bool
	RawEquipment [EquipmentBlockSize]byte
}

// ApplyTo copies the selected parts of the design onto target.
//
//   - items and stains per slot, as selected by EquipFlags;
//   - customization bytes per index; a full selection also carries model id and wetness;
//   - hat, visor and weapon visibility when the matching Apply flag is set.
func (d *Design) ApplyTo(target *model.Appearance) {
	src := &d.Appearance
	for _, s := range model.AllSlots() {
		if d.EquipFlags.HasItem(s) {
			target.SetItem(s, src.Item(s))
		}
		if d.EquipFlags.HasStain(s) {
			target.SetStain(s, src.Stain(s))
		}
	}

	if d.CustomizeFlags == model.CustomizeFlagAll {
		target.ModelID = src.ModelID
		target.Customize = src.Customize
		target.IsWet = src.IsWet
	} else {
		for i := range model.CustomizeCount {
			if d.CustomizeFlags.Has(i) {
				target.Customize[i] = src.Customize[i]
			}
		}
	}

	if d.ApplyHat {
		target.HatVisible = src.HatVisible
	}
	if d.ApplyVisor {
		target.VisorToggled = src.VisorToggled
	}
	if d.ApplyWeapon {
		target.WeaponVisible = src.WeaponVisible
	}
}
