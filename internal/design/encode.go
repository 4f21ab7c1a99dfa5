package design

import (
	"github.com/udisondev/glamourgo/internal/model"
	"github.com/udisondev/glamourgo/internal/packet"
)

// Encode writes d in the current (version 5) layout. The result is always
// SizeV4 bytes long and decodes with the version 4 rules after truncation.
// Non-human designs get their RawEquipment instead of item records.
// Encode only reads d.
func Encode(d *Design) []byte {
	w := packet.Get()
	defer w.Put()

	a := &d.Appearance

	_ = w.WriteByte(CurrentVersion)
	_ = w.WriteByte(encodeAppFlags(d))
	w.WriteUint16(encodeEquipFlags(d.EquipFlags))
	w.WriteBytes(a.Customize[:])

	if d.NonHuman {
		w.WriteBytes(d.RawEquipment[:])
	} else {
		encodeEquipment(w, a)
	}

	w.WriteUint16(markerValue)
	w.WriteFloat(alphaValue)
	_ = w.WriteByte(encodeVisibility(a))
	w.WriteUint32(a.ModelID)

	return w.CopyBytes()
}

func encodeEquipment(w *packet.Writer, a *model.Appearance) {
	for _, s := range model.WeaponSlots {
		item := a.Item(s)
		w.WriteUint16(item.ModelID)
		w.WriteUint16(item.WeaponType)
		w.WriteUint16(uint16(item.Variant))
		_ = w.WriteByte(byte(a.Stain(s)))
	}
	for _, s := range model.ArmorSlots {
		item := a.Item(s)
		w.WriteUint16(item.ModelID)
		_ = w.WriteByte(item.Variant)
		_ = w.WriteByte(byte(a.Stain(s)))
	}
}

func encodeAppFlags(d *Design) byte {
	var b byte
	if d.CustomizeFlags == model.CustomizeFlagAll {
		b |= appCustomizeAll
	}
	if d.Appearance.IsWet {
		b |= appIsWet
	}
	if d.ApplyHat {
		b |= appApplyHat
	}
	if d.ApplyWeapon {
		b |= appApplyWeapon
	}
	if d.ApplyVisor {
		b |= appApplyVisor
	}
	if d.WriteProtected {
		b |= appWriteProtected
	}
	return b
}

// encodeEquipFlags is the inverse of decodeEquipFlags; the item bit of a slot decides.
func encodeEquipFlags(f model.EquipFlag) uint16 {
	var raw uint16
	for i, s := range model.AllSlots() {
		if f.HasItem(s) {
			raw |= 1 << uint(i)
		}
	}
	return raw
}

func encodeVisibility(a *model.Appearance) byte {
	var b byte
	if !a.HatVisible {
		b |= visHatHidden
	}
	if !a.WeaponVisible {
		b |= visWeaponHidden
	}
	if a.VisorToggled {
		b |= visVisorToggled
	}
	return b
}
