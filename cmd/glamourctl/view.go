package main

import (
	"encoding/hex"
	"fmt"

	"github.com/udisondev/glamourgo/internal/data"
	"github.com/udisondev/glamourgo/internal/design"
	"github.com/udisondev/glamourgo/internal/model"
)

// designView: YAML form of a design, keyed by slot names and item ids.
type designView struct {
	ModelID   uint32 `yaml:"model_id"`
	Customize string `yaml:"customize"` // hex, 26 bytes

	Equipment []slotView `yaml:"equipment"`

	HatVisible    bool `yaml:"hat_visible"`
	WeaponVisible bool `yaml:"weapon_visible"`
	VisorToggled  bool `yaml:"visor_toggled"`
	IsWet         bool `yaml:"is_wet"`

	Apply          applyView `yaml:"apply"`
	WriteProtected bool      `yaml:"write_protected"`

	// NonHumanEquipment: raw weapon and armor records of a non-human model, hex.
	// When set, equipment entries are informational only.
	NonHumanEquipment string `yaml:"non_human_equipment,omitempty"`
}

type slotView struct {
	Slot  string `yaml:"slot"`
	Item  uint32 `yaml:"item"` // 0 = empty slot
	Name  string `yaml:"name,omitempty"`
	Stain uint8  `yaml:"stain"`
	Apply bool   `yaml:"apply"`
}

type applyView struct {
	Customize bool `yaml:"customize"`
	Hat       bool `yaml:"hat"`
	Visor     bool `yaml:"visor"`
	Weapon    bool `yaml:"weapon"`
}

func toView(d *design.Design) designView {
	a := &d.Appearance
	v := designView{
		ModelID:        a.ModelID,
		Customize:      hex.EncodeToString(a.Customize[:]),
		Equipment:      make([]slotView, 0, model.SlotCount),
		HatVisible:     a.HatVisible,
		WeaponVisible:  a.WeaponVisible,
		VisorToggled:   a.VisorToggled,
		IsWet:          a.IsWet,
		WriteProtected: d.WriteProtected,
		Apply: applyView{
			Customize: d.CustomizeFlags == model.CustomizeFlagAll,
			Hat:       d.ApplyHat,
			Visor:     d.ApplyVisor,
			Weapon:    d.ApplyWeapon,
		},
	}

	if d.NonHuman {
		v.NonHumanEquipment = hex.EncodeToString(d.RawEquipment[:])
	}

	for _, s := range model.AllSlots() {
		item := a.Item(s)
		sv := slotView{
			Slot:  s.String(),
			Stain: uint8(a.Stain(s)),
			Apply: d.EquipFlags.HasItem(s),
		}
		if !item.IsNothing() {
			sv.Item = uint32(item.ID)
			sv.Name = item.Name
		}
		v.Equipment = append(v.Equipment, sv)
	}
	return v
}

// fromView resolves item ids against the catalog. Slots missing from the view
// stay empty; a missing mainhand becomes the default sword.
func fromView(v designView, items *data.Catalog) (design.Design, error) {
	d := design.Design{
		Appearance:     model.NewAppearance(),
		WriteProtected: v.WriteProtected,
		ApplyHat:       v.Apply.Hat,
		ApplyVisor:     v.Apply.Visor,
		ApplyWeapon:    v.Apply.Weapon,
	}
	if v.Apply.Customize {
		d.CustomizeFlags = model.CustomizeFlagAll
	}

	a := &d.Appearance
	a.ModelID = v.ModelID
	a.HatVisible = v.HatVisible
	a.WeaponVisible = v.WeaponVisible
	a.VisorToggled = v.VisorToggled
	a.IsWet = v.IsWet

	if v.Customize != "" {
		raw, err := hex.DecodeString(v.Customize)
		if err != nil {
			return design.Design{}, fmt.Errorf("customize: %w", err)
		}
		if len(raw) != model.CustomizeCount {
			return design.Design{}, fmt.Errorf("customize: want %d bytes, got %d", model.CustomizeCount, len(raw))
		}
		copy(a.Customize[:], raw)
	}

	if v.NonHumanEquipment != "" {
		raw, err := hex.DecodeString(v.NonHumanEquipment)
		if err != nil {
			return design.Design{}, fmt.Errorf("non_human_equipment: %w", err)
		}
		if len(raw) != design.EquipmentBlockSize {
			return design.Design{}, fmt.Errorf("non_human_equipment: want %d bytes, got %d", design.EquipmentBlockSize, len(raw))
		}
		d.NonHuman = true
		copy(d.RawEquipment[:], raw)
	}

	a.SetItem(model.SlotMainHand, items.DefaultSword())
	var offhand *slotView
	for i := range v.Equipment {
		sv := &v.Equipment[i]
		slot, ok := model.ParseSlot(sv.Slot)
		if !ok {
			return design.Design{}, fmt.Errorf("unknown slot %q", sv.Slot)
		}
		if sv.Apply {
			d.EquipFlags |= model.SlotFlags(slot)
		}
		a.SetStain(slot, model.StainID(sv.Stain))

		if slot == model.SlotOffHand {
			// Offhand зависит от mainhand, разбирается после цикла.
			offhand = sv
			continue
		}
		if sv.Item == 0 {
			continue
		}
		item, err := lookupSlotItem(items, slot, sv.Item)
		if err != nil {
			return design.Design{}, err
		}
		a.SetItem(slot, item)
	}

	main := a.Item(model.SlotMainHand)
	a.SetItem(model.SlotOffHand, items.DefaultOffhand(main))
	if offhand != nil {
		if offhand.Item == 0 {
			a.SetItem(model.SlotOffHand, model.NothingItem(main.Type.ValidOffhand()))
		} else {
			item, err := lookupSlotItem(items, model.SlotOffHand, offhand.Item)
			if err != nil {
				return design.Design{}, err
			}
			a.SetItem(model.SlotOffHand, item)
		}
	}
	return d, nil
}

func lookupSlotItem(items *data.Catalog, slot model.EquipSlot, id uint32) (model.Item, error) {
	item, ok := items.ByID(model.ItemID(id))
	if !ok {
		return model.Item{}, fmt.Errorf("%s: unknown item %d", slot, id)
	}

	fits := item.Type == slot.EquipType()
	switch slot {
	case model.SlotMainHand:
		fits = item.Type.IsWeapon()
	case model.SlotOffHand:
		fits = item.Type.IsOffhand()
	}
	if !fits {
		return model.Item{}, fmt.Errorf("%s: item %d is %s", slot, id, item.Type)
	}
	return item, nil
}
