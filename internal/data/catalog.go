package data

import "github.com/udisondev/glamourgo/internal/model"

// Len returns the number of catalog items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns all items sorted by id. The slice must not be modified.
func (c *Catalog) Items() []model.Item {
	return c.items
}

// ByID returns the item with the given id.
func (c *Catalog) ByID(id model.ItemID) (model.Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Identify resolves an armor piece of slot by model set and variant.
// Model set 0 is the empty item of the slot.
func (c *Catalog) Identify(slot model.EquipSlot, setID uint16, variant uint8) (model.Item, bool) {
	typ := slot.EquipType()
	if typ == model.EquipTypeUnknown {
		return model.Item{}, false
	}
	if setID == 0 {
		return model.NothingItem(typ), true
	}
	item, ok := c.armor[armorKey{typ: typ, set: setID, variant: variant}]
	return item, ok
}

// IdentifyWeapon resolves a mainhand or offhand weapon.
//
// Mainhand must resolve to a mainhand weapon class. Offhand must resolve to the
// category mainType requires; offhand model 0 is the empty item of that category.
func (c *Catalog) IdentifyWeapon(slot model.EquipSlot, setID, weaponType uint16, variant uint8, mainType model.FullEquipType) (model.Item, bool) {
	switch slot {
	case model.SlotMainHand:
		if setID == 0 {
			return model.Item{}, false
		}
		item, ok := c.weapons[weaponKey{set: setID, weaponType: weaponType, variant: variant}]
		if !ok || !item.Type.IsWeapon() {
			return model.Item{}, false
		}
		return item, true
	case model.SlotOffHand:
		want := mainType.ValidOffhand()
		if setID == 0 {
			return model.NothingItem(want), true
		}
		item, ok := c.weapons[weaponKey{set: setID, weaponType: weaponType, variant: variant}]
		if !ok || !item.Type.IsOffhand() {
			return model.Item{}, false
		}
		if mainType != model.EquipTypeUnknown && item.Type != want {
			return model.Item{}, false
		}
		return item, true
	default:
		return model.Item{}, false
	}
}

// DefaultSword returns the item used for an empty mainhand record.
func (c *Catalog) DefaultSword() model.Item {
	return c.sword
}

// EmptyItemFor returns the empty item of category t.
func (c *Catalog) EmptyItemFor(t model.FullEquipType) model.Item {
	return model.NothingItem(t)
}

// DefaultOffhand returns the offhand that goes with main.
//
// Fist weapons pair with the offhand model FistOffhandDelta above their own.
// Other one-handed weapons get the first catalog item of their offhand category,
// two-handed weapons an empty offhand.
func (c *Catalog) DefaultOffhand(main model.Item) model.Item {
	want := main.Type.ValidOffhand()
	if want == model.EquipTypeUnknown {
		return model.NothingItem(want)
	}
	if main.Type == model.EquipTypeFists {
		key := weaponKey{set: main.ModelID + model.FistOffhandDelta, weaponType: main.WeaponType, variant: main.Variant}
		if item, ok := c.weapons[key]; ok {
			return item
		}
	}
	if item, ok := c.offhands[want]; ok {
		return item
	}
	return model.NothingItem(want)
}
