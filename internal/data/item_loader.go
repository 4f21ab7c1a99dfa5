package data

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/udisondev/glamourgo/internal/model"
)

var (
	ErrUnknownEquipType = errors.New("unknown equip type")
	ErrDuplicateItem    = errors.New("duplicate item")
)

type armorKey struct {
	typ     model.FullEquipType
	set     uint16
	variant uint8
}

type weaponKey struct {
	set        uint16
	weaponType uint16
	variant    uint8
}

// Catalog: immutable item catalog. Safe for concurrent use after construction.
type Catalog struct {
	byID     map[model.ItemID]model.Item
	armor    map[armorKey]model.Item
	weapons  map[weaponKey]model.Item
	offhands map[model.FullEquipType]model.Item // lowest id per offhand category
	items    []model.Item                       // sorted by id, for search
	sword    model.Item
}

// NewCatalog builds a catalog from item definitions.
// Returns an error for unknown type names or duplicate ids.
func NewCatalog(defs []ItemDef) (*Catalog, error) {
	c := &Catalog{
		byID:     make(map[model.ItemID]model.Item, len(defs)),
		armor:    make(map[armorKey]model.Item, len(defs)),
		weapons:  make(map[weaponKey]model.Item, len(defs)),
		offhands: make(map[model.FullEquipType]model.Item, 8),
		items:    make([]model.Item, 0, len(defs)),
	}

	for _, def := range defs {
		item, err := def.toItem()
		if err != nil {
			return nil, err
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateItem, item.ID)
		}
		c.byID[item.ID] = item
		c.items = append(c.items, item)

		if item.Type.IsWeapon() || item.Type.IsOffhand() {
			c.weapons[weaponKey{set: item.ModelID, weaponType: item.WeaponType, variant: item.Variant}] = item
		} else {
			c.armor[armorKey{typ: item.Type, set: item.ModelID, variant: item.Variant}] = item
		}
	}

	slices.SortFunc(c.items, func(a, b model.Item) int {
		return cmp.Compare(a.ID, b.ID)
	})
	for _, item := range c.items {
		if item.Type.IsOffhand() {
			if _, ok := c.offhands[item.Type]; !ok {
				c.offhands[item.Type] = item
			}
		}
	}

	if sword, ok := c.byID[DefaultSwordID]; ok && sword.Type == model.EquipTypeSword {
		c.sword = sword
	} else {
		c.sword = model.Item{ID: DefaultSwordID, Name: "Weathered Shortsword", Type: model.EquipTypeSword, ModelID: 201, WeaponType: 1, Variant: 1}
	}

	return c, nil
}

// LoadBuiltinCatalog builds the catalog from the built-in item table.
func LoadBuiltinCatalog() (*Catalog, error) {
	c, err := NewCatalog(builtinItemDefs)
	if err != nil {
		return nil, fmt.Errorf("building builtin catalog: %w", err)
	}
	slog.Info("loaded item catalog", "source", "builtin", "count", c.Len())
	return c, nil
}

func (def ItemDef) toItem() (model.Item, error) {
	typ, ok := model.ParseEquipType(def.Type)
	if !ok || typ == model.EquipTypeUnknown {
		return model.Item{}, fmt.Errorf("%w: %q (item %d)", ErrUnknownEquipType, def.Type, def.ID)
	}
	return model.Item{
		ID:         model.ItemID(def.ID),
		Name:       def.Name,
		Type:       typ,
		ModelID:    def.ModelID,
		WeaponType: def.WeaponType,
		Variant:    def.Variant,
	}, nil
}

// ItemDefFromItem is the inverse of the definition → item mapping.
func ItemDefFromItem(item model.Item) ItemDef {
	return ItemDef{
		ID:         uint32(item.ID),
		Name:       item.Name,
		Type:       item.Type.String(),
		ModelID:    item.ModelID,
		WeaponType: item.WeaponType,
		Variant:    item.Variant,
	}
}
