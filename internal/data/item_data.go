package data

// ItemDef: определение предмета каталога (builtin table, YAML overlay or database row).
type ItemDef struct {
	ID         uint32 `yaml:"id"`
	Name       string `yaml:"name"`
	Type       string `yaml:"type"` // model.FullEquipType name: "Sword","Shield","Head",...
	ModelID    uint16 `yaml:"model_id"`
	WeaponType uint16 `yaml:"weapon_type"`
	Variant    uint8  `yaml:"variant"`
}

// DefaultSwordID: item used for a mainhand record with model 0.
const DefaultSwordID = 1601

// builtinItemDefs: minimal built-in catalog: one starter set per slot plus
// every weapon category the codec has special rules for.
var builtinItemDefs = []ItemDef{
	// Weapons
	{ID: 1601, Name: "Weathered Shortsword", Type: "Sword", ModelID: 201, WeaponType: 1, Variant: 1},
	{ID: 1602, Name: "Bronze Gladius", Type: "Sword", ModelID: 201, WeaponType: 2, Variant: 1},
	{ID: 1680, Name: "Weathered Hora", Type: "Fists", ModelID: 1601, WeaponType: 1, Variant: 1},
	{ID: 1681, Name: "Bronze Cesti", Type: "Fists", ModelID: 1625, WeaponType: 3, Variant: 2},
	{ID: 1749, Name: "Weathered War Axe", Type: "Axe", ModelID: 501, WeaponType: 1, Variant: 1},
	{ID: 1821, Name: "Weathered Spear", Type: "Lance", ModelID: 601, WeaponType: 1, Variant: 1},
	{ID: 1889, Name: "Weathered Shortbow", Type: "Bow", ModelID: 1401, WeaponType: 1, Variant: 1},
	{ID: 2052, Name: "Weathered Cane", Type: "Staff", ModelID: 801, WeaponType: 1, Variant: 1},
	{ID: 2137, Name: "Weathered Scepter", Type: "Wand", ModelID: 1001, WeaponType: 1, Variant: 1},
	{ID: 7952, Name: "Weathered Daggers", Type: "Daggers", ModelID: 1801, WeaponType: 1, Variant: 1},

	// Offhands
	{ID: 2653, Name: "Weathered Round Shield", Type: "Shield", ModelID: 101, WeaponType: 1, Variant: 1},
	{ID: 2654, Name: "Bronze Hoplon", Type: "Shield", ModelID: 101, WeaponType: 2, Variant: 1},
	{ID: 1001680, Name: "Weathered Hora (Offhand)", Type: "FistsOff", ModelID: 1651, WeaponType: 1, Variant: 1},
	{ID: 1001681, Name: "Bronze Cesti (Offhand)", Type: "FistsOff", ModelID: 1675, WeaponType: 3, Variant: 2},
	{ID: 1001889, Name: "Weathered Quiver", Type: "BowOff", ModelID: 1451, WeaponType: 1, Variant: 1},
	{ID: 1007952, Name: "Weathered Daggers (Offhand)", Type: "DaggersOff", ModelID: 1851, WeaponType: 1, Variant: 1},

	// Armor
	{ID: 3049, Name: "Weathered Bandana", Type: "Head", ModelID: 1, Variant: 1},
	{ID: 3050, Name: "Hempen Coif", Type: "Head", ModelID: 5, Variant: 2},
	{ID: 3201, Name: "Weathered Tunic", Type: "Body", ModelID: 6, Variant: 1},
	{ID: 3202, Name: "Hempen Robe", Type: "Body", ModelID: 12, Variant: 3},
	{ID: 3426, Name: "Weathered Gloves", Type: "Hands", ModelID: 6, Variant: 1},
	{ID: 3427, Name: "Bronze Gauntlets", Type: "Hands", ModelID: 40, Variant: 4},
	{ID: 3599, Name: "Weathered Slops", Type: "Legs", ModelID: 6, Variant: 1},
	{ID: 3767, Name: "Weathered Sandals", Type: "Feet", ModelID: 6, Variant: 1},
	{ID: 4058, Name: "Copper Earrings", Type: "Ears", ModelID: 1, Variant: 1},
	{ID: 4266, Name: "Copper Choker", Type: "Neck", ModelID: 1, Variant: 1},
	{ID: 4372, Name: "Copper Wristlets", Type: "Wrists", ModelID: 1, Variant: 1},
	{ID: 4505, Name: "Copper Ring", Type: "Finger", ModelID: 1, Variant: 1},
	{ID: 4506, Name: "Brass Ring", Type: "Finger", ModelID: 2, Variant: 1},
}

// BuiltinItemDefs returns a copy of the built-in item table.
func BuiltinItemDefs() []ItemDef {
	out := make([]ItemDef, len(builtinItemDefs))
	copy(out, builtinItemDefs)
	return out
}

// builtinHumanModels: model ids that wear regular equipment.
var builtinHumanModels = []uint32{0}
