package design

import "github.com/udisondev/glamourgo/internal/model"

// Catalog resolves raw model identifiers into catalog items.
// Implementations must be read-only and safe for concurrent use.
type Catalog interface {
	// Identify resolves an armor piece. ok=false means the identity is invalid.
	Identify(slot model.EquipSlot, setID uint16, variant uint8) (model.Item, bool)
	// IdentifyWeapon resolves a weapon. mainType is the category of the
	// mainhand when resolving an offhand, EquipTypeUnknown otherwise.
	IdentifyWeapon(slot model.EquipSlot, setID, weaponType uint16, variant uint8, mainType model.FullEquipType) (model.Item, bool)
	// DefaultSword is used for a mainhand record with model 0.
	DefaultSword() model.Item
	// EmptyItemFor returns the empty item of an offhand category.
	EmptyItemFor(t model.FullEquipType) model.Item
}

// ModelClassifier decides whether a body model wears regular equipment.
type ModelClassifier interface {
	IsHuman(modelID uint32) bool
}

// NonHumanLoader receives the raw parts of a design for a non-human model.
// equipment is the 40-byte armor block; it is only valid during the call.
type NonHumanLoader interface {
	LoadNonHuman(modelID uint32, customize model.Customize, equipment []byte)
}

// OffhandSource supplies the offhand to pair with a newly chosen mainhand.
type OffhandSource interface {
	DefaultOffhand(main model.Item) model.Item
}
