package design

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/glamourgo/internal/data"
	"github.com/udisondev/glamourgo/internal/model"
	"github.com/udisondev/glamourgo/internal/testutil"
)

// Builtin catalog ids used across the tests.
const (
	idShortsword  = 1601
	idCesti       = 1681
	idCestiOff    = 1001681
	idWarAxe      = 1749
	idRoundShield = 2653
	idBandana     = 3049
	idTunic       = 3201
	idGloves      = 3426
	idGauntlets   = 3427
	idSlops       = 3599
	idSandals     = 3767
	idEarrings    = 4058
	idChoker      = 4266
	idWristlets   = 4372
	idCopperRing  = 4505
	idBrassRing   = 4506
)

// armorIDs: по одному предмету на каждый armor slot, в каноническом порядке.
var armorIDs = [model.ArmorSlotCount]model.ItemID{
	idBandana, idTunic, idGloves, idSlops, idSandals,
	idEarrings, idChoker, idWristlets, idCopperRing, idBrassRing,
}

type fakeNonHuman struct {
	calls     int
	modelID   uint32
	customize model.Customize
	equipment []byte
}

func (f *fakeNonHuman) LoadNonHuman(modelID uint32, customize model.Customize, equipment []byte) {
	f.calls++
	f.modelID = modelID
	f.customize = customize
	f.equipment = append([]byte(nil), equipment...)
}

func newTestCatalog(t testing.TB) *data.Catalog {
	t.Helper()
	cat, err := data.NewCatalog(data.BuiltinItemDefs())
	require.NoError(t, err)
	return cat
}

func newTestDecoder(t testing.TB) (*Decoder, *data.Catalog, *fakeNonHuman) {
	t.Helper()
	cat := newTestCatalog(t)
	nh := &fakeNonHuman{}
	return NewDecoder(cat, data.NewHumanModelList(nil), nh), cat, nh
}

func mustItem(t testing.TB, cat *data.Catalog, id model.ItemID) model.Item {
	t.Helper()
	item, ok := cat.ByID(id)
	require.True(t, ok, "item %d missing from builtin catalog", id)
	return item
}

// humanBlob returns a blob where every record resolves against the builtin catalog:
// shortsword + round shield, one starter piece per armor slot.
func humanBlob(t testing.TB, cat *data.Catalog, version byte, size int) *testutil.Blob {
	t.Helper()
	b := testutil.NewBlob(version, size)

	sword := mustItem(t, cat, idShortsword)
	shield := mustItem(t, cat, idRoundShield)
	b.Weapon(0, sword.ModelID, sword.WeaponType, uint16(sword.Variant), 11)
	b.Weapon(1, shield.ModelID, shield.WeaponType, uint16(shield.Variant), 12)

	for i, id := range armorIDs {
		item := mustItem(t, cat, id)
		b.Armor(i, item.ModelID, item.Variant, byte(i+1))
	}
	return b
}

// sampleDesign builds a fully resolvable human design.
func sampleDesign(t testing.TB, cat *data.Catalog) Design {
	t.Helper()
	a := model.NewAppearance()
	a.ModelID = 0
	for i := range a.Customize {
		a.Customize[i] = byte(0xA0 + i)
	}
	a.SetItem(model.SlotMainHand, mustItem(t, cat, idShortsword))
	a.SetStain(model.SlotMainHand, 3)
	a.SetItem(model.SlotOffHand, mustItem(t, cat, idRoundShield))
	a.SetStain(model.SlotOffHand, 4)
	for i, s := range model.ArmorSlots {
		a.SetItem(s, mustItem(t, cat, armorIDs[i]))
		a.SetStain(s, model.StainID(10+i))
	}
	a.HatVisible = false
	a.WeaponVisible = true
	a.VisorToggled = true
	a.IsWet = true

	return Design{
		Appearance:     a,
		EquipFlags:     model.SlotFlags(model.SlotMainHand) | model.SlotFlags(model.SlotHead) | model.SlotFlags(model.SlotLFinger),
		CustomizeFlags: model.CustomizeFlagAll,
		WriteProtected: true,
		ApplyHat:       true,
		ApplyVisor:     false,
		ApplyWeapon:    true,
	}
}
