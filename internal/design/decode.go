package design

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/glamourgo/internal/model"
	"github.com/udisondev/glamourgo/internal/packet"
)

// weaponRecord: raw weapon entry of the blob.
type weaponRecord struct {
	Set     uint16
	Type    uint16
	Variant uint16
	Stain   model.StainID
}

// armorRecord: raw armor entry of the blob.
type armorRecord struct {
	Set     uint16
	Variant uint8
	Stain   model.StainID
}

// Decoder turns design blobs of any supported version into a Design.
// It keeps no mutable state and may be shared between goroutines.
type Decoder struct {
	items    Catalog
	humans   ModelClassifier
	nonHuman NonHumanLoader
}

// NewDecoder creates a decoder.
//
// Parameters:
//   - items: item catalog used to resolve armor and weapon records
//   - humans: decides whether a model id wears equipment
//   - nonHuman: optional, receives customize and armor bytes of non-human models (may be nil)
func NewDecoder(items Catalog, humans ModelClassifier, nonHuman NonHumanLoader) *Decoder {
	return &Decoder{
		items:    items,
		humans:   humans,
		nonHuman: nonHuman,
	}
}

// Decode parses a raw design blob.
// On error the returned Design is zero; errors wrap one of the package sentinels.
func (d *Decoder) Decode(data []byte) (Design, error) {
	if len(data) == 0 {
		return Design{}, fmt.Errorf("%w: empty design", ErrBadLength)
	}

	layout, err := LookupLayout(data[OffsetVersion])
	if err != nil {
		return Design{}, err
	}
	buf, err := layout.Fit(data)
	if err != nil {
		return Design{}, err
	}

	out, err := d.decode(layout, buf)
	if err != nil {
		return Design{}, err
	}
	return out, nil
}

func (d *Decoder) decode(layout Layout, buf []byte) (Design, error) {
	r := packet.NewReader(buf)
	if err := r.Seek(OffsetAppFlags); err != nil {
		return Design{}, shortBlob(err)
	}

	appFlags, err := r.ReadByte()
	if err != nil {
		return Design{}, shortBlob(err)
	}
	equipFlags, err := r.ReadUint16()
	if err != nil {
		return Design{}, shortBlob(err)
	}
	customize, err := r.ReadBytes(model.CustomizeCount)
	if err != nil {
		return Design{}, shortBlob(err)
	}

	out := Design{
		Appearance: model.NewAppearance(),
	}
	decodeAppFlags(appFlags, &out)
	out.EquipFlags = decodeEquipFlags(equipFlags)

	a := &out.Appearance
	copy(a.Customize[:], customize)

	if layout.HasVisibility {
		if err := r.Seek(OffsetVisibility); err != nil {
			return Design{}, shortBlob(err)
		}
		vis, err := r.ReadByte()
		if err != nil {
			return Design{}, shortBlob(err)
		}
		a.HatVisible = vis&visHatHidden == 0
		a.WeaponVisible = vis&visWeaponHidden == 0
		a.VisorToggled = vis&visVisorToggled != 0
	}

	if layout.HasModelID {
		if err := r.Seek(OffsetModelID); err != nil {
			return Design{}, shortBlob(err)
		}
		a.ModelID, err = r.ReadUint32()
		if err != nil {
			return Design{}, shortBlob(err)
		}
	}

	checkReserved(r, layout)

	// Не-человеческие модели: предметы не разбираются, записи хранятся как есть.
	if !d.humans.IsHuman(a.ModelID) {
		out.NonHuman = true
		copy(out.RawEquipment[:], buf[OffsetWeapons:OffsetMarker])
		if d.nonHuman != nil {
			d.nonHuman.LoadNonHuman(a.ModelID, a.Customize, buf[OffsetArmor:OffsetArmor+ArmorBlockSize])
		}
		return out, nil
	}

	if err := r.Seek(OffsetWeapons); err != nil {
		return Design{}, shortBlob(err)
	}
	var weapons [2]weaponRecord
	for i := range weapons {
		if weapons[i], err = readWeapon(r); err != nil {
			return Design{}, shortBlob(err)
		}
	}
	var armor [model.ArmorSlotCount]armorRecord
	for i := range armor {
		if armor[i], err = readArmor(r); err != nil {
			return Design{}, shortBlob(err)
		}
	}

	if err := d.resolveArmor(a, armor); err != nil {
		return Design{}, err
	}
	if err := d.resolveWeapons(a, weapons); err != nil {
		return Design{}, err
	}
	return out, nil
}

func (d *Decoder) resolveArmor(a *model.Appearance, armor [model.ArmorSlotCount]armorRecord) error {
	for i, slot := range model.ArmorSlots {
		rec := armor[i]
		item, ok := d.items.Identify(slot, rec.Set, rec.Variant)
		if !ok {
			return fmt.Errorf("%w: %s %d-%d", ErrInvalidItem, slot, rec.Set, rec.Variant)
		}
		a.SetItem(slot, item)
		a.SetStain(slot, rec.Stain)
	}
	return nil
}

func (d *Decoder) resolveWeapons(a *model.Appearance, weapons [2]weaponRecord) error {
	mainRec, offRec := weapons[0], weapons[1]

	var main model.Item
	if mainRec.Set == 0 {
		main = d.items.DefaultSword()
	} else {
		var ok bool
		main, ok = d.items.IdentifyWeapon(model.SlotMainHand, mainRec.Set, mainRec.Type, uint8(mainRec.Variant), model.EquipTypeUnknown)
		if !ok {
			return fmt.Errorf("%w: %s %d-%d-%d", ErrInvalidItem, model.SlotMainHand, mainRec.Set, mainRec.Type, mainRec.Variant)
		}
	}
	a.SetItem(model.SlotMainHand, main)
	a.SetStain(model.SlotMainHand, mainRec.Stain)

	var (
		off model.Item
		ok  bool
	)
	switch {
	case main.IsFistWeapon() && offRec.Variant == 0:
		// Fist weapons: offhand is derived from the mainhand model, and the offhand
		// record describes the gauntlets instead (set + type as armor set + variant).
		off, ok = d.items.IdentifyWeapon(model.SlotOffHand, main.ModelID+model.FistOffhandDelta, main.WeaponType, main.Variant, main.Type)
		gauntlet, gok := d.items.Identify(model.SlotHands, offRec.Set, uint8(offRec.Type))
		if !gok {
			return fmt.Errorf("%w: gauntlet %d-%d", ErrInvalidItem, offRec.Set, offRec.Type)
		}
		a.SetItem(model.SlotHands, gauntlet)
		a.SetStain(model.SlotHands, mainRec.Stain)
	case mainRec.Set == 0:
		off, ok = d.items.EmptyItemFor(main.Type.ValidOffhand()), true
	default:
		off, ok = d.items.IdentifyWeapon(model.SlotOffHand, offRec.Set, offRec.Type, uint8(offRec.Variant), main.Type)
	}

	if !ok {
		if main.Type.ValidOffhand() != model.EquipTypeUnknown {
			return fmt.Errorf("%w: %s %d-%d-%d for %s", ErrInvalidItem, model.SlotOffHand, offRec.Set, offRec.Type, offRec.Variant, main.Type)
		}
		off = d.items.EmptyItemFor(model.EquipTypeUnknown)
	}

	a.SetItem(model.SlotOffHand, off)
	a.SetStain(model.SlotOffHand, offRec.Stain)
	return nil
}

func decodeAppFlags(b byte, out *Design) {
	if b&appCustomizeAll != 0 {
		out.CustomizeFlags = model.CustomizeFlagAll
	}
	out.Appearance.IsWet = b&appIsWet != 0
	out.ApplyHat = b&appApplyHat != 0
	out.ApplyWeapon = b&appApplyWeapon != 0
	out.ApplyVisor = b&appApplyVisor != 0
	out.WriteProtected = b&appWriteProtected != 0
}

// decodeEquipFlags maps bit i to the i-th slot in wire order; each bit selects
// both the item and the stain of its slot.
func decodeEquipFlags(raw uint16) model.EquipFlag {
	var f model.EquipFlag
	for i, s := range model.AllSlots() {
		if raw&(1<<uint(i)) != 0 {
			f |= model.SlotFlags(s)
		}
	}
	return f
}

func readWeapon(r *packet.Reader) (weaponRecord, error) {
	var rec weaponRecord
	var err error
	if rec.Set, err = r.ReadUint16(); err != nil {
		return rec, err
	}
	if rec.Type, err = r.ReadUint16(); err != nil {
		return rec, err
	}
	if rec.Variant, err = r.ReadUint16(); err != nil {
		return rec, err
	}
	stain, err := r.ReadByte()
	if err != nil {
		return rec, err
	}
	rec.Stain = model.StainID(stain)
	return rec, nil
}

func readArmor(r *packet.Reader) (armorRecord, error) {
	var rec armorRecord
	var err error
	if rec.Set, err = r.ReadUint16(); err != nil {
		return rec, err
	}
	if rec.Variant, err = r.ReadByte(); err != nil {
		return rec, err
	}
	stain, err := r.ReadByte()
	if err != nil {
		return rec, err
	}
	rec.Stain = model.StainID(stain)
	return rec, nil
}

// checkReserved logs blobs whose marker or alpha differ from the constants
// the encoder writes. The values are not used by decoding.
func checkReserved(r *packet.Reader, layout Layout) {
	if err := r.Seek(OffsetMarker); err != nil {
		return
	}
	marker, err := r.ReadUint16()
	if err != nil {
		return
	}
	alpha := alphaValue
	if layout.Size > OffsetAlpha {
		// Version 1 ends right after the marker.
		if alpha, err = r.ReadFloat(); err != nil {
			return
		}
	}
	if marker != markerValue || alpha != alphaValue {
		slog.Debug("design reserved fields differ", "version", layout.Version, "marker", marker, "alpha", alpha)
	}
}

// shortBlob reports a read past the end of an already length-checked buffer.
func shortBlob(err error) error {
	return fmt.Errorf("%w: %w", ErrBadLength, err)
}
