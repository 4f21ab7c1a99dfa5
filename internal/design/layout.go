package design

import "fmt"

// Byte offsets of the design blob. Versions 2, 4 and 5 share them; version 1
// ends right after the marker, versions 4/5 append the model id.
const (
	OffsetVersion     = 0
	OffsetAppFlags    = 1
	OffsetEquipFlags  = 2 // u16: low byte mainhand..ears, high byte neck..lfinger
	OffsetCustomize   = 4
	OffsetWeapons     = 30 // mainhand, offhand
	OffsetArmor       = 44 // 10 records in model.ArmorSlots order
	OffsetMarker      = 84
	OffsetAlpha       = 86
	OffsetVisibility  = 90
	OffsetModelID     = 91
	WeaponRecordSize  = 7 // set u16, type u16, variant u16, stain u8
	ArmorRecordSize   = 4 // set u16, variant u8, stain u8
	ArmorBlockSize    = ArmorRecordSize * 10
	markerValue       = 1
	alphaValue        = float32(1.0)
	CurrentVersion    = 5
	SizeV1            = 86
	SizeV2            = 91
	SizeV4            = 95
	unsupportedLegacy = 3
)

// EquipmentBlockSize: weapon and armor records together (bytes 30..83).
const EquipmentBlockSize = OffsetMarker - OffsetWeapons

// applicationFlags bits (offset 1).
const (
	appCustomizeAll   = 0x01
	appIsWet          = 0x02
	appApplyHat       = 0x04
	appApplyWeapon    = 0x08
	appApplyVisor     = 0x10
	appWriteProtected = 0x20
)

// visibility bits (offset 90). Hat and weapon bits are inverted: set means hidden.
const (
	visHatHidden    = 0x01
	visWeaponHidden = 0x02
	visVisorToggled = 0x10
)

// Layout describes one version of the design blob.
type Layout struct {
	Version byte
	// Size: required length. With Truncate it is the minimum length and
	// longer input is cut to Size before decoding.
	Size          int
	Truncate      bool
	HasVisibility bool
	HasModelID    bool
}

var layouts = [...]Layout{
	1: {Version: 1, Size: SizeV1},
	2: {Version: 2, Size: SizeV2, HasVisibility: true},
	4: {Version: 4, Size: SizeV4, HasVisibility: true, HasModelID: true},
	5: {Version: 5, Size: SizeV4, Truncate: true, HasVisibility: true, HasModelID: true},
}

// LookupLayout returns the layout for a version tag.
func LookupLayout(version byte) (Layout, error) {
	if version == unsupportedLegacy {
		return Layout{}, fmt.Errorf("%w: version %d can not be migrated", ErrUnsupportedVersion, version)
	}
	if int(version) >= len(layouts) || layouts[version].Version == 0 {
		return Layout{}, fmt.Errorf("%w: %d", ErrUnknownVersion, version)
	}
	return layouts[version], nil
}

// Fit checks data against the length rule and returns the bytes to decode.
func (l Layout) Fit(data []byte) ([]byte, error) {
	n := len(data)
	if l.Truncate {
		if n < l.Size {
			return nil, fmt.Errorf("%w: version %d requires at least %d bytes, got %d", ErrBadLength, l.Version, l.Size, n)
		}
		return data[:l.Size], nil
	}
	if n != l.Size {
		return nil, fmt.Errorf("%w: version %d requires %d bytes, got %d", ErrBadLength, l.Version, l.Size, n)
	}
	return data, nil
}
