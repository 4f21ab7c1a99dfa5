package testutil

import (
	"encoding/binary"
	"math"
)

// Wire offsets, written out independently of the codec so tests catch layout drift.
const (
	blobAppFlags   = 1
	blobEquipFlags = 2
	blobCustomize  = 4
	blobWeapons    = 30
	blobWeaponSize = 7
	blobArmor      = 44
	blobArmorSize  = 4
	blobMarker     = 84
	blobAlpha      = 86
	blobVisibility = 90
	blobModelID    = 91
)

// Blob builds raw design blobs field by field for tests.
// Writes outside the buffer are silently dropped so short blobs can be built too.
type Blob struct {
	buf []byte
}

// NewBlob creates a zeroed blob of size bytes with the version tag set.
// The constant marker and alpha are filled in when they fit.
func NewBlob(version byte, size int) *Blob {
	b := &Blob{buf: make([]byte, size)}
	if size > 0 {
		b.buf[0] = version
	}
	b.putUint16(blobMarker, 1)
	b.putUint32(blobAlpha, math.Float32bits(1.0))
	return b
}

// AppFlags sets the application flags byte.
func (b *Blob) AppFlags(v byte) *Blob {
	b.putByte(blobAppFlags, v)
	return b
}

// EquipFlags sets the 16-bit equip flags.
func (b *Blob) EquipFlags(v uint16) *Blob {
	b.putUint16(blobEquipFlags, v)
	return b
}

// Customize writes the customization block.
func (b *Blob) Customize(c [26]byte) *Blob {
	for i, v := range c {
		b.putByte(blobCustomize+i, v)
	}
	return b
}

// Weapon writes weapon record i (0 mainhand, 1 offhand).
func (b *Blob) Weapon(i int, set, typ, variant uint16, stain byte) *Blob {
	off := blobWeapons + i*blobWeaponSize
	b.putUint16(off, set)
	b.putUint16(off+2, typ)
	b.putUint16(off+4, variant)
	b.putByte(off+6, stain)
	return b
}

// Armor writes armor record i in canonical slot order (0 head .. 9 left finger).
func (b *Blob) Armor(i int, set uint16, variant, stain byte) *Blob {
	off := blobArmor + i*blobArmorSize
	b.putUint16(off, set)
	b.putByte(off+2, variant)
	b.putByte(off+3, stain)
	return b
}

// Visibility sets the visibility byte.
func (b *Blob) Visibility(v byte) *Blob {
	b.putByte(blobVisibility, v)
	return b
}

// ModelID sets the model id.
func (b *Blob) ModelID(id uint32) *Blob {
	b.putUint32(blobModelID, id)
	return b
}

// Bytes returns the blob.
func (b *Blob) Bytes() []byte {
	return b.buf
}

func (b *Blob) putByte(off int, v byte) {
	if off < len(b.buf) {
		b.buf[off] = v
	}
}

func (b *Blob) putUint16(off int, v uint16) {
	if off+2 <= len(b.buf) {
		binary.LittleEndian.PutUint16(b.buf[off:], v)
	}
}

func (b *Blob) putUint32(off int, v uint32) {
	if off+4 <= len(b.buf) {
		binary.LittleEndian.PutUint32(b.buf[off:], v)
	}
}
