package testutil

import (
	"encoding/binary"
	"testing"
)

// AssertBlobVersion проверяет, что первый байт blob соответствует ожидаемой версии.
func AssertBlobVersion(t testing.TB, expected byte, blob []byte) {
	t.Helper()

	if len(blob) == 0 {
		t.Fatalf("blob is empty, expected version %d", expected)
	}

	if actual := blob[0]; actual != expected {
		t.Fatalf("blob version mismatch: expected %d, got %d", expected, actual)
	}
}

// AssertByteAtOffset проверяет, что байт в blob соответствует ожидаемому.
func AssertByteAtOffset(t testing.TB, expected byte, blob []byte, offset int) {
	t.Helper()

	if len(blob) <= offset {
		t.Fatalf("blob too short: need %d bytes, got %d", offset+1, len(blob))
	}

	if actual := blob[offset]; actual != expected {
		t.Fatalf("byte mismatch at offset %d: expected 0x%02X, got 0x%02X", offset, expected, actual)
	}
}

// AssertUint16LE проверяет uint16 значение (little-endian) по смещению.
func AssertUint16LE(t testing.TB, expected uint16, blob []byte, offset int) {
	t.Helper()

	if len(blob) < offset+2 {
		t.Fatalf("blob too short: need %d bytes for uint16 at offset %d, got %d",
			offset+2, offset, len(blob))
	}

	if actual := binary.LittleEndian.Uint16(blob[offset:]); actual != expected {
		t.Fatalf("uint16 mismatch at offset %d: expected %d, got %d", offset, expected, actual)
	}
}

// AssertUint32LE проверяет uint32 значение (little-endian) по смещению.
func AssertUint32LE(t testing.TB, expected uint32, blob []byte, offset int) {
	t.Helper()

	if len(blob) < offset+4 {
		t.Fatalf("blob too short: need %d bytes for uint32 at offset %d, got %d",
			offset+4, offset, len(blob))
	}

	if actual := binary.LittleEndian.Uint32(blob[offset:]); actual != expected {
		t.Fatalf("uint32 mismatch at offset %d: expected %d, got %d", offset, expected, actual)
	}
}
