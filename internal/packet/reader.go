package packet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrShortBuffer is returned when a read or seek runs past the end of the data.
var ErrShortBuffer = errors.New("not enough data")

// Reader provides bounds-checked reads over a fixed byte buffer.
// Uses Little-Endian byte order for all multi-byte values.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a new reader positioned at offset 0.
func NewReader(data []byte) *Reader {
	return &Reader{
		data: data,
		pos:  0,
	}
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, fmt.Errorf("ReadByte: %w (pos=%d, len=%d)", ErrShortBuffer, r.pos, len(r.data))
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadUint16 reads a uint16 (2 bytes, LE).
func (r *Reader) ReadUint16() (uint16, error) {
	if r.pos+2 > len(r.data) {
		return 0, fmt.Errorf("ReadUint16: %w (pos=%d, len=%d)", ErrShortBuffer, r.pos, len(r.data))
	}
	val := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return val, nil
}

// ReadUint32 reads a uint32 (4 bytes, LE).
func (r *Reader) ReadUint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, fmt.Errorf("ReadUint32: %w (pos=%d, len=%d)", ErrShortBuffer, r.pos, len(r.data))
	}
	val := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return val, nil
}

// ReadFloat reads a float32 (4 bytes, LE, IEEE 754).
func (r *Reader) ReadFloat() (float32, error) {
	bits, err := r.ReadUint32()
	if err != nil {
		return 0, fmt.Errorf("ReadFloat: %w", err)
	}
	return math.Float32frombits(bits), nil
}

// ReadBytes reads n bytes (ZERO-COPY: returns subslice of internal data).
// IMPORTANT: Returned slice shares underlying array with Reader.data.
// Caller MUST NOT modify returned bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("ReadBytes: negative count %d", n)
	}
	if r.pos+n > len(r.data) {
		return nil, fmt.Errorf("ReadBytes: %w (pos=%d, need=%d, len=%d)", ErrShortBuffer, r.pos, n, len(r.data))
	}

	bytes := r.data[r.pos : r.pos+n]
	r.pos += n
	return bytes, nil
}

// Seek moves the read position to an absolute offset.
// Seeking to len(data) is allowed (nothing left to read).
func (r *Reader) Seek(offset int) error {
	if offset < 0 || offset > len(r.data) {
		return fmt.Errorf("Seek: %w (offset=%d, len=%d)", ErrShortBuffer, offset, len(r.data))
	}
	r.pos = offset
	return nil
}
