package biff

import (
	"encoding/binary"
	"math"
)

func check(buf []byte, off, width int) {
	if off < 0 || off+width > len(buf) {
		panic(&OutOfBoundsError{Off: off, Width: width, Len: len(buf)})
	}
}

// ReadShort assembles a signed 16-bit value from its high and low bytes.
func ReadShort(hi, lo byte) int16 {
	return int16(uint16(hi)<<8 | uint16(lo))
}

// ReadInt decodes a little-endian 32-bit signed integer from the first
// four bytes of b.
func ReadInt(b []byte) int32 {
	check(b, 0, 4)
	return int32(binary.LittleEndian.Uint32(b))
}

// EightByteToDouble decodes a little-endian IEEE-754 double from the first
// eight bytes of b.
func EightByteToDouble(b []byte) float64 {
	check(b, 0, 8)
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

// ShortToLEBytes is the inverse of ReadShort.
func ShortToLEBytes(v int16) []byte {
	return []byte{byte(v), byte(uint16(v) >> 8)}
}

// IntToLEBytes is the inverse of ReadInt.
func IntToLEBytes(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

// DoubleToLEBytes is the inverse of EightByteToDouble.
func DoubleToLEBytes(v float64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	return b
}

// UpdateFlagBit sets or clears bit number bit of flags, leaving every other
// bit untouched.
func UpdateFlagBit(flags uint16, set bool, bit uint) uint16 {
	if set {
		return flags | 1<<bit
	}
	return flags &^ (1 << bit)
}

// FlagBit reports whether bit number bit of flags is set.
func FlagBit(flags uint16, bit uint) bool {
	return flags&(1<<bit) != 0
}

// BitField extracts width bits of flags starting at bit number shift.
func BitField(flags uint16, shift, width uint) uint16 {
	return (flags >> shift) & (1<<width - 1)
}

// SetBitField replaces width bits of flags starting at bit number shift
// with the low bits of v.
func SetBitField(flags uint16, shift, width uint, v uint16) uint16 {
	mask := uint16(1<<width-1) << shift
	return flags&^mask | (v<<shift)&mask
}

// Uint8 returns the byte at off.
func Uint8(buf []byte, off int) uint8 {
	check(buf, off, 1)
	return buf[off]
}

// PutUint8 stores v at off.
func PutUint8(buf []byte, off int, v uint8) {
	check(buf, off, 1)
	buf[off] = v
}

// Uint16 decodes the little-endian uint16 at off.
func Uint16(buf []byte, off int) uint16 {
	check(buf, off, 2)
	return binary.LittleEndian.Uint16(buf[off:])
}

// PutUint16 encodes v at off.
func PutUint16(buf []byte, off int, v uint16) {
	check(buf, off, 2)
	binary.LittleEndian.PutUint16(buf[off:], v)
}

// Int16 decodes the little-endian int16 at off.
func Int16(buf []byte, off int) int16 {
	check(buf, off, 2)
	return ReadShort(buf[off+1], buf[off])
}

// PutInt16 encodes v at off.
func PutInt16(buf []byte, off int, v int16) {
	PutUint16(buf, off, uint16(v))
}

// Uint32 decodes the little-endian uint32 at off.
func Uint32(buf []byte, off int) uint32 {
	check(buf, off, 4)
	return binary.LittleEndian.Uint32(buf[off:])
}

// PutUint32 encodes v at off.
func PutUint32(buf []byte, off int, v uint32) {
	check(buf, off, 4)
	binary.LittleEndian.PutUint32(buf[off:], v)
}

// Int32 decodes the little-endian int32 at off.
func Int32(buf []byte, off int) int32 {
	check(buf, off, 4)
	return ReadInt(buf[off:])
}

// PutInt32 encodes v at off.
func PutInt32(buf []byte, off int, v int32) {
	PutUint32(buf, off, uint32(v))
}

// Float64 decodes the IEEE-754 double at off.
func Float64(buf []byte, off int) float64 {
	check(buf, off, 8)
	return EightByteToDouble(buf[off:])
}

// PutFloat64 encodes v at off.
func PutFloat64(buf []byte, off int, v float64) {
	check(buf, off, 8)
	binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(v))
}

// FixedPoint decodes a 16.16 signed fixed-point number at off, as used by
// the Chart and PlotGrowth records.
func FixedPoint(buf []byte, off int) float64 {
	return float64(Int32(buf, off)) / 65536
}

// PutFixedPoint encodes v as 16.16 fixed point at off. Fractions below
// 1/65536 are truncated.
func PutFixedPoint(buf []byte, off int, v float64) {
	PutInt32(buf, off, int32(v*65536))
}
