// Package chart implements the BIFF8 chart record model: one Go type per
// binary chart record, a registry that maps opcodes to those types, the
// Begin/End nested object tree and the Chart aggregate that owns a parsed
// or newly built chart substream.
//
// Records decode their payload into typed fields as soon as they are created
// and re-encode the affected bytes on every mutation, so Data always returns
// bytes that are in sync with the getters.
package chart

import (
	"strconv"

	"github.com/yamitzky/xlchart-go/biff"
)

// Record is implemented by every chart record type.
type Record interface {
	// Opcode returns the 16-bit record type.
	Opcode() uint16
	// Data returns the payload bytes. The slice is owned by the record and
	// must not be modified.
	Data() []byte
	// Init decodes the typed fields from the payload. It is idempotent.
	Init() error
	// SetOption sets a named option. It returns false, without changing
	// anything, when the record does not know the name or cannot accept
	// the value.
	SetOption(name, value string) bool
	// Option returns the value of a named option, or false when the record
	// does not know the name.
	Option(name string) (string, bool)

	node() *Base
}

// Base carries the state shared by all records: the opcode, the payload
// and the position of the record in the object tree.
type Base struct {
	opcode uint16
	data   []byte
	live   bool

	// block is set when the record is followed by a Begin/End bracketed
	// list of children, even if that list is empty.
	block    bool
	children []Record
	// payloads of a Begin or End bracket that carried unexpected bytes
	beginData, endData []byte

	// non-owning back-references
	parent Record
	chart  *Chart
}

func (b *Base) node() *Base { return b }

// Opcode returns the record type.
func (b *Base) Opcode() uint16 { return b.opcode }

// Data returns the payload bytes.
func (b *Base) Data() []byte { return b.data }

// Live reports whether the payload has been decoded.
func (b *Base) Live() bool { return b.live }

// SetOption is the fallback for records without named options.
func (b *Base) SetOption(name, value string) bool { return false }

// Option is the fallback for records without named options.
func (b *Base) Option(name string) (string, bool) { return "", false }

// Children returns the records nested inside this record's Begin/End block.
func (b *Base) Children() []Record { return b.children }

// IsBlock reports whether the record owns a Begin/End block.
func (b *Base) IsBlock() bool { return b.block }

// Parent returns the record whose block contains this record, or nil for a
// top-level record.
func (b *Base) Parent() Record { return b.parent }

// Chart returns the chart the record belongs to, or nil.
func (b *Base) Chart() *Chart { return b.chart }

func (b *Base) require(n int) error {
	if len(b.data) != n {
		return &biff.DecodeError{Opcode: b.opcode, Len: len(b.data), Want: n}
	}
	return nil
}

func (b *Base) requireMin(n int) error {
	if len(b.data) < n {
		return biff.NewDecodeError(b.opcode, len(b.data), "payload is %d bytes, want at least %d", len(b.data), n)
	}
	return nil
}

func (b *Base) u8(off int) uint8          { return biff.Uint8(b.data, off) }
func (b *Base) u16(off int) uint16        { return biff.Uint16(b.data, off) }
func (b *Base) i16(off int) int16         { return biff.Int16(b.data, off) }
func (b *Base) u32(off int) uint32        { return biff.Uint32(b.data, off) }
func (b *Base) i32(off int) int32         { return biff.Int32(b.data, off) }
func (b *Base) f64(off int) float64       { return biff.Float64(b.data, off) }
func (b *Base) putU8(off int, v uint8)    { biff.PutUint8(b.data, off, v) }
func (b *Base) putU16(off int, v uint16)  { biff.PutUint16(b.data, off, v) }
func (b *Base) putI16(off int, v int16)   { biff.PutInt16(b.data, off, v) }
func (b *Base) putU32(off int, v uint32)  { biff.PutUint32(b.data, off, v) }
func (b *Base) putI32(off int, v int32)   { biff.PutInt32(b.data, off, v) }
func (b *Base) putF64(off int, v float64) { biff.PutFloat64(b.data, off, v) }

// Reload replaces the payload of r and decodes it again. On a decode error
// the previous payload and fields are restored.
func Reload(r Record, data []byte) error {
	b := r.node()
	old := b.data
	b.data = append([]byte(nil), data...)
	if err := r.Init(); err != nil {
		b.data = old
		if ierr := r.Init(); ierr != nil {
			b.live = false
		}
		return err
	}
	return nil
}

// Unknown is a record type the library does not model. Its payload is kept
// verbatim so that it is written back unchanged.
type Unknown struct {
	Base
}

// Init implements Record.
func (r *Unknown) Init() error {
	r.live = true
	return nil
}

// Begin opens the child block of the preceding record.
type Begin struct{ Base }

// Init implements Record.
func (r *Begin) Init() error {
	if err := r.require(0); err != nil {
		return err
	}
	r.live = true
	return nil
}

// End closes the child block opened by the matching Begin.
type End struct{ Base }

// Init implements Record.
func (r *End) Init() error {
	if err := r.require(0); err != nil {
		return err
	}
	r.live = true
	return nil
}

// option value helpers

func parseBool(value string) (bool, bool) {
	v, err := strconv.ParseBool(value)
	return v, err == nil
}

func parseInt(value string, min, max int) (int, bool) {
	v, err := strconv.Atoi(value)
	if err != nil || v < min || v > max {
		return 0, false
	}
	return v, true
}

func parseFloat(value string) (float64, bool) {
	v, err := strconv.ParseFloat(value, 64)
	return v, err == nil
}

func formatBool(v bool) string     { return strconv.FormatBool(v) }
func formatInt(v int) string       { return strconv.Itoa(v) }
func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
