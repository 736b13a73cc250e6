package chart

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/yamitzky/xlchart-go/biff"
)

// Options controls parsing and the collaborators a chart resolves fonts and
// colors against.
type Options struct {
	// Logfile receives diagnostics. Nil discards them.
	Logfile io.Writer

	// Verbosity increases the volume of trace material written to the
	// logfile: 1 reports records that failed to decode, 2 traces every
	// record.
	Verbosity int

	// Strict aborts the parse on the first record that fails to decode.
	// By default such a record is kept as an opaque Unknown record so the
	// rest of the stream still loads and round-trips.
	Strict bool

	// Fonts is the workbook font table FontX indices are resolved against.
	Fonts FontTable

	// Colors is the workbook color table. Nil selects the default BIFF8
	// palette.
	Colors ColorTable
}

func defaultOptions(opts *Options) *Options {
	if opts == nil {
		return &Options{Logfile: os.Stdout}
	}
	return opts
}

func (o *Options) logf(level int, format string, args ...interface{}) {
	if o.Logfile != nil && o.Verbosity >= level {
		fmt.Fprintf(o.Logfile, format, args...)
	}
}

// ParseRecords splits a BIFF record stream into records. Every record is
// four header bytes (opcode, payload length; both little-endian 16-bit)
// followed by its payload.
func ParseRecords(b []byte, opts *Options) ([]Record, error) {
	opts = defaultOptions(opts)
	var out []Record
	pos := 0
	for pos < len(b) {
		if pos+4 > len(b) {
			return nil, errors.Wrapf(biff.NewDecodeError(0, len(b)-pos, "truncated record header"),
				"record %d at offset %d", len(out), pos)
		}
		opcode := binary.LittleEndian.Uint16(b[pos:])
		length := int(binary.LittleEndian.Uint16(b[pos+2:]))
		if pos+4+length > len(b) {
			return nil, errors.Wrapf(&biff.DecodeError{Opcode: opcode, Len: len(b) - pos - 4, Want: length},
				"record %d at offset %d", len(out), pos)
		}
		data := b[pos+4 : pos+4+length]
		r, err := FromBytes(opcode, data)
		if err != nil {
			if opts.Strict {
				return nil, errors.Wrapf(err, "record %d (%s) at offset %d", len(out), Name(opcode), pos)
			}
			opts.logf(1, "*** record %d (%s) at offset %d kept opaque: %v\n", len(out), Name(opcode), pos, err)
			r = &Unknown{Base{opcode: opcode, data: append([]byte{}, data...), live: true}}
		}
		opts.logf(2, "%6d: %-16s len=%d\n", pos, Name(opcode), length)
		out = append(out, r)
		pos += 4 + length
	}
	return out, nil
}

// BuildTree nests a flat record stream: the records between a Begin and
// its matching End become the children of the record that precedes the
// Begin. The Begin and End records themselves are dropped; Flatten
// recreates them, along with any payload an opaque bracket carried.
func BuildTree(flat []Record) ([]Record, error) {
	var top []Record
	var stack []Record
	children := func() *[]Record {
		if len(stack) == 0 {
			return &top
		}
		return &stack[len(stack)-1].node().children
	}
	for i, r := range flat {
		switch r.Opcode() {
		case OpBegin:
			list := *children()
			if len(list) == 0 {
				return nil, errors.Wrapf(ErrUnbalancedBlock, "Begin at record %d has no owner", i)
			}
			owner := list[len(list)-1]
			if owner.node().block {
				return nil, errors.Wrapf(ErrUnbalancedBlock, "second Begin for %s at record %d", Name(owner.Opcode()), i)
			}
			owner.node().block = true
			if _, ok := r.(*Unknown); ok {
				owner.node().beginData = r.Data()
			}
			stack = append(stack, owner)
		case OpEnd:
			if len(stack) == 0 {
				return nil, errors.Wrapf(ErrUnbalancedBlock, "End at record %d without Begin", i)
			}
			if _, ok := r.(*Unknown); ok {
				stack[len(stack)-1].node().endData = r.Data()
			}
			stack = stack[:len(stack)-1]
		default:
			list := children()
			if len(stack) > 0 {
				r.node().parent = stack[len(stack)-1]
			}
			*list = append(*list, r)
		}
	}
	if len(stack) > 0 {
		return nil, errors.Wrapf(ErrUnbalancedBlock, "%d blocks left open", len(stack))
	}
	return top, nil
}

// Parse parses a chart substream and builds its object tree.
func Parse(b []byte, opts *Options) (*Chart, error) {
	opts = defaultOptions(opts)
	flat, err := ParseRecords(b, opts)
	if err != nil {
		return nil, err
	}
	tree, err := BuildTree(flat)
	if err != nil {
		return nil, err
	}
	c := &Chart{records: tree, opts: *opts}
	for _, r := range tree {
		attach(r, nil, c)
	}
	return c, nil
}

// Marshal writes records as a BIFF record stream.
func Marshal(records []Record) ([]byte, error) {
	var out []byte
	for i, r := range records {
		data := r.Data()
		if len(data) > 0xFFFF {
			return nil, errors.Errorf("record %d (%s): payload of %d bytes does not fit a record", i, Name(r.Opcode()), len(data))
		}
		out = binary.LittleEndian.AppendUint16(out, r.Opcode())
		out = binary.LittleEndian.AppendUint16(out, uint16(len(data)))
		out = append(out, data...)
	}
	return out, nil
}
