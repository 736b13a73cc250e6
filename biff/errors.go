package biff

import "fmt"

// OutOfBoundsError is the panic value raised by the codec primitives when an
// access does not fit inside the buffer.
type OutOfBoundsError struct {
	Off   int
	Width int
	Len   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("biff: access of %d bytes at offset %d out of bounds for buffer of length %d",
		e.Width, e.Off, e.Len)
}

// DecodeError reports a record payload that cannot be decoded: the payload is
// shorter or longer than the fixed layout of the record type, or one of its
// tag fields holds a combination the layout does not define.
type DecodeError struct {
	Opcode uint16
	Len    int
	// Want is the required payload size, or 0 when the error is not about
	// the size.
	Want int
	Msg  string
}

func (e *DecodeError) Error() string {
	if e.Want > 0 {
		return fmt.Sprintf("biff: record 0x%04x: payload is %d bytes, want %d", e.Opcode, e.Len, e.Want)
	}
	return fmt.Sprintf("biff: record 0x%04x: %s", e.Opcode, e.Msg)
}

// NewDecodeError creates a DecodeError with a formatted message.
func NewDecodeError(opcode uint16, length int, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Opcode: opcode, Len: length, Msg: fmt.Sprintf(format, args...)}
}

// DomainRangeError is returned by setters when a value lies outside the
// legal range of the field it would be written to. The record is left
// unchanged.
type DomainRangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *DomainRangeError) Error() string {
	return fmt.Sprintf("biff: %s = %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// CheckRange returns a *DomainRangeError when v is outside [min, max].
func CheckRange(field string, v, min, max int) error {
	if v < min || v > max {
		return &DomainRangeError{Field: field, Value: v, Min: min, Max: max}
	}
	return nil
}
