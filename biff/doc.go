// Package biff holds the low-level primitives shared by the BIFF8 chart
// record codecs: little-endian integer and IEEE-754 access over mutable byte
// buffers, "grbit" flag fields, the XLUnicodeString encodings and the
// built-in BIFF8 color palette.
//
// All multi-byte values are little-endian. Accessors that take an offset
// panic with an *OutOfBoundsError when the requested range does not fit the
// buffer; record types validate their payload size before decoding, so
// reaching that panic means a programming error rather than bad input.
package biff
