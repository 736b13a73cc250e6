package biff

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ReadShortXLUnicodeString decodes a ShortXLUnicodeString (8-bit character
// count, option byte, characters) at off. It returns the string and the
// number of bytes consumed.
func ReadShortXLUnicodeString(buf []byte, off int) (string, int, error) {
	if off+1 > len(buf) {
		return "", 0, fmt.Errorf("insufficient data for string length")
	}
	s, n, err := readChars(buf, off+1, int(buf[off]))
	return s, n + 1, err
}

// ReadXLUnicodeString decodes an XLUnicodeString (16-bit character count,
// option byte, characters) at off.
func ReadXLUnicodeString(buf []byte, off int) (string, int, error) {
	if off+2 > len(buf) {
		return "", 0, fmt.Errorf("insufficient data for string length")
	}
	s, n, err := readChars(buf, off+2, int(Uint16(buf, off)))
	return s, n + 2, err
}

func readChars(buf []byte, pos, nchars int) (string, int, error) {
	if pos >= len(buf) {
		if nchars == 0 {
			return "", 0, nil
		}
		return "", 0, fmt.Errorf("insufficient data for unicode options")
	}
	options := buf[pos]
	pos++
	width := 1
	dec := charmap.ISO8859_1.NewDecoder()
	if options&0x01 != 0 {
		width = 2
		dec = utf16le.NewDecoder()
	}
	if pos+width*nchars > len(buf) {
		return "", 0, fmt.Errorf("insufficient data for %d characters", nchars)
	}
	out, err := dec.Bytes(buf[pos : pos+width*nchars])
	if err != nil {
		return "", 0, fmt.Errorf("failed to decode string: %v", err)
	}
	return string(out), 1 + width*nchars, nil
}

// EncodeChars encodes s as the option byte plus character bytes of an
// XLUnicodeString. Strings that fit Latin-1 are stored compressed. The
// returned count is the number of characters (UTF-16 code units).
func EncodeChars(s string) (body []byte, nchars int, err error) {
	if fitsLatin1(s) {
		if latin, lerr := charmap.ISO8859_1.NewEncoder().String(s); lerr == nil {
			return append([]byte{0x00}, latin...), len(latin), nil
		}
	}
	wide, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to encode string: %v", err)
	}
	return append([]byte{0x01}, wide...), len(wide) / 2, nil
}

func fitsLatin1(s string) bool {
	for _, r := range s {
		if r > 0xFF {
			return false
		}
	}
	return true
}

// AppendShortXLUnicodeString appends the ShortXLUnicodeString encoding of s.
func AppendShortXLUnicodeString(dst []byte, s string) ([]byte, error) {
	body, n, err := EncodeChars(s)
	if err != nil {
		return dst, err
	}
	if n > 0xFF {
		return dst, fmt.Errorf("string of %d characters does not fit an 8-bit count", n)
	}
	dst = append(dst, byte(n))
	return append(dst, body...), nil
}

// AppendXLUnicodeString appends the XLUnicodeString encoding of s.
func AppendXLUnicodeString(dst []byte, s string) ([]byte, error) {
	body, n, err := EncodeChars(s)
	if err != nil {
		return dst, err
	}
	if n > 0xFFFF {
		return dst, fmt.Errorf("string of %d characters does not fit a 16-bit count", n)
	}
	dst = append(dst, byte(n), byte(n>>8))
	return append(dst, body...), nil
}
