package biff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShortXLUnicodeString(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		encoded []byte
	}{
		{"empty", "", []byte{0x00, 0x00}},
		{"latin1", "Sales", []byte{0x05, 0x00, 'S', 'a', 'l', 'e', 's'}},
		{"latin1 high", "café", []byte{0x04, 0x00, 'c', 'a', 'f', 0xE9}},
		{"utf16", "売上", []byte{0x02, 0x01, 0xF2, 0x58, 0x0A, 0x4E}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := AppendShortXLUnicodeString(nil, test.s)
			if err != nil {
				t.Fatalf("AppendShortXLUnicodeString(%q) error = %v", test.s, err)
			}
			if diff := cmp.Diff(test.encoded, got); diff != "" {
				t.Errorf("encoding mismatch (-want +got):\n%s", diff)
			}
			s, n, err := ReadShortXLUnicodeString(got, 0)
			if err != nil {
				t.Fatalf("ReadShortXLUnicodeString error = %v", err)
			}
			if s != test.s || n != len(got) {
				t.Errorf("ReadShortXLUnicodeString = %q, %d; expected %q, %d", s, n, test.s, len(got))
			}
		})
	}
}

func TestXLUnicodeString(t *testing.T) {
	b, err := AppendXLUnicodeString([]byte{0xAA}, "abc")
	if err != nil {
		t.Fatalf("AppendXLUnicodeString error = %v", err)
	}
	want := []byte{0xAA, 0x03, 0x00, 0x00, 'a', 'b', 'c'}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("encoding mismatch (-want +got):\n%s", diff)
	}
	s, n, err := ReadXLUnicodeString(b, 1)
	if err != nil || s != "abc" || n != 6 {
		t.Errorf("ReadXLUnicodeString = %q, %d, %v", s, n, err)
	}
}

func TestReadStringTruncated(t *testing.T) {
	if _, _, err := ReadShortXLUnicodeString([]byte{0x05, 0x00, 'a'}, 0); err == nil {
		t.Error("expected an error for a truncated string")
	}
	if _, _, err := ReadXLUnicodeString([]byte{0x01}, 0); err == nil {
		t.Error("expected an error for a truncated length")
	}
}
