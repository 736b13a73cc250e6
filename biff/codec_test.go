package biff

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadShort(t *testing.T) {
	tests := []struct {
		hi, lo   byte
		expected int16
	}{
		{0x00, 0x00, 0},
		{0x00, 0x96, 150},
		{0xFF, 0x9C, -100},
		{0x7F, 0xFF, 32767},
		{0x80, 0x00, -32768},
	}
	for _, test := range tests {
		result := ReadShort(test.hi, test.lo)
		if result != test.expected {
			t.Errorf("ReadShort(0x%02x, 0x%02x) = %d, expected %d", test.hi, test.lo, result, test.expected)
		}
		b := ShortToLEBytes(result)
		if b[0] != test.lo || b[1] != test.hi {
			t.Errorf("ShortToLEBytes(%d) = %v, expected [%d %d]", result, b, test.lo, test.hi)
		}
	}
}

func TestIntAndDouble(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 65536, -2147483648} {
		if got := ReadInt(IntToLEBytes(v)); got != v {
			t.Errorf("ReadInt(IntToLEBytes(%d)) = %d", v, got)
		}
	}
	for _, v := range []float64{0, 1.5, -273.15, 1e300} {
		if got := EightByteToDouble(DoubleToLEBytes(v)); got != v {
			t.Errorf("EightByteToDouble(DoubleToLEBytes(%g)) = %g", v, got)
		}
	}
	// 1.0 in little-endian IEEE-754
	one := []byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F}
	if got := EightByteToDouble(one); got != 1.0 {
		t.Errorf("EightByteToDouble(%v) = %g, expected 1", one, got)
	}
}

func TestUpdateFlagBit(t *testing.T) {
	tests := []struct {
		flags    uint16
		set      bool
		bit      uint
		expected uint16
	}{
		{0x0000, true, 0, 0x0001},
		{0x0001, false, 0, 0x0000},
		{0x00F0, true, 1, 0x00F2},
		{0x00F2, false, 4, 0x00E2},
		{0xFFFF, false, 15, 0x7FFF},
		{0x0004, true, 2, 0x0004},
	}
	for _, test := range tests {
		result := UpdateFlagBit(test.flags, test.set, test.bit)
		if result != test.expected {
			t.Errorf("UpdateFlagBit(0x%04x, %v, %d) = 0x%04x, expected 0x%04x",
				test.flags, test.set, test.bit, result, test.expected)
		}
	}
}

func TestBitField(t *testing.T) {
	flags := uint16(0xC01C) // bits 2-4 = 7, bits 14-15 = 3
	if got := BitField(flags, 2, 3); got != 7 {
		t.Errorf("BitField(0x%04x, 2, 3) = %d, expected 7", flags, got)
	}
	if got := BitField(flags, 14, 2); got != 3 {
		t.Errorf("BitField(0x%04x, 14, 2) = %d, expected 3", flags, got)
	}
	flags = SetBitField(flags, 2, 3, 2)
	if flags != 0xC008 {
		t.Errorf("SetBitField = 0x%04x, expected 0xc008", flags)
	}
}

func TestOffsetAccessors(t *testing.T) {
	buf := make([]byte, 16)
	PutInt16(buf, 0, -100)
	PutUint16(buf, 2, 150)
	PutInt32(buf, 4, -7)
	PutFloat64(buf, 8, 0.25)
	want := []byte{0x9C, 0xFF, 0x96, 0x00, 0xF9, 0xFF, 0xFF, 0xFF, 0, 0, 0, 0, 0, 0, 0xD0, 0x3F}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Errorf("encoded bytes mismatch (-want +got):\n%s", diff)
	}
	if Int16(buf, 0) != -100 || Uint16(buf, 2) != 150 || Int32(buf, 4) != -7 || Float64(buf, 8) != 0.25 {
		t.Errorf("decoded values do not match the encoded ones")
	}
}

func TestFixedPoint(t *testing.T) {
	buf := make([]byte, 4)
	PutFixedPoint(buf, 0, 1.5)
	if diff := cmp.Diff([]byte{0x00, 0x80, 0x01, 0x00}, buf); diff != "" {
		t.Errorf("PutFixedPoint(1.5) mismatch (-want +got):\n%s", diff)
	}
	if got := FixedPoint(buf, 0); got != 1.5 {
		t.Errorf("FixedPoint = %g, expected 1.5", got)
	}
}

func TestOutOfBounds(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Fatalf("panic value %T, expected *OutOfBoundsError", r)
		}
		if oob.Off != 3 || oob.Width != 2 || oob.Len != 4 {
			t.Errorf("OutOfBoundsError = %+v", oob)
		}
	}()
	Uint16(make([]byte, 4), 3)
}

func TestCheckRange(t *testing.T) {
	if err := CheckRange("pcGap", 500, 0, 500); err != nil {
		t.Errorf("CheckRange(500) = %v, expected nil", err)
	}
	err := CheckRange("pcGap", 501, 0, 500)
	var dre *DomainRangeError
	if !errors.As(err, &dre) {
		t.Fatalf("CheckRange(501) = %v, expected *DomainRangeError", err)
	}
	if dre.Field != "pcGap" || dre.Value != 501 {
		t.Errorf("DomainRangeError = %+v", dre)
	}
}

func TestResolveColor(t *testing.T) {
	tests := []struct {
		icv      uint16
		expected color.RGBA
	}{
		{0x0A, color.RGBA{0xFF, 0, 0, 0xFF}},
		{0x17, color.RGBA{0x80, 0x80, 0x80, 0xFF}},
		{IcvChartForeground, color.RGBA{0, 0, 0, 0xFF}},
		{IcvWindowBackground, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{IcvChartBackground, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{IcvChartNeutral, color.RGBA{0, 0, 0, 0xFF}},
		{IcvAutomatic, color.RGBA{0, 0, 0, 0xFF}},
	}
	for _, test := range tests {
		result := ResolveColor(DefaultPalette, test.icv)
		if result != test.expected {
			t.Errorf("ResolveColor(0x%02x) = %v, expected %v", test.icv, result, test.expected)
		}
	}
	if !IsReservedColor(DefaultPalette, IcvChartForeground) || IsReservedColor(DefaultPalette, 8) {
		t.Errorf("IsReservedColor boundary wrong for table of %d", len(DefaultPalette))
	}
}

func TestNearestColorIndex(t *testing.T) {
	tests := []struct {
		c        color.RGBA
		expected int
	}{
		{color.RGBA{0, 0, 0, 0xFF}, 8},
		{color.RGBA{0xFF, 0, 0, 0xFF}, 10},
		{color.RGBA{0x99, 0x33, 0x66, 0xFF}, 25},
		{color.RGBA{0xFE, 0x01, 0x01, 0xFF}, 10},
	}
	for _, test := range tests {
		if got := NearestColorIndex(DefaultPalette, test.c); got != test.expected {
			t.Errorf("NearestColorIndex(%v) = %d, expected %d", test.c, got, test.expected)
		}
	}
}
