package workbook

import (
	"encoding/binary"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yamitzky/xlchart-go/biff"
	"github.com/yamitzky/xlchart-go/chart"
)

func rec(op uint16, data []byte) []byte {
	out := binary.LittleEndian.AppendUint16(nil, op)
	out = binary.LittleEndian.AppendUint16(out, uint16(len(data)))
	return append(out, data...)
}

func u16(v uint16) []byte { return binary.LittleEndian.AppendUint16(nil, v) }

// bof returns a BIFF8 BOF record for the given substream type.
func bof(version, streamtype uint16) []byte {
	data := append(u16(version), u16(streamtype)...)
	data = append(data, u16(0x0DBB)...)
	data = append(data, u16(0x07CC)...)
	data = append(data, make([]byte, 8)...)
	return rec(XL_BOF, data)
}

// chartBody returns the records of a freshly built chart.
func chartBody(t *testing.T, typeOpcode uint16) []byte {
	t.Helper()
	c, err := chart.NewChart(typeOpcode, &chart.Options{})
	require.NoError(t, err)
	b, err := c.Bytes()
	require.NoError(t, err)
	return b
}

func chartStream(body []byte) []byte {
	out := bof(0x0600, XL_CHART)
	out = append(out, body...)
	return append(out, rec(XL_EOF, nil)...)
}

func worksheetStream(embedded ...[]byte) []byte {
	out := bof(0x0600, XL_WORKSHEET)
	out = append(out, rec(0x0200, make([]byte, 14))...)
	for _, e := range embedded {
		out = append(out, e...)
	}
	return append(out, rec(XL_EOF, nil)...)
}

type sheetSpec struct {
	name   string
	kind   byte
	stream []byte
}

type bookSpec struct {
	fonts   int
	palette []color.RGBA
	user    string
	sheets  []sheetSpec
}

func (s bookSpec) globals(t *testing.T, offsets []int) []byte {
	t.Helper()
	out := bof(0x0600, XL_WORKBOOK_GLOBALS)
	if s.user != "" {
		wa, err := biff.AppendXLUnicodeString(nil, s.user)
		require.NoError(t, err)
		for len(wa) < 112 {
			wa = append(wa, ' ')
		}
		out = append(out, rec(XL_WRITEACCESS, wa)...)
	}
	out = append(out, rec(XL_CODEPAGE, u16(1200))...)
	font, err := chart.New(chart.OpFont)
	require.NoError(t, err)
	for i := 0; i < s.fonts; i++ {
		out = append(out, rec(XL_FONT, font.Data())...)
	}
	if len(s.palette) > 0 {
		data := u16(uint16(len(s.palette)))
		for _, c := range s.palette {
			data = append(data, c.R, c.G, c.B, 0)
		}
		out = append(out, rec(XL_PALETTE, data)...)
	}
	for i, sh := range s.sheets {
		data := binary.LittleEndian.AppendUint32(nil, uint32(offsets[i]))
		data = append(data, 0, sh.kind)
		data, err = biff.AppendShortXLUnicodeString(data, sh.name)
		require.NoError(t, err)
		out = append(out, rec(XL_BOUNDSHEET, data)...)
	}
	return append(out, rec(XL_EOF, nil)...)
}

// build lays out the globals followed by every sheet substream, with
// BOUNDSHEET offsets pointing at the sheets' BOF records.
func (s bookSpec) build(t *testing.T) []byte {
	t.Helper()
	offsets := make([]int, len(s.sheets))
	pos := len(s.globals(t, offsets))
	for i, sh := range s.sheets {
		offsets[i] = pos
		pos += len(sh.stream)
	}
	out := s.globals(t, offsets)
	for _, sh := range s.sheets {
		out = append(out, sh.stream...)
	}
	return out
}
