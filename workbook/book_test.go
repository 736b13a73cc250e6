package workbook

import (
	"archive/zip"
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamitzky/xlchart-go/chart"
)

func TestOpen(t *testing.T) {
	barBody := chartBody(t, chart.OpBar)
	pieBody := chartBody(t, chart.OpPie)
	spec := bookSpec{
		fonts:   5,
		palette: []color.RGBA{{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}},
		user:    "tester",
		sheets: []sheetSpec{
			{name: "Data", kind: XL_BOUNDSHEET_WORKSHEET, stream: worksheetStream(chartStream(barBody))},
			{name: "Sales", kind: XL_BOUNDSHEET_CHART, stream: chartStream(pieBody)},
		},
	}
	book, err := Open(spec.build(t), &Options{})
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, 80, book.BiffVersion)
	require.NotNil(t, book.Codepage)
	assert.Equal(t, 1200, *book.Codepage)
	assert.Equal(t, "utf_16_le", book.Encoding)
	assert.Equal(t, "tester", book.UserName)
	assert.Equal(t, 5, book.NumFonts())
	assert.Equal(t, "Arial", book.FontList[0].Name())
	assert.Equal(t, []string{"Data", "Sales"}, book.SheetNames())

	require.Len(t, book.Charts, 2)
	embedded := book.Charts[0]
	assert.Equal(t, "Data chart 1", embedded.Name)
	assert.Equal(t, "Data", embedded.Sheet)
	_, ok := embedded.Primary().TypeRecord().(*chart.Bar)
	assert.True(t, ok)

	sales, err := book.ChartByName("Sales")
	require.NoError(t, err)
	assert.Empty(t, sales.Sheet)
	assert.Equal(t, book.Sheets[1].Offset, sales.Offset)
	_, ok = sales.Primary().TypeRecord().(*chart.Pie)
	assert.True(t, ok)

	got, err := sales.Bytes()
	require.NoError(t, err)
	if diff := cmp.Diff(pieBody, got); diff != "" {
		t.Errorf("chart bytes differ (-want +got):\n%s", diff)
	}

	_, err = book.ChartByName("Missing")
	assert.Error(t, err)
}

func TestBookCollaborators(t *testing.T) {
	spec := bookSpec{
		fonts:   7,
		palette: []color.RGBA{{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}, {R: 1, G: 2, B: 3, A: 0xFF}},
		sheets:  []sheetSpec{{name: "Chart1", kind: XL_BOUNDSHEET_CHART, stream: chartStream(chartBody(t, chart.OpLine))}},
	}
	book, err := Open(spec.build(t), &Options{})
	require.NoError(t, err)

	colours := book.ColorTable()
	require.Len(t, colours, 64)
	assert.Equal(t, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}, colours[8])
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 0xFF}, colours[9])
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0, B: 0, A: 0xFF}, colours[10])

	opts := book.Charts[0].Options()
	require.NotNil(t, opts.Fonts)
	assert.Equal(t, 7, opts.Fonts.NumFonts())
	require.NotNil(t, opts.Colors)
	assert.Equal(t, colours[8], opts.Colors.ColorTable()[8])

	assert.Same(t, book.FontList[3], book.Font(3))
	assert.Nil(t, book.Font(4))
	assert.Same(t, book.FontList[4], book.Font(5))
	assert.Nil(t, book.Font(8))
}

func TestOpenErrors(t *testing.T) {
	var zipped bytes.Buffer
	zw := zip.NewWriter(&zipped)
	_, err := zw.Create("xl/workbook.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	globals := bookSpec{}.globals(t, nil)
	encrypted := append(bof(0x0600, XL_WORKBOOK_GLOBALS), rec(XL_FILEPASS, make([]byte, 6))...)
	encrypted = append(encrypted, rec(XL_EOF, nil)...)
	noEOF := bookSpec{sheets: []sheetSpec{{name: "C", kind: XL_BOUNDSHEET_CHART, stream: bof(0x0600, XL_CHART)}}}.build(t)

	tests := []struct {
		name string
		mem  []byte
		want string
	}{
		{"empty", nil, "0 bytes"},
		{"ole2", append(append([]byte{}, XLS_SIGNATURE...), 0, 0), "compound document"},
		{"xlsx", zipped.Bytes(), "xlsx file; not supported"},
		{"garbage", []byte{1, 2, 3, 4, 5}, "Expected BOF"},
		{"worksheet first", worksheetStream(), "BOF not workbook globals: worksheet stream"},
		{"workspace", bof(0x0600, XL_WORKSPACE), "Workspace file"},
		{"biff5", bof(0x0500, XL_WORKBOOK_GLOBALS), "BIFF version 5 is not supported"},
		{"truncated globals", globals[:len(globals)-2], "workbook globals"},
		{"encrypted", encrypted, "encrypted"},
		{"chart without EOF", noEOF, "no EOF record"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.mem, &Options{Strict: true})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestOpenBrokenChart(t *testing.T) {
	broken := append(chartBody(t, chart.OpBar), rec(chart.OpEnd, nil)...)
	spec := bookSpec{
		sheets: []sheetSpec{
			{name: "Broken", kind: XL_BOUNDSHEET_CHART, stream: chartStream(broken)},
			{name: "Fine", kind: XL_BOUNDSHEET_CHART, stream: chartStream(chartBody(t, chart.OpArea))},
		},
	}
	mem := spec.build(t)

	var log strings.Builder
	book, err := Open(mem, &Options{Logfile: &log, Verbosity: 1})
	require.NoError(t, err)
	require.Len(t, book.Charts, 1)
	assert.Equal(t, "Fine", book.Charts[0].Name)
	assert.Contains(t, log.String(), `chart "Broken"`)
	assert.Contains(t, log.String(), "chart skipped")

	_, err = Open(mem, &Options{Strict: true})
	require.Error(t, err)
	assert.Equal(t, chart.ErrUnbalancedBlock, errors.Cause(err))
}

func TestOpenOpaqueRecord(t *testing.T) {
	// a Bar record one byte short decodes as an opaque record
	body := chartBody(t, chart.OpBar)
	c, err := chart.Parse(body, &chart.Options{})
	require.NoError(t, err)
	flat := c.RecordArray()
	var out []byte
	for _, r := range flat {
		data := r.Data()
		if r.Opcode() == chart.OpBar {
			data = data[:len(data)-1]
		}
		out = append(out, rec(r.Opcode(), data)...)
	}
	spec := bookSpec{sheets: []sheetSpec{{name: "C", kind: XL_BOUNDSHEET_CHART, stream: chartStream(out)}}}

	var log strings.Builder
	book, err := Open(spec.build(t), &Options{Logfile: &log, Verbosity: 1})
	require.NoError(t, err)
	require.Len(t, book.Charts, 1)
	assert.Contains(t, log.String(), "kept opaque")
	got, err := book.Charts[0].Bytes()
	require.NoError(t, err)
	assert.Equal(t, out, got)
}

func TestMissingChartSubstream(t *testing.T) {
	spec := bookSpec{sheets: []sheetSpec{{name: "Gone", kind: XL_BOUNDSHEET_CHART, stream: worksheetStream()}}}
	var log strings.Builder
	book, err := Open(spec.build(t), &Options{Logfile: &log, Verbosity: 1})
	require.NoError(t, err)
	assert.Empty(t, book.Charts)
	assert.Contains(t, log.String(), `chart sheet "Gone": no chart substream`)
}

func TestInspectFormat(t *testing.T) {
	zipWith := func(name string) []byte {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		_, err := zw.Create(name)
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		return buf.Bytes()
	}
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{"xls", append(append([]byte{}, XLS_SIGNATURE...), 0, 0, 0), "xls"},
		{"biff", bof(0x0600, XL_WORKBOOK_GLOBALS), "biff"},
		{"xlsx", zipWith("xl/workbook.xml"), "xlsx"},
		{"xlsb", zipWith("XL\\Workbook.bin"), "xlsb"},
		{"ods", zipWith("content.xml"), "ods"},
		{"zip", zipWith("readme.txt"), "zip"},
		{"broken zip", []byte("PK\x03\x04 not really"), "zip"},
		{"unknown", []byte("hello, world"), ""},
		{"short", []byte{0xD0}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InspectFormat(tt.content)
			assert.Equal(t, tt.want, got)
			_, ok := FileFormatDescriptions[got]
			assert.True(t, ok)
		})
	}
}
