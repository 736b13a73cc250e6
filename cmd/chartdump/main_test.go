package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamitzky/xlchart-go/biff"
	"github.com/yamitzky/xlchart-go/chart"
)

func runCLI(args []string) (string, string, int) {
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(""), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func rec(op uint16, data []byte) []byte {
	out := binary.LittleEndian.AppendUint16(nil, op)
	out = binary.LittleEndian.AppendUint16(out, uint16(len(data)))
	return append(out, data...)
}

func bof(streamtype uint16) []byte {
	data := binary.LittleEndian.AppendUint16(nil, 0x0600)
	data = binary.LittleEndian.AppendUint16(data, streamtype)
	return rec(0x0809, append(data, make([]byte, 12)...))
}

// workbookStream returns a raw workbook stream holding one chart sheet.
func workbookStream(t *testing.T, name string, body []byte) []byte {
	t.Helper()
	globals := func(offset int) []byte {
		out := bof(0x0005)
		out = append(out, rec(0x0042, []byte{0xB0, 0x04})...)
		data := binary.LittleEndian.AppendUint32(nil, uint32(offset))
		data = append(data, 0, 0x02)
		data, err := biff.AppendShortXLUnicodeString(data, name)
		require.NoError(t, err)
		out = append(out, rec(0x0085, data)...)
		return append(out, rec(0x000A, nil)...)
	}
	out := globals(len(globals(0)))
	out = append(out, bof(0x0020)...)
	out = append(out, body...)
	return append(out, rec(0x000A, nil)...)
}

func writeSample(t *testing.T, dir, file string, typeOpcode uint16, title string) string {
	t.Helper()
	c, err := chart.NewChart(typeOpcode, &chart.Options{})
	require.NoError(t, err)
	if title != "" {
		_, err = c.SetTitle(title)
		require.NoError(t, err)
	}
	body, err := c.Bytes()
	require.NoError(t, err)
	path := filepath.Join(dir, file)
	require.NoError(t, os.WriteFile(path, workbookStream(t, "Chart1", body), 0o644))
	return path
}

func TestRunDefault(t *testing.T) {
	sample := writeSample(t, t.TempDir(), "bar.bin", chart.OpBar, "")
	out, errOut, code := runCLI([]string{sample})
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "1 sheets, 1 charts")
	assert.Contains(t, out, "== Chart1 (barChart) at offset")
	assert.Contains(t, out, "\nChart [16]")
	assert.Contains(t, out, "\n  AxisParent [18]")
	assert.Contains(t, out, "\n      Bar [6] 00 00 96 00 00 00")
}

func TestRunOOXML(t *testing.T) {
	sample := writeSample(t, t.TempDir(), "pie.bin", chart.OpPie, "Share")
	out, errOut, code := runCLI([]string{"--ooxml", sample})
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "<!-- "+sample+": Chart1 -->")
	assert.Contains(t, out, "<c:pieChart>")
	assert.Contains(t, out, "Share")
}

func TestRunJSON(t *testing.T) {
	sample := writeSample(t, t.TempDir(), "line.bin", chart.OpLine, "Trend")
	out, errOut, code := runCLI([]string{"--json", sample})
	require.Equal(t, 0, code, errOut)

	var doc jsonBook
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, sample, doc.File)
	assert.Equal(t, 1200, doc.Codepage)
	assert.Equal(t, []string{"Chart1"}, doc.Sheets)
	require.Len(t, doc.Charts, 1)
	c := doc.Charts[0]
	assert.Equal(t, []string{"lineChart"}, c.Groups)
	assert.Equal(t, "Trend", c.Title)
	assert.Zero(t, c.Opaque)
	require.NotEmpty(t, c.Records)
	assert.Equal(t, jsonRecord{Opcode: "0x1002", Name: "Chart", Length: 16, Depth: 0}, c.Records[0])
}

func TestRunDir(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "a.bin", chart.OpArea, "")
	writeSample(t, dir, "b.bin", chart.OpRadar, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a workbook"), 0o644))

	out, errOut, code := runCLI([]string{dir})
	require.Equal(t, 0, code, errOut)
	a := strings.Index(out, "a.bin:")
	b := strings.Index(out, "b.bin:")
	require.True(t, a >= 0 && b > a, out)
	assert.Contains(t, out, "(areaChart)")
	assert.Contains(t, out, "(radarChart)")
	assert.NotContains(t, out, "notes.txt")
}

func TestRunDirEmpty(t *testing.T) {
	_, errOut, code := runCLI([]string{t.TempDir()})
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no workbook streams found")
}

func TestRunStdin(t *testing.T) {
	c, err := chart.NewChart(chart.OpScatter, &chart.Options{})
	require.NoError(t, err)
	body, err := c.Bytes()
	require.NoError(t, err)
	var stdout, stderr bytes.Buffer
	code := run([]string{"-"}, bytes.NewReader(workbookStream(t, "XY", body)), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "== XY (scatterChart)")
}

func TestRunStrict(t *testing.T) {
	c, err := chart.NewChart(chart.OpBar, &chart.Options{})
	require.NoError(t, err)
	var body []byte
	for _, r := range c.RecordArray() {
		data := r.Data()
		if r.Opcode() == chart.OpBar {
			data = data[:4]
		}
		body = append(body, rec(r.Opcode(), data)...)
	}
	path := filepath.Join(t.TempDir(), "short.bin")
	require.NoError(t, os.WriteFile(path, workbookStream(t, "Chart1", body), 0o644))

	out, errOut, code := runCLI([]string{"-v", "1", path})
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, errOut, "kept opaque")
	assert.Contains(t, out, "(no chart group)")

	_, errOut, code = runCLI([]string{"--strict", path})
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "(Bar)")
}

func TestRunUsage(t *testing.T) {
	_, _, code := runCLI(nil)
	assert.Equal(t, 2, code)

	_, errOut, code := runCLI([]string{"--ooxml", "--json", "x"})
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "cannot combine")

	_, _, code = runCLI([]string{"--no-such-flag", "x"})
	assert.Equal(t, 2, code)

	_, errOut, code = runCLI([]string{filepath.Join(t.TempDir(), "missing.bin")})
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "missing.bin")

	out, _, code := runCLI([]string{"--version"})
	assert.Equal(t, 0, code)
	assert.Contains(t, out, version)
}
