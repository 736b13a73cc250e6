package workbook

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/yamitzky/xlchart-go/biff"
	"github.com/yamitzky/xlchart-go/chart"
)

// Book is the part of a BIFF8 workbook stream that charts depend on: the
// font and color tables of the globals substream, the sheet directory and
// every chart substream.
//
// You should not instantiate this type yourself. Use the Book returned by
// Open or OpenFile.
type Book struct {
	// BiffVersion is the version of BIFF used to create the file, as 80
	// for BIFF8. Only BIFF8 streams are read.
	BiffVersion int

	// Codepage is the CODEPAGE record value, or nil when the record is
	// missing. For BIFF8 this is 1200, meaning UTF-16LE.
	Codepage *int

	// Encoding is the encoding that was derived from the codepage.
	Encoding string

	// Datemode indicates which date system was in force when this file was last saved.
	// 0: 1900 system (the Excel for Windows default).
	// 1: 1904 system (the Excel for Macintosh default).
	Datemode int

	// UserName is what (if anything) is recorded as the name of the last user to save the file.
	UserName string

	// FontList holds one entry per FONT record of the globals substream,
	// in file order. An entry is nil if its record failed to decode.
	FontList []*chart.Font

	// PaletteRecord holds the custom colors of the PALETTE record, which
	// replace palette entries 8 and up.
	PaletteRecord []color.RGBA

	// Sheets is the sheet directory from the BOUNDSHEET records.
	Sheets []*Sheet

	// Charts lists the chart substreams in stream order: chart sheets as
	// well as charts embedded in worksheets.
	Charts []*Chart

	logfile   io.Writer
	verbosity int
	strict    bool
	mem       []byte
	position  int
	colours   []color.RGBA
}

// Sheet is one entry of the sheet directory.
type Sheet struct {
	Name string

	// Type is one of the XL_BOUNDSHEET_* constants.
	Type int

	// Visibility: 0 visible, 1 hidden, 2 very hidden.
	Visibility int

	// Offset is the stream position of the sheet's BOF record.
	Offset int
}

// Chart is one chart substream of the book.
type Chart struct {
	*chart.Chart

	// Name is the chart sheet name, or the owning sheet name followed by
	// "chart N" for an embedded chart.
	Name string

	// Sheet is the worksheet an embedded chart belongs to; empty for chart
	// sheets.
	Sheet string

	// Offset is the stream position of the chart's BOF record.
	Offset int
}

// Options contains options for opening a workbook.
type Options struct {
	// Logfile is an open file to which messages and diagnostics are written.
	Logfile io.Writer

	// Verbosity increases the volume of trace material written to the logfile.
	Verbosity int

	// Strict makes any chart decode fault fatal. By default a faulty record
	// is kept opaque and a chart whose block structure is broken is skipped.
	Strict bool
}

func (b *Book) logf(level int, format string, args ...interface{}) {
	if b.logfile != nil && b.verbosity >= level {
		fmt.Fprintf(b.logfile, format, args...)
	}
}

// OpenFile reads a raw BIFF8 workbook stream from filename.
func OpenFile(filename string, options *Options) (*Book, error) {
	mem, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Open(mem, options)
}

// Open parses a raw BIFF8 workbook stream, the content of the "Workbook"
// stream of an .xls compound document.
func Open(mem []byte, options *Options) (*Book, error) {
	if options == nil {
		options = &Options{
			Logfile: os.Stdout,
		}
	}
	if len(mem) == 0 {
		return nil, NewError("File size is 0 bytes")
	}
	switch f := InspectFormat(mem); f {
	case "xls":
		return nil, NewError("%s: compound document container is not supported; extract the Workbook stream first", FileFormatDescriptions[f])
	case "xlsx", "xlsb", "ods", "zip":
		return nil, NewError("%s; not supported", FileFormatDescriptions[f])
	}

	bk := &Book{
		logfile:   options.Logfile,
		verbosity: options.Verbosity,
		strict:    options.Strict,
		mem:       mem,
	}
	if err := bk.parseGlobals(); err != nil {
		return nil, err
	}
	if err := bk.parseSubstreams(); err != nil {
		bk.Close()
		return nil, err
	}
	return bk, nil
}

// NumFonts returns the number of FONT records in the globals substream.
func (b *Book) NumFonts() int { return len(b.FontList) }

// Font returns the font with the given BIFF font index. Index 4 is never
// written, so indices above it are shifted down by one.
func (b *Book) Font(index int) *chart.Font {
	switch {
	case index == 4:
		return nil
	case index > 4:
		index--
	}
	if index < 0 || index >= len(b.FontList) {
		return nil
	}
	return b.FontList[index]
}

// ColorTable returns the workbook color table: the default palette with
// the PALETTE record applied.
func (b *Book) ColorTable() []color.RGBA {
	if b.colours == nil {
		t := append([]color.RGBA(nil), biff.DefaultPalette...)
		for i, c := range b.PaletteRecord {
			if 8+i < len(t) {
				t[8+i] = c
			}
		}
		b.colours = t
	}
	return b.colours
}

// SheetNames returns the names of all sheets in the book.
func (b *Book) SheetNames() []string {
	names := make([]string, len(b.Sheets))
	for i, sh := range b.Sheets {
		names[i] = sh.Name
	}
	return names
}

// ChartByName returns the chart with the given name.
func (b *Book) ChartByName(name string) (*Chart, error) {
	for _, c := range b.Charts {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, NewError("No chart named <%s>", name)
}

// Close releases the record trees of every chart.
func (b *Book) Close() {
	for _, c := range b.Charts {
		c.Close()
	}
	b.Charts = nil
	b.mem = nil
}

// parseGlobals parses the workbook globals substream.
func (b *Book) parseGlobals() error {
	version, streamtype, err := b.getBOF()
	if err != nil {
		return err
	}
	switch {
	case streamtype == XL_WORKSPACE:
		return NewError("Workspace file -- no spreadsheet data")
	case streamtype != XL_WORKBOOK_GLOBALS:
		return NewError("BOF not workbook globals: %s stream", streamTypeName(streamtype))
	case version != 80:
		return NewError("BIFF version %s is not supported", BiffTextFromNum(version))
	}
	b.BiffVersion = version
	return b.parseGlobalsRecords()
}

func streamTypeName(t int) string {
	if name, ok := streamTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", t)
}

// getBOF reads the BOF record at the current position and returns the
// BIFF version and the substream type.
func (b *Book) getBOF() (int, int, error) {
	at := b.position
	opcode, data, err := b.getRecordParts()
	if err != nil {
		return 0, 0, NewError("Expected BOF record; met end of file")
	}
	validBOF := false
	for _, code := range bofcodes {
		if opcode == code {
			validBOF = true
			break
		}
	}
	if !validBOF {
		return 0, 0, NewError("Expected BOF record at offset %d; found 0x%04x", at, opcode)
	}
	if len(data) < 4 {
		return 0, 0, NewError("Invalid length (%d) for BOF record type 0x%04x", len(data), opcode)
	}

	version2 := binary.LittleEndian.Uint16(data[0:2])
	streamtype := int(binary.LittleEndian.Uint16(data[2:4]))
	var version int
	switch opcode >> 8 {
	case 0x08:
		switch version2 {
		case 0x0600:
			version = 80
		case 0x0500:
			version = 50
		default:
			return 0, 0, NewError("Unknown BIFF version: 0x%04x", version2)
		}
	case 0x04:
		version = 40
	case 0x02:
		version = 30
	default:
		version = 20
	}
	b.logf(2, "BOF at %d: BIFF%s %s stream\n", at, BiffTextFromNum(version), streamTypeName(streamtype))
	return version, streamtype, nil
}

// parseGlobalsRecords parses the workbook globals records up to and
// including their EOF.
func (b *Book) parseGlobalsRecords() error {
	b.Encoding = b.deriveEncoding()
	for {
		code, data, err := b.getRecordParts()
		if err != nil {
			return errors.Wrap(err, "workbook globals")
		}
		switch code {
		case XL_EOF:
			b.Encoding = b.deriveEncoding()
			return nil
		case XL_FILEPASS:
			return NewError("Workbook is encrypted")
		case XL_BOUNDSHEET:
			if err := b.handleBoundsheet(data); err != nil {
				return err
			}
		case XL_CODEPAGE:
			b.handleCodepage(data)
		case XL_DATEMODE:
			b.handleDatemode(data)
		case XL_WRITEACCESS:
			b.handleWriteAccess(data)
		case XL_FONT:
			if err := b.handleFont(data); err != nil {
				return err
			}
		case XL_PALETTE:
			if err := b.handlePalette(data); err != nil {
				return err
			}
		}
	}
}

// handleBoundsheet handles a BOUNDSHEET record.
func (b *Book) handleBoundsheet(data []byte) error {
	if len(data) < 6 {
		return NewError("BOUNDSHEET record too short")
	}
	name, _, err := biff.ReadShortXLUnicodeString(data, 6)
	if err != nil {
		return NewError("BOUNDSHEET record %d: %v", len(b.Sheets), err)
	}
	sh := &Sheet{
		Name:       name,
		Offset:     int(binary.LittleEndian.Uint32(data[0:4])),
		Visibility: int(data[4] & 0x03),
		Type:       int(data[5]),
	}
	b.logf(2, "BOUNDSHEET: %q type=%d offset=%d\n", sh.Name, sh.Type, sh.Offset)
	b.Sheets = append(b.Sheets, sh)
	return nil
}

// handleCodepage handles a CODEPAGE record.
func (b *Book) handleCodepage(data []byte) {
	if len(data) < 2 {
		return
	}
	codepage := int(binary.LittleEndian.Uint16(data[0:2]))
	b.Codepage = &codepage
}

// handleDatemode handles a DATEMODE record.
func (b *Book) handleDatemode(data []byte) {
	if len(data) < 2 {
		return
	}
	datemode := int(binary.LittleEndian.Uint16(data[0:2]))
	if datemode == 0 || datemode == 1 {
		b.Datemode = datemode
	}
}

// handleWriteAccess handles a WRITEACCESS record: an XLUnicodeString
// padded with spaces to the record size.
func (b *Book) handleWriteAccess(data []byte) {
	if len(data) == 0 {
		return
	}
	name, _, err := biff.ReadXLUnicodeString(data, 0)
	if err != nil {
		b.logf(1, "*** WRITEACCESS: %v\n", err)
		return
	}
	b.UserName = strings.TrimRight(name, " ")
}

// handleFont handles a FONT record. Workbook fonts share the layout of the
// chart-local Font record.
func (b *Book) handleFont(data []byte) error {
	r, err := chart.FromBytes(chart.OpFont, data)
	if err != nil {
		if b.strict {
			return errors.Wrapf(err, "FONT record %d", len(b.FontList))
		}
		b.logf(1, "*** FONT record %d ignored: %v\n", len(b.FontList), err)
		b.FontList = append(b.FontList, nil)
		return nil
	}
	b.FontList = append(b.FontList, r.(*chart.Font))
	return nil
}

// handlePalette handles a PALETTE record.
func (b *Book) handlePalette(data []byte) error {
	if len(data) < 2 {
		return NewError("PALETTE record too short")
	}
	numColors := int(binary.LittleEndian.Uint16(data[0:2]))
	if want := 2 + 4*numColors; len(data) < want {
		return NewError("PALETTE record: %d colors need %d bytes, have %d", numColors, want, len(data))
	}
	b.PaletteRecord = make([]color.RGBA, 0, numColors)
	pos := 2
	for i := 0; i < numColors; i++ {
		b.PaletteRecord = append(b.PaletteRecord, color.RGBA{R: data[pos], G: data[pos+1], B: data[pos+2], A: 0xFF})
		pos += 4
	}
	b.colours = nil
	return nil
}

// deriveEncoding derives the encoding from the codepage.
func (b *Book) deriveEncoding() string {
	if b.Codepage == nil {
		return "utf_16_le"
	}
	codepage := *b.Codepage
	if enc, ok := EncodingFromCodepage[codepage]; ok {
		return enc
	}
	if codepage >= 300 && codepage <= 1999 {
		return fmt.Sprintf("cp%d", codepage)
	}
	return fmt.Sprintf("unknown_codepage_%d", codepage)
}

// parseSubstreams walks the substreams that follow the globals and loads
// every chart substream.
func (b *Book) parseSubstreams() error {
	byOffset := make(map[int]*Sheet, len(b.Sheets))
	for _, sh := range b.Sheets {
		byOffset[sh.Offset] = sh
	}
	owner := ""
	embedded := 0
	for b.position < len(b.mem) {
		start := b.position
		code, _, err := b.getRecordParts()
		if err != nil {
			b.logf(1, "*** trailing garbage at offset %d: %v\n", start, err)
			break
		}
		if code != XL_BOF {
			continue
		}
		b.position = start
		_, streamtype, err := b.getBOF()
		if err != nil {
			return err
		}
		if streamtype != XL_CHART {
			owner, embedded = "", 0
			if sh, ok := byOffset[start]; ok {
				owner = sh.Name
			}
			continue
		}

		c := &Chart{Offset: start}
		if sh, ok := byOffset[start]; ok && sh.Type == XL_BOUNDSHEET_CHART {
			c.Name = sh.Name
		} else {
			embedded++
			c.Sheet = owner
			c.Name = strings.TrimSpace(fmt.Sprintf("%s chart %d", owner, embedded))
		}
		if err := b.getChart(c); err != nil {
			if b.strict {
				return err
			}
			b.logf(1, "*** %v; chart skipped\n", err)
			continue
		}
		b.Charts = append(b.Charts, c)
	}
	for _, sh := range b.Sheets {
		if sh.Type == XL_BOUNDSHEET_CHART && !b.hasChartAt(sh.Offset) {
			b.logf(1, "*** chart sheet %q: no chart substream at offset %d\n", sh.Name, sh.Offset)
		}
	}
	return nil
}

func (b *Book) hasChartAt(offset int) bool {
	for _, c := range b.Charts {
		if c.Offset == offset {
			return true
		}
	}
	return false
}

// getChart parses the chart substream whose BOF was just read. The
// position ends up after the substream's EOF.
func (b *Book) getChart(c *Chart) error {
	body := b.position
	end := -1
	depth := 0
	for end < 0 {
		at := b.position
		code, _, err := b.getRecordParts()
		if err != nil {
			return errors.Wrapf(NewError("no EOF record"), "chart %q at offset %d", c.Name, c.Offset)
		}
		switch code {
		case XL_BOF:
			depth++
		case XL_EOF:
			if depth == 0 {
				end = at
			}
			depth--
		}
	}
	parsed, err := chart.Parse(b.mem[body:end], &chart.Options{
		Logfile:   b.logfile,
		Verbosity: b.verbosity,
		Strict:    b.strict,
		Fonts:     b,
		Colors:    b,
	})
	if err != nil {
		return errors.Wrapf(err, "chart %q at offset %d", c.Name, c.Offset)
	}
	c.Chart = parsed
	b.logf(2, "chart %q: %d bytes\n", c.Name, end-body)
	return nil
}

// getRecordParts reads the next BIFF record from the current position.
func (b *Book) getRecordParts() (int, []byte, error) {
	if b.position+4 > len(b.mem) {
		return 0, nil, io.ErrUnexpectedEOF
	}
	code := int(binary.LittleEndian.Uint16(b.mem[b.position : b.position+2]))
	length := int(binary.LittleEndian.Uint16(b.mem[b.position+2 : b.position+4]))
	if b.position+4+length > len(b.mem) {
		return code, nil, errors.Wrapf(io.ErrUnexpectedEOF, "record 0x%04x at offset %d wants %d bytes", code, b.position, length)
	}
	data := b.mem[b.position+4 : b.position+4+length]
	b.position += 4 + length
	return code, data, nil
}
