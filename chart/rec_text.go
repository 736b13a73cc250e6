package chart

import (
	"image/color"

	"github.com/pkg/errors"
	"github.com/yamitzky/xlchart-go/biff"
)

// LabelPlacement is the position of a data label relative to its point.
type LabelPlacement uint16

const (
	LabelDefault LabelPlacement = 0
	LabelOutside LabelPlacement = 1
	LabelInside  LabelPlacement = 2
	LabelCenter  LabelPlacement = 3
	LabelAxis    LabelPlacement = 4
	LabelAbove   LabelPlacement = 5
	LabelBelow   LabelPlacement = 6
	LabelLeft    LabelPlacement = 7
	LabelRight   LabelPlacement = 8
	LabelAuto    LabelPlacement = 9
	LabelMoved   LabelPlacement = 10
)

// Text (0x1025) specifies the properties of a title, axis title, data
// label or legend entry text. Its block holds Pos, FontX, AlRuns, BRAI,
// SeriesText, Frame and ObjectLink records.
//
//	offset  size  field
//	0       1     at        horizontal alignment
//	1       1     vat       vertical alignment
//	2       2     wBkgMode  1 transparent, 2 opaque
//	4       4     rgbText
//	8       4     x         unused, position is in the Pos child
//	12      4     y
//	16      4     dx
//	20      4     dy
//	24      2     grbit     fAutoColor(0) fShowKey(1) fShowValue(2) fAutoText(4)
//	                        fGenerated(5) fDeleted(6) fAutoMode(7)
//	                        fShowLabelAndPerc(11) fShowPercent(12)
//	                        fShowBubbleSizes(13) fShowLabel(14)
//	26      2     icvText
//	28      2     grbit2    dlp(0..3) iReadingOrder(14..15)
//	30      2     trot
type Text struct {
	Base
	halign   uint8
	valign   uint8
	bkgMode  uint16
	color    color.RGBA
	grbit    uint16
	icv      uint16
	grbit2   uint16
	rotation uint16
}

const (
	textAutoColor     = 0
	textShowKey       = 1
	textShowValue     = 2
	textAutoText      = 4
	textGenerated     = 5
	textDeleted       = 6
	textAutoMode      = 7
	textShowLabelPerc = 11
	textShowPercent   = 12
	textShowBubble    = 13
	textShowLabel     = 14
)

// Init implements Record.
func (r *Text) Init() error {
	if err := r.require(32); err != nil {
		return err
	}
	r.halign = r.u8(0)
	r.valign = r.u8(1)
	r.bkgMode = r.u16(2)
	r.color = r.rgb(4)
	r.grbit = r.u16(24)
	r.icv = r.u16(26)
	r.grbit2 = r.u16(28)
	r.rotation = r.u16(30)
	r.live = true
	return nil
}

func (r *Text) encode() {
	r.putU8(0, r.halign)
	r.putU8(1, r.valign)
	r.putU16(2, r.bkgMode)
	r.putRGB(4, r.color)
	r.putU16(24, r.grbit)
	r.putU16(26, r.icv)
	r.putU16(28, r.grbit2)
	r.putU16(30, r.rotation)
}

func (r *Text) flag(bit uint) bool { return biff.FlagBit(r.grbit, bit) }

func (r *Text) setFlag(bit uint, v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, bit)
	r.encode()
}

// Alignment returns the horizontal and vertical alignment.
func (r *Text) Alignment() (horizontal, vertical int) { return int(r.halign), int(r.valign) }

// SetAlignment sets the horizontal and vertical alignment. Both take 1
// (left/top), 2 (center), 3 (right/bottom), 4 (justify) or 7 (distributed).
func (r *Text) SetAlignment(horizontal, vertical int) error {
	for _, v := range []struct {
		name string
		v    int
	}{{"at", horizontal}, {"vat", vertical}} {
		if v.v != 7 {
			if err := biff.CheckRange(v.name, v.v, 1, 4); err != nil {
				return err
			}
		}
	}
	r.halign, r.valign = uint8(horizontal), uint8(vertical)
	r.encode()
	return nil
}

// IsTransparent reports whether the text background is transparent.
func (r *Text) IsTransparent() bool { return r.bkgMode != 2 }

// Color resolves the text color index.
func (r *Text) Color() color.RGBA { return biff.ResolveColor(r.colors(), r.icv) }

// ColorIndex returns the text color index.
func (r *Text) ColorIndex() uint16 { return r.icv }

// SetColorIndex sets the text color and turns off the automatic color.
func (r *Text) SetColorIndex(icv uint16) {
	r.icv = icv
	r.color = biff.ResolveColor(r.colors(), icv)
	r.grbit = biff.UpdateFlagBit(r.grbit, false, textAutoColor)
	r.encode()
}

// IsDeleted reports whether the text is deleted.
func (r *Text) IsDeleted() bool { return r.flag(textDeleted) }

// SetDeleted sets the deleted flag.
func (r *Text) SetDeleted(v bool) { r.setFlag(textDeleted, v) }

// IsAutoText reports whether the text is generated from the data.
func (r *Text) IsAutoText() bool { return r.flag(textAutoText) }

// SetAutoText sets the generated text flag.
func (r *Text) SetAutoText(v bool) { r.setFlag(textAutoText, v) }

// ShowValue reports whether a data label shows the value.
func (r *Text) ShowValue() bool { return r.flag(textShowValue) }

// ShowPercent reports whether a data label shows the percentage.
func (r *Text) ShowPercent() bool { return r.flag(textShowPercent) }

// ShowCategory reports whether a data label shows the category name.
func (r *Text) ShowCategory() bool { return r.flag(textShowLabel) }

// ShowBubbleSize reports whether a data label shows the bubble size.
func (r *Text) ShowBubbleSize() bool { return r.flag(textShowBubble) }

// ShowLegendKey reports whether a data label shows the legend key.
func (r *Text) ShowLegendKey() bool { return r.flag(textShowKey) }

// Placement returns the data label position.
func (r *Text) Placement() LabelPlacement { return LabelPlacement(biff.BitField(r.grbit2, 0, 4)) }

// SetPlacement sets the data label position.
func (r *Text) SetPlacement(p LabelPlacement) error {
	if err := biff.CheckRange("dlp", int(p), 0, int(LabelMoved)); err != nil {
		return err
	}
	r.grbit2 = biff.SetBitField(r.grbit2, 0, 4, uint16(p))
	r.encode()
	return nil
}

// Rotation returns the text rotation, encoded as in Tick.
func (r *Text) Rotation() int { return int(r.rotation) }

// SetRotation sets the text rotation.
func (r *Text) SetRotation(v int) error {
	if v != 255 {
		if err := biff.CheckRange("trot", v, 0, 180); err != nil {
			return err
		}
	}
	r.rotation = uint16(v)
	r.encode()
	return nil
}

// ObjectLink returns the ObjectLink child that attaches the text to a
// chart element, or nil.
func (r *Text) ObjectLink() *ObjectLink {
	ol, _ := FindFirstChild(r, OpObjectLink).(*ObjectLink)
	return ol
}

// SeriesText returns the literal string of the text, or nil.
func (r *Text) SeriesText() *SeriesText {
	st, _ := FindFirstChild(r, OpSeriesText).(*SeriesText)
	return st
}

// Pos returns the position child of the text, or nil.
func (r *Text) Pos() *Pos {
	p, _ := FindFirstChild(r, OpPos).(*Pos)
	return p
}

var textOptionBits = map[string]uint{
	"ShowVal":         textShowValue,
	"ShowPercent":     textShowPercent,
	"ShowCatName":     textShowLabel,
	"ShowBubbleSize":  textShowBubble,
	"ShowLegendKey":   textShowKey,
	"ShowLabelAndPct": textShowLabelPerc,
	"Deleted":         textDeleted,
	"AutoText":        textAutoText,
}

// SetOption implements Record.
func (r *Text) SetOption(name, value string) bool {
	if bit, ok := textOptionBits[name]; ok {
		v, ok := parseBool(value)
		if !ok {
			return false
		}
		r.setFlag(bit, v)
		return true
	}
	switch name {
	case "Rotation":
		v, ok := parseInt(value, 0, 255)
		return ok && r.SetRotation(v) == nil
	case "DataLabelPos":
		v, ok := parseInt(value, 0, int(LabelMoved))
		return ok && r.SetPlacement(LabelPlacement(v)) == nil
	case "Text":
		st := r.SeriesText()
		return st != nil && st.SetText(value) == nil
	}
	return false
}

// Option implements Record.
func (r *Text) Option(name string) (string, bool) {
	switch name {
	case "ShowVal":
		return formatBool(r.ShowValue()), true
	case "ShowPercent":
		return formatBool(r.ShowPercent()), true
	case "ShowCatName":
		return formatBool(r.ShowCategory()), true
	case "ShowBubbleSize":
		return formatBool(r.ShowBubbleSize()), true
	case "ShowLegendKey":
		return formatBool(r.ShowLegendKey()), true
	case "ShowLabelAndPct":
		return formatBool(r.flag(textShowLabelPerc)), true
	case "Deleted":
		return formatBool(r.IsDeleted()), true
	case "AutoText":
		return formatBool(r.IsAutoText()), true
	case "Rotation":
		return formatInt(r.Rotation()), true
	case "DataLabelPos":
		return formatInt(int(r.Placement())), true
	case "Text":
		if st := r.SeriesText(); st != nil {
			return st.Text(), true
		}
	}
	return "", false
}

// FontTable is the font collaborator: it reports the number of fonts in
// the workbook-global font table.
type FontTable interface {
	NumFonts() int
}

// FontX (0x1026) selects the font of the parent text.
//
//	offset  size  field
//	0       2     iFont
type FontX struct {
	Base
	iFont uint16
}

// Init implements Record.
func (r *FontX) Init() error {
	if err := r.require(2); err != nil {
		return err
	}
	r.iFont = r.u16(0)
	r.live = true
	return nil
}

// Index returns the raw font index.
func (r *FontX) Index() int { return int(r.iFont) }

// SetIndex sets the raw font index.
func (r *FontX) SetIndex(v int) error {
	if err := biff.CheckRange("iFont", v, 0, 0xFFFF); err != nil {
		return err
	}
	r.iFont = uint16(v)
	r.putU16(0, r.iFont)
	return nil
}

// Resolve splits the font index between the workbook-global and the
// chart-local font tables. Indices up to the number of workbook fonts are
// global; the remainder count into the chart-local table.
func (r *FontX) Resolve(fonts FontTable) (index int, local bool) {
	n := 0
	if fonts != nil {
		n = fonts.NumFonts()
	} else if r.chart != nil && r.chart.opts.Fonts != nil {
		n = r.chart.opts.Fonts.NumFonts()
	}
	if int(r.iFont) <= n {
		return int(r.iFont), false
	}
	return int(r.iFont) - n + 1, true
}

// SeriesText (0x100D) holds a literal string for a series name or text.
//
//	offset  size  field
//	0       2     reserved
//	2       var   rgch  ShortXLUnicodeString
type SeriesText struct {
	Base
	text string
}

// Init implements Record.
func (r *SeriesText) Init() error {
	if err := r.requireMin(3); err != nil {
		return err
	}
	s, n, err := biff.ReadShortXLUnicodeString(r.data, 2)
	if err != nil {
		return biff.NewDecodeError(r.opcode, len(r.data), "%v", err)
	}
	if 2+n != len(r.data) {
		return biff.NewDecodeError(r.opcode, len(r.data), "%d trailing bytes after string", len(r.data)-2-n)
	}
	r.text = s
	r.live = true
	return nil
}

// Text returns the string.
func (r *SeriesText) Text() string { return r.text }

// SetText replaces the string. The record grows or shrinks to fit.
func (r *SeriesText) SetText(s string) error {
	data, err := biff.AppendShortXLUnicodeString([]byte{0, 0}, s)
	if err != nil {
		return errors.Wrap(err, "series text")
	}
	copy(data, r.data[:2])
	r.data = data
	r.text = s
	return nil
}

// LinkObject is the kind of chart element an ObjectLink attaches text to.
type LinkObject uint16

const (
	LinkChartTitle   LinkObject = 1
	LinkValueAxis    LinkObject = 2
	LinkCategoryAxis LinkObject = 3
	LinkSeries       LinkObject = 4
	LinkSeriesAxis   LinkObject = 7
	LinkDisplayUnits LinkObject = 12
)

// LinkForAxis returns the link target of the title of an axis.
func LinkForAxis(t AxisType) LinkObject {
	switch t {
	case ValueAxis:
		return LinkValueAxis
	case SeriesAxis:
		return LinkSeriesAxis
	}
	return LinkCategoryAxis
}

// ObjectLink (0x1027) attaches the parent text to a chart element.
//
//	offset  size  field
//	0       2     wLinkObj
//	2       2     wLinkVar1  series index for LinkSeries
//	4       2     wLinkVar2  point index for LinkSeries, 0xFFFF for the series
type ObjectLink struct {
	Base
	obj  uint16
	var1 uint16
	var2 uint16
}

// Init implements Record.
func (r *ObjectLink) Init() error {
	if err := r.require(6); err != nil {
		return err
	}
	r.obj = r.u16(0)
	r.var1 = r.u16(2)
	r.var2 = r.u16(4)
	r.live = true
	return nil
}

// Object returns the linked element kind.
func (r *ObjectLink) Object() LinkObject { return LinkObject(r.obj) }

// Series returns the series and point index for LinkSeries.
func (r *ObjectLink) Series() (series, point int) { return int(r.var1), int(r.var2) }

// SetLink sets the linked element.
func (r *ObjectLink) SetLink(obj LinkObject, series, point int) {
	r.obj, r.var1, r.var2 = uint16(obj), uint16(series), uint16(point)
	r.putU16(0, r.obj)
	r.putU16(2, r.var1)
	r.putU16(4, r.var2)
}

// DefaultText (0x1024) says which text elements the Text record that
// follows it provides defaults for.
//
//	offset  size  field
//	0       2     id  0 non-percent labels, 1 percent labels, 2 all text, 3 axis text
type DefaultText struct {
	Base
	id uint16
}

// Init implements Record.
func (r *DefaultText) Init() error {
	if err := r.require(2); err != nil {
		return err
	}
	r.id = r.u16(0)
	r.live = true
	return nil
}

// ID returns the defaults selector.
func (r *DefaultText) ID() int { return int(r.id) }

// Text returns the Text sibling that carries the defaults.
func (r *DefaultText) Text() *Text {
	t, _ := NextSibling(r).(*Text)
	return t
}

// AttachedLabel (0x100C) specifies which values a data label shows.
//
//	offset  size  field
//	0       2     grbit  fShowValue(0) fShowPercent(1) fShowLabelAndPerc(2)
//	                     fShowLabel(4) fShowBubbleSizes(5) fShowSeriesName(6)
type AttachedLabel struct {
	Base
	grbit uint16
}

var attachedLabelBits = map[string]uint{
	"ShowVal":         0,
	"ShowPercent":     1,
	"ShowLabelAndPct": 2,
	"ShowCatName":     4,
	"ShowBubbleSize":  5,
	"ShowSerName":     6,
}

// Init implements Record.
func (r *AttachedLabel) Init() error {
	if err := r.require(2); err != nil {
		return err
	}
	r.grbit = r.u16(0)
	r.live = true
	return nil
}

// Shows reports whether the label shows the named value.
func (r *AttachedLabel) Shows(name string) bool {
	bit, ok := attachedLabelBits[name]
	return ok && biff.FlagBit(r.grbit, bit)
}

// SetOption implements Record.
func (r *AttachedLabel) SetOption(name, value string) bool {
	bit, ok := attachedLabelBits[name]
	if !ok {
		return false
	}
	v, ok := parseBool(value)
	if !ok {
		return false
	}
	r.grbit = biff.UpdateFlagBit(r.grbit, v, bit)
	r.putU16(0, r.grbit)
	return true
}

// Option implements Record.
func (r *AttachedLabel) Option(name string) (string, bool) {
	if _, ok := attachedLabelBits[name]; !ok {
		return "", false
	}
	return formatBool(r.Shows(name)), true
}

// Run is one formatting run of rich text.
type Run struct {
	Char int
	Font int
}

// AlRuns (0x1050) specifies the formatting runs of the parent text.
//
//	offset  size  field
//	0       2     cRuns  3..256
//	2       4*n   rgRuns ich, ifnt
type AlRuns struct {
	Base
	runs []Run
}

// Init implements Record.
func (r *AlRuns) Init() error {
	if err := r.requireMin(2); err != nil {
		return err
	}
	n := int(r.u16(0))
	if len(r.data) != 2+4*n {
		return &biff.DecodeError{Opcode: r.opcode, Len: len(r.data), Want: 2 + 4*n}
	}
	r.runs = make([]Run, n)
	for i := range r.runs {
		r.runs[i] = Run{Char: int(r.u16(2 + 4*i)), Font: int(r.u16(4 + 4*i))}
	}
	r.live = true
	return nil
}

// Runs returns the formatting runs.
func (r *AlRuns) Runs() []Run { return r.runs }

// SetRuns replaces the formatting runs.
func (r *AlRuns) SetRuns(runs []Run) error {
	if err := biff.CheckRange("cRuns", len(runs), 3, 256); err != nil {
		return err
	}
	r.data = make([]byte, 2+4*len(runs))
	r.putU16(0, uint16(len(runs)))
	for i, run := range runs {
		r.putU16(2+4*i, uint16(run.Char))
		r.putU16(4+4*i, uint16(run.Font))
	}
	r.runs = append([]Run(nil), runs...)
	return nil
}

// LinkID is what a BRAI record supplies.
type LinkID uint8

const (
	LinkTitle      LinkID = 0
	LinkValues     LinkID = 1
	LinkCategories LinkID = 2
	LinkBubbles    LinkID = 3
)

// ReferenceType is how a BRAI record supplies its data.
type ReferenceType uint8

const (
	RefAuto    ReferenceType = 0
	RefLiteral ReferenceType = 1
	RefFormula ReferenceType = 2
)

// BRAI (0x1051) is the link from a series or text to its data. The parsed
// formula is kept as raw bytes.
//
//	offset  size  field
//	0       1     id
//	1       1     rt
//	2       2     grbit  fUnlinkedIfmt(0)
//	4       2     ifmt
//	6       2     cce    formula length
//	8       cce   rgce
//	...           trailing extra data of the formula
type BRAI struct {
	Base
	id    uint8
	rt    uint8
	grbit uint16
	ifmt  uint16
}

// Init implements Record.
func (r *BRAI) Init() error {
	if err := r.requireMin(8); err != nil {
		return err
	}
	cce := int(r.u16(6))
	if 8+cce > len(r.data) {
		return biff.NewDecodeError(r.opcode, len(r.data), "formula of %d bytes overruns the record", cce)
	}
	r.id = r.u8(0)
	r.rt = r.u8(1)
	r.grbit = r.u16(2)
	r.ifmt = r.u16(4)
	r.live = true
	return nil
}

// ID returns what the link supplies.
func (r *BRAI) ID() LinkID { return LinkID(r.id) }

// Type returns how the data is supplied.
func (r *BRAI) Type() ReferenceType { return ReferenceType(r.rt) }

// Formula returns the raw parsed formula bytes.
func (r *BRAI) Formula() []byte {
	cce := int(r.u16(6))
	return r.data[8 : 8+cce]
}

// SetFormula replaces the parsed formula. Passing nil removes the
// reference and makes the link automatic.
func (r *BRAI) SetFormula(rgce []byte) error {
	if err := biff.CheckRange("cce", len(rgce), 0, 0xFFFF); err != nil {
		return err
	}
	data := make([]byte, 8+len(rgce))
	copy(data, r.data[:6])
	biff.PutUint16(data, 6, uint16(len(rgce)))
	copy(data[8:], rgce)
	r.data = data
	r.rt = uint8(RefFormula)
	if len(rgce) == 0 {
		r.rt = uint8(RefAuto)
	}
	r.putU8(1, r.rt)
	return nil
}

// NumberFormat returns the number format index and whether it is unlinked
// from the source data.
func (r *BRAI) NumberFormat() (int, bool) { return int(r.ifmt), biff.FlagBit(r.grbit, 0) }

// Font (0x0031) is a chart-local font.
//
//	offset  size  field
//	0       2     dyHeight  twips
//	2       2     grbit     fItalic(1) fStrikeOut(3) fOutline(4) fShadow(5)
//	4       2     icv
//	6       2     bls       weight 100..1000
//	8       2     sss       0 none, 1 superscript, 2 subscript
//	10      1     uls       underline
//	11      1     bFamily
//	12      1     bCharSet
//	13      1     reserved
//	14      var   fontName  ShortXLUnicodeString
type Font struct {
	Base
	height uint16
	grbit  uint16
	icv    uint16
	weight uint16
	escape uint16
	under  uint8
	name   string
}

// Init implements Record.
func (r *Font) Init() error {
	if err := r.requireMin(15); err != nil {
		return err
	}
	name, n, err := biff.ReadShortXLUnicodeString(r.data, 14)
	if err != nil {
		return biff.NewDecodeError(r.opcode, len(r.data), "font name: %v", err)
	}
	if 14+n != len(r.data) {
		return biff.NewDecodeError(r.opcode, len(r.data), "%d trailing bytes after font name", len(r.data)-14-n)
	}
	r.height = r.u16(0)
	r.grbit = r.u16(2)
	r.icv = r.u16(4)
	r.weight = r.u16(6)
	r.escape = r.u16(8)
	r.under = r.u8(10)
	r.name = name
	r.live = true
	return nil
}

// Name returns the font name.
func (r *Font) Name() string { return r.name }

// SetName replaces the font name. The record grows or shrinks to fit.
func (r *Font) SetName(name string) error {
	data, err := biff.AppendShortXLUnicodeString(append([]byte(nil), r.data[:14]...), name)
	if err != nil {
		return errors.Wrap(err, "font name")
	}
	r.data = data
	r.name = name
	return nil
}

// Height returns the font height in twips.
func (r *Font) Height() int { return int(r.height) }

// SetHeight sets the font height in twips.
func (r *Font) SetHeight(twips int) error {
	if err := biff.CheckRange("dyHeight", twips, 20, 8191); err != nil {
		return err
	}
	r.height = uint16(twips)
	r.putU16(0, r.height)
	return nil
}

// Weight returns the font weight; 400 is normal and 700 bold.
func (r *Font) Weight() int { return int(r.weight) }

// IsBold reports whether the font weight is bold.
func (r *Font) IsBold() bool { return r.weight >= 700 }

// SetBold sets the font weight to bold or normal.
func (r *Font) SetBold(v bool) {
	r.weight = 400
	if v {
		r.weight = 700
	}
	r.putU16(6, r.weight)
}

// IsItalic reports whether the font is italic.
func (r *Font) IsItalic() bool { return biff.FlagBit(r.grbit, 1) }

// SetItalic sets the italic flag.
func (r *Font) SetItalic(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, 1)
	r.putU16(2, r.grbit)
}

// Color resolves the font color index.
func (r *Font) Color() color.RGBA { return biff.ResolveColor(r.colors(), r.icv) }

// Underline returns the underline style.
func (r *Font) Underline() int { return int(r.under) }

// Fbi (0x1060) and Fbi2 (0x1068) specify the scaling basis of a font.
//
//	offset  size  field
//	0       2     dmixBasis       width basis in twips
//	2       2     dmiyBasis       height basis in twips
//	4       2     twpHeightBasis  font height in twips
//	6       2     scab            0 chart area, 1 plot area
//	8       2     ifnt
type Fbi struct {
	Base
	width, height, fontHeight, scab, ifnt uint16
}

// Init implements Record.
func (r *Fbi) Init() error {
	if err := r.require(10); err != nil {
		return err
	}
	r.width = r.u16(0)
	r.height = r.u16(2)
	r.fontHeight = r.u16(4)
	r.scab = r.u16(6)
	r.ifnt = r.u16(8)
	r.live = true
	return nil
}

// Basis returns the width and height the font size is relative to.
func (r *Fbi) Basis() (width, height int) { return int(r.width), int(r.height) }

// FontHeight returns the font height at the basis size.
func (r *Fbi) FontHeight() int { return int(r.fontHeight) }

// FontIndex returns the font the basis applies to.
func (r *Fbi) FontIndex() int { return int(r.ifnt) }
