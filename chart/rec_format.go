package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/yamitzky/xlchart-go/biff"
)

// colors returns the color table the record resolves indices against.
func (b *Base) colors() []color.RGBA {
	if b.chart != nil {
		return b.chart.colorTable()
	}
	return biff.DefaultPalette
}

func (b *Base) rgb(off int) color.RGBA {
	return color.RGBA{R: b.u8(off), G: b.u8(off + 1), B: b.u8(off + 2), A: 0xFF}
}

func (b *Base) putRGB(off int, c color.RGBA) {
	b.putU8(off, c.R)
	b.putU8(off+1, c.G)
	b.putU8(off+2, c.B)
}

// parseColor accepts "#RRGGBB" or a decimal color index.
func parseColor(value string) (c color.RGBA, icv int, isIndex bool, ok bool) {
	if strings.HasPrefix(value, "#") {
		if len(value) != 7 {
			return c, 0, false, false
		}
		v, err := strconv.ParseUint(value[1:], 16, 32)
		if err != nil {
			return c, 0, false, false
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, 0, false, true
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 0xFFFF {
		return c, 0, false, false
	}
	return c, n, true, true
}

func formatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// LinePattern is the dash style of a line.
type LinePattern uint16

const (
	LineSolid LinePattern = iota
	LineDash
	LineDot
	LineDashDot
	LineDashDotDot
	LineNone
	LineDarkGray
	LineMediumGray
	LineLightGray
)

var linePatternNames = []string{"solid", "dash", "dot", "dashDot", "dashDotDot", "none", "darkGray", "mediumGray", "lightGray"}

// LineWeight is the thickness of a line.
type LineWeight int16

const (
	LineHairline LineWeight = -1
	LineNarrow   LineWeight = 0
	LineMedium   LineWeight = 1
	LineWide     LineWeight = 2
)

// LineFormat (0x1007) specifies the appearance of a line.
//
//	offset  size  field
//	0       4     rgb    red, green, blue, reserved
//	4       2     lns    pattern 0..8
//	6       2     we     weight -1..2
//	8       2     grbit  fAuto(0) fAxisOn(2) fAutoCo(3)
//	10      2     icv    color index
type LineFormat struct {
	Base
	color   color.RGBA
	pattern uint16
	weight  int16
	grbit   uint16
	icv     uint16
}

const (
	lineAuto   = 0
	lineAxisOn = 2
	lineAutoCo = 3
)

// Init implements Record.
func (r *LineFormat) Init() error {
	if err := r.require(12); err != nil {
		return err
	}
	r.color = r.rgb(0)
	r.pattern = r.u16(4)
	r.weight = r.i16(6)
	r.grbit = r.u16(8)
	r.icv = r.u16(10)
	r.live = true
	return nil
}

// Color returns the stored RGB value of the line.
func (r *LineFormat) Color() color.RGBA { return r.color }

// ColorIndex returns the color index of the line.
func (r *LineFormat) ColorIndex() uint16 { return r.icv }

// ResolvedColor resolves the color index against the chart color table.
func (r *LineFormat) ResolvedColor() color.RGBA { return biff.ResolveColor(r.colors(), r.icv) }

// SetColorIndex sets the color index and the matching RGB value, and turns
// off the automatic color.
func (r *LineFormat) SetColorIndex(icv uint16) {
	r.icv = icv
	r.color = biff.ResolveColor(r.colors(), icv)
	r.grbit = biff.UpdateFlagBit(r.grbit, false, lineAutoCo)
	r.encode()
}

// SetColor sets the RGB value and the nearest color index.
func (r *LineFormat) SetColor(c color.RGBA) {
	r.color = c
	r.color.A = 0xFF
	r.icv = uint16(biff.NearestColorIndex(r.colors(), c))
	r.grbit = biff.UpdateFlagBit(r.grbit, false, lineAutoCo)
	r.encode()
}

func (r *LineFormat) encode() {
	r.putRGB(0, r.color)
	r.putU16(4, r.pattern)
	r.putI16(6, r.weight)
	r.putU16(8, r.grbit)
	r.putU16(10, r.icv)
}

// Pattern returns the dash style.
func (r *LineFormat) Pattern() LinePattern { return LinePattern(r.pattern) }

// SetPattern sets the dash style.
func (r *LineFormat) SetPattern(p LinePattern) error {
	if err := biff.CheckRange("lns", int(p), 0, int(LineLightGray)); err != nil {
		return err
	}
	r.pattern = uint16(p)
	r.encode()
	return nil
}

// Weight returns the line thickness.
func (r *LineFormat) Weight() LineWeight { return LineWeight(r.weight) }

// SetWeight sets the line thickness.
func (r *LineFormat) SetWeight(w LineWeight) error {
	if err := biff.CheckRange("we", int(w), -1, 2); err != nil {
		return err
	}
	r.weight = int16(w)
	r.encode()
	return nil
}

// IsAuto reports whether the line uses automatic formatting.
func (r *LineFormat) IsAuto() bool { return biff.FlagBit(r.grbit, lineAuto) }

// SetAuto sets the automatic formatting flag.
func (r *LineFormat) SetAuto(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, lineAuto)
	r.encode()
}

// IsAxisOn reports whether the axis line is displayed.
func (r *LineFormat) IsAxisOn() bool { return biff.FlagBit(r.grbit, lineAxisOn) }

// SetAxisOn sets the axis line flag.
func (r *LineFormat) SetAxisOn(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, lineAxisOn)
	r.encode()
}

// IsAutoColor reports whether the color is chosen automatically.
func (r *LineFormat) IsAutoColor() bool { return biff.FlagBit(r.grbit, lineAutoCo) }

// SetAutoColor sets the automatic color flag.
func (r *LineFormat) SetAutoColor(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, lineAutoCo)
	r.encode()
}

// SetOption implements Record.
func (r *LineFormat) SetOption(name, value string) bool {
	switch name {
	case "LineColor":
		c, icv, isIndex, ok := parseColor(value)
		if !ok {
			return false
		}
		if isIndex {
			r.SetColorIndex(uint16(icv))
		} else {
			r.SetColor(c)
		}
		return true
	case "LinePattern":
		for i, n := range linePatternNames {
			if n == value {
				return r.SetPattern(LinePattern(i)) == nil
			}
		}
		return false
	case "LineWeight":
		v, ok := parseInt(value, -1, 2)
		return ok && r.SetWeight(LineWeight(v)) == nil
	case "Auto", "AxisOn", "AutoColor":
		v, ok := parseBool(value)
		if !ok {
			return false
		}
		switch name {
		case "Auto":
			r.SetAuto(v)
		case "AxisOn":
			r.SetAxisOn(v)
		default:
			r.SetAutoColor(v)
		}
		return true
	}
	return false
}

// Option implements Record.
func (r *LineFormat) Option(name string) (string, bool) {
	switch name {
	case "LineColor":
		return formatColor(r.Color()), true
	case "LinePattern":
		if int(r.pattern) < len(linePatternNames) {
			return linePatternNames[r.pattern], true
		}
		return formatInt(int(r.pattern)), true
	case "LineWeight":
		return formatInt(int(r.weight)), true
	case "Auto":
		return formatBool(r.IsAuto()), true
	case "AxisOn":
		return formatBool(r.IsAxisOn()), true
	case "AutoColor":
		return formatBool(r.IsAutoColor()), true
	}
	return "", false
}

// FillPattern is the fill style of an area. 0 is no fill, 1 is a solid fill
// and 2..18 are the hatch patterns.
type FillPattern uint16

const (
	FillNone  FillPattern = 0
	FillSolid FillPattern = 1
)

// AreaFormat (0x100A) specifies the fill of an area.
//
//	offset  size  field
//	0       4     rgbFore
//	4       4     rgbBack
//	8       2     fls     fill pattern 0..18
//	10      2     grbit   fAuto(0) fInvertNeg(1)
//	12      2     icvFore
//	14      2     icvBack
type AreaFormat struct {
	Base
	fore    color.RGBA
	back    color.RGBA
	pattern uint16
	grbit   uint16
	icvFore uint16
	icvBack uint16
}

// Init implements Record.
func (r *AreaFormat) Init() error {
	if err := r.require(16); err != nil {
		return err
	}
	r.fore = r.rgb(0)
	r.back = r.rgb(4)
	r.pattern = r.u16(8)
	r.grbit = r.u16(10)
	r.icvFore = r.u16(12)
	r.icvBack = r.u16(14)
	r.live = true
	return nil
}

func (r *AreaFormat) encode() {
	r.putRGB(0, r.fore)
	r.putRGB(4, r.back)
	r.putU16(8, r.pattern)
	r.putU16(10, r.grbit)
	r.putU16(12, r.icvFore)
	r.putU16(14, r.icvBack)
}

// ForegroundColorIndex returns the foreground color index.
func (r *AreaFormat) ForegroundColorIndex() uint16 { return r.icvFore }

// ForegroundColor resolves the foreground color index. Indices inside the
// chart color table select a table entry; the reserved indices select their
// system color.
func (r *AreaFormat) ForegroundColor() color.RGBA { return biff.ResolveColor(r.colors(), r.icvFore) }

// ForegroundRGB returns the stored foreground RGB value.
func (r *AreaFormat) ForegroundRGB() color.RGBA { return r.fore }

// SetForegroundColorIndex sets the foreground color index and RGB value.
func (r *AreaFormat) SetForegroundColorIndex(icv uint16) {
	r.icvFore = icv
	r.fore = biff.ResolveColor(r.colors(), icv)
	r.encode()
}

// SetForegroundColor sets the foreground RGB value and the nearest index.
func (r *AreaFormat) SetForegroundColor(c color.RGBA) {
	r.fore = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	r.icvFore = uint16(biff.NearestColorIndex(r.colors(), c))
	r.encode()
}

// BackgroundColorIndex returns the background color index.
func (r *AreaFormat) BackgroundColorIndex() uint16 { return r.icvBack }

// BackgroundColor resolves the background color index.
func (r *AreaFormat) BackgroundColor() color.RGBA { return biff.ResolveColor(r.colors(), r.icvBack) }

// SetBackgroundColorIndex sets the background color index and RGB value.
func (r *AreaFormat) SetBackgroundColorIndex(icv uint16) {
	r.icvBack = icv
	r.back = biff.ResolveColor(r.colors(), icv)
	r.encode()
}

// Pattern returns the fill pattern.
func (r *AreaFormat) Pattern() FillPattern { return FillPattern(r.pattern) }

// SetPattern sets the fill pattern.
func (r *AreaFormat) SetPattern(p FillPattern) error {
	if err := biff.CheckRange("fls", int(p), 0, 18); err != nil {
		return err
	}
	r.pattern = uint16(p)
	r.encode()
	return nil
}

// IsAuto reports whether the area uses automatic formatting.
func (r *AreaFormat) IsAuto() bool { return biff.FlagBit(r.grbit, 0) }

// SetAuto sets the automatic formatting flag.
func (r *AreaFormat) SetAuto(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, 0)
	r.encode()
}

// InvertNegative reports whether negative values swap foreground and
// background.
func (r *AreaFormat) InvertNegative() bool { return biff.FlagBit(r.grbit, 1) }

// SetInvertNegative sets the invert flag.
func (r *AreaFormat) SetInvertNegative(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, 1)
	r.encode()
}

// SetOption implements Record.
func (r *AreaFormat) SetOption(name, value string) bool {
	switch name {
	case "FillColor", "BackColor":
		c, icv, isIndex, ok := parseColor(value)
		if !ok {
			return false
		}
		switch {
		case name == "BackColor" && isIndex:
			r.SetBackgroundColorIndex(uint16(icv))
		case name == "BackColor":
			r.SetBackgroundColorIndex(uint16(biff.NearestColorIndex(r.colors(), c)))
		case isIndex:
			r.SetForegroundColorIndex(uint16(icv))
		default:
			r.SetForegroundColor(c)
		}
		return true
	case "FillPattern":
		v, ok := parseInt(value, 0, 18)
		return ok && r.SetPattern(FillPattern(v)) == nil
	case "Auto", "InvertNegative":
		v, ok := parseBool(value)
		if !ok {
			return false
		}
		if name == "Auto" {
			r.SetAuto(v)
		} else {
			r.SetInvertNegative(v)
		}
		return true
	}
	return false
}

// Option implements Record.
func (r *AreaFormat) Option(name string) (string, bool) {
	switch name {
	case "FillColor":
		return formatColor(r.fore), true
	case "BackColor":
		return formatColor(r.back), true
	case "FillPattern":
		return formatInt(int(r.pattern)), true
	case "Auto":
		return formatBool(r.IsAuto()), true
	case "InvertNegative":
		return formatBool(r.InvertNegative()), true
	}
	return "", false
}

// MarkerType is the shape of a data point marker.
type MarkerType uint16

const (
	MarkerNone MarkerType = iota
	MarkerSquare
	MarkerDiamond
	MarkerTriangle
	MarkerX
	MarkerStar
	MarkerDowJones
	MarkerStdDev
	MarkerCircle
	MarkerPlus
)

var markerNames = []string{"none", "square", "diamond", "triangle", "x", "star", "dot", "dash", "circle", "plus"}

// MarkerFormat (0x1009) specifies the marker of a data point or series.
//
//	offset  size  field
//	0       4     rgbFore
//	4       4     rgbBack
//	8       2     imk      marker type 0..9
//	10      2     grbit    fAuto(0) fNotShowInt(4) fNotShowBrd(5)
//	12      2     icvFore
//	14      2     icvBack
//	16      4     miSize   twips, 40..1440
type MarkerFormat struct {
	Base
	fore    color.RGBA
	back    color.RGBA
	imk     uint16
	grbit   uint16
	icvFore uint16
	icvBack uint16
	size    uint32
}

// Init implements Record.
func (r *MarkerFormat) Init() error {
	if err := r.require(20); err != nil {
		return err
	}
	r.fore = r.rgb(0)
	r.back = r.rgb(4)
	r.imk = r.u16(8)
	r.grbit = r.u16(10)
	r.icvFore = r.u16(12)
	r.icvBack = r.u16(14)
	r.size = r.u32(16)
	r.live = true
	return nil
}

func (r *MarkerFormat) encode() {
	r.putRGB(0, r.fore)
	r.putRGB(4, r.back)
	r.putU16(8, r.imk)
	r.putU16(10, r.grbit)
	r.putU16(12, r.icvFore)
	r.putU16(14, r.icvBack)
	r.putU32(16, r.size)
}

// Type returns the marker shape.
func (r *MarkerFormat) Type() MarkerType { return MarkerType(r.imk) }

// SetType sets the marker shape.
func (r *MarkerFormat) SetType(t MarkerType) error {
	if err := biff.CheckRange("imk", int(t), 0, int(MarkerPlus)); err != nil {
		return err
	}
	r.imk = uint16(t)
	r.encode()
	return nil
}

// Size returns the marker size in twips.
func (r *MarkerFormat) Size() int { return int(r.size) }

// SetSize sets the marker size in twips.
func (r *MarkerFormat) SetSize(twips int) error {
	if err := biff.CheckRange("miSize", twips, 40, 1440); err != nil {
		return err
	}
	r.size = uint32(twips)
	r.encode()
	return nil
}

// ForegroundColor resolves the border color index.
func (r *MarkerFormat) ForegroundColor() color.RGBA { return biff.ResolveColor(r.colors(), r.icvFore) }

// BackgroundColor resolves the fill color index.
func (r *MarkerFormat) BackgroundColor() color.RGBA { return biff.ResolveColor(r.colors(), r.icvBack) }

// SetColorIndices sets the border and fill color indices.
func (r *MarkerFormat) SetColorIndices(fore, back uint16) {
	r.icvFore, r.icvBack = fore, back
	r.fore = biff.ResolveColor(r.colors(), fore)
	r.back = biff.ResolveColor(r.colors(), back)
	r.encode()
}

// IsAuto reports whether the marker uses automatic formatting.
func (r *MarkerFormat) IsAuto() bool { return biff.FlagBit(r.grbit, 0) }

// SetAuto sets the automatic formatting flag.
func (r *MarkerFormat) SetAuto(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, 0)
	r.encode()
}

// ShowFill reports whether the marker interior is drawn.
func (r *MarkerFormat) ShowFill() bool { return !biff.FlagBit(r.grbit, 4) }

// SetShowFill sets whether the marker interior is drawn.
func (r *MarkerFormat) SetShowFill(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, !v, 4)
	r.encode()
}

// ShowBorder reports whether the marker border is drawn.
func (r *MarkerFormat) ShowBorder() bool { return !biff.FlagBit(r.grbit, 5) }

// SetShowBorder sets whether the marker border is drawn.
func (r *MarkerFormat) SetShowBorder(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, !v, 5)
	r.encode()
}

// SetOption implements Record.
func (r *MarkerFormat) SetOption(name, value string) bool {
	switch name {
	case "Marker":
		for i, n := range markerNames {
			if n == value {
				return r.SetType(MarkerType(i)) == nil
			}
		}
		return false
	case "MarkerSize":
		v, ok := parseInt(value, 40, 1440)
		return ok && r.SetSize(v) == nil
	case "Auto", "ShowFill", "ShowBorder":
		v, ok := parseBool(value)
		if !ok {
			return false
		}
		switch name {
		case "Auto":
			r.SetAuto(v)
		case "ShowFill":
			r.SetShowFill(v)
		default:
			r.SetShowBorder(v)
		}
		return true
	}
	return false
}

// Option implements Record.
func (r *MarkerFormat) Option(name string) (string, bool) {
	switch name {
	case "Marker":
		if int(r.imk) < len(markerNames) {
			return markerNames[r.imk], true
		}
		return formatInt(int(r.imk)), true
	case "MarkerSize":
		return formatInt(r.Size()), true
	case "Auto":
		return formatBool(r.IsAuto()), true
	case "ShowFill":
		return formatBool(r.ShowFill()), true
	case "ShowBorder":
		return formatBool(r.ShowBorder()), true
	}
	return "", false
}

// PieFormat (0x100B) specifies how far a slice is pulled out of the pie.
//
//	offset  size  field
//	0       2     pcExplode  0..400
type PieFormat struct {
	Base
	explode uint16
}

// Init implements Record.
func (r *PieFormat) Init() error {
	if err := r.require(2); err != nil {
		return err
	}
	r.explode = r.u16(0)
	r.live = true
	return nil
}

// Explosion returns the slice offset in percent of the pie radius.
func (r *PieFormat) Explosion() int { return int(r.explode) }

// SetExplosion sets the slice offset.
func (r *PieFormat) SetExplosion(v int) error {
	if err := biff.CheckRange("pcExplode", v, 0, 400); err != nil {
		return err
	}
	r.explode = uint16(v)
	r.putU16(0, r.explode)
	return nil
}

// SetOption implements Record.
func (r *PieFormat) SetOption(name, value string) bool {
	if name != "Explosion" {
		return false
	}
	v, ok := parseInt(value, 0, 400)
	return ok && r.SetExplosion(v) == nil
}

// Option implements Record.
func (r *PieFormat) Option(name string) (string, bool) {
	if name != "Explosion" {
		return "", false
	}
	return formatInt(r.Explosion()), true
}

// SerFmt (0x105D) holds series flags.
//
//	offset  size  field
//	0       2     grbit  fSmoothedLine(0) f3DBubbles(1) fArShadow(2)
type SerFmt struct {
	Base
	grbit uint16
}

// Init implements Record.
func (r *SerFmt) Init() error {
	if err := r.require(2); err != nil {
		return err
	}
	r.grbit = r.u16(0)
	r.live = true
	return nil
}

func (r *SerFmt) set(bit uint, v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, bit)
	r.putU16(0, r.grbit)
}

// IsSmoothed reports whether the series line is smoothed.
func (r *SerFmt) IsSmoothed() bool { return biff.FlagBit(r.grbit, 0) }

// SetSmoothed sets the smoothing flag.
func (r *SerFmt) SetSmoothed(v bool) { r.set(0, v) }

// Is3DBubbles reports whether bubbles are drawn with a 3-D effect.
func (r *SerFmt) Is3DBubbles() bool { return biff.FlagBit(r.grbit, 1) }

// Set3DBubbles sets the 3-D bubble flag.
func (r *SerFmt) Set3DBubbles(v bool) { r.set(1, v) }

// HasShadow implements Shadower.
func (r *SerFmt) HasShadow() bool { return biff.FlagBit(r.grbit, 2) }

// SetShadow implements Shadower.
func (r *SerFmt) SetShadow(v bool) { r.set(2, v) }

// SetOption implements Record.
func (r *SerFmt) SetOption(name, value string) bool {
	v, ok := parseBool(value)
	if !ok {
		return false
	}
	switch name {
	case "Smooth":
		r.SetSmoothed(v)
	case "Bubble3D":
		r.Set3DBubbles(v)
	case "Shadow":
		r.SetShadow(v)
	default:
		return false
	}
	return true
}

// Option implements Record.
func (r *SerFmt) Option(name string) (string, bool) {
	switch name {
	case "Smooth":
		return formatBool(r.IsSmoothed()), true
	case "Bubble3D":
		return formatBool(r.Is3DBubbles()), true
	case "Shadow":
		return formatBool(r.HasShadow()), true
	}
	return "", false
}

// Riser is the base shape of a 3-D bar.
type Riser uint8

const (
	RiserRectangle Riser = 0
	RiserEllipse   Riser = 1
)

// Taper is how a 3-D bar narrows toward its top.
type Taper uint8

const (
	TaperNone  Taper = 0
	TaperPoint Taper = 1
	TaperMax   Taper = 2
)

// Chart3DBarShape (0x105F) specifies the shape of 3-D bars.
//
//	offset  size  field
//	0       1     riser  0 rectangle, 1 ellipse
//	1       1     taper  0 none, 1 to the data point, 2 to the chart maximum
type Chart3DBarShape struct {
	Base
	riser uint8
	taper uint8
}

// Init implements Record.
func (r *Chart3DBarShape) Init() error {
	if err := r.require(2); err != nil {
		return err
	}
	r.riser = r.u8(0)
	r.taper = r.u8(1)
	r.live = true
	return nil
}

// Riser returns the base shape.
func (r *Chart3DBarShape) Riser() Riser { return Riser(r.riser) }

// Taper returns the taper.
func (r *Chart3DBarShape) Taper() Taper { return Taper(r.taper) }

// SetShape sets the base shape and taper.
func (r *Chart3DBarShape) SetShape(riser Riser, taper Taper) error {
	if err := biff.CheckRange("riser", int(riser), 0, 1); err != nil {
		return err
	}
	if err := biff.CheckRange("taper", int(taper), 0, 2); err != nil {
		return err
	}
	r.riser, r.taper = uint8(riser), uint8(taper)
	r.putU8(0, r.riser)
	r.putU8(1, r.taper)
	return nil
}

// DataFormat (0x1006) identifies the series or data point the formatting
// records in its block apply to.
//
//	offset  size  field
//	0       2     xi     data point index, 0xFFFF for the whole series
//	2       2     yi     series index
//	4       2     iss    series order
//	6       2     grbit  fXL4iss(0)
type DataFormat struct {
	Base
	xi    uint16
	yi    uint16
	iss   uint16
	grbit uint16
}

// AllPoints is the point index of a DataFormat that applies to a whole series.
const AllPoints = 0xFFFF

// Init implements Record.
func (r *DataFormat) Init() error {
	if err := r.require(8); err != nil {
		return err
	}
	r.xi = r.u16(0)
	r.yi = r.u16(2)
	r.iss = r.u16(4)
	r.grbit = r.u16(6)
	r.live = true
	return nil
}

// PointIndex returns the data point index, or AllPoints.
func (r *DataFormat) PointIndex() int { return int(r.xi) }

// SeriesIndex returns the series index.
func (r *DataFormat) SeriesIndex() int { return int(r.yi) }

// SeriesOrder returns the plot order of the series.
func (r *DataFormat) SeriesOrder() int { return int(r.iss) }

// SetIndices sets the point index, series index and series order.
func (r *DataFormat) SetIndices(point, series, order int) error {
	if err := biff.CheckRange("xi", point, 0, AllPoints); err != nil {
		return err
	}
	if err := biff.CheckRange("yi", series, 0, 0xFEEF); err != nil {
		return err
	}
	if err := biff.CheckRange("iss", order, 0, 0xFEEF); err != nil {
		return err
	}
	r.xi, r.yi, r.iss = uint16(point), uint16(series), uint16(order)
	r.putU16(0, r.xi)
	r.putU16(2, r.yi)
	r.putU16(4, r.iss)
	return nil
}

// Frame (0x1032) specifies the border and area of a chart element. Its
// block holds a LineFormat and an AreaFormat.
//
//	offset  size  field
//	0       2     frt    0 regular, 4 shadowed
//	2       2     grbit  fAutoSize(0) fAutoPosition(1)
type Frame struct {
	Base
	frt   uint16
	grbit uint16
}

// Init implements Record.
func (r *Frame) Init() error {
	if err := r.require(4); err != nil {
		return err
	}
	r.frt = r.u16(0)
	r.grbit = r.u16(2)
	r.live = true
	return nil
}

// HasShadow implements Shadower.
func (r *Frame) HasShadow() bool { return r.frt == 4 }

// SetShadow implements Shadower.
func (r *Frame) SetShadow(v bool) {
	r.frt = 0
	if v {
		r.frt = 4
	}
	r.putU16(0, r.frt)
}

// IsAutoSize reports whether the frame is sized automatically.
func (r *Frame) IsAutoSize() bool { return biff.FlagBit(r.grbit, 0) }

// IsAutoPosition reports whether the frame is positioned automatically.
func (r *Frame) IsAutoPosition() bool { return biff.FlagBit(r.grbit, 1) }

// SetAuto sets the automatic size and position flags.
func (r *Frame) SetAuto(size, position bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, size, 0)
	r.grbit = biff.UpdateFlagBit(r.grbit, position, 1)
	r.putU16(2, r.grbit)
}

// LineFormat returns the border of the frame.
func (r *Frame) LineFormat() *LineFormat {
	lf, _ := FindFirstChild(r, OpLineFormat).(*LineFormat)
	return lf
}

// AreaFormat returns the fill of the frame.
func (r *Frame) AreaFormat() *AreaFormat {
	af, _ := FindFirstChild(r, OpAreaFormat).(*AreaFormat)
	return af
}

// SetOption implements Record.
func (r *Frame) SetOption(name, value string) bool {
	if name != "Shadow" {
		return false
	}
	v, ok := parseBool(value)
	if !ok {
		return false
	}
	r.SetShadow(v)
	return true
}

// Option implements Record.
func (r *Frame) Option(name string) (string, bool) {
	if name != "Shadow" {
		return "", false
	}
	return formatBool(r.HasShadow()), true
}
