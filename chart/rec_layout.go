package chart

import (
	"github.com/yamitzky/xlchart-go/biff"
)

// PosMode is the meaning of a pair of Pos coordinates.
type PosMode uint16

const (
	MDFX     PosMode = 0 // relative to the default position, SPRC
	MDABS    PosMode = 1 // absolute width and height, points
	MDPARENT PosMode = 2 // relative to the parent element, SPRC
	MDKTH    PosMode = 3 // offset from the axis, SPRC
	MDCHART  PosMode = 5 // relative to the chart area, SPRC
)

func validPosMode(m uint16) bool {
	return m <= 3 || m == 5
}

// Position is the decoded meaning of a Pos record. It is one of
// LegendAbsolute, LegendAuto, LabelOffset, PlotAreaRect or UnknownPosition.
type Position interface {
	modes() (PosMode, PosMode)
}

// LegendAbsolute places a legend at X, Y (SPRC of the chart area) with a
// fixed size of Width by Height points.
type LegendAbsolute struct {
	X, Y          int
	Width, Height int
}

// LegendAuto places a legend at X, Y (SPRC of the chart area) and sizes it
// automatically.
type LegendAuto struct {
	X, Y int
}

// LabelOffset moves a title or data label from its default position by X, Y
// in SPRC.
type LabelOffset struct {
	X, Y int
}

// PlotAreaRect is the inner plot area of an axis group in SPRC of the chart
// area.
type PlotAreaRect struct {
	X, Y          int
	Width, Height int
}

// UnknownPosition is a mode combination the owner does not define. The raw
// values are kept.
type UnknownPosition struct {
	TopLeft, BottomRight PosMode
	X1, Y1, X2, Y2       int
}

func (LegendAbsolute) modes() (PosMode, PosMode)    { return MDCHART, MDABS }
func (LegendAuto) modes() (PosMode, PosMode)        { return MDCHART, MDPARENT }
func (LabelOffset) modes() (PosMode, PosMode)       { return MDPARENT, MDPARENT }
func (PlotAreaRect) modes() (PosMode, PosMode)      { return MDPARENT, MDPARENT }
func (p UnknownPosition) modes() (PosMode, PosMode) { return p.TopLeft, p.BottomRight }

// Pos (0x104F) specifies the size and position of its parent element. The
// meaning of the four coordinates depends on the parent and on the two mode
// fields.
//
//	offset  size  field
//	0       2     mdTopLt
//	2       2     mdBotRt
//	4       2     x1
//	6       2     unused
//	8       2     y1
//	10      2     unused
//	12      2     x2
//	14      2     unused
//	16      2     y2
//	18      2     unused
type Pos struct {
	Base
	topLeft  uint16
	botRight uint16
	x1, y1   int16
	x2, y2   int16
}

// Init implements Record.
func (r *Pos) Init() error {
	if err := r.require(20); err != nil {
		return err
	}
	tl, br := r.u16(0), r.u16(2)
	if !validPosMode(tl) || !validPosMode(br) {
		return biff.NewDecodeError(r.opcode, len(r.data), "position modes %d/%d not defined", tl, br)
	}
	r.topLeft, r.botRight = tl, br
	r.x1 = r.i16(4)
	r.y1 = r.i16(8)
	r.x2 = r.i16(12)
	r.y2 = r.i16(16)
	r.live = true
	return nil
}

func (r *Pos) encode() {
	r.putU16(0, r.topLeft)
	r.putU16(2, r.botRight)
	r.putI16(4, r.x1)
	r.putI16(8, r.y1)
	r.putI16(12, r.x2)
	r.putI16(16, r.y2)
}

// Modes returns the top-left and bottom-right modes.
func (r *Pos) Modes() (topLeft, bottomRight PosMode) {
	return PosMode(r.topLeft), PosMode(r.botRight)
}

// Position decodes the record according to the element that owns it.
func (r *Pos) Position() Position {
	var owner uint16
	if r.parent != nil {
		owner = r.parent.Opcode()
	}
	return r.PositionFor(owner)
}

// PositionFor decodes the record as if it were owned by a record with the
// given opcode.
func (r *Pos) PositionFor(owner uint16) Position {
	tl, br := PosMode(r.topLeft), PosMode(r.botRight)
	switch {
	case owner == OpLegend && tl == MDCHART && br == MDABS:
		return LegendAbsolute{X: int(r.x1), Y: int(r.y1), Width: int(r.x2), Height: int(r.y2)}
	case owner == OpLegend && tl == MDCHART && br == MDPARENT:
		return LegendAuto{X: int(r.x1), Y: int(r.y1)}
	case owner == OpText && tl == MDPARENT && br == MDPARENT:
		return LabelOffset{X: int(r.x1), Y: int(r.y1)}
	case owner == OpAxisParent && tl == MDPARENT && br == MDPARENT:
		return PlotAreaRect{X: int(r.x1), Y: int(r.y1), Width: int(r.x2), Height: int(r.y2)}
	}
	return UnknownPosition{TopLeft: tl, BottomRight: br, X1: int(r.x1), Y1: int(r.y1), X2: int(r.x2), Y2: int(r.y2)}
}

// SetPosition writes p. Coordinates that p does not define keep their
// current bytes.
func (r *Pos) SetPosition(p Position) error {
	tl, br := p.modes()
	if !validPosMode(uint16(tl)) || !validPosMode(uint16(br)) {
		return biff.NewDecodeError(r.opcode, len(r.data), "position modes %d/%d not defined", tl, br)
	}
	switch p := p.(type) {
	case LegendAbsolute:
		r.x1, r.y1, r.x2, r.y2 = int16(p.X), int16(p.Y), int16(p.Width), int16(p.Height)
	case LegendAuto:
		r.x1, r.y1 = int16(p.X), int16(p.Y)
	case LabelOffset:
		r.x1, r.y1 = int16(p.X), int16(p.Y)
	case PlotAreaRect:
		r.x1, r.y1, r.x2, r.y2 = int16(p.X), int16(p.Y), int16(p.Width), int16(p.Height)
	case UnknownPosition:
		r.x1, r.y1, r.x2, r.y2 = int16(p.X1), int16(p.Y1), int16(p.X2), int16(p.Y2)
	}
	r.topLeft, r.botRight = uint16(tl), uint16(br)
	r.encode()
	return nil
}

// LayoutMode is the meaning of one CrtLayout12 coordinate.
type LayoutMode uint16

const (
	LayoutAuto   LayoutMode = 0
	LayoutFactor LayoutMode = 1
	LayoutEdge   LayoutMode = 2
)

// ManualLayout is a layout in fractions of the chart area. Factor
// coordinates are relative to the automatic layout; edge coordinates are
// absolute.
type ManualLayout struct {
	XMode, YMode, WMode, HMode LayoutMode
	X, Y, W, H                 float64
}

func (l ManualLayout) check() error {
	for _, m := range []struct {
		name string
		v    LayoutMode
	}{{"wXMode", l.XMode}, {"wYMode", l.YMode}, {"wWidthMode", l.WMode}, {"wHeightMode", l.HMode}} {
		if err := biff.CheckRange(m.name, int(m.v), 0, 2); err != nil {
			return err
		}
	}
	return nil
}

// IsAuto reports whether all four coordinates are automatic.
func (l ManualLayout) IsAuto() bool {
	return l.XMode == LayoutAuto && l.YMode == LayoutAuto && l.WMode == LayoutAuto && l.HMode == LayoutAuto
}

// layout reads four modes at off and four doubles at doff.
func (b *Base) layout(off, doff int) (ManualLayout, error) {
	l := ManualLayout{
		XMode: LayoutMode(b.u16(off)), YMode: LayoutMode(b.u16(off + 2)),
		WMode: LayoutMode(b.u16(off + 4)), HMode: LayoutMode(b.u16(off + 6)),
		X: b.f64(doff), Y: b.f64(doff + 8), W: b.f64(doff + 16), H: b.f64(doff + 24),
	}
	if err := l.check(); err != nil {
		return l, biff.NewDecodeError(b.opcode, len(b.data), "%v", err)
	}
	return l, nil
}

func (b *Base) putLayout(off, doff int, l ManualLayout) {
	b.putU16(off, uint16(l.XMode))
	b.putU16(off+2, uint16(l.YMode))
	b.putU16(off+4, uint16(l.WMode))
	b.putU16(off+6, uint16(l.HMode))
	b.putF64(doff, l.X)
	b.putF64(doff+8, l.Y)
	b.putF64(doff+16, l.W)
	b.putF64(doff+24, l.H)
}

// CrtLayout12 (0x089D) specifies the layout of a legend, data label or
// title.
//
//	offset  size  field
//	0       12    FrtHeader
//	12      4     dwCheckSum
//	16      2     grbit        autolayouttype(1..4)
//	18      2     wXMode
//	20      2     wYMode
//	22      2     wWidthMode
//	24      2     wHeightMode
//	26      8     x
//	34      8     y
//	42      8     dx
//	50      8     dy
//	58      2     reserved
type CrtLayout12 struct {
	Base
	l ManualLayout
}

// Init implements Record.
func (r *CrtLayout12) Init() error {
	if err := r.require(60); err != nil {
		return err
	}
	l, err := r.layout(18, 26)
	if err != nil {
		return err
	}
	r.l = l
	r.live = true
	return nil
}

// Layout returns the layout.
func (r *CrtLayout12) Layout() ManualLayout { return r.l }

// SetLayout sets the layout.
func (r *CrtLayout12) SetLayout(l ManualLayout) error {
	if err := l.check(); err != nil {
		return err
	}
	r.l = l
	r.putLayout(18, 26, l)
	return nil
}

// CrtLayout12A (0x08A7) specifies the layout of the plot area.
//
//	offset  size  field
//	0       12    FrtHeader
//	12      4     dwCheckSum
//	16      2     grbit        fLayoutTargetInner(0)
//	18      2     xTL
//	20      2     yTL
//	22      2     xBR
//	24      2     yBR
//	26      2     wXMode
//	28      2     wYMode
//	30      2     wWidthMode
//	32      2     wHeightMode
//	34      8     x
//	42      8     y
//	50      8     dx
//	58      8     dy
//	66      2     reserved
type CrtLayout12A struct {
	Base
	grbit uint16
	l     ManualLayout
}

// Init implements Record.
func (r *CrtLayout12A) Init() error {
	if err := r.require(68); err != nil {
		return err
	}
	l, err := r.layout(26, 34)
	if err != nil {
		return err
	}
	r.grbit = r.u16(16)
	r.l = l
	r.live = true
	return nil
}

// Layout returns the layout.
func (r *CrtLayout12A) Layout() ManualLayout { return r.l }

// SetLayout sets the layout.
func (r *CrtLayout12A) SetLayout(l ManualLayout) error {
	if err := l.check(); err != nil {
		return err
	}
	r.l = l
	r.putLayout(26, 34, l)
	return nil
}

// IsInnerTarget reports whether the layout is of the inner plot area,
// excluding tick labels, rather than the outer one.
func (r *CrtLayout12A) IsInnerTarget() bool { return biff.FlagBit(r.grbit, 0) }

// SetInnerTarget sets the layout target.
func (r *CrtLayout12A) SetInnerTarget(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, 0)
	r.putU16(16, r.grbit)
}

// PlotGrowth (0x1064) specifies the scaling of fonts when the plot area
// grows.
//
//	offset  size  field
//	0       4     dxPlotGrowth  FixedPoint
//	4       4     dyPlotGrowth  FixedPoint
type PlotGrowth struct {
	Base
	dx, dy float64
}

// Init implements Record.
func (r *PlotGrowth) Init() error {
	if err := r.require(8); err != nil {
		return err
	}
	r.dx = biff.FixedPoint(r.data, 0)
	r.dy = biff.FixedPoint(r.data, 4)
	r.live = true
	return nil
}

// Growth returns the horizontal and vertical growth factors.
func (r *PlotGrowth) Growth() (dx, dy float64) { return r.dx, r.dy }

// SetGrowth sets the growth factors.
func (r *PlotGrowth) SetGrowth(dx, dy float64) {
	r.dx, r.dy = dx, dy
	biff.PutFixedPoint(r.data, 0, dx)
	biff.PutFixedPoint(r.data, 4, dy)
}

// Scl (0x00A0) specifies the zoom of the chart sheet as a fraction.
//
//	offset  size  field
//	0       2     nscl  10..400 with dscl
//	2       2     dscl
type Scl struct {
	Base
	num, den int16
}

// Init implements Record.
func (r *Scl) Init() error {
	if err := r.require(4); err != nil {
		return err
	}
	r.num = r.i16(0)
	r.den = r.i16(2)
	r.live = true
	return nil
}

// Zoom returns the zoom in percent.
func (r *Scl) Zoom() int {
	if r.den == 0 {
		return 100
	}
	return int(r.num) * 100 / int(r.den)
}

// SetZoom sets the zoom in percent.
func (r *Scl) SetZoom(percent int) error {
	if err := biff.CheckRange("zoom", percent, 10, 400); err != nil {
		return err
	}
	r.num, r.den = int16(percent), 100
	r.putI16(0, r.num)
	r.putI16(2, r.den)
	return nil
}

// ChartRect (0x1002) starts the chart and specifies the size of the chart
// area.
//
//	offset  size  field
//	0       4     x   FixedPoint points
//	4       4     y
//	8       4     dx
//	12      4     dy
type ChartRect struct {
	Base
	x, y, dx, dy float64
}

// Init implements Record.
func (r *ChartRect) Init() error {
	if err := r.require(16); err != nil {
		return err
	}
	r.x = biff.FixedPoint(r.data, 0)
	r.y = biff.FixedPoint(r.data, 4)
	r.dx = biff.FixedPoint(r.data, 8)
	r.dy = biff.FixedPoint(r.data, 12)
	r.live = true
	return nil
}

// Rect returns the chart area position and size in points.
func (r *ChartRect) Rect() (x, y, width, height float64) { return r.x, r.y, r.dx, r.dy }

// SetSize sets the chart area size in points.
func (r *ChartRect) SetSize(width, height float64) {
	r.dx, r.dy = width, height
	biff.PutFixedPoint(r.data, 8, width)
	biff.PutFixedPoint(r.data, 12, height)
}

// LegendPosition is where a legend is docked.
type LegendPosition uint8

const (
	LegendBottom    LegendPosition = 0
	LegendCorner    LegendPosition = 1
	LegendTop       LegendPosition = 2
	LegendRight     LegendPosition = 3
	LegendLeft      LegendPosition = 4
	LegendNotDocked LegendPosition = 7
)

var legendPositionNames = map[LegendPosition]string{
	LegendBottom:    "b",
	LegendCorner:    "tr",
	LegendTop:       "t",
	LegendRight:     "r",
	LegendLeft:      "l",
	LegendNotDocked: "none",
}

// Legend (0x1015) specifies the legend of a chart group. Its block holds a
// Pos, the legend Text and optionally a Frame and CrtLayout12.
//
//	offset  size  field
//	0       4     x         unused, position is in the Pos child
//	4       4     y
//	8       4     dx
//	12      4     dy
//	16      1     wType     docking position
//	17      1     wSpacing  1 medium
//	18      2     grbit     fAutoPosition(0) fAutoPosX(1) fAutoPosY(2) fVert(3) fWasDataTable(4)
type Legend struct {
	Base
	wType   uint8
	spacing uint8
	grbit   uint16
}

// Init implements Record.
func (r *Legend) Init() error {
	if err := r.require(20); err != nil {
		return err
	}
	r.wType = r.u8(16)
	r.spacing = r.u8(17)
	r.grbit = r.u16(18)
	r.live = true
	return nil
}

// Position returns where the legend is docked.
func (r *Legend) Position() LegendPosition { return LegendPosition(r.wType) }

// SetPosition docks the legend and turns on automatic positioning.
// LegendNotDocked leaves the placement to the Pos child.
func (r *Legend) SetPosition(p LegendPosition) error {
	if _, ok := legendPositionNames[p]; !ok {
		return &biff.DomainRangeError{Field: "wType", Value: int(p), Min: 0, Max: 7}
	}
	r.wType = uint8(p)
	auto := p != LegendNotDocked
	r.grbit = biff.UpdateFlagBit(r.grbit, auto, 0)
	r.grbit = biff.UpdateFlagBit(r.grbit, auto, 1)
	r.grbit = biff.UpdateFlagBit(r.grbit, auto, 2)
	r.grbit = biff.UpdateFlagBit(r.grbit, p == LegendLeft || p == LegendRight || p == LegendCorner, 3)
	r.putU8(16, r.wType)
	r.putU16(18, r.grbit)
	return nil
}

// IsVertical reports whether the legend entries are stacked vertically.
func (r *Legend) IsVertical() bool { return biff.FlagBit(r.grbit, 3) }

// IsAutoPosition reports whether the legend is positioned automatically.
func (r *Legend) IsAutoPosition() bool { return biff.FlagBit(r.grbit, 0) }

// Pos returns the position child, or nil.
func (r *Legend) Pos() *Pos {
	p, _ := FindFirstChild(r, OpPos).(*Pos)
	return p
}

// Layout returns the manual layout child, or nil.
func (r *Legend) Layout() *CrtLayout12 {
	l, _ := FindFirstChild(r, OpCrtLayout12).(*CrtLayout12)
	return l
}

// SetOption implements Record.
func (r *Legend) SetOption(name, value string) bool {
	if name != "LegendPos" {
		return false
	}
	for p, n := range legendPositionNames {
		if n == value {
			return r.SetPosition(p) == nil
		}
	}
	return false
}

// Option implements Record.
func (r *Legend) Option(name string) (string, bool) {
	if name != "LegendPos" {
		return "", false
	}
	n, ok := legendPositionNames[r.Position()]
	return n, ok
}

// LegendException (0x1043) hides or formats the legend entry of one series.
//
//	offset  size  field
//	0       2     iss    series index, 0xFFFF for trendlines
//	2       2     grbit  fDelete(0) fLabel(1)
type LegendException struct {
	Base
	iss   uint16
	grbit uint16
}

// Init implements Record.
func (r *LegendException) Init() error {
	if err := r.require(4); err != nil {
		return err
	}
	r.iss = r.u16(0)
	r.grbit = r.u16(2)
	r.live = true
	return nil
}

// Series returns the series index.
func (r *LegendException) Series() int { return int(r.iss) }

// IsDeleted reports whether the legend entry is hidden.
func (r *LegendException) IsDeleted() bool { return biff.FlagBit(r.grbit, 0) }

// SetDeleted sets the hidden flag.
func (r *LegendException) SetDeleted(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, 0)
	r.putU16(2, r.grbit)
}

// BlankMode is how empty cells are plotted.
type BlankMode uint8

const (
	BlankGap         BlankMode = 0
	BlankZero        BlankMode = 1
	BlankInterpolate BlankMode = 2
)

var blankModeNames = []string{"gap", "zero", "span"}

// ShtProps (0x1044) specifies chart sheet properties.
//
//	offset  size  field
//	0       2     grbit    fManSerAlloc(0) fPlotVisOnly(1) fNotSizeWith(2)
//	                       fManPlotArea(3) fAlwaysAutoPlotArea(4)
//	2       1     mdBlank  0 gap, 1 zero, 2 interpolate
//	3       1     unused
type ShtProps struct {
	Base
	grbit uint16
	blank uint8
}

// Init implements Record.
func (r *ShtProps) Init() error {
	if err := r.require(4); err != nil {
		return err
	}
	r.grbit = r.u16(0)
	r.blank = r.u8(2)
	r.live = true
	return nil
}

// PlotVisibleOnly reports whether hidden cells are left out of the chart.
func (r *ShtProps) PlotVisibleOnly() bool { return biff.FlagBit(r.grbit, 1) }

// SetPlotVisibleOnly sets the visible-only flag.
func (r *ShtProps) SetPlotVisibleOnly(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, 1)
	r.putU16(0, r.grbit)
}

// BlankMode returns how empty cells are plotted.
func (r *ShtProps) BlankMode() BlankMode { return BlankMode(r.blank) }

// SetBlankMode sets how empty cells are plotted.
func (r *ShtProps) SetBlankMode(m BlankMode) error {
	if err := biff.CheckRange("mdBlank", int(m), 0, 2); err != nil {
		return err
	}
	r.blank = uint8(m)
	r.putU8(2, r.blank)
	return nil
}

// SetOption implements Record.
func (r *ShtProps) SetOption(name, value string) bool {
	switch name {
	case "PlotVisOnly":
		v, ok := parseBool(value)
		if !ok {
			return false
		}
		r.SetPlotVisibleOnly(v)
		return true
	case "DispBlanksAs":
		for i, n := range blankModeNames {
			if n == value {
				return r.SetBlankMode(BlankMode(i)) == nil
			}
		}
	}
	return false
}

// Option implements Record.
func (r *ShtProps) Option(name string) (string, bool) {
	switch name {
	case "PlotVisOnly":
		return formatBool(r.PlotVisibleOnly()), true
	case "DispBlanksAs":
		if int(r.blank) < len(blankModeNames) {
			return blankModeNames[r.blank], true
		}
	}
	return "", false
}
