package chart

import (
	"image/color"

	"github.com/yamitzky/xlchart-go/biff"
)

// AxisType identifies the direction of an axis.
type AxisType uint16

const (
	CategoryAxis AxisType = 0
	ValueAxis    AxisType = 1
	SeriesAxis   AxisType = 2
)

func (t AxisType) String() string {
	switch t {
	case CategoryAxis:
		return "category"
	case ValueAxis:
		return "value"
	case SeriesAxis:
		return "series"
	}
	return "unknown"
}

// Axis (0x101D) starts the definition of an axis.
//
//	offset  size  field
//	0       2     wType  0 category, 1 value, 2 series
//	2       16    reserved
type Axis struct {
	Base
	wType uint16
}

// Init implements Record.
func (r *Axis) Init() error {
	if err := r.require(18); err != nil {
		return err
	}
	r.wType = r.u16(0)
	if r.wType > 2 {
		return biff.NewDecodeError(r.opcode, len(r.data), "axis type %d not defined", r.wType)
	}
	r.live = true
	return nil
}

// Type returns the axis direction.
func (r *Axis) Type() AxisType { return AxisType(r.wType) }

// SetType sets the axis direction.
func (r *Axis) SetType(t AxisType) error {
	if err := biff.CheckRange("wType", int(t), 0, 2); err != nil {
		return err
	}
	r.wType = uint16(t)
	r.putU16(0, r.wType)
	return nil
}

// Tick returns the tick record of the axis.
func (r *Axis) Tick() *Tick {
	t, _ := FindFirstChild(r, OpTick).(*Tick)
	return t
}

// ValueRange returns the scale of a value axis.
func (r *Axis) ValueRange() *ValueRange {
	v, _ := FindFirstChild(r, OpValueRange).(*ValueRange)
	return v
}

// CatSerRange returns the scale of a category or series axis.
func (r *Axis) CatSerRange() *CatSerRange {
	v, _ := FindFirstChild(r, OpCatSerRange).(*CatSerRange)
	return v
}

// AxisLine returns the AxisLine child with the given id.
func (r *Axis) AxisLine(id AxisLineID) *AxisLine {
	for _, c := range r.children {
		if al, ok := c.(*AxisLine); ok && al.ID() == id {
			return al
		}
	}
	return nil
}

// TickMark is the position of tick marks relative to the axis line.
type TickMark uint8

const (
	TickNone    TickMark = 0
	TickInside  TickMark = 1
	TickOutside TickMark = 2
	TickCross   TickMark = 3
)

var tickMarkNames = []string{"none", "in", "out", "cross"}

// TickLabelPosition is the position of the tick labels.
type TickLabelPosition uint8

const (
	TickLabelNone   TickLabelPosition = 0
	TickLabelLow    TickLabelPosition = 1
	TickLabelHigh   TickLabelPosition = 2
	TickLabelNextTo TickLabelPosition = 3
)

var tickLabelNames = []string{"none", "low", "high", "nextTo"}

// Tick (0x101E) specifies the tick marks and labels of an axis.
//
//	offset  size  field
//	0       1     tktMajor
//	1       1     tktMinor
//	2       1     tlt       label position
//	3       1     wBkgMode  1 transparent, 2 opaque
//	4       4     rgb       label color
//	8       16    reserved
//	24      2     grbit     fAutoCo(0) fAutoMode(1) rot(2..4) fAutoRot(5) iReadingOrder(14..15)
//	26      2     icv
//	28      2     trot      label rotation
type Tick struct {
	Base
	major    uint8
	minor    uint8
	label    uint8
	bkgMode  uint8
	color    color.RGBA
	grbit    uint16
	icv      uint16
	rotation uint16
}

// Init implements Record.
func (r *Tick) Init() error {
	if err := r.require(30); err != nil {
		return err
	}
	r.major = r.u8(0)
	r.minor = r.u8(1)
	r.label = r.u8(2)
	r.bkgMode = r.u8(3)
	r.color = r.rgb(4)
	r.grbit = r.u16(24)
	r.icv = r.u16(26)
	r.rotation = r.u16(28)
	r.live = true
	return nil
}

func (r *Tick) encode() {
	r.putU8(0, r.major)
	r.putU8(1, r.minor)
	r.putU8(2, r.label)
	r.putU8(3, r.bkgMode)
	r.putRGB(4, r.color)
	r.putU16(24, r.grbit)
	r.putU16(26, r.icv)
	r.putU16(28, r.rotation)
}

// MajorTickMark returns the major tick mark style.
func (r *Tick) MajorTickMark() TickMark { return TickMark(r.major) }

// MinorTickMark returns the minor tick mark style.
func (r *Tick) MinorTickMark() TickMark { return TickMark(r.minor) }

// SetTickMarks sets the major and minor tick mark styles.
func (r *Tick) SetTickMarks(major, minor TickMark) error {
	if err := biff.CheckRange("tktMajor", int(major), 0, 3); err != nil {
		return err
	}
	if err := biff.CheckRange("tktMinor", int(minor), 0, 3); err != nil {
		return err
	}
	r.major, r.minor = uint8(major), uint8(minor)
	r.encode()
	return nil
}

// LabelPosition returns the tick label position.
func (r *Tick) LabelPosition() TickLabelPosition { return TickLabelPosition(r.label) }

// SetLabelPosition sets the tick label position.
func (r *Tick) SetLabelPosition(p TickLabelPosition) error {
	if err := biff.CheckRange("tlt", int(p), 0, 3); err != nil {
		return err
	}
	r.label = uint8(p)
	r.encode()
	return nil
}

// LabelColor resolves the label color index.
func (r *Tick) LabelColor() color.RGBA { return biff.ResolveColor(r.colors(), r.icv) }

// SetLabelColorIndex sets the label color and turns off the automatic color.
func (r *Tick) SetLabelColorIndex(icv uint16) {
	r.icv = icv
	r.color = biff.ResolveColor(r.colors(), icv)
	r.grbit = biff.UpdateFlagBit(r.grbit, false, 0)
	r.encode()
}

// Rotation returns the label rotation in degrees. 0..90 rotate
// counterclockwise, 91..180 clockwise by the value minus 90, 255 stacks the
// characters vertically.
func (r *Tick) Rotation() int { return int(r.rotation) }

// SetRotation sets the label rotation and turns off automatic rotation.
func (r *Tick) SetRotation(v int) error {
	if v != 255 {
		if err := biff.CheckRange("trot", v, 0, 180); err != nil {
			return err
		}
	}
	r.rotation = uint16(v)
	r.grbit = biff.UpdateFlagBit(r.grbit, false, 5)
	r.encode()
	return nil
}

// SetOption implements Record.
func (r *Tick) SetOption(name, value string) bool {
	switch name {
	case "MajorTickMark", "MinorTickMark":
		for i, n := range tickMarkNames {
			if n != value {
				continue
			}
			if name == "MajorTickMark" {
				return r.SetTickMarks(TickMark(i), r.MinorTickMark()) == nil
			}
			return r.SetTickMarks(r.MajorTickMark(), TickMark(i)) == nil
		}
	case "TickLblPos":
		for i, n := range tickLabelNames {
			if n == value {
				return r.SetLabelPosition(TickLabelPosition(i)) == nil
			}
		}
	case "Rotation":
		v, ok := parseInt(value, 0, 255)
		return ok && r.SetRotation(v) == nil
	}
	return false
}

// Option implements Record.
func (r *Tick) Option(name string) (string, bool) {
	switch name {
	case "MajorTickMark":
		if int(r.major) < len(tickMarkNames) {
			return tickMarkNames[r.major], true
		}
	case "MinorTickMark":
		if int(r.minor) < len(tickMarkNames) {
			return tickMarkNames[r.minor], true
		}
	case "TickLblPos":
		if int(r.label) < len(tickLabelNames) {
			return tickLabelNames[r.label], true
		}
	case "Rotation":
		return formatInt(r.Rotation()), true
	}
	return "", false
}

// ValueRange (0x101F) specifies the scale of a value axis.
//
//	offset  size  field
//	0       8     numMin
//	8       8     numMax
//	16      8     numMajor
//	24      8     numMinor
//	32      8     numCross
//	40      2     grbit  fAutoMin(0) fAutoMax(1) fAutoMajor(2) fAutoMinor(3)
//	                     fAutoCross(4) fLog(5) fReversed(6) fMaxCross(7)
type ValueRange struct {
	Base
	min, max, major, minor, cross float64
	grbit                         uint16
}

const (
	vrAutoMin = iota
	vrAutoMax
	vrAutoMajor
	vrAutoMinor
	vrAutoCross
	vrLog
	vrReversed
	vrMaxCross
)

// Init implements Record.
func (r *ValueRange) Init() error {
	if err := r.require(42); err != nil {
		return err
	}
	r.min = r.f64(0)
	r.max = r.f64(8)
	r.major = r.f64(16)
	r.minor = r.f64(24)
	r.cross = r.f64(32)
	r.grbit = r.u16(40)
	r.live = true
	return nil
}

func (r *ValueRange) encode() {
	r.putF64(0, r.min)
	r.putF64(8, r.max)
	r.putF64(16, r.major)
	r.putF64(24, r.minor)
	r.putF64(32, r.cross)
	r.putU16(40, r.grbit)
}

// Min returns the minimum and whether it is chosen automatically.
func (r *ValueRange) Min() (float64, bool) { return r.min, biff.FlagBit(r.grbit, vrAutoMin) }

// Max returns the maximum and whether it is chosen automatically.
func (r *ValueRange) Max() (float64, bool) { return r.max, biff.FlagBit(r.grbit, vrAutoMax) }

// MajorUnit returns the major unit and whether it is chosen automatically.
func (r *ValueRange) MajorUnit() (float64, bool) { return r.major, biff.FlagBit(r.grbit, vrAutoMajor) }

// MinorUnit returns the minor unit and whether it is chosen automatically.
func (r *ValueRange) MinorUnit() (float64, bool) { return r.minor, biff.FlagBit(r.grbit, vrAutoMinor) }

// CrossesAt returns where the other axis crosses and whether it is chosen
// automatically.
func (r *ValueRange) CrossesAt() (float64, bool) { return r.cross, biff.FlagBit(r.grbit, vrAutoCross) }

// SetMin sets a fixed minimum.
func (r *ValueRange) SetMin(v float64) {
	r.min = v
	r.grbit = biff.UpdateFlagBit(r.grbit, false, vrAutoMin)
	r.encode()
}

// SetMax sets a fixed maximum.
func (r *ValueRange) SetMax(v float64) {
	r.max = v
	r.grbit = biff.UpdateFlagBit(r.grbit, false, vrAutoMax)
	r.encode()
}

// SetMajorUnit sets a fixed major unit.
func (r *ValueRange) SetMajorUnit(v float64) {
	r.major = v
	r.grbit = biff.UpdateFlagBit(r.grbit, false, vrAutoMajor)
	r.encode()
}

// SetMinorUnit sets a fixed minor unit.
func (r *ValueRange) SetMinorUnit(v float64) {
	r.minor = v
	r.grbit = biff.UpdateFlagBit(r.grbit, false, vrAutoMinor)
	r.encode()
}

// SetCrossesAt sets a fixed crossing value.
func (r *ValueRange) SetCrossesAt(v float64) {
	r.cross = v
	r.grbit = biff.UpdateFlagBit(r.grbit, false, vrAutoCross)
	r.encode()
}

// IsLog reports whether the scale is logarithmic.
func (r *ValueRange) IsLog() bool { return biff.FlagBit(r.grbit, vrLog) }

// SetLog sets the logarithmic flag.
func (r *ValueRange) SetLog(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, vrLog)
	r.encode()
}

// IsReversed reports whether values run in reverse order.
func (r *ValueRange) IsReversed() bool { return biff.FlagBit(r.grbit, vrReversed) }

// SetReversed sets the reversed flag.
func (r *ValueRange) SetReversed(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, vrReversed)
	r.encode()
}

// CrossesAtMax reports whether the other axis crosses at the maximum.
func (r *ValueRange) CrossesAtMax() bool { return biff.FlagBit(r.grbit, vrMaxCross) }

// SetCrossesAtMax sets the maximum crossing flag.
func (r *ValueRange) SetCrossesAtMax(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, vrMaxCross)
	r.encode()
}

// SetOption implements Record.
func (r *ValueRange) SetOption(name, value string) bool {
	switch name {
	case "Min", "Max", "MajorUnit", "MinorUnit", "CrossesAt":
		v, ok := parseFloat(value)
		if !ok {
			return false
		}
		switch name {
		case "Min":
			r.SetMin(v)
		case "Max":
			r.SetMax(v)
		case "MajorUnit":
			r.SetMajorUnit(v)
		case "MinorUnit":
			r.SetMinorUnit(v)
		default:
			r.SetCrossesAt(v)
		}
		return true
	case "LogBase", "Reversed", "CrossesAtMax":
		v, ok := parseBool(value)
		if !ok {
			return false
		}
		switch name {
		case "LogBase":
			r.SetLog(v)
		case "Reversed":
			r.SetReversed(v)
		default:
			r.SetCrossesAtMax(v)
		}
		return true
	}
	return false
}

// Option implements Record.
func (r *ValueRange) Option(name string) (string, bool) {
	var v float64
	var auto bool
	switch name {
	case "Min":
		v, auto = r.Min()
	case "Max":
		v, auto = r.Max()
	case "MajorUnit":
		v, auto = r.MajorUnit()
	case "MinorUnit":
		v, auto = r.MinorUnit()
	case "CrossesAt":
		v, auto = r.CrossesAt()
	case "LogBase":
		return formatBool(r.IsLog()), true
	case "Reversed":
		return formatBool(r.IsReversed()), true
	case "CrossesAtMax":
		return formatBool(r.CrossesAtMax()), true
	default:
		return "", false
	}
	if auto {
		return "auto", true
	}
	return formatFloat(v), true
}

// CatSerRange (0x1020) specifies the scale of a category or series axis.
//
//	offset  size  field
//	0       2     catCross  category where the value axis crosses
//	2       2     catLabel  interval between labels
//	4       2     catMark   interval between tick marks
//	6       2     grbit     fBetween(0) fMaxCross(1) fReversed(2)
type CatSerRange struct {
	Base
	cross uint16
	label uint16
	mark  uint16
	grbit uint16
}

// Init implements Record.
func (r *CatSerRange) Init() error {
	if err := r.require(8); err != nil {
		return err
	}
	r.cross = r.u16(0)
	r.label = r.u16(2)
	r.mark = r.u16(4)
	r.grbit = r.u16(6)
	r.live = true
	return nil
}

func (r *CatSerRange) encode() {
	r.putU16(0, r.cross)
	r.putU16(2, r.label)
	r.putU16(4, r.mark)
	r.putU16(6, r.grbit)
}

// Crosses returns the category at which the value axis crosses.
func (r *CatSerRange) Crosses() int { return int(r.cross) }

// LabelInterval returns the number of categories between labels.
func (r *CatSerRange) LabelInterval() int { return int(r.label) }

// MarkInterval returns the number of categories between tick marks.
func (r *CatSerRange) MarkInterval() int { return int(r.mark) }

// SetIntervals sets the crossing category and the label and mark intervals.
func (r *CatSerRange) SetIntervals(cross, label, mark int) error {
	if err := biff.CheckRange("catCross", cross, 1, 31999); err != nil {
		return err
	}
	if err := biff.CheckRange("catLabel", label, 1, 31999); err != nil {
		return err
	}
	if err := biff.CheckRange("catMark", mark, 1, 31999); err != nil {
		return err
	}
	r.cross, r.label, r.mark = uint16(cross), uint16(label), uint16(mark)
	r.encode()
	return nil
}

// IsBetween reports whether the value axis crosses between categories.
func (r *CatSerRange) IsBetween() bool { return biff.FlagBit(r.grbit, 0) }

// SetBetween sets the between-categories flag.
func (r *CatSerRange) SetBetween(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, 0)
	r.encode()
}

// CrossesAtMax reports whether the value axis crosses at the last category.
func (r *CatSerRange) CrossesAtMax() bool { return biff.FlagBit(r.grbit, 1) }

// SetCrossesAtMax sets the maximum crossing flag.
func (r *CatSerRange) SetCrossesAtMax(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, 1)
	r.encode()
}

// IsReversed reports whether categories run in reverse order.
func (r *CatSerRange) IsReversed() bool { return biff.FlagBit(r.grbit, 2) }

// SetReversed sets the reversed flag.
func (r *CatSerRange) SetReversed(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, 2)
	r.encode()
}

// SetOption implements Record.
func (r *CatSerRange) SetOption(name, value string) bool {
	switch name {
	case "CrossBetween", "CrossesAtMax", "Reversed":
		v, ok := parseBool(value)
		if !ok {
			return false
		}
		switch name {
		case "CrossBetween":
			r.SetBetween(v)
		case "CrossesAtMax":
			r.SetCrossesAtMax(v)
		default:
			r.SetReversed(v)
		}
		return true
	case "TickLblSkip":
		v, ok := parseInt(value, 1, 31999)
		return ok && r.SetIntervals(r.Crosses(), v, r.MarkInterval()) == nil
	case "TickMarkSkip":
		v, ok := parseInt(value, 1, 31999)
		return ok && r.SetIntervals(r.Crosses(), r.LabelInterval(), v) == nil
	}
	return false
}

// Option implements Record.
func (r *CatSerRange) Option(name string) (string, bool) {
	switch name {
	case "CrossBetween":
		return formatBool(r.IsBetween()), true
	case "CrossesAtMax":
		return formatBool(r.CrossesAtMax()), true
	case "Reversed":
		return formatBool(r.IsReversed()), true
	case "TickLblSkip":
		return formatInt(r.LabelInterval()), true
	case "TickMarkSkip":
		return formatInt(r.MarkInterval()), true
	}
	return "", false
}

// DateUnit is the base unit of a date axis.
type DateUnit uint16

const (
	DateUnitDays   DateUnit = 0
	DateUnitMonths DateUnit = 1
	DateUnitYears  DateUnit = 2
)

// AxcExt (0x1062) specifies the extents of a date axis.
//
//	offset  size  field
//	0       2     catMin
//	2       2     catMax
//	4       2     catMajor
//	6       2     duMajor
//	8       2     catMinor
//	10      2     duMinor
//	12      2     duBase
//	14      2     catCrossDate
//	16      2     grbit  fAutoMin(0) fAutoMax(1) fAutoMajor(2) fAutoMinor(3)
//	                     fDateAxis(4) fAutoBase(5) fAutoCross(6) fAutoDate(7)
type AxcExt struct {
	Base
	grbit uint16
}

// Init implements Record.
func (r *AxcExt) Init() error {
	if err := r.require(18); err != nil {
		return err
	}
	r.grbit = r.u16(16)
	r.live = true
	return nil
}

// IsDateAxis reports whether the category axis is a date axis.
func (r *AxcExt) IsDateAxis() bool { return biff.FlagBit(r.grbit, 4) }

// SetDateAxis sets the date axis flag.
func (r *AxcExt) SetDateAxis(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, 4)
	r.putU16(16, r.grbit)
}

// BaseUnit returns the base unit and whether it is chosen automatically.
func (r *AxcExt) BaseUnit() (DateUnit, bool) {
	return DateUnit(r.u16(12)), biff.FlagBit(r.grbit, 5)
}

// SetBaseUnit sets a fixed base unit.
func (r *AxcExt) SetBaseUnit(u DateUnit) error {
	if err := biff.CheckRange("duBase", int(u), 0, 2); err != nil {
		return err
	}
	r.putU16(12, uint16(u))
	r.grbit = biff.UpdateFlagBit(r.grbit, false, 5)
	r.putU16(16, r.grbit)
	return nil
}

// AxisLineID identifies the part of an axis a following LineFormat styles.
type AxisLineID uint16

const (
	AxisLineAxis           AxisLineID = 0
	AxisLineMajorGridlines AxisLineID = 1
	AxisLineMinorGridlines AxisLineID = 2
	AxisLineWalls          AxisLineID = 3
)

// AxisLine (0x1021) names the axis part styled by the LineFormat that
// immediately follows it.
//
//	offset  size  field
//	0       2     id  0 axis, 1 major gridlines, 2 minor gridlines, 3 walls or floor
type AxisLine struct {
	Base
	id uint16
}

// Init implements Record.
func (r *AxisLine) Init() error {
	if err := r.require(2); err != nil {
		return err
	}
	r.id = r.u16(0)
	if r.id > 3 {
		return biff.NewDecodeError(r.opcode, len(r.data), "axis line id %d not defined", r.id)
	}
	r.live = true
	return nil
}

// ID returns the axis part.
func (r *AxisLine) ID() AxisLineID { return AxisLineID(r.id) }

// LineFormat returns the sibling LineFormat that styles this axis part, or
// nil.
func (r *AxisLine) LineFormat() *LineFormat {
	lf, _ := NextSibling(r).(*LineFormat)
	return lf
}

// AxisParent (0x1041) groups the axes, plot area and chart groups of the
// primary or the secondary axis group.
//
//	offset  size  field
//	0       2     iax  0 primary, 1 secondary
//	2       16    unused
type AxisParent struct {
	Base
	iax uint16
}

// Init implements Record.
func (r *AxisParent) Init() error {
	if err := r.require(18); err != nil {
		return err
	}
	r.iax = r.u16(0)
	r.live = true
	return nil
}

// Index returns 0 for the primary and 1 for the secondary axis group.
func (r *AxisParent) Index() int { return int(r.iax) }

// SetIndex sets the axis group index.
func (r *AxisParent) SetIndex(v int) error {
	if err := biff.CheckRange("iax", v, 0, 1); err != nil {
		return err
	}
	r.iax = uint16(v)
	r.putU16(0, r.iax)
	return nil
}

// Pos returns the plot area rectangle record of the axis group.
func (r *AxisParent) Pos() *Pos {
	p, _ := FindFirstChild(r, OpPos).(*Pos)
	return p
}

// Axes returns the axes of the group in order.
func (r *AxisParent) Axes() []*Axis {
	var out []*Axis
	for _, c := range r.children {
		if a, ok := c.(*Axis); ok {
			out = append(out, a)
		}
	}
	return out
}

// AxesUsed (0x1046) specifies the number of axis groups.
//
//	offset  size  field
//	0       2     cAxes  1 or 2
type AxesUsed struct {
	Base
	n uint16
}

// Init implements Record.
func (r *AxesUsed) Init() error {
	if err := r.require(2); err != nil {
		return err
	}
	r.n = r.u16(0)
	r.live = true
	return nil
}

// Count returns the number of axis groups.
func (r *AxesUsed) Count() int { return int(r.n) }

// SetCount sets the number of axis groups.
func (r *AxesUsed) SetCount(v int) error {
	if err := biff.CheckRange("cAxes", v, 1, 2); err != nil {
		return err
	}
	r.n = uint16(v)
	r.putU16(0, r.n)
	return nil
}

// CatLab (0x0856) specifies the label offset and alignment of a category
// axis.
//
//	offset  size  field
//	0       2     rt        0x0856
//	2       2     grbitFrt
//	4       2     wOffset   0..1000
//	6       2     at        1 left, 2 center, 3 right
//	8       2     grbit     fAutoCatLabelReal(0)
//	10      2     unused
type CatLab struct {
	Base
	offset uint16
	align  uint16
	grbit  uint16
}

// Init implements Record.
func (r *CatLab) Init() error {
	if err := r.require(12); err != nil {
		return err
	}
	r.offset = r.u16(4)
	r.align = r.u16(6)
	r.grbit = r.u16(8)
	r.live = true
	return nil
}

// Offset returns the label distance from the axis in percent.
func (r *CatLab) Offset() int { return int(r.offset) }

// SetOffset sets the label distance.
func (r *CatLab) SetOffset(v int) error {
	if err := biff.CheckRange("wOffset", v, 0, 1000); err != nil {
		return err
	}
	r.offset = uint16(v)
	r.putU16(4, r.offset)
	return nil
}

// Alignment returns the label alignment.
func (r *CatLab) Alignment() int { return int(r.align) }

// SetOption implements Record.
func (r *CatLab) SetOption(name, value string) bool {
	if name != "LblOffset" {
		return false
	}
	v, ok := parseInt(value, 0, 1000)
	return ok && r.SetOffset(v) == nil
}

// Option implements Record.
func (r *CatLab) Option(name string) (string, bool) {
	if name != "LblOffset" {
		return "", false
	}
	return formatInt(r.Offset()), true
}

// IFmtRecord (0x104E) specifies the number format of the parent element.
//
//	offset  size  field
//	0       2     ifmt
type IFmtRecord struct {
	Base
	ifmt uint16
}

// Init implements Record.
func (r *IFmtRecord) Init() error {
	if err := r.require(2); err != nil {
		return err
	}
	r.ifmt = r.u16(0)
	r.live = true
	return nil
}

// Format returns the number format index.
func (r *IFmtRecord) Format() int { return int(r.ifmt) }

// SetFormat sets the number format index.
func (r *IFmtRecord) SetFormat(v int) error {
	if err := biff.CheckRange("ifmt", v, 0, 0xFFFF); err != nil {
		return err
	}
	r.ifmt = uint16(v)
	r.putU16(0, r.ifmt)
	return nil
}

// PlotArea (0x1035) marks the start of the plot area definition. The Frame
// that follows it formats the plot area.
type PlotArea struct {
	Base
}

// Init implements Record.
func (r *PlotArea) Init() error {
	if err := r.require(0); err != nil {
		return err
	}
	r.live = true
	return nil
}

// Frame returns the frame of the plot area.
func (r *PlotArea) Frame() *Frame {
	f, _ := NextSibling(r).(*Frame)
	return f
}
