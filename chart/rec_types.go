package chart

import (
	"github.com/yamitzky/xlchart-go/biff"
)

// TypeRecord is implemented by the records that select the chart group
// type of a ChartFormat: Bar, Line, Pie, Area, Scatter, Radar, RadarArea,
// Surf and BopPop.
type TypeRecord interface {
	Record
	isTypeRecord()
}

// Stacker is implemented by the chart group types that support stacking.
type Stacker interface {
	TypeRecord
	IsStacked() bool
	Is100Percent() bool
	SetStacked(bool)
	Set100Percent(bool)
}

// Shadower is implemented by the chart group types with a shadow flag.
type Shadower interface {
	HasShadow() bool
	SetShadow(bool)
}

// grbit bit positions shared by Line and Area.
const (
	stackStacked = 0
	stack100     = 1
	stackShadow  = 2
)

// Bar (0x1017) defines a bar or column chart group.
//
//	offset  size  field
//	0       2     pcOverlap  signed, -100..100
//	2       2     pcGap      0..500
//	4       2     grbit      fTranspose(0) fStacked(1) f100(2) fHasShadow(3)
type Bar struct {
	Base
	pcOverlap int16
	pcGap     uint16
	grbit     uint16
}

const (
	barTranspose = 0
	barStacked   = 1
	bar100       = 2
	barShadow    = 3
)

func (r *Bar) isTypeRecord() {}

// Init implements Record.
func (r *Bar) Init() error {
	if err := r.require(6); err != nil {
		return err
	}
	r.pcOverlap = r.i16(0)
	r.pcGap = r.u16(2)
	r.grbit = r.u16(4)
	r.live = true
	return nil
}

func (r *Bar) encode() {
	r.putI16(0, r.pcOverlap)
	r.putU16(2, r.pcGap)
	r.putU16(4, r.grbit)
}

// Overlap returns the overlap of bars within a category, in percent of the
// bar width. Negative values are gaps between the bars.
func (r *Bar) Overlap() int { return int(r.pcOverlap) }

// SetOverlap sets the bar overlap.
func (r *Bar) SetOverlap(v int) error {
	if err := biff.CheckRange("pcOverlap", v, -100, 100); err != nil {
		return err
	}
	r.pcOverlap = int16(v)
	r.encode()
	return nil
}

// Gap returns the width of the gap between categories, in percent of the
// bar width.
func (r *Bar) Gap() int { return int(r.pcGap) }

// SetGap sets the category gap.
func (r *Bar) SetGap(v int) error {
	if err := biff.CheckRange("pcGap", v, 0, 500); err != nil {
		return err
	}
	r.pcGap = uint16(v)
	r.encode()
	return nil
}

// IsHorizontal reports whether the bars are horizontal (a bar chart) rather
// than vertical (a column chart).
func (r *Bar) IsHorizontal() bool { return biff.FlagBit(r.grbit, barTranspose) }

// SetHorizontal sets the bar direction.
func (r *Bar) SetHorizontal(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, barTranspose)
	r.encode()
}

// IsStacked reports whether the series are stacked.
func (r *Bar) IsStacked() bool { return biff.FlagBit(r.grbit, barStacked) }

// SetStacked sets the stacked flag. Stacked bars fully overlap, so
// enabling it also sets the overlap to -100 and the gap to 150. Disabling
// it clears the 100% flag as well and restores a zero overlap.
func (r *Bar) SetStacked(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, barStacked)
	if v {
		r.pcOverlap = -100
		r.pcGap = 150
	} else {
		r.grbit = biff.UpdateFlagBit(r.grbit, false, bar100)
		r.pcOverlap = 0
	}
	r.encode()
}

// Is100Percent reports whether each category is scaled to 100%.
func (r *Bar) Is100Percent() bool { return biff.FlagBit(r.grbit, bar100) }

// Set100Percent sets the 100% flag. A 100% chart is always stacked, so
// enabling it sets the stacked flag with the same overlap and gap.
func (r *Bar) Set100Percent(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, bar100)
	if v {
		r.grbit = biff.UpdateFlagBit(r.grbit, true, barStacked)
		r.pcOverlap = -100
		r.pcGap = 150
	}
	r.encode()
}

// HasShadow implements Shadower.
func (r *Bar) HasShadow() bool { return biff.FlagBit(r.grbit, barShadow) }

// SetShadow implements Shadower.
func (r *Bar) SetShadow(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, barShadow)
	r.encode()
}

// SetOption implements Record.
func (r *Bar) SetOption(name, value string) bool {
	switch name {
	case "Stacked", "PercentStacked", "Shadow", "Horizontal":
		v, ok := parseBool(value)
		if !ok {
			return false
		}
		switch name {
		case "Stacked":
			r.SetStacked(v)
		case "PercentStacked":
			r.Set100Percent(v)
		case "Shadow":
			r.SetShadow(v)
		case "Horizontal":
			r.SetHorizontal(v)
		}
		return true
	case "Gap":
		v, ok := parseInt(value, 0, 500)
		return ok && r.SetGap(v) == nil
	case "Overlap":
		v, ok := parseInt(value, -100, 100)
		return ok && r.SetOverlap(v) == nil
	}
	return false
}

// Option implements Record.
func (r *Bar) Option(name string) (string, bool) {
	switch name {
	case "Stacked":
		return formatBool(r.IsStacked()), true
	case "PercentStacked":
		return formatBool(r.Is100Percent()), true
	case "Shadow":
		return formatBool(r.HasShadow()), true
	case "Horizontal":
		return formatBool(r.IsHorizontal()), true
	case "Gap":
		return formatInt(r.Gap()), true
	case "Overlap":
		return formatInt(r.Overlap()), true
	}
	return "", false
}

// stackFlags implements the grbit shared by Line and Area.
type stackFlags struct {
	Base
	grbit uint16
}

func (r *stackFlags) init() error {
	if err := r.require(2); err != nil {
		return err
	}
	r.grbit = r.u16(0)
	r.live = true
	return nil
}

func (r *stackFlags) set(bit uint, v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, bit)
	r.putU16(0, r.grbit)
}

// IsStacked reports whether the series are stacked.
func (r *stackFlags) IsStacked() bool { return biff.FlagBit(r.grbit, stackStacked) }

// SetStacked sets the stacked flag; disabling it also clears the 100% flag.
func (r *stackFlags) SetStacked(v bool) {
	if !v {
		r.set(stack100, false)
	}
	r.set(stackStacked, v)
}

// Is100Percent reports whether each category is scaled to 100%.
func (r *stackFlags) Is100Percent() bool { return biff.FlagBit(r.grbit, stack100) }

// Set100Percent sets the 100% flag; enabling it also sets the stacked flag.
func (r *stackFlags) Set100Percent(v bool) {
	if v {
		r.set(stackStacked, true)
	}
	r.set(stack100, v)
}

// HasShadow implements Shadower.
func (r *stackFlags) HasShadow() bool { return biff.FlagBit(r.grbit, stackShadow) }

// SetShadow implements Shadower.
func (r *stackFlags) SetShadow(v bool) { r.set(stackShadow, v) }

func (r *stackFlags) setOption(name, value string) bool {
	v, ok := parseBool(value)
	if !ok {
		return false
	}
	switch name {
	case "Stacked":
		r.SetStacked(v)
	case "PercentStacked":
		r.Set100Percent(v)
	case "Shadow":
		r.SetShadow(v)
	default:
		return false
	}
	return true
}

func (r *stackFlags) option(name string) (string, bool) {
	switch name {
	case "Stacked":
		return formatBool(r.IsStacked()), true
	case "PercentStacked":
		return formatBool(r.Is100Percent()), true
	case "Shadow":
		return formatBool(r.HasShadow()), true
	}
	return "", false
}

// Line (0x1018) defines a line chart group.
//
//	offset  size  field
//	0       2     grbit  fStacked(0) f100(1) fHasShadow(2)
type Line struct {
	stackFlags
}

func (r *Line) isTypeRecord() {}

// Init implements Record.
func (r *Line) Init() error { return r.init() }

// SetOption implements Record.
func (r *Line) SetOption(name, value string) bool { return r.setOption(name, value) }

// Option implements Record.
func (r *Line) Option(name string) (string, bool) { return r.option(name) }

// Area (0x101A) defines an area chart group. Its layout is the same as Line.
type Area struct {
	stackFlags
}

func (r *Area) isTypeRecord() {}

// Init implements Record.
func (r *Area) Init() error { return r.init() }

// SetOption implements Record.
func (r *Area) SetOption(name, value string) bool { return r.setOption(name, value) }

// Option implements Record.
func (r *Area) Option(name string) (string, bool) { return r.option(name) }

// Pie (0x1019) defines a pie or doughnut chart group.
//
//	offset  size  field
//	0       2     anStart  angle of the first slice, 0..359
//	2       2     pcDonut  hole size, 0 or 10..90
//	4       2     grbit    fHasShadow(0) fShowLdrLines(1)
type Pie struct {
	Base
	anStart uint16
	pcDonut uint16
	grbit   uint16
}

const (
	pieShadow   = 0
	pieLdrLines = 1
)

func (r *Pie) isTypeRecord() {}

// Init implements Record.
func (r *Pie) Init() error {
	if err := r.require(6); err != nil {
		return err
	}
	r.anStart = r.u16(0)
	r.pcDonut = r.u16(2)
	r.grbit = r.u16(4)
	r.live = true
	return nil
}

func (r *Pie) encode() {
	r.putU16(0, r.anStart)
	r.putU16(2, r.pcDonut)
	r.putU16(4, r.grbit)
}

// StartAngle returns the angle of the first slice in degrees.
func (r *Pie) StartAngle() int { return int(r.anStart) }

// SetStartAngle sets the angle of the first slice.
func (r *Pie) SetStartAngle(v int) error {
	if err := biff.CheckRange("anStart", v, 0, 359); err != nil {
		return err
	}
	r.anStart = uint16(v)
	r.encode()
	return nil
}

// DonutSize returns the size of the hole in percent; zero for a pie.
func (r *Pie) DonutSize() int { return int(r.pcDonut) }

// SetDonutSize sets the hole size. Zero turns the group into a pie.
func (r *Pie) SetDonutSize(v int) error {
	if v != 0 {
		if err := biff.CheckRange("pcDonut", v, 10, 90); err != nil {
			return err
		}
	}
	r.pcDonut = uint16(v)
	r.encode()
	return nil
}

// IsDoughnut reports whether the group has a hole.
func (r *Pie) IsDoughnut() bool { return r.pcDonut > 0 }

// HasShadow implements Shadower.
func (r *Pie) HasShadow() bool { return biff.FlagBit(r.grbit, pieShadow) }

// SetShadow implements Shadower.
func (r *Pie) SetShadow(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, pieShadow)
	r.encode()
}

// ShowLeaderLines reports whether leader lines are drawn to data labels.
func (r *Pie) ShowLeaderLines() bool { return biff.FlagBit(r.grbit, pieLdrLines) }

// SetShowLeaderLines sets the leader line flag.
func (r *Pie) SetShowLeaderLines(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, pieLdrLines)
	r.encode()
}

// SetOption implements Record.
func (r *Pie) SetOption(name, value string) bool {
	switch name {
	case "AnStart":
		v, ok := parseInt(value, 0, 359)
		return ok && r.SetStartAngle(v) == nil
	case "Donut":
		v, ok := parseInt(value, 0, 90)
		return ok && r.SetDonutSize(v) == nil
	case "Shadow", "ShowLdrLines":
		v, ok := parseBool(value)
		if !ok {
			return false
		}
		if name == "Shadow" {
			r.SetShadow(v)
		} else {
			r.SetShowLeaderLines(v)
		}
		return true
	}
	return false
}

// Option implements Record.
func (r *Pie) Option(name string) (string, bool) {
	switch name {
	case "AnStart":
		return formatInt(r.StartAngle()), true
	case "Donut":
		return formatInt(r.DonutSize()), true
	case "Shadow":
		return formatBool(r.HasShadow()), true
	case "ShowLdrLines":
		return formatBool(r.ShowLeaderLines()), true
	}
	return "", false
}

// BubbleSizeMode says what the bubble size of a bubble chart represents.
type BubbleSizeMode uint16

const (
	BubbleSizeArea  BubbleSizeMode = 1
	BubbleSizeWidth BubbleSizeMode = 2
)

// Scatter (0x101B) defines a scatter or bubble chart group.
//
//	offset  size  field
//	0       2     pcBubbleSizeRatio  0..300
//	2       2     wBubbleSize        1 area, 2 width
//	4       2     grbit              fBubbles(0) fShowNegBubbles(1) fHasShadow(2)
type Scatter struct {
	Base
	pcBubbleSizeRatio uint16
	wBubbleSize       uint16
	grbit             uint16
}

const (
	scatterBubbles  = 0
	scatterNegative = 1
	scatterShadow   = 2
)

func (r *Scatter) isTypeRecord() {}

// Init implements Record.
func (r *Scatter) Init() error {
	if err := r.require(6); err != nil {
		return err
	}
	r.pcBubbleSizeRatio = r.u16(0)
	r.wBubbleSize = r.u16(2)
	r.grbit = r.u16(4)
	r.live = true
	return nil
}

func (r *Scatter) encode() {
	r.putU16(0, r.pcBubbleSizeRatio)
	r.putU16(2, r.wBubbleSize)
	r.putU16(4, r.grbit)
}

// BubbleSizeRatio returns the bubble scale in percent of the default size.
func (r *Scatter) BubbleSizeRatio() int { return int(r.pcBubbleSizeRatio) }

// SetBubbleSizeRatio sets the bubble scale.
func (r *Scatter) SetBubbleSizeRatio(v int) error {
	if err := biff.CheckRange("pcBubbleSizeRatio", v, 0, 300); err != nil {
		return err
	}
	r.pcBubbleSizeRatio = uint16(v)
	r.encode()
	return nil
}

// BubbleSize returns what the bubble sizes represent.
func (r *Scatter) BubbleSize() BubbleSizeMode { return BubbleSizeMode(r.wBubbleSize) }

// SetBubbleSize sets what the bubble sizes represent.
func (r *Scatter) SetBubbleSize(m BubbleSizeMode) {
	r.wBubbleSize = uint16(m)
	r.encode()
}

// IsBubble reports whether the group is a bubble chart.
func (r *Scatter) IsBubble() bool { return biff.FlagBit(r.grbit, scatterBubbles) }

// SetBubble sets the bubble chart flag.
func (r *Scatter) SetBubble(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, scatterBubbles)
	r.encode()
}

// ShowNegativeBubbles reports whether bubbles with negative size are shown.
func (r *Scatter) ShowNegativeBubbles() bool { return biff.FlagBit(r.grbit, scatterNegative) }

// SetShowNegativeBubbles sets the negative bubble flag.
func (r *Scatter) SetShowNegativeBubbles(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, scatterNegative)
	r.encode()
}

// HasShadow implements Shadower.
func (r *Scatter) HasShadow() bool { return biff.FlagBit(r.grbit, scatterShadow) }

// SetShadow implements Shadower.
func (r *Scatter) SetShadow(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, scatterShadow)
	r.encode()
}

// SetOption implements Record.
func (r *Scatter) SetOption(name, value string) bool {
	switch name {
	case "BubbleSizeRatio":
		v, ok := parseInt(value, 0, 300)
		return ok && r.SetBubbleSizeRatio(v) == nil
	case "BubbleSizeRepresents":
		switch value {
		case "area":
			r.SetBubbleSize(BubbleSizeArea)
		case "w", "width":
			r.SetBubbleSize(BubbleSizeWidth)
		default:
			return false
		}
		return true
	case "Bubbles", "ShowNegBubbles", "Shadow":
		v, ok := parseBool(value)
		if !ok {
			return false
		}
		switch name {
		case "Bubbles":
			r.SetBubble(v)
		case "ShowNegBubbles":
			r.SetShowNegativeBubbles(v)
		default:
			r.SetShadow(v)
		}
		return true
	}
	return false
}

// Option implements Record.
func (r *Scatter) Option(name string) (string, bool) {
	switch name {
	case "BubbleSizeRatio":
		return formatInt(r.BubbleSizeRatio()), true
	case "BubbleSizeRepresents":
		if r.BubbleSize() == BubbleSizeWidth {
			return "w", true
		}
		return "area", true
	case "Bubbles":
		return formatBool(r.IsBubble()), true
	case "ShowNegBubbles":
		return formatBool(r.ShowNegativeBubbles()), true
	case "Shadow":
		return formatBool(r.HasShadow()), true
	}
	return "", false
}

// radarFlags is the layout shared by Radar and RadarArea.
//
//	offset  size  field
//	0       2     grbit   fRdrAxLab(0) fHasShadow(1)
//	2       2     unused
type radarFlags struct {
	Base
	grbit uint16
}

const (
	radarAxisLabels = 0
	radarShadow     = 1
)

func (r *radarFlags) init() error {
	if err := r.require(4); err != nil {
		return err
	}
	r.grbit = r.u16(0)
	r.live = true
	return nil
}

func (r *radarFlags) set(bit uint, v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, bit)
	r.putU16(0, r.grbit)
}

// ShowAxisLabels reports whether category labels are shown.
func (r *radarFlags) ShowAxisLabels() bool { return biff.FlagBit(r.grbit, radarAxisLabels) }

// SetShowAxisLabels sets the category label flag.
func (r *radarFlags) SetShowAxisLabels(v bool) { r.set(radarAxisLabels, v) }

// HasShadow implements Shadower.
func (r *radarFlags) HasShadow() bool { return biff.FlagBit(r.grbit, radarShadow) }

// SetShadow implements Shadower.
func (r *radarFlags) SetShadow(v bool) { r.set(radarShadow, v) }

func (r *radarFlags) setOption(name, value string) bool {
	if name != "RadarAxisLabels" && name != "Shadow" {
		return false
	}
	v, ok := parseBool(value)
	if !ok {
		return false
	}
	if name == "Shadow" {
		r.SetShadow(v)
	} else {
		r.SetShowAxisLabels(v)
	}
	return true
}

func (r *radarFlags) option(name string) (string, bool) {
	switch name {
	case "RadarAxisLabels":
		return formatBool(r.ShowAxisLabels()), true
	case "Shadow":
		return formatBool(r.HasShadow()), true
	}
	return "", false
}

// Radar (0x103E) defines a radar chart group.
type Radar struct {
	radarFlags
}

func (r *Radar) isTypeRecord() {}

// Init implements Record.
func (r *Radar) Init() error { return r.init() }

// SetOption implements Record.
func (r *Radar) SetOption(name, value string) bool { return r.setOption(name, value) }

// Option implements Record.
func (r *Radar) Option(name string) (string, bool) { return r.option(name) }

// RadarArea (0x1040) defines a filled radar chart group.
type RadarArea struct {
	radarFlags
}

func (r *RadarArea) isTypeRecord() {}

// Init implements Record.
func (r *RadarArea) Init() error { return r.init() }

// SetOption implements Record.
func (r *RadarArea) SetOption(name, value string) bool { return r.setOption(name, value) }

// Option implements Record.
func (r *RadarArea) Option(name string) (string, bool) { return r.option(name) }

// Surf (0x103F) defines a surface chart group.
//
//	offset  size  field
//	0       2     grbit  fFillSurface(0) f3DPhongShade(1)
type Surf struct {
	Base
	grbit uint16
}

func (r *Surf) isTypeRecord() {}

// Init implements Record.
func (r *Surf) Init() error {
	if err := r.require(2); err != nil {
		return err
	}
	r.grbit = r.u16(0)
	r.live = true
	return nil
}

// IsFilled reports whether the surface is filled; otherwise it is drawn as
// a wireframe.
func (r *Surf) IsFilled() bool { return biff.FlagBit(r.grbit, 0) }

// SetFilled sets the fill flag.
func (r *Surf) SetFilled(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, 0)
	r.putU16(0, r.grbit)
}

// IsPhongShaded reports whether Phong shading is used.
func (r *Surf) IsPhongShaded() bool { return biff.FlagBit(r.grbit, 1) }

// SetPhongShaded sets the shading flag.
func (r *Surf) SetPhongShaded(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, 1)
	r.putU16(0, r.grbit)
}

// SetOption implements Record.
func (r *Surf) SetOption(name, value string) bool {
	if name != "FillSurface" && name != "PhongShade" {
		return false
	}
	v, ok := parseBool(value)
	if !ok {
		return false
	}
	if name == "FillSurface" {
		r.SetFilled(v)
	} else {
		r.SetPhongShaded(v)
	}
	return true
}

// Option implements Record.
func (r *Surf) Option(name string) (string, bool) {
	switch name {
	case "FillSurface":
		return formatBool(r.IsFilled()), true
	case "PhongShade":
		return formatBool(r.IsPhongShaded()), true
	}
	return "", false
}
