package chart

import (
	"github.com/yamitzky/xlchart-go/biff"
)

// DataType is the type of the values of a series.
type DataType uint16

const (
	DataDates      DataType = 0
	DataNumeric    DataType = 1
	DataSequential DataType = 2
	DataText       DataType = 3
)

// Series (0x1003) starts the definition of a series. Its block holds the
// BRAI links, SeriesText, DataFormat blocks and the SerToCrt record.
//
//	offset  size  field
//	0       2     sdtX       category data type
//	2       2     sdtY       value data type, always numeric
//	4       2     cValx      number of categories
//	6       2     cValy      number of values
//	8       2     sdtBSize   bubble size data type, always numeric
//	10      2     cValBSize  number of bubble sizes
type Series struct {
	Base
	catType  uint16
	valType  uint16
	nCat     uint16
	nVal     uint16
	bubType  uint16
	nBubbles uint16
}

// Init implements Record.
func (r *Series) Init() error {
	if err := r.require(12); err != nil {
		return err
	}
	r.catType = r.u16(0)
	r.valType = r.u16(2)
	r.nCat = r.u16(4)
	r.nVal = r.u16(6)
	r.bubType = r.u16(8)
	r.nBubbles = r.u16(10)
	r.live = true
	return nil
}

// CategoryType returns the category data type.
func (r *Series) CategoryType() DataType { return DataType(r.catType) }

// SetCategoryType sets the category data type.
func (r *Series) SetCategoryType(t DataType) error {
	if err := biff.CheckRange("sdtX", int(t), 0, 3); err != nil {
		return err
	}
	r.catType = uint16(t)
	r.putU16(0, r.catType)
	return nil
}

// Counts returns the number of categories, values and bubble sizes.
func (r *Series) Counts() (categories, values, bubbles int) {
	return int(r.nCat), int(r.nVal), int(r.nBubbles)
}

// SetCounts sets the number of categories, values and bubble sizes.
func (r *Series) SetCounts(categories, values, bubbles int) error {
	for _, c := range []struct {
		name string
		v    int
	}{{"cValx", categories}, {"cValy", values}, {"cValBSize", bubbles}} {
		if err := biff.CheckRange(c.name, c.v, 0, 0x0F9F); err != nil {
			return err
		}
	}
	r.nCat, r.nVal, r.nBubbles = uint16(categories), uint16(values), uint16(bubbles)
	r.putU16(4, r.nCat)
	r.putU16(6, r.nVal)
	r.putU16(10, r.nBubbles)
	return nil
}

// Name returns the literal series name, or "".
func (r *Series) Name() string {
	if st, ok := FindFirstChild(r, OpSeriesText).(*SeriesText); ok {
		return st.Text()
	}
	return ""
}

// Link returns the BRAI child with the given id, or nil.
func (r *Series) Link(id LinkID) *BRAI {
	for _, c := range r.children {
		if b, ok := c.(*BRAI); ok && b.ID() == id {
			return b
		}
	}
	return nil
}

// ChartGroup returns the index of the chart group the series is plotted
// in, or -1 when the series has no SerToCrt record.
func (r *Series) ChartGroup() int {
	if s, ok := FindFirstChild(r, OpSerToCrt).(*SerToCrt); ok {
		return s.ChartGroup()
	}
	return -1
}

// SetChartGroup moves the series to the chart group with the given index,
// adding a SerToCrt record if there is none.
func (r *Series) SetChartGroup(id int) error {
	s, ok := FindFirstChild(r, OpSerToCrt).(*SerToCrt)
	if !ok {
		rec, err := New(OpSerToCrt)
		if err != nil {
			return err
		}
		s = rec.(*SerToCrt)
		// SerToCrt follows the DataFormat blocks and precedes trendline and
		// error bar records.
		insertAfterLast(r, s, OpBRAI, OpSeriesText, OpDataFormat, OpSerParent, OpSerToCrt)
	}
	return s.SetChartGroup(id)
}

// SeriesList (0x1016) lists the series of a chart group by index.
//
//	offset  size  field
//	0       2     cser
//	2       2*n   rgiser
type SeriesList struct {
	Base
	series []int
}

// Init implements Record.
func (r *SeriesList) Init() error {
	if err := r.requireMin(2); err != nil {
		return err
	}
	n := int(r.u16(0))
	if len(r.data) != 2+2*n {
		return &biff.DecodeError{Opcode: r.opcode, Len: len(r.data), Want: 2 + 2*n}
	}
	r.series = make([]int, n)
	for i := range r.series {
		r.series[i] = int(r.u16(2 + 2*i))
	}
	r.live = true
	return nil
}

// Series returns the series indices.
func (r *SeriesList) Series() []int { return r.series }

// SetSeries replaces the series indices.
func (r *SeriesList) SetSeries(series []int) error {
	if err := biff.CheckRange("cser", len(series), 0, 0xFEEF); err != nil {
		return err
	}
	r.data = make([]byte, 2+2*len(series))
	r.putU16(0, uint16(len(series)))
	for i, s := range series {
		r.putU16(2+2*i, uint16(s))
	}
	r.series = append([]int(nil), series...)
	return nil
}

// u16Record is a record whose whole payload is one 16-bit value.
type u16Record struct {
	Base
	v uint16
}

func (r *u16Record) init() error {
	if err := r.require(2); err != nil {
		return err
	}
	r.v = r.u16(0)
	r.live = true
	return nil
}

func (r *u16Record) set(field string, v, min, max int) error {
	if err := biff.CheckRange(field, v, min, max); err != nil {
		return err
	}
	r.v = uint16(v)
	r.putU16(0, r.v)
	return nil
}

// SerToCrt (0x1045) assigns the parent series to a chart group.
//
//	offset  size  field
//	0       2     id  chart group index
type SerToCrt struct{ u16Record }

// Init implements Record.
func (r *SerToCrt) Init() error { return r.init() }

// ChartGroup returns the chart group index.
func (r *SerToCrt) ChartGroup() int { return int(r.v) }

// SetChartGroup sets the chart group index.
func (r *SerToCrt) SetChartGroup(id int) error { return r.set("id", id, 0, 8) }

// SerParent (0x104A) links a trendline or error bar series to the series it
// belongs to.
//
//	offset  size  field
//	0       2     series  1-based index
type SerParent struct{ u16Record }

// Init implements Record.
func (r *SerParent) Init() error { return r.init() }

// Series returns the 1-based index of the parent series.
func (r *SerParent) Series() int { return int(r.v) }

// SetSeries sets the parent series.
func (r *SerParent) SetSeries(v int) error { return r.set("series", v, 1, 0xFEF0) }

// SIIndex (0x1065) says which cached values the following records hold.
//
//	offset  size  field
//	0       2     numIndex  1 values, 2 categories, 3 bubble sizes
type SIIndex struct{ u16Record }

// Init implements Record.
func (r *SIIndex) Init() error { return r.init() }

// Kind returns the cached value kind.
func (r *SIIndex) Kind() int { return int(r.v) }

// DropBar (0x103D) specifies an up or down bar of a line chart group.
//
//	offset  size  field
//	0       2     pcGap  0..500
type DropBar struct{ u16Record }

// Init implements Record.
func (r *DropBar) Init() error { return r.init() }

// Gap returns the gap between bars in percent of the bar width.
func (r *DropBar) Gap() int { return int(r.v) }

// SetGap sets the gap between bars.
func (r *DropBar) SetGap(v int) error { return r.set("pcGap", v, 0, 500) }

// SetOption implements Record.
func (r *DropBar) SetOption(name, value string) bool {
	if name != "GapWidth" {
		return false
	}
	v, ok := parseInt(value, 0, 500)
	return ok && r.SetGap(v) == nil
}

// Option implements Record.
func (r *DropBar) Option(name string) (string, bool) {
	if name != "GapWidth" {
		return "", false
	}
	return formatInt(r.Gap()), true
}

// ChartLineType is the kind of line a ChartLine record adds to a chart group.
type ChartLineType uint16

const (
	DropLines   ChartLineType = 0
	HiLowLines  ChartLineType = 1
	SeriesLines ChartLineType = 2
	LeaderLines ChartLineType = 3
)

// ChartLine (0x101C) adds drop, high-low, series or leader lines to a chart
// group. The LineFormat that immediately follows it styles the lines.
//
//	offset  size  field
//	0       2     id
type ChartLine struct{ u16Record }

// Init implements Record.
func (r *ChartLine) Init() error {
	if err := r.init(); err != nil {
		return err
	}
	if r.v > 3 {
		r.live = false
		return biff.NewDecodeError(r.opcode, len(r.data), "chart line type %d not defined", r.v)
	}
	return nil
}

// Type returns the kind of line.
func (r *ChartLine) Type() ChartLineType { return ChartLineType(r.v) }

// LineFormat returns the sibling LineFormat that styles the lines, or nil.
func (r *ChartLine) LineFormat() *LineFormat {
	lf, _ := NextSibling(r).(*LineFormat)
	return lf
}

// Dat (0x1063) specifies the data table of the chart.
//
//	offset  size  field
//	0       2     grbit  fHasBordHorz(0) fHasBordVert(1) fHasBordOutline(2) fShowSeriesKey(3)
type Dat struct{ u16Record }

var datBits = map[string]uint{"ShowHorzBorder": 0, "ShowVertBorder": 1, "ShowOutline": 2, "ShowKeys": 3}

// Init implements Record.
func (r *Dat) Init() error { return r.init() }

// SetOption implements Record.
func (r *Dat) SetOption(name, value string) bool {
	bit, ok := datBits[name]
	if !ok {
		return false
	}
	v, ok := parseBool(value)
	if !ok {
		return false
	}
	r.v = biff.UpdateFlagBit(r.v, v, bit)
	r.putU16(0, r.v)
	return true
}

// Option implements Record.
func (r *Dat) Option(name string) (string, bool) {
	bit, ok := datBits[name]
	if !ok {
		return "", false
	}
	return formatBool(biff.FlagBit(r.v, bit)), true
}

// Units (0x1001) is reserved and always zero.
type Units struct{ u16Record }

// Init implements Record.
func (r *Units) Init() error { return r.init() }

// TrendType is the regression type of a trendline.
type TrendType uint8

const (
	TrendPolynomial    TrendType = 0
	TrendExponential   TrendType = 1
	TrendLogarithmic   TrendType = 2
	TrendPower         TrendType = 3
	TrendMovingAverage TrendType = 4
)

// SerAuxTrend (0x104B) specifies a trendline.
//
//	offset  size  field
//	0       1     regt          regression type
//	1       1     ordUser       polynomial order or moving average period
//	2       8     numIntercept  Xnum, NaN when not set
//	10      1     fEquation
//	11      1     fRSquared
//	12      8     numForecast
//	20      8     numBackcast
type SerAuxTrend struct {
	Base
	regt     uint8
	order    uint8
	equation bool
	rsquared bool
}

// Init implements Record.
func (r *SerAuxTrend) Init() error {
	if err := r.require(28); err != nil {
		return err
	}
	r.regt = r.u8(0)
	r.order = r.u8(1)
	r.equation = r.u8(10) != 0
	r.rsquared = r.u8(11) != 0
	r.live = true
	return nil
}

// Type returns the regression type.
func (r *SerAuxTrend) Type() TrendType { return TrendType(r.regt) }

// Order returns the polynomial order or moving average period.
func (r *SerAuxTrend) Order() int { return int(r.order) }

// SetType sets the regression type and its order.
func (r *SerAuxTrend) SetType(t TrendType, order int) error {
	if err := biff.CheckRange("regt", int(t), 0, 4); err != nil {
		return err
	}
	switch t {
	case TrendPolynomial:
		if err := biff.CheckRange("ordUser", order, 2, 6); err != nil {
			return err
		}
	case TrendMovingAverage:
		if err := biff.CheckRange("ordUser", order, 2, 255); err != nil {
			return err
		}
	default:
		order = 0
	}
	r.regt, r.order = uint8(t), uint8(order)
	r.putU8(0, r.regt)
	r.putU8(1, r.order)
	return nil
}

// Forecast returns the forward and backward forecast periods.
func (r *SerAuxTrend) Forecast() (forward, backward float64) { return r.f64(12), r.f64(20) }

// SetForecast sets the forecast periods.
func (r *SerAuxTrend) SetForecast(forward, backward float64) {
	r.putF64(12, forward)
	r.putF64(20, backward)
}

// ShowsEquation reports whether the equation is displayed.
func (r *SerAuxTrend) ShowsEquation() bool { return r.equation }

// ShowsRSquared reports whether the R-squared value is displayed.
func (r *SerAuxTrend) ShowsRSquared() bool { return r.rsquared }

// ErrorBarDirection is the direction of an error bar.
type ErrorBarDirection uint8

const (
	ErrorBarXPlus  ErrorBarDirection = 1
	ErrorBarXMinus ErrorBarDirection = 2
	ErrorBarYPlus  ErrorBarDirection = 3
	ErrorBarYMinus ErrorBarDirection = 4
)

// ErrorBarSource is how the error amount is computed.
type ErrorBarSource uint8

const (
	ErrorPercent  ErrorBarSource = 1
	ErrorFixed    ErrorBarSource = 2
	ErrorStdDev   ErrorBarSource = 3
	ErrorCustom   ErrorBarSource = 4
	ErrorStdError ErrorBarSource = 5
)

// SerAuxErrBar (0x105B) specifies an error bar.
//
//	offset  size  field
//	0       1     sertm     direction
//	1       1     ebsrc     source
//	2       1     fTeeTop   draw a T cap
//	3       1     reserved
//	4       8     numValue
//	12      2     cnum      number of custom values
type SerAuxErrBar struct {
	Base
	dir    uint8
	src    uint8
	cap    bool
	amount float64
}

// Init implements Record.
func (r *SerAuxErrBar) Init() error {
	if err := r.require(14); err != nil {
		return err
	}
	r.dir = r.u8(0)
	r.src = r.u8(1)
	r.cap = r.u8(2) != 0
	r.amount = r.f64(4)
	r.live = true
	return nil
}

// Direction returns the error bar direction.
func (r *SerAuxErrBar) Direction() ErrorBarDirection { return ErrorBarDirection(r.dir) }

// Source returns how the error amount is computed.
func (r *SerAuxErrBar) Source() ErrorBarSource { return ErrorBarSource(r.src) }

// Amount returns the error amount for the percent, fixed and standard
// deviation sources.
func (r *SerAuxErrBar) Amount() float64 { return r.amount }

// HasCap reports whether the bar ends with a T cap.
func (r *SerAuxErrBar) HasCap() bool { return r.cap }

// SetSource sets the source and amount.
func (r *SerAuxErrBar) SetSource(src ErrorBarSource, amount float64) error {
	if err := biff.CheckRange("ebsrc", int(src), 1, 5); err != nil {
		return err
	}
	r.src, r.amount = uint8(src), amount
	r.putU8(1, r.src)
	r.putF64(4, r.amount)
	return nil
}

// CrtLink (0x1022) is reserved and preserved verbatim.
type CrtLink struct{ Base }

// Init implements Record.
func (r *CrtLink) Init() error {
	if err := r.require(10); err != nil {
		return err
	}
	r.live = true
	return nil
}

// Chart3d (0x103A) specifies the 3-D view of a chart group.
//
//	offset  size  field
//	0       2     anRot     rotation 0..360
//	2       2     anElev    elevation -90..90
//	4       2     pcDist    perspective 0..100
//	6       2     pcHeight  height in percent of the width, 5..500
//	8       2     pcDepth   depth in percent of the width, 1..2000
//	10      2     pcGap     gap between series, 0..500
//	12      2     grbit     fPerspective(0) fCluster(1) f3DScaling(2)
//	                        fNotPieChart(4) fWalls2D(5)
type Chart3d struct {
	Base
	rot, dist, height, depth, gap uint16
	elev                          int16
	grbit                         uint16
}

// Init implements Record.
func (r *Chart3d) Init() error {
	if err := r.require(14); err != nil {
		return err
	}
	r.rot = r.u16(0)
	r.elev = r.i16(2)
	r.dist = r.u16(4)
	r.height = r.u16(6)
	r.depth = r.u16(8)
	r.gap = r.u16(10)
	r.grbit = r.u16(12)
	r.live = true
	return nil
}

func (r *Chart3d) encode() {
	r.putU16(0, r.rot)
	r.putI16(2, r.elev)
	r.putU16(4, r.dist)
	r.putU16(6, r.height)
	r.putU16(8, r.depth)
	r.putU16(10, r.gap)
	r.putU16(12, r.grbit)
}

func (r *Chart3d) setU16(field string, dst *uint16, v, min, max int) error {
	if err := biff.CheckRange(field, v, min, max); err != nil {
		return err
	}
	*dst = uint16(v)
	r.encode()
	return nil
}

// Rotation returns the rotation in degrees.
func (r *Chart3d) Rotation() int { return int(r.rot) }

// SetRotation sets the rotation.
func (r *Chart3d) SetRotation(v int) error { return r.setU16("anRot", &r.rot, v, 0, 360) }

// Elevation returns the elevation in degrees.
func (r *Chart3d) Elevation() int { return int(r.elev) }

// SetElevation sets the elevation.
func (r *Chart3d) SetElevation(v int) error {
	if err := biff.CheckRange("anElev", v, -90, 90); err != nil {
		return err
	}
	r.elev = int16(v)
	r.encode()
	return nil
}

// Perspective returns the perspective field of view in percent.
func (r *Chart3d) Perspective() int { return int(r.dist) }

// SetPerspective sets the perspective.
func (r *Chart3d) SetPerspective(v int) error { return r.setU16("pcDist", &r.dist, v, 0, 100) }

// HeightPercent returns the plot height in percent of its width.
func (r *Chart3d) HeightPercent() int { return int(r.height) }

// SetHeightPercent sets the plot height.
func (r *Chart3d) SetHeightPercent(v int) error { return r.setU16("pcHeight", &r.height, v, 5, 500) }

// DepthPercent returns the plot depth in percent of its width.
func (r *Chart3d) DepthPercent() int { return int(r.depth) }

// SetDepthPercent sets the plot depth.
func (r *Chart3d) SetDepthPercent(v int) error { return r.setU16("pcDepth", &r.depth, v, 1, 2000) }

// Gap returns the gap between series in percent.
func (r *Chart3d) Gap() int { return int(r.gap) }

// SetGap sets the gap between series.
func (r *Chart3d) SetGap(v int) error { return r.setU16("pcGap", &r.gap, v, 0, 500) }

func (r *Chart3d) flag(bit uint) bool { return biff.FlagBit(r.grbit, bit) }

func (r *Chart3d) setFlag(bit uint, v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, bit)
	r.encode()
}

// IsPerspective reports whether the view uses perspective.
func (r *Chart3d) IsPerspective() bool { return r.flag(0) }

// SetPerspectiveOn sets the perspective flag.
func (r *Chart3d) SetPerspectiveOn(v bool) { r.setFlag(0, v) }

// IsClustered reports whether the series of a 3-D bar chart are drawn side
// by side instead of one behind the other.
func (r *Chart3d) IsClustered() bool { return r.flag(1) }

// SetClustered sets the cluster flag.
func (r *Chart3d) SetClustered(v bool) { r.setFlag(1, v) }

// IsAutoScaled reports whether the height is scaled automatically.
func (r *Chart3d) IsAutoScaled() bool { return r.flag(2) }

// SetAutoScaled sets the automatic scaling flag.
func (r *Chart3d) SetAutoScaled(v bool) { r.setFlag(2, v) }

// HasRightAngleAxes reports whether the axes are drawn at right angles,
// which is the case whenever perspective is off.
func (r *Chart3d) HasRightAngleAxes() bool { return !r.flag(0) }

var chart3dInts = map[string]func(*Chart3d, int) error{
	"RotX":         (*Chart3d).SetElevation,
	"RotY":         (*Chart3d).SetRotation,
	"Perspective":  (*Chart3d).SetPerspective,
	"HPercent":     (*Chart3d).SetHeightPercent,
	"DepthPercent": (*Chart3d).SetDepthPercent,
	"GapDepth":     (*Chart3d).SetGap,
}

// SetOption implements Record.
func (r *Chart3d) SetOption(name, value string) bool {
	if set, ok := chart3dInts[name]; ok {
		v, ok := parseInt(value, -90, 2000)
		return ok && set(r, v) == nil
	}
	v, ok := parseBool(value)
	if !ok {
		return false
	}
	switch name {
	case "Perspective3D":
		r.SetPerspectiveOn(v)
	case "Cluster":
		r.SetClustered(v)
	case "AutoScaling":
		r.SetAutoScaled(v)
	default:
		return false
	}
	return true
}

// Option implements Record.
func (r *Chart3d) Option(name string) (string, bool) {
	switch name {
	case "RotX":
		return formatInt(r.Elevation()), true
	case "RotY":
		return formatInt(r.Rotation()), true
	case "Perspective":
		return formatInt(r.Perspective()), true
	case "HPercent":
		return formatInt(r.HeightPercent()), true
	case "DepthPercent":
		return formatInt(r.DepthPercent()), true
	case "GapDepth":
		return formatInt(r.Gap()), true
	case "Perspective3D":
		return formatBool(r.IsPerspective()), true
	case "Cluster":
		return formatBool(r.IsClustered()), true
	case "AutoScaling":
		return formatBool(r.IsAutoScaled()), true
	}
	return "", false
}

// ChartFormat (0x1014) starts a chart group. Its block holds the chart type
// record, CrtLink, SeriesList, Chart3d, Legend, DropBar and ChartLine
// records. Overlay chart groups on the same axis group are told apart by
// their drawing order.
//
//	offset  size  field
//	0       16    reserved
//	16      2     grbit  fVaried(0)
//	18      2     icrt   drawing order, 0 is drawn first
type ChartFormat struct {
	Base
	grbit uint16
	icrt  uint16
}

// Init implements Record.
func (r *ChartFormat) Init() error {
	if err := r.require(20); err != nil {
		return err
	}
	r.grbit = r.u16(16)
	r.icrt = r.u16(18)
	r.live = true
	return nil
}

// DrawingOrder returns the drawing order of the chart group.
func (r *ChartFormat) DrawingOrder() int { return int(r.icrt) }

// SetDrawingOrder sets the drawing order.
func (r *ChartFormat) SetDrawingOrder(v int) error {
	if err := biff.CheckRange("icrt", v, 0, 8); err != nil {
		return err
	}
	r.icrt = uint16(v)
	r.putU16(18, r.icrt)
	return nil
}

// IsVaried reports whether each data point gets its own color.
func (r *ChartFormat) IsVaried() bool { return biff.FlagBit(r.grbit, 0) }

// SetVaried sets the varied colors flag.
func (r *ChartFormat) SetVaried(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, 0)
	r.putU16(16, r.grbit)
}

// TypeRecord returns the chart type record of the group, or nil.
func (r *ChartFormat) TypeRecord() TypeRecord {
	for _, c := range r.children {
		if t, ok := c.(TypeRecord); ok {
			return t
		}
	}
	return nil
}

// SetTypeRecord replaces the chart type record, keeping its place in the
// block. The records that only apply to the old type stay in place.
func (r *ChartFormat) SetTypeRecord(t TypeRecord) error {
	if t.node().parent != nil {
		return ErrAttached
	}
	for i, c := range r.children {
		if _, ok := c.(TypeRecord); ok {
			detach(c)
			r.children[i] = t
			attach(t, r, r.chart)
			return nil
		}
	}
	insertChild(r, 0, t)
	return nil
}

// Chart3d returns the 3-D view of the group, or nil for a 2-D group.
func (r *ChartFormat) Chart3d() *Chart3d {
	c, _ := FindFirstChild(r, OpChart3d).(*Chart3d)
	return c
}

// Legend returns the legend of the group, or nil.
func (r *ChartFormat) Legend() *Legend {
	l, _ := FindFirstChild(r, OpLegend).(*Legend)
	return l
}

// SeriesList returns the series list of the group, or nil.
func (r *ChartFormat) SeriesList() *SeriesList {
	s, _ := FindFirstChild(r, OpSeriesList).(*SeriesList)
	return s
}

// ChartLines returns the ChartLine records of the group.
func (r *ChartFormat) ChartLines() []*ChartLine {
	var out []*ChartLine
	for _, c := range r.children {
		if cl, ok := c.(*ChartLine); ok {
			out = append(out, cl)
		}
	}
	return out
}

// SetOption implements Record.
func (r *ChartFormat) SetOption(name, value string) bool {
	if name != "VaryColors" {
		return false
	}
	v, ok := parseBool(value)
	if !ok {
		return false
	}
	r.SetVaried(v)
	return true
}

// Option implements Record.
func (r *ChartFormat) Option(name string) (string, bool) {
	if name != "VaryColors" {
		return "", false
	}
	return formatBool(r.IsVaried()), true
}

// StartBlock (0x0852) opens a future-record block.
//
//	offset  size  field
//	0       2     rt
//	2       2     grbitFrt
//	4       2     iObjectKind
//	6       2     iObjectContext
//	8       2     iObjectInstance1
//	10      2     iObjectInstance2
type StartBlock struct {
	Base
	kind uint16
}

// Init implements Record.
func (r *StartBlock) Init() error {
	if err := r.require(12); err != nil {
		return err
	}
	r.kind = r.u16(4)
	r.live = true
	return nil
}

// Kind returns the kind of object the block describes.
func (r *StartBlock) Kind() int { return int(r.kind) }

// EndBlock (0x0853) closes the future-record block of the same kind.
//
//	offset  size  field
//	0       2     rt
//	2       2     grbitFrt
//	4       2     iObjectKind
//	6       6     unused
type EndBlock struct {
	Base
	kind uint16
}

// Init implements Record.
func (r *EndBlock) Init() error {
	if err := r.require(12); err != nil {
		return err
	}
	r.kind = r.u16(4)
	r.live = true
	return nil
}

// Kind returns the kind of object the block describes.
func (r *EndBlock) Kind() int { return int(r.kind) }
