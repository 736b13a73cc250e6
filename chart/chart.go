package chart

import (
	"image/color"
	"sort"

	"github.com/pkg/errors"
	"github.com/yamitzky/xlchart-go/biff"
)

// ColorTable is the color collaborator: it returns the workbook palette.
type ColorTable interface {
	ColorTable() []color.RGBA
}

// Chart owns the record tree of one chart substream.
type Chart struct {
	records []Record
	opts    Options
}

// Records returns the top-level records.
func (c *Chart) Records() []Record { return c.records }

// RecordArray returns the flat record stream, with Begin and End records
// around every block.
func (c *Chart) RecordArray() []Record { return Flatten(c.records) }

// Bytes serializes the chart back to a BIFF record stream.
func (c *Chart) Bytes() ([]byte, error) { return Marshal(c.RecordArray()) }

// Options returns the options the chart was created with.
func (c *Chart) Options() Options { return c.opts }

// SetCollaborators replaces the font and color tables.
func (c *Chart) SetCollaborators(fonts FontTable, colors ColorTable) {
	c.opts.Fonts = fonts
	c.opts.Colors = colors
}

func (c *Chart) colorTable() []color.RGBA {
	if c.opts.Colors != nil {
		if t := c.opts.Colors.ColorTable(); len(t) > 0 {
			return t
		}
	}
	return biff.DefaultPalette
}

// Close detaches every record from the chart and from its parent. The
// chart is empty afterwards.
func (c *Chart) Close() {
	var release func(rs []Record)
	release = func(rs []Record) {
		for _, r := range rs {
			b := r.node()
			release(b.children)
			b.children = nil
			b.parent = nil
			b.chart = nil
		}
	}
	release(c.records)
	c.records = nil
	c.opts.Fonts = nil
	c.opts.Colors = nil
}

// Root returns the Chart record that owns the chart block, or nil.
func (c *Chart) Root() *ChartRect {
	for _, r := range c.records {
		if cr, ok := r.(*ChartRect); ok {
			return cr
		}
	}
	return nil
}

func (c *Chart) rootChildren() []Record {
	if root := c.Root(); root != nil {
		return root.children
	}
	return nil
}

// AxisParents returns the axis groups.
func (c *Chart) AxisParents() []*AxisParent {
	var out []*AxisParent
	for _, r := range c.rootChildren() {
		if ap, ok := r.(*AxisParent); ok {
			out = append(out, ap)
		}
	}
	return out
}

// AxisParent returns the axis group with the given index, or nil.
func (c *Chart) AxisParent(iax int) *AxisParent {
	for _, ap := range c.AxisParents() {
		if ap.Index() == iax {
			return ap
		}
	}
	return nil
}

// ChartFormats returns the chart groups of all axis groups ordered by
// drawing order.
func (c *Chart) ChartFormats() []*ChartFormat {
	var out []*ChartFormat
	for _, ap := range c.AxisParents() {
		for _, r := range ap.children {
			if cf, ok := r.(*ChartFormat); ok {
				out = append(out, cf)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DrawingOrder() < out[j].DrawingOrder() })
	return out
}

// ChartFormat returns the chart group with the given drawing order, or nil.
func (c *Chart) ChartFormat(icrt int) *ChartFormat {
	for _, cf := range c.ChartFormats() {
		if cf.DrawingOrder() == icrt {
			return cf
		}
	}
	return nil
}

// Primary returns the chart group drawn first, or nil.
func (c *Chart) Primary() *ChartFormat {
	if cfs := c.ChartFormats(); len(cfs) > 0 {
		return cfs[0]
	}
	return nil
}

// Legend returns the legend of the chart, or nil.
func (c *Chart) Legend() *Legend {
	for _, cf := range c.ChartFormats() {
		if l := cf.Legend(); l != nil {
			return l
		}
	}
	return nil
}

// Title returns the chart title text, or nil.
func (c *Chart) Title() *Text {
	for _, r := range c.rootChildren() {
		if t, ok := r.(*Text); ok {
			if ol := t.ObjectLink(); ol != nil && ol.Object() == LinkChartTitle {
				return t
			}
		}
	}
	return nil
}

// Series returns the series in stream order.
func (c *Chart) Series() []*Series {
	var out []*Series
	for _, r := range c.rootChildren() {
		if s, ok := r.(*Series); ok {
			out = append(out, s)
		}
	}
	return out
}

// Axis returns the first axis of the given type, searching the primary
// axis group first, or nil.
func (c *Chart) Axis(t AxisType) *Axis {
	for _, ap := range c.AxisParents() {
		for _, a := range ap.Axes() {
			if a.Type() == t {
				return a
			}
		}
	}
	return nil
}

// AxisTitle returns the title of the axis of the given type, or nil.
func (c *Chart) AxisTitle(t AxisType) *Text {
	a := c.Axis(t)
	if a == nil {
		return nil
	}
	return axisTitle(a.parent, t)
}

func axisTitle(ap Record, t AxisType) *Text {
	for _, r := range ap.node().children {
		if txt, ok := r.(*Text); ok {
			if ol := txt.ObjectLink(); ol != nil && ol.Object() == LinkForAxis(t) {
				return txt
			}
		}
	}
	return nil
}

// ShtProps returns the sheet properties, or nil.
func (c *Chart) ShtProps() *ShtProps {
	for _, r := range c.rootChildren() {
		if s, ok := r.(*ShtProps); ok {
			return s
		}
	}
	return nil
}

// Chart3d returns the 3-D view of the primary chart group, or nil.
func (c *Chart) Chart3d() *Chart3d {
	if p := c.Primary(); p != nil {
		return p.Chart3d()
	}
	return nil
}

// PlotAreaLayout returns the manual layout of the plot area, or nil when
// the plot area is laid out automatically.
func (c *Chart) PlotAreaLayout() *CrtLayout12A {
	for _, r := range c.rootChildren() {
		if l, ok := r.(*CrtLayout12A); ok {
			return l
		}
	}
	return nil
}

// SetPlotAreaLayout lays the plot area out manually. inner selects whether
// the layout is that of the inner plot area, without tick labels.
func (c *Chart) SetPlotAreaLayout(l ManualLayout, inner bool) (*CrtLayout12A, error) {
	root := c.Root()
	if root == nil {
		return nil, errors.New("chart: no Chart record")
	}
	rec := c.PlotAreaLayout()
	if rec == nil {
		rec = mustNew(OpCrtLayout12A).(*CrtLayout12A)
		if err := rec.SetLayout(l); err != nil {
			return nil, err
		}
		insertAfterLast(root, rec, OpAxisParent)
	} else if err := rec.SetLayout(l); err != nil {
		return nil, err
	}
	rec.SetInnerTarget(inner)
	return rec, nil
}

// RemoveAxis removes the axis of the given type together with its title.
// It reports whether an axis was removed.
func (c *Chart) RemoveAxis(t AxisType) bool {
	a := c.Axis(t)
	if a == nil {
		return false
	}
	ap := a.parent
	if title := axisTitle(ap, t); title != nil {
		RemoveChild(title)
	}
	return RemoveChild(a)
}

// AddAxis adds an axis of the given type to the primary axis group, after
// the existing axes. It returns the existing axis if there is one.
func (c *Chart) AddAxis(t AxisType) (*Axis, error) {
	if a := c.Axis(t); a != nil {
		return a, nil
	}
	ap := c.AxisParent(0)
	if ap == nil {
		return nil, errors.New("chart: no axis group")
	}
	a := newAxis(t, t == ValueAxis)
	insertAfterLast(ap, a, OpPos, OpAxis)
	return a, nil
}

// CreateOverlayChart adds a chart group with the given drawing order and
// chart type to the axis group of the primary chart group.
func (c *Chart) CreateOverlayChart(icrt int, typeOpcode uint16) (*ChartFormat, error) {
	if c.ChartFormat(icrt) != nil {
		return nil, errors.Errorf("chart: chart group %d already exists", icrt)
	}
	primary := c.Primary()
	if primary == nil {
		return nil, errors.New("chart: no primary chart group")
	}
	cf, err := newChartFormat(icrt, typeOpcode)
	if err != nil {
		return nil, err
	}
	parent := primary.parent
	for i, child := range parent.node().children {
		if other, ok := child.(*ChartFormat); ok && other.DrawingOrder() > icrt {
			insertChild(parent, i, cf)
			return cf, nil
		}
	}
	insertAfterLast(parent, cf, OpChartFormat)
	return cf, nil
}

// RemoveOverlayChart removes the chart group with the given drawing order.
// The primary chart group cannot be removed. Series plotted in the removed
// group move to the primary group.
func (c *Chart) RemoveOverlayChart(icrt int) bool {
	cf := c.ChartFormat(icrt)
	if cf == nil || cf == c.Primary() {
		return false
	}
	primary := c.Primary().DrawingOrder()
	for _, s := range c.Series() {
		if s.ChartGroup() == icrt {
			_ = s.SetChartGroup(primary)
		}
	}
	return RemoveChild(cf)
}

// AddLegend adds a legend docked at the right to the primary chart group,
// or returns the existing legend.
func (c *Chart) AddLegend() (*Legend, error) {
	if l := c.Legend(); l != nil {
		return l, nil
	}
	primary := c.Primary()
	if primary == nil {
		return nil, errors.New("chart: no primary chart group")
	}
	l := newLegend()
	insertAfterLast(primary, l, typeOpcodes(OpCrtLink, OpSeriesList, OpChart3d)...)
	return l, nil
}

// RemoveLegend removes the legend. It reports whether there was one.
func (c *Chart) RemoveLegend() bool {
	if l := c.Legend(); l != nil {
		return RemoveChild(l)
	}
	return false
}

// SetTitle sets the chart title, adding the title text if there is none.
func (c *Chart) SetTitle(title string) (*Text, error) {
	if t := c.Title(); t != nil {
		return t, setText(t, title)
	}
	root := c.Root()
	if root == nil {
		return nil, errors.New("chart: no Chart record")
	}
	t := newAttachedText(LinkChartTitle, title)
	insertAfterLast(root, t, OpAxisParent, OpCrtLayout12A, OpDat)
	return t, nil
}

// RemoveTitle removes the chart title. It reports whether there was one.
func (c *Chart) RemoveTitle() bool {
	if t := c.Title(); t != nil {
		return RemoveChild(t)
	}
	return false
}

// SetAxisTitle sets the title of the axis of the given type, adding the
// title text after the axes of the group if there is none.
func (c *Chart) SetAxisTitle(t AxisType, title string) (*Text, error) {
	a := c.Axis(t)
	if a == nil {
		return nil, errors.Errorf("chart: no %v axis", t)
	}
	if txt := axisTitle(a.parent, t); txt != nil {
		return txt, setText(txt, title)
	}
	txt := newAttachedText(LinkForAxis(t), title)
	insertAfterLast(a.parent, txt, OpPos, OpAxis, OpText)
	return txt, nil
}

func setText(t *Text, s string) error {
	st := t.SeriesText()
	if st == nil {
		st = mustNew(OpSeriesText).(*SeriesText)
		insertAfterLast(t, st, OpPos, OpFontX, OpAlRuns, OpBRAI)
	}
	t.SetAutoText(false)
	return st.SetText(s)
}

// SetChartOption sets a named option on the chart. "HasLegend" and
// "Title" act on the chart itself; every other name is offered to the
// records of the primary chart group, its 3-D view and legend, and the
// sheet properties, in that order, until one of them accepts it.
func (c *Chart) SetChartOption(name, value string) bool {
	switch name {
	case "HasLegend":
		v, ok := parseBool(value)
		if !ok {
			return false
		}
		if v {
			_, err := c.AddLegend()
			return err == nil
		}
		c.RemoveLegend()
		return true
	case "Title":
		_, err := c.SetTitle(value)
		return err == nil
	}
	for _, r := range c.optionTargets() {
		if r.SetOption(name, value) {
			return true
		}
	}
	return false
}

// ChartOption returns the value of a named option, or false when no record
// knows the name.
func (c *Chart) ChartOption(name string) (string, bool) {
	switch name {
	case "HasLegend":
		return formatBool(c.Legend() != nil), true
	case "Title":
		if t := c.Title(); t != nil {
			if st := t.SeriesText(); st != nil {
				return st.Text(), true
			}
		}
		return "", false
	}
	for _, r := range c.optionTargets() {
		if v, ok := r.Option(name); ok {
			return v, true
		}
	}
	return "", false
}

func (c *Chart) optionTargets() []Record {
	var out []Record
	if p := c.Primary(); p != nil {
		if t := p.TypeRecord(); t != nil {
			out = append(out, t)
		}
		out = append(out, p)
		if c3 := p.Chart3d(); c3 != nil {
			out = append(out, c3)
		}
		for _, r := range p.children {
			if db, ok := r.(*DropBar); ok {
				out = append(out, db)
			}
		}
		if l := p.Legend(); l != nil {
			out = append(out, l)
		}
	}
	if s := c.ShtProps(); s != nil {
		out = append(out, s)
	}
	for _, r := range c.rootChildren() {
		if d, ok := r.(*Dat); ok {
			out = append(out, d)
		}
	}
	return out
}

// typeOpcodes returns the chart type opcodes followed by more.
func typeOpcodes(more ...uint16) []uint16 {
	return append([]uint16{OpBar, OpLine, OpPie, OpArea, OpScatter, OpRadar, OpRadarArea, OpSurf, OpBopPop}, more...)
}
