package chart

import (
	"github.com/pkg/errors"
)

// block makes r a block record holding children.
func block(r Record, children ...Record) Record {
	b := r.node()
	b.block = true
	for _, c := range children {
		insertChild(r, len(b.children), c)
	}
	return r
}

func newFrame(area bool) *Frame {
	f := mustNew(OpFrame).(*Frame)
	lf := mustNew(OpLineFormat).(*LineFormat)
	af := mustNew(OpAreaFormat).(*AreaFormat)
	if !area {
		af.SetAuto(true)
		_ = af.SetPattern(FillNone)
	}
	block(f, lf, af)
	return f
}

func newPos(p Position) *Pos {
	pos := mustNew(OpPos).(*Pos)
	_ = pos.SetPosition(p)
	return pos
}

func newAxis(t AxisType, gridlines bool) *Axis {
	a := mustNew(OpAxis).(*Axis)
	_ = a.SetType(t)
	var children []Record
	if t == ValueAxis {
		children = append(children, mustNew(OpValueRange))
	} else {
		children = append(children, mustNew(OpCatSerRange), mustNew(OpAxcExt), mustNew(OpCatLab))
	}
	children = append(children, mustNew(OpTick), mustNew(OpAxisLine), mustNew(OpLineFormat))
	if gridlines {
		al := mustNew(OpAxisLine).(*AxisLine)
		al.id = uint16(AxisLineMajorGridlines)
		al.putU16(0, al.id)
		children = append(children, al, mustNew(OpLineFormat))
	}
	block(a, children...)
	return a
}

func newAttachedText(link LinkObject, s string) *Text {
	t := mustNew(OpText).(*Text)
	t.SetAutoText(false)
	st := mustNew(OpSeriesText).(*SeriesText)
	_ = st.SetText(s)
	ol := mustNew(OpObjectLink).(*ObjectLink)
	ol.SetLink(link, 0, 0)
	brai := mustNew(OpBRAI)
	block(t, newPos(LabelOffset{}), mustNew(OpFontX), brai, st, ol)
	return t
}

func newLegend() *Legend {
	l := mustNew(OpLegend).(*Legend)
	t := mustNew(OpText).(*Text)
	block(t, newPos(LabelOffset{}), mustNew(OpBRAI))
	block(l, newPos(LegendAuto{}), t)
	return l
}

func newChartFormat(icrt int, typeOpcode uint16) (*ChartFormat, error) {
	tr, err := New(typeOpcode)
	if err != nil {
		return nil, err
	}
	if _, ok := tr.(TypeRecord); !ok {
		return nil, errors.Errorf("chart: %s is not a chart type record", Name(typeOpcode))
	}
	cf := mustNew(OpChartFormat).(*ChartFormat)
	if err := cf.SetDrawingOrder(icrt); err != nil {
		return nil, err
	}
	block(cf, tr, mustNew(OpCrtLink))
	return cf, nil
}

// hasAxes reports whether charts of the type are plotted against axes.
func hasAxes(typeOpcode uint16) bool {
	return typeOpcode != OpPie && typeOpcode != OpBopPop
}

// NewChart builds a chart of the given type from record prototypes: the
// chart area, one axis group with a category and a value axis (two value
// axes for scatter charts, none for pie charts), the plot area, a chart
// group holding the chart type record, and a legend.
func NewChart(typeOpcode uint16, opts *Options) (*Chart, error) {
	opts = defaultOptions(opts)
	cf, err := newChartFormat(0, typeOpcode)
	if err != nil {
		return nil, err
	}
	insertAfterLast(cf, newLegend(), typeOpcodes(OpCrtLink)...)

	ap := mustNew(OpAxisParent)
	pos := newPos(PlotAreaRect{})
	axes := []Record{pos}
	if hasAxes(typeOpcode) {
		if typeOpcode == OpScatter {
			axes = append(axes, newAxis(ValueAxis, false), newAxis(ValueAxis, true))
		} else {
			axes = append(axes, newAxis(CategoryAxis, false), newAxis(ValueAxis, true))
		}
		if typeOpcode == OpSurf {
			axes = append(axes, newAxis(SeriesAxis, false))
		}
		axes = append(axes, mustNew(OpPlotArea), newFrame(false))
	}
	block(ap, append(axes, cf)...)

	if typeOpcode == OpSurf {
		insertAfterLast(cf, mustNew(OpChart3d), typeOpcodes(OpCrtLink, OpSeriesList)...)
	}

	root := mustNew(OpChart)
	block(root,
		mustNew(OpScl),
		mustNew(OpPlotGrowth),
		newFrame(true),
		mustNew(OpShtProps),
		mustNew(OpAxesUsed),
		ap,
	)
	c := &Chart{records: []Record{root}, opts: *opts}
	attach(root, nil, c)
	return c, nil
}
