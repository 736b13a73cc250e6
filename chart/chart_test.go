package chart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBarChart(t *testing.T) *Chart {
	t.Helper()
	c, err := NewChart(OpBar, &Options{})
	require.NoError(t, err)
	return c
}

func TestNewChartLayout(t *testing.T) {
	tests := []struct {
		typeOpcode uint16
		axes       []AxisType
		has3d      bool
	}{
		{OpBar, []AxisType{CategoryAxis, ValueAxis}, false},
		{OpScatter, []AxisType{ValueAxis, ValueAxis}, false},
		{OpSurf, []AxisType{CategoryAxis, ValueAxis, SeriesAxis}, true},
		{OpPie, nil, false},
		{OpBopPop, nil, false},
	}
	for _, test := range tests {
		c, err := NewChart(test.typeOpcode, &Options{})
		require.NoError(t, err)
		var axes []AxisType
		for _, a := range c.AxisParent(0).Axes() {
			axes = append(axes, a.Type())
		}
		if diff := cmp.Diff(test.axes, axes); diff != "" {
			t.Errorf("%s: axes mismatch (-want +got):\n%s", Name(test.typeOpcode), diff)
		}
		primary := c.Primary()
		require.NotNil(t, primary)
		assert.Equal(t, test.typeOpcode, primary.TypeRecord().Opcode())
		assert.Equal(t, test.has3d, c.Chart3d() != nil, Name(test.typeOpcode))
		assert.NotNil(t, c.Legend())
		assert.NotNil(t, c.ShtProps())
	}

	_, err := NewChart(OpLineFormat, &Options{})
	assert.Error(t, err)
}

func TestUnknownChartOption(t *testing.T) {
	c := newBarChart(t)
	before, err := c.Bytes()
	require.NoError(t, err)

	assert.False(t, c.SetChartOption("NotARealOption", "x"))
	_, ok := c.ChartOption("NotARealOption")
	assert.False(t, ok)

	after, err := c.Bytes()
	require.NoError(t, err)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("SetChartOption changed the chart (-before +after):\n%s", diff)
	}
}

func TestChartOptions(t *testing.T) {
	c := newBarChart(t)
	require.True(t, c.SetChartOption("Stacked", "true"))
	bar := c.Primary().TypeRecord().(*Bar)
	assert.True(t, bar.IsStacked())
	assert.Equal(t, -100, bar.Overlap())

	require.True(t, c.SetChartOption("VaryColors", "true"))
	assert.True(t, c.Primary().IsVaried())

	require.True(t, c.SetChartOption("LegendPos", "b"))
	assert.Equal(t, LegendBottom, c.Legend().Position())

	require.True(t, c.SetChartOption("DispBlanksAs", "zero"))
	v, ok := c.ChartOption("DispBlanksAs")
	assert.True(t, ok)
	assert.Equal(t, "zero", v)

	require.True(t, c.SetChartOption("HasLegend", "false"))
	assert.Nil(t, c.Legend())
	v, _ = c.ChartOption("HasLegend")
	assert.Equal(t, "false", v)
	require.True(t, c.SetChartOption("HasLegend", "true"))
	assert.NotNil(t, c.Legend())

	require.True(t, c.SetChartOption("Title", "Quarterly"))
	v, ok = c.ChartOption("Title")
	assert.True(t, ok)
	assert.Equal(t, "Quarterly", v)
	assert.False(t, c.SetChartOption("HasLegend", "maybe"))
}

func TestAxisTitle(t *testing.T) {
	c := newBarChart(t)
	txt, err := c.SetAxisTitle(ValueAxis, "Revenue")
	require.NoError(t, err)
	assert.Equal(t, txt, c.AxisTitle(ValueAxis))
	assert.Equal(t, "Revenue", txt.SeriesText().Text())
	assert.Equal(t, LinkValueAxis, txt.ObjectLink().Object())
	assert.Nil(t, c.AxisTitle(CategoryAxis))

	// the title goes after the axes and before the plot area
	ap := c.AxisParent(0)
	i := indexOf(txt)
	assert.Equal(t, OpAxis, int(ap.Children()[i-1].Opcode()))
	assert.Equal(t, OpPlotArea, int(ap.Children()[i+1].Opcode()))

	again, err := c.SetAxisTitle(ValueAxis, "Turnover")
	require.NoError(t, err)
	assert.Same(t, txt, again)
	assert.Equal(t, "Turnover", txt.SeriesText().Text())

	_, err = c.SetAxisTitle(SeriesAxis, "Depth")
	assert.Error(t, err)
}

func TestRemoveAxis(t *testing.T) {
	c := newBarChart(t)
	txt, err := c.SetAxisTitle(ValueAxis, "Revenue")
	require.NoError(t, err)

	require.True(t, c.RemoveAxis(ValueAxis))
	assert.Nil(t, c.Axis(ValueAxis))
	assert.Nil(t, c.AxisTitle(ValueAxis))
	assert.Nil(t, txt.Parent())
	assert.NotNil(t, c.Axis(CategoryAxis))
	assert.False(t, c.RemoveAxis(ValueAxis))

	a, err := c.AddAxis(ValueAxis)
	require.NoError(t, err)
	assert.Equal(t, a, c.Axis(ValueAxis))
	assert.NotNil(t, a.ValueRange())
}

func TestAxisParts(t *testing.T) {
	c := newBarChart(t)
	va := c.Axis(ValueAxis)
	require.NotNil(t, va)
	assert.NotNil(t, va.Tick())
	assert.Nil(t, va.CatSerRange())
	al := va.AxisLine(AxisLineMajorGridlines)
	require.NotNil(t, al)
	assert.NotNil(t, al.LineFormat())
	assert.Nil(t, c.Axis(CategoryAxis).AxisLine(AxisLineMajorGridlines))
}

func TestOverlayChart(t *testing.T) {
	c := newBarChart(t)
	cf, err := c.CreateOverlayChart(1, OpLine)
	require.NoError(t, err)
	require.Len(t, c.ChartFormats(), 2)
	assert.Equal(t, cf, c.ChartFormat(1))
	assert.Equal(t, 0, c.Primary().DrawingOrder())
	_, ok := cf.TypeRecord().(*Line)
	assert.True(t, ok)

	_, err = c.CreateOverlayChart(1, OpArea)
	assert.Error(t, err)
	_, err = c.CreateOverlayChart(2, OpLineFormat)
	assert.Error(t, err)

	s := mustNew(OpSeries).(*Series)
	require.NoError(t, AddChild(c.Root(), s))
	require.NoError(t, s.SetChartGroup(1))
	assert.Equal(t, []*Series{s}, c.Series())

	assert.False(t, c.RemoveOverlayChart(0))
	assert.True(t, c.RemoveOverlayChart(1))
	assert.Nil(t, c.ChartFormat(1))
	assert.Equal(t, 0, s.ChartGroup())
	assert.False(t, c.RemoveOverlayChart(1))
}

func TestChartFormatOrder(t *testing.T) {
	c := newBarChart(t)
	_, err := c.CreateOverlayChart(2, OpLine)
	require.NoError(t, err)
	_, err = c.CreateOverlayChart(1, OpArea)
	require.NoError(t, err)
	var order []int
	for _, cf := range c.ChartFormats() {
		order = append(order, cf.DrawingOrder())
	}
	assert.Equal(t, []int{0, 1, 2}, order)

	// the stream itself follows drawing order
	order = nil
	for _, r := range FindAll(c.Root(), OpChartFormat) {
		order = append(order, r.(*ChartFormat).DrawingOrder())
	}
	assert.Equal(t, []int{0, 1, 2}, order)

	b, err := c.Bytes()
	require.NoError(t, err)
	parsed, err := Parse(b, &Options{})
	require.NoError(t, err)
	order = nil
	for _, r := range FindAll(parsed.Root(), OpChartFormat) {
		order = append(order, r.(*ChartFormat).DrawingOrder())
	}
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestSetTypeRecord(t *testing.T) {
	c := newBarChart(t)
	p := c.Primary()
	line := mustNew(OpLine).(*Line)
	require.NoError(t, p.SetTypeRecord(line))
	assert.Equal(t, line, p.TypeRecord())
	assert.Equal(t, p, line.Parent())
	assert.Equal(t, 0, indexOf(line))
	assert.Equal(t, ErrAttached, p.SetTypeRecord(line))
}

func TestLegendAndTitle(t *testing.T) {
	c := newBarChart(t)
	require.True(t, c.RemoveLegend())
	assert.False(t, c.RemoveLegend())

	l, err := c.AddLegend()
	require.NoError(t, err)
	assert.Equal(t, c.Primary(), l.Parent())
	assert.Equal(t, 2, indexOf(l)) // after Bar and CrtLink

	title, err := c.SetTitle("Sales")
	require.NoError(t, err)
	assert.Equal(t, title, c.Title())
	assert.Equal(t, c.Root(), title.Parent())
	assert.False(t, title.IsAutoText())
	require.True(t, c.RemoveTitle())
	assert.Nil(t, c.Title())
}

func TestClose(t *testing.T) {
	c := newBarChart(t)
	l := c.Legend()
	root := c.Root()
	c.Close()
	assert.Empty(t, c.Records())
	assert.Nil(t, l.Parent())
	assert.Nil(t, l.Chart())
	assert.Empty(t, root.Children())
	assert.Nil(t, c.Root())
}
