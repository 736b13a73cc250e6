package charttype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamitzky/xlchart-go/chart"
)

func familyOf(t *testing.T, typeOpcode uint16) (*chart.Chart, Family) {
	t.Helper()
	c, err := chart.NewChart(typeOpcode, &chart.Options{})
	require.NoError(t, err)
	f, err := For(c.Primary())
	require.NoError(t, err)
	return c, f
}

func TestElementName(t *testing.T) {
	tests := []struct {
		typeOpcode uint16
		kind       Kind
		expected   string
	}{
		{chart.OpBar, KindBar, "barChart"},
		{chart.OpLine, KindLine, "lineChart"},
		{chart.OpArea, KindArea, "areaChart"},
		{chart.OpPie, KindPie, "pieChart"},
		{chart.OpBopPop, KindOfPie, "ofPieChart"},
		{chart.OpScatter, KindScatter, "scatterChart"},
		{chart.OpRadar, KindRadar, "radarChart"},
		{chart.OpRadarArea, KindRadar, "radarChart"},
		{chart.OpSurf, KindSurface, "surface3DChart"},
	}
	for _, test := range tests {
		_, f := familyOf(t, test.typeOpcode)
		if f.Kind() != test.kind {
			t.Errorf("%s: Kind() = %v, expected %v", chart.Name(test.typeOpcode), f.Kind(), test.kind)
		}
		if got := f.ElementName(); got != test.expected {
			t.Errorf("%s: ElementName() = %s, expected %s", chart.Name(test.typeOpcode), got, test.expected)
		}
	}
}

func TestBarGrouping(t *testing.T) {
	_, f := familyOf(t, chart.OpBar)
	bar := f.(*Bar)
	assert.True(t, bar.IsClustered())
	assert.Equal(t, Clustered, bar.Grouping())

	bar.Record().SetStacked(true)
	assert.True(t, bar.IsStacked())
	assert.False(t, bar.IsClustered())
	assert.False(t, bar.Is100PercentStacked())
	assert.Equal(t, Stacked, bar.Grouping())

	bar.Record().Set100Percent(true)
	assert.False(t, bar.IsStacked())
	assert.True(t, bar.Is100PercentStacked())
	assert.False(t, bar.IsClustered())
	assert.Equal(t, PercentStacked, bar.Grouping())
}

func TestBar3D(t *testing.T) {
	c, _ := familyOf(t, chart.OpBar)
	p := c.Primary()
	c3, err := chart.New(chart.OpChart3d)
	require.NoError(t, err)
	require.NoError(t, chart.AddChild(p, c3))

	f, err := For(p)
	require.NoError(t, err)
	bar := f.(*Bar)
	assert.True(t, bar.Is3D())
	assert.Equal(t, "bar3DChart", bar.ElementName())
	assert.Equal(t, Standard, bar.Grouping())
	c3.(*chart.Chart3d).SetClustered(true)
	assert.Equal(t, Clustered, bar.Grouping())

	assert.Equal(t, ShapeBox, bar.Shape())
	addShapedSeries(t, c, 0, chart.RiserEllipse, chart.TaperMax)
	assert.Equal(t, ShapeConeToMax, bar.Shape())
}

func addShapedSeries(t *testing.T, c *chart.Chart, group int, riser chart.Riser, taper chart.Taper) {
	t.Helper()
	s, err := chart.New(chart.OpSeries)
	require.NoError(t, err)
	require.NoError(t, chart.AddChild(c.Root(), s))
	require.NoError(t, s.(*chart.Series).SetChartGroup(group))
	bs, err := chart.New(chart.OpChart3DBarShape)
	require.NoError(t, err)
	require.NoError(t, bs.(*chart.Chart3DBarShape).SetShape(riser, taper))
	require.NoError(t, chart.AddChild(s, bs))
}

func TestBarShapePerGroup(t *testing.T) {
	c, f := familyOf(t, chart.OpBar)
	overlay, err := c.CreateOverlayChart(1, chart.OpBar)
	require.NoError(t, err)
	g, err := For(overlay)
	require.NoError(t, err)

	addShapedSeries(t, c, 1, chart.RiserRectangle, chart.TaperPoint)
	assert.Equal(t, ShapeBox, f.(*Bar).Shape())
	assert.Equal(t, ShapePyramid, g.(*Bar).Shape())

	addShapedSeries(t, c, 0, chart.RiserEllipse, chart.TaperNone)
	assert.Equal(t, ShapeCylinder, f.(*Bar).Shape())
	assert.Equal(t, ShapePyramid, g.(*Bar).Shape())
}

func TestShapeOf(t *testing.T) {
	tests := []struct {
		riser    chart.Riser
		taper    chart.Taper
		expected BarShape
	}{
		{chart.RiserRectangle, chart.TaperNone, ShapeBox},
		{chart.RiserRectangle, chart.TaperPoint, ShapePyramid},
		{chart.RiserRectangle, chart.TaperMax, ShapePyramidToMax},
		{chart.RiserEllipse, chart.TaperNone, ShapeCylinder},
		{chart.RiserEllipse, chart.TaperPoint, ShapeCone},
		{chart.RiserEllipse, chart.TaperMax, ShapeConeToMax},
	}
	for _, test := range tests {
		if got := ShapeOf(test.riser, test.taper); got != test.expected {
			t.Errorf("ShapeOf(%d, %d) = %s, expected %s", test.riser, test.taper, got, test.expected)
		}
	}
}

func TestLineAndAreaGrouping(t *testing.T) {
	for _, op := range []uint16{chart.OpLine, chart.OpArea} {
		c, f := familyOf(t, op)
		assert.Equal(t, Standard, f.Grouping())
		assert.True(t, f.IsClustered())
		stacker := c.Primary().TypeRecord().(chart.Stacker)
		stacker.Set100Percent(true)
		assert.Equal(t, PercentStacked, f.Grouping())
		assert.True(t, stacker.IsStacked())
		stacker.SetStacked(false)
		assert.False(t, f.Is100PercentStacked())
		assert.Equal(t, Standard, f.Grouping())
	}
}

func TestDoughnutAndBubble(t *testing.T) {
	_, f := familyOf(t, chart.OpPie)
	pie := f.(*Pie)
	require.NoError(t, pie.Record().SetDonutSize(50))
	assert.Equal(t, "doughnutChart", pie.ElementName())
	assert.False(t, pie.IsStacked())
	assert.True(t, pie.IsClustered())

	_, f = familyOf(t, chart.OpScatter)
	sc := f.(*Scatter)
	sc.Record().SetBubble(true)
	assert.Equal(t, "bubbleChart", sc.ElementName())
}

func TestRadarStyle(t *testing.T) {
	_, f := familyOf(t, chart.OpRadar)
	assert.Equal(t, "marker", f.(*Radar).Style())
	_, f = familyOf(t, chart.OpRadarArea)
	assert.Equal(t, "filled", f.(*Radar).Style())
}

func TestSurfaceWireframe(t *testing.T) {
	c, f := familyOf(t, chart.OpSurf)
	s := f.(*Surface)
	assert.True(t, s.IsWireframe())
	c.Primary().TypeRecord().(*chart.Surf).SetFilled(true)
	assert.False(t, s.IsWireframe())
}

func TestFamilies(t *testing.T) {
	c, _ := familyOf(t, chart.OpBar)
	_, err := c.CreateOverlayChart(1, chart.OpLine)
	require.NoError(t, err)
	fams, err := Families(c)
	require.NoError(t, err)
	require.Len(t, fams, 2)
	assert.Equal(t, KindBar, fams[0].Kind())
	assert.Equal(t, KindLine, fams[1].Kind())
	assert.Equal(t, c.ChartFormat(1), fams[1].ChartFormat())

	// a group without a type record
	require.True(t, chart.RemoveChild(c.ChartFormat(1).TypeRecord()))
	_, err = Families(c)
	assert.ErrorIs(t, err, ErrNoType)
}
