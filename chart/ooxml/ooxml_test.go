package ooxml

import (
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamitzky/xlchart-go/chart"
	"github.com/yamitzky/xlchart-go/chart/charttype"
)

func newChart(t *testing.T, typeOpcode uint16) *chart.Chart {
	t.Helper()
	c, err := chart.NewChart(typeOpcode, &chart.Options{})
	require.NoError(t, err)
	return c
}

func TestExportOrder(t *testing.T) {
	c := newChart(t, chart.OpBar)
	_, err := c.SetTitle("Revenue by quarter")
	require.NoError(t, err)
	c.Primary().TypeRecord().(*chart.Bar).SetStacked(true)
	require.NoError(t, c.Legend().SetPosition(chart.LegendBottom))

	b, err := Marshal(c)
	require.NoError(t, err)
	doc := string(b)

	// axes may come in any order; both sit between the group and the legend
	order := []string{"<c:title>", "<c:plotArea>", "<c:barChart>", "<c:legend>", "<c:plotVisOnly"}
	last := -1
	for _, el := range order {
		i := strings.Index(doc, el)
		if i < 0 {
			t.Fatalf("%s missing from\n%s", el, doc)
		}
		if i < last {
			t.Errorf("%s is out of order in\n%s", el, doc)
		}
		last = i
	}
	group, legend := strings.Index(doc, "</c:barChart>"), strings.Index(doc, "<c:legend>")
	for _, el := range []string{"<c:catAx>", "<c:valAx>"} {
		i := strings.Index(doc, el)
		if i < group || i > legend {
			t.Errorf("%s is not between the chart group and the legend in\n%s", el, doc)
		}
	}
	assert.Contains(t, doc, "Revenue by quarter")
	assert.Contains(t, doc, `<c:grouping val="stacked"`)
	assert.Contains(t, doc, `<c:legendPos val="b"`)
	assert.Contains(t, doc, `<c:overlap val="-100"`)
}

func TestExportPieHasNoAxes(t *testing.T) {
	c := newChart(t, chart.OpPie)
	cs, err := Export(c)
	require.NoError(t, err)
	pa := cs.Chart.PlotArea
	require.Len(t, pa.Choice, 1)
	require.NotNil(t, pa.Choice[0].PieChart)
	if pa.CChoice != nil {
		assert.Empty(t, pa.CChoice.CatAx)
		assert.Empty(t, pa.CChoice.ValAx)
	}
	require.NotNil(t, cs.Chart.AutoTitleDeleted)
	assert.True(t, *cs.Chart.AutoTitleDeleted.ValAttr)
}

func TestGroupXML(t *testing.T) {
	c := newChart(t, chart.OpSurf)
	f, err := charttype.For(c.Primary())
	require.NoError(t, err)
	b, err := GroupXML(f)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "<c:surface3DChart>"), string(b))
	assert.Contains(t, string(b), `<c:wireframe val="1"`)
}

func TestImport(t *testing.T) {
	src := newChart(t, chart.OpBar)
	bar := src.Primary().TypeRecord().(*chart.Bar)
	bar.Set100Percent(true)
	bar.SetHorizontal(true)
	_, err := src.SetTitle("Share")
	require.NoError(t, err)
	_, err = src.SetAxisTitle(chart.ValueAxis, "Percent")
	require.NoError(t, err)
	src.Axis(chart.ValueAxis).ValueRange().SetMax(1)
	require.NoError(t, src.ShtProps().SetBlankMode(chart.BlankZero))
	b, err := Marshal(src)
	require.NoError(t, err)

	dst := newChart(t, chart.OpLine)
	require.NoError(t, Unmarshal(b, dst))

	got, ok := dst.Primary().TypeRecord().(*chart.Bar)
	require.True(t, ok, "type record is %T", dst.Primary().TypeRecord())
	assert.True(t, got.Is100Percent())
	assert.True(t, got.IsHorizontal())
	assert.Equal(t, -100, got.Overlap())
	v, _ := dst.ChartOption("Title")
	assert.Equal(t, "Share", v)
	require.NotNil(t, dst.AxisTitle(chart.ValueAxis))
	assert.Equal(t, "Percent", dst.AxisTitle(chart.ValueAxis).SeriesText().Text())
	max, auto := dst.Axis(chart.ValueAxis).ValueRange().Max()
	assert.False(t, auto)
	assert.Equal(t, 1.0, max)
	assert.Equal(t, chart.BlankZero, dst.ShtProps().BlankMode())

	again, err := Marshal(dst)
	require.NoError(t, err)
	if diff := cmp.Diff(string(b), string(again)); diff != "" {
		t.Errorf("export after import differs (-want +got):\n%s", diff)
	}
}

func TestImportAllAxes(t *testing.T) {
	src := newChart(t, chart.OpBar)
	_, err := src.SetAxisTitle(chart.ValueAxis, "Percent")
	require.NoError(t, err)
	vr := src.Axis(chart.ValueAxis).ValueRange()
	vr.SetMax(0.75)
	vr.SetMajorUnit(0.25)
	vr.SetReversed(true)
	src.Axis(chart.CategoryAxis).CatSerRange().SetReversed(true)
	b, err := Marshal(src)
	require.NoError(t, err)

	axes, err := plotAreaAxes(b)
	require.NoError(t, err)
	require.NotNil(t, axes)
	assert.Len(t, axes.CatAx, 1)
	assert.Len(t, axes.ValAx, 1)

	dst := newChart(t, chart.OpBar)
	require.NoError(t, Unmarshal(b, dst))
	require.NotNil(t, dst.AxisTitle(chart.ValueAxis))
	assert.Equal(t, "Percent", dst.AxisTitle(chart.ValueAxis).SeriesText().Text())
	got := dst.Axis(chart.ValueAxis).ValueRange()
	max, auto := got.Max()
	assert.False(t, auto)
	assert.Equal(t, 0.75, max)
	unit, auto := got.MajorUnit()
	assert.False(t, auto)
	assert.Equal(t, 0.25, unit)
	assert.True(t, got.IsReversed())
	assert.True(t, dst.Axis(chart.CategoryAxis).CatSerRange().IsReversed())
}

func TestPlotAreaAxesNone(t *testing.T) {
	b, err := Marshal(newChart(t, chart.OpPie))
	require.NoError(t, err)
	axes, err := plotAreaAxes(b)
	require.NoError(t, err)
	assert.Nil(t, axes)
}

func TestImportRemovesLegendAndTitle(t *testing.T) {
	src := newChart(t, chart.OpPie)
	src.RemoveLegend()
	b, err := Marshal(src)
	require.NoError(t, err)

	dst := newChart(t, chart.OpPie)
	_, err = dst.SetTitle("Old")
	require.NoError(t, err)
	require.NoError(t, Unmarshal(b, dst))
	assert.Nil(t, dst.Legend())
	assert.Nil(t, dst.Title())
}

func TestImportColors(t *testing.T) {
	src := newChart(t, chart.OpBar)
	pa := chart.FindFirstChild(src.AxisParent(0), chart.OpPlotArea).(*chart.PlotArea)
	af := pa.Frame().AreaFormat()
	af.SetAuto(false)
	require.NoError(t, af.SetPattern(chart.FillSolid))
	af.SetForegroundColor(color.RGBA{R: 0x33, G: 0x66, B: 0xFF, A: 0xFF})
	b, err := Marshal(src)
	require.NoError(t, err)
	assert.Contains(t, string(b), `<a:srgbClr val="3366FF"`)

	dst := newChart(t, chart.OpBar)
	require.NoError(t, Unmarshal(b, dst))
	got := chart.FindFirstChild(dst.AxisParent(0), chart.OpPlotArea).(*chart.PlotArea).Frame().AreaFormat()
	assert.False(t, got.IsAuto())
	assert.Equal(t, af.ForegroundColorIndex(), got.ForegroundColorIndex())
	assert.Equal(t, color.RGBA{R: 0x33, G: 0x66, B: 0xFF, A: 0xFF}, got.ForegroundColor())
}

func TestImportOverlay(t *testing.T) {
	src := newChart(t, chart.OpBar)
	_, err := src.CreateOverlayChart(1, chart.OpLine)
	require.NoError(t, err)
	b, err := Marshal(src)
	require.NoError(t, err)

	dst := newChart(t, chart.OpBar)
	require.NoError(t, Unmarshal(b, dst))
	require.Len(t, dst.ChartFormats(), 2)
	_, ok := dst.ChartFormat(1).TypeRecord().(*chart.Line)
	assert.True(t, ok)
}

func TestUnmarshalErrors(t *testing.T) {
	c := newChart(t, chart.OpBar)
	assert.Error(t, Unmarshal([]byte("<c:chartSpace"), c))
}

func TestLineWeight(t *testing.T) {
	for _, w := range []chart.LineWeight{chart.LineHairline, chart.LineNarrow, chart.LineMedium, chart.LineWide} {
		if got := lineWeight(lineWidth(w)); got != w {
			t.Errorf("lineWeight(lineWidth(%d)) = %d", w, got)
		}
	}
	assert.Equal(t, chart.LineNarrow, lineWeight(12700))
}
