package ooxml

import (
	"bytes"
	"encoding/xml"

	"github.com/pkg/errors"
	"github.com/unidoc/unioffice/schema/soo/dml"
	crt "github.com/unidoc/unioffice/schema/soo/dml/chart"
	"github.com/yamitzky/xlchart-go/chart"
	"github.com/yamitzky/xlchart-go/chart/charttype"
)

// axis ids are 100*iax + 10 + axis type; Excel accepts any unique value
func axisID(iax int, t chart.AxisType, n int) uint32 {
	return uint32(100*iax + 10*(n+1) + int(t))
}

func unsignedInt(v uint32) *crt.CT_UnsignedInt {
	u := crt.NewCT_UnsignedInt()
	u.ValAttr = v
	return u
}

// Export converts the chart to a chartSpace. The children of c:chart are
// emitted in schema order: title, view3D, plotArea, legend and the sheet
// flags.
func Export(c *chart.Chart) (*crt.ChartSpace, error) {
	if c.Root() == nil {
		return nil, errors.New("ooxml: chart has no Chart record")
	}
	cs := crt.NewChartSpace()
	ch := crt.NewCT_Chart()
	cs.Chart = ch

	if t := c.Title(); t != nil {
		ch.Title = title(t)
		ch.AutoTitleDeleted = boolean(false)
	} else {
		ch.AutoTitleDeleted = boolean(true)
	}
	if c3 := c.Chart3d(); c3 != nil {
		ch.View3D = view3D(c3)
	}

	pa, err := plotArea(c)
	if err != nil {
		return nil, err
	}
	ch.PlotArea = pa

	if l := c.Legend(); l != nil {
		ch.Legend = legend(l)
	}
	if sp := c.ShtProps(); sp != nil {
		ch.PlotVisOnly = boolean(sp.PlotVisibleOnly())
		if v, ok := blankModes[sp.BlankMode()]; ok {
			ch.DispBlanksAs = crt.NewCT_DispBlanksAs()
			ch.DispBlanksAs.ValAttr = v
		}
	}
	if f, ok := chart.FindFirstChild(c.Root(), chart.OpFrame).(*chart.Frame); ok {
		cs.SpPr = shapeProperties(f)
	}
	return cs, nil
}

// Marshal exports the chart as a complete XML document.
func Marshal(c *chart.Chart) ([]byte, error) {
	cs, err := Export(c)
	if err != nil {
		return nil, err
	}
	b, err := xml.Marshal(cs)
	if err != nil {
		return nil, errors.Wrap(err, "ooxml: marshal chartSpace")
	}
	return append([]byte(xml.Header), b...), nil
}

// GroupXML renders the element of one chart group, such as <c:barChart>,
// as a fragment. The fragment uses the c: prefix without declaring it.
func GroupXML(f charttype.Family) ([]byte, error) {
	ch, err := group(f, nil)
	if err != nil {
		return nil, err
	}
	el, v := choiceElement(ch)
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := enc.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: "c:" + el}}); err != nil {
		return nil, errors.Wrapf(err, "ooxml: marshal %s", el)
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func choiceElement(ch *crt.CT_PlotAreaChoice) (string, interface{}) {
	switch {
	case ch.BarChart != nil:
		return "barChart", ch.BarChart
	case ch.Bar3DChart != nil:
		return "bar3DChart", ch.Bar3DChart
	case ch.LineChart != nil:
		return "lineChart", ch.LineChart
	case ch.Line3DChart != nil:
		return "line3DChart", ch.Line3DChart
	case ch.AreaChart != nil:
		return "areaChart", ch.AreaChart
	case ch.Area3DChart != nil:
		return "area3DChart", ch.Area3DChart
	case ch.PieChart != nil:
		return "pieChart", ch.PieChart
	case ch.Pie3DChart != nil:
		return "pie3DChart", ch.Pie3DChart
	case ch.DoughnutChart != nil:
		return "doughnutChart", ch.DoughnutChart
	case ch.OfPieChart != nil:
		return "ofPieChart", ch.OfPieChart
	case ch.ScatterChart != nil:
		return "scatterChart", ch.ScatterChart
	case ch.BubbleChart != nil:
		return "bubbleChart", ch.BubbleChart
	case ch.RadarChart != nil:
		return "radarChart", ch.RadarChart
	case ch.SurfaceChart != nil:
		return "surfaceChart", ch.SurfaceChart
	}
	return "surface3DChart", ch.Surface3DChart
}

func title(t *chart.Text) *crt.CT_Title {
	ti := crt.NewCT_Title()
	if st := t.SeriesText(); st != nil {
		ti.Tx = richText(st.Text())
	}
	ti.Overlay = boolean(false)
	return ti
}

func richText(s string) *crt.CT_Tx {
	tx := crt.NewCT_Tx()
	if tx.Choice == nil {
		tx.Choice = crt.NewCT_TxChoice()
	}
	body := dml.NewCT_TextBody()
	para := dml.NewCT_TextParagraph()
	run := dml.NewEG_TextRun()
	run.R = dml.NewCT_RegularTextRun()
	run.R.T = s
	para.EG_TextRun = append(para.EG_TextRun, run)
	body.P = append(body.P, para)
	tx.Choice.Rich = body
	return tx
}

func view3D(c3 *chart.Chart3d) *crt.CT_View3D {
	v := crt.NewCT_View3D()
	v.RotX = crt.NewCT_RotX()
	v.RotX.ValAttr = ptr(int8(c3.Elevation()))
	v.RotY = crt.NewCT_RotY()
	v.RotY.ValAttr = ptr(uint16(c3.Rotation() % 360))
	v.RAngAx = boolean(c3.HasRightAngleAxes())
	if c3.IsPerspective() {
		v.Perspective = crt.NewCT_Perspective()
		v.Perspective.ValAttr = ptr(uint8(c3.Perspective()))
	}
	return v
}

func plotArea(c *chart.Chart) (*crt.CT_PlotArea, error) {
	pa := crt.NewCT_PlotArea()
	if l := c.PlotAreaLayout(); l != nil {
		pa.Layout = crt.NewCT_Layout()
		pa.Layout.ManualLayout = manualLayout(l.Layout(), l.IsInnerTarget())
	}
	fams, err := charttype.Families(c)
	if err != nil {
		return nil, errors.Wrap(err, "ooxml")
	}
	for _, f := range fams {
		ap, _ := f.ChartFormat().Parent().(*chart.AxisParent)
		ch, err := group(f, axisIDs(ap))
		if err != nil {
			return nil, err
		}
		pa.Choice = append(pa.Choice, ch)
	}

	axes := crt.NewCT_PlotAreaChoice1()
	for _, ap := range c.AxisParents() {
		ids := axisIDs(ap)
		for i, a := range ap.Axes() {
			cross := ids[0]
			if i == 0 && len(ids) > 1 {
				cross = ids[1]
			}
			addAxis(axes, a, i, ids[i], cross)
		}
	}
	if len(axes.CatAx)+len(axes.ValAx)+len(axes.SerAx) > 0 {
		pa.CChoice = axes
	}

	for _, ap := range c.AxisParents() {
		if p, ok := chart.FindFirstChild(ap, chart.OpPlotArea).(*chart.PlotArea); ok && p.Frame() != nil {
			pa.SpPr = shapeProperties(p.Frame())
			break
		}
	}
	return pa, nil
}

func axisIDs(ap *chart.AxisParent) []uint32 {
	if ap == nil {
		return nil
	}
	var ids []uint32
	for i, a := range ap.Axes() {
		ids = append(ids, axisID(ap.Index(), a.Type(), i))
	}
	return ids
}

func axIDs(ids []uint32) []*crt.CT_UnsignedInt {
	out := make([]*crt.CT_UnsignedInt, len(ids))
	for i, id := range ids {
		out[i] = unsignedInt(id)
	}
	return out
}

func group(f charttype.Family, ids []uint32) (*crt.CT_PlotAreaChoice, error) {
	ch := crt.NewCT_PlotAreaChoice()
	varied := boolean(f.ChartFormat().IsVaried())
	switch f := f.(type) {
	case *charttype.Bar:
		dir := crt.NewCT_BarDir()
		dir.ValAttr = crt.ST_BarDirCol
		if f.IsHorizontal() {
			dir.ValAttr = crt.ST_BarDirBar
		}
		grouping := crt.NewCT_BarGrouping()
		grouping.ValAttr = barGroupings[f.Grouping()]
		gap := crt.NewCT_GapAmount()
		gap.ValAttr = &crt.ST_GapAmount{ST_GapAmountUShort: ptr(uint16(f.Record().Gap()))}
		if f.Is3D() {
			b := crt.NewCT_Bar3DChart()
			b.BarDir, b.Grouping, b.VaryColors, b.GapWidth = dir, grouping, varied, gap
			b.Shape = crt.NewCT_Shape()
			b.Shape.ValAttr = barShapes[f.Shape()]
			b.AxId = axIDs(ids)
			ch.Bar3DChart = b
		} else {
			b := crt.NewCT_BarChart()
			b.BarDir, b.Grouping, b.VaryColors, b.GapWidth = dir, grouping, varied, gap
			b.Overlap = crt.NewCT_Overlap()
			b.Overlap.ValAttr = &crt.ST_Overlap{ST_OverlapByte: ptr(int8(f.Record().Overlap()))}
			b.AxId = axIDs(ids)
			ch.BarChart = b
		}
	case *charttype.Line:
		grouping := crt.NewCT_Grouping()
		grouping.ValAttr = groupings[f.Grouping()]
		if f.Is3D() {
			l := crt.NewCT_Line3DChart()
			l.Grouping, l.VaryColors, l.AxId = grouping, varied, axIDs(ids)
			ch.Line3DChart = l
		} else {
			l := crt.NewCT_LineChart()
			l.Grouping, l.VaryColors, l.AxId = grouping, varied, axIDs(ids)
			ch.LineChart = l
		}
	case *charttype.Area:
		grouping := crt.NewCT_Grouping()
		grouping.ValAttr = groupings[f.Grouping()]
		if f.Is3D() {
			a := crt.NewCT_Area3DChart()
			a.Grouping, a.VaryColors, a.AxId = grouping, varied, axIDs(ids)
			ch.Area3DChart = a
		} else {
			a := crt.NewCT_AreaChart()
			a.Grouping, a.VaryColors, a.AxId = grouping, varied, axIDs(ids)
			ch.AreaChart = a
		}
	case *charttype.Pie:
		angle := crt.NewCT_FirstSliceAng()
		angle.ValAttr = ptr(uint16(f.Record().StartAngle()))
		switch f.ElementName() {
		case "doughnutChart":
			d := crt.NewCT_DoughnutChart()
			d.VaryColors, d.FirstSliceAng = varied, angle
			d.HoleSize = crt.NewCT_HoleSize()
			d.HoleSize.ValAttr = &crt.ST_HoleSize{ST_HoleSizeUByte: ptr(uint8(f.Record().DonutSize()))}
			ch.DoughnutChart = d
		case "pie3DChart":
			p := crt.NewCT_Pie3DChart()
			p.VaryColors = varied
			ch.Pie3DChart = p
		default:
			p := crt.NewCT_PieChart()
			p.VaryColors, p.FirstSliceAng = varied, angle
			ch.PieChart = p
		}
	case *charttype.OfPie:
		ch.OfPieChart = ofPie(f.Record(), varied)
	case *charttype.Scatter:
		if f.ElementName() == "bubbleChart" {
			b := crt.NewCT_BubbleChart()
			b.VaryColors = varied
			b.ShowNegBubbles = boolean(f.Record().ShowNegativeBubbles())
			b.AxId = axIDs(ids)
			ch.BubbleChart = b
		} else {
			s := crt.NewCT_ScatterChart()
			s.ScatterStyle = crt.NewCT_ScatterStyle()
			s.ScatterStyle.ValAttr = crt.ST_ScatterStyleLineMarker
			s.VaryColors, s.AxId = varied, axIDs(ids)
			ch.ScatterChart = s
		}
	case *charttype.Radar:
		r := crt.NewCT_RadarChart()
		r.RadarStyle = crt.NewCT_RadarStyle()
		r.RadarStyle.ValAttr = crt.ST_RadarStyleMarker
		if f.Style() == "filled" {
			r.RadarStyle.ValAttr = crt.ST_RadarStyleFilled
		}
		r.VaryColors, r.AxId = varied, axIDs(ids)
		ch.RadarChart = r
	case *charttype.Surface:
		if f.Is3D() {
			s := crt.NewCT_Surface3DChart()
			s.Wireframe, s.AxId = boolean(f.IsWireframe()), axIDs(ids)
			ch.Surface3DChart = s
		} else {
			s := crt.NewCT_SurfaceChart()
			s.Wireframe, s.AxId = boolean(f.IsWireframe()), axIDs(ids)
			ch.SurfaceChart = s
		}
	default:
		return nil, errors.Errorf("ooxml: no element for %v chart groups", f.Kind())
	}
	return ch, nil
}

var barGroupings = map[charttype.Grouping]crt.ST_BarGrouping{
	charttype.Standard:       crt.ST_BarGroupingStandard,
	charttype.Clustered:      crt.ST_BarGroupingClustered,
	charttype.Stacked:        crt.ST_BarGroupingStacked,
	charttype.PercentStacked: crt.ST_BarGroupingPercentStacked,
}

var groupings = map[charttype.Grouping]crt.ST_Grouping{
	charttype.Standard:       crt.ST_GroupingStandard,
	charttype.Clustered:      crt.ST_GroupingStandard,
	charttype.Stacked:        crt.ST_GroupingStacked,
	charttype.PercentStacked: crt.ST_GroupingPercentStacked,
}

var barShapes = map[charttype.BarShape]crt.ST_Shape{
	charttype.ShapeBox:          crt.ST_ShapeBox,
	charttype.ShapePyramid:      crt.ST_ShapePyramid,
	charttype.ShapePyramidToMax: crt.ST_ShapePyramidToMax,
	charttype.ShapeCylinder:     crt.ST_ShapeCylinder,
	charttype.ShapeCone:         crt.ST_ShapeCone,
	charttype.ShapeConeToMax:    crt.ST_ShapeConeToMax,
}

func ofPie(bp *chart.BopPop, varied *crt.CT_Boolean) *crt.CT_OfPieChart {
	o := crt.NewCT_OfPieChart()
	o.OfPieType = crt.NewCT_OfPieType()
	o.OfPieType.ValAttr = crt.ST_OfPieTypePie
	if bp.Type() == chart.BarOfPie {
		o.OfPieType.ValAttr = crt.ST_OfPieTypeBar
	}
	o.VaryColors = varied
	o.SplitType = crt.NewCT_SplitType()
	if bp.IsAutoSplit() {
		o.SplitType.ValAttr = crt.ST_SplitTypeAuto
		return o
	}
	switch s := bp.Split().(type) {
	case chart.SplitByPosition:
		o.SplitType.ValAttr = crt.ST_SplitTypePos
		o.SplitPos = double(float64(s.Count))
	case chart.SplitByValue:
		o.SplitType.ValAttr = crt.ST_SplitTypeVal
		o.SplitPos = double(s.Threshold)
	case chart.SplitByPercent:
		o.SplitType.ValAttr = crt.ST_SplitTypePercent
		o.SplitPos = double(float64(s.Percent))
	default:
		o.SplitType.ValAttr = crt.ST_SplitTypeCust
	}
	return o
}

// axisParts holds the elements CT_CatAx, CT_ValAx and CT_SerAx share.
type axisParts struct {
	scaling        *crt.CT_Scaling
	axPos          *crt.CT_AxPos
	majorGridlines *crt.CT_ChartLines
	minorGridlines *crt.CT_ChartLines
	title          *crt.CT_Title
	majorTickMark  *crt.CT_TickMark
	minorTickMark  *crt.CT_TickMark
	tickLblPos     *crt.CT_TickLblPos
	spPr           *dml.CT_ShapeProperties
}

func parts(a *chart.Axis, n int) axisParts {
	var p axisParts
	p.scaling = crt.NewCT_Scaling()
	p.scaling.Orientation = crt.NewCT_Orientation()
	p.scaling.Orientation.ValAttr = crt.ST_OrientationMinMax

	p.axPos = crt.NewCT_AxPos()
	switch {
	case a.Type() == chart.ValueAxis && n == 0:
		p.axPos.ValAttr = crt.ST_AxPosB
	case a.Type() == chart.ValueAxis:
		p.axPos.ValAttr = crt.ST_AxPosL
	case a.Type() == chart.SeriesAxis:
		p.axPos.ValAttr = crt.ST_AxPosR
	default:
		p.axPos.ValAttr = crt.ST_AxPosB
	}

	if gl := a.AxisLine(chart.AxisLineMajorGridlines); gl != nil {
		p.majorGridlines = crt.NewCT_ChartLines()
		if lf := gl.LineFormat(); lf != nil && !lf.IsAuto() {
			p.majorGridlines.SpPr = dml.NewCT_ShapeProperties()
			p.majorGridlines.SpPr.Ln = lineProperties(lf)
		}
	}
	if a.AxisLine(chart.AxisLineMinorGridlines) != nil {
		p.minorGridlines = crt.NewCT_ChartLines()
	}
	if ap, ok := a.Parent().(*chart.AxisParent); ok {
		if c := a.Chart(); c != nil && ap.Index() == 0 {
			if t := c.AxisTitle(a.Type()); t != nil {
				p.title = title(t)
			}
		}
	}
	if tick := a.Tick(); tick != nil {
		p.majorTickMark = crt.NewCT_TickMark()
		p.majorTickMark.ValAttr = tickMarks[tick.MajorTickMark()]
		p.minorTickMark = crt.NewCT_TickMark()
		p.minorTickMark.ValAttr = tickMarks[tick.MinorTickMark()]
		p.tickLblPos = crt.NewCT_TickLblPos()
		p.tickLblPos.ValAttr = tickLabels[tick.LabelPosition()]
	}
	if al := a.AxisLine(chart.AxisLineAxis); al != nil {
		if lf := al.LineFormat(); lf != nil && !lf.IsAuto() {
			p.spPr = dml.NewCT_ShapeProperties()
			p.spPr.Ln = lineProperties(lf)
		}
	}
	return p
}

func addAxis(axes *crt.CT_PlotAreaChoice1, a *chart.Axis, n int, id, cross uint32) {
	p := parts(a, n)
	switch a.Type() {
	case chart.ValueAxis:
		ax := crt.NewCT_ValAx()
		ax.AxId, ax.CrossAx = unsignedInt(id), unsignedInt(cross)
		if vr := a.ValueRange(); vr != nil {
			if vr.IsReversed() {
				p.scaling.Orientation.ValAttr = crt.ST_OrientationMaxMin
			}
			if v, auto := vr.Min(); !auto {
				p.scaling.Min = double(v)
			}
			if v, auto := vr.Max(); !auto {
				p.scaling.Max = double(v)
			}
			if vr.IsLog() {
				p.scaling.LogBase = crt.NewCT_LogBase()
				p.scaling.LogBase.ValAttr = 10
			}
			if v, auto := vr.MajorUnit(); !auto {
				ax.MajorUnit = crt.NewCT_AxisUnit()
				ax.MajorUnit.ValAttr = v
			}
			if v, auto := vr.MinorUnit(); !auto {
				ax.MinorUnit = crt.NewCT_AxisUnit()
				ax.MinorUnit.ValAttr = v
			}
		}
		ax.CrossBetween = crt.NewCT_CrossBetween()
		ax.CrossBetween.ValAttr = crt.ST_CrossBetweenBetween
		ax.Scaling, ax.Delete, ax.AxPos = p.scaling, boolean(false), p.axPos
		ax.MajorGridlines, ax.MinorGridlines, ax.Title = p.majorGridlines, p.minorGridlines, p.title
		ax.MajorTickMark, ax.MinorTickMark, ax.TickLblPos = p.majorTickMark, p.minorTickMark, p.tickLblPos
		ax.SpPr = p.spPr
		axes.ValAx = append(axes.ValAx, ax)
	case chart.SeriesAxis:
		ax := crt.NewCT_SerAx()
		ax.AxId, ax.CrossAx = unsignedInt(id), unsignedInt(cross)
		if csr := a.CatSerRange(); csr != nil && csr.IsReversed() {
			p.scaling.Orientation.ValAttr = crt.ST_OrientationMaxMin
		}
		ax.Scaling, ax.Delete, ax.AxPos = p.scaling, boolean(false), p.axPos
		ax.MajorGridlines, ax.MinorGridlines, ax.Title = p.majorGridlines, p.minorGridlines, p.title
		ax.MajorTickMark, ax.MinorTickMark, ax.TickLblPos = p.majorTickMark, p.minorTickMark, p.tickLblPos
		ax.SpPr = p.spPr
		axes.SerAx = append(axes.SerAx, ax)
	default:
		ax := crt.NewCT_CatAx()
		ax.AxId, ax.CrossAx = unsignedInt(id), unsignedInt(cross)
		if csr := a.CatSerRange(); csr != nil {
			if csr.IsReversed() {
				p.scaling.Orientation.ValAttr = crt.ST_OrientationMaxMin
			}
			ax.TickLblSkip = crt.NewCT_Skip()
			ax.TickLblSkip.ValAttr = uint32(csr.LabelInterval())
			ax.TickMarkSkip = crt.NewCT_Skip()
			ax.TickMarkSkip.ValAttr = uint32(csr.MarkInterval())
		}
		ax.Scaling, ax.Delete, ax.AxPos = p.scaling, boolean(false), p.axPos
		ax.MajorGridlines, ax.MinorGridlines, ax.Title = p.majorGridlines, p.minorGridlines, p.title
		ax.MajorTickMark, ax.MinorTickMark, ax.TickLblPos = p.majorTickMark, p.minorTickMark, p.tickLblPos
		ax.SpPr = p.spPr
		axes.CatAx = append(axes.CatAx, ax)
	}
}

func legend(l *chart.Legend) *crt.CT_Legend {
	lg := crt.NewCT_Legend()
	lg.LegendPos = crt.NewCT_LegendPos()
	lg.LegendPos.ValAttr = crt.ST_LegendPosR
	if v, ok := legendPositions[l.Position()]; ok {
		lg.LegendPos.ValAttr = v
	}
	if lay := l.Layout(); lay != nil && !lay.Layout().IsAuto() {
		lg.Layout = crt.NewCT_Layout()
		lg.Layout.ManualLayout = manualLayout(lay.Layout(), false)
	}
	lg.Overlay = boolean(false)
	return lg
}

func manualLayout(l chart.ManualLayout, inner bool) *crt.CT_ManualLayout {
	ml := crt.NewCT_ManualLayout()
	if inner {
		ml.LayoutTarget = crt.NewCT_LayoutTarget()
		ml.LayoutTarget.ValAttr = crt.ST_LayoutTargetInner
	}
	mode := func(m chart.LayoutMode) *crt.CT_LayoutMode {
		v, ok := layoutModes[m]
		if !ok {
			return nil
		}
		lm := crt.NewCT_LayoutMode()
		lm.ValAttr = v
		return lm
	}
	value := func(m chart.LayoutMode, v float64) *crt.CT_Double {
		if m == chart.LayoutAuto {
			return nil
		}
		return double(v)
	}
	ml.XMode, ml.YMode = mode(l.XMode), mode(l.YMode)
	ml.WMode, ml.HMode = mode(l.WMode), mode(l.HMode)
	ml.X, ml.Y = value(l.XMode, l.X), value(l.YMode, l.Y)
	ml.W, ml.H = value(l.WMode, l.W), value(l.HMode, l.H)
	return ml
}

func shapeProperties(f *chart.Frame) *dml.CT_ShapeProperties {
	sp := dml.NewCT_ShapeProperties()
	if af := f.AreaFormat(); af != nil && !af.IsAuto() {
		if af.Pattern() == chart.FillNone {
			sp.NoFill = dml.NewCT_NoFillProperties()
		} else {
			sp.SolidFill = solidFill(af.ForegroundColor())
		}
	}
	if lf := f.LineFormat(); lf != nil && !lf.IsAuto() {
		sp.Ln = lineProperties(lf)
	}
	return sp
}

func lineProperties(lf *chart.LineFormat) *dml.CT_LineProperties {
	ln := dml.NewCT_LineProperties()
	if lf.Pattern() == chart.LineNone {
		ln.NoFill = dml.NewCT_NoFillProperties()
		return ln
	}
	ln.WAttr = ptr(lineWidth(lf.Weight()))
	ln.SolidFill = solidFill(lf.ResolvedColor())
	if d, ok := dashes[lf.Pattern()]; ok {
		ln.PrstDash = dml.NewCT_PresetLineDashProperties()
		ln.PrstDash.ValAttr = d
	}
	return ln
}
