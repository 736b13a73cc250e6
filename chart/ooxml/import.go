package ooxml

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/unidoc/unioffice/schema/soo/dml"
	crt "github.com/unidoc/unioffice/schema/soo/dml/chart"
	"github.com/yamitzky/xlchart-go/chart"
)

// Unmarshal parses a chartSpace document and applies it to c.
func Unmarshal(data []byte, c *chart.Chart) error {
	cs := crt.NewChartSpace()
	if err := xml.Unmarshal(data, cs); err != nil {
		return errors.Wrap(err, "ooxml: parse chartSpace")
	}
	axes, err := plotAreaAxes(data)
	if err != nil {
		return errors.Wrap(err, "ooxml: parse axes")
	}
	if cs.Chart != nil && cs.Chart.PlotArea != nil {
		cs.Chart.PlotArea.CChoice = axes
	}
	return Apply(cs, c)
}

// plotAreaAxes collects every axis element of the first plot area.
// CT_PlotArea keeps only the last axis it decodes.
func plotAreaAxes(data []byte) (*crt.CT_PlotAreaChoice1, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "plotArea" {
			return decodeAxes(d)
		}
	}
}

func decodeAxes(d *xml.Decoder) (*crt.CT_PlotAreaChoice1, error) {
	axes := crt.NewCT_PlotAreaChoice1()
	n := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			var dst interface{}
			switch el.Name.Local {
			case "valAx":
				ax := crt.NewCT_ValAx()
				axes.ValAx = append(axes.ValAx, ax)
				dst = ax
			case "catAx":
				ax := crt.NewCT_CatAx()
				axes.CatAx = append(axes.CatAx, ax)
				dst = ax
			case "dateAx":
				ax := crt.NewCT_DateAx()
				axes.DateAx = append(axes.DateAx, ax)
				dst = ax
			case "serAx":
				ax := crt.NewCT_SerAx()
				axes.SerAx = append(axes.SerAx, ax)
				dst = ax
			default:
				if err := d.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			if err := d.DecodeElement(dst, &el); err != nil {
				return nil, errors.Wrapf(err, "%s", el.Name.Local)
			}
			n++
		case xml.EndElement:
			if n == 0 {
				return nil, nil
			}
			return axes, nil
		}
	}
}

// Apply overwrites the records of c with the settings of cs. Every change
// goes through the record setters. Chart groups are matched by position
// with the chart groups of c in drawing order; a group of another chart
// type gets a new type record and missing groups are added as overlays.
// A chartSpace decoded with xml.Unmarshal carries only its last axis;
// Unmarshal collects all of them.
func Apply(cs *crt.ChartSpace, c *chart.Chart) error {
	if cs.Chart == nil {
		return errors.New("ooxml: chartSpace has no chart")
	}
	ch := cs.Chart

	if ch.Title != nil {
		if _, err := c.SetTitle(text(ch.Title.Tx)); err != nil {
			return err
		}
	} else if isTrue(ch.AutoTitleDeleted) {
		c.RemoveTitle()
	}

	if ch.PlotArea != nil {
		if err := applyPlotArea(ch.PlotArea, c); err != nil {
			return err
		}
	}
	if ch.View3D != nil {
		if err := applyView3D(ch.View3D, c.Chart3d()); err != nil {
			return err
		}
	}

	if ch.Legend == nil {
		c.RemoveLegend()
	} else {
		l, err := c.AddLegend()
		if err != nil {
			return err
		}
		if ch.Legend.LegendPos != nil {
			if p, ok := lookup(legendPositions, ch.Legend.LegendPos.ValAttr); ok {
				if err := l.SetPosition(p); err != nil {
					return err
				}
			}
		}
	}

	if sp := c.ShtProps(); sp != nil {
		if ch.PlotVisOnly != nil {
			sp.SetPlotVisibleOnly(isTrue(ch.PlotVisOnly))
		}
		if ch.DispBlanksAs != nil {
			if m, ok := lookup(blankModes, ch.DispBlanksAs.ValAttr); ok {
				if err := sp.SetBlankMode(m); err != nil {
					return err
				}
			}
		}
	}
	if cs.SpPr != nil {
		if f, ok := chart.FindFirstChild(c.Root(), chart.OpFrame).(*chart.Frame); ok {
			applyShapeProperties(cs.SpPr, f)
		}
	}
	return nil
}

// text joins the runs of a rich text title.
func text(tx *crt.CT_Tx) string {
	if tx == nil || tx.Choice == nil || tx.Choice.Rich == nil {
		return ""
	}
	var lines []string
	for _, p := range tx.Choice.Rich.P {
		var sb strings.Builder
		for _, r := range p.EG_TextRun {
			if r.R != nil {
				sb.WriteString(r.R.T)
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func applyView3D(v *crt.CT_View3D, c3 *chart.Chart3d) error {
	if c3 == nil {
		return nil
	}
	if v.RotX != nil && v.RotX.ValAttr != nil {
		if err := c3.SetElevation(int(*v.RotX.ValAttr)); err != nil {
			return err
		}
	}
	if v.RotY != nil && v.RotY.ValAttr != nil {
		if err := c3.SetRotation(int(*v.RotY.ValAttr)); err != nil {
			return err
		}
	}
	if v.RAngAx != nil {
		c3.SetPerspectiveOn(!isTrue(v.RAngAx))
	}
	if v.Perspective != nil && v.Perspective.ValAttr != nil {
		p := int(*v.Perspective.ValAttr)
		if p > 100 {
			p = 100
		}
		if err := c3.SetPerspective(p); err != nil {
			return err
		}
	}
	return nil
}

// groupOpcode returns the chart type record opcode for a plot area choice.
func groupOpcode(ch *crt.CT_PlotAreaChoice) (uint16, bool) {
	switch {
	case ch.BarChart != nil || ch.Bar3DChart != nil:
		return chart.OpBar, true
	case ch.LineChart != nil || ch.Line3DChart != nil:
		return chart.OpLine, true
	case ch.AreaChart != nil || ch.Area3DChart != nil:
		return chart.OpArea, true
	case ch.PieChart != nil || ch.Pie3DChart != nil || ch.DoughnutChart != nil:
		return chart.OpPie, true
	case ch.OfPieChart != nil:
		return chart.OpBopPop, true
	case ch.ScatterChart != nil || ch.BubbleChart != nil:
		return chart.OpScatter, true
	case ch.RadarChart != nil:
		if ch.RadarChart.RadarStyle != nil && ch.RadarChart.RadarStyle.ValAttr == crt.ST_RadarStyleFilled {
			return chart.OpRadarArea, true
		}
		return chart.OpRadar, true
	case ch.SurfaceChart != nil || ch.Surface3DChart != nil:
		return chart.OpSurf, true
	}
	return 0, false
}

func applyPlotArea(pa *crt.CT_PlotArea, c *chart.Chart) error {
	if pa.Layout != nil && pa.Layout.ManualLayout != nil {
		l, inner := layout(pa.Layout.ManualLayout)
		if _, err := c.SetPlotAreaLayout(l, inner); err != nil {
			return err
		}
	}

	for i, ch := range pa.Choice {
		op, ok := groupOpcode(ch)
		if !ok {
			continue
		}
		cf := c.ChartFormat(i)
		if cf == nil {
			var err error
			if cf, err = c.CreateOverlayChart(i, op); err != nil {
				return err
			}
		} else if t := cf.TypeRecord(); t == nil || t.Opcode() != op {
			rec, err := chart.New(op)
			if err != nil {
				return err
			}
			if err := cf.SetTypeRecord(rec.(chart.TypeRecord)); err != nil {
				return err
			}
		}
		if err := applyGroup(ch, cf); err != nil {
			return errors.Wrapf(err, "ooxml: chart group %d", i)
		}
	}

	if pa.CChoice != nil {
		if err := applyAxes(pa.CChoice, c); err != nil {
			return err
		}
	}
	if pa.SpPr != nil {
		for _, ap := range c.AxisParents() {
			if p, ok := chart.FindFirstChild(ap, chart.OpPlotArea).(*chart.PlotArea); ok && p.Frame() != nil {
				applyShapeProperties(pa.SpPr, p.Frame())
				break
			}
		}
	}
	return nil
}

func applyGrouping(s chart.Stacker, stacked, percent bool) {
	switch {
	case percent:
		s.Set100Percent(true)
	case stacked:
		s.SetStacked(true)
		s.Set100Percent(false)
	default:
		s.SetStacked(false)
	}
}

func applyVaried(cf *chart.ChartFormat, b *crt.CT_Boolean) {
	if b != nil {
		cf.SetVaried(isTrue(b))
	}
}

func applyGroup(ch *crt.CT_PlotAreaChoice, cf *chart.ChartFormat) error {
	rec := cf.TypeRecord()
	switch {
	case ch.BarChart != nil || ch.Bar3DChart != nil:
		bar := rec.(*chart.Bar)
		dir, grouping, varied, gap := barFields(ch)
		if dir != nil {
			bar.SetHorizontal(dir.ValAttr == crt.ST_BarDirBar)
		}
		if grouping != nil {
			g := grouping.ValAttr
			applyGrouping(bar, g == crt.ST_BarGroupingStacked, g == crt.ST_BarGroupingPercentStacked)
		}
		applyVaried(cf, varied)
		if gap != nil && gap.ValAttr != nil && gap.ValAttr.ST_GapAmountUShort != nil {
			if err := bar.SetGap(int(*gap.ValAttr.ST_GapAmountUShort)); err != nil {
				return err
			}
		}
		if ch.BarChart != nil && ch.BarChart.Overlap != nil && ch.BarChart.Overlap.ValAttr != nil &&
			ch.BarChart.Overlap.ValAttr.ST_OverlapByte != nil {
			if err := bar.SetOverlap(int(*ch.BarChart.Overlap.ValAttr.ST_OverlapByte)); err != nil {
				return err
			}
		}
	case ch.LineChart != nil || ch.Line3DChart != nil || ch.AreaChart != nil || ch.Area3DChart != nil:
		grouping, varied := stackFields(ch)
		if grouping != nil {
			g := grouping.ValAttr
			applyGrouping(rec.(chart.Stacker), g == crt.ST_GroupingStacked, g == crt.ST_GroupingPercentStacked)
		}
		applyVaried(cf, varied)
	case ch.PieChart != nil || ch.Pie3DChart != nil || ch.DoughnutChart != nil:
		return applyPie(ch, cf, rec.(*chart.Pie))
	case ch.OfPieChart != nil:
		return applyOfPie(ch.OfPieChart, cf, rec.(*chart.BopPop))
	case ch.ScatterChart != nil:
		rec.(*chart.Scatter).SetBubble(false)
		applyVaried(cf, ch.ScatterChart.VaryColors)
	case ch.BubbleChart != nil:
		sc := rec.(*chart.Scatter)
		sc.SetBubble(true)
		if ch.BubbleChart.ShowNegBubbles != nil {
			sc.SetShowNegativeBubbles(isTrue(ch.BubbleChart.ShowNegBubbles))
		}
		applyVaried(cf, ch.BubbleChart.VaryColors)
	case ch.RadarChart != nil:
		applyVaried(cf, ch.RadarChart.VaryColors)
	case ch.SurfaceChart != nil:
		if ch.SurfaceChart.Wireframe != nil {
			rec.(*chart.Surf).SetFilled(!isTrue(ch.SurfaceChart.Wireframe))
		}
	case ch.Surface3DChart != nil:
		if ch.Surface3DChart.Wireframe != nil {
			rec.(*chart.Surf).SetFilled(!isTrue(ch.Surface3DChart.Wireframe))
		}
	}
	return nil
}

func barFields(ch *crt.CT_PlotAreaChoice) (*crt.CT_BarDir, *crt.CT_BarGrouping, *crt.CT_Boolean, *crt.CT_GapAmount) {
	if b := ch.BarChart; b != nil {
		return b.BarDir, b.Grouping, b.VaryColors, b.GapWidth
	}
	b := ch.Bar3DChart
	return b.BarDir, b.Grouping, b.VaryColors, b.GapWidth
}

func stackFields(ch *crt.CT_PlotAreaChoice) (*crt.CT_Grouping, *crt.CT_Boolean) {
	switch {
	case ch.LineChart != nil:
		return ch.LineChart.Grouping, ch.LineChart.VaryColors
	case ch.Line3DChart != nil:
		return ch.Line3DChart.Grouping, ch.Line3DChart.VaryColors
	case ch.AreaChart != nil:
		return ch.AreaChart.Grouping, ch.AreaChart.VaryColors
	}
	return ch.Area3DChart.Grouping, ch.Area3DChart.VaryColors
}

func applyPie(ch *crt.CT_PlotAreaChoice, cf *chart.ChartFormat, pie *chart.Pie) error {
	var angle *crt.CT_FirstSliceAng
	switch {
	case ch.PieChart != nil:
		angle = ch.PieChart.FirstSliceAng
		applyVaried(cf, ch.PieChart.VaryColors)
		if err := pie.SetDonutSize(0); err != nil {
			return err
		}
	case ch.Pie3DChart != nil:
		applyVaried(cf, ch.Pie3DChart.VaryColors)
	default:
		d := ch.DoughnutChart
		angle = d.FirstSliceAng
		applyVaried(cf, d.VaryColors)
		hole := 50
		if d.HoleSize != nil && d.HoleSize.ValAttr != nil && d.HoleSize.ValAttr.ST_HoleSizeUByte != nil {
			hole = int(*d.HoleSize.ValAttr.ST_HoleSizeUByte)
		}
		if err := pie.SetDonutSize(hole); err != nil {
			return err
		}
	}
	if angle != nil && angle.ValAttr != nil {
		return pie.SetStartAngle(int(*angle.ValAttr))
	}
	return nil
}

func applyOfPie(o *crt.CT_OfPieChart, cf *chart.ChartFormat, bp *chart.BopPop) error {
	if o.OfPieType != nil {
		if o.OfPieType.ValAttr == crt.ST_OfPieTypeBar {
			bp.SetType(chart.BarOfPie)
		} else {
			bp.SetType(chart.PieOfPie)
		}
	}
	applyVaried(cf, o.VaryColors)
	if o.SplitType == nil {
		return nil
	}
	var pos float64
	if o.SplitPos != nil {
		pos = o.SplitPos.ValAttr
	}
	bp.SetAutoSplit(o.SplitType.ValAttr == crt.ST_SplitTypeAuto)
	switch o.SplitType.ValAttr {
	case crt.ST_SplitTypePos:
		return bp.SetSplit(chart.SplitByPosition{Count: int(pos)})
	case crt.ST_SplitTypeVal:
		return bp.SetSplit(chart.SplitByValue{Threshold: pos})
	case crt.ST_SplitTypePercent:
		return bp.SetSplit(chart.SplitByPercent{Percent: int(pos)})
	case crt.ST_SplitTypeCust:
		return bp.SetSplit(chart.SplitCustom{})
	}
	return nil
}

// axesOf returns the axes of the given type in axis group order.
func axesOf(c *chart.Chart, t chart.AxisType) []*chart.Axis {
	var out []*chart.Axis
	for _, ap := range c.AxisParents() {
		for _, a := range ap.Axes() {
			if a.Type() == t {
				out = append(out, a)
			}
		}
	}
	return out
}

// axisSettings are the imported elements the axis kinds share.
type axisSettings struct {
	deleted       *crt.CT_Boolean
	scaling       *crt.CT_Scaling
	title         *crt.CT_Title
	majorTickMark *crt.CT_TickMark
	minorTickMark *crt.CT_TickMark
	tickLblPos    *crt.CT_TickLblPos
}

func applyAxes(axes *crt.CT_PlotAreaChoice1, c *chart.Chart) error {
	type pending struct {
		axis *chart.Axis
		s    axisSettings
	}
	var todo []pending
	cats, vals, sers := axesOf(c, chart.CategoryAxis), axesOf(c, chart.ValueAxis), axesOf(c, chart.SeriesAxis)
	for i, ax := range axes.CatAx {
		if i < len(cats) {
			todo = append(todo, pending{cats[i], axisSettings{ax.Delete, ax.Scaling, ax.Title, ax.MajorTickMark, ax.MinorTickMark, ax.TickLblPos}})
			if csr := cats[i].CatSerRange(); csr != nil && ax.TickLblSkip != nil && ax.TickMarkSkip != nil {
				if err := csr.SetIntervals(csr.Crosses(), int(ax.TickLblSkip.ValAttr), int(ax.TickMarkSkip.ValAttr)); err != nil {
					return err
				}
			}
		}
	}
	// date axes are category axes in BIFF8
	for i, ax := range axes.DateAx {
		if j := len(axes.CatAx) + i; j < len(cats) {
			todo = append(todo, pending{cats[j], axisSettings{ax.Delete, ax.Scaling, ax.Title, ax.MajorTickMark, ax.MinorTickMark, ax.TickLblPos}})
		}
	}
	for i, ax := range axes.ValAx {
		if i >= len(vals) {
			break
		}
		todo = append(todo, pending{vals[i], axisSettings{ax.Delete, ax.Scaling, ax.Title, ax.MajorTickMark, ax.MinorTickMark, ax.TickLblPos}})
		if vr := vals[i].ValueRange(); vr != nil {
			if ax.MajorUnit != nil {
				vr.SetMajorUnit(ax.MajorUnit.ValAttr)
			}
			if ax.MinorUnit != nil {
				vr.SetMinorUnit(ax.MinorUnit.ValAttr)
			}
		}
	}
	for i, ax := range axes.SerAx {
		if i < len(sers) {
			todo = append(todo, pending{sers[i], axisSettings{ax.Delete, ax.Scaling, ax.Title, ax.MajorTickMark, ax.MinorTickMark, ax.TickLblPos}})
		}
	}

	for _, p := range todo {
		if err := applyAxis(p.axis, p.s); err != nil {
			return err
		}
	}
	return nil
}

func applyAxis(a *chart.Axis, s axisSettings) error {
	c := a.Chart()
	primary := false
	if ap, ok := a.Parent().(*chart.AxisParent); ok && c != nil {
		primary = ap.Index() == 0 && c.Axis(a.Type()) == a
	}
	if isTrue(s.deleted) {
		if primary {
			c.RemoveAxis(a.Type())
		}
		return nil
	}
	if sc := s.scaling; sc != nil {
		reversed := sc.Orientation != nil && sc.Orientation.ValAttr == crt.ST_OrientationMaxMin
		if vr := a.ValueRange(); vr != nil {
			vr.SetReversed(reversed)
			if sc.Min != nil {
				vr.SetMin(sc.Min.ValAttr)
			}
			if sc.Max != nil {
				vr.SetMax(sc.Max.ValAttr)
			}
			vr.SetLog(sc.LogBase != nil)
		} else if csr := a.CatSerRange(); csr != nil {
			csr.SetReversed(reversed)
		}
	}
	if tick := a.Tick(); tick != nil {
		major, minor := tick.MajorTickMark(), tick.MinorTickMark()
		if s.majorTickMark != nil {
			if m, ok := lookup(tickMarks, s.majorTickMark.ValAttr); ok {
				major = m
			}
		}
		if s.minorTickMark != nil {
			if m, ok := lookup(tickMarks, s.minorTickMark.ValAttr); ok {
				minor = m
			}
		}
		if err := tick.SetTickMarks(major, minor); err != nil {
			return err
		}
		if s.tickLblPos != nil {
			if p, ok := lookup(tickLabels, s.tickLblPos.ValAttr); ok {
				if err := tick.SetLabelPosition(p); err != nil {
					return err
				}
			}
		}
	}
	if s.title != nil && primary {
		if _, err := c.SetAxisTitle(a.Type(), text(s.title.Tx)); err != nil {
			return err
		}
	}
	return nil
}

func layout(ml *crt.CT_ManualLayout) (chart.ManualLayout, bool) {
	var l chart.ManualLayout
	mode := func(m *crt.CT_LayoutMode, v *crt.CT_Double) (chart.LayoutMode, float64) {
		if v == nil {
			return chart.LayoutAuto, 0
		}
		if m != nil {
			if lm, ok := lookup(layoutModes, m.ValAttr); ok {
				return lm, v.ValAttr
			}
		}
		return chart.LayoutFactor, v.ValAttr
	}
	l.XMode, l.X = mode(ml.XMode, ml.X)
	l.YMode, l.Y = mode(ml.YMode, ml.Y)
	l.WMode, l.W = mode(ml.WMode, ml.W)
	l.HMode, l.H = mode(ml.HMode, ml.H)
	inner := ml.LayoutTarget != nil && ml.LayoutTarget.ValAttr == crt.ST_LayoutTargetInner
	return l, inner
}

func applyShapeProperties(sp *dml.CT_ShapeProperties, f *chart.Frame) {
	if af := f.AreaFormat(); af != nil {
		switch {
		case sp.NoFill != nil:
			af.SetAuto(false)
			_ = af.SetPattern(chart.FillNone)
		case sp.SolidFill != nil:
			if c, ok := fillColor(sp.SolidFill); ok {
				af.SetAuto(false)
				_ = af.SetPattern(chart.FillSolid)
				af.SetForegroundColor(c)
			}
		}
	}
	if lf := f.LineFormat(); lf != nil && sp.Ln != nil {
		applyLine(sp.Ln, lf)
	}
}

func applyLine(ln *dml.CT_LineProperties, lf *chart.LineFormat) {
	if ln.NoFill != nil {
		lf.SetAuto(false)
		_ = lf.SetPattern(chart.LineNone)
		return
	}
	if c, ok := fillColor(ln.SolidFill); ok {
		lf.SetAuto(false)
		lf.SetAutoColor(false)
		lf.SetColor(c)
		if lf.Pattern() == chart.LineNone {
			_ = lf.SetPattern(chart.LineSolid)
		}
	}
	if ln.WAttr != nil {
		_ = lf.SetWeight(lineWeight(*ln.WAttr))
	}
	if ln.PrstDash != nil {
		if p, ok := lookup(dashes, ln.PrstDash.ValAttr); ok {
			_ = lf.SetPattern(p)
		}
	}
}
