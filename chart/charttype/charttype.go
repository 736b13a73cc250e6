// Package charttype derives chart family semantics from the decoded chart
// group records: stacking and clustering, bar shapes, and the OOXML element
// that represents the group.
package charttype

import (
	"github.com/pkg/errors"
	"github.com/yamitzky/xlchart-go/chart"
)

// Kind is a chart family.
type Kind int

const (
	KindBar Kind = iota
	KindLine
	KindPie
	KindArea
	KindScatter
	KindRadar
	KindSurface
	KindOfPie
)

var kindNames = []string{"bar", "line", "pie", "area", "scatter", "radar", "surface", "ofPie"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Grouping is how the series of a group relate to each other.
type Grouping string

const (
	Standard       Grouping = "standard"
	Clustered      Grouping = "clustered"
	Stacked        Grouping = "stacked"
	PercentStacked Grouping = "percentStacked"
)

// Family exposes the semantics of one chart group.
type Family interface {
	Kind() Kind
	IsStacked() bool
	Is100PercentStacked() bool
	// IsClustered reports whether the group is neither stacked nor 100%
	// stacked.
	IsClustered() bool
	Is3D() bool
	HasShadow() bool
	Grouping() Grouping
	// ElementName returns the local name of the OOXML element that holds
	// the group, such as "barChart" or "pie3DChart".
	ElementName() string
	// ChartFormat returns the chart group the family was derived from.
	ChartFormat() *chart.ChartFormat
}

// ErrNoType is returned for a chart group without a chart type record.
var ErrNoType = errors.New("charttype: chart group has no type record")

// For derives the family of a chart group.
func For(cf *chart.ChartFormat) (Family, error) {
	base := family{cf: cf, c3: cf.Chart3d()}
	switch t := cf.TypeRecord().(type) {
	case *chart.Bar:
		return &Bar{family: base, rec: t}, nil
	case *chart.Line:
		return &Line{family: base, rec: t}, nil
	case *chart.Area:
		return &Area{family: base, rec: t}, nil
	case *chart.Pie:
		return &Pie{family: base, rec: t}, nil
	case *chart.BopPop:
		return &OfPie{family: base, rec: t}, nil
	case *chart.Scatter:
		return &Scatter{family: base, rec: t}, nil
	case *chart.Radar:
		return &Radar{family: base, shadow: t, filled: false}, nil
	case *chart.RadarArea:
		return &Radar{family: base, shadow: t, filled: true}, nil
	case *chart.Surf:
		return &Surface{family: base, rec: t}, nil
	case nil:
		return nil, ErrNoType
	default:
		return nil, errors.Errorf("charttype: unsupported chart type %s", chart.Name(t.Opcode()))
	}
}

// Families returns the families of all chart groups of c in drawing order.
func Families(c *chart.Chart) ([]Family, error) {
	var out []Family
	for _, cf := range c.ChartFormats() {
		f, err := For(cf)
		if err != nil {
			return nil, errors.Wrapf(err, "chart group %d", cf.DrawingOrder())
		}
		out = append(out, f)
	}
	return out, nil
}

// family holds what every family shares.
type family struct {
	cf *chart.ChartFormat
	c3 *chart.Chart3d
}

func (f family) ChartFormat() *chart.ChartFormat { return f.cf }
func (f family) Is3D() bool                      { return f.c3 != nil }
func (f family) IsStacked() bool                 { return false }
func (f family) Is100PercentStacked() bool       { return false }
func (f family) IsClustered() bool               { return true }
func (f family) Grouping() Grouping              { return Standard }

func element(name string, is3D bool) string {
	if is3D {
		return name + "3DChart"
	}
	return name + "Chart"
}

// stacking implements the stacking queries over a record that has them.
type stacking struct {
	s chart.Stacker
}

func (s stacking) IsStacked() bool           { return s.s.IsStacked() && !s.s.Is100Percent() }
func (s stacking) Is100PercentStacked() bool { return s.s.Is100Percent() }
func (s stacking) IsClustered() bool         { return !s.s.IsStacked() && !s.s.Is100Percent() }

func (s stacking) grouping(clustered Grouping) Grouping {
	switch {
	case s.Is100PercentStacked():
		return PercentStacked
	case s.IsStacked():
		return Stacked
	}
	return clustered
}

// BarShape is the shape of the bars of a 3-D bar chart.
type BarShape string

const (
	ShapeBox          BarShape = "box"
	ShapePyramid      BarShape = "pyramid"
	ShapePyramidToMax BarShape = "pyramidToMax"
	ShapeCylinder     BarShape = "cylinder"
	ShapeCone         BarShape = "cone"
	ShapeConeToMax    BarShape = "coneToMax"
)

// ShapeOf maps a riser and taper to a bar shape.
func ShapeOf(riser chart.Riser, taper chart.Taper) BarShape {
	switch {
	case riser == chart.RiserEllipse && taper == chart.TaperPoint:
		return ShapeCone
	case riser == chart.RiserEllipse && taper == chart.TaperMax:
		return ShapeConeToMax
	case riser == chart.RiserEllipse:
		return ShapeCylinder
	case taper == chart.TaperPoint:
		return ShapePyramid
	case taper == chart.TaperMax:
		return ShapePyramidToMax
	}
	return ShapeBox
}

// Bar is a bar or column chart group.
type Bar struct {
	family
	rec *chart.Bar
}

func (f *Bar) st() stacking { return stacking{f.rec} }

func (f *Bar) Kind() Kind                { return KindBar }
func (f *Bar) IsStacked() bool           { return f.st().IsStacked() }
func (f *Bar) Is100PercentStacked() bool { return f.st().Is100PercentStacked() }
func (f *Bar) IsClustered() bool         { return f.st().IsClustered() }
func (f *Bar) HasShadow() bool           { return f.rec.HasShadow() }
func (f *Bar) ElementName() string       { return element("bar", f.Is3D()) }

// Grouping returns the OOXML grouping. Non-stacked 3-D bars drawn one
// behind the other are "standard"; side by side they are "clustered".
func (f *Bar) Grouping() Grouping {
	if f.Is3D() && !f.c3.IsClustered() && f.IsClustered() {
		return Standard
	}
	return f.st().grouping(Clustered)
}

// IsHorizontal reports whether the bars are horizontal.
func (f *Bar) IsHorizontal() bool { return f.rec.IsHorizontal() }

// Record returns the Bar record.
func (f *Bar) Record() *chart.Bar { return f.rec }

// Shape returns the shape of the bars. It is ShapeBox unless a series
// plotted in this chart group specifies another one.
func (f *Bar) Shape() BarShape {
	c := f.cf.Chart()
	if c == nil || c.Root() == nil {
		return ShapeBox
	}
	for _, s := range c.Series() {
		if s.ChartGroup() != f.cf.DrawingOrder() {
			continue
		}
		if found := chart.FindAll(s, chart.OpChart3DBarShape); len(found) > 0 {
			bs := found[0].(*chart.Chart3DBarShape)
			return ShapeOf(bs.Riser(), bs.Taper())
		}
	}
	return ShapeBox
}

// Line is a line chart group.
type Line struct {
	family
	rec *chart.Line
}

func (f *Line) Kind() Kind                { return KindLine }
func (f *Line) IsStacked() bool           { return stacking{f.rec}.IsStacked() }
func (f *Line) Is100PercentStacked() bool { return stacking{f.rec}.Is100PercentStacked() }
func (f *Line) IsClustered() bool         { return stacking{f.rec}.IsClustered() }
func (f *Line) HasShadow() bool           { return f.rec.HasShadow() }
func (f *Line) Grouping() Grouping        { return stacking{f.rec}.grouping(Standard) }
func (f *Line) ElementName() string       { return element("line", f.Is3D()) }

// Area is an area chart group.
type Area struct {
	family
	rec *chart.Area
}

func (f *Area) Kind() Kind                { return KindArea }
func (f *Area) IsStacked() bool           { return stacking{f.rec}.IsStacked() }
func (f *Area) Is100PercentStacked() bool { return stacking{f.rec}.Is100PercentStacked() }
func (f *Area) IsClustered() bool         { return stacking{f.rec}.IsClustered() }
func (f *Area) HasShadow() bool           { return f.rec.HasShadow() }
func (f *Area) Grouping() Grouping        { return stacking{f.rec}.grouping(Standard) }
func (f *Area) ElementName() string       { return element("area", f.Is3D()) }

// Pie is a pie or doughnut chart group.
type Pie struct {
	family
	rec *chart.Pie
}

func (f *Pie) Kind() Kind      { return KindPie }
func (f *Pie) HasShadow() bool { return f.rec.HasShadow() }

// ElementName returns "doughnutChart" for a pie with a hole.
func (f *Pie) ElementName() string {
	if f.rec.IsDoughnut() && !f.Is3D() {
		return "doughnutChart"
	}
	return element("pie", f.Is3D())
}

// Record returns the Pie record.
func (f *Pie) Record() *chart.Pie { return f.rec }

// OfPie is a bar-of-pie or pie-of-pie chart group.
type OfPie struct {
	family
	rec *chart.BopPop
}

func (f *OfPie) Kind() Kind          { return KindOfPie }
func (f *OfPie) HasShadow() bool     { return f.rec.HasShadow() }
func (f *OfPie) ElementName() string { return "ofPieChart" }

// Record returns the BopPop record.
func (f *OfPie) Record() *chart.BopPop { return f.rec }

// Scatter is a scatter or bubble chart group.
type Scatter struct {
	family
	rec *chart.Scatter
}

func (f *Scatter) Kind() Kind      { return KindScatter }
func (f *Scatter) HasShadow() bool { return f.rec.HasShadow() }

// ElementName returns "bubbleChart" for a bubble chart.
func (f *Scatter) ElementName() string {
	if f.rec.IsBubble() {
		return "bubbleChart"
	}
	return "scatterChart"
}

// Record returns the Scatter record.
func (f *Scatter) Record() *chart.Scatter { return f.rec }

// Radar is a radar or filled radar chart group.
type Radar struct {
	family
	shadow chart.Shadower
	filled bool
}

func (f *Radar) Kind() Kind          { return KindRadar }
func (f *Radar) HasShadow() bool     { return f.shadow.HasShadow() }
func (f *Radar) ElementName() string { return "radarChart" }

// Style returns the OOXML radar style.
func (f *Radar) Style() string {
	if f.filled {
		return "filled"
	}
	return "marker"
}

// Surface is a surface chart group.
type Surface struct {
	family
	rec *chart.Surf
}

func (f *Surface) Kind() Kind          { return KindSurface }
func (f *Surface) HasShadow() bool     { return false }
func (f *Surface) ElementName() string { return element("surface", f.Is3D()) }

// IsWireframe reports whether the surface is drawn as a wireframe.
func (f *Surface) IsWireframe() bool { return !f.rec.IsFilled() }
