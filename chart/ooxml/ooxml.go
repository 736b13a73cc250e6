// Package ooxml translates between the BIFF8 chart record tree and OOXML
// chart markup (c:chartSpace).
//
// The translation covers what both formats can express: the chart title,
// the 3-D view, the chart groups and their stacking, the axes, fills and
// lines of the chart and plot areas, the legend and the sheet flags.
// Series values live in worksheet cells and are not carried.
package ooxml

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/unidoc/unioffice/schema/soo/dml"
	crt "github.com/unidoc/unioffice/schema/soo/dml/chart"
	"github.com/yamitzky/xlchart-go/chart"
)

func ptr[T any](v T) *T { return &v }

func boolean(v bool) *crt.CT_Boolean {
	b := crt.NewCT_Boolean()
	b.ValAttr = ptr(v)
	return b
}

// isTrue reads a CT_Boolean, whose val attribute defaults to true.
func isTrue(b *crt.CT_Boolean) bool {
	return b != nil && (b.ValAttr == nil || *b.ValAttr)
}

func double(v float64) *crt.CT_Double {
	d := crt.NewCT_Double()
	d.ValAttr = v
	return d
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func parseHexColor(s string) (color.RGBA, bool) {
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, true
}

func solidFill(c color.RGBA) *dml.CT_SolidColorFillProperties {
	f := dml.NewCT_SolidColorFillProperties()
	f.SrgbClr = dml.NewCT_SRgbColor()
	f.SrgbClr.ValAttr = hexColor(c)
	return f
}

func fillColor(f *dml.CT_SolidColorFillProperties) (color.RGBA, bool) {
	if f == nil || f.SrgbClr == nil {
		return color.RGBA{}, false
	}
	return parseHexColor(f.SrgbClr.ValAttr)
}

// line widths in EMU by LineWeight, hairline first
var lineWidths = []int32{3175, 9525, 19050, 28575}

func lineWidth(w chart.LineWeight) int32 {
	i := int(w) + 1
	if i < 0 || i >= len(lineWidths) {
		return lineWidths[1]
	}
	return lineWidths[i]
}

func lineWeight(emu int32) chart.LineWeight {
	best := 0
	for i, w := range lineWidths {
		if abs(w-emu) < abs(lineWidths[best]-emu) {
			best = i
		}
	}
	return chart.LineWeight(best - 1)
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

var dashes = map[chart.LinePattern]dml.ST_PresetLineDashVal{
	chart.LineSolid:      dml.ST_PresetLineDashValSolid,
	chart.LineDash:       dml.ST_PresetLineDashValDash,
	chart.LineDot:        dml.ST_PresetLineDashValSysDot,
	chart.LineDashDot:    dml.ST_PresetLineDashValDashDot,
	chart.LineDashDotDot: dml.ST_PresetLineDashValLgDashDotDot,
}

var tickMarks = map[chart.TickMark]crt.ST_TickMark{
	chart.TickNone:    crt.ST_TickMarkNone,
	chart.TickInside:  crt.ST_TickMarkIn,
	chart.TickOutside: crt.ST_TickMarkOut,
	chart.TickCross:   crt.ST_TickMarkCross,
}

var tickLabels = map[chart.TickLabelPosition]crt.ST_TickLblPos{
	chart.TickLabelNone:   crt.ST_TickLblPosNone,
	chart.TickLabelLow:    crt.ST_TickLblPosLow,
	chart.TickLabelHigh:   crt.ST_TickLblPosHigh,
	chart.TickLabelNextTo: crt.ST_TickLblPosNextTo,
}

var legendPositions = map[chart.LegendPosition]crt.ST_LegendPos{
	chart.LegendBottom: crt.ST_LegendPosB,
	chart.LegendCorner: crt.ST_LegendPosTr,
	chart.LegendTop:    crt.ST_LegendPosT,
	chart.LegendRight:  crt.ST_LegendPosR,
	chart.LegendLeft:   crt.ST_LegendPosL,
}

var blankModes = map[chart.BlankMode]crt.ST_DispBlanksAs{
	chart.BlankGap:         crt.ST_DispBlanksAsGap,
	chart.BlankZero:        crt.ST_DispBlanksAsZero,
	chart.BlankInterpolate: crt.ST_DispBlanksAsSpan,
}

var layoutModes = map[chart.LayoutMode]crt.ST_LayoutMode{
	chart.LayoutFactor: crt.ST_LayoutModeFactor,
	chart.LayoutEdge:   crt.ST_LayoutModeEdge,
}

// lookup returns the key that maps to v.
func lookup[K comparable, V comparable](m map[K]V, v V) (K, bool) {
	for k, e := range m {
		if e == v {
			return k, true
		}
	}
	var zero K
	return zero, false
}
