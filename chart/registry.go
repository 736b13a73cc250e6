package chart

import (
	"fmt"
	"slices"
)

type descriptor struct {
	name      string
	prototype []byte
	factory   func() Record
}

var registry = map[uint16]*descriptor{}

// Register adds a record type. prototype is the payload New starts from;
// factory returns a zero value of the type. Registering an opcode twice
// replaces the earlier entry.
func Register(opcode uint16, name string, prototype []byte, factory func() Record) {
	registry[opcode] = &descriptor{name: name, prototype: prototype, factory: factory}
}

// FromBytes creates the record for opcode from a copy of data and decodes
// it. Opcodes without a registered type produce an *Unknown record that
// keeps the payload verbatim.
func FromBytes(opcode uint16, data []byte) (Record, error) {
	var r Record = &Unknown{}
	if d, ok := registry[opcode]; ok {
		r = d.factory()
	}
	b := r.node()
	b.opcode = opcode
	b.data = append([]byte{}, data...)
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

// New creates a record of a registered type from its prototype payload.
func New(opcode uint16) (Record, error) {
	d, ok := registry[opcode]
	if !ok {
		return nil, fmt.Errorf("chart: no record type registered for opcode 0x%04x", opcode)
	}
	return FromBytes(opcode, d.prototype)
}

// mustNew is New for the opcodes registered in this package.
func mustNew(opcode uint16) Record {
	r, err := New(opcode)
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the name of the record type, or a hex rendering of the
// opcode for unregistered types.
func Name(opcode uint16) string {
	if d, ok := registry[opcode]; ok {
		return d.name
	}
	return fmt.Sprintf("0x%04X", opcode)
}

// Registered returns the registered opcodes in ascending order.
func Registered() []uint16 {
	out := make([]uint16, 0, len(registry))
	for op := range registry {
		out = append(out, op)
	}
	slices.Sort(out)
	return out
}

// Prototype returns a copy of the prototype payload of a registered type.
func Prototype(opcode uint16) ([]byte, bool) {
	d, ok := registry[opcode]
	if !ok {
		return nil, false
	}
	return append([]byte{}, d.prototype...), true
}

func zeros(n int) []byte { return make([]byte, n) }

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func init() {
	opaque := func() Record { return &Unknown{} }

	Register(OpBegin, "Begin", nil, func() Record { return &Begin{} })
	Register(OpEnd, "End", nil, func() Record { return &End{} })
	Register(OpStartBlock, "StartBlock", []byte{0x52, 0x08, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, func() Record { return &StartBlock{} })
	Register(OpEndBlock, "EndBlock", []byte{0x53, 0x08, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, func() Record { return &EndBlock{} })
	Register(OpStartObject, "StartObject", nil, opaque)
	Register(OpEndObject, "EndObject", nil, opaque)
	Register(OpBOF, "BOF", nil, opaque)
	Register(OpEOF, "EOF", nil, opaque)

	// chart and layout
	Register(OpUnits, "Units", []byte{0, 0}, func() Record { return &Units{} })
	Register(OpChart, "Chart", cat(zeros(8), []byte{0, 0, 0xE0, 0x01, 0, 0, 0x20, 0x01}), func() Record { return &ChartRect{} })
	Register(OpChartFormat, "ChartFormat", zeros(20), func() Record { return &ChartFormat{} })
	Register(OpLegend, "Legend", cat(zeros(16), []byte{3, 1, 0x0F, 0}), func() Record { return &Legend{} })
	Register(OpFrame, "Frame", []byte{0, 0, 3, 0}, func() Record { return &Frame{} })
	Register(OpPlotArea, "PlotArea", nil, func() Record { return &PlotArea{} })
	Register(OpChart3d, "Chart3d", []byte{20, 0, 15, 0, 30, 0, 100, 0, 100, 0, 150, 0, 0, 0}, func() Record { return &Chart3d{} })
	Register(OpAxisParent, "AxisParent", zeros(18), func() Record { return &AxisParent{} })
	Register(OpLegendExcept, "LegendException", []byte{0, 0, 0, 0}, func() Record { return &LegendException{} })
	Register(OpShtProps, "ShtProps", []byte{2, 0, 0, 0}, func() Record { return &ShtProps{} })
	Register(OpAxesUsed, "AxesUsed", []byte{1, 0}, func() Record { return &AxesUsed{} })
	Register(OpPos, "Pos", cat([]byte{2, 0, 2, 0}, zeros(16)), func() Record { return &Pos{} })
	Register(OpPlotGrowth, "PlotGrowth", []byte{0, 0, 1, 0, 0, 0, 1, 0}, func() Record { return &PlotGrowth{} })
	Register(OpCrtLayout12, "CrtLayout12", cat([]byte{0x9D, 0x08}, zeros(58)), func() Record { return &CrtLayout12{} })
	Register(OpCrtLayout12A, "CrtLayout12A", cat([]byte{0xA7, 0x08}, zeros(14), []byte{1, 0}, zeros(50)), func() Record { return &CrtLayout12A{} })
	Register(OpScl, "Scl", []byte{1, 0, 1, 0}, func() Record { return &Scl{} })
	Register(OpDat, "Dat", []byte{0x0F, 0}, func() Record { return &Dat{} })
	Register(OpCrtLink, "CrtLink", zeros(10), func() Record { return &CrtLink{} })
	fbi := []byte{0x28, 0x23, 0x90, 0x15, 0xC8, 0, 0, 0, 5, 0}
	Register(OpFbi, "Fbi", fbi, func() Record { return &Fbi{} })
	Register(OpFbi2, "Fbi2", fbi, func() Record { return &Fbi{} })

	// chart groups
	Register(OpBar, "Bar", []byte{0, 0, 0x96, 0, 0, 0}, func() Record { return &Bar{} })
	Register(OpLine, "Line", []byte{0, 0}, func() Record { return &Line{} })
	Register(OpPie, "Pie", []byte{0, 0, 0, 0, 2, 0}, func() Record { return &Pie{} })
	Register(OpArea, "Area", []byte{0, 0}, func() Record { return &Area{} })
	Register(OpScatter, "Scatter", []byte{100, 0, 1, 0, 0, 0}, func() Record { return &Scatter{} })
	Register(OpRadar, "Radar", []byte{1, 0, 0, 0}, func() Record { return &Radar{} })
	Register(OpSurf, "Surf", []byte{0, 0}, func() Record { return &Surf{} })
	Register(OpRadarArea, "RadarArea", []byte{1, 0, 0, 0}, func() Record { return &RadarArea{} })
	Register(OpBopPop, "BopPop", cat([]byte{1, 1, 0, 0, 2, 0, 0, 0, 75, 0, 100, 0}, zeros(8), []byte{0, 0}), func() Record { return &BopPop{} })
	Register(OpChartLine, "CrtLine", []byte{0, 0}, func() Record { return &ChartLine{} })
	Register(OpDropBar, "DropBar", []byte{0x96, 0}, func() Record { return &DropBar{} })
	Register(OpSeriesList, "SeriesList", []byte{0, 0}, func() Record { return &SeriesList{} })

	// series and data points
	Register(OpSeries, "Series", []byte{1, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0}, func() Record { return &Series{} })
	Register(OpDataFormat, "DataFormat", []byte{0xFF, 0xFF, 0, 0, 0, 0, 0, 0}, func() Record { return &DataFormat{} })
	Register(OpLineFormat, "LineFormat", []byte{0, 0, 0, 0, 0, 0, 0xFF, 0xFF, 9, 0, 0x4D, 0}, func() Record { return &LineFormat{} })
	Register(OpMarkerFormat, "MarkerFormat", []byte{0, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0, 1, 0, 1, 0, 0x4D, 0, 0x4E, 0, 0x64, 0, 0, 0}, func() Record { return &MarkerFormat{} })
	Register(OpAreaFormat, "AreaFormat", []byte{0xFF, 0xFF, 0xFF, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0x4E, 0, 0x4D, 0}, func() Record { return &AreaFormat{} })
	Register(OpPieFormat, "PieFormat", []byte{0, 0}, func() Record { return &PieFormat{} })
	Register(OpAttachedLabel, "AttachedLabel", []byte{0, 0}, func() Record { return &AttachedLabel{} })
	Register(OpSeriesText, "SeriesText", []byte{0, 0, 0, 0}, func() Record { return &SeriesText{} })
	Register(OpSerToCrt, "SerToCrt", []byte{0, 0}, func() Record { return &SerToCrt{} })
	Register(OpSerParent, "SerParent", []byte{1, 0}, func() Record { return &SerParent{} })
	Register(OpSerAuxTrend, "SerAuxTrend", cat([]byte{0, 2}, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, zeros(18)), func() Record { return &SerAuxTrend{} })
	Register(OpSerAuxErrBar, "SerAuxErrBar", []byte{3, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0x14, 0x40, 0, 0}, func() Record { return &SerAuxErrBar{} })
	Register(OpSerFmt, "SerFmt", []byte{0, 0}, func() Record { return &SerFmt{} })
	Register(OpChart3DBarShape, "Chart3DBarShape", []byte{0, 0}, func() Record { return &Chart3DBarShape{} })
	Register(OpSIIndex, "SIIndex", []byte{1, 0}, func() Record { return &SIIndex{} })
	Register(OpBRAI, "BRAI", []byte{0, 1, 0, 0, 0, 0, 0, 0}, func() Record { return &BRAI{} })
	Register(OpGelFrame, "GelFrame", nil, opaque)

	// axes
	Register(OpAxis, "Axis", zeros(18), func() Record { return &Axis{} })
	Register(OpTick, "Tick", cat([]byte{2, 0, 3, 1}, zeros(4), zeros(16), []byte{0x23, 0, 0x4D, 0, 0, 0}), func() Record { return &Tick{} })
	Register(OpValueRange, "ValueRange", cat(zeros(40), []byte{0x1F, 0}), func() Record { return &ValueRange{} })
	Register(OpCatSerRange, "CatSerRange", []byte{1, 0, 1, 0, 1, 0, 1, 0}, func() Record { return &CatSerRange{} })
	Register(OpAxisLine, "AxisLine", []byte{0, 0}, func() Record { return &AxisLine{} })
	Register(OpIFmtRecord, "IFmtRecord", []byte{0, 0}, func() Record { return &IFmtRecord{} })
	Register(OpAxcExt, "AxcExt", cat(zeros(16), []byte{0xEF, 0}), func() Record { return &AxcExt{} })
	Register(OpCatLab, "CatLab", []byte{0x56, 0x08, 0, 0, 100, 0, 2, 0, 0, 0, 0, 0}, func() Record { return &CatLab{} })

	// text
	Register(OpDefaultText, "DefaultText", []byte{2, 0}, func() Record { return &DefaultText{} })
	Register(OpText, "Text", cat([]byte{2, 2, 1, 0}, zeros(4), zeros(16), []byte{0xB1, 0, 0x4D, 0, 0, 0, 0, 0}), func() Record { return &Text{} })
	Register(OpFontX, "FontX", []byte{5, 0}, func() Record { return &FontX{} })
	Register(OpObjectLink, "ObjectLink", []byte{1, 0, 0, 0, 0, 0}, func() Record { return &ObjectLink{} })
	Register(OpAlRuns, "AlRuns", []byte{0, 0}, func() Record { return &AlRuns{} })
	Register(OpFont, "Font", cat([]byte{0xC8, 0, 0, 0, 0xFF, 0x7F, 0x90, 0x01, 0, 0, 0, 0, 0, 0, 5, 0}, []byte("Arial")), func() Record { return &Font{} })
}
