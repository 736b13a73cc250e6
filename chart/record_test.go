package chart

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamitzky/xlchart-go/biff"
)

func TestPrototypeRoundTrip(t *testing.T) {
	for _, op := range Registered() {
		proto, _ := Prototype(op)
		r, err := FromBytes(op, proto)
		if err != nil {
			t.Errorf("FromBytes(%s) error: %v", Name(op), err)
			continue
		}
		if diff := cmp.Diff(proto, r.Data(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%s: Data() differs from prototype (-want +got):\n%s", Name(op), diff)
		}
		if err := r.Init(); err != nil {
			t.Errorf("%s: second Init error: %v", Name(op), err)
		}
		if diff := cmp.Diff(proto, r.Data(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%s: Init is not idempotent (-want +got):\n%s", Name(op), diff)
		}
	}
}

func TestUnknownOpcodeIsKept(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	r, err := FromBytes(0x1234, data)
	require.NoError(t, err)
	require.IsType(t, &Unknown{}, r)
	assert.Equal(t, data, r.Data())
	assert.Equal(t, "0x1234", Name(0x1234))
	assert.False(t, r.SetOption("Stacked", "true"))
}

func TestShortPayloadIsDecodeError(t *testing.T) {
	tests := []struct {
		opcode uint16
		data   []byte
	}{
		{OpBar, []byte{0, 0, 0x96}},
		{OpLineFormat, make([]byte, 11)},
		{OpPos, make([]byte, 19)},
		{OpValueRange, make([]byte, 40)},
		{OpBopPop, make([]byte, 21)},
	}
	for _, test := range tests {
		_, err := FromBytes(test.opcode, test.data)
		var de *biff.DecodeError
		if !errors.As(err, &de) {
			t.Errorf("FromBytes(%s, %d bytes) = %v, expected a DecodeError", Name(test.opcode), len(test.data), err)
			continue
		}
		if de.Opcode != test.opcode {
			t.Errorf("DecodeError.Opcode = 0x%04x, expected 0x%04x", de.Opcode, test.opcode)
		}
	}
}

func TestBarStacked(t *testing.T) {
	bar := mustNew(OpBar).(*Bar)
	assert.Equal(t, []byte{0, 0, 0x96, 0, 0, 0}, bar.Data())

	bar.SetStacked(true)
	assert.Equal(t, -100, bar.Overlap())
	assert.Equal(t, 150, bar.Gap())
	assert.True(t, bar.IsStacked())
	assert.False(t, bar.Is100Percent())
	assert.Equal(t, []byte{0x9C, 0xFF, 0x96, 0, 0x02, 0}, bar.Data())

	bar.SetStacked(false)
	assert.Equal(t, 0, bar.Overlap())
	assert.Equal(t, []byte{0, 0, 0x96, 0, 0, 0}, bar.Data())

	bar.Set100Percent(true)
	assert.True(t, bar.IsStacked())
	assert.True(t, bar.Is100Percent())
	assert.Equal(t, []byte{0x9C, 0xFF, 0x96, 0, 0x06, 0}, bar.Data())

	bar.SetStacked(false)
	assert.False(t, bar.Is100Percent())
}

func TestBarRange(t *testing.T) {
	bar := mustNew(OpBar).(*Bar)
	before := append([]byte{}, bar.Data()...)

	err := bar.SetGap(501)
	var re *biff.DomainRangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 501, re.Value)
	assert.Equal(t, before, bar.Data())

	require.Error(t, bar.SetOverlap(-101))
	assert.False(t, bar.SetOption("Gap", "900"))
	assert.False(t, bar.SetOption("Gap", "wide"))
	assert.Equal(t, before, bar.Data())

	require.True(t, bar.SetOption("Gap", "300"))
	v, ok := bar.Option("Gap")
	assert.True(t, ok)
	assert.Equal(t, "300", v)
}

func TestFlagIndependence(t *testing.T) {
	type flag struct {
		get func() bool
		set func(bool)
	}
	bar := mustNew(OpBar).(*Bar)
	line := mustNew(OpLine).(*Line)
	pie := mustNew(OpPie).(*Pie)
	tests := []struct {
		name  string
		flags []flag
	}{
		{"Bar", []flag{
			{bar.IsHorizontal, bar.SetHorizontal},
			{bar.HasShadow, bar.SetShadow},
		}},
		{"Line", []flag{
			{line.IsStacked, line.SetStacked},
			{line.HasShadow, line.SetShadow},
		}},
		{"Pie", []flag{
			{pie.HasShadow, pie.SetShadow},
			{pie.ShowLeaderLines, pie.SetShowLeaderLines},
		}},
	}
	for _, test := range tests {
		for i, f := range test.flags {
			before := make([]bool, len(test.flags))
			for j, g := range test.flags {
				before[j] = g.get()
			}
			f.set(!before[i])
			for j, g := range test.flags {
				want := before[j]
				if i == j {
					want = !want
				}
				if got := g.get(); got != want {
					t.Errorf("%s: toggling flag %d changed flag %d to %v", test.name, i, j, got)
				}
			}
		}
	}
}

func TestPositionUnion(t *testing.T) {
	pos := mustNew(OpPos).(*Pos)
	require.NoError(t, pos.SetPosition(LegendAbsolute{X: 3000, Y: 1000, Width: 120, Height: 80}))
	assert.Equal(t, LegendAbsolute{X: 3000, Y: 1000, Width: 120, Height: 80}, pos.PositionFor(OpLegend))

	// the size is kept in the bytes but not part of the automatic variant
	require.NoError(t, pos.SetPosition(LegendAuto{X: 10, Y: 20}))
	assert.Equal(t, LegendAuto{X: 10, Y: 20}, pos.PositionFor(OpLegend))
	assert.Equal(t, int16(120), biff.Int16(pos.Data(), 12))
	assert.Equal(t, int16(80), biff.Int16(pos.Data(), 16))

	tl, br := pos.Modes()
	assert.Equal(t, MDCHART, tl)
	assert.Equal(t, MDPARENT, br)

	// the same modes mean something else under a text
	assert.IsType(t, UnknownPosition{}, pos.PositionFor(OpText))

	_, err := FromBytes(OpPos, append([]byte{4, 0, 2, 0}, make([]byte, 16)...))
	assert.Error(t, err)
}

func TestPositionOwner(t *testing.T) {
	c, err := NewChart(OpBar, &Options{})
	require.NoError(t, err)
	l := c.Legend()
	require.NotNil(t, l)
	assert.Equal(t, LegendAuto{}, l.Pos().Position())
	ap := c.AxisParent(0)
	require.NotNil(t, ap)
	assert.IsType(t, PlotAreaRect{}, ap.Pos().Position())
}

type testColors []color.RGBA

func (c testColors) ColorTable() []color.RGBA { return c }

func TestColorIndexBoundary(t *testing.T) {
	red := color.RGBA{R: 0xFF, A: 0xFF}
	table := testColors{{A: 0xFF}, {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, red}
	c, err := NewChart(OpBar, &Options{Colors: table})
	require.NoError(t, err)
	frames := FindAll(c.Root(), OpAreaFormat)
	require.NotEmpty(t, frames)
	af := frames[0].(*AreaFormat)

	tests := []struct {
		icv      uint16
		expected color.RGBA
	}{
		{2, red},
		{0x4D, color.RGBA{A: 0xFF}},
		{0x4E, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{0x7FFF, color.RGBA{A: 0xFF}},
	}
	for _, test := range tests {
		af.SetForegroundColorIndex(test.icv)
		if got := af.ForegroundColor(); got != test.expected {
			t.Errorf("ForegroundColor() with icv 0x%02x = %v, expected %v", test.icv, got, test.expected)
		}
		if got := af.ForegroundColorIndex(); got != test.icv {
			t.Errorf("ForegroundColorIndex() = 0x%02x, expected 0x%02x", got, test.icv)
		}
	}

	af.SetForegroundColor(color.RGBA{R: 0xF0, G: 0x10, A: 0xFF})
	assert.Equal(t, uint16(2), af.ForegroundColorIndex())
}

func TestColorOption(t *testing.T) {
	lf := mustNew(OpLineFormat).(*LineFormat)
	require.True(t, lf.SetOption("LineColor", "#FF0000"))
	v, ok := lf.Option("LineColor")
	require.True(t, ok)
	assert.Equal(t, "#FF0000", v)

	before := append([]byte{}, lf.Data()...)
	assert.False(t, lf.SetOption("LineColor", "#GG0000"))
	assert.False(t, lf.SetOption("LinePattern", "zigzag"))
	assert.Equal(t, before, lf.Data())
}

func TestBopPopSplit(t *testing.T) {
	bp := mustNew(OpBopPop).(*BopPop)
	assert.Equal(t, SplitByPosition{Count: 2}, bp.Split())

	require.NoError(t, bp.SetSplit(SplitByPercent{Percent: 30}))
	assert.Equal(t, SplitByPercent{Percent: 30}, bp.Split())
	// the position alternate is preserved but no longer selected
	assert.Equal(t, int16(2), biff.Int16(bp.Data(), 4))

	require.NoError(t, bp.SetSplit(SplitByValue{Threshold: 12.5}))
	assert.Equal(t, SplitByValue{Threshold: 12.5}, bp.Split())
	assert.Equal(t, int16(30), biff.Int16(bp.Data(), 6))

	require.NoError(t, bp.SetSplit(SplitByPosition{Count: 2}))
	assert.Equal(t, 12.5, biff.Float64(bp.Data(), 12))

	assert.Error(t, bp.SetSplit(SplitByPercent{Percent: 101}))
	assert.Equal(t, SplitByPosition{Count: 2}, bp.Split())

	bad := append([]byte{}, bp.Data()...)
	bad[2] = 4
	_, err := FromBytes(OpBopPop, bad)
	assert.Error(t, err)
}

type testFonts int

func (n testFonts) NumFonts() int { return int(n) }

func TestFontXResolve(t *testing.T) {
	tests := []struct {
		iFont   int
		fonts   int
		index   int
		isLocal bool
	}{
		{3, 5, 3, false},
		{5, 5, 5, false},
		{6, 5, 2, true},
		{9, 5, 5, true},
		{1, 0, 2, true},
	}
	fx := mustNew(OpFontX).(*FontX)
	for _, test := range tests {
		require.NoError(t, fx.SetIndex(test.iFont))
		index, local := fx.Resolve(testFonts(test.fonts))
		if index != test.index || local != test.isLocal {
			t.Errorf("Resolve(iFont=%d, fonts=%d) = (%d, %v), expected (%d, %v)",
				test.iFont, test.fonts, index, local, test.index, test.isLocal)
		}
	}
}

func TestSeriesText(t *testing.T) {
	st := mustNew(OpSeriesText).(*SeriesText)
	require.NoError(t, st.SetText("Sales"))
	assert.Equal(t, "Sales", st.Text())

	again, err := FromBytes(OpSeriesText, st.Data())
	require.NoError(t, err)
	assert.Equal(t, "Sales", again.(*SeriesText).Text())

	require.NoError(t, st.SetText("Umsätze €"))
	again, err = FromBytes(OpSeriesText, st.Data())
	require.NoError(t, err)
	assert.Equal(t, "Umsätze €", again.(*SeriesText).Text())
}

func TestValueRangeAuto(t *testing.T) {
	vr := mustNew(OpValueRange).(*ValueRange)
	_, auto := vr.Min()
	assert.True(t, auto)

	vr.SetMin(-5)
	v, auto := vr.Min()
	assert.False(t, auto)
	assert.Equal(t, -5.0, v)

	_, auto = vr.Max()
	assert.True(t, auto)
	s, ok := vr.Option("CrossesAt")
	assert.True(t, ok)
	assert.Equal(t, "auto", s)
}

func TestReload(t *testing.T) {
	bar := mustNew(OpBar).(*Bar)
	require.NoError(t, Reload(bar, []byte{0x9C, 0xFF, 0x96, 0, 0x02, 0}))
	assert.True(t, bar.IsStacked())

	err := Reload(bar, []byte{1})
	require.Error(t, err)
	assert.True(t, bar.IsStacked())
	assert.Equal(t, []byte{0x9C, 0xFF, 0x96, 0, 0x02, 0}, bar.Data())
}
