package chart

import (
	"github.com/yamitzky/xlchart-go/biff"
)

// Split selects how the data points of a bar-of-pie or pie-of-pie chart are
// divided between the primary pie and the secondary bar or pie. It is one
// of SplitByPosition, SplitByValue, SplitByPercent or SplitCustom.
type Split interface {
	splitType() uint16
}

// SplitByPosition moves the last Count data points to the secondary plot.
type SplitByPosition struct{ Count int }

// SplitByValue moves data points below Threshold to the secondary plot.
type SplitByValue struct{ Threshold float64 }

// SplitByPercent moves data points below Percent of the total to the
// secondary plot.
type SplitByPercent struct{ Percent int }

// SplitCustom leaves the assignment to the BopPopCustom record that follows.
type SplitCustom struct{}

func (SplitByPosition) splitType() uint16 { return 0 }
func (SplitByValue) splitType() uint16    { return 1 }
func (SplitByPercent) splitType() uint16  { return 2 }
func (SplitCustom) splitType() uint16     { return 3 }

// OfPieType is the kind of secondary plot of a BopPop chart group.
type OfPieType uint8

const (
	PieOfPie OfPieType = 1
	BarOfPie OfPieType = 2
)

// BopPop (0x1061) defines a bar-of-pie or pie-of-pie chart group.
//
//	offset  size  field
//	0       1     pst             1 pie of pie, 2 bar of pie
//	1       1     fAutoSplit
//	2       2     split           0 position, 1 value, 2 percent, 3 custom
//	4       2     iSplitPos       split == 0
//	6       2     pcSplitPercent  split == 2, 0..100
//	8       2     pcPie2Size      5..200
//	10      2     pcGap           0..500
//	12      8     numSplitValue   split == 1
//	20      2     grbit           fHasShadow(0)
//
// Only the alternate selected by split is meaningful. The bytes of the other
// alternates are kept as read and written back unchanged.
type BopPop struct {
	Base
	pst          uint8
	autoSplit    bool
	split        uint16
	splitPos     int16
	splitPercent int16
	pie2Size     int16
	gap          int16
	splitValue   float64
	grbit        uint16
}

func (r *BopPop) isTypeRecord() {}

// Init implements Record.
func (r *BopPop) Init() error {
	if err := r.require(22); err != nil {
		return err
	}
	split := r.u16(2)
	if split > 3 {
		return biff.NewDecodeError(r.opcode, len(r.data), "split type %d not defined", split)
	}
	r.pst = r.u8(0)
	r.autoSplit = r.u8(1) != 0
	r.split = split
	r.splitPos = r.i16(4)
	r.splitPercent = r.i16(6)
	r.pie2Size = r.i16(8)
	r.gap = r.i16(10)
	r.splitValue = r.f64(12)
	r.grbit = r.u16(20)
	r.live = true
	return nil
}

// Type returns the kind of secondary plot.
func (r *BopPop) Type() OfPieType { return OfPieType(r.pst) }

// SetType sets the kind of secondary plot.
func (r *BopPop) SetType(t OfPieType) {
	r.pst = uint8(t)
	r.putU8(0, r.pst)
}

// IsAutoSplit reports whether the split is chosen automatically.
func (r *BopPop) IsAutoSplit() bool { return r.autoSplit }

// SetAutoSplit sets the automatic split flag.
func (r *BopPop) SetAutoSplit(v bool) {
	r.autoSplit = v
	var b uint8
	if v {
		b = 1
	}
	r.putU8(1, b)
}

// Split returns the selected split alternate.
func (r *BopPop) Split() Split {
	switch r.split {
	case 0:
		return SplitByPosition{Count: int(r.splitPos)}
	case 1:
		return SplitByValue{Threshold: r.splitValue}
	case 2:
		return SplitByPercent{Percent: int(r.splitPercent)}
	}
	return SplitCustom{}
}

// SetSplit selects a split alternate and writes its value. The other
// alternates are left untouched.
func (r *BopPop) SetSplit(s Split) error {
	switch s := s.(type) {
	case SplitByPosition:
		if err := biff.CheckRange("iSplitPos", s.Count, 0, 32000); err != nil {
			return err
		}
		r.splitPos = int16(s.Count)
		r.putI16(4, r.splitPos)
	case SplitByValue:
		r.splitValue = s.Threshold
		r.putF64(12, r.splitValue)
	case SplitByPercent:
		if err := biff.CheckRange("pcSplitPercent", s.Percent, 0, 100); err != nil {
			return err
		}
		r.splitPercent = int16(s.Percent)
		r.putI16(6, r.splitPercent)
	case SplitCustom:
	default:
		return biff.NewDecodeError(r.opcode, len(r.data), "unsupported split %T", s)
	}
	r.split = s.splitType()
	r.putU16(2, r.split)
	return nil
}

// SecondPlotSize returns the size of the secondary plot in percent of the
// primary pie.
func (r *BopPop) SecondPlotSize() int { return int(r.pie2Size) }

// SetSecondPlotSize sets the size of the secondary plot.
func (r *BopPop) SetSecondPlotSize(v int) error {
	if err := biff.CheckRange("pcPie2Size", v, 5, 200); err != nil {
		return err
	}
	r.pie2Size = int16(v)
	r.putI16(8, r.pie2Size)
	return nil
}

// Gap returns the distance between the two plots in percent of the
// secondary plot width.
func (r *BopPop) Gap() int { return int(r.gap) }

// SetGap sets the distance between the plots.
func (r *BopPop) SetGap(v int) error {
	if err := biff.CheckRange("pcGap", v, 0, 500); err != nil {
		return err
	}
	r.gap = int16(v)
	r.putI16(10, r.gap)
	return nil
}

// HasShadow implements Shadower.
func (r *BopPop) HasShadow() bool { return biff.FlagBit(r.grbit, 0) }

// SetShadow implements Shadower.
func (r *BopPop) SetShadow(v bool) {
	r.grbit = biff.UpdateFlagBit(r.grbit, v, 0)
	r.putU16(20, r.grbit)
}

// SetOption implements Record.
func (r *BopPop) SetOption(name, value string) bool {
	switch name {
	case "Gap":
		v, ok := parseInt(value, 0, 500)
		return ok && r.SetGap(v) == nil
	case "SecondPieSize":
		v, ok := parseInt(value, 5, 200)
		return ok && r.SetSecondPlotSize(v) == nil
	case "SplitPos":
		v, ok := parseInt(value, 0, 32000)
		return ok && r.SetSplit(SplitByPosition{Count: v}) == nil
	case "SplitPercent":
		v, ok := parseInt(value, 0, 100)
		return ok && r.SetSplit(SplitByPercent{Percent: v}) == nil
	case "SplitValue":
		v, ok := parseFloat(value)
		return ok && r.SetSplit(SplitByValue{Threshold: v}) == nil
	case "OfPieType":
		switch value {
		case "pie":
			r.SetType(PieOfPie)
		case "bar":
			r.SetType(BarOfPie)
		default:
			return false
		}
		return true
	case "Shadow", "AutoSplit":
		v, ok := parseBool(value)
		if !ok {
			return false
		}
		if name == "Shadow" {
			r.SetShadow(v)
		} else {
			r.SetAutoSplit(v)
		}
		return true
	}
	return false
}

// Option implements Record.
func (r *BopPop) Option(name string) (string, bool) {
	switch name {
	case "Gap":
		return formatInt(r.Gap()), true
	case "SecondPieSize":
		return formatInt(r.SecondPlotSize()), true
	case "SplitType":
		return [...]string{"pos", "val", "percent", "cust"}[r.split], true
	case "OfPieType":
		if r.Type() == BarOfPie {
			return "bar", true
		}
		return "pie", true
	case "Shadow":
		return formatBool(r.HasShadow()), true
	case "AutoSplit":
		return formatBool(r.IsAutoSplit()), true
	}
	if v, ok := r.Split().(SplitByPosition); ok && name == "SplitPos" {
		return formatInt(v.Count), true
	}
	if v, ok := r.Split().(SplitByPercent); ok && name == "SplitPercent" {
		return formatInt(v.Percent), true
	}
	if v, ok := r.Split().(SplitByValue); ok && name == "SplitValue" {
		return formatFloat(v.Threshold), true
	}
	return "", false
}
