package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opcodes(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = Name(r.Opcode())
	}
	return out
}

func TestFlattenOrder(t *testing.T) {
	axis := block(mustNew(OpAxis), mustNew(OpValueRange))
	primary := block(mustNew(OpChartFormat), mustNew(OpBar), block(mustNew(OpLegend), mustNew(OpPos)))
	overlay := block(mustNew(OpChartFormat), mustNew(OpLine))
	ap := block(mustNew(OpAxisParent), axis, primary, overlay)

	expected := []string{
		"AxisParent", "Begin",
		"Axis", "Begin", "ValueRange", "End",
		"ChartFormat", "Begin",
		"Bar",
		"Legend", "Begin", "Pos", "End",
		"End",
		"ChartFormat", "Begin", "Line", "End",
		"End",
	}
	if diff := cmp.Diff(expected, opcodes(Flatten([]Record{ap}))); diff != "" {
		t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenEmptyBlock(t *testing.T) {
	r := block(mustNew(OpFrame))
	expected := []string{"Frame", "Begin", "End"}
	if diff := cmp.Diff(expected, opcodes(Flatten([]Record{r}))); diff != "" {
		t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTreeUnbalanced(t *testing.T) {
	begin := func() Record { return mustNew(OpBegin) }
	end := func() Record { return mustNew(OpEnd) }
	bar := func() Record { return mustNew(OpBar) }
	tests := []struct {
		name string
		flat []Record
	}{
		{"Begin without owner", []Record{begin(), end()}},
		{"End without Begin", []Record{bar(), end()}},
		{"second Begin", []Record{bar(), begin(), end(), begin(), end()}},
		{"left open", []Record{bar(), begin(), bar()}},
	}
	for _, test := range tests {
		_, err := BuildTree(test.flat)
		if errors.Cause(err) != ErrUnbalancedBlock {
			t.Errorf("%s: BuildTree() = %v, expected ErrUnbalancedBlock", test.name, err)
		}
	}
}

func TestBuildTreeParents(t *testing.T) {
	frame, lf := mustNew(OpFrame), mustNew(OpLineFormat)
	tree, err := BuildTree([]Record{frame, mustNew(OpBegin), lf, mustNew(OpEnd), mustNew(OpScl)})
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, frame, lf.node().parent)
	assert.Equal(t, []Record{lf}, frame.node().children)
	assert.True(t, frame.node().IsBlock())
}

func TestSiblings(t *testing.T) {
	cl, lf := mustNew(OpChartLine).(*ChartLine), mustNew(OpLineFormat).(*LineFormat)
	cf := block(mustNew(OpChartFormat), mustNew(OpBar), cl, lf)
	assert.Equal(t, lf, cl.LineFormat())
	assert.Nil(t, NextSibling(lf))
	assert.Nil(t, NextSibling(cf))

	// a line format reached through another sibling is not taken
	RemoveChild(lf)
	require.NoError(t, AddChild(cf, mustNew(OpCrtLink)))
	require.NoError(t, AddChild(cf, lf))
	assert.Nil(t, cl.LineFormat())
}

func TestAddChildAttached(t *testing.T) {
	lf := mustNew(OpLineFormat)
	a := block(mustNew(OpFrame), lf)
	b := mustNew(OpFrame)
	assert.Equal(t, ErrAttached, AddChild(b, lf))
	assert.True(t, RemoveChild(lf))
	assert.Empty(t, a.node().children)
	assert.NoError(t, AddChild(b, lf))
	assert.False(t, RemoveChild(mustNew(OpScl)))
}

func TestParseRoundTrip(t *testing.T) {
	for _, op := range typeOpcodes() {
		c, err := NewChart(op, &Options{})
		require.NoError(t, err, Name(op))
		b, err := c.Bytes()
		require.NoError(t, err)

		parsed, err := Parse(b, &Options{})
		require.NoError(t, err, Name(op))
		again, err := parsed.Bytes()
		require.NoError(t, err)
		if diff := cmp.Diff(b, again); diff != "" {
			t.Errorf("%s: Parse(Bytes()).Bytes() mismatch (-want +got):\n%s", Name(op), diff)
		}
		if diff := cmp.Diff(opcodes(c.RecordArray()), opcodes(parsed.RecordArray())); diff != "" {
			t.Errorf("%s: record order mismatch (-want +got):\n%s", Name(op), diff)
		}
	}
}

func TestParseRecordsTruncated(t *testing.T) {
	_, err := ParseRecords([]byte{0x17, 0x10, 6, 0, 0, 0}, &Options{})
	assert.Error(t, err)
	_, err = ParseRecords([]byte{0x17, 0x10, 6}, &Options{})
	assert.Error(t, err)
}

func TestParseRecordsLenient(t *testing.T) {
	// a Bar record with a 3-byte payload, followed by a valid Line record
	stream := []byte{0x17, 0x10, 3, 0, 0, 0, 0x96, 0x18, 0x10, 2, 0, 1, 0}

	var log bytes.Buffer
	records, err := ParseRecords(stream, &Options{Logfile: &log, Verbosity: 1})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.IsType(t, &Unknown{}, records[0])
	assert.Equal(t, uint16(OpBar), records[0].Opcode())
	assert.True(t, records[1].(*Line).IsStacked())
	assert.Contains(t, log.String(), "kept opaque")

	b, err := Marshal(records)
	require.NoError(t, err)
	assert.Equal(t, stream, b)

	_, err = ParseRecords(stream, &Options{Strict: true})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "record 0 (Bar)"), err.Error())
}

func TestParseOpaqueBracket(t *testing.T) {
	// Line, Begin with a stray payload, Line, End with a stray payload
	stream := []byte{
		0x18, 0x10, 2, 0, 1, 0,
		0x33, 0x10, 2, 0, 0xAB, 0xCD,
		0x18, 0x10, 2, 0, 0, 0,
		0x34, 0x10, 1, 0, 0xEF,
	}
	c, err := Parse(stream, &Options{})
	require.NoError(t, err)
	require.Len(t, c.Records(), 1)
	owner := c.Records()[0]
	require.Len(t, owner.node().children, 1)
	assert.Equal(t, uint16(OpLine), owner.node().children[0].Opcode())

	b, err := c.Bytes()
	require.NoError(t, err)
	assert.Equal(t, stream, b)
	flat := c.RecordArray()
	assert.IsType(t, &Unknown{}, flat[1])
	assert.IsType(t, &Unknown{}, flat[3])

	_, err = Parse(stream, &Options{Strict: true})
	assert.Error(t, err)
}

func TestParseRecordsTrace(t *testing.T) {
	var log bytes.Buffer
	_, err := ParseRecords([]byte{0x18, 0x10, 2, 0, 1, 0}, &Options{Logfile: &log, Verbosity: 2})
	require.NoError(t, err)
	assert.Contains(t, log.String(), "Line")

	log.Reset()
	_, err = ParseRecords([]byte{0x18, 0x10, 2, 0, 1, 0}, &Options{Logfile: &log})
	require.NoError(t, err)
	assert.Empty(t, log.String())
}

func TestMarshalOversized(t *testing.T) {
	r := &Unknown{Base{opcode: 0x1234, data: make([]byte, 0x10000), live: true}}
	_, err := Marshal([]Record{r})
	assert.Error(t, err)
}
