package chart

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnbalancedBlock is returned when Begin and End records do not
	// pair up.
	ErrUnbalancedBlock = errors.New("chart: unbalanced Begin/End block")
	// ErrAttached is returned when a record that already has a parent is
	// added to another one.
	ErrAttached = errors.New("chart: record is already attached")
)

// attach links r and its descendants to parent and c.
func attach(r Record, parent Record, c *Chart) {
	b := r.node()
	b.parent = parent
	b.chart = c
	for _, child := range b.children {
		attach(child, r, c)
	}
}

// detach clears the back-references of r and its descendants.
func detach(r Record) {
	b := r.node()
	b.parent = nil
	b.chart = nil
	for _, child := range b.children {
		detach(child)
	}
}

// AddChild appends child to the block of parent. parent becomes a block
// record if it was not one.
func AddChild(parent, child Record) error {
	if child.node().parent != nil {
		return ErrAttached
	}
	insertChild(parent, len(parent.node().children), child)
	return nil
}

func insertChild(parent Record, i int, child Record) {
	p := parent.node()
	p.block = true
	p.children = append(p.children, nil)
	copy(p.children[i+1:], p.children[i:])
	p.children[i] = child
	attach(child, parent, p.chart)
}

// insertAfterLast inserts child after the last child of parent whose
// opcode is one of after, or first when there is none.
func insertAfterLast(parent, child Record, after ...uint16) {
	at := 0
	for i, c := range parent.node().children {
		for _, op := range after {
			if c.Opcode() == op {
				at = i + 1
			}
		}
	}
	insertChild(parent, at, child)
}

// RemoveChild removes child from its parent's block. It reports whether
// child was found.
func RemoveChild(child Record) bool {
	parent := child.node().parent
	if parent == nil {
		return false
	}
	p := parent.node()
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			detach(child)
			return true
		}
	}
	return false
}

// indexOf returns the position of r among its siblings, or -1.
func indexOf(r Record) int {
	parent := r.node().parent
	if parent == nil {
		return -1
	}
	for i, c := range parent.node().children {
		if c == r {
			return i
		}
	}
	return -1
}

// FindFirstChild returns the first child of parent with the given opcode,
// or nil.
func FindFirstChild(parent Record, opcode uint16) Record {
	for _, c := range parent.node().children {
		if c.Opcode() == opcode {
			return c
		}
	}
	return nil
}

// FindAll returns every record with the given opcode in the subtree below
// parent, in stream order.
func FindAll(parent Record, opcode uint16) []Record {
	var out []Record
	Walk(parent.node().children, func(r Record, depth int) bool {
		if r.Opcode() == opcode {
			out = append(out, r)
		}
		return true
	})
	return out
}

// NextSibling returns the record that follows r in its parent's block, or
// nil when r is the last one or has no parent.
func NextSibling(r Record) Record {
	i := indexOf(r)
	if i < 0 {
		return nil
	}
	children := r.node().parent.node().children
	if i+1 >= len(children) {
		return nil
	}
	return children[i+1]
}

// Walk calls fn for every record in records and their descendants in
// stream order. Returning false from fn skips the descendants of that
// record.
func Walk(records []Record, fn func(r Record, depth int) bool) {
	walk(records, 0, fn)
}

func walk(records []Record, depth int, fn func(Record, int) bool) {
	for _, r := range records {
		if fn(r, depth) {
			walk(r.node().children, depth+1, fn)
		}
	}
}

// Flatten linearizes records into a stream, bracketing the children of
// every block record with Begin and End.
func Flatten(records []Record) []Record {
	var out []Record
	for _, r := range records {
		out = flatten(out, r)
	}
	return out
}

func flatten(out []Record, r Record) []Record {
	out = append(out, r)
	b := r.node()
	if !b.block {
		return out
	}
	out = append(out, bracket(OpBegin, b.beginData))
	for _, c := range b.children {
		out = flatten(out, c)
	}
	return append(out, bracket(OpEnd, b.endData))
}

func bracket(opcode uint16, data []byte) Record {
	if len(data) > 0 {
		return &Unknown{Base{opcode: opcode, data: data, live: true}}
	}
	if opcode == OpBegin {
		return &Begin{Base{opcode: OpBegin, data: []byte{}, live: true}}
	}
	return &End{Base{opcode: OpEnd, data: []byte{}, live: true}}
}
