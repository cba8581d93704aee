package document

import "slices"

// RowPosition links a node to its column inside a side-by-side Row. Row
// is a per-build serial that separates distinct Rows sharing an anchor.
type RowPosition struct {
	Row     int
	AnchorY int
	Column  int
	Index   int
}

// Node is the flattened geometry of one focusable leaf.
type Node struct {
	ID     string
	Y      int
	Height int
	Target *Target

	Row   RowPosition
	InRow bool
}

// CollectNodes walks elements in document order and returns every focusable
// leaf with its absolute y offset. Group children are offset by the running
// height of their preceding siblings; Row children share the Row's y.
func CollectNodes(elements []Element) []Node {
	c := collector{}
	c.walk(elements, 0, nil)
	return c.nodes
}

type rowScope struct {
	serial  int
	anchorY int
	column  int
	count   int
}

type collector struct {
	nodes  []Node
	serial int
}

func (c *collector) walk(elements []Element, y int, scope *rowScope) {
	for _, e := range elements {
		c.visit(e, y, scope)
		y += e.Height()
	}
}

func (c *collector) visit(e Element, y int, scope *rowScope) {
	switch e.Kind {
	case KindLink:
		if e.Focusable() {
			c.add(Node{ID: e.ID, Y: y, Height: 1, Target: e.Target}, scope)
		}
	case KindTable:
		if e.Table == nil {
			return
		}
		top := y + e.Table.HeaderLines()
		for r, row := range e.Table.Rows {
			for _, cell := range row {
				if cell.Focusable() {
					c.add(Node{ID: cell.ID, Y: top + r, Height: 1, Target: cell.Target}, scope)
				}
			}
		}
	case KindGroup:
		c.walk(e.Children, y, scope)
	case KindRow:
		// The innermost Row owns lateral movement for its descendants.
		serial := c.serial
		c.serial++
		for col, child := range e.Children {
			s := &rowScope{serial: serial, anchorY: y, column: col}
			c.visit(child, y, s)
		}
	}
}

func (c *collector) add(n Node, scope *rowScope) {
	if scope != nil {
		n.Row = RowPosition{
			Row:     scope.serial,
			AnchorY: scope.anchorY,
			Column:  scope.column,
			Index:   scope.count,
		}
		n.InRow = true
		scope.count++
	}
	c.nodes = append(c.nodes, n)
}

// FocusIndex is an ordered list of focusable nodes plus an optional current
// position. Navigation only moves the position; the list is replaced
// wholesale by Reset.
type FocusIndex struct {
	nodes   []Node
	current int
}

// NewFocusIndex returns an index over nodes with nothing focused.
func NewFocusIndex(nodes []Node) FocusIndex {
	return FocusIndex{nodes: nodes, current: -1}
}

// Reset replaces the node list and clears focus.
func (f *FocusIndex) Reset(nodes []Node) {
	f.nodes = nodes
	f.current = -1
}

// Len returns the number of focusable nodes.
func (f *FocusIndex) Len() int {
	return len(f.nodes)
}

// Nodes returns a copy of the node list.
func (f *FocusIndex) Nodes() []Node {
	return slices.Clone(f.nodes)
}

// Index returns the current position, if any.
func (f *FocusIndex) Index() (int, bool) {
	if f.current < 0 || f.current >= len(f.nodes) {
		return -1, false
	}
	return f.current, true
}

// Current returns the focused node, if any.
func (f *FocusIndex) Current() (Node, bool) {
	i, ok := f.Index()
	if !ok {
		return Node{}, false
	}
	return f.nodes[i], true
}

// Clear removes focus.
func (f *FocusIndex) Clear() {
	f.current = -1
}

// Focus moves to position i. Out of range positions are ignored.
func (f *FocusIndex) Focus(i int) bool {
	if i < 0 || i >= len(f.nodes) {
		return false
	}
	f.current = i
	return true
}

// Next advances focus, wrapping from the last node to the first. It reports
// whether a wrap occurred. From an unfocused state the first node is focused
// without a wrap.
func (f *FocusIndex) Next() bool {
	n := len(f.nodes)
	if n == 0 {
		return false
	}
	if f.current < 0 || f.current >= n {
		f.current = 0
		return false
	}
	if f.current == n-1 {
		f.current = 0
		return n > 1
	}
	f.current++
	return false
}

// Prev moves focus back, wrapping from the first node to the last.
func (f *FocusIndex) Prev() bool {
	n := len(f.nodes)
	if n == 0 {
		return false
	}
	if f.current < 0 || f.current >= n {
		f.current = n - 1
		return false
	}
	if f.current == 0 {
		f.current = n - 1
		return n > 1
	}
	f.current--
	return false
}

// Left moves to the neighbouring column on the left within the same Row.
func (f *FocusIndex) Left() bool {
	return f.lateral(-1)
}

// Right moves to the neighbouring column on the right within the same Row.
func (f *FocusIndex) Right() bool {
	return f.lateral(1)
}

// lateral wraps across the Row's columns and keeps the index within the
// column, clamped to the target column's last node. Columns with no
// focusable nodes are skipped.
func (f *FocusIndex) lateral(dir int) bool {
	cur, ok := f.Current()
	if !ok || !cur.InRow {
		return false
	}

	columns := make(map[int][]int)
	var order []int
	for i, n := range f.nodes {
		if !n.InRow || n.Row.Row != cur.Row.Row || n.Row.AnchorY != cur.Row.AnchorY {
			continue
		}
		if _, seen := columns[n.Row.Column]; !seen {
			order = append(order, n.Row.Column)
		}
		columns[n.Row.Column] = append(columns[n.Row.Column], i)
	}
	if len(order) < 2 {
		return false
	}
	slices.Sort(order)

	pos := slices.Index(order, cur.Row.Column)
	target := order[(pos+dir+len(order))%len(order)]
	members := columns[target]
	idx := min(cur.Row.Index, len(members)-1)
	f.current = members[idx]
	return true
}

// Activate returns the focused node's target.
func (f *FocusIndex) Activate() (Target, bool) {
	cur, ok := f.Current()
	if !ok || cur.Target == nil {
		return Target{}, false
	}
	return *cur.Target, true
}

// FocusByID focuses the first node with the given id.
func (f *FocusIndex) FocusByID(id string) bool {
	if id == "" {
		return false
	}
	for i, n := range f.nodes {
		if n.ID == id {
			f.current = i
			return true
		}
	}
	return false
}
