package document

import "slices"

type policyKind int

const (
	policyFirst policyKind = iota
	policyNone
	policyID
)

// FocusPolicy decides what a freshly pushed document focuses once it has
// focusable nodes.
type FocusPolicy struct {
	kind policyKind
	id   string
}

var (
	// FocusFirst focuses the first focusable node. It is the zero value.
	FocusFirst = FocusPolicy{kind: policyFirst}
	// FocusNone leaves the document unfocused.
	FocusNone = FocusPolicy{kind: policyNone}
)

// FocusID focuses the node with id, falling back to the first node.
func FocusID(id string) FocusPolicy {
	return FocusPolicy{kind: policyID, id: id}
}

// LoadToken marks one in-flight load for one stack entry. Zero is never issued.
type LoadToken uint64

// Entry is one level of a Stack. Its view keeps focus and scroll state while
// other entries sit on top of it.
type Entry struct {
	view    *View
	policy  FocusPolicy
	settled bool
	pending LoadToken
}

// View returns the entry's view.
func (e *Entry) View() *View {
	return e.view
}

// Document returns the entry's current document.
func (e *Entry) Document() Document {
	return e.view.Document()
}

// Title returns the entry's document title.
func (e *Entry) Title() string {
	return e.view.Title()
}

// Loading reports whether a load for this entry is outstanding.
func (e *Entry) Loading() bool {
	return e.pending != 0
}

// Refresh rebuilds the entry from doc. The focus policy is applied the first
// time the document has something to focus; later rebuilds restore focus by id.
func (e *Entry) Refresh(doc Document) {
	e.view.Rebuild(doc)
	e.applyPolicy()
}

func (e *Entry) applyPolicy() {
	if e.settled {
		return
	}
	switch e.policy.kind {
	case policyNone:
		e.settled = true
	case policyID:
		if e.view.FocusCount() == 0 {
			return
		}
		if !e.view.FocusByID(e.policy.id) {
			e.view.FocusFirst()
		}
		e.settled = true
	default:
		if e.view.FocusCount() == 0 {
			return
		}
		e.view.FocusFirst()
		e.settled = true
	}
}

// Stack is a LIFO history of drill-down documents. The top entry is the only
// active one; entries below keep their state frozen until they are on top
// again. An empty stack means the caller's base screen is showing.
type Stack struct {
	entries   []*Entry
	height    int
	styles    Styles
	lastToken LoadToken
}

// NewStack returns an empty stack whose views start at the given height.
func NewStack(height int) *Stack {
	return &Stack{height: max(0, height), styles: DefaultStyles()}
}

// Push wraps doc in a new entry and makes it active.
func (s *Stack) Push(doc Document, policy FocusPolicy) *Entry {
	v := NewView(s.height)
	v.SetStyles(s.styles)
	e := &Entry{view: v, policy: policy}
	e.Refresh(doc)
	s.entries = append(s.entries, e)
	return e
}

// Pop discards the top entry together with its pending load and reactivates
// the entry beneath it. Popping an empty stack does nothing.
func (s *Stack) Pop() bool {
	n := len(s.entries)
	if n == 0 {
		return false
	}
	s.entries[n-1].pending = 0
	s.entries[n-1] = nil
	s.entries = s.entries[:n-1]
	return true
}

// Clear pops every entry.
func (s *Stack) Clear() {
	for s.Pop() {
	}
}

// Top returns the active entry.
func (s *Stack) Top() (*Entry, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *Stack) Depth() int  { return len(s.entries) }
func (s *Stack) Empty() bool { return len(s.entries) == 0 }

// Entries returns the entries bottom to top.
func (s *Stack) Entries() []*Entry {
	return slices.Clone(s.entries)
}

// Titles returns entry titles bottom to top, for breadcrumbs.
func (s *Stack) Titles() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Title()
	}
	return out
}

// SetHeight resizes every entry's viewport.
func (s *Stack) SetHeight(h int) {
	s.height = max(0, h)
	for _, e := range s.entries {
		e.view.SetHeight(s.height)
	}
}

// SetStyles restyles every entry.
func (s *Stack) SetStyles(styles Styles) {
	s.styles = styles
	for _, e := range s.entries {
		e.view.SetStyles(styles)
	}
}

// BeginLoad marks the active entry as loading and returns the token the
// load's result must present. A newer BeginLoad supersedes an older one.
func (s *Stack) BeginLoad() (LoadToken, bool) {
	top, ok := s.Top()
	if !ok {
		return 0, false
	}
	s.lastToken++
	top.pending = s.lastToken
	return s.lastToken, true
}

// FinishLoad returns the entry that issued token and clears its marker. It
// fails when the entry was popped or a newer load replaced the token.
func (s *Stack) FinishLoad(token LoadToken) (*Entry, bool) {
	if token == 0 {
		return nil, false
	}
	for _, e := range s.entries {
		if e.pending == token {
			e.pending = 0
			return e, true
		}
	}
	return nil, false
}

// ResolveSection converts a flat selection index spanning several fixed-order
// sections into (section, index within section). counts must be given in the
// order the sections were rendered.
func ResolveSection(flat int, counts ...int) (section, index int, ok bool) {
	if flat < 0 {
		return 0, 0, false
	}
	for i, c := range counts {
		if flat < c {
			return i, flat, true
		}
		flat -= max(0, c)
	}
	return 0, 0, false
}
