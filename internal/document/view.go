package document

// View drives one screen: it owns the built elements, the focus index over
// them and the viewport that scrolls them.
type View struct {
	doc      Document
	elements []Element
	focus    FocusIndex
	viewport Viewport
	styles   Styles
}

// ViewState is a copy of a view's navigation state.
type ViewState struct {
	Focused       bool
	FocusIndex    int
	Offset        int
	Height        int
	ContentHeight int
	Nodes         []Node
}

// NewView returns an empty view with a viewport of the given height.
func NewView(height int) *View {
	return &View{
		focus:    NewFocusIndex(nil),
		viewport: NewViewport(height),
		styles:   DefaultStyles(),
	}
}

// Document returns the document last passed to Rebuild.
func (v *View) Document() Document {
	return v.doc
}

// Title returns the document title, or "" before the first build.
func (v *View) Title() string {
	if v.doc == nil {
		return ""
	}
	return v.doc.Title()
}

// SetStyles replaces the render styles.
func (v *View) SetStyles(styles Styles) {
	v.styles = styles
}

// Rebuild rebuilds elements, content height and focus index from doc. The
// previously focused id is restored when it still exists. When it is gone,
// focus clears and the view returns to the top; an unfocused view keeps its
// scroll offset, clamped to the new content.
func (v *View) Rebuild(doc Document) {
	prev := ""
	if n, ok := v.focus.Current(); ok {
		prev = n.ID
	}

	v.doc = doc
	v.elements = nil
	if doc != nil {
		v.elements = doc.Build()
	}
	v.viewport.SetContentHeight(ContentHeight(v.elements))
	v.focus.Reset(CollectNodes(v.elements))
	if prev != "" && !v.focus.FocusByID(prev) {
		v.viewport.ScrollToTop()
	}
}

// Elements returns the built element list.
func (v *View) Elements() []Element {
	return v.elements
}

// Viewport returns a copy of the viewport.
func (v *View) Viewport() Viewport {
	return v.viewport
}

// SetHeight resizes the viewport and keeps the focused node on screen.
func (v *View) SetHeight(h int) {
	if h == v.viewport.Height() {
		return
	}
	v.viewport.SetHeight(h)
	v.reveal()
}

// Focused returns the focused node, if any.
func (v *View) Focused() (Node, bool) {
	return v.focus.Current()
}

// FocusCount returns the number of focusable nodes.
func (v *View) FocusCount() int {
	return v.focus.Len()
}

// FocusNext moves focus forward. A wrap from the last node snaps the viewport
// to the top; any other move scrolls just enough to reveal the node.
func (v *View) FocusNext() bool {
	if v.focus.Next() {
		v.viewport.ScrollToTop()
		v.settleAfterJump()
		return true
	}
	v.reveal()
	return false
}

// FocusPrev moves focus back. A wrap from the first node snaps the viewport
// to the bottom.
func (v *View) FocusPrev() bool {
	if v.focus.Prev() {
		v.viewport.ScrollToBottom()
		v.settleAfterJump()
		return true
	}
	v.reveal()
	return false
}

// FocusLeft moves to the adjacent column of the focused node's Row.
func (v *View) FocusLeft() bool {
	if !v.focus.Left() {
		return false
	}
	v.reveal()
	return true
}

// FocusRight moves to the adjacent column of the focused node's Row.
func (v *View) FocusRight() bool {
	if !v.focus.Right() {
		return false
	}
	v.reveal()
	return true
}

// FocusFirst focuses the first node and scrolls it into view.
func (v *View) FocusFirst() bool {
	if !v.focus.Focus(0) {
		return false
	}
	v.reveal()
	return true
}

// FocusByID focuses the node with id and scrolls it into view.
func (v *View) FocusByID(id string) bool {
	if !v.focus.FocusByID(id) {
		return false
	}
	v.reveal()
	return true
}

// ClearFocus removes focus without scrolling.
func (v *View) ClearFocus() {
	v.focus.Clear()
}

// ActivateFocused returns the focused node's target.
func (v *View) ActivateFocused() (Target, bool) {
	return v.focus.Activate()
}

func (v *View) ScrollUp(n int)   { v.viewport.ScrollUp(n) }
func (v *View) ScrollDown(n int) { v.viewport.ScrollDown(n) }
func (v *View) PageUp()          { v.viewport.PageUp() }
func (v *View) PageDown()        { v.viewport.PageDown() }
func (v *View) ScrollToTop()     { v.viewport.ScrollToTop() }
func (v *View) ScrollToBottom()  { v.viewport.ScrollToBottom() }

// reveal is the incremental autoscroll used after ordinary focus moves.
func (v *View) reveal() {
	n, ok := v.focus.Current()
	if !ok {
		return
	}
	v.viewport.EnsureVisibleWithPadding(n.Y, n.Height, SmartPadding(v.viewport.Height()))
}

// settleAfterJump handles a wrap target that the snap alone does not show,
// such as a first link that sits below a long introduction.
func (v *View) settleAfterJump() {
	n, ok := v.focus.Current()
	if !ok || v.viewport.Contains(n.Y, n.Height) {
		return
	}
	v.viewport.EnsureVisible(n.Y, n.Height)
}

// Render draws the visible slice of the document into area and returns the
// focused node.
func (v *View) Render(area Area, buf *Buffer) (Node, bool) {
	focused, ok := v.focus.Current()
	if area.Width <= 0 || area.Height <= 0 {
		return focused, ok
	}
	top := v.viewport.Offset()
	r := renderer{
		buf:    buf,
		area:   area,
		top:    top,
		bottom: top + min(area.Height, max(v.viewport.Height(), 0)),
		styles: v.styles,
	}
	if ok {
		r.focusedID = focused.ID
	}
	r.draw(v.elements, 0, 0, area.Width)
	return focused, ok
}

// State returns a copy of the navigation state.
func (v *View) State() ViewState {
	idx, ok := v.focus.Index()
	return ViewState{
		Focused:       ok,
		FocusIndex:    idx,
		Offset:        v.viewport.Offset(),
		Height:        v.viewport.Height(),
		ContentHeight: v.viewport.ContentHeight(),
		Nodes:         v.focus.Nodes(),
	}
}
