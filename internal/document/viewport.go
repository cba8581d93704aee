package document

// pageOverlap is the number of lines kept from the previous page when paging.
const pageOverlap = 2

// Viewport is a scroll window over content taller than the screen. Every
// mutation keeps 0 <= offset <= max(0, contentHeight-height).
type Viewport struct {
	offset        int
	height        int
	contentHeight int
}

// NewViewport returns a viewport of the given height at offset zero.
func NewViewport(height int) Viewport {
	return Viewport{height: max(0, height)}
}

func (v Viewport) Offset() int        { return v.offset }
func (v Viewport) Height() int        { return v.height }
func (v Viewport) ContentHeight() int { return v.contentHeight }

// MaxOffset is the furthest the window can scroll.
func (v Viewport) MaxOffset() int {
	return max(0, v.contentHeight-v.height)
}

// SetHeight resizes the window.
func (v *Viewport) SetHeight(h int) {
	v.height = max(0, h)
	v.clamp()
}

// SetContentHeight updates the scrollable extent.
func (v *Viewport) SetContentHeight(h int) {
	v.contentHeight = max(0, h)
	v.clamp()
}

// SetOffset scrolls to an absolute offset.
func (v *Viewport) SetOffset(offset int) {
	v.offset = offset
	v.clamp()
}

func (v *Viewport) clamp() {
	v.offset = min(max(0, v.offset), v.MaxOffset())
}

func (v *Viewport) ScrollUp(n int) {
	v.SetOffset(v.offset - max(0, n))
}

func (v *Viewport) ScrollDown(n int) {
	v.SetOffset(v.offset + max(0, n))
}

func (v *Viewport) ScrollToTop() {
	v.offset = 0
}

func (v *Viewport) ScrollToBottom() {
	v.offset = v.MaxOffset()
}

// PageUp scrolls one window up, keeping a small overlap.
func (v *Viewport) PageUp() {
	v.ScrollUp(v.pageSize())
}

// PageDown scrolls one window down, keeping a small overlap.
func (v *Viewport) PageDown() {
	v.ScrollDown(v.pageSize())
}

func (v *Viewport) pageSize() int {
	return max(1, v.height-pageOverlap)
}

// Visible reports whether any part of [y, y+h) is inside the window.
func (v Viewport) Visible(y, h int) bool {
	return y < v.offset+v.height && y+h > v.offset
}

// Contains reports whether [y, y+h) lies entirely inside the window.
func (v Viewport) Contains(y, h int) bool {
	return y >= v.offset && y+h <= v.offset+v.height
}

// EnsureVisible scrolls the minimum amount to show [y, y+h).
func (v *Viewport) EnsureVisible(y, h int) {
	v.EnsureVisibleWithPadding(y, h, 0)
}

// EnsureVisibleWithPadding scrolls so [y, y+h) is visible with padding lines
// of context on the side it enters from. A region taller than the window is
// aligned to the top edge instead.
func (v *Viewport) EnsureVisibleWithPadding(y, h, padding int) {
	if h > v.height {
		v.SetOffset(y)
		return
	}
	// Padding never pushes the region itself out of the window.
	padding = min(max(0, padding), (v.height-h)/2)

	switch {
	case y-padding < v.offset:
		v.offset = max(0, y-padding)
	case y+h+padding > v.offset+v.height:
		v.offset = min(v.MaxOffset(), y+h+padding-v.height)
	}
	v.clamp()
}

// SmartPadding returns the autoscroll padding for a window height. Small
// windows get a single line, larger ones more framing.
func SmartPadding(height int) int {
	switch {
	case height < 12:
		return 1
	case height < 20:
		return 2
	case height < 30:
		return 3
	case height < 40:
		return 4
	default:
		return 5
	}
}
