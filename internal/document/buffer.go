package document

import (
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Area is a rectangle of screen cells.
type Area struct {
	X, Y          int
	Width, Height int
}

type span struct {
	x, width int
	text     string
}

// Buffer collects styled text spans per screen row. Spans never split inside
// an escape sequence, so each one is truncated and padded on its own and the
// row is composed left to right when read.
type Buffer struct {
	width  int
	height int
	rows   [][]span
}

// NewBuffer returns an empty buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	width, height = max(0, width), max(0, height)
	return &Buffer{
		width:  width,
		height: height,
		rows:   make([][]span, height),
	}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Area returns the whole buffer as an area.
func (b *Buffer) Area() Area {
	return Area{Width: b.width, Height: b.height}
}

// Put writes text at (x, y), clipped and padded to width cells. Spans already
// on the row that overlap the new one are dropped.
func (b *Buffer) Put(x, y, width int, text string) {
	if y < 0 || y >= b.height || x >= b.width || width <= 0 {
		return
	}
	if x < 0 {
		width += x
		x = 0
	}
	width = min(width, b.width-x)
	if width <= 0 {
		return
	}
	text = ansi.Truncate(text, width, "")
	if pad := width - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}

	row := b.rows[y][:0]
	for _, s := range b.rows[y] {
		if s.x+s.width <= x || s.x >= x+width {
			row = append(row, s)
		}
	}
	row = append(row, span{x: x, width: width, text: text})
	slices.SortFunc(row, func(a, c span) int { return a.x - c.x })
	b.rows[y] = row
}

// Line composes row y, padded to the buffer width.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	cursor := 0
	for _, s := range b.rows[y] {
		if s.x > cursor {
			sb.WriteString(strings.Repeat(" ", s.x-cursor))
		}
		sb.WriteString(s.text)
		cursor = s.x + s.width
	}
	if cursor < b.width {
		sb.WriteString(strings.Repeat(" ", b.width-cursor))
	}
	return sb.String()
}

// Lines returns every composed row.
func (b *Buffer) Lines() []string {
	out := make([]string, b.height)
	for y := range out {
		out[y] = b.Line(y)
	}
	return out
}

// String joins the rows with newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}
