package document

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// rowGap is the blank space between Row columns.
const rowGap = 2

// renderer draws the slice [top, bottom) of a document into an area.
type renderer struct {
	buf       *Buffer
	area      Area
	top       int
	bottom    int
	styles    Styles
	focusedID string
}

// draw lays out elements starting at document row y. Elements entirely
// outside the window are skipped before any layout happens.
func (r *renderer) draw(elements []Element, y, x, width int) {
	for _, e := range elements {
		if y >= r.bottom {
			return
		}
		h := e.Height()
		if y+h <= r.top || h == 0 {
			y += h
			continue
		}
		switch e.Kind {
		case KindGroup:
			r.draw(e.Children, y, x, width)
		case KindRow:
			r.drawRow(e, y, x, width)
		default:
			for i, line := range leafLines(e, width, r.styles, r.focusedID) {
				r.put(y+i, x, width, line)
			}
		}
		y += h
	}
}

func (r *renderer) drawRow(e Element, y, x, width int) {
	n := len(e.Children)
	if n == 0 {
		return
	}
	colWidth := (width - rowGap*(n-1)) / n
	if colWidth <= 0 {
		return
	}
	for i, child := range e.Children {
		w := colWidth
		if i == n-1 {
			w = width - (colWidth+rowGap)*(n-1)
		}
		r.draw([]Element{child}, y, x+i*(colWidth+rowGap), w)
	}
}

func (r *renderer) put(docY, x, width int, text string) {
	if docY < r.top || docY >= r.bottom {
		return
	}
	r.buf.Put(r.area.X+x, r.area.Y+docY-r.top, width, text)
}

// leafLines renders a leaf element to exactly Height() lines.
func leafLines(e Element, width int, styles Styles, focusedID string) []string {
	switch e.Kind {
	case KindText:
		style := styles.tone(e.Tone)
		out := make([]string, len(e.Lines))
		for i, line := range e.Lines {
			out[i] = style.Render(ansi.Truncate(line, width, "…"))
		}
		return out
	case KindHeading:
		title := ansi.Truncate(e.Text, width, "…")
		out := []string{styles.Heading.Render(title)}
		if e.Underline {
			out = append(out, styles.Rule.Render(strings.Repeat("─", ansi.StringWidth(title))))
		}
		return out
	case KindSeparator:
		return []string{styles.Rule.Render(strings.Repeat("─", max(0, width)))}
	case KindSpacer:
		return make([]string, e.Size)
	case KindLink:
		text := ansi.Truncate(e.Text, width, "…")
		if e.ID != "" && e.ID == focusedID {
			return []string{styles.Focused.Render(text)}
		}
		return []string{styles.Link.Render(text)}
	case KindTable:
		if e.Table == nil {
			return nil
		}
		return e.Table.lines(width, styles, focusedID)
	case KindCustom:
		lines := make([]string, max(0, e.Size))
		if e.Draw != nil {
			copy(lines, e.Draw(width, styles))
		}
		return lines
	default:
		return nil
	}
}
