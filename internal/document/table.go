package document

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Align controls horizontal placement of cell text.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column. A zero Width makes the column flexible:
// flexible columns share whatever width the fixed columns leave over.
type Column struct {
	Title string
	Width int
	Align Align
}

// Cell is one table value. Cells with a Target and an ID are focusable.
type Cell struct {
	Text   string
	Tone   Tone
	ID     string
	Target *Target
}

// Focusable reports whether the cell yields a focusable node.
func (c Cell) Focusable() bool {
	return c.ID != "" && c.Target != nil
}

// Table is tabular content. Its height is one line per row plus a header and
// rule unless HideHeader is set.
type Table struct {
	Columns    []Column
	Rows       [][]Cell
	HideHeader bool
}

const columnGap = 1

// HeaderLines is the number of lines drawn above the first row.
func (t *Table) HeaderLines() int {
	if t.HideHeader {
		return 0
	}
	return 2
}

// Height returns the number of lines the table occupies.
func (t *Table) Height() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return t.HeaderLines() + len(t.Rows)
}

// columnWidths resolves fixed and flexible widths for the available width.
func (t *Table) columnWidths(width int) []int {
	widths := make([]int, len(t.Columns))
	fixed, flex := 0, 0
	for i, col := range t.Columns {
		if col.Width > 0 {
			widths[i] = col.Width
			fixed += col.Width
		} else {
			flex++
		}
	}
	fixed += columnGap * max(0, len(t.Columns)-1)
	if flex == 0 {
		return widths
	}
	remaining := max(0, width-fixed)
	share := remaining / flex
	extra := remaining - share*flex
	for i, col := range t.Columns {
		if col.Width > 0 {
			continue
		}
		widths[i] = share
		if extra > 0 {
			widths[i]++
			extra--
		}
	}
	return widths
}

func (t *Table) lines(width int, styles Styles, focusedID string) []string {
	widths := t.columnWidths(width)
	out := make([]string, 0, t.Height())
	if !t.HideHeader {
		header := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			header[i] = styles.TableHeader.Render(fitCell(col.Title, widths[i], col.Align))
		}
		out = append(out, strings.Join(header, strings.Repeat(" ", columnGap)))
		out = append(out, styles.Rule.Render(strings.Repeat("─", max(0, width))))
	}
	for _, row := range t.Rows {
		parts := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			var cell Cell
			if i < len(row) {
				cell = row[i]
			}
			text := fitCell(cell.Text, widths[i], col.Align)
			switch {
			case cell.Focusable() && cell.ID == focusedID:
				parts[i] = styles.Focused.Render(text)
			case cell.Focusable():
				parts[i] = styles.Link.Render(text)
			default:
				parts[i] = styles.tone(cell.Tone).Render(text)
			}
		}
		out = append(out, strings.Join(parts, strings.Repeat(" ", columnGap)))
	}
	return out
}

// fitCell truncates or pads plain text to exactly width cells.
func fitCell(text string, width int, align Align) string {
	if width <= 0 {
		return ""
	}
	text = ansi.Truncate(text, width, "…")
	pad := width - ansi.StringWidth(text)
	if pad <= 0 {
		return text
	}
	if align == AlignRight {
		return strings.Repeat(" ", pad) + text
	}
	return text + strings.Repeat(" ", pad)
}
