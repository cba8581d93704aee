package document

import (
	"fmt"
	"strings"
)

// Document is one screen of content. Build must be pure: calling it twice on
// an unchanged snapshot returns the same structure, heights and focusable ids
// in the same order, so focus can be restored across rebuilds.
type Document interface {
	Title() string
	Build() []Element
}

// Builder assembles an element list top to bottom.
//
//	b := document.NewBuilder()
//	b.Heading("Standings").Spacer(1)
//	b.Add(document.ForEach(teams, teamLink)...)
//	return b.Build()
type Builder struct {
	elements []Element
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends prebuilt elements.
func (b *Builder) Add(elements ...Element) *Builder {
	b.elements = append(b.elements, elements...)
	return b
}

// Heading appends an underlined heading.
func (b *Builder) Heading(text string) *Builder {
	return b.Add(Heading(text))
}

// Subheading appends a heading without an underline.
func (b *Builder) Subheading(text string) *Builder {
	return b.Add(Subheading(text))
}

// Text appends a paragraph; embedded newlines start new lines.
func (b *Builder) Text(text string) *Builder {
	return b.Add(Text(text))
}

// Muted appends a paragraph in the muted tone.
func (b *Builder) Muted(text string) *Builder {
	return b.Add(TextTone(text, ToneMuted))
}

// Link appends a focusable line that opens target when activated.
func (b *Builder) Link(text string, target Target, id string) *Builder {
	return b.Add(Link(text, target, id))
}

// Table appends a table.
func (b *Builder) Table(t Table) *Builder {
	return b.Add(TableOf(t))
}

// Row appends children laid out side by side.
func (b *Builder) Row(children ...Element) *Builder {
	return b.Add(Row(children...))
}

// Group appends children stacked vertically as one element.
func (b *Builder) Group(children ...Element) *Builder {
	return b.Add(Group(children...))
}

// Separator appends a full-width rule.
func (b *Builder) Separator() *Builder {
	return b.Add(Separator())
}

// Spacer appends n blank lines.
func (b *Builder) Spacer(n int) *Builder {
	return b.Add(Spacer(n))
}

// If runs fn only when cond holds.
func (b *Builder) If(cond bool, fn func(*Builder)) *Builder {
	if cond {
		fn(b)
	}
	return b
}

// Error appends a fetch failure as ordinary content.
func (b *Builder) Error(err error) *Builder {
	if err == nil {
		return b
	}
	return b.Add(TextTone(fmt.Sprintf("Error: %v", err), ToneDanger))
}

// Custom appends an element drawn by fn at a fixed height.
func (b *Builder) Custom(height int, fn DrawFunc) *Builder {
	return b.Add(Custom(height, fn))
}

// Build returns the assembled elements.
func (b *Builder) Build() []Element {
	out := make([]Element, len(b.elements))
	copy(out, b.elements)
	return out
}

// ForEach maps items to elements in order.
func ForEach[T any](items []T, fn func(i int, item T) Element) []Element {
	out := make([]Element, 0, len(items))
	for i, item := range items {
		out = append(out, fn(i, item))
	}
	return out
}

// Text returns a text element split on newlines.
func Text(text string) Element {
	return TextTone(text, ToneNormal)
}

// TextTone returns a text element with the given tone.
func TextTone(text string, tone Tone) Element {
	return Element{Kind: KindText, Lines: strings.Split(text, "\n"), Tone: tone}
}

// Heading returns an underlined heading.
func Heading(text string) Element {
	return Element{Kind: KindHeading, Text: text, Underline: true}
}

// Subheading returns a single-line heading.
func Subheading(text string) Element {
	return Element{Kind: KindHeading, Text: text}
}

// Link returns a focusable link element.
func Link(text string, target Target, id string) Element {
	t := target
	return Element{Kind: KindLink, Text: text, ID: id, Target: &t}
}

// TableOf wraps a table as an element.
func TableOf(t Table) Element {
	tbl := t
	return Element{Kind: KindTable, Table: &tbl}
}

// Row lays children out side by side in equal-width columns.
func Row(children ...Element) Element {
	return Element{Kind: KindRow, Children: children}
}

// Group stacks children vertically.
func Group(children ...Element) Element {
	return Element{Kind: KindGroup, Children: children}
}

// Separator returns a horizontal rule.
func Separator() Element {
	return Element{Kind: KindSeparator}
}

// Spacer returns n blank lines.
func Spacer(n int) Element {
	return Element{Kind: KindSpacer, Size: max(0, n)}
}

// Custom returns an element with a caller-supplied renderer.
func Custom(height int, fn DrawFunc) Element {
	return Element{Kind: KindCustom, Size: max(0, height), Draw: fn}
}
