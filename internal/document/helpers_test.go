package document

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// staticDoc is a Document over a fixed element-producing function.
type staticDoc struct {
	title string
	build func() []Element
}

func (d staticDoc) Title() string    { return d.title }
func (d staticDoc) Build() []Element { return d.build() }

func docOf(title string, elements ...Element) staticDoc {
	return staticDoc{title: title, build: func() []Element { return elements }}
}

func linkList(n int) []Element {
	out := make([]Element, n)
	for i := range out {
		out[i] = Link(fmt.Sprintf("item %d", i), Target{Kind: "item", Key: fmt.Sprint(i), Index: i}, fmt.Sprintf("link-%d", i))
	}
	return out
}

func linksDoc(n int) staticDoc {
	return staticDoc{title: "links", build: func() []Element { return linkList(n) }}
}

func markedStyles() Styles {
	s := DefaultStyles()
	s.Focused = lipgloss.NewStyle().Transform(strings.ToUpper)
	return s
}

func plainLines(buf *Buffer) []string {
	lines := buf.Lines()
	for i, l := range lines {
		lines[i] = strings.TrimRight(ansi.Strip(l), " ")
	}
	return lines
}
