package screens

import (
	"strings"

	"github.com/five82/faceoff/internal/document"
)

// HelpItem is one key and what it does.
type HelpItem struct {
	Key  string
	Desc string
}

// HelpSection groups related keys under a heading.
type HelpSection struct {
	Title string
	Items []HelpItem
}

// HelpDocument renders key bindings through the markdown builder.
type HelpDocument struct {
	Sections []HelpSection
}

func (d HelpDocument) Title() string { return "Help" }

func (d HelpDocument) Build() []document.Element {
	return document.NewBuilder().Markdown(d.Markdown()).Build()
}

// Markdown is the source the document is built from.
func (d HelpDocument) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# Keys\n\n")
	sb.WriteString("Press esc to close this page.\n")
	for _, section := range d.Sections {
		if len(section.Items) == 0 {
			continue
		}
		sb.WriteString("\n## " + section.Title + "\n\n")
		for _, item := range section.Items {
			sb.WriteString("- `" + item.Key + "` " + item.Desc + "\n")
		}
	}
	return sb.String()
}

// LoadingDocument stands in for a drill-down while its data is fetched.
type LoadingDocument struct {
	Name string
}

func (d LoadingDocument) Title() string { return d.Name }

func (d LoadingDocument) Build() []document.Element {
	return document.NewBuilder().Heading(d.Name).Muted("Loading…").Build()
}
