package document

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Markdown appends headings, paragraphs, lists, code blocks and rules parsed
// from src. Links and emphasis collapse to their text.
func (b *Builder) Markdown(src string) *Builder {
	return b.Add(Markdown(src)...)
}

// Markdown converts markdown source into elements.
func Markdown(src string) []Element {
	source := []byte(src)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var out []Element
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if len(out) > 0 {
			out = append(out, Spacer(1))
		}
		switch node := n.(type) {
		case *ast.Heading:
			title := inlineText(node, source)
			if node.Level <= 1 {
				out = append(out, Heading(title))
			} else {
				out = append(out, Subheading(title))
			}
		case *ast.ThematicBreak:
			out = append(out, Separator())
		case *ast.List:
			out = append(out, listElement(node, source))
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			out = append(out, TextTone(blockLines(node, source), ToneMuted))
		default:
			if t := inlineText(node, source); t != "" {
				out = append(out, Text(t))
			}
		}
	}
	return out
}

func listElement(list *ast.List, source []byte) Element {
	var lines []string
	index := list.Start
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "•"
		if list.IsOrdered() {
			marker = strconv.Itoa(index) + "."
			index++
		}
		body := inlineText(item, source)
		for i, line := range strings.Split(body, "\n") {
			if i == 0 {
				lines = append(lines, marker+" "+line)
				continue
			}
			lines = append(lines, strings.Repeat(" ", utf8.RuneCountInString(marker)+1)+line)
		}
	}
	return Text(strings.Join(lines, "\n"))
}

// inlineText flattens the inline content of n, keeping hard and soft line
// breaks as newlines.
func inlineText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(node ast.Node) {
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				buf.Write(t.Segment.Value(source))
				if t.HardLineBreak() || t.SoftLineBreak() {
					buf.WriteByte('\n')
				}
			case *ast.String:
				buf.Write(t.Value)
			case *ast.CodeSpan:
				walk(t)
			default:
				if c.Type() == ast.TypeBlock && buf.Len() > 0 {
					buf.WriteByte('\n')
				}
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}

func blockLines(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return strings.TrimRight(buf.String(), "\n")
}
