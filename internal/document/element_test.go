package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementHeights(t *testing.T) {
	tests := []struct {
		name string
		el   Element
		want int
	}{
		{"text lines", Text("a\nb\nc"), 3},
		{"heading underlined", Heading("Title"), 2},
		{"subheading", Subheading("Title"), 1},
		{"separator", Separator(), 1},
		{"spacer", Spacer(4), 4},
		{"negative spacer", Spacer(-2), 0},
		{"link", Link("x", Target{}, "x"), 1},
		{"table with header", TableOf(Table{Columns: []Column{{Title: "A"}}, Rows: [][]Cell{{{Text: "1"}}, {{Text: "2"}}}}), 4},
		{"table without header", TableOf(Table{Columns: []Column{{Title: "A"}}, Rows: [][]Cell{{{Text: "1"}}}, HideHeader: true}), 1},
		{"table without columns", TableOf(Table{}), 0},
		{"custom", Custom(3, nil), 3},
		{"group sums", Group(Text("a\nb"), Spacer(1), Heading("h")), 5},
		{"row takes max", Row(Text("a\nb"), Text("a\nb\nc\nd"), Spacer(1)), 4},
		{"empty row", Row(), 0},
		{"nested", Group(Row(Group(Spacer(2), Spacer(3)), Spacer(1)), Separator()), 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.el.Height())
		})
	}
}

func TestBuilderAssemblesInOrder(t *testing.T) {
	b := NewBuilder()
	b.Heading("Roster").
		Text("line one\nline two").
		Separator().
		Spacer(2).
		Link("Open", Target{Kind: "team", Key: "TOR"}, "team-TOR").
		If(false, func(b *Builder) { b.Text("hidden") }).
		If(true, func(b *Builder) { b.Muted("shown") }).
		Error(errors.New("boom")).
		Error(nil)

	got := b.Build()
	kinds := make([]Kind, len(got))
	for i, e := range got {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []Kind{KindHeading, KindText, KindSeparator, KindSpacer, KindLink, KindText, KindText}, kinds)
	assert.Equal(t, ToneMuted, got[5].Tone)
	assert.Equal(t, ToneDanger, got[6].Tone)
	assert.Equal(t, []string{"Error: boom"}, got[6].Lines)
}

func TestBuildReturnsIndependentSlice(t *testing.T) {
	b := NewBuilder().Text("a")
	first := b.Build()
	b.Text("b")
	assert.Len(t, first, 1)
	assert.Len(t, b.Build(), 2)
}

func TestForEachMapsInOrder(t *testing.T) {
	names := []string{"a", "b", "c"}
	got := ForEach(names, func(i int, s string) Element {
		return Link(s, Target{Index: i}, "id-"+s)
	})
	require.Len(t, got, 3)
	for i, e := range got {
		assert.Equal(t, names[i], e.Text)
		assert.Equal(t, i, e.Target.Index)
	}
	assert.Empty(t, ForEach([]int(nil), func(int, int) Element { return Spacer(1) }))
}

func TestBuildIsIdempotent(t *testing.T) {
	doc := staticDoc{title: "t", build: func() []Element {
		b := NewBuilder()
		b.Heading("Scores")
		b.Row(
			Group(linkList(3)...),
			TableOf(Table{
				Columns: []Column{{Title: "Team"}, {Title: "Pts", Width: 3, Align: AlignRight}},
				Rows: [][]Cell{
					{{Text: "TOR", ID: "t-TOR", Target: &Target{Kind: "team", Key: "TOR"}}, {Text: "90"}},
					{{Text: "MTL", ID: "t-MTL", Target: &Target{Kind: "team", Key: "MTL"}}, {Text: "80"}},
				},
			}),
		)
		b.Spacer(1)
		return b.Build()
	}}

	first, second := doc.Build(), doc.Build()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Height(), second[i].Height())
	}
	assert.Equal(t, CollectNodes(first), CollectNodes(second))
}

func TestContentHeightMatchesViewport(t *testing.T) {
	elements := []Element{Heading("a"), Text("1\n2\n3"), Row(Text("x"), Spacer(5)), Separator()}
	v := NewView(4)
	v.Rebuild(docOf("doc", elements...))

	want := 0
	for _, e := range elements {
		want += e.Height()
	}
	assert.Equal(t, want, v.Viewport().ContentHeight())
	assert.Equal(t, want, ContentHeight(v.Elements()))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "row", KindRow.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
