package document

// Kind identifies the variant held by an Element.
type Kind int

const (
	KindText Kind = iota
	KindHeading
	KindSeparator
	KindSpacer
	KindLink
	KindTable
	KindRow
	KindGroup
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindHeading:
		return "heading"
	case KindSeparator:
		return "separator"
	case KindSpacer:
		return "spacer"
	case KindLink:
		return "link"
	case KindTable:
		return "table"
	case KindRow:
		return "row"
	case KindGroup:
		return "group"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Tone selects the text style a leaf renders with.
type Tone int

const (
	ToneNormal Tone = iota
	ToneMuted
	ToneAccent
	ToneSuccess
	ToneWarning
	ToneDanger
)

// Target is what a focusable node opens when activated. Kind and Key are
// interpreted by the caller; Index carries a flat selection index for
// list-backed targets and is -1 otherwise.
type Target struct {
	Kind  string
	Key   string
	Index int
}

// DrawFunc renders a custom element into exactly height lines of the given width.
type DrawFunc func(width int, styles Styles) []string

// Element is one node of a document's content tree. Only the fields relevant
// to Kind are populated; composites (Row, Group) own Children and derive their
// height from them.
type Element struct {
	Kind Kind

	// ID identifies a focusable link. Empty for everything else.
	ID string

	// Text is the display text of headings and links.
	Text string
	// Lines holds the content of a text element, one entry per screen line.
	Lines []string
	Tone  Tone

	// Underline draws a rule beneath a heading.
	Underline bool

	// Size is the height of spacers and custom elements.
	Size int

	Target *Target
	Table  *Table

	Children []Element

	Draw DrawFunc
}

// Height reports how many lines the element occupies. Group height is the sum
// of its children, Row height is the tallest child.
func (e Element) Height() int {
	switch e.Kind {
	case KindText:
		return len(e.Lines)
	case KindHeading:
		if e.Underline {
			return 2
		}
		return 1
	case KindSeparator, KindLink:
		return 1
	case KindSpacer, KindCustom:
		return max(0, e.Size)
	case KindTable:
		if e.Table == nil {
			return 0
		}
		return e.Table.Height()
	case KindRow:
		h := 0
		for _, child := range e.Children {
			h = max(h, child.Height())
		}
		return h
	case KindGroup:
		return totalHeight(e.Children)
	default:
		return 0
	}
}

// Focusable reports whether the element itself is a focusable leaf. Tables
// contribute focusable nodes per link cell and are not focusable as a whole.
func (e Element) Focusable() bool {
	return e.Kind == KindLink && e.ID != "" && e.Target != nil
}

func totalHeight(elements []Element) int {
	h := 0
	for _, e := range elements {
		h += e.Height()
	}
	return h
}

// ContentHeight is the total height of a built element list.
func ContentHeight(elements []Element) int {
	return totalHeight(elements)
}
