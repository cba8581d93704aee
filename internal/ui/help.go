package ui

import (
	"github.com/five82/faceoff/internal/document"
	"github.com/five82/faceoff/internal/screens"
)

var helpSectionTitles = []string{"Tabs", "Navigation", "Scrolling", "Scores", "General"}

// helpDocument lists every binding of the key map, grouped like FullHelp.
func (m Model) helpDocument() screens.HelpDocument {
	groups := m.keys.FullHelp()
	sections := make([]screens.HelpSection, 0, len(groups))
	for i, group := range groups {
		title := "More"
		if i < len(helpSectionTitles) {
			title = helpSectionTitles[i]
		}
		section := screens.HelpSection{Title: title}
		for _, b := range group {
			h := b.Help()
			section.Items = append(section.Items, screens.HelpItem{Key: h.Key, Desc: h.Desc})
		}
		sections = append(sections, section)
	}
	return screens.HelpDocument{Sections: sections}
}

// toggleHelp pushes the help page onto the active tab, or pops it when it is
// already on top.
func (m *Model) toggleHelp() {
	t := m.currentTab()
	if e, ok := t.stack.Top(); ok {
		if _, isHelp := e.Document().(screens.HelpDocument); isHelp {
			t.stack.Pop()
			return
		}
	}
	t.stack.Push(m.helpDocument(), document.FocusNone)
}
