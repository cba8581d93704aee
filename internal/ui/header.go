package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// BgStyle renders segments of a bar on one background color. lipgloss
// resets the background between separately styled segments, so spaces
// between them are styled explicitly.
type BgStyle struct {
	bg    lipgloss.Color
	space string
}

// NewBgStyle creates a background helper for bgColor.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// Render styles text, including its inner spaces, on the background.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	wordStyle := style.Background(b.bg)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = wordStyle.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

// Space returns a single styled space.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces returns n styled spaces.
func (b BgStyle) Spaces(n int) string {
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Join joins parts with a styled separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, lipgloss.NewStyle().Background(b.bg).Render(sep))
}

// renderHeader renders the tab bar with status and the breadcrumb line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("faceoff", styles.Logo)}
	for _, t := range m.tabs {
		label := fmt.Sprintf("%d %s", int(t.id)+1, t.name)
		if t.id == m.active {
			parts = append(parts, styles.Selected.Render(label))
		} else {
			parts = append(parts, bg.Render(label, styles.MutedText))
		}
	}
	parts = append(parts, m.statusContent(styles, bg)...)

	bar := styles.Header.Width(m.width).Render(ansi.Truncate(strings.Join(parts, sep), max(0, m.width-2), "…"))
	return bar + "\n" + m.renderBreadcrumbs(styles, bg)
}

// statusContent describes poller health, the day being viewed and any
// pending load.
func (m Model) statusContent(styles Styles, bg BgStyle) []string {
	var parts []string
	switch {
	case m.snapshot.IsOffline():
		parts = append(parts,
			bg.Render(classifyConnectionError(m.snapshot.LastError), styles.DangerText),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
		)
	case m.snapshot.LastUpdated.IsZero():
		parts = append(parts, bg.Render("Connecting...", styles.WarningText.Bold(true)))
	default:
		parts = append(parts,
			bg.Render("Updated", styles.MutedText)+bg.Space()+
				bg.Render(m.snapshot.LastUpdated.In(m.location).Format("15:04:05"), styles.Text))
	}
	if m.day.date != "" {
		parts = append(parts, bg.Render("Day", styles.MutedText)+bg.Space()+bg.Render(m.day.date, styles.AccentText))
	}
	if m.loading() {
		parts = append(parts, m.spinner.View()+bg.Space()+bg.Render("Loading", styles.MutedText))
	}
	return parts
}

// breadcrumbs lists the active tab, every stacked screen title and the
// focused node.
func (m Model) breadcrumbs() (trail []string, focused string) {
	t := m.currentTab()
	trail = append(trail, t.name)
	trail = append(trail, t.stack.Titles()...)
	if n, ok := t.view().Focused(); ok {
		focused = n.ID
	}
	return trail, focused
}

func (m Model) renderBreadcrumbs(styles Styles, bg BgStyle) string {
	trail, focused := m.breadcrumbs()
	rendered := make([]string, len(trail))
	for i, crumb := range trail {
		style := styles.MutedText
		if i == len(trail)-1 {
			style = styles.Text.Bold(true)
		}
		rendered[i] = bg.Render(truncateMiddle(crumb, 32), style)
	}
	line := bg.Join(rendered, " › ")
	if focused != "" {
		line += bg.Spaces(2) + bg.Render("["+focused+"]", styles.FaintText)
	}
	return styles.Header.Width(m.width).Render(ansi.Truncate(line, max(0, m.width-2), "…"))
}

// classifyConnectionError returns a short description of the poll error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	case strings.Contains(msg, "returned status"):
		return "API ERROR"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the key hints for the current context.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	t := m.currentTab()
	commands := []cmd{{"tab", "Next"}, {"←/→", "Column"}, {"enter", "Open"}}
	if !t.stack.Empty() {
		commands = append(commands, cmd{"esc", "Back"})
	}
	if t.id == tabScores && t.stack.Empty() {
		commands = append(commands, cmd{"[/]", "Day"})
	}
	if m.width >= LayoutCompactWidth {
		commands = append(commands, cmd{"j/k", "Scroll"}, cmd{"1-3", "Tabs"})
	}
	commands = append(commands, cmd{"?", "Help"})

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(ansi.Truncate(strings.Join(segments, bg.Spaces(2)), max(0, m.width-2), "…"))
}

// truncateMiddle shortens s in the middle, keeping more of the end.
func truncateMiddle(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 5 {
		return string(runes[:limit])
	}
	endLen := (limit - 1) * 2 / 3
	startLen := limit - 1 - endLen
	return string(runes[:startLen]) + "…" + string(runes[len(runes)-endLen:])
}
