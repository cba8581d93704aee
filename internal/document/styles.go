package document

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles elements render with. The UI derives them
// from its theme; DefaultStyles is a plain fallback.
type Styles struct {
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style

	Heading     lipgloss.Style
	Link        lipgloss.Style
	Focused     lipgloss.Style
	Rule        lipgloss.Style
	TableHeader lipgloss.Style
}

// DefaultStyles returns uncolored styles that still distinguish focus.
func DefaultStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Text:        plain,
		Muted:       plain.Faint(true),
		Accent:      plain.Bold(true),
		Success:     plain,
		Warning:     plain,
		Danger:      plain.Bold(true),
		Heading:     plain.Bold(true),
		Link:        plain.Underline(true),
		Focused:     plain.Reverse(true),
		Rule:        plain.Faint(true),
		TableHeader: plain.Bold(true),
	}
}

func (s Styles) tone(t Tone) lipgloss.Style {
	switch t {
	case ToneMuted:
		return s.Muted
	case ToneAccent:
		return s.Accent
	case ToneSuccess:
		return s.Success
	case ToneWarning:
		return s.Warning
	case ToneDanger:
		return s.Danger
	default:
		return s.Text
	}
}
