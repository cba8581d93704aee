package screens

import (
	"github.com/five82/faceoff/internal/document"
	"github.com/five82/faceoff/internal/logtail"
)

// LogDocument lists recent log entries, newest first.
type LogDocument struct {
	Path    string
	Entries []logtail.Entry
	Err     error
}

func (d LogDocument) Title() string { return "Log" }

func (d LogDocument) Build() []document.Element {
	b := document.NewBuilder().Heading("Log")
	if d.Path != "" {
		b.Muted(d.Path)
	}
	b.Error(d.Err)
	if len(d.Entries) == 0 {
		if d.Err == nil {
			b.Muted("No log entries yet.")
		}
		return b.Build()
	}

	rows := make([][]document.Cell, 0, len(d.Entries))
	for i := len(d.Entries) - 1; i >= 0; i-- {
		e := d.Entries[i]
		when := ""
		if !e.Time.IsZero() {
			when = e.Time.Local().Format("15:04:05")
		}
		message := e.Message
		if fields := e.FieldString(); fields != "" {
			message += "  " + fields
		}
		tone := levelTone(e.Level)
		rows = append(rows, []document.Cell{
			{Text: when, Tone: document.ToneMuted},
			{Text: e.Level, Tone: tone},
			{Text: message, Tone: tone},
		})
	}
	return b.Spacer(1).Table(document.Table{
		Columns: []document.Column{
			{Title: "Time", Width: 8},
			{Title: "Level", Width: 5},
			{Title: "Message"},
		},
		Rows: rows,
	}).Build()
}

func levelTone(level string) document.Tone {
	switch level {
	case "WARN":
		return document.ToneWarning
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return document.ToneDanger
	case "DEBUG":
		return document.ToneMuted
	default:
		return document.ToneNormal
	}
}
