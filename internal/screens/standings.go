package screens

import (
	"strings"

	"github.com/five82/faceoff/internal/document"
	"github.com/five82/faceoff/internal/nhl"
)

// StandingsDocument lays the four divisions out as a two by two grid. Every
// team links to its roster.
type StandingsDocument struct {
	Standings []nhl.Standing
	Favorite  string
	Err       error
}

func (d StandingsDocument) Title() string { return "Standings" }

func (d StandingsDocument) Build() []document.Element {
	b := document.NewBuilder().Heading("Standings")
	b.Error(d.Err)
	divisions := nhl.GroupByDivision(d.Standings)
	if len(divisions) == 0 {
		if d.Err == nil {
			b.Muted("Standings have not loaded yet.")
		}
		return b.Build()
	}
	for i := 0; i < len(divisions); i += 2 {
		if i > 0 {
			b.Spacer(1)
		}
		left := d.division(divisions[i])
		right := document.Group()
		if i+1 < len(divisions) {
			right = d.division(divisions[i+1])
		}
		b.Row(left, right)
	}
	return b.Build()
}

func (d StandingsDocument) division(div nhl.Division) document.Element {
	rows := make([][]document.Cell, len(div.Teams))
	for i, team := range div.Teams {
		abbrev := team.Abbrev()
		tone := document.ToneNormal
		if d.Favorite != "" && strings.EqualFold(abbrev, d.Favorite) {
			tone = document.ToneAccent
		}
		rows[i] = []document.Cell{
			{
				Text:   abbrev + " " + team.TeamCommonName.String(),
				Tone:   tone,
				ID:     teamID(abbrev),
				Target: &document.Target{Kind: TargetTeam, Key: abbrev, Index: -1},
			},
			{Text: itoa(team.GamesPlayed)},
			{Text: itoa(team.Wins)},
			{Text: itoa(team.Losses)},
			{Text: itoa(team.OTLosses)},
			{Text: itoa(team.Points), Tone: document.ToneAccent},
			{Text: signed(team.GoalDifferential)},
			{Text: team.Streak(), Tone: streakTone(team.StreakCode)},
		}
	}
	return document.Group(
		document.Subheading(div.Name),
		document.TableOf(document.Table{
			Columns: []document.Column{
				{Title: "Team"},
				{Title: "GP", Width: 3, Align: document.AlignRight},
				{Title: "W", Width: 3, Align: document.AlignRight},
				{Title: "L", Width: 3, Align: document.AlignRight},
				{Title: "OT", Width: 3, Align: document.AlignRight},
				{Title: "PTS", Width: 3, Align: document.AlignRight},
				{Title: "DIFF", Width: 4, Align: document.AlignRight},
				{Title: "STRK", Width: 4, Align: document.AlignRight},
			},
			Rows: rows,
		}),
	)
}

func streakTone(code string) document.Tone {
	switch code {
	case "W":
		return document.ToneSuccess
	case "L":
		return document.ToneDanger
	default:
		return document.ToneNormal
	}
}
