package screens

import (
	"fmt"
	"strconv"

	"github.com/five82/faceoff/internal/document"
	"github.com/five82/faceoff/internal/nhl"
)

// BoxscoreDocument shows both teams of a game side by side.
type BoxscoreDocument struct {
	GameID int64
	Box    *nhl.Boxscore
	Err    error
}

func (d BoxscoreDocument) Title() string {
	if d.Box == nil {
		return "Game " + strconv.FormatInt(d.GameID, 10)
	}
	return d.Box.AwayTeam.Abbrev + " @ " + d.Box.HomeTeam.Abbrev
}

func (d BoxscoreDocument) Build() []document.Element {
	b := document.NewBuilder()
	if d.Box == nil {
		b.Heading(d.Title())
		if d.Err != nil {
			return b.Error(d.Err).Build()
		}
		return b.Muted("Loading…").Build()
	}

	box := d.Box
	b.Heading(fmt.Sprintf("%s %d  @  %s %d", box.AwayTeam.Abbrev, box.AwayTeam.Score, box.HomeTeam.Abbrev, box.HomeTeam.Score))
	game := nhl.Game{GameState: box.GameState, PeriodDescriptor: box.PeriodDescriptor, Clock: box.Clock}
	status := game.Status(nil)
	if box.GameDate != "" {
		status = box.GameDate + "  " + status
	}
	if venue := box.Venue.String(); venue != "" {
		status += "  " + venue
	}
	b.Muted(status)
	b.Muted(fmt.Sprintf("Shots  %s %d  %s %d", box.AwayTeam.Abbrev, box.AwayTeam.SOG, box.HomeTeam.Abbrev, box.HomeTeam.SOG))
	b.Error(d.Err)
	b.Spacer(1)

	b.Row(
		boxscoreTeam(box.AwayTeam, box.PlayerByGameStats.AwayTeam),
		boxscoreTeam(box.HomeTeam, box.PlayerByGameStats.HomeTeam),
	)
	return b.Build()
}

func boxscoreTeam(team nhl.BoxscoreTeam, stats nhl.TeamGameStats) document.Element {
	name := team.CommonName.String()
	if name == "" {
		name = team.Abbrev
	}
	return document.Group(
		document.Subheading(name),
		skaterLines("Forwards", stats.Forwards),
		document.Spacer(1),
		skaterLines("Defense", stats.Defense),
		document.Spacer(1),
		goalieLines(stats.Goalies),
	)
}

func skaterLines(title string, skaters []nhl.GameSkater) document.Element {
	rows := make([][]document.Cell, len(skaters))
	for i, s := range skaters {
		rows[i] = []document.Cell{
			playerCell(s.PlayerID, s.Name.String()),
			{Text: itoa(s.Goals)},
			{Text: itoa(s.Assists)},
			{Text: itoa(s.Points), Tone: document.ToneAccent},
			{Text: signed(s.PlusMinus)},
			{Text: itoa(s.SOG)},
			{Text: orDash(s.TOI)},
		}
	}
	return document.TableOf(document.Table{
		Columns: []document.Column{
			{Title: title},
			{Title: "G", Width: 2, Align: document.AlignRight},
			{Title: "A", Width: 2, Align: document.AlignRight},
			{Title: "P", Width: 2, Align: document.AlignRight},
			{Title: "+/-", Width: 3, Align: document.AlignRight},
			{Title: "SOG", Width: 3, Align: document.AlignRight},
			{Title: "TOI", Width: 5, Align: document.AlignRight},
		},
		Rows: rows,
	})
}

func goalieLines(goalies []nhl.GameGoalie) document.Element {
	rows := make([][]document.Cell, len(goalies))
	for i, g := range goalies {
		rows[i] = []document.Cell{
			playerCell(g.PlayerID, g.Name.String()),
			{Text: orDash(g.SaveShotsAgainst)},
			{Text: pct(g.SavePctg)},
			{Text: itoa(g.GoalsAgainst)},
			{Text: orDash(g.TOI)},
		}
	}
	return document.TableOf(document.Table{
		Columns: []document.Column{
			{Title: "Goalies"},
			{Title: "SV/SA", Width: 5, Align: document.AlignRight},
			{Title: "SV%", Width: 4, Align: document.AlignRight},
			{Title: "GA", Width: 2, Align: document.AlignRight},
			{Title: "TOI", Width: 5, Align: document.AlignRight},
		},
		Rows: rows,
	})
}

func playerCell(id int64, name string) document.Cell {
	return document.Cell{
		Text:   name,
		ID:     playerID(id),
		Target: &document.Target{Kind: TargetPlayer, Key: strconv.FormatInt(id, 10), Index: -1},
	}
}
