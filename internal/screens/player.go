package screens

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/five82/faceoff/internal/document"
	"github.com/five82/faceoff/internal/nhl"
)

// PlayerDocument is a player's landing page.
type PlayerDocument struct {
	PlayerID int64
	Player   *nhl.Player
	Err      error
}

func (d PlayerDocument) Title() string {
	if d.Player == nil || d.Player.Name() == "" {
		return "Player " + strconv.FormatInt(d.PlayerID, 10)
	}
	return d.Player.Name()
}

func (d PlayerDocument) Build() []document.Element {
	b := document.NewBuilder().Heading(d.Title())
	if d.Err != nil {
		return b.Error(d.Err).Build()
	}
	if d.Player == nil {
		return b.Muted("Loading…").Build()
	}
	p := d.Player

	b.Text(strings.Join(bio(p), "\n"))
	if p.CurrentTeamAbbrev != "" {
		team := p.FullTeamName.String()
		if team == "" {
			team = p.CurrentTeamAbbrev
		}
		b.Link(team, document.Target{Kind: TargetTeam, Key: p.CurrentTeamAbbrev, Index: -1}, teamID(p.CurrentTeamAbbrev))
	}

	b.Spacer(1).Subheading("Regular season")
	season := "Season"
	if p.FeaturedStats.Season > 0 {
		season = seasonLabel(strconv.Itoa(p.FeaturedStats.Season))
	}
	stats := p.FeaturedStats.RegularSeason
	if p.IsGoalie() {
		b.Table(goalieSeasonTable([]string{season, "Career"}, []nhl.SeasonStats{stats.SubSeason, stats.Career}))
	} else {
		b.Table(skaterSeasonTable([]string{season, "Career"}, []nhl.SeasonStats{stats.SubSeason, stats.Career}))
	}

	b.Spacer(1).Subheading("Last 5 games")
	if len(p.Last5Games) == 0 {
		return b.Muted("No recent games.").Build()
	}
	return b.Table(recentGames(p.Last5Games, p.IsGoalie())).Build()
}

func bio(p *nhl.Player) []string {
	var first []string
	if p.SweaterNumber > 0 {
		first = append(first, "#"+strconv.Itoa(p.SweaterNumber))
	}
	if p.Position != "" {
		first = append(first, p.Position)
	}
	if p.ShootsCatches != "" {
		verb := "Shoots"
		if p.IsGoalie() {
			verb = "Catches"
		}
		first = append(first, verb+" "+p.ShootsCatches)
	}

	lines := []string{strings.Join(first, " · ")}
	if p.HeightInInches > 0 || p.WeightInPounds > 0 {
		lines = append(lines, fmt.Sprintf("%d'%d\" · %d lb", p.HeightInInches/12, p.HeightInInches%12, p.WeightInPounds))
	}
	if p.BirthDate != "" {
		born := "Born " + p.BirthDate
		if city := p.BirthCity.String(); city != "" {
			born += ", " + city
		}
		if p.BirthCountry != "" {
			born += " " + p.BirthCountry
		}
		lines = append(lines, born)
	}
	return lines
}

func skaterSeasonTable(labels []string, stats []nhl.SeasonStats) document.Table {
	rows := make([][]document.Cell, len(stats))
	for i, s := range stats {
		rows[i] = []document.Cell{
			{Text: labels[i], Tone: document.ToneMuted},
			{Text: itoa(s.GamesPlayed)},
			{Text: itoa(s.Goals)},
			{Text: itoa(s.Assists)},
			{Text: itoa(s.Points), Tone: document.ToneAccent},
			{Text: signed(s.PlusMinus)},
			{Text: itoa(s.PIM)},
		}
	}
	return document.Table{
		Columns: []document.Column{
			{Title: ""},
			{Title: "GP", Width: 4, Align: document.AlignRight},
			{Title: "G", Width: 4, Align: document.AlignRight},
			{Title: "A", Width: 4, Align: document.AlignRight},
			{Title: "P", Width: 4, Align: document.AlignRight},
			{Title: "+/-", Width: 4, Align: document.AlignRight},
			{Title: "PIM", Width: 4, Align: document.AlignRight},
		},
		Rows: rows,
	}
}

func goalieSeasonTable(labels []string, stats []nhl.SeasonStats) document.Table {
	rows := make([][]document.Cell, len(stats))
	for i, s := range stats {
		rows[i] = []document.Cell{
			{Text: labels[i], Tone: document.ToneMuted},
			{Text: itoa(s.GamesPlayed)},
			{Text: itoa(s.Wins), Tone: document.ToneAccent},
			{Text: itoa(s.Losses)},
			{Text: itoa(s.OTLosses)},
			{Text: average(s.GoalsAgainstAvg)},
			{Text: pct(s.SavePctg)},
			{Text: itoa(s.Shutouts)},
		}
	}
	return document.Table{
		Columns: []document.Column{
			{Title: ""},
			{Title: "GP", Width: 4, Align: document.AlignRight},
			{Title: "W", Width: 4, Align: document.AlignRight},
			{Title: "L", Width: 4, Align: document.AlignRight},
			{Title: "OT", Width: 3, Align: document.AlignRight},
			{Title: "GAA", Width: 5, Align: document.AlignRight},
			{Title: "SV%", Width: 5, Align: document.AlignRight},
			{Title: "SO", Width: 3, Align: document.AlignRight},
		},
		Rows: rows,
	}
}

func recentGames(games []nhl.PlayerGame, goalie bool) document.Table {
	rows := make([][]document.Cell, len(games))
	for i, g := range games {
		opponent := "vs " + g.OpponentAbbrev
		if g.HomeRoadFlag == "R" {
			opponent = "@ " + g.OpponentAbbrev
		}
		if goalie {
			rows[i] = []document.Cell{
				{Text: g.GameDate},
				{Text: opponent},
				{Text: orDash(g.Decision)},
				{Text: pct(g.SavePctg)},
				{Text: orDash(g.TOI)},
			}
			continue
		}
		rows[i] = []document.Cell{
			{Text: g.GameDate},
			{Text: opponent},
			{Text: itoa(g.Goals)},
			{Text: itoa(g.Assists)},
			{Text: itoa(g.Points), Tone: document.ToneAccent},
			{Text: signed(g.PlusMinus)},
			{Text: orDash(g.TOI)},
		}
	}

	if goalie {
		return document.Table{
			Columns: []document.Column{
				{Title: "Date", Width: 10},
				{Title: "Opp", Width: 6},
				{Title: "Dec", Width: 3},
				{Title: "SV%", Width: 5, Align: document.AlignRight},
				{Title: "TOI", Width: 5, Align: document.AlignRight},
			},
			Rows: rows,
		}
	}
	return document.Table{
		Columns: []document.Column{
			{Title: "Date", Width: 10},
			{Title: "Opp", Width: 6},
			{Title: "G", Width: 2, Align: document.AlignRight},
			{Title: "A", Width: 2, Align: document.AlignRight},
			{Title: "P", Width: 2, Align: document.AlignRight},
			{Title: "+/-", Width: 3, Align: document.AlignRight},
			{Title: "TOI", Width: 5, Align: document.AlignRight},
		},
		Rows: rows,
	}
}
