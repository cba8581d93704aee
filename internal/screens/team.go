package screens

import (
	"strconv"

	"github.com/five82/faceoff/internal/document"
	"github.com/five82/faceoff/internal/nhl"
)

// TeamDocument is a club's season roster: skaters by points, then goalies by
// wins. Roster rows link to the player's page.
type TeamDocument struct {
	Abbrev string
	Name   string
	Stats  *nhl.ClubStats
	Err    error
}

func (d TeamDocument) Title() string { return d.Abbrev }

func (d TeamDocument) Build() []document.Element {
	name := d.Name
	if name == "" {
		name = d.Abbrev
	}
	b := document.NewBuilder().Heading(name)
	if d.Err != nil {
		return b.Error(d.Err).Build()
	}
	if d.Stats == nil {
		return b.Muted("Loading…").Build()
	}
	if d.Stats.Season != "" {
		b.Muted(seasonLabel(d.Stats.Season) + " regular season")
	}

	skaters := d.Stats.SortedSkaters()
	goalies := d.Stats.SortedGoalies()

	b.Spacer(1).Subheading("Skaters")
	if len(skaters) == 0 {
		b.Muted("No skaters.")
	} else {
		rows := make([][]document.Cell, len(skaters))
		for i, s := range skaters {
			rows[i] = []document.Cell{
				rosterCell(s.PlayerID, s.Name(), i),
				{Text: s.PositionCode},
				{Text: itoa(s.GamesPlayed)},
				{Text: itoa(s.Goals)},
				{Text: itoa(s.Assists)},
				{Text: itoa(s.Points), Tone: document.ToneAccent},
				{Text: signed(s.PlusMinus)},
				{Text: itoa(s.PenaltyMinutes)},
			}
		}
		b.Table(document.Table{
			Columns: []document.Column{
				{Title: "Player"},
				{Title: "Pos", Width: 3},
				{Title: "GP", Width: 3, Align: document.AlignRight},
				{Title: "G", Width: 3, Align: document.AlignRight},
				{Title: "A", Width: 3, Align: document.AlignRight},
				{Title: "P", Width: 3, Align: document.AlignRight},
				{Title: "+/-", Width: 4, Align: document.AlignRight},
				{Title: "PIM", Width: 4, Align: document.AlignRight},
			},
			Rows: rows,
		})
	}

	b.Spacer(1).Subheading("Goalies")
	if len(goalies) == 0 {
		return b.Muted("No goalies.").Build()
	}
	rows := make([][]document.Cell, len(goalies))
	for i, g := range goalies {
		rows[i] = []document.Cell{
			rosterCell(g.PlayerID, g.Name(), len(skaters)+i),
			{Text: itoa(g.GamesPlayed)},
			{Text: itoa(g.Wins), Tone: document.ToneAccent},
			{Text: itoa(g.Losses)},
			{Text: itoa(g.OvertimeLosses)},
			{Text: average(g.GoalsAgainstAverage)},
			{Text: pct(g.SavePercentage)},
			{Text: itoa(g.Shutouts)},
		}
	}
	return b.Table(document.Table{
		Columns: []document.Column{
			{Title: "Player"},
			{Title: "GP", Width: 3, Align: document.AlignRight},
			{Title: "W", Width: 3, Align: document.AlignRight},
			{Title: "L", Width: 3, Align: document.AlignRight},
			{Title: "OT", Width: 3, Align: document.AlignRight},
			{Title: "GAA", Width: 5, Align: document.AlignRight},
			{Title: "SV%", Width: 5, Align: document.AlignRight},
			{Title: "SO", Width: 3, Align: document.AlignRight},
		},
		Rows: rows,
	}).Build()
}

func rosterCell(id int64, name string, flat int) document.Cell {
	return document.Cell{
		Text:   name,
		ID:     playerID(id),
		Target: &document.Target{Kind: TargetRoster, Key: strconv.FormatInt(id, 10), Index: flat},
	}
}

// RosterPlayer is the player a roster target resolved to.
type RosterPlayer struct {
	ID     int64
	Name   string
	Goalie bool
}

// ResolveRosterSelection maps a roster target onto stats using the same
// display order TeamDocument renders with. It reports false when the index
// is out of range or the player there is not the one the target expects.
func ResolveRosterSelection(stats *nhl.ClubStats, target document.Target) (RosterPlayer, bool) {
	if stats == nil || target.Kind != TargetRoster {
		return RosterPlayer{}, false
	}
	skaters := stats.SortedSkaters()
	goalies := stats.SortedGoalies()
	section, index, ok := document.ResolveSection(target.Index, len(skaters), len(goalies))
	if !ok {
		return RosterPlayer{}, false
	}

	var p RosterPlayer
	if section == 0 {
		s := skaters[index]
		p = RosterPlayer{ID: s.PlayerID, Name: s.Name()}
	} else {
		g := goalies[index]
		p = RosterPlayer{ID: g.PlayerID, Name: g.Name(), Goalie: true}
	}
	if strconv.FormatInt(p.ID, 10) != target.Key {
		return RosterPlayer{}, false
	}
	return p, true
}
