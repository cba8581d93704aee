package screens

import (
	"fmt"
	"strconv"
	"time"

	"github.com/five82/faceoff/internal/document"
	"github.com/five82/faceoff/internal/nhl"
)

// ScoresDocument is one day's scoreboard. Games are grouped into Live, Final
// and Upcoming sections, two games per row.
type ScoresDocument struct {
	Board    nhl.Scoreboard
	Location *time.Location
	Err      error
	Loading  bool
}

func (d ScoresDocument) Title() string {
	if d.Board.CurrentDate == "" {
		return "Scores"
	}
	return "Scores " + d.Board.CurrentDate
}

func (d ScoresDocument) Build() []document.Element {
	b := document.NewBuilder()
	b.Heading(dateLabel(d.Board.CurrentDate))
	if d.Board.PrevDate != "" || d.Board.NextDate != "" {
		b.Muted(fmt.Sprintf("[ %s    ] %s", orDash(d.Board.PrevDate), orDash(d.Board.NextDate)))
	}
	b.Error(d.Err)
	if d.Loading {
		b.Muted("Loading…")
		return b.Build()
	}
	if len(d.Board.Games) == 0 {
		if d.Err == nil {
			b.Muted("No games scheduled.")
		}
		return b.Build()
	}
	b.Spacer(1)

	flat := 0
	for _, section := range scoreSections(d.Board) {
		if len(section.games) == 0 {
			continue
		}
		b.Subheading(fmt.Sprintf("%s (%d)", section.name, len(section.games)))
		for i := 0; i < len(section.games); i += 2 {
			left := gameCard(section.games[i], flat+i, d.Location)
			right := document.Group()
			if i+1 < len(section.games) {
				right = gameCard(section.games[i+1], flat+i+1, d.Location)
			}
			b.Row(left, right)
		}
		flat += len(section.games)
	}
	return b.Build()
}

type scoreSection struct {
	name  string
	games []nhl.Game
}

// scoreSections is the render order ResolveGame relies on.
func scoreSections(board nhl.Scoreboard) []scoreSection {
	live, final, upcoming := nhl.PartitionGames(board.Games)
	return []scoreSection{
		{name: "Live", games: live},
		{name: "Final", games: final},
		{name: "Upcoming", games: upcoming},
	}
}

func gameCard(g nhl.Game, index int, loc *time.Location) document.Element {
	var matchup string
	if g.IsLive() || g.IsFinal() {
		matchup = fmt.Sprintf("%-3s %2d  @  %-3s %2d", g.AwayTeam.Abbrev, g.AwayTeam.Score, g.HomeTeam.Abbrev, g.HomeTeam.Score)
	} else {
		matchup = fmt.Sprintf("%-3s     @  %s", g.AwayTeam.Abbrev, g.HomeTeam.Abbrev)
	}

	status := g.Status(loc)
	tone := document.ToneMuted
	if g.IsLive() {
		tone = document.ToneSuccess
		if g.AwayTeam.SOG+g.HomeTeam.SOG > 0 {
			status += fmt.Sprintf("  SOG %d-%d", g.AwayTeam.SOG, g.HomeTeam.SOG)
		}
	}
	if venue := g.Venue.String(); venue != "" && !g.IsFinal() {
		status += "  " + venue
	}

	key := strconv.FormatInt(g.ID, 10)
	return document.Group(
		document.Link(matchup, document.Target{Kind: TargetGame, Key: key, Index: index}, gameID(g.ID)),
		document.TextTone(status, tone),
		document.Spacer(1),
	)
}

// ResolveGame maps a game target back onto the scoreboard. It fails when the
// game at the target's index is no longer the one that was displayed.
func ResolveGame(board nhl.Scoreboard, target document.Target) (nhl.Game, bool) {
	if target.Kind != TargetGame {
		return nhl.Game{}, false
	}
	sections := scoreSections(board)
	counts := make([]int, len(sections))
	for i, s := range sections {
		counts[i] = len(s.games)
	}
	section, index, ok := document.ResolveSection(target.Index, counts...)
	if !ok {
		return nhl.Game{}, false
	}
	g := sections[section].games[index]
	if strconv.FormatInt(g.ID, 10) != target.Key {
		return nhl.Game{}, false
	}
	return g, true
}

func dateLabel(date string) string {
	if date == "" {
		return "Scores"
	}
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("Monday, Jan 2 2006")
}
