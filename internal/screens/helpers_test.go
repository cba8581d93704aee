package screens

import (
	"strings"

	"github.com/five82/faceoff/internal/document"
	"github.com/five82/faceoff/internal/nhl"
)

func nodeIDs(doc document.Document) []string {
	nodes := document.CollectNodes(doc.Build())
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}

func targetOf(doc document.Document, id string) (document.Target, bool) {
	for _, n := range document.CollectNodes(doc.Build()) {
		if n.ID == id {
			return *n.Target, true
		}
	}
	return document.Target{}, false
}

// flatText joins every piece of text a document would show, one per line.
func flatText(elements []document.Element) string {
	var parts []string
	var walk func([]document.Element)
	walk = func(es []document.Element) {
		for _, e := range es {
			if e.Text != "" {
				parts = append(parts, e.Text)
			}
			parts = append(parts, e.Lines...)
			if e.Table != nil {
				for _, c := range e.Table.Columns {
					parts = append(parts, c.Title)
				}
				for _, row := range e.Table.Rows {
					cells := make([]string, len(row))
					for i, c := range row {
						cells[i] = c.Text
					}
					parts = append(parts, strings.Join(cells, "|"))
				}
			}
			walk(e.Children)
		}
	}
	walk(elements)
	return strings.Join(parts, "\n")
}

func localized(first, last string) (nhl.LocalizedString, nhl.LocalizedString) {
	return nhl.LocalizedString{Default: first}, nhl.LocalizedString{Default: last}
}

func skater(id int64, first, last string, points, goals int) nhl.Skater {
	f, l := localized(first, last)
	return nhl.Skater{PlayerID: id, FirstName: f, LastName: l, PositionCode: "C", GamesPlayed: 20, Points: points, Goals: goals, Assists: points - goals}
}

func goalie(id int64, first, last string, wins int) nhl.Goalie {
	f, l := localized(first, last)
	return nhl.Goalie{PlayerID: id, FirstName: f, LastName: l, GamesPlayed: 15, Wins: wins, SavePercentage: 0.912, GoalsAgainstAverage: 2.71}
}

// clubStats sorts to skaters 2, 4, 3, 1, 5 then goalies 11, 10.
func clubStats() *nhl.ClubStats {
	return &nhl.ClubStats{
		Season: "20242025",
		Skaters: []nhl.Skater{
			skater(1, "Ann", "Alpha", 10, 4),
			skater(2, "Bo", "Bravo", 30, 10),
			skater(3, "Cy", "Charlie", 20, 8),
			skater(4, "Di", "Delta", 20, 9),
			skater(5, "Ed", "Echo", 5, 1),
		},
		Goalies: []nhl.Goalie{
			goalie(10, "Gus", "Golf", 5),
			goalie(11, "Hal", "Hotel", 12),
		},
	}
}

func game(id int64, state, away, home string) nhl.Game {
	return nhl.Game{
		ID:           id,
		GameState:    state,
		StartTimeUTC: "2025-01-10T00:00:00Z",
		AwayTeam:     nhl.GameTeam{Abbrev: away, Score: 2},
		HomeTeam:     nhl.GameTeam{Abbrev: home, Score: 3},
	}
}

// scoreboard partitions to live 101, 103; final 102, 104; upcoming 100.
func scoreboard() nhl.Scoreboard {
	return nhl.Scoreboard{
		CurrentDate: "2025-01-09",
		PrevDate:    "2025-01-08",
		NextDate:    "2025-01-10",
		Games: []nhl.Game{
			game(100, "FUT", "BOS", "BUF"),
			game(101, "LIVE", "MTL", "TOR"),
			game(102, "FINAL", "NYR", "NJD"),
			game(103, "CRIT", "DAL", "WPG"),
			game(104, "OFF", "EDM", "VGK"),
		},
	}
}

func standing(abbrev, common, conference, division string, points int) nhl.Standing {
	return nhl.Standing{
		TeamAbbrev:     nhl.LocalizedString{Default: abbrev},
		TeamCommonName: nhl.LocalizedString{Default: common},
		ConferenceName: conference,
		DivisionName:   division,
		GamesPlayed:    40,
		Points:         points,
		StreakCode:     "W",
		StreakCount:    2,
	}
}

func standings() []nhl.Standing {
	return []nhl.Standing{
		standing("WPG", "Jets", "Western", "Central", 52),
		standing("MTL", "Canadiens", "Eastern", "Atlantic", 40),
		standing("NYR", "Rangers", "Eastern", "Metropolitan", 45),
		standing("VGK", "Golden Knights", "Western", "Pacific", 47),
		standing("TOR", "Maple Leafs", "Eastern", "Atlantic", 50),
		standing("DAL", "Stars", "Western", "Central", 55),
		standing("NJD", "Devils", "Eastern", "Metropolitan", 48),
		standing("EDM", "Oilers", "Western", "Pacific", 49),
	}
}
