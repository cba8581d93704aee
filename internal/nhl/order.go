package nhl

import (
	"cmp"
	"slices"
	"strings"
)

// SkaterDisplayOrder sorts skaters by points, then goals, then name.
func SkaterDisplayOrder(a, b Skater) int {
	return cmp.Or(
		cmp.Compare(b.Points, a.Points),
		cmp.Compare(b.Goals, a.Goals),
		strings.Compare(a.LastName.Default, b.LastName.Default),
		cmp.Compare(a.PlayerID, b.PlayerID),
	)
}

// GoalieDisplayOrder sorts goalies by wins, then games played, then name.
func GoalieDisplayOrder(a, b Goalie) int {
	return cmp.Or(
		cmp.Compare(b.Wins, a.Wins),
		cmp.Compare(b.GamesPlayed, a.GamesPlayed),
		strings.Compare(a.LastName.Default, b.LastName.Default),
		cmp.Compare(a.PlayerID, b.PlayerID),
	)
}

// StandingsOrder ranks teams by points, fewer games played, regulation wins
// and goal differential.
func StandingsOrder(a, b Standing) int {
	return cmp.Or(
		cmp.Compare(b.Points, a.Points),
		cmp.Compare(a.GamesPlayed, b.GamesPlayed),
		cmp.Compare(b.RegulationWins, a.RegulationWins),
		cmp.Compare(b.GoalDifferential, a.GoalDifferential),
		strings.Compare(a.Abbrev(), b.Abbrev()),
	)
}

// SortedSkaters returns the skaters in display order without touching the input.
func (c *ClubStats) SortedSkaters() []Skater {
	out := slices.Clone(c.Skaters)
	slices.SortStableFunc(out, SkaterDisplayOrder)
	return out
}

// SortedGoalies returns the goalies in display order without touching the input.
func (c *ClubStats) SortedGoalies() []Goalie {
	out := slices.Clone(c.Goalies)
	slices.SortStableFunc(out, GoalieDisplayOrder)
	return out
}

// Division is one division's teams in standings order.
type Division struct {
	Name       string
	Conference string
	Teams      []Standing
}

// GroupByDivision splits standings into divisions ordered by conference then
// division name.
func GroupByDivision(standings []Standing) []Division {
	index := map[string]int{}
	var divisions []Division
	for _, s := range standings {
		i, ok := index[s.DivisionName]
		if !ok {
			i = len(divisions)
			index[s.DivisionName] = i
			divisions = append(divisions, Division{Name: s.DivisionName, Conference: s.ConferenceName})
		}
		divisions[i].Teams = append(divisions[i].Teams, s)
	}
	slices.SortFunc(divisions, func(a, b Division) int {
		return cmp.Or(strings.Compare(a.Conference, b.Conference), strings.Compare(a.Name, b.Name))
	})
	for i := range divisions {
		slices.SortStableFunc(divisions[i].Teams, StandingsOrder)
	}
	return divisions
}

// PartitionGames splits a scoreboard into live, final and upcoming games,
// keeping scoreboard order within each group.
func PartitionGames(games []Game) (live, final, upcoming []Game) {
	for _, g := range games {
		switch {
		case g.IsLive():
			live = append(live, g)
		case g.IsFinal():
			final = append(final, g)
		default:
			upcoming = append(upcoming, g)
		}
	}
	return live, final, upcoming
}
