package screens

import (
	"fmt"
	"strconv"
	"strings"
)

// Target kinds understood by the UI.
const (
	TargetGame   = "game"
	TargetTeam   = "team"
	TargetRoster = "roster"
	TargetPlayer = "player"
)

func gameID(id int64) string {
	return "game-" + strconv.FormatInt(id, 10)
}

func teamID(abbrev string) string {
	return "team-" + abbrev
}

func playerID(id int64) string {
	return "player-" + strconv.FormatInt(id, 10)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// signed renders plus/minus style numbers with an explicit sign.
func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// pct renders a save percentage the way broadcasts do: ".915".
func pct(v float64) string {
	if v <= 0 {
		return "-"
	}
	s := fmt.Sprintf("%.3f", v)
	return strings.TrimPrefix(s, "0")
}

func average(v float64) string {
	if v <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

// seasonLabel turns "20242025" into "2024-25".
func seasonLabel(season string) string {
	if len(season) != 8 {
		return season
	}
	return season[:4] + "-" + season[6:]
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
