package nhl

import (
	"strconv"
	"strings"
	"time"
)

// LocalizedString is the API's {"default": "...", "fr": "..."} text object.
type LocalizedString struct {
	Default string `json:"default"`
	French  string `json:"fr,omitempty"`
}

func (s LocalizedString) String() string {
	return s.Default
}

// StandingsResponse mirrors /v1/standings/now.
type StandingsResponse struct {
	Standings []Standing `json:"standings"`
}

// Standing is one team's line in the league table.
type Standing struct {
	TeamAbbrev       LocalizedString `json:"teamAbbrev"`
	TeamName         LocalizedString `json:"teamName"`
	TeamCommonName   LocalizedString `json:"teamCommonName"`
	ConferenceName   string          `json:"conferenceName"`
	DivisionName     string          `json:"divisionName"`
	GamesPlayed      int             `json:"gamesPlayed"`
	Wins             int             `json:"wins"`
	Losses           int             `json:"losses"`
	OTLosses         int             `json:"otLosses"`
	Points           int             `json:"points"`
	PointPctg        float64         `json:"pointPctg"`
	RegulationWins   int             `json:"regulationWins"`
	GoalsFor         int             `json:"goalFor"`
	GoalsAgainst     int             `json:"goalAgainst"`
	GoalDifferential int             `json:"goalDifferential"`
	StreakCode       string          `json:"streakCode"`
	StreakCount      int             `json:"streakCount"`
	DivisionSequence int             `json:"divisionSequence"`
	LeagueSequence   int             `json:"leagueSequence"`
}

// Abbrev returns the team's three-letter code.
func (s Standing) Abbrev() string {
	return s.TeamAbbrev.Default
}

// Streak formats the current streak, e.g. "W3".
func (s Standing) Streak() string {
	if s.StreakCode == "" || s.StreakCount == 0 {
		return "-"
	}
	return s.StreakCode + strconv.Itoa(s.StreakCount)
}

// Scoreboard mirrors /v1/score/{date}.
type Scoreboard struct {
	CurrentDate string `json:"currentDate"`
	PrevDate    string `json:"prevDate"`
	NextDate    string `json:"nextDate"`
	Games       []Game `json:"games"`
}

// Game is one scoreboard entry.
type Game struct {
	ID               int64            `json:"id"`
	GameState        string           `json:"gameState"`
	StartTimeUTC     string           `json:"startTimeUTC"`
	Venue            LocalizedString  `json:"venue"`
	AwayTeam         GameTeam         `json:"awayTeam"`
	HomeTeam         GameTeam         `json:"homeTeam"`
	Period           int              `json:"period"`
	PeriodDescriptor PeriodDescriptor `json:"periodDescriptor"`
	Clock            Clock            `json:"clock"`
	Goals            []Goal           `json:"goals"`
}

// GameTeam is a team's side of a game.
type GameTeam struct {
	ID     int             `json:"id"`
	Abbrev string          `json:"abbrev"`
	Name   LocalizedString `json:"name"`
	Score  int             `json:"score"`
	SOG    int             `json:"sog"`
}

// PeriodDescriptor identifies the current or final period.
type PeriodDescriptor struct {
	Number     int    `json:"number"`
	PeriodType string `json:"periodType"`
}

// Clock is the game clock of a live game.
type Clock struct {
	TimeRemaining  string `json:"timeRemaining"`
	Running        bool   `json:"running"`
	InIntermission bool   `json:"inIntermission"`
}

// Goal is one scoring play on the scoreboard.
type Goal struct {
	Period       int             `json:"period"`
	TimeInPeriod string          `json:"timeInPeriod"`
	TeamAbbrev   string          `json:"teamAbbrev"`
	Name         LocalizedString `json:"name"`
	PlayerID     int64           `json:"playerId"`
	GoalsToDate  int             `json:"goalsToDate"`
	StrengthCode string          `json:"strength"`
}

// IsLive reports whether the game is in progress.
func (g Game) IsLive() bool {
	return g.GameState == "LIVE" || g.GameState == "CRIT"
}

// IsFinal reports whether the game has ended.
func (g Game) IsFinal() bool {
	return g.GameState == "FINAL" || g.GameState == "OFF"
}

// StartTime parses StartTimeUTC; the zero time when absent or malformed.
func (g Game) StartTime() time.Time {
	t, err := time.Parse(time.RFC3339, g.StartTimeUTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Status is a short human label for the game's state.
func (g Game) Status(loc *time.Location) string {
	switch {
	case g.IsLive():
		if g.Clock.InIntermission {
			return periodLabel(g.PeriodDescriptor) + " INT"
		}
		return strings.TrimSpace(periodLabel(g.PeriodDescriptor) + " " + g.Clock.TimeRemaining)
	case g.IsFinal():
		if t := g.PeriodDescriptor.PeriodType; t == "OT" || t == "SO" {
			return "Final/" + t
		}
		return "Final"
	default:
		start := g.StartTime()
		if start.IsZero() {
			return "TBD"
		}
		if loc == nil {
			loc = time.Local
		}
		return start.In(loc).Format("3:04 PM")
	}
}

func periodLabel(p PeriodDescriptor) string {
	switch p.PeriodType {
	case "OT":
		return "OT"
	case "SO":
		return "SO"
	}
	switch p.Number {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	case 0:
		return ""
	default:
		return strconv.Itoa(p.Number) + "th"
	}
}

// Boxscore mirrors /v1/gamecenter/{id}/boxscore.
type Boxscore struct {
	ID                int64            `json:"id"`
	GameState         string           `json:"gameState"`
	GameDate          string           `json:"gameDate"`
	Venue             LocalizedString  `json:"venue"`
	AwayTeam          BoxscoreTeam     `json:"awayTeam"`
	HomeTeam          BoxscoreTeam     `json:"homeTeam"`
	PeriodDescriptor  PeriodDescriptor `json:"periodDescriptor"`
	Clock             Clock            `json:"clock"`
	PlayerByGameStats struct {
		AwayTeam TeamGameStats `json:"awayTeam"`
		HomeTeam TeamGameStats `json:"homeTeam"`
	} `json:"playerByGameStats"`
}

// IsFinal reports whether the boxscore is for a finished game.
func (b Boxscore) IsFinal() bool {
	return Game{GameState: b.GameState}.IsFinal()
}

// BoxscoreTeam is a team header in the boxscore.
type BoxscoreTeam struct {
	ID         int             `json:"id"`
	Abbrev     string          `json:"abbrev"`
	CommonName LocalizedString `json:"commonName"`
	Score      int             `json:"score"`
	SOG        int             `json:"sog"`
}

// TeamGameStats groups one team's players in a game.
type TeamGameStats struct {
	Forwards []GameSkater `json:"forwards"`
	Defense  []GameSkater `json:"defense"`
	Goalies  []GameGoalie `json:"goalies"`
}

// GameSkater is a skater's line in a boxscore.
type GameSkater struct {
	PlayerID      int64           `json:"playerId"`
	SweaterNumber int             `json:"sweaterNumber"`
	Name          LocalizedString `json:"name"`
	Position      string          `json:"position"`
	Goals         int             `json:"goals"`
	Assists       int             `json:"assists"`
	Points        int             `json:"points"`
	PlusMinus     int             `json:"plusMinus"`
	PIM           int             `json:"pim"`
	SOG           int             `json:"sog"`
	TOI           string          `json:"toi"`
}

// GameGoalie is a goalie's line in a boxscore.
type GameGoalie struct {
	PlayerID         int64           `json:"playerId"`
	SweaterNumber    int             `json:"sweaterNumber"`
	Name             LocalizedString `json:"name"`
	SaveShotsAgainst string          `json:"saveShotsAgainst"`
	SavePctg         float64         `json:"savePctg"`
	GoalsAgainst     int             `json:"goalsAgainst"`
	TOI              string          `json:"toi"`
	Decision         string          `json:"decision"`
}

// ClubStats mirrors /v1/club-stats/{team}/now.
type ClubStats struct {
	Season  string   `json:"season"`
	Skaters []Skater `json:"skaters"`
	Goalies []Goalie `json:"goalies"`
}

// Skater is a skater's season line for one club.
type Skater struct {
	PlayerID       int64           `json:"playerId"`
	FirstName      LocalizedString `json:"firstName"`
	LastName       LocalizedString `json:"lastName"`
	PositionCode   string          `json:"positionCode"`
	GamesPlayed    int             `json:"gamesPlayed"`
	Goals          int             `json:"goals"`
	Assists        int             `json:"assists"`
	Points         int             `json:"points"`
	PlusMinus      int             `json:"plusMinus"`
	PenaltyMinutes int             `json:"penaltyMinutes"`
	Shots          int             `json:"shots"`
}

// Name returns "First Last".
func (s Skater) Name() string {
	return fullName(s.FirstName, s.LastName)
}

// Goalie is a goalie's season line for one club.
type Goalie struct {
	PlayerID            int64           `json:"playerId"`
	FirstName           LocalizedString `json:"firstName"`
	LastName            LocalizedString `json:"lastName"`
	GamesPlayed         int             `json:"gamesPlayed"`
	Wins                int             `json:"wins"`
	Losses              int             `json:"losses"`
	OvertimeLosses      int             `json:"overtimeLosses"`
	GoalsAgainstAverage float64         `json:"goalsAgainstAverage"`
	SavePercentage      float64         `json:"savePercentage"`
	Shutouts            int             `json:"shutouts"`
}

// Name returns "First Last".
func (g Goalie) Name() string {
	return fullName(g.FirstName, g.LastName)
}

// Player mirrors /v1/player/{id}/landing.
type Player struct {
	PlayerID          int64           `json:"playerId"`
	FirstName         LocalizedString `json:"firstName"`
	LastName          LocalizedString `json:"lastName"`
	CurrentTeamAbbrev string          `json:"currentTeamAbbrev"`
	FullTeamName      LocalizedString `json:"fullTeamName"`
	SweaterNumber     int             `json:"sweaterNumber"`
	Position          string          `json:"position"`
	ShootsCatches     string          `json:"shootsCatches"`
	HeightInInches    int             `json:"heightInInches"`
	WeightInPounds    int             `json:"weightInPounds"`
	BirthDate         string          `json:"birthDate"`
	BirthCity         LocalizedString `json:"birthCity"`
	BirthCountry      string          `json:"birthCountry"`
	FeaturedStats     struct {
		Season        int `json:"season"`
		RegularSeason struct {
			SubSeason SeasonStats `json:"subSeason"`
			Career    SeasonStats `json:"career"`
		} `json:"regularSeason"`
	} `json:"featuredStats"`
	Last5Games []PlayerGame `json:"last5Games"`
}

// Name returns "First Last".
func (p Player) Name() string {
	return fullName(p.FirstName, p.LastName)
}

// IsGoalie reports whether the player is a goaltender.
func (p Player) IsGoalie() bool {
	return p.Position == "G"
}

// SeasonStats covers both skater and goalie featured stats; fields that do
// not apply are zero.
type SeasonStats struct {
	GamesPlayed     int     `json:"gamesPlayed"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	Points          int     `json:"points"`
	PlusMinus       int     `json:"plusMinus"`
	PIM             int     `json:"pim"`
	Wins            int     `json:"wins"`
	Losses          int     `json:"losses"`
	OTLosses        int     `json:"otLosses"`
	GoalsAgainstAvg float64 `json:"goalsAgainstAvg"`
	SavePctg        float64 `json:"savePctg"`
	Shutouts        int     `json:"shutouts"`
}

// PlayerGame is one of a player's recent games.
type PlayerGame struct {
	GameID         int64   `json:"gameId"`
	GameDate       string  `json:"gameDate"`
	OpponentAbbrev string  `json:"opponentAbbrev"`
	HomeRoadFlag   string  `json:"homeRoadFlag"`
	Goals          int     `json:"goals"`
	Assists        int     `json:"assists"`
	Points         int     `json:"points"`
	PlusMinus      int     `json:"plusMinus"`
	TOI            string  `json:"toi"`
	Decision       string  `json:"decision"`
	SavePctg       float64 `json:"savePctg"`
}

func fullName(first, last LocalizedString) string {
	return strings.TrimSpace(first.Default + " " + last.Default)
}
