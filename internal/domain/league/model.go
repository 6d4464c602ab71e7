package league

import (
	"strings"

	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

// MatchupType classifies how a matchup counts toward a season.
type MatchupType string

const (
	MatchupTypeRegularSeason MatchupType = "REGULAR_SEASON"
	MatchupTypePlayoff       MatchupType = "PLAYOFF"
	MatchupTypeChampionship  MatchupType = "CHAMPIONSHIP"
	// MatchupTypeIgnore records a score that never counts toward any stat.
	MatchupTypeIgnore MatchupType = "IGNORE"
)

var AllMatchupTypes = map[MatchupType]struct{}{
	MatchupTypeRegularSeason: {},
	MatchupTypePlayoff:       {},
	MatchupTypeChampionship:  {},
	MatchupTypeIgnore:        {},
}

func ParseMatchupType(value string) (MatchupType, bool) {
	t := MatchupType(strings.ToUpper(strings.TrimSpace(value)))
	_, ok := AllMatchupTypes[t]
	return t, ok
}

// League is a fantasy league with its full history of years.
type League struct {
	Name   string  `validate:"required"`
	Owners []Owner `validate:"required,min=1,dive"`
	Years  []Year  `validate:"required,min=1,dive"`
}

// Owner is a real-world person. One owner can manage a different Team every year.
type Owner struct {
	ID   string `validate:"required"`
	Name string `validate:"required"`
}

type YearSettings struct {
	// LeagueMedianGames gives every team an extra game per regular season week
	// against that week's median score.
	LeagueMedianGames bool
}

// Year is one season of a league.
type Year struct {
	YearNumber int        `validate:"gte=1920"`
	Teams      []Team     `validate:"required,min=2,dive"`
	Weeks      []Week     `validate:"required,min=1,dive"`
	Divisions  []Division `validate:"omitempty,dive"`
	Settings   YearSettings
}

// Team is an owner's entry for a single year.
type Team struct {
	ID         string `validate:"required"`
	OwnerID    string `validate:"required"`
	Name       string `validate:"required"`
	DivisionID string
}

type Division struct {
	ID   string `validate:"required"`
	Name string `validate:"required"`
}

type Week struct {
	WeekNumber int       `validate:"gte=1"`
	Matchups   []Matchup `validate:"dive"`
}

// Matchup is a head to head game between two teams in one week.
type Matchup struct {
	TeamAID            string    `validate:"required"`
	TeamBID            string    `validate:"required,nefield=TeamAID"`
	TeamAScore         deci.Deci `validate:"gte=0"`
	TeamBScore         deci.Deci `validate:"gte=0"`
	TeamAHasTiebreaker bool      `validate:"excluded_with=TeamBHasTiebreaker"`
	TeamBHasTiebreaker bool
	MatchupType        MatchupType `validate:"oneof=REGULAR_SEASON PLAYOFF CHAMPIONSHIP IGNORE"`
	// MultiWeekMatchupID groups matchups whose scores accumulate over
	// consecutive weeks. Empty for single week matchups.
	MultiWeekMatchupID string
}

func (w Week) hasMatchupType(t MatchupType) bool {
	for _, m := range w.Matchups {
		if m.MatchupType == t {
			return true
		}
	}
	return false
}

func (w Week) IsPlayoffWeek() bool {
	return w.hasMatchupType(MatchupTypePlayoff)
}

func (w Week) IsChampionshipWeek() bool {
	return w.hasMatchupType(MatchupTypeChampionship)
}

func (w Week) isPostSeasonWeek() bool {
	return w.IsPlayoffWeek() || w.IsChampionshipWeek()
}
