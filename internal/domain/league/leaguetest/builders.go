// Package leaguetest builds small leagues for tests.
package leaguetest

import (
	"fmt"

	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

// Score parses a decimal literal and panics on bad input.
func Score(value string) deci.Deci {
	return deci.MustNew(value)
}

// Game is a regular season matchup.
func Game(teamA, teamB string, scoreA, scoreB string) league.Matchup {
	return league.Matchup{
		TeamAID:     teamA,
		TeamBID:     teamB,
		TeamAScore:  Score(scoreA),
		TeamBScore:  Score(scoreB),
		MatchupType: league.MatchupTypeRegularSeason,
	}
}

func Playoff(teamA, teamB string, scoreA, scoreB string) league.Matchup {
	m := Game(teamA, teamB, scoreA, scoreB)
	m.MatchupType = league.MatchupTypePlayoff
	return m
}

func Championship(teamA, teamB string, scoreA, scoreB string) league.Matchup {
	m := Game(teamA, teamB, scoreA, scoreB)
	m.MatchupType = league.MatchupTypeChampionship
	return m
}

// MultiWeek tags m as part of the multi-week group id.
func MultiWeek(m league.Matchup, id string) league.Matchup {
	m.MultiWeekMatchupID = id
	return m
}

// TiebreakerA gives team A the tiebreaker in m.
func TiebreakerA(m league.Matchup) league.Matchup {
	m.TeamAHasTiebreaker = true
	m.TeamBHasTiebreaker = false
	return m
}

func TiebreakerB(m league.Matchup) league.Matchup {
	m.TeamAHasTiebreaker = false
	m.TeamBHasTiebreaker = true
	return m
}

// Weeks numbers each matchup list as consecutive weeks starting at 1.
func Weeks(weeks ...[]league.Matchup) []league.Week {
	out := make([]league.Week, 0, len(weeks))
	for i, matchups := range weeks {
		out = append(out, league.Week{WeekNumber: i + 1, Matchups: matchups})
	}
	return out
}

// Owners creates owners whose name matches their id.
func Owners(ids ...string) []league.Owner {
	out := make([]league.Owner, 0, len(ids))
	for _, id := range ids {
		out = append(out, league.Owner{ID: id, Name: id})
	}
	return out
}

// TeamID is the id Year gives the team of ownerID in yearNumber.
func TeamID(ownerID string, yearNumber int) string {
	return fmt.Sprintf("%s-%d", ownerID, yearNumber)
}

// Teams creates one team per owner, with ids from TeamID.
func Teams(yearNumber int, ownerIDs ...string) []league.Team {
	out := make([]league.Team, 0, len(ownerIDs))
	for _, ownerID := range ownerIDs {
		out = append(out, league.Team{
			ID:      TeamID(ownerID, yearNumber),
			OwnerID: ownerID,
			Name:    fmt.Sprintf("Team %s %d", ownerID, yearNumber),
		})
	}
	return out
}

// Year builds a year whose teams belong to ownerIDs. Matchups address teams by
// TeamID(owner, yearNumber).
func Year(yearNumber int, ownerIDs []string, weeks ...[]league.Matchup) league.Year {
	return league.Year{
		YearNumber: yearNumber,
		Teams:      Teams(yearNumber, ownerIDs...),
		Weeks:      Weeks(weeks...),
	}
}

// League wraps years with owners.
func League(name string, ownerIDs []string, years ...league.Year) league.League {
	return league.League{
		Name:   name,
		Owners: Owners(ownerIDs...),
		Years:  years,
	}
}
