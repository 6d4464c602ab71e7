// Package yearcalc computes per-team statistics for a single year.
//
// Every exported calculator resolves its filter options first and returns a
// filter.InvalidFilterError before touching the year. Results hold every team
// of the year; a team with no qualifying games maps to nil unless the
// statistic documents another sentinel. The year is assumed to have passed
// league.Validate.
package yearcalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/navigator"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

type resolvedFunc func(y league.Year, f filter.Year) calculator.Values

func calculate(y league.Year, opts filter.Options, fn resolvedFunc) (calculator.Values, error) {
	f, err := filter.ForYear(y, opts)
	if err != nil {
		return nil, err
	}
	return fn(y, f), nil
}

// gamesPlayed counts every included week of a matchup as one game.
func gamesPlayed(y league.Year, f filter.Year) map[string]deci.Deci {
	return navigator.GamesPlayed(y, f, navigator.GamesPlayedOptions{})
}

// gamesPlayedForRecord counts the games a win/loss/tie record is made of.
func gamesPlayedForRecord(y league.Year, f filter.Year) map[string]deci.Deci {
	return navigator.GamesPlayed(y, f, navigator.GamesPlayedOptions{
		CountMultiWeekMatchupsAsOneGame:  true,
		CountLeagueMedianGamesAsTwoGames: true,
	})
}

func zeroByTeam(y league.Year) map[string]deci.Deci {
	out := make(map[string]deci.Deci, len(y.Teams))
	for _, t := range y.Teams {
		out[t.ID] = deci.Zero
	}
	return out
}
