package yearcalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/navigator"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

// SmartWins scores every result a team recorded against the whole pool of
// scores under the filter: each score earns (beaten + tied/2) / (pool - 1).
// Multi-week matchups enter the pool once with their combined scores.
func SmartWins(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, smartWins)
}

func smartWins(y league.Year, f filter.Year) calculator.Values {
	pool := navigator.AllScores(y, f, true)
	totals := zeroByTeam(y)
	for _, m := range navigator.FilteredMatchups(y, f, true) {
		totals[m.TeamAID] = totals[m.TeamAID].Add(SmartWinsForScore(m.TeamAScore, pool))
		totals[m.TeamBID] = totals[m.TeamBID].Add(SmartWinsForScore(m.TeamBScore, pool))
	}
	return calculator.FromMap(navigator.TeamIDs(y), totals).NoneWithoutGames(gamesPlayed(y, f))
}

// OpponentSmartWins is SmartWins earned by the scores put up against a team.
func OpponentSmartWins(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, opponentSmartWins)
}

func opponentSmartWins(y league.Year, f filter.Year) calculator.Values {
	pool := navigator.AllScores(y, f, true)
	totals := zeroByTeam(y)
	for _, m := range navigator.FilteredMatchups(y, f, true) {
		totals[m.TeamAID] = totals[m.TeamAID].Add(SmartWinsForScore(m.TeamBScore, pool))
		totals[m.TeamBID] = totals[m.TeamBID].Add(SmartWinsForScore(m.TeamAScore, pool))
	}
	return calculator.FromMap(navigator.TeamIDs(y), totals).NoneWithoutGames(gamesPlayed(y, f))
}

// SmartWinsPerGame divides SmartWins by games, counting a multi-week matchup
// as one game.
func SmartWinsPerGame(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, smartWinsPerGame)
}

func smartWinsPerGame(y league.Year, f filter.Year) calculator.Values {
	games := navigator.GamesPlayed(y, f, navigator.GamesPlayedOptions{CountMultiWeekMatchupsAsOneGame: true})
	return calculator.Ratio(smartWins(y, f), games, nil)
}

// SmartWinsForScore is the smart win credit of one score inside pool. The pool
// must contain the score itself.
func SmartWinsForScore(score deci.Deci, pool []deci.Deci) deci.Deci {
	if len(pool) < 2 {
		return deci.Zero
	}
	beaten, tied := 0, -1
	for _, other := range pool {
		switch score.Cmp(other) {
		case 1:
			beaten++
		case 0:
			tied++
		}
	}
	tied = max(tied, 0)
	earned := deci.Int(beaten).Add(deci.Int(tied).Mul(deci.Half))
	return earned.Div(deci.Int(len(pool) - 1))
}
