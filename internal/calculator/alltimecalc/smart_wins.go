package alltimecalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/calculator/yearcalc"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/navigator"
)

// SmartWins compares every score an owner recorded against the pool of all
// scores in the span, not just the year it was scored in.
func SmartWins(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, func(l league.League, f filter.AllTime) (calculator.Values, error) {
		return smartWins(l, f, false), nil
	})
}

func OpponentSmartWins(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, func(l league.League, f filter.AllTime) (calculator.Values, error) {
		return smartWins(l, f, true), nil
	})
}

// SmartWinsPerGame divides SmartWins by games, a multi-week matchup counting
// as one game.
func SmartWinsPerGame(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, func(l league.League, f filter.AllTime) (calculator.Values, error) {
		games := navigator.GamesPlayedByOwner(l, f, navigator.GamesPlayedOptions{CountMultiWeekMatchupsAsOneGame: true})
		return calculator.Ratio(smartWins(l, f, false), games, nil), nil
	})
}

func smartWins(l league.League, f filter.AllTime, opponent bool) calculator.Values {
	pool := navigator.AllScoresInLeague(l, f, true)
	totals := zeroByOwner(l)
	for _, span := range f.Spans(l) {
		owners := navigator.OwnerIDByTeamID(span.Year)
		for _, m := range navigator.FilteredMatchups(span.Year, span.Filter(), true) {
			scoreA, scoreB := m.TeamAScore, m.TeamBScore
			if opponent {
				scoreA, scoreB = scoreB, scoreA
			}
			ownerA, ownerB := owners[m.TeamAID], owners[m.TeamBID]
			totals[ownerA] = totals[ownerA].Add(yearcalc.SmartWinsForScore(scoreA, pool))
			totals[ownerB] = totals[ownerB].Add(yearcalc.SmartWinsForScore(scoreB, pool))
		}
	}
	return calculator.FromMap(navigator.OwnerIDs(l), totals).NoneWithoutGames(gamesPlayed(l, f))
}
