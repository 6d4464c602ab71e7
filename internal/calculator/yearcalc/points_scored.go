package yearcalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/navigator"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

func PointsScored(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, pointsScored)
}

func pointsScored(y league.Year, f filter.Year) calculator.Values {
	totals := zeroByTeam(y)
	for _, m := range navigator.FilteredMatchups(y, f, false) {
		totals[m.TeamAID] = totals[m.TeamAID].Add(m.TeamAScore)
		totals[m.TeamBID] = totals[m.TeamBID].Add(m.TeamBScore)
	}
	return calculator.FromMap(navigator.TeamIDs(y), totals).NoneWithoutGames(gamesPlayed(y, f))
}

func PointsScoredPerGame(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, pointsScoredPerGame)
}

func pointsScoredPerGame(y league.Year, f filter.Year) calculator.Values {
	return calculator.Ratio(pointsScored(y, f), gamesPlayed(y, f), nil)
}

// OpponentPointsScored sums the scores a team's opponents put up against it.
func OpponentPointsScored(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, opponentPointsScored)
}

func opponentPointsScored(y league.Year, f filter.Year) calculator.Values {
	totals := zeroByTeam(y)
	for _, m := range navigator.FilteredMatchups(y, f, false) {
		totals[m.TeamAID] = totals[m.TeamAID].Add(m.TeamBScore)
		totals[m.TeamBID] = totals[m.TeamBID].Add(m.TeamAScore)
	}
	return calculator.FromMap(navigator.TeamIDs(y), totals).NoneWithoutGames(gamesPlayed(y, f))
}

func OpponentPointsScoredPerGame(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, opponentPointsScoredPerGame)
}

func opponentPointsScoredPerGame(y league.Year, f filter.Year) calculator.Values {
	return calculator.Ratio(opponentPointsScored(y, f), gamesPlayed(y, f), nil)
}

// totalPoints sums both scores of every included matchup.
func totalPoints(y league.Year, f filter.Year) deci.Deci {
	return deci.Sum(navigator.AllScores(y, f, false)...)
}
