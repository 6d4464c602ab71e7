package alltimecalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/calculator/yearcalc"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/navigator"
)

func AWAL(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, summed(yearcalc.AWAL))
}

func AWALPerGame(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, awalPerGame)
}

func awalPerGame(l league.League, f filter.AllTime) (calculator.Values, error) {
	awal, err := addAndCombineResults(l, f, yearcalc.AWAL, add)
	if err != nil {
		return nil, err
	}
	games := navigator.GamesPlayedByOwner(l, f, navigator.GamesPlayedOptions{CountLeagueMedianGamesAsTwoGames: true})
	return calculator.Ratio(awal, games, nil), nil
}
