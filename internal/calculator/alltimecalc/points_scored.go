package alltimecalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/calculator/yearcalc"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/navigator"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

func PointsScored(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, summed(yearcalc.PointsScored))
}

func PointsScoredPerGame(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, perGame(yearcalc.PointsScored))
}

func OpponentPointsScored(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, summed(yearcalc.OpponentPointsScored))
}

func OpponentPointsScoredPerGame(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, perGame(yearcalc.OpponentPointsScored))
}

func perGame(fn yearFunc) resolvedFunc {
	return func(l league.League, f filter.AllTime) (calculator.Values, error) {
		total, err := addAndCombineResults(l, f, fn, add)
		if err != nil {
			return nil, err
		}
		return calculator.Ratio(total, gamesPlayed(l, f), nil), nil
	}
}

func totalPoints(l league.League, f filter.AllTime) deci.Deci {
	return deci.Sum(navigator.AllScoresInLeague(l, f, false)...)
}
