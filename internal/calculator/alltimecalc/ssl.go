package alltimecalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/calculator/yearcalc"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

// TeamScore applies the year formula to the owner's all-time AWAL per game,
// scoring share and score extremes.
func TeamScore(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, teamScore)
}

func teamScore(l league.League, f filter.AllTime) (calculator.Values, error) {
	rate, err := awalPerGame(l, f)
	if err != nil {
		return nil, err
	}
	return ssl(l, f, rate)
}

// TeamSuccess is TeamScore with WAL per game in place of AWAL per game.
func TeamSuccess(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, teamSuccess)
}

func teamSuccess(l league.League, f filter.AllTime) (calculator.Values, error) {
	rate, err := walPerGame(l, f)
	if err != nil {
		return nil, err
	}
	return ssl(l, f, rate)
}

func TeamLuck(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, func(l league.League, f filter.AllTime) (calculator.Values, error) {
		score, err := teamScore(l, f)
		if err != nil {
			return nil, err
		}
		success, err := teamSuccess(l, f)
		if err != nil {
			return nil, err
		}
		return calculator.Combine(func(values ...deci.Deci) deci.Deci {
			return values[0].Sub(values[1])
		}, success, score), nil
	})
}

func ssl(l league.League, f filter.AllTime, rate calculator.Values) (calculator.Values, error) {
	shares, err := share(yearcalc.PointsScored)(l, f)
	if err != nil {
		return nil, err
	}
	highs, err := maxScore(l, f)
	if err != nil {
		return nil, err
	}
	lows, err := minScore(l, f)
	if err != nil {
		return nil, err
	}
	return calculator.Combine(yearcalc.SSLFormula, rate, shares, highs, lows), nil
}
