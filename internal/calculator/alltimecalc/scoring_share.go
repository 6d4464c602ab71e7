package alltimecalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/calculator/yearcalc"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

// ScoringShare is an owner's percentage of every point scored in the span.
func ScoringShare(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, share(yearcalc.PointsScored))
}

func OpponentScoringShare(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, share(yearcalc.OpponentPointsScored))
}

func share(points yearFunc) resolvedFunc {
	return func(l league.League, f filter.AllTime) (calculator.Values, error) {
		owned, err := addAndCombineResults(l, f, points, add)
		if err != nil {
			return nil, err
		}
		return calculator.Share(owned, totalPoints(l, f)), nil
	}
}

// MaxScoringShare is the largest single week share an owner took in the span.
func MaxScoringShare(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, func(l league.League, f filter.AllTime) (calculator.Values, error) {
		return addAndCombineResults(l, f, yearcalc.MaxScoringShare, deci.Max)
	})
}

func MinScoringShare(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, func(l league.League, f filter.AllTime) (calculator.Values, error) {
		return addAndCombineResults(l, f, yearcalc.MinScoringShare, deci.Min)
	})
}
