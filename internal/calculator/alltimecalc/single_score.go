package alltimecalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/calculator/yearcalc"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

func MaxScore(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, maxScore)
}

func maxScore(l league.League, f filter.AllTime) (calculator.Values, error) {
	return addAndCombineResults(l, f, yearcalc.MaxScore, deci.Max)
}

func MinScore(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, minScore)
}

func minScore(l league.League, f filter.AllTime) (calculator.Values, error) {
	return addAndCombineResults(l, f, yearcalc.MinScore, deci.Min)
}
