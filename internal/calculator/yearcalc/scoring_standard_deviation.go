package yearcalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/navigator"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

// ScoringStandardDeviation is the population standard deviation of a team's
// scores, with each multi-week matchup contributing its combined score.
func ScoringStandardDeviation(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, scoringStandardDeviation)
}

func scoringStandardDeviation(y league.Year, f filter.Year) calculator.Values {
	scores := navigator.TeamScores(y, f, true)
	out := make(calculator.Values, len(y.Teams))
	for _, t := range y.Teams {
		out[t.ID] = nil
		if sd, ok := PopulationStandardDeviation(scores[t.ID]); ok {
			out[t.ID] = sd.Ptr()
		}
	}
	return out
}

// PopulationStandardDeviation is sqrt(mean(|x - mean|^2)). It reports false for
// an empty input.
func PopulationStandardDeviation(values []deci.Deci) (deci.Deci, bool) {
	if len(values) == 0 {
		return deci.Zero, false
	}
	n := deci.Int(len(values))
	mean := deci.Sum(values...).Div(n)
	squares := deci.Zero
	for _, v := range values {
		diff := v.Sub(mean).Abs()
		squares = squares.Add(diff.Mul(diff))
	}
	return squares.Div(n).Sqrt(), true
}
