package alltimecalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/calculator/yearcalc"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/navigator"
)

// ScoringStandardDeviation pools every combined score an owner recorded in the
// span before taking the population standard deviation.
func ScoringStandardDeviation(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, func(l league.League, f filter.AllTime) (calculator.Values, error) {
		scores := navigator.OwnerScores(l, f, true)
		out := make(calculator.Values, len(l.Owners))
		for _, o := range l.Owners {
			out[o.ID] = nil
			if sd, ok := yearcalc.PopulationStandardDeviation(scores[o.ID]); ok {
				out[o.ID] = sd.Ptr()
			}
		}
		return out, nil
	})
}
