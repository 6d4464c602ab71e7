package yearcalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/navigator"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

// MaxScore is a team's highest single week score.
func MaxScore(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, maxScore)
}

func maxScore(y league.Year, f filter.Year) calculator.Values {
	return scoreExtreme(y, f, deci.Max)
}

// MinScore is a team's lowest single week score.
func MinScore(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, minScore)
}

func minScore(y league.Year, f filter.Year) calculator.Values {
	return scoreExtreme(y, f, deci.Min)
}

func scoreExtreme(y league.Year, f filter.Year, pick func(a, b deci.Deci) deci.Deci) calculator.Values {
	scores := navigator.TeamScores(y, f, false)
	out := make(calculator.Values, len(y.Teams))
	for _, t := range y.Teams {
		out[t.ID] = nil
		teamScores := scores[t.ID]
		if len(teamScores) == 0 {
			continue
		}
		best := teamScores[0]
		for _, s := range teamScores[1:] {
			best = pick(best, s)
		}
		out[t.ID] = best.Ptr()
	}
	return out
}
