package yearcalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

// RealPowerRanking blends each week's isolated (TeamScore + TeamSuccess) / 2
// into a weighted average where every week weighs twice the week before it.
// Weeks in which a team has no value are left out of both sums.
func RealPowerRanking(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, realPowerRanking)
}

func realPowerRanking(y league.Year, f filter.Year) calculator.Values {
	weighted := make(map[string]deci.Deci, len(y.Teams))
	weights := make(map[string]deci.Deci, len(y.Teams))
	weight := deci.One
	for _, w := range f.Weeks(y) {
		week := f.SingleWeek(w.WeekNumber)
		for teamID, value := range weeklyPowerRanking(y, week) {
			if value == nil {
				continue
			}
			weighted[teamID] = weighted[teamID].Add(value.Mul(weight))
			weights[teamID] = weights[teamID].Add(weight)
		}
		weight = weight.Mul(deci.Int(2))
	}

	out := make(calculator.Values, len(y.Teams))
	for _, t := range y.Teams {
		out[t.ID] = nil
		if total, ok := weights[t.ID]; ok && !total.IsZero() {
			out[t.ID] = weighted[t.ID].Div(total).Ptr()
		}
	}
	return out
}

func weeklyPowerRanking(y league.Year, week filter.Year) calculator.Values {
	return calculator.Combine(func(values ...deci.Deci) deci.Deci {
		return values[0].Add(values[1]).Mul(deci.Half)
	}, teamScore(y, week), teamSuccess(y, week))
}
