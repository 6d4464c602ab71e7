package yearcalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

var (
	sslRateWeight    = deci.Int(100)
	sslShareWeight   = deci.Int(2)
	sslExtremeWeight = deci.MustNew("0.05")
)

// SSLFormula combines a per game rate with scoring share and score extremes:
// rate*100 + share*2 + (max+min)*0.05.
func SSLFormula(values ...deci.Deci) deci.Deci {
	rate, share, maxScore, minScore := values[0], values[1], values[2], values[3]
	return rate.Mul(sslRateWeight).
		Add(share.Mul(sslShareWeight)).
		Add(maxScore.Add(minScore).Mul(sslExtremeWeight))
}

// TeamScore measures how good a team is, independent of its schedule.
func TeamScore(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, teamScore)
}

func teamScore(y league.Year, f filter.Year) calculator.Values {
	return calculator.Combine(SSLFormula, awalPerGame(y, f), scoringShare(y, f), maxScore(y, f), minScore(y, f))
}

// TeamSuccess measures how successful a team was: TeamScore with WAL per game
// in place of AWAL per game.
func TeamSuccess(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, teamSuccess)
}

func teamSuccess(y league.Year, f filter.Year) calculator.Values {
	return calculator.Combine(SSLFormula, walPerGame(y, f), scoringShare(y, f), maxScore(y, f), minScore(y, f))
}

// TeamLuck is TeamSuccess - TeamScore.
func TeamLuck(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, teamLuck)
}

func teamLuck(y league.Year, f filter.Year) calculator.Values {
	return calculator.Combine(subtract, teamSuccess(y, f), teamScore(y, f))
}

func subtract(values ...deci.Deci) deci.Deci {
	return values[0].Sub(values[1])
}
