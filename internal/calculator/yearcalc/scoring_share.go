package yearcalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

// ScoringShare is a team's percentage of every point scored under the filter.
// It is zero when nobody scored.
func ScoringShare(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, scoringShare)
}

func scoringShare(y league.Year, f filter.Year) calculator.Values {
	return calculator.Share(pointsScored(y, f), totalPoints(y, f))
}

func OpponentScoringShare(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, opponentScoringShare)
}

func opponentScoringShare(y league.Year, f filter.Year) calculator.Values {
	return calculator.Share(opponentPointsScored(y, f), totalPoints(y, f))
}

// MaxScoringShare is the largest share of a single week's points a team took.
func MaxScoringShare(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, maxScoringShare)
}

func maxScoringShare(y league.Year, f filter.Year) calculator.Values {
	return weeklyScoringShareExtreme(y, f, deci.Max)
}

// MinScoringShare is the smallest share of a single week's points a team took.
func MinScoringShare(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, minScoringShare)
}

func minScoringShare(y league.Year, f filter.Year) calculator.Values {
	return weeklyScoringShareExtreme(y, f, deci.Min)
}

func weeklyScoringShareExtreme(y league.Year, f filter.Year, pick func(a, b deci.Deci) deci.Deci) calculator.Values {
	out := make(calculator.Values, len(y.Teams))
	for _, t := range y.Teams {
		out[t.ID] = nil
	}
	for _, w := range f.Weeks(y) {
		week := f.SingleWeek(w.WeekNumber)
		for teamID, share := range scoringShare(y, week) {
			if share == nil {
				continue
			}
			if current := out[teamID]; current != nil {
				out[teamID] = pick(*current, *share).Ptr()
				continue
			}
			out[teamID] = share
		}
	}
	return out
}
