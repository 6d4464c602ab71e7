package alltimecalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/navigator"
)

// GamesPlayed counts a multi-week matchup as one game and a median week as
// two. Owners without games get zero rather than nil.
func GamesPlayed(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, func(l league.League, f filter.AllTime) (calculator.Values, error) {
		return calculator.FromMap(navigator.OwnerIDs(l), gamesPlayedForRecord(l, f)), nil
	})
}
