package yearcalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/navigator"
)

// GamesPlayed counts a multi-week matchup as one game and a median week as
// two. Teams without games get zero rather than nil.
func GamesPlayed(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, teamGamesPlayed)
}

func teamGamesPlayed(y league.Year, f filter.Year) calculator.Values {
	return calculator.FromMap(navigator.TeamIDs(y), gamesPlayedForRecord(y, f))
}
