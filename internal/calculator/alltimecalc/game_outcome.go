package alltimecalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/calculator/yearcalc"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

func Wins(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, summed(yearcalc.Wins))
}

func Losses(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, summed(yearcalc.Losses))
}

func Ties(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, summed(yearcalc.Ties))
}

func LeagueMedianWins(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, summed(yearcalc.LeagueMedianWins))
}

func WAL(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, summed(yearcalc.WAL))
}

// WinPercentage is all-time WAL over all-time games, a multi-week matchup
// counting as one game and a median week as two.
func WinPercentage(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, func(l league.League, f filter.AllTime) (calculator.Values, error) {
		wal, err := addAndCombineResults(l, f, yearcalc.WAL, add)
		if err != nil {
			return nil, err
		}
		return calculator.Ratio(wal, gamesPlayedForRecord(l, f), nil), nil
	})
}

// WALPerGame is zero rather than nil for an owner without games.
func WALPerGame(l league.League, opts filter.Options) (calculator.Values, error) {
	return calculate(l, opts, walPerGame)
}

func walPerGame(l league.League, f filter.AllTime) (calculator.Values, error) {
	wal, err := addAndCombineResults(l, f, yearcalc.WAL, add)
	if err != nil {
		return nil, err
	}
	return calculator.Ratio(wal, gamesPlayedForRecord(l, f), deci.Zero.Ptr()), nil
}
