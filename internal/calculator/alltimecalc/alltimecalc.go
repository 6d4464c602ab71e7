// Package alltimecalc computes per-owner statistics across a span of years.
//
// Counting statistics run the matching yearcalc function once per selected
// year and add the results up by owner. Ratios are recomputed from the summed
// parts rather than averaged across years. Results hold every owner of the
// league; an owner with no qualifying games anywhere in the span maps to nil.
package alltimecalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/navigator"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

type yearFunc func(y league.Year, opts filter.Options) (calculator.Values, error)

type resolvedFunc func(l league.League, f filter.AllTime) (calculator.Values, error)

func calculate(l league.League, opts filter.Options, fn resolvedFunc) (calculator.Values, error) {
	f, err := filter.ForLeague(l, opts)
	if err != nil {
		return nil, err
	}
	return fn(l, f)
}

// addAndCombineResults runs fn for every year of the span and folds the
// non-nil team values into their owner with combine. Owners that never had a
// value stay nil.
func addAndCombineResults(l league.League, f filter.AllTime, fn yearFunc, combine func(a, b deci.Deci) deci.Deci) (calculator.Values, error) {
	out := make(calculator.Values, len(l.Owners))
	for _, o := range l.Owners {
		out[o.ID] = nil
	}

	for _, span := range f.Spans(l) {
		values, err := fn(span.Year, span.Options())
		if err != nil {
			return nil, err
		}
		owners := navigator.OwnerIDByTeamID(span.Year)
		for teamID, value := range values {
			if value == nil {
				continue
			}
			ownerID := owners[teamID]
			if current := out[ownerID]; current != nil {
				out[ownerID] = combine(*current, *value).Ptr()
				continue
			}
			out[ownerID] = value.Ptr()
		}
	}
	return out, nil
}

func add(a, b deci.Deci) deci.Deci { return a.Add(b) }

func summed(fn yearFunc) resolvedFunc {
	return func(l league.League, f filter.AllTime) (calculator.Values, error) {
		return addAndCombineResults(l, f, fn, add)
	}
}

func gamesPlayed(l league.League, f filter.AllTime) map[string]deci.Deci {
	return navigator.GamesPlayedByOwner(l, f, navigator.GamesPlayedOptions{})
}

func gamesPlayedForRecord(l league.League, f filter.AllTime) map[string]deci.Deci {
	return navigator.GamesPlayedByOwner(l, f, navigator.GamesPlayedOptions{
		CountMultiWeekMatchupsAsOneGame:  true,
		CountLeagueMedianGamesAsTwoGames: true,
	})
}

func zeroByOwner(l league.League) map[string]deci.Deci {
	out := make(map[string]deci.Deci, len(l.Owners))
	for _, o := range l.Owners {
		out[o.ID] = deci.Zero
	}
	return out
}
