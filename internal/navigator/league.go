package navigator

import (
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

// AllScoresInLeague lists both scores of every included matchup across the
// filter's span of years.
func AllScoresInLeague(l league.League, f filter.AllTime, simplify bool) []deci.Deci {
	out := make([]deci.Deci, 0)
	for _, span := range f.Spans(l) {
		out = append(out, AllScores(span.Year, span.Filter(), simplify)...)
	}
	return out
}

// GamesPlayedByOwner sums GamesPlayed across the span, keyed by owner. Every
// owner of the league is present in the result.
func GamesPlayedByOwner(l league.League, f filter.AllTime, opts GamesPlayedOptions) map[string]deci.Deci {
	out := make(map[string]deci.Deci, len(l.Owners))
	for _, o := range l.Owners {
		out[o.ID] = deci.Zero
	}
	for _, span := range f.Spans(l) {
		owners := OwnerIDByTeamID(span.Year)
		for teamID, games := range GamesPlayed(span.Year, span.Filter(), opts) {
			ownerID := owners[teamID]
			out[ownerID] = out[ownerID].Add(games)
		}
	}
	return out
}

// OwnerScores lists every score each owner recorded across the span.
func OwnerScores(l league.League, f filter.AllTime, simplify bool) map[string][]deci.Deci {
	out := make(map[string][]deci.Deci, len(l.Owners))
	for _, span := range f.Spans(l) {
		owners := OwnerIDByTeamID(span.Year)
		scores := TeamScores(span.Year, span.Filter(), simplify)
		for _, teamID := range TeamIDs(span.Year) {
			ownerID := owners[teamID]
			out[ownerID] = append(out[ownerID], scores[teamID]...)
		}
	}
	return out
}
