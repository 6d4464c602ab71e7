package navigator

import (
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

// Outcome of a single game from one team's point of view.
type Outcome int

const (
	OutcomeLoss Outcome = iota
	OutcomeTie
	OutcomeWin
)

// LeagueMedianScore is the median of every score in the week's included
// regular season matchups.
func LeagueMedianScore(w league.Week, f filter.Year) (deci.Deci, bool) {
	scores := make([]deci.Deci, 0, len(w.Matchups)*2)
	for _, m := range w.Matchups {
		if m.MatchupType != league.MatchupTypeRegularSeason || !f.Includes(m) {
			continue
		}
		scores = append(scores, m.TeamAScore, m.TeamBScore)
	}
	return deci.Median(scores)
}

// LeagueMedianOutcomes scores every team in the week's included regular season
// matchups against the week's median. It is empty unless the year plays
// league median games.
func LeagueMedianOutcomes(y league.Year, w league.Week, f filter.Year) map[string]Outcome {
	out := make(map[string]Outcome)
	if !y.Settings.LeagueMedianGames {
		return out
	}
	median, ok := LeagueMedianScore(w, f)
	if !ok {
		return out
	}
	for _, m := range w.Matchups {
		if m.MatchupType != league.MatchupTypeRegularSeason || !f.Includes(m) {
			continue
		}
		out[m.TeamAID] = outcomeAgainst(m.TeamAScore, median)
		out[m.TeamBID] = outcomeAgainst(m.TeamBScore, median)
	}
	return out
}

func outcomeAgainst(score, other deci.Deci) Outcome {
	switch score.Cmp(other) {
	case 1:
		return OutcomeWin
	case -1:
		return OutcomeLoss
	default:
		return OutcomeTie
	}
}
