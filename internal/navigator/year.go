package navigator

import (
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

// WeekMatchup is a matchup tagged with the week it counts in.
type WeekMatchup struct {
	WeekNumber int
	Matchup    league.Matchup
}

type GamesPlayedOptions struct {
	// CountMultiWeekMatchupsAsOneGame counts a multi-week group once instead of
	// once per week.
	CountMultiWeekMatchupsAsOneGame bool
	// CountLeagueMedianGamesAsTwoGames adds the league median game to every
	// regular season matchup when the year plays league median games.
	CountLeagueMedianGamesAsTwoGames bool
}

// GamesPlayed counts the games every team played under f. Every team of the
// year is present in the result.
func GamesPlayed(y league.Year, f filter.Year, opts GamesPlayedOptions) map[string]deci.Deci {
	counts := make(map[string]int, len(y.Teams))
	for _, t := range y.Teams {
		counts[t.ID] = 0
	}

	medianGames := opts.CountLeagueMedianGamesAsTwoGames && y.Settings.LeagueMedianGames
	seenGroups := make(map[string]struct{})
	for _, w := range f.Weeks(y) {
		for _, m := range w.Matchups {
			if !f.Includes(m) {
				continue
			}
			games := 1
			if opts.CountMultiWeekMatchupsAsOneGame && m.MultiWeekMatchupID != "" {
				if _, seen := seenGroups[m.MultiWeekMatchupID]; seen {
					games = 0
				}
				seenGroups[m.MultiWeekMatchupID] = struct{}{}
			}
			if medianGames && m.MatchupType == league.MatchupTypeRegularSeason {
				games++
			}
			counts[m.TeamAID] += games
			counts[m.TeamBID] += games
		}
	}

	out := make(map[string]deci.Deci, len(counts))
	for id, n := range counts {
		out[id] = deci.Int(n)
	}
	return out
}

// MultiWeekMatchups groups the included multi-week matchups of f's week range
// by group ID, each group in week order.
func MultiWeekMatchups(y league.Year, f filter.Year) map[string][]league.Matchup {
	out := make(map[string][]league.Matchup)
	for _, w := range f.Weeks(y) {
		for _, m := range w.Matchups {
			if m.MultiWeekMatchupID == "" || !f.Includes(m) {
				continue
			}
			out[m.MultiWeekMatchupID] = append(out[m.MultiWeekMatchupID], m)
		}
	}
	return out
}

// FilteredWeekMatchups lists the included matchups of f's week range in week
// order. With simplify, each multi-week group appears once, collapsed, at the
// last week of the group inside the range.
func FilteredWeekMatchups(y league.Year, f filter.Year, simplify bool) []WeekMatchup {
	var groups map[string][]league.Matchup
	lastWeekOfGroup := make(map[string]int)
	if simplify {
		groups = MultiWeekMatchups(y, f)
		for _, w := range f.Weeks(y) {
			for _, m := range w.Matchups {
				if m.MultiWeekMatchupID != "" && f.Includes(m) {
					lastWeekOfGroup[m.MultiWeekMatchupID] = w.WeekNumber
				}
			}
		}
	}

	out := make([]WeekMatchup, 0)
	for _, w := range f.Weeks(y) {
		for _, m := range w.Matchups {
			if !f.Includes(m) {
				continue
			}
			if simplify && m.MultiWeekMatchupID != "" {
				if lastWeekOfGroup[m.MultiWeekMatchupID] != w.WeekNumber {
					continue
				}
				m = SimplifyMultiWeekMatchup(groups[m.MultiWeekMatchupID])
			}
			out = append(out, WeekMatchup{WeekNumber: w.WeekNumber, Matchup: m})
		}
	}
	return out
}

func FilteredMatchups(y league.Year, f filter.Year, simplify bool) []league.Matchup {
	weekMatchups := FilteredWeekMatchups(y, f, simplify)
	out := make([]league.Matchup, 0, len(weekMatchups))
	for _, wm := range weekMatchups {
		out = append(out, wm.Matchup)
	}
	return out
}

// AllScores lists both scores of every included matchup.
func AllScores(y league.Year, f filter.Year, simplify bool) []deci.Deci {
	matchups := FilteredMatchups(y, f, simplify)
	out := make([]deci.Deci, 0, len(matchups)*2)
	for _, m := range matchups {
		out = append(out, m.TeamAScore, m.TeamBScore)
	}
	return out
}

// TeamScores lists every score each team recorded under f, in week order.
func TeamScores(y league.Year, f filter.Year, simplify bool) map[string][]deci.Deci {
	out := make(map[string][]deci.Deci, len(y.Teams))
	for _, m := range FilteredMatchups(y, f, simplify) {
		out[m.TeamAID] = append(out[m.TeamAID], m.TeamAScore)
		out[m.TeamBID] = append(out[m.TeamBID], m.TeamBScore)
	}
	return out
}
