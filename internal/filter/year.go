package filter

import (
	"slices"

	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
)

// Year is a resolved, validated filter over a single year. Build it with ForYear.
type Year struct {
	WeekNumberStart          int
	WeekNumberEnd            int
	IncludeMatchupTypes      []league.MatchupType
	IncludeMultiWeekMatchups bool
	// againstTeamIDs is nil when every team counts.
	againstTeamIDs map[string]struct{}
}

// ForYear resolves opts against y. Single option checks run before cross
// option checks.
func ForYear(y league.Year, opts Options) (Year, error) {
	warnUnused("year", map[string]bool{
		KeyYearNumberStart: opts.YearNumberStart != nil,
		KeyYearNumberEnd:   opts.YearNumberEnd != nil,
		KeyOnlyOngoing:     opts.OnlyOngoing,
	})

	weekCount := len(y.Weeks)
	f := Year{
		WeekNumberStart:          1,
		WeekNumberEnd:            weekCount,
		IncludeMultiWeekMatchups: true,
	}
	if opts.WeekNumberStart != nil {
		if *opts.WeekNumberStart < 1 {
			return Year{}, invalid(KeyWeekNumberStart, "cannot be less than 1, got %d", *opts.WeekNumberStart)
		}
		if *opts.WeekNumberStart > weekCount {
			return Year{}, invalid(KeyWeekNumberStart, "cannot be greater than the number of weeks in the year (%d), got %d",
				weekCount, *opts.WeekNumberStart)
		}
		f.WeekNumberStart = *opts.WeekNumberStart
	}
	if opts.WeekNumberEnd != nil {
		if *opts.WeekNumberEnd < 1 {
			return Year{}, invalid(KeyWeekNumberEnd, "cannot be less than 1, got %d", *opts.WeekNumberEnd)
		}
		if *opts.WeekNumberEnd > weekCount {
			return Year{}, invalid(KeyWeekNumberEnd, "cannot be greater than the number of weeks in the year (%d), got %d",
				weekCount, *opts.WeekNumberEnd)
		}
		f.WeekNumberEnd = *opts.WeekNumberEnd
	}
	if opts.IncludeMultiWeekMatchups != nil {
		f.IncludeMultiWeekMatchups = *opts.IncludeMultiWeekMatchups
	}
	if len(opts.CalculateAgainstTeamIDs) > 0 {
		known := make(map[string]struct{}, len(y.Teams))
		for _, t := range y.Teams {
			known[t.ID] = struct{}{}
		}
		f.againstTeamIDs = make(map[string]struct{}, len(opts.CalculateAgainstTeamIDs))
		for _, id := range opts.CalculateAgainstTeamIDs {
			if _, ok := known[id]; !ok {
				return Year{}, invalid(KeyCalculateAgainstTeamIDs, "team %s is not in year %d", id, y.YearNumber)
			}
			f.againstTeamIDs[id] = struct{}{}
		}
	}

	types, err := opts.includeMatchupTypes()
	if err != nil {
		return Year{}, err
	}
	f.IncludeMatchupTypes = types
	if f.WeekNumberStart > f.WeekNumberEnd {
		return Year{}, invalid(KeyWeekNumberStart, "cannot be greater than %s (%d > %d)",
			KeyWeekNumberEnd, f.WeekNumberStart, f.WeekNumberEnd)
	}

	return f, nil
}

// Weeks returns the weeks of y inside the filter's week range.
func (f Year) Weeks(y league.Year) []league.Week {
	if f.WeekNumberStart < 1 || f.WeekNumberEnd > len(y.Weeks) || f.WeekNumberStart > f.WeekNumberEnd {
		return nil
	}
	return y.Weeks[f.WeekNumberStart-1 : f.WeekNumberEnd]
}

func (f Year) IncludesType(t league.MatchupType) bool {
	return slices.Contains(f.IncludeMatchupTypes, t)
}

// Includes reports whether m counts under the filter. It does not check the
// week range; callers iterate Weeks.
func (f Year) Includes(m league.Matchup) bool {
	if !f.IncludesType(m.MatchupType) {
		return false
	}
	if !f.IncludeMultiWeekMatchups && m.MultiWeekMatchupID != "" {
		return false
	}
	if f.againstTeamIDs != nil {
		_, okA := f.againstTeamIDs[m.TeamAID]
		_, okB := f.againstTeamIDs[m.TeamBID]
		return okA && okB
	}
	return true
}

// SingleWeek narrows f to one week, keeping every other setting.
func (f Year) SingleWeek(weekNumber int) Year {
	out := f
	out.WeekNumberStart = weekNumber
	out.WeekNumberEnd = weekNumber
	return out
}
