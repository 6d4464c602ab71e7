package filter

import (
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
)

// AllTime is a resolved filter over a span of years in a league. Week bounds
// apply to the first and last year of the span only.
type AllTime struct {
	YearNumberStart          int
	YearNumberEnd            int
	WeekNumberStart          int
	WeekNumberEnd            int
	OnlyChampionship         bool
	OnlyPostSeason           bool
	OnlyRegularSeason        bool
	IncludeMatchupTypes      []league.MatchupType
	IncludeMultiWeekMatchups bool
}

// Span is one year of an all-time filter with the weeks selected in it.
type Span struct {
	Year            league.Year
	WeekNumberStart int
	WeekNumberEnd   int

	parent AllTime
}

// ForLeague resolves opts against l.
func ForLeague(l league.League, opts Options) (AllTime, error) {
	warnUnused("all-time", map[string]bool{
		KeyCalculateAgainstTeamIDs: len(opts.CalculateAgainstTeamIDs) > 0,
		KeyOnlyOngoing:             opts.OnlyOngoing,
	})
	return forLeague(l, opts)
}

func forLeague(l league.League, opts Options) (AllTime, error) {
	if len(l.Years) == 0 {
		return AllTime{}, invalid(KeyYearNumberStart, "league %q has no years", l.Name)
	}

	f := AllTime{
		YearNumberStart:          l.Years[0].YearNumber,
		YearNumberEnd:            l.Years[len(l.Years)-1].YearNumber,
		OnlyChampionship:         opts.OnlyChampionship,
		OnlyPostSeason:           opts.OnlyPostSeason,
		OnlyRegularSeason:        opts.OnlyRegularSeason,
		IncludeMultiWeekMatchups: true,
	}
	if opts.YearNumberStart != nil {
		if _, ok := yearByNumber(l, *opts.YearNumberStart); !ok {
			return AllTime{}, invalid(KeyYearNumberStart, "year %d is not in league %q", *opts.YearNumberStart, l.Name)
		}
		f.YearNumberStart = *opts.YearNumberStart
	}
	if opts.YearNumberEnd != nil {
		if _, ok := yearByNumber(l, *opts.YearNumberEnd); !ok {
			return AllTime{}, invalid(KeyYearNumberEnd, "year %d is not in league %q", *opts.YearNumberEnd, l.Name)
		}
		f.YearNumberEnd = *opts.YearNumberEnd
	}
	if opts.IncludeMultiWeekMatchups != nil {
		f.IncludeMultiWeekMatchups = *opts.IncludeMultiWeekMatchups
	}

	startYear, _ := yearByNumber(l, f.YearNumberStart)
	endYear, _ := yearByNumber(l, f.YearNumberEnd)
	f.WeekNumberStart = 1
	f.WeekNumberEnd = len(endYear.Weeks)
	if opts.WeekNumberStart != nil {
		if *opts.WeekNumberStart < 1 {
			return AllTime{}, invalid(KeyWeekNumberStart, "cannot be less than 1, got %d", *opts.WeekNumberStart)
		}
		if *opts.WeekNumberStart > len(startYear.Weeks) {
			return AllTime{}, invalid(KeyWeekNumberStart, "cannot be greater than the number of weeks in year %d (%d), got %d",
				startYear.YearNumber, len(startYear.Weeks), *opts.WeekNumberStart)
		}
		f.WeekNumberStart = *opts.WeekNumberStart
	}
	if opts.WeekNumberEnd != nil {
		if *opts.WeekNumberEnd < 1 {
			return AllTime{}, invalid(KeyWeekNumberEnd, "cannot be less than 1, got %d", *opts.WeekNumberEnd)
		}
		if *opts.WeekNumberEnd > len(endYear.Weeks) {
			return AllTime{}, invalid(KeyWeekNumberEnd, "cannot be greater than the number of weeks in year %d (%d), got %d",
				endYear.YearNumber, len(endYear.Weeks), *opts.WeekNumberEnd)
		}
		f.WeekNumberEnd = *opts.WeekNumberEnd
	}

	types, err := opts.includeMatchupTypes()
	if err != nil {
		return AllTime{}, err
	}
	f.IncludeMatchupTypes = types
	if f.YearNumberStart > f.YearNumberEnd {
		return AllTime{}, invalid(KeyYearNumberStart, "cannot be greater than %s (%d > %d)",
			KeyYearNumberEnd, f.YearNumberStart, f.YearNumberEnd)
	}
	if f.YearNumberStart == f.YearNumberEnd && f.WeekNumberStart > f.WeekNumberEnd {
		return AllTime{}, invalid(KeyWeekNumberStart, "cannot be greater than %s within one year (%d > %d)",
			KeyWeekNumberEnd, f.WeekNumberStart, f.WeekNumberEnd)
	}

	return f, nil
}

// Spans lists the selected years of l in league order: the first year from the
// configured start week to its last week, interior years in full, and the last
// year from week 1 to the configured end week.
func (f AllTime) Spans(l league.League) []Span {
	out := make([]Span, 0, len(l.Years))
	for _, y := range l.Years {
		if y.YearNumber < f.YearNumberStart || y.YearNumber > f.YearNumberEnd {
			continue
		}
		span := Span{
			Year:            y,
			WeekNumberStart: 1,
			WeekNumberEnd:   len(y.Weeks),
			parent:          f,
		}
		if y.YearNumber == f.YearNumberStart {
			span.WeekNumberStart = f.WeekNumberStart
		}
		if y.YearNumber == f.YearNumberEnd {
			span.WeekNumberEnd = f.WeekNumberEnd
		}
		out = append(out, span)
	}
	return out
}

// Options returns the year options that select exactly this span.
func (s Span) Options() Options {
	return Options{
		OnlyChampionship:         s.parent.OnlyChampionship,
		OnlyPostSeason:           s.parent.OnlyPostSeason,
		OnlyRegularSeason:        s.parent.OnlyRegularSeason,
		WeekNumberStart:          Int(s.WeekNumberStart),
		WeekNumberEnd:            Int(s.WeekNumberEnd),
		IncludeMultiWeekMatchups: Bool(s.parent.IncludeMultiWeekMatchups),
	}
}

// Filter resolves the span into a year filter. Spans produced by Spans are
// always valid, so resolution cannot fail.
func (s Span) Filter() Year {
	f, err := ForYear(s.Year, s.Options())
	if err != nil {
		return Year{WeekNumberStart: 1, WeekNumberEnd: 0}
	}
	return f
}

func yearByNumber(l league.League, yearNumber int) (league.Year, bool) {
	for _, y := range l.Years {
		if y.YearNumber == yearNumber {
			return y, true
		}
	}
	return league.Year{}, false
}
