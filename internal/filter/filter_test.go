package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league/leaguetest"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
)

func threeWeekYear(yearNumber int) league.Year {
	a := leaguetest.TeamID("a", yearNumber)
	b := leaguetest.TeamID("b", yearNumber)
	return leaguetest.Year(yearNumber, []string{"a", "b"},
		[]league.Matchup{leaguetest.Game(a, b, "1", "2")},
		[]league.Matchup{leaguetest.Playoff(a, b, "1", "2")},
		[]league.Matchup{leaguetest.Championship(a, b, "1", "2")},
	)
}

func requireInvalidFilter(t *testing.T, err error, option string) {
	t.Helper()
	require.Error(t, err)
	if !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
	var filterErr *InvalidFilterError
	require.True(t, errors.As(err, &filterErr))
	assert.Equal(t, option, filterErr.Option)
}

func TestForYearDefaults(t *testing.T) {
	t.Parallel()

	y := threeWeekYear(2021)
	f, err := ForYear(y, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, f.WeekNumberStart)
	assert.Equal(t, 3, f.WeekNumberEnd)
	assert.True(t, f.IncludeMultiWeekMatchups)
	assert.Equal(t, []league.MatchupType{
		league.MatchupTypeRegularSeason,
		league.MatchupTypePlayoff,
		league.MatchupTypeChampionship,
	}, f.IncludeMatchupTypes)
	assert.Len(t, f.Weeks(y), 3)
	assert.False(t, f.IncludesType(league.MatchupTypeIgnore))
}

func TestForYearSeasonSegments(t *testing.T) {
	t.Parallel()

	y := threeWeekYear(2021)
	tests := []struct {
		name string
		opts Options
		want []league.MatchupType
	}{
		{"regular season", Options{OnlyRegularSeason: true}, []league.MatchupType{league.MatchupTypeRegularSeason}},
		{"post season", Options{OnlyPostSeason: true}, []league.MatchupType{league.MatchupTypePlayoff, league.MatchupTypeChampionship}},
		{"championship", Options{OnlyChampionship: true}, []league.MatchupType{league.MatchupTypeChampionship}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f, err := ForYear(y, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, f.IncludeMatchupTypes)
		})
	}
}

func TestForYearInvalid(t *testing.T) {
	t.Parallel()

	y := threeWeekYear(2021)
	tests := []struct {
		name   string
		opts   Options
		option string
	}{
		{"week start zero", Options{WeekNumberStart: Int(0)}, KeyWeekNumberStart},
		{"week start past the year", Options{WeekNumberStart: Int(4)}, KeyWeekNumberStart},
		{"week end zero", Options{WeekNumberEnd: Int(0)}, KeyWeekNumberEnd},
		{"week end past the year", Options{WeekNumberEnd: Int(4)}, KeyWeekNumberEnd},
		{"start after end", Options{WeekNumberStart: Int(3), WeekNumberEnd: Int(2)}, KeyWeekNumberStart},
		{"post season and championship", Options{OnlyPostSeason: true, OnlyChampionship: true},
			KeyOnlyChampionship + "," + KeyOnlyPostSeason},
		{"unknown against team", Options{CalculateAgainstTeamIDs: []string{"ghost"}}, KeyCalculateAgainstTeamIDs},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ForYear(y, tc.opts)
			requireInvalidFilter(t, err, tc.option)
		})
	}
}

func TestForYearSingleOptionErrorsWin(t *testing.T) {
	t.Parallel()

	// both the week bound and the season flags are wrong; the week bound is
	// reported first
	_, err := ForYear(threeWeekYear(2021), Options{
		WeekNumberStart:   Int(0),
		OnlyPostSeason:    true,
		OnlyRegularSeason: true,
	})
	requireInvalidFilter(t, err, KeyWeekNumberStart)
}

func TestYearIncludes(t *testing.T) {
	t.Parallel()

	y := threeWeekYear(2021)
	a, b := leaguetest.TeamID("a", 2021), leaguetest.TeamID("b", 2021)
	game := leaguetest.Game(a, b, "1", "1")

	f, err := ForYear(y, Options{IncludeMultiWeekMatchups: Bool(false)})
	require.NoError(t, err)
	assert.True(t, f.Includes(game))
	assert.False(t, f.Includes(leaguetest.MultiWeek(game, "mw")))

	ignored := game
	ignored.MatchupType = league.MatchupTypeIgnore
	assert.False(t, f.Includes(ignored))

	f, err = ForYear(y, Options{CalculateAgainstTeamIDs: []string{a}})
	require.NoError(t, err)
	assert.False(t, f.Includes(game))

	f, err = ForYear(y, Options{CalculateAgainstTeamIDs: []string{a, b}})
	require.NoError(t, err)
	assert.True(t, f.Includes(game))

	week := f.SingleWeek(2)
	assert.Equal(t, 2, week.WeekNumberStart)
	assert.Equal(t, 2, week.WeekNumberEnd)
	require.Len(t, week.Weeks(y), 1)
	assert.Equal(t, 2, week.Weeks(y)[0].WeekNumber)
}

func TestForLeagueSpans(t *testing.T) {
	t.Parallel()

	l := leaguetest.League("test", []string{"a", "b"}, threeWeekYear(2019), threeWeekYear(2020), threeWeekYear(2021))

	f, err := ForLeague(l, Options{WeekNumberStart: Int(2), WeekNumberEnd: Int(1)})
	require.NoError(t, err)
	spans := f.Spans(l)
	require.Len(t, spans, 3)
	assert.Equal(t, [2]int{2, 3}, [2]int{spans[0].WeekNumberStart, spans[0].WeekNumberEnd})
	assert.Equal(t, [2]int{1, 3}, [2]int{spans[1].WeekNumberStart, spans[1].WeekNumberEnd})
	assert.Equal(t, [2]int{1, 1}, [2]int{spans[2].WeekNumberStart, spans[2].WeekNumberEnd})

	f, err = ForLeague(l, Options{YearNumberStart: Int(2020), YearNumberEnd: Int(2020), OnlyRegularSeason: true})
	require.NoError(t, err)
	spans = f.Spans(l)
	require.Len(t, spans, 1)
	assert.Equal(t, 2020, spans[0].Year.YearNumber)
	yf := spans[0].Filter()
	assert.Equal(t, []league.MatchupType{league.MatchupTypeRegularSeason}, yf.IncludeMatchupTypes)
	assert.Equal(t, 3, yf.WeekNumberEnd)
}

func TestForLeagueInvalid(t *testing.T) {
	t.Parallel()

	l := leaguetest.League("test", []string{"a", "b"}, threeWeekYear(2019), threeWeekYear(2020))
	tests := []struct {
		name   string
		opts   Options
		option string
	}{
		{"unknown start year", Options{YearNumberStart: Int(2018)}, KeyYearNumberStart},
		{"unknown end year", Options{YearNumberEnd: Int(2030)}, KeyYearNumberEnd},
		{"start year after end year", Options{YearNumberStart: Int(2020), YearNumberEnd: Int(2019)}, KeyYearNumberStart},
		{"week start zero", Options{WeekNumberStart: Int(0)}, KeyWeekNumberStart},
		{"week end past last year", Options{WeekNumberEnd: Int(9)}, KeyWeekNumberEnd},
		{"weeks reversed in one year", Options{
			YearNumberStart: Int(2019), YearNumberEnd: Int(2019), WeekNumberStart: Int(3), WeekNumberEnd: Int(1),
		}, KeyWeekNumberStart},
		{"two segments", Options{OnlyRegularSeason: true, OnlyPostSeason: true},
			KeyOnlyPostSeason + "," + KeyOnlyRegularSeason},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ForLeague(l, tc.opts)
			requireInvalidFilter(t, err, tc.option)
		})
	}
}

func TestForStreak(t *testing.T) {
	t.Parallel()

	l := leaguetest.League("test", []string{"a", "b"}, threeWeekYear(2019), threeWeekYear(2020))
	f, err := ForStreak(l, Options{OnlyOngoing: true, YearNumberStart: Int(2020)})
	require.NoError(t, err)
	assert.True(t, f.OnlyOngoing)
	assert.Equal(t, 2020, f.YearNumberStart)

	_, err = ForStreak(l, Options{OnlyChampionship: true, OnlyRegularSeason: true})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestParseOptions(t *testing.T) {
	t.Parallel()

	opts, err := ParseOptions(map[string]any{
		KeyOnlyRegularSeason:        true,
		KeyWeekNumberStart:          float64(2),
		KeyYearNumberEnd:            2022,
		KeyIncludeMultiWeekMatchups: false,
		KeyCalculateAgainstTeamIDs:  []any{"t1", "t2"},
	})
	require.NoError(t, err)
	assert.True(t, opts.OnlyRegularSeason)
	require.NotNil(t, opts.WeekNumberStart)
	assert.Equal(t, 2, *opts.WeekNumberStart)
	require.NotNil(t, opts.YearNumberEnd)
	assert.Equal(t, 2022, *opts.YearNumberEnd)
	require.NotNil(t, opts.IncludeMultiWeekMatchups)
	assert.False(t, *opts.IncludeMultiWeekMatchups)
	assert.Equal(t, []string{"t1", "t2"}, opts.CalculateAgainstTeamIDs)
	assert.Nil(t, opts.WeekNumberEnd)
}

func TestParseOptionsTypeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  map[string]any
		key  string
	}{
		{"bool as string", map[string]any{KeyOnlyPostSeason: "yes"}, KeyOnlyPostSeason},
		{"fractional week", map[string]any{KeyWeekNumberStart: 1.5}, KeyWeekNumberStart},
		{"week as string", map[string]any{KeyWeekNumberEnd: "3"}, KeyWeekNumberEnd},
		{"mixed team ids", map[string]any{KeyCalculateAgainstTeamIDs: []any{"t1", 2}}, KeyCalculateAgainstTeamIDs},
		{"team ids not a list", map[string]any{KeyCalculateAgainstTeamIDs: "t1"}, KeyCalculateAgainstTeamIDs},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseOptions(tc.raw)
			requireInvalidFilter(t, err, tc.key)
		})
	}
}

// Not parallel: swaps the process-wide logger.
func TestUnusedOptionsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	previous := logging.Default()
	logging.SetDefault(logging.FromZap(zap.New(core)))
	t.Cleanup(func() { logging.SetDefault(previous) })

	_, err := ParseOptions(map[string]any{"notAnOption": 1})
	require.NoError(t, err)

	y := threeWeekYear(2021)
	_, err = ForYear(y, Options{YearNumberStart: Int(2021), OnlyOngoing: true})
	require.NoError(t, err)

	l := leaguetest.League("test", []string{"a", "b"}, y)
	_, err = ForLeague(l, Options{CalculateAgainstTeamIDs: []string{"x"}})
	require.NoError(t, err)

	entries := logs.FilterMessage("unused filter option").All()
	require.Len(t, entries, 4)
	options := make([]string, 0, len(entries))
	for _, e := range entries {
		options = append(options, e.ContextMap()["option"].(string))
	}
	assert.Equal(t, []string{"notAnOption", KeyOnlyOngoing, KeyYearNumberStart, KeyCalculateAgainstTeamIDs}, options)
}

func TestScopedOptionsDropUnusedKeys(t *testing.T) {
	t.Parallel()

	opts := Options{
		OnlyRegularSeason:       true,
		WeekNumberStart:         Int(2),
		YearNumberStart:         Int(2020),
		YearNumberEnd:           Int(2021),
		CalculateAgainstTeamIDs: []string{"x"},
		OnlyOngoing:             true,
	}

	year := opts.YearScoped()
	assert.Nil(t, year.YearNumberStart)
	assert.Nil(t, year.YearNumberEnd)
	assert.False(t, year.OnlyOngoing)
	assert.Equal(t, []string{"x"}, year.CalculateAgainstTeamIDs)

	allTime := opts.AllTimeScoped()
	assert.Nil(t, allTime.CalculateAgainstTeamIDs)
	assert.False(t, allTime.OnlyOngoing)
	assert.Equal(t, Int(2020), allTime.YearNumberStart)

	streak := opts.StreakScoped()
	assert.Nil(t, streak.CalculateAgainstTeamIDs)
	assert.True(t, streak.OnlyOngoing)

	assert.Equal(t, Int(2), opts.WeekNumberStart)
	assert.True(t, opts.OnlyOngoing)
}
