package streak

import (
	"errors"
	"slices"
	"testing"

	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league/leaguetest"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

func id(owner string, year int) string { return leaguetest.TeamID(owner, year) }

// twoSeasons, per owner:
//
//	a: W W T | W W
//	b: L W W | L L
//	c: W L L | L L
//	d: L L T | W W
func twoSeasons() league.League {
	owners := []string{"a", "b", "c", "d"}
	return leaguetest.League("streaks", owners,
		leaguetest.Year(2020, owners,
			[]league.Matchup{leaguetest.Game(id("a", 2020), id("b", 2020), "10", "5"), leaguetest.Game(id("c", 2020), id("d", 2020), "10", "5")},
			[]league.Matchup{leaguetest.Game(id("a", 2020), id("c", 2020), "10", "5"), leaguetest.Game(id("b", 2020), id("d", 2020), "10", "5")},
			[]league.Matchup{leaguetest.Game(id("a", 2020), id("d", 2020), "7", "7"), leaguetest.Game(id("b", 2020), id("c", 2020), "10", "5")},
		),
		leaguetest.Year(2021, owners,
			[]league.Matchup{leaguetest.Game(id("a", 2021), id("b", 2021), "10", "5"), leaguetest.Game(id("d", 2021), id("c", 2021), "10", "5")},
			[]league.Matchup{leaguetest.Game(id("a", 2021), id("c", 2021), "10", "5"), leaguetest.Game(id("d", 2021), id("b", 2021), "10", "5")},
		),
	)
}

// shrinkingLeague drops owners a and b after 2020:
//
//	a: W | -  -
//	b: L | -  -
//	c: W | W  W
//	d: L | L  L
func shrinkingLeague() league.League {
	return leaguetest.League("shrinking", []string{"a", "b", "c", "d"},
		leaguetest.Year(2020, []string{"a", "b", "c", "d"},
			[]league.Matchup{leaguetest.Game(id("a", 2020), id("b", 2020), "10", "5"), leaguetest.Game(id("c", 2020), id("d", 2020), "10", "5")},
		),
		leaguetest.Year(2021, []string{"c", "d"},
			[]league.Matchup{leaguetest.Game(id("c", 2021), id("d", 2021), "10", "5")},
			[]league.Matchup{leaguetest.Game(id("c", 2021), id("d", 2021), "10", "5")},
		),
	)
}

type summary struct {
	owner   string
	length  int
	year    int
	week    int
	ongoing bool
}

func summarize(streaks []Streak) []summary {
	out := make([]summary, 0, len(streaks))
	for _, s := range streaks {
		out = append(out, summary{s.OwnerID, s.Length, s.Start.YearNumber, s.Start.WeekNumber, s.Ongoing})
	}
	return out
}

func assertSummaries(t *testing.T, got []Streak, want []summary) {
	t.Helper()
	if sums := summarize(got); !slices.Equal(sums, want) {
		t.Fatalf("unexpected streaks:\n got=%+v\nwant=%+v", sums, want)
	}
}

func assertLength(t *testing.T, values calculator.Values, ownerID string, want int) {
	t.Helper()
	got, ok := values.Value(ownerID)
	if !ok {
		t.Fatalf("no streak length for %s", ownerID)
	}
	if !got.Equal(deci.Int(want)) {
		t.Fatalf("streak length of %s: got %s want %d", ownerID, got, want)
	}
}

func TestWinStreaks(t *testing.T) {
	t.Parallel()

	got, err := WinStreaks(twoSeasons(), filter.Options{})
	if err != nil {
		t.Fatalf("win streaks: %v", err)
	}
	assertSummaries(t, got, []summary{
		{"a", 2, 2020, 1, false},
		{"b", 2, 2020, 2, false},
		{"a", 2, 2021, 1, true},
		{"d", 2, 2021, 1, true},
		{"c", 1, 2020, 1, false},
	})
	for _, s := range got {
		if s.Kind != KindWin {
			t.Fatalf("unexpected kind %s in win streaks", s.Kind)
		}
	}
}

func TestLossStreakCrossesYears(t *testing.T) {
	t.Parallel()

	got, err := LossStreaks(twoSeasons(), filter.Options{})
	if err != nil {
		t.Fatalf("loss streaks: %v", err)
	}
	assertSummaries(t, got, []summary{
		{"c", 4, 2020, 2, true},
		{"d", 2, 2020, 1, false},
		{"b", 2, 2021, 1, true},
		{"b", 1, 2020, 1, false},
	})

	longest := got[0]
	if want := (Point{TeamID: id("c", 2020), YearNumber: 2020, WeekNumber: 2}); longest.Start != want {
		t.Fatalf("unexpected start: %+v", longest.Start)
	}
	if want := (Point{TeamID: id("c", 2021), YearNumber: 2021, WeekNumber: 2}); longest.End != want {
		t.Fatalf("unexpected end: %+v", longest.End)
	}
}

func TestOnlyOngoing(t *testing.T) {
	t.Parallel()

	got, err := WinStreaks(twoSeasons(), filter.Options{OnlyOngoing: true})
	if err != nil {
		t.Fatalf("win streaks: %v", err)
	}
	assertSummaries(t, got, []summary{
		{"a", 2, 2021, 1, true},
		{"d", 2, 2021, 1, true},
	})
}

func TestStreakOfDepartedOwnerIsNotOngoing(t *testing.T) {
	t.Parallel()

	wins, err := WinStreaks(shrinkingLeague(), filter.Options{})
	if err != nil {
		t.Fatalf("win streaks: %v", err)
	}
	assertSummaries(t, wins, []summary{
		{"c", 3, 2020, 1, true},
		{"a", 1, 2020, 1, false},
	})

	ongoingWins, err := WinStreaks(shrinkingLeague(), filter.Options{OnlyOngoing: true})
	if err != nil {
		t.Fatalf("ongoing win streaks: %v", err)
	}
	assertSummaries(t, ongoingWins, []summary{{"c", 3, 2020, 1, true}})

	ongoingLosses, err := LossStreaks(shrinkingLeague(), filter.Options{OnlyOngoing: true})
	if err != nil {
		t.Fatalf("ongoing loss streaks: %v", err)
	}
	assertSummaries(t, ongoingLosses, []summary{{"d", 3, 2020, 1, true}})

	longest, err := LongestWinStreak(shrinkingLeague(), filter.Options{OnlyOngoing: true})
	if err != nil {
		t.Fatalf("longest win streak: %v", err)
	}
	assertLength(t, longest, "a", 0)
	assertLength(t, longest, "c", 3)
}

func TestStreakOngoingWhenSpanEndsEarlier(t *testing.T) {
	t.Parallel()

	got, err := WinStreaks(shrinkingLeague(), filter.Options{OnlyOngoing: true, YearNumberEnd: filter.Int(2020)})
	if err != nil {
		t.Fatalf("win streaks: %v", err)
	}
	assertSummaries(t, got, []summary{
		{"a", 1, 2020, 1, true},
		{"c", 1, 2020, 1, true},
	})
}

func TestYearSpan(t *testing.T) {
	t.Parallel()

	got, err := LossStreaks(twoSeasons(), filter.Options{YearNumberStart: filter.Int(2021)})
	if err != nil {
		t.Fatalf("loss streaks: %v", err)
	}
	assertSummaries(t, got, []summary{
		{"b", 2, 2021, 1, true},
		{"c", 2, 2021, 1, true},
	})
}

func TestByeDoesNotBreakStreak(t *testing.T) {
	t.Parallel()

	owners := []string{"a", "b", "c"}
	l := leaguetest.League("bye", owners,
		leaguetest.Year(2022, owners,
			[]league.Matchup{leaguetest.Game(id("a", 2022), id("b", 2022), "3", "1")},
			[]league.Matchup{leaguetest.Game(id("b", 2022), id("c", 2022), "3", "1")},
			[]league.Matchup{leaguetest.Game(id("a", 2022), id("c", 2022), "3", "1")},
		),
	)

	got, err := WinStreaks(l, filter.Options{})
	if err != nil {
		t.Fatalf("win streaks: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected win streaks")
	}
	if first := summarize(got)[0]; first != (summary{"a", 2, 2022, 1, true}) {
		t.Fatalf("unexpected longest streak: %+v", first)
	}
}

func TestByeInLastWeekKeepsStreakOngoing(t *testing.T) {
	t.Parallel()

	owners := []string{"a", "b", "c"}
	l := leaguetest.League("late bye", owners,
		leaguetest.Year(2022, owners,
			[]league.Matchup{leaguetest.Game(id("a", 2022), id("b", 2022), "3", "1")},
			[]league.Matchup{leaguetest.Game(id("b", 2022), id("c", 2022), "3", "1")},
		),
	)

	got, err := WinStreaks(l, filter.Options{OnlyOngoing: true})
	if err != nil {
		t.Fatalf("win streaks: %v", err)
	}
	assertSummaries(t, got, []summary{
		{"a", 1, 2022, 1, true},
		{"b", 1, 2022, 2, true},
	})
}

func TestTiebreakerDecidesStreak(t *testing.T) {
	t.Parallel()

	owners := []string{"a", "b"}
	l := leaguetest.League("tiebreak", owners,
		leaguetest.Year(2022, owners,
			[]league.Matchup{leaguetest.Game(id("a", 2022), id("b", 2022), "3", "1")},
			[]league.Matchup{leaguetest.TiebreakerA(leaguetest.Game(id("a", 2022), id("b", 2022), "2", "2"))},
		),
	)

	got, err := WinStreaks(l, filter.Options{})
	if err != nil {
		t.Fatalf("win streaks: %v", err)
	}
	assertSummaries(t, got, []summary{{"a", 2, 2022, 1, true}})
}

func TestLongestStreaks(t *testing.T) {
	t.Parallel()

	l := twoSeasons()
	l.Owners = append(l.Owners, league.Owner{ID: "e", Name: "e"})

	wins, err := LongestWinStreak(l, filter.Options{})
	if err != nil {
		t.Fatalf("longest win streak: %v", err)
	}
	losses, err := LongestLossStreak(l, filter.Options{})
	if err != nil {
		t.Fatalf("longest loss streak: %v", err)
	}

	for owner, want := range map[string][2]int{
		"a": {2, 0},
		"b": {2, 2},
		"c": {1, 4},
		"d": {2, 2},
	} {
		assertLength(t, wins, owner, want[0])
		assertLength(t, losses, owner, want[1])
	}
	if wins["e"] != nil {
		t.Fatalf("owner without games should have no value, got %s", wins["e"])
	}
}

func TestInvalidFilter(t *testing.T) {
	t.Parallel()

	if _, err := WinStreaks(twoSeasons(), filter.Options{OnlyPostSeason: true, OnlyChampionship: true}); !errors.Is(err, filter.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
	if _, err := LongestLossStreak(twoSeasons(), filter.Options{WeekNumberStart: filter.Int(0)}); !errors.Is(err, filter.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}
