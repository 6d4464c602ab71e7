package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league/leaguetest"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	leaguemock "github.com/riskibarqy/fantasy-stats/internal/mocks/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
)

const snapshotPath = "leagues/office.json"

func teamID(owner string, year int) string { return leaguetest.TeamID(owner, year) }

// twoSeasons, per owner:
//
//	a: W W T | W W
//	b: L W W | L L
//	c: W L L | L L
//	d: L L T | W W
func twoSeasons() league.League {
	owners := []string{"a", "b", "c", "d"}
	return leaguetest.League("office", owners,
		leaguetest.Year(2020, owners,
			[]league.Matchup{leaguetest.Game(teamID("a", 2020), teamID("b", 2020), "10", "5"), leaguetest.Game(teamID("c", 2020), teamID("d", 2020), "10", "5")},
			[]league.Matchup{leaguetest.Game(teamID("a", 2020), teamID("c", 2020), "10", "5"), leaguetest.Game(teamID("b", 2020), teamID("d", 2020), "10", "5")},
			[]league.Matchup{leaguetest.Game(teamID("a", 2020), teamID("d", 2020), "7", "7"), leaguetest.Game(teamID("b", 2020), teamID("c", 2020), "10", "5")},
		),
		leaguetest.Year(2021, owners,
			[]league.Matchup{leaguetest.Game(teamID("a", 2021), teamID("b", 2021), "10", "5"), leaguetest.Game(teamID("d", 2021), teamID("c", 2021), "10", "5")},
			[]league.Matchup{leaguetest.Game(teamID("a", 2021), teamID("c", 2021), "10", "5"), leaguetest.Game(teamID("d", 2021), teamID("b", 2021), "10", "5")},
		),
	)
}

func observedLogger() (*logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logging.FromZap(zap.New(core)), logs
}

func requireDeci(t *testing.T, got *deci.Deci, want int, label string) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s: got nil, want %d", label, want)
	}
	if !got.Equal(deci.Int(want)) {
		t.Fatalf("%s: got %s, want %d", label, got, want)
	}
}

func TestReportService_BuildReport_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	loader := leaguemock.NewLoader(t)
	loader.On("Load", mock.Anything, snapshotPath).Return(twoSeasons(), nil).Once()

	logger, _ := observedLogger()
	service := NewReportService(loader, ReportConfig{MaxWorkers: 2}, logger)

	report, err := service.BuildReport(ctx, snapshotPath, filter.Options{})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}

	if report.LeagueName != "office" {
		t.Fatalf("unexpected league name: %q", report.LeagueName)
	}
	if len(report.Years) != 2 {
		t.Fatalf("unexpected year count: %d", len(report.Years))
	}
	if report.Years[0].Sheet.YearNumber != 2020 || report.Years[1].Sheet.YearNumber != 2021 {
		t.Fatalf("years out of order: %d, %d", report.Years[0].Sheet.YearNumber, report.Years[1].Sheet.YearNumber)
	}
	if len(report.Years[1].Teams) != 4 {
		t.Fatalf("unexpected team count: %d", len(report.Years[1].Teams))
	}

	requireDeci(t, report.Years[0].Sheet.Wins[teamID("a", 2020)], 2, "2020 wins of a")
	requireDeci(t, report.AllTime.Wins["a"], 4, "all-time wins of a")
	requireDeci(t, report.AllTime.Losses["c"], 4, "all-time losses of c")
	requireDeci(t, report.LongestLossStreak["c"], 4, "longest loss streak of c")
	requireDeci(t, report.LongestWinStreak["a"], 2, "longest win streak of a")

	if len(report.WinStreaks) != 5 || len(report.LossStreaks) != 4 {
		t.Fatalf("unexpected streak counts: wins=%d losses=%d", len(report.WinStreaks), len(report.LossStreaks))
	}
	if top := report.LossStreaks[0]; top.OwnerID != "c" || top.Length != 4 || !top.Ongoing {
		t.Fatalf("unexpected longest loss streak: %+v", top)
	}
	if got := report.OwnerName("b"); got != "b" {
		t.Fatalf("unexpected owner name: %q", got)
	}
}

func TestReportService_BuildReport_CachedReportSurvivesCallerMutation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	loader := leaguemock.NewLoader(t)
	loader.On("Load", mock.Anything, snapshotPath).Return(twoSeasons(), nil).Twice()

	logger, logs := observedLogger()
	service := NewReportService(loader, ReportConfig{MaxWorkers: 2, CacheEnabled: true, CacheTTL: time.Minute}, logger)

	first, err := service.BuildReport(ctx, snapshotPath, filter.Options{})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	*first.Years[0].Sheet.Wins[teamID("a", 2020)] = deci.Int(99)
	delete(first.AllTime.Wins, "a")
	first.LongestLossStreak["c"] = nil
	first.Years[0].Teams[0].Name = "renamed"
	first.WinStreaks[0].Length = 42

	second, err := service.BuildReport(ctx, snapshotPath, filter.Options{})
	if err != nil {
		t.Fatalf("build cached report: %v", err)
	}
	if got := logs.FilterMessage("report computed").Len(); got != 1 {
		t.Fatalf("report computed %d times, want 1", got)
	}
	requireDeci(t, second.Years[0].Sheet.Wins[teamID("a", 2020)], 2, "2020 wins of a")
	requireDeci(t, second.AllTime.Wins["a"], 4, "all-time wins of a")
	requireDeci(t, second.LongestLossStreak["c"], 4, "longest loss streak of c")
	if second.Years[0].Teams[0].Name == "renamed" {
		t.Fatalf("team rename leaked into the cache")
	}
	if second.WinStreaks[0].Length != 2 {
		t.Fatalf("streak edit leaked into the cache: %+v", second.WinStreaks[0])
	}
}

func TestReportService_BuildReport_CachesBySnapshotContent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	edited := twoSeasons()
	edited.Years[1].Weeks[1].Matchups[0].TeamAScore = deci.MustNew("1")

	loader := leaguemock.NewLoader(t)
	loader.On("Load", mock.Anything, snapshotPath).Return(twoSeasons(), nil).Twice()
	loader.On("Load", mock.Anything, snapshotPath).Return(edited, nil).Once()

	logger, logs := observedLogger()
	service := NewReportService(loader, ReportConfig{MaxWorkers: 4, CacheEnabled: true, CacheTTL: time.Minute}, logger)

	for i := 0; i < 2; i++ {
		if _, err := service.BuildReport(ctx, snapshotPath, filter.Options{}); err != nil {
			t.Fatalf("build report %d: %v", i, err)
		}
	}
	if got := logs.FilterMessage("report computed").Len(); got != 1 {
		t.Fatalf("report computed %d times, want 1", got)
	}

	report, err := service.BuildReport(ctx, snapshotPath, filter.Options{})
	if err != nil {
		t.Fatalf("build edited report: %v", err)
	}
	if got := logs.FilterMessage("report computed").Len(); got != 2 {
		t.Fatalf("edited snapshot reused a cached report")
	}
	requireDeci(t, report.Years[1].Sheet.Wins[teamID("a", 2021)], 1, "edited 2021 wins of a")
}

func TestReportService_BuildReport_DifferentOptionsMissCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	loader := leaguemock.NewLoader(t)
	loader.On("Load", mock.Anything, snapshotPath).Return(twoSeasons(), nil).Twice()

	logger, logs := observedLogger()
	service := NewReportService(loader, ReportConfig{MaxWorkers: 1, CacheEnabled: true, CacheTTL: time.Minute}, logger)

	if _, err := service.BuildReport(ctx, snapshotPath, filter.Options{}); err != nil {
		t.Fatalf("build report: %v", err)
	}
	report, err := service.BuildReport(ctx, snapshotPath, filter.Options{YearNumberStart: filter.Int(2021), WeekNumberEnd: filter.Int(1)})
	if err != nil {
		t.Fatalf("build filtered report: %v", err)
	}
	if got := logs.FilterMessage("report computed").Len(); got != 2 {
		t.Fatalf("report computed %d times, want 2", got)
	}

	if len(report.Years) != 1 || report.Years[0].Sheet.YearNumber != 2021 {
		t.Fatalf("unexpected years in filtered report: %+v", report.Years)
	}
	requireDeci(t, report.Years[0].Sheet.GamesPlayed[teamID("a", 2021)], 1, "filtered games played of a")
	requireDeci(t, report.AllTime.Wins["a"], 1, "filtered all-time wins of a")
}

func TestReportService_BuildReport_AgainstTeamIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	loader := leaguemock.NewLoader(t)
	loader.On("Load", mock.Anything, snapshotPath).Return(twoSeasons(), nil).Twice()

	service := NewReportService(loader, ReportConfig{MaxWorkers: 2}, logging.NewNop())
	against := []string{teamID("a", 2021), teamID("b", 2021)}

	report, err := service.BuildReport(ctx, snapshotPath, filter.Options{
		YearNumberStart:         filter.Int(2021),
		YearNumberEnd:           filter.Int(2021),
		CalculateAgainstTeamIDs: against,
	})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	requireDeci(t, report.Years[0].Sheet.Wins[teamID("a", 2021)], 1, "wins of a against b")

	_, err = service.BuildReport(ctx, snapshotPath, filter.Options{CalculateAgainstTeamIDs: against})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for teams missing from 2020, got %v", err)
	}
}

func TestReportService_BuildReport_Errors(t *testing.T) {
	t.Parallel()

	invalidLeague := twoSeasons()
	invalidLeague.Years[0].Teams[0].OwnerID = "ghost"

	cases := []struct {
		name    string
		loaded  league.League
		loadErr error
		opts    filter.Options
		want    error
	}{
		{
			name:    "snapshot not found",
			loadErr: crerr.Mark(errors.New("open leagues/office.json"), league.ErrSnapshotNotFound),
			want:    ErrNotFound,
		},
		{
			name:    "malformed snapshot",
			loadErr: crerr.Mark(errors.New("unexpected end of json"), league.ErrMalformedSnapshot),
			want:    ErrInvalidInput,
		},
		{
			name:    "read failure",
			loadErr: errors.New("permission denied"),
			want:    ErrDependencyUnavailable,
		},
		{
			name:   "invalid league",
			loaded: invalidLeague,
			want:   ErrInvalidInput,
		},
		{
			name:   "invalid filter",
			loaded: twoSeasons(),
			opts:   filter.Options{YearNumberStart: filter.Int(1999)},
			want:   ErrInvalidInput,
		},
		{
			name:   "conflicting season segments",
			loaded: twoSeasons(),
			opts:   filter.Options{OnlyPostSeason: true, OnlyRegularSeason: true},
			want:   ErrInvalidInput,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			loader := leaguemock.NewLoader(t)
			loader.On("Load", mock.Anything, snapshotPath).Return(tc.loaded, tc.loadErr).Once()
			service := NewReportService(loader, ReportConfig{MaxWorkers: 2, CacheEnabled: true, CacheTTL: time.Minute}, logging.NewNop())

			_, err := service.BuildReport(context.Background(), snapshotPath, tc.opts)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestReportService_BuildReport_RequiresSource(t *testing.T) {
	t.Parallel()

	loader := leaguemock.NewLoader(t)
	service := NewReportService(loader, ReportConfig{}, nil)

	_, err := service.BuildReport(context.Background(), "  ", filter.Options{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	loader.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}
