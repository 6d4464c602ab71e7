package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/calculator/streak"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/platform/cache"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
	"github.com/riskibarqy/fantasy-stats/internal/statsheet"
)

// Report bundles every sheet and streak table computed for one league.
type Report struct {
	LeagueName string
	Owners     []league.Owner
	Years      []YearReport
	AllTime    statsheet.AllTimeStatSheet

	WinStreaks        []streak.Streak
	LossStreaks       []streak.Streak
	LongestWinStreak  calculator.Values
	LongestLossStreak calculator.Values
}

// YearReport is one year's sheet with the teams it is keyed by.
type YearReport struct {
	Sheet statsheet.YearStatSheet
	Teams []league.Team
}

// OwnerName returns the display name of ownerID, or the ID itself.
func (r Report) OwnerName(ownerID string) string {
	for _, o := range r.Owners {
		if o.ID == ownerID {
			return o.Name
		}
	}
	return ownerID
}

// Clone deep-copies the report so callers can mutate it without touching
// cached results.
func (r Report) Clone() Report {
	out := r
	out.Owners = slices.Clone(r.Owners)
	out.Years = make([]YearReport, len(r.Years))
	for i, y := range r.Years {
		out.Years[i] = YearReport{Sheet: y.Sheet.Clone(), Teams: slices.Clone(y.Teams)}
	}
	out.AllTime = r.AllTime.Clone()
	out.WinStreaks = slices.Clone(r.WinStreaks)
	out.LossStreaks = slices.Clone(r.LossStreaks)
	out.LongestWinStreak = r.LongestWinStreak.Clone()
	out.LongestLossStreak = r.LongestLossStreak.Clone()
	return out
}

type ReportConfig struct {
	MaxWorkers   int
	CacheEnabled bool
	CacheTTL     time.Duration
}

type ReportService struct {
	loader     league.Loader
	maxWorkers int
	cache      *cache.Store[Report]
	logger     *logging.Logger
}

func NewReportService(loader league.Loader, cfg ReportConfig, logger *logging.Logger) *ReportService {
	if logger == nil {
		logger = logging.Default()
	}
	maxWorkers := cfg.MaxWorkers
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	s := &ReportService{
		loader:     loader,
		maxWorkers: maxWorkers,
		logger:     logger,
	}
	if cfg.CacheEnabled {
		s.cache = cache.NewStore[Report](cfg.CacheTTL)
	}
	return s
}

// BuildReport loads the league at source, validates it and the options once,
// and computes every year sheet, the all-time sheet and the streak tables.
func (s *ReportService) BuildReport(ctx context.Context, source string, opts filter.Options) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.BuildReport")
	defer span.End()

	source = strings.TrimSpace(source)
	if source == "" {
		return Report{}, fmt.Errorf("%w: snapshot source is required", ErrInvalidInput)
	}

	l, err := s.loader.Load(ctx, source)
	if err != nil {
		return Report{}, mapLoadError(source, err)
	}
	if err := league.Validate(l); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := filter.ForLeague(l, opts.AllTimeScoped()); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if s.cache == nil {
		return s.compute(ctx, l, opts)
	}

	key, err := reportKey(l, opts)
	if err != nil {
		return Report{}, fmt.Errorf("fingerprint report: %w", err)
	}
	report, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (Report, error) {
		s.logger.DebugContext(ctx, "report cache miss", "league", l.Name, "key", key)
		return s.compute(ctx, l, opts)
	})
	if err != nil {
		return Report{}, err
	}
	return report.Clone(), nil
}

func (s *ReportService) compute(ctx context.Context, l league.League, opts filter.Options) (Report, error) {
	start := time.Now()
	f, err := filter.ForLeague(l, opts.AllTimeScoped())
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	spans := f.Spans(l)

	report := Report{
		LeagueName: l.Name,
		Owners:     l.Owners,
		Years:      make([]YearReport, len(spans)),
	}

	if err := s.computeYears(spans, opts, report.Years); err != nil {
		return Report{}, err
	}

	allTimeOpts := opts.AllTimeScoped()
	streakOpts := opts.StreakScoped()
	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	p.Go(func(context.Context) error {
		sheet, err := statsheet.ForLeague(l, allTimeOpts)
		report.AllTime = sheet
		return wrapCalcError("all-time sheet", err)
	})
	p.Go(func(context.Context) error {
		streaks, err := streak.WinStreaks(l, streakOpts)
		report.WinStreaks = streaks
		return wrapCalcError("win streaks", err)
	})
	p.Go(func(context.Context) error {
		streaks, err := streak.LossStreaks(l, streakOpts)
		report.LossStreaks = streaks
		return wrapCalcError("loss streaks", err)
	})
	p.Go(func(context.Context) error {
		values, err := streak.LongestWinStreak(l, streakOpts)
		report.LongestWinStreak = values
		return wrapCalcError("longest win streak", err)
	})
	p.Go(func(context.Context) error {
		values, err := streak.LongestLossStreak(l, streakOpts)
		report.LongestLossStreak = values
		return wrapCalcError("longest loss streak", err)
	})
	if err := p.Wait(); err != nil {
		return Report{}, err
	}

	s.logger.InfoContext(ctx, "report computed",
		"league", l.Name,
		"years", len(spans),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return report, nil
}

// computeYears fills out[i] with the sheet of spans[i] using a bounded pool.
func (s *ReportService) computeYears(spans []filter.Span, opts filter.Options, out []YearReport) error {
	if len(spans) == 0 {
		return nil
	}

	workerCount := min(s.maxWorkers, len(spans))
	workers, err := ants.NewPool(workerCount)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer workers.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, span := range spans {
		i, span := i, span
		yearOpts := span.Options()
		yearOpts.CalculateAgainstTeamIDs = opts.CalculateAgainstTeamIDs

		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()
			sheet, err := statsheet.ForYear(span.Year, yearOpts)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = wrapCalcError(fmt.Sprintf("year %d sheet", span.Year.YearNumber), err)
				}
				mu.Unlock()
				return
			}
			out[i] = YearReport{Sheet: sheet, Teams: span.Year.Teams}
		}); err != nil {
			wg.Done()
			wg.Wait()
			return fmt.Errorf("submit year %d to worker pool: %w", span.Year.YearNumber, err)
		}
	}
	wg.Wait()

	return firstErr
}

func wrapCalcError(what string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, filter.ErrInvalidFilter) {
		return fmt.Errorf("%w: %s: %v", ErrInvalidInput, what, err)
	}
	return fmt.Errorf("compute %s: %w", what, err)
}

func mapLoadError(source string, err error) error {
	switch {
	case crerr.Is(err, league.ErrSnapshotNotFound):
		return fmt.Errorf("%w: snapshot %s: %v", ErrNotFound, source, err)
	case crerr.Is(err, league.ErrMalformedSnapshot):
		return fmt.Errorf("%w: snapshot %s: %v", ErrInvalidInput, source, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: load snapshot %s: %v", ErrDependencyUnavailable, source, err)
	}
}

// reportKey fingerprints the decoded league and the options, so an edited
// snapshot never reuses a stale report.
func reportKey(l league.League, opts filter.Options) (string, error) {
	leagueJSON, err := sonic.Marshal(l)
	if err != nil {
		return "", err
	}
	optsJSON, err := sonic.Marshal(opts)
	if err != nil {
		return "", err
	}
	return cache.Fingerprint(leagueJSON, optsJSON), nil
}
