package statsheet

import (
	"maps"

	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/calculator/alltimecalc"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
)

// AllTimeStatSheet holds every all-time statistic keyed by owner ID.
type AllTimeStatSheet struct {
	Stats
	YearNumberStart int
	YearNumberEnd   int
	// LeagueMedianGames is set when any spanned year played median games.
	LeagueMedianGames bool
	// Divisions maps owner ID to the division of their team in the last
	// spanned year.
	Divisions map[string]string
}

func ForLeague(l league.League, opts filter.Options) (AllTimeStatSheet, error) {
	f, err := filter.ForLeague(l, opts)
	if err != nil {
		return AllTimeStatSheet{}, err
	}
	scoped := opts.AllTimeScoped()
	spans := f.Spans(l)

	sheet := AllTimeStatSheet{
		YearNumberStart: f.YearNumberStart,
		YearNumberEnd:   f.YearNumberEnd,
		Divisions:       map[string]string{},
	}
	for _, span := range spans {
		if span.Year.Settings.LeagueMedianGames {
			sheet.LeagueMedianGames = true
		}
	}
	if len(spans) > 0 {
		last := spans[len(spans)-1].Year
		byTeam := yearDivisions(last)
		for _, t := range last.Teams {
			if division, ok := byTeam[t.ID]; ok {
				sheet.Divisions[t.OwnerID] = division
			}
		}
	}

	s := &sheet.Stats
	err = fill(l, []slot[league.League]{
		{&s.GamesPlayed, leagueCalc(alltimecalc.GamesPlayed, scoped)},
		{&s.Wins, leagueCalc(alltimecalc.Wins, scoped)},
		{&s.Losses, leagueCalc(alltimecalc.Losses, scoped)},
		{&s.Ties, leagueCalc(alltimecalc.Ties, scoped)},
		{&s.LeagueMedianWins, leagueCalc(alltimecalc.LeagueMedianWins, scoped)},
		{&s.WinPercentage, leagueCalc(alltimecalc.WinPercentage, scoped)},
		{&s.WAL, leagueCalc(alltimecalc.WAL, scoped)},
		{&s.WALPerGame, leagueCalc(alltimecalc.WALPerGame, scoped)},
		{&s.AWAL, leagueCalc(alltimecalc.AWAL, scoped)},
		{&s.AWALPerGame, leagueCalc(alltimecalc.AWALPerGame, scoped)},
		{&s.SmartWins, leagueCalc(alltimecalc.SmartWins, scoped)},
		{&s.SmartWinsPerGame, leagueCalc(alltimecalc.SmartWinsPerGame, scoped)},
		{&s.OpponentSmartWins, leagueCalc(alltimecalc.OpponentSmartWins, scoped)},
		{&s.PointsScored, leagueCalc(alltimecalc.PointsScored, scoped)},
		{&s.PointsScoredPerGame, leagueCalc(alltimecalc.PointsScoredPerGame, scoped)},
		{&s.OpponentPointsScored, leagueCalc(alltimecalc.OpponentPointsScored, scoped)},
		{&s.OpponentPointsScoredPerGame, leagueCalc(alltimecalc.OpponentPointsScoredPerGame, scoped)},
		{&s.ScoringShare, leagueCalc(alltimecalc.ScoringShare, scoped)},
		{&s.OpponentScoringShare, leagueCalc(alltimecalc.OpponentScoringShare, scoped)},
		{&s.MaxScoringShare, leagueCalc(alltimecalc.MaxScoringShare, scoped)},
		{&s.MinScoringShare, leagueCalc(alltimecalc.MinScoringShare, scoped)},
		{&s.MaxScore, leagueCalc(alltimecalc.MaxScore, scoped)},
		{&s.MinScore, leagueCalc(alltimecalc.MinScore, scoped)},
		{&s.ScoringStandardDeviation, leagueCalc(alltimecalc.ScoringStandardDeviation, scoped)},
		{&s.TeamScore, leagueCalc(alltimecalc.TeamScore, scoped)},
		{&s.TeamSuccess, leagueCalc(alltimecalc.TeamSuccess, scoped)},
		{&s.TeamLuck, leagueCalc(alltimecalc.TeamLuck, scoped)},
	})
	if err != nil {
		return AllTimeStatSheet{}, err
	}
	return sheet, nil
}

// Clone deep-copies the sheet.
func (s AllTimeStatSheet) Clone() AllTimeStatSheet {
	out := s
	out.Stats = s.Stats.Clone()
	out.Divisions = maps.Clone(s.Divisions)
	return out
}

func (s AllTimeStatSheet) Rows() []Row {
	return s.Stats.rows(s.LeagueMedianGames)
}

func leagueCalc(fn func(league.League, filter.Options) (calculator.Values, error), opts filter.Options) func(league.League) (calculator.Values, error) {
	return func(l league.League) (calculator.Values, error) { return fn(l, opts) }
}
