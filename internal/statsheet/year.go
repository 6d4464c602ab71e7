package statsheet

import (
	"maps"

	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/calculator/yearcalc"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
)

// YearStatSheet holds every year statistic keyed by team ID.
type YearStatSheet struct {
	Stats
	YearNumber        int
	LeagueMedianGames bool
	RealPowerRanking  calculator.Values
	// Divisions maps team ID to division name. Empty for undivided years.
	Divisions map[string]string
}

// ForYear computes the stat sheet of y. Options are validated once up front.
func ForYear(y league.Year, opts filter.Options) (YearStatSheet, error) {
	if _, err := filter.ForYear(y, opts); err != nil {
		return YearStatSheet{}, err
	}
	scoped := opts.YearScoped()

	sheet := YearStatSheet{
		YearNumber:        y.YearNumber,
		LeagueMedianGames: y.Settings.LeagueMedianGames,
		Divisions:         yearDivisions(y),
	}
	s := &sheet.Stats
	err := fill(y, []slot[league.Year]{
		{&s.GamesPlayed, yearCalc(yearcalc.GamesPlayed, scoped)},
		{&s.Wins, yearCalc(yearcalc.Wins, scoped)},
		{&s.Losses, yearCalc(yearcalc.Losses, scoped)},
		{&s.Ties, yearCalc(yearcalc.Ties, scoped)},
		{&s.LeagueMedianWins, yearCalc(yearcalc.LeagueMedianWins, scoped)},
		{&s.WinPercentage, yearCalc(yearcalc.WinPercentage, scoped)},
		{&s.WAL, yearCalc(yearcalc.WAL, scoped)},
		{&s.WALPerGame, yearCalc(yearcalc.WALPerGame, scoped)},
		{&s.AWAL, yearCalc(yearcalc.AWAL, scoped)},
		{&s.AWALPerGame, yearCalc(yearcalc.AWALPerGame, scoped)},
		{&s.SmartWins, yearCalc(yearcalc.SmartWins, scoped)},
		{&s.SmartWinsPerGame, yearCalc(yearcalc.SmartWinsPerGame, scoped)},
		{&s.OpponentSmartWins, yearCalc(yearcalc.OpponentSmartWins, scoped)},
		{&s.PointsScored, yearCalc(yearcalc.PointsScored, scoped)},
		{&s.PointsScoredPerGame, yearCalc(yearcalc.PointsScoredPerGame, scoped)},
		{&s.OpponentPointsScored, yearCalc(yearcalc.OpponentPointsScored, scoped)},
		{&s.OpponentPointsScoredPerGame, yearCalc(yearcalc.OpponentPointsScoredPerGame, scoped)},
		{&s.ScoringShare, yearCalc(yearcalc.ScoringShare, scoped)},
		{&s.OpponentScoringShare, yearCalc(yearcalc.OpponentScoringShare, scoped)},
		{&s.MaxScoringShare, yearCalc(yearcalc.MaxScoringShare, scoped)},
		{&s.MinScoringShare, yearCalc(yearcalc.MinScoringShare, scoped)},
		{&s.MaxScore, yearCalc(yearcalc.MaxScore, scoped)},
		{&s.MinScore, yearCalc(yearcalc.MinScore, scoped)},
		{&s.ScoringStandardDeviation, yearCalc(yearcalc.ScoringStandardDeviation, scoped)},
		{&s.TeamScore, yearCalc(yearcalc.TeamScore, scoped)},
		{&s.TeamSuccess, yearCalc(yearcalc.TeamSuccess, scoped)},
		{&s.TeamLuck, yearCalc(yearcalc.TeamLuck, scoped)},
		{&sheet.RealPowerRanking, yearCalc(yearcalc.RealPowerRanking, scoped)},
	})
	if err != nil {
		return YearStatSheet{}, err
	}
	return sheet, nil
}

// Rows lists the sheet's statistics in rendering order.
// Clone deep-copies the sheet.
func (s YearStatSheet) Clone() YearStatSheet {
	out := s
	out.Stats = s.Stats.Clone()
	out.RealPowerRanking = s.RealPowerRanking.Clone()
	out.Divisions = maps.Clone(s.Divisions)
	return out
}

func (s YearStatSheet) Rows() []Row {
	return append(s.Stats.rows(s.LeagueMedianGames), Row{TitleRealPowerRanking, s.RealPowerRanking})
}

func yearCalc(fn func(league.Year, filter.Options) (calculator.Values, error), opts filter.Options) func(league.Year) (calculator.Values, error) {
	return func(y league.Year) (calculator.Values, error) { return fn(y, opts) }
}

func yearDivisions(y league.Year) map[string]string {
	names := make(map[string]string, len(y.Divisions))
	for _, d := range y.Divisions {
		names[d.ID] = d.Name
	}
	out := make(map[string]string, len(y.Teams))
	for _, t := range y.Teams {
		if t.DivisionID != "" {
			out[t.ID] = names[t.DivisionID]
		}
	}
	return out
}
