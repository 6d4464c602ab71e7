// Package statsheet runs every calculator for a year or a whole league and
// bundles the results for rendering.
package statsheet

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
)

// Row is one rendered statistic: a title and a value per team or owner.
type Row struct {
	Title  string
	Values calculator.Values
}

// Row titles, in rendering order.
const (
	TitleGamesPlayed                 = "Games Played"
	TitleWins                        = "Wins"
	TitleLosses                      = "Losses"
	TitleTies                        = "Ties"
	TitleLeagueMedianWins            = "League Median Wins"
	TitleWinPercentage               = "Win Percentage"
	TitleWAL                         = "WAL"
	TitleWALPerGame                  = "WAL Per Game"
	TitleAWAL                        = "AWAL"
	TitleAWALPerGame                 = "AWAL Per Game"
	TitleSmartWins                   = "Smart Wins"
	TitleSmartWinsPerGame            = "Smart Wins Per Game"
	TitleOpponentSmartWins           = "Opponent Smart Wins"
	TitlePointsScored                = "Points Scored"
	TitlePointsScoredPerGame         = "Points Scored Per Game"
	TitleOpponentPointsScored        = "Opponent Points Scored"
	TitleOpponentPointsScoredPerGame = "Opponent Points Scored Per Game"
	TitleScoringShare                = "Scoring Share"
	TitleOpponentScoringShare        = "Opponent Scoring Share"
	TitleMaxScoringShare             = "Max Scoring Share"
	TitleMinScoringShare             = "Min Scoring Share"
	TitleMaxScore                    = "Max Score"
	TitleMinScore                    = "Min Score"
	TitleScoringStandardDeviation    = "Scoring Standard Deviation"
	TitleTeamScore                   = "Team Score"
	TitleTeamSuccess                 = "Team Success"
	TitleTeamLuck                    = "Team Luck"
	TitleRealPowerRanking            = "Real Power Ranking"
)

// Stats holds the statistics shared by year and all-time sheets.
type Stats struct {
	GamesPlayed                 calculator.Values
	Wins                        calculator.Values
	Losses                      calculator.Values
	Ties                        calculator.Values
	LeagueMedianWins            calculator.Values
	WinPercentage               calculator.Values
	WAL                         calculator.Values
	WALPerGame                  calculator.Values
	AWAL                        calculator.Values
	AWALPerGame                 calculator.Values
	SmartWins                   calculator.Values
	SmartWinsPerGame            calculator.Values
	OpponentSmartWins           calculator.Values
	PointsScored                calculator.Values
	PointsScoredPerGame         calculator.Values
	OpponentPointsScored        calculator.Values
	OpponentPointsScoredPerGame calculator.Values
	ScoringShare                calculator.Values
	OpponentScoringShare        calculator.Values
	MaxScoringShare             calculator.Values
	MinScoringShare             calculator.Values
	MaxScore                    calculator.Values
	MinScore                    calculator.Values
	ScoringStandardDeviation    calculator.Values
	TeamScore                   calculator.Values
	TeamSuccess                 calculator.Values
	TeamLuck                    calculator.Values
}

// Clone deep-copies every statistic.
func (s Stats) Clone() Stats {
	out := s
	for _, field := range out.fields() {
		*field = field.Clone()
	}
	return out
}

func (s *Stats) fields() []*calculator.Values {
	return []*calculator.Values{
		&s.GamesPlayed, &s.Wins, &s.Losses, &s.Ties, &s.LeagueMedianWins,
		&s.WinPercentage, &s.WAL, &s.WALPerGame, &s.AWAL, &s.AWALPerGame,
		&s.SmartWins, &s.SmartWinsPerGame, &s.OpponentSmartWins,
		&s.PointsScored, &s.PointsScoredPerGame, &s.OpponentPointsScored, &s.OpponentPointsScoredPerGame,
		&s.ScoringShare, &s.OpponentScoringShare, &s.MaxScoringShare, &s.MinScoringShare,
		&s.MaxScore, &s.MinScore, &s.ScoringStandardDeviation,
		&s.TeamScore, &s.TeamSuccess, &s.TeamLuck,
	}
}

// rows lists the shared statistics in order. The league median row follows
// Ties only when median games were played.
func (s Stats) rows(withLeagueMedian bool) []Row {
	out := []Row{
		{TitleGamesPlayed, s.GamesPlayed},
		{TitleWins, s.Wins},
		{TitleLosses, s.Losses},
		{TitleTies, s.Ties},
	}
	if withLeagueMedian {
		out = append(out, Row{TitleLeagueMedianWins, s.LeagueMedianWins})
	}
	return append(out,
		Row{TitleWinPercentage, s.WinPercentage},
		Row{TitleWAL, s.WAL},
		Row{TitleWALPerGame, s.WALPerGame},
		Row{TitleAWAL, s.AWAL},
		Row{TitleAWALPerGame, s.AWALPerGame},
		Row{TitleSmartWins, s.SmartWins},
		Row{TitleSmartWinsPerGame, s.SmartWinsPerGame},
		Row{TitleOpponentSmartWins, s.OpponentSmartWins},
		Row{TitlePointsScored, s.PointsScored},
		Row{TitlePointsScoredPerGame, s.PointsScoredPerGame},
		Row{TitleOpponentPointsScored, s.OpponentPointsScored},
		Row{TitleOpponentPointsScoredPerGame, s.OpponentPointsScoredPerGame},
		Row{TitleScoringShare, s.ScoringShare},
		Row{TitleOpponentScoringShare, s.OpponentScoringShare},
		Row{TitleMaxScoringShare, s.MaxScoringShare},
		Row{TitleMinScoringShare, s.MinScoringShare},
		Row{TitleMaxScore, s.MaxScore},
		Row{TitleMinScore, s.MinScore},
		Row{TitleScoringStandardDeviation, s.ScoringStandardDeviation},
		Row{TitleTeamScore, s.TeamScore},
		Row{TitleTeamSuccess, s.TeamSuccess},
		Row{TitleTeamLuck, s.TeamLuck},
	)
}

// fill runs each calculator into its slot and stops at the first error.
func fill[T any](subject T, slots []slot[T]) error {
	for _, s := range slots {
		values, err := s.calc(subject)
		if err != nil {
			return err
		}
		*s.dst = values
	}
	return nil
}

type slot[T any] struct {
	dst  *calculator.Values
	calc func(T) (calculator.Values, error)
}
