package yearcalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/navigator"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

type record struct {
	wins, losses, ties                   int
	medianWins, medianLosses, medianTies int
}

func (r record) totalWins() deci.Deci   { return deci.Int(r.wins + r.medianWins) }
func (r record) totalLosses() deci.Deci { return deci.Int(r.losses + r.medianLosses) }
func (r record) totalTies() deci.Deci   { return deci.Int(r.ties + r.medianTies) }

// wal is wins plus half of ties.
func (r record) wal() deci.Deci {
	return r.totalWins().Add(r.totalTies().Mul(deci.Half))
}

// records tallies head to head results over collapsed matchups, plus results
// against the weekly league median when the year plays median games.
func records(y league.Year, f filter.Year) map[string]*record {
	out := make(map[string]*record, len(y.Teams))
	for _, t := range y.Teams {
		out[t.ID] = &record{}
	}

	for _, wm := range navigator.FilteredWeekMatchups(y, f, true) {
		m := wm.Matchup
		winner := navigator.WinnerTeamID(m)
		if winner == "" {
			out[m.TeamAID].ties++
			out[m.TeamBID].ties++
			continue
		}
		out[winner].wins++
		out[navigator.OpponentOf(m, winner)].losses++
	}

	for _, w := range f.Weeks(y) {
		for teamID, outcome := range navigator.LeagueMedianOutcomes(y, w, f) {
			switch outcome {
			case navigator.OutcomeWin:
				out[teamID].medianWins++
			case navigator.OutcomeLoss:
				out[teamID].medianLosses++
			default:
				out[teamID].medianTies++
			}
		}
	}

	return out
}

func fromRecords(y league.Year, f filter.Year, fn func(r record) deci.Deci) calculator.Values {
	rs := records(y, f)
	out := make(calculator.Values, len(rs))
	for id, r := range rs {
		out[id] = fn(*r).Ptr()
	}
	return out.NoneWithoutGames(gamesPlayed(y, f))
}

// Wins counts head to head wins, plus league median wins in median years.
func Wins(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, wins)
}

func wins(y league.Year, f filter.Year) calculator.Values {
	return fromRecords(y, f, record.totalWins)
}

func Losses(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, losses)
}

func losses(y league.Year, f filter.Year) calculator.Values {
	return fromRecords(y, f, record.totalLosses)
}

func Ties(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, ties)
}

func ties(y league.Year, f filter.Year) calculator.Values {
	return fromRecords(y, f, record.totalTies)
}

// LeagueMedianWins counts wins against the weekly league median. It is zero
// for every team that played when the year has no median games.
func LeagueMedianWins(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, leagueMedianWins)
}

func leagueMedianWins(y league.Year, f filter.Year) calculator.Values {
	return fromRecords(y, f, func(r record) deci.Deci { return deci.Int(r.medianWins) })
}

// WinPercentage is (wins + ties/2) / games, counting a multi-week matchup as
// one game and a median week as two.
func WinPercentage(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, winPercentage)
}

func winPercentage(y league.Year, f filter.Year) calculator.Values {
	return calculator.Ratio(wal(y, f), gamesPlayedForRecord(y, f), nil)
}

// WAL is wins against the league: wins + ties/2.
func WAL(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, wal)
}

func wal(y league.Year, f filter.Year) calculator.Values {
	return fromRecords(y, f, record.wal)
}

// WALPerGame is WAL / games. Unlike the other per game statistics it is zero,
// not nil, for a team without games.
func WALPerGame(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, walPerGame)
}

func walPerGame(y league.Year, f filter.Year) calculator.Values {
	return calculator.Ratio(wal(y, f), gamesPlayedForRecord(y, f), deci.Zero.Ptr())
}
