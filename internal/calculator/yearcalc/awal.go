package yearcalc

import (
	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/navigator"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

// AWAL is adjusted wins against the league. Each week a team earns
// outscored*(1/L) + tied*(0.5/L), where L counts every other team that
// played an included matchup that week. Median years add one per median win
// and a half per median tie.
func AWAL(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, awal)
}

func awal(y league.Year, f filter.Year) calculator.Values {
	totals := zeroByTeam(y)
	for _, w := range f.Weeks(y) {
		for teamID, value := range weeklyAWAL(w, f) {
			totals[teamID] = totals[teamID].Add(value)
		}
		for teamID, outcome := range navigator.LeagueMedianOutcomes(y, w, f) {
			switch outcome {
			case navigator.OutcomeWin:
				totals[teamID] = totals[teamID].Add(deci.One)
			case navigator.OutcomeTie:
				totals[teamID] = totals[teamID].Add(deci.Half)
			}
		}
	}
	return calculator.FromMap(navigator.TeamIDs(y), totals).NoneWithoutGames(gamesPlayed(y, f))
}

func weeklyAWAL(w league.Week, f filter.Year) map[string]deci.Deci {
	scores := make(map[string]deci.Deci, len(w.Matchups)*2)
	for _, m := range w.Matchups {
		if !f.Includes(m) {
			continue
		}
		scores[m.TeamAID] = m.TeamAScore
		scores[m.TeamBID] = m.TeamBScore
	}
	if len(scores) < 2 {
		return nil
	}

	opponents := deci.Int(len(scores) - 1)
	perOutscored := deci.One.Div(opponents)
	perTied := deci.Half.Div(opponents)
	out := make(map[string]deci.Deci, len(scores))
	for teamID, score := range scores {
		outscored, tied := 0, 0
		for otherID, other := range scores {
			if otherID == teamID {
				continue
			}
			switch score.Cmp(other) {
			case 1:
				outscored++
			case 0:
				tied++
			}
		}
		out[teamID] = deci.Int(outscored).Mul(perOutscored).Add(deci.Int(tied).Mul(perTied))
	}
	return out
}

// AWALPerGame divides AWAL by games played, counting every week of a
// multi-week matchup and counting median weeks as two games.
func AWALPerGame(y league.Year, opts filter.Options) (calculator.Values, error) {
	return calculate(y, opts, awalPerGame)
}

func awalPerGame(y league.Year, f filter.Year) calculator.Values {
	games := navigator.GamesPlayed(y, f, navigator.GamesPlayedOptions{CountLeagueMedianGamesAsTwoGames: true})
	return calculator.Ratio(awal(y, f), games, nil)
}
