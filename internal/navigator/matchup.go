package navigator

import (
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

// WinnerTeamID returns the winning team, or "" for a tie. Equal scores go to
// the side holding the tiebreaker.
func WinnerTeamID(m league.Matchup) string {
	switch m.TeamAScore.Cmp(m.TeamBScore) {
	case 1:
		return m.TeamAID
	case -1:
		return m.TeamBID
	}
	switch {
	case m.TeamAHasTiebreaker && !m.TeamBHasTiebreaker:
		return m.TeamAID
	case m.TeamBHasTiebreaker && !m.TeamAHasTiebreaker:
		return m.TeamBID
	default:
		return ""
	}
}

// LoserTeamID returns the losing team, or "" for a tie.
func LoserTeamID(m league.Matchup) string {
	switch WinnerTeamID(m) {
	case m.TeamAID:
		return m.TeamBID
	case m.TeamBID:
		return m.TeamAID
	default:
		return ""
	}
}

func IsTie(m league.Matchup) bool {
	return WinnerTeamID(m) == ""
}

// ScoreFor returns teamID's score in m.
func ScoreFor(m league.Matchup, teamID string) deci.Deci {
	if m.TeamAID == teamID {
		return m.TeamAScore
	}
	return m.TeamBScore
}

// OpponentOf returns the other team in m.
func OpponentOf(m league.Matchup, teamID string) string {
	if m.TeamAID == teamID {
		return m.TeamBID
	}
	return m.TeamAID
}

// SimplifyMultiWeekMatchup collapses the matchups of one multi-week group into
// a single matchup. Scores are summed per team; team IDs, type, tiebreakers
// and group ID come from the first matchup. A group of one is returned as is.
func SimplifyMultiWeekMatchup(matchups []league.Matchup) league.Matchup {
	if len(matchups) == 0 {
		return league.Matchup{}
	}
	first := matchups[0]
	if len(matchups) == 1 {
		return first
	}

	out := first
	out.TeamAScore = deci.Zero
	out.TeamBScore = deci.Zero
	for _, m := range matchups {
		out.TeamAScore = out.TeamAScore.Add(ScoreFor(m, first.TeamAID))
		out.TeamBScore = out.TeamBScore.Add(ScoreFor(m, first.TeamBID))
	}
	return out
}
