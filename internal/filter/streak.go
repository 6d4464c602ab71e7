package filter

import (
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
)

// Streak filters streak calculations: an all-time span plus OnlyOngoing.
type Streak struct {
	AllTime
	// OnlyOngoing keeps only streaks still active through the most recent
	// included week: unbroken, and the owner still plays in the last year.
	OnlyOngoing bool
}

func ForStreak(l league.League, opts Options) (Streak, error) {
	warnUnused("streak", map[string]bool{
		KeyCalculateAgainstTeamIDs: len(opts.CalculateAgainstTeamIDs) > 0,
	})
	f, err := forLeague(l, opts)
	if err != nil {
		return Streak{}, err
	}
	return Streak{AllTime: f, OnlyOngoing: opts.OnlyOngoing}, nil
}
