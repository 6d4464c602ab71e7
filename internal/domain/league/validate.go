package league

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

var ErrInvalidLeague = errors.New("invalid league")

var (
	validateOnce sync.Once
	structValid  *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(deci.Deci); ok {
				return d.Float64()
			}
			return nil
		}, deci.Deci{})
		structValid = v
	})
	return structValid
}

// Validate checks field rules and the structural invariants calculators rely on.
// It is meant to run once at the boundary of a request, not per calculation.
func Validate(l League) error {
	if err := structValidator().Struct(l); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLeague, err)
	}

	ownerIDs := make(map[string]struct{}, len(l.Owners))
	for _, o := range l.Owners {
		if _, dup := ownerIDs[o.ID]; dup {
			return fmt.Errorf("%w: duplicate owner id %s", ErrInvalidLeague, o.ID)
		}
		ownerIDs[o.ID] = struct{}{}
	}

	for i, y := range l.Years {
		if i > 0 && y.YearNumber <= l.Years[i-1].YearNumber {
			return fmt.Errorf("%w: years must be unique and ascending, got %d after %d",
				ErrInvalidLeague, y.YearNumber, l.Years[i-1].YearNumber)
		}
		if err := validateYear(y, ownerIDs); err != nil {
			return fmt.Errorf("%w: year %d: %v", ErrInvalidLeague, y.YearNumber, err)
		}
	}

	return nil
}

func validateYear(y Year, ownerIDs map[string]struct{}) error {
	teamIDs := make(map[string]struct{}, len(y.Teams))
	teamNames := make(map[string]struct{}, len(y.Teams))
	teamOwners := make(map[string]struct{}, len(y.Teams))
	divisionIDs := make(map[string]struct{}, len(y.Divisions))
	for _, d := range y.Divisions {
		if _, dup := divisionIDs[d.ID]; dup {
			return fmt.Errorf("duplicate division id %s", d.ID)
		}
		divisionIDs[d.ID] = struct{}{}
	}

	withDivision := 0
	for _, t := range y.Teams {
		if _, dup := teamIDs[t.ID]; dup {
			return fmt.Errorf("duplicate team id %s", t.ID)
		}
		if _, dup := teamNames[t.Name]; dup {
			return fmt.Errorf("duplicate team name %q", t.Name)
		}
		if _, dup := teamOwners[t.OwnerID]; dup {
			return fmt.Errorf("owner %s has more than one team", t.OwnerID)
		}
		if _, ok := ownerIDs[t.OwnerID]; !ok {
			return fmt.Errorf("team %s references unknown owner %s", t.ID, t.OwnerID)
		}
		if t.DivisionID != "" {
			if _, ok := divisionIDs[t.DivisionID]; !ok {
				return fmt.Errorf("team %s references unknown division %s", t.ID, t.DivisionID)
			}
			withDivision++
		}
		teamIDs[t.ID] = struct{}{}
		teamNames[t.Name] = struct{}{}
		teamOwners[t.OwnerID] = struct{}{}
	}
	if withDivision != 0 && withDivision != len(y.Teams) {
		return fmt.Errorf("either all teams or no teams must have a division")
	}

	played := make(map[string]struct{}, len(y.Teams))
	postSeasonStarted := false
	for i, w := range y.Weeks {
		if w.WeekNumber != i+1 {
			return fmt.Errorf("week numbers must run 1..%d without gaps, got %d at position %d",
				len(y.Weeks), w.WeekNumber, i+1)
		}
		if w.isPostSeasonWeek() {
			postSeasonStarted = true
		} else if postSeasonStarted {
			return fmt.Errorf("week %d is a regular season week after the post season started", w.WeekNumber)
		}

		inWeek := make(map[string]struct{}, len(w.Matchups)*2)
		for _, m := range w.Matchups {
			for _, id := range []string{m.TeamAID, m.TeamBID} {
				if _, ok := teamIDs[id]; !ok {
					return fmt.Errorf("week %d matchup references unknown team %s", w.WeekNumber, id)
				}
				if _, dup := inWeek[id]; dup {
					return fmt.Errorf("team %s plays more than once in week %d", id, w.WeekNumber)
				}
				inWeek[id] = struct{}{}
				played[id] = struct{}{}
			}
		}
	}
	for _, t := range y.Teams {
		if _, ok := played[t.ID]; !ok {
			return fmt.Errorf("team %s has no matchups", t.ID)
		}
	}

	return validateMultiWeekMatchups(y)
}

type multiWeekEntry struct {
	weekNumber int
	matchup    Matchup
}

func validateMultiWeekMatchups(y Year) error {
	groups := make(map[string][]multiWeekEntry)
	order := make([]string, 0)
	for _, w := range y.Weeks {
		for _, m := range w.Matchups {
			if m.MultiWeekMatchupID == "" {
				continue
			}
			if _, seen := groups[m.MultiWeekMatchupID]; !seen {
				order = append(order, m.MultiWeekMatchupID)
			}
			groups[m.MultiWeekMatchupID] = append(groups[m.MultiWeekMatchupID], multiWeekEntry{
				weekNumber: w.WeekNumber,
				matchup:    m,
			})
		}
	}

	lastWeek := len(y.Weeks)
	for _, id := range order {
		entries := groups[id]
		first := entries[0]
		for i, e := range entries {
			if i > 0 && e.weekNumber != entries[i-1].weekNumber+1 {
				return fmt.Errorf("multi-week matchup %s spans non-consecutive weeks", id)
			}
			if !sameTeams(first.matchup, e.matchup) {
				return fmt.Errorf("multi-week matchup %s changes teams", id)
			}
			if e.matchup.MatchupType != first.matchup.MatchupType {
				return fmt.Errorf("multi-week matchup %s changes matchup type", id)
			}
			if tiebreakerFor(e.matchup, first.matchup.TeamAID) != tiebreakerFor(first.matchup, first.matchup.TeamAID) ||
				tiebreakerFor(e.matchup, first.matchup.TeamBID) != tiebreakerFor(first.matchup, first.matchup.TeamBID) {
				return fmt.Errorf("multi-week matchup %s changes tiebreakers", id)
			}
		}
		if len(entries) == 1 && entries[0].weekNumber != lastWeek {
			return fmt.Errorf("multi-week matchup %s only spans week %d", id, entries[0].weekNumber)
		}
	}

	return nil
}

func sameTeams(a, b Matchup) bool {
	return (a.TeamAID == b.TeamAID && a.TeamBID == b.TeamBID) ||
		(a.TeamAID == b.TeamBID && a.TeamBID == b.TeamAID)
}

func tiebreakerFor(m Matchup, teamID string) bool {
	if m.TeamAID == teamID {
		return m.TeamAHasTiebreaker
	}
	return m.TeamBHasTiebreaker
}
