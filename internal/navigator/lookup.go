package navigator

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
)

// ErrDoesNotExist marks a lookup that found nothing.
var ErrDoesNotExist = crerr.New("does not exist")

func notFound(kind, id, container string) error {
	return crerr.Wrapf(ErrDoesNotExist, "%s with id %q in %s", kind, id, container)
}

func TeamByID(y league.Year, teamID string) (league.Team, error) {
	for _, t := range y.Teams {
		if t.ID == teamID {
			return t, nil
		}
	}
	return league.Team{}, notFound("team", teamID, yearLabel(y))
}

func TeamByOwnerID(y league.Year, ownerID string) (league.Team, error) {
	for _, t := range y.Teams {
		if t.OwnerID == ownerID {
			return t, nil
		}
	}
	return league.Team{}, notFound("team for owner", ownerID, yearLabel(y))
}

func OwnerByID(l league.League, ownerID string) (league.Owner, error) {
	for _, o := range l.Owners {
		if o.ID == ownerID {
			return o, nil
		}
	}
	return league.Owner{}, notFound("owner", ownerID, leagueLabel(l))
}

func DivisionByID(y league.Year, divisionID string) (league.Division, error) {
	for _, d := range y.Divisions {
		if d.ID == divisionID {
			return d, nil
		}
	}
	return league.Division{}, notFound("division", divisionID, yearLabel(y))
}

func YearByNumber(l league.League, yearNumber int) (league.Year, error) {
	for _, y := range l.Years {
		if y.YearNumber == yearNumber {
			return y, nil
		}
	}
	return league.Year{}, crerr.Wrapf(ErrDoesNotExist, "year %d in %s", yearNumber, leagueLabel(l))
}

// TeamIDs lists team IDs in declaration order.
func TeamIDs(y league.Year) []string {
	out := make([]string, 0, len(y.Teams))
	for _, t := range y.Teams {
		out = append(out, t.ID)
	}
	return out
}

// OwnerIDs lists owner IDs in declaration order.
func OwnerIDs(l league.League) []string {
	out := make([]string, 0, len(l.Owners))
	for _, o := range l.Owners {
		out = append(out, o.ID)
	}
	return out
}

func YearNumbers(l league.League) []int {
	out := make([]int, 0, len(l.Years))
	for _, y := range l.Years {
		out = append(out, y.YearNumber)
	}
	return out
}

func OwnerIDByTeamID(y league.Year) map[string]string {
	out := make(map[string]string, len(y.Teams))
	for _, t := range y.Teams {
		out[t.ID] = t.OwnerID
	}
	return out
}

// DivisionNameByTeamID maps every team to its division name. Teams without a
// division, or years without divisions, map to "".
func DivisionNameByTeamID(y league.Year) map[string]string {
	names := make(map[string]string, len(y.Divisions))
	for _, d := range y.Divisions {
		names[d.ID] = d.Name
	}
	out := make(map[string]string, len(y.Teams))
	for _, t := range y.Teams {
		out[t.ID] = names[t.DivisionID]
	}
	return out
}

func yearLabel(y league.Year) string {
	return fmt.Sprintf("year %d", y.YearNumber)
}

func leagueLabel(l league.League) string {
	return fmt.Sprintf("league %q", l.Name)
}
