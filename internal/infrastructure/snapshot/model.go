package snapshot

import (
	"fmt"

	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

type leagueModel struct {
	Name   string       `json:"name"`
	Owners []ownerModel `json:"owners"`
	Years  []yearModel  `json:"years"`
}

type ownerModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type yearModel struct {
	YearNumber int             `json:"yearNumber"`
	Teams      []teamModel     `json:"teams"`
	Weeks      []weekModel     `json:"weeks"`
	Divisions  []divisionModel `json:"divisions"`
	Settings   settingsModel   `json:"settings"`
}

type settingsModel struct {
	LeagueMedianGames bool `json:"leagueMedianGames"`
}

type teamModel struct {
	ID         string `json:"id"`
	OwnerID    string `json:"ownerId"`
	Name       string `json:"name"`
	DivisionID string `json:"divisionId"`
}

type divisionModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type weekModel struct {
	WeekNumber int            `json:"weekNumber"`
	Matchups   []matchupModel `json:"matchups"`
}

// matchupModel accepts scores as JSON numbers or numeric strings.
type matchupModel struct {
	TeamAID            string    `json:"teamAId"`
	TeamBID            string    `json:"teamBId"`
	TeamAScore         deci.Deci `json:"teamAScore"`
	TeamBScore         deci.Deci `json:"teamBScore"`
	TeamAHasTiebreaker bool      `json:"teamAHasTiebreaker"`
	TeamBHasTiebreaker bool      `json:"teamBHasTiebreaker"`
	MatchupType        string    `json:"matchupType"`
	MultiWeekMatchupID string    `json:"multiWeekMatchupId"`
}

func (m leagueModel) toDomain() (league.League, error) {
	out := league.League{
		Name:   m.Name,
		Owners: make([]league.Owner, 0, len(m.Owners)),
		Years:  make([]league.Year, 0, len(m.Years)),
	}
	for _, o := range m.Owners {
		out.Owners = append(out.Owners, league.Owner{ID: o.ID, Name: o.Name})
	}
	for _, y := range m.Years {
		year, err := y.toDomain()
		if err != nil {
			return league.League{}, err
		}
		out.Years = append(out.Years, year)
	}
	return out, nil
}

func (m yearModel) toDomain() (league.Year, error) {
	out := league.Year{
		YearNumber: m.YearNumber,
		Teams:      make([]league.Team, 0, len(m.Teams)),
		Weeks:      make([]league.Week, 0, len(m.Weeks)),
		Settings:   league.YearSettings{LeagueMedianGames: m.Settings.LeagueMedianGames},
	}
	for _, t := range m.Teams {
		out.Teams = append(out.Teams, league.Team{ID: t.ID, OwnerID: t.OwnerID, Name: t.Name, DivisionID: t.DivisionID})
	}
	for _, d := range m.Divisions {
		out.Divisions = append(out.Divisions, league.Division{ID: d.ID, Name: d.Name})
	}
	for _, w := range m.Weeks {
		week := league.Week{WeekNumber: w.WeekNumber, Matchups: make([]league.Matchup, 0, len(w.Matchups))}
		for _, mu := range w.Matchups {
			matchup, err := mu.toDomain()
			if err != nil {
				return league.Year{}, fmt.Errorf("year %d week %d: %w", m.YearNumber, w.WeekNumber, err)
			}
			week.Matchups = append(week.Matchups, matchup)
		}
		out.Weeks = append(out.Weeks, week)
	}
	return out, nil
}

func (m matchupModel) toDomain() (league.Matchup, error) {
	matchupType := league.MatchupTypeRegularSeason
	if m.MatchupType != "" {
		parsed, ok := league.ParseMatchupType(m.MatchupType)
		if !ok {
			return league.Matchup{}, fmt.Errorf("unknown matchup type %q", m.MatchupType)
		}
		matchupType = parsed
	}
	return league.Matchup{
		TeamAID:            m.TeamAID,
		TeamBID:            m.TeamBID,
		TeamAScore:         m.TeamAScore,
		TeamBScore:         m.TeamBScore,
		TeamAHasTiebreaker: m.TeamAHasTiebreaker,
		TeamBHasTiebreaker: m.TeamBHasTiebreaker,
		MatchupType:        matchupType,
		MultiWeekMatchupID: m.MultiWeekMatchupID,
	}, nil
}
