// Package streak finds runs of consecutive wins or losses per owner across
// the years of a league.
package streak

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/navigator"
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

type Kind string

const (
	KindWin  Kind = "WIN"
	KindLoss Kind = "LOSS"
)

// Point locates one game of a streak. TeamID is the owner's team that year.
type Point struct {
	TeamID     string
	YearNumber int
	WeekNumber int
}

func (p Point) before(o Point) bool {
	if p.YearNumber != o.YearNumber {
		return p.YearNumber < o.YearNumber
	}
	return p.WeekNumber < o.WeekNumber
}

type Streak struct {
	OwnerID string
	Kind    Kind
	Length  int
	Start   Point
	End     Point
	// Ongoing is set when no later included game ended the streak and the
	// owner still fields a team in the last spanned year.
	Ongoing bool
}

// WinStreaks lists every win streak in the span, longest first, ties broken
// by the earlier start.
func WinStreaks(l league.League, opts filter.Options) ([]Streak, error) {
	return streaksOf(l, opts, KindWin)
}

// LossStreaks lists every loss streak in the span, longest first.
func LossStreaks(l league.League, opts filter.Options) ([]Streak, error) {
	return streaksOf(l, opts, KindLoss)
}

// LongestWinStreak is each owner's longest win streak. Owners that played but
// never won get zero; owners without games get nil.
func LongestWinStreak(l league.League, opts filter.Options) (calculator.Values, error) {
	return longest(l, opts, KindWin)
}

func LongestLossStreak(l league.League, opts filter.Options) (calculator.Values, error) {
	return longest(l, opts, KindLoss)
}

func streaksOf(l league.League, opts filter.Options, kind Kind) ([]Streak, error) {
	f, err := filter.ForStreak(l, opts)
	if err != nil {
		return nil, err
	}
	all, _ := walk(l, f)
	out := make([]Streak, 0, len(all))
	for _, s := range all {
		if s.Kind == kind && (!f.OnlyOngoing || s.Ongoing) {
			out = append(out, s)
		}
	}
	slices.SortStableFunc(out, func(a, b Streak) int {
		if c := cmp.Compare(b.Length, a.Length); c != 0 {
			return c
		}
		if a.Start.before(b.Start) {
			return -1
		}
		if b.Start.before(a.Start) {
			return 1
		}
		return cmp.Compare(a.OwnerID, b.OwnerID)
	})
	return out, nil
}

func longest(l league.League, opts filter.Options, kind Kind) (calculator.Values, error) {
	f, err := filter.ForStreak(l, opts)
	if err != nil {
		return nil, err
	}
	all, played := walk(l, f)

	best := make(map[string]int, len(l.Owners))
	for _, s := range all {
		if s.Kind == kind && (!f.OnlyOngoing || s.Ongoing) {
			best[s.OwnerID] = max(best[s.OwnerID], s.Length)
		}
	}
	out := make(calculator.Values, len(l.Owners))
	for _, o := range l.Owners {
		out[o.ID] = nil
		if played[o.ID] {
			out[o.ID] = deci.Int(best[o.ID]).Ptr()
		}
	}
	return out, nil
}

// walk replays the span's collapsed matchups in order. A tie ends any open
// streak; weeks an owner sits out do not.
func walk(l league.League, f filter.Streak) ([]Streak, map[string]bool) {
	var closed []Streak
	open := make(map[string]*Streak)
	played := make(map[string]bool)

	record := func(ownerID string, kind Kind, at Point) {
		played[ownerID] = true
		current := open[ownerID]
		if current != nil && current.Kind == kind {
			current.Length++
			current.End = at
			return
		}
		if current != nil {
			closed = append(closed, *current)
			delete(open, ownerID)
		}
		if kind == "" {
			return
		}
		open[ownerID] = &Streak{OwnerID: ownerID, Kind: kind, Length: 1, Start: at, End: at}
	}

	for _, span := range f.Spans(l) {
		owners := navigator.OwnerIDByTeamID(span.Year)
		for _, wm := range navigator.FilteredWeekMatchups(span.Year, span.Filter(), true) {
			m := wm.Matchup
			point := func(teamID string) Point {
				return Point{TeamID: teamID, YearNumber: span.Year.YearNumber, WeekNumber: wm.WeekNumber}
			}
			winner := navigator.WinnerTeamID(m)
			if winner == "" {
				record(owners[m.TeamAID], "", point(m.TeamAID))
				record(owners[m.TeamBID], "", point(m.TeamBID))
				continue
			}
			loser := navigator.OpponentOf(m, winner)
			record(owners[winner], KindWin, point(winner))
			record(owners[loser], KindLoss, point(loser))
		}
	}

	active := activeOwners(l, f)
	for _, s := range open {
		s.Ongoing = active[s.OwnerID]
		closed = append(closed, *s)
	}
	return closed, played
}

// activeOwners is the set of owners fielding a team in the last spanned year.
// An open streak of anyone else ended when the owner left the league.
func activeOwners(l league.League, f filter.Streak) map[string]bool {
	spans := f.Spans(l)
	if len(spans) == 0 {
		return nil
	}
	active := make(map[string]bool)
	for _, ownerID := range navigator.OwnerIDByTeamID(spans[len(spans)-1].Year) {
		active[ownerID] = true
	}
	return active
}
