package filter

import (
	"math"
	"slices"
	"strings"

	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
)

// Option keys accepted by ParseOptions.
const (
	KeyOnlyChampionship         = "onlyChampionship"
	KeyOnlyPostSeason           = "onlyPostSeason"
	KeyOnlyRegularSeason        = "onlyRegularSeason"
	KeyWeekNumberStart          = "weekNumberStart"
	KeyWeekNumberEnd            = "weekNumberEnd"
	KeyYearNumberStart          = "yearNumberStart"
	KeyYearNumberEnd            = "yearNumberEnd"
	KeyIncludeMultiWeekMatchups = "includeMultiWeekMatchups"
	KeyCalculateAgainstTeamIDs  = "calculateAgainstTeamIds"
	KeyOnlyOngoing              = "onlyOngoing"
)

// Options is the filter vocabulary shared by every calculator scope. Nil
// pointers mean "use the scope default". A scope that does not use an option
// that is set logs an unused option warning instead of failing, so one Options
// value can be handed to year, all-time and streak calculators alike.
type Options struct {
	OnlyChampionship  bool
	OnlyPostSeason    bool
	OnlyRegularSeason bool

	WeekNumberStart *int
	WeekNumberEnd   *int
	YearNumberStart *int
	YearNumberEnd   *int

	IncludeMultiWeekMatchups *bool
	// CalculateAgainstTeamIDs restricts year calculations to matchups played
	// between the listed teams. Empty means every team.
	CalculateAgainstTeamIDs []string

	OnlyOngoing bool
}

// YearScoped drops the options a year filter ignores. Resolve the original
// options once to report them, then hand the scoped copy to calculators.
func (o Options) YearScoped() Options {
	o.YearNumberStart = nil
	o.YearNumberEnd = nil
	o.OnlyOngoing = false
	return o
}

// AllTimeScoped drops the options an all-time filter ignores.
func (o Options) AllTimeScoped() Options {
	o.CalculateAgainstTeamIDs = nil
	o.OnlyOngoing = false
	return o
}

// StreakScoped drops the options a streak filter ignores.
func (o Options) StreakScoped() Options {
	o.CalculateAgainstTeamIDs = nil
	return o
}

func Int(v int) *int { return &v }

func Bool(v bool) *bool { return &v }

// ParseOptions converts a loosely typed option map, for example decoded JSON
// or CLI input, into Options. Every recognised key is type checked; unknown
// keys are logged and skipped.
func ParseOptions(raw map[string]any) (Options, error) {
	var opts Options
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		value := raw[key]
		var err error
		switch key {
		case KeyOnlyChampionship:
			opts.OnlyChampionship, err = asBool(key, value)
		case KeyOnlyPostSeason:
			opts.OnlyPostSeason, err = asBool(key, value)
		case KeyOnlyRegularSeason:
			opts.OnlyRegularSeason, err = asBool(key, value)
		case KeyOnlyOngoing:
			opts.OnlyOngoing, err = asBool(key, value)
		case KeyIncludeMultiWeekMatchups:
			var b bool
			b, err = asBool(key, value)
			opts.IncludeMultiWeekMatchups = &b
		case KeyWeekNumberStart:
			opts.WeekNumberStart, err = asIntPtr(key, value)
		case KeyWeekNumberEnd:
			opts.WeekNumberEnd, err = asIntPtr(key, value)
		case KeyYearNumberStart:
			opts.YearNumberStart, err = asIntPtr(key, value)
		case KeyYearNumberEnd:
			opts.YearNumberEnd, err = asIntPtr(key, value)
		case KeyCalculateAgainstTeamIDs:
			opts.CalculateAgainstTeamIDs, err = asStrings(key, value)
		default:
			logging.Default().Warn("unused filter option", "option", key)
		}
		if err != nil {
			return Options{}, err
		}
	}

	return opts, nil
}

func asBool(key string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, invalid(key, "must be a bool, got %T", value)
	}
	return b, nil
}

func asIntPtr(key string, value any) (*int, error) {
	switch v := value.(type) {
	case int:
		return &v, nil
	case int32:
		return Int(int(v)), nil
	case int64:
		return Int(int(v)), nil
	case float64:
		// decoded JSON numbers arrive as float64
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, invalid(key, "must be a whole number, got %v", v)
		}
		return Int(int(v)), nil
	default:
		return nil, invalid(key, "must be an int, got %T", value)
	}
}

func asStrings(key string, value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return slices.Clone(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, invalid(key, "must only contain strings, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, invalid(key, "must be a list of strings, got %T", value)
	}
}

// includeMatchupTypes validates the mutually exclusive season flags and
// resolves the matchup types they select. IGNORE is never included.
func (o Options) includeMatchupTypes() ([]league.MatchupType, error) {
	selected := make([]string, 0, 3)
	if o.OnlyChampionship {
		selected = append(selected, KeyOnlyChampionship)
	}
	if o.OnlyPostSeason {
		selected = append(selected, KeyOnlyPostSeason)
	}
	if o.OnlyRegularSeason {
		selected = append(selected, KeyOnlyRegularSeason)
	}
	if len(selected) > 1 {
		return nil, invalid(strings.Join(selected, ","), "only one season segment may be selected")
	}

	switch {
	case o.OnlyChampionship:
		return []league.MatchupType{league.MatchupTypeChampionship}, nil
	case o.OnlyPostSeason:
		return []league.MatchupType{league.MatchupTypePlayoff, league.MatchupTypeChampionship}, nil
	case o.OnlyRegularSeason:
		return []league.MatchupType{league.MatchupTypeRegularSeason}, nil
	default:
		return []league.MatchupType{
			league.MatchupTypeRegularSeason,
			league.MatchupTypePlayoff,
			league.MatchupTypeChampionship,
		}, nil
	}
}

func warnUnused(scope string, set map[string]bool) {
	names := make([]string, 0, len(set))
	for name, isSet := range set {
		if isSet {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	for _, name := range names {
		logging.Default().Warn("unused filter option", "option", name, "scope", scope)
	}
}
