// Package calculator holds the result type shared by the year, all-time and
// streak calculators.
package calculator

import (
	"github.com/riskibarqy/fantasy-stats/internal/platform/deci"
)

// Values maps a team ID (year scope) or owner ID (all-time scope) to a
// statistic. A nil value means the entity had no qualifying games.
type Values map[string]*deci.Deci

// Value returns the value for id and whether it is present and non-nil.
func (v Values) Value(id string) (deci.Deci, bool) {
	p, ok := v[id]
	if !ok || p == nil {
		return deci.Zero, false
	}
	return *p, true
}

// ValueOr returns the value for id, or fallback when it is absent or nil.
func (v Values) ValueOr(id string, fallback deci.Deci) deci.Deci {
	if d, ok := v.Value(id); ok {
		return d
	}
	return fallback
}

// Sum adds every non-nil value.
func (v Values) Sum() deci.Deci {
	out := deci.Zero
	for _, p := range v {
		if p != nil {
			out = out.Add(*p)
		}
	}
	return out
}

// Clone deep-copies v. Mutating the copy leaves v untouched.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for id, p := range v {
		if p != nil {
			p = p.Ptr()
		}
		out[id] = p
	}
	return out
}

// FromMap keys a value for every id. ids missing from m get zero.
func FromMap(ids []string, m map[string]deci.Deci) Values {
	out := make(Values, len(ids))
	for _, id := range ids {
		out[id] = m[id].Ptr()
	}
	return out
}

// Filled gives every id the same value.
func Filled(ids []string, value deci.Deci) Values {
	out := make(Values, len(ids))
	for _, id := range ids {
		out[id] = value.Ptr()
	}
	return out
}

// NoneWithoutGames sets the value of every id with zero games played to nil.
func (v Values) NoneWithoutGames(gamesPlayed map[string]deci.Deci) Values {
	for id := range v {
		if gamesPlayed[id].IsZero() {
			v[id] = nil
		}
	}
	return v
}

// Map applies fn to every non-nil value of v; nil stays nil.
func (v Values) Map(fn func(id string, value deci.Deci) deci.Deci) Values {
	out := make(Values, len(v))
	for id, p := range v {
		if p == nil {
			out[id] = nil
			continue
		}
		out[id] = fn(id, *p).Ptr()
	}
	return out
}

// Combine computes fn over the ids of the first input. The result is nil for
// any id that is nil or absent in one of the inputs.
func Combine(fn func(values ...deci.Deci) deci.Deci, inputs ...Values) Values {
	if len(inputs) == 0 {
		return Values{}
	}
	out := make(Values, len(inputs[0]))
	args := make([]deci.Deci, len(inputs))
	for id := range inputs[0] {
		out[id] = nil
		complete := true
		for i, in := range inputs {
			d, ok := in.Value(id)
			if !ok {
				complete = false
				break
			}
			args[i] = d
		}
		if complete {
			out[id] = fn(args...).Ptr()
		}
	}
	return out
}

// Ratio divides numerator by denominator per id. A zero denominator yields
// onZero, which may be nil.
func Ratio(numerator Values, denominator map[string]deci.Deci, onZero *deci.Deci) Values {
	out := make(Values, len(numerator))
	for id, p := range numerator {
		d := denominator[id]
		switch {
		case d.IsZero():
			out[id] = nil
			if onZero != nil {
				out[id] = onZero.Ptr()
			}
		case p == nil:
			out[id] = nil
		default:
			out[id] = p.Div(d).Ptr()
		}
	}
	return out
}

// Share expresses each value as a percentage of total. A zero total gives
// zero; nil stays nil.
func Share(v Values, total deci.Deci) Values {
	hundred := deci.Int(100)
	return v.Map(func(_ string, value deci.Deci) deci.Deci {
		if total.IsZero() {
			return deci.Zero
		}
		return value.Mul(hundred).Div(total)
	})
}
