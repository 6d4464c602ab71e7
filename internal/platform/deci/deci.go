package deci

import (
	"fmt"
	"math"
	"math/big"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"
)

// Precision is the number of significant digits kept by division and square
// roots. Halves round to even.
const Precision int32 = 28

// guardDigits are carried past Precision before the final rounding.
const guardDigits int32 = 8

// Deci is an exact decimal number. The zero value is 0.
type Deci struct {
	v decimal.Decimal
}

var (
	Zero = Deci{}
	One  = Int(1)
	Half = MustNew("0.5")
)

// New builds a Deci from another Deci, a decimal.Decimal, any integer kind,
// a float (through its shortest exact decimal string) or a numeric string.
func New(value any) (Deci, error) {
	switch v := value.(type) {
	case Deci:
		return v, nil
	case *Deci:
		if v == nil {
			return Deci{}, fmt.Errorf("nil deci")
		}
		return *v, nil
	case decimal.Decimal:
		return Deci{v: v}, nil
	case int:
		return FromInt(int64(v)), nil
	case int8:
		return FromInt(int64(v)), nil
	case int16:
		return FromInt(int64(v)), nil
	case int32:
		return FromInt(int64(v)), nil
	case int64:
		return FromInt(v), nil
	case uint:
		return Deci{v: decimal.NewFromUint64(uint64(v))}, nil
	case uint8:
		return Deci{v: decimal.NewFromUint64(uint64(v))}, nil
	case uint16:
		return Deci{v: decimal.NewFromUint64(uint64(v))}, nil
	case uint32:
		return Deci{v: decimal.NewFromUint64(uint64(v))}, nil
	case uint64:
		return Deci{v: decimal.NewFromUint64(v)}, nil
	case float32:
		return fromFloat(float64(v), 32)
	case float64:
		return fromFloat(v, 64)
	case string:
		return FromString(v)
	default:
		return Deci{}, fmt.Errorf("cannot convert %T to deci", value)
	}
}

// MustNew is New for constant inputs. It panics on conversion failure.
func MustNew(value any) Deci {
	d, err := New(value)
	if err != nil {
		panic(err)
	}
	return d
}

func FromInt(i int64) Deci {
	return Deci{v: decimal.NewFromInt(i)}
}

func Int(i int) Deci {
	return FromInt(int64(i))
}

// FromFloat converts f through strconv's shortest representation, so 0.1 is
// exactly 0.1 rather than its binary expansion. NaN and infinities become 0.
func FromFloat(f float64) Deci {
	d, err := fromFloat(f, 64)
	if err != nil {
		return Zero
	}
	return d
}

func fromFloat(f float64, bitSize int) (Deci, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Deci{}, fmt.Errorf("cannot convert %v to deci", f)
	}
	return FromString(strconv.FormatFloat(f, 'g', -1, bitSize))
}

func FromString(s string) (Deci, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Deci{}, fmt.Errorf("parse deci %q: %w", s, err)
	}
	return Deci{v: v}, nil
}

func (d Deci) Decimal() decimal.Decimal { return d.v }

func (d Deci) Add(o Deci) Deci { return Deci{v: d.v.Add(o.v)} }
func (d Deci) Sub(o Deci) Deci { return Deci{v: d.v.Sub(o.v)} }
func (d Deci) Mul(o Deci) Deci { return Deci{v: d.v.Mul(o.v)} }
func (d Deci) Neg() Deci       { return Deci{v: d.v.Neg()} }
func (d Deci) Abs() Deci       { return Deci{v: d.v.Abs()} }

// Div divides to Precision significant digits. Dividing by zero panics.
func (d Deci) Div(o Deci) Deci {
	places := max(Precision-(magnitude(d.v)-magnitude(o.v))+guardDigits, 0)
	return Deci{v: roundSignificant(d.v.DivRound(o.v, places))}
}

// magnitude is the position of the leading digit: 1 for 1..9, 0 for 0.1..0.9,
// -1 for 0.01..0.09 and so on.
func magnitude(v decimal.Decimal) int32 {
	if v.IsZero() {
		return 0
	}
	digits := len(new(big.Int).Abs(v.Coefficient()).String())
	return int32(digits) + v.Exponent()
}

func roundSignificant(v decimal.Decimal) decimal.Decimal {
	if v.IsZero() {
		return v
	}
	return v.RoundBank(Precision - magnitude(v))
}

// Sqrt returns the non-negative square root computed by Newton iteration.
// Negative inputs return 0.
func (d Deci) Sqrt() Deci {
	if d.v.Sign() <= 0 {
		return Zero
	}
	guess := decimal.NewFromFloat(math.Sqrt(d.v.InexactFloat64()))
	if guess.Sign() <= 0 {
		guess = d.v
	}
	two := decimal.NewFromInt(2)
	places := max(Precision-magnitude(guess)+guardDigits, guardDigits)
	epsilon := decimal.New(1, -places)
	for i := 0; i < 100; i++ {
		next := guess.Add(d.v.DivRound(guess, places)).DivRound(two, places)
		if next.Sub(guess).Abs().LessThanOrEqual(epsilon) {
			guess = next
			break
		}
		guess = next
	}
	return Deci{v: roundSignificant(guess)}
}

func (d Deci) Cmp(o Deci) int                 { return d.v.Cmp(o.v) }
func (d Deci) Equal(o Deci) bool              { return d.v.Equal(o.v) }
func (d Deci) LessThan(o Deci) bool           { return d.v.LessThan(o.v) }
func (d Deci) LessThanOrEqual(o Deci) bool    { return d.v.LessThanOrEqual(o.v) }
func (d Deci) GreaterThan(o Deci) bool        { return d.v.GreaterThan(o.v) }
func (d Deci) GreaterThanOrEqual(o Deci) bool { return d.v.GreaterThanOrEqual(o.v) }
func (d Deci) IsZero() bool                   { return d.v.IsZero() }
func (d Deci) Sign() int                      { return d.v.Sign() }

func (d Deci) Float64() float64 { return d.v.InexactFloat64() }

func (d Deci) String() string { return d.v.String() }

func (d Deci) StringFixed(places int32) string { return d.v.StringFixed(places) }

// Round rounds half away from zero to places decimal places.
func (d Deci) Round(places int32) Deci { return Deci{v: d.v.Round(places)} }

// Ptr returns a pointer to a copy of d, for building optional values.
func (d Deci) Ptr() *Deci { return &d }

func (d Deci) MarshalJSON() ([]byte, error) { return d.v.MarshalJSON() }

func (d *Deci) UnmarshalJSON(data []byte) error { return d.v.UnmarshalJSON(data) }

func (d Deci) MarshalText() ([]byte, error) { return d.v.MarshalText() }

func (d *Deci) UnmarshalText(data []byte) error { return d.v.UnmarshalText(data) }

func Sum(values ...Deci) Deci {
	out := Zero
	for _, v := range values {
		out = out.Add(v)
	}
	return out
}

func Max(a, b Deci) Deci {
	if a.GreaterThanOrEqual(b) {
		return a
	}
	return b
}

func Min(a, b Deci) Deci {
	if a.LessThanOrEqual(b) {
		return a
	}
	return b
}

// Median of values, averaging the middle pair for even lengths. The input is
// not modified. Returns false for an empty slice.
func Median(values []Deci) (Deci, bool) {
	if len(values) == 0 {
		return Zero, false
	}
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, Deci.Cmp)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], true
	}
	return sorted[mid-1].Add(sorted[mid]).Div(Int(2)), true
}
