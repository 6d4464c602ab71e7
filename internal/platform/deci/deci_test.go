package deci

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNew_AcceptsMixedInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "int", value: 7, want: "7"},
		{name: "int64", value: int64(-3), want: "-3"},
		{name: "uint8", value: uint8(200), want: "200"},
		{name: "float keeps short representation", value: 0.1, want: "0.1"},
		{name: "float32", value: float32(1.5), want: "1.5"},
		{name: "string", value: "100.25", want: "100.25"},
		{name: "deci", value: Int(4), want: "4"},
		{name: "decimal", value: decimal.NewFromInt(9), want: "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.value)
			if err != nil {
				t.Fatalf("New(%v) error: %v", tt.value, err)
			}
			if got.String() != tt.want {
				t.Fatalf("New(%v)=%s want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestNew_RejectsUnsupported(t *testing.T) {
	t.Parallel()

	if _, err := New(struct{}{}); err == nil {
		t.Fatalf("expected error for struct input")
	}
	if _, err := New("abc"); err == nil {
		t.Fatalf("expected error for non numeric string")
	}
}

func TestFromFloat_NoBinaryArtifacts(t *testing.T) {
	t.Parallel()

	sum := FromFloat(0.1).Add(FromFloat(0.2))
	if !sum.Equal(MustNew("0.3")) {
		t.Fatalf("0.1+0.2=%s want 0.3", sum)
	}
}

func TestDiv_KeepsPrecision(t *testing.T) {
	t.Parallel()

	third := One.Div(Int(3))
	back := third.Mul(Int(3))
	diff := One.Sub(back).Abs()
	if diff.GreaterThan(MustNew("1e-27")) {
		t.Fatalf("1/3*3 drifted by %s", diff)
	}
	if !Int(3).Div(Int(5)).Equal(MustNew("0.6")) {
		t.Fatalf("3/5 is not exactly 0.6")
	}
}

func TestDiv_SignificantDigits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b Deci
		want string
	}{
		{Int(2), Int(3), "0.6666666666666666666666666667"},
		{Int(100), Int(3), "33.33333333333333333333333333"},
		{Int(1), Int(3000), "0.0003333333333333333333333333333"},
		{Int(-1), Int(7), "-0.1428571428571428571428571429"},
		{MustNew("1.0000000000000000000000000005"), One, "1.000000000000000000000000000"},
		{MustNew("1.0000000000000000000000000015"), One, "1.000000000000000000000000002"},
		{Int(1), Int(8), "0.125"},
	}
	for _, tc := range cases {
		if got := tc.a.Div(tc.b); !got.Equal(MustNew(tc.want)) {
			t.Fatalf("%s / %s = %s, want %s", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSqrt(t *testing.T) {
	t.Parallel()

	if got := Int(16).Sqrt(); !got.Equal(Int(4)) {
		t.Fatalf("sqrt(16)=%s", got)
	}
	two := Int(2).Sqrt()
	if diff := two.Mul(two).Sub(Int(2)).Abs(); diff.GreaterThan(MustNew("1e-26")) {
		t.Fatalf("sqrt(2)^2 drifted by %s", diff)
	}
	if got := Int(-4).Sqrt(); !got.IsZero() {
		t.Fatalf("sqrt(-4)=%s want 0", got)
	}
}

func TestSumMaxMinMedian(t *testing.T) {
	t.Parallel()

	values := []Deci{Int(5), FromFloat(1.5), Int(3), Int(9)}
	if got := Sum(values...); !got.Equal(MustNew("18.5")) {
		t.Fatalf("sum=%s", got)
	}
	if got := Max(Int(2), Int(8)); !got.Equal(Int(8)) {
		t.Fatalf("max=%s", got)
	}
	if got := Min(Int(2), Int(8)); !got.Equal(Int(2)) {
		t.Fatalf("min=%s", got)
	}
	median, ok := Median(values)
	if !ok || !median.Equal(Int(4)) {
		t.Fatalf("median=%s ok=%v want 4", median, ok)
	}
	if !values[0].Equal(Int(5)) {
		t.Fatalf("median reordered its input")
	}
	if _, ok := Median(nil); ok {
		t.Fatalf("median of empty slice should report false")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	var d Deci
	if err := d.UnmarshalJSON([]byte(`"12.75"`)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !d.Equal(MustNew("12.75")) {
		t.Fatalf("unmarshalled %s", d)
	}
	if err := d.UnmarshalJSON([]byte(`3.5`)); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if !d.Equal(MustNew("3.5")) {
		t.Fatalf("unmarshalled %s", d)
	}
}
