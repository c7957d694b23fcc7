package smear

import (
	"math"
	"testing"
)

// approxYears returns roughly n years, for range tests.
func approxYears(n int64) Duration {
	return Hours(n * 365 * 24)
}

func TestDurationFactories(t *testing.T) {
	if ZeroDuration() != Seconds(0) {
		t.Errorf("ZeroDuration() = %v, want %v", ZeroDuration(), Seconds(0))
	}
	if Nanoseconds(1000) != Microseconds(1) {
		t.Errorf("Nanoseconds(1000) = %v, want %v", Nanoseconds(1000), Microseconds(1))
	}
	if Microseconds(1000) != Milliseconds(1) {
		t.Errorf("Microseconds(1000) = %v, want %v", Microseconds(1000), Milliseconds(1))
	}
	if Milliseconds(1000) != Seconds(1) {
		t.Errorf("Milliseconds(1000) = %v, want %v", Milliseconds(1000), Seconds(1))
	}
	if Seconds(60) != Minutes(1) {
		t.Errorf("Seconds(60) = %v, want %v", Seconds(60), Minutes(1))
	}
	if Minutes(60) != Hours(1) {
		t.Errorf("Minutes(60) = %v, want %v", Minutes(60), Hours(1))
	}

	// Factories saturate instead of overflowing.
	if got := Hours(math.MaxInt64); got != InfiniteDuration() {
		t.Errorf("Hours(MaxInt64) = %v, want inf", got)
	}
	if got := Minutes(math.MinInt64); got != InfiniteDuration().Neg() {
		t.Errorf("Minutes(MinInt64) = %v, want -inf", got)
	}
}

func TestDurationGroupAxioms(t *testing.T) {
	a := Hours(3).Add(Milliseconds(7))
	b := Seconds(-41).Add(Nanoseconds(3))
	c := Microseconds(911)

	if got := a.Add(b).Add(c); got != a.Add(b.Add(c)) {
		t.Errorf("(a+b)+c = %v, want %v", got, a.Add(b.Add(c)))
	}
	if a.Add(b) != b.Add(a) {
		t.Errorf("a+b != b+a")
	}
	if a.Add(ZeroDuration()) != a {
		t.Errorf("a+0 = %v, want %v", a.Add(ZeroDuration()), a)
	}
	if a.Sub(a) != ZeroDuration() {
		t.Errorf("a-a = %v, want 0", a.Sub(a))
	}
	if a.Neg().Neg() != a {
		t.Errorf("-(-a) = %v, want %v", a.Neg().Neg(), a)
	}
	if a.Add(a.Neg()) != ZeroDuration() {
		t.Errorf("a+(-a) = %v, want 0", a.Add(a.Neg()))
	}
}

func TestDurationRelational(t *testing.T) {
	units := map[string]func(int64) Duration{
		"ns": Nanoseconds, "us": Microseconds, "ms": Milliseconds,
		"s": Seconds, "m": Minutes, "h": Hours,
	}
	for name, unit := range units {
		if unit(2) != unit(2) {
			t.Errorf("%s: 2 != 2", name)
		}
		if !unit(1).Less(unit(2)) {
			t.Errorf("%s: !(1 < 2)", name)
		}
		if unit(3).Less(unit(2)) {
			t.Errorf("%s: 3 < 2", name)
		}
	}
}

func TestDurationAddition(t *testing.T) {
	units := map[string]func(int64) Duration{
		"ns": Nanoseconds, "us": Microseconds, "ms": Milliseconds,
		"s": Seconds, "m": Minutes, "h": Hours,
	}
	for name, unit := range units {
		if got := unit(1).Add(unit(1)); got != unit(2) {
			t.Errorf("%s: 1+1 = %v, want %v", name, got, unit(2))
		}
		if got := unit(2).Sub(unit(1)); got != unit(1) {
			t.Errorf("%s: 2-1 = %v, want %v", name, got, unit(1))
		}
		if got := unit(1).Sub(unit(3)); got != unit(-2) {
			t.Errorf("%s: 1-3 = %v, want %v", name, got, unit(-2))
		}
	}

	if got := Milliseconds(999).Add(Milliseconds(999)); got != Seconds(1).Add(Milliseconds(998)) {
		t.Errorf("999ms+999ms = %v", got)
	}
	if got := Milliseconds(998).Sub(Milliseconds(999)); got != Milliseconds(-1) {
		t.Errorf("998ms-999ms = %v, want -1ms", got)
	}

	// Sub-nanosecond ticks.
	half := Nanoseconds(1).Div(2)
	if !half.Less(Nanoseconds(1)) {
		t.Errorf("1ns/2 not less than 1ns")
	}
	if half.Add(half) != Nanoseconds(1) {
		t.Errorf("1ns/2 + 1ns/2 = %v, want 1ns", half.Add(half))
	}
	if Nanoseconds(1).Div(8) != Nanoseconds(0) {
		t.Errorf("1ns/8 = %v, want 0", Nanoseconds(1).Div(8))
	}

	// Subtraction wrapping the tick half.
	d75 := Seconds(7).Add(Milliseconds(500))
	d37 := Seconds(3).Add(Milliseconds(700))
	if got, want := d75.Sub(d37), Seconds(3).Add(Milliseconds(800)); got != want {
		t.Errorf("7.5s-3.7s = %v, want %v", got, want)
	}

	// Subtracting the most negative duration.
	minDur := Seconds(math.MinInt64)
	if got := minDur.Sub(minDur); got != ZeroDuration() {
		t.Errorf("min-min = %v, want 0", got)
	}
	if got := Seconds(-1).Sub(minDur); got != Seconds(math.MaxInt64) {
		t.Errorf("-1s - min = %v, want max", got)
	}
}

func TestDurationNegationAndAbs(t *testing.T) {
	if ZeroDuration().Neg() != ZeroDuration() {
		t.Errorf("-0 != 0")
	}
	negInf := InfiniteDuration().Neg()
	if negInf == InfiniteDuration() {
		t.Errorf("-inf == inf")
	}
	if negInf.Neg() != InfiniteDuration() {
		t.Errorf("-(-inf) != inf")
	}
	if !negInf.Less(ZeroDuration()) {
		t.Errorf("-inf not < 0")
	}

	if AbsDuration(Seconds(-1)) != Seconds(1) {
		t.Errorf("abs(-1s) = %v", AbsDuration(Seconds(-1)))
	}
	if AbsDuration(negInf) != InfiniteDuration() {
		t.Errorf("abs(-inf) = %v", AbsDuration(negInf))
	}
}

func TestDurationInfinityComparison(t *testing.T) {
	inf := InfiniteDuration()
	anyDur := Seconds(1)

	if inf != inf {
		t.Errorf("inf != inf")
	}
	if inf == inf.Neg() {
		t.Errorf("inf == -inf")
	}
	if !anyDur.Less(inf) {
		t.Errorf("1s not < inf")
	}
	if !inf.Neg().Less(anyDur) {
		t.Errorf("-inf not < 1s")
	}
	if !inf.Neg().Less(inf) {
		t.Errorf("-inf not < inf")
	}
	if !inf.Neg().Less(Seconds(math.MinInt64)) {
		t.Errorf("-inf not < min seconds")
	}
}

func TestDurationInfinityAddition(t *testing.T) {
	secMax := Seconds(math.MaxInt64)
	secMin := Seconds(math.MinInt64)
	anyDur := Seconds(1)
	inf := InfiniteDuration()
	negInf := inf.Neg()

	for _, tc := range []struct {
		name string
		got  Duration
		want Duration
	}{
		{"inf+inf", inf.Add(inf), inf},
		{"inf+-inf", inf.Add(negInf), inf},
		{"-inf+inf", negInf.Add(inf), negInf},
		{"-inf+-inf", negInf.Add(negInf), negInf},
		{"inf+any", inf.Add(anyDur), inf},
		{"any+inf", anyDur.Add(inf), inf},
		{"-inf+any", negInf.Add(anyDur), negInf},
		{"any+-inf", anyDur.Add(negInf), negInf},
		{"max+1s", secMax.Add(Seconds(1)), inf},
		{"max+max", secMax.Add(secMax), inf},
		{"min+-1s", secMin.Add(Seconds(-1)), negInf},
		{"min-max", secMin.Add(secMax.Neg()), negInf},
		{"inf-inf", inf.Sub(inf), inf},
		{"inf--inf", inf.Sub(negInf), inf},
		{"-inf-inf", negInf.Sub(inf), negInf},
		{"any-inf", anyDur.Sub(inf), negInf},
		{"any--inf", anyDur.Sub(negInf), inf},
		{"max--1s", secMax.Sub(Seconds(-1)), inf},
		{"min-1s", secMin.Sub(Seconds(1)), negInf},
		{"min-max", secMin.Sub(secMax), negInf},
	} {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}

	almostInf := secMax.Add(Nanoseconds(999999999))
	if !almostInf.Less(inf) {
		t.Errorf("max + 999999999ns not < inf")
	}
	almostNegInf := secMin
	if !negInf.Less(almostNegInf) {
		t.Errorf("-inf not < min seconds")
	}
}

func TestDurationInfinityMultiplication(t *testing.T) {
	secMax := Seconds(math.MaxInt64)
	secMin := Seconds(math.MinInt64)
	inf := InfiniteDuration()
	negInf := inf.Neg()

	for _, tc := range []struct {
		name string
		got  Duration
		want Duration
	}{
		{"inf*2", inf.Mul(2), inf},
		{"inf*-2", inf.Mul(-2), negInf},
		{"-inf*2", negInf.Mul(2), negInf},
		{"-inf*-2", negInf.Mul(-2), inf},
		{"inf*0", inf.Mul(0), inf},
		{"-inf*0", negInf.Mul(0), negInf},
		{"max*2", secMax.Mul(2), inf},
		{"min*-2", secMin.Mul(-2), inf},
		{"max*-2", secMax.Mul(-2), negInf},
		{"min*2", secMin.Mul(2), negInf},
		{"(max/2)*3", secMax.Div(2).Mul(3), inf},
		{"(min/2)*3", secMin.Div(2).Mul(3), negInf},
		{"inf*2.0", inf.MulFloat(2), inf},
		{"inf*-2.0", inf.MulFloat(-2), negInf},
		{"inf*0.0", inf.MulFloat(0), inf},
		{"-inf*0.0", negInf.MulFloat(0), negInf},
		{"max*2.0", secMax.MulFloat(2), inf},
		{"inf*+Inf", inf.MulFloat(math.Inf(1)), inf},
		{"-inf*+Inf", negInf.MulFloat(math.Inf(1)), negInf},
		{"inf*-Inf", inf.MulFloat(math.Inf(-1)), negInf},
		{"1s*+Inf", Seconds(1).MulFloat(math.Inf(1)), inf},
		{"-1s*+Inf", Seconds(-1).MulFloat(math.Inf(1)), negInf},
	} {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}

	// Fixed-point multiplication is exact where floating point overflows.
	if secMax.Mul(1) != secMax {
		t.Errorf("max*1 = %v, want max", secMax.Mul(1))
	}
	if got := Seconds(1).Mul(math.MaxInt64); got == inf {
		t.Errorf("1s*MaxInt64 saturated, want finite")
	}
	if got := Seconds(1).MulFloat(float64(math.MaxInt64)); got != inf {
		t.Errorf("1s*float64(MaxInt64) = %v, want inf", got)
	}
	if got := secMax.MulFloat(1.0); got != inf {
		t.Errorf("max*1.0 = %v, want inf", got)
	}
	if got := secMax.DivFloat(1.0); got != inf {
		t.Errorf("max/1.0 = %v, want inf", got)
	}
}

func TestDurationInfinityDivision(t *testing.T) {
	secMax := Seconds(math.MaxInt64)
	secMin := Seconds(math.MinInt64)
	inf := InfiniteDuration()
	negInf := inf.Neg()

	for _, tc := range []struct {
		name string
		got  Duration
		want Duration
	}{
		{"inf/2", inf.Div(2), inf},
		{"inf/-2", inf.Div(-2), negInf},
		{"-inf/2", negInf.Div(2), negInf},
		{"-inf/-2", negInf.Div(-2), inf},
		{"inf/2.0", inf.DivFloat(2), inf},
		{"max/0.5", secMax.DivFloat(0.5), inf},
		{"min/-0.5", secMin.DivFloat(-0.5), inf},
		{"max/-0.5", secMax.DivFloat(-0.5), negInf},
		{"min/0.5", secMin.DivFloat(0.5), negInf},
		{"inf/+Inf", inf.DivFloat(math.Inf(1)), inf},
		{"inf/-Inf", inf.DivFloat(math.Inf(-1)), negInf},
		{"1s/+Inf", Seconds(1).DivFloat(math.Inf(1)), ZeroDuration()},
		{"-1s/+Inf", Seconds(-1).DivFloat(math.Inf(1)), ZeroDuration()},
	} {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestDurationInfinityModulus(t *testing.T) {
	secMax := Seconds(math.MaxInt64)
	anyDur := Seconds(1)
	inf := InfiniteDuration()
	negInf := inf.Neg()

	for _, tc := range []struct {
		name string
		got  Duration
		want Duration
	}{
		{"inf%inf", inf.Mod(inf), inf},
		{"inf%-inf", inf.Mod(negInf), inf},
		{"-inf%-inf", negInf.Mod(negInf), negInf},
		{"-inf%inf", negInf.Mod(inf), negInf},
		{"any%inf", anyDur.Mod(inf), anyDur},
		{"any%-inf", anyDur.Mod(negInf), anyDur},
		{"-any%inf", anyDur.Neg().Mod(inf), anyDur.Neg()},
		{"inf%any", inf.Mod(anyDur), inf},
		{"-inf%any", negInf.Mod(anyDur), negInf},
		{"max%1s", secMax.Mod(Seconds(1)), ZeroDuration()},
		{"max%1ms", secMax.Mod(Milliseconds(1)), ZeroDuration()},
		{"max%1ns", secMax.Mod(Nanoseconds(1)), ZeroDuration()},
		{"max%0.25ns", secMax.Mod(Nanoseconds(1).Div(4)), ZeroDuration()},
	} {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestDurationInfinityIDiv(t *testing.T) {
	secMax := Seconds(math.MaxInt64)
	anyDur := Seconds(1)
	inf := InfiniteDuration()
	negInf := inf.Neg()

	for _, tc := range []struct {
		name    string
		num     Duration
		den     Duration
		wantQ   int64
		wantRem Duration
	}{
		{"inf/inf", inf, inf, math.MaxInt64, inf},
		{"-inf/-inf", negInf, negInf, math.MaxInt64, negInf},
		{"inf/any", inf, anyDur, math.MaxInt64, inf},
		{"any/inf", anyDur, inf, 0, anyDur},
		{"-inf/-any", negInf, anyDur.Neg(), math.MaxInt64, negInf},
		{"-any/-inf", anyDur.Neg(), negInf, 0, anyDur.Neg()},
		{"-inf/inf", negInf, inf, math.MinInt64, negInf},
		{"inf/-inf", inf, negInf, math.MinInt64, inf},
		{"-inf/any", negInf, anyDur, math.MinInt64, negInf},
		{"inf/-any", inf, anyDur.Neg(), math.MinInt64, inf},
		{"max/0.25ns", secMax, Nanoseconds(1).Div(4), math.MaxInt64,
			secMax.Sub(Nanoseconds(math.MaxInt64).Div(4))},
		{"max/1ms", secMax, Milliseconds(1), math.MaxInt64,
			secMax.Sub(Milliseconds(math.MaxInt64))},
		{"-max/-1ms", secMax.Neg(), Milliseconds(-1), math.MaxInt64,
			secMax.Neg().Add(Milliseconds(math.MaxInt64))},
		{"-max/1ms", secMax.Neg(), Milliseconds(1), math.MinInt64,
			secMax.Neg().Sub(Milliseconds(math.MinInt64))},
		{"max/-1ms", secMax, Milliseconds(-1), math.MinInt64,
			secMax.Add(Milliseconds(math.MinInt64))},
	} {
		q, rem := IDivDuration(tc.num, tc.den)
		if q != tc.wantQ || rem != tc.wantRem {
			t.Errorf("%s: IDivDuration = (%d, %v), want (%d, %v)",
				tc.name, q, rem, tc.wantQ, tc.wantRem)
		}
	}
}

func TestDurationInfinityFDiv(t *testing.T) {
	anyDur := Seconds(1)
	inf := InfiniteDuration()
	negInf := inf.Neg()
	posInf := math.Inf(1)

	for _, tc := range []struct {
		name string
		got  float64
		want float64
	}{
		{"inf/inf", FDivDuration(inf, inf), posInf},
		{"-inf/-inf", FDivDuration(negInf, negInf), posInf},
		{"inf/any", FDivDuration(inf, anyDur), posInf},
		{"any/inf", FDivDuration(anyDur, inf), 0},
		{"-inf/inf", FDivDuration(negInf, inf), -posInf},
		{"inf/-inf", FDivDuration(inf, negInf), -posInf},
		{"-inf/any", FDivDuration(negInf, anyDur), -posInf},
		{"inf/-any", FDivDuration(inf, anyDur.Neg()), -posInf},
	} {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestDurationDivisionByZero(t *testing.T) {
	zero := ZeroDuration()
	inf := InfiniteDuration()
	negInf := inf.Neg()
	anyDur := Seconds(1)

	if got := zero.DivFloat(0.0); got != inf {
		t.Errorf("0/0.0 = %v, want inf", got)
	}
	if got := zero.DivFloat(math.Copysign(0, -1)); got != negInf {
		t.Errorf("0/-0.0 = %v, want -inf", got)
	}
	if got := anyDur.DivFloat(0.0); got != inf {
		t.Errorf("1s/0.0 = %v, want inf", got)
	}
	if got := anyDur.Neg().DivFloat(0.0); got != negInf {
		t.Errorf("-1s/0.0 = %v, want -inf", got)
	}
	if got := anyDur.Div(0); got != inf {
		t.Errorf("1s/0 = %v, want inf", got)
	}
	if got := anyDur.Neg().Div(0); got != negInf {
		t.Errorf("-1s/0 = %v, want -inf", got)
	}
	if got := zero.Div(0); got != inf {
		t.Errorf("0/0 = %v, want inf", got)
	}

	// Dividing by a subnormal overflows any non-zero duration.
	denorm := math.SmallestNonzeroFloat64
	if got := zero.DivFloat(denorm); got != zero {
		t.Errorf("0/denorm = %v, want 0", got)
	}
	if got := anyDur.DivFloat(denorm); got != inf {
		t.Errorf("1s/denorm = %v, want inf", got)
	}
	if got := anyDur.DivFloat(-denorm); got != negInf {
		t.Errorf("1s/-denorm = %v, want -inf", got)
	}

	if q, rem := IDivDuration(zero, zero); q != math.MaxInt64 || rem != inf {
		t.Errorf("IDiv(0,0) = (%d, %v), want (MaxInt64, inf)", q, rem)
	}
	if q, rem := IDivDuration(anyDur, zero); q != math.MaxInt64 || rem != inf {
		t.Errorf("IDiv(1s,0) = (%d, %v), want (MaxInt64, inf)", q, rem)
	}
	if q, rem := IDivDuration(anyDur.Neg(), zero); q != math.MinInt64 || rem != negInf {
		t.Errorf("IDiv(-1s,0) = (%d, %v), want (MinInt64, -inf)", q, rem)
	}

	if got := FDivDuration(zero, zero); !math.IsInf(got, 1) {
		t.Errorf("FDiv(0,0) = %v, want +Inf", got)
	}
	if got := FDivDuration(anyDur.Neg(), zero); !math.IsInf(got, -1) {
		t.Errorf("FDiv(-1s,0) = %v, want -Inf", got)
	}
}

func TestDurationScalarArithmetic(t *testing.T) {
	units := map[string]func(int64) Duration{
		"ns": Nanoseconds, "us": Microseconds, "ms": Milliseconds,
		"s": Seconds, "m": Minutes, "h": Hours,
	}
	for name, unit := range units {
		if got := unit(2).MulFloat(2.5); got != unit(5) {
			t.Errorf("%s: 2*2.5 = %v, want %v", name, got, unit(5))
		}
		if got := unit(5).DivFloat(2.5); got != unit(2) {
			t.Errorf("%s: 5/2.5 = %v, want %v", name, got, unit(2))
		}
		if got := unit(-2).MulFloat(2.5); got != unit(-5) {
			t.Errorf("%s: -2*2.5 = %v, want %v", name, got, unit(-5))
		}
		if got := unit(2).MulFloat(-2.5); got != unit(-5) {
			t.Errorf("%s: 2*-2.5 = %v, want %v", name, got, unit(-5))
		}
		if got := unit(11).Mod(unit(3)); got != unit(2) {
			t.Errorf("%s: 11%%3 = %v, want %v", name, got, unit(2))
		}
		if got := unit(2).Mul(-1); got != unit(-2) {
			t.Errorf("%s: 2*-1 = %v, want %v", name, got, unit(-2))
		}
		if q, _ := IDivDuration(unit(2), unit(1)); q != 2 {
			t.Errorf("%s: IDiv(2,1) = %d, want 2", name, q)
		}
		if got := FDivDuration(unit(2), unit(1)); got != 2.0 {
			t.Errorf("%s: FDiv(2,1) = %v, want 2", name, got)
		}
		big := unit(1000000000)
		if got := big.Mul(3).Div(3); got != big {
			t.Errorf("%s: big*3/3 = %v, want %v", name, got, big)
		}
	}

	// Multiplying and dividing a maxed-out duration by 1 keeps precision.
	maxDur := Seconds(math.MaxInt64).Add(Seconds(1).Sub(Nanoseconds(1).Div(4)))
	minDur := Seconds(math.MinInt64)
	if maxDur.Mul(1) != maxDur {
		t.Errorf("max*1 lost precision")
	}
	if maxDur.Div(1) != maxDur {
		t.Errorf("max/1 lost precision")
	}
	if minDur.Mul(1) != minDur {
		t.Errorf("min*1 lost precision")
	}
	if minDur.Div(1) != minDur {
		t.Errorf("min/1 lost precision")
	}

	// Division with significant digits spanning the seconds and tick halves.
	sigfigs := Seconds(2000000000).Add(Nanoseconds(3))
	want := Seconds(666666666).Add(Nanoseconds(666666667)).Add(Nanoseconds(1).Div(2))
	if got := sigfigs.Div(3); got != want {
		t.Errorf("sigfigs/3 = %v, want %v", got, want)
	}
	sigfigs = Seconds(7000000000)
	want = Seconds(2333333333).Add(Nanoseconds(333333333)).Add(Nanoseconds(1).Div(4))
	if got := sigfigs.Div(3); got != want {
		t.Errorf("7e9s/3 = %v, want %v", got, want)
	}

	if got := Seconds(3).MulFloat(2.5); got != Seconds(7).Add(Milliseconds(500)) {
		t.Errorf("3s*2.5 = %v", got)
	}
	if got := Seconds(2).Add(Milliseconds(200)).MulFloat(-3.5); got != Seconds(-8).Add(Milliseconds(300)) {
		t.Errorf("2.2s*-3.5 = %v, want %v", got, Seconds(-8).Add(Milliseconds(300)))
	}
	if got := Seconds(7).Add(Milliseconds(500)).Div(4); got != Seconds(1).Add(Milliseconds(875)) {
		t.Errorf("7.5s/4 = %v", got)
	}
	if got := Seconds(7).Add(Milliseconds(500)).DivFloat(0.25); got != Seconds(30) {
		t.Errorf("7.5s/0.25 = %v, want 30s", got)
	}
}

func TestDurationModIdentity(t *testing.T) {
	mixedA := Seconds(1).Add(Nanoseconds(2))
	mixedB := Seconds(1).Add(Nanoseconds(3))
	pairs := []struct{ a, b Duration }{
		{Seconds(0), Seconds(2)},
		{Seconds(1), Seconds(1)},
		{Seconds(1), Seconds(2)},
		{Seconds(2), Seconds(1)},
		{Seconds(-2), Seconds(1)},
		{Seconds(2), Seconds(-1)},
		{Seconds(-2), Seconds(-1)},
		{Nanoseconds(1), Nanoseconds(2)},
		{Nanoseconds(2), Nanoseconds(1)},
		{Nanoseconds(-2), Nanoseconds(1)},
		{Nanoseconds(2), Nanoseconds(-1)},
		{Seconds(0), mixedA},
		{mixedA, mixedA},
		{mixedA, mixedB},
		{mixedB, mixedA},
		{mixedA.Neg(), mixedB},
		{mixedA, mixedB.Neg()},
		{mixedA.Neg(), mixedB.Neg()},
	}
	for _, p := range pairs {
		q, rem := IDivDuration(p.a, p.b)
		if got := p.b.Mul(q).Add(rem); got != p.a {
			t.Errorf("identity broken for %v / %v: q=%d rem=%v gives %v", p.a, p.b, q, rem, got)
		}
		if rem.Sign() != 0 && rem.Sign() != p.a.Sign() {
			t.Errorf("rem %v has wrong sign for %v / %v", rem, p.a, p.b)
		}
	}

	if got := Nanoseconds(10).Mod(Nanoseconds(-3)); got != Nanoseconds(1) {
		t.Errorf("10ns %% -3ns = %v, want 1ns", got)
	}
	if got := Nanoseconds(-10).Mod(Nanoseconds(3)); got != Nanoseconds(-1) {
		t.Errorf("-10ns %% 3ns = %v, want -1ns", got)
	}
	if got := Seconds(1).Mod(Milliseconds(300)); got != Milliseconds(100) {
		t.Errorf("1s %% 300ms = %v, want 100ms", got)
	}
	if q, _ := IDivDuration(Nanoseconds(-1), Seconds(1)); q != 0 {
		t.Errorf("-1ns / 1s = %d, want 0", q)
	}
}

func TestDurationTruncFloorCeil(t *testing.T) {
	d := Nanoseconds(1234567890)
	inf := InfiniteDuration()

	for _, unitSign := range []int64{1, -1} {
		for _, tc := range []struct {
			name  string
			got   Duration
			want  Duration
		}{
			{"trunc ns", Trunc(d, Nanoseconds(unitSign)), Nanoseconds(1234567890)},
			{"trunc us", Trunc(d, Microseconds(unitSign)), Microseconds(1234567)},
			{"trunc ms", Trunc(d, Milliseconds(unitSign)), Milliseconds(1234)},
			{"trunc s", Trunc(d, Seconds(unitSign)), Seconds(1)},
			{"trunc inf", Trunc(inf, Seconds(unitSign)), inf},
			{"trunc -d us", Trunc(d.Neg(), Microseconds(unitSign)), Microseconds(-1234567)},
			{"trunc -inf", Trunc(inf.Neg(), Seconds(unitSign)), inf.Neg()},
			{"floor us", Floor(d, Microseconds(unitSign)), Microseconds(1234567)},
			{"floor s", Floor(d, Seconds(unitSign)), Seconds(1)},
			{"floor -d us", Floor(d.Neg(), Microseconds(unitSign)), Microseconds(-1234568)},
			{"floor -d s", Floor(d.Neg(), Seconds(unitSign)), Seconds(-2)},
			{"floor inf", Floor(inf, Seconds(unitSign)), inf},
			{"floor -inf", Floor(inf.Neg(), Seconds(unitSign)), inf.Neg()},
			{"ceil us", Ceil(d, Microseconds(unitSign)), Microseconds(1234568)},
			{"ceil s", Ceil(d, Seconds(unitSign)), Seconds(2)},
			{"ceil -d us", Ceil(d.Neg(), Microseconds(unitSign)), Microseconds(-1234567)},
			{"ceil -d s", Ceil(d.Neg(), Seconds(unitSign)), Seconds(-1)},
			{"ceil inf", Ceil(inf, Seconds(unitSign)), inf},
			{"ceil -inf", Ceil(inf.Neg(), Seconds(unitSign)), inf.Neg()},
		} {
			if tc.got != tc.want {
				t.Errorf("sign %d: %s = %v, want %v", unitSign, tc.name, tc.got, tc.want)
			}
		}
	}
}

func TestDurationSmallConversions(t *testing.T) {
	second := Seconds(1)
	for _, tc := range []struct {
		seconds float64
		want    Duration
	}{
		{0, ZeroDuration()},
		{0.124999999e-9, ZeroDuration()},
		{0.125e-9, Nanoseconds(1).Div(4)},
		{0.250e-9, Nanoseconds(1).Div(4)},
		{0.375e-9, Nanoseconds(1).Div(2)},
		{0.500e-9, Nanoseconds(1).Div(2)},
		{0.625e-9, Nanoseconds(3).Div(4)},
		{0.750e-9, Nanoseconds(3).Div(4)},
		{0.875e-9, Nanoseconds(1)},
		{1.000e-9, Nanoseconds(1)},
	} {
		if got := second.MulFloat(tc.seconds); got != tc.want {
			t.Errorf("1s * %v = %v, want %v", tc.seconds, got, tc.want)
		}
	}
}

func TestDurationRange(t *testing.T) {
	rangeFuture := approxYears(100000000000)
	rangePast := rangeFuture.Neg()

	if !rangeFuture.Less(InfiniteDuration()) {
		t.Errorf("100 billion years not < inf")
	}
	if !InfiniteDuration().Neg().Less(rangePast) {
		t.Errorf("-inf not < -100 billion years")
	}

	fullRange := rangeFuture.Sub(rangePast)
	if !ZeroDuration().Less(fullRange) || !fullRange.Less(InfiniteDuration()) {
		t.Errorf("full range = %v, want finite positive", fullRange)
	}
	if got := rangePast.Sub(rangeFuture); got != fullRange.Neg() {
		t.Errorf("negated range mismatch: %v vs %v", got, fullRange.Neg())
	}
}

func TestDurationConversions(t *testing.T) {
	d := Seconds(3).Add(Milliseconds(500))
	if got := ToInt64Seconds(d); got != 3 {
		t.Errorf("ToInt64Seconds(3.5s) = %d, want 3", got)
	}
	if got := ToInt64Seconds(d.Neg()); got != -3 {
		t.Errorf("ToInt64Seconds(-3.5s) = %d, want -3", got)
	}
	if got := ToInt64Milliseconds(d); got != 3500 {
		t.Errorf("ToInt64Milliseconds(3.5s) = %d, want 3500", got)
	}
	if got := ToInt64Nanoseconds(Microseconds(2)); got != 2000 {
		t.Errorf("ToInt64Nanoseconds(2us) = %d, want 2000", got)
	}
	if got := ToInt64Hours(Minutes(90)); got != 1 {
		t.Errorf("ToInt64Hours(90m) = %d, want 1", got)
	}
	if got := ToInt64Minutes(Hours(2)); got != 120 {
		t.Errorf("ToInt64Minutes(2h) = %d, want 120", got)
	}
	if got := ToInt64Seconds(InfiniteDuration()); got != math.MaxInt64 {
		t.Errorf("ToInt64Seconds(inf) = %d, want MaxInt64", got)
	}
	if got := ToInt64Seconds(InfiniteDuration().Neg()); got != math.MinInt64 {
		t.Errorf("ToInt64Seconds(-inf) = %d, want MinInt64", got)
	}

	if got := ToFloat64Seconds(d); got != 3.5 {
		t.Errorf("ToFloat64Seconds(3.5s) = %v, want 3.5", got)
	}
	if got := ToFloat64Milliseconds(Microseconds(250)); got != 0.25 {
		t.Errorf("ToFloat64Milliseconds(250us) = %v, want 0.25", got)
	}
	if got := ToFloat64Hours(Minutes(90)); got != 1.5 {
		t.Errorf("ToFloat64Hours(90m) = %v, want 1.5", got)
	}
	if got := ToFloat64Nanoseconds(Nanoseconds(1).Div(4)); got != 0.25 {
		t.Errorf("ToFloat64Nanoseconds(0.25ns) = %v, want 0.25", got)
	}
	if got := ToFloat64Microseconds(Nanoseconds(1200)); got != 1.2 {
		t.Errorf("ToFloat64Microseconds(1200ns) = %v, want 1.2", got)
	}
	if got := ToFloat64Minutes(Seconds(90)); got != 1.5 {
		t.Errorf("ToFloat64Minutes(90s) = %v, want 1.5", got)
	}
}

func TestDurationRoundTripUnits(t *testing.T) {
	const kRange = 1000
	units := map[string]func(int64) Duration{
		"ns": Nanoseconds, "us": Microseconds, "ms": Milliseconds, "s": Seconds,
	}
	ranges := [][2]int64{
		{math.MinInt64, math.MinInt64 + kRange},
		{-kRange, kRange},
		{math.MaxInt64 - kRange, math.MaxInt64},
	}
	for name, unit := range units {
		for _, r := range ranges {
			for i := r[0]; i < r[1]; i++ {
				d := unit(i)
				q, _ := IDivDuration(d, unit(1))
				if q != i {
					t.Fatalf("%s: %d round-tripped to %d", name, i, q)
				}
			}
		}
	}
}
