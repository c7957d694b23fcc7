// Package smear converts between smeared UTC and the unsmeared, continuous
// timescales TAI and GPST.
//
// A Duration is a span of Terrestrial Time: constant-length SI seconds, as
// opposed to smeared civil seconds, which may be slightly longer or shorter.
// Durations are fixed point with quarter-nanosecond resolution and saturate
// at +/- InfiniteDuration instead of overflowing.
package smear

import (
	"math"
	"math/bits"
)

const (
	ticksPerNanosecond = 4
	ticksPerSecond     = 4 * 1000 * 1000 * 1000
)

// Duration is a signed span of Terrestrial Time with quarter-nanosecond
// resolution, covering the full int64 range of seconds.  The zero value is a
// zero-length duration.  Durations are comparable with ==.
type Duration struct {
	// secs carries whole seconds, lo the positive sub-second tick count in
	// [0, ticksPerSecond).  The value is secs + lo/ticksPerSecond, so for
	// example -0.25ns is {secs: -1, lo: ticksPerSecond - 1}.  An infinity
	// has lo == infiniteTicks.
	secs int64
	lo   uint32
}

const infiniteTicks = ^uint32(0)

// ZeroDuration returns a zero-length Duration.
func ZeroDuration() Duration { return Duration{} }

// InfiniteDuration returns the duration sentinel larger than any finite
// duration.  Negate it for the infinite past.
func InfiniteDuration() Duration { return Duration{math.MaxInt64, infiniteTicks} }

func negInfiniteDuration() Duration { return Duration{math.MinInt64, infiniteTicks} }

// IsInfinite reports whether d is +/- InfiniteDuration.
func (d Duration) IsInfinite() bool { return d.lo == infiniteTicks }

// makeNormalized builds a Duration from whole seconds and a signed tick
// count in (-ticksPerSecond, ticksPerSecond).
func makeNormalized(secs, ticks int64) Duration {
	if ticks < 0 {
		ticks += ticksPerSecond
		secs--
	}
	return Duration{secs, uint32(ticks)}
}

// Factories.

// Nanoseconds returns a Duration of n nanoseconds.
func Nanoseconds(n int64) Duration {
	return makeNormalized(n/1000000000, n%1000000000*ticksPerNanosecond)
}

// Microseconds returns a Duration of n microseconds.
func Microseconds(n int64) Duration {
	return makeNormalized(n/1000000, n%1000000*1000*ticksPerNanosecond)
}

// Milliseconds returns a Duration of n milliseconds.
func Milliseconds(n int64) Duration {
	return makeNormalized(n/1000, n%1000*1000000*ticksPerNanosecond)
}

// Seconds returns a Duration of n seconds.
func Seconds(n int64) Duration { return Duration{n, 0} }

// Minutes returns a Duration of n minutes, saturating at infinity.
func Minutes(n int64) Duration {
	if n <= math.MaxInt64/60 && n >= math.MinInt64/60 {
		return Duration{n * 60, 0}
	}
	if n > 0 {
		return InfiniteDuration()
	}
	return negInfiniteDuration()
}

// Hours returns a Duration of n hours, saturating at infinity.
func Hours(n int64) Duration {
	if n <= math.MaxInt64/3600 && n >= math.MinInt64/3600 {
		return Duration{n * 3600, 0}
	}
	if n > 0 {
		return InfiniteDuration()
	}
	return negInfiniteDuration()
}

// Comparisons.

// Cmp returns -1, 0, or +1 as d is less than, equal to, or greater than rhs.
func (d Duration) Cmp(rhs Duration) int {
	switch {
	case d.Less(rhs):
		return -1
	case rhs.Less(d):
		return +1
	default:
		return 0
	}
}

// Less reports whether d sorts before rhs.
func (d Duration) Less(rhs Duration) bool {
	if d.secs != rhs.secs {
		return d.secs < rhs.secs
	}
	if d.secs == math.MinInt64 {
		// The negative infinity encoding {MinInt64, infiniteTicks} must
		// sort before {MinInt64, 0}; comparing the ticks shifted by one
		// wraps it around to the smallest value.
		return d.lo+1 < rhs.lo+1
	}
	return d.lo < rhs.lo
}

// Equal reports whether d and rhs are the same duration.
func (d Duration) Equal(rhs Duration) bool { return d == rhs }

// Sign returns -1, 0, or +1 according to the sign of d.
func (d Duration) Sign() int { return d.Cmp(ZeroDuration()) }

// Additive operations.

// Add returns d + rhs, saturating at infinity.
func (d Duration) Add(rhs Duration) Duration {
	if d.IsInfinite() {
		return d
	}
	if rhs.IsInfinite() {
		return rhs
	}
	origSecs := d.secs
	d.secs = int64(uint64(d.secs) + uint64(rhs.secs))
	if d.lo >= ticksPerSecond-rhs.lo {
		d.secs = int64(uint64(d.secs) + 1)
		d.lo -= ticksPerSecond
	}
	d.lo += rhs.lo
	if rhs.secs < 0 {
		if d.secs > origSecs {
			return negInfiniteDuration()
		}
	} else if d.secs < origSecs {
		return InfiniteDuration()
	}
	return d
}

// Sub returns d - rhs, saturating at infinity.
func (d Duration) Sub(rhs Duration) Duration {
	if d.IsInfinite() {
		return d
	}
	if rhs.IsInfinite() {
		if rhs.secs >= 0 {
			return negInfiniteDuration()
		}
		return InfiniteDuration()
	}
	origSecs := d.secs
	d.secs = int64(uint64(d.secs) - uint64(rhs.secs))
	if d.lo < rhs.lo {
		d.secs = int64(uint64(d.secs) - 1)
		d.lo += ticksPerSecond
	}
	d.lo -= rhs.lo
	if rhs.secs < 0 {
		if d.secs < origSecs {
			return InfiniteDuration()
		}
	} else if d.secs > origSecs {
		return negInfiniteDuration()
	}
	return d
}

// Neg returns -d.  The negation of an infinity is the opposite infinity.
func (d Duration) Neg() Duration {
	if d.lo == 0 {
		if d.secs == math.MinInt64 {
			return InfiniteDuration()
		}
		return Duration{-d.secs, 0}
	}
	if d.IsInfinite() {
		if d.secs < 0 {
			return InfiniteDuration()
		}
		return negInfiniteDuration()
	}
	// ^secs is -secs-1, which cannot overflow.
	return Duration{^d.secs, ticksPerSecond - d.lo}
}

// AbsDuration returns the absolute value of d.
func AbsDuration(d Duration) Duration {
	if d.Less(ZeroDuration()) {
		return d.Neg()
	}
	return d
}

// Scalar multiplication and division.

// Mul returns d * r, saturating at infinity.
func (d Duration) Mul(r int64) Duration {
	if d.IsInfinite() {
		if (r < 0) != (d.secs < 0) {
			return negInfiniteDuration()
		}
		return InfiniteDuration()
	}
	return scaleFixed(d, r, false)
}

// Div returns d / r truncated toward zero.  Division by zero returns the
// infinity with the sign of d (positive for a zero d).
func (d Duration) Div(r int64) Duration {
	if d.IsInfinite() || r == 0 {
		if (r < 0) != (d.secs < 0) {
			return negInfiniteDuration()
		}
		return InfiniteDuration()
	}
	return scaleFixed(d, r, true)
}

// MulFloat returns d * r, saturating at infinity.  A non-finite r produces
// the infinity whose sign is the product of the signs.
func (d Duration) MulFloat(r float64) Duration {
	if d.IsInfinite() || math.IsInf(r, 0) || math.IsNaN(r) {
		if math.Signbit(r) != (d.secs < 0) {
			return negInfiniteDuration()
		}
		return InfiniteDuration()
	}
	return scaleFloat(d, r, false)
}

// DivFloat returns d / r.  Division by zero returns the infinity whose sign
// is the quotient of the signs; dividing a finite d by an infinite r returns
// zero.
func (d Duration) DivFloat(r float64) Duration {
	if d.IsInfinite() || r == 0 || math.IsNaN(r) {
		if math.Signbit(r) != (d.secs < 0) {
			return negInfiniteDuration()
		}
		return InfiniteDuration()
	}
	return scaleFloat(d, r, true)
}

// Mod returns the remainder of dividing d by den, with the sign of d.
// Unlike the remainder of IDivDuration, Mod is exact even when the quotient
// saturates: d.Mod(den) is unaffected by quotient overflow.
func (d Duration) Mod(den Duration) Duration {
	numNeg := d.Less(ZeroDuration())
	if d.IsInfinite() || den == ZeroDuration() {
		if numNeg {
			return negInfiniteDuration()
		}
		return InfiniteDuration()
	}
	if den.IsInfinite() {
		return d
	}
	_, rem := divU128(makeU128Ticks(d), makeU128Ticks(den))
	return makeDurationFromU128(rem, numNeg)
}

// IDivDuration divides num by den, returning the quotient truncated toward
// zero and the remainder, such that num == q*den + rem for finite operands.
// An infinite or zero-divided quotient saturates at math.MaxInt64 or
// math.MinInt64; the remainder keeps the sign of num.
func IDivDuration(num, den Duration) (int64, Duration) {
	numNeg := num.Less(ZeroDuration())
	denNeg := den.Less(ZeroDuration())
	quotientNeg := numNeg != denNeg

	if num.IsInfinite() || den == ZeroDuration() {
		rem := InfiniteDuration()
		if numNeg {
			rem = negInfiniteDuration()
		}
		if quotientNeg {
			return math.MinInt64, rem
		}
		return math.MaxInt64, rem
	}
	if den.IsInfinite() {
		return 0, num
	}

	a := makeU128Ticks(num)
	b := makeU128Ticks(den)
	q, _ := divU128(a, b)

	maxQuotient := u128{0, math.MaxInt64}
	if q.cmp(maxQuotient) > 0 {
		if quotientNeg {
			q = u128{0, 1 << 63}
		} else {
			q = maxQuotient
		}
	}

	rem := makeDurationFromU128(a.sub(b.mul64(q.lo)), numNeg)

	if !quotientNeg || q.lo == 0 {
		return int64(q.lo & math.MaxInt64), rem
	}
	return -int64(q.lo-1) - 1, rem
}

// FDivDuration divides num by den as a float64.  Unlike IEEE arithmetic,
// dividing infinities of like sign yields +Inf rather than NaN.
func FDivDuration(num, den Duration) float64 {
	if num.IsInfinite() || den == ZeroDuration() {
		if num.Less(ZeroDuration()) == den.Less(ZeroDuration()) {
			return math.Inf(+1)
		}
		return math.Inf(-1)
	}
	if den.IsInfinite() {
		return 0.0
	}
	a := float64(num.secs)*ticksPerSecond + float64(num.lo)
	b := float64(den.secs)*ticksPerSecond + float64(den.lo)
	return a / b
}

// Trunc returns d truncated toward zero to a multiple of unit, which must be
// non-zero.
func Trunc(d, unit Duration) Duration {
	return d.Sub(d.Mod(unit))
}

// Floor returns the largest multiple of unit not greater than d.
func Floor(d, unit Duration) Duration {
	td := Trunc(d, unit)
	if td.Less(d) || td == d {
		return td
	}
	return td.Sub(AbsDuration(unit))
}

// Ceil returns the smallest multiple of unit not less than d.
func Ceil(d, unit Duration) Duration {
	td := Trunc(d, unit)
	if d.Less(td) || td == d {
		return td
	}
	return td.Add(AbsDuration(unit))
}

// Conversions to integer counts, truncating toward zero.  Infinities
// saturate at the int64 limits.

// ToInt64Nanoseconds returns d as a count of nanoseconds.
func ToInt64Nanoseconds(d Duration) int64 { q, _ := IDivDuration(d, Nanoseconds(1)); return q }

// ToInt64Microseconds returns d as a count of microseconds.
func ToInt64Microseconds(d Duration) int64 { q, _ := IDivDuration(d, Microseconds(1)); return q }

// ToInt64Milliseconds returns d as a count of milliseconds.
func ToInt64Milliseconds(d Duration) int64 { q, _ := IDivDuration(d, Milliseconds(1)); return q }

// ToInt64Seconds returns d as a count of seconds.
func ToInt64Seconds(d Duration) int64 { q, _ := IDivDuration(d, Seconds(1)); return q }

// ToInt64Minutes returns d as a count of minutes.
func ToInt64Minutes(d Duration) int64 { q, _ := IDivDuration(d, Minutes(1)); return q }

// ToInt64Hours returns d as a count of hours.
func ToInt64Hours(d Duration) int64 { q, _ := IDivDuration(d, Hours(1)); return q }

// Conversions to floating point counts.

// ToFloat64Nanoseconds returns d as a floating point count of nanoseconds.
func ToFloat64Nanoseconds(d Duration) float64 { return FDivDuration(d, Nanoseconds(1)) }

// ToFloat64Microseconds returns d as a floating point count of microseconds.
func ToFloat64Microseconds(d Duration) float64 { return FDivDuration(d, Microseconds(1)) }

// ToFloat64Milliseconds returns d as a floating point count of milliseconds.
func ToFloat64Milliseconds(d Duration) float64 { return FDivDuration(d, Milliseconds(1)) }

// ToFloat64Seconds returns d as a floating point count of seconds.
func ToFloat64Seconds(d Duration) float64 { return FDivDuration(d, Seconds(1)) }

// ToFloat64Minutes returns d as a floating point count of minutes.
func ToFloat64Minutes(d Duration) float64 { return FDivDuration(d, Minutes(1)) }

// ToFloat64Hours returns d as a floating point count of hours.
func ToFloat64Hours(d Duration) float64 { return FDivDuration(d, Hours(1)) }

// Fixed-point scaling.
//
// The magnitude of any finite Duration fits in 95 bits of ticks, so scaling
// runs on an unsigned 128-bit tick count with the sign tracked separately.

type u128 struct{ hi, lo uint64 }

func (a u128) cmp(b u128) int {
	switch {
	case a.hi != b.hi:
		if a.hi < b.hi {
			return -1
		}
		return +1
	case a.lo != b.lo:
		if a.lo < b.lo {
			return -1
		}
		return +1
	default:
		return 0
	}
}

func (a u128) sub(b u128) u128 {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	hi, _ := bits.Sub64(a.hi, b.hi, borrow)
	return u128{hi, lo}
}

func (a u128) shl(n uint) u128 {
	if n >= 64 {
		return u128{a.lo << (n - 64), 0}
	}
	if n == 0 {
		return a
	}
	return u128{a.hi<<n | a.lo>>(64-n), a.lo << n}
}

// mul64 multiplies by a 64-bit factor.  The caller guarantees the product
// fits in 128 bits.
func (a u128) mul64(b uint64) u128 {
	hi, lo := bits.Mul64(a.lo, b)
	return u128{hi + a.hi*b, lo}
}

// div64 divides by a 64-bit non-zero divisor.
func (a u128) div64(b uint64) (q u128, rem uint64) {
	qhi := a.hi / b
	r := a.hi % b
	qlo, r := bits.Div64(r, a.lo, b)
	return u128{qhi, qlo}, r
}

// divU128 divides a by a non-zero b.
func divU128(a, b u128) (q, rem u128) {
	if b.hi == 0 {
		q, r := a.div64(b.lo)
		return q, u128{0, r}
	}
	// The quotient fits in 64 bits; shift-and-subtract over the usable range.
	shift := 127 - bits.Len64(b.hi) - 64
	var qlo uint64
	for i := shift; i >= 0; i-- {
		s := b.shl(uint(i))
		if s.cmp(a) <= 0 {
			a = a.sub(s)
			qlo |= 1 << uint(i)
		}
	}
	return u128{0, qlo}, a
}

// makeU128Ticks returns the magnitude of a finite d as a tick count.
func makeU128Ticks(d Duration) u128 {
	secs, ticks := d.secs, uint64(d.lo)
	if secs < 0 {
		secs++
		secs = -secs
		ticks = ticksPerSecond - ticks
	}
	hi, lo := bits.Mul64(uint64(secs), ticksPerSecond)
	lo, carry := bits.Add64(lo, ticks, 0)
	return u128{hi + carry, lo}
}

// makeDurationFromU128 converts a tick magnitude back into a Duration,
// saturating at infinity.
func makeDurationFromU128(u u128, neg bool) Duration {
	var secs int64
	var ticks uint32
	if u.hi == 0 {
		s := u.lo / ticksPerSecond
		secs = int64(s)
		ticks = uint32(u.lo - s*ticksPerSecond)
	} else {
		// maxSecondsHi64 is the high word of 2^63 * ticksPerSecond, the
		// first tick count whose second count no longer fits in int64.
		const maxSecondsHi64 = 0x77359400
		if u.hi >= maxSecondsHi64 {
			if neg && u.hi == maxSecondsHi64 && u.lo == 0 {
				return Duration{math.MinInt64, 0}
			}
			if neg {
				return negInfiniteDuration()
			}
			return InfiniteDuration()
		}
		q, r := u.div64(ticksPerSecond)
		secs = int64(q.lo)
		ticks = uint32(r)
	}
	if neg {
		secs = -secs
		if ticks != 0 {
			secs--
			ticks = ticksPerSecond - ticks
		}
	}
	return Duration{secs, ticks}
}

// maxU128 / b, used for the multiply overflow check.
func maxU128Div(b uint64) u128 {
	q, _ := u128{^uint64(0), ^uint64(0)}.div64(b)
	return q
}

func scaleFixed(d Duration, r int64, divide bool) Duration {
	a := makeU128Ticks(d)
	var b uint64
	if r < 0 {
		b = uint64(-(r + 1)) + 1
	} else {
		b = uint64(r)
	}
	neg := (d.secs < 0) != (r < 0)
	var q u128
	if divide {
		q, _ = a.div64(b)
	} else if b == 0 {
		q = u128{}
	} else if a.cmp(maxU128Div(b)) > 0 {
		q = u128{^uint64(0), ^uint64(0)}
	} else if a.hi == 0 && (a.lo|b)>>32 == 0 {
		q = u128{0, a.lo * b}
	} else {
		q = a.mul64(b)
	}
	return makeDurationFromU128(q, neg)
}

// scaleFloat multiplies or divides by a float64, scaling the whole-second
// and tick halves separately so that values near the int64 range keep
// sub-second precision.
func scaleFloat(d Duration, r float64, divide bool) Duration {
	var hiDoub, loDoub float64
	if divide {
		hiDoub = float64(d.secs) / r
		loDoub = float64(d.lo) / r
	} else {
		hiDoub = float64(d.secs) * r
		loDoub = float64(d.lo) * r
	}

	hiInt, hiFrac := math.Modf(hiDoub)
	if math.IsInf(hiDoub, 0) {
		// math.Modf gives a NaN fraction for an infinity; treat it as zero
		// so that the overflow saturates with the right sign below.
		hiFrac = 0
	}

	// Moves the whole part's fractional bits down to the tick half.
	loDoub /= ticksPerSecond
	loDoub += hiFrac

	loInt, loFrac := math.Modf(loDoub)

	lo64 := int64(math.Floor(loFrac*ticksPerSecond + 0.5))

	secs, d2, ok := safeAddSeconds(hiInt, loInt)
	if !ok {
		return d2
	}
	secs, d2, ok = safeAddSeconds(float64(secs), float64(lo64/ticksPerSecond))
	if !ok {
		return d2
	}
	lo64 %= ticksPerSecond
	if lo64 < 0 {
		lo64 += ticksPerSecond
		secs--
	}
	return Duration{secs, uint32(lo64)}
}

// safeAddSeconds adds two second counts held in float64s, saturating at
// infinity when the sum leaves the int64 range.
func safeAddSeconds(a, b float64) (int64, Duration, bool) {
	c := a + b
	if c >= float64(math.MaxInt64) {
		return 0, InfiniteDuration(), false
	}
	if c <= float64(math.MinInt64) {
		return 0, negInfiniteDuration(), false
	}
	return int64(c), Duration{}, true
}
