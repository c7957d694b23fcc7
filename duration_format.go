package smear

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidDuration is returned by ParseDuration for malformed input.
var ErrInvalidDuration = errors.New("invalid duration")

// String renders d in the form "72h3m0.5s".  Sub-second durations use the
// largest of ms, us and ns that keeps the value at least one, and ns below
// one nanosecond, e.g. "1.2us" or "0.25ns".
// Zero is "0"; the infinities are "inf" and "-inf".
func (d Duration) String() string {
	// The most negative duration has no positive counterpart to format.
	if d == Seconds(math.MinInt64) {
		return "-2562047788015215h30m8s"
	}

	var sb strings.Builder
	if d.Less(ZeroDuration()) {
		sb.WriteByte('-')
		d = d.Neg()
	}
	switch {
	case d.IsInfinite():
		sb.WriteString("inf")
	case d == ZeroDuration():
		return "0"
	case d.Less(Seconds(1)):
		switch {
		case d.Less(Microseconds(1)):
			appendFloatUnit(&sb, FDivDuration(d, Nanoseconds(1)), 2, "ns")
		case d.Less(Milliseconds(1)):
			appendFloatUnit(&sb, FDivDuration(d, Microseconds(1)), 5, "us")
		default:
			appendFloatUnit(&sb, FDivDuration(d, Milliseconds(1)), 8, "ms")
		}
	default:
		var q int64
		q, d = IDivDuration(d, Hours(1))
		appendIntUnit(&sb, q, "h")
		q, d = IDivDuration(d, Minutes(1))
		appendIntUnit(&sb, q, "m")
		appendFloatUnit(&sb, FDivDuration(d, Seconds(1)), 11, "s")
	}
	s := sb.String()
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

func appendIntUnit(sb *strings.Builder, n int64, unit string) {
	if n != 0 {
		sb.WriteString(strconv.FormatInt(n, 10))
		sb.WriteString(unit)
	}
}

var pow10 = [...]float64{1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11}

// appendFloatUnit writes n with up to prec fractional digits, trimming
// trailing zeros, followed by the unit.  Writes nothing for a zero value.
func appendFloatUnit(sb *strings.Builder, n float64, prec int, unit string) {
	intDoub, frac := math.Modf(n)
	intPart := int64(intDoub)
	fracPart := int64(math.Floor(frac*pow10[prec] + 0.5))
	if intPart == 0 && fracPart == 0 {
		return
	}
	sb.WriteString(strconv.FormatInt(intPart, 10))
	if fracPart != 0 {
		sb.WriteByte('.')
		digits := strconv.FormatInt(fracPart, 10)
		for pad := prec - len(digits); pad > 0; pad-- {
			sb.WriteByte('0')
		}
		sb.WriteString(strings.TrimRight(digits, "0"))
	}
	sb.WriteString(unit)
}

// ParseDuration parses a possibly signed sequence of decimal numbers, each
// with an optional fraction and a unit suffix from {ns, us, ms, s, m, h},
// such as "300ms", "-1.5h" or "2h45m".  The bare strings "0", "inf" and
// "-inf" are also accepted.  Anything else fails with ErrInvalidDuration.
func ParseDuration(s string) (Duration, error) {
	sign := int64(1)
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		sign = -1
		s = rest
	} else {
		s = strings.TrimPrefix(s, "+")
	}
	if s == "" {
		return Duration{}, ErrInvalidDuration
	}
	if s == "0" {
		return ZeroDuration(), nil
	}
	if s == "inf" {
		return InfiniteDuration().Mul(sign), nil
	}

	var d Duration
	for len(s) > 0 {
		intPart, fracPart, fracScale, rest, ok := consumeDurationNumber(s)
		if !ok {
			return Duration{}, ErrInvalidDuration
		}
		unit, rest, ok := consumeDurationUnit(rest)
		if !ok {
			return Duration{}, ErrInvalidDuration
		}
		if intPart != 0 {
			d = d.Add(unit.Mul(sign * intPart))
		}
		if fracPart != 0 {
			d = d.Add(unit.Mul(sign * fracPart).Div(fracScale))
		}
		s = rest
	}
	return d, nil
}

func consumeDurationNumber(s string) (intPart, fracPart, fracScale int64, rest string, ok bool) {
	fracScale = 1
	i := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		digit := int64(s[i] - '0')
		if intPart > (math.MaxInt64-digit)/10 {
			return 0, 0, 0, "", false
		}
		intPart = intPart*10 + digit
	}
	intDigits := i > 0
	fracDigits := false
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
			fracDigits = true
			// Ignore digits beyond int64 precision.
			if fracScale <= math.MaxInt64/10 {
				fracPart = fracPart*10 + int64(s[i]-'0')
				fracScale *= 10
			}
		}
	}
	return intPart, fracPart, fracScale, s[i:], intDigits || fracDigits
}

func consumeDurationUnit(s string) (Duration, string, bool) {
	switch {
	case strings.HasPrefix(s, "ns"):
		return Nanoseconds(1), s[2:], true
	case strings.HasPrefix(s, "us"):
		return Microseconds(1), s[2:], true
	case strings.HasPrefix(s, "ms"):
		return Milliseconds(1), s[2:], true
	case strings.HasPrefix(s, "s"):
		return Seconds(1), s[1:], true
	case strings.HasPrefix(s, "m"):
		return Minutes(1), s[1:], true
	case strings.HasPrefix(s, "h"):
		return Hours(1), s[1:], true
	}
	return Duration{}, "", false
}
