package smear

import (
	"strconv"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

// Fixed timescale labels and infinity names.
const (
	taiZone = "TAI"
	gpsZone = "GPST"
	utcZone = "UTC"

	taiInfiniteFutureName = "tai-infinite-future"
	taiInfinitePastName   = "tai-infinite-past"
	gpsInfiniteFutureName = "gpst-infinite-future"
	gpsInfinitePastName   = "gpst-infinite-past"
	utcInfiniteFutureName = "utc-infinite-future"
	utcInfinitePastName   = "utc-infinite-past"
)

// Day counts between the Unix epoch and the TAI and GPS epochs.  Reading a
// TAI or GPST second count as a Unix second count is unsound (the seconds
// have different lengths), but it is exactly what is needed to render the
// timescale's own calendar labels, and the zone suffix keeps the output
// unambiguous.
const (
	taiEpochUnixDays = -4383
	gpsEpochUnixDays = 3657
)

// String formats t as "1958-01-01 00:00:00 TAI" with sub-second digits
// appended only when non-zero.
func (t TaiTime) String() string {
	switch t {
	case TaiInfiniteFuture():
		return taiInfiniteFutureName
	case TaiInfinitePast():
		return taiInfinitePastName
	}
	return formatDefault(t.rep, taiEpochUnixDays*86400, taiZone)
}

// String formats t as "1980-01-06 00:00:00 GPST" with sub-second digits
// appended only when non-zero.
func (t GpsTime) String() string {
	switch t {
	case GpsInfiniteFuture():
		return gpsInfiniteFutureName
	case GpsInfinitePast():
		return gpsInfinitePastName
	}
	return formatDefault(t.rep, gpsEpochUnixDays*86400, gpsZone)
}

// String formats t as "1972-01-01 00:00:00 UTC" with sub-second digits
// appended only when non-zero.
func (t UtcTime) String() string {
	switch t {
	case UtcInfiniteFuture():
		return utcInfiniteFutureName
	case UtcInfinitePast():
		return utcInfinitePastName
	}
	return formatDefault(t.rep, 0, utcZone)
}

func formatDefault(rep Duration, epochShift int64, zone string) string {
	var sb strings.Builder
	sb.WriteString(time.Unix(rep.secs+epochShift, 0).UTC().Format("2006-01-02 15:04:05"))
	if rep.lo != 0 {
		// One tick is 25 units of 1e-11 s, so eleven fractional digits
		// render any tick count exactly.
		digits := strconv.FormatUint(uint64(rep.lo)*25, 10)
		sb.WriteByte('.')
		for pad := 11 - len(digits); pad > 0; pad-- {
			sb.WriteByte('0')
		}
		sb.WriteString(strings.TrimRight(digits, "0"))
	}
	sb.WriteByte(' ')
	sb.WriteString(zone)
	return sb.String()
}

// Format renders t with a strftime-style format string.  %Z produces "TAI";
// %%Z stays a literal "%Z".
func (t TaiTime) Format(format string) (string, error) {
	switch t {
	case TaiInfiniteFuture():
		return taiInfiniteFutureName, nil
	case TaiInfinitePast():
		return taiInfinitePastName, nil
	}
	return formatStrftime(format, t.rep, taiEpochUnixDays*86400, taiZone)
}

// Format renders t with a strftime-style format string.  %Z produces
// "GPST"; %%Z stays a literal "%Z".
func (t GpsTime) Format(format string) (string, error) {
	switch t {
	case GpsInfiniteFuture():
		return gpsInfiniteFutureName, nil
	case GpsInfinitePast():
		return gpsInfinitePastName, nil
	}
	return formatStrftime(format, t.rep, gpsEpochUnixDays*86400, gpsZone)
}

// Format renders t with a strftime-style format string.  %Z produces "UTC";
// %%Z stays a literal "%Z".
func (t UtcTime) Format(format string) (string, error) {
	switch t {
	case UtcInfiniteFuture():
		return utcInfiniteFutureName, nil
	case UtcInfinitePast():
		return utcInfinitePastName, nil
	}
	return formatStrftime(format, t.rep, 0, utcZone)
}

func formatStrftime(format string, rep Duration, epochShift int64, zone string) (string, error) {
	tt := time.Unix(rep.secs+epochShift, int64(rep.lo/ticksPerNanosecond)).UTC()
	return strftime.Format(expandZone(format, zone), tt)
}

// expandZone replaces %Z with the timescale label while leaving %%Z (and
// every other specifier) for the strftime formatter.  A dangling % at the
// end of the format becomes a literal percent sign.
func expandZone(format, zone string) string {
	var sb strings.Builder
	sb.Grow(len(format))
	sawPercent := false
	for i := 0; i < len(format); i++ {
		c := format[i]
		if sawPercent {
			if c == 'Z' {
				sb.WriteString(zone)
			} else {
				sb.WriteByte('%')
				sb.WriteByte(c)
			}
			sawPercent = false
		} else if c == '%' {
			sawPercent = true
		} else {
			sb.WriteByte(c)
		}
	}
	if sawPercent {
		sb.WriteString("%%")
	}
	return sb.String()
}
