package smear

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/holoplot/go-smear/leaptablepb"
)

// The leap smear extends 12 smeared hours (43,200 smeared seconds) on either
// side of UTC midnight.
const smearRadiusHours = 12

// The earliest accepted leap table expiration is Julian Day 2441347, the
// 24-hour period ending 1972-01-31 12:00 UTC.
const minJdn = 2441347

// The latest accepted leap table expiration is Julian Day 5373483, the
// 24-hour period ending 9999-12-31 12:00 UTC.  Later expirations are likely
// corrupt.  Times in the far future also have an inherent problem: after
// enough leap seconds, whole months of seconds could have been added or
// removed, changing the set of leap second opportunities itself.
const maxJdn = 5373483

// A leapTableEntry marks a UTC instant at which the smear direction changes.
type leapTableEntry struct {
	// Table timestamps originate as JDNs, so utc always falls at noon,
	// except for the final entry at the modern UTC epoch.
	utc UtcTime
	tai TaiTime
	// The smear direction for times before this point: +1 at the end of a
	// positive smear (insertion of a leap second), -1 at the end of an
	// anti-leap, and 0 at the start of a smear or at the expiration.
	smear int
}

// A LeapTable converts between timescales with leap seconds, smeared or
// unsmeared, and timescales based on continuous seconds of Terrestrial
// Time.  It is immutable after construction and can be freely shared
// between goroutines.
type LeapTable struct {
	// A latest-first series of instants at which the smear changed.  The
	// count is even: the expiration, one entry each for the start and end
	// of each smear, and finally the smear epoch.
	entries []leapTableEntry
}

// Interval is an inclusive range of timepoints.  The future-proof
// conversions return the tightest interval containing every time consistent
// with any possible set of unannounced leap seconds.
type Interval[T comparable] struct {
	Lo, Hi T
}

// NewLeapTableFromProto validates a leap second catalog and builds the
// conversion table for it.
func NewLeapTableFromProto(pb *leaptablepb.LeapTableProto) (*LeapTable, error) {
	endJdn := pb.GetEndJdn()
	if endJdn < minJdn || endJdn > maxJdn {
		return nil, fmt.Errorf("end_jdn %d is not in the valid range", endJdn)
	}

	// The expiration must be at the end of the month, immediately before
	// what might be the start of a leap smear.
	expiration := JdnToTime(endJdn + 1)
	if expiration.Add(Hours(24)).Time().Day() != 1 {
		return nil, fmt.Errorf("end_jdn %d is not at the end of the month", endJdn)
	}

	entries := make([]leapTableEntry, 2*(len(pb.GetPositiveLeaps())+len(pb.GetNegativeLeaps()))+2)
	entries[0] = leapTableEntry{utc: expiration}
	entries[len(entries)-1] = leapTableEntry{utc: ModernUtcEpoch(), tai: TaiModernUtcEpoch()}

	// Fill in from the end, since newest-last is the most expected input
	// order.
	i := len(entries) - 2
	for _, jdn := range pb.GetPositiveLeaps() {
		if jdn < minJdn || jdn > maxJdn {
			return nil, fmt.Errorf("positive leap %d is not in the valid range", jdn)
		}
		entries[i] = leapTableEntry{utc: JdnToTime(jdn)}
		i--
		entries[i] = leapTableEntry{utc: JdnToTime(jdn + 1), smear: +1}
		i--
	}
	for _, jdn := range pb.GetNegativeLeaps() {
		if jdn < minJdn || jdn > maxJdn {
			return nil, fmt.Errorf("negative leap %d is not in the valid range", jdn)
		}
		entries[i] = leapTableEntry{utc: JdnToTime(jdn)}
		i--
		entries[i] = leapTableEntry{utc: JdnToTime(jdn + 1), smear: -1}
		i--
	}

	sort.Slice(entries, func(a, b int) bool {
		return entries[b].utc.Before(entries[a].utc)
	})
	if entries[0].utc != expiration || entries[0].smear != 0 {
		return nil, fmt.Errorf("leap second after end_jdn %d", endJdn)
	}
	if entries[len(entries)-1].utc.Before(ModernUtcEpoch()) {
		return nil, fmt.Errorf("leap second before the modern UTC epoch")
	}

	// Validate the table and fill in TAI for each entry.
	for i := len(entries) - 2; i >= 0; i-- {
		if entries[i].utc == entries[i+1].utc {
			return nil, fmt.Errorf("duplicate or conflicting leap seconds")
		}
		if entries[i].smear != 0 &&
			entries[i].utc.Time().Month() == entries[i+1].utc.Time().Month() {
			return nil, fmt.Errorf("leap second is not at the end of a month")
		}
		entries[i].tai = entries[i+1].tai.
			Add(Seconds(ToInt64Seconds(entries[i].utc.Sub(entries[i+1].utc)))).
			Add(Seconds(int64(entries[i].smear)))
	}

	return &LeapTable{entries: entries}, nil
}

// Expiration returns the latest time that can be unambiguously converted.
// The earliest convertible time is always ModernUtcEpoch().
func (lt *LeapTable) Expiration() UtcTime { return lt.entries[0].utc }

// ToProto writes the leap table data to a catalog message.  Reconstructing
// a table with NewLeapTableFromProto yields an equal table.
func (lt *LeapTable) ToProto() *leaptablepb.LeapTableProto {
	pb := &leaptablepb.LeapTableProto{}
	for i := len(lt.entries) - 1; i > 0; i-- {
		e := lt.entries[i]
		switch e.smear {
		case +1:
			pb.PositiveLeaps = append(pb.PositiveLeaps, timeToJdn(e.utc)-1)
		case -1:
			pb.NegativeLeaps = append(pb.NegativeLeaps, timeToJdn(e.utc)-1)
		}
	}
	pb.EndJdn = timeToJdn(lt.entries[0].utc) - 1
	return pb
}

// Equal reports whether two leap tables have elementwise equal entries.
func (lt *LeapTable) Equal(other *LeapTable) bool {
	if len(lt.entries) != len(other.entries) {
		return false
	}
	for i := range lt.entries {
		if lt.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// DebugString returns a human-readable description of the leap table.  For
// debugging only and subject to change; do not attempt to parse it.
func (lt *LeapTable) DebugString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "LeapTable expires %s\n", lt.Expiration())

	taiUtc := 10
	for _, e := range lt.entries {
		taiUtc += e.smear
	}
	for _, e := range lt.entries {
		fmt.Fprintf(&sb, "  %s  %s  smear %d  TAI-UTC %d\n", e.utc, e.tai, e.smear, taiUtc)
		taiUtc -= e.smear
	}
	return sb.String()
}

// interpolateUtc maps a TAI time to UTC within the segment ending at e.
func interpolateUtc(e leapTableEntry, tai TaiTime) UtcTime {
	d := e.tai.Sub(tai)
	t := UtcTime{e.utc.rep.Sub(d)}
	if e.smear != 0 {
		s := FDivDuration(d, Hours(24).Add(Seconds(int64(e.smear))))
		t = t.Add(Seconds(int64(e.smear)).MulFloat(s))
	}
	return t
}

// interpolateTai maps a UTC time to TAI within the segment ending at e.
func interpolateTai(e leapTableEntry, utc UtcTime) TaiTime {
	d := e.utc.Sub(utc)
	t := TaiTime{e.tai.rep.Sub(d)}
	if e.smear != 0 {
		s := FDivDuration(d, Hours(24))
		t = TaiTime{t.rep.Sub(Seconds(int64(e.smear)).MulFloat(s))}
	}
	return t
}

// isJustBeforeMonthEnd reports whether t is within the twelve hours before
// the end of its UTC month.
func isJustBeforeMonthEnd(t time.Time) bool {
	if t.Hour() < smearRadiusHours {
		return false
	}
	year, month, day := t.Date()
	return day == lastDayOfMonth(year, month)
}

func lastDayOfMonth(year int, month time.Month) int {
	// Day zero of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func noonUtc(year int, month time.Month, day int) UtcTime {
	return UtcFromTime(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// advance extends a leap table entry into the future, returning the
// hypothetical entries that would hold if a leap second happened at every
// intervening month end: one entry as if they were all negative and one as
// if they were all positive.
func advance(e leapTableEntry, t UtcTime) (neg, pos leapTableEntry) {
	eTime := e.utc.Time()
	tTime := t.Time()

	leaps := (tTime.Year()-eTime.Year())*12 + int(tTime.Month()) - int(eTime.Month())

	year, month, day := tTime.Date()

	switch {
	case isJustBeforeMonthEnd(tTime):
		// t is within the first half of a possible smear period, which
		// ends at noon on the following day, the first of a new month.
		leaps++
		if month == time.December {
			neg.utc = noonUtc(year+1, time.January, 1)
		} else {
			neg.utc = noonUtc(year, month+1, 1)
		}
		neg.smear = -1
		pos.smear = +1
	case day == 1 && tTime.Hour() < smearRadiusHours:
		// t is within the second half of a possible smear period, which
		// ends at noon on the current day.
		neg.utc = noonUtc(year, month, day)
		neg.smear = -1
		pos.smear = +1
	default:
		// t is not within a smear period, so the hypothetical expiration
		// can sit at noon on the following day.
		neg.utc = noonUtc(year, month, day+1)
		neg.smear = 0
		pos.smear = 0
	}
	elapsed := neg.utc.Sub(e.utc)
	neg.tai = e.tai.Add(elapsed).Add(Seconds(int64(-leaps)))
	pos.utc = neg.utc
	pos.tai = e.tai.Add(elapsed).Add(Seconds(int64(leaps)))
	return neg, pos
}

// Unsmear converts a smeared UTC time to TAI.  It reports false if utc is
// before the modern UTC epoch or after the table expiration.  Infinities
// convert to the same-signed TAI infinity.
func (lt *LeapTable) Unsmear(utc UtcTime) (TaiTime, bool) {
	iv := lt.FutureProofUnsmear(utc)
	if iv.Lo != iv.Hi {
		return TaiTime{}, false
	}
	return iv.Lo, true
}

// UnsmearToGps converts a smeared UTC time to GPST.  It reports false if
// utc is before the GPS epoch or after the table expiration.
func (lt *LeapTable) UnsmearToGps(utc UtcTime) (GpsTime, bool) {
	iv := lt.FutureProofUnsmearToGps(utc)
	if iv.Lo != iv.Hi {
		return GpsTime{}, false
	}
	return iv.Lo, true
}

// SmearTai converts a TAI time to smeared UTC.  It reports false if t is
// before the TAI time of the modern UTC epoch or after the table
// expiration.
func (lt *LeapTable) SmearTai(t TaiTime) (UtcTime, bool) {
	iv := lt.FutureProofSmearTai(t)
	if iv.Lo != iv.Hi {
		return UtcTime{}, false
	}
	return iv.Lo, true
}

// SmearGps converts a GPST time to smeared UTC.  It reports false if t is
// before the GPS epoch or after the table expiration.
func (lt *LeapTable) SmearGps(t GpsTime) (UtcTime, bool) {
	iv := lt.FutureProofSmearGps(t)
	if iv.Lo != iv.Hi {
		return UtcTime{}, false
	}
	return iv.Lo, true
}

// FutureProofUnsmear returns the earliest and latest possible TAI times for
// a smeared UTC time.  Within the table's validity range the endpoints are
// equal.  Past the expiration the interval covers every hypothetical
// continuation of the table; before the modern UTC epoch it is unbounded.
func (lt *LeapTable) FutureProofUnsmear(utc UtcTime) Interval[TaiTime] {
	if utc == UtcInfiniteFuture() {
		return Interval[TaiTime]{TaiInfiniteFuture(), TaiInfiniteFuture()}
	}
	if utc == UtcInfinitePast() {
		return Interval[TaiTime]{TaiInfinitePast(), TaiInfinitePast()}
	}

	expiration := lt.entries[0]
	if !expiration.utc.Before(utc) {
		i := 1
		for ; i < len(lt.entries); i++ {
			if !utc.Before(lt.entries[i].utc) {
				break
			}
		}
		if i == len(lt.entries) {
			// We ran past the smear epoch; the time is not convertible.
			return Interval[TaiTime]{TaiInfinitePast(), TaiInfiniteFuture()}
		}
		unsmeared := interpolateTai(lt.entries[i-1], utc)
		return Interval[TaiTime]{unsmeared, unsmeared}
	}

	neg, pos := advance(expiration, utc)
	return Interval[TaiTime]{interpolateTai(neg, utc), interpolateTai(pos, utc)}
}

// FutureProofUnsmearToGps returns the earliest and latest possible GPST
// times for a smeared UTC time.
func (lt *LeapTable) FutureProofUnsmearToGps(utc UtcTime) Interval[GpsTime] {
	if utc == UtcInfiniteFuture() {
		return Interval[GpsTime]{GpsInfiniteFuture(), GpsInfiniteFuture()}
	}
	if utc == UtcInfinitePast() {
		return Interval[GpsTime]{GpsInfinitePast(), GpsInfinitePast()}
	}
	unsmeared := lt.FutureProofUnsmear(utc)
	if unsmeared.Lo.Before(ToTaiTime(GpsEpoch())) {
		// It is not valid to unsmear times before the GPST epoch.
		return Interval[GpsTime]{GpsInfinitePast(), GpsInfiniteFuture()}
	}
	// GPST can always be converted to TAI.
	return Interval[GpsTime]{ToGpsTime(unsmeared.Lo), ToGpsTime(unsmeared.Hi)}
}

// FutureProofSmearTai returns the earliest and latest possible smeared UTC
// times for a TAI time.
func (lt *LeapTable) FutureProofSmearTai(t TaiTime) Interval[UtcTime] {
	if t == TaiInfiniteFuture() {
		return Interval[UtcTime]{UtcInfiniteFuture(), UtcInfiniteFuture()}
	}
	if t == TaiInfinitePast() {
		return Interval[UtcTime]{UtcInfinitePast(), UtcInfinitePast()}
	}
	// Times before the timescale's own epoch cannot be converted.
	if t.Before(TaiEpoch()) {
		return Interval[UtcTime]{UtcInfinitePast(), UtcInfiniteFuture()}
	}
	return lt.futureProofSmear(t)
}

// FutureProofSmearGps returns the earliest and latest possible smeared UTC
// times for a GPST time.
func (lt *LeapTable) FutureProofSmearGps(t GpsTime) Interval[UtcTime] {
	if t == GpsInfiniteFuture() {
		return Interval[UtcTime]{UtcInfiniteFuture(), UtcInfiniteFuture()}
	}
	if t == GpsInfinitePast() {
		return Interval[UtcTime]{UtcInfinitePast(), UtcInfinitePast()}
	}
	// Times before the timescale's own epoch cannot be converted.
	if t.Before(GpsEpoch()) {
		return Interval[UtcTime]{UtcInfinitePast(), UtcInfiniteFuture()}
	}
	return lt.futureProofSmear(ToTaiTime(t))
}

func (lt *LeapTable) futureProofSmear(tai TaiTime) Interval[UtcTime] {
	expiration := lt.entries[0]
	if !expiration.tai.Before(tai) {
		i := 1
		for ; i < len(lt.entries); i++ {
			if !tai.Before(lt.entries[i].tai) {
				break
			}
		}
		if i == len(lt.entries) {
			// We ran past the smear epoch; the time is not convertible.
			return Interval[UtcTime]{UtcInfinitePast(), UtcInfiniteFuture()}
		}
		smeared := interpolateUtc(lt.entries[i-1], tai)
		return Interval[UtcTime]{smeared, smeared}
	}

	// Advance by the TAI displacement from the expiration; the boundary
	// month count then matches the unsmear direction and the interval
	// stays symmetric.
	neg, pos := advance(expiration, expiration.utc.Add(tai.Sub(expiration.tai)))
	return Interval[UtcTime]{interpolateUtc(pos, tai), interpolateUtc(neg, tai)}
}
