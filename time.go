package smear

import "time"

// TaiTime is an instant of International Atomic Time, counted in SI seconds
// from the TAI epoch of 1958-01-01 00:00:00 TAI.  The zero value is the
// epoch itself.  TaiTime is comparable with ==.
type TaiTime struct {
	rep Duration
}

// GpsTime is an instant of GPS Time, counted in SI seconds from the GPS
// epoch of 1980-01-06 00:00:00 GPST.  The zero value is the epoch itself.
// GpsTime is comparable with ==.
type GpsTime struct {
	rep Duration
}

// UtcTime is an instant of smeared civil time, counted in smeared seconds
// from the Unix epoch.  Leap seconds never appear on this timescale; they
// are absorbed by 24-hour smear windows.  UtcTime is comparable with ==.
type UtcTime struct {
	rep Duration
}

// gpsTaiOffset is the TAI time of the GPS epoch: 8,040 days after the TAI
// epoch, plus the 10 seconds of TAI-UTC at the start of modern UTC and the
// 9 leap seconds inserted before 1980.
var gpsTaiOffset = Seconds(8040*86400 + 19)

// TaiEpoch returns 1958-01-01 00:00:00 TAI.
func TaiEpoch() TaiTime { return TaiTime{} }

// GpsEpoch returns 1980-01-06 00:00:00 GPST.
func GpsEpoch() GpsTime { return GpsTime{} }

// TaiGpsEpoch returns the GPS epoch on the TAI timescale,
// 1980-01-06 00:00:19 TAI.
func TaiGpsEpoch() TaiTime { return TaiTime{gpsTaiOffset} }

// UtcGpsEpoch returns the GPS epoch on the UTC timescale,
// 1980-01-06 00:00:00 UTC.
func UtcGpsEpoch() UtcTime { return UtcTime{Seconds(315964800)} }

// ModernUtcEpoch returns 1972-01-01 00:00:00 UTC, the start of modern UTC
// and the earliest unsmearable time.  UTC was redefined at that point with a
// 107.758 ms discontinuity; conversions before it are infeasible.
func ModernUtcEpoch() UtcTime { return UtcTime{Seconds(63072000)} }

// TaiModernUtcEpoch returns the modern UTC epoch on the TAI timescale,
// 1972-01-01 00:00:10 TAI.
func TaiModernUtcEpoch() TaiTime { return TaiTime{Seconds(5113*86400 + 10)} }

// Infinite pseudo-times.

// TaiInfiniteFuture returns a TaiTime later than any finite TaiTime.
func TaiInfiniteFuture() TaiTime { return TaiTime{InfiniteDuration()} }

// TaiInfinitePast returns a TaiTime earlier than any finite TaiTime.
func TaiInfinitePast() TaiTime { return TaiTime{negInfiniteDuration()} }

// GpsInfiniteFuture returns a GpsTime later than any finite GpsTime.
func GpsInfiniteFuture() GpsTime { return GpsTime{InfiniteDuration()} }

// GpsInfinitePast returns a GpsTime earlier than any finite GpsTime.
func GpsInfinitePast() GpsTime { return GpsTime{negInfiniteDuration()} }

// UtcInfiniteFuture returns a UtcTime later than any finite UtcTime.
func UtcInfiniteFuture() UtcTime { return UtcTime{InfiniteDuration()} }

// UtcInfinitePast returns a UtcTime earlier than any finite UtcTime.
func UtcInfinitePast() UtcTime { return UtcTime{negInfiniteDuration()} }

// TaiTime arithmetic.

// Add returns t + d, saturating at the infinities.
func (t TaiTime) Add(d Duration) TaiTime { return TaiTime{t.rep.Add(d)} }

// Sub returns the duration t - u.
func (t TaiTime) Sub(u TaiTime) Duration { return t.rep.Sub(u.rep) }

// Before reports whether t is earlier than u.
func (t TaiTime) Before(u TaiTime) bool { return t.rep.Less(u.rep) }

// After reports whether t is later than u.
func (t TaiTime) After(u TaiTime) bool { return u.rep.Less(t.rep) }

// Equal reports whether t and u are the same instant.
func (t TaiTime) Equal(u TaiTime) bool { return t == u }

// IsInfinite reports whether t is an infinite pseudo-time.
func (t TaiTime) IsInfinite() bool { return t.rep.IsInfinite() }

// GpsTime arithmetic.

// Add returns t + d, saturating at the infinities.
func (t GpsTime) Add(d Duration) GpsTime { return GpsTime{t.rep.Add(d)} }

// Sub returns the duration t - u.
func (t GpsTime) Sub(u GpsTime) Duration { return t.rep.Sub(u.rep) }

// Before reports whether t is earlier than u.
func (t GpsTime) Before(u GpsTime) bool { return t.rep.Less(u.rep) }

// After reports whether t is later than u.
func (t GpsTime) After(u GpsTime) bool { return u.rep.Less(t.rep) }

// Equal reports whether t and u are the same instant.
func (t GpsTime) Equal(u GpsTime) bool { return t == u }

// IsInfinite reports whether t is an infinite pseudo-time.
func (t GpsTime) IsInfinite() bool { return t.rep.IsInfinite() }

// UtcTime arithmetic.

// Add returns t + d, saturating at the infinities.
func (t UtcTime) Add(d Duration) UtcTime { return UtcTime{t.rep.Add(d)} }

// Sub returns the duration t - u.
func (t UtcTime) Sub(u UtcTime) Duration { return t.rep.Sub(u.rep) }

// Before reports whether t is earlier than u.
func (t UtcTime) Before(u UtcTime) bool { return t.rep.Less(u.rep) }

// After reports whether t is later than u.
func (t UtcTime) After(u UtcTime) bool { return u.rep.Less(t.rep) }

// Equal reports whether t and u are the same instant.
func (t UtcTime) Equal(u UtcTime) bool { return t == u }

// IsInfinite reports whether t is an infinite pseudo-time.
func (t UtcTime) IsInfinite() bool { return t.rep.IsInfinite() }

// UtcFromTime converts a time.Time to a UtcTime.
func UtcFromTime(t time.Time) UtcTime {
	return UtcTime{Seconds(t.Unix()).Add(Nanoseconds(int64(t.Nanosecond())))}
}

// Time converts a finite UtcTime to a time.Time in the UTC location,
// truncating any sub-nanosecond part.
func (t UtcTime) Time() time.Time {
	return time.Unix(t.rep.secs, int64(t.rep.lo/ticksPerNanosecond)).UTC()
}

// Conversions between the TAI-based timescales.  These are pure constant
// offsets and need no leap table.  Infinities map to the infinity of the
// target timescale with the same sign.

// ToTaiTime converts a GpsTime to the TAI timescale.
func ToTaiTime(t GpsTime) TaiTime { return TaiTime{gpsTaiOffset.Add(t.rep)} }

// ToGpsTime converts a TaiTime to the GPST timescale.
func ToGpsTime(t TaiTime) GpsTime { return GpsTime{t.rep.Sub(gpsTaiOffset)} }

// JdnToTime returns noon UTC of the day with the given Julian Day Number.
// The Unix epoch is JDN 2440587.5.
func JdnToTime(jdn int32) UtcTime {
	return UtcTime{Seconds((int64(jdn)-2440588)*86400 + 43200)}
}

// timeToJdn returns the JDN of a UtcTime at UTC noon.
func timeToJdn(t UtcTime) int32 {
	return int32((t.rep.secs-43200)/86400 + 2440588)
}
