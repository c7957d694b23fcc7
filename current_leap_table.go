package smear

import (
	"fmt"
	"sync"

	"github.com/holoplot/go-smear/leaptablepb"
)

// CurrentLeapTableProto returns a catalog of all leap seconds announced by
// the IERS, with the table horizon at the last month end covered by a
// published Bulletin C.
func CurrentLeapTableProto() *leaptablepb.LeapTableProto {
	return &leaptablepb.LeapTableProto{
		PositiveLeaps: []int32{
			2441499, // 1972-06-30
			2441683, // 1972-12-31
			2442048, // 1973-12-31
			2442413, // 1974-12-31
			2442778, // 1975-12-31
			2443144, // 1976-12-31
			2443509, // 1977-12-31
			2443874, // 1978-12-31
			2444239, // 1979-12-31
			2444786, // 1981-06-30
			2445151, // 1982-06-30
			2445516, // 1983-06-30
			2446247, // 1985-06-30
			2447161, // 1987-12-31
			2447892, // 1989-12-31
			2448257, // 1990-12-31
			2448804, // 1992-06-30
			2449169, // 1993-06-30
			2449534, // 1994-06-30
			2450083, // 1995-12-31
			2450630, // 1997-06-30
			2451179, // 1998-12-31
			2453736, // 2005-12-31
			2454832, // 2008-12-31
			2456109, // 2012-06-30
			2457204, // 2015-06-30
			2457754, // 2016-12-31
		},
		EndJdn: 2461040, // table valid through 2025-12-31 12:00:00 UTC
	}
}

var currentLeapTable = sync.OnceValue(func() *LeapTable {
	lt, err := NewLeapTableFromProto(CurrentLeapTableProto())
	if err != nil {
		panic(fmt.Sprintf("smear: embedded leap table is invalid: %v", err))
	}
	return lt
})

// CurrentLeapTable returns the leap table built from
// CurrentLeapTableProto.  The table is built once and shared; it is
// immutable and safe for concurrent use.
func CurrentLeapTable() *LeapTable {
	return currentLeapTable()
}
