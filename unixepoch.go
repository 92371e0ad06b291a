package display

import (
	"fmt"
	"strconv"
	"time"
)

// maxUnixMilli is 9999-12-31T23:59:59.999Z, the last instant renderable with
// a four-digit ISO-8601 year.
const maxUnixMilli = 253402300799999

// Timestamp renders a millisecond Unix timestamp as an ISO-8601 UTC
// datetime. The default form carries a six-digit fraction and an explicit
// offset suffix:
//
//	display.UnixMilli(1723102819023) // 2024-08-08T07:40:19.023000Z+0000
//
// The conversion is pure calendar arithmetic on UTC; no timezone database is
// consulted. Inputs before the epoch or past the year 9999 render the
// fallback "Invalid(<ms>ms)" and fail MarshalText with [ErrOutOfRange].
type Timestamp struct {
	ms         int64
	inMillis   bool
	noTimezone bool
}

// UnixMilli wraps a count of milliseconds since 1970-01-01T00:00:00Z.
func UnixMilli(ms int64) Timestamp {
	return Timestamp{ms: ms}
}

// InMillis selects a three-digit (millisecond) fraction instead of the
// default six-digit (microsecond) one.
func (t Timestamp) InMillis(inMillis bool) Timestamp {
	t.inMillis = inMillis
	return t
}

// WithTimezone controls the Z+0000 offset suffix. Default on.
func (t Timestamp) WithTimezone(withTimezone bool) Timestamp {
	t.noTimezone = !withTimezone
	return t
}

// Short is the compact form: millisecond fraction, no offset suffix.
//
//	display.UnixMilli(1723102819023).Short() // 2024-08-08T07:40:19.023
func (t Timestamp) Short() Timestamp {
	return t.InMillis(true).WithTimezone(false)
}

// String implements fmt.Stringer. Out-of-range inputs render
// "Invalid(<ms>ms)" rather than a silently wrong date.
func (t Timestamp) String() string {
	if !t.valid() {
		return "Invalid(" + strconv.FormatInt(t.ms, 10) + "ms)"
	}
	return time.UnixMilli(t.ms).UTC().Format(t.layout())
}

// MarshalText implements encoding.TextMarshaler. It fails with
// [ErrOutOfRange] for inputs before the epoch or past the year 9999.
func (t Timestamp) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %dms", ErrOutOfRange, t.ms)
	}
	return []byte(t.String()), nil
}

func (t Timestamp) valid() bool {
	return t.ms >= 0 && t.ms <= maxUnixMilli
}

// The 'Z' before the offset is a literal: Go's Z0700 layout collapses UTC to
// a bare Z, but these strings always carry the digits, as Z+0000.
func (t Timestamp) layout() string {
	if t.inMillis {
		if t.noTimezone {
			return "2006-01-02T15:04:05.000"
		}
		return "2006-01-02T15:04:05.000Z-0700"
	}
	if t.noTimezone {
		return "2006-01-02T15:04:05.000000"
	}
	return "2006-01-02T15:04:05.000000Z-0700"
}
