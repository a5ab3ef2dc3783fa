package state

import (
	"strconv"
	"time"
)

// TimestampIDs returns a generator of millisecond-timestamp ids. Two calls
// within the same millisecond yield consecutive values instead of a
// duplicate.
func TimestampIDs(now func() time.Time) func() string {
	if now == nil {
		now = time.Now
	}
	var last int64
	return func() string {
		ms := now().UnixMilli()
		if ms <= last {
			ms = last + 1
		}
		last = ms
		return strconv.FormatInt(ms, 10)
	}
}
