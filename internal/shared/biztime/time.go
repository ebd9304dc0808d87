// Package biztime centralizes time handling. All storage and transport use
// UTC; implicit Local timezone is prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Epoch returns the current Unix timestamp in seconds.
func Epoch() int64 {
	return NowUTC().Unix()
}
