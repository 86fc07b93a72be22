// Package biztime provides time utilities for the payment subsystem.
// All storage and transport use UTC; implicit Local timezone is
// prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatMetadataTime formats a UTC time for transport and metadata
// storage using RFC3339 format.
func FormatMetadataTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
