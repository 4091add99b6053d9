// Package utils provides utility functions for the application.
package utils

import (
	"time"
)

// ListingTimezone is the fixed local timezone campaign deadlines are
// interpreted in. A deadline dated "today" stays visible until local
// midnight, regardless of the server's own timezone.
const ListingTimezone = "Asia/Seoul"

var listingLocation = mustLoadLocation(ListingTimezone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// Asia/Seoul has a fixed +09:00 offset and no DST transitions,
		// so a zoneinfo-less container computes the same local day.
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// UTCNow returns the current time in UTC
func UTCNow() time.Time {
	return time.Now().UTC()
}

// UTCNowPtr returns a pointer to the current time in UTC
func UTCNowPtr() *time.Time {
	now := UTCNow()
	return &now
}

// KSTNow returns the current time in the listing timezone
func KSTNow() time.Time {
	return time.Now().In(listingLocation)
}

// StartOfTodayKST returns local midnight of the current day in the
// listing timezone. The mandatory active-window clause compares
// apply_deadline against this instant.
func StartOfTodayKST() time.Time {
	now := KSTNow()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, listingLocation)
}

// ParseKST parses an RFC3339 timestamp or a bare date (2006-01-02),
// interpreting zone-less input in the listing timezone.
func ParseKST(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, listingLocation)
}

// IsExpired checks if the given time is in the past (expired)
func IsExpired(t time.Time) bool {
	return UTCNow().After(t)
}

// IsExpiredPtr checks if the given time pointer is in the past (expired)
func IsExpiredPtr(t *time.Time) bool {
	if t == nil {
		return false
	}
	return IsExpired(*t)
}
