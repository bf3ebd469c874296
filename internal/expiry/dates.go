package expiry

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the textual expiration date format used across the stored
// data and the API boundary (dd/mm/yyyy). It must not change: existing rows
// round-trip through it.
const DateLayout = "02/01/2006"

// ParseDate parses a dd/mm/yyyy expiration date. A malformed value is not an
// error: it reports ok=false and the caller treats the item as having no
// alert-relevant date at all.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a time back into the dd/mm/yyyy boundary format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// startOfDay returns midnight of t's calendar day in loc. All day arithmetic
// here rebuilds both sides at midnight in the reference location, so neither
// the time-of-day component of "now" nor the zone a date was parsed in can
// shift an item across a bucket edge. time.Parse yields UTC; ref is usually
// local.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DaysBetween returns the signed whole-day distance from ref to the parsed
// expiration date; positive means the date is in the future. An unparseable
// date yields 0, which conflates "no date" with "expires today". Callers that
// must tell the two apart parse the string themselves.
func DaysBetween(expirationDate string, ref time.Time) int {
	date, ok := ParseDate(expirationDate)
	if !ok {
		return 0
	}
	diff := startOfDay(date, ref.Location()).Sub(startOfDay(ref, ref.Location()))
	// Midnight-to-midnight spans are 23 or 25 hours across DST transitions;
	// rounding lands them on the right day count.
	return int(math.Round(diff.Hours() / 24))
}

// IsExpired reports whether the expiration date lies strictly before the
// start of ref's day. Day granularity only: an item expiring today is not
// expired, regardless of the current time of day.
func IsExpired(expirationDate string, ref time.Time) bool {
	date, ok := ParseDate(expirationDate)
	if !ok {
		return false
	}
	return startOfDay(date, ref.Location()).Before(startOfDay(ref, ref.Location()))
}

// IsExpiringSoon reports whether the expiration date falls within
// [today, today+windowDays], inclusive on both ends.
func IsExpiringSoon(expirationDate string, windowDays int, ref time.Time) bool {
	date, ok := ParseDate(expirationDate)
	if !ok {
		return false
	}
	day := startOfDay(date, ref.Location())
	today := startOfDay(ref, ref.Location())
	threshold := today.AddDate(0, 0, windowDays)
	return !day.Before(today) && !day.After(threshold)
}

// IsExpiringToday reports an exact day match. It parses independently of
// DaysBetween so that an unparseable date never lands in the today bucket.
func IsExpiringToday(expirationDate string, ref time.Time) bool {
	date, ok := ParseDate(expirationDate)
	if !ok {
		return false
	}
	return startOfDay(date, ref.Location()).Equal(startOfDay(ref, ref.Location()))
}

// IsExpiringIn1To3Days reports whether the item expires in one to three days.
func IsExpiringIn1To3Days(expirationDate string, ref time.Time) bool {
	days := DaysBetween(expirationDate, ref)
	return days >= 1 && days <= 3
}

// IsExpiringIn4To7Days reports whether the item expires in four to seven days.
func IsExpiringIn4To7Days(expirationDate string, ref time.Time) bool {
	days := DaysBetween(expirationDate, ref)
	return days >= 4 && days <= 7
}

// FormatDaysUntil renders a signed day distance as display text.
func FormatDaysUntil(days int) string {
	switch {
	case days > 1:
		return fmt.Sprintf("Expires in %d days", days)
	case days == 1:
		return "Expires tomorrow"
	case days == 0:
		return "Expires today"
	case days == -1:
		return "Expired yesterday"
	default:
		return fmt.Sprintf("Expired %d days ago", -days)
	}
}
