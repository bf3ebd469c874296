package expiry

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParseDateRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("formatted dates parse back to the same day", prop.ForAll(
		func(offset int) bool {
			day := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
			formatted := FormatDate(day)

			parsed, ok := ParseDate(formatted)
			if !ok {
				return false
			}
			return FormatDate(parsed) == formatted
		},
		gen.IntRange(0, 10000),
	))

	properties.TestingRun(t)
}

func TestParseDateMalformed(t *testing.T) {
	cases := []string{
		"",
		"not a date",
		"2025-12-31",
		"31/12",
		"32/01/2025",
		"12/31/2025",
	}

	for _, input := range cases {
		if _, ok := ParseDate(input); ok {
			t.Errorf("ParseDate(%q) should not parse", input)
		}
		if days := DaysBetween(input, time.Now()); days != 0 {
			t.Errorf("DaysBetween(%q) = %d, want 0", input, days)
		}
		if IsExpired(input, time.Now()) {
			t.Errorf("IsExpired(%q) should be false", input)
		}
		if IsExpiringToday(input, time.Now()) {
			t.Errorf("IsExpiringToday(%q) should be false", input)
		}
		if IsExpiringSoon(input, 7, time.Now()) {
			t.Errorf("IsExpiringSoon(%q) should be false", input)
		}
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("day distance is stable across reference time of day and zone", prop.ForAll(
		func(offset int, hour int, minute int, zoneOffsetHours int) bool {
			loc := time.FixedZone("test", zoneOffsetHours*3600)
			ref := time.Date(2025, 6, 15, hour, minute, 0, 0, loc)
			date := FormatDate(ref.AddDate(0, 0, offset))
			return DaysBetween(date, ref) == offset
		},
		gen.IntRange(-365, 365),
		gen.IntRange(0, 23),
		gen.IntRange(0, 59),
		gen.IntRange(-12, 14),
	))

	properties.TestingRun(t)
}

func TestTodayClassificationInNonUTCZones(t *testing.T) {
	// Dates parse as UTC midnights while the reference clock runs in the
	// host's zone; classification must not depend on which zone that is.
	zones := []struct {
		name string
		loc  *time.Location
	}{
		{"UTC", time.UTC},
		{"UTC-5", time.FixedZone("UTC-5", -5 * 3600)},
		{"UTC+2", time.FixedZone("UTC+2", 2 * 3600)},
		{"UTC+13", time.FixedZone("UTC+13", 13 * 3600)},
	}

	for _, zone := range zones {
		t.Run(zone.name, func(t *testing.T) {
			for _, hour := range []int{0, 11, 23} {
				ref := time.Date(2025, 6, 15, hour, 30, 0, 0, zone.loc)
				today := FormatDate(ref)
				tomorrow := FormatDate(ref.AddDate(0, 0, 1))
				yesterday := FormatDate(ref.AddDate(0, 0, -1))

				if IsExpired(today, ref) {
					t.Errorf("hour %d: item expiring today reported as expired", hour)
				}
				if !IsExpiringToday(today, ref) {
					t.Errorf("hour %d: item expiring today not in today bucket", hour)
				}
				if !IsExpiringSoon(today, 7, ref) {
					t.Errorf("hour %d: item expiring today not expiring soon", hour)
				}
				if got := DaysBetween(today, ref); got != 0 {
					t.Errorf("hour %d: DaysBetween(today) = %d, want 0", hour, got)
				}
				if got := DaysBetween(tomorrow, ref); got != 1 {
					t.Errorf("hour %d: DaysBetween(tomorrow) = %d, want 1", hour, got)
				}
				if !IsExpired(yesterday, ref) {
					t.Errorf("hour %d: item expired yesterday not reported as expired", hour)
				}
			}
		})
	}
}

func TestExpiryBoundaries(t *testing.T) {
	ref := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		offset      int
		expired     bool
		today       bool
		in1To3      bool
		in4To7      bool
		soonWithin7 bool
	}{
		{"yesterday", -1, true, false, false, false, false},
		{"today", 0, false, true, false, false, true},
		{"tomorrow", 1, false, false, true, false, true},
		{"in three days", 3, false, false, true, false, true},
		{"in four days", 4, false, false, false, true, true},
		{"in seven days", 7, false, false, false, true, true},
		{"in eight days", 8, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date := FormatDate(ref.AddDate(0, 0, tt.offset))

			if got := IsExpired(date, ref); got != tt.expired {
				t.Errorf("IsExpired = %v, want %v", got, tt.expired)
			}
			if got := IsExpiringToday(date, ref); got != tt.today {
				t.Errorf("IsExpiringToday = %v, want %v", got, tt.today)
			}
			if got := IsExpiringIn1To3Days(date, ref); got != tt.in1To3 {
				t.Errorf("IsExpiringIn1To3Days = %v, want %v", got, tt.in1To3)
			}
			if got := IsExpiringIn4To7Days(date, ref); got != tt.in4To7 {
				t.Errorf("IsExpiringIn4To7Days = %v, want %v", got, tt.in4To7)
			}
			if got := IsExpiringSoon(date, 7, ref); got != tt.soonWithin7 {
				t.Errorf("IsExpiringSoon = %v, want %v", got, tt.soonWithin7)
			}
		})
	}
}

func TestIsExpiringSoonWindowMonotonic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("widening the window never drops an item", prop.ForAll(
		func(offset int, window int) bool {
			ref := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
			date := FormatDate(ref.AddDate(0, 0, offset))

			if IsExpiringSoon(date, window, ref) {
				return IsExpiringSoon(date, window+1, ref)
			}
			return true
		},
		gen.IntRange(-30, 30),
		gen.IntRange(0, 30),
	))

	properties.TestingRun(t)
}

func TestFormatDaysUntil(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{5, "Expires in 5 days"},
		{1, "Expires tomorrow"},
		{0, "Expires today"},
		{-1, "Expired yesterday"},
		{-4, "Expired 4 days ago"},
	}

	for _, tt := range tests {
		if got := FormatDaysUntil(tt.days); got != tt.want {
			t.Errorf("FormatDaysUntil(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}
