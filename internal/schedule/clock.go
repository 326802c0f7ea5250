package schedule

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MinutesPerDay is the normalization span for overnight segments.
const MinutesPerDay = 24 * 60

// ClockTime is a time of day expressed in minutes since midnight.
type ClockTime int

// ParseClock parses a 24h "HH:MM" string.
func ParseClock(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:MM: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
	}
	return ClockTime(h*60 + m), nil
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t ClockTime) Minutes() int {
	return int(t)
}

var sixty = decimal.NewFromInt(60)

// HoursFromMinutes converts a minute count into hours rounded to one
// decimal place, half away from zero.
func HoursFromMinutes(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(sixty).Round(1)
}
