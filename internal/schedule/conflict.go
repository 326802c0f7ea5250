package schedule

import "time"

// AvailabilityType grades how blocked a period is.
type AvailabilityType string

const (
	AvailabilityUnavailable AvailabilityType = "UNAVAILABLE"
	AvailabilityLimited     AvailabilityType = "LIMITED"
)

// Recurrence describes how often an availability period applies.
type Recurrence string

const (
	RecurrenceOnce    Recurrence = "ONCE"
	RecurrenceWeekly  Recurrence = "WEEKLY"
	RecurrenceMonthly Recurrence = "MONTHLY"
)

// AvailabilityPeriod is a declared block of employee unavailability, either
// recurring on a weekday or pinned to an explicit date.
type AvailabilityPeriod struct {
	EmployeeID string
	DayOfWeek  *int // 0=Monday..6, for recurring periods
	Date       *time.Time
	Type       AvailabilityType
	Start      ClockTime
	End        ClockTime
	Recurrence Recurrence
}

// PreferenceSet is an employee's soft scheduling wishes.
type PreferenceSet struct {
	PreferredDays      []int
	PreferredPositions []string
}

// ConflictKind identifies the rule a segment clashes with.
type ConflictKind string

const (
	ConflictUnavailable        ConflictKind = "AVAILABILITY_UNAVAILABLE"
	ConflictLimited            ConflictKind = "AVAILABILITY_LIMITED"
	ConflictDayPreference      ConflictKind = "DAY_PREFERENCE"
	ConflictPositionPreference ConflictKind = "POSITION_PREFERENCE"
)

// Severity orders conflicts for display. Conflicts never block a mutation.
type Severity string

const (
	SeverityHigh Severity = "HIGH"
	SeverityLow  Severity = "LOW"
)

// ConflictFlag is an advisory marker on one worked segment.
type ConflictFlag struct {
	Day       int
	SegmentID string
	Kind      ConflictKind
	Severity  Severity
}

// DetectConflicts compares every worked segment against the employee's
// availability periods and preference set. Output order follows the input
// plans, so identical inputs yield identical output.
func DetectConflicts(weekStart time.Time, plans []DayPlan, availability []AvailabilityPeriod, prefs *PreferenceSet) []ConflictFlag {
	var flags []ConflictFlag
	week := dateOnly(weekStart)

	for _, plan := range plans {
		date := week.AddDate(0, 0, plan.Day)

		for _, seg := range plan.Segments {
			for _, period := range availability {
				if !periodApplies(period, plan.Day, date) {
					continue
				}
				if !intervalsIntersect(seg, period) {
					continue
				}
				kind, severity := ConflictUnavailable, SeverityHigh
				if period.Type == AvailabilityLimited {
					kind, severity = ConflictLimited, SeverityLow
				}
				flags = append(flags, ConflictFlag{
					Day:       plan.Day,
					SegmentID: seg.ID,
					Kind:      kind,
					Severity:  severity,
				})
			}

			if prefs == nil {
				continue
			}
			if len(prefs.PreferredDays) > 0 && !containsInt(prefs.PreferredDays, plan.Day) {
				flags = append(flags, ConflictFlag{
					Day:       plan.Day,
					SegmentID: seg.ID,
					Kind:      ConflictDayPreference,
					Severity:  SeverityLow,
				})
			}
			if len(prefs.PreferredPositions) > 0 && seg.Position != "" &&
				!containsString(prefs.PreferredPositions, seg.Position) {
				flags = append(flags, ConflictFlag{
					Day:       plan.Day,
					SegmentID: seg.ID,
					Kind:      ConflictPositionPreference,
					Severity:  SeverityLow,
				})
			}
		}
	}

	return flags
}

func periodApplies(p AvailabilityPeriod, day int, date time.Time) bool {
	switch p.Recurrence {
	case RecurrenceOnce:
		return p.Date != nil && dateOnly(*p.Date).Equal(date)
	case RecurrenceWeekly:
		return p.DayOfWeek != nil && *p.DayOfWeek == day
	case RecurrenceMonthly:
		// recurs on the anchor date's day of month
		return p.Date != nil && p.Date.Day() == date.Day()
	}
	return false
}

// intervalsIntersect applies the half-open [start, end) overlap test, with
// both sides normalized for overnight ranges. An overnight segment is only
// matched against its own day's periods; the part past midnight is not
// re-tested against the following day.
func intervalsIntersect(seg Segment, p AvailabilityPeriod) bool {
	segStart := seg.Start.Minutes()
	segEnd := segStart + seg.DurationMinutes

	pStart := p.Start.Minutes()
	pEnd := p.End.Minutes()
	if pEnd < pStart {
		pEnd += MinutesPerDay
	}

	return segStart < pEnd && pStart < segEnd
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func containsString(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
