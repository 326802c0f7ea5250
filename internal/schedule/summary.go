package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

var five = decimal.NewFromInt(5)

// DayInput is the raw record set of one day of the week.
type DayInput struct {
	Day     int
	Records []Record
}

// WeekInput is everything the aggregator needs for one employee-week. It is
// a plain value; two identical inputs always produce identical summaries.
type WeekInput struct {
	EmployeeID        string
	WeekStart         time.Time // Monday
	ContractStart     time.Time
	ContractEnd       *time.Time
	WeeklyHoursTarget decimal.Decimal
	PayBreakTimes     bool
	Days              []DayInput
}

// WeeklySummary is the derived weekly accounting for one employee. It is
// never persisted; callers recompute it after every mutation.
type WeeklySummary struct {
	TotalWorkedHours        decimal.Decimal
	TotalAssimilatedHours   decimal.Decimal
	TotalPublicHolidayHours decimal.Decimal
	ProRatedContractHours   decimal.Decimal
	HoursDiff               decimal.Decimal
	ShiftCount              int
}

// ResolveWeek resolves every provided day of the week, failing on the first
// structural error.
func ResolveWeek(days []DayInput) ([]DayPlan, error) {
	plans := make([]DayPlan, 0, len(days))
	for _, d := range days {
		plan, err := ResolveDay(d.Day, d.Records)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// Summarize aggregates resolved day plans into the weekly totals.
//
// Worked hours are the sum of segment durations; coupure break time is
// added only when the employer pays breaks. Paid leave credits one fifth of
// the weekly target per day as assimilated hours, reported separately from
// worked hours. A worked public holiday counts in the worked total once and
// is additionally reported in the premium-eligible total. Rest, sickness,
// accident and absence days contribute nothing.
func Summarize(in WeekInput, plans []DayPlan) WeeklySummary {
	window := ContractWindow(in.ContractStart, in.ContractEnd, in.WeekStart)
	proRated := ProRatedHours(in.WeeklyHoursTarget, window)

	workedMinutes := 0
	holidayMinutes := 0
	assimilated := decimal.Zero
	shiftCount := 0

	for _, plan := range plans {
		workedMinutes += plan.WorkedMinutes()
		if in.PayBreakTimes && plan.HasCoupure {
			workedMinutes += plan.BreakMinutes
		}

		for _, seg := range plan.Segments {
			if seg.HolidayWorked {
				holidayMinutes += seg.DurationMinutes
			}
		}

		shiftCount += countGroups(plan.Segments)

		paidLeaveCredited := false
		for _, st := range plan.Statuses {
			if st.Code.Accounting() == AccountsAssimilated && !paidLeaveCredited {
				assimilated = assimilated.Add(in.WeeklyHoursTarget.Div(five))
				paidLeaveCredited = true
			}
		}
	}

	worked := HoursFromMinutes(workedMinutes)

	return WeeklySummary{
		TotalWorkedHours:        worked,
		TotalAssimilatedHours:   assimilated.Round(1),
		TotalPublicHolidayHours: HoursFromMinutes(holidayMinutes),
		ProRatedContractHours:   proRated,
		HoursDiff:               worked.Sub(proRated).Round(1),
		ShiftCount:              shiftCount,
	}
}

// ComputeWeeklySummary resolves and aggregates in one call. It is a pure
// function: safe to call concurrently and to memoize by its inputs.
func ComputeWeeklySummary(in WeekInput) (WeeklySummary, error) {
	plans, err := ResolveWeek(in.Days)
	if err != nil {
		return WeeklySummary{}, err
	}
	return Summarize(in, plans), nil
}

// countGroups counts distinct worked-shift groups on one day: segments
// sharing a group id are one split shift, and ungrouped segments on the
// same day collapse into a single coupure pair.
func countGroups(segments []Segment) int {
	if len(segments) == 0 {
		return 0
	}
	groups := map[string]bool{}
	ungrouped := false
	for _, s := range segments {
		if s.GroupID == "" {
			ungrouped = true
			continue
		}
		groups[s.GroupID] = true
	}
	n := len(groups)
	if ungrouped {
		n++
	}
	return n
}
