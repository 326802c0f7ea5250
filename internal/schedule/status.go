package schedule

// StatusCode marks a non-working day for an employee.
type StatusCode string

const (
	StatusWeeklyRest    StatusCode = "WEEKLY_REST"
	StatusPaidLeave     StatusCode = "PAID_LEAVE"
	StatusPublicHoliday StatusCode = "PUBLIC_HOLIDAY"
	StatusSickLeave     StatusCode = "SICK_LEAVE"
	StatusAccident      StatusCode = "ACCIDENT"
	StatusAbsence       StatusCode = "ABSENCE"
)

func (c StatusCode) Valid() bool {
	switch c {
	case StatusWeeklyRest, StatusPaidLeave, StatusPublicHoliday,
		StatusSickLeave, StatusAccident, StatusAbsence:
		return true
	}
	return false
}

// Accounting describes how a status day contributes to the weekly totals.
type Accounting int

const (
	// AccountsNothing: pure day off, contributes to no total.
	AccountsNothing Accounting = iota
	// AccountsAssimilated: credits worked-equivalent hours separately
	// from the worked total (paid leave).
	AccountsAssimilated
	// AccountsHolidayPremium: when actually worked, counts as worked
	// hours and is overlaid into the premium-eligible total.
	AccountsHolidayPremium
)

// Accounting returns the hour-accounting policy of the status code.
func (c StatusCode) Accounting() Accounting {
	switch c {
	case StatusPaidLeave:
		return AccountsAssimilated
	case StatusPublicHoliday:
		return AccountsHolidayPremium
	default:
		// WEEKLY_REST, SICK_LEAVE, ACCIDENT, ABSENCE count toward
		// neither overtime nor the contractual target.
		return AccountsNothing
	}
}
