package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// DaysPerWeek is the planning horizon; weeks always run Monday to Sunday.
const DaysPerWeek = 7

var seven = decimal.NewFromInt(DaysPerWeek)

// Window is the overlap between an employment contract and one calendar
// week.
type Window struct {
	WeekStart  time.Time
	ActiveDays int
}

// ContractWindow computes how many days of the week starting at weekStart
// (a Monday) fall inside the employment contract. Days exactly on a
// contract boundary count as active.
func ContractWindow(contractStart time.Time, contractEnd *time.Time, weekStart time.Time) Window {
	w := Window{WeekStart: dateOnly(weekStart)}
	for i := 0; i < DaysPerWeek; i++ {
		day := w.WeekStart.AddDate(0, 0, i)
		if ContractCovers(contractStart, contractEnd, day) {
			w.ActiveDays++
		}
	}
	return w
}

// ContractCovers reports whether a calendar date lies inside the contract
// period, boundaries inclusive. A nil contractEnd means open-ended.
func ContractCovers(contractStart time.Time, contractEnd *time.Time, date time.Time) bool {
	d := dateOnly(date)
	if d.Before(dateOnly(contractStart)) {
		return false
	}
	if contractEnd != nil && d.After(dateOnly(*contractEnd)) {
		return false
	}
	return true
}

// Active reports whether the employee works at all during the week. An
// inactive employee is excluded from the week's roster entirely.
func (w Window) Active() bool {
	return w.ActiveDays > 0
}

// Factor is the pro-ration factor activeDays/7.
func (w Window) Factor() decimal.Decimal {
	return decimal.NewFromInt(int64(w.ActiveDays)).Div(seven)
}

// ProRatedHours scales the weekly contractual target by the window's
// pro-ration factor, rounded to one decimal.
func ProRatedHours(weeklyTarget decimal.Decimal, w Window) decimal.Decimal {
	if w.ActiveDays == 0 {
		return decimal.Zero
	}
	return weeklyTarget.Mul(decimal.NewFromInt(int64(w.ActiveDays))).Div(seven).Round(1)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
