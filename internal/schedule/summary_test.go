package schedule_test

import (
	"testing"

	"go-shiftplan/internal/schedule"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func weekInput(t *testing.T, days ...schedule.DayInput) schedule.WeekInput {
	t.Helper()
	return schedule.WeekInput{
		EmployeeID:        "emp-1",
		WeekStart:         date(2026, 3, 2),
		ContractStart:     date(2025, 1, 1),
		WeeklyHoursTarget: decimal.NewFromInt(35),
		Days:              days,
	}
}

func TestComputeWeeklySummary(t *testing.T) {
	t.Run("empty week", func(t *testing.T) {
		sum, err := schedule.ComputeWeeklySummary(weekInput(t))
		assert.NoError(t, err)
		assert.Equal(t, "0.0", sum.TotalWorkedHours.StringFixed(1))
		assert.Equal(t, "35.0", sum.ProRatedContractHours.StringFixed(1))
		assert.Equal(t, "-35.0", sum.HoursDiff.StringFixed(1))
		assert.Equal(t, 0, sum.ShiftCount)
	})

	t.Run("coupure break unpaid by default", func(t *testing.T) {
		in := weekInput(t, schedule.DayInput{Day: 0, Records: []schedule.Record{
			worked(t, "m", "09:00", "14:00"),
			worked(t, "e", "17:00", "23:00"),
		}})
		sum, err := schedule.ComputeWeeklySummary(in)
		assert.NoError(t, err)
		assert.Equal(t, "11.0", sum.TotalWorkedHours.StringFixed(1))
		assert.Equal(t, 1, sum.ShiftCount)
	})

	t.Run("coupure break paid when flag set", func(t *testing.T) {
		in := weekInput(t, schedule.DayInput{Day: 0, Records: []schedule.Record{
			worked(t, "m", "09:00", "14:00"),
			worked(t, "e", "17:00", "23:00"),
		}})
		in.PayBreakTimes = true
		sum, err := schedule.ComputeWeeklySummary(in)
		assert.NoError(t, err)
		assert.Equal(t, "14.0", sum.TotalWorkedHours.StringFixed(1))
	})

	t.Run("overnight shift counts four hours", func(t *testing.T) {
		in := weekInput(t, schedule.DayInput{Day: 5, Records: []schedule.Record{
			worked(t, "n", "22:00", "02:00"),
		}})
		sum, err := schedule.ComputeWeeklySummary(in)
		assert.NoError(t, err)
		assert.Equal(t, "4.0", sum.TotalWorkedHours.StringFixed(1))
	})

	t.Run("paid leave credits assimilated hours only", func(t *testing.T) {
		in := weekInput(t, schedule.DayInput{Day: 2, Records: []schedule.Record{
			schedule.Status{ID: "pl", Code: schedule.StatusPaidLeave},
		}})
		sum, err := schedule.ComputeWeeklySummary(in)
		assert.NoError(t, err)
		assert.Equal(t, "0.0", sum.TotalWorkedHours.StringFixed(1))
		assert.Equal(t, "7.0", sum.TotalAssimilatedHours.StringFixed(1))
	})

	t.Run("unworked public holiday contributes nothing", func(t *testing.T) {
		in := weekInput(t, schedule.DayInput{Day: 2, Records: []schedule.Record{
			schedule.Status{ID: "ph", Code: schedule.StatusPublicHoliday},
		}})
		sum, err := schedule.ComputeWeeklySummary(in)
		assert.NoError(t, err)
		assert.Equal(t, "0.0", sum.TotalWorkedHours.StringFixed(1))
		assert.Equal(t, "0.0", sum.TotalAssimilatedHours.StringFixed(1))
		assert.Equal(t, "0.0", sum.TotalPublicHolidayHours.StringFixed(1))
	})

	t.Run("worked public holiday counts once plus premium overlay", func(t *testing.T) {
		seg := worked(t, "hw", "09:00", "17:00")
		in := weekInput(t, schedule.DayInput{Day: 3, Records: []schedule.Record{
			schedule.Status{ID: "ph", Code: schedule.StatusPublicHoliday, HolidayShift: &seg},
		}})
		sum, err := schedule.ComputeWeeklySummary(in)
		assert.NoError(t, err)
		assert.Equal(t, "8.0", sum.TotalWorkedHours.StringFixed(1))
		assert.Equal(t, "8.0", sum.TotalPublicHolidayHours.StringFixed(1))
	})

	t.Run("rest and sickness days contribute nothing", func(t *testing.T) {
		in := weekInput(t,
			schedule.DayInput{Day: 0, Records: []schedule.Record{
				schedule.Status{ID: "wr", Code: schedule.StatusWeeklyRest},
			}},
			schedule.DayInput{Day: 1, Records: []schedule.Record{
				schedule.Status{ID: "sl", Code: schedule.StatusSickLeave},
			}},
			schedule.DayInput{Day: 2, Records: []schedule.Record{
				schedule.Status{ID: "ab", Code: schedule.StatusAbsence},
			}},
			schedule.DayInput{Day: 3, Records: []schedule.Record{
				schedule.Status{ID: "ac", Code: schedule.StatusAccident},
			}},
		)
		sum, err := schedule.ComputeWeeklySummary(in)
		assert.NoError(t, err)
		assert.Equal(t, "0.0", sum.TotalWorkedHours.StringFixed(1))
		assert.Equal(t, "0.0", sum.TotalAssimilatedHours.StringFixed(1))
		// the pro-rated target is untouched by rest/sickness days
		assert.Equal(t, "35.0", sum.ProRatedContractHours.StringFixed(1))
	})

	t.Run("hours diff positive on overtime", func(t *testing.T) {
		days := make([]schedule.DayInput, 0, 6)
		for d := 0; d < 6; d++ {
			days = append(days, schedule.DayInput{Day: d, Records: []schedule.Record{
				worked(t, "s", "09:00", "16:30"),
			}})
		}
		sum, err := schedule.ComputeWeeklySummary(weekInput(t, days...))
		assert.NoError(t, err)
		assert.Equal(t, "45.0", sum.TotalWorkedHours.StringFixed(1))
		assert.Equal(t, "10.0", sum.HoursDiff.StringFixed(1))
	})

	t.Run("shift count collapses coupure pairs", func(t *testing.T) {
		in := weekInput(t,
			schedule.DayInput{Day: 0, Records: []schedule.Record{
				schedule.Worked{ID: "a1", GroupID: "g1", Start: clock(t, "09:00"), End: clock(t, "14:00")},
				schedule.Worked{ID: "a2", GroupID: "g1", Start: clock(t, "17:00"), End: clock(t, "23:00")},
			}},
			schedule.DayInput{Day: 1, Records: []schedule.Record{
				worked(t, "b1", "09:00", "17:00"),
			}},
		)
		sum, err := schedule.ComputeWeeklySummary(in)
		assert.NoError(t, err)
		assert.Equal(t, 2, sum.ShiftCount)
	})

	t.Run("pro-rated week with mid-week contract start", func(t *testing.T) {
		in := weekInput(t, schedule.DayInput{Day: 4, Records: []schedule.Record{
			worked(t, "f", "09:00", "17:00"),
		}})
		in.ContractStart = date(2026, 3, 5) // Thursday
		sum, err := schedule.ComputeWeeklySummary(in)
		assert.NoError(t, err)
		assert.Equal(t, "20.0", sum.ProRatedContractHours.StringFixed(1))
		assert.Equal(t, "-12.0", sum.HoursDiff.StringFixed(1))
	})

	t.Run("negative structural error propagates", func(t *testing.T) {
		in := weekInput(t, schedule.DayInput{Day: 0, Records: []schedule.Record{
			worked(t, "a", "09:00", "14:00"),
			worked(t, "b", "13:00", "18:00"),
		}})
		_, err := schedule.ComputeWeeklySummary(in)
		var overlapErr *schedule.OverlapError
		assert.ErrorAs(t, err, &overlapErr)
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		seg := worked(t, "hw", "10:00", "15:00")
		in := weekInput(t,
			schedule.DayInput{Day: 0, Records: []schedule.Record{
				worked(t, "m", "09:00", "14:00"),
				worked(t, "e", "17:00", "23:00"),
			}},
			schedule.DayInput{Day: 2, Records: []schedule.Record{
				schedule.Status{ID: "pl", Code: schedule.StatusPaidLeave},
			}},
			schedule.DayInput{Day: 3, Records: []schedule.Record{
				schedule.Status{ID: "ph", Code: schedule.StatusPublicHoliday, HolidayShift: &seg},
			}},
		)
		in.PayBreakTimes = true

		first, err := schedule.ComputeWeeklySummary(in)
		assert.NoError(t, err)
		second, err := schedule.ComputeWeeklySummary(in)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
