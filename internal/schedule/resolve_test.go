package schedule_test

import (
	"testing"

	"go-shiftplan/internal/schedule"

	"github.com/stretchr/testify/assert"
)

func clock(t *testing.T, s string) schedule.ClockTime {
	t.Helper()
	c, err := schedule.ParseClock(s)
	assert.NoError(t, err)
	return c
}

func worked(t *testing.T, id, start, end string) schedule.Worked {
	t.Helper()
	return schedule.Worked{
		ID:    id,
		Start: clock(t, start),
		End:   clock(t, end),
	}
}

func TestParseClock(t *testing.T) {
	c, err := schedule.ParseClock("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, c.Minutes())
	assert.Equal(t, "09:30", c.String())

	for _, bad := range []string{"24:00", "12:60", "9h30", ""} {
		_, err := schedule.ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestResolveDay(t *testing.T) {
	t.Run("single segment", func(t *testing.T) {
		plan, err := schedule.ResolveDay(0, []schedule.Record{
			worked(t, "s1", "09:00", "17:00"),
		})
		assert.NoError(t, err)
		assert.Len(t, plan.Segments, 1)
		assert.Equal(t, 480, plan.Segments[0].DurationMinutes)
		assert.False(t, plan.HasCoupure)
		assert.Equal(t, 0, plan.BreakMinutes)
	})

	t.Run("overnight segment normalizes to four hours", func(t *testing.T) {
		plan, err := schedule.ResolveDay(2, []schedule.Record{
			worked(t, "s1", "22:00", "02:00"),
		})
		assert.NoError(t, err)
		assert.Equal(t, 240, plan.Segments[0].DurationMinutes)
	})

	t.Run("coupure derives from segment count", func(t *testing.T) {
		plan, err := schedule.ResolveDay(1, []schedule.Record{
			worked(t, "evening", "17:00", "23:00"),
			worked(t, "morning", "09:00", "14:00"),
		})
		assert.NoError(t, err)
		assert.True(t, plan.HasCoupure)
		assert.Equal(t, 180, plan.BreakMinutes)
		assert.Equal(t, 660, plan.WorkedMinutes())
		// sorted by start regardless of input order
		assert.Equal(t, "morning", plan.Segments[0].ID)
		assert.Equal(t, "evening", plan.Segments[1].ID)
	})

	t.Run("negative overlapping segments", func(t *testing.T) {
		_, err := schedule.ResolveDay(1, []schedule.Record{
			worked(t, "a", "09:00", "14:00"),
			worked(t, "b", "13:00", "18:00"),
		})
		var overlapErr *schedule.OverlapError
		assert.ErrorAs(t, err, &overlapErr)
		assert.Equal(t, "a", overlapErr.FirstID)
		assert.Equal(t, "b", overlapErr.SecondID)
	})

	t.Run("negative overnight segment overlaps a later one", func(t *testing.T) {
		_, err := schedule.ResolveDay(1, []schedule.Record{
			worked(t, "night", "20:00", "03:00"),
			worked(t, "late", "22:00", "23:00"),
		})
		var overlapErr *schedule.OverlapError
		assert.ErrorAs(t, err, &overlapErr)
	})

	t.Run("negative third worked segment", func(t *testing.T) {
		_, err := schedule.ResolveDay(1, []schedule.Record{
			worked(t, "a", "08:00", "10:00"),
			worked(t, "b", "11:00", "13:00"),
			worked(t, "c", "14:00", "16:00"),
		})
		var maxErr *schedule.MaxShiftsExceededError
		assert.ErrorAs(t, err, &maxErr)
		assert.Equal(t, 3, maxErr.Count)
	})

	t.Run("negative day out of range", func(t *testing.T) {
		_, err := schedule.ResolveDay(7, nil)
		var dayErr *schedule.InvalidDayError
		assert.ErrorAs(t, err, &dayErr)
	})

	t.Run("status record keeps its code and no segments", func(t *testing.T) {
		plan, err := schedule.ResolveDay(3, []schedule.Record{
			schedule.Status{ID: "st1", Code: schedule.StatusPaidLeave},
		})
		assert.NoError(t, err)
		assert.Empty(t, plan.Segments)
		assert.Len(t, plan.Statuses, 1)
		assert.False(t, plan.HasCoupure)
	})

	t.Run("worked public holiday contributes a segment", func(t *testing.T) {
		seg := worked(t, "hw", "09:00", "17:00")
		plan, err := schedule.ResolveDay(4, []schedule.Record{
			schedule.Status{ID: "st1", Code: schedule.StatusPublicHoliday, HolidayShift: &seg},
		})
		assert.NoError(t, err)
		assert.Len(t, plan.Segments, 1)
		assert.True(t, plan.Segments[0].HolidayWorked)
		assert.Equal(t, 480, plan.Segments[0].DurationMinutes)
	})
}
