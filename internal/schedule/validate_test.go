package schedule_test

import (
	"testing"

	"go-shiftplan/internal/schedule"

	"github.com/stretchr/testify/assert"
)

func TestValidateMutation(t *testing.T) {
	weekStart := date(2026, 3, 2)
	employee := &schedule.EmployeeContract{
		EmployeeID:    "emp-1",
		ContractStart: date(2025, 1, 1),
	}

	t.Run("create accepted on an empty day", func(t *testing.T) {
		dec, err := schedule.ValidateMutation(employee, weekStart, nil, schedule.Mutation{
			Op:      schedule.OpCreate,
			ShiftID: "s1",
			Day:     0,
			Record:  worked(t, "s1", "09:00", "17:00"),
		})
		assert.NoError(t, err)
		assert.True(t, dec.Accepted)
		assert.Empty(t, dec.SupersededIDs)
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		_, err := schedule.ValidateMutation(nil, weekStart, nil, schedule.Mutation{
			Op:     schedule.OpCreate,
			Day:    0,
			Record: worked(t, "s1", "09:00", "17:00"),
		})
		var unknownErr *schedule.UnknownEmployeeError
		assert.ErrorAs(t, err, &unknownErr)
	})

	t.Run("negative shift before contract start", func(t *testing.T) {
		late := &schedule.EmployeeContract{
			EmployeeID:    "emp-2",
			ContractStart: date(2026, 3, 5), // Thursday
		}
		_, err := schedule.ValidateMutation(late, weekStart, nil, schedule.Mutation{
			Op:     schedule.OpCreate,
			Day:    0, // Monday
			Record: worked(t, "s1", "09:00", "17:00"),
		})
		var contractErr *schedule.OutOfContractPeriodError
		assert.ErrorAs(t, err, &contractErr)
	})

	t.Run("negative shift after contract end", func(t *testing.T) {
		ended := &schedule.EmployeeContract{
			EmployeeID:    "emp-3",
			ContractStart: date(2025, 1, 1),
			ContractEnd:   datePtr(2026, 3, 4), // Wednesday
		}
		_, err := schedule.ValidateMutation(ended, weekStart, nil, schedule.Mutation{
			Op:     schedule.OpCreate,
			Day:    4,
			Record: worked(t, "s1", "09:00", "17:00"),
		})
		var contractErr *schedule.OutOfContractPeriodError
		assert.ErrorAs(t, err, &contractErr)
	})

	t.Run("negative create overlapping an existing segment", func(t *testing.T) {
		existing := []schedule.Record{worked(t, "s1", "09:00", "14:00")}
		_, err := schedule.ValidateMutation(employee, weekStart, existing, schedule.Mutation{
			Op:      schedule.OpCreate,
			ShiftID: "s2",
			Day:     0,
			Record:  worked(t, "s2", "13:00", "18:00"),
		})
		var overlapErr *schedule.OverlapError
		assert.ErrorAs(t, err, &overlapErr)
	})

	t.Run("negative third segment on the day", func(t *testing.T) {
		existing := []schedule.Record{
			worked(t, "s1", "08:00", "10:00"),
			worked(t, "s2", "11:00", "13:00"),
		}
		_, err := schedule.ValidateMutation(employee, weekStart, existing, schedule.Mutation{
			Op:      schedule.OpCreate,
			ShiftID: "s3",
			Day:     0,
			Record:  worked(t, "s3", "14:00", "16:00"),
		})
		var maxErr *schedule.MaxShiftsExceededError
		assert.ErrorAs(t, err, &maxErr)
	})

	t.Run("update substitutes its own previous version", func(t *testing.T) {
		existing := []schedule.Record{worked(t, "s1", "09:00", "14:00")}
		dec, err := schedule.ValidateMutation(employee, weekStart, existing, schedule.Mutation{
			Op:      schedule.OpUpdate,
			ShiftID: "s1",
			Day:     0,
			Record:  worked(t, "s1", "10:00", "15:00"),
		})
		assert.NoError(t, err)
		assert.True(t, dec.Accepted)
	})

	t.Run("negative update of a missing shift", func(t *testing.T) {
		_, err := schedule.ValidateMutation(employee, weekStart, nil, schedule.Mutation{
			Op:      schedule.OpUpdate,
			ShiftID: "ghost",
			Day:     0,
			Record:  worked(t, "ghost", "09:00", "14:00"),
		})
		var notFoundErr *schedule.ShiftNotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("status mutation supersedes the day's worked segments", func(t *testing.T) {
		existing := []schedule.Record{
			worked(t, "s1", "09:00", "14:00"),
			worked(t, "s2", "17:00", "23:00"),
		}
		dec, err := schedule.ValidateMutation(employee, weekStart, existing, schedule.Mutation{
			Op:      schedule.OpCreate,
			ShiftID: "st1",
			Day:     0,
			Record:  schedule.Status{ID: "st1", Code: schedule.StatusSickLeave},
		})
		assert.NoError(t, err)
		assert.True(t, dec.Accepted)
		assert.ElementsMatch(t, []string{"s1", "s2"}, dec.SupersededIDs)
	})

	t.Run("delete accepted when the shift exists", func(t *testing.T) {
		existing := []schedule.Record{worked(t, "s1", "09:00", "14:00")}
		dec, err := schedule.ValidateMutation(employee, weekStart, existing, schedule.Mutation{
			Op:      schedule.OpDelete,
			ShiftID: "s1",
			Day:     0,
		})
		assert.NoError(t, err)
		assert.True(t, dec.Accepted)
	})

	t.Run("negative delete of a missing shift", func(t *testing.T) {
		_, err := schedule.ValidateMutation(employee, weekStart, nil, schedule.Mutation{
			Op:      schedule.OpDelete,
			ShiftID: "ghost",
			Day:     0,
		})
		var notFoundErr *schedule.ShiftNotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("negative create without a record", func(t *testing.T) {
		_, err := schedule.ValidateMutation(employee, weekStart, nil, schedule.Mutation{
			Op:      schedule.OpCreate,
			ShiftID: "s1",
			Day:     0,
		})
		var invalidErr *schedule.InvalidMutationError
		assert.ErrorAs(t, err, &invalidErr)
	})

	t.Run("rejection leaves inputs untouched", func(t *testing.T) {
		existing := []schedule.Record{worked(t, "s1", "09:00", "14:00")}
		_, err := schedule.ValidateMutation(employee, weekStart, existing, schedule.Mutation{
			Op:      schedule.OpCreate,
			ShiftID: "s2",
			Day:     0,
			Record:  worked(t, "s2", "13:00", "18:00"),
		})
		assert.Error(t, err)
		assert.Len(t, existing, 1)
		assert.Equal(t, "s1", existing[0].RecordID())
	})
}
