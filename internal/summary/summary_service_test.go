package summary_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-shiftplan/internal/availability"
	"go-shiftplan/internal/employee"
	"go-shiftplan/internal/preference"
	"go-shiftplan/internal/schedule"
	"go-shiftplan/internal/settings"
	"go-shiftplan/internal/shared/apperror"
	"go-shiftplan/internal/shift"
	"go-shiftplan/internal/summary"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error {
	f.employees[e.ID.String()] = *e
	return nil
}
func (f *fakeEmployeeRepo) FindAllByRestaurant(ctx context.Context, restaurantID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}
func (f *fakeEmployeeRepo) FindByIDAndRestaurant(ctx context.Context, restaurantID, id string) (*employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, restaurantID, id string) error {
	return nil
}

type fakeShiftRepo struct {
	rows []shift.Shift
}

func (f *fakeShiftRepo) WithTx(tx *sql.Tx) shift.Repository { return f }
func (f *fakeShiftRepo) Create(ctx context.Context, s *shift.Shift) error { return nil }
func (f *fakeShiftRepo) FindByID(ctx context.Context, restaurantID, id string) (*shift.Shift, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeShiftRepo) FindByEmployeeAndWeek(ctx context.Context, restaurantID, employeeID string, weekStart time.Time) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range f.rows {
		if s.EmployeeID.String() == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fakeShiftRepo) FindByEmployeeAndDay(ctx context.Context, restaurantID, employeeID string, weekStart time.Time, day int) ([]shift.Shift, error) {
	return nil, nil
}
func (f *fakeShiftRepo) FindAllByRestaurantAndWeek(ctx context.Context, restaurantID string, weekStart time.Time) ([]shift.Shift, error) {
	return f.rows, nil
}
func (f *fakeShiftRepo) Update(ctx context.Context, s *shift.Shift) error { return nil }
func (f *fakeShiftRepo) DeleteByIDs(ctx context.Context, restaurantID string, ids []string) error {
	return nil
}
func (f *fakeShiftRepo) GetWeekVersion(ctx context.Context, restaurantID, employeeID string, weekStart time.Time) (int64, error) {
	return 0, nil
}
func (f *fakeShiftRepo) StampWeekVersion(ctx context.Context, restaurantID, employeeID string, weekStart time.Time, expected int64) (int64, error) {
	return expected + 1, nil
}

type fakeAvailabilityService struct {
	periods []schedule.AvailabilityPeriod
}

func (f *fakeAvailabilityService) Create(ctx context.Context, restaurantID string, req availability.CreateAvailabilityRequest) (availability.AvailabilityResponse, error) {
	return availability.AvailabilityResponse{}, nil
}
func (f *fakeAvailabilityService) GetByEmployee(ctx context.Context, restaurantID, employeeID string) ([]availability.AvailabilityResponse, error) {
	return nil, nil
}
func (f *fakeAvailabilityService) Delete(ctx context.Context, restaurantID, id string) error {
	return nil
}
func (f *fakeAvailabilityService) GetPeriods(ctx context.Context, restaurantID, employeeID string) ([]schedule.AvailabilityPeriod, error) {
	return f.periods, nil
}

type fakePreferenceService struct {
	prefs *schedule.PreferenceSet
}

func (f *fakePreferenceService) Upsert(ctx context.Context, restaurantID, employeeID string, req preference.UpsertPreferenceRequest) (preference.PreferenceResponse, error) {
	return preference.PreferenceResponse{}, nil
}
func (f *fakePreferenceService) GetByEmployee(ctx context.Context, restaurantID, employeeID string) (preference.PreferenceResponse, error) {
	return preference.PreferenceResponse{}, nil
}
func (f *fakePreferenceService) GetPreferenceSet(ctx context.Context, restaurantID, employeeID string) (*schedule.PreferenceSet, error) {
	return f.prefs, nil
}

type fakeSettingsService struct {
	payBreakTimes bool
}

func (f *fakeSettingsService) Get(ctx context.Context, restaurantID string) (settings.SettingsResponse, error) {
	return settings.SettingsResponse{RestaurantID: restaurantID, PayBreakTimes: f.payBreakTimes}, nil
}
func (f *fakeSettingsService) Update(ctx context.Context, restaurantID string, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	return settings.SettingsResponse{}, nil
}

type summaryDeps struct {
	service      summary.Service
	employees    *fakeEmployeeRepo
	shifts       *fakeShiftRepo
	availability *fakeAvailabilityService
	preferences  *fakePreferenceService
	settings     *fakeSettingsService
}

func setupSummaryTest(t *testing.T) *summaryDeps {
	t.Helper()
	deps := &summaryDeps{
		employees:    &fakeEmployeeRepo{employees: make(map[string]employee.Employee)},
		shifts:       &fakeShiftRepo{},
		availability: &fakeAvailabilityService{},
		preferences:  &fakePreferenceService{},
		settings:     &fakeSettingsService{},
	}
	deps.service = summary.NewService(
		deps.employees, deps.shifts, deps.availability, deps.preferences, deps.settings, nil,
	)
	return deps
}

func strPtr(s string) *string { return &s }

func seedEmployee(deps *summaryDeps, restaurantID uuid.UUID, target float64, contractStart time.Time, contractEnd *time.Time) uuid.UUID {
	id := uuid.New()
	deps.employees.employees[id.String()] = employee.Employee{
		ID:                id,
		RestaurantID:      restaurantID,
		FirstName:         "Luc",
		LastName:          "Martin",
		Position:          "Cuisinier",
		WeeklyHoursTarget: target,
		ContractStart:     contractStart,
		ContractEnd:       contractEnd,
	}
	return id
}

func seedWorked(deps *summaryDeps, restaurantID, employeeID uuid.UUID, weekStart time.Time, day int, start, end, position string) {
	deps.shifts.rows = append(deps.shifts.rows, shift.Shift{
		ID:            uuid.New(),
		RestaurantID:  restaurantID,
		EmployeeID:    employeeID,
		WeekStart:     weekStart,
		Day:           day,
		StartTime:     strPtr(start),
		EndTime:       strPtr(end),
		PositionLabel: position,
	})
}

func TestSummaryService_GetWeeklySummary(t *testing.T) {
	ctx := context.Background()
	restaurantID := uuid.New()
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("success - coupure day with unpaid breaks", func(t *testing.T) {
		deps := setupSummaryTest(t)
		employeeID := seedEmployee(deps, restaurantID, 35, monday.AddDate(-1, 0, 0), nil)
		seedWorked(deps, restaurantID, employeeID, monday, 1, "09:00", "14:00", "Cuisinier")
		seedWorked(deps, restaurantID, employeeID, monday, 1, "15:00", "20:00", "Cuisinier")

		resp, err := deps.service.GetWeeklySummary(ctx, restaurantID.String(), employeeID.String(), "2026-03-02")
		require.NoError(t, err)

		assert.InDelta(t, 10.0, resp.TotalWorkedHours, 0.001)
		assert.InDelta(t, 35.0, resp.ProRatedContractHours, 0.001)
		assert.InDelta(t, -25.0, resp.HoursDiff, 0.001)
		assert.Equal(t, 1, resp.ShiftCount)
		assert.Empty(t, resp.Conflicts)
	})

	t.Run("success - paid breaks add coupure time", func(t *testing.T) {
		deps := setupSummaryTest(t)
		deps.settings.payBreakTimes = true
		employeeID := seedEmployee(deps, restaurantID, 35, monday.AddDate(-1, 0, 0), nil)
		seedWorked(deps, restaurantID, employeeID, monday, 1, "09:00", "14:00", "Cuisinier")
		seedWorked(deps, restaurantID, employeeID, monday, 1, "15:00", "20:00", "Cuisinier")

		resp, err := deps.service.GetWeeklySummary(ctx, restaurantID.String(), employeeID.String(), "2026-03-02")
		require.NoError(t, err)
		assert.InDelta(t, 11.0, resp.TotalWorkedHours, 0.001)
	})

	t.Run("success - unavailable period flags the segment", func(t *testing.T) {
		deps := setupSummaryTest(t)
		employeeID := seedEmployee(deps, restaurantID, 35, monday.AddDate(-1, 0, 0), nil)
		seedWorked(deps, restaurantID, employeeID, monday, 2, "18:00", "23:00", "Serveur")

		day := 2
		deps.availability.periods = []schedule.AvailabilityPeriod{{
			EmployeeID: employeeID.String(),
			DayOfWeek:  &day,
			Type:       schedule.AvailabilityUnavailable,
			Start:      schedule.ClockTime(20 * 60),
			End:        schedule.ClockTime(23 * 60),
			Recurrence: schedule.RecurrenceWeekly,
		}}

		resp, err := deps.service.GetWeeklySummary(ctx, restaurantID.String(), employeeID.String(), "2026-03-02")
		require.NoError(t, err)

		require.Len(t, resp.Conflicts, 1)
		assert.Equal(t, "AVAILABILITY_UNAVAILABLE", resp.Conflicts[0].Kind)
		assert.Equal(t, "HIGH", resp.Conflicts[0].Severity)
		assert.Equal(t, 2, resp.Conflicts[0].Day)
	})

	t.Run("negative - employee inactive for the week", func(t *testing.T) {
		deps := setupSummaryTest(t)
		contractEnd := monday.AddDate(0, 0, -10)
		employeeID := seedEmployee(deps, restaurantID, 35, monday.AddDate(-1, 0, 0), &contractEnd)

		_, err := deps.service.GetWeeklySummary(ctx, restaurantID.String(), employeeID.String(), "2026-03-02")
		require.Error(t, err)
		assert.Equal(t, 404, apperror.ToHTTP(err).Status)
	})

	t.Run("negative - unknown employee", func(t *testing.T) {
		deps := setupSummaryTest(t)

		_, err := deps.service.GetWeeklySummary(ctx, restaurantID.String(), uuid.New().String(), "2026-03-02")
		require.Error(t, err)
		assert.Equal(t, 404, apperror.ToHTTP(err).Status)
	})

	t.Run("negative - week start not Monday", func(t *testing.T) {
		deps := setupSummaryTest(t)
		employeeID := seedEmployee(deps, restaurantID, 35, monday.AddDate(-1, 0, 0), nil)

		_, err := deps.service.GetWeeklySummary(ctx, restaurantID.String(), employeeID.String(), "2026-03-04")
		require.Error(t, err)
		assert.Equal(t, 400, apperror.ToHTTP(err).Status)
	})
}

func TestSummaryService_GetRosterSummaries(t *testing.T) {
	ctx := context.Background()
	restaurantID := uuid.New()
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("success - inactive employees excluded from the roster", func(t *testing.T) {
		deps := setupSummaryTest(t)

		activeID := seedEmployee(deps, restaurantID, 39, monday.AddDate(-1, 0, 0), nil)
		seedWorked(deps, restaurantID, activeID, monday, 0, "10:00", "18:00", "Serveur")

		endedContract := monday.AddDate(0, -2, 0)
		seedEmployee(deps, restaurantID, 35, monday.AddDate(-1, 0, 0), &endedContract)

		resp, err := deps.service.GetRosterSummaries(ctx, restaurantID.String(), "2026-03-02")
		require.NoError(t, err)

		require.Len(t, resp, 1)
		assert.Equal(t, activeID.String(), resp[0].EmployeeID)
		assert.InDelta(t, 8.0, resp[0].TotalWorkedHours, 0.001)
	})
}
