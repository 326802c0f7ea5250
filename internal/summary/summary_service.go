package summary

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go-shiftplan/internal/availability"
	"go-shiftplan/internal/employee"
	"go-shiftplan/internal/preference"
	"go-shiftplan/internal/schedule"
	"go-shiftplan/internal/settings"
	"go-shiftplan/internal/shift"
	summaryerrors "go-shiftplan/internal/summary/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"

	SummaryKeyPrefix = "summary:"
	summaryCacheTTL  = 15 * time.Minute
)

// SummaryKeyForWeek is the eviction prefix for one employee-week. The full
// cache key also embeds content hashes, so eviction is an optimization and
// a stale key can never serve a wrong summary.
func SummaryKeyForWeek(employeeID, weekStart string) string {
	return fmt.Sprintf("%s%s:%s:", SummaryKeyPrefix, employeeID, weekStart)
}

//go:generate mockgen -source=summary_service.go -destination=mock/summary_service_mock.go -package=mock
type Service interface {
	GetWeeklySummary(ctx context.Context, restaurantID, employeeID, weekStart string) (WeeklySummaryResponse, error)
	GetRosterSummaries(ctx context.Context, restaurantID, weekStart string) ([]WeeklySummaryResponse, error)
}

type service struct {
	employees    employee.Repository
	shifts       shift.Repository
	availability availability.Service
	preferences  preference.Service
	settings     settings.Service
	rdb          *redis.Client
	sf           *singleflight.Group
	logger       *zap.Logger
}

func NewService(
	employees employee.Repository,
	shifts shift.Repository,
	availabilitySvc availability.Service,
	preferenceSvc preference.Service,
	settingsSvc settings.Service,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("summary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("summary.service")
	}
	return &service{
		employees:    employees,
		shifts:       shifts,
		availability: availabilitySvc,
		preferences:  preferenceSvc,
		settings:     settingsSvc,
		rdb:          rdb,
		sf:           &singleflight.Group{},
		logger:       l,
	}
}

func (s *service) GetWeeklySummary(ctx context.Context, restaurantID, employeeID, weekStartStr string) (WeeklySummaryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return WeeklySummaryResponse{}, summaryerrors.ErrInvalidEmployeeID
	}
	weekStart, err := parseWeekStart(weekStartStr)
	if err != nil {
		return WeeklySummaryResponse{}, err
	}

	empl, err := s.employees.FindByIDAndRestaurant(ctx, restaurantID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WeeklySummaryResponse{}, summaryerrors.ErrEmployeeNotFound
		}
		return WeeklySummaryResponse{}, err
	}

	return s.summarize(ctx, restaurantID, empl, weekStart)
}

func (s *service) GetRosterSummaries(ctx context.Context, restaurantID, weekStartStr string) ([]WeeklySummaryResponse, error) {
	weekStart, err := parseWeekStart(weekStartStr)
	if err != nil {
		return nil, err
	}

	employees, err := s.employees.FindAllByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	summaries := make([]WeeklySummaryResponse, 0, len(employees))
	for i := range employees {
		empl := employees[i]
		window := schedule.ContractWindow(empl.ContractStart, empl.ContractEnd, weekStart)
		if !window.Active() {
			continue
		}
		resp, err := s.summarize(ctx, restaurantID, &empl, weekStart)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, resp)
	}
	return summaries, nil
}

func (s *service) summarize(ctx context.Context, restaurantID string, empl *employee.Employee, weekStart time.Time) (WeeklySummaryResponse, error) {
	window := schedule.ContractWindow(empl.ContractStart, empl.ContractEnd, weekStart)
	if !window.Active() {
		return WeeklySummaryResponse{}, summaryerrors.ErrEmployeeInactiveForWeek
	}

	employeeID := empl.ID.String()
	rows, err := s.shifts.FindByEmployeeAndWeek(ctx, restaurantID, employeeID, weekStart)
	if err != nil {
		return WeeklySummaryResponse{}, err
	}

	cfg, err := s.settings.Get(ctx, restaurantID)
	if err != nil {
		return WeeklySummaryResponse{}, err
	}

	cacheKey := SummaryKeyForWeek(employeeID, weekStart.Format(dateLayout)) +
		shiftSetHash(rows) + ":" + settingsHash(empl, cfg)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp WeeklySummaryResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.compute(ctx, restaurantID, empl, weekStart, rows, cfg.PayBreakTimes)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, summaryCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return WeeklySummaryResponse{}, err
	}
	return v.(WeeklySummaryResponse), nil
}

func (s *service) compute(
	ctx context.Context,
	restaurantID string,
	empl *employee.Employee,
	weekStart time.Time,
	rows []shift.Shift,
	payBreakTimes bool,
) (WeeklySummaryResponse, error) {
	employeeID := empl.ID.String()

	days, err := shift.BuildDayInputs(rows)
	if err != nil {
		return WeeklySummaryResponse{}, err
	}

	in := schedule.WeekInput{
		EmployeeID:        employeeID,
		WeekStart:         weekStart,
		ContractStart:     empl.ContractStart,
		ContractEnd:       empl.ContractEnd,
		WeeklyHoursTarget: decimal.NewFromFloat(empl.WeeklyHoursTarget),
		PayBreakTimes:     payBreakTimes,
		Days:              days,
	}

	plans, err := schedule.ResolveWeek(days)
	if err != nil {
		s.logger.Error("stored week failed to resolve",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return WeeklySummaryResponse{}, err
	}
	weekly := schedule.Summarize(in, plans)

	periods, err := s.availability.GetPeriods(ctx, restaurantID, employeeID)
	if err != nil {
		return WeeklySummaryResponse{}, err
	}
	prefs, err := s.preferences.GetPreferenceSet(ctx, restaurantID, employeeID)
	if err != nil {
		return WeeklySummaryResponse{}, err
	}
	flags := schedule.DetectConflicts(weekStart, plans, periods, prefs)

	conflicts := make([]ConflictFlagResponse, len(flags))
	for i, f := range flags {
		conflicts[i] = ConflictFlagResponse{
			Day:       f.Day,
			SegmentID: f.SegmentID,
			Kind:      string(f.Kind),
			Severity:  string(f.Severity),
		}
	}

	return WeeklySummaryResponse{
		EmployeeID:              employeeID,
		WeekStart:               weekStart.Format(dateLayout),
		TotalWorkedHours:        weekly.TotalWorkedHours.InexactFloat64(),
		TotalAssimilatedHours:   weekly.TotalAssimilatedHours.InexactFloat64(),
		TotalPublicHolidayHours: weekly.TotalPublicHolidayHours.InexactFloat64(),
		ProRatedContractHours:   weekly.ProRatedContractHours.InexactFloat64(),
		HoursDiff:               weekly.HoursDiff.InexactFloat64(),
		ShiftCount:              weekly.ShiftCount,
		Conflicts:               conflicts,
	}, nil
}

// shiftSetHash digests the canonical tuples of a week's rows. Any change
// to any row changes the hash and therefore the cache key.
func shiftSetHash(rows []shift.Shift) string {
	tuples := make([]string, len(rows))
	for i, r := range rows {
		start, end, status, group := "", "", "", ""
		if r.StartTime != nil {
			start = *r.StartTime
		}
		if r.EndTime != nil {
			end = *r.EndTime
		}
		if r.Status != nil {
			status = *r.Status
		}
		if r.ShiftGroup != nil {
			group = r.ShiftGroup.String()
		}
		tuples[i] = fmt.Sprintf("%s|%d|%s|%s|%s|%s|%s|%t",
			r.ID, r.Day, start, end, status, r.PositionLabel, group, r.IsHolidayWorked)
	}
	sort.Strings(tuples)

	sum := sha256.Sum256([]byte(strings.Join(tuples, "\n")))
	return hex.EncodeToString(sum[:8])
}

func settingsHash(empl *employee.Employee, cfg settings.SettingsResponse) string {
	contractEnd := ""
	if empl.ContractEnd != nil {
		contractEnd = empl.ContractEnd.Format(dateLayout)
	}
	canonical := fmt.Sprintf("%t|%.2f|%s|%s",
		cfg.PayBreakTimes,
		empl.WeeklyHoursTarget,
		empl.ContractStart.Format(dateLayout),
		contractEnd,
	)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:8])
}

func parseWeekStart(value string) (time.Time, error) {
	weekStart, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, summaryerrors.ErrInvalidDateFormat
	}
	if weekStart.Weekday() != time.Monday {
		return time.Time{}, summaryerrors.ErrWeekStartNotMonday
	}
	return weekStart, nil
}
