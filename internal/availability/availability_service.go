package availability

import (
	"context"
	"database/sql"
	"errors"
	"time"

	availabilityerrors "go-shiftplan/internal/availability/errors"
	"go-shiftplan/internal/schedule"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=availability_service.go -destination=mock/availability_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, restaurantID string, req CreateAvailabilityRequest) (AvailabilityResponse, error)
	GetByEmployee(ctx context.Context, restaurantID, employeeID string) ([]AvailabilityResponse, error)
	Delete(ctx context.Context, restaurantID, id string) error
	// GetPeriods returns the employee's periods in the compute core's shape.
	GetPeriods(ctx context.Context, restaurantID, employeeID string) ([]schedule.AvailabilityPeriod, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("availability.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("availability.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, restaurantID string, req CreateAvailabilityRequest) (AvailabilityResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return AvailabilityResponse{}, availabilityerrors.ErrInvalidEmployeeID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AvailabilityResponse{}, availabilityerrors.ErrInvalidEmployeeID
	}

	if _, err := schedule.ParseClock(req.StartTime); err != nil {
		return AvailabilityResponse{}, availabilityerrors.ErrInvalidClockFormat
	}
	if _, err := schedule.ParseClock(req.EndTime); err != nil {
		return AvailabilityResponse{}, availabilityerrors.ErrInvalidClockFormat
	}

	period := AvailabilityPeriod{
		ID:           uuid.New(),
		RestaurantID: restaurantUUID,
		EmployeeID:   employeeUUID,
		Type:         req.Type,
		Recurrence:   req.Recurrence,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	}

	switch schedule.Recurrence(req.Recurrence) {
	case schedule.RecurrenceWeekly:
		if req.DayOfWeek == nil {
			return AvailabilityResponse{}, availabilityerrors.ErrMissingAnchor
		}
		period.DayOfWeek = req.DayOfWeek
	case schedule.RecurrenceOnce, schedule.RecurrenceMonthly:
		if req.Date == nil {
			return AvailabilityResponse{}, availabilityerrors.ErrMissingAnchor
		}
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return AvailabilityResponse{}, availabilityerrors.ErrInvalidDateFormat
		}
		period.Date = &date
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create availability begin tx failed", zap.Error(err))
		return AvailabilityResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, &period); err != nil {
		s.logger.Error("create availability persist failed", zap.Error(err))
		return AvailabilityResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AvailabilityResponse{}, err
	}

	s.logger.Info("create availability success",
		zap.String("employee_id", req.EmployeeID),
		zap.String("recurrence", req.Recurrence),
	)
	return mapToResponse(period), nil
}

func (s *service) GetByEmployee(ctx context.Context, restaurantID, employeeID string) ([]AvailabilityResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, availabilityerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindByEmployee(ctx, restaurantID, employeeID)
	if err != nil {
		s.logger.Error("get availability failed", zap.Error(err))
		return nil, err
	}
	res := make([]AvailabilityResponse, len(rows))
	for i, p := range rows {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, restaurantID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return availabilityerrors.ErrInvalidPeriodID
	}
	if _, err := s.repo.FindByID(ctx, restaurantID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return availabilityerrors.ErrPeriodNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, restaurantID, id); err != nil {
		s.logger.Error("delete availability failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) GetPeriods(ctx context.Context, restaurantID, employeeID string) ([]schedule.AvailabilityPeriod, error) {
	rows, err := s.repo.FindByEmployee(ctx, restaurantID, employeeID)
	if err != nil {
		return nil, err
	}

	periods := make([]schedule.AvailabilityPeriod, 0, len(rows))
	for _, row := range rows {
		start, err := schedule.ParseClock(row.StartTime)
		if err != nil {
			return nil, availabilityerrors.ErrInvalidClockFormat
		}
		end, err := schedule.ParseClock(row.EndTime)
		if err != nil {
			return nil, availabilityerrors.ErrInvalidClockFormat
		}
		periods = append(periods, schedule.AvailabilityPeriod{
			EmployeeID: row.EmployeeID.String(),
			DayOfWeek:  row.DayOfWeek,
			Date:       row.Date,
			Type:       schedule.AvailabilityType(row.Type),
			Start:      start,
			End:        end,
			Recurrence: schedule.Recurrence(row.Recurrence),
		})
	}
	return periods, nil
}

func mapToResponse(p AvailabilityPeriod) AvailabilityResponse {
	resp := AvailabilityResponse{
		ID:           p.ID.String(),
		RestaurantID: p.RestaurantID.String(),
		EmployeeID:   p.EmployeeID.String(),
		Type:         p.Type,
		Recurrence:   p.Recurrence,
		DayOfWeek:    p.DayOfWeek,
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
	}
	if p.Date != nil {
		v := p.Date.Format(dateLayout)
		resp.Date = &v
	}
	return resp
}
