package shift

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-shiftplan/internal/employee"
	"go-shiftplan/internal/events"
	"go-shiftplan/internal/messaging/kafka"
	"go-shiftplan/internal/schedule"
	"go-shiftplan/internal/shared/contextutil"
	shifterrors "go-shiftplan/internal/shift/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"

	// maxMutationAttempts bounds the optimistic retry loop when the
	// employee-week version stamp is raced by a concurrent writer.
	maxMutationAttempts = 3
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, restaurantID string, req CreateShiftRequest) (ShiftResponse, error)
	Update(ctx context.Context, restaurantID, id string, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, restaurantID, id string) error
	GetWeek(ctx context.Context, restaurantID, employeeID, weekStart string) ([]ShiftResponse, error)
	GetRosterWeek(ctx context.Context, restaurantID, weekStart string) ([]ShiftResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{db: db, repo: repo, employees: employees, outbox: outbox, logger: l}
}

func (s *service) Create(ctx context.Context, restaurantID string, req CreateShiftRequest) (ShiftResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidRestaurantID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidEmployeeID
	}
	weekStart, err := parseWeekStart(req.WeekStart)
	if err != nil {
		return ShiftResponse{}, err
	}

	row := Shift{
		ID:              uuid.New(),
		RestaurantID:    restaurantUUID,
		EmployeeID:      employeeUUID,
		WeekStart:       weekStart,
		Day:             req.Day,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		PositionLabel:   req.PositionLabel,
		Status:          req.Status,
		HasCoupure:      req.HasCoupure,
		IsHolidayWorked: req.HolidayWorked,
	}
	if req.ShiftGroup != nil && *req.ShiftGroup != "" {
		group, err := uuid.Parse(*req.ShiftGroup)
		if err != nil {
			return ShiftResponse{}, shifterrors.ErrInvalidShiftShape
		}
		row.ShiftGroup = &group
	}

	rec, err := toRecord(row)
	if err != nil {
		return ShiftResponse{}, err
	}

	contract, err := s.loadContract(ctx, restaurantID, req.EmployeeID)
	if err != nil {
		return ShiftResponse{}, err
	}

	mutation := schedule.Mutation{
		Op:      schedule.OpCreate,
		ShiftID: row.ID.String(),
		Day:     row.Day,
		Record:  rec,
	}

	err = s.applyMutation(ctx, restaurantID, req.EmployeeID, weekStart, contract, mutation, nil, func(qtx Repository, decision schedule.Decision) error {
		if err := qtx.DeleteByIDs(ctx, restaurantID, decision.SupersededIDs); err != nil {
			return err
		}
		return qtx.Create(ctx, &row)
	}, "shift_created", row.ID.String())
	if err != nil {
		s.logger.Warn("create shift rejected",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return ShiftResponse{}, err
	}

	s.logger.Info("create shift success",
		zap.String("request_id", rid),
		zap.String("shift_id", row.ID.String()),
		zap.Int("day", row.Day),
	)
	return mapToResponse(row), nil
}

func (s *service) Update(ctx context.Context, restaurantID, id string, req UpdateShiftRequest) (ShiftResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidShiftID
	}

	current, err := s.repo.FindByID(ctx, restaurantID, id)
	if err != nil {
		return ShiftResponse{}, mapRepositoryError(err)
	}

	updated := *current
	if err := applyPatch(&updated, req); err != nil {
		return ShiftResponse{}, err
	}

	rec, err := toRecord(updated)
	if err != nil {
		return ShiftResponse{}, err
	}

	employeeID := updated.EmployeeID.String()
	contract, err := s.loadContract(ctx, restaurantID, employeeID)
	if err != nil {
		return ShiftResponse{}, err
	}

	mutation := schedule.Mutation{
		Op:      schedule.OpUpdate,
		ShiftID: updated.ID.String(),
		Day:     updated.Day,
		Record:  rec,
	}

	// When the shift moves to another day its record is absent from the
	// target day's rows; the original row stands in for the existence
	// check, and is excluded from the prospective day by its id.
	var extra *Shift
	if updated.Day != current.Day {
		extra = current
	}

	err = s.applyMutation(ctx, restaurantID, employeeID, updated.WeekStart, contract, mutation, extra, func(qtx Repository, decision schedule.Decision) error {
		if err := qtx.DeleteByIDs(ctx, restaurantID, decision.SupersededIDs); err != nil {
			return err
		}
		return qtx.Update(ctx, &updated)
	}, "shift_updated", updated.ID.String())
	if err != nil {
		s.logger.Warn("update shift rejected",
			zap.String("request_id", rid),
			zap.String("shift_id", id),
			zap.Error(err),
		)
		return ShiftResponse{}, err
	}

	s.logger.Info("update shift success",
		zap.String("request_id", rid),
		zap.String("shift_id", id),
	)
	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, restaurantID, id string) error {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return shifterrors.ErrInvalidShiftID
	}

	current, err := s.repo.FindByID(ctx, restaurantID, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	employeeID := current.EmployeeID.String()
	contract, err := s.loadContract(ctx, restaurantID, employeeID)
	if err != nil {
		return err
	}

	mutation := schedule.Mutation{
		Op:      schedule.OpDelete,
		ShiftID: current.ID.String(),
		Day:     current.Day,
	}

	err = s.applyMutation(ctx, restaurantID, employeeID, current.WeekStart, contract, mutation, nil, func(qtx Repository, _ schedule.Decision) error {
		return qtx.DeleteByIDs(ctx, restaurantID, []string{id})
	}, "shift_deleted", id)
	if err != nil {
		s.logger.Warn("delete shift rejected",
			zap.String("request_id", rid),
			zap.String("shift_id", id),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("delete shift success",
		zap.String("request_id", rid),
		zap.String("shift_id", id),
	)
	return nil
}

func (s *service) GetWeek(ctx context.Context, restaurantID, employeeID, weekStartStr string) ([]ShiftResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, shifterrors.ErrInvalidEmployeeID
	}
	weekStart, err := parseWeekStart(weekStartStr)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.FindByEmployeeAndWeek(ctx, restaurantID, employeeID, weekStart)
	if err != nil {
		s.logger.Error("get week shifts failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetRosterWeek(ctx context.Context, restaurantID, weekStartStr string) ([]ShiftResponse, error) {
	weekStart, err := parseWeekStart(weekStartStr)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.FindAllByRestaurantAndWeek(ctx, restaurantID, weekStart)
	if err != nil {
		s.logger.Error("get roster shifts failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

// applyMutation runs the validate-then-apply pipeline under the optimistic
// employee-week version stamp. Structural rejections from the validator
// return immediately; only a lost version race retries, and every accepted
// mutation commits its outbox event in the same transaction as the rows.
func (s *service) applyMutation(
	ctx context.Context,
	restaurantID, employeeID string,
	weekStart time.Time,
	contract *schedule.EmployeeContract,
	mutation schedule.Mutation,
	extra *Shift,
	apply func(qtx Repository, decision schedule.Decision) error,
	eventType, shiftID string,
) error {
	rid := contextutil.GetRequestID(ctx)

	for attempt := 1; attempt <= maxMutationAttempts; attempt++ {
		version, err := s.repo.GetWeekVersion(ctx, restaurantID, employeeID, weekStart)
		if err != nil {
			return err
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			s.logger.Error("mutation begin tx failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}

		err = func() error {
			qtx := s.repo.WithTx(tx)

			rows, err := qtx.FindByEmployeeAndDay(ctx, restaurantID, employeeID, weekStart, mutation.Day)
			if err != nil {
				return err
			}
			if extra != nil {
				rows = append(rows, *extra)
			}

			records, err := toRecords(rows)
			if err != nil {
				return err
			}

			decision, err := schedule.ValidateMutation(contract, weekStart, records, mutation)
			if err != nil {
				return mapScheduleError(err)
			}

			if err := apply(qtx, decision); err != nil {
				return mapRepositoryError(err)
			}

			if _, err := qtx.StampWeekVersion(ctx, restaurantID, employeeID, weekStart, version); err != nil {
				return err
			}

			event := events.WeekMutationAppliedEvent{
				EventType:    eventType,
				RequestID:    rid,
				RestaurantID: restaurantID,
				EmployeeID:   employeeID,
				WeekStart:    weekStart.Format(dateLayout),
				ShiftID:      shiftID,
				OccurredAt:   time.Now().UTC(),
			}
			payload, err := json.Marshal(event)
			if err != nil {
				return err
			}
			outboxEvent := kafka.OutboxEvent{
				ID:            uuid.NewString(),
				RequestID:     rid,
				AggregateType: kafka.AggregateTypeWeekSchedule,
				AggregateID:   employeeID,
				EventType:     eventType,
				Topic:         events.WeekMutationTopic,
				Payload:       payload,
				Status:        kafka.OutboxStatusPending,
			}
			if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
				return err
			}

			return tx.Commit()
		}()
		if err != nil {
			tx.Rollback()
			if errors.Is(err, ErrVersionConflict) {
				s.logger.Debug("week version race lost, retrying",
					zap.String("request_id", rid),
					zap.String("employee_id", employeeID),
					zap.Int("attempt", attempt),
				)
				continue
			}
			return err
		}
		return nil
	}

	return shifterrors.ErrWeekVersionConflict
}

func (s *service) loadContract(ctx context.Context, restaurantID, employeeID string) (*schedule.EmployeeContract, error) {
	empl, err := s.employees.FindByIDAndRestaurant(ctx, restaurantID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shifterrors.ErrUnknownEmployee
		}
		return nil, err
	}
	return &schedule.EmployeeContract{
		EmployeeID:    empl.ID.String(),
		ContractStart: empl.ContractStart,
		ContractEnd:   empl.ContractEnd,
	}, nil
}

func applyPatch(row *Shift, req UpdateShiftRequest) error {
	if req.Day != nil {
		row.Day = *req.Day
	}
	if req.StartTime != nil {
		if *req.StartTime == "" {
			row.StartTime = nil
		} else {
			row.StartTime = req.StartTime
		}
	}
	if req.EndTime != nil {
		if *req.EndTime == "" {
			row.EndTime = nil
		} else {
			row.EndTime = req.EndTime
		}
	}
	if req.PositionLabel != nil {
		row.PositionLabel = *req.PositionLabel
	}
	if req.Status != nil {
		if *req.Status == "" {
			row.Status = nil
		} else {
			row.Status = req.Status
		}
	}
	if req.HasCoupure != nil {
		row.HasCoupure = *req.HasCoupure
	}
	if req.ShiftGroup != nil {
		if *req.ShiftGroup == "" {
			row.ShiftGroup = nil
		} else {
			group, err := uuid.Parse(*req.ShiftGroup)
			if err != nil {
				return shifterrors.ErrInvalidShiftShape
			}
			row.ShiftGroup = &group
		}
	}
	if req.HolidayWorked != nil {
		row.IsHolidayWorked = *req.HolidayWorked
	}
	return nil
}

func parseWeekStart(value string) (time.Time, error) {
	weekStart, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, shifterrors.ErrInvalidDateFormat
	}
	if weekStart.Weekday() != time.Monday {
		return time.Time{}, shifterrors.ErrWeekStartNotMonday
	}
	return weekStart, nil
}
