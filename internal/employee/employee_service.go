package employee

import (
	"context"
	"database/sql"
	"time"

	employeeerrors "go-shiftplan/internal/employee/errors"
	"go-shiftplan/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, restaurantID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, restaurantID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, restaurantID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, restaurantID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, restaurantID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, restaurantID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("restaurant_id", restaurantID),
		zap.String("position", req.Position),
	)

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRestaurantID
	}

	contractStart, contractEnd, err := parseContractPeriod(req.ContractStart, req.ContractEnd)
	if err != nil {
		s.logger.Warn("create employee invalid contract period", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl := &Employee{
		ID:                uuid.New(),
		RestaurantID:      restaurantUUID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Position:          req.Position,
		Category:          req.Category,
		WeeklyHoursTarget: req.WeeklyHoursTarget,
		ContractStart:     contractStart,
		ContractEnd:       contractEnd,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, restaurantID string) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAllByRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, restaurantID, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	empl, err := s.repo.FindByIDAndRestaurant(ctx, restaurantID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, restaurantID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.String("restaurant_id", restaurantID),
		zap.String("employee_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByIDAndRestaurant(ctx, restaurantID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.FirstName != nil {
		empl.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		empl.LastName = *req.LastName
	}
	if req.Position != nil {
		empl.Position = *req.Position
	}
	if req.Category != nil {
		empl.Category = *req.Category
	}
	if req.WeeklyHoursTarget != nil {
		empl.WeeklyHoursTarget = *req.WeeklyHoursTarget
	}
	if req.ContractStart != nil {
		start, err := time.Parse(dateLayout, *req.ContractStart)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
		}
		empl.ContractStart = start
	}
	if req.ContractEnd != nil {
		if *req.ContractEnd == "" {
			empl.ContractEnd = nil
		} else {
			end, err := time.Parse(dateLayout, *req.ContractEnd)
			if err != nil {
				return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
			}
			empl.ContractEnd = &end
		}
	}

	if empl.ContractEnd != nil && empl.ContractEnd.Before(empl.ContractStart) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidContractPeriod
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, restaurantID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	if _, err := s.repo.FindByIDAndRestaurant(ctx, restaurantID, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, restaurantID, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func parseContractPeriod(startStr string, endStr *string) (time.Time, *time.Time, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, nil, employeeerrors.ErrInvalidDateFormat
	}

	var end *time.Time
	if endStr != nil && *endStr != "" {
		e, err := time.Parse(dateLayout, *endStr)
		if err != nil {
			return time.Time{}, nil, employeeerrors.ErrInvalidDateFormat
		}
		if e.Before(start) {
			return time.Time{}, nil, employeeerrors.ErrInvalidContractPeriod
		}
		end = &e
	}

	return start, end, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                e.ID.String(),
		RestaurantID:      e.RestaurantID.String(),
		FirstName:         e.FirstName,
		LastName:          e.LastName,
		Position:          e.Position,
		Category:          e.Category,
		WeeklyHoursTarget: e.WeeklyHoursTarget,
		ContractStart:     e.ContractStart.Format(dateLayout),
	}
	if e.ContractEnd != nil {
		v := e.ContractEnd.Format(dateLayout)
		resp.ContractEnd = &v
	}
	return resp
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		res[i] = mapToResponse(e)
	}
	return res
}
