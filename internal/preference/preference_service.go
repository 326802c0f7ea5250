package preference

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	preferenceerrors "go-shiftplan/internal/preference/errors"
	"go-shiftplan/internal/schedule"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=preference_service.go -destination=mock/preference_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, restaurantID, employeeID string, req UpsertPreferenceRequest) (PreferenceResponse, error)
	GetByEmployee(ctx context.Context, restaurantID, employeeID string) (PreferenceResponse, error)
	// GetPreferenceSet returns the employee's wishes in the compute core's
	// shape, or nil when none are recorded.
	GetPreferenceSet(ctx context.Context, restaurantID, employeeID string) (*schedule.PreferenceSet, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("preference.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("preference.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Upsert(ctx context.Context, restaurantID, employeeID string, req UpsertPreferenceRequest) (PreferenceResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return PreferenceResponse{}, preferenceerrors.ErrInvalidEmployeeID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return PreferenceResponse{}, preferenceerrors.ErrInvalidEmployeeID
	}

	days, err := json.Marshal(req.PreferredDays)
	if err != nil {
		return PreferenceResponse{}, err
	}
	positions, err := json.Marshal(req.PreferredPositions)
	if err != nil {
		return PreferenceResponse{}, err
	}

	row := PreferenceSet{
		ID:                 uuid.New(),
		RestaurantID:       restaurantUUID,
		EmployeeID:         employeeUUID,
		PreferredDays:      days,
		PreferredPositions: positions,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("upsert preferences begin tx failed", zap.Error(err))
		return PreferenceResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Upsert(ctx, &row); err != nil {
		s.logger.Error("upsert preferences persist failed", zap.Error(err))
		return PreferenceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PreferenceResponse{}, err
	}

	s.logger.Info("upsert preferences success", zap.String("employee_id", employeeID))
	return mapToResponse(row)
}

func (s *service) GetByEmployee(ctx context.Context, restaurantID, employeeID string) (PreferenceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return PreferenceResponse{}, preferenceerrors.ErrInvalidEmployeeID
	}
	row, err := s.repo.FindByEmployee(ctx, restaurantID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PreferenceResponse{}, preferenceerrors.ErrPreferencesNotFound
		}
		return PreferenceResponse{}, err
	}
	return mapToResponse(*row)
}

func (s *service) GetPreferenceSet(ctx context.Context, restaurantID, employeeID string) (*schedule.PreferenceSet, error) {
	row, err := s.repo.FindByEmployee(ctx, restaurantID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	resp, err := mapToResponse(*row)
	if err != nil {
		return nil, err
	}
	return &schedule.PreferenceSet{
		PreferredDays:      resp.PreferredDays,
		PreferredPositions: resp.PreferredPositions,
	}, nil
}

func mapToResponse(p PreferenceSet) (PreferenceResponse, error) {
	resp := PreferenceResponse{EmployeeID: p.EmployeeID.String()}

	if len(p.PreferredDays) > 0 {
		if err := json.Unmarshal(p.PreferredDays, &resp.PreferredDays); err != nil {
			return PreferenceResponse{}, err
		}
	}
	if len(p.PreferredPositions) > 0 {
		if err := json.Unmarshal(p.PreferredPositions, &resp.PreferredPositions); err != nil {
			return PreferenceResponse{}, err
		}
	}
	return resp, nil
}
