package settings

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"go-shiftplan/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errInvalidRestaurantID = apperror.New(
	apperror.CodeInvalidInput,
	"invalid restaurant id",
	http.StatusBadRequest,
)

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, restaurantID string) (SettingsResponse, error)
	Update(ctx context.Context, restaurantID string, req UpdateSettingsRequest) (SettingsResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Get falls back to defaults when no row exists, so a fresh restaurant
// never sees a 404 on its settings.
func (s *service) Get(ctx context.Context, restaurantID string) (SettingsResponse, error) {
	if _, err := uuid.Parse(restaurantID); err != nil {
		return SettingsResponse{}, errInvalidRestaurantID
	}

	row, err := s.repo.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingsResponse{RestaurantID: restaurantID, PayBreakTimes: false}, nil
		}
		return SettingsResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, restaurantID string, req UpdateSettingsRequest) (SettingsResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return SettingsResponse{}, errInvalidRestaurantID
	}

	row := PlanningSettings{
		RestaurantID:  restaurantUUID,
		PayBreakTimes: req.PayBreakTimes != nil && *req.PayBreakTimes,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update settings begin tx failed", zap.Error(err))
		return SettingsResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Upsert(ctx, &row); err != nil {
		s.logger.Error("update settings persist failed", zap.Error(err))
		return SettingsResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SettingsResponse{}, err
	}

	s.logger.Info("update settings success",
		zap.String("restaurant_id", restaurantID),
		zap.Bool("pay_break_times", row.PayBreakTimes),
	)
	return mapToResponse(row), nil
}

func mapToResponse(s PlanningSettings) SettingsResponse {
	return SettingsResponse{
		RestaurantID:  s.RestaurantID.String(),
		PayBreakTimes: s.PayBreakTimes,
	}
}
