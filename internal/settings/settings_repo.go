package settings

import (
	"context"
	"database/sql"

	"go-shiftplan/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, s *PlanningSettings) error
	FindByRestaurant(ctx context.Context, restaurantID string) (*PlanningSettings, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx clones the repository onto the caller's transaction.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.GormTx(tx)}
}

func (r *repository) Upsert(ctx context.Context, s *PlanningSettings) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "restaurant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"pay_break_times", "updated_at"}),
		}).
		Create(s).Error
}

func (r *repository) FindByRestaurant(ctx context.Context, restaurantID string) (*PlanningSettings, error) {
	var s PlanningSettings
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
