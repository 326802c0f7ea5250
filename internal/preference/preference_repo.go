package preference

import (
	"context"
	"database/sql"

	"go-shiftplan/internal/shared/connection"
	"go-shiftplan/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=preference_repo.go -destination=mock/preference_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, p *PreferenceSet) error
	FindByEmployee(ctx context.Context, restaurantID, employeeID string) (*PreferenceSet, error)
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

func (r *repository) Upsert(ctx context.Context, p *PreferenceSet) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "restaurant_id"}, {Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"preferred_days", "preferred_positions", "updated_at",
			}),
		}).
		Create(p).Error
}

func (r *repository) FindByEmployee(ctx context.Context, restaurantID, employeeID string) (*PreferenceSet, error) {
	var p PreferenceSet
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(restaurantID)).
		Where("employee_id = ?", employeeID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
