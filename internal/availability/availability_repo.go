package availability

import (
	"context"
	"database/sql"

	"go-shiftplan/internal/shared/connection"
	"go-shiftplan/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=availability_repo.go -destination=mock/availability_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *AvailabilityPeriod) error
	FindByID(ctx context.Context, restaurantID, id string) (*AvailabilityPeriod, error)
	FindByEmployee(ctx context.Context, restaurantID, employeeID string) ([]AvailabilityPeriod, error)
	Delete(ctx context.Context, restaurantID, id string) error
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

func (r *repository) Create(ctx context.Context, p *AvailabilityPeriod) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, restaurantID, id string) (*AvailabilityPeriod, error) {
	var p AvailabilityPeriod
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(restaurantID)).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByEmployee(ctx context.Context, restaurantID, employeeID string) ([]AvailabilityPeriod, error) {
	var rows []AvailabilityPeriod
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(restaurantID)).
		Where("employee_id = ?", employeeID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, restaurantID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(restaurantID)).
		Where("id = ?", id).
		Delete(&AvailabilityPeriod{}).Error
}
