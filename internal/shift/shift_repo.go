package shift

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-shiftplan/internal/shared/connection"
	"go-shiftplan/internal/tenant"

	"gorm.io/gorm"
)

// ErrVersionConflict reports a lost optimistic race on the employee-week
// version stamp. The service retries the whole mutation on it.
var ErrVersionConflict = errors.New("week schedule version conflict")

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Shift) error
	FindByID(ctx context.Context, restaurantID, id string) (*Shift, error)
	FindByEmployeeAndWeek(ctx context.Context, restaurantID, employeeID string, weekStart time.Time) ([]Shift, error)
	FindByEmployeeAndDay(ctx context.Context, restaurantID, employeeID string, weekStart time.Time, day int) ([]Shift, error)
	FindAllByRestaurantAndWeek(ctx context.Context, restaurantID string, weekStart time.Time) ([]Shift, error)
	Update(ctx context.Context, s *Shift) error
	DeleteByIDs(ctx context.Context, restaurantID string, ids []string) error
	GetWeekVersion(ctx context.Context, restaurantID, employeeID string, weekStart time.Time) (int64, error)
	StampWeekVersion(ctx context.Context, restaurantID, employeeID string, weekStart time.Time, expected int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx clones the repository onto the caller's transaction. Every write
// of a mutation, including the version stamp and the supersede delete,
// commits or rolls back with that transaction.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.GormTx(tx)}
}

func (r *repository) Create(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, restaurantID, id string) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(restaurantID)).
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByEmployeeAndWeek(ctx context.Context, restaurantID, employeeID string, weekStart time.Time) ([]Shift, error) {
	var rows []Shift
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(restaurantID)).
		Where("employee_id = ?", employeeID).
		Where("week_start = ?", weekStart.Format("2006-01-02")).
		Order("day ASC, start_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeAndDay(ctx context.Context, restaurantID, employeeID string, weekStart time.Time, day int) ([]Shift, error) {
	var rows []Shift
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(restaurantID)).
		Where("employee_id = ?", employeeID).
		Where("week_start = ?", weekStart.Format("2006-01-02")).
		Where("day = ?", day).
		Order("start_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByRestaurantAndWeek(ctx context.Context, restaurantID string, weekStart time.Time) ([]Shift, error) {
	var rows []Shift
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(restaurantID)).
		Where("week_start = ?", weekStart.Format("2006-01-02")).
		Order("employee_id ASC, day ASC, start_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) DeleteByIDs(ctx context.Context, restaurantID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(restaurantID)).
		Where("id IN ?", ids).
		Delete(&Shift{}).Error
}

func (r *repository) GetWeekVersion(ctx context.Context, restaurantID, employeeID string, weekStart time.Time) (int64, error) {
	var version int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(version), 0)
		FROM week_schedules
		WHERE restaurant_id = ? AND employee_id = ? AND week_start = ?
	`, restaurantID, employeeID, weekStart.Format("2006-01-02")).Scan(&version).Error
	if err != nil {
		return 0, err
	}
	return version, nil
}

// StampWeekVersion bumps the employee-week version with an atomic upsert.
// The conflict branch only fires when the stored version still matches the
// caller's expectation, so two racing writers cannot both succeed; the
// loser sees no returned row.
func (r *repository) StampWeekVersion(ctx context.Context, restaurantID, employeeID string, weekStart time.Time, expected int64) (int64, error) {
	var next sql.NullInt64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO week_schedules (restaurant_id, employee_id, week_start, version, updated_at)
		VALUES (?, ?, ?, 1, now())
		ON CONFLICT (restaurant_id, employee_id, week_start) DO UPDATE
		SET version = week_schedules.version + 1, updated_at = now()
		WHERE week_schedules.version = ?
		RETURNING version
	`, restaurantID, employeeID, weekStart.Format("2006-01-02"), expected).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	if !next.Valid {
		return 0, ErrVersionConflict
	}
	return next.Int64, nil
}
